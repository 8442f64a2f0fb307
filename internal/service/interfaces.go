package service

import (
	"context"

	"github.com/bachelormess/mess-manager/internal/store"
	"github.com/bachelormess/mess-manager/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService owns the account registration and credential verification
// flows and the JWT token lifecycle.
type AuthService interface {
	// Register creates a new member account. The role is always
	// models.RoleMember regardless of what the caller supplies.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies the credentials and returns a signed token together
	// with an identity summary. Unknown email and wrong password both
	// yield ErrInvalidCredentials; a deactivated account yields
	// ErrAccountDisabled.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// ParseToken validates a raw JWT string and returns the decoded token.
	// Any validation failure is normalised to ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Identity returns the identity summary of an authenticated account.
	Identity(ctx context.Context, userID string) (models.User, error)
}

// MealService owns submission and moderation of daily meal records.
type MealService interface {
	Submit(ctx context.Context, userID string, req models.MealRequest) (models.Meal, error)
	List(ctx context.Context, filter store.MealFilter) ([]models.Meal, error)
	SetStatus(ctx context.Context, mealID string, status models.ApprovalStatus) error
}

// BazarService owns submission and moderation of bazar entries.
type BazarService interface {
	Submit(ctx context.Context, userID string, req models.BazarRequest) (models.BazarEntry, error)
	List(ctx context.Context, filter store.BazarFilter) ([]models.BazarEntry, error)
	SetStatus(ctx context.Context, entryID string, status models.ApprovalStatus) error
}

// DashboardService computes the aggregate figures behind the dashboard.
type DashboardService interface {
	// MemberStats returns figures scoped to a single member.
	MemberStats(ctx context.Context, userID string) (models.DashboardStats, error)

	// MessStats returns mess-wide figures including the per-member
	// breakdown. Intended for admin callers only.
	MessStats(ctx context.Context) (models.DashboardStats, error)
}

// UserAdminService owns the member administration operations.
type UserAdminService interface {
	List(ctx context.Context) ([]models.User, error)

	// SetRole assigns a role to an account. Granting admin requires an
	// admin actor; granting super_admin requires a super_admin actor.
	SetRole(ctx context.Context, actorRole models.Role, userID string, role models.Role) error

	// SetStatus activates or deactivates an account.
	SetStatus(ctx context.Context, userID string, status models.UserStatus) error
}
