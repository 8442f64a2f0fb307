package store

import (
	"context"

	"github.com/bachelormess/mess-manager/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the server-side persistence layer for accounts.
// It performs no authorization; role checks belong to the transport layer.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. A duplicate email yields ErrEmailAlreadyRegistered.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks an account up by email. The email is matched
	// case-insensitively with surrounding whitespace ignored.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks an account up by its identifier.
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// ListUsers returns all accounts ordered by creation time.
	ListUsers(ctx context.Context) ([]models.User, error)

	// UpdateRole changes an account's role.
	UpdateRole(ctx context.Context, userID string, role models.Role) error

	// UpdateStatus activates or deactivates an account.
	UpdateStatus(ctx context.Context, userID string, status models.UserStatus) error

	// TouchLastLogin stamps the account's last successful authentication.
	TouchLastLogin(ctx context.Context, userID string) error
}

// MealRepository persists per-member daily meal records.
type MealRepository interface {
	// CreateMeal inserts a record. A second record for the same
	// (user, date) yields ErrMealAlreadySubmitted.
	CreateMeal(ctx context.Context, meal models.Meal) (models.Meal, error)

	// ListMeals returns records matching the filter, newest first.
	ListMeals(ctx context.Context, filter MealFilter) ([]models.Meal, error)

	// UpdateStatus moves a record to a new moderation state.
	UpdateStatus(ctx context.Context, mealID string, status models.ApprovalStatus) error
}

// BazarRepository persists shared-grocery purchase entries.
type BazarRepository interface {
	CreateEntry(ctx context.Context, entry models.BazarEntry) (models.BazarEntry, error)
	ListEntries(ctx context.Context, filter BazarFilter) ([]models.BazarEntry, error)
	UpdateStatus(ctx context.Context, entryID string, status models.ApprovalStatus) error
}

// DashboardRepository runs the aggregate queries behind the dashboard.
type DashboardRepository interface {
	// Stats aggregates meal counts and bazar sums. An empty userID scopes
	// the figures to the whole mess; otherwise to one member.
	Stats(ctx context.Context, userID string) (models.DashboardStats, error)

	// MemberBreakdown returns per-member meal counts and approved bazar
	// amounts for the whole mess.
	MemberBreakdown(ctx context.Context) ([]models.MemberBreakdown, error)
}

// MealFilter narrows ListMeals results. Zero values mean "no constraint".
type MealFilter struct {
	UserID string
	Status models.ApprovalStatus
}

// BazarFilter narrows ListEntries results. Zero values mean "no constraint".
type BazarFilter struct {
	UserID string
	Status models.ApprovalStatus
}
