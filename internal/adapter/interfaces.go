// Package adapter is the client's gateway to the mess-manager server.
// It translates Go method calls into REST requests and maps HTTP failure
// statuses to the package's sentinel errors.
package adapter

import (
	"context"

	"github.com/bachelormess/mess-manager/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ListQuery narrows the server-side meal and bazar listings. Zero values
// mean "no constraint"; non-admin sessions are scoped server-side
// regardless of UserID.
type ListQuery struct {
	UserID string
	Status models.ApprovalStatus
}

// ServerAdapter is the client-side contract for talking to the server.
// Implementations hold the bearer token between calls; SetToken/Token
// are not safe for unsynchronised concurrent use with in-flight requests.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to subsequent
	// authenticated requests. An empty string clears it.
	SetToken(token string)

	// Token returns the bearer token currently held by the adapter.
	Token() string

	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates and, on success, stores the returned token in
	// the adapter before returning the full response.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// Logout tells the server the session is over and clears the stored
	// token regardless of the server's answer.
	Logout(ctx context.Context) error

	// Me fetches the identity summary behind the current token. Used at
	// bootstrap to confirm a restored token is still accepted.
	Me(ctx context.Context) (models.User, error)

	SubmitMeal(ctx context.Context, req models.MealRequest) (models.Meal, error)
	ListMeals(ctx context.Context, query ListQuery) ([]models.Meal, error)
	SetMealStatus(ctx context.Context, mealID string, status models.ApprovalStatus) error

	SubmitBazar(ctx context.Context, req models.BazarRequest) (models.BazarEntry, error)
	ListBazar(ctx context.Context, query ListQuery) ([]models.BazarEntry, error)
	SetBazarStatus(ctx context.Context, entryID string, status models.ApprovalStatus) error

	Dashboard(ctx context.Context) (models.DashboardStats, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	SetUserRole(ctx context.Context, userID string, role models.Role) error
	SetUserStatus(ctx context.Context, userID string, status models.UserStatus) error
}
