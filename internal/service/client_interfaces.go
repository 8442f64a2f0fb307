package service

import (
	"context"
	"time"

	"github.com/bachelormess/mess-manager/internal/adapter"
	"github.com/bachelormess/mess-manager/internal/session"
	"github.com/bachelormess/mess-manager/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService is the client-side contract for account and session
// lifecycle. It drives the process-wide session store; screens never touch
// the adapter token directly.
type ClientAuthService interface {
	// Register creates a new account on the server. The caller still has
	// to log in afterwards; registration does not start a session.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates against the server and, on success, installs
	// the returned identity and token into the session store.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// Logout clears the local session and fires the server logout without
	// waiting for its result.
	Logout(ctx context.Context)

	// Bootstrap resolves the initial session state from local storage and
	// confirms a restored token against the server. A token the server no
	// longer accepts degrades to the anonymous state; a network failure
	// keeps the restored session so the app stays usable offline.
	Bootstrap(ctx context.Context) session.Snapshot
}

// ClientMealService exposes meal tracking to the screens. Submissions that
// cannot reach the server are parked in the offline queue.
type ClientMealService interface {
	// Submit sends a meal record for a day. When the server is
	// unreachable the request is queued locally and ErrSubmissionQueued
	// is returned.
	Submit(ctx context.Context, req models.MealRequest) (models.Meal, error)

	List(ctx context.Context, query adapter.ListQuery) ([]models.Meal, error)
	SetStatus(ctx context.Context, mealID string, status models.ApprovalStatus) error
}

// ClientBazarService exposes bazar expense tracking to the screens, with the
// same offline queueing behavior as ClientMealService.
type ClientBazarService interface {
	Submit(ctx context.Context, req models.BazarRequest) (models.BazarEntry, error)
	List(ctx context.Context, query adapter.ListQuery) ([]models.BazarEntry, error)
	SetStatus(ctx context.Context, entryID string, status models.ApprovalStatus) error
}

// ClientDashboardService fetches the aggregated figures. The server decides
// the scope from the session's role.
type ClientDashboardService interface {
	Stats(ctx context.Context) (models.DashboardStats, error)
}

// ClientUserAdminService exposes the member administration operations.
// All of them require an admin session; the server enforces that.
type ClientUserAdminService interface {
	List(ctx context.Context) ([]models.User, error)
	SetRole(ctx context.Context, userID string, role models.Role) error
	SetStatus(ctx context.Context, userID string, status models.UserStatus) error
}

// OfflineFlushJob is the background worker that drains the offline
// submission queue while a session is active.
type OfflineFlushJob interface {
	// Start launches the background goroutine flushing the queue every
	// interval. A non-positive interval falls back to a default. Any
	// previously running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the goroutine to exit and blocks until it has.
	Stop()

	// Run implements workers.Worker: it starts the job with the interval
	// it was constructed with.
	Run()
}
