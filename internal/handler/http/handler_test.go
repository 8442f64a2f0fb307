package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bachelormess/mess-manager/internal/logger"
	"github.com/bachelormess/mess-manager/internal/service"
	"github.com/bachelormess/mess-manager/internal/store"
	"github.com/bachelormess/mess-manager/internal/validators"
	"github.com/bachelormess/mess-manager/models"
)

// ---- Fakes for the service layer ----

type fakeAuthService struct {
	registerFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn    func(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	parseFn    func(ctx context.Context, tokenString string) (models.Token, error)
	identityFn func(ctx context.Context, userID string) (models.User, error)
}

func (f *fakeAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if f.registerFn != nil {
		return f.registerFn(ctx, req)
	}
	return models.User{}, service.ErrInvalidDataProvided
}

func (f *fakeAuthService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, req)
	}
	return models.LoginResponse{}, service.ErrInvalidCredentials
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if f.parseFn != nil {
		return f.parseFn(ctx, tokenString)
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

func (f *fakeAuthService) Identity(ctx context.Context, userID string) (models.User, error) {
	if f.identityFn != nil {
		return f.identityFn(ctx, userID)
	}
	return models.User{ID: userID, Role: models.RoleMember}, nil
}

type fakeMealService struct {
	submitFn    func(ctx context.Context, userID string, req models.MealRequest) (models.Meal, error)
	listFn      func(ctx context.Context, filter store.MealFilter) ([]models.Meal, error)
	setStatusFn func(ctx context.Context, mealID string, status models.ApprovalStatus) error
}

func (f *fakeMealService) Submit(ctx context.Context, userID string, req models.MealRequest) (models.Meal, error) {
	if f.submitFn != nil {
		return f.submitFn(ctx, userID, req)
	}
	return models.Meal{}, nil
}

func (f *fakeMealService) List(ctx context.Context, filter store.MealFilter) ([]models.Meal, error) {
	if f.listFn != nil {
		return f.listFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeMealService) SetStatus(ctx context.Context, mealID string, status models.ApprovalStatus) error {
	if f.setStatusFn != nil {
		return f.setStatusFn(ctx, mealID, status)
	}
	return nil
}

type fakeBazarService struct {
	submitFn    func(ctx context.Context, userID string, req models.BazarRequest) (models.BazarEntry, error)
	listFn      func(ctx context.Context, filter store.BazarFilter) ([]models.BazarEntry, error)
	setStatusFn func(ctx context.Context, entryID string, status models.ApprovalStatus) error
}

func (f *fakeBazarService) Submit(ctx context.Context, userID string, req models.BazarRequest) (models.BazarEntry, error) {
	if f.submitFn != nil {
		return f.submitFn(ctx, userID, req)
	}
	return models.BazarEntry{}, nil
}

func (f *fakeBazarService) List(ctx context.Context, filter store.BazarFilter) ([]models.BazarEntry, error) {
	if f.listFn != nil {
		return f.listFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeBazarService) SetStatus(ctx context.Context, entryID string, status models.ApprovalStatus) error {
	if f.setStatusFn != nil {
		return f.setStatusFn(ctx, entryID, status)
	}
	return nil
}

type fakeDashboardService struct {
	memberFn func(ctx context.Context, userID string) (models.DashboardStats, error)
	messFn   func(ctx context.Context) (models.DashboardStats, error)
}

func (f *fakeDashboardService) MemberStats(ctx context.Context, userID string) (models.DashboardStats, error) {
	if f.memberFn != nil {
		return f.memberFn(ctx, userID)
	}
	return models.DashboardStats{}, nil
}

func (f *fakeDashboardService) MessStats(ctx context.Context) (models.DashboardStats, error) {
	if f.messFn != nil {
		return f.messFn(ctx)
	}
	return models.DashboardStats{}, nil
}

type fakeUserAdminService struct {
	listFn      func(ctx context.Context) ([]models.User, error)
	setRoleFn   func(ctx context.Context, actorRole models.Role, userID string, role models.Role) error
	setStatusFn func(ctx context.Context, userID string, status models.UserStatus) error
}

func (f *fakeUserAdminService) List(ctx context.Context) ([]models.User, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return nil, nil
}

func (f *fakeUserAdminService) SetRole(ctx context.Context, actorRole models.Role, userID string, role models.Role) error {
	if f.setRoleFn != nil {
		return f.setRoleFn(ctx, actorRole, userID, role)
	}
	return nil
}

func (f *fakeUserAdminService) SetStatus(ctx context.Context, userID string, status models.UserStatus) error {
	if f.setStatusFn != nil {
		return f.setStatusFn(ctx, userID, status)
	}
	return nil
}

// ---- Helpers ----

// tokenAuth returns a fakeAuthService whose ParseToken accepts raw tokens
// of the form registered in the users map and rejects everything else.
func tokenAuth(users map[string]models.Token) *fakeAuthService {
	return &fakeAuthService{
		parseFn: func(_ context.Context, tokenString string) (models.Token, error) {
			token, ok := users[tokenString]
			if !ok {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return token, nil
		},
	}
}

func newTestHandler(services *service.Services) *Handler {
	return &Handler{
		services:  services,
		validator: validators.NewRequestValidator(),
		logger:    logger.Nop(),
	}
}

// injectNopLogger puts a nop logger into the request context for tests
// that exercise a handler or middleware outside the full router stack.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

// doJSON runs a request with an optional JSON body and bearer token
// through the full router built by Init.
func doJSON(t *testing.T, h *Handler, method, target, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}
