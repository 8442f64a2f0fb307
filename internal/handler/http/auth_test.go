package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bachelormess/mess-manager/internal/service"
	"github.com/bachelormess/mess-manager/internal/store"
	"github.com/bachelormess/mess-manager/models"
)

// ---- register ----

func TestRegister_Created(t *testing.T) {
	auth := &fakeAuthService{
		registerFn: func(_ context.Context, req models.RegisterRequest) (models.User, error) {
			return models.User{ID: "user-1", Name: req.Name, Email: req.Email, Role: models.RoleMember}, nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	rr := doJSON(t, h, http.MethodPost, "/api/auth/register", "", models.RegisterRequest{
		Name: "Rahim", Email: "rahim@mess.example", Password: "secret-pw-1",
	})

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"id":"user-1"`)
	assert.Contains(t, rr.Body.String(), `"role":"member"`)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	auth := &fakeAuthService{
		registerFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyRegistered
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	rr := doJSON(t, h, http.MethodPost, "/api/auth/register", "", models.RegisterRequest{
		Name: "Karim", Email: "karim@mess.example", Password: "secret-pw-1",
	})

	require.Equal(t, http.StatusConflict, rr.Code)
}

func TestRegister_ValidationFailure(t *testing.T) {
	called := false
	auth := &fakeAuthService{
		registerFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
			called = true
			return models.User{}, nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	rr := doJSON(t, h, http.MethodPost, "/api/auth/register", "", models.RegisterRequest{
		Name: "Salam", Email: "not-an-email", Password: "secret-pw-1",
	})

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, called, "service must not see an invalid payload")
}

func TestRegister_MalformedJSON(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &fakeAuthService{}})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

// ---- login ----

func TestLogin_Success(t *testing.T) {
	auth := &fakeAuthService{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.LoginResponse, error) {
			return models.LoginResponse{
				Token: "signed.jwt.token",
				User:  models.User{ID: "user-1", Email: req.Email, Role: models.RoleAdmin},
			}, nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	rr := doJSON(t, h, http.MethodPost, "/api/auth/login", "", models.LoginRequest{
		Email: "admin@mess.example", Password: "pw",
	})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"token":"signed.jwt.token"`)
	assert.Contains(t, rr.Body.String(), `"role":"admin"`)
	assert.NotContains(t, rr.Body.String(), "password")
}

func TestLogin_UnknownEmailAndWrongPassword_SameResponse(t *testing.T) {
	auth := &fakeAuthService{
		loginFn: func(_ context.Context, _ models.LoginRequest) (models.LoginResponse, error) {
			return models.LoginResponse{}, service.ErrInvalidCredentials
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	first := doJSON(t, h, http.MethodPost, "/api/auth/login", "", models.LoginRequest{
		Email: "nobody@mess.example", Password: "pw",
	})
	second := doJSON(t, h, http.MethodPost, "/api/auth/login", "", models.LoginRequest{
		Email: "somebody@mess.example", Password: "wrong",
	})

	require.Equal(t, http.StatusUnauthorized, first.Code)
	require.Equal(t, http.StatusUnauthorized, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String(),
		"responses must not reveal whether the email is registered")
}

func TestLogin_DisabledAccount(t *testing.T) {
	auth := &fakeAuthService{
		loginFn: func(_ context.Context, _ models.LoginRequest) (models.LoginResponse, error) {
			return models.LoginResponse{}, service.ErrAccountDisabled
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	rr := doJSON(t, h, http.MethodPost, "/api/auth/login", "", models.LoginRequest{
		Email: "gone@mess.example", Password: "pw",
	})

	require.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "disabled")
}

// ---- logout / me ----

func TestLogout_RequiresAuth(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &fakeAuthService{}})

	rr := doJSON(t, h, http.MethodPost, "/api/auth/logout", "", nil)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLogout_Acknowledges(t *testing.T) {
	auth := tokenAuth(map[string]models.Token{
		"member-token": {UserID: "user-1", Role: models.RoleMember},
	})
	h := newTestHandler(&service.Services{AuthService: auth})

	rr := doJSON(t, h, http.MethodPost, "/api/auth/logout", "member-token", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"success":true`)
}

func TestMe_ReturnsIdentitySummary(t *testing.T) {
	auth := tokenAuth(map[string]models.Token{
		"member-token": {UserID: "user-1", Role: models.RoleMember},
	})
	auth.identityFn = func(_ context.Context, userID string) (models.User, error) {
		return models.User{ID: userID, Name: "Rahim", Email: "rahim@mess.example", Role: models.RoleMember}, nil
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	rr := doJSON(t, h, http.MethodGet, "/api/auth/me", "member-token", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"id":"user-1"`)
	assert.Contains(t, rr.Body.String(), `"email":"rahim@mess.example"`)
}

func TestMe_MissingAccount(t *testing.T) {
	auth := tokenAuth(map[string]models.Token{
		"stale-token": {UserID: "user-404", Role: models.RoleMember},
	})
	auth.identityFn = func(_ context.Context, _ string) (models.User, error) {
		return models.User{}, store.ErrNoUserWasFound
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	rr := doJSON(t, h, http.MethodGet, "/api/auth/me", "stale-token", nil)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
}
