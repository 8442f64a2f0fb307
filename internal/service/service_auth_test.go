package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/bachelormess/mess-manager/internal/config"
	"github.com/bachelormess/mess-manager/internal/logger"
	"github.com/bachelormess/mess-manager/internal/store"
	"github.com/bachelormess/mess-manager/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn       func(ctx context.Context, user models.User) (models.User, error)
	findByEmailFn  func(ctx context.Context, email string) (models.User, error)
	findByIDFn     func(ctx context.Context, userID string) (models.User, error)
	listFn         func(ctx context.Context) ([]models.User, error)
	updateRoleFn   func(ctx context.Context, userID string, role models.Role) error
	updateStatusFn func(ctx context.Context, userID string, status models.UserStatus) error
	touchLoginFn   func(ctx context.Context, userID string) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, userID)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *mockUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) UpdateRole(ctx context.Context, userID string, role models.Role) error {
	if m.updateRoleFn != nil {
		return m.updateRoleFn(ctx, userID, role)
	}
	return nil
}

func (m *mockUserRepository) UpdateStatus(ctx context.Context, userID string, status models.UserStatus) error {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, userID, status)
	}
	return nil
}

func (m *mockUserRepository) TouchLastLogin(ctx context.Context, userID string) error {
	if m.touchLoginFn != nil {
		return m.touchLoginFn(ctx, userID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestAuthService(repo *mockUserRepository) AuthService {
	return NewAuthService(repo, config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "mess-manager-test",
		TokenDuration: time.Hour,
	}, logger.Nop())
}

func digestOf(t *testing.T, password string) string {
	t.Helper()
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(digest)
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	var persisted models.User
	repo := &mockUserRepository{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			persisted = user
			user.ID = "user-1"
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	got, err := svc.Register(context.Background(), models.RegisterRequest{
		Name:     "Rahim",
		Email:    "  Rahim@Mess.Example  ",
		Password: "secret-pw",
	})

	require.NoError(t, err)
	assert.Equal(t, "user-1", got.ID)
	assert.Equal(t, "rahim@mess.example", persisted.Email)
	assert.Equal(t, models.RoleMember, persisted.Role)
	assert.Equal(t, models.UserStatusActive, persisted.Status)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(persisted.PasswordDigest), []byte("secret-pw")))
	assert.Empty(t, got.PasswordDigest, "responses must never carry the digest")
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Register(context.Background(), models.RegisterRequest{Email: "a@b.c"})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyRegistered
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Name:     "Karim",
		Email:    "karim@mess.example",
		Password: "pw",
	})

	require.ErrorIs(t, err, store.ErrEmailAlreadyRegistered)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	touched := false
	repo := &mockUserRepository{
		findByEmailFn: func(_ context.Context, email string) (models.User, error) {
			return models.User{
				ID:             "user-7",
				Name:           "Salam",
				Email:          email,
				Role:           models.RoleAdmin,
				Status:         models.UserStatusActive,
				PasswordDigest: digestOf(t, "correct-pw"),
			}, nil
		},
		touchLoginFn: func(_ context.Context, userID string) error {
			touched = true
			assert.Equal(t, "user-7", userID)
			return nil
		},
	}
	svc := newTestAuthService(repo)

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "salam@mess.example",
		Password: "correct-pw",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "user-7", resp.User.ID)
	assert.Equal(t, models.RoleAdmin, resp.User.Role)
	assert.Empty(t, resp.User.PasswordDigest)
	assert.True(t, touched)

	// the issued token round-trips through the same service
	token, err := svc.ParseToken(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-7", token.UserID)
	assert.Equal(t, models.RoleAdmin, token.Role)
}

func TestAuthService_Login_UnknownEmailAndWrongPassword_Indistinguishable(t *testing.T) {
	unknownRepo := &mockUserRepository{
		findByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	mismatchRepo := &mockUserRepository{
		findByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{
				ID:             "user-9",
				Status:         models.UserStatusActive,
				PasswordDigest: digestOf(t, "other-pw"),
			}, nil
		},
	}

	_, errUnknown := newTestAuthService(unknownRepo).Login(context.Background(), models.LoginRequest{
		Email: "nobody@mess.example", Password: "pw",
	})
	_, errMismatch := newTestAuthService(mismatchRepo).Login(context.Background(), models.LoginRequest{
		Email: "somebody@mess.example", Password: "pw",
	})

	require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	require.ErrorIs(t, errMismatch, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errMismatch.Error(),
		"unknown email and wrong password must be indistinguishable")
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	repo := &mockUserRepository{
		findByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{
				ID:             "user-3",
				Status:         models.UserStatusInactive,
				PasswordDigest: digestOf(t, "pw"),
			}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email: "gone@mess.example", Password: "pw",
	})

	require.ErrorIs(t, err, ErrAccountDisabled)
}

func TestAuthService_Login_TouchFailureDoesNotBlockLogin(t *testing.T) {
	repo := &mockUserRepository{
		findByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{
				ID:             "user-5",
				Status:         models.UserStatusActive,
				PasswordDigest: digestOf(t, "pw"),
			}, nil
		},
		touchLoginFn: func(_ context.Context, _ string) error {
			return errors.New("stamp failed")
		},
	}
	svc := newTestAuthService(repo)

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		Email: "busy@mess.example", Password: "pw",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

// ─────────────────────────────────────────────
// Identity
// ─────────────────────────────────────────────

func TestAuthService_Identity_StripsDigest(t *testing.T) {
	repo := &mockUserRepository{
		findByIDFn: func(_ context.Context, userID string) (models.User, error) {
			return models.User{ID: userID, Name: "Rahim", PasswordDigest: "$2a$10$abc"}, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.Identity(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Empty(t, user.PasswordDigest)
}

func TestAuthService_Identity_UnknownUser(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Identity(context.Background(), "user-404")

	require.ErrorIs(t, err, store.ErrNoUserWasFound)
}

// ─────────────────────────────────────────────
// ParseToken
// ─────────────────────────────────────────────

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.ParseToken(context.Background(), "not-a-token")

	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
