package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bachelormess/mess-manager/internal/adapter"
	"github.com/bachelormess/mess-manager/internal/logger"
	"github.com/bachelormess/mess-manager/internal/mock"
	"github.com/bachelormess/mess-manager/internal/session"
	"github.com/bachelormess/mess-manager/internal/store"
	"github.com/bachelormess/mess-manager/models"
)

// newTestClientAuth builds a clientAuthService around mocked collaborators.
// The session store is real; only its durable repository and the server
// adapter are mocked.
func newTestClientAuth(ctrl *gomock.Controller) (*clientAuthService, *mock.MockServerAdapter, *mock.MockLocalSessionRepository, *session.Store) {
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSessions := mock.NewMockLocalSessionRepository(ctrl)

	sessionStore := session.NewStore(mockSessions, nil, logger.Nop())
	svc := NewClientAuthService(sessionStore, mockAdapter, logger.Nop()).(*clientAuthService)

	return svc, mockAdapter, mockSessions, sessionStore
}

func clientTestUser() models.User {
	return models.User{ID: "user-1", Name: "Rahim", Email: "rahim@mess.example", Role: models.RoleMember}
}

// ── Register ────────────────────────────────────────────────────────────────

func TestClientAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _ := newTestClientAuth(ctrl)
	ctx := context.Background()

	req := models.RegisterRequest{Name: "Rahim", Email: "rahim@mess.example", Password: "secret-pw"}
	mockAdapter.EXPECT().Register(ctx, req).Return(clientTestUser(), nil)

	user, err := svc.Register(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
}

func TestClientAuthService_Register_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _ := newTestClientAuth(ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Register(ctx, gomock.Any()).Return(models.User{}, adapter.ErrConflict)

	_, err := svc.Register(ctx, models.RegisterRequest{Email: "taken@mess.example"})

	require.ErrorIs(t, err, store.ErrEmailAlreadyRegistered)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_InstallsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions, sessionStore := newTestClientAuth(ctrl)
	ctx := context.Background()

	req := models.LoginRequest{Email: "rahim@mess.example", Password: "secret-pw"}

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, req).Return(models.LoginResponse{
			Token: "signed.jwt.token",
			User:  clientTestUser(),
		}, nil),
		mockSessions.EXPECT().SaveSession(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, record models.SessionRecord) error {
				assert.Equal(t, "signed.jwt.token", record.Token)
				assert.Equal(t, "user-1", record.Identity.ID)
				return nil
			},
		),
	)

	user, err := svc.Login(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)

	snapshot := sessionStore.Current()
	assert.Equal(t, session.StateAuthenticated, snapshot.State)
	assert.Equal(t, "signed.jwt.token", snapshot.Token)
}

func TestClientAuthService_Login_BadCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, sessionStore := newTestClientAuth(ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.LoginResponse{}, adapter.ErrUnauthorized)

	_, err := svc.Login(ctx, models.LoginRequest{Email: "x@y.example", Password: "wrong"})

	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NotEqual(t, session.StateAuthenticated, sessionStore.Current().State)
}

func TestClientAuthService_Login_DisabledAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _ := newTestClientAuth(ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.LoginResponse{}, adapter.ErrForbidden)

	_, err := svc.Login(ctx, models.LoginRequest{Email: "gone@mess.example", Password: "pw"})

	require.ErrorIs(t, err, ErrAccountDisabled)
}

// ── Logout ──────────────────────────────────────────────────────────────────

func TestClientAuthService_Logout_ClearsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions, sessionStore := newTestClientAuth(ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.LoginResponse{Token: "t", User: clientTestUser()}, nil)
	mockSessions.EXPECT().SaveSession(ctx, gomock.Any()).Return(nil)
	mockSessions.EXPECT().ClearSession(ctx).Return(nil)

	_, err := svc.Login(ctx, models.LoginRequest{Email: "rahim@mess.example", Password: "pw"})
	require.NoError(t, err)

	svc.Logout(ctx)

	assert.Equal(t, session.StateAnonymous, sessionStore.Current().State)
}

// ── Bootstrap ───────────────────────────────────────────────────────────────

func TestClientAuthService_Bootstrap_RestoresAndConfirms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions, _ := newTestClientAuth(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockSessions.EXPECT().LoadSession(ctx).Return(models.SessionRecord{
			Token:    "stored-token",
			Identity: clientTestUser(),
		}, nil),
		mockAdapter.EXPECT().SetToken("stored-token"),
		mockAdapter.EXPECT().Me(ctx).Return(clientTestUser(), nil),
	)

	snapshot := svc.Bootstrap(ctx)

	assert.Equal(t, session.StateAuthenticated, snapshot.State)
	assert.Equal(t, "stored-token", snapshot.Token)
}

func TestClientAuthService_Bootstrap_NoRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions, _ := newTestClientAuth(ctrl)
	ctx := context.Background()

	mockSessions.EXPECT().LoadSession(ctx).Return(models.SessionRecord{}, store.ErrLocalSessionNotFound)

	snapshot := svc.Bootstrap(ctx)

	assert.Equal(t, session.StateAnonymous, snapshot.State)
}

func TestClientAuthService_Bootstrap_RejectedTokenDegradesToAnonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions, sessionStore := newTestClientAuth(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockSessions.EXPECT().LoadSession(ctx).Return(models.SessionRecord{
			Token:    "expired-token",
			Identity: clientTestUser(),
		}, nil),
		mockAdapter.EXPECT().SetToken("expired-token"),
		mockAdapter.EXPECT().Me(ctx).Return(models.User{}, adapter.ErrUnauthorized),
		mockSessions.EXPECT().ClearSession(ctx).Return(nil),
	)

	snapshot := svc.Bootstrap(ctx)

	assert.Equal(t, session.StateAnonymous, snapshot.State)
	assert.Equal(t, session.StateAnonymous, sessionStore.Current().State)
}

func TestClientAuthService_Bootstrap_OfflineKeepsRestoredSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions, _ := newTestClientAuth(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockSessions.EXPECT().LoadSession(ctx).Return(models.SessionRecord{
			Token:    "stored-token",
			Identity: clientTestUser(),
		}, nil),
		mockAdapter.EXPECT().SetToken("stored-token"),
		mockAdapter.EXPECT().Me(ctx).Return(models.User{}, adapter.ErrServerUnavailable),
	)

	snapshot := svc.Bootstrap(ctx)

	assert.Equal(t, session.StateAuthenticated, snapshot.State, "a network failure must not log the user out")
}
