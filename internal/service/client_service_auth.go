package service

import (
	"context"
	"errors"

	"github.com/bachelormess/mess-manager/internal/adapter"
	"github.com/bachelormess/mess-manager/internal/logger"
	"github.com/bachelormess/mess-manager/internal/session"
	"github.com/bachelormess/mess-manager/internal/store"
	"github.com/bachelormess/mess-manager/models"
)

type clientAuthService struct {
	session *session.Store
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

// NewClientAuthService wires the server adapter to the process-wide session
// store. The adapter keeps the token for outbound requests; the session
// store keeps it for durability and for the route guard.
func NewClientAuthService(sessionStore *session.Store, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		session: sessionStore,
		adapter: serverAdapter,
		logger:  logger,
	}
}

// Register implements [ClientAuthService].
func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	user, err := a.adapter.Register(ctx, req)
	if err != nil {
		if errors.Is(err, adapter.ErrConflict) {
			return models.User{}, store.ErrEmailAlreadyRegistered
		}
		return models.User{}, mapAdapterError(err)
	}
	return user, nil
}

// Login implements [ClientAuthService]. The adapter stores the token for
// its own outbound requests; the session store persists it and notifies
// the screens.
func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	resp, err := a.adapter.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, adapter.ErrUnauthorized):
			return models.User{}, ErrInvalidCredentials
		case errors.Is(err, adapter.ErrForbidden):
			return models.User{}, ErrAccountDisabled
		}
		return models.User{}, mapAdapterError(err)
	}

	a.session.SetAuth(ctx, resp.User, resp.Token)
	a.logger.Info().Str("user_id", resp.User.ID).Msg("logged in")

	return resp.User, nil
}

// Logout implements [ClientAuthService]. The session store clears local
// state synchronously and retires the token on the server in the
// background.
func (a *clientAuthService) Logout(ctx context.Context) {
	a.session.Logout(ctx)
	a.logger.Info().Msg("logged out")
}

// Bootstrap implements [ClientAuthService].
func (a *clientAuthService) Bootstrap(ctx context.Context) session.Snapshot {
	snapshot := a.session.Bootstrap(ctx)
	if !snapshot.Authenticated() {
		return snapshot
	}

	a.adapter.SetToken(snapshot.Token)

	if _, err := a.adapter.Me(ctx); err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			a.logger.Info().Msg("stored token no longer accepted, starting anonymous")
			return a.session.Logout(ctx)
		}
		// server unreachable; keep the restored session for offline use
		a.logger.Warn().Err(err).Msg("could not confirm restored session")
	}

	return snapshot
}
