package service

import (
	"context"

	"github.com/bachelormess/mess-manager/internal/adapter"
	"github.com/bachelormess/mess-manager/internal/store"
	"github.com/bachelormess/mess-manager/models"
)

type clientUserAdminService struct {
	adapter adapter.ServerAdapter
}

// NewClientUserAdminService returns a [ClientUserAdminService].
func NewClientUserAdminService(serverAdapter adapter.ServerAdapter) ClientUserAdminService {
	return &clientUserAdminService{adapter: serverAdapter}
}

// List implements [ClientUserAdminService].
func (s *clientUserAdminService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.adapter.ListUsers(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return users, nil
}

// SetRole implements [ClientUserAdminService].
func (s *clientUserAdminService) SetRole(ctx context.Context, userID string, role models.Role) error {
	if err := s.adapter.SetUserRole(ctx, userID, role); err != nil {
		return mapNotFound(err, store.ErrNoUserWasFound)
	}
	return nil
}

// SetStatus implements [ClientUserAdminService].
func (s *clientUserAdminService) SetStatus(ctx context.Context, userID string, status models.UserStatus) error {
	if err := s.adapter.SetUserStatus(ctx, userID, status); err != nil {
		return mapNotFound(err, store.ErrNoUserWasFound)
	}
	return nil
}
