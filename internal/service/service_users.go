package service

import (
	"context"
	"fmt"

	"github.com/bachelormess/mess-manager/internal/logger"
	"github.com/bachelormess/mess-manager/internal/store"
	"github.com/bachelormess/mess-manager/models"
)

// userAdminService is the concrete implementation of UserAdminService.
type userAdminService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserAdminService(userRepository store.UserRepository, logger *logger.Logger) UserAdminService {
	return &userAdminService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// List returns all accounts as identity summaries, ordered by creation time.
func (s *userAdminService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("user listing ended with error")
		return nil, fmt.Errorf("user listing ended with error: %w", err)
	}

	for i := range users {
		users[i] = users[i].Summary()
	}

	return users, nil
}

// SetRole assigns a role to an account on behalf of actorRole.
//
// Assigning member or admin requires an actor that satisfies admin;
// assigning super_admin requires a super_admin actor. Violations yield
// ErrRoleNotPermitted.
func (s *userAdminService) SetRole(ctx context.Context, actorRole models.Role, userID string, role models.Role) error {
	log := logger.FromContext(ctx)

	if userID == "" || !role.Valid() {
		log.Error().Str("user_id", userID).Str("role", string(role)).Msg("invalid role assignment")
		return ErrInvalidDataProvided
	}

	required := models.RoleAdmin
	if role == models.RoleSuperAdmin {
		required = models.RoleSuperAdmin
	}
	if !actorRole.Satisfies(required) {
		log.Error().
			Str("actor_role", string(actorRole)).
			Str("requested_role", string(role)).
			Msg("role assignment not permitted")
		return ErrRoleNotPermitted
	}

	if err := s.userRepository.UpdateRole(ctx, userID, role); err != nil {
		log.Err(err).Str("user_id", userID).Msg("role update ended with error")
		return fmt.Errorf("role update ended with error: %w", err)
	}

	return nil
}

// SetStatus activates or deactivates an account. Deactivation is the
// soft-delete path; accounts are never removed.
func (s *userAdminService) SetStatus(ctx context.Context, userID string, status models.UserStatus) error {
	log := logger.FromContext(ctx)

	if userID == "" || !status.Valid() {
		log.Error().Str("user_id", userID).Str("status", string(status)).Msg("invalid user status update")
		return ErrInvalidDataProvided
	}

	if err := s.userRepository.UpdateStatus(ctx, userID, status); err != nil {
		log.Err(err).Str("user_id", userID).Msg("user status update ended with error")
		return fmt.Errorf("user status update ended with error: %w", err)
	}

	return nil
}
