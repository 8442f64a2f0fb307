package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bachelormess/mess-manager/internal/logger"
	"github.com/bachelormess/mess-manager/models"
)

// ─────────────────────────────────────────────
// List
// ─────────────────────────────────────────────

func TestUserAdminService_List_StripsDigests(t *testing.T) {
	repo := &mockUserRepository{
		listFn: func(_ context.Context) ([]models.User, error) {
			return []models.User{
				{ID: "user-1", PasswordDigest: "$2a$10$abc"},
				{ID: "user-2", PasswordDigest: "$2a$10$def"},
			}, nil
		},
	}
	svc := NewUserAdminService(repo, logger.Nop())

	users, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.Empty(t, u.PasswordDigest)
	}
}

// ─────────────────────────────────────────────
// SetRole
// ─────────────────────────────────────────────

func TestUserAdminService_SetRole(t *testing.T) {
	tests := []struct {
		name      string
		actorRole models.Role
		role      models.Role
		wantErr   error
	}{
		{name: "admin promotes member to admin", actorRole: models.RoleAdmin, role: models.RoleAdmin},
		{name: "admin demotes admin to member", actorRole: models.RoleAdmin, role: models.RoleMember},
		{name: "super admin grants super admin", actorRole: models.RoleSuperAdmin, role: models.RoleSuperAdmin},
		{name: "super admin grants admin", actorRole: models.RoleSuperAdmin, role: models.RoleAdmin},
		{name: "admin may not grant super admin", actorRole: models.RoleAdmin, role: models.RoleSuperAdmin, wantErr: ErrRoleNotPermitted},
		{name: "member may not assign roles", actorRole: models.RoleMember, role: models.RoleMember, wantErr: ErrRoleNotPermitted},
		{name: "unknown role is rejected", actorRole: models.RoleSuperAdmin, role: models.Role("owner"), wantErr: ErrInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated := false
			repo := &mockUserRepository{
				updateRoleFn: func(_ context.Context, userID string, role models.Role) error {
					updated = true
					assert.Equal(t, "user-1", userID)
					assert.Equal(t, tt.role, role)
					return nil
				},
			}
			svc := NewUserAdminService(repo, logger.Nop())

			err := svc.SetRole(context.Background(), tt.actorRole, "user-1", tt.role)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.False(t, updated, "repository must not be touched on a rejected assignment")
				return
			}
			require.NoError(t, err)
			assert.True(t, updated)
		})
	}
}

// ─────────────────────────────────────────────
// SetStatus
// ─────────────────────────────────────────────

func TestUserAdminService_SetStatus_Success(t *testing.T) {
	var gotStatus models.UserStatus
	repo := &mockUserRepository{
		updateStatusFn: func(_ context.Context, userID string, status models.UserStatus) error {
			assert.Equal(t, "user-2", userID)
			gotStatus = status
			return nil
		},
	}
	svc := NewUserAdminService(repo, logger.Nop())

	err := svc.SetStatus(context.Background(), "user-2", models.UserStatusInactive)

	require.NoError(t, err)
	assert.Equal(t, models.UserStatusInactive, gotStatus)
}

func TestUserAdminService_SetStatus_UnknownStatus(t *testing.T) {
	svc := NewUserAdminService(&mockUserRepository{}, logger.Nop())

	err := svc.SetStatus(context.Background(), "user-2", models.UserStatus("banned"))

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}
