package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Satisfies(t *testing.T) {
	tests := []struct {
		name     string
		holder   Role
		required Role
		want     bool
	}{
		{"member satisfies member", RoleMember, RoleMember, true},
		{"member does not satisfy admin", RoleMember, RoleAdmin, false},
		{"member does not satisfy super_admin", RoleMember, RoleSuperAdmin, false},
		{"admin satisfies admin", RoleAdmin, RoleAdmin, true},
		{"admin does not satisfy super_admin", RoleAdmin, RoleSuperAdmin, false},
		{"admin does not satisfy member", RoleAdmin, RoleMember, false},
		{"super_admin satisfies admin", RoleSuperAdmin, RoleAdmin, true},
		{"super_admin satisfies super_admin", RoleSuperAdmin, RoleSuperAdmin, true},
		{"super_admin does not satisfy member", RoleSuperAdmin, RoleMember, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.holder.Satisfies(tt.required))
		})
	}
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleMember.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleSuperAdmin.Valid())
	assert.False(t, Role("root").Valid())
	assert.False(t, Role("").Valid())
}

func TestUser_Summary(t *testing.T) {
	u := User{ID: "u1", Email: "a@b.c", PasswordDigest: "$2a$10$digest"}
	s := u.Summary()
	assert.Empty(t, s.PasswordDigest)
	assert.Equal(t, "u1", s.ID)
	// The original is untouched.
	assert.NotEmpty(t, u.PasswordDigest)
}

func TestMeal_Count(t *testing.T) {
	assert.Equal(t, 0, Meal{}.Count())
	assert.Equal(t, 2, Meal{Breakfast: true, Dinner: true}.Count())
	assert.Equal(t, 3, Meal{Breakfast: true, Lunch: true, Dinner: true}.Count())
}
