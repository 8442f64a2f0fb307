package models

import "time"

// Role defines the authorization level of a user account. Roles form a
// two-tier hierarchy above the default: a super admin satisfies every
// admin-gated check, while an admin does not satisfy super-admin-gated
// checks. All role comparisons must go through [Role.Satisfies]; call
// sites never compare role strings directly.
type Role string

const (
	// RoleMember is the default role assigned at registration.
	RoleMember Role = "member"

	// RoleAdmin may manage meals, bazar entries and member accounts.
	RoleAdmin Role = "admin"

	// RoleSuperAdmin may additionally promote accounts to admin or
	// super admin.
	RoleSuperAdmin Role = "super_admin"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleMember, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// Satisfies reports whether a holder of role r passes a check that
// requires the given role. The hierarchy is strict: super_admin covers
// admin, nothing else is implied.
func (r Role) Satisfies(required Role) bool {
	if r == required {
		return true
	}
	return r == RoleSuperAdmin && required == RoleAdmin
}

// UserStatus is the lifecycle state of an account. Accounts are never
// physically deleted; deactivation via status is the soft-delete path.
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// Valid reports whether s is a known account status.
func (s UserStatus) Valid() bool {
	return s == UserStatusActive || s == UserStatusInactive
}

// User represents a registered mess member used for authentication and
// authorization. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// ID is the stable opaque identifier of the user (UUID string).
	ID string `json:"id"`

	// Name is the display name of the user. Non-sensitive, may be shown in UI.
	Name string `json:"name"`

	// Email is the unique login identifier. Stored lowercased and trimmed;
	// uniqueness is enforced by the database.
	Email string `json:"email"`

	// Phone is an optional contact number.
	Phone string `json:"phone,omitempty"`

	// Role governs which routes and screens the user may reach.
	Role Role `json:"role"`

	// Status marks whether the account may log in.
	Status UserStatus `json:"status"`

	// PasswordDigest is the bcrypt digest of the password. Never serialized,
	// never logged; populated only at the persistence layer.
	PasswordDigest string `json:"-"`

	// CreatedAt is when the account was registered.
	CreatedAt time.Time `json:"created_at"`

	// LastLoginAt is when the user last authenticated successfully.
	// Zero when the user has never logged in.
	LastLoginAt time.Time `json:"last_login_at,omitempty"`
}

// Summary returns a copy of u safe for transmission to clients: the
// credential digest is stripped.
func (u User) Summary() User {
	u.PasswordDigest = ""
	return u
}

// TableName returns the name of the database table associated with the
// User model.
func (u User) TableName() string {
	return "users"
}
