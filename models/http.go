package models

import "time"

// RegisterRequest is the payload accepted by POST /api/auth/register.
// Any client-supplied role is deliberately absent: accounts are always
// created as members and promoted only through an admin action.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

// LoginRequest is the payload accepted by POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned on successful authentication. User is an
// identity summary: the credential digest is never included.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// MessageResponse is the generic body for acknowledgements and errors.
type MessageResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success,omitempty"`
}

// MealRequest is the payload for submitting or updating a meal record.
type MealRequest struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Breakfast bool   `json:"breakfast"`
	Lunch     bool   `json:"lunch"`
	Dinner    bool   `json:"dinner"`
}

// BazarRequest is the payload for submitting a bazar entry.
type BazarRequest struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Items  string `json:"items"`
	Amount int64  `json:"amount"`
}

// StatusUpdateRequest changes the moderation state of a meal record or
// bazar entry.
type StatusUpdateRequest struct {
	Status ApprovalStatus `json:"status"`
}

// RoleUpdateRequest changes an account's role.
type RoleUpdateRequest struct {
	Role Role `json:"role"`
}

// UserStatusUpdateRequest activates or deactivates an account.
type UserStatusUpdateRequest struct {
	Status UserStatus `json:"status"`
}

// RequestDate parses a YYYY-MM-DD date string as used by meal and bazar
// payloads, in UTC with the time-of-day dropped.
func RequestDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
