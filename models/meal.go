package models

import "time"

// ApprovalStatus is the moderation state shared by meals and bazar
// entries. Submissions start pending and are moved to approved or
// rejected by an admin.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "pending"
	StatusApproved ApprovalStatus = "approved"
	StatusRejected ApprovalStatus = "rejected"
)

// Valid reports whether s is a known approval status.
func (s ApprovalStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Meal is one member's meal record for a single calendar day. A member
// has at most one record per day; the database enforces the uniqueness
// of (user_id, meal_date).
type Meal struct {
	// ID is the unique identifier of the record (UUID string).
	ID string `json:"id"`

	// UserID is the owner of the record.
	UserID string `json:"user_id"`

	// Date is the calendar day the meals were taken. Only the date part
	// is significant; time-of-day is normalized away at the boundary.
	Date time.Time `json:"date"`

	// Breakfast, Lunch and Dinner mark which meals were taken that day.
	Breakfast bool `json:"breakfast"`
	Lunch     bool `json:"lunch"`
	Dinner    bool `json:"dinner"`

	// Status is the moderation state of the record.
	Status ApprovalStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Count returns the number of meals taken on the record's day (0–3).
func (m Meal) Count() int {
	n := 0
	if m.Breakfast {
		n++
	}
	if m.Lunch {
		n++
	}
	if m.Dinner {
		n++
	}
	return n
}

// TableName returns the name of the database table associated with the
// Meal model.
func (m Meal) TableName() string {
	return "meals"
}
