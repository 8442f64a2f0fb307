package models

import "time"

// BazarEntry is one shared-grocery purchase submitted by a member.
// Amounts are stored in the smallest currency unit (e.g. paisa) to avoid
// floating-point rounding in aggregates.
type BazarEntry struct {
	// ID is the unique identifier of the entry (UUID string).
	ID string `json:"id"`

	// UserID is the member who made the purchase.
	UserID string `json:"user_id"`

	// Date is the calendar day of the purchase.
	Date time.Time `json:"date"`

	// Items is a free-form description of what was bought.
	Items string `json:"items"`

	// Amount is the total spent, in the smallest currency unit.
	Amount int64 `json:"amount"`

	// Status is the moderation state of the entry.
	Status ApprovalStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table associated with the
// BazarEntry model.
func (b BazarEntry) TableName() string {
	return "bazar_entries"
}
