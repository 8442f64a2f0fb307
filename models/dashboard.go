package models

// DashboardStats aggregates meal and bazar figures for the dashboard
// screen. For members the figures cover only their own records; for
// admins they cover the whole mess and include the per-member breakdown.
type DashboardStats struct {
	// TotalMeals is the number of individual meals (not records) counted
	// across approved records.
	TotalMeals int64 `json:"total_meals"`

	// PendingMealRecords and RejectedMealRecords count records by
	// moderation state.
	PendingMealRecords  int64 `json:"pending_meal_records"`
	RejectedMealRecords int64 `json:"rejected_meal_records"`

	// ApprovedBazarAmount and PendingBazarAmount sum entry amounts
	// (smallest currency unit) by moderation state.
	ApprovedBazarAmount int64 `json:"approved_bazar_amount"`
	PendingBazarAmount  int64 `json:"pending_bazar_amount"`

	// MealRate is the approved bazar amount divided by the number of
	// approved meals, zero when no meals are approved yet.
	MealRate int64 `json:"meal_rate"`

	// Members is the per-member breakdown. Empty for non-admin callers.
	Members []MemberBreakdown `json:"members,omitempty"`
}

// MemberBreakdown is one member's share of the mess figures.
type MemberBreakdown struct {
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Meals       int64  `json:"meals"`
	BazarAmount int64  `json:"bazar_amount"`
}
