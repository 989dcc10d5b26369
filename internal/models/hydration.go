package models

// Hydration is the per-user hydration state. CurrentCount lazily resets to 0
// whenever LastResetDate differs from today's date.
type Hydration struct {
	CurrentCount  int    `json:"current_count"`
	DailyGoal     int    `json:"daily_goal"` // glasses, 1-20
	LastResetDate string `json:"last_reset_date"` // YYYY-MM-DD
}
