package models

// ReminderConfig is the per-user hydration reminder configuration.
// NextFireTimeMillis is advisory (kept for display) and recomputed whenever a
// wake-up is registered; 0 means no reminder is pending.
type ReminderConfig struct {
	Enabled            bool  `json:"enabled"`
	IntervalMinutes    int   `json:"interval_minutes"`
	NextFireTimeMillis int64 `json:"next_fire_time_millis"`
}
