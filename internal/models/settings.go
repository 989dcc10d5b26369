package models

// Settings are the global application settings, shared by all accounts on the
// device (never namespaced by user).
type Settings struct {
	DarkMode             bool `json:"dark_mode"`             // whether the dark theme is active
	NotificationsEnabled bool `json:"notifications_enabled"` // global notification kill switch
}
