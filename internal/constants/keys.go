package constants

// Storage key names. Account and session keys are global; per-user keys are
// prefixed with the normalized email (see userdata.UserKey).
const (
	// Account keys, suffixed with the normalized email
	KeyUsernamePrefix = "username_"
	KeyEmailPrefix    = "email_"
	KeyPasswordPrefix = "password_"

	// Session keys (single active session)
	KeySessionLoggedIn  = "session_logged_in"
	KeySessionUser      = "session_current_user"
	KeySessionTimestamp = "session_login_timestamp"

	// Per-user keys (namespaced by userdata.UserKey)
	KeyHabits           = "habits"
	KeyMoods            = "moods"
	KeyHydrationGoal    = "hydration_goal"
	KeyHydrationCurrent = "hydration_current"
	KeyLastResetDate    = "last_reset_date"
	KeyReminderEnabled  = "reminder_enabled"
	KeyReminderInterval = "reminder_interval"
	KeyNextReminderTime = "next_reminder_time"

	// Global settings, never namespaced by user
	KeyDarkMode             = "dark_mode"
	KeyNotificationsEnabled = "notifications_enabled"
	KeyUseKeyring           = "use_keyring"

	// KeyringSentinel is stored in place of a password when the account
	// keeps its real password in the OS keyring.
	KeyringSentinel = "@keyring"
)
