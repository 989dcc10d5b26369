package constants

const (
	// AppName is the application name used for config paths and the keyring service
	AppName = "welltrack"

	// DefaultConfigPath is the default location of the welltrack database
	DefaultConfigPath = "~/.config/welltrack/welltrack.db"

	// TrayAppIdentifier is the config directory name of the tray companion app
	TrayAppIdentifier = "welltrack-tray"

	// NotifierLockfileName is the lockfile written by the tray app (port|pid|secret)
	NotifierLockfileName = "welltrack-tray.lock"

	// NotificationDurationMs is how long a reminder notification stays on screen
	NotificationDurationMs uint32 = 10000
)

const (
	// DefaultReminderIntervalMin is the default minutes between hydration reminders
	DefaultReminderIntervalMin = 20

	// MinReminderIntervalMin and MaxReminderIntervalMin bound the interval slider
	MinReminderIntervalMin = 15
	MaxReminderIntervalMin = 120

	// SnoozeDurationMin is the fixed snooze delay
	SnoozeDurationMin = 15

	// DefaultHydrationGoal is the default daily glasses target
	DefaultHydrationGoal = 8

	// MinHydrationGoal and MaxHydrationGoal bound the daily goal
	MinHydrationGoal = 1
	MaxHydrationGoal = 20
)

const (
	// MinUsernameLen and MaxUsernameLen bound registration usernames
	MinUsernameLen = 3
	MaxUsernameLen = 20

	// MinPasswordLen and MaxPasswordLen bound registration passwords
	MinPasswordLen = 6
	MaxPasswordLen = 50
)
