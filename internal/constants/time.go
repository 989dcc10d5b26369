package constants

const (
	// DateFormat is the standard date format (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimestampFormat is the standard timestamp format for display
	TimestampFormat = "2006-01-02 15:04"
)
