// Package validation checks user-supplied registration and settings input
// before it reaches the store.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/julianstephens/welltrack/internal/constants"
)

var (
	usernameRe = regexp.MustCompile(`^\w+$`)
	emailRe    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	letterRe   = regexp.MustCompile(`[a-zA-Z]`)
)

// ValidateUsername checks length and character set. Usernames are display
// names only and carry no uniqueness requirement.
func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)
	if len(username) < constants.MinUsernameLen || len(username) > constants.MaxUsernameLen {
		return fmt.Errorf("username must be %d-%d characters", constants.MinUsernameLen, constants.MaxUsernameLen)
	}
	if !usernameRe.MatchString(username) {
		return fmt.Errorf("username may only contain letters, digits, and underscores")
	}
	return nil
}

// ValidateEmail checks the basic shape of an email address. Full RFC
// compliance is not attempted; the address is only used as a local account key.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRe.MatchString(email) {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// ValidatePassword checks length and requires at least one letter.
func ValidatePassword(password string) error {
	if len(password) < constants.MinPasswordLen || len(password) > constants.MaxPasswordLen {
		return fmt.Errorf("password must be %d-%d characters", constants.MinPasswordLen, constants.MaxPasswordLen)
	}
	if !letterRe.MatchString(password) {
		return fmt.Errorf("password must contain at least one letter")
	}
	return nil
}

// ValidateHydrationGoal bounds the daily glasses target.
func ValidateHydrationGoal(goal int) error {
	if goal < constants.MinHydrationGoal || goal > constants.MaxHydrationGoal {
		return fmt.Errorf("daily goal must be between %d and %d glasses", constants.MinHydrationGoal, constants.MaxHydrationGoal)
	}
	return nil
}

// ValidateReminderInterval bounds the reminder cadence in minutes.
func ValidateReminderInterval(minutes int) error {
	if minutes < constants.MinReminderIntervalMin || minutes > constants.MaxReminderIntervalMin {
		return fmt.Errorf("reminder interval must be between %d and %d minutes", constants.MinReminderIntervalMin, constants.MaxReminderIntervalMin)
	}
	return nil
}
