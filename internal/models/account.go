package models

import "time"

// Account is a registered user. The normalized (lower-cased, trimmed) email is
// the unique account key and the namespace id for all per-user data. The email
// is immutable after registration; username and password may change.
type Account struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Session is the single active session. CurrentUser is set iff LoggedIn is
// true and always references an existing account.
type Session struct {
	LoggedIn    bool      `json:"logged_in"`
	CurrentUser string    `json:"current_user"` // normalized email
	LoginAt     time.Time `json:"login_at"`
}
