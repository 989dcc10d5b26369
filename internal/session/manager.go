// Package session manages registered accounts and the single active session.
// Accounts are keyed by normalized email; the session is persisted state and
// survives process restarts until an explicit logout.
package session

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/welltrack/internal/constants"
	"github.com/julianstephens/welltrack/internal/keyring"
	"github.com/julianstephens/welltrack/internal/logger"
	"github.com/julianstephens/welltrack/internal/models"
	"github.com/julianstephens/welltrack/internal/storage"
)

var (
	// ErrDuplicateEmail is returned when registering an email that is already taken
	ErrDuplicateEmail = errors.New("an account with this email already exists")
	// ErrInvalidCredentials is returned when sign-in fails
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrWrongOldPassword is returned when a password change supplies the wrong current password
	ErrWrongOldPassword = errors.New("current password is incorrect")
	// ErrNotLoggedIn is returned by per-user operations without an active session
	ErrNotLoggedIn = errors.New("not logged in")
)

// NormalizeEmail lowercases and trims an email. The normalized form is the
// account key and the per-user storage namespace.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Manager performs account and session operations against the key-value store.
type Manager struct {
	store      storage.Provider
	useKeyring bool
	now        func() time.Time
}

func NewManager(store storage.Provider) *Manager {
	return &Manager{
		store: store,
		now:   time.Now,
	}
}

// UseKeyring switches new and changed passwords into the OS keyring. Existing
// plaintext passwords are left as stored until the next password change.
func (m *Manager) UseKeyring(enabled bool) {
	m.useKeyring = enabled
}

// Register creates a new account. The email must not already be registered
// (compared by normalized form).
func (m *Manager) Register(username, email, password string) error {
	key := NormalizeEmail(email)
	if m.UserExists(key) {
		return ErrDuplicateEmail
	}

	stored := password
	if m.useKeyring {
		if err := keyring.SetPassword(key, password); err != nil {
			logger.Warn("Keyring unavailable, storing password in local store", "error", err)
		} else {
			stored = constants.KeyringSentinel
		}
	}

	return m.store.Batch([]storage.Op{
		storage.SetOp(constants.KeyUsernamePrefix+key, username),
		storage.SetOp(constants.KeyEmailPrefix+key, email),
		storage.SetOp(constants.KeyPasswordPrefix+key, stored),
	})
}

// UserExists reports whether an account is registered under the email.
func (m *Manager) UserExists(email string) bool {
	key := NormalizeEmail(email)
	_, ok, err := m.store.Get(constants.KeyEmailPrefix + key)
	if err != nil {
		logger.Error("Failed to look up account", "error", err)
		return false
	}
	return ok
}

// storedPassword resolves the comparable password for an account, following
// the keyring sentinel when present.
func (m *Manager) storedPassword(key string) (string, bool) {
	stored, ok, err := m.store.Get(constants.KeyPasswordPrefix + key)
	if err != nil || !ok {
		return "", false
	}
	if stored == constants.KeyringSentinel {
		pw, err := keyring.GetPassword(key)
		if err != nil {
			logger.Error("Failed to read password from keyring", "user", key, "error", err)
			return "", false
		}
		return pw, true
	}
	return stored, true
}

// SignIn validates credentials and opens a session, replacing any prior one.
func (m *Manager) SignIn(email, password string) error {
	key := NormalizeEmail(email)

	stored, ok := m.storedPassword(key)
	if !ok || stored != password {
		return ErrInvalidCredentials
	}

	return m.store.Batch([]storage.Op{
		storage.SetOp(constants.KeySessionLoggedIn, "true"),
		storage.SetOp(constants.KeySessionUser, key),
		storage.SetOp(constants.KeySessionTimestamp, strconv.FormatInt(m.now().UnixMilli(), 10)),
	})
}

// IsLoggedIn reports whether a session is active.
func (m *Manager) IsLoggedIn() bool {
	v, ok, err := m.store.Get(constants.KeySessionLoggedIn)
	return err == nil && ok && v == "true"
}

// CurrentUserID returns the active session's user id (normalized email).
func (m *Manager) CurrentUserID() (string, bool) {
	if !m.IsLoggedIn() {
		return "", false
	}
	v, ok, err := m.store.Get(constants.KeySessionUser)
	if err != nil || !ok || v == "" {
		return "", false
	}
	return v, true
}

// CurrentUser returns the active session's account data.
func (m *Manager) CurrentUser() (models.Account, bool) {
	key, ok := m.CurrentUserID()
	if !ok {
		return models.Account{}, false
	}

	username, ok1, err1 := m.store.Get(constants.KeyUsernamePrefix + key)
	email, ok2, err2 := m.store.Get(constants.KeyEmailPrefix + key)
	if err1 != nil || err2 != nil || !ok1 || !ok2 {
		return models.Account{}, false
	}

	return models.Account{Username: username, Email: email}, true
}

// Session returns a snapshot of the persisted session state. The zero value
// means no session is active.
func (m *Manager) Session() models.Session {
	userID, ok := m.CurrentUserID()
	if !ok {
		return models.Session{}
	}
	return models.Session{
		LoggedIn:    true,
		CurrentUser: userID,
		LoginAt:     m.LoginTimestamp(),
	}
}

// LoginTimestamp returns the time of the last successful sign-in, or the zero
// time if no session is active.
func (m *Manager) LoginTimestamp() time.Time {
	v, ok, err := m.store.Get(constants.KeySessionTimestamp)
	if err != nil || !ok {
		return time.Time{}
	}
	millis, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.UnixMilli(millis)
}

// UpdateProfile changes the current user's username. Requires an active session.
func (m *Manager) UpdateProfile(newUsername string) error {
	key, ok := m.CurrentUserID()
	if !ok {
		return ErrNotLoggedIn
	}
	return m.store.Set(constants.KeyUsernamePrefix+key, newUsername)
}

// ChangePassword replaces the current user's password after verifying the old
// one. Requires an active session.
func (m *Manager) ChangePassword(oldPassword, newPassword string) error {
	key, ok := m.CurrentUserID()
	if !ok {
		return ErrNotLoggedIn
	}

	stored, ok := m.storedPassword(key)
	if !ok || stored != oldPassword {
		return ErrWrongOldPassword
	}

	if m.useKeyring {
		if err := keyring.SetPassword(key, newPassword); err == nil {
			return m.store.Set(constants.KeyPasswordPrefix+key, constants.KeyringSentinel)
		}
		logger.Warn("Keyring unavailable, storing password in local store")
	}
	return m.store.Set(constants.KeyPasswordPrefix+key, newPassword)
}

// RevertKeyringPassword moves the current user's password out of the OS
// keyring back into the local store and removes the keyring entry. No-op when
// the stored password is not keyring-backed.
func (m *Manager) RevertKeyringPassword() error {
	key, ok := m.CurrentUserID()
	if !ok {
		return ErrNotLoggedIn
	}

	stored, ok, err := m.store.Get(constants.KeyPasswordPrefix + key)
	if err != nil || !ok || stored != constants.KeyringSentinel {
		return err
	}

	pw, err := keyring.GetPassword(key)
	if err != nil {
		return err
	}
	if err := m.store.Set(constants.KeyPasswordPrefix+key, pw); err != nil {
		return err
	}
	if err := keyring.DeletePassword(key); err != nil {
		logger.Warn("Failed to remove keyring entry", "user", key, "error", err)
	}
	return nil
}

// Logout clears the session state. The account and its data keys are not
// touched here; callers clear per-user data separately.
func (m *Manager) Logout() error {
	return m.store.Batch([]storage.Op{
		storage.RemoveOp(constants.KeySessionLoggedIn),
		storage.RemoveOp(constants.KeySessionUser),
		storage.RemoveOp(constants.KeySessionTimestamp),
	})
}
