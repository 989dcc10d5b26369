package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	zkeyring "github.com/zalando/go-keyring"

	"github.com/julianstephens/welltrack/internal/constants"
	"github.com/julianstephens/welltrack/internal/keyring"
	"github.com/julianstephens/welltrack/internal/models"
	"github.com/julianstephens/welltrack/internal/storage"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "welltrack.json"))
	require.NoError(t, store.Init())
	return NewManager(store)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "alice@example.com", NormalizeEmail("  Alice@Example.COM "))
	assert.Equal(t, "bob@example.com", NormalizeEmail("bob@example.com"))
}

func TestRegisterAndSignIn(t *testing.T) {
	m := newTestManager(t)

	require.NoError(t, m.Register("alice", "alice@example.com", "hunter22"))

	require.NoError(t, m.SignIn("alice@example.com", "hunter22"))
	assert.True(t, m.IsLoggedIn())

	user, ok := m.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	m := newTestManager(t)

	require.NoError(t, m.Register("alice", "alice@example.com", "hunter22"))

	// Case and whitespace variations normalize to the same account key
	err := m.Register("imposter", " ALICE@example.com ", "different")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// Original credentials are untouched
	require.NoError(t, m.SignIn("alice@example.com", "hunter22"))
	user, ok := m.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "alice", user.Username)
}

func TestSignInRequiresExactPassword(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.Register("alice", "alice@example.com", "hunter22"))

	assert.ErrorIs(t, m.SignIn("alice@example.com", "HUNTER22"), ErrInvalidCredentials)
	assert.ErrorIs(t, m.SignIn("alice@example.com", "hunter2"), ErrInvalidCredentials)
	assert.ErrorIs(t, m.SignIn("nobody@example.com", "hunter22"), ErrInvalidCredentials)
	assert.False(t, m.IsLoggedIn())

	// Email matching is case-insensitive
	assert.NoError(t, m.SignIn("ALICE@EXAMPLE.COM", "hunter22"))
}

func TestSignInReplacesPriorSession(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.Register("alice", "alice@example.com", "hunter22"))
	require.NoError(t, m.Register("bob", "bob@example.com", "secret99"))

	require.NoError(t, m.SignIn("alice@example.com", "hunter22"))
	require.NoError(t, m.SignIn("bob@example.com", "secret99"))

	id, ok := m.CurrentUserID()
	require.True(t, ok)
	assert.Equal(t, "bob@example.com", id)
}

func TestLoginTimestamp(t *testing.T) {
	m := newTestManager(t)
	fixed := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	m.now = func() time.Time { return fixed }

	require.NoError(t, m.Register("alice", "alice@example.com", "hunter22"))
	require.NoError(t, m.SignIn("alice@example.com", "hunter22"))

	assert.Equal(t, fixed.UnixMilli(), m.LoginTimestamp().UnixMilli())
}

func TestUpdateProfile(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.Register("alice", "alice@example.com", "hunter22"))

	assert.ErrorIs(t, m.UpdateProfile("newname"), ErrNotLoggedIn)

	require.NoError(t, m.SignIn("alice@example.com", "hunter22"))
	require.NoError(t, m.UpdateProfile("newname"))

	user, ok := m.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "newname", user.Username)
	assert.Equal(t, "alice@example.com", user.Email, "email is immutable")
}

func TestChangePassword(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.Register("alice", "alice@example.com", "hunter22"))

	assert.ErrorIs(t, m.ChangePassword("hunter22", "newpass1"), ErrNotLoggedIn)

	require.NoError(t, m.SignIn("alice@example.com", "hunter22"))
	assert.ErrorIs(t, m.ChangePassword("wrong", "newpass1"), ErrWrongOldPassword)

	require.NoError(t, m.ChangePassword("hunter22", "newpass1"))
	require.NoError(t, m.Logout())

	assert.ErrorIs(t, m.SignIn("alice@example.com", "hunter22"), ErrInvalidCredentials)
	assert.NoError(t, m.SignIn("alice@example.com", "newpass1"))
}

func TestSessionSnapshot(t *testing.T) {
	m := newTestManager(t)
	fixed := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	m.now = func() time.Time { return fixed }

	assert.Equal(t, models.Session{}, m.Session())

	require.NoError(t, m.Register("alice", "alice@example.com", "hunter22"))
	require.NoError(t, m.SignIn("alice@example.com", "hunter22"))

	sess := m.Session()
	assert.True(t, sess.LoggedIn)
	assert.Equal(t, "alice@example.com", sess.CurrentUser)
	assert.Equal(t, fixed.UnixMilli(), sess.LoginAt.UnixMilli())

	require.NoError(t, m.Logout())
	assert.Equal(t, models.Session{}, m.Session())
}

func TestRevertKeyringPassword(t *testing.T) {
	zkeyring.MockInit()
	m := newTestManager(t)
	m.UseKeyring(true)

	require.NoError(t, m.Register("alice", "alice@example.com", "hunter22"))

	stored, ok, err := m.store.Get(constants.KeyPasswordPrefix + "alice@example.com")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, constants.KeyringSentinel, stored, "keyring mode stores the sentinel locally")

	assert.ErrorIs(t, m.RevertKeyringPassword(), ErrNotLoggedIn)

	require.NoError(t, m.SignIn("alice@example.com", "hunter22"))
	require.NoError(t, m.RevertKeyringPassword())

	stored, _, err = m.store.Get(constants.KeyPasswordPrefix + "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hunter22", stored)

	// The keyring entry is gone
	_, err = keyring.GetPassword("alice@example.com")
	assert.ErrorIs(t, err, keyring.ErrNotFound)

	// Plaintext sign-in keeps working
	require.NoError(t, m.Logout())
	require.NoError(t, m.SignIn("alice@example.com", "hunter22"))
}

func TestLogoutClearsSessionOnly(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.Register("alice", "alice@example.com", "hunter22"))
	require.NoError(t, m.SignIn("alice@example.com", "hunter22"))

	require.NoError(t, m.Logout())
	assert.False(t, m.IsLoggedIn())

	_, ok := m.CurrentUserID()
	assert.False(t, ok)

	// The account survives and can sign in again
	assert.True(t, m.UserExists("alice@example.com"))
	assert.NoError(t, m.SignIn("alice@example.com", "hunter22"))
}
