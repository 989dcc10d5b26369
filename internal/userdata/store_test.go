package userdata

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/welltrack/internal/constants"
	"github.com/julianstephens/welltrack/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	kv := storage.NewJSONStore(filepath.Join(t.TempDir(), "welltrack.json"))
	require.NoError(t, kv.Init())
	return NewStore(kv)
}

func TestHabitLifecycle(t *testing.T) {
	s := newTestStore(t)

	habit, err := s.AddHabit("alice@example.com", "Stretch", "daily")
	require.NoError(t, err)
	assert.NotEmpty(t, habit.ID)
	assert.Equal(t, "alice@example.com", habit.UserID)
	assert.False(t, habit.IsCompleted)

	require.NoError(t, s.UpdateHabit("alice@example.com", habit.ID, "Stretch", "twice daily"))

	toggled, err := s.ToggleHabitCompletion("alice@example.com", habit.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsCompleted)
	require.NotNil(t, toggled.CompletedAt)

	toggled, err = s.ToggleHabitCompletion("alice@example.com", habit.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsCompleted)
	assert.Nil(t, toggled.CompletedAt)

	require.NoError(t, s.DeleteHabit("alice@example.com", habit.ID))
	habits, err := s.ListHabits("alice@example.com")
	require.NoError(t, err)
	assert.Empty(t, habits)

	assert.ErrorIs(t, s.DeleteHabit("alice@example.com", habit.ID), ErrNotFound)
}

func TestHabitsAreIsolatedPerUser(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddHabit("alice@example.com", "Run", "5k")
	require.NoError(t, err)

	bobHabits, err := s.ListHabits("bob@example.com")
	require.NoError(t, err)
	assert.Empty(t, bobHabits)

	aliceHabits, err := s.ListHabits("alice@example.com")
	require.NoError(t, err)
	assert.Len(t, aliceHabits, 1)
}

func TestCorruptCollectionYieldsEmptyList(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.kv.Set(UserKey("alice@example.com", constants.KeyHabits), "{not json"))

	habits, err := s.ListHabits("alice@example.com")
	require.NoError(t, err)
	assert.Empty(t, habits)

	// The store recovers: new writes replace the corrupt payload
	_, err = s.AddHabit("alice@example.com", "Read", "30m")
	require.NoError(t, err)
	habits, err = s.ListHabits("alice@example.com")
	require.NoError(t, err)
	assert.Len(t, habits, 1)
}

func TestMoods(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddMood("alice@example.com", "🤖", "beep")
	assert.Error(t, err, "unsupported emoji is rejected")

	entry, err := s.AddMood("alice@example.com", "🙂", "good day")
	require.NoError(t, err)
	assert.Equal(t, "🙂", entry.Emoji)

	moods, err := s.ListMoods("alice@example.com")
	require.NoError(t, err)
	require.Len(t, moods, 1)

	require.NoError(t, s.DeleteMood("alice@example.com", entry.ID))
	moods, err = s.ListMoods("alice@example.com")
	require.NoError(t, err)
	assert.Empty(t, moods)
}

func TestHydrationDefaultsAndBounds(t *testing.T) {
	s := newTestStore(t)

	goal, err := s.HydrationGoal("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultHydrationGoal, goal)

	assert.Error(t, s.SetHydrationGoal("alice@example.com", 0))
	assert.Error(t, s.SetHydrationGoal("alice@example.com", 21))
	require.NoError(t, s.SetHydrationGoal("alice@example.com", 10))

	goal, err = s.HydrationGoal("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, 10, goal)
}

func TestWaterCountFloorsAtZero(t *testing.T) {
	s := newTestStore(t)

	h, err := s.DecrementWater("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, 0, h.CurrentCount)

	h, err = s.IncrementWater("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, h.CurrentCount)
}

func TestSetWaterCount(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SetWaterCount("alice@example.com", 5))
	h, err := s.Hydration("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, 5, h.CurrentCount)

	require.NoError(t, s.SetWaterCount("alice@example.com", -3))
	h, err = s.Hydration("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, 0, h.CurrentCount)
}

func TestHydrationLazyDailyReset(t *testing.T) {
	s := newTestStore(t)
	day1 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return day1 }

	_, err := s.IncrementWater("alice@example.com")
	require.NoError(t, err)
	h, err := s.IncrementWater("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, 2, h.CurrentCount)

	// Next day: first read resets the counter
	s.now = func() time.Time { return day1.Add(24 * time.Hour) }
	h, err = s.Hydration("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, 0, h.CurrentCount)
	assert.Equal(t, "2025-06-02", h.LastResetDate)
}

func TestReminderConfigRoundTrip(t *testing.T) {
	s := newTestStore(t)

	cfg, err := s.ReminderConfig("alice@example.com")
	require.NoError(t, err)
	assert.False(t, cfg.Enabled)
	assert.Equal(t, constants.DefaultReminderIntervalMin, cfg.IntervalMinutes)
	assert.Zero(t, cfg.NextFireTimeMillis)

	cfg.Enabled = true
	cfg.IntervalMinutes = 45
	cfg.NextFireTimeMillis = 1717243200000
	require.NoError(t, s.SetReminderConfig("alice@example.com", cfg))

	got, err := s.ReminderConfig("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestGlobalSettings(t *testing.T) {
	s := newTestStore(t)

	settings, err := s.Settings()
	require.NoError(t, err)
	assert.False(t, settings.DarkMode)
	assert.True(t, settings.NotificationsEnabled)

	require.NoError(t, s.SetDarkMode(true))
	require.NoError(t, s.SetNotificationsEnabled(false))

	settings, err = s.Settings()
	require.NoError(t, err)
	assert.True(t, settings.DarkMode)
	assert.False(t, settings.NotificationsEnabled)
}

func TestClearUserData(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddHabit("alice@example.com", "Run", "5k")
	require.NoError(t, err)
	_, err = s.AddMood("alice@example.com", "😄", "")
	require.NoError(t, err)
	_, err = s.IncrementWater("alice@example.com")
	require.NoError(t, err)
	require.NoError(t, s.SetDarkMode(true))

	require.NoError(t, s.ClearUserData("alice@example.com"))

	habits, err := s.ListHabits("alice@example.com")
	require.NoError(t, err)
	assert.Empty(t, habits)
	moods, err := s.ListMoods("alice@example.com")
	require.NoError(t, err)
	assert.Empty(t, moods)

	// Global settings survive a per-user wipe
	settings, err := s.Settings()
	require.NoError(t, err)
	assert.True(t, settings.DarkMode)
}
