// Package userdata persists each user's wellness data (habits, moods,
// hydration, reminder config) plus the global settings. Collections are stored
// as JSON arrays under a single per-user key; every per-user key is prefixed
// with the owner's user id so accounts never see each other's data.
package userdata

import (
	"encoding/json"
	"time"

	"github.com/julianstephens/welltrack/internal/constants"
	"github.com/julianstephens/welltrack/internal/logger"
	"github.com/julianstephens/welltrack/internal/storage"
)

// UserKey builds the storage key for a per-user value.
func UserKey(userID, suffix string) string {
	return userID + "_" + suffix
}

// Store reads and writes user data through the key-value provider.
type Store struct {
	kv  storage.Provider
	now func() time.Time
}

func NewStore(kv storage.Provider) *Store {
	return &Store{
		kv:  kv,
		now: time.Now,
	}
}

// loadCollection unmarshals the JSON array stored under key. A missing key or
// corrupt payload yields an empty collection so one bad record never takes the
// whole app down with it.
func loadCollection[T any](s *Store, key string) ([]T, error) {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logger.Warn("Discarding corrupt collection", "key", key, "error", err)
		return []T{}, nil
	}
	return items, nil
}

func saveCollection[T any](s *Store, key string, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.kv.Set(key, string(data))
}

// ClearUserData removes every per-user key for the given user in one batch.
// Account credentials and global settings are untouched.
func (s *Store) ClearUserData(userID string) error {
	suffixes := []string{
		constants.KeyHabits,
		constants.KeyMoods,
		constants.KeyHydrationGoal,
		constants.KeyHydrationCurrent,
		constants.KeyLastResetDate,
		constants.KeyReminderEnabled,
		constants.KeyReminderInterval,
		constants.KeyNextReminderTime,
	}

	ops := make([]storage.Op, 0, len(suffixes))
	for _, suffix := range suffixes {
		ops = append(ops, storage.RemoveOp(UserKey(userID, suffix)))
	}
	return s.kv.Batch(ops)
}
