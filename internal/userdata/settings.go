package userdata

import (
	"strconv"

	"github.com/julianstephens/welltrack/internal/constants"
	"github.com/julianstephens/welltrack/internal/models"
	"github.com/julianstephens/welltrack/internal/storage"
)

func (s *Store) getBool(key string, fallback bool) (bool, error) {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		return false, err
	}
	if !ok {
		return fallback, nil
	}
	return raw == "true", nil
}

func (s *Store) setBool(key string, v bool) error {
	return s.kv.Set(key, strconv.FormatBool(v))
}

// Settings returns the global application settings. Dark mode defaults to off
// and notifications default to on.
func (s *Store) Settings() (models.Settings, error) {
	dark, err := s.getBool(constants.KeyDarkMode, false)
	if err != nil {
		return models.Settings{}, err
	}
	notif, err := s.getBool(constants.KeyNotificationsEnabled, true)
	if err != nil {
		return models.Settings{}, err
	}
	return models.Settings{DarkMode: dark, NotificationsEnabled: notif}, nil
}

// SetDarkMode updates the global dark mode flag.
func (s *Store) SetDarkMode(enabled bool) error {
	return s.setBool(constants.KeyDarkMode, enabled)
}

// SetNotificationsEnabled updates the global notification kill switch.
func (s *Store) SetNotificationsEnabled(enabled bool) error {
	return s.setBool(constants.KeyNotificationsEnabled, enabled)
}

// UseKeyring reports whether passwords should go to the OS keyring.
func (s *Store) UseKeyring() (bool, error) {
	return s.getBool(constants.KeyUseKeyring, false)
}

// SetUseKeyring updates the keyring preference for future password writes.
func (s *Store) SetUseKeyring(enabled bool) error {
	return s.setBool(constants.KeyUseKeyring, enabled)
}

// ReminderConfig returns the user's hydration reminder configuration.
// Defaults are disabled with the standard interval.
func (s *Store) ReminderConfig(userID string) (models.ReminderConfig, error) {
	enabled, err := s.getBool(UserKey(userID, constants.KeyReminderEnabled), false)
	if err != nil {
		return models.ReminderConfig{}, err
	}
	interval, err := s.getInt(UserKey(userID, constants.KeyReminderInterval), constants.DefaultReminderIntervalMin)
	if err != nil {
		return models.ReminderConfig{}, err
	}

	var next int64
	raw, ok, err := s.kv.Get(UserKey(userID, constants.KeyNextReminderTime))
	if err != nil {
		return models.ReminderConfig{}, err
	}
	if ok {
		next, _ = strconv.ParseInt(raw, 10, 64)
	}

	return models.ReminderConfig{
		Enabled:            enabled,
		IntervalMinutes:    interval,
		NextFireTimeMillis: next,
	}, nil
}

// SetReminderConfig persists the user's reminder configuration in one batch.
func (s *Store) SetReminderConfig(userID string, cfg models.ReminderConfig) error {
	return s.kv.Batch([]storage.Op{
		storage.SetOp(UserKey(userID, constants.KeyReminderEnabled), strconv.FormatBool(cfg.Enabled)),
		storage.SetOp(UserKey(userID, constants.KeyReminderInterval), strconv.Itoa(cfg.IntervalMinutes)),
		storage.SetOp(UserKey(userID, constants.KeyNextReminderTime), strconv.FormatInt(cfg.NextFireTimeMillis, 10)),
	})
}
