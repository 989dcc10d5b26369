package userdata

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/welltrack/internal/constants"
	"github.com/julianstephens/welltrack/internal/models"
	"github.com/julianstephens/welltrack/internal/storage"
)

func (s *Store) getInt(key string, fallback int) (int, error) {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback, nil
	}
	return n, nil
}

// HydrationGoal returns the user's daily glasses target.
func (s *Store) HydrationGoal(userID string) (int, error) {
	return s.getInt(UserKey(userID, constants.KeyHydrationGoal), constants.DefaultHydrationGoal)
}

// SetHydrationGoal updates the user's daily glasses target. The goal must be
// within the allowed range.
func (s *Store) SetHydrationGoal(userID string, goal int) error {
	if goal < constants.MinHydrationGoal || goal > constants.MaxHydrationGoal {
		return fmt.Errorf("daily goal must be between %d and %d glasses",
			constants.MinHydrationGoal, constants.MaxHydrationGoal)
	}
	return s.kv.Set(UserKey(userID, constants.KeyHydrationGoal), strconv.Itoa(goal))
}

// Hydration returns today's hydration state, resetting the counter first if
// the stored reset date is not today. The reset is lazy so the count rolls
// over correctly even when the app was closed at midnight.
func (s *Store) Hydration(userID string) (models.Hydration, error) {
	if err := s.maybeResetHydration(userID); err != nil {
		return models.Hydration{}, err
	}

	count, err := s.getInt(UserKey(userID, constants.KeyHydrationCurrent), 0)
	if err != nil {
		return models.Hydration{}, err
	}
	goal, err := s.HydrationGoal(userID)
	if err != nil {
		return models.Hydration{}, err
	}
	date, _, err := s.kv.Get(UserKey(userID, constants.KeyLastResetDate))
	if err != nil {
		return models.Hydration{}, err
	}

	return models.Hydration{
		CurrentCount:  count,
		DailyGoal:     goal,
		LastResetDate: date,
	}, nil
}

func (s *Store) maybeResetHydration(userID string) error {
	today := s.now().Format(constants.DateFormat)
	stored, ok, err := s.kv.Get(UserKey(userID, constants.KeyLastResetDate))
	if err != nil {
		return err
	}
	if ok && stored == today {
		return nil
	}

	return s.kv.Batch([]storage.Op{
		storage.SetOp(UserKey(userID, constants.KeyHydrationCurrent), "0"),
		storage.SetOp(UserKey(userID, constants.KeyLastResetDate), today),
	})
}

// IncrementWater adds one glass to today's count and returns the new state.
func (s *Store) IncrementWater(userID string) (models.Hydration, error) {
	return s.adjustWater(userID, 1)
}

// DecrementWater removes one glass from today's count, flooring at zero.
func (s *Store) DecrementWater(userID string) (models.Hydration, error) {
	return s.adjustWater(userID, -1)
}

func (s *Store) adjustWater(userID string, delta int) (models.Hydration, error) {
	h, err := s.Hydration(userID)
	if err != nil {
		return models.Hydration{}, err
	}

	h.CurrentCount += delta
	if h.CurrentCount < 0 {
		h.CurrentCount = 0
	}

	if err := s.kv.Set(UserKey(userID, constants.KeyHydrationCurrent), strconv.Itoa(h.CurrentCount)); err != nil {
		return models.Hydration{}, err
	}
	return h, nil
}

// SetWaterCount overwrites today's count. Negative values clamp to zero.
func (s *Store) SetWaterCount(userID string, count int) error {
	if err := s.maybeResetHydration(userID); err != nil {
		return err
	}
	if count < 0 {
		count = 0
	}
	return s.kv.Set(UserKey(userID, constants.KeyHydrationCurrent), strconv.Itoa(count))
}

// ResetDailyHydration zeroes today's count regardless of the stored date.
func (s *Store) ResetDailyHydration(userID string) error {
	today := s.now().Format(constants.DateFormat)
	return s.kv.Batch([]storage.Op{
		storage.SetOp(UserKey(userID, constants.KeyHydrationCurrent), "0"),
		storage.SetOp(UserKey(userID, constants.KeyLastResetDate), today),
	})
}
