package userdata

import (
	"errors"

	"github.com/google/uuid"

	"github.com/julianstephens/welltrack/internal/constants"
	"github.com/julianstephens/welltrack/internal/models"
)

// ErrNotFound is returned when an id does not match any record owned by the user.
var ErrNotFound = errors.New("record not found")

// ListHabits returns the user's habits in insertion order. Records whose
// UserID does not match are filtered out.
func (s *Store) ListHabits(userID string) ([]models.Habit, error) {
	habits, err := loadCollection[models.Habit](s, UserKey(userID, constants.KeyHabits))
	if err != nil {
		return nil, err
	}

	owned := habits[:0]
	for _, h := range habits {
		if h.UserID == userID {
			owned = append(owned, h)
		}
	}
	return owned, nil
}

// AddHabit appends a new habit for the user and returns it.
func (s *Store) AddHabit(userID, name, goal string) (models.Habit, error) {
	habits, err := s.ListHabits(userID)
	if err != nil {
		return models.Habit{}, err
	}

	habit := models.Habit{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Goal:      goal,
		CreatedAt: s.now(),
	}
	habits = append(habits, habit)

	if err := saveCollection(s, UserKey(userID, constants.KeyHabits), habits); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// UpdateHabit replaces the name and goal of the habit with the given id.
func (s *Store) UpdateHabit(userID, id, name, goal string) error {
	habits, err := s.ListHabits(userID)
	if err != nil {
		return err
	}

	for i := range habits {
		if habits[i].ID == id {
			habits[i].Name = name
			habits[i].Goal = goal
			return saveCollection(s, UserKey(userID, constants.KeyHabits), habits)
		}
	}
	return ErrNotFound
}

// ToggleHabitCompletion flips the habit's completion state, stamping or
// clearing CompletedAt accordingly.
func (s *Store) ToggleHabitCompletion(userID, id string) (models.Habit, error) {
	habits, err := s.ListHabits(userID)
	if err != nil {
		return models.Habit{}, err
	}

	for i := range habits {
		if habits[i].ID != id {
			continue
		}

		habits[i].IsCompleted = !habits[i].IsCompleted
		if habits[i].IsCompleted {
			now := s.now()
			habits[i].CompletedAt = &now
		} else {
			habits[i].CompletedAt = nil
		}

		if err := saveCollection(s, UserKey(userID, constants.KeyHabits), habits); err != nil {
			return models.Habit{}, err
		}
		return habits[i], nil
	}
	return models.Habit{}, ErrNotFound
}

// DeleteHabit removes the habit with the given id.
func (s *Store) DeleteHabit(userID, id string) error {
	habits, err := s.ListHabits(userID)
	if err != nil {
		return err
	}

	for i, h := range habits {
		if h.ID == id {
			habits = append(habits[:i], habits[i+1:]...)
			return saveCollection(s, UserKey(userID, constants.KeyHabits), habits)
		}
	}
	return ErrNotFound
}

// CompletedToday counts habits completed since local midnight. Used by the
// dashboard and trends views.
func (s *Store) CompletedToday(userID string) (int, error) {
	habits, err := s.ListHabits(userID)
	if err != nil {
		return 0, err
	}

	today := s.now().Format(constants.DateFormat)
	count := 0
	for _, h := range habits {
		if h.IsCompleted && h.CompletedAt != nil && h.CompletedAt.Format(constants.DateFormat) == today {
			count++
		}
	}
	return count, nil
}
