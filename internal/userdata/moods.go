package userdata

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/julianstephens/welltrack/internal/constants"
	"github.com/julianstephens/welltrack/internal/models"
)

// ListMoods returns the user's mood entries in insertion order.
func (s *Store) ListMoods(userID string) ([]models.MoodEntry, error) {
	moods, err := loadCollection[models.MoodEntry](s, UserKey(userID, constants.KeyMoods))
	if err != nil {
		return nil, err
	}

	owned := moods[:0]
	for _, m := range moods {
		if m.UserID == userID {
			owned = append(owned, m)
		}
	}
	return owned, nil
}

// AddMood records a new mood entry and returns it.
func (s *Store) AddMood(userID, emoji, note string) (models.MoodEntry, error) {
	if !models.IsSupportedMood(emoji) {
		return models.MoodEntry{}, fmt.Errorf("unsupported mood %q", emoji)
	}

	moods, err := s.ListMoods(userID)
	if err != nil {
		return models.MoodEntry{}, err
	}

	entry := models.MoodEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Emoji:     emoji,
		Note:      note,
		Timestamp: s.now(),
	}
	moods = append(moods, entry)

	if err := saveCollection(s, UserKey(userID, constants.KeyMoods), moods); err != nil {
		return models.MoodEntry{}, err
	}
	return entry, nil
}

// DeleteMood removes the mood entry with the given id.
func (s *Store) DeleteMood(userID, id string) error {
	moods, err := s.ListMoods(userID)
	if err != nil {
		return err
	}

	for i, m := range moods {
		if m.ID == id {
			moods = append(moods[:i], moods[i+1:]...)
			return saveCollection(s, UserKey(userID, constants.KeyMoods), moods)
		}
	}
	return ErrNotFound
}
