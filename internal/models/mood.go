package models

import "time"

// MoodEntry is one journaled mood. Entries are immutable after creation
// except for deletion.
type MoodEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Emoji     string    `json:"emoji"`
	Note      string    `json:"note"`
	Timestamp time.Time `json:"timestamp"`
}

// SupportedMoods is the set of mood emojis the journal accepts.
var SupportedMoods = []string{"😄", "🙂", "😐", "😔", "😢", "😡"}

// IsSupportedMood reports whether the emoji is one of the supported moods.
func IsSupportedMood(emoji string) bool {
	for _, m := range SupportedMoods {
		if m == emoji {
			return true
		}
	}
	return false
}
