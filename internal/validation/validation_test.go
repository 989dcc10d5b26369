package validation

import "testing"

func TestValidateUsername(t *testing.T) {
	valid := []string{"abc", "alice_99", "ABCDEFGHIJKLMNOPQRST"}
	for _, u := range valid {
		if err := ValidateUsername(u); err != nil {
			t.Errorf("ValidateUsername(%q) = %v, want nil", u, err)
		}
	}

	invalid := []string{"", "ab", "way_too_long_username_here", "has space", "bad-dash", "emoji😄"}
	for _, u := range invalid {
		if err := ValidateUsername(u); err == nil {
			t.Errorf("ValidateUsername(%q) = nil, want error", u)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.co", "alice@example.com", "first.last+tag@sub.example.org"}
	for _, e := range valid {
		if err := ValidateEmail(e); err != nil {
			t.Errorf("ValidateEmail(%q) = %v, want nil", e, err)
		}
	}

	invalid := []string{"", "noat.example.com", "two@@example.com", "spaces in@example.com", "@example.com", "alice@"}
	for _, e := range invalid {
		if err := ValidateEmail(e); err == nil {
			t.Errorf("ValidateEmail(%q) = nil, want error", e)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("abc123"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidatePassword("12345"); err == nil {
		t.Error("expected error for short password")
	}
	if err := ValidatePassword("123456"); err == nil {
		t.Error("expected error for all-digit password")
	}
}

func TestValidateHydrationGoal(t *testing.T) {
	for _, goal := range []int{1, 8, 20} {
		if err := ValidateHydrationGoal(goal); err != nil {
			t.Errorf("ValidateHydrationGoal(%d) = %v, want nil", goal, err)
		}
	}
	for _, goal := range []int{0, -1, 21} {
		if err := ValidateHydrationGoal(goal); err == nil {
			t.Errorf("ValidateHydrationGoal(%d) = nil, want error", goal)
		}
	}
}

func TestValidateReminderInterval(t *testing.T) {
	for _, min := range []int{15, 20, 120} {
		if err := ValidateReminderInterval(min); err != nil {
			t.Errorf("ValidateReminderInterval(%d) = %v, want nil", min, err)
		}
	}
	for _, min := range []int{0, 14, 121} {
		if err := ValidateReminderInterval(min); err == nil {
			t.Errorf("ValidateReminderInterval(%d) = nil, want error", min)
		}
	}
}
