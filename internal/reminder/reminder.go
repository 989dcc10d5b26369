// Package reminder schedules recurring hydration reminders. At most one
// wake-up is pending at a time; enabling, snoozing, or changing the interval
// cancels the pending wake-up and registers a replacement.
package reminder

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/julianstephens/welltrack/internal/constants"
	"github.com/julianstephens/welltrack/internal/logger"
	"github.com/julianstephens/welltrack/internal/models"
	"github.com/julianstephens/welltrack/internal/userdata"
)

// ErrPermissionDenied means reminders cannot be delivered, either because the
// tray app is unreachable or notifications are globally disabled. Callers must
// not persist an enabled state when they see this error.
var ErrPermissionDenied = errors.New("notification delivery is not permitted")

// State describes the reminder lifecycle for a user.
type State int

const (
	// StateDisabled means no reminder is configured or pending.
	StateDisabled State = iota
	// StateScheduled means a recurring wake-up is pending.
	StateScheduled
	// StateSnoozed means a one-shot snooze wake-up replaced the recurring one.
	StateSnoozed
)

func (s State) String() string {
	switch s {
	case StateScheduled:
		return "scheduled"
	case StateSnoozed:
		return "snoozed"
	default:
		return "disabled"
	}
}

// Registrar holds the single pending wake-up. Register replaces any pending
// registration; Cancel clears it.
type Registrar interface {
	Register(at time.Time, fire func())
	Cancel()
}

// Dispatcher delivers reminder notifications. Available is the delivery
// permission probe.
type Dispatcher interface {
	Available() bool
	Notify(text string) error
}

// TimerRegistrar backs the Registrar with a process-local timer. It only
// fires while the reminder loop is running.
type TimerRegistrar struct {
	mu    sync.Mutex
	timer *time.Timer
}

func NewTimerRegistrar() *TimerRegistrar {
	return &TimerRegistrar{}
}

func (r *TimerRegistrar) Register(at time.Time, fire func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.timer != nil {
		r.timer.Stop()
	}
	delay := time.Until(at)
	if delay < 0 {
		delay = 0
	}
	r.timer = time.AfterFunc(delay, fire)
}

func (r *TimerRegistrar) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

// Scheduler drives the reminder state machine for one user at a time.
type Scheduler struct {
	data      *userdata.Store
	registrar Registrar
	dispatch  Dispatcher
	now       func() time.Time

	mu      sync.Mutex
	snoozed map[string]bool
}

func NewScheduler(data *userdata.Store, registrar Registrar, dispatch Dispatcher) *Scheduler {
	return &Scheduler{
		data:      data,
		registrar: registrar,
		dispatch:  dispatch,
		now:       time.Now,
		snoozed:   make(map[string]bool),
	}
}

// State returns the user's current reminder state.
func (s *Scheduler) State(userID string) (State, error) {
	cfg, err := s.data.ReminderConfig(userID)
	if err != nil {
		return StateDisabled, err
	}
	if !cfg.Enabled {
		return StateDisabled, nil
	}

	s.mu.Lock()
	snoozed := s.snoozed[userID]
	s.mu.Unlock()
	if snoozed {
		return StateSnoozed, nil
	}
	return StateScheduled, nil
}

// Enable turns reminders on and registers the first wake-up. A non-zero
// intervalMinutes overrides the stored cadence. Fails with ErrPermissionDenied
// when delivery is impossible, leaving the stored config disabled so the UI
// toggle reverts.
func (s *Scheduler) Enable(userID string, intervalMinutes int) error {
	if err := s.checkPermission(); err != nil {
		return err
	}

	cfg, err := s.data.ReminderConfig(userID)
	if err != nil {
		return err
	}

	if intervalMinutes != 0 {
		if intervalMinutes < constants.MinReminderIntervalMin || intervalMinutes > constants.MaxReminderIntervalMin {
			return fmt.Errorf("reminder interval must be between %d and %d minutes",
				constants.MinReminderIntervalMin, constants.MaxReminderIntervalMin)
		}
		cfg.IntervalMinutes = intervalMinutes
	}

	cfg.Enabled = true
	return s.scheduleRecurring(userID, cfg)
}

// RescheduleNext replaces the pending wake-up with a fresh recurring one,
// an interval from now. No-op when reminders are disabled.
func (s *Scheduler) RescheduleNext(userID string) error {
	cfg, err := s.data.ReminderConfig(userID)
	if err != nil {
		return err
	}
	if !cfg.Enabled {
		return nil
	}
	return s.scheduleRecurring(userID, cfg)
}

// Disable cancels the pending wake-up and clears the stored schedule.
func (s *Scheduler) Disable(userID string) error {
	cfg, err := s.data.ReminderConfig(userID)
	if err != nil {
		return err
	}

	s.registrar.Cancel()
	s.setSnoozed(userID, false)

	cfg.Enabled = false
	cfg.NextFireTimeMillis = 0
	return s.data.SetReminderConfig(userID, cfg)
}

// SetInterval updates the reminder cadence. When reminders are enabled the
// pending wake-up is replaced with one at the new cadence from now.
func (s *Scheduler) SetInterval(userID string, minutes int) error {
	if minutes < constants.MinReminderIntervalMin || minutes > constants.MaxReminderIntervalMin {
		return fmt.Errorf("reminder interval must be between %d and %d minutes",
			constants.MinReminderIntervalMin, constants.MaxReminderIntervalMin)
	}

	cfg, err := s.data.ReminderConfig(userID)
	if err != nil {
		return err
	}

	cfg.IntervalMinutes = minutes
	if !cfg.Enabled {
		return s.data.SetReminderConfig(userID, cfg)
	}
	return s.scheduleRecurring(userID, cfg)
}

// Snooze replaces the pending wake-up with a one-shot after the fixed snooze
// delay. Only valid while reminders are enabled.
func (s *Scheduler) Snooze(userID string) error {
	cfg, err := s.data.ReminderConfig(userID)
	if err != nil {
		return err
	}
	if !cfg.Enabled {
		return errors.New("reminders are not enabled")
	}

	at := s.now().Add(constants.SnoozeDurationMin * time.Minute)
	cfg.NextFireTimeMillis = at.UnixMilli()
	if err := s.data.SetReminderConfig(userID, cfg); err != nil {
		return err
	}

	s.setSnoozed(userID, true)
	s.registrar.Register(at, func() { s.fire(userID) })
	return nil
}

// RestoreOnBoot re-registers the wake-up for an enabled reminder after a
// restart. A stored fire time still in the future is honored; otherwise a
// fresh interval starts now. No-op when reminders are disabled.
func (s *Scheduler) RestoreOnBoot(userID string) error {
	cfg, err := s.data.ReminderConfig(userID)
	if err != nil {
		return err
	}
	if !cfg.Enabled {
		return nil
	}

	stored := time.UnixMilli(cfg.NextFireTimeMillis)
	if cfg.NextFireTimeMillis > 0 && stored.After(s.now()) {
		s.registrar.Register(stored, func() { s.fire(userID) })
		return nil
	}
	return s.scheduleRecurring(userID, cfg)
}

// scheduleRecurring persists the config with the next fire time one interval
// from now and registers the wake-up.
func (s *Scheduler) scheduleRecurring(userID string, cfg models.ReminderConfig) error {
	if cfg.IntervalMinutes == 0 {
		cfg.IntervalMinutes = constants.DefaultReminderIntervalMin
	}

	at := s.now().Add(time.Duration(cfg.IntervalMinutes) * time.Minute)
	cfg.NextFireTimeMillis = at.UnixMilli()
	if err := s.data.SetReminderConfig(userID, cfg); err != nil {
		return err
	}

	s.setSnoozed(userID, false)
	s.registrar.Register(at, func() { s.fire(userID) })
	return nil
}

// fire delivers the notification and chains the next recurring wake-up. A
// snooze wake-up rejoins the recurring cadence here.
func (s *Scheduler) fire(userID string) {
	cfg, err := s.data.ReminderConfig(userID)
	if err != nil {
		logger.Error("Failed to load reminder config on fire", "user", userID, "error", err)
		return
	}
	if !cfg.Enabled {
		return
	}

	settings, err := s.data.Settings()
	if err == nil && settings.NotificationsEnabled {
		if err := s.dispatch.Notify("Time to drink some water! 💧"); err != nil {
			logger.Warn("Failed to deliver hydration reminder", "error", err)
		}
	}

	if err := s.scheduleRecurring(userID, cfg); err != nil {
		logger.Error("Failed to schedule next reminder", "user", userID, "error", err)
	}
}

func (s *Scheduler) checkPermission() error {
	settings, err := s.data.Settings()
	if err != nil {
		return err
	}
	if !settings.NotificationsEnabled {
		return fmt.Errorf("%w: notifications are disabled in settings", ErrPermissionDenied)
	}
	if !s.dispatch.Available() {
		return fmt.Errorf("%w: welltrack-tray is not running", ErrPermissionDenied)
	}
	return nil
}

func (s *Scheduler) setSnoozed(userID string, v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v {
		s.snoozed[userID] = true
	} else {
		delete(s.snoozed, userID)
	}
}
