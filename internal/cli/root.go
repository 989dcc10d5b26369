package cli

import (
	"github.com/julianstephens/welltrack/internal/backup"
	"github.com/julianstephens/welltrack/internal/logger"
	"github.com/julianstephens/welltrack/internal/notifier"
	"github.com/julianstephens/welltrack/internal/reminder"
	"github.com/julianstephens/welltrack/internal/session"
	"github.com/julianstephens/welltrack/internal/storage"
	"github.com/julianstephens/welltrack/internal/userdata"
)

// Context carries the shared application services into every command.
type Context struct {
	Store     storage.Provider
	Session   *session.Manager
	Data      *userdata.Store
	Scheduler *reminder.Scheduler
	Notifier  *notifier.Notifier
}

// RequireUser returns the current user id or session.ErrNotLoggedIn.
func (c *Context) RequireUser() (string, error) {
	userID, ok := c.Session.CurrentUserID()
	if !ok {
		return "", session.ErrNotLoggedIn
	}
	return userID, nil
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}
