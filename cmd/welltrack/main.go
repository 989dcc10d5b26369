package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/welltrack/internal/cli"
	"github.com/julianstephens/welltrack/internal/cli/account"
	"github.com/julianstephens/welltrack/internal/cli/backups"
	"github.com/julianstephens/welltrack/internal/cli/habits"
	"github.com/julianstephens/welltrack/internal/cli/moods"
	"github.com/julianstephens/welltrack/internal/cli/remind"
	"github.com/julianstephens/welltrack/internal/cli/settings"
	"github.com/julianstephens/welltrack/internal/cli/system"
	"github.com/julianstephens/welltrack/internal/cli/trends"
	"github.com/julianstephens/welltrack/internal/cli/water"
	"github.com/julianstephens/welltrack/internal/constants"
	"github.com/julianstephens/welltrack/internal/errors"
	"github.com/julianstephens/welltrack/internal/logger"
	"github.com/julianstephens/welltrack/internal/notifier"
	"github.com/julianstephens/welltrack/internal/reminder"
	"github.com/julianstephens/welltrack/internal/session"
	"github.com/julianstephens/welltrack/internal/storage"
	"github.com/julianstephens/welltrack/internal/userdata"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path (.db for SQLite, .json for a plain file)." type:"string" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init   system.InitCmd   `cmd:"" help:"Initialize welltrack storage."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Dash   system.DashCmd   `cmd:"" help:"Launch the interactive dashboard." default:"1"`

	Register account.RegisterCmd `cmd:"" help:"Create a new account."`
	Signin   account.SignInCmd   `cmd:"" help:"Sign in to an account."`
	Logout   account.LogoutCmd   `cmd:"" help:"Sign out and clear this account's local data."`
	Whoami   account.WhoAmICmd   `cmd:"" help:"Show the current user."`
	Profile  account.ProfileCmd  `cmd:"" help:"Update your display name."`
	Passwd   account.PasswdCmd   `cmd:"" help:"Change your password."`

	Habit  habits.HabitCmd  `cmd:"" help:"Track daily habits."`
	Mood   moods.MoodCmd    `cmd:"" help:"Journal your moods."`
	Water  water.WaterCmd   `cmd:"" help:"Track water intake."`
	Remind remind.RemindCmd `cmd:"" help:"Manage hydration reminders."`
	Trends trends.TrendsCmd `cmd:"" help:"Show wellness trends."`

	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage store backups."`

	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Notify   system.NotifyCmd     `cmd:"" hidden:"" help:"Send a notification (used internally)."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Wellness tracker: habits, moods, hydration, and reminders"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     "v0.1.0",
			"config_path": constants.DefaultConfigPath,
		},
	)

	storePath := expandHome(CLI.Config)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(storePath)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	var store storage.Provider
	if strings.HasSuffix(storePath, ".json") {
		store = storage.NewJSONStore(storePath)
	} else {
		store = storage.NewSQLiteStore(storePath)
	}

	data := userdata.NewStore(store)
	sess := session.NewManager(store)
	dispatch := notifier.New()
	appCtx := &cli.Context{
		Store:     store,
		Session:   sess,
		Data:      data,
		Scheduler: reminder.NewScheduler(data, reminder.NewTimerRegistrar(), dispatch),
		Notifier:  dispatch,
	}

	// Load the store before running the command (init handles its own setup)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if useKeyring, err := data.UseKeyring(); err == nil && useKeyring {
			sess.UseKeyring(true)
		}
	}

	err := ctx.Run(appCtx)
	if closeErr := store.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		errors.Fatal(err)
	}
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
