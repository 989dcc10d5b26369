package remind

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julianstephens/welltrack/internal/cli"
	"github.com/julianstephens/welltrack/internal/constants"
	"github.com/julianstephens/welltrack/internal/validation"
)

type RemindCmd struct {
	On       OnCmd       `cmd:"" help:"Enable hydration reminders."`
	Off      OffCmd      `cmd:"" help:"Disable hydration reminders."`
	Interval IntervalCmd `cmd:"" help:"Show or set the reminder interval."`
	Snooze   SnoozeCmd   `cmd:"" help:"Snooze the next reminder by 15 minutes."`
	Status   StatusCmd   `cmd:"" help:"Show the reminder schedule." default:"1"`
	Run      RunCmd      `cmd:"" help:"Run the reminder loop in the foreground."`
}

type OnCmd struct {
	Minutes int `arg:"" optional:"" help:"Reminder interval in minutes (15-120)."`
}

func (c *OnCmd) Run(ctx *cli.Context) error {
	userID, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	if c.Minutes != 0 {
		if err := validation.ValidateReminderInterval(c.Minutes); err != nil {
			return err
		}
	}
	if err := ctx.Scheduler.Enable(userID, c.Minutes); err != nil {
		return err
	}

	cfg, err := ctx.Data.ReminderConfig(userID)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Reminders on, every %d minutes.\n", cfg.IntervalMinutes)
	fmt.Println("Keep 'welltrack remind run' running to receive them.")
	return nil
}

type OffCmd struct{}

func (c *OffCmd) Run(ctx *cli.Context) error {
	userID, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	if err := ctx.Scheduler.Disable(userID); err != nil {
		return err
	}
	fmt.Println("Reminders off.")
	return nil
}

type IntervalCmd struct {
	Minutes int `arg:"" optional:"" help:"New interval in minutes (15-120)."`
}

func (c *IntervalCmd) Run(ctx *cli.Context) error {
	userID, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	if c.Minutes == 0 {
		cfg, err := ctx.Data.ReminderConfig(userID)
		if err != nil {
			return err
		}
		fmt.Printf("Reminder interval: %d minutes\n", cfg.IntervalMinutes)
		return nil
	}

	if err := validation.ValidateReminderInterval(c.Minutes); err != nil {
		return err
	}
	if err := ctx.Scheduler.SetInterval(userID, c.Minutes); err != nil {
		return err
	}
	fmt.Printf("✓ Reminder interval set to %d minutes.\n", c.Minutes)
	return nil
}

type SnoozeCmd struct{}

func (c *SnoozeCmd) Run(ctx *cli.Context) error {
	userID, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	if err := ctx.Scheduler.Snooze(userID); err != nil {
		return err
	}

	cfg, err := ctx.Data.ReminderConfig(userID)
	if err != nil {
		return err
	}
	fmt.Printf("😴 Snoozed until %s.\n", time.UnixMilli(cfg.NextFireTimeMillis).Format("15:04"))
	return nil
}

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *cli.Context) error {
	userID, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	cfg, err := ctx.Data.ReminderConfig(userID)
	if err != nil {
		return err
	}
	state, err := ctx.Scheduler.State(userID)
	if err != nil {
		return err
	}

	fmt.Printf("Reminders: %s\n", state)
	fmt.Printf("Interval:  %d minutes\n", cfg.IntervalMinutes)
	if cfg.Enabled && cfg.NextFireTimeMillis > 0 {
		fmt.Printf("Next:      %s\n", time.UnixMilli(cfg.NextFireTimeMillis).Format(constants.TimestampFormat))
	}
	if !ctx.Notifier.Available() {
		fmt.Println("⚠ welltrack-tray is not running; reminders cannot be delivered.")
	}
	return nil
}

type RunCmd struct{}

// Run restores the schedule and keeps the process alive so timers can fire.
func (c *RunCmd) Run(ctx *cli.Context) error {
	userID, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	cfg, err := ctx.Data.ReminderConfig(userID)
	if err != nil {
		return err
	}
	if !cfg.Enabled {
		return fmt.Errorf("reminders are off; enable them with 'welltrack remind on'")
	}

	if err := ctx.Scheduler.RestoreOnBoot(userID); err != nil {
		return err
	}

	fmt.Printf("Reminder loop running for %s (every %d minutes). Ctrl-C to stop.\n", userID, cfg.IntervalMinutes)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	fmt.Println("\nStopping reminder loop.")
	return nil
}
