package settings

import (
	"fmt"

	"github.com/julianstephens/welltrack/internal/cli"
	"github.com/julianstephens/welltrack/internal/keyring"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	DarkMode             *bool `help:"Enable or disable the dark theme."`
	NotificationsEnabled *bool `help:"Enable or disable all notifications."`
	UseKeyring           *bool `help:"Store passwords in the OS keyring instead of the local store."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Data.Settings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		useKeyring, err := ctx.Data.UseKeyring()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		fmt.Println("Current Settings:")
		fmt.Printf("  Dark Mode:             %v\n", settings.DarkMode)
		fmt.Printf("  Notifications Enabled: %v\n", settings.NotificationsEnabled)
		fmt.Printf("  Use OS Keyring:        %v\n", useKeyring)
		fmt.Printf("  OS Keyring Available:  %v\n", keyring.IsAvailable())
		return nil
	}

	updated := false
	if c.DarkMode != nil {
		if err := ctx.Data.SetDarkMode(*c.DarkMode); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		updated = true
	}
	if c.NotificationsEnabled != nil {
		if err := ctx.Data.SetNotificationsEnabled(*c.NotificationsEnabled); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		if !*c.NotificationsEnabled {
			// Muting notifications also drops any pending reminder
			if userID, err := ctx.RequireUser(); err == nil {
				if err := ctx.Scheduler.Disable(userID); err != nil {
					fmt.Printf("⚠ Could not disable reminders: %v\n", err)
				}
			}
		}
		updated = true
	}
	if c.UseKeyring != nil {
		if *c.UseKeyring && !keyring.IsAvailable() {
			return fmt.Errorf("OS keyring is not available on this system")
		}
		if err := ctx.Data.SetUseKeyring(*c.UseKeyring); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		ctx.Session.UseKeyring(*c.UseKeyring)
		if *c.UseKeyring {
			fmt.Println("Keyring mode applies to passwords set from now on.")
		} else if _, err := ctx.RequireUser(); err == nil {
			// Move the signed-in user's password back into the local store
			if err := ctx.Session.RevertKeyringPassword(); err != nil {
				fmt.Printf("⚠ Could not move your password out of the keyring: %v\n", err)
			}
		}
		updated = true
	}

	if updated {
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
