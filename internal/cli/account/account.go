// Package account holds the registration, sign-in, and profile commands.
package account

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/welltrack/internal/cli"
	"github.com/julianstephens/welltrack/internal/session"
	"github.com/julianstephens/welltrack/internal/validation"
)

type RegisterCmd struct {
	Username string `help:"Display name (3-20 letters, digits, underscores)."`
	Email    string `help:"Email address; becomes the account id."`
	Password string `help:"Password (6-50 characters, at least one letter)."`
}

func (c *RegisterCmd) Run(ctx *cli.Context) error {
	if c.Username == "" || c.Email == "" || c.Password == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Username").
					Value(&c.Username).
					Validate(validation.ValidateUsername),
				huh.NewInput().
					Title("Email").
					Value(&c.Email).
					Validate(validation.ValidateEmail),
				huh.NewInput().
					Title("Password").
					EchoMode(huh.EchoModePassword).
					Value(&c.Password).
					Validate(validation.ValidatePassword),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	if err := validation.ValidateUsername(c.Username); err != nil {
		return err
	}
	if err := validation.ValidateEmail(c.Email); err != nil {
		return err
	}
	if err := validation.ValidatePassword(c.Password); err != nil {
		return err
	}

	if err := ctx.Session.Register(c.Username, c.Email, c.Password); err != nil {
		return err
	}

	fmt.Printf("✓ Account created for %s\n", session.NormalizeEmail(c.Email))
	fmt.Println("Sign in with 'welltrack signin'.")
	return nil
}

type SignInCmd struct {
	Email    string `help:"Account email."`
	Password string `help:"Account password."`
}

func (c *SignInCmd) Run(ctx *cli.Context) error {
	if c.Email == "" || c.Password == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Email").
					Value(&c.Email),
				huh.NewInput().
					Title("Password").
					EchoMode(huh.EchoModePassword).
					Value(&c.Password),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	if err := ctx.Session.SignIn(c.Email, c.Password); err != nil {
		return err
	}

	user, _ := ctx.Session.CurrentUser()
	fmt.Printf("✓ Signed in as %s (%s)\n", user.Username, user.Email)

	// Restore any enabled reminder schedule for the new session
	userID, _ := ctx.Session.CurrentUserID()
	if err := ctx.Scheduler.RestoreOnBoot(userID); err != nil {
		fmt.Printf("⚠ Could not restore reminder schedule: %v\n", err)
	}
	return nil
}

type LogoutCmd struct{}

// Run signs the user out. Logging out cancels any pending reminder and wipes
// the account's habits, moods, and hydration data; the account itself stays
// registered.
func (c *LogoutCmd) Run(ctx *cli.Context) error {
	userID, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	// Snapshot the store before the wipe
	ctx.PerformAutomaticBackup()

	if err := ctx.Scheduler.Disable(userID); err != nil {
		return fmt.Errorf("failed to cancel reminders: %w", err)
	}
	if err := ctx.Data.ClearUserData(userID); err != nil {
		return fmt.Errorf("failed to clear user data: %w", err)
	}
	if err := ctx.Session.Logout(); err != nil {
		return err
	}
	fmt.Println("✓ Signed out. This account's local wellness data was cleared.")
	return nil
}

type WhoAmICmd struct{}

func (c *WhoAmICmd) Run(ctx *cli.Context) error {
	sess := ctx.Session.Session()
	if !sess.LoggedIn {
		fmt.Println("Not signed in.")
		return nil
	}

	user, _ := ctx.Session.CurrentUser()
	fmt.Printf("Username: %s\n", user.Username)
	fmt.Printf("Email:    %s\n", user.Email)
	if !sess.LoginAt.IsZero() {
		fmt.Printf("Since:    %s\n", sess.LoginAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

type ProfileCmd struct {
	Username string `help:"New display name."`
}

func (c *ProfileCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.RequireUser(); err != nil {
		return err
	}

	if c.Username == "" {
		user, _ := ctx.Session.CurrentUser()
		c.Username = user.Username
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Username").
					Value(&c.Username).
					Validate(validation.ValidateUsername),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	if err := validation.ValidateUsername(c.Username); err != nil {
		return err
	}
	if err := ctx.Session.UpdateProfile(c.Username); err != nil {
		return err
	}
	fmt.Println("✓ Profile updated.")
	return nil
}

type PasswdCmd struct{}

func (c *PasswdCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.RequireUser(); err != nil {
		return err
	}

	var oldPassword, newPassword, confirm string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Current password").
				EchoMode(huh.EchoModePassword).
				Value(&oldPassword),
			huh.NewInput().
				Title("New password").
				EchoMode(huh.EchoModePassword).
				Value(&newPassword).
				Validate(validation.ValidatePassword),
			huh.NewInput().
				Title("Confirm new password").
				EchoMode(huh.EchoModePassword).
				Value(&confirm),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	if newPassword != confirm {
		return errors.New("new passwords do not match")
	}

	if err := ctx.Session.ChangePassword(oldPassword, newPassword); err != nil {
		return err
	}
	fmt.Println("✓ Password changed.")
	return nil
}
