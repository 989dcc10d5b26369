package system

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/welltrack/internal/cli"
	"github.com/julianstephens/welltrack/internal/tui"
)

type DashCmd struct{}

func (c *DashCmd) Run(ctx *cli.Context) error {
	userID, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()

	settings, err := ctx.Data.Settings()
	if err != nil {
		return err
	}

	model, err := tui.New(ctx.Data, userID, settings.DarkMode)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
