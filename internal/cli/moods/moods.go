package moods

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/welltrack/internal/cli"
	"github.com/julianstephens/welltrack/internal/models"
)

type MoodCmd struct {
	Add    MoodAddCmd    `cmd:"" help:"Record how you're feeling."`
	List   MoodListCmd   `cmd:"" help:"Show your mood journal." default:"1"`
	Delete MoodDeleteCmd `cmd:"" help:"Delete a mood entry."`
}

type MoodAddCmd struct {
	Emoji string `help:"Mood emoji (one of the supported set)."`
	Note  string `help:"Optional note." default:""`
}

func (c *MoodAddCmd) Run(ctx *cli.Context) error {
	userID, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	if c.Emoji == "" {
		options := make([]huh.Option[string], 0, len(models.SupportedMoods))
		for _, m := range models.SupportedMoods {
			options = append(options, huh.NewOption(m, m))
		}
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("How are you feeling?").
					Options(options...).
					Value(&c.Emoji),
				huh.NewInput().
					Title("Note (optional)").
					Value(&c.Note),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	entry, err := ctx.Data.AddMood(userID, c.Emoji, c.Note)
	if err != nil {
		return err
	}

	fmt.Printf("Recorded %s at %s\n", entry.Emoji, entry.Timestamp.Format("15:04"))
	return nil
}

type MoodListCmd struct {
	Limit int `help:"Show only the most recent N entries." default:"0"`
}

func (c *MoodListCmd) Run(ctx *cli.Context) error {
	userID, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	moods, err := ctx.Data.ListMoods(userID)
	if err != nil {
		return err
	}

	if len(moods) == 0 {
		fmt.Println("No mood entries yet. Record one with 'welltrack mood add'.")
		return nil
	}

	// Newest last in storage; show newest first
	start := 0
	if c.Limit > 0 && len(moods) > c.Limit {
		start = len(moods) - c.Limit
	}
	for i := len(moods) - 1; i >= start; i-- {
		m := moods[i]
		line := fmt.Sprintf("%s  %s", m.Timestamp.Format("2006-01-02 15:04"), m.Emoji)
		if strings.TrimSpace(m.Note) != "" {
			line += "  " + m.Note
		}
		fmt.Printf("%s\n    id: %s\n", line, m.ID)
	}

	return nil
}

type MoodDeleteCmd struct {
	ID string `arg:"" help:"Mood entry id."`
}

func (c *MoodDeleteCmd) Run(ctx *cli.Context) error {
	userID, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	if err := ctx.Data.DeleteMood(userID, c.ID); err != nil {
		return err
	}
	fmt.Println("Mood entry deleted.")
	return nil
}
