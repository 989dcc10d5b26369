package habits

import (
	"fmt"

	"github.com/julianstephens/welltrack/internal/cli"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits." default:"1"`
	Edit   HabitEditCmd   `cmd:"" help:"Edit a habit's name or goal."`
	Toggle HabitToggleCmd `cmd:"" help:"Toggle a habit's completion."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit."`
}

type HabitAddCmd struct {
	Name string `arg:"" help:"Habit name."`
	Goal string `help:"Free-text goal, e.g. '3x per week'." default:""`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	userID, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	habit, err := ctx.Data.AddHabit(userID, c.Name, c.Goal)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%s)\n", habit.Name, habit.ID)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	userID, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	habits, err := ctx.Data.ListHabits(userID)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits yet. Add one with 'welltrack habit add'.")
		return nil
	}

	for _, habit := range habits {
		mark := "[ ]"
		if habit.IsCompleted {
			mark = "[✓]"
		}
		line := fmt.Sprintf("%s %s", mark, habit.Name)
		if habit.Goal != "" {
			line += fmt.Sprintf("  (%s)", habit.Goal)
		}
		fmt.Printf("%s\n    id: %s\n", line, habit.ID)
	}

	return nil
}

type HabitEditCmd struct {
	ID   string `arg:"" help:"Habit id."`
	Name string `help:"New habit name."`
	Goal string `help:"New goal text."`
}

func (c *HabitEditCmd) Run(ctx *cli.Context) error {
	userID, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	habits, err := ctx.Data.ListHabits(userID)
	if err != nil {
		return err
	}

	name, goal := c.Name, c.Goal
	for _, h := range habits {
		if h.ID == c.ID {
			if name == "" {
				name = h.Name
			}
			if goal == "" {
				goal = h.Goal
			}
			break
		}
	}

	if err := ctx.Data.UpdateHabit(userID, c.ID, name, goal); err != nil {
		return err
	}
	fmt.Println("✓ Habit updated.")
	return nil
}

type HabitToggleCmd struct {
	ID string `arg:"" help:"Habit id."`
}

func (c *HabitToggleCmd) Run(ctx *cli.Context) error {
	userID, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	habit, err := ctx.Data.ToggleHabitCompletion(userID, c.ID)
	if err != nil {
		return err
	}

	if habit.IsCompleted {
		fmt.Printf("✓ Completed: %s\n", habit.Name)
	} else {
		fmt.Printf("Unmarked: %s\n", habit.Name)
	}
	return nil
}

type HabitDeleteCmd struct {
	ID string `arg:"" help:"Habit id."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	userID, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	if err := ctx.Data.DeleteHabit(userID, c.ID); err != nil {
		return err
	}
	fmt.Println("Habit deleted.")
	return nil
}
