package water

import (
	"fmt"
	"strings"

	"github.com/julianstephens/welltrack/internal/cli"
	"github.com/julianstephens/welltrack/internal/validation"
)

type WaterCmd struct {
	Status StatusCmd `cmd:"" help:"Show today's water count." default:"1"`
	Drink  DrinkCmd  `cmd:"" help:"Log a glass of water."`
	Undo   UndoCmd   `cmd:"" help:"Remove the last logged glass."`
	Goal   GoalCmd   `cmd:"" help:"Show or set the daily goal."`
	Reset  ResetCmd  `cmd:"" help:"Reset today's count to zero."`
}

func progressBar(count, goal int) string {
	if goal <= 0 {
		return ""
	}
	filled := count
	if filled > goal {
		filled = goal
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", goal-filled) + "]"
}

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *cli.Context) error {
	userID, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	h, err := ctx.Data.Hydration(userID)
	if err != nil {
		return err
	}

	fmt.Printf("Water today: %d / %d glasses  %s\n", h.CurrentCount, h.DailyGoal, progressBar(h.CurrentCount, h.DailyGoal))
	if h.CurrentCount >= h.DailyGoal {
		fmt.Println("🎉 Daily goal reached!")
	}
	return nil
}

type DrinkCmd struct{}

func (c *DrinkCmd) Run(ctx *cli.Context) error {
	userID, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	h, err := ctx.Data.IncrementWater(userID)
	if err != nil {
		return err
	}

	fmt.Printf("💧 %d / %d glasses  %s\n", h.CurrentCount, h.DailyGoal, progressBar(h.CurrentCount, h.DailyGoal))
	if h.CurrentCount == h.DailyGoal {
		fmt.Println("🎉 Daily goal reached!")
	}
	return nil
}

type UndoCmd struct{}

func (c *UndoCmd) Run(ctx *cli.Context) error {
	userID, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	h, err := ctx.Data.DecrementWater(userID)
	if err != nil {
		return err
	}

	fmt.Printf("%d / %d glasses  %s\n", h.CurrentCount, h.DailyGoal, progressBar(h.CurrentCount, h.DailyGoal))
	return nil
}

type GoalCmd struct {
	Glasses int `arg:"" optional:"" help:"New daily goal in glasses (1-20)."`
}

func (c *GoalCmd) Run(ctx *cli.Context) error {
	userID, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	if c.Glasses == 0 {
		goal, err := ctx.Data.HydrationGoal(userID)
		if err != nil {
			return err
		}
		fmt.Printf("Daily goal: %d glasses\n", goal)
		return nil
	}

	if err := validation.ValidateHydrationGoal(c.Glasses); err != nil {
		return err
	}
	if err := ctx.Data.SetHydrationGoal(userID, c.Glasses); err != nil {
		return err
	}
	fmt.Printf("✓ Daily goal set to %d glasses.\n", c.Glasses)
	return nil
}

type ResetCmd struct{}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	userID, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	if err := ctx.Data.ResetDailyHydration(userID); err != nil {
		return err
	}
	fmt.Println("Water count reset to 0.")
	return nil
}
