package trends

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/welltrack/internal/cli"
	"github.com/julianstephens/welltrack/internal/constants"
	"github.com/julianstephens/welltrack/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type TrendsCmd struct{}

func (c *TrendsCmd) Run(ctx *cli.Context) error {
	userID, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Wellness Trends"))
	fmt.Println()

	if err := c.renderHabits(ctx, userID); err != nil {
		return err
	}
	if err := c.renderHydration(ctx, userID); err != nil {
		return err
	}
	if err := c.renderMoods(ctx, userID); err != nil {
		return err
	}

	c.renderCorrelation()
	return nil
}

func (c *TrendsCmd) renderHabits(ctx *cli.Context, userID string) error {
	habits, err := ctx.Data.ListHabits(userID)
	if err != nil {
		return err
	}
	done, err := ctx.Data.CompletedToday(userID)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Habits"))
	if len(habits) == 0 {
		fmt.Println(dimStyle.Render("  no habits tracked"))
	} else {
		fmt.Printf("  %d of %d completed today\n", done, len(habits))
		fmt.Printf("  %s\n", barStyle.Render(bar(done, len(habits), 20)))
	}
	fmt.Println()
	return nil
}

func (c *TrendsCmd) renderHydration(ctx *cli.Context, userID string) error {
	h, err := ctx.Data.Hydration(userID)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Hydration"))
	fmt.Printf("  %d of %d glasses today\n", h.CurrentCount, h.DailyGoal)
	fmt.Printf("  %s\n\n", barStyle.Render(bar(h.CurrentCount, h.DailyGoal, 20)))
	return nil
}

func (c *TrendsCmd) renderMoods(ctx *cli.Context, userID string) error {
	moods, err := ctx.Data.ListMoods(userID)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Moods (last 7 days)"))
	cutoff := time.Now().AddDate(0, 0, -7)
	counts := make(map[string]int)
	total := 0
	for _, m := range moods {
		if m.Timestamp.Before(cutoff) {
			continue
		}
		counts[m.Emoji]++
		total++
	}

	if total == 0 {
		fmt.Println(dimStyle.Render("  no mood entries this week"))
	} else {
		for _, emoji := range models.SupportedMoods {
			if n := counts[emoji]; n > 0 {
				fmt.Printf("  %s %s %d\n", emoji, barStyle.Render(strings.Repeat("▇", n)), n)
			}
		}
	}
	fmt.Println()
	return nil
}

// renderCorrelation shows an illustrative hydration/mood chart. The real
// correlation needs weeks of history, so a fixed sample stands in until then.
func (c *TrendsCmd) renderCorrelation() {
	fmt.Println(titleStyle.Render("Hydration vs Mood (sample)"))
	sample := []struct {
		glasses int
		mood    string
	}{
		{3, "😔"}, {5, "😐"}, {6, "🙂"}, {8, "😄"}, {7, "🙂"}, {8, "😄"}, {4, "😐"},
	}
	days := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	for i, p := range sample {
		fmt.Printf("  %s %s %s\n", days[i], barStyle.Render(bar(p.glasses, constants.DefaultHydrationGoal, 10)), p.mood)
	}
	fmt.Println(dimStyle.Render("  (sample data; keep logging to build your own chart)"))
}

func bar(value, max, width int) string {
	if max <= 0 || width <= 0 {
		return ""
	}
	filled := value * width / max
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
