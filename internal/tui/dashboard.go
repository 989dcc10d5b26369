// Package tui renders the interactive dashboard: habit checklist, water
// counter, and recent moods in one view.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/welltrack/internal/models"
	"github.com/julianstephens/welltrack/internal/userdata"
)

type habitItem struct {
	habit models.Habit
}

func (i habitItem) Title() string {
	if i.habit.IsCompleted {
		return "✓ " + i.habit.Name
	}
	return "○ " + i.habit.Name
}

func (i habitItem) Description() string {
	if i.habit.Goal != "" {
		return i.habit.Goal
	}
	if i.habit.IsCompleted {
		return "completed"
	}
	return "not completed"
}

func (i habitItem) FilterValue() string { return i.habit.Name }

type KeyMap struct {
	Toggle key.Binding
	Drink  key.Binding
	Undo   key.Binding
	Quit   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "t"),
			key.WithHelp("space", "toggle habit"),
		),
		Drink: key.NewBinding(
			key.WithKeys("+", "w"),
			key.WithHelp("w", "log water"),
		),
		Undo: key.NewBinding(
			key.WithKeys("-", "u"),
			key.WithHelp("u", "undo water"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type Model struct {
	data   *userdata.Store
	userID string

	list      list.Model
	keys      KeyMap
	hydration models.Hydration
	moods     []models.MoodEntry
	err       error

	width  int
	height int

	titleStyle lipgloss.Style
	paneStyle  lipgloss.Style
	dimStyle   lipgloss.Style
}

func New(data *userdata.Store, userID string, darkMode bool) (Model, error) {
	habits, err := data.ListHabits(userID)
	if err != nil {
		return Model{}, err
	}
	hydration, err := data.Hydration(userID)
	if err != nil {
		return Model{}, err
	}
	moods, err := data.ListMoods(userID)
	if err != nil {
		return Model{}, err
	}

	items := make([]list.Item, len(habits))
	for i, h := range habits {
		items[i] = habitItem{habit: h}
	}

	l := list.New(items, list.NewDefaultDelegate(), 40, 14)
	l.Title = "Habits"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Drink, keys.Undo, keys.Quit}
	}

	accent := lipgloss.Color("12")
	if darkMode {
		accent = lipgloss.Color("14")
	}

	return Model{
		data:       data,
		userID:     userID,
		list:       l,
		keys:       keys,
		hydration:  hydration,
		moods:      moods,
		titleStyle: lipgloss.NewStyle().Bold(true).Foreground(accent),
		paneStyle:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		dimStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width/2, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			if item, ok := m.list.SelectedItem().(habitItem); ok {
				habit, err := m.data.ToggleHabitCompletion(m.userID, item.habit.ID)
				if err != nil {
					m.err = err
					return m, nil
				}
				m.list.SetItem(m.list.Index(), habitItem{habit: habit})
			}
			return m, nil

		case key.Matches(msg, m.keys.Drink):
			h, err := m.data.IncrementWater(m.userID)
			if err != nil {
				m.err = err
				return m, nil
			}
			m.hydration = h
			return m, nil

		case key.Matches(msg, m.keys.Undo):
			h, err := m.data.DecrementWater(m.userID)
			if err != nil {
				m.err = err
				return m, nil
			}
			m.hydration = h
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	left := m.paneStyle.Render(m.list.View())

	water := fmt.Sprintf("%s\n%d / %d glasses\n%s",
		m.titleStyle.Render("Water"),
		m.hydration.CurrentCount, m.hydration.DailyGoal,
		waterBar(m.hydration.CurrentCount, m.hydration.DailyGoal))

	moodLines := []string{m.titleStyle.Render("Recent moods")}
	shown := 0
	for i := len(m.moods) - 1; i >= 0 && shown < 5; i-- {
		mo := m.moods[i]
		line := fmt.Sprintf("%s %s", mo.Timestamp.Format("Jan 02 15:04"), mo.Emoji)
		if mo.Note != "" {
			line += " " + mo.Note
		}
		moodLines = append(moodLines, line)
		shown++
	}
	if shown == 0 {
		moodLines = append(moodLines, m.dimStyle.Render("no entries yet"))
	}

	right := lipgloss.JoinVertical(lipgloss.Left,
		m.paneStyle.Render(water),
		m.paneStyle.Render(strings.Join(moodLines, "\n")),
	)

	view := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	if m.err != nil {
		view += "\n" + m.dimStyle.Render("error: "+m.err.Error())
	}
	view += "\n" + m.dimStyle.Render("space: toggle habit · w: log water · u: undo · q: quit")
	return view
}

func waterBar(count, goal int) string {
	if goal <= 0 {
		return ""
	}
	filled := count
	if filled > goal {
		filled = goal
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", goal-filled)
}
