package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/daneoapp/daneo/internal/router"
	"github.com/daneoapp/daneo/internal/screen"
	"github.com/daneoapp/daneo/internal/studyapi"
	"github.com/daneoapp/daneo/internal/ui/layout"
	"github.com/daneoapp/daneo/internal/ui/theme"
)

// SummaryScreen displays the completion summary the service reported.
type SummaryScreen struct {
	completion *studyapi.Completion
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(completion *studyapi.Completion) *SummaryScreen {
	return &SummaryScreen{completion: completion}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	c := s.completion
	if c == nil {
		return ""
	}
	sum := c.Summary

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Session complete!"))
	b.WriteString("\n\n")

	mins := sum.DurationSeconds / 60
	secs := sum.DurationSeconds % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	accuracy := fmt.Sprintf("%.0f%%", sum.Accuracy*100)
	statsLine := fmt.Sprintf("Cards: %d        Correct: %d        Wrong: %d        Accuracy: %s",
		sum.TotalCards, sum.Correct, sum.Wrong, accuracy)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	rewards := []string{
		fmt.Sprintf("★ %d day streak", c.Streak),
		fmt.Sprintf("✦ %d xp earned", c.XP),
	}
	if c.DailyGoal > 0 {
		rewards = append(rewards, fmt.Sprintf("◎ daily goal: %d", c.DailyGoal))
	}
	for _, line := range rewards {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).Render(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Enter to go home."))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
