package wrongnotes

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/daneoapp/daneo/internal/router"
	"github.com/daneoapp/daneo/internal/screen"
	"github.com/daneoapp/daneo/internal/store"
	"github.com/daneoapp/daneo/internal/ui/layout"
	"github.com/daneoapp/daneo/internal/ui/theme"
)

type notesLoadedMsg struct {
	Notes []store.WrongNote
	Err   error
}

type notesClearedMsg struct {
	Err error
}

// WrongNotesScreen displays the capped log of missed words, newest first.
type WrongNotesScreen struct {
	repo     store.WrongNoteRepo
	notes    []store.WrongNote
	selected int
	expanded map[int]bool
	loaded   bool

	confirmClear bool
	errMsg       string
}

var _ screen.Screen = (*WrongNotesScreen)(nil)
var _ screen.KeyHintProvider = (*WrongNotesScreen)(nil)

// New creates a new WrongNotesScreen.
func New(repo store.WrongNoteRepo) *WrongNotesScreen {
	return &WrongNotesScreen{
		repo:     repo,
		expanded: make(map[int]bool),
	}
}

func (s *WrongNotesScreen) Init() tea.Cmd {
	return s.load()
}

func (s *WrongNotesScreen) load() tea.Cmd {
	return func() tea.Msg {
		notes, err := s.repo.List(context.Background(), 0)
		return notesLoadedMsg{Notes: notes, Err: err}
	}
}

func (s *WrongNotesScreen) Title() string {
	return "Wrong Notes"
}

func (s *WrongNotesScreen) KeyHints() []layout.KeyHint {
	if s.confirmClear {
		return []layout.KeyHint{
			{Key: "Y", Description: "Clear all"},
			{Key: "N", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "C", Description: "Clear"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *WrongNotesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case notesLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.notes = msg.Notes
		}
		s.loaded = true
		return s, nil

	case notesClearedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.notes = nil
		s.selected = 0
		s.expanded = make(map[int]bool)
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *WrongNotesScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.confirmClear {
		switch msg.String() {
		case "y", "Y":
			s.confirmClear = false
			return s, func() tea.Msg {
				return notesClearedMsg{Err: s.repo.Clear(context.Background())}
			}
		case "n", "N", "esc":
			s.confirmClear = false
		}
		return s, nil
	}

	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
		return s, nil
	case "down", "j":
		if s.selected < len(s.notes)-1 {
			s.selected++
		}
		return s, nil
	case "enter":
		if len(s.notes) > 0 {
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
		return s, nil
	case "c", "C":
		if len(s.notes) > 0 {
			s.confirmClear = true
		}
		return s, nil
	}
	return s, nil
}

func (s *WrongNotesScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading wrong notes...")
	}
	if len(s.notes) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No wrong notes. Keep it up!")
	}

	var b strings.Builder
	b.WriteString("\n")

	if s.confirmClear {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Accent).
			Render(fmt.Sprintf("Clear all %d notes? [Y/N]", len(s.notes))))
		b.WriteString("\n\n")
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d of %d notes kept", len(s.notes), store.WrongNoteCap)))
		b.WriteString("\n\n")
	}

	for i, note := range s.notes {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %s",
			prefix,
			note.NotedAt.Format("Jan 02"),
			note.Word,
			theme.Korean.Render(note.Meaning))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, detail := range noteDetails(note) {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Render("    "+detail)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

// noteDetails lists the expanded lines for one note.
func noteDetails(note store.WrongNote) []string {
	var lines []string
	if note.Sentence != "" {
		lines = append(lines, note.Sentence)
	}
	if note.UserAnswer != "" {
		lines = append(lines, fmt.Sprintf("you answered: %s", note.UserAnswer))
	} else {
		lines = append(lines, "you answered: (revealed)")
	}
	lines = append(lines, fmt.Sprintf("correct: %s", note.CorrectAnswer))
	if note.QuizType != "" {
		lines = append(lines, fmt.Sprintf("quiz: %s", note.QuizType))
	}
	return lines
}
