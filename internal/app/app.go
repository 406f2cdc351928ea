package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/daneoapp/daneo/internal/config"
	"github.com/daneoapp/daneo/internal/router"
	"github.com/daneoapp/daneo/internal/screen"
	"github.com/daneoapp/daneo/internal/screens/home"
	studyscreen "github.com/daneoapp/daneo/internal/screens/study"
	"github.com/daneoapp/daneo/internal/store"
	"github.com/daneoapp/daneo/internal/studyapi"
	"github.com/daneoapp/daneo/internal/ui/layout"
)

// Options carries everything the TUI needs, wired up by the command
// layer.
type Options struct {
	Config  *config.Config
	Service studyscreen.Service
	Reviews store.ReviewRepo
	Notes   store.WrongNoteRepo
	Checker home.UpdateChecker
	Version string

	// AutoStart skips the home menu and opens the study screen
	// immediately.
	AutoStart bool

	// Resume, when set, is adopted by the auto-started study screen
	// instead of starting a new session.
	Resume *studyapi.Session
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int

	// Last rewards the service reported, shown in the header.
	streak int
	xp     int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Service, opts.Reviews, opts.Notes, opts.Config, opts.Checker, opts.Version)
	return AppModel{
		opts:   opts,
		router: router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	if !m.opts.AutoStart && m.opts.Resume == nil {
		return nil
	}
	opts := m.opts
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: studyscreen.New(opts.Service, opts.Reviews, opts.Notes, opts.Config, opts.Resume),
		}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case studyscreen.RewardsMsg:
		m.streak = msg.Streak
		m.xp = msg.XP
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	// Everything else, esc included, goes to the active screen. Screens
	// decide themselves when esc means "back" versus "confirm quit".
	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.streak, m.xp, m.width)

	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints asks the active screen for its key hints, with a generic
// fallback per stack depth.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Config != nil && opts.Config.Debug {
		f, err := tea.LogToFile("daneo-debug.log", "debug")
		if err == nil {
			defer func() { _ = f.Close() }()
		}
	}

	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
