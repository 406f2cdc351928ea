package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/daneoapp/daneo/internal/config"
	"github.com/daneoapp/daneo/internal/router"
	"github.com/daneoapp/daneo/internal/screen"
	studyscreen "github.com/daneoapp/daneo/internal/screens/study"
	"github.com/daneoapp/daneo/internal/screens/wrongnotes"
	"github.com/daneoapp/daneo/internal/selfupdate"
	"github.com/daneoapp/daneo/internal/store"
	"github.com/daneoapp/daneo/internal/ui/components"
)

// UpdateChecker is the slice of the release checker the home screen
// uses for its background version probe.
type UpdateChecker interface {
	Check(ctx context.Context, input *selfupdate.CheckInput) (*selfupdate.CheckResult, error)
}

type updateCheckMsg struct {
	LatestVersion string
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
	disabled   map[int]bool

	sessions int
	cards    int
	accuracy float64

	tokenMissing  bool
	checker       UpdateChecker
	version       string
	latestVersion string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(svc studyscreen.Service, reviews store.ReviewRepo, notes store.WrongNoteRepo, cfg *config.Config, checker UpdateChecker, version string) *HomeScreen {
	// Load lifetime stats for the dashboard bar.
	var stats store.Stats
	if reviews != nil {
		stats, _ = reviews.Stats(context.Background())
	}

	tokenMissing := cfg.APIToken == ""

	menuLabels := []string{"START STUDYING", "WRONG NOTES", "EXIT"}
	disabled := map[int]bool{}
	if tokenMissing {
		disabled[0] = true
	}

	items := []components.MenuItem{
		{Label: menuLabels[0], Disabled: tokenMissing, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: studyscreen.New(svc, reviews, notes, cfg, nil),
				}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: wrongnotes.New(notes)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:         components.NewMenu(items),
		menuLabels:   menuLabels,
		disabled:     disabled,
		sessions:     stats.Sessions,
		cards:        stats.CardsStudied,
		accuracy:     stats.Accuracy(),
		tokenMissing: tokenMissing,
		checker:      checker,
		version:      version,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	if h.checker == nil {
		return nil
	}
	checker, version := h.checker, h.version
	return func() tea.Msg {
		result, err := checker.Check(context.Background(), &selfupdate.CheckInput{Version: version})
		if err != nil || !result.UpdateAvailable {
			return nil
		}
		return updateCheckMsg{LatestVersion: result.LatestVersion}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(updateCheckMsg); ok {
		h.latestVersion = m.LatestVersion
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	sections = append(sections, renderStatsBar(
		h.sessions, h.cards, h.accuracy, cw, compact))

	if h.tokenMissing {
		sections = append(sections, renderTokenBanner(cw))
	}

	if compact {
		sections = append(sections, renderHomeMenuCompact(
			h.menuLabels, h.menu.Selected, cw, h.disabled))
	} else {
		sections = append(sections, renderHomeMenu(
			h.menuLabels, h.menu.Selected, cw, h.disabled))
	}

	if h.latestVersion != "" {
		sections = append(sections, renderUpdateNote(h.latestVersion, cw))
	}

	content := strings.Join(sections, "\n\n")

	return renderHomeFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
