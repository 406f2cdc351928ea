package home

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/daneoapp/daneo/internal/config"
	"github.com/daneoapp/daneo/internal/router"
	"github.com/daneoapp/daneo/internal/selfupdate"
	"github.com/daneoapp/daneo/internal/store"
	"github.com/daneoapp/daneo/internal/studyapi"
)

type stubService struct{}

func (stubService) StartSession(ctx context.Context, newCardsLimit, reviewCardsLimit int) (*studyapi.Session, error) {
	return &studyapi.Session{ID: "s-1"}, nil
}

func (stubService) SubmitAnswer(ctx context.Context, req studyapi.SubmitRequest) (*studyapi.SubmitResult, error) {
	return &studyapi.SubmitResult{}, nil
}

func (stubService) NextCard(ctx context.Context, sessionID string, quizType studyapi.QuizType) (*studyapi.NextCard, error) {
	return &studyapi.NextCard{}, nil
}

func (stubService) CompleteSession(ctx context.Context, sessionID string) (*studyapi.Completion, error) {
	return &studyapi.Completion{}, nil
}

type stubReviewRepo struct {
	stats store.Stats
}

func (r *stubReviewRepo) AppendReview(ctx context.Context, data store.ReviewEventData) error {
	return nil
}

func (r *stubReviewRepo) AppendSessionEvent(ctx context.Context, data store.SessionEventData) error {
	return nil
}

func (r *stubReviewRepo) Stats(ctx context.Context) (store.Stats, error) {
	return r.stats, nil
}

type stubNoteRepo struct{}

func (stubNoteRepo) Upsert(ctx context.Context, note store.WrongNote) error   { return nil }
func (stubNoteRepo) List(ctx context.Context, limit int) ([]store.WrongNote, error) {
	return nil, nil
}
func (stubNoteRepo) Count(ctx context.Context) (int, error) { return 0, nil }
func (stubNoteRepo) Clear(ctx context.Context) error        { return nil }

type stubChecker struct {
	result *selfupdate.CheckResult
}

func (c *stubChecker) Check(ctx context.Context, input *selfupdate.CheckInput) (*selfupdate.CheckResult, error) {
	return c.result, nil
}

func testConfig() *config.Config {
	return &config.Config{
		APIToken: "token",
		Mode:     config.ModeTyping,
	}
}

func newHome(cfg *config.Config) *HomeScreen {
	reviews := &stubReviewRepo{stats: store.Stats{
		Sessions:      3,
		CardsStudied:  42,
		Correct:       30,
		LastStudiedAt: time.Now(),
	}}
	return New(stubService{}, reviews, stubNoteRepo{}, cfg, nil, "v1.0.0")
}

func keyPress(s string) tea.KeyPressMsg {
	r := []rune(s)
	return tea.KeyPressMsg{Code: r[0], Text: s}
}

func TestHomeScreen_Title(t *testing.T) {
	if newHome(testConfig()).Title() != "Home" {
		t.Error("unexpected title")
	}
}

func TestHomeScreen_ShowsStats(t *testing.T) {
	view := newHome(testConfig()).View(120, 40)
	for _, want := range []string{"3 SESSIONS", "42 CARDS", "71% ACCURACY"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHomeScreen_MenuEntries(t *testing.T) {
	view := newHome(testConfig()).View(120, 40)
	for _, want := range []string{"START STUDYING", "WRONG NOTES", "EXIT"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing menu entry %q", want)
		}
	}
}

func TestHomeScreen_StartPushesStudyScreen(t *testing.T) {
	h := newHome(testConfig())
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from enter on START STUDYING")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected a PushScreenMsg")
	}
}

func TestHomeScreen_WrongNotesEntry(t *testing.T) {
	h := newHome(testConfig())

	next, _ := h.Update(keyPress("j"))
	h = next.(*HomeScreen)
	next, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from enter on WRONG NOTES")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected a PushScreenMsg")
	}
}

func TestHomeScreen_MissingTokenDisablesStart(t *testing.T) {
	cfg := testConfig()
	cfg.APIToken = ""
	h := newHome(cfg)

	view := h.View(120, 40)
	if !strings.Contains(view, "DANEO_API_TOKEN") {
		t.Error("expected token banner when no token is configured")
	}

	// The initial selection skips the disabled start entry.
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("selection should land on WRONG NOTES, not the disabled start")
	}
}

func TestHomeScreen_UpdateNote(t *testing.T) {
	reviews := &stubReviewRepo{}
	checker := &stubChecker{result: &selfupdate.CheckResult{
		UpdateAvailable: true,
		LatestVersion:   "v2.0.0",
	}}
	h := New(stubService{}, reviews, stubNoteRepo{}, testConfig(), checker, "v1.0.0")

	cmd := h.Init()
	if cmd == nil {
		t.Fatal("expected an update check command")
	}
	next, _ := h.Update(cmd())
	h = next.(*HomeScreen)

	if !strings.Contains(h.View(120, 40), "v2.0.0") {
		t.Error("expected update note in view")
	}
}
