package study

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/daneoapp/daneo/internal/config"
	"github.com/daneoapp/daneo/internal/router"
	"github.com/daneoapp/daneo/internal/screen"
	"github.com/daneoapp/daneo/internal/store"
	sess "github.com/daneoapp/daneo/internal/study"
	"github.com/daneoapp/daneo/internal/studyapi"
)

// mockService implements Service with scripted failures.
type mockService struct {
	failNext int

	startCalls    int
	submitCalls   []studyapi.SubmitRequest
	completeCalls int

	remaining int
}

var errDown = errors.New("service unavailable")

func (m *mockService) StartSession(_ context.Context, _, _ int) (*studyapi.Session, error) {
	m.startCalls++
	return &studyapi.Session{ID: "sess-1", CardsRemaining: m.remaining}, nil
}

func (m *mockService) SubmitAnswer(_ context.Context, req studyapi.SubmitRequest) (*studyapi.SubmitResult, error) {
	m.submitCalls = append(m.submitCalls, req)
	correct := req.Answer == "집중"
	return &studyapi.SubmitResult{IsCorrect: correct, CorrectAnswer: "집중", UserAnswer: req.Answer}, nil
}

func (m *mockService) NextCard(_ context.Context, _ string, _ studyapi.QuizType) (*studyapi.NextCard, error) {
	if m.failNext > 0 {
		m.failNext--
		return nil, &studyapi.ErrUnavailable{Err: errDown}
	}
	if m.remaining == 0 {
		return &studyapi.NextCard{Card: nil, CardsRemaining: 0}, nil
	}
	m.remaining--
	return &studyapi.NextCard{Card: testCard(), CardsRemaining: m.remaining, CardsCompleted: 1}, nil
}

func (m *mockService) CompleteSession(_ context.Context, _ string) (*studyapi.Completion, error) {
	m.completeCalls++
	return &studyapi.Completion{Summary: studyapi.Summary{TotalCards: 3}}, nil
}

// mockReviewRepo implements store.ReviewRepo.
type mockReviewRepo struct {
	reviews       []store.ReviewEventData
	sessionEvents []store.SessionEventData
}

func (m *mockReviewRepo) AppendReview(_ context.Context, data store.ReviewEventData) error {
	m.reviews = append(m.reviews, data)
	return nil
}
func (m *mockReviewRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockReviewRepo) Stats(_ context.Context) (store.Stats, error) {
	return store.Stats{}, nil
}

// mockNoteRepo implements store.WrongNoteRepo.
type mockNoteRepo struct {
	notes []store.WrongNote
}

func (m *mockNoteRepo) Upsert(_ context.Context, note store.WrongNote) error {
	m.notes = append(m.notes, note)
	return nil
}
func (m *mockNoteRepo) List(_ context.Context, _ int) ([]store.WrongNote, error) {
	return m.notes, nil
}
func (m *mockNoteRepo) Count(_ context.Context) (int, error) { return len(m.notes), nil }
func (m *mockNoteRepo) Clear(_ context.Context) error        { m.notes = nil; return nil }

func testCard() *studyapi.Card {
	return &studyapi.Card{
		ID:            "card-1",
		EnglishWord:   "focus",
		KoreanMeaning: "집중",
		QuizType:      studyapi.QuizWordToMeaning,
		Question:      studyapi.Question{Text: "What does focus mean?"},
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testStudyScreen(mode string, remaining int) (*StudyScreen, *mockService, *mockReviewRepo, *mockNoteRepo) {
	svc := &mockService{remaining: remaining}
	reviews := &mockReviewRepo{}
	notes := &mockNoteRepo{}
	cfg := &config.Config{Mode: mode, NewCardsLimit: 10, ReviewCardsLimit: 20}
	s := New(svc, reviews, notes, cfg, nil)
	return s, svc, reviews, notes
}

// drive pumps messages through Update, running every returned command
// until the queue drains. Router messages are collected instead of run;
// foreign messages (cursor blinks and the like) are dropped.
func drive(t *testing.T, s *StudyScreen, first tea.Msg) []tea.Msg {
	t.Helper()
	var routed []tea.Msg
	queue := []tea.Msg{first}
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]

		switch msg.(type) {
		case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
			routed = append(routed, msg)
			continue
		}

		_, cmd := s.Update(msg)
		queue = append(queue, collect(cmd)...)
	}
	return routed
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	out := cmd()
	if out == nil {
		return nil
	}
	if batch, ok := out.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collect(c)...)
		}
		return msgs
	}
	switch out.(type) {
	case sessionReadyMsg, cardMsg, unitDoneMsg, emptySessionMsg,
		router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
		return []tea.Msg{out}
	}
	return nil
}

func startSession(t *testing.T, s *StudyScreen) {
	t.Helper()
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("Init returned no command")
	}
	drive(t, s, cmd())
}

func TestStudyScreen_Title(t *testing.T) {
	s, _, _, _ := testStudyScreen(config.ModeFlip, 3)
	if s.Title() != "Study" {
		t.Errorf("Title = %q, want %q", s.Title(), "Study")
	}
}

func TestStudyScreen_View_Loading(t *testing.T) {
	s, _, _, _ := testStudyScreen(config.ModeFlip, 3)
	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty view for loading state")
	}
}

func TestStudyScreen_StartsSessionAndPresentsCard(t *testing.T) {
	s, svc, reviews, _ := testStudyScreen(config.ModeFlip, 3)
	startSession(t, s)

	if svc.startCalls != 1 {
		t.Errorf("startCalls = %d, want 1", svc.startCalls)
	}
	if s.state.Phase != sess.PhasePresenting {
		t.Fatalf("phase = %v, want presenting", s.state.Phase)
	}
	if s.flip == nil {
		t.Fatal("expected a flip engine for the configured mode")
	}
	if len(reviews.sessionEvents) != 1 || reviews.sessionEvents[0].Action != "start" {
		t.Errorf("session events = %+v, want one start", reviews.sessionEvents)
	}
}

func TestStudyScreen_RatingLockedBeforeFlip(t *testing.T) {
	s, svc, _, _ := testStudyScreen(config.ModeFlip, 3)
	startSession(t, s)

	drive(t, s, keyPress('3'))
	if len(svc.submitCalls) != 0 {
		t.Error("rating must be ignored before the card is flipped")
	}
}

func TestStudyScreen_FlipAndRate_SubmitsUnit(t *testing.T) {
	s, svc, reviews, _ := testStudyScreen(config.ModeFlip, 3)
	startSession(t, s)

	drive(t, s, keyPress(' '))
	if !s.flip.CanRate() {
		t.Fatal("expected the card to be flipped")
	}

	drive(t, s, keyPress('3'))
	if len(svc.submitCalls) != 1 {
		t.Fatalf("submitCalls = %d, want 1", len(svc.submitCalls))
	}
	if s.state.Phase != sess.PhasePresenting {
		t.Errorf("phase = %v, want presenting the follow-up card", s.state.Phase)
	}
	if len(reviews.reviews) != 1 {
		t.Errorf("review events = %d, want 1", len(reviews.reviews))
	}
	if reviews.reviews[0].Rating != "good" {
		t.Errorf("rating = %q, want good", reviews.reviews[0].Rating)
	}
	if s.state.Progress.Studied != 1 || s.state.Progress.Correct != 1 {
		t.Errorf("progress = %+v, want 1 studied / 1 correct", s.state.Progress)
	}
}

func TestStudyScreen_UnitFailure_RetryAppliesEffectsOnce(t *testing.T) {
	s, svc, reviews, _ := testStudyScreen(config.ModeFlip, 3)
	startSession(t, s)
	svc.failNext = 1

	drive(t, s, keyPress(' '))
	drive(t, s, keyPress('3'))

	if s.state.Phase != sess.PhaseRetryPending {
		t.Fatalf("phase = %v, want retry-pending", s.state.Phase)
	}
	if len(reviews.reviews) != 0 {
		t.Fatal("no local effects may apply for a failed unit")
	}
	firstKey := s.state.Pending.Job.Key

	drive(t, s, keyPress('r'))

	if s.state.Phase != sess.PhasePresenting {
		t.Fatalf("phase = %v after retry, want presenting", s.state.Phase)
	}
	if len(svc.submitCalls) != 2 {
		t.Fatalf("submitCalls = %d, want 2 (one per attempt)", len(svc.submitCalls))
	}
	if svc.submitCalls[0].IdempotencyKey != firstKey || svc.submitCalls[1].IdempotencyKey != firstKey {
		t.Error("both attempts must reuse the original idempotency key")
	}
	if len(reviews.reviews) != 1 {
		t.Errorf("review events = %d, want exactly 1 after retry", len(reviews.reviews))
	}
	if s.state.Progress.Studied != 1 {
		t.Errorf("studied = %d, want exactly 1", s.state.Progress.Studied)
	}
}

func TestStudyScreen_WrongChoice_RecordsNote(t *testing.T) {
	s, _, _, notes := testStudyScreen(config.ModeChoice, 3)

	card := testCard()
	card.Options = []string{"집중", "약속"}

	startSession(t, s)
	// Re-present with options so the choice engine builds.
	drive(t, s, cardMsg{Next: &studyapi.NextCard{Card: card, CardsRemaining: 2, CardsCompleted: 1}})
	if s.choice == nil {
		t.Fatal("expected a choice engine")
	}

	// Select the wrong option and reveal.
	for i, opt := range s.choice.Options() {
		if opt != "집중" {
			s.choice.Select(i)
			break
		}
	}
	drive(t, s, specialKey(tea.KeyEnter))
	if !s.choice.CanRate() {
		t.Fatal("expected reveal to unlock rating")
	}

	drive(t, s, keyPress('1'))
	if len(notes.notes) != 1 {
		t.Fatalf("wrong notes = %d, want 1", len(notes.notes))
	}
	if notes.notes[0].Word != "focus" || notes.notes[0].CorrectAnswer != "집중" {
		t.Errorf("note = %+v", notes.notes[0])
	}
}

func TestStudyScreen_ChoiceWithoutOptions_FallsBackToFlip(t *testing.T) {
	s, _, _, _ := testStudyScreen(config.ModeChoice, 3)
	startSession(t, s)

	// testCard has no options, so the configured choice mode can't run.
	if s.choice != nil {
		t.Fatal("choice engine must not build without options")
	}
	if s.flip == nil {
		t.Fatal("expected a flip fallback")
	}
	if s.fallbackNote == "" {
		t.Error("expected a fallback notice")
	}
}

func TestStudyScreen_LastCard_CompletesAndHandsOff(t *testing.T) {
	s, svc, reviews, _ := testStudyScreen(config.ModeFlip, 1)
	startSession(t, s)

	drive(t, s, keyPress(' '))
	routed := drive(t, s, keyPress('3'))

	if svc.completeCalls != 1 {
		t.Fatalf("completeCalls = %d, want 1", svc.completeCalls)
	}
	if s.state.Phase != sess.PhaseComplete {
		t.Errorf("phase = %v, want complete", s.state.Phase)
	}
	if len(routed) != 1 {
		t.Fatalf("routed messages = %d, want a screen replacement", len(routed))
	}
	if _, ok := routed[0].(router.ReplaceScreenMsg); !ok {
		t.Errorf("routed message = %T, want ReplaceScreenMsg", routed[0])
	}

	var complete int
	for _, ev := range reviews.sessionEvents {
		if ev.Action == "complete" {
			complete++
		}
	}
	if complete != 1 {
		t.Errorf("complete events = %d, want 1", complete)
	}
}

func TestStudyScreen_QuitConfirm(t *testing.T) {
	s, _, _, _ := testStudyScreen(config.ModeFlip, 3)
	startSession(t, s)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*StudyScreen)
	if !ss.showQuitConfirm {
		t.Fatal("expected quit confirmation")
	}

	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*StudyScreen)
	if ss.showQuitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}

	scr, _ = ss.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a pop command after confirming quit")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestStudyScreen_ResumeSkipsStart(t *testing.T) {
	svc := &mockService{remaining: 2}
	reviews := &mockReviewRepo{}
	notes := &mockNoteRepo{}
	cfg := &config.Config{Mode: config.ModeFlip, NewCardsLimit: 10, ReviewCardsLimit: 20}
	resumed := &studyapi.Session{ID: "sess-resumed", CardsRemaining: 2}

	s := New(svc, reviews, notes, cfg, resumed)
	startSession(t, s)

	if svc.startCalls != 0 {
		t.Errorf("startCalls = %d, want 0 for a resumed session", svc.startCalls)
	}
	if s.state.Session.ID != "sess-resumed" {
		t.Errorf("session = %q, want the resumed one", s.state.Session.ID)
	}
}

func TestStudyScreen_TypingMode_HintAndCorrect(t *testing.T) {
	s, svc, _, _ := testStudyScreen(config.ModeTyping, 3)
	startSession(t, s)

	if s.typing == nil {
		t.Fatal("expected a typing engine")
	}

	// One hint, then the remainder.
	drive(t, s, specialKey(tea.KeyTab))
	engine := s.typing.Engine()
	if engine.Hints() != 1 {
		t.Fatalf("hints = %d, want 1", engine.Hints())
	}

	engine.SetInput(engine.Prefix() + "중")
	if !s.typing.CanRate() {
		t.Fatal("expected the completed answer to unlock rating")
	}

	drive(t, s, keyPress('4'))
	if len(svc.submitCalls) != 1 {
		t.Fatalf("submitCalls = %d, want 1", len(svc.submitCalls))
	}
	if svc.submitCalls[0].Answer != "집중" {
		t.Errorf("submitted answer = %q, want the typed value", svc.submitCalls[0].Answer)
	}
}
