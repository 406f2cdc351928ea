package study

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/daneoapp/daneo/internal/config"
	"github.com/daneoapp/daneo/internal/router"
	"github.com/daneoapp/daneo/internal/screen"
	"github.com/daneoapp/daneo/internal/screens/summary"
	"github.com/daneoapp/daneo/internal/store"
	sess "github.com/daneoapp/daneo/internal/study"
	"github.com/daneoapp/daneo/internal/studyapi"
	"github.com/daneoapp/daneo/internal/typing"
	"github.com/daneoapp/daneo/internal/ui/components"
	"github.com/daneoapp/daneo/internal/ui/layout"
)

// Service is the slice of the study service this screen drives.
type Service interface {
	StartSession(ctx context.Context, newCardsLimit, reviewCardsLimit int) (*studyapi.Session, error)
	sess.Client
}

// StudyScreen implements screen.Screen for an active study session. It
// owns the session state; every mutation happens in its message
// handlers.
type StudyScreen struct {
	svc     Service
	reviews store.ReviewRepo
	notes   store.WrongNoteRepo

	modeName    string
	quizType    studyapi.QuizType
	newLimit    int
	reviewLimit int

	// resume, when set, is adopted instead of starting a new session.
	resume *studyapi.Session

	state *sess.SessionState

	// Exactly one engine is non-nil while a card is presented.
	flip   *sess.FlipMode
	choice *sess.ChoiceMode
	typing *sess.TypingMode

	input components.TextInput

	// fallbackNote explains why the card is shown as a flip card when
	// the configured mode could not present it.
	fallbackNote string

	sessionStart    time.Time
	showQuitConfirm bool
	errMsg          string
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New creates a study screen. A non-nil resume session is adopted as-is
// instead of starting a fresh one.
func New(svc Service, reviews store.ReviewRepo, notes store.WrongNoteRepo, cfg *config.Config, resume *studyapi.Session) *StudyScreen {
	return &StudyScreen{
		svc:         svc,
		reviews:     reviews,
		notes:       notes,
		modeName:    cfg.Mode,
		quizType:    studyapi.QuizType(cfg.QuizType),
		newLimit:    cfg.NewCardsLimit,
		reviewLimit: cfg.ReviewCardsLimit,
		resume:      resume,
		state:       sess.NewSessionState(),
		input:       components.NewTextInput("Type the answer...", 40),
	}
}

func (s *StudyScreen) Init() tea.Cmd {
	return s.acquireSession()
}

func (s *StudyScreen) Title() string {
	return "Study"
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	if s.showQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.state == nil || s.state.Session == nil {
		return nil
	}
	switch s.state.Phase {
	case sess.PhaseRetryPending:
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Quit"},
		}
	case sess.PhasePresenting:
		if s.canRate() {
			return []layout.KeyHint{
				{Key: "1-4", Description: "Rate recall"},
				{Key: "Esc", Description: "Quit"},
			}
		}
		switch {
		case s.flip != nil:
			return []layout.KeyHint{
				{Key: "Space", Description: "Flip"},
				{Key: "Esc", Description: "Quit"},
			}
		case s.choice != nil:
			return []layout.KeyHint{
				{Key: "↑↓", Description: "Move"},
				{Key: "Enter", Description: "Answer"},
				{Key: "Esc", Description: "Quit"},
			}
		default:
			return []layout.KeyHint{
				{Key: "Tab", Description: "Hint"},
				{Key: "Ctrl+R", Description: "Show answer"},
				{Key: "Esc", Description: "Quit"},
			}
		}
	}
	return []layout.KeyHint{{Key: "Esc", Description: "Quit"}}
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		return s.handleSessionReady(msg)

	case cardMsg:
		return s.handleCard(msg)

	case unitDoneMsg:
		return s.handleUnitDone(msg)

	case emptySessionMsg:
		return s.handleEmptySession(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward everything else to the text input while typing.
	if s.typingActive() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// acquireSession starts a new remote session, or adopts a resumed one.
func (s *StudyScreen) acquireSession() tea.Cmd {
	if s.resume != nil {
		resumed := s.resume
		return func() tea.Msg { return sessionReadyMsg{Session: resumed} }
	}
	newLimit, reviewLimit := s.newLimit, s.reviewLimit
	return func() tea.Msg {
		sessn, err := s.svc.StartSession(context.Background(), newLimit, reviewLimit)
		return sessionReadyMsg{Session: sessn, Err: err}
	}
}

func (s *StudyScreen) handleSessionReady(msg sessionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = (&sess.InitError{Err: msg.Err}).Error()
		return s, nil
	}
	s.state.AdoptSession(msg.Session)
	s.sessionStart = time.Now()

	_ = s.reviews.AppendSessionEvent(context.Background(), store.SessionEventData{
		SessionID: msg.Session.ID,
		Action:    "start",
	})

	return s, s.fetchCard()
}

// fetchCard issues a next-card fetch unless one is already in flight.
func (s *StudyScreen) fetchCard() tea.Cmd {
	if !s.state.BeginFetch() {
		return nil
	}
	sessionID := s.state.Session.ID
	quizType := s.quizType
	return func() tea.Msg {
		next, err := s.svc.NextCard(context.Background(), sessionID, quizType)
		return cardMsg{Next: next, Err: err}
	}
}

func (s *StudyScreen) handleCard(msg cardMsg) (screen.Screen, tea.Cmd) {
	s.state.FetchInFlight = false
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	if msg.Next.Card == nil {
		// Nothing to study; close the session out immediately.
		sessionID := s.state.Session.ID
		return s, func() tea.Msg {
			completion, err := s.svc.CompleteSession(context.Background(), sessionID)
			return emptySessionMsg{Completion: completion, Err: err}
		}
	}

	s.state.CardArrived(msg.Next)
	return s, s.presentCard(s.state.Current)
}

func (s *StudyScreen) handleEmptySession(msg emptySessionMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.state.Completion = msg.Completion
	s.state.Phase = sess.PhaseComplete
	return s, s.finishSession(msg.Completion)
}

// presentCard builds the engine for the configured mode. Cloze cards are
// always typed; a card the configured mode cannot present falls back to
// flip so the session never stalls.
func (s *StudyScreen) presentCard(card *studyapi.Card) tea.Cmd {
	s.flip, s.choice, s.typing = nil, nil, nil
	s.fallbackNote = ""

	mode := s.modeName
	if card.QuizType == studyapi.QuizCloze {
		mode = config.ModeTyping
	}

	switch mode {
	case config.ModeTyping:
		t, err := sess.NewTypingMode(card)
		if err != nil {
			s.fallbackToFlip(card, "cannot type this card")
			return nil
		}
		s.typing = t
		s.input.Reset()
		return s.input.Init()

	case config.ModeChoice:
		c, err := sess.NewChoiceMode(card)
		if err != nil {
			s.fallbackToFlip(card, "no options for this card")
			return nil
		}
		s.choice = c
		return nil

	default:
		s.flip = sess.NewFlipMode(card)
		return nil
	}
}

func (s *StudyScreen) fallbackToFlip(card *studyapi.Card, note string) {
	s.flip = sess.NewFlipMode(card)
	s.fallbackNote = note
}

func (s *StudyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.showQuitConfirm {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showQuitConfirm = false
		}
		return s, nil
	}

	if key == "esc" {
		s.showQuitConfirm = true
		return s, nil
	}

	switch s.state.Phase {
	case sess.PhaseRetryPending:
		if key == "r" || key == "R" || key == "enter" {
			pending := s.state.Pending
			s.state.BeginSubmit()
			return s, s.runUnit(pending.Job)
		}
		return s, nil

	case sess.PhasePresenting:
		return s.handlePresentingKey(msg)
	}

	return s, nil
}

func (s *StudyScreen) handlePresentingKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Rating keys unlock once the engine reaches a terminal state.
	if s.canRate() {
		switch key {
		case "1":
			return s.submitRating(sess.RatingAgain)
		case "2":
			return s.submitRating(sess.RatingHard)
		case "3":
			return s.submitRating(sess.RatingGood)
		case "4":
			return s.submitRating(sess.RatingEasy)
		}
	}

	switch {
	case s.flip != nil:
		if key == " " || key == "space" || key == "enter" {
			s.flip.Flip()
		}
		return s, nil

	case s.choice != nil:
		switch key {
		case "up", "k":
			s.choice.MoveUp()
		case "down", "j":
			s.choice.MoveDown()
		case "enter":
			s.choice.Reveal()
		}
		return s, nil

	case s.typing != nil:
		engine := s.typing.Engine()
		switch key {
		case "tab":
			engine.RequestHint()
			s.input.SetValue(engine.Input())
			return s, nil
		case "ctrl+r":
			engine.RevealAnswer()
			s.input.SetValue(engine.Input())
			s.input.Submit(false)
			return s, nil
		}
		if engine.CanRate() {
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		engine.SetInput(s.input.Value())
		if s.input.Value() != engine.Input() {
			// The engine kept the hint prefix through a deletion.
			s.input.SetValue(engine.Input())
		}
		if engine.State() == typing.StateCorrect {
			s.input.Submit(true)
		}
		return s, cmd
	}

	return s, nil
}

// submitRating snapshots the current card into a submission unit and
// runs it. The job carries everything a retry needs, including the
// idempotency key minted here.
func (s *StudyScreen) submitRating(rating sess.Rating) (screen.Screen, tea.Cmd) {
	card := s.state.Current
	if card == nil {
		return s, nil
	}

	answer := s.currentAnswer()
	timeMs := int(time.Since(s.state.CardShownAt).Milliseconds())

	job := sess.NewSubmitJob(s.state.Session.ID, card, answer, rating, timeMs, s.quizType)
	job.WrongAttempt = s.hadWrongAttempt(rating)

	s.state.BeginSubmit()
	return s, s.runUnit(job)
}

// runUnit executes the submit / fetch-next / maybe-complete unit off the
// update loop.
func (s *StudyScreen) runUnit(job sess.SubmitJob) tea.Cmd {
	svc := s.svc
	return func() tea.Msg {
		out, pending := sess.RunUnit(context.Background(), svc, job)
		return unitDoneMsg{Job: job, Out: out, Pending: pending}
	}
}

func (s *StudyScreen) handleUnitDone(msg unitDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.Pending != nil {
		s.state.UnitFailed(msg.Pending)
		return s, nil
	}

	// The unit succeeded: apply local effects exactly once, here. A
	// failed unit never reaches this point, so a retried unit applies
	// them a single time no matter how many attempts it took.
	s.applyLocalEffects(msg.Job, msg.Out)
	s.state.UnitSucceeded(msg.Out)

	if msg.Out.Completed() {
		return s, s.finishSession(msg.Out.Completion)
	}
	return s, s.presentCard(s.state.Current)
}

func (s *StudyScreen) applyLocalEffects(job sess.SubmitJob, out *sess.UnitOutcome) {
	ctx := context.Background()
	result := out.Result

	s.state.Progress.Apply(result)

	_ = s.reviews.AppendReview(ctx, store.ReviewEventData{
		SessionID:       job.SessionID,
		CardID:          job.Card.ID,
		Word:            job.Card.EnglishWord,
		QuizType:        string(job.Card.QuizType),
		Mode:            s.currentModeName(),
		Answer:          job.Answer,
		CorrectAnswer:   result.CorrectAnswer,
		Correct:         result.IsCorrect,
		HadWrongAttempt: job.WrongAttempt,
		Rating:          job.Rating.String(),
		TimeMs:          int64(job.ResponseTimeMs),
	})

	if !result.IsCorrect || job.WrongAttempt {
		_ = s.notes.Upsert(ctx, store.WrongNote{
			Word:          job.Card.EnglishWord,
			Sentence:      noteSentence(job.Card),
			Meaning:       job.Card.KoreanMeaning,
			UserAnswer:    job.Answer,
			CorrectAnswer: result.CorrectAnswer,
			QuizType:      string(job.Card.QuizType),
		})
	}
}

// finishSession records the completion locally and hands off to the
// summary screen in place, so "back" from the summary skips the dead
// session.
func (s *StudyScreen) finishSession(completion *studyapi.Completion) tea.Cmd {
	_ = s.reviews.AppendSessionEvent(context.Background(), store.SessionEventData{
		SessionID:      s.state.Session.ID,
		Action:         "complete",
		CardsStudied:   s.state.Progress.Studied,
		CorrectAnswers: s.state.Progress.Correct,
		DurationSecs:   int(time.Since(s.sessionStart).Seconds()),
	})

	replace := func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: summary.New(completion),
		}
	}
	if completion == nil {
		return replace
	}
	rewards := func() tea.Msg {
		return RewardsMsg{Streak: completion.Streak, XP: completion.XP}
	}
	return tea.Batch(replace, rewards)
}

// currentAnswer asks the active engine what to submit.
func (s *StudyScreen) currentAnswer() string {
	switch {
	case s.typing != nil:
		return s.typing.Answer()
	case s.choice != nil:
		return s.choice.Answer()
	case s.flip != nil:
		return s.flip.Answer()
	}
	return ""
}

func (s *StudyScreen) currentModeName() string {
	switch {
	case s.typing != nil:
		return config.ModeTyping
	case s.choice != nil:
		return config.ModeChoice
	}
	return config.ModeFlip
}

func (s *StudyScreen) canRate() bool {
	switch {
	case s.typing != nil:
		return s.typing.CanRate()
	case s.choice != nil:
		return s.choice.CanRate()
	case s.flip != nil:
		return s.flip.CanRate()
	}
	return false
}

// hadWrongAttempt derives the wrong-note trigger for the active mode.
// Flip has no verdict, so a self-reported "again" counts as a miss.
func (s *StudyScreen) hadWrongAttempt(rating sess.Rating) bool {
	switch {
	case s.typing != nil:
		return s.typing.HadWrongAttempt() || s.typing.State() == typing.StateRevealed
	case s.choice != nil:
		return !s.choice.IsCorrect()
	}
	return rating == sess.RatingAgain
}

func (s *StudyScreen) typingActive() bool {
	return s.typing != nil &&
		s.state.Phase == sess.PhasePresenting &&
		!s.showQuitConfirm &&
		!s.typing.CanRate()
}

// noteSentence picks the sentence context for a wrong note. Cloze cards
// use their Korean sentence; other cards have only the plain question.
func noteSentence(card *studyapi.Card) string {
	if card.QuizType == studyapi.QuizCloze && card.Question.IsObject() {
		if view, err := sess.BuildTypingView(card); err == nil {
			if view.KoSentence != "" {
				return view.KoSentence
			}
			return view.EnSentence
		}
	}
	return card.Question.Text
}
