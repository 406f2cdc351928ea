package study

import (
	"time"

	"github.com/daneoapp/daneo/internal/studyapi"
)

// Phase is the session controller's lifecycle state.
type Phase int

const (
	PhaseInitializing Phase = iota // acquiring or resuming a session
	PhaseAwaitingCard              // a card fetch is outstanding
	PhasePresenting                // the learner is working on a card
	PhaseSubmitting                // a submission unit is in flight
	PhaseRetryPending              // the unit failed; one retry action is offered
	PhaseComplete                  // summary received, session closed
)

func (p Phase) String() string {
	switch p {
	case PhaseInitializing:
		return "initializing"
	case PhaseAwaitingCard:
		return "awaiting-card"
	case PhasePresenting:
		return "presenting"
	case PhaseSubmitting:
		return "submitting"
	case PhaseRetryPending:
		return "retry-pending"
	case PhaseComplete:
		return "complete"
	}
	return "unknown"
}

// Rating is the four-level recall quality judged per card. It is
// recorded locally; the remote side derives scheduling from the answer
// itself.
type Rating int

const (
	RatingAgain Rating = iota + 1
	RatingHard
	RatingGood
	RatingEasy
)

func (r Rating) String() string {
	switch r {
	case RatingAgain:
		return "again"
	case RatingHard:
		return "hard"
	case RatingGood:
		return "good"
	case RatingEasy:
		return "easy"
	}
	return "unknown"
}

// SessionState is the single owner of all mutable session data. Only the
// study screen's message handlers touch it.
type SessionState struct {
	// Session is nil until initialization succeeds. Its ID never changes
	// afterwards.
	Session *studyapi.Session

	// Phase is the controller lifecycle state.
	Phase Phase

	// Current is the one card being presented (nil between cards). It is
	// superseded, never mutated, by the next fetch.
	Current *studyapi.Card

	// CardShownAt is when Current was first displayed, for response-time
	// reporting.
	CardShownAt time.Time

	// Pending is the single outstanding retryable submission, if any.
	Pending *PendingSubmission

	// FetchInFlight suppresses re-entrant card fetches; the remote side
	// has no concept of concurrent fetch cursors for one session.
	FetchInFlight bool

	// Progress holds the optimistic local counters.
	Progress Progress

	// Completion is set once, when the remote side reports zero
	// remaining cards.
	Completion *studyapi.Completion
}

// NewSessionState returns a state in the initializing phase.
func NewSessionState() *SessionState {
	return &SessionState{Phase: PhaseInitializing}
}

// AdoptSession installs the acquired (or resumed) session exactly once.
func (s *SessionState) AdoptSession(sess *studyapi.Session) {
	s.Session = sess
	s.Phase = PhaseAwaitingCard
}

// BeginFetch marks a card fetch as outstanding. It reports false when a
// fetch is already in flight or the session no longer accepts fetches,
// in which case the caller must not issue the call.
func (s *SessionState) BeginFetch() bool {
	if s.FetchInFlight || s.Phase == PhaseComplete || s.Session == nil {
		return false
	}
	s.FetchInFlight = true
	s.Phase = PhaseAwaitingCard
	return true
}

// CardArrived installs the fetched card and updates the session's
// authoritative counts.
func (s *SessionState) CardArrived(next *studyapi.NextCard) {
	s.FetchInFlight = false
	s.Session.CardsRemaining = next.CardsRemaining
	s.Session.CardsCompleted = next.CardsCompleted
	s.Current = next.Card
	s.CardShownAt = time.Now()
	s.Phase = PhasePresenting
}

// BeginSubmit transitions into the submitting phase. Rating controls are
// disabled from here until the unit resolves.
func (s *SessionState) BeginSubmit() {
	s.Phase = PhaseSubmitting
}

// UnitFailed parks the failed unit as the single pending retryable
// submission.
func (s *SessionState) UnitFailed(pending *PendingSubmission) {
	s.Pending = pending
	s.Phase = PhaseRetryPending
}

// UnitSucceeded clears any pending retry and installs the unit's
// follow-up fetch result. When the outcome carries a completion, the
// session is closed and accepts no further calls.
func (s *SessionState) UnitSucceeded(out *UnitOutcome) {
	s.Pending = nil
	s.Current = nil
	if out.Completion != nil {
		s.Completion = out.Completion
		s.Phase = PhaseComplete
		return
	}
	s.CardArrived(out.Next)
}
