package study

import (
	"testing"

	"github.com/daneoapp/daneo/internal/studyapi"
)

func adoptedState() *SessionState {
	s := NewSessionState()
	s.AdoptSession(&studyapi.Session{ID: "sess-1", CardsRemaining: 5})
	return s
}

func TestSessionState_AdoptSession(t *testing.T) {
	s := NewSessionState()
	if s.Phase != PhaseInitializing {
		t.Fatalf("phase = %v, want initializing", s.Phase)
	}
	s.AdoptSession(&studyapi.Session{ID: "sess-1"})
	if s.Phase != PhaseAwaitingCard {
		t.Errorf("phase = %v, want awaiting-card", s.Phase)
	}
}

func TestSessionState_BeginFetch_Guards(t *testing.T) {
	s := adoptedState()
	if !s.BeginFetch() {
		t.Fatal("first fetch must be allowed")
	}
	if s.BeginFetch() {
		t.Error("re-entrant fetch must be suppressed while one is in flight")
	}

	s.CardArrived(&studyapi.NextCard{Card: testCard(), CardsRemaining: 4, CardsCompleted: 1})
	if !s.BeginFetch() {
		t.Error("fetch must be allowed again once the previous one landed")
	}
}

func TestSessionState_BeginFetch_RejectedWithoutSession(t *testing.T) {
	s := NewSessionState()
	if s.BeginFetch() {
		t.Error("fetch must be rejected before a session exists")
	}
}

func TestSessionState_BeginFetch_RejectedAfterComplete(t *testing.T) {
	s := adoptedState()
	s.UnitSucceeded(&UnitOutcome{
		Result:     &studyapi.SubmitResult{IsCorrect: true},
		Completion: &studyapi.Completion{},
	})
	if s.BeginFetch() {
		t.Error("fetch must be rejected after completion")
	}
}

func TestSessionState_CardArrived(t *testing.T) {
	s := adoptedState()
	s.BeginFetch()
	s.CardArrived(&studyapi.NextCard{Card: testCard(), CardsRemaining: 4, CardsCompleted: 1})

	if s.Phase != PhasePresenting {
		t.Errorf("phase = %v, want presenting", s.Phase)
	}
	if s.FetchInFlight {
		t.Error("fetch flag must clear when the card lands")
	}
	if s.Session.CardsRemaining != 4 || s.Session.CardsCompleted != 1 {
		t.Errorf("counts = %d/%d, want remote values adopted", s.Session.CardsRemaining, s.Session.CardsCompleted)
	}
	if s.CardShownAt.IsZero() {
		t.Error("CardShownAt must be stamped for response-time reporting")
	}
}

func TestSessionState_UnitFailedThenSucceeded(t *testing.T) {
	s := adoptedState()
	s.CardArrived(&studyapi.NextCard{Card: testCard(), CardsRemaining: 4})
	s.BeginSubmit()
	if s.Phase != PhaseSubmitting {
		t.Fatalf("phase = %v, want submitting", s.Phase)
	}

	pending := &PendingSubmission{Job: testJob(), Err: errNetwork}
	s.UnitFailed(pending)
	if s.Phase != PhaseRetryPending {
		t.Errorf("phase = %v, want retry-pending", s.Phase)
	}
	if s.Pending != pending {
		t.Error("pending submission must be parked on the state")
	}

	s.UnitSucceeded(&UnitOutcome{
		Result: &studyapi.SubmitResult{IsCorrect: true},
		Next:   &studyapi.NextCard{Card: testCard(), CardsRemaining: 3, CardsCompleted: 2},
	})
	if s.Pending != nil {
		t.Error("pending must clear on success")
	}
	if s.Phase != PhasePresenting {
		t.Errorf("phase = %v, want presenting with the follow-up card", s.Phase)
	}
	if s.Current == nil {
		t.Error("follow-up card must be installed")
	}
}

func TestSessionState_UnitSucceeded_Completion(t *testing.T) {
	s := adoptedState()
	s.CardArrived(&studyapi.NextCard{Card: testCard(), CardsRemaining: 1})
	s.BeginSubmit()

	completion := &studyapi.Completion{Summary: studyapi.Summary{TotalCards: 5}}
	s.UnitSucceeded(&UnitOutcome{
		Result:     &studyapi.SubmitResult{IsCorrect: true},
		Completion: completion,
	})

	if s.Phase != PhaseComplete {
		t.Errorf("phase = %v, want complete", s.Phase)
	}
	if s.Completion != completion {
		t.Error("completion payload must be installed")
	}
	if s.Current != nil {
		t.Error("no card may remain current after completion")
	}
}

func TestProgress_Accuracy(t *testing.T) {
	var p Progress
	if p.Accuracy() != 0 {
		t.Errorf("accuracy = %v for empty progress, want 0", p.Accuracy())
	}
	p.Apply(&studyapi.SubmitResult{IsCorrect: true})
	p.Apply(&studyapi.SubmitResult{IsCorrect: false})
	p.Apply(&studyapi.SubmitResult{IsCorrect: true})
	if p.Studied != 3 || p.Correct != 2 {
		t.Errorf("progress = %+v, want 3 studied / 2 correct", p)
	}
	if got := p.Accuracy(); got < 0.66 || got > 0.67 {
		t.Errorf("accuracy = %v, want about 2/3", got)
	}
}
