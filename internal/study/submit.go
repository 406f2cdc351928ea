package study

import (
	"context"

	"github.com/google/uuid"

	"github.com/daneoapp/daneo/internal/studyapi"
)

// Client is the slice of the study service a submission unit needs.
type Client interface {
	SubmitAnswer(ctx context.Context, req studyapi.SubmitRequest) (*studyapi.SubmitResult, error)
	NextCard(ctx context.Context, sessionID string, quizType studyapi.QuizType) (*studyapi.NextCard, error)
	CompleteSession(ctx context.Context, sessionID string) (*studyapi.Completion, error)
}

// SubmitJob is everything a submission unit needs, snapshotted at the
// moment the learner rated the card. A retry replays the identical job.
type SubmitJob struct {
	SessionID      string
	Card           *studyapi.Card // the card the answer was given against
	Answer         string
	Rating         Rating
	ResponseTimeMs int
	QuizType       studyapi.QuizType // requested for the follow-up fetch

	// Key is the idempotency key, minted once per unit and reused
	// verbatim on retry so a deduplicating backend sees one submission.
	Key string

	// WrongAttempt carries the typing engine's one-shot flag so the
	// wrong-note log records hesitant solves too.
	WrongAttempt bool
}

// NewSubmitJob builds a job with a fresh idempotency key.
func NewSubmitJob(sessionID string, card *studyapi.Card, answer string, rating Rating, responseTimeMs int, quizType studyapi.QuizType) SubmitJob {
	return SubmitJob{
		SessionID:      sessionID,
		Card:           card,
		Answer:         answer,
		Rating:         rating,
		ResponseTimeMs: responseTimeMs,
		QuizType:       quizType,
		Key:            uuid.NewString(),
	}
}

// PendingSubmission is a failed unit held for exactly one top-level
// retry handler. At most one exists per session.
type PendingSubmission struct {
	Job SubmitJob
	Err error
}

// UnitOutcome is a successful unit: the verdict, the follow-up fetch,
// and the completion payload when the session just ended.
type UnitOutcome struct {
	Result     *studyapi.SubmitResult
	Next       *studyapi.NextCard
	Completion *studyapi.Completion
}

// Completed reports whether the unit closed the session.
func (o *UnitOutcome) Completed() bool { return o.Completion != nil }

// RunUnit executes submit-answer, fetch-next-card and (when the fetch
// reports no cards left) complete-session as one logical unit. Any
// failure returns the unchanged job as the pending submission; a retry
// re-runs the whole unit from its first step. Local side effects
// (counters, wrong notes, review log) are the caller's to apply, exactly
// once, after a nil pending return.
func RunUnit(ctx context.Context, client Client, job SubmitJob) (*UnitOutcome, *PendingSubmission) {
	result, err := client.SubmitAnswer(ctx, studyapi.SubmitRequest{
		SessionID:      job.SessionID,
		CardID:         job.Card.ID,
		Answer:         job.Answer,
		ResponseTimeMs: job.ResponseTimeMs,
		IdempotencyKey: job.Key,
	})
	if err != nil {
		return nil, &PendingSubmission{Job: job, Err: err}
	}

	next, err := client.NextCard(ctx, job.SessionID, job.QuizType)
	if err != nil {
		return nil, &PendingSubmission{Job: job, Err: err}
	}

	out := &UnitOutcome{Result: result, Next: next}
	if next.Card == nil || next.CardsRemaining == 0 {
		completion, err := client.CompleteSession(ctx, job.SessionID)
		if err != nil {
			return nil, &PendingSubmission{Job: job, Err: err}
		}
		out.Completion = completion
	}
	return out, nil
}
