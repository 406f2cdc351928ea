package study

import (
	"context"
	"errors"
	"testing"

	"github.com/daneoapp/daneo/internal/studyapi"
)

// scriptedClient fails specific steps a set number of times and records
// every call.
type scriptedClient struct {
	failSubmit   int
	failNext     int
	failComplete int

	submitCalls   []studyapi.SubmitRequest
	nextCalls     int
	completeCalls int

	next *studyapi.NextCard
}

var errNetwork = errors.New("connection reset")

func (c *scriptedClient) SubmitAnswer(_ context.Context, req studyapi.SubmitRequest) (*studyapi.SubmitResult, error) {
	c.submitCalls = append(c.submitCalls, req)
	if c.failSubmit > 0 {
		c.failSubmit--
		return nil, &studyapi.ErrUnavailable{Err: errNetwork}
	}
	return &studyapi.SubmitResult{IsCorrect: true, CorrectAnswer: req.Answer, UserAnswer: req.Answer}, nil
}

func (c *scriptedClient) NextCard(_ context.Context, _ string, _ studyapi.QuizType) (*studyapi.NextCard, error) {
	c.nextCalls++
	if c.failNext > 0 {
		c.failNext--
		return nil, &studyapi.ErrUnavailable{Err: errNetwork}
	}
	if c.next != nil {
		return c.next, nil
	}
	return &studyapi.NextCard{Card: testCard(), CardsRemaining: 4, CardsCompleted: 1}, nil
}

func (c *scriptedClient) CompleteSession(_ context.Context, _ string) (*studyapi.Completion, error) {
	c.completeCalls++
	if c.failComplete > 0 {
		c.failComplete--
		return nil, &studyapi.ErrUnavailable{Err: errNetwork}
	}
	return &studyapi.Completion{Summary: studyapi.Summary{TotalCards: 5, Correct: 4, Wrong: 1}}, nil
}

func testJob() SubmitJob {
	return NewSubmitJob("sess-1", testCard(), "집중", RatingGood, 3200, studyapi.QuizWordToMeaning)
}

func TestRunUnit_Success(t *testing.T) {
	client := &scriptedClient{}
	out, pending := RunUnit(context.Background(), client, testJob())

	if pending != nil {
		t.Fatalf("pending = %v, want nil", pending.Err)
	}
	if out.Completed() {
		t.Error("unit should not complete while cards remain")
	}
	if out.Next == nil || out.Next.Card == nil {
		t.Fatal("expected a follow-up card")
	}
	if client.completeCalls != 0 {
		t.Errorf("completeCalls = %d, want 0", client.completeCalls)
	}
}

func TestRunUnit_FailureAfterSubmit_RetriesWholeUnitOnce(t *testing.T) {
	client := &scriptedClient{failNext: 1}
	job := testJob()

	out, pending := RunUnit(context.Background(), client, job)
	if out != nil {
		t.Fatal("expected no outcome on failed unit")
	}
	if pending == nil {
		t.Fatal("expected a pending submission")
	}
	if pending.Job.Key != job.Key {
		t.Errorf("pending key = %q, want original %q", pending.Job.Key, job.Key)
	}

	// The retry replays the full unit from the first step with the same
	// idempotency key; local effects are applied only now, so counters
	// and wrong notes land exactly once.
	out, pending = RunUnit(context.Background(), client, pending.Job)
	if pending != nil {
		t.Fatalf("retry failed: %v", pending.Err)
	}
	if out == nil {
		t.Fatal("expected an outcome from the retry")
	}
	if len(client.submitCalls) != 2 {
		t.Fatalf("submit calls = %d, want 2 (one per attempt)", len(client.submitCalls))
	}
	if client.submitCalls[0].IdempotencyKey != client.submitCalls[1].IdempotencyKey {
		t.Error("idempotency key must be identical across attempts")
	}

	var progress Progress
	progress.Apply(out.Result)
	if progress.Studied != 1 || progress.Correct != 1 {
		t.Errorf("counters = %+v, want exactly one increment", progress)
	}
}

func TestRunUnit_ZeroRemaining_CompletesOnce(t *testing.T) {
	client := &scriptedClient{
		next: &studyapi.NextCard{Card: nil, CardsRemaining: 0, CardsCompleted: 5},
	}

	out, pending := RunUnit(context.Background(), client, testJob())
	if pending != nil {
		t.Fatalf("unit failed: %v", pending.Err)
	}
	if !out.Completed() {
		t.Fatal("expected the unit to complete the session")
	}
	if client.completeCalls != 1 {
		t.Errorf("completeCalls = %d, want exactly 1", client.completeCalls)
	}
	if client.nextCalls != 1 {
		t.Errorf("nextCalls = %d, want 1 (no fetch after completion)", client.nextCalls)
	}
	if out.Completion.Summary.TotalCards != 5 {
		t.Errorf("summary total = %d, want 5", out.Completion.Summary.TotalCards)
	}
}

func TestRunUnit_CardWithZeroRemaining_StillCompletes(t *testing.T) {
	client := &scriptedClient{
		next: &studyapi.NextCard{Card: testCard(), CardsRemaining: 0, CardsCompleted: 5},
	}

	out, pending := RunUnit(context.Background(), client, testJob())
	if pending != nil {
		t.Fatalf("unit failed: %v", pending.Err)
	}
	if !out.Completed() {
		t.Error("zero remaining must trigger completion even with a card attached")
	}
}

func TestRunUnit_CompleteFailure_WholeUnitRetryable(t *testing.T) {
	client := &scriptedClient{
		failComplete: 1,
		next:         &studyapi.NextCard{Card: nil, CardsRemaining: 0, CardsCompleted: 5},
	}
	job := testJob()

	out, pending := RunUnit(context.Background(), client, job)
	if out != nil || pending == nil {
		t.Fatal("expected a pending submission when the complete step fails")
	}

	out, pending = RunUnit(context.Background(), client, pending.Job)
	if pending != nil {
		t.Fatalf("retry failed: %v", pending.Err)
	}
	if !out.Completed() {
		t.Error("expected completion after retry")
	}
	if client.completeCalls != 2 {
		t.Errorf("completeCalls = %d, want 2 (one failed, one retried)", client.completeCalls)
	}
}

func TestNewSubmitJob_MintsDistinctKeys(t *testing.T) {
	a := testJob()
	b := testJob()
	if a.Key == "" || a.Key == b.Key {
		t.Errorf("keys %q and %q, want distinct non-empty keys", a.Key, b.Key)
	}
}
