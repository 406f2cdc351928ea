package store

import (
	"context"
	"time"
)

// WrongNoteCap is the maximum number of wrong notes retained. When the
// cap is exceeded the oldest notes are pruned first.
const WrongNoteCap = 100

// WrongNote is one missed word, keyed by (word, sentence). Missing the
// same word in the same sentence again overwrites the note in place.
type WrongNote struct {
	ID            int
	Word          string
	Sentence      string
	Meaning       string
	UserAnswer    string
	CorrectAnswer string
	QuizType      string
	NotedAt       time.Time
}

// WrongNoteRepo manages the capped wrong-note log.
type WrongNoteRepo interface {
	// Upsert records a miss, overwriting any existing note with the same
	// (word, sentence) key, then prunes the log back down to the cap.
	Upsert(ctx context.Context, note WrongNote) error

	// List returns notes newest-first, up to limit (0 = all).
	List(ctx context.Context, limit int) ([]WrongNote, error)

	// Count returns the number of retained notes.
	Count(ctx context.Context) (int, error)

	// Clear deletes all notes.
	Clear(ctx context.Context) error
}

// ReviewEventData captures one answered card for the local log.
type ReviewEventData struct {
	SessionID       string
	CardID          string
	Word            string
	QuizType        string
	Mode            string
	Answer          string
	CorrectAnswer   string
	Correct         bool
	HadWrongAttempt bool
	Rating          string
	TimeMs          int64
}

// SessionEventData captures a session lifecycle transition.
type SessionEventData struct {
	SessionID      string
	Action         string // "start" or "complete"
	CardsStudied   int
	CorrectAnswers int
	DurationSecs   int
}

// Stats aggregates the local review log for the stats command.
type Stats struct {
	Sessions      int
	CardsStudied  int
	Correct       int
	TotalTimeMs   int64
	LastStudiedAt time.Time
}

// Accuracy returns the all-time fraction of correct answers.
func (s Stats) Accuracy() float64 {
	if s.CardsStudied == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.CardsStudied)
}

// ReviewRepo provides append access to the local review log and
// aggregate queries over it.
type ReviewRepo interface {
	// AppendReview records one answered card.
	AppendReview(ctx context.Context, data ReviewEventData) error

	// AppendSessionEvent records a session start or completion.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// Stats aggregates the full review log.
	Stats(ctx context.Context) (Stats, error)
}
