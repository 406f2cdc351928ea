package store

import (
	"context"
	"fmt"

	"github.com/daneoapp/daneo/ent"
	"github.com/daneoapp/daneo/ent/reviewevent"
	"github.com/daneoapp/daneo/ent/sessionevent"
)

// reviewRepo implements ReviewRepo using the ent client.
type reviewRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *reviewRepo) AppendReview(ctx context.Context, data ReviewEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ReviewEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetCardID(data.CardID).
		SetWord(data.Word).
		SetQuizType(data.QuizType).
		SetMode(data.Mode).
		SetAnswer(data.Answer).
		SetCorrectAnswer(data.CorrectAnswer).
		SetCorrect(data.Correct).
		SetHadWrongAttempt(data.HadWrongAttempt).
		SetRating(data.Rating).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save review event: %w", err)
	}
	return nil
}

func (r *reviewRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetCardsStudied(data.CardsStudied).
		SetCorrectAnswers(data.CorrectAnswers).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *reviewRepo) Stats(ctx context.Context) (Stats, error) {
	var stats Stats

	sessions, err := r.client.SessionEvent.Query().
		Where(sessionevent.Action("complete")).
		Count(ctx)
	if err != nil {
		return stats, fmt.Errorf("count sessions: %w", err)
	}
	stats.Sessions = sessions

	events, err := r.client.ReviewEvent.Query().
		Order(ent.Asc(reviewevent.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return stats, fmt.Errorf("query review events: %w", err)
	}

	stats.CardsStudied = len(events)
	for _, e := range events {
		if e.Correct {
			stats.Correct++
		}
		stats.TotalTimeMs += e.TimeMs
		stats.LastStudiedAt = e.Timestamp
	}
	return stats, nil
}
