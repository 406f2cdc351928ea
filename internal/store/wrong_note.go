package store

import (
	"context"
	"fmt"
	"time"

	"github.com/daneoapp/daneo/ent"
	"github.com/daneoapp/daneo/ent/wrongnote"
)

// wrongNoteRepo implements WrongNoteRepo using the ent client.
type wrongNoteRepo struct {
	client *ent.Client
}

func (r *wrongNoteRepo) Upsert(ctx context.Context, note WrongNote) error {
	existing, err := r.client.WrongNote.Query().
		Where(wrongnote.Word(note.Word), wrongnote.Sentence(note.Sentence)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query wrong note: %w", err)
	}

	if existing != nil {
		_, err = existing.Update().
			SetMeaning(note.Meaning).
			SetUserAnswer(note.UserAnswer).
			SetCorrectAnswer(note.CorrectAnswer).
			SetQuizType(note.QuizType).
			SetNotedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update wrong note: %w", err)
		}
		return nil
	}

	_, err = r.client.WrongNote.Create().
		SetWord(note.Word).
		SetSentence(note.Sentence).
		SetMeaning(note.Meaning).
		SetUserAnswer(note.UserAnswer).
		SetCorrectAnswer(note.CorrectAnswer).
		SetQuizType(note.QuizType).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save wrong note: %w", err)
	}

	return r.prune(ctx)
}

func (r *wrongNoteRepo) List(ctx context.Context, limit int) ([]WrongNote, error) {
	q := r.client.WrongNote.Query().
		Order(ent.Desc(wrongnote.FieldNotedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list wrong notes: %w", err)
	}

	notes := make([]WrongNote, 0, len(rows))
	for _, row := range rows {
		notes = append(notes, WrongNote{
			ID:            row.ID,
			Word:          row.Word,
			Sentence:      row.Sentence,
			Meaning:       row.Meaning,
			UserAnswer:    row.UserAnswer,
			CorrectAnswer: row.CorrectAnswer,
			QuizType:      row.QuizType,
			NotedAt:       row.NotedAt,
		})
	}
	return notes, nil
}

func (r *wrongNoteRepo) Count(ctx context.Context) (int, error) {
	n, err := r.client.WrongNote.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count wrong notes: %w", err)
	}
	return n, nil
}

func (r *wrongNoteRepo) Clear(ctx context.Context) error {
	_, err := r.client.WrongNote.Delete().Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear wrong notes: %w", err)
	}
	return nil
}

// prune deletes the oldest notes beyond the cap. Deleting by ID keeps
// ties on noted_at from taking extra rows with them.
func (r *wrongNoteRepo) prune(ctx context.Context) error {
	stale, err := r.client.WrongNote.Query().
		Order(ent.Desc(wrongnote.FieldNotedAt)).
		Offset(WrongNoteCap).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query wrong notes for prune: %w", err)
	}
	if len(stale) == 0 {
		return nil
	}

	ids := make([]int, 0, len(stale))
	for _, row := range stale {
		ids = append(ids, row.ID)
	}
	_, err = r.client.WrongNote.Delete().
		Where(wrongnote.IDIn(ids...)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune wrong notes: %w", err)
	}
	return nil
}
