package store

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func sampleNote(i int) WrongNote {
	return WrongNote{
		Word:          fmt.Sprintf("word-%03d", i),
		Sentence:      "He ___ed on his studies.",
		Meaning:       "집중",
		UserAnswer:    "fokus",
		CorrectAnswer: "focus",
		QuizType:      "cloze",
	}
}

func TestWrongNoteUpsertAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.WrongNotes()
	ctx := context.Background()

	if err := repo.Upsert(ctx, sampleNote(1)); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	notes, err := repo.List(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("notes = %d, want 1", len(notes))
	}
	if notes[0].Word != "word-001" || notes[0].CorrectAnswer != "focus" {
		t.Errorf("note = %+v", notes[0])
	}
}

func TestWrongNoteUpsertOverwritesSameKey(t *testing.T) {
	s := openTestStore(t)
	repo := s.WrongNotes()
	ctx := context.Background()

	note := sampleNote(1)
	if err := repo.Upsert(ctx, note); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	// Same (word, sentence), new attempt detail.
	note.UserAnswer = "focuss"
	if err := repo.Upsert(ctx, note); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1 (overwrite, not duplicate)", count)
	}

	notes, err := repo.List(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if notes[0].UserAnswer != "focuss" {
		t.Errorf("user answer = %q, want the newer attempt", notes[0].UserAnswer)
	}
}

func TestWrongNoteDistinctSentencesKeptApart(t *testing.T) {
	s := openTestStore(t)
	repo := s.WrongNotes()
	ctx := context.Background()

	a := sampleNote(1)
	b := sampleNote(1)
	b.Sentence = "A different sentence."
	if err := repo.Upsert(ctx, a); err != nil {
		t.Fatalf("upsert a: %v", err)
	}
	if err := repo.Upsert(ctx, b); err != nil {
		t.Fatalf("upsert b: %v", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2 (same word, different sentence)", count)
	}
}

func TestWrongNotePruneToCap(t *testing.T) {
	s := openTestStore(t)
	repo := s.WrongNotes()
	ctx := context.Background()

	for i := 0; i < WrongNoteCap+5; i++ {
		if err := repo.Upsert(ctx, sampleNote(i)); err != nil {
			t.Fatalf("upsert %d: %v", i, err)
		}
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != WrongNoteCap {
		t.Errorf("count = %d, want the cap %d", count, WrongNoteCap)
	}
}

func TestWrongNoteClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.WrongNotes()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.Upsert(ctx, sampleNote(i)); err != nil {
			t.Fatalf("upsert %d: %v", i, err)
		}
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d after clear, want 0", count)
	}
}

func TestReviewStatsAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.Reviews()
	ctx := context.Background()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "sess-1", Action: "start"}); err != nil {
		t.Fatalf("append start: %v", err)
	}
	for i := 0; i < 4; i++ {
		err := repo.AppendReview(ctx, ReviewEventData{
			SessionID: "sess-1",
			CardID:    fmt.Sprintf("card-%d", i),
			Word:      "focus",
			Correct:   i%2 == 0,
			TimeMs:    1000,
			Rating:    "good",
		})
		if err != nil {
			t.Fatalf("append review %d: %v", i, err)
		}
	}
	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:      "sess-1",
		Action:         "complete",
		CardsStudied:   4,
		CorrectAnswers: 2,
		DurationSecs:   60,
	})
	if err != nil {
		t.Fatalf("append complete: %v", err)
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Sessions != 1 {
		t.Errorf("sessions = %d, want 1 (starts don't count)", stats.Sessions)
	}
	if stats.CardsStudied != 4 || stats.Correct != 2 {
		t.Errorf("cards = %d/%d correct, want 4/2", stats.CardsStudied, stats.Correct)
	}
	if stats.TotalTimeMs != 4000 {
		t.Errorf("total time = %d, want 4000", stats.TotalTimeMs)
	}
	if stats.Accuracy() != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", stats.Accuracy())
	}
	if stats.LastStudiedAt.IsZero() || stats.LastStudiedAt.After(time.Now().Add(time.Minute)) {
		t.Errorf("last studied = %v", stats.LastStudiedAt)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}
