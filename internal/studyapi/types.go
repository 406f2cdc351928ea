package studyapi

import (
	"encoding/json"
	"fmt"
	"time"
)

// QuizType discriminates which canonical-answer field and which
// presentation mode apply to a card.
type QuizType string

const (
	QuizWordToMeaning QuizType = "word_to_meaning"
	QuizMeaningToWord QuizType = "meaning_to_word"
	QuizCloze         QuizType = "cloze"
	QuizListening     QuizType = "listening"
)

// Session identifies one study session on the remote service. The ID is
// immutable once obtained; completed + remaining equals the session's
// fixed total at any fetch.
type Session struct {
	ID             string    `json:"session_id"`
	StartedAt      time.Time `json:"started_at"`
	CardsCompleted int       `json:"cards_completed"`
	CardsRemaining int       `json:"cards_remaining"`
}

// Question is the card's question payload: either a plain string or a
// structured object (cloze cards). Exactly one of Text/Object is set.
type Question struct {
	Text   string
	Object map[string]any
}

// IsObject reports whether the payload was a structured object.
func (q Question) IsObject() bool { return q.Object != nil }

func (q *Question) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		q.Text = s
		q.Object = nil
		return nil
	}
	var obj map[string]any
	if err := json.Unmarshal(b, &obj); err == nil {
		q.Object = obj
		return nil
	}
	return fmt.Errorf("question is neither string nor object: %s", string(b))
}

func (q Question) MarshalJSON() ([]byte, error) {
	if q.Object != nil {
		return json.Marshal(q.Object)
	}
	return json.Marshal(q.Text)
}

// Card is one study card as served by the remote side. It is immutable
// once presented; the next fetch supersedes it.
type Card struct {
	ID            string   `json:"id"`
	EnglishWord   string   `json:"english_word"`
	KoreanMeaning string   `json:"korean_meaning"`
	Pronunciation string   `json:"pronunciation,omitempty"`
	Audio         string   `json:"audio,omitempty"`
	IsNew         bool     `json:"is_new"`
	QuizType      QuizType `json:"quiz_type"`
	Question      Question `json:"question"`
	Options       []string `json:"options,omitempty"`
}

// NextCard is the next-card response. Card is nil when the session has
// no cards left.
type NextCard struct {
	Card           *Card `json:"card"`
	CardsRemaining int   `json:"cards_remaining"`
	CardsCompleted int   `json:"cards_completed"`
}

// SubmitRequest is one answer submission. The idempotency key is minted
// when the submission unit is first built and reused verbatim on retry.
type SubmitRequest struct {
	SessionID      string
	CardID         string `json:"card_id"`
	Answer         string `json:"answer"`
	ResponseTimeMs int    `json:"response_time_ms,omitempty"`
	IdempotencyKey string `json:"-"`
}

// SubmitResult is the remote verdict for one submitted answer.
type SubmitResult struct {
	IsCorrect     bool   `json:"is_correct"`
	CorrectAnswer string `json:"correct_answer"`
	UserAnswer    string `json:"user_answer"`
}

// Summary is the authoritative completion summary. It supersedes any
// locally derived counters.
type Summary struct {
	TotalCards      int     `json:"total_cards"`
	Correct         int     `json:"correct"`
	Wrong           int     `json:"wrong"`
	Accuracy        float64 `json:"accuracy"`
	DurationSeconds int     `json:"duration_seconds"`
}

// Completion is the complete-session response: the summary plus reward
// data for display.
type Completion struct {
	Summary   Summary `json:"session_summary"`
	Streak    int     `json:"streak"`
	DailyGoal int     `json:"daily_goal"`
	XP        int     `json:"xp"`
}
