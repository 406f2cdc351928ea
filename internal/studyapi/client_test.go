package studyapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/study/sessions", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var body map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 10, body["new_cards_limit"])
		assert.Equal(t, 30, body["review_cards_limit"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"session_id":      "sess-1",
			"started_at":      "2026-09-01T09:00:00Z",
			"cards_completed": 0,
			"cards_remaining": 40,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	sess, err := c.StartSession(context.Background(), 10, 30)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", sess.ID)
	assert.Equal(t, 40, sess.CardsRemaining)
}

func TestStartSession_MissingID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := c(srv).StartSession(context.Background(), 10, 30)
	var bad *ErrBadPayload
	require.ErrorAs(t, err, &bad)
}

func TestNextCard_StringQuestion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/study/sessions/sess-1/next", r.URL.Path)
		assert.Equal(t, "word_to_meaning", r.URL.Query().Get("quiz_type"))
		_, _ = w.Write([]byte(`{
			"card": {
				"id": "card-9",
				"english_word": "focus",
				"korean_meaning": "집중",
				"quiz_type": "word_to_meaning",
				"question": "What does 'focus' mean?",
				"options": ["집중", "산만", "여유", "균형"]
			},
			"cards_remaining": 12,
			"cards_completed": 3
		}`))
	}))
	defer srv.Close()

	next, err := c(srv).NextCard(context.Background(), "sess-1", QuizWordToMeaning)
	require.NoError(t, err)
	require.NotNil(t, next.Card)
	assert.Equal(t, "focus", next.Card.EnglishWord)
	assert.Equal(t, "What does 'focus' mean?", next.Card.Question.Text)
	assert.False(t, next.Card.Question.IsObject())
	assert.Len(t, next.Card.Options, 4)
	assert.Equal(t, 12, next.CardsRemaining)
}

func TestNextCard_ObjectQuestion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"card": {
				"id": "card-2",
				"english_word": "focus",
				"korean_meaning": "집중",
				"quiz_type": "cloze",
				"question": {
					"answer": "focus",
					"ko_sentence": "그는 공부에 집중했다.",
					"en_sentence": "He ___ed on his studies.",
					"explanation": "to concentrate"
				}
			},
			"cards_remaining": 5,
			"cards_completed": 10
		}`))
	}))
	defer srv.Close()

	next, err := c(srv).NextCard(context.Background(), "sess-1", QuizCloze)
	require.NoError(t, err)
	require.NotNil(t, next.Card)
	require.True(t, next.Card.Question.IsObject())
	assert.Equal(t, "focus", next.Card.Question.Object["answer"])
}

func TestNextCard_NullCard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"card": null, "cards_remaining": 0, "cards_completed": 15}`))
	}))
	defer srv.Close()

	next, err := c(srv).NextCard(context.Background(), "sess-1", QuizCloze)
	require.NoError(t, err)
	assert.Nil(t, next.Card)
	assert.Equal(t, 0, next.CardsRemaining)
}

func TestSubmitAnswer_IdempotencyHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/study/sessions/sess-1/answers", r.URL.Path)
		assert.Equal(t, "key-42", r.Header.Get("X-Idempotency-Key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "card-9", body["card_id"])
		assert.Equal(t, "집중", body["answer"])

		_, _ = w.Write([]byte(`{"is_correct": true, "correct_answer": "집중", "user_answer": "집중"}`))
	}))
	defer srv.Close()

	result, err := c(srv).SubmitAnswer(context.Background(), SubmitRequest{
		SessionID:      "sess-1",
		CardID:         "card-9",
		Answer:         "집중",
		ResponseTimeMs: 4100,
		IdempotencyKey: "key-42",
	})
	require.NoError(t, err)
	assert.True(t, result.IsCorrect)
}

func TestCompleteSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/study/sessions/sess-1/complete", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"session_summary": {
				"total_cards": 15, "correct": 12, "wrong": 3,
				"accuracy": 0.8, "duration_seconds": 420
			},
			"streak": 7, "daily_goal": 20, "xp": 150
		}`))
	}))
	defer srv.Close()

	comp, err := c(srv).CompleteSession(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 15, comp.Summary.TotalCards)
	assert.InDelta(t, 0.8, comp.Summary.Accuracy, 1e-9)
	assert.Equal(t, 7, comp.Streak)
}

func TestErrorMapping_Status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "session expired", http.StatusGone)
	}))
	defer srv.Close()

	_, err := c(srv).CompleteSession(context.Background(), "sess-1")
	var status *StatusError
	require.ErrorAs(t, err, &status)
	assert.Equal(t, http.StatusGone, status.Code)
	assert.Contains(t, status.Body, "session expired")
}

func TestErrorMapping_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := c(srv).NextCard(context.Background(), "sess-1", QuizCloze)
	var unavail *ErrUnavailable
	require.ErrorAs(t, err, &unavail)
}

func c(srv *httptest.Server) *Client {
	return NewClient(srv.URL, "", WithHTTPClient(srv.Client()))
}
