package study

import (
	"errors"
	"testing"

	"github.com/daneoapp/daneo/internal/studyapi"
)

func clozeCard(obj map[string]any) *studyapi.Card {
	return &studyapi.Card{
		ID:            "card-2",
		EnglishWord:   "focus",
		KoreanMeaning: "집중",
		QuizType:      studyapi.QuizCloze,
		Question:      studyapi.Question{Object: obj},
	}
}

func TestBuildTypingView_CanonicalFields(t *testing.T) {
	view, err := BuildTypingView(clozeCard(map[string]any{
		"answer":      "focus",
		"ko_sentence": "그는 공부에 집중했다.",
		"en_sentence": "He ___ed on his studies.",
		"explanation": "to concentrate",
		"examples":    []any{"stay focused", map[string]any{"ko": "집중해", "en": "focus up"}},
	}))
	if err != nil {
		t.Fatalf("BuildTypingView: %v", err)
	}
	if view.Answer != "focus" {
		t.Errorf("Answer = %q, want %q", view.Answer, "focus")
	}
	if view.KoSentence != "그는 공부에 집중했다." {
		t.Errorf("KoSentence = %q", view.KoSentence)
	}
	if view.EnSentence != "He ___ed on his studies." {
		t.Errorf("EnSentence = %q", view.EnSentence)
	}
	if view.Explanation != "to concentrate" {
		t.Errorf("Explanation = %q", view.Explanation)
	}
	if len(view.Examples) != 2 {
		t.Fatalf("Examples length = %d, want 2", len(view.Examples))
	}
	if view.Examples[1] != "집중해 / focus up" {
		t.Errorf("Examples[1] = %q", view.Examples[1])
	}
}

func TestBuildTypingView_AlternateSpellings(t *testing.T) {
	view, err := BuildTypingView(clozeCard(map[string]any{
		"word":             "focus",
		"korean_sentence":  "그는 집중했다.",
		"english_sentence": "He ___ed.",
		"hint":             "concentrate",
	}))
	if err != nil {
		t.Fatalf("BuildTypingView: %v", err)
	}
	if view.Answer != "focus" {
		t.Errorf("Answer = %q, want %q from alternate key", view.Answer, "focus")
	}
	if view.Explanation != "concentrate" {
		t.Errorf("Explanation = %q, want hint fallback", view.Explanation)
	}
}

func TestBuildTypingView_MissingAnswer(t *testing.T) {
	_, err := BuildTypingView(clozeCard(map[string]any{
		"ko_sentence": "문장",
	}))
	var unsupported *UnsupportedCardError
	if !errors.As(err, &unsupported) {
		t.Fatalf("err = %v, want UnsupportedCardError", err)
	}
}

func TestBuildTypingView_PlainStringQuestion(t *testing.T) {
	card := testCard()
	card.QuizType = studyapi.QuizCloze
	card.Question = studyapi.Question{Text: "not structured"}

	_, err := BuildTypingView(card)
	var unsupported *UnsupportedCardError
	if !errors.As(err, &unsupported) {
		t.Fatalf("err = %v, want UnsupportedCardError", err)
	}
}
