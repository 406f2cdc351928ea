package study

import (
	"testing"

	"github.com/daneoapp/daneo/internal/studyapi"
)

func testCard() *studyapi.Card {
	return &studyapi.Card{
		ID:            "card-1",
		EnglishWord:   "focus",
		KoreanMeaning: "집중",
	}
}

func TestResolveAnswer_WordToMeaning(t *testing.T) {
	card := testCard()
	if got := ResolveAnswer(studyapi.QuizWordToMeaning, card, ""); got != "집중" {
		t.Errorf("answer = %q, want %q", got, "집중")
	}
}

func TestResolveAnswer_MeaningToWord(t *testing.T) {
	card := testCard()
	if got := ResolveAnswer(studyapi.QuizMeaningToWord, card, ""); got != "focus" {
		t.Errorf("answer = %q, want %q", got, "focus")
	}
}

func TestResolveAnswer_Listening(t *testing.T) {
	card := testCard()
	if got := ResolveAnswer(studyapi.QuizListening, card, ""); got != "focus" {
		t.Errorf("answer = %q, want %q", got, "focus")
	}
}

func TestResolveAnswer_ClozeWithStructuredAnswer(t *testing.T) {
	card := testCard()
	card.QuizType = studyapi.QuizCloze
	card.Question = studyapi.Question{Object: map[string]any{"answer": "focus"}}

	if got := ResolveAnswer(studyapi.QuizCloze, card, ""); got != "focus" {
		t.Errorf("answer = %q, want %q", got, "focus")
	}
}

func TestResolveAnswer_ClozeWithoutAnswer_FallsBack(t *testing.T) {
	card := testCard()
	card.Question = studyapi.Question{Text: "plain question"}

	if got := ResolveAnswer(studyapi.QuizCloze, card, ""); got != "집중" {
		t.Errorf("answer = %q, want fallback %q", got, "집중")
	}
}

func TestResolveAnswer_UnknownQuizType_FallsBack(t *testing.T) {
	card := testCard()
	if got := ResolveAnswer(studyapi.QuizType("grammar"), card, ""); got != "집중" {
		t.Errorf("answer = %q, want fallback %q", got, "집중")
	}
}

func TestResolveAnswer_UserInputOverrides(t *testing.T) {
	card := testCard()
	if got := ResolveAnswer(studyapi.QuizWordToMeaning, card, "  fokus "); got != "fokus" {
		t.Errorf("answer = %q, want trimmed user input", got)
	}
	// Blank input does not override.
	if got := ResolveAnswer(studyapi.QuizWordToMeaning, card, "   "); got != "집중" {
		t.Errorf("answer = %q, want derived value for blank input", got)
	}
}

func TestResolveAnswer_TotalOnNilCard(t *testing.T) {
	if got := ResolveAnswer(studyapi.QuizCloze, nil, ""); got != "" {
		t.Errorf("answer = %q, want empty for nil card", got)
	}
}
