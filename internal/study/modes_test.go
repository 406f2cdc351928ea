package study

import (
	"errors"
	"testing"

	"github.com/daneoapp/daneo/internal/studyapi"
	"github.com/daneoapp/daneo/internal/typing"
)

func TestFlipMode_RatingGatedOnFlip(t *testing.T) {
	mode := NewFlipMode(testCard())

	if mode.CanRate() {
		t.Error("front side must not accept a rating")
	}
	mode.Flip()
	if !mode.CanRate() {
		t.Error("back side must accept a rating")
	}
	mode.Flip() // no-op
	if mode.Phase() != FlipBack {
		t.Errorf("phase = %v after double flip, want FlipBack", mode.Phase())
	}
}

func TestFlipMode_AnswerIgnoresInput(t *testing.T) {
	mode := NewFlipMode(testCard())
	if got := mode.Answer(); got != "집중" {
		t.Errorf("answer = %q, want derived default", got)
	}
}

func choiceCard() *studyapi.Card {
	card := testCard()
	card.QuizType = studyapi.QuizWordToMeaning
	card.Options = []string{"집중", "약속", "발음", "습관"}
	return card
}

func TestChoiceMode_ShufflesOnceAndMemoizes(t *testing.T) {
	mode, err := NewChoiceMode(choiceCard())
	if err != nil {
		t.Fatalf("NewChoiceMode: %v", err)
	}

	first := mode.Options()
	for i := 0; i < 5; i++ {
		again := mode.Options()
		for j := range first {
			if again[j] != first[j] {
				t.Fatal("option order changed between reads")
			}
		}
	}
	if len(first) != 4 {
		t.Fatalf("options length = %d, want 4", len(first))
	}
}

func TestChoiceMode_NoOptions(t *testing.T) {
	card := testCard()
	card.Options = nil

	_, err := NewChoiceMode(card)
	var unsupported *UnsupportedCardError
	if !errors.As(err, &unsupported) {
		t.Fatalf("err = %v, want UnsupportedCardError", err)
	}
}

func TestChoiceMode_RevealCorrect(t *testing.T) {
	mode, err := NewChoiceMode(choiceCard())
	if err != nil {
		t.Fatalf("NewChoiceMode: %v", err)
	}

	for i, opt := range mode.Options() {
		if opt == mode.CorrectAnswer() {
			mode.Select(i)
		}
	}
	if emitWrong := mode.Reveal(); emitWrong {
		t.Error("correct selection must not emit a wrong-answer record")
	}
	if !mode.IsCorrect() {
		t.Error("expected the reveal verdict to be correct")
	}
	if !mode.CanRate() {
		t.Error("revealed card must accept a rating")
	}
}

func TestChoiceMode_RevealWrong_EmitsOnce(t *testing.T) {
	mode, err := NewChoiceMode(choiceCard())
	if err != nil {
		t.Fatalf("NewChoiceMode: %v", err)
	}

	for i, opt := range mode.Options() {
		if opt != mode.CorrectAnswer() {
			mode.Select(i)
			break
		}
	}
	if emitWrong := mode.Reveal(); !emitWrong {
		t.Fatal("wrong selection must emit a wrong-answer record")
	}
	if mode.IsCorrect() {
		t.Error("verdict must be wrong")
	}
	// Repeat reveals change nothing and emit nothing.
	if emitWrong := mode.Reveal(); emitWrong {
		t.Error("second reveal must not emit again")
	}
}

func TestChoiceMode_SelectionFrozenAfterReveal(t *testing.T) {
	mode, err := NewChoiceMode(choiceCard())
	if err != nil {
		t.Fatalf("NewChoiceMode: %v", err)
	}
	mode.Reveal()

	before := mode.Selected()
	mode.MoveDown()
	mode.Select(3)
	if mode.Selected() != before {
		t.Error("selection moved after reveal")
	}
}

func TestTypingMode_DerivedAnswer(t *testing.T) {
	card := testCard()
	card.QuizType = studyapi.QuizMeaningToWord

	mode, err := NewTypingMode(card)
	if err != nil {
		t.Fatalf("NewTypingMode: %v", err)
	}
	if mode.View().Answer != "focus" {
		t.Errorf("view answer = %q, want %q", mode.View().Answer, "focus")
	}
	if mode.CanRate() {
		t.Error("rating must be locked before the engine resolves")
	}

	mode.Engine().SetInput("focus")
	if mode.State() != typing.StateCorrect {
		t.Errorf("state = %v, want correct", mode.State())
	}
	if !mode.CanRate() {
		t.Error("correct engine must unlock rating")
	}
	if mode.Answer() != "focus" {
		t.Errorf("answer = %q, want the typed input", mode.Answer())
	}
}

func TestTypingMode_ClozeUsesStructuredView(t *testing.T) {
	card := clozeCard(map[string]any{
		"answer":      "focus",
		"ko_sentence": "그는 집중했다.",
	})

	mode, err := NewTypingMode(card)
	if err != nil {
		t.Fatalf("NewTypingMode: %v", err)
	}
	if mode.View().KoSentence != "그는 집중했다." {
		t.Errorf("KoSentence = %q", mode.View().KoSentence)
	}
}

func TestTypingMode_RevealFallsBackToDerivedAnswer(t *testing.T) {
	card := testCard()
	card.QuizType = studyapi.QuizMeaningToWord

	mode, err := NewTypingMode(card)
	if err != nil {
		t.Fatalf("NewTypingMode: %v", err)
	}
	mode.Engine().RevealAnswer()
	if !mode.CanRate() {
		t.Error("show-answer must unlock rating")
	}
	if mode.Answer() != "focus" {
		t.Errorf("answer = %q, want derived fallback for empty input", mode.Answer())
	}
}

func TestTypingMode_NoDerivableAnswer(t *testing.T) {
	card := &studyapi.Card{ID: "card-3", QuizType: studyapi.QuizMeaningToWord}

	_, err := NewTypingMode(card)
	var unsupported *UnsupportedCardError
	if !errors.As(err, &unsupported) {
		t.Fatalf("err = %v, want UnsupportedCardError", err)
	}
}
