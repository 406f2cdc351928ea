package study

import (
	"strings"

	"github.com/daneoapp/daneo/internal/studyapi"
	"github.com/daneoapp/daneo/internal/typing"
)

// TypingMode is the free-text engine. Correctness evaluation is
// delegated to the reconciliation engine; the card is done once the
// engine reaches correct, or once the learner gives up and shows the
// answer.
type TypingMode struct {
	card   *studyapi.Card
	view   *TypingView
	engine *typing.Engine
}

// NewTypingMode creates the engine for one card. Structured cloze
// questions are normalized (and validated) into a TypingView exactly
// once here; other quiz types type against the derived canonical answer.
func NewTypingMode(card *studyapi.Card) (*TypingMode, error) {
	if card == nil {
		return nil, &UnsupportedCardError{Reason: "no card"}
	}

	var view *TypingView
	if card.QuizType == studyapi.QuizCloze && card.Question.IsObject() {
		v, err := BuildTypingView(card)
		if err != nil {
			return nil, err
		}
		view = v
	} else {
		answer := ResolveAnswer(card.QuizType, card, "")
		if strings.TrimSpace(answer) == "" {
			return nil, &UnsupportedCardError{CardID: card.ID, Reason: "no derivable answer to type"}
		}
		view = &TypingView{Answer: answer, EnSentence: card.Question.Text}
	}

	return &TypingMode{
		card:   card,
		view:   view,
		engine: typing.NewEngine(view.Answer),
	}, nil
}

// View returns the normalized question projection.
func (m *TypingMode) View() *TypingView { return m.view }

// Engine exposes the reconciliation engine for input routing.
func (m *TypingMode) Engine() *typing.Engine { return m.engine }

// State returns the reconciliation state.
func (m *TypingMode) State() typing.State { return m.engine.State() }

// CanRate reports whether a rating may be submitted: the card must have
// reached correct or show-answer.
func (m *TypingMode) CanRate() bool { return m.engine.CanRate() }

// HadWrongAttempt reports the engine's one-shot flag.
func (m *TypingMode) HadWrongAttempt() bool { return m.engine.HadWrongAttempt() }

// Answer returns what the learner actually produced, falling back to
// the derived answer for an empty input.
func (m *TypingMode) Answer() string {
	if typed := strings.TrimSpace(m.engine.Input()); typed != "" {
		return typed
	}
	return ResolveAnswer(m.card.QuizType, m.card, "")
}
