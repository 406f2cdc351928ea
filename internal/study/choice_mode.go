package study

import (
	"math/rand/v2"

	"github.com/daneoapp/daneo/internal/studyapi"
)

// ChoicePhase is the choice engine's presentation state.
type ChoicePhase int

const (
	ChoiceSelecting ChoicePhase = iota
	ChoiceRevealed
)

// ChoiceMode is the multiple-choice engine. The option list is shuffled
// exactly once at construction and the engine lives as long as its card,
// so a re-render never reshuffles; a new card gets a freshly shuffled
// engine.
type ChoiceMode struct {
	card     *studyapi.Card
	options  []string
	selected int
	phase    ChoicePhase
	correct  bool

	// wrongEmitted guards duplicate wrong-answer records if reveal fires
	// more than once for the same card.
	wrongEmitted bool
}

// NewChoiceMode creates the engine for one card. A card without options
// cannot be presented as a choice.
func NewChoiceMode(card *studyapi.Card) (*ChoiceMode, error) {
	if card == nil || len(card.Options) == 0 {
		id := ""
		if card != nil {
			id = card.ID
		}
		return nil, &UnsupportedCardError{CardID: id, Reason: "choice card carries no options"}
	}

	options := make([]string, len(card.Options))
	copy(options, card.Options)
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return &ChoiceMode{card: card, options: options}, nil
}

// Options returns the memoized shuffled order.
func (m *ChoiceMode) Options() []string { return m.options }

// Phase returns the current presentation state.
func (m *ChoiceMode) Phase() ChoicePhase { return m.phase }

// Selected returns the highlighted option index.
func (m *ChoiceMode) Selected() int { return m.selected }

// MoveUp moves the highlight up.
func (m *ChoiceMode) MoveUp() {
	if m.phase == ChoiceSelecting && m.selected > 0 {
		m.selected--
	}
}

// MoveDown moves the highlight down.
func (m *ChoiceMode) MoveDown() {
	if m.phase == ChoiceSelecting && m.selected < len(m.options)-1 {
		m.selected++
	}
}

// Select highlights option i when valid.
func (m *ChoiceMode) Select(i int) {
	if m.phase == ChoiceSelecting && i >= 0 && i < len(m.options) {
		m.selected = i
	}
}

// Reveal compares the selection case-sensitively against the canonical
// answer and returns true exactly once when a wrong-answer record should
// be emitted. Repeat reveals change nothing.
func (m *ChoiceMode) Reveal() (emitWrong bool) {
	if m.phase == ChoiceRevealed {
		return false
	}
	m.phase = ChoiceRevealed
	m.correct = m.options[m.selected] == m.CorrectAnswer()
	if !m.correct && !m.wrongEmitted {
		m.wrongEmitted = true
		return true
	}
	return false
}

// IsCorrect reports the reveal verdict.
func (m *ChoiceMode) IsCorrect() bool { return m.phase == ChoiceRevealed && m.correct }

// CanRate reports whether a rating may be submitted.
func (m *ChoiceMode) CanRate() bool { return m.phase == ChoiceRevealed }

// Answer returns the learner's selection: the explicit input that
// overrides the derived default.
func (m *ChoiceMode) Answer() string { return m.options[m.selected] }

// CorrectAnswer returns the canonical answer for this card.
func (m *ChoiceMode) CorrectAnswer() string {
	return ResolveAnswer(m.card.QuizType, m.card, "")
}
