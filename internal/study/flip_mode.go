package study

import "github.com/daneoapp/daneo/internal/studyapi"

// FlipPhase is the flip engine's presentation state.
type FlipPhase int

const (
	FlipFront FlipPhase = iota
	FlipBack
)

// FlipMode is the self-report engine: the learner flips the card, judges
// their own recall, and the chosen rating is submitted as-is. There is
// no notion of correctness and no free response.
type FlipMode struct {
	card  *studyapi.Card
	phase FlipPhase
}

// NewFlipMode creates the engine for one card.
func NewFlipMode(card *studyapi.Card) *FlipMode {
	return &FlipMode{card: card}
}

// Phase returns the current presentation state.
func (m *FlipMode) Phase() FlipPhase { return m.phase }

// Flip turns the card over. Flipping an already-flipped card is a no-op.
func (m *FlipMode) Flip() { m.phase = FlipBack }

// CanRate reports whether a rating may be submitted.
func (m *FlipMode) CanRate() bool { return m.phase == FlipBack }

// Answer always submits the derived default, regardless of any input.
func (m *FlipMode) Answer() string {
	return ResolveAnswer(m.card.QuizType, m.card, "")
}
