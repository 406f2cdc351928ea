// Package typing evaluates a partially-typed, partially-hinted input
// against a target answer as the learner edits it.
package typing

import (
	"strings"
	"unicode/utf8"
)

// State classifies the learner's input against the target answer.
type State int

const (
	// StateIdle means the input is empty or a valid partial prefix.
	StateIdle State = iota
	// StateCorrect is terminal: the input matches the answer.
	StateCorrect
	// StateIncorrect means the input has diverged from the answer.
	StateIncorrect
	// StateRevealed is terminal: the answer was shown without being typed.
	// It unlocks rating but does not count as correct.
	StateRevealed
)

// String returns a short label for display and test output.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCorrect:
		return "correct"
	case StateIncorrect:
		return "incorrect"
	case StateRevealed:
		return "revealed"
	}
	return "unknown"
}

// Engine is the incremental evaluator for one card's typed answer.
// Its full state is (answer, hints, input); comparisons are
// case-insensitive and ignore leading/trailing whitespace.
type Engine struct {
	answer []rune
	hints  int
	input  string
	state  State

	// hadWrongAttempt latches the first incorrect evaluation and stays
	// set until the next card (i.e. a fresh Engine).
	hadWrongAttempt bool
}

// NewEngine creates an engine for the given target answer. The answer is
// trimmed once here; hint indexing operates on the trimmed form.
func NewEngine(answer string) *Engine {
	return &Engine{answer: []rune(strings.TrimSpace(answer))}
}

// Answer returns the trimmed target answer.
func (e *Engine) Answer() string { return string(e.answer) }

// Hints returns the number of revealed hint characters.
func (e *Engine) Hints() int { return e.hints }

// Prefix returns the immutable revealed portion of the answer.
func (e *Engine) Prefix() string { return string(e.answer[:e.hints]) }

// Input returns the effective visible input (prefix + learner suffix).
func (e *Engine) Input() string { return e.input }

// State returns the current classification.
func (e *Engine) State() State { return e.state }

// HadWrongAttempt reports whether any evaluation for this card was
// incorrect. Once set it is never cleared.
func (e *Engine) HadWrongAttempt() bool { return e.hadWrongAttempt }

// CanRate reports whether the card has reached a terminal state that
// unlocks rating submission.
func (e *Engine) CanRate() bool {
	return e.state == StateCorrect || e.state == StateRevealed
}

// Suffix returns the learner-owned portion of the input. When the input
// has drifted off the revealed prefix entirely, the whole input is the
// learner's.
func (e *Engine) Suffix() string {
	p := e.Prefix()
	if strings.HasPrefix(e.input, p) {
		return e.input[len(p):]
	}
	return e.input
}

// SetInput replaces the visible input with raw and re-evaluates.
// Deleting into the hint region clears the suffix but never un-reveals
// hints: the prefix alone remains. Input that no longer starts with the
// prefix is evaluated exactly as typed.
func (e *Engine) SetInput(raw string) State {
	if e.state == StateCorrect || e.state == StateRevealed {
		return e.state
	}
	if utf8.RuneCountInString(raw) < e.hints {
		e.input = e.Prefix()
	} else {
		e.input = raw
	}
	return e.evaluate()
}

// RequestHint reveals the next character of the answer. If the learner's
// suffix already begins with that character it is absorbed so the
// character does not appear twice. Requesting a hint when the whole
// answer is revealed is a no-op.
func (e *Engine) RequestHint() State {
	if e.state == StateCorrect || e.state == StateRevealed {
		return e.state
	}
	if e.hints >= len(e.answer) {
		return e.state
	}

	suffix := []rune(e.Suffix())
	next := e.answer[e.hints]
	e.hints++
	if len(suffix) > 0 && strings.EqualFold(string(suffix[0]), string(next)) {
		suffix = suffix[1:]
	}
	e.input = e.Prefix() + string(suffix)
	return e.evaluate()
}

// RevealAnswer shows the full answer and moves to the revealed terminal
// state. A card already solved stays correct.
func (e *Engine) RevealAnswer() State {
	if e.state == StateCorrect {
		return e.state
	}
	e.hints = len(e.answer)
	e.input = string(e.answer)
	e.state = StateRevealed
	return e.state
}

func (e *Engine) evaluate() State {
	typed := strings.TrimSpace(e.input)
	target := string(e.answer)

	switch {
	case typed == "":
		e.state = StateIdle
	case strings.EqualFold(typed, target):
		e.state = StateCorrect
	case hasPrefixFold(target, typed):
		e.state = StateIdle
	default:
		e.state = StateIncorrect
		e.hadWrongAttempt = true
	}
	return e.state
}

// hasPrefixFold reports whether s begins with prefix under simple case
// folding.
func hasPrefixFold(s, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
}
