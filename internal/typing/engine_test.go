package typing

import "testing"

func TestEvaluate_ExactMatch(t *testing.T) {
	e := NewEngine("resilience")

	if got := e.SetInput("Resilience "); got != StateCorrect {
		t.Errorf("state = %v, want correct", got)
	}
	if e.HadWrongAttempt() {
		t.Error("expected no wrong attempt for a clean solve")
	}
}

func TestEvaluate_ValidPrefix(t *testing.T) {
	e := NewEngine("suspect")

	if got := e.SetInput("sus"); got != StateIdle {
		t.Errorf("state = %v, want idle for valid prefix", got)
	}
}

func TestEvaluate_EmptyInput(t *testing.T) {
	e := NewEngine("suspect")

	if got := e.SetInput("   "); got != StateIdle {
		t.Errorf("state = %v, want idle for blank input", got)
	}
}

func TestEvaluate_Divergence_SetsOneShotFlag(t *testing.T) {
	e := NewEngine("suspect")

	if got := e.SetInput("suk"); got != StateIncorrect {
		t.Errorf("state = %v, want incorrect", got)
	}
	if !e.HadWrongAttempt() {
		t.Error("expected wrong-attempt flag after divergence")
	}

	// Backspacing to a valid prefix and diverging again must not clear
	// or double-register the flag.
	e.SetInput("su")
	if !e.HadWrongAttempt() {
		t.Error("flag must persist until the next card")
	}
	e.SetInput("suk")
	if !e.HadWrongAttempt() {
		t.Error("flag must remain set on repeat divergence")
	}
}

func TestCorrect_IsTerminal(t *testing.T) {
	e := NewEngine("focus")
	e.SetInput("focus")

	if got := e.SetInput("focux"); got != StateCorrect {
		t.Errorf("state = %v, want correct to stick after solving", got)
	}
}

func TestHint_RevealsNextCharacter(t *testing.T) {
	e := NewEngine("suspect")

	e.RequestHint()
	if e.Prefix() != "s" {
		t.Errorf("prefix = %q, want %q", e.Prefix(), "s")
	}
	e.RequestHint()
	if e.Prefix() != "su" {
		t.Errorf("prefix = %q, want %q", e.Prefix(), "su")
	}
	if e.Input() != "su" {
		t.Errorf("input = %q, want %q", e.Input(), "su")
	}
}

func TestHint_AbsorbsDuplicateSuffixCharacter(t *testing.T) {
	e := NewEngine("suspect")
	e.SetInput("s")

	// Revealing "s" while the learner already typed "s" must not yield "ss".
	e.RequestHint()
	if e.Input() != "s" {
		t.Errorf("input = %q, want %q (no doubled character)", e.Input(), "s")
	}
	if e.Hints() != 1 {
		t.Errorf("hints = %d, want 1", e.Hints())
	}
}

func TestHint_FullyRevealed_NoOp(t *testing.T) {
	e := NewEngine("ab")
	e.RequestHint()
	e.RequestHint()

	if e.Hints() != 2 {
		t.Fatalf("hints = %d, want 2", e.Hints())
	}
	e.RequestHint()
	if e.Hints() != 2 {
		t.Errorf("hints = %d after no-op request, want 2", e.Hints())
	}
}

func TestHint_ThenTypeRemainder_ReachesCorrect(t *testing.T) {
	answer := "resilience"
	runes := []rune(answer)

	for h := 0; h <= len(runes); h++ {
		e := NewEngine(answer)
		for i := 0; i < h; i++ {
			e.RequestHint()
		}
		got := e.SetInput(e.Prefix() + string(runes[h:]))
		if got != StateCorrect {
			t.Errorf("H=%d: state = %v, want correct", h, got)
		}
	}
}

func TestDeleteIntoPrefix_KeepsHints(t *testing.T) {
	e := NewEngine("suspect")
	e.RequestHint()
	e.RequestHint()
	e.RequestHint() // prefix "sus"

	// Raw input shorter than the prefix: suffix clears, hints stay.
	if got := e.SetInput("s"); got != StateIdle {
		t.Errorf("state = %v, want idle against bare prefix", got)
	}
	if e.Input() != "sus" {
		t.Errorf("input = %q, want %q (hints cannot be un-revealed)", e.Input(), "sus")
	}
}

func TestInputOffPrefix_EvaluatedAsTyped(t *testing.T) {
	e := NewEngine("suspect")
	e.RequestHint()
	e.RequestHint() // prefix "su"

	// Same length as the prefix but not the prefix: evaluated verbatim.
	if got := e.SetInput("xu"); got != StateIncorrect {
		t.Errorf("state = %v, want incorrect for off-prefix input", got)
	}
}

func TestRevealAnswer_TerminalNotCorrect(t *testing.T) {
	e := NewEngine("suspect")
	e.SetInput("suk")

	if got := e.RevealAnswer(); got != StateRevealed {
		t.Errorf("state = %v, want revealed", got)
	}
	if e.Input() != "suspect" {
		t.Errorf("input = %q, want full answer", e.Input())
	}
	if !e.CanRate() {
		t.Error("revealed state must unlock rating")
	}
	// Further edits are ignored.
	if got := e.SetInput("suspect"); got != StateRevealed {
		t.Errorf("state = %v, want revealed to stick", got)
	}
}

func TestKoreanAnswer_RuneSafeHints(t *testing.T) {
	e := NewEngine("집중")

	e.RequestHint()
	if e.Prefix() != "집" {
		t.Errorf("prefix = %q, want %q", e.Prefix(), "집")
	}
	if got := e.SetInput(e.Prefix() + "중"); got != StateCorrect {
		t.Errorf("state = %v, want correct", got)
	}
}
