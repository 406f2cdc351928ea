package study

import "fmt"

// UnsupportedCardError flags a card missing the fields its mode needs
// (no options for a choice card, no derivable answer for typing). The
// screen renders it as an explicit unsupported-card state; it never
// propagates as a crash.
type UnsupportedCardError struct {
	CardID string
	Reason string
}

func (e *UnsupportedCardError) Error() string {
	if e.CardID == "" {
		return fmt.Sprintf("unsupported card: %s", e.Reason)
	}
	return fmt.Sprintf("unsupported card %s: %s", e.CardID, e.Reason)
}

// InitError marks a failed session initialization. It is fatal for the
// attempt: the UI offers a full restart, never a silent replay.
type InitError struct {
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("session initialization failed: %v", e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }
