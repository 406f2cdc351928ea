package studyapi

import "fmt"

// ErrUnavailable indicates the study service could not be reached at the
// transport level.
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	return fmt.Sprintf("study service unavailable: %v", e.Err)
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// StatusError indicates the service answered with a non-success status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("study service returned HTTP %d: %s", e.Code, e.Body)
	}
	return fmt.Sprintf("study service returned HTTP %d", e.Code)
}

// ErrBadPayload indicates a response that could not be decoded into the
// expected shape.
type ErrBadPayload struct {
	Err error
}

func (e *ErrBadPayload) Error() string {
	return fmt.Sprintf("malformed study service response: %v", e.Err)
}

func (e *ErrBadPayload) Unwrap() error { return e.Err }
