package study

import (
	sess "github.com/daneoapp/daneo/internal/study"
	"github.com/daneoapp/daneo/internal/studyapi"
)

// sessionReadyMsg is sent when session acquisition (or resume) finishes.
type sessionReadyMsg struct {
	Session *studyapi.Session
	Err     error
}

// cardMsg is sent when a direct next-card fetch resolves.
type cardMsg struct {
	Next *studyapi.NextCard
	Err  error
}

// unitDoneMsg is sent when a submission unit resolves. Exactly one of
// Out and Pending is set; Job is the unit that ran, carried along so
// the handler can apply local effects without re-deriving them.
type unitDoneMsg struct {
	Job     sess.SubmitJob
	Out     *sess.UnitOutcome
	Pending *sess.PendingSubmission
}

// emptySessionMsg is sent when a session turns out to have no cards and
// was completed straight away.
type emptySessionMsg struct {
	Completion *studyapi.Completion
	Err        error
}

// RewardsMsg broadcasts the streak and xp the service granted for a
// completed session, so the frame header can pick them up.
type RewardsMsg struct {
	Streak int
	XP     int
}
