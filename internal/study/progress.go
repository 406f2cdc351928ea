package study

import "github.com/daneoapp/daneo/internal/studyapi"

// Progress holds the optimistic client-side counters shown between
// cards. They are applied once per successful submission unit and are
// superseded, not reconciled, by the remote completion summary.
type Progress struct {
	Studied int
	Correct int
}

// Apply records one successful submission.
func (p *Progress) Apply(result *studyapi.SubmitResult) {
	p.Studied++
	if result.IsCorrect {
		p.Correct++
	}
}

// Accuracy returns the interim local accuracy, zero before any card.
func (p Progress) Accuracy() float64 {
	if p.Studied == 0 {
		return 0
	}
	return float64(p.Correct) / float64(p.Studied)
}
