package components

import (
	"strings"

	"github.com/daneoapp/daneo/internal/ui/theme"
)

// RatingBar renders the four recall-quality buttons shown once a card
// may be rated. Enabled controls whether the row is dimmed.
type RatingBar struct {
	Enabled bool
}

var ratingLabels = []string{"1 Again", "2 Hard", "3 Good", "4 Easy"}

// View renders the rating row.
func (r RatingBar) View() string {
	parts := make([]string, 0, len(ratingLabels))
	for _, label := range ratingLabels {
		if r.Enabled {
			parts = append(parts, theme.ButtonActive.Render(" "+label+" "))
		} else {
			parts = append(parts, theme.ButtonInactive.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}
