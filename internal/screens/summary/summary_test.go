package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/daneoapp/daneo/internal/studyapi"
)

func testCompletion() *studyapi.Completion {
	return &studyapi.Completion{
		Summary: studyapi.Summary{
			TotalCards:      15,
			Correct:         12,
			Wrong:           3,
			Accuracy:        0.8,
			DurationSeconds: 542,
		},
		Streak:    7,
		DailyGoal: 20,
		XP:        45,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testCompletion())
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testCompletion())
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	for _, want := range []string{"15", "12", "80%", "7 day", "45 xp", "9:02"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_NilCompletion(t *testing.T) {
	s := New(nil)
	if view := s.View(80, 24); view != "" {
		t.Errorf("view = %q, want empty for nil completion", view)
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testCompletion())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testCompletion())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testCompletion())
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints")
	}
}
