package wrongnotes

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/daneoapp/daneo/internal/router"
	"github.com/daneoapp/daneo/internal/store"
)

type mockNoteRepo struct {
	notes   []store.WrongNote
	cleared bool
}

func (m *mockNoteRepo) Upsert(ctx context.Context, note store.WrongNote) error {
	m.notes = append(m.notes, note)
	return nil
}

func (m *mockNoteRepo) List(ctx context.Context, limit int) ([]store.WrongNote, error) {
	return m.notes, nil
}

func (m *mockNoteRepo) Count(ctx context.Context) (int, error) {
	return len(m.notes), nil
}

func (m *mockNoteRepo) Clear(ctx context.Context) error {
	m.cleared = true
	m.notes = nil
	return nil
}

func testNotes() []store.WrongNote {
	return []store.WrongNote{
		{
			ID:            2,
			Word:          "library",
			Sentence:      "나는 도서관에서 공부해요.",
			Meaning:       "도서관",
			UserAnswer:    "도사관",
			CorrectAnswer: "도서관",
			QuizType:      "cloze",
			NotedAt:       time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:            1,
			Word:          "water",
			Meaning:       "물",
			CorrectAnswer: "물",
			QuizType:      "word_to_meaning",
			NotedAt:       time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC),
		},
	}
}

func loadedScreen(t *testing.T, repo *mockNoteRepo) *WrongNotesScreen {
	t.Helper()
	s := New(repo)
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected a load command from Init")
	}
	next, _ := s.Update(cmd())
	return next.(*WrongNotesScreen)
}

func keyPress(s string) tea.KeyPressMsg {
	r := []rune(s)
	return tea.KeyPressMsg{Code: r[0], Text: s}
}

func TestWrongNotesScreen_Title(t *testing.T) {
	s := New(&mockNoteRepo{})
	if s.Title() != "Wrong Notes" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestWrongNotesScreen_Empty(t *testing.T) {
	s := loadedScreen(t, &mockNoteRepo{})
	view := s.View(80, 24)
	if !strings.Contains(view, "No wrong notes") {
		t.Errorf("empty view missing placeholder, got %q", view)
	}
}

func TestWrongNotesScreen_ListsNotes(t *testing.T) {
	s := loadedScreen(t, &mockNoteRepo{notes: testNotes()})
	view := s.View(80, 24)
	for _, want := range []string{"library", "도서관", "water", "물", "2 of 100"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestWrongNotesScreen_ExpandShowsAnswers(t *testing.T) {
	s := loadedScreen(t, &mockNoteRepo{notes: testNotes()})

	next, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = next.(*WrongNotesScreen)

	view := s.View(80, 24)
	for _, want := range []string{"you answered: 도사관", "correct: 도서관", "나는 도서관에서 공부해요."} {
		if !strings.Contains(view, want) {
			t.Errorf("expanded view missing %q", want)
		}
	}
}

func TestWrongNotesScreen_Navigation(t *testing.T) {
	s := loadedScreen(t, &mockNoteRepo{notes: testNotes()})

	next, _ := s.Update(keyPress("j"))
	s = next.(*WrongNotesScreen)
	if s.selected != 1 {
		t.Errorf("selected = %d after j, want 1", s.selected)
	}

	next, _ = s.Update(keyPress("j"))
	s = next.(*WrongNotesScreen)
	if s.selected != 1 {
		t.Errorf("selected = %d, should not move past last note", s.selected)
	}

	next, _ = s.Update(keyPress("k"))
	s = next.(*WrongNotesScreen)
	if s.selected != 0 {
		t.Errorf("selected = %d after k, want 0", s.selected)
	}
}

func TestWrongNotesScreen_ClearRequiresConfirm(t *testing.T) {
	repo := &mockNoteRepo{notes: testNotes()}
	s := loadedScreen(t, repo)

	next, _ := s.Update(keyPress("c"))
	s = next.(*WrongNotesScreen)
	if !s.confirmClear {
		t.Fatal("expected clear confirmation prompt")
	}

	next, _ = s.Update(keyPress("n"))
	s = next.(*WrongNotesScreen)
	if repo.cleared {
		t.Error("declined confirmation must not clear notes")
	}

	next, _ = s.Update(keyPress("c"))
	s = next.(*WrongNotesScreen)
	next, cmd := s.Update(keyPress("y"))
	s = next.(*WrongNotesScreen)
	if cmd == nil {
		t.Fatal("expected a clear command")
	}
	next, _ = s.Update(cmd())
	s = next.(*WrongNotesScreen)

	if !repo.cleared {
		t.Error("confirmed clear did not reach the repo")
	}
	if view := s.View(80, 24); !strings.Contains(view, "No wrong notes") {
		t.Errorf("view after clear should be empty, got %q", view)
	}
}

func TestWrongNotesScreen_EscPops(t *testing.T) {
	s := loadedScreen(t, &mockNoteRepo{notes: testNotes()})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("esc should pop the screen")
	}
}
