package study

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/daneoapp/daneo/internal/study"
	"github.com/daneoapp/daneo/internal/studyapi"
	"github.com/daneoapp/daneo/internal/typing"
	"github.com/daneoapp/daneo/internal/ui/components"
	"github.com/daneoapp/daneo/internal/ui/theme"
)

func (s *StudyScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.showQuitConfirm {
		return renderQuitConfirm(width)
	}

	switch s.state.Phase {
	case sess.PhaseInitializing:
		return renderCentered(width, theme.TextDim, "\n\n\n  Starting your session...")
	case sess.PhaseAwaitingCard:
		return renderCentered(width, theme.TextDim, "\n\n\n  Fetching the next card...")
	case sess.PhaseSubmitting:
		return renderCentered(width, theme.TextDim, "\n\n\n  Checking your answer...")
	case sess.PhaseRetryPending:
		return s.renderRetry(width)
	case sess.PhaseComplete:
		return renderCentered(width, theme.Success, "\n\n\n  Session complete!")
	}

	return s.renderCard(width, height)
}

func (s *StudyScreen) renderCard(width, height int) string {
	card := s.state.Current
	if card == nil {
		return renderCentered(width, theme.TextDim, "\n\n  Waiting for a card...")
	}

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	switch {
	case s.choice != nil:
		b.WriteString(s.renderChoice(width, card))
	case s.typing != nil:
		b.WriteString(s.renderTyping(width, card))
	default:
		b.WriteString(s.renderFlip(width, card))
	}

	if s.fallbackNote != "" {
		b.WriteString("\n")
		b.WriteString(renderCentered(width, theme.TextDim, s.fallbackNote))
	}

	if s.canRate() {
		b.WriteString("\n\n")
		bar := components.RatingBar{Enabled: true}.View()
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar))
	}

	return b.String()
}

// renderInfoLine shows progress through the session.
func (s *StudyScreen) renderInfoLine(width int) string {
	sn := s.state.Session
	total := sn.CardsCompleted + sn.CardsRemaining

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Card %d/%d", sn.CardsCompleted+1, total))

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d correct",
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			s.state.Progress.Correct,
		))

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}

	var percent float64
	if total > 0 {
		percent = float64(sn.CardsCompleted) / float64(total)
	}
	bar := components.NewProgressBar("", percent, false, min(width-8, 50)).View()

	return line + "\n  " + bar
}

// prompt returns the question side of the card for the active quiz type.
func prompt(card *studyapi.Card) string {
	switch card.QuizType {
	case studyapi.QuizMeaningToWord:
		return theme.Korean.Render(card.KoreanMeaning)
	case studyapi.QuizListening:
		line := "🔊  (listen)"
		if card.Audio != "" {
			line += "\n" + theme.Hint.Render(card.Audio)
		}
		return line
	default:
		word := card.EnglishWord
		if card.Pronunciation != "" {
			word += "\n" + theme.Hint.Render("["+card.Pronunciation+"]")
		}
		return word
	}
}

func (s *StudyScreen) renderFlip(width int, card *studyapi.Card) string {
	var content string
	if s.flip.Phase() == sess.FlipFront {
		content = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(prompt(card)) +
			"\n\n" + theme.Hint.Render("space to flip")
	} else {
		content = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(prompt(card)) +
			"\n\n" + theme.Correct.Render(s.flip.Answer())
	}

	cw := components.ContentWidth(width)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, components.CardFrame(content, cw, 9))
}

func (s *StudyScreen) renderChoice(width int, card *studyapi.Card) string {
	mc := components.MultiChoice{
		Question:      prompt(card),
		Options:       s.choice.Options(),
		Selected:      s.choice.Selected(),
		Revealed:      s.choice.Phase() == sess.ChoiceRevealed,
		CorrectAnswer: s.choice.CorrectAnswer(),
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, mc.View())
}

func (s *StudyScreen) renderTyping(width int, card *studyapi.Card) string {
	view := s.typing.View()
	engine := s.typing.Engine()

	var b strings.Builder

	cw := components.ContentWidth(width)
	var promptLines []string
	if view.KoSentence != "" {
		promptLines = append(promptLines, theme.Korean.Render(view.KoSentence))
	}
	if view.EnSentence != "" {
		promptLines = append(promptLines, view.EnSentence)
	}
	if len(promptLines) == 0 {
		promptLines = append(promptLines, prompt(card))
	}
	if view.Explanation != "" {
		promptLines = append(promptLines, theme.Hint.Render(view.Explanation))
	}
	box := components.CardBox(
		lipgloss.NewStyle().Width(cw-4).Align(lipgloss.Center).Render(strings.Join(promptLines, "\n")),
		cw)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, box))
	b.WriteString("\n\n")

	// Input line: revealed hint prefix, then the learner's suffix.
	inputLine := "Answer: "
	if engine.Hints() > 0 {
		inputLine += theme.HintPrefix.Render(engine.Prefix()) + engine.Suffix()
	} else {
		inputLine += s.input.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, inputLine))
	b.WriteString("\n\n")

	switch engine.State() {
	case typing.StateCorrect:
		b.WriteString(renderCentered(width, theme.Success, "Correct!"))
	case typing.StateIncorrect:
		b.WriteString(renderCentered(width, theme.Error, "Not quite, keep going"))
	case typing.StateRevealed:
		b.WriteString(renderCentered(width, theme.TextDim,
			fmt.Sprintf("The answer was: %s", engine.Answer())))
	}

	if len(view.Examples) > 0 && engine.CanRate() {
		b.WriteString("\n\n")
		for _, ex := range view.Examples {
			b.WriteString(renderCentered(width, theme.TextDim, ex))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (s *StudyScreen) renderRetry(width int) string {
	pending := s.state.Pending

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(renderCentered(width, theme.Error, "Couldn't reach the study service"))
	b.WriteString("\n")
	if pending != nil && pending.Err != nil {
		b.WriteString(renderCentered(width, theme.TextDim, pending.Err.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(renderCentered(width, theme.Text, "Your answer is saved and will be resubmitted."))
	b.WriteString("\n\n")
	b.WriteString(renderCentered(width, theme.Primary, "[R] Retry    [Esc] Quit"))
	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(renderCentered(width, theme.Text, "End this session early?"))
	b.WriteString("\n")
	b.WriteString(renderCentered(width, theme.TextDim, "Answered cards are already saved."))
	b.WriteString("\n\n")
	b.WriteString(renderCentered(width, theme.Success, "[Y] Yes, quit"))
	b.WriteString("\n")
	b.WriteString(renderCentered(width, theme.Primary, "[N] No, keep going"))
	return b.String()
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func renderCentered(width int, fg color.Color, text string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(fg).
		Render(text)
}
