package study

import (
	"strings"

	"github.com/daneoapp/daneo/internal/studyapi"
)

// ResolveAnswer maps (quiz type, card, optional user input) to the
// canonical answer string to submit. It is total: unknown quiz types
// fall back to the Korean meaning, and a missing derivation yields an
// empty string rather than an error. A non-blank userInput overrides the
// derived value; flip mode never passes one.
func ResolveAnswer(quizType studyapi.QuizType, card *studyapi.Card, userInput string) string {
	if typed := strings.TrimSpace(userInput); typed != "" {
		return typed
	}
	return deriveAnswer(quizType, card)
}

func deriveAnswer(quizType studyapi.QuizType, card *studyapi.Card) string {
	if card == nil {
		return ""
	}
	switch quizType {
	case studyapi.QuizWordToMeaning:
		return card.KoreanMeaning
	case studyapi.QuizMeaningToWord:
		return card.EnglishWord
	case studyapi.QuizListening:
		return card.EnglishWord
	case studyapi.QuizCloze:
		if answer := clozeAnswer(card.Question); answer != "" {
			return answer
		}
		return card.KoreanMeaning
	default:
		return card.KoreanMeaning
	}
}

// clozeAnswer extracts the embedded answer from a structured cloze
// question. Accepted key spellings live in typingview.go alongside the
// rest of the normalization table.
func clozeAnswer(q studyapi.Question) string {
	if !q.IsObject() {
		return ""
	}
	return firstString(q.Object, answerKeys)
}
