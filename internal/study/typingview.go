package study

import (
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/daneoapp/daneo/internal/studyapi"
)

// TypingView is the canonical projection of a cloze card's structured
// question. All typing-mode logic operates on this shape; it is built
// exactly once per card, and this file is the only place that knows the
// alternate field spellings the backend has shipped over time.
type TypingView struct {
	KoSentence  string
	EnSentence  string // the English sentence with the blank
	Answer      string
	Explanation string
	Examples    []string
}

// Accepted source field names, exhaustively. Earlier spellings win.
var (
	answerKeys      = []string{"answer", "word", "target_word"}
	koSentenceKeys  = []string{"ko_sentence", "korean_sentence", "sentence_ko"}
	enSentenceKeys  = []string{"en_sentence", "english_sentence", "sentence_en", "blank_sentence"}
	explanationKeys = []string{"explanation", "hint", "note"}
	exampleKeys     = []string{"examples", "example_sentences", "variants"}
)

// clozeQuestionSchema requires at least one recognized answer key so a
// shape problem surfaces here as an explicit unsupported-card error
// instead of an empty answer deep in the typing engine.
const clozeQuestionSchema = `{
	"type": "object",
	"anyOf": [
		{"required": ["answer"]},
		{"required": ["word"]},
		{"required": ["target_word"]}
	]
}`

var (
	clozeSchemaOnce sync.Once
	clozeSchema     *jsonschema.Schema
	clozeSchemaErr  error
)

func compiledClozeSchema() (*jsonschema.Schema, error) {
	clozeSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(clozeQuestionSchema))
		if err != nil {
			clozeSchemaErr = fmt.Errorf("parse cloze schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://cloze-question.json", doc); err != nil {
			clozeSchemaErr = fmt.Errorf("add cloze schema: %w", err)
			return
		}
		clozeSchema, clozeSchemaErr = c.Compile("schema://cloze-question.json")
	})
	return clozeSchema, clozeSchemaErr
}

// BuildTypingView validates and normalizes a structured cloze question.
// It returns an UnsupportedCardError when the question is not an object
// or carries no recognizable answer field.
func BuildTypingView(card *studyapi.Card) (*TypingView, error) {
	if card == nil {
		return nil, &UnsupportedCardError{Reason: "no card"}
	}
	if !card.Question.IsObject() {
		return nil, &UnsupportedCardError{CardID: card.ID, Reason: "cloze question is not a structured object"}
	}

	schema, err := compiledClozeSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(card.Question.Object); err != nil {
		return nil, &UnsupportedCardError{CardID: card.ID, Reason: fmt.Sprintf("cloze question shape: %v", err)}
	}

	obj := card.Question.Object
	view := &TypingView{
		KoSentence:  firstString(obj, koSentenceKeys),
		EnSentence:  firstString(obj, enSentenceKeys),
		Answer:      firstString(obj, answerKeys),
		Explanation: firstString(obj, explanationKeys),
		Examples:    exampleStrings(obj),
	}
	if view.Answer == "" {
		return nil, &UnsupportedCardError{CardID: card.ID, Reason: "cloze question carries an empty answer"}
	}
	return view, nil
}

// firstString returns the first non-empty string found under the given
// keys.
func firstString(obj map[string]any, keys []string) string {
	for _, k := range keys {
		if s, ok := obj[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// exampleStrings flattens the example-variant list. Elements may be
// plain strings or {ko/en} objects.
func exampleStrings(obj map[string]any) []string {
	var raw []any
	for _, k := range exampleKeys {
		if list, ok := obj[k].([]any); ok {
			raw = list
			break
		}
	}
	var out []string
	for _, item := range raw {
		switch v := item.(type) {
		case string:
			if v != "" {
				out = append(out, v)
			}
		case map[string]any:
			ko := firstString(v, append([]string{"ko"}, koSentenceKeys...))
			en := firstString(v, append([]string{"en"}, enSentenceKeys...))
			switch {
			case ko != "" && en != "":
				out = append(out, ko+" / "+en)
			case ko != "":
				out = append(out, ko)
			case en != "":
				out = append(out, en)
			}
		}
	}
	return out
}
