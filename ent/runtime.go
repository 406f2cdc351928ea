// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/daneoapp/daneo/ent/reviewevent"
	"github.com/daneoapp/daneo/ent/schema"
	"github.com/daneoapp/daneo/ent/sessionevent"
	"github.com/daneoapp/daneo/ent/wrongnote"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescSessionID is the schema descriptor for session_id field.
	revieweventDescSessionID := revieweventFields[0].Descriptor()
	// reviewevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	reviewevent.SessionIDValidator = revieweventDescSessionID.Validators[0].(func(string) error)
	// revieweventDescCardID is the schema descriptor for card_id field.
	revieweventDescCardID := revieweventFields[1].Descriptor()
	// reviewevent.CardIDValidator is a validator for the "card_id" field. It is called by the builders before save.
	reviewevent.CardIDValidator = revieweventDescCardID.Validators[0].(func(string) error)
	// revieweventDescWord is the schema descriptor for word field.
	revieweventDescWord := revieweventFields[2].Descriptor()
	// reviewevent.DefaultWord holds the default value on creation for the word field.
	reviewevent.DefaultWord = revieweventDescWord.Default.(string)
	// revieweventDescQuizType is the schema descriptor for quiz_type field.
	revieweventDescQuizType := revieweventFields[3].Descriptor()
	// reviewevent.DefaultQuizType holds the default value on creation for the quiz_type field.
	reviewevent.DefaultQuizType = revieweventDescQuizType.Default.(string)
	// revieweventDescMode is the schema descriptor for mode field.
	revieweventDescMode := revieweventFields[4].Descriptor()
	// reviewevent.DefaultMode holds the default value on creation for the mode field.
	reviewevent.DefaultMode = revieweventDescMode.Default.(string)
	// revieweventDescAnswer is the schema descriptor for answer field.
	revieweventDescAnswer := revieweventFields[5].Descriptor()
	// reviewevent.DefaultAnswer holds the default value on creation for the answer field.
	reviewevent.DefaultAnswer = revieweventDescAnswer.Default.(string)
	// revieweventDescCorrectAnswer is the schema descriptor for correct_answer field.
	revieweventDescCorrectAnswer := revieweventFields[6].Descriptor()
	// reviewevent.DefaultCorrectAnswer holds the default value on creation for the correct_answer field.
	reviewevent.DefaultCorrectAnswer = revieweventDescCorrectAnswer.Default.(string)
	// revieweventDescHadWrongAttempt is the schema descriptor for had_wrong_attempt field.
	revieweventDescHadWrongAttempt := revieweventFields[8].Descriptor()
	// reviewevent.DefaultHadWrongAttempt holds the default value on creation for the had_wrong_attempt field.
	reviewevent.DefaultHadWrongAttempt = revieweventDescHadWrongAttempt.Default.(bool)
	// revieweventDescRating is the schema descriptor for rating field.
	revieweventDescRating := revieweventFields[9].Descriptor()
	// reviewevent.DefaultRating holds the default value on creation for the rating field.
	reviewevent.DefaultRating = revieweventDescRating.Default.(string)
	// revieweventDescTimeMs is the schema descriptor for time_ms field.
	revieweventDescTimeMs := revieweventFields[10].Descriptor()
	// reviewevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	reviewevent.DefaultTimeMs = revieweventDescTimeMs.Default.(int64)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescCardsStudied is the schema descriptor for cards_studied field.
	sessioneventDescCardsStudied := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultCardsStudied holds the default value on creation for the cards_studied field.
	sessionevent.DefaultCardsStudied = sessioneventDescCardsStudied.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	wrongnoteFields := schema.WrongNote{}.Fields()
	_ = wrongnoteFields
	// wrongnoteDescWord is the schema descriptor for word field.
	wrongnoteDescWord := wrongnoteFields[0].Descriptor()
	// wrongnote.WordValidator is a validator for the "word" field. It is called by the builders before save.
	wrongnote.WordValidator = wrongnoteDescWord.Validators[0].(func(string) error)
	// wrongnoteDescSentence is the schema descriptor for sentence field.
	wrongnoteDescSentence := wrongnoteFields[1].Descriptor()
	// wrongnote.DefaultSentence holds the default value on creation for the sentence field.
	wrongnote.DefaultSentence = wrongnoteDescSentence.Default.(string)
	// wrongnoteDescMeaning is the schema descriptor for meaning field.
	wrongnoteDescMeaning := wrongnoteFields[2].Descriptor()
	// wrongnote.DefaultMeaning holds the default value on creation for the meaning field.
	wrongnote.DefaultMeaning = wrongnoteDescMeaning.Default.(string)
	// wrongnoteDescUserAnswer is the schema descriptor for user_answer field.
	wrongnoteDescUserAnswer := wrongnoteFields[3].Descriptor()
	// wrongnote.DefaultUserAnswer holds the default value on creation for the user_answer field.
	wrongnote.DefaultUserAnswer = wrongnoteDescUserAnswer.Default.(string)
	// wrongnoteDescCorrectAnswer is the schema descriptor for correct_answer field.
	wrongnoteDescCorrectAnswer := wrongnoteFields[4].Descriptor()
	// wrongnote.DefaultCorrectAnswer holds the default value on creation for the correct_answer field.
	wrongnote.DefaultCorrectAnswer = wrongnoteDescCorrectAnswer.Default.(string)
	// wrongnoteDescQuizType is the schema descriptor for quiz_type field.
	wrongnoteDescQuizType := wrongnoteFields[5].Descriptor()
	// wrongnote.DefaultQuizType holds the default value on creation for the quiz_type field.
	wrongnote.DefaultQuizType = wrongnoteDescQuizType.Default.(string)
	// wrongnoteDescNotedAt is the schema descriptor for noted_at field.
	wrongnoteDescNotedAt := wrongnoteFields[6].Descriptor()
	// wrongnote.DefaultNotedAt holds the default value on creation for the noted_at field.
	wrongnote.DefaultNotedAt = wrongnoteDescNotedAt.Default.(func() time.Time)
	// wrongnote.UpdateDefaultNotedAt holds the default value on update for the noted_at field.
	wrongnote.UpdateDefaultNotedAt = wrongnoteDescNotedAt.UpdateDefault.(func() time.Time)
}
