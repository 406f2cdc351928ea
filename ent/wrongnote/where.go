// Code generated by ent, DO NOT EDIT.

package wrongnote

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/daneoapp/daneo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldLTE(FieldID, id))
}

// Word applies equality check predicate on the "word" field. It's identical to WordEQ.
func Word(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldEQ(FieldWord, v))
}

// Sentence applies equality check predicate on the "sentence" field. It's identical to SentenceEQ.
func Sentence(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldEQ(FieldSentence, v))
}

// Meaning applies equality check predicate on the "meaning" field. It's identical to MeaningEQ.
func Meaning(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldEQ(FieldMeaning, v))
}

// UserAnswer applies equality check predicate on the "user_answer" field. It's identical to UserAnswerEQ.
func UserAnswer(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldEQ(FieldUserAnswer, v))
}

// CorrectAnswer applies equality check predicate on the "correct_answer" field. It's identical to CorrectAnswerEQ.
func CorrectAnswer(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldEQ(FieldCorrectAnswer, v))
}

// QuizType applies equality check predicate on the "quiz_type" field. It's identical to QuizTypeEQ.
func QuizType(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldEQ(FieldQuizType, v))
}

// NotedAt applies equality check predicate on the "noted_at" field. It's identical to NotedAtEQ.
func NotedAt(v time.Time) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldEQ(FieldNotedAt, v))
}

// WordEQ applies the EQ predicate on the "word" field.
func WordEQ(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldEQ(FieldWord, v))
}

// WordNEQ applies the NEQ predicate on the "word" field.
func WordNEQ(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldNEQ(FieldWord, v))
}

// WordIn applies the In predicate on the "word" field.
func WordIn(vs ...string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldIn(FieldWord, vs...))
}

// WordNotIn applies the NotIn predicate on the "word" field.
func WordNotIn(vs ...string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldNotIn(FieldWord, vs...))
}

// WordGT applies the GT predicate on the "word" field.
func WordGT(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldGT(FieldWord, v))
}

// WordGTE applies the GTE predicate on the "word" field.
func WordGTE(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldGTE(FieldWord, v))
}

// WordLT applies the LT predicate on the "word" field.
func WordLT(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldLT(FieldWord, v))
}

// WordLTE applies the LTE predicate on the "word" field.
func WordLTE(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldLTE(FieldWord, v))
}

// WordContains applies the Contains predicate on the "word" field.
func WordContains(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldContains(FieldWord, v))
}

// WordHasPrefix applies the HasPrefix predicate on the "word" field.
func WordHasPrefix(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldHasPrefix(FieldWord, v))
}

// WordHasSuffix applies the HasSuffix predicate on the "word" field.
func WordHasSuffix(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldHasSuffix(FieldWord, v))
}

// WordEqualFold applies the EqualFold predicate on the "word" field.
func WordEqualFold(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldEqualFold(FieldWord, v))
}

// WordContainsFold applies the ContainsFold predicate on the "word" field.
func WordContainsFold(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldContainsFold(FieldWord, v))
}

// SentenceEQ applies the EQ predicate on the "sentence" field.
func SentenceEQ(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldEQ(FieldSentence, v))
}

// SentenceNEQ applies the NEQ predicate on the "sentence" field.
func SentenceNEQ(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldNEQ(FieldSentence, v))
}

// SentenceIn applies the In predicate on the "sentence" field.
func SentenceIn(vs ...string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldIn(FieldSentence, vs...))
}

// SentenceNotIn applies the NotIn predicate on the "sentence" field.
func SentenceNotIn(vs ...string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldNotIn(FieldSentence, vs...))
}

// SentenceGT applies the GT predicate on the "sentence" field.
func SentenceGT(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldGT(FieldSentence, v))
}

// SentenceGTE applies the GTE predicate on the "sentence" field.
func SentenceGTE(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldGTE(FieldSentence, v))
}

// SentenceLT applies the LT predicate on the "sentence" field.
func SentenceLT(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldLT(FieldSentence, v))
}

// SentenceLTE applies the LTE predicate on the "sentence" field.
func SentenceLTE(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldLTE(FieldSentence, v))
}

// SentenceContains applies the Contains predicate on the "sentence" field.
func SentenceContains(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldContains(FieldSentence, v))
}

// SentenceHasPrefix applies the HasPrefix predicate on the "sentence" field.
func SentenceHasPrefix(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldHasPrefix(FieldSentence, v))
}

// SentenceHasSuffix applies the HasSuffix predicate on the "sentence" field.
func SentenceHasSuffix(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldHasSuffix(FieldSentence, v))
}

// SentenceEqualFold applies the EqualFold predicate on the "sentence" field.
func SentenceEqualFold(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldEqualFold(FieldSentence, v))
}

// SentenceContainsFold applies the ContainsFold predicate on the "sentence" field.
func SentenceContainsFold(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldContainsFold(FieldSentence, v))
}

// MeaningEQ applies the EQ predicate on the "meaning" field.
func MeaningEQ(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldEQ(FieldMeaning, v))
}

// MeaningNEQ applies the NEQ predicate on the "meaning" field.
func MeaningNEQ(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldNEQ(FieldMeaning, v))
}

// MeaningIn applies the In predicate on the "meaning" field.
func MeaningIn(vs ...string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldIn(FieldMeaning, vs...))
}

// MeaningNotIn applies the NotIn predicate on the "meaning" field.
func MeaningNotIn(vs ...string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldNotIn(FieldMeaning, vs...))
}

// MeaningGT applies the GT predicate on the "meaning" field.
func MeaningGT(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldGT(FieldMeaning, v))
}

// MeaningGTE applies the GTE predicate on the "meaning" field.
func MeaningGTE(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldGTE(FieldMeaning, v))
}

// MeaningLT applies the LT predicate on the "meaning" field.
func MeaningLT(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldLT(FieldMeaning, v))
}

// MeaningLTE applies the LTE predicate on the "meaning" field.
func MeaningLTE(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldLTE(FieldMeaning, v))
}

// MeaningContains applies the Contains predicate on the "meaning" field.
func MeaningContains(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldContains(FieldMeaning, v))
}

// MeaningHasPrefix applies the HasPrefix predicate on the "meaning" field.
func MeaningHasPrefix(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldHasPrefix(FieldMeaning, v))
}

// MeaningHasSuffix applies the HasSuffix predicate on the "meaning" field.
func MeaningHasSuffix(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldHasSuffix(FieldMeaning, v))
}

// MeaningEqualFold applies the EqualFold predicate on the "meaning" field.
func MeaningEqualFold(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldEqualFold(FieldMeaning, v))
}

// MeaningContainsFold applies the ContainsFold predicate on the "meaning" field.
func MeaningContainsFold(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldContainsFold(FieldMeaning, v))
}

// UserAnswerEQ applies the EQ predicate on the "user_answer" field.
func UserAnswerEQ(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldEQ(FieldUserAnswer, v))
}

// UserAnswerNEQ applies the NEQ predicate on the "user_answer" field.
func UserAnswerNEQ(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldNEQ(FieldUserAnswer, v))
}

// UserAnswerIn applies the In predicate on the "user_answer" field.
func UserAnswerIn(vs ...string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldIn(FieldUserAnswer, vs...))
}

// UserAnswerNotIn applies the NotIn predicate on the "user_answer" field.
func UserAnswerNotIn(vs ...string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldNotIn(FieldUserAnswer, vs...))
}

// UserAnswerGT applies the GT predicate on the "user_answer" field.
func UserAnswerGT(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldGT(FieldUserAnswer, v))
}

// UserAnswerGTE applies the GTE predicate on the "user_answer" field.
func UserAnswerGTE(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldGTE(FieldUserAnswer, v))
}

// UserAnswerLT applies the LT predicate on the "user_answer" field.
func UserAnswerLT(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldLT(FieldUserAnswer, v))
}

// UserAnswerLTE applies the LTE predicate on the "user_answer" field.
func UserAnswerLTE(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldLTE(FieldUserAnswer, v))
}

// UserAnswerContains applies the Contains predicate on the "user_answer" field.
func UserAnswerContains(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldContains(FieldUserAnswer, v))
}

// UserAnswerHasPrefix applies the HasPrefix predicate on the "user_answer" field.
func UserAnswerHasPrefix(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldHasPrefix(FieldUserAnswer, v))
}

// UserAnswerHasSuffix applies the HasSuffix predicate on the "user_answer" field.
func UserAnswerHasSuffix(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldHasSuffix(FieldUserAnswer, v))
}

// UserAnswerEqualFold applies the EqualFold predicate on the "user_answer" field.
func UserAnswerEqualFold(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldEqualFold(FieldUserAnswer, v))
}

// UserAnswerContainsFold applies the ContainsFold predicate on the "user_answer" field.
func UserAnswerContainsFold(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldContainsFold(FieldUserAnswer, v))
}

// CorrectAnswerEQ applies the EQ predicate on the "correct_answer" field.
func CorrectAnswerEQ(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerNEQ applies the NEQ predicate on the "correct_answer" field.
func CorrectAnswerNEQ(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldNEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerIn applies the In predicate on the "correct_answer" field.
func CorrectAnswerIn(vs ...string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerNotIn applies the NotIn predicate on the "correct_answer" field.
func CorrectAnswerNotIn(vs ...string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldNotIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerGT applies the GT predicate on the "correct_answer" field.
func CorrectAnswerGT(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldGT(FieldCorrectAnswer, v))
}

// CorrectAnswerGTE applies the GTE predicate on the "correct_answer" field.
func CorrectAnswerGTE(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldGTE(FieldCorrectAnswer, v))
}

// CorrectAnswerLT applies the LT predicate on the "correct_answer" field.
func CorrectAnswerLT(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldLT(FieldCorrectAnswer, v))
}

// CorrectAnswerLTE applies the LTE predicate on the "correct_answer" field.
func CorrectAnswerLTE(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldLTE(FieldCorrectAnswer, v))
}

// CorrectAnswerContains applies the Contains predicate on the "correct_answer" field.
func CorrectAnswerContains(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldContains(FieldCorrectAnswer, v))
}

// CorrectAnswerHasPrefix applies the HasPrefix predicate on the "correct_answer" field.
func CorrectAnswerHasPrefix(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldHasPrefix(FieldCorrectAnswer, v))
}

// CorrectAnswerHasSuffix applies the HasSuffix predicate on the "correct_answer" field.
func CorrectAnswerHasSuffix(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldHasSuffix(FieldCorrectAnswer, v))
}

// CorrectAnswerEqualFold applies the EqualFold predicate on the "correct_answer" field.
func CorrectAnswerEqualFold(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldEqualFold(FieldCorrectAnswer, v))
}

// CorrectAnswerContainsFold applies the ContainsFold predicate on the "correct_answer" field.
func CorrectAnswerContainsFold(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldContainsFold(FieldCorrectAnswer, v))
}

// QuizTypeEQ applies the EQ predicate on the "quiz_type" field.
func QuizTypeEQ(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldEQ(FieldQuizType, v))
}

// QuizTypeNEQ applies the NEQ predicate on the "quiz_type" field.
func QuizTypeNEQ(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldNEQ(FieldQuizType, v))
}

// QuizTypeIn applies the In predicate on the "quiz_type" field.
func QuizTypeIn(vs ...string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldIn(FieldQuizType, vs...))
}

// QuizTypeNotIn applies the NotIn predicate on the "quiz_type" field.
func QuizTypeNotIn(vs ...string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldNotIn(FieldQuizType, vs...))
}

// QuizTypeGT applies the GT predicate on the "quiz_type" field.
func QuizTypeGT(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldGT(FieldQuizType, v))
}

// QuizTypeGTE applies the GTE predicate on the "quiz_type" field.
func QuizTypeGTE(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldGTE(FieldQuizType, v))
}

// QuizTypeLT applies the LT predicate on the "quiz_type" field.
func QuizTypeLT(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldLT(FieldQuizType, v))
}

// QuizTypeLTE applies the LTE predicate on the "quiz_type" field.
func QuizTypeLTE(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldLTE(FieldQuizType, v))
}

// QuizTypeContains applies the Contains predicate on the "quiz_type" field.
func QuizTypeContains(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldContains(FieldQuizType, v))
}

// QuizTypeHasPrefix applies the HasPrefix predicate on the "quiz_type" field.
func QuizTypeHasPrefix(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldHasPrefix(FieldQuizType, v))
}

// QuizTypeHasSuffix applies the HasSuffix predicate on the "quiz_type" field.
func QuizTypeHasSuffix(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldHasSuffix(FieldQuizType, v))
}

// QuizTypeEqualFold applies the EqualFold predicate on the "quiz_type" field.
func QuizTypeEqualFold(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldEqualFold(FieldQuizType, v))
}

// QuizTypeContainsFold applies the ContainsFold predicate on the "quiz_type" field.
func QuizTypeContainsFold(v string) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldContainsFold(FieldQuizType, v))
}

// NotedAtEQ applies the EQ predicate on the "noted_at" field.
func NotedAtEQ(v time.Time) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldEQ(FieldNotedAt, v))
}

// NotedAtNEQ applies the NEQ predicate on the "noted_at" field.
func NotedAtNEQ(v time.Time) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldNEQ(FieldNotedAt, v))
}

// NotedAtIn applies the In predicate on the "noted_at" field.
func NotedAtIn(vs ...time.Time) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldIn(FieldNotedAt, vs...))
}

// NotedAtNotIn applies the NotIn predicate on the "noted_at" field.
func NotedAtNotIn(vs ...time.Time) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldNotIn(FieldNotedAt, vs...))
}

// NotedAtGT applies the GT predicate on the "noted_at" field.
func NotedAtGT(v time.Time) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldGT(FieldNotedAt, v))
}

// NotedAtGTE applies the GTE predicate on the "noted_at" field.
func NotedAtGTE(v time.Time) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldGTE(FieldNotedAt, v))
}

// NotedAtLT applies the LT predicate on the "noted_at" field.
func NotedAtLT(v time.Time) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldLT(FieldNotedAt, v))
}

// NotedAtLTE applies the LTE predicate on the "noted_at" field.
func NotedAtLTE(v time.Time) predicate.WrongNote {
	return predicate.WrongNote(sql.FieldLTE(FieldNotedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WrongNote) predicate.WrongNote {
	return predicate.WrongNote(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WrongNote) predicate.WrongNote {
	return predicate.WrongNote(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WrongNote) predicate.WrongNote {
	return predicate.WrongNote(sql.NotPredicates(p))
}
