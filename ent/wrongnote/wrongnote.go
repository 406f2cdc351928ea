// Code generated by ent, DO NOT EDIT.

package wrongnote

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the wrongnote type in the database.
	Label = "wrong_note"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldWord holds the string denoting the word field in the database.
	FieldWord = "word"
	// FieldSentence holds the string denoting the sentence field in the database.
	FieldSentence = "sentence"
	// FieldMeaning holds the string denoting the meaning field in the database.
	FieldMeaning = "meaning"
	// FieldUserAnswer holds the string denoting the user_answer field in the database.
	FieldUserAnswer = "user_answer"
	// FieldCorrectAnswer holds the string denoting the correct_answer field in the database.
	FieldCorrectAnswer = "correct_answer"
	// FieldQuizType holds the string denoting the quiz_type field in the database.
	FieldQuizType = "quiz_type"
	// FieldNotedAt holds the string denoting the noted_at field in the database.
	FieldNotedAt = "noted_at"
	// Table holds the table name of the wrongnote in the database.
	Table = "wrong_notes"
)

// Columns holds all SQL columns for wrongnote fields.
var Columns = []string{
	FieldID,
	FieldWord,
	FieldSentence,
	FieldMeaning,
	FieldUserAnswer,
	FieldCorrectAnswer,
	FieldQuizType,
	FieldNotedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// WordValidator is a validator for the "word" field. It is called by the builders before save.
	WordValidator func(string) error
	// DefaultSentence holds the default value on creation for the "sentence" field.
	DefaultSentence string
	// DefaultMeaning holds the default value on creation for the "meaning" field.
	DefaultMeaning string
	// DefaultUserAnswer holds the default value on creation for the "user_answer" field.
	DefaultUserAnswer string
	// DefaultCorrectAnswer holds the default value on creation for the "correct_answer" field.
	DefaultCorrectAnswer string
	// DefaultQuizType holds the default value on creation for the "quiz_type" field.
	DefaultQuizType string
	// DefaultNotedAt holds the default value on creation for the "noted_at" field.
	DefaultNotedAt func() time.Time
	// UpdateDefaultNotedAt holds the default value on update for the "noted_at" field.
	UpdateDefaultNotedAt func() time.Time
)

// OrderOption defines the ordering options for the WrongNote queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWord orders the results by the word field.
func ByWord(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWord, opts...).ToFunc()
}

// BySentence orders the results by the sentence field.
func BySentence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentence, opts...).ToFunc()
}

// ByMeaning orders the results by the meaning field.
func ByMeaning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeaning, opts...).ToFunc()
}

// ByUserAnswer orders the results by the user_answer field.
func ByUserAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserAnswer, opts...).ToFunc()
}

// ByCorrectAnswer orders the results by the correct_answer field.
func ByCorrectAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswer, opts...).ToFunc()
}

// ByQuizType orders the results by the quiz_type field.
func ByQuizType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizType, opts...).ToFunc()
}

// ByNotedAt orders the results by the noted_at field.
func ByNotedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotedAt, opts...).ToFunc()
}
