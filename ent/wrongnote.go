// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/daneoapp/daneo/ent/wrongnote"
)

// WrongNote is the model entity for the WrongNote schema.
type WrongNote struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// English headword that was missed
	Word string `json:"word,omitempty"`
	// Sentence context the word appeared in, empty for bare cards
	Sentence string `json:"sentence,omitempty"`
	// Korean meaning of the word
	Meaning string `json:"meaning,omitempty"`
	// What the learner actually produced
	UserAnswer string `json:"user_answer,omitempty"`
	// The canonical answer
	CorrectAnswer string `json:"correct_answer,omitempty"`
	// Quiz type the miss happened under
	QuizType string `json:"quiz_type,omitempty"`
	// Last time this word was missed
	NotedAt      time.Time `json:"noted_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WrongNote) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case wrongnote.FieldID:
			values[i] = new(sql.NullInt64)
		case wrongnote.FieldWord, wrongnote.FieldSentence, wrongnote.FieldMeaning, wrongnote.FieldUserAnswer, wrongnote.FieldCorrectAnswer, wrongnote.FieldQuizType:
			values[i] = new(sql.NullString)
		case wrongnote.FieldNotedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WrongNote fields.
func (_m *WrongNote) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case wrongnote.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case wrongnote.FieldWord:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field word", values[i])
			} else if value.Valid {
				_m.Word = value.String
			}
		case wrongnote.FieldSentence:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sentence", values[i])
			} else if value.Valid {
				_m.Sentence = value.String
			}
		case wrongnote.FieldMeaning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meaning", values[i])
			} else if value.Valid {
				_m.Meaning = value.String
			}
		case wrongnote.FieldUserAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_answer", values[i])
			} else if value.Valid {
				_m.UserAnswer = value.String
			}
		case wrongnote.FieldCorrectAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answer", values[i])
			} else if value.Valid {
				_m.CorrectAnswer = value.String
			}
		case wrongnote.FieldQuizType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_type", values[i])
			} else if value.Valid {
				_m.QuizType = value.String
			}
		case wrongnote.FieldNotedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field noted_at", values[i])
			} else if value.Valid {
				_m.NotedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WrongNote.
// This includes values selected through modifiers, order, etc.
func (_m *WrongNote) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this WrongNote.
// Note that you need to call WrongNote.Unwrap() before calling this method if this WrongNote
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WrongNote) Update() *WrongNoteUpdateOne {
	return NewWrongNoteClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WrongNote entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WrongNote) Unwrap() *WrongNote {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WrongNote is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WrongNote) String() string {
	var builder strings.Builder
	builder.WriteString("WrongNote(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("word=")
	builder.WriteString(_m.Word)
	builder.WriteString(", ")
	builder.WriteString("sentence=")
	builder.WriteString(_m.Sentence)
	builder.WriteString(", ")
	builder.WriteString("meaning=")
	builder.WriteString(_m.Meaning)
	builder.WriteString(", ")
	builder.WriteString("user_answer=")
	builder.WriteString(_m.UserAnswer)
	builder.WriteString(", ")
	builder.WriteString("correct_answer=")
	builder.WriteString(_m.CorrectAnswer)
	builder.WriteString(", ")
	builder.WriteString("quiz_type=")
	builder.WriteString(_m.QuizType)
	builder.WriteString(", ")
	builder.WriteString("noted_at=")
	builder.WriteString(_m.NotedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WrongNotes is a parsable slice of WrongNote.
type WrongNotes []*WrongNote
