// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ReviewEventsColumns holds the columns for the "review_events" table.
	ReviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "card_id", Type: field.TypeString},
		{Name: "word", Type: field.TypeString, Default: ""},
		{Name: "quiz_type", Type: field.TypeString, Default: ""},
		{Name: "mode", Type: field.TypeString, Default: ""},
		{Name: "answer", Type: field.TypeString, Default: ""},
		{Name: "correct_answer", Type: field.TypeString, Default: ""},
		{Name: "correct", Type: field.TypeBool},
		{Name: "had_wrong_attempt", Type: field.TypeBool, Default: false},
		{Name: "rating", Type: field.TypeString, Default: ""},
		{Name: "time_ms", Type: field.TypeInt64, Default: 0},
	}
	// ReviewEventsTable holds the schema information for the "review_events" table.
	ReviewEventsTable = &schema.Table{
		Name:       "review_events",
		Columns:    ReviewEventsColumns,
		PrimaryKey: []*schema.Column{ReviewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[1]},
			},
			{
				Name:    "reviewevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[2]},
			},
			{
				Name:    "reviewevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[3]},
			},
			{
				Name:    "reviewevent_word",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[5]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "cards_studied", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// WrongNotesColumns holds the columns for the "wrong_notes" table.
	WrongNotesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "word", Type: field.TypeString},
		{Name: "sentence", Type: field.TypeString, Default: ""},
		{Name: "meaning", Type: field.TypeString, Default: ""},
		{Name: "user_answer", Type: field.TypeString, Default: ""},
		{Name: "correct_answer", Type: field.TypeString, Default: ""},
		{Name: "quiz_type", Type: field.TypeString, Default: ""},
		{Name: "noted_at", Type: field.TypeTime},
	}
	// WrongNotesTable holds the schema information for the "wrong_notes" table.
	WrongNotesTable = &schema.Table{
		Name:       "wrong_notes",
		Columns:    WrongNotesColumns,
		PrimaryKey: []*schema.Column{WrongNotesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "wrongnote_word_sentence",
				Unique:  true,
				Columns: []*schema.Column{WrongNotesColumns[1], WrongNotesColumns[2]},
			},
			{
				Name:    "wrongnote_noted_at",
				Unique:  false,
				Columns: []*schema.Column{WrongNotesColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ReviewEventsTable,
		SessionEventsTable,
		WrongNotesTable,
	}
)

func init() {
}
