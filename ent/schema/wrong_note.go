package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WrongNote records a word the learner got wrong, for later review.
// Notes are keyed by (word, sentence): missing the same word in the same
// sentence again overwrites the existing note instead of duplicating it.
type WrongNote struct {
	ent.Schema
}

func (WrongNote) Fields() []ent.Field {
	return []ent.Field{
		field.String("word").
			NotEmpty().
			Comment("English headword that was missed"),
		field.String("sentence").
			Default("").
			Comment("Sentence context the word appeared in, empty for bare cards"),
		field.String("meaning").
			Default("").
			Comment("Korean meaning of the word"),
		field.String("user_answer").
			Default("").
			Comment("What the learner actually produced"),
		field.String("correct_answer").
			Default("").
			Comment("The canonical answer"),
		field.String("quiz_type").
			Default("").
			Comment("Quiz type the miss happened under"),
		field.Time("noted_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last time this word was missed"),
	}
}

func (WrongNote) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("word", "sentence").Unique(),
		index.Fields("noted_at"),
	}
}
