package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records one answered card: what was asked, what the
// learner produced, the verdict, and the self-assessed rating. Events
// are append-only; the stats command aggregates over them.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Remote session the answer belongs to"),
		field.String("card_id").
			NotEmpty().
			Comment("Remote card identifier"),
		field.String("word").
			Default("").
			Comment("English headword of the card"),
		field.String("quiz_type").
			Default("").
			Comment("word_to_meaning, meaning_to_word, listening or cloze"),
		field.String("mode").
			Default("").
			Comment("flip, choice or typing"),
		field.String("answer").
			Default("").
			Comment("Answer value that was submitted"),
		field.String("correct_answer").
			Default("").
			Comment("Canonical answer reported by the remote side"),
		field.Bool("correct").
			Comment("Remote verdict"),
		field.Bool("had_wrong_attempt").
			Default(false).
			Comment("Whether a wrong attempt preceded the final answer"),
		field.String("rating").
			Default("").
			Comment("Self-assessed recall quality (again/hard/good/easy)"),
		field.Int64("time_ms").
			Default(0).
			Comment("Time from card display to submission"),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("word"),
	}
}
