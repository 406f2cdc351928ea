package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events (start/complete).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Remote session identifier"),
		field.String("action").
			NotEmpty().
			Comment("start or complete"),
		field.Int("cards_studied").
			Default(0).
			Comment("Cards answered (on complete only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Correct answers (on complete only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Wall-clock session duration (on complete only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
