package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PracticeSessionEvent records the start or completion of a practice
// session.
type PracticeSessionEvent struct {
	ent.Schema
}

func (PracticeSessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PracticeSessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Stable ID shared with the session's attempt events"),
		field.String("action").
			NotEmpty().
			Comment("started or completed"),
		field.String("mode").
			Optional().
			Comment("strict, recommended, or untimed"),
		field.String("strategy").
			Optional().
			Comment("Practice-set selection strategy used"),
		field.Int("question_count").
			Comment("Questions in the session's practice set"),
		field.Int("correct_count").
			Comment("Correct answers at completion; zero on start"),
		field.Float("total_seconds").
			Comment("Cumulative answering time at completion"),
		field.String("pace").
			Optional().
			Comment("too_fast, good_pace, or too_slow; empty on start"),
	}
}

func (PracticeSessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
