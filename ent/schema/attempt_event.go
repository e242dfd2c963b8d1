package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one answered question within a practice session.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to PracticeSessionEvent"),
		field.String("question_id").
			NotEmpty().
			Comment("Question attempted"),
		field.String("question_type").
			NotEmpty().
			Comment("One of the fifteen logical-reasoning types"),
		field.Float("difficulty").
			Comment("Overall difficulty on the 1-5 scale"),
		field.Bool("correct").
			Comment("Whether the chosen answer was correct"),
		field.Float("time_spent").
			Comment("Seconds spent on the question"),
		field.Int("recommended_seconds").
			Comment("Recommended solve time at attempt time"),
		field.String("chosen_answer").
			Comment("Text of the chosen answer"),
		field.String("correct_answer").
			Comment("Text of the correct answer"),
		field.JSON("patterns", []string{}).
			Optional().
			Comment("Trap patterns detected in the chosen wrong answer"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("question_type"),
		index.Fields("correct"),
	}
}
