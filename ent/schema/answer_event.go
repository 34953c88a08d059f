package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single marked attempt at a question.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to RoundEvent"),
		field.Int("round_no").
			Positive().
			Comment("Round the question belongs to"),
		field.Int("question_no").
			Positive().
			Comment("1-based position within the round"),
		field.String("prompt").
			NotEmpty().
			Comment("The transaction narrative shown"),
		field.String("expected_entry").
			NotEmpty().
			Comment("Model journal entry, one posting per line"),
		field.String("submitted_entry").
			NotEmpty().
			Comment("What the learner submitted"),
		field.Bool("correct").
			Comment("Whether the attempt matched the model entry"),
		field.Int("attempt").
			Positive().
			Comment("1 for first try, 2 for the retry"),
		field.String("outcome").
			NotEmpty().
			Comment("correct, retry, exhausted, or revealed"),
		field.Int("time_ms").
			Comment("Milliseconds spent on this attempt"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("round_no"),
		index.Fields("correct"),
	}
}
