// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/ledgerdrill/ent/answerevent"
	"github.com/abhisek/ledgerdrill/ent/hintevent"
	"github.com/abhisek/ledgerdrill/ent/llmrequestevent"
	"github.com/abhisek/ledgerdrill/ent/roundevent"
	"github.com/abhisek/ledgerdrill/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescRoundNo is the schema descriptor for round_no field.
	answereventDescRoundNo := answereventFields[1].Descriptor()
	// answerevent.RoundNoValidator is a validator for the "round_no" field. It is called by the builders before save.
	answerevent.RoundNoValidator = answereventDescRoundNo.Validators[0].(func(int) error)
	// answereventDescQuestionNo is the schema descriptor for question_no field.
	answereventDescQuestionNo := answereventFields[2].Descriptor()
	// answerevent.QuestionNoValidator is a validator for the "question_no" field. It is called by the builders before save.
	answerevent.QuestionNoValidator = answereventDescQuestionNo.Validators[0].(func(int) error)
	// answereventDescPrompt is the schema descriptor for prompt field.
	answereventDescPrompt := answereventFields[3].Descriptor()
	// answerevent.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	answerevent.PromptValidator = answereventDescPrompt.Validators[0].(func(string) error)
	// answereventDescExpectedEntry is the schema descriptor for expected_entry field.
	answereventDescExpectedEntry := answereventFields[4].Descriptor()
	// answerevent.ExpectedEntryValidator is a validator for the "expected_entry" field. It is called by the builders before save.
	answerevent.ExpectedEntryValidator = answereventDescExpectedEntry.Validators[0].(func(string) error)
	// answereventDescSubmittedEntry is the schema descriptor for submitted_entry field.
	answereventDescSubmittedEntry := answereventFields[5].Descriptor()
	// answerevent.SubmittedEntryValidator is a validator for the "submitted_entry" field. It is called by the builders before save.
	answerevent.SubmittedEntryValidator = answereventDescSubmittedEntry.Validators[0].(func(string) error)
	// answereventDescAttempt is the schema descriptor for attempt field.
	answereventDescAttempt := answereventFields[7].Descriptor()
	// answerevent.AttemptValidator is a validator for the "attempt" field. It is called by the builders before save.
	answerevent.AttemptValidator = answereventDescAttempt.Validators[0].(func(int) error)
	// answereventDescOutcome is the schema descriptor for outcome field.
	answereventDescOutcome := answereventFields[8].Descriptor()
	// answerevent.OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	answerevent.OutcomeValidator = answereventDescOutcome.Validators[0].(func(string) error)
	hinteventMixin := schema.HintEvent{}.Mixin()
	hinteventMixinFields0 := hinteventMixin[0].Fields()
	_ = hinteventMixinFields0
	hinteventFields := schema.HintEvent{}.Fields()
	_ = hinteventFields
	// hinteventDescTimestamp is the schema descriptor for timestamp field.
	hinteventDescTimestamp := hinteventMixinFields0[1].Descriptor()
	// hintevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	hintevent.DefaultTimestamp = hinteventDescTimestamp.Default.(func() time.Time)
	// hinteventDescSessionID is the schema descriptor for session_id field.
	hinteventDescSessionID := hinteventFields[0].Descriptor()
	// hintevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	hintevent.SessionIDValidator = hinteventDescSessionID.Validators[0].(func(string) error)
	// hinteventDescRoundNo is the schema descriptor for round_no field.
	hinteventDescRoundNo := hinteventFields[1].Descriptor()
	// hintevent.RoundNoValidator is a validator for the "round_no" field. It is called by the builders before save.
	hintevent.RoundNoValidator = hinteventDescRoundNo.Validators[0].(func(int) error)
	// hinteventDescQuestionNo is the schema descriptor for question_no field.
	hinteventDescQuestionNo := hinteventFields[2].Descriptor()
	// hintevent.QuestionNoValidator is a validator for the "question_no" field. It is called by the builders before save.
	hintevent.QuestionNoValidator = hinteventDescQuestionNo.Validators[0].(func(int) error)
	// hinteventDescPrompt is the schema descriptor for prompt field.
	hinteventDescPrompt := hinteventFields[3].Descriptor()
	// hintevent.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	hintevent.PromptValidator = hinteventDescPrompt.Validators[0].(func(string) error)
	// hinteventDescHintText is the schema descriptor for hint_text field.
	hinteventDescHintText := hinteventFields[4].Descriptor()
	// hintevent.HintTextValidator is a validator for the "hint_text" field. It is called by the builders before save.
	hintevent.HintTextValidator = hinteventDescHintText.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	roundeventMixin := schema.RoundEvent{}.Mixin()
	roundeventMixinFields0 := roundeventMixin[0].Fields()
	_ = roundeventMixinFields0
	roundeventFields := schema.RoundEvent{}.Fields()
	_ = roundeventFields
	// roundeventDescTimestamp is the schema descriptor for timestamp field.
	roundeventDescTimestamp := roundeventMixinFields0[1].Descriptor()
	// roundevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	roundevent.DefaultTimestamp = roundeventDescTimestamp.Default.(func() time.Time)
	// roundeventDescSessionID is the schema descriptor for session_id field.
	roundeventDescSessionID := roundeventFields[0].Descriptor()
	// roundevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	roundevent.SessionIDValidator = roundeventDescSessionID.Validators[0].(func(string) error)
	// roundeventDescRoundNo is the schema descriptor for round_no field.
	roundeventDescRoundNo := roundeventFields[1].Descriptor()
	// roundevent.RoundNoValidator is a validator for the "round_no" field. It is called by the builders before save.
	roundevent.RoundNoValidator = roundeventDescRoundNo.Validators[0].(func(int) error)
	// roundeventDescAction is the schema descriptor for action field.
	roundeventDescAction := roundeventFields[2].Descriptor()
	// roundevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	roundevent.ActionValidator = roundeventDescAction.Validators[0].(func(string) error)
	// roundeventDescQuestionsServed is the schema descriptor for questions_served field.
	roundeventDescQuestionsServed := roundeventFields[3].Descriptor()
	// roundevent.DefaultQuestionsServed holds the default value on creation for the questions_served field.
	roundevent.DefaultQuestionsServed = roundeventDescQuestionsServed.Default.(int)
	// roundeventDescCorrectAnswers is the schema descriptor for correct_answers field.
	roundeventDescCorrectAnswers := roundeventFields[4].Descriptor()
	// roundevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	roundevent.DefaultCorrectAnswers = roundeventDescCorrectAnswers.Default.(int)
	// roundeventDescDurationSecs is the schema descriptor for duration_secs field.
	roundeventDescDurationSecs := roundeventFields[5].Descriptor()
	// roundevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	roundevent.DefaultDurationSecs = roundeventDescDurationSecs.Default.(int)
}
