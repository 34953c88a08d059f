// Code generated by ent, DO NOT EDIT.

package answerevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the answerevent type in the database.
	Label = "answer_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldRoundNo holds the string denoting the round_no field in the database.
	FieldRoundNo = "round_no"
	// FieldQuestionNo holds the string denoting the question_no field in the database.
	FieldQuestionNo = "question_no"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// FieldExpectedEntry holds the string denoting the expected_entry field in the database.
	FieldExpectedEntry = "expected_entry"
	// FieldSubmittedEntry holds the string denoting the submitted_entry field in the database.
	FieldSubmittedEntry = "submitted_entry"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldAttempt holds the string denoting the attempt field in the database.
	FieldAttempt = "attempt"
	// FieldOutcome holds the string denoting the outcome field in the database.
	FieldOutcome = "outcome"
	// FieldTimeMs holds the string denoting the time_ms field in the database.
	FieldTimeMs = "time_ms"
	// Table holds the table name of the answerevent in the database.
	Table = "answer_events"
)

// Columns holds all SQL columns for answerevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldRoundNo,
	FieldQuestionNo,
	FieldPrompt,
	FieldExpectedEntry,
	FieldSubmittedEntry,
	FieldCorrect,
	FieldAttempt,
	FieldOutcome,
	FieldTimeMs,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// RoundNoValidator is a validator for the "round_no" field. It is called by the builders before save.
	RoundNoValidator func(int) error
	// QuestionNoValidator is a validator for the "question_no" field. It is called by the builders before save.
	QuestionNoValidator func(int) error
	// PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	PromptValidator func(string) error
	// ExpectedEntryValidator is a validator for the "expected_entry" field. It is called by the builders before save.
	ExpectedEntryValidator func(string) error
	// SubmittedEntryValidator is a validator for the "submitted_entry" field. It is called by the builders before save.
	SubmittedEntryValidator func(string) error
	// AttemptValidator is a validator for the "attempt" field. It is called by the builders before save.
	AttemptValidator func(int) error
	// OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	OutcomeValidator func(string) error
)

// OrderOption defines the ordering options for the AnswerEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByRoundNo orders the results by the round_no field.
func ByRoundNo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoundNo, opts...).ToFunc()
}

// ByQuestionNo orders the results by the question_no field.
func ByQuestionNo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionNo, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}

// ByExpectedEntry orders the results by the expected_entry field.
func ByExpectedEntry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpectedEntry, opts...).ToFunc()
}

// BySubmittedEntry orders the results by the submitted_entry field.
func BySubmittedEntry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmittedEntry, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByAttempt orders the results by the attempt field.
func ByAttempt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempt, opts...).ToFunc()
}

// ByOutcome orders the results by the outcome field.
func ByOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcome, opts...).ToFunc()
}

// ByTimeMs orders the results by the time_ms field.
func ByTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeMs, opts...).ToFunc()
}
