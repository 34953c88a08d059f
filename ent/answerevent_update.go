// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/ledgerdrill/ent/answerevent"
	"github.com/abhisek/ledgerdrill/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdate) SetSessionID(v string) *AnswerEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSessionID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetRoundNo sets the "round_no" field.
func (_u *AnswerEventUpdate) SetRoundNo(v int) *AnswerEventUpdate {
	_u.mutation.ResetRoundNo()
	_u.mutation.SetRoundNo(v)
	return _u
}

// SetNillableRoundNo sets the "round_no" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableRoundNo(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetRoundNo(*v)
	}
	return _u
}

// AddRoundNo adds value to the "round_no" field.
func (_u *AnswerEventUpdate) AddRoundNo(v int) *AnswerEventUpdate {
	_u.mutation.AddRoundNo(v)
	return _u
}

// SetQuestionNo sets the "question_no" field.
func (_u *AnswerEventUpdate) SetQuestionNo(v int) *AnswerEventUpdate {
	_u.mutation.ResetQuestionNo()
	_u.mutation.SetQuestionNo(v)
	return _u
}

// SetNillableQuestionNo sets the "question_no" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableQuestionNo(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetQuestionNo(*v)
	}
	return _u
}

// AddQuestionNo adds value to the "question_no" field.
func (_u *AnswerEventUpdate) AddQuestionNo(v int) *AnswerEventUpdate {
	_u.mutation.AddQuestionNo(v)
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *AnswerEventUpdate) SetPrompt(v string) *AnswerEventUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillablePrompt(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetExpectedEntry sets the "expected_entry" field.
func (_u *AnswerEventUpdate) SetExpectedEntry(v string) *AnswerEventUpdate {
	_u.mutation.SetExpectedEntry(v)
	return _u
}

// SetNillableExpectedEntry sets the "expected_entry" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableExpectedEntry(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetExpectedEntry(*v)
	}
	return _u
}

// SetSubmittedEntry sets the "submitted_entry" field.
func (_u *AnswerEventUpdate) SetSubmittedEntry(v string) *AnswerEventUpdate {
	_u.mutation.SetSubmittedEntry(v)
	return _u
}

// SetNillableSubmittedEntry sets the "submitted_entry" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSubmittedEntry(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetSubmittedEntry(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdate) SetCorrect(v bool) *AnswerEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrect(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *AnswerEventUpdate) SetAttempt(v int) *AnswerEventUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableAttempt(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *AnswerEventUpdate) AddAttempt(v int) *AnswerEventUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *AnswerEventUpdate) SetOutcome(v string) *AnswerEventUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableOutcome(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AnswerEventUpdate) SetTimeMs(v int) *AnswerEventUpdate {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableTimeMs(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AnswerEventUpdate) AddTimeMs(v int) *AnswerEventUpdate {
	_u.mutation.AddTimeMs(v)
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RoundNo(); ok {
		if err := answerevent.RoundNoValidator(v); err != nil {
			return &ValidationError{Name: "round_no", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.round_no": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionNo(); ok {
		if err := answerevent.QuestionNoValidator(v); err != nil {
			return &ValidationError{Name: "question_no", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_no": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := answerevent.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExpectedEntry(); ok {
		if err := answerevent.ExpectedEntryValidator(v); err != nil {
			return &ValidationError{Name: "expected_entry", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.expected_entry": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubmittedEntry(); ok {
		if err := answerevent.SubmittedEntryValidator(v); err != nil {
			return &ValidationError{Name: "submitted_entry", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.submitted_entry": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempt(); ok {
		if err := answerevent.AttemptValidator(v); err != nil {
			return &ValidationError{Name: "attempt", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.attempt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := answerevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoundNo(); ok {
		_spec.SetField(answerevent.FieldRoundNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoundNo(); ok {
		_spec.AddField(answerevent.FieldRoundNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionNo(); ok {
		_spec.SetField(answerevent.FieldQuestionNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionNo(); ok {
		_spec.AddField(answerevent.FieldQuestionNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(answerevent.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpectedEntry(); ok {
		_spec.SetField(answerevent.FieldExpectedEntry, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubmittedEntry(); ok {
		_spec.SetField(answerevent.FieldSubmittedEntry, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(answerevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(answerevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(answerevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdateOne) SetSessionID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSessionID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetRoundNo sets the "round_no" field.
func (_u *AnswerEventUpdateOne) SetRoundNo(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetRoundNo()
	_u.mutation.SetRoundNo(v)
	return _u
}

// SetNillableRoundNo sets the "round_no" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableRoundNo(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetRoundNo(*v)
	}
	return _u
}

// AddRoundNo adds value to the "round_no" field.
func (_u *AnswerEventUpdateOne) AddRoundNo(v int) *AnswerEventUpdateOne {
	_u.mutation.AddRoundNo(v)
	return _u
}

// SetQuestionNo sets the "question_no" field.
func (_u *AnswerEventUpdateOne) SetQuestionNo(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetQuestionNo()
	_u.mutation.SetQuestionNo(v)
	return _u
}

// SetNillableQuestionNo sets the "question_no" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableQuestionNo(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetQuestionNo(*v)
	}
	return _u
}

// AddQuestionNo adds value to the "question_no" field.
func (_u *AnswerEventUpdateOne) AddQuestionNo(v int) *AnswerEventUpdateOne {
	_u.mutation.AddQuestionNo(v)
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *AnswerEventUpdateOne) SetPrompt(v string) *AnswerEventUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillablePrompt(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetExpectedEntry sets the "expected_entry" field.
func (_u *AnswerEventUpdateOne) SetExpectedEntry(v string) *AnswerEventUpdateOne {
	_u.mutation.SetExpectedEntry(v)
	return _u
}

// SetNillableExpectedEntry sets the "expected_entry" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableExpectedEntry(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetExpectedEntry(*v)
	}
	return _u
}

// SetSubmittedEntry sets the "submitted_entry" field.
func (_u *AnswerEventUpdateOne) SetSubmittedEntry(v string) *AnswerEventUpdateOne {
	_u.mutation.SetSubmittedEntry(v)
	return _u
}

// SetNillableSubmittedEntry sets the "submitted_entry" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSubmittedEntry(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSubmittedEntry(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdateOne) SetCorrect(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrect(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *AnswerEventUpdateOne) SetAttempt(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableAttempt(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *AnswerEventUpdateOne) AddAttempt(v int) *AnswerEventUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *AnswerEventUpdateOne) SetOutcome(v string) *AnswerEventUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableOutcome(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AnswerEventUpdateOne) SetTimeMs(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableTimeMs(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AnswerEventUpdateOne) AddTimeMs(v int) *AnswerEventUpdateOne {
	_u.mutation.AddTimeMs(v)
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RoundNo(); ok {
		if err := answerevent.RoundNoValidator(v); err != nil {
			return &ValidationError{Name: "round_no", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.round_no": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionNo(); ok {
		if err := answerevent.QuestionNoValidator(v); err != nil {
			return &ValidationError{Name: "question_no", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_no": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := answerevent.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExpectedEntry(); ok {
		if err := answerevent.ExpectedEntryValidator(v); err != nil {
			return &ValidationError{Name: "expected_entry", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.expected_entry": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubmittedEntry(); ok {
		if err := answerevent.SubmittedEntryValidator(v); err != nil {
			return &ValidationError{Name: "submitted_entry", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.submitted_entry": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempt(); ok {
		if err := answerevent.AttemptValidator(v); err != nil {
			return &ValidationError{Name: "attempt", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.attempt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := answerevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoundNo(); ok {
		_spec.SetField(answerevent.FieldRoundNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoundNo(); ok {
		_spec.AddField(answerevent.FieldRoundNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionNo(); ok {
		_spec.SetField(answerevent.FieldQuestionNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionNo(); ok {
		_spec.AddField(answerevent.FieldQuestionNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(answerevent.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpectedEntry(); ok {
		_spec.SetField(answerevent.FieldExpectedEntry, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubmittedEntry(); ok {
		_spec.SetField(answerevent.FieldSubmittedEntry, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(answerevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(answerevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(answerevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
