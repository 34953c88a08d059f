// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/ledgerdrill/ent/hintevent"
	"github.com/abhisek/ledgerdrill/ent/predicate"
)

// HintEventUpdate is the builder for updating HintEvent entities.
type HintEventUpdate struct {
	config
	hooks    []Hook
	mutation *HintEventMutation
}

// Where appends a list predicates to the HintEventUpdate builder.
func (_u *HintEventUpdate) Where(ps ...predicate.HintEvent) *HintEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *HintEventUpdate) SetSessionID(v string) *HintEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *HintEventUpdate) SetNillableSessionID(v *string) *HintEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetRoundNo sets the "round_no" field.
func (_u *HintEventUpdate) SetRoundNo(v int) *HintEventUpdate {
	_u.mutation.ResetRoundNo()
	_u.mutation.SetRoundNo(v)
	return _u
}

// SetNillableRoundNo sets the "round_no" field if the given value is not nil.
func (_u *HintEventUpdate) SetNillableRoundNo(v *int) *HintEventUpdate {
	if v != nil {
		_u.SetRoundNo(*v)
	}
	return _u
}

// AddRoundNo adds value to the "round_no" field.
func (_u *HintEventUpdate) AddRoundNo(v int) *HintEventUpdate {
	_u.mutation.AddRoundNo(v)
	return _u
}

// SetQuestionNo sets the "question_no" field.
func (_u *HintEventUpdate) SetQuestionNo(v int) *HintEventUpdate {
	_u.mutation.ResetQuestionNo()
	_u.mutation.SetQuestionNo(v)
	return _u
}

// SetNillableQuestionNo sets the "question_no" field if the given value is not nil.
func (_u *HintEventUpdate) SetNillableQuestionNo(v *int) *HintEventUpdate {
	if v != nil {
		_u.SetQuestionNo(*v)
	}
	return _u
}

// AddQuestionNo adds value to the "question_no" field.
func (_u *HintEventUpdate) AddQuestionNo(v int) *HintEventUpdate {
	_u.mutation.AddQuestionNo(v)
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *HintEventUpdate) SetPrompt(v string) *HintEventUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *HintEventUpdate) SetNillablePrompt(v *string) *HintEventUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetHintText sets the "hint_text" field.
func (_u *HintEventUpdate) SetHintText(v string) *HintEventUpdate {
	_u.mutation.SetHintText(v)
	return _u
}

// SetNillableHintText sets the "hint_text" field if the given value is not nil.
func (_u *HintEventUpdate) SetNillableHintText(v *string) *HintEventUpdate {
	if v != nil {
		_u.SetHintText(*v)
	}
	return _u
}

// Mutation returns the HintEventMutation object of the builder.
func (_u *HintEventUpdate) Mutation() *HintEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HintEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HintEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HintEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HintEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HintEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := hintevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "HintEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RoundNo(); ok {
		if err := hintevent.RoundNoValidator(v); err != nil {
			return &ValidationError{Name: "round_no", err: fmt.Errorf(`ent: validator failed for field "HintEvent.round_no": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionNo(); ok {
		if err := hintevent.QuestionNoValidator(v); err != nil {
			return &ValidationError{Name: "question_no", err: fmt.Errorf(`ent: validator failed for field "HintEvent.question_no": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := hintevent.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "HintEvent.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HintText(); ok {
		if err := hintevent.HintTextValidator(v); err != nil {
			return &ValidationError{Name: "hint_text", err: fmt.Errorf(`ent: validator failed for field "HintEvent.hint_text": %w`, err)}
		}
	}
	return nil
}

func (_u *HintEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hintevent.Table, hintevent.Columns, sqlgraph.NewFieldSpec(hintevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(hintevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoundNo(); ok {
		_spec.SetField(hintevent.FieldRoundNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoundNo(); ok {
		_spec.AddField(hintevent.FieldRoundNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionNo(); ok {
		_spec.SetField(hintevent.FieldQuestionNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionNo(); ok {
		_spec.AddField(hintevent.FieldQuestionNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(hintevent.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.HintText(); ok {
		_spec.SetField(hintevent.FieldHintText, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hintevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HintEventUpdateOne is the builder for updating a single HintEvent entity.
type HintEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HintEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *HintEventUpdateOne) SetSessionID(v string) *HintEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *HintEventUpdateOne) SetNillableSessionID(v *string) *HintEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetRoundNo sets the "round_no" field.
func (_u *HintEventUpdateOne) SetRoundNo(v int) *HintEventUpdateOne {
	_u.mutation.ResetRoundNo()
	_u.mutation.SetRoundNo(v)
	return _u
}

// SetNillableRoundNo sets the "round_no" field if the given value is not nil.
func (_u *HintEventUpdateOne) SetNillableRoundNo(v *int) *HintEventUpdateOne {
	if v != nil {
		_u.SetRoundNo(*v)
	}
	return _u
}

// AddRoundNo adds value to the "round_no" field.
func (_u *HintEventUpdateOne) AddRoundNo(v int) *HintEventUpdateOne {
	_u.mutation.AddRoundNo(v)
	return _u
}

// SetQuestionNo sets the "question_no" field.
func (_u *HintEventUpdateOne) SetQuestionNo(v int) *HintEventUpdateOne {
	_u.mutation.ResetQuestionNo()
	_u.mutation.SetQuestionNo(v)
	return _u
}

// SetNillableQuestionNo sets the "question_no" field if the given value is not nil.
func (_u *HintEventUpdateOne) SetNillableQuestionNo(v *int) *HintEventUpdateOne {
	if v != nil {
		_u.SetQuestionNo(*v)
	}
	return _u
}

// AddQuestionNo adds value to the "question_no" field.
func (_u *HintEventUpdateOne) AddQuestionNo(v int) *HintEventUpdateOne {
	_u.mutation.AddQuestionNo(v)
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *HintEventUpdateOne) SetPrompt(v string) *HintEventUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *HintEventUpdateOne) SetNillablePrompt(v *string) *HintEventUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetHintText sets the "hint_text" field.
func (_u *HintEventUpdateOne) SetHintText(v string) *HintEventUpdateOne {
	_u.mutation.SetHintText(v)
	return _u
}

// SetNillableHintText sets the "hint_text" field if the given value is not nil.
func (_u *HintEventUpdateOne) SetNillableHintText(v *string) *HintEventUpdateOne {
	if v != nil {
		_u.SetHintText(*v)
	}
	return _u
}

// Mutation returns the HintEventMutation object of the builder.
func (_u *HintEventUpdateOne) Mutation() *HintEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the HintEventUpdate builder.
func (_u *HintEventUpdateOne) Where(ps ...predicate.HintEvent) *HintEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HintEventUpdateOne) Select(field string, fields ...string) *HintEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HintEvent entity.
func (_u *HintEventUpdateOne) Save(ctx context.Context) (*HintEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HintEventUpdateOne) SaveX(ctx context.Context) *HintEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HintEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HintEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HintEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := hintevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "HintEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RoundNo(); ok {
		if err := hintevent.RoundNoValidator(v); err != nil {
			return &ValidationError{Name: "round_no", err: fmt.Errorf(`ent: validator failed for field "HintEvent.round_no": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionNo(); ok {
		if err := hintevent.QuestionNoValidator(v); err != nil {
			return &ValidationError{Name: "question_no", err: fmt.Errorf(`ent: validator failed for field "HintEvent.question_no": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := hintevent.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "HintEvent.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HintText(); ok {
		if err := hintevent.HintTextValidator(v); err != nil {
			return &ValidationError{Name: "hint_text", err: fmt.Errorf(`ent: validator failed for field "HintEvent.hint_text": %w`, err)}
		}
	}
	return nil
}

func (_u *HintEventUpdateOne) sqlSave(ctx context.Context) (_node *HintEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hintevent.Table, hintevent.Columns, sqlgraph.NewFieldSpec(hintevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HintEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, hintevent.FieldID)
		for _, f := range fields {
			if !hintevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != hintevent.FieldID {
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
		_spec.SetField(hintevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoundNo(); ok {
		_spec.SetField(hintevent.FieldRoundNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoundNo(); ok {
		_spec.AddField(hintevent.FieldRoundNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionNo(); ok {
		_spec.SetField(hintevent.FieldQuestionNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionNo(); ok {
		_spec.AddField(hintevent.FieldQuestionNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(hintevent.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.HintText(); ok {
		_spec.SetField(hintevent.FieldHintText, field.TypeString, value)
	}
	_node = &HintEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hintevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
