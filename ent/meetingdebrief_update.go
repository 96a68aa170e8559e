// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ariahq/aria/ent/meetingdebrief"
	"github.com/ariahq/aria/ent/predicate"
)

// MeetingDebriefUpdate is the builder for updating MeetingDebrief entities.
type MeetingDebriefUpdate struct {
	config
	hooks    []Hook
	mutation *MeetingDebriefMutation
}

// Where appends a list predicates to the MeetingDebriefUpdate builder.
func (_u *MeetingDebriefUpdate) Where(ps ...predicate.MeetingDebrief) *MeetingDebriefUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMeetingTitle sets the "meeting_title" field.
func (_u *MeetingDebriefUpdate) SetMeetingTitle(v string) *MeetingDebriefUpdate {
	_u.mutation.SetMeetingTitle(v)
	return _u
}

// SetNillableMeetingTitle sets the "meeting_title" field if the given value is not nil.
func (_u *MeetingDebriefUpdate) SetNillableMeetingTitle(v *string) *MeetingDebriefUpdate {
	if v != nil {
		_u.SetMeetingTitle(*v)
	}
	return _u
}

// SetPromptedAt sets the "prompted_at" field.
func (_u *MeetingDebriefUpdate) SetPromptedAt(v time.Time) *MeetingDebriefUpdate {
	_u.mutation.SetPromptedAt(v)
	return _u
}

// SetNillablePromptedAt sets the "prompted_at" field if the given value is not nil.
func (_u *MeetingDebriefUpdate) SetNillablePromptedAt(v *time.Time) *MeetingDebriefUpdate {
	if v != nil {
		_u.SetPromptedAt(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *MeetingDebriefUpdate) SetCompleted(v bool) *MeetingDebriefUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *MeetingDebriefUpdate) SetNillableCompleted(v *bool) *MeetingDebriefUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *MeetingDebriefUpdate) SetNotes(v string) *MeetingDebriefUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *MeetingDebriefUpdate) SetNillableNotes(v *string) *MeetingDebriefUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *MeetingDebriefUpdate) ClearNotes() *MeetingDebriefUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the MeetingDebriefMutation object of the builder.
func (_u *MeetingDebriefUpdate) Mutation() *MeetingDebriefMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MeetingDebriefUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MeetingDebriefUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MeetingDebriefUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MeetingDebriefUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MeetingDebriefUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(meetingdebrief.Table, meetingdebrief.Columns, sqlgraph.NewFieldSpec(meetingdebrief.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MeetingTitle(); ok {
		_spec.SetField(meetingdebrief.FieldMeetingTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptedAt(); ok {
		_spec.SetField(meetingdebrief.FieldPromptedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(meetingdebrief.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(meetingdebrief.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(meetingdebrief.FieldNotes, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{meetingdebrief.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MeetingDebriefUpdateOne is the builder for updating a single MeetingDebrief entity.
type MeetingDebriefUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MeetingDebriefMutation
}

// SetMeetingTitle sets the "meeting_title" field.
func (_u *MeetingDebriefUpdateOne) SetMeetingTitle(v string) *MeetingDebriefUpdateOne {
	_u.mutation.SetMeetingTitle(v)
	return _u
}

// SetNillableMeetingTitle sets the "meeting_title" field if the given value is not nil.
func (_u *MeetingDebriefUpdateOne) SetNillableMeetingTitle(v *string) *MeetingDebriefUpdateOne {
	if v != nil {
		_u.SetMeetingTitle(*v)
	}
	return _u
}

// SetPromptedAt sets the "prompted_at" field.
func (_u *MeetingDebriefUpdateOne) SetPromptedAt(v time.Time) *MeetingDebriefUpdateOne {
	_u.mutation.SetPromptedAt(v)
	return _u
}

// SetNillablePromptedAt sets the "prompted_at" field if the given value is not nil.
func (_u *MeetingDebriefUpdateOne) SetNillablePromptedAt(v *time.Time) *MeetingDebriefUpdateOne {
	if v != nil {
		_u.SetPromptedAt(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *MeetingDebriefUpdateOne) SetCompleted(v bool) *MeetingDebriefUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *MeetingDebriefUpdateOne) SetNillableCompleted(v *bool) *MeetingDebriefUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *MeetingDebriefUpdateOne) SetNotes(v string) *MeetingDebriefUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *MeetingDebriefUpdateOne) SetNillableNotes(v *string) *MeetingDebriefUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *MeetingDebriefUpdateOne) ClearNotes() *MeetingDebriefUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the MeetingDebriefMutation object of the builder.
func (_u *MeetingDebriefUpdateOne) Mutation() *MeetingDebriefMutation {
	return _u.mutation
}

// Where appends a list predicates to the MeetingDebriefUpdate builder.
func (_u *MeetingDebriefUpdateOne) Where(ps ...predicate.MeetingDebrief) *MeetingDebriefUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MeetingDebriefUpdateOne) Select(field string, fields ...string) *MeetingDebriefUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MeetingDebrief entity.
func (_u *MeetingDebriefUpdateOne) Save(ctx context.Context) (*MeetingDebrief, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MeetingDebriefUpdateOne) SaveX(ctx context.Context) *MeetingDebrief {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MeetingDebriefUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MeetingDebriefUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MeetingDebriefUpdateOne) sqlSave(ctx context.Context) (_node *MeetingDebrief, err error) {
	_spec := sqlgraph.NewUpdateSpec(meetingdebrief.Table, meetingdebrief.Columns, sqlgraph.NewFieldSpec(meetingdebrief.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MeetingDebrief.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, meetingdebrief.FieldID)
		for _, f := range fields {
			if !meetingdebrief.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != meetingdebrief.FieldID {
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
	if value, ok := _u.mutation.MeetingTitle(); ok {
		_spec.SetField(meetingdebrief.FieldMeetingTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptedAt(); ok {
		_spec.SetField(meetingdebrief.FieldPromptedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(meetingdebrief.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(meetingdebrief.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(meetingdebrief.FieldNotes, field.TypeString)
	}
	_node = &MeetingDebrief{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{meetingdebrief.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
