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
	"github.com/ariahq/aria/ent/commitment"
	"github.com/ariahq/aria/ent/predicate"
)

// CommitmentUpdate is the builder for updating Commitment entities.
type CommitmentUpdate struct {
	config
	hooks    []Hook
	mutation *CommitmentMutation
}

// Where appends a list predicates to the CommitmentUpdate builder.
func (_u *CommitmentUpdate) Where(ps ...predicate.Commitment) *CommitmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDescription sets the "description" field.
func (_u *CommitmentUpdate) SetDescription(v string) *CommitmentUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CommitmentUpdate) SetNillableDescription(v *string) *CommitmentUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetContact sets the "contact" field.
func (_u *CommitmentUpdate) SetContact(v string) *CommitmentUpdate {
	_u.mutation.SetContact(v)
	return _u
}

// SetNillableContact sets the "contact" field if the given value is not nil.
func (_u *CommitmentUpdate) SetNillableContact(v *string) *CommitmentUpdate {
	if v != nil {
		_u.SetContact(*v)
	}
	return _u
}

// ClearContact clears the value of the "contact" field.
func (_u *CommitmentUpdate) ClearContact() *CommitmentUpdate {
	_u.mutation.ClearContact()
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *CommitmentUpdate) SetDueAt(v time.Time) *CommitmentUpdate {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *CommitmentUpdate) SetNillableDueAt(v *time.Time) *CommitmentUpdate {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *CommitmentUpdate) SetCompleted(v bool) *CommitmentUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *CommitmentUpdate) SetNillableCompleted(v *bool) *CommitmentUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetNudgedAt sets the "nudged_at" field.
func (_u *CommitmentUpdate) SetNudgedAt(v time.Time) *CommitmentUpdate {
	_u.mutation.SetNudgedAt(v)
	return _u
}

// SetNillableNudgedAt sets the "nudged_at" field if the given value is not nil.
func (_u *CommitmentUpdate) SetNillableNudgedAt(v *time.Time) *CommitmentUpdate {
	if v != nil {
		_u.SetNudgedAt(*v)
	}
	return _u
}

// ClearNudgedAt clears the value of the "nudged_at" field.
func (_u *CommitmentUpdate) ClearNudgedAt() *CommitmentUpdate {
	_u.mutation.ClearNudgedAt()
	return _u
}

// Mutation returns the CommitmentMutation object of the builder.
func (_u *CommitmentUpdate) Mutation() *CommitmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CommitmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommitmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CommitmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommitmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CommitmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(commitment.Table, commitment.Columns, sqlgraph.NewFieldSpec(commitment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(commitment.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Contact(); ok {
		_spec.SetField(commitment.FieldContact, field.TypeString, value)
	}
	if _u.mutation.ContactCleared() {
		_spec.ClearField(commitment.FieldContact, field.TypeString)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(commitment.FieldDueAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(commitment.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.NudgedAt(); ok {
		_spec.SetField(commitment.FieldNudgedAt, field.TypeTime, value)
	}
	if _u.mutation.NudgedAtCleared() {
		_spec.ClearField(commitment.FieldNudgedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{commitment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CommitmentUpdateOne is the builder for updating a single Commitment entity.
type CommitmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CommitmentMutation
}

// SetDescription sets the "description" field.
func (_u *CommitmentUpdateOne) SetDescription(v string) *CommitmentUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CommitmentUpdateOne) SetNillableDescription(v *string) *CommitmentUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetContact sets the "contact" field.
func (_u *CommitmentUpdateOne) SetContact(v string) *CommitmentUpdateOne {
	_u.mutation.SetContact(v)
	return _u
}

// SetNillableContact sets the "contact" field if the given value is not nil.
func (_u *CommitmentUpdateOne) SetNillableContact(v *string) *CommitmentUpdateOne {
	if v != nil {
		_u.SetContact(*v)
	}
	return _u
}

// ClearContact clears the value of the "contact" field.
func (_u *CommitmentUpdateOne) ClearContact() *CommitmentUpdateOne {
	_u.mutation.ClearContact()
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *CommitmentUpdateOne) SetDueAt(v time.Time) *CommitmentUpdateOne {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *CommitmentUpdateOne) SetNillableDueAt(v *time.Time) *CommitmentUpdateOne {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *CommitmentUpdateOne) SetCompleted(v bool) *CommitmentUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *CommitmentUpdateOne) SetNillableCompleted(v *bool) *CommitmentUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetNudgedAt sets the "nudged_at" field.
func (_u *CommitmentUpdateOne) SetNudgedAt(v time.Time) *CommitmentUpdateOne {
	_u.mutation.SetNudgedAt(v)
	return _u
}

// SetNillableNudgedAt sets the "nudged_at" field if the given value is not nil.
func (_u *CommitmentUpdateOne) SetNillableNudgedAt(v *time.Time) *CommitmentUpdateOne {
	if v != nil {
		_u.SetNudgedAt(*v)
	}
	return _u
}

// ClearNudgedAt clears the value of the "nudged_at" field.
func (_u *CommitmentUpdateOne) ClearNudgedAt() *CommitmentUpdateOne {
	_u.mutation.ClearNudgedAt()
	return _u
}

// Mutation returns the CommitmentMutation object of the builder.
func (_u *CommitmentUpdateOne) Mutation() *CommitmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the CommitmentUpdate builder.
func (_u *CommitmentUpdateOne) Where(ps ...predicate.Commitment) *CommitmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CommitmentUpdateOne) Select(field string, fields ...string) *CommitmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Commitment entity.
func (_u *CommitmentUpdateOne) Save(ctx context.Context) (*Commitment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommitmentUpdateOne) SaveX(ctx context.Context) *Commitment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CommitmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommitmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CommitmentUpdateOne) sqlSave(ctx context.Context) (_node *Commitment, err error) {
	_spec := sqlgraph.NewUpdateSpec(commitment.Table, commitment.Columns, sqlgraph.NewFieldSpec(commitment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Commitment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, commitment.FieldID)
		for _, f := range fields {
			if !commitment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != commitment.FieldID {
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
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(commitment.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Contact(); ok {
		_spec.SetField(commitment.FieldContact, field.TypeString, value)
	}
	if _u.mutation.ContactCleared() {
		_spec.ClearField(commitment.FieldContact, field.TypeString)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(commitment.FieldDueAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(commitment.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.NudgedAt(); ok {
		_spec.SetField(commitment.FieldNudgedAt, field.TypeTime, value)
	}
	if _u.mutation.NudgedAtCleared() {
		_spec.ClearField(commitment.FieldNudgedAt, field.TypeTime)
	}
	_node = &Commitment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{commitment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
