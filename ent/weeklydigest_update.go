// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ariahq/aria/ent/predicate"
	"github.com/ariahq/aria/ent/weeklydigest"
)

// WeeklyDigestUpdate is the builder for updating WeeklyDigest entities.
type WeeklyDigestUpdate struct {
	config
	hooks    []Hook
	mutation *WeeklyDigestMutation
}

// Where appends a list predicates to the WeeklyDigestUpdate builder.
func (_u *WeeklyDigestUpdate) Where(ps ...predicate.WeeklyDigest) *WeeklyDigestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContent sets the "content" field.
func (_u *WeeklyDigestUpdate) SetContent(v string) *WeeklyDigestUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *WeeklyDigestUpdate) SetNillableContent(v *string) *WeeklyDigestUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetItemCount sets the "item_count" field.
func (_u *WeeklyDigestUpdate) SetItemCount(v int) *WeeklyDigestUpdate {
	_u.mutation.ResetItemCount()
	_u.mutation.SetItemCount(v)
	return _u
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_u *WeeklyDigestUpdate) SetNillableItemCount(v *int) *WeeklyDigestUpdate {
	if v != nil {
		_u.SetItemCount(*v)
	}
	return _u
}

// AddItemCount adds value to the "item_count" field.
func (_u *WeeklyDigestUpdate) AddItemCount(v int) *WeeklyDigestUpdate {
	_u.mutation.AddItemCount(v)
	return _u
}

// Mutation returns the WeeklyDigestMutation object of the builder.
func (_u *WeeklyDigestUpdate) Mutation() *WeeklyDigestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WeeklyDigestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WeeklyDigestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WeeklyDigestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WeeklyDigestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *WeeklyDigestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(weeklydigest.Table, weeklydigest.Columns, sqlgraph.NewFieldSpec(weeklydigest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(weeklydigest.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemCount(); ok {
		_spec.SetField(weeklydigest.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemCount(); ok {
		_spec.AddField(weeklydigest.FieldItemCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{weeklydigest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WeeklyDigestUpdateOne is the builder for updating a single WeeklyDigest entity.
type WeeklyDigestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WeeklyDigestMutation
}

// SetContent sets the "content" field.
func (_u *WeeklyDigestUpdateOne) SetContent(v string) *WeeklyDigestUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *WeeklyDigestUpdateOne) SetNillableContent(v *string) *WeeklyDigestUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetItemCount sets the "item_count" field.
func (_u *WeeklyDigestUpdateOne) SetItemCount(v int) *WeeklyDigestUpdateOne {
	_u.mutation.ResetItemCount()
	_u.mutation.SetItemCount(v)
	return _u
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_u *WeeklyDigestUpdateOne) SetNillableItemCount(v *int) *WeeklyDigestUpdateOne {
	if v != nil {
		_u.SetItemCount(*v)
	}
	return _u
}

// AddItemCount adds value to the "item_count" field.
func (_u *WeeklyDigestUpdateOne) AddItemCount(v int) *WeeklyDigestUpdateOne {
	_u.mutation.AddItemCount(v)
	return _u
}

// Mutation returns the WeeklyDigestMutation object of the builder.
func (_u *WeeklyDigestUpdateOne) Mutation() *WeeklyDigestMutation {
	return _u.mutation
}

// Where appends a list predicates to the WeeklyDigestUpdate builder.
func (_u *WeeklyDigestUpdateOne) Where(ps ...predicate.WeeklyDigest) *WeeklyDigestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WeeklyDigestUpdateOne) Select(field string, fields ...string) *WeeklyDigestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WeeklyDigest entity.
func (_u *WeeklyDigestUpdateOne) Save(ctx context.Context) (*WeeklyDigest, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WeeklyDigestUpdateOne) SaveX(ctx context.Context) *WeeklyDigest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WeeklyDigestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WeeklyDigestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *WeeklyDigestUpdateOne) sqlSave(ctx context.Context) (_node *WeeklyDigest, err error) {
	_spec := sqlgraph.NewUpdateSpec(weeklydigest.Table, weeklydigest.Columns, sqlgraph.NewFieldSpec(weeklydigest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WeeklyDigest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, weeklydigest.FieldID)
		for _, f := range fields {
			if !weeklydigest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != weeklydigest.FieldID {
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
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(weeklydigest.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemCount(); ok {
		_spec.SetField(weeklydigest.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemCount(); ok {
		_spec.AddField(weeklydigest.FieldItemCount, field.TypeInt, value)
	}
	_node = &WeeklyDigest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{weeklydigest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
