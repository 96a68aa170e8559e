// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ariahq/aria/ent/briefingitem"
	"github.com/ariahq/aria/ent/predicate"
)

// BriefingItemUpdate is the builder for updating BriefingItem entities.
type BriefingItemUpdate struct {
	config
	hooks    []Hook
	mutation *BriefingItemMutation
}

// Where appends a list predicates to the BriefingItemUpdate builder.
func (_u *BriefingItemUpdate) Where(ps ...predicate.BriefingItem) *BriefingItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCategory sets the "category" field.
func (_u *BriefingItemUpdate) SetCategory(v string) *BriefingItemUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *BriefingItemUpdate) SetNillableCategory(v *string) *BriefingItemUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *BriefingItemUpdate) SetTitle(v string) *BriefingItemUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *BriefingItemUpdate) SetNillableTitle(v *string) *BriefingItemUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *BriefingItemUpdate) SetMessage(v string) *BriefingItemUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *BriefingItemUpdate) SetNillableMessage(v *string) *BriefingItemUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *BriefingItemUpdate) SetMetadata(v map[string]interface{}) *BriefingItemUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *BriefingItemUpdate) ClearMetadata() *BriefingItemUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetConsumed sets the "consumed" field.
func (_u *BriefingItemUpdate) SetConsumed(v bool) *BriefingItemUpdate {
	_u.mutation.SetConsumed(v)
	return _u
}

// SetNillableConsumed sets the "consumed" field if the given value is not nil.
func (_u *BriefingItemUpdate) SetNillableConsumed(v *bool) *BriefingItemUpdate {
	if v != nil {
		_u.SetConsumed(*v)
	}
	return _u
}

// Mutation returns the BriefingItemMutation object of the builder.
func (_u *BriefingItemUpdate) Mutation() *BriefingItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BriefingItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BriefingItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BriefingItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BriefingItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *BriefingItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(briefingitem.Table, briefingitem.Columns, sqlgraph.NewFieldSpec(briefingitem.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(briefingitem.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(briefingitem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(briefingitem.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(briefingitem.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(briefingitem.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Consumed(); ok {
		_spec.SetField(briefingitem.FieldConsumed, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{briefingitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BriefingItemUpdateOne is the builder for updating a single BriefingItem entity.
type BriefingItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BriefingItemMutation
}

// SetCategory sets the "category" field.
func (_u *BriefingItemUpdateOne) SetCategory(v string) *BriefingItemUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *BriefingItemUpdateOne) SetNillableCategory(v *string) *BriefingItemUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *BriefingItemUpdateOne) SetTitle(v string) *BriefingItemUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *BriefingItemUpdateOne) SetNillableTitle(v *string) *BriefingItemUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *BriefingItemUpdateOne) SetMessage(v string) *BriefingItemUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *BriefingItemUpdateOne) SetNillableMessage(v *string) *BriefingItemUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *BriefingItemUpdateOne) SetMetadata(v map[string]interface{}) *BriefingItemUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *BriefingItemUpdateOne) ClearMetadata() *BriefingItemUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetConsumed sets the "consumed" field.
func (_u *BriefingItemUpdateOne) SetConsumed(v bool) *BriefingItemUpdateOne {
	_u.mutation.SetConsumed(v)
	return _u
}

// SetNillableConsumed sets the "consumed" field if the given value is not nil.
func (_u *BriefingItemUpdateOne) SetNillableConsumed(v *bool) *BriefingItemUpdateOne {
	if v != nil {
		_u.SetConsumed(*v)
	}
	return _u
}

// Mutation returns the BriefingItemMutation object of the builder.
func (_u *BriefingItemUpdateOne) Mutation() *BriefingItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the BriefingItemUpdate builder.
func (_u *BriefingItemUpdateOne) Where(ps ...predicate.BriefingItem) *BriefingItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BriefingItemUpdateOne) Select(field string, fields ...string) *BriefingItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BriefingItem entity.
func (_u *BriefingItemUpdateOne) Save(ctx context.Context) (*BriefingItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BriefingItemUpdateOne) SaveX(ctx context.Context) *BriefingItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BriefingItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BriefingItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *BriefingItemUpdateOne) sqlSave(ctx context.Context) (_node *BriefingItem, err error) {
	_spec := sqlgraph.NewUpdateSpec(briefingitem.Table, briefingitem.Columns, sqlgraph.NewFieldSpec(briefingitem.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BriefingItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, briefingitem.FieldID)
		for _, f := range fields {
			if !briefingitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != briefingitem.FieldID {
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
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(briefingitem.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(briefingitem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(briefingitem.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(briefingitem.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(briefingitem.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Consumed(); ok {
		_spec.SetField(briefingitem.FieldConsumed, field.TypeBool, value)
	}
	_node = &BriefingItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{briefingitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
