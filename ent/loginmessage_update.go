// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ariahq/aria/ent/loginmessage"
	"github.com/ariahq/aria/ent/predicate"
)

// LoginMessageUpdate is the builder for updating LoginMessage entities.
type LoginMessageUpdate struct {
	config
	hooks    []Hook
	mutation *LoginMessageMutation
}

// Where appends a list predicates to the LoginMessageUpdate builder.
func (_u *LoginMessageUpdate) Where(ps ...predicate.LoginMessage) *LoginMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCategory sets the "category" field.
func (_u *LoginMessageUpdate) SetCategory(v string) *LoginMessageUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *LoginMessageUpdate) SetNillableCategory(v *string) *LoginMessageUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *LoginMessageUpdate) SetTitle(v string) *LoginMessageUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LoginMessageUpdate) SetNillableTitle(v *string) *LoginMessageUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *LoginMessageUpdate) SetMessage(v string) *LoginMessageUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *LoginMessageUpdate) SetNillableMessage(v *string) *LoginMessageUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *LoginMessageUpdate) SetMetadata(v map[string]interface{}) *LoginMessageUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *LoginMessageUpdate) ClearMetadata() *LoginMessageUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetDelivered sets the "delivered" field.
func (_u *LoginMessageUpdate) SetDelivered(v bool) *LoginMessageUpdate {
	_u.mutation.SetDelivered(v)
	return _u
}

// SetNillableDelivered sets the "delivered" field if the given value is not nil.
func (_u *LoginMessageUpdate) SetNillableDelivered(v *bool) *LoginMessageUpdate {
	if v != nil {
		_u.SetDelivered(*v)
	}
	return _u
}

// Mutation returns the LoginMessageMutation object of the builder.
func (_u *LoginMessageUpdate) Mutation() *LoginMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LoginMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LoginMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LoginMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LoginMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LoginMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(loginmessage.Table, loginmessage.Columns, sqlgraph.NewFieldSpec(loginmessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(loginmessage.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(loginmessage.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(loginmessage.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(loginmessage.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(loginmessage.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Delivered(); ok {
		_spec.SetField(loginmessage.FieldDelivered, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{loginmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LoginMessageUpdateOne is the builder for updating a single LoginMessage entity.
type LoginMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LoginMessageMutation
}

// SetCategory sets the "category" field.
func (_u *LoginMessageUpdateOne) SetCategory(v string) *LoginMessageUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *LoginMessageUpdateOne) SetNillableCategory(v *string) *LoginMessageUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *LoginMessageUpdateOne) SetTitle(v string) *LoginMessageUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LoginMessageUpdateOne) SetNillableTitle(v *string) *LoginMessageUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *LoginMessageUpdateOne) SetMessage(v string) *LoginMessageUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *LoginMessageUpdateOne) SetNillableMessage(v *string) *LoginMessageUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *LoginMessageUpdateOne) SetMetadata(v map[string]interface{}) *LoginMessageUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *LoginMessageUpdateOne) ClearMetadata() *LoginMessageUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetDelivered sets the "delivered" field.
func (_u *LoginMessageUpdateOne) SetDelivered(v bool) *LoginMessageUpdateOne {
	_u.mutation.SetDelivered(v)
	return _u
}

// SetNillableDelivered sets the "delivered" field if the given value is not nil.
func (_u *LoginMessageUpdateOne) SetNillableDelivered(v *bool) *LoginMessageUpdateOne {
	if v != nil {
		_u.SetDelivered(*v)
	}
	return _u
}

// Mutation returns the LoginMessageMutation object of the builder.
func (_u *LoginMessageUpdateOne) Mutation() *LoginMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the LoginMessageUpdate builder.
func (_u *LoginMessageUpdateOne) Where(ps ...predicate.LoginMessage) *LoginMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LoginMessageUpdateOne) Select(field string, fields ...string) *LoginMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LoginMessage entity.
func (_u *LoginMessageUpdateOne) Save(ctx context.Context) (*LoginMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LoginMessageUpdateOne) SaveX(ctx context.Context) *LoginMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LoginMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LoginMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LoginMessageUpdateOne) sqlSave(ctx context.Context) (_node *LoginMessage, err error) {
	_spec := sqlgraph.NewUpdateSpec(loginmessage.Table, loginmessage.Columns, sqlgraph.NewFieldSpec(loginmessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LoginMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, loginmessage.FieldID)
		for _, f := range fields {
			if !loginmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != loginmessage.FieldID {
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
		_spec.SetField(loginmessage.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(loginmessage.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(loginmessage.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(loginmessage.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(loginmessage.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Delivered(); ok {
		_spec.SetField(loginmessage.FieldDelivered, field.TypeBool, value)
	}
	_node = &LoginMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{loginmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
