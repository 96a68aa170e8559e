// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ariahq/aria/ent/loginmessage"
)

// LoginMessageCreate is the builder for creating a LoginMessage entity.
type LoginMessageCreate struct {
	config
	mutation *LoginMessageMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *LoginMessageCreate) SetUserID(v string) *LoginMessageCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *LoginMessageCreate) SetCategory(v string) *LoginMessageCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *LoginMessageCreate) SetTitle(v string) *LoginMessageCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *LoginMessageCreate) SetMessage(v string) *LoginMessageCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *LoginMessageCreate) SetMetadata(v map[string]interface{}) *LoginMessageCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetDelivered sets the "delivered" field.
func (_c *LoginMessageCreate) SetDelivered(v bool) *LoginMessageCreate {
	_c.mutation.SetDelivered(v)
	return _c
}

// SetNillableDelivered sets the "delivered" field if the given value is not nil.
func (_c *LoginMessageCreate) SetNillableDelivered(v *bool) *LoginMessageCreate {
	if v != nil {
		_c.SetDelivered(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LoginMessageCreate) SetCreatedAt(v time.Time) *LoginMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LoginMessageCreate) SetNillableCreatedAt(v *time.Time) *LoginMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LoginMessageCreate) SetID(v string) *LoginMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LoginMessageMutation object of the builder.
func (_c *LoginMessageCreate) Mutation() *LoginMessageMutation {
	return _c.mutation
}

// Save creates the LoginMessage in the database.
func (_c *LoginMessageCreate) Save(ctx context.Context) (*LoginMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LoginMessageCreate) SaveX(ctx context.Context) *LoginMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LoginMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LoginMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LoginMessageCreate) defaults() {
	if _, ok := _c.mutation.Delivered(); !ok {
		v := loginmessage.DefaultDelivered
		_c.mutation.SetDelivered(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := loginmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LoginMessageCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LoginMessage.user_id"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "LoginMessage.category"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "LoginMessage.title"`)}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "LoginMessage.message"`)}
	}
	if _, ok := _c.mutation.Delivered(); !ok {
		return &ValidationError{Name: "delivered", err: errors.New(`ent: missing required field "LoginMessage.delivered"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LoginMessage.created_at"`)}
	}
	return nil
}

func (_c *LoginMessageCreate) sqlSave(ctx context.Context) (*LoginMessage, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected LoginMessage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LoginMessageCreate) createSpec() (*LoginMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &LoginMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(loginmessage.Table, sqlgraph.NewFieldSpec(loginmessage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(loginmessage.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(loginmessage.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(loginmessage.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(loginmessage.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(loginmessage.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.Delivered(); ok {
		_spec.SetField(loginmessage.FieldDelivered, field.TypeBool, value)
		_node.Delivered = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(loginmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// LoginMessageCreateBulk is the builder for creating many LoginMessage entities in bulk.
type LoginMessageCreateBulk struct {
	config
	err      error
	builders []*LoginMessageCreate
}

// Save creates the LoginMessage entities in the database.
func (_c *LoginMessageCreateBulk) Save(ctx context.Context) ([]*LoginMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LoginMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LoginMessageMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LoginMessageCreateBulk) SaveX(ctx context.Context) []*LoginMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LoginMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LoginMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
