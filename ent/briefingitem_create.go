// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ariahq/aria/ent/briefingitem"
)

// BriefingItemCreate is the builder for creating a BriefingItem entity.
type BriefingItemCreate struct {
	config
	mutation *BriefingItemMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *BriefingItemCreate) SetUserID(v string) *BriefingItemCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *BriefingItemCreate) SetCategory(v string) *BriefingItemCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *BriefingItemCreate) SetTitle(v string) *BriefingItemCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *BriefingItemCreate) SetMessage(v string) *BriefingItemCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *BriefingItemCreate) SetMetadata(v map[string]interface{}) *BriefingItemCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetConsumed sets the "consumed" field.
func (_c *BriefingItemCreate) SetConsumed(v bool) *BriefingItemCreate {
	_c.mutation.SetConsumed(v)
	return _c
}

// SetNillableConsumed sets the "consumed" field if the given value is not nil.
func (_c *BriefingItemCreate) SetNillableConsumed(v *bool) *BriefingItemCreate {
	if v != nil {
		_c.SetConsumed(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BriefingItemCreate) SetCreatedAt(v time.Time) *BriefingItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BriefingItemCreate) SetNillableCreatedAt(v *time.Time) *BriefingItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BriefingItemCreate) SetID(v string) *BriefingItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the BriefingItemMutation object of the builder.
func (_c *BriefingItemCreate) Mutation() *BriefingItemMutation {
	return _c.mutation
}

// Save creates the BriefingItem in the database.
func (_c *BriefingItemCreate) Save(ctx context.Context) (*BriefingItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BriefingItemCreate) SaveX(ctx context.Context) *BriefingItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BriefingItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BriefingItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BriefingItemCreate) defaults() {
	if _, ok := _c.mutation.Consumed(); !ok {
		v := briefingitem.DefaultConsumed
		_c.mutation.SetConsumed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := briefingitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BriefingItemCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "BriefingItem.user_id"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "BriefingItem.category"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "BriefingItem.title"`)}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "BriefingItem.message"`)}
	}
	if _, ok := _c.mutation.Consumed(); !ok {
		return &ValidationError{Name: "consumed", err: errors.New(`ent: missing required field "BriefingItem.consumed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BriefingItem.created_at"`)}
	}
	return nil
}

func (_c *BriefingItemCreate) sqlSave(ctx context.Context) (*BriefingItem, error) {
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
			return nil, fmt.Errorf("unexpected BriefingItem.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BriefingItemCreate) createSpec() (*BriefingItem, *sqlgraph.CreateSpec) {
	var (
		_node = &BriefingItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(briefingitem.Table, sqlgraph.NewFieldSpec(briefingitem.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(briefingitem.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(briefingitem.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(briefingitem.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(briefingitem.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(briefingitem.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.Consumed(); ok {
		_spec.SetField(briefingitem.FieldConsumed, field.TypeBool, value)
		_node.Consumed = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(briefingitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// BriefingItemCreateBulk is the builder for creating many BriefingItem entities in bulk.
type BriefingItemCreateBulk struct {
	config
	err      error
	builders []*BriefingItemCreate
}

// Save creates the BriefingItem entities in the database.
func (_c *BriefingItemCreateBulk) Save(ctx context.Context) ([]*BriefingItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BriefingItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BriefingItemMutation)
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
func (_c *BriefingItemCreateBulk) SaveX(ctx context.Context) []*BriefingItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BriefingItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BriefingItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
