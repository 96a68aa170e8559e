// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ariahq/aria/ent/weeklydigest"
)

// WeeklyDigestCreate is the builder for creating a WeeklyDigest entity.
type WeeklyDigestCreate struct {
	config
	mutation *WeeklyDigestMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *WeeklyDigestCreate) SetUserID(v string) *WeeklyDigestCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetWeekStart sets the "week_start" field.
func (_c *WeeklyDigestCreate) SetWeekStart(v string) *WeeklyDigestCreate {
	_c.mutation.SetWeekStart(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *WeeklyDigestCreate) SetContent(v string) *WeeklyDigestCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetItemCount sets the "item_count" field.
func (_c *WeeklyDigestCreate) SetItemCount(v int) *WeeklyDigestCreate {
	_c.mutation.SetItemCount(v)
	return _c
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_c *WeeklyDigestCreate) SetNillableItemCount(v *int) *WeeklyDigestCreate {
	if v != nil {
		_c.SetItemCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WeeklyDigestCreate) SetCreatedAt(v time.Time) *WeeklyDigestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WeeklyDigestCreate) SetNillableCreatedAt(v *time.Time) *WeeklyDigestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WeeklyDigestCreate) SetID(v string) *WeeklyDigestCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the WeeklyDigestMutation object of the builder.
func (_c *WeeklyDigestCreate) Mutation() *WeeklyDigestMutation {
	return _c.mutation
}

// Save creates the WeeklyDigest in the database.
func (_c *WeeklyDigestCreate) Save(ctx context.Context) (*WeeklyDigest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WeeklyDigestCreate) SaveX(ctx context.Context) *WeeklyDigest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WeeklyDigestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WeeklyDigestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WeeklyDigestCreate) defaults() {
	if _, ok := _c.mutation.ItemCount(); !ok {
		v := weeklydigest.DefaultItemCount
		_c.mutation.SetItemCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := weeklydigest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WeeklyDigestCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "WeeklyDigest.user_id"`)}
	}
	if _, ok := _c.mutation.WeekStart(); !ok {
		return &ValidationError{Name: "week_start", err: errors.New(`ent: missing required field "WeeklyDigest.week_start"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "WeeklyDigest.content"`)}
	}
	if _, ok := _c.mutation.ItemCount(); !ok {
		return &ValidationError{Name: "item_count", err: errors.New(`ent: missing required field "WeeklyDigest.item_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WeeklyDigest.created_at"`)}
	}
	return nil
}

func (_c *WeeklyDigestCreate) sqlSave(ctx context.Context) (*WeeklyDigest, error) {
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
			return nil, fmt.Errorf("unexpected WeeklyDigest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WeeklyDigestCreate) createSpec() (*WeeklyDigest, *sqlgraph.CreateSpec) {
	var (
		_node = &WeeklyDigest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(weeklydigest.Table, sqlgraph.NewFieldSpec(weeklydigest.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(weeklydigest.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.WeekStart(); ok {
		_spec.SetField(weeklydigest.FieldWeekStart, field.TypeString, value)
		_node.WeekStart = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(weeklydigest.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.ItemCount(); ok {
		_spec.SetField(weeklydigest.FieldItemCount, field.TypeInt, value)
		_node.ItemCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(weeklydigest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// WeeklyDigestCreateBulk is the builder for creating many WeeklyDigest entities in bulk.
type WeeklyDigestCreateBulk struct {
	config
	err      error
	builders []*WeeklyDigestCreate
}

// Save creates the WeeklyDigest entities in the database.
func (_c *WeeklyDigestCreateBulk) Save(ctx context.Context) ([]*WeeklyDigest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WeeklyDigest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WeeklyDigestMutation)
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
func (_c *WeeklyDigestCreateBulk) SaveX(ctx context.Context) []*WeeklyDigest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WeeklyDigestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WeeklyDigestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
