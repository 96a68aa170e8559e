// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ariahq/aria/ent/commitment"
)

// CommitmentCreate is the builder for creating a Commitment entity.
type CommitmentCreate struct {
	config
	mutation *CommitmentMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *CommitmentCreate) SetUserID(v string) *CommitmentCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *CommitmentCreate) SetDescription(v string) *CommitmentCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetContact sets the "contact" field.
func (_c *CommitmentCreate) SetContact(v string) *CommitmentCreate {
	_c.mutation.SetContact(v)
	return _c
}

// SetNillableContact sets the "contact" field if the given value is not nil.
func (_c *CommitmentCreate) SetNillableContact(v *string) *CommitmentCreate {
	if v != nil {
		_c.SetContact(*v)
	}
	return _c
}

// SetDueAt sets the "due_at" field.
func (_c *CommitmentCreate) SetDueAt(v time.Time) *CommitmentCreate {
	_c.mutation.SetDueAt(v)
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *CommitmentCreate) SetCompleted(v bool) *CommitmentCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *CommitmentCreate) SetNillableCompleted(v *bool) *CommitmentCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetNudgedAt sets the "nudged_at" field.
func (_c *CommitmentCreate) SetNudgedAt(v time.Time) *CommitmentCreate {
	_c.mutation.SetNudgedAt(v)
	return _c
}

// SetNillableNudgedAt sets the "nudged_at" field if the given value is not nil.
func (_c *CommitmentCreate) SetNillableNudgedAt(v *time.Time) *CommitmentCreate {
	if v != nil {
		_c.SetNudgedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CommitmentCreate) SetCreatedAt(v time.Time) *CommitmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CommitmentCreate) SetNillableCreatedAt(v *time.Time) *CommitmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CommitmentCreate) SetID(v string) *CommitmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CommitmentMutation object of the builder.
func (_c *CommitmentCreate) Mutation() *CommitmentMutation {
	return _c.mutation
}

// Save creates the Commitment in the database.
func (_c *CommitmentCreate) Save(ctx context.Context) (*Commitment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CommitmentCreate) SaveX(ctx context.Context) *Commitment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommitmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommitmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CommitmentCreate) defaults() {
	if _, ok := _c.mutation.Completed(); !ok {
		v := commitment.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := commitment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CommitmentCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Commitment.user_id"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Commitment.description"`)}
	}
	if _, ok := _c.mutation.DueAt(); !ok {
		return &ValidationError{Name: "due_at", err: errors.New(`ent: missing required field "Commitment.due_at"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "Commitment.completed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Commitment.created_at"`)}
	}
	return nil
}

func (_c *CommitmentCreate) sqlSave(ctx context.Context) (*Commitment, error) {
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
			return nil, fmt.Errorf("unexpected Commitment.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CommitmentCreate) createSpec() (*Commitment, *sqlgraph.CreateSpec) {
	var (
		_node = &Commitment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(commitment.Table, sqlgraph.NewFieldSpec(commitment.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(commitment.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(commitment.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Contact(); ok {
		_spec.SetField(commitment.FieldContact, field.TypeString, value)
		_node.Contact = &value
	}
	if value, ok := _c.mutation.DueAt(); ok {
		_spec.SetField(commitment.FieldDueAt, field.TypeTime, value)
		_node.DueAt = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(commitment.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.NudgedAt(); ok {
		_spec.SetField(commitment.FieldNudgedAt, field.TypeTime, value)
		_node.NudgedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(commitment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// CommitmentCreateBulk is the builder for creating many Commitment entities in bulk.
type CommitmentCreateBulk struct {
	config
	err      error
	builders []*CommitmentCreate
}

// Save creates the Commitment entities in the database.
func (_c *CommitmentCreateBulk) Save(ctx context.Context) ([]*Commitment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Commitment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CommitmentMutation)
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
func (_c *CommitmentCreateBulk) SaveX(ctx context.Context) []*Commitment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommitmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommitmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
