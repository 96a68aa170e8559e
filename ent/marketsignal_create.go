// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ariahq/aria/ent/marketsignal"
)

// MarketSignalCreate is the builder for creating a MarketSignal entity.
type MarketSignalCreate struct {
	config
	mutation *MarketSignalMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *MarketSignalCreate) SetUserID(v string) *MarketSignalCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetEntity sets the "entity" field.
func (_c *MarketSignalCreate) SetEntity(v string) *MarketSignalCreate {
	_c.mutation.SetEntity(v)
	return _c
}

// SetHeadline sets the "headline" field.
func (_c *MarketSignalCreate) SetHeadline(v string) *MarketSignalCreate {
	_c.mutation.SetHeadline(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *MarketSignalCreate) SetSummary(v string) *MarketSignalCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *MarketSignalCreate) SetNillableSummary(v *string) *MarketSignalCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *MarketSignalCreate) SetSource(v string) *MarketSignalCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *MarketSignalCreate) SetNillableSource(v *string) *MarketSignalCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetRelevance sets the "relevance" field.
func (_c *MarketSignalCreate) SetRelevance(v float64) *MarketSignalCreate {
	_c.mutation.SetRelevance(v)
	return _c
}

// SetNillableRelevance sets the "relevance" field if the given value is not nil.
func (_c *MarketSignalCreate) SetNillableRelevance(v *float64) *MarketSignalCreate {
	if v != nil {
		_c.SetRelevance(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *MarketSignalCreate) SetMetadata(v map[string]interface{}) *MarketSignalCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MarketSignalCreate) SetCreatedAt(v time.Time) *MarketSignalCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MarketSignalCreate) SetNillableCreatedAt(v *time.Time) *MarketSignalCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MarketSignalCreate) SetID(v string) *MarketSignalCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MarketSignalMutation object of the builder.
func (_c *MarketSignalCreate) Mutation() *MarketSignalMutation {
	return _c.mutation
}

// Save creates the MarketSignal in the database.
func (_c *MarketSignalCreate) Save(ctx context.Context) (*MarketSignal, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MarketSignalCreate) SaveX(ctx context.Context) *MarketSignal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MarketSignalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MarketSignalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MarketSignalCreate) defaults() {
	if _, ok := _c.mutation.Relevance(); !ok {
		v := marketsignal.DefaultRelevance
		_c.mutation.SetRelevance(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := marketsignal.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MarketSignalCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "MarketSignal.user_id"`)}
	}
	if _, ok := _c.mutation.Entity(); !ok {
		return &ValidationError{Name: "entity", err: errors.New(`ent: missing required field "MarketSignal.entity"`)}
	}
	if _, ok := _c.mutation.Headline(); !ok {
		return &ValidationError{Name: "headline", err: errors.New(`ent: missing required field "MarketSignal.headline"`)}
	}
	if _, ok := _c.mutation.Relevance(); !ok {
		return &ValidationError{Name: "relevance", err: errors.New(`ent: missing required field "MarketSignal.relevance"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MarketSignal.created_at"`)}
	}
	return nil
}

func (_c *MarketSignalCreate) sqlSave(ctx context.Context) (*MarketSignal, error) {
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
			return nil, fmt.Errorf("unexpected MarketSignal.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MarketSignalCreate) createSpec() (*MarketSignal, *sqlgraph.CreateSpec) {
	var (
		_node = &MarketSignal{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(marketsignal.Table, sqlgraph.NewFieldSpec(marketsignal.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(marketsignal.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Entity(); ok {
		_spec.SetField(marketsignal.FieldEntity, field.TypeString, value)
		_node.Entity = value
	}
	if value, ok := _c.mutation.Headline(); ok {
		_spec.SetField(marketsignal.FieldHeadline, field.TypeString, value)
		_node.Headline = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(marketsignal.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(marketsignal.FieldSource, field.TypeString, value)
		_node.Source = &value
	}
	if value, ok := _c.mutation.Relevance(); ok {
		_spec.SetField(marketsignal.FieldRelevance, field.TypeFloat64, value)
		_node.Relevance = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(marketsignal.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(marketsignal.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// MarketSignalCreateBulk is the builder for creating many MarketSignal entities in bulk.
type MarketSignalCreateBulk struct {
	config
	err      error
	builders []*MarketSignalCreate
}

// Save creates the MarketSignal entities in the database.
func (_c *MarketSignalCreateBulk) Save(ctx context.Context) ([]*MarketSignal, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MarketSignal, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MarketSignalMutation)
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
func (_c *MarketSignalCreateBulk) SaveX(ctx context.Context) []*MarketSignal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MarketSignalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MarketSignalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
