// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ariahq/aria/ent/meetingdebrief"
)

// MeetingDebriefCreate is the builder for creating a MeetingDebrief entity.
type MeetingDebriefCreate struct {
	config
	mutation *MeetingDebriefMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *MeetingDebriefCreate) SetUserID(v string) *MeetingDebriefCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetMeetingID sets the "meeting_id" field.
func (_c *MeetingDebriefCreate) SetMeetingID(v string) *MeetingDebriefCreate {
	_c.mutation.SetMeetingID(v)
	return _c
}

// SetMeetingTitle sets the "meeting_title" field.
func (_c *MeetingDebriefCreate) SetMeetingTitle(v string) *MeetingDebriefCreate {
	_c.mutation.SetMeetingTitle(v)
	return _c
}

// SetPromptedAt sets the "prompted_at" field.
func (_c *MeetingDebriefCreate) SetPromptedAt(v time.Time) *MeetingDebriefCreate {
	_c.mutation.SetPromptedAt(v)
	return _c
}

// SetNillablePromptedAt sets the "prompted_at" field if the given value is not nil.
func (_c *MeetingDebriefCreate) SetNillablePromptedAt(v *time.Time) *MeetingDebriefCreate {
	if v != nil {
		_c.SetPromptedAt(*v)
	}
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *MeetingDebriefCreate) SetCompleted(v bool) *MeetingDebriefCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *MeetingDebriefCreate) SetNillableCompleted(v *bool) *MeetingDebriefCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *MeetingDebriefCreate) SetNotes(v string) *MeetingDebriefCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *MeetingDebriefCreate) SetNillableNotes(v *string) *MeetingDebriefCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MeetingDebriefCreate) SetCreatedAt(v time.Time) *MeetingDebriefCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MeetingDebriefCreate) SetNillableCreatedAt(v *time.Time) *MeetingDebriefCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MeetingDebriefCreate) SetID(v string) *MeetingDebriefCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MeetingDebriefMutation object of the builder.
func (_c *MeetingDebriefCreate) Mutation() *MeetingDebriefMutation {
	return _c.mutation
}

// Save creates the MeetingDebrief in the database.
func (_c *MeetingDebriefCreate) Save(ctx context.Context) (*MeetingDebrief, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MeetingDebriefCreate) SaveX(ctx context.Context) *MeetingDebrief {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MeetingDebriefCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MeetingDebriefCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MeetingDebriefCreate) defaults() {
	if _, ok := _c.mutation.PromptedAt(); !ok {
		v := meetingdebrief.DefaultPromptedAt()
		_c.mutation.SetPromptedAt(v)
	}
	if _, ok := _c.mutation.Completed(); !ok {
		v := meetingdebrief.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := meetingdebrief.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MeetingDebriefCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "MeetingDebrief.user_id"`)}
	}
	if _, ok := _c.mutation.MeetingID(); !ok {
		return &ValidationError{Name: "meeting_id", err: errors.New(`ent: missing required field "MeetingDebrief.meeting_id"`)}
	}
	if _, ok := _c.mutation.MeetingTitle(); !ok {
		return &ValidationError{Name: "meeting_title", err: errors.New(`ent: missing required field "MeetingDebrief.meeting_title"`)}
	}
	if _, ok := _c.mutation.PromptedAt(); !ok {
		return &ValidationError{Name: "prompted_at", err: errors.New(`ent: missing required field "MeetingDebrief.prompted_at"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "MeetingDebrief.completed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MeetingDebrief.created_at"`)}
	}
	return nil
}

func (_c *MeetingDebriefCreate) sqlSave(ctx context.Context) (*MeetingDebrief, error) {
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
			return nil, fmt.Errorf("unexpected MeetingDebrief.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MeetingDebriefCreate) createSpec() (*MeetingDebrief, *sqlgraph.CreateSpec) {
	var (
		_node = &MeetingDebrief{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(meetingdebrief.Table, sqlgraph.NewFieldSpec(meetingdebrief.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(meetingdebrief.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.MeetingID(); ok {
		_spec.SetField(meetingdebrief.FieldMeetingID, field.TypeString, value)
		_node.MeetingID = value
	}
	if value, ok := _c.mutation.MeetingTitle(); ok {
		_spec.SetField(meetingdebrief.FieldMeetingTitle, field.TypeString, value)
		_node.MeetingTitle = value
	}
	if value, ok := _c.mutation.PromptedAt(); ok {
		_spec.SetField(meetingdebrief.FieldPromptedAt, field.TypeTime, value)
		_node.PromptedAt = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(meetingdebrief.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(meetingdebrief.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(meetingdebrief.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// MeetingDebriefCreateBulk is the builder for creating many MeetingDebrief entities in bulk.
type MeetingDebriefCreateBulk struct {
	config
	err      error
	builders []*MeetingDebriefCreate
}

// Save creates the MeetingDebrief entities in the database.
func (_c *MeetingDebriefCreateBulk) Save(ctx context.Context) ([]*MeetingDebrief, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MeetingDebrief, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MeetingDebriefMutation)
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
func (_c *MeetingDebriefCreateBulk) SaveX(ctx context.Context) []*MeetingDebrief {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MeetingDebriefCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MeetingDebriefCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
