// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ariahq/aria/ent/meetingdebrief"
	"github.com/ariahq/aria/ent/predicate"
)

// MeetingDebriefDelete is the builder for deleting a MeetingDebrief entity.
type MeetingDebriefDelete struct {
	config
	hooks    []Hook
	mutation *MeetingDebriefMutation
}

// Where appends a list predicates to the MeetingDebriefDelete builder.
func (_d *MeetingDebriefDelete) Where(ps ...predicate.MeetingDebrief) *MeetingDebriefDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MeetingDebriefDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MeetingDebriefDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MeetingDebriefDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(meetingdebrief.Table, sqlgraph.NewFieldSpec(meetingdebrief.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// MeetingDebriefDeleteOne is the builder for deleting a single MeetingDebrief entity.
type MeetingDebriefDeleteOne struct {
	_d *MeetingDebriefDelete
}

// Where appends a list predicates to the MeetingDebriefDelete builder.
func (_d *MeetingDebriefDeleteOne) Where(ps ...predicate.MeetingDebrief) *MeetingDebriefDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MeetingDebriefDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{meetingdebrief.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MeetingDebriefDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
