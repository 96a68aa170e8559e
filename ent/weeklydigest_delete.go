// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ariahq/aria/ent/predicate"
	"github.com/ariahq/aria/ent/weeklydigest"
)

// WeeklyDigestDelete is the builder for deleting a WeeklyDigest entity.
type WeeklyDigestDelete struct {
	config
	hooks    []Hook
	mutation *WeeklyDigestMutation
}

// Where appends a list predicates to the WeeklyDigestDelete builder.
func (_d *WeeklyDigestDelete) Where(ps ...predicate.WeeklyDigest) *WeeklyDigestDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *WeeklyDigestDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WeeklyDigestDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *WeeklyDigestDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(weeklydigest.Table, sqlgraph.NewFieldSpec(weeklydigest.FieldID, field.TypeString))
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

// WeeklyDigestDeleteOne is the builder for deleting a single WeeklyDigest entity.
type WeeklyDigestDeleteOne struct {
	_d *WeeklyDigestDelete
}

// Where appends a list predicates to the WeeklyDigestDelete builder.
func (_d *WeeklyDigestDeleteOne) Where(ps ...predicate.WeeklyDigest) *WeeklyDigestDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *WeeklyDigestDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{weeklydigest.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WeeklyDigestDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
