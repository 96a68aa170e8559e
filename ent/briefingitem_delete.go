// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ariahq/aria/ent/briefingitem"
	"github.com/ariahq/aria/ent/predicate"
)

// BriefingItemDelete is the builder for deleting a BriefingItem entity.
type BriefingItemDelete struct {
	config
	hooks    []Hook
	mutation *BriefingItemMutation
}

// Where appends a list predicates to the BriefingItemDelete builder.
func (_d *BriefingItemDelete) Where(ps ...predicate.BriefingItem) *BriefingItemDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BriefingItemDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BriefingItemDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BriefingItemDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(briefingitem.Table, sqlgraph.NewFieldSpec(briefingitem.FieldID, field.TypeString))
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

// BriefingItemDeleteOne is the builder for deleting a single BriefingItem entity.
type BriefingItemDeleteOne struct {
	_d *BriefingItemDelete
}

// Where appends a list predicates to the BriefingItemDelete builder.
func (_d *BriefingItemDeleteOne) Where(ps ...predicate.BriefingItem) *BriefingItemDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BriefingItemDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{briefingitem.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BriefingItemDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
