// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ariahq/aria/ent/predicate"
	"github.com/ariahq/aria/ent/usagerecord"
)

// UsageRecordUpdate is the builder for updating UsageRecord entities.
type UsageRecordUpdate struct {
	config
	hooks    []Hook
	mutation *UsageRecordMutation
}

// Where appends a list predicates to the UsageRecordUpdate builder.
func (_u *UsageRecordUpdate) Where(ps ...predicate.UsageRecord) *UsageRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *UsageRecordUpdate) SetInputTokens(v int) *UsageRecordUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableInputTokens(v *int) *UsageRecordUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *UsageRecordUpdate) AddInputTokens(v int) *UsageRecordUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *UsageRecordUpdate) SetOutputTokens(v int) *UsageRecordUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableOutputTokens(v *int) *UsageRecordUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *UsageRecordUpdate) AddOutputTokens(v int) *UsageRecordUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetThinkingTokens sets the "thinking_tokens" field.
func (_u *UsageRecordUpdate) SetThinkingTokens(v int) *UsageRecordUpdate {
	_u.mutation.ResetThinkingTokens()
	_u.mutation.SetThinkingTokens(v)
	return _u
}

// SetNillableThinkingTokens sets the "thinking_tokens" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableThinkingTokens(v *int) *UsageRecordUpdate {
	if v != nil {
		_u.SetThinkingTokens(*v)
	}
	return _u
}

// AddThinkingTokens adds value to the "thinking_tokens" field.
func (_u *UsageRecordUpdate) AddThinkingTokens(v int) *UsageRecordUpdate {
	_u.mutation.AddThinkingTokens(v)
	return _u
}

// SetCacheReadTokens sets the "cache_read_tokens" field.
func (_u *UsageRecordUpdate) SetCacheReadTokens(v int) *UsageRecordUpdate {
	_u.mutation.ResetCacheReadTokens()
	_u.mutation.SetCacheReadTokens(v)
	return _u
}

// SetNillableCacheReadTokens sets the "cache_read_tokens" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableCacheReadTokens(v *int) *UsageRecordUpdate {
	if v != nil {
		_u.SetCacheReadTokens(*v)
	}
	return _u
}

// AddCacheReadTokens adds value to the "cache_read_tokens" field.
func (_u *UsageRecordUpdate) AddCacheReadTokens(v int) *UsageRecordUpdate {
	_u.mutation.AddCacheReadTokens(v)
	return _u
}

// SetCacheCreationTokens sets the "cache_creation_tokens" field.
func (_u *UsageRecordUpdate) SetCacheCreationTokens(v int) *UsageRecordUpdate {
	_u.mutation.ResetCacheCreationTokens()
	_u.mutation.SetCacheCreationTokens(v)
	return _u
}

// SetNillableCacheCreationTokens sets the "cache_creation_tokens" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableCacheCreationTokens(v *int) *UsageRecordUpdate {
	if v != nil {
		_u.SetCacheCreationTokens(*v)
	}
	return _u
}

// AddCacheCreationTokens adds value to the "cache_creation_tokens" field.
func (_u *UsageRecordUpdate) AddCacheCreationTokens(v int) *UsageRecordUpdate {
	_u.mutation.AddCacheCreationTokens(v)
	return _u
}

// SetEstimatedCostCents sets the "estimated_cost_cents" field.
func (_u *UsageRecordUpdate) SetEstimatedCostCents(v int) *UsageRecordUpdate {
	_u.mutation.ResetEstimatedCostCents()
	_u.mutation.SetEstimatedCostCents(v)
	return _u
}

// SetNillableEstimatedCostCents sets the "estimated_cost_cents" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableEstimatedCostCents(v *int) *UsageRecordUpdate {
	if v != nil {
		_u.SetEstimatedCostCents(*v)
	}
	return _u
}

// AddEstimatedCostCents adds value to the "estimated_cost_cents" field.
func (_u *UsageRecordUpdate) AddEstimatedCostCents(v int) *UsageRecordUpdate {
	_u.mutation.AddEstimatedCostCents(v)
	return _u
}

// SetRequestCount sets the "request_count" field.
func (_u *UsageRecordUpdate) SetRequestCount(v int) *UsageRecordUpdate {
	_u.mutation.ResetRequestCount()
	_u.mutation.SetRequestCount(v)
	return _u
}

// SetNillableRequestCount sets the "request_count" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableRequestCount(v *int) *UsageRecordUpdate {
	if v != nil {
		_u.SetRequestCount(*v)
	}
	return _u
}

// AddRequestCount adds value to the "request_count" field.
func (_u *UsageRecordUpdate) AddRequestCount(v int) *UsageRecordUpdate {
	_u.mutation.AddRequestCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UsageRecordUpdate) SetUpdatedAt(v time.Time) *UsageRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UsageRecordMutation object of the builder.
func (_u *UsageRecordUpdate) Mutation() *UsageRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UsageRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UsageRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UsageRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := usagerecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *UsageRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(usagerecord.Table, usagerecord.Columns, sqlgraph.NewFieldSpec(usagerecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(usagerecord.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(usagerecord.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(usagerecord.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(usagerecord.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ThinkingTokens(); ok {
		_spec.SetField(usagerecord.FieldThinkingTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedThinkingTokens(); ok {
		_spec.AddField(usagerecord.FieldThinkingTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CacheReadTokens(); ok {
		_spec.SetField(usagerecord.FieldCacheReadTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCacheReadTokens(); ok {
		_spec.AddField(usagerecord.FieldCacheReadTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CacheCreationTokens(); ok {
		_spec.SetField(usagerecord.FieldCacheCreationTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCacheCreationTokens(); ok {
		_spec.AddField(usagerecord.FieldCacheCreationTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedCostCents(); ok {
		_spec.SetField(usagerecord.FieldEstimatedCostCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCostCents(); ok {
		_spec.AddField(usagerecord.FieldEstimatedCostCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequestCount(); ok {
		_spec.SetField(usagerecord.FieldRequestCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestCount(); ok {
		_spec.AddField(usagerecord.FieldRequestCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(usagerecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usagerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UsageRecordUpdateOne is the builder for updating a single UsageRecord entity.
type UsageRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UsageRecordMutation
}

// SetInputTokens sets the "input_tokens" field.
func (_u *UsageRecordUpdateOne) SetInputTokens(v int) *UsageRecordUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableInputTokens(v *int) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *UsageRecordUpdateOne) AddInputTokens(v int) *UsageRecordUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *UsageRecordUpdateOne) SetOutputTokens(v int) *UsageRecordUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableOutputTokens(v *int) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *UsageRecordUpdateOne) AddOutputTokens(v int) *UsageRecordUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetThinkingTokens sets the "thinking_tokens" field.
func (_u *UsageRecordUpdateOne) SetThinkingTokens(v int) *UsageRecordUpdateOne {
	_u.mutation.ResetThinkingTokens()
	_u.mutation.SetThinkingTokens(v)
	return _u
}

// SetNillableThinkingTokens sets the "thinking_tokens" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableThinkingTokens(v *int) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetThinkingTokens(*v)
	}
	return _u
}

// AddThinkingTokens adds value to the "thinking_tokens" field.
func (_u *UsageRecordUpdateOne) AddThinkingTokens(v int) *UsageRecordUpdateOne {
	_u.mutation.AddThinkingTokens(v)
	return _u
}

// SetCacheReadTokens sets the "cache_read_tokens" field.
func (_u *UsageRecordUpdateOne) SetCacheReadTokens(v int) *UsageRecordUpdateOne {
	_u.mutation.ResetCacheReadTokens()
	_u.mutation.SetCacheReadTokens(v)
	return _u
}

// SetNillableCacheReadTokens sets the "cache_read_tokens" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableCacheReadTokens(v *int) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetCacheReadTokens(*v)
	}
	return _u
}

// AddCacheReadTokens adds value to the "cache_read_tokens" field.
func (_u *UsageRecordUpdateOne) AddCacheReadTokens(v int) *UsageRecordUpdateOne {
	_u.mutation.AddCacheReadTokens(v)
	return _u
}

// SetCacheCreationTokens sets the "cache_creation_tokens" field.
func (_u *UsageRecordUpdateOne) SetCacheCreationTokens(v int) *UsageRecordUpdateOne {
	_u.mutation.ResetCacheCreationTokens()
	_u.mutation.SetCacheCreationTokens(v)
	return _u
}

// SetNillableCacheCreationTokens sets the "cache_creation_tokens" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableCacheCreationTokens(v *int) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetCacheCreationTokens(*v)
	}
	return _u
}

// AddCacheCreationTokens adds value to the "cache_creation_tokens" field.
func (_u *UsageRecordUpdateOne) AddCacheCreationTokens(v int) *UsageRecordUpdateOne {
	_u.mutation.AddCacheCreationTokens(v)
	return _u
}

// SetEstimatedCostCents sets the "estimated_cost_cents" field.
func (_u *UsageRecordUpdateOne) SetEstimatedCostCents(v int) *UsageRecordUpdateOne {
	_u.mutation.ResetEstimatedCostCents()
	_u.mutation.SetEstimatedCostCents(v)
	return _u
}

// SetNillableEstimatedCostCents sets the "estimated_cost_cents" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableEstimatedCostCents(v *int) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetEstimatedCostCents(*v)
	}
	return _u
}

// AddEstimatedCostCents adds value to the "estimated_cost_cents" field.
func (_u *UsageRecordUpdateOne) AddEstimatedCostCents(v int) *UsageRecordUpdateOne {
	_u.mutation.AddEstimatedCostCents(v)
	return _u
}

// SetRequestCount sets the "request_count" field.
func (_u *UsageRecordUpdateOne) SetRequestCount(v int) *UsageRecordUpdateOne {
	_u.mutation.ResetRequestCount()
	_u.mutation.SetRequestCount(v)
	return _u
}

// SetNillableRequestCount sets the "request_count" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableRequestCount(v *int) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetRequestCount(*v)
	}
	return _u
}

// AddRequestCount adds value to the "request_count" field.
func (_u *UsageRecordUpdateOne) AddRequestCount(v int) *UsageRecordUpdateOne {
	_u.mutation.AddRequestCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UsageRecordUpdateOne) SetUpdatedAt(v time.Time) *UsageRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UsageRecordMutation object of the builder.
func (_u *UsageRecordUpdateOne) Mutation() *UsageRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the UsageRecordUpdate builder.
func (_u *UsageRecordUpdateOne) Where(ps ...predicate.UsageRecord) *UsageRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UsageRecordUpdateOne) Select(field string, fields ...string) *UsageRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UsageRecord entity.
func (_u *UsageRecordUpdateOne) Save(ctx context.Context) (*UsageRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageRecordUpdateOne) SaveX(ctx context.Context) *UsageRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UsageRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UsageRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := usagerecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *UsageRecordUpdateOne) sqlSave(ctx context.Context) (_node *UsageRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(usagerecord.Table, usagerecord.Columns, sqlgraph.NewFieldSpec(usagerecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UsageRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usagerecord.FieldID)
		for _, f := range fields {
			if !usagerecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != usagerecord.FieldID {
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
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(usagerecord.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(usagerecord.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(usagerecord.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(usagerecord.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ThinkingTokens(); ok {
		_spec.SetField(usagerecord.FieldThinkingTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedThinkingTokens(); ok {
		_spec.AddField(usagerecord.FieldThinkingTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CacheReadTokens(); ok {
		_spec.SetField(usagerecord.FieldCacheReadTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCacheReadTokens(); ok {
		_spec.AddField(usagerecord.FieldCacheReadTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CacheCreationTokens(); ok {
		_spec.SetField(usagerecord.FieldCacheCreationTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCacheCreationTokens(); ok {
		_spec.AddField(usagerecord.FieldCacheCreationTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedCostCents(); ok {
		_spec.SetField(usagerecord.FieldEstimatedCostCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCostCents(); ok {
		_spec.AddField(usagerecord.FieldEstimatedCostCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequestCount(); ok {
		_spec.SetField(usagerecord.FieldRequestCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestCount(); ok {
		_spec.AddField(usagerecord.FieldRequestCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(usagerecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &UsageRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usagerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
