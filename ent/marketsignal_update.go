// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ariahq/aria/ent/marketsignal"
	"github.com/ariahq/aria/ent/predicate"
)

// MarketSignalUpdate is the builder for updating MarketSignal entities.
type MarketSignalUpdate struct {
	config
	hooks    []Hook
	mutation *MarketSignalMutation
}

// Where appends a list predicates to the MarketSignalUpdate builder.
func (_u *MarketSignalUpdate) Where(ps ...predicate.MarketSignal) *MarketSignalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEntity sets the "entity" field.
func (_u *MarketSignalUpdate) SetEntity(v string) *MarketSignalUpdate {
	_u.mutation.SetEntity(v)
	return _u
}

// SetNillableEntity sets the "entity" field if the given value is not nil.
func (_u *MarketSignalUpdate) SetNillableEntity(v *string) *MarketSignalUpdate {
	if v != nil {
		_u.SetEntity(*v)
	}
	return _u
}

// SetHeadline sets the "headline" field.
func (_u *MarketSignalUpdate) SetHeadline(v string) *MarketSignalUpdate {
	_u.mutation.SetHeadline(v)
	return _u
}

// SetNillableHeadline sets the "headline" field if the given value is not nil.
func (_u *MarketSignalUpdate) SetNillableHeadline(v *string) *MarketSignalUpdate {
	if v != nil {
		_u.SetHeadline(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *MarketSignalUpdate) SetSummary(v string) *MarketSignalUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *MarketSignalUpdate) SetNillableSummary(v *string) *MarketSignalUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *MarketSignalUpdate) ClearSummary() *MarketSignalUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetSource sets the "source" field.
func (_u *MarketSignalUpdate) SetSource(v string) *MarketSignalUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *MarketSignalUpdate) SetNillableSource(v *string) *MarketSignalUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *MarketSignalUpdate) ClearSource() *MarketSignalUpdate {
	_u.mutation.ClearSource()
	return _u
}

// SetRelevance sets the "relevance" field.
func (_u *MarketSignalUpdate) SetRelevance(v float64) *MarketSignalUpdate {
	_u.mutation.ResetRelevance()
	_u.mutation.SetRelevance(v)
	return _u
}

// SetNillableRelevance sets the "relevance" field if the given value is not nil.
func (_u *MarketSignalUpdate) SetNillableRelevance(v *float64) *MarketSignalUpdate {
	if v != nil {
		_u.SetRelevance(*v)
	}
	return _u
}

// AddRelevance adds value to the "relevance" field.
func (_u *MarketSignalUpdate) AddRelevance(v float64) *MarketSignalUpdate {
	_u.mutation.AddRelevance(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *MarketSignalUpdate) SetMetadata(v map[string]interface{}) *MarketSignalUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *MarketSignalUpdate) ClearMetadata() *MarketSignalUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the MarketSignalMutation object of the builder.
func (_u *MarketSignalUpdate) Mutation() *MarketSignalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MarketSignalUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MarketSignalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MarketSignalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MarketSignalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MarketSignalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(marketsignal.Table, marketsignal.Columns, sqlgraph.NewFieldSpec(marketsignal.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Entity(); ok {
		_spec.SetField(marketsignal.FieldEntity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Headline(); ok {
		_spec.SetField(marketsignal.FieldHeadline, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(marketsignal.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(marketsignal.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(marketsignal.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(marketsignal.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.Relevance(); ok {
		_spec.SetField(marketsignal.FieldRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevance(); ok {
		_spec.AddField(marketsignal.FieldRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(marketsignal.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(marketsignal.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{marketsignal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MarketSignalUpdateOne is the builder for updating a single MarketSignal entity.
type MarketSignalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MarketSignalMutation
}

// SetEntity sets the "entity" field.
func (_u *MarketSignalUpdateOne) SetEntity(v string) *MarketSignalUpdateOne {
	_u.mutation.SetEntity(v)
	return _u
}

// SetNillableEntity sets the "entity" field if the given value is not nil.
func (_u *MarketSignalUpdateOne) SetNillableEntity(v *string) *MarketSignalUpdateOne {
	if v != nil {
		_u.SetEntity(*v)
	}
	return _u
}

// SetHeadline sets the "headline" field.
func (_u *MarketSignalUpdateOne) SetHeadline(v string) *MarketSignalUpdateOne {
	_u.mutation.SetHeadline(v)
	return _u
}

// SetNillableHeadline sets the "headline" field if the given value is not nil.
func (_u *MarketSignalUpdateOne) SetNillableHeadline(v *string) *MarketSignalUpdateOne {
	if v != nil {
		_u.SetHeadline(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *MarketSignalUpdateOne) SetSummary(v string) *MarketSignalUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *MarketSignalUpdateOne) SetNillableSummary(v *string) *MarketSignalUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *MarketSignalUpdateOne) ClearSummary() *MarketSignalUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetSource sets the "source" field.
func (_u *MarketSignalUpdateOne) SetSource(v string) *MarketSignalUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *MarketSignalUpdateOne) SetNillableSource(v *string) *MarketSignalUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *MarketSignalUpdateOne) ClearSource() *MarketSignalUpdateOne {
	_u.mutation.ClearSource()
	return _u
}

// SetRelevance sets the "relevance" field.
func (_u *MarketSignalUpdateOne) SetRelevance(v float64) *MarketSignalUpdateOne {
	_u.mutation.ResetRelevance()
	_u.mutation.SetRelevance(v)
	return _u
}

// SetNillableRelevance sets the "relevance" field if the given value is not nil.
func (_u *MarketSignalUpdateOne) SetNillableRelevance(v *float64) *MarketSignalUpdateOne {
	if v != nil {
		_u.SetRelevance(*v)
	}
	return _u
}

// AddRelevance adds value to the "relevance" field.
func (_u *MarketSignalUpdateOne) AddRelevance(v float64) *MarketSignalUpdateOne {
	_u.mutation.AddRelevance(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *MarketSignalUpdateOne) SetMetadata(v map[string]interface{}) *MarketSignalUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *MarketSignalUpdateOne) ClearMetadata() *MarketSignalUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the MarketSignalMutation object of the builder.
func (_u *MarketSignalUpdateOne) Mutation() *MarketSignalMutation {
	return _u.mutation
}

// Where appends a list predicates to the MarketSignalUpdate builder.
func (_u *MarketSignalUpdateOne) Where(ps ...predicate.MarketSignal) *MarketSignalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MarketSignalUpdateOne) Select(field string, fields ...string) *MarketSignalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MarketSignal entity.
func (_u *MarketSignalUpdateOne) Save(ctx context.Context) (*MarketSignal, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MarketSignalUpdateOne) SaveX(ctx context.Context) *MarketSignal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MarketSignalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MarketSignalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MarketSignalUpdateOne) sqlSave(ctx context.Context) (_node *MarketSignal, err error) {
	_spec := sqlgraph.NewUpdateSpec(marketsignal.Table, marketsignal.Columns, sqlgraph.NewFieldSpec(marketsignal.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MarketSignal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, marketsignal.FieldID)
		for _, f := range fields {
			if !marketsignal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != marketsignal.FieldID {
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
	if value, ok := _u.mutation.Entity(); ok {
		_spec.SetField(marketsignal.FieldEntity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Headline(); ok {
		_spec.SetField(marketsignal.FieldHeadline, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(marketsignal.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(marketsignal.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(marketsignal.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(marketsignal.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.Relevance(); ok {
		_spec.SetField(marketsignal.FieldRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevance(); ok {
		_spec.AddField(marketsignal.FieldRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(marketsignal.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(marketsignal.FieldMetadata, field.TypeJSON)
	}
	_node = &MarketSignal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{marketsignal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
