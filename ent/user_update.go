// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ariahq/aria/ent/conversation"
	"github.com/ariahq/aria/ent/predicate"
	"github.com/ariahq/aria/ent/user"
)

// UserUpdate is the builder for updating User entities.
type UserUpdate struct {
	config
	hooks    []Hook
	mutation *UserMutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdate) Where(ps ...predicate.User) *UserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdate) SetEmail(v string) *UserUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdate) SetNillableEmail(v *string) *UserUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *UserUpdate) ClearEmail() *UserUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *UserUpdate) SetDisplayName(v string) *UserUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *UserUpdate) SetNillableDisplayName(v *string) *UserUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *UserUpdate) ClearDisplayName() *UserUpdate {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *UserUpdate) SetTimezone(v string) *UserUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *UserUpdate) SetNillableTimezone(v *string) *UserUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetOnboarded sets the "onboarded" field.
func (_u *UserUpdate) SetOnboarded(v bool) *UserUpdate {
	_u.mutation.SetOnboarded(v)
	return _u
}

// SetNillableOnboarded sets the "onboarded" field if the given value is not nil.
func (_u *UserUpdate) SetNillableOnboarded(v *bool) *UserUpdate {
	if v != nil {
		_u.SetOnboarded(*v)
	}
	return _u
}

// SetDailyTokenBudget sets the "daily_token_budget" field.
func (_u *UserUpdate) SetDailyTokenBudget(v int) *UserUpdate {
	_u.mutation.ResetDailyTokenBudget()
	_u.mutation.SetDailyTokenBudget(v)
	return _u
}

// SetNillableDailyTokenBudget sets the "daily_token_budget" field if the given value is not nil.
func (_u *UserUpdate) SetNillableDailyTokenBudget(v *int) *UserUpdate {
	if v != nil {
		_u.SetDailyTokenBudget(*v)
	}
	return _u
}

// AddDailyTokenBudget adds value to the "daily_token_budget" field.
func (_u *UserUpdate) AddDailyTokenBudget(v int) *UserUpdate {
	_u.mutation.AddDailyTokenBudget(v)
	return _u
}

// SetDailyThinkingBudget sets the "daily_thinking_budget" field.
func (_u *UserUpdate) SetDailyThinkingBudget(v int) *UserUpdate {
	_u.mutation.ResetDailyThinkingBudget()
	_u.mutation.SetDailyThinkingBudget(v)
	return _u
}

// SetNillableDailyThinkingBudget sets the "daily_thinking_budget" field if the given value is not nil.
func (_u *UserUpdate) SetNillableDailyThinkingBudget(v *int) *UserUpdate {
	if v != nil {
		_u.SetDailyThinkingBudget(*v)
	}
	return _u
}

// AddDailyThinkingBudget adds value to the "daily_thinking_budget" field.
func (_u *UserUpdate) AddDailyThinkingBudget(v int) *UserUpdate {
	_u.mutation.AddDailyThinkingBudget(v)
	return _u
}

// SetTrackedCompetitors sets the "tracked_competitors" field.
func (_u *UserUpdate) SetTrackedCompetitors(v []string) *UserUpdate {
	_u.mutation.SetTrackedCompetitors(v)
	return _u
}

// AppendTrackedCompetitors appends value to the "tracked_competitors" field.
func (_u *UserUpdate) AppendTrackedCompetitors(v []string) *UserUpdate {
	_u.mutation.AppendTrackedCompetitors(v)
	return _u
}

// ClearTrackedCompetitors clears the value of the "tracked_competitors" field.
func (_u *UserUpdate) ClearTrackedCompetitors() *UserUpdate {
	_u.mutation.ClearTrackedCompetitors()
	return _u
}

// SetConnectedIntegrations sets the "connected_integrations" field.
func (_u *UserUpdate) SetConnectedIntegrations(v []string) *UserUpdate {
	_u.mutation.SetConnectedIntegrations(v)
	return _u
}

// AppendConnectedIntegrations appends value to the "connected_integrations" field.
func (_u *UserUpdate) AppendConnectedIntegrations(v []string) *UserUpdate {
	_u.mutation.AppendConnectedIntegrations(v)
	return _u
}

// ClearConnectedIntegrations clears the value of the "connected_integrations" field.
func (_u *UserUpdate) ClearConnectedIntegrations() *UserUpdate {
	_u.mutation.ClearConnectedIntegrations()
	return _u
}

// SetWritingStyle sets the "writing_style" field.
func (_u *UserUpdate) SetWritingStyle(v map[string]interface{}) *UserUpdate {
	_u.mutation.SetWritingStyle(v)
	return _u
}

// ClearWritingStyle clears the value of the "writing_style" field.
func (_u *UserUpdate) ClearWritingStyle() *UserUpdate {
	_u.mutation.ClearWritingStyle()
	return _u
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by IDs.
func (_u *UserUpdate) AddConversationIDs(ids ...string) *UserUpdate {
	_u.mutation.AddConversationIDs(ids...)
	return _u
}

// AddConversations adds the "conversations" edges to the Conversation entity.
func (_u *UserUpdate) AddConversations(v ...*Conversation) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConversationIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdate) Mutation() *UserMutation {
	return _u.mutation
}

// ClearConversations clears all "conversations" edges to the Conversation entity.
func (_u *UserUpdate) ClearConversations() *UserUpdate {
	_u.mutation.ClearConversations()
	return _u
}

// RemoveConversationIDs removes the "conversations" edge to Conversation entities by IDs.
func (_u *UserUpdate) RemoveConversationIDs(ids ...string) *UserUpdate {
	_u.mutation.RemoveConversationIDs(ids...)
	return _u
}

// RemoveConversations removes "conversations" edges to Conversation entities.
func (_u *UserUpdate) RemoveConversations(v ...*Conversation) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConversationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(user.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(user.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(user.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(user.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Onboarded(); ok {
		_spec.SetField(user.FieldOnboarded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DailyTokenBudget(); ok {
		_spec.SetField(user.FieldDailyTokenBudget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyTokenBudget(); ok {
		_spec.AddField(user.FieldDailyTokenBudget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DailyThinkingBudget(); ok {
		_spec.SetField(user.FieldDailyThinkingBudget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyThinkingBudget(); ok {
		_spec.AddField(user.FieldDailyThinkingBudget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TrackedCompetitors(); ok {
		_spec.SetField(user.FieldTrackedCompetitors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTrackedCompetitors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, user.FieldTrackedCompetitors, value)
		})
	}
	if _u.mutation.TrackedCompetitorsCleared() {
		_spec.ClearField(user.FieldTrackedCompetitors, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConnectedIntegrations(); ok {
		_spec.SetField(user.FieldConnectedIntegrations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConnectedIntegrations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, user.FieldConnectedIntegrations, value)
		})
	}
	if _u.mutation.ConnectedIntegrationsCleared() {
		_spec.ClearField(user.FieldConnectedIntegrations, field.TypeJSON)
	}
	if value, ok := _u.mutation.WritingStyle(); ok {
		_spec.SetField(user.FieldWritingStyle, field.TypeJSON, value)
	}
	if _u.mutation.WritingStyleCleared() {
		_spec.ClearField(user.FieldWritingStyle, field.TypeJSON)
	}
	if _u.mutation.ConversationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ConversationsTable,
			Columns: []string{user.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConversationsIDs(); len(nodes) > 0 && !_u.mutation.ConversationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ConversationsTable,
			Columns: []string{user.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ConversationsTable,
			Columns: []string{user.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserUpdateOne is the builder for updating a single User entity.
type UserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserMutation
}

// SetEmail sets the "email" field.
func (_u *UserUpdateOne) SetEmail(v string) *UserUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableEmail(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *UserUpdateOne) ClearEmail() *UserUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *UserUpdateOne) SetDisplayName(v string) *UserUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableDisplayName(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *UserUpdateOne) ClearDisplayName() *UserUpdateOne {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *UserUpdateOne) SetTimezone(v string) *UserUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableTimezone(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetOnboarded sets the "onboarded" field.
func (_u *UserUpdateOne) SetOnboarded(v bool) *UserUpdateOne {
	_u.mutation.SetOnboarded(v)
	return _u
}

// SetNillableOnboarded sets the "onboarded" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableOnboarded(v *bool) *UserUpdateOne {
	if v != nil {
		_u.SetOnboarded(*v)
	}
	return _u
}

// SetDailyTokenBudget sets the "daily_token_budget" field.
func (_u *UserUpdateOne) SetDailyTokenBudget(v int) *UserUpdateOne {
	_u.mutation.ResetDailyTokenBudget()
	_u.mutation.SetDailyTokenBudget(v)
	return _u
}

// SetNillableDailyTokenBudget sets the "daily_token_budget" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableDailyTokenBudget(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetDailyTokenBudget(*v)
	}
	return _u
}

// AddDailyTokenBudget adds value to the "daily_token_budget" field.
func (_u *UserUpdateOne) AddDailyTokenBudget(v int) *UserUpdateOne {
	_u.mutation.AddDailyTokenBudget(v)
	return _u
}

// SetDailyThinkingBudget sets the "daily_thinking_budget" field.
func (_u *UserUpdateOne) SetDailyThinkingBudget(v int) *UserUpdateOne {
	_u.mutation.ResetDailyThinkingBudget()
	_u.mutation.SetDailyThinkingBudget(v)
	return _u
}

// SetNillableDailyThinkingBudget sets the "daily_thinking_budget" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableDailyThinkingBudget(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetDailyThinkingBudget(*v)
	}
	return _u
}

// AddDailyThinkingBudget adds value to the "daily_thinking_budget" field.
func (_u *UserUpdateOne) AddDailyThinkingBudget(v int) *UserUpdateOne {
	_u.mutation.AddDailyThinkingBudget(v)
	return _u
}

// SetTrackedCompetitors sets the "tracked_competitors" field.
func (_u *UserUpdateOne) SetTrackedCompetitors(v []string) *UserUpdateOne {
	_u.mutation.SetTrackedCompetitors(v)
	return _u
}

// AppendTrackedCompetitors appends value to the "tracked_competitors" field.
func (_u *UserUpdateOne) AppendTrackedCompetitors(v []string) *UserUpdateOne {
	_u.mutation.AppendTrackedCompetitors(v)
	return _u
}

// ClearTrackedCompetitors clears the value of the "tracked_competitors" field.
func (_u *UserUpdateOne) ClearTrackedCompetitors() *UserUpdateOne {
	_u.mutation.ClearTrackedCompetitors()
	return _u
}

// SetConnectedIntegrations sets the "connected_integrations" field.
func (_u *UserUpdateOne) SetConnectedIntegrations(v []string) *UserUpdateOne {
	_u.mutation.SetConnectedIntegrations(v)
	return _u
}

// AppendConnectedIntegrations appends value to the "connected_integrations" field.
func (_u *UserUpdateOne) AppendConnectedIntegrations(v []string) *UserUpdateOne {
	_u.mutation.AppendConnectedIntegrations(v)
	return _u
}

// ClearConnectedIntegrations clears the value of the "connected_integrations" field.
func (_u *UserUpdateOne) ClearConnectedIntegrations() *UserUpdateOne {
	_u.mutation.ClearConnectedIntegrations()
	return _u
}

// SetWritingStyle sets the "writing_style" field.
func (_u *UserUpdateOne) SetWritingStyle(v map[string]interface{}) *UserUpdateOne {
	_u.mutation.SetWritingStyle(v)
	return _u
}

// ClearWritingStyle clears the value of the "writing_style" field.
func (_u *UserUpdateOne) ClearWritingStyle() *UserUpdateOne {
	_u.mutation.ClearWritingStyle()
	return _u
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by IDs.
func (_u *UserUpdateOne) AddConversationIDs(ids ...string) *UserUpdateOne {
	_u.mutation.AddConversationIDs(ids...)
	return _u
}

// AddConversations adds the "conversations" edges to the Conversation entity.
func (_u *UserUpdateOne) AddConversations(v ...*Conversation) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConversationIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdateOne) Mutation() *UserMutation {
	return _u.mutation
}

// ClearConversations clears all "conversations" edges to the Conversation entity.
func (_u *UserUpdateOne) ClearConversations() *UserUpdateOne {
	_u.mutation.ClearConversations()
	return _u
}

// RemoveConversationIDs removes the "conversations" edge to Conversation entities by IDs.
func (_u *UserUpdateOne) RemoveConversationIDs(ids ...string) *UserUpdateOne {
	_u.mutation.RemoveConversationIDs(ids...)
	return _u
}

// RemoveConversations removes "conversations" edges to Conversation entities.
func (_u *UserUpdateOne) RemoveConversations(v ...*Conversation) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConversationIDs(ids...)
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdateOne) Where(ps ...predicate.User) *UserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserUpdateOne) Select(field string, fields ...string) *UserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated User entity.
func (_u *UserUpdateOne) Save(ctx context.Context) (*User, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdateOne) SaveX(ctx context.Context) *User {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UserUpdateOne) sqlSave(ctx context.Context) (_node *User, err error) {
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "User.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, user.FieldID)
		for _, f := range fields {
			if !user.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != user.FieldID {
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
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(user.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(user.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(user.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(user.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Onboarded(); ok {
		_spec.SetField(user.FieldOnboarded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DailyTokenBudget(); ok {
		_spec.SetField(user.FieldDailyTokenBudget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyTokenBudget(); ok {
		_spec.AddField(user.FieldDailyTokenBudget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DailyThinkingBudget(); ok {
		_spec.SetField(user.FieldDailyThinkingBudget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyThinkingBudget(); ok {
		_spec.AddField(user.FieldDailyThinkingBudget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TrackedCompetitors(); ok {
		_spec.SetField(user.FieldTrackedCompetitors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTrackedCompetitors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, user.FieldTrackedCompetitors, value)
		})
	}
	if _u.mutation.TrackedCompetitorsCleared() {
		_spec.ClearField(user.FieldTrackedCompetitors, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConnectedIntegrations(); ok {
		_spec.SetField(user.FieldConnectedIntegrations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConnectedIntegrations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, user.FieldConnectedIntegrations, value)
		})
	}
	if _u.mutation.ConnectedIntegrationsCleared() {
		_spec.ClearField(user.FieldConnectedIntegrations, field.TypeJSON)
	}
	if value, ok := _u.mutation.WritingStyle(); ok {
		_spec.SetField(user.FieldWritingStyle, field.TypeJSON, value)
	}
	if _u.mutation.WritingStyleCleared() {
		_spec.ClearField(user.FieldWritingStyle, field.TypeJSON)
	}
	if _u.mutation.ConversationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ConversationsTable,
			Columns: []string{user.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConversationsIDs(); len(nodes) > 0 && !_u.mutation.ConversationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ConversationsTable,
			Columns: []string{user.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ConversationsTable,
			Columns: []string{user.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &User{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
