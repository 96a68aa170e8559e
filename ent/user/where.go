// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ariahq/aria/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.User {
	return predicate.User(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.User {
	return predicate.User(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldID, id))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmail, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldDisplayName, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldTimezone, v))
}

// Onboarded applies equality check predicate on the "onboarded" field. It's identical to OnboardedEQ.
func Onboarded(v bool) predicate.User {
	return predicate.User(sql.FieldEQ(FieldOnboarded, v))
}

// DailyTokenBudget applies equality check predicate on the "daily_token_budget" field. It's identical to DailyTokenBudgetEQ.
func DailyTokenBudget(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldDailyTokenBudget, v))
}

// DailyThinkingBudget applies equality check predicate on the "daily_thinking_budget" field. It's identical to DailyThinkingBudgetEQ.
func DailyThinkingBudget(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldDailyThinkingBudget, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldEmail, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameIsNil applies the IsNil predicate on the "display_name" field.
func DisplayNameIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldDisplayName))
}

// DisplayNameNotNil applies the NotNil predicate on the "display_name" field.
func DisplayNameNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldDisplayName))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldDisplayName, v))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldTimezone, v))
}

// OnboardedEQ applies the EQ predicate on the "onboarded" field.
func OnboardedEQ(v bool) predicate.User {
	return predicate.User(sql.FieldEQ(FieldOnboarded, v))
}

// OnboardedNEQ applies the NEQ predicate on the "onboarded" field.
func OnboardedNEQ(v bool) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldOnboarded, v))
}

// DailyTokenBudgetEQ applies the EQ predicate on the "daily_token_budget" field.
func DailyTokenBudgetEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldDailyTokenBudget, v))
}

// DailyTokenBudgetNEQ applies the NEQ predicate on the "daily_token_budget" field.
func DailyTokenBudgetNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldDailyTokenBudget, v))
}

// DailyTokenBudgetIn applies the In predicate on the "daily_token_budget" field.
func DailyTokenBudgetIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldDailyTokenBudget, vs...))
}

// DailyTokenBudgetNotIn applies the NotIn predicate on the "daily_token_budget" field.
func DailyTokenBudgetNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldDailyTokenBudget, vs...))
}

// DailyTokenBudgetGT applies the GT predicate on the "daily_token_budget" field.
func DailyTokenBudgetGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldDailyTokenBudget, v))
}

// DailyTokenBudgetGTE applies the GTE predicate on the "daily_token_budget" field.
func DailyTokenBudgetGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldDailyTokenBudget, v))
}

// DailyTokenBudgetLT applies the LT predicate on the "daily_token_budget" field.
func DailyTokenBudgetLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldDailyTokenBudget, v))
}

// DailyTokenBudgetLTE applies the LTE predicate on the "daily_token_budget" field.
func DailyTokenBudgetLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldDailyTokenBudget, v))
}

// DailyThinkingBudgetEQ applies the EQ predicate on the "daily_thinking_budget" field.
func DailyThinkingBudgetEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldDailyThinkingBudget, v))
}

// DailyThinkingBudgetNEQ applies the NEQ predicate on the "daily_thinking_budget" field.
func DailyThinkingBudgetNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldDailyThinkingBudget, v))
}

// DailyThinkingBudgetIn applies the In predicate on the "daily_thinking_budget" field.
func DailyThinkingBudgetIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldDailyThinkingBudget, vs...))
}

// DailyThinkingBudgetNotIn applies the NotIn predicate on the "daily_thinking_budget" field.
func DailyThinkingBudgetNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldDailyThinkingBudget, vs...))
}

// DailyThinkingBudgetGT applies the GT predicate on the "daily_thinking_budget" field.
func DailyThinkingBudgetGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldDailyThinkingBudget, v))
}

// DailyThinkingBudgetGTE applies the GTE predicate on the "daily_thinking_budget" field.
func DailyThinkingBudgetGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldDailyThinkingBudget, v))
}

// DailyThinkingBudgetLT applies the LT predicate on the "daily_thinking_budget" field.
func DailyThinkingBudgetLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldDailyThinkingBudget, v))
}

// DailyThinkingBudgetLTE applies the LTE predicate on the "daily_thinking_budget" field.
func DailyThinkingBudgetLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldDailyThinkingBudget, v))
}

// TrackedCompetitorsIsNil applies the IsNil predicate on the "tracked_competitors" field.
func TrackedCompetitorsIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldTrackedCompetitors))
}

// TrackedCompetitorsNotNil applies the NotNil predicate on the "tracked_competitors" field.
func TrackedCompetitorsNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldTrackedCompetitors))
}

// ConnectedIntegrationsIsNil applies the IsNil predicate on the "connected_integrations" field.
func ConnectedIntegrationsIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldConnectedIntegrations))
}

// ConnectedIntegrationsNotNil applies the NotNil predicate on the "connected_integrations" field.
func ConnectedIntegrationsNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldConnectedIntegrations))
}

// WritingStyleIsNil applies the IsNil predicate on the "writing_style" field.
func WritingStyleIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldWritingStyle))
}

// WritingStyleNotNil applies the NotNil predicate on the "writing_style" field.
func WritingStyleNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldWritingStyle))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCreatedAt, v))
}

// HasConversations applies the HasEdge predicate on the "conversations" edge.
func HasConversations() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ConversationsTable, ConversationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConversationsWith applies the HasEdge predicate on the "conversations" edge with a given conditions (other predicates).
func HasConversationsWith(preds ...predicate.Conversation) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newConversationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.User) predicate.User {
	return predicate.User(sql.NotPredicates(p))
}
