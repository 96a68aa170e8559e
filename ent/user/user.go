// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the user type in the database.
	Label = "user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "user_id"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldOnboarded holds the string denoting the onboarded field in the database.
	FieldOnboarded = "onboarded"
	// FieldDailyTokenBudget holds the string denoting the daily_token_budget field in the database.
	FieldDailyTokenBudget = "daily_token_budget"
	// FieldDailyThinkingBudget holds the string denoting the daily_thinking_budget field in the database.
	FieldDailyThinkingBudget = "daily_thinking_budget"
	// FieldTrackedCompetitors holds the string denoting the tracked_competitors field in the database.
	FieldTrackedCompetitors = "tracked_competitors"
	// FieldConnectedIntegrations holds the string denoting the connected_integrations field in the database.
	FieldConnectedIntegrations = "connected_integrations"
	// FieldWritingStyle holds the string denoting the writing_style field in the database.
	FieldWritingStyle = "writing_style"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeConversations holds the string denoting the conversations edge name in mutations.
	EdgeConversations = "conversations"
	// ConversationFieldID holds the string denoting the ID field of the Conversation.
	ConversationFieldID = "conversation_id"
	// Table holds the table name of the user in the database.
	Table = "users"
	// ConversationsTable is the table that holds the conversations relation/edge.
	ConversationsTable = "conversations"
	// ConversationsInverseTable is the table name for the Conversation entity.
	// It exists in this package in order to avoid circular dependency with the "conversation" package.
	ConversationsInverseTable = "conversations"
	// ConversationsColumn is the table column denoting the conversations relation/edge.
	ConversationsColumn = "user_id"
)

// Columns holds all SQL columns for user fields.
var Columns = []string{
	FieldID,
	FieldEmail,
	FieldDisplayName,
	FieldTimezone,
	FieldOnboarded,
	FieldDailyTokenBudget,
	FieldDailyThinkingBudget,
	FieldTrackedCompetitors,
	FieldConnectedIntegrations,
	FieldWritingStyle,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimezone holds the default value on creation for the "timezone" field.
	DefaultTimezone string
	// DefaultOnboarded holds the default value on creation for the "onboarded" field.
	DefaultOnboarded bool
	// DefaultDailyTokenBudget holds the default value on creation for the "daily_token_budget" field.
	DefaultDailyTokenBudget int
	// DefaultDailyThinkingBudget holds the default value on creation for the "daily_thinking_budget" field.
	DefaultDailyThinkingBudget int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the User queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByTimezone orders the results by the timezone field.
func ByTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimezone, opts...).ToFunc()
}

// ByOnboarded orders the results by the onboarded field.
func ByOnboarded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOnboarded, opts...).ToFunc()
}

// ByDailyTokenBudget orders the results by the daily_token_budget field.
func ByDailyTokenBudget(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDailyTokenBudget, opts...).ToFunc()
}

// ByDailyThinkingBudget orders the results by the daily_thinking_budget field.
func ByDailyThinkingBudget(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDailyThinkingBudget, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByConversationsCount orders the results by conversations count.
func ByConversationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newConversationsStep(), opts...)
	}
}

// ByConversations orders the results by conversations terms.
func ByConversations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConversationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newConversationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConversationsInverseTable, ConversationFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ConversationsTable, ConversationsColumn),
	)
}
