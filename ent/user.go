// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ariahq/aria/ent/user"
)

// User is the model entity for the User schema.
type User struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Email holds the value of the "email" field.
	Email *string `json:"email,omitempty"`
	// DisplayName holds the value of the "display_name" field.
	DisplayName *string `json:"display_name,omitempty"`
	// IANA zone name; business-hours gating
	Timezone string `json:"timezone,omitempty"`
	// Only onboarded users are visited by background jobs
	Onboarded bool `json:"onboarded,omitempty"`
	// 0 = use deployment default
	DailyTokenBudget int `json:"daily_token_budget,omitempty"`
	// DailyThinkingBudget holds the value of the "daily_thinking_budget" field.
	DailyThinkingBudget int `json:"daily_thinking_budget,omitempty"`
	// TrackedCompetitors holds the value of the "tracked_competitors" field.
	TrackedCompetitors []string `json:"tracked_competitors,omitempty"`
	// ConnectedIntegrations holds the value of the "connected_integrations" field.
	ConnectedIntegrations []string `json:"connected_integrations,omitempty"`
	// Opaque style fingerprint used by the scribe agent
	WritingStyle map[string]interface{} `json:"writing_style,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UserQuery when eager-loading is set.
	Edges        UserEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UserEdges holds the relations/edges for other nodes in the graph.
type UserEdges struct {
	// Conversations holds the value of the conversations edge.
	Conversations []*Conversation `json:"conversations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ConversationsOrErr returns the Conversations value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) ConversationsOrErr() ([]*Conversation, error) {
	if e.loadedTypes[0] {
		return e.Conversations, nil
	}
	return nil, &NotLoadedError{edge: "conversations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*User) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case user.FieldTrackedCompetitors, user.FieldConnectedIntegrations, user.FieldWritingStyle:
			values[i] = new([]byte)
		case user.FieldOnboarded:
			values[i] = new(sql.NullBool)
		case user.FieldDailyTokenBudget, user.FieldDailyThinkingBudget:
			values[i] = new(sql.NullInt64)
		case user.FieldID, user.FieldEmail, user.FieldDisplayName, user.FieldTimezone:
			values[i] = new(sql.NullString)
		case user.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the User fields.
func (_m *User) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case user.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case user.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = new(string)
				*_m.Email = value.String
			}
		case user.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = new(string)
				*_m.DisplayName = value.String
			}
		case user.FieldTimezone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timezone", values[i])
			} else if value.Valid {
				_m.Timezone = value.String
			}
		case user.FieldOnboarded:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field onboarded", values[i])
			} else if value.Valid {
				_m.Onboarded = value.Bool
			}
		case user.FieldDailyTokenBudget:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field daily_token_budget", values[i])
			} else if value.Valid {
				_m.DailyTokenBudget = int(value.Int64)
			}
		case user.FieldDailyThinkingBudget:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field daily_thinking_budget", values[i])
			} else if value.Valid {
				_m.DailyThinkingBudget = int(value.Int64)
			}
		case user.FieldTrackedCompetitors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tracked_competitors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TrackedCompetitors); err != nil {
					return fmt.Errorf("unmarshal field tracked_competitors: %w", err)
				}
			}
		case user.FieldConnectedIntegrations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field connected_integrations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConnectedIntegrations); err != nil {
					return fmt.Errorf("unmarshal field connected_integrations: %w", err)
				}
			}
		case user.FieldWritingStyle:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field writing_style", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.WritingStyle); err != nil {
					return fmt.Errorf("unmarshal field writing_style: %w", err)
				}
			}
		case user.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the User.
// This includes values selected through modifiers, order, etc.
func (_m *User) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryConversations queries the "conversations" edge of the User entity.
func (_m *User) QueryConversations() *ConversationQuery {
	return NewUserClient(_m.config).QueryConversations(_m)
}

// Update returns a builder for updating this User.
// Note that you need to call User.Unwrap() before calling this method if this User
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *User) Update() *UserUpdateOne {
	return NewUserClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the User entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *User) Unwrap() *User {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: User is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *User) String() string {
	var builder strings.Builder
	builder.WriteString("User(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.Email; v != nil {
		builder.WriteString("email=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DisplayName; v != nil {
		builder.WriteString("display_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("timezone=")
	builder.WriteString(_m.Timezone)
	builder.WriteString(", ")
	builder.WriteString("onboarded=")
	builder.WriteString(fmt.Sprintf("%v", _m.Onboarded))
	builder.WriteString(", ")
	builder.WriteString("daily_token_budget=")
	builder.WriteString(fmt.Sprintf("%v", _m.DailyTokenBudget))
	builder.WriteString(", ")
	builder.WriteString("daily_thinking_budget=")
	builder.WriteString(fmt.Sprintf("%v", _m.DailyThinkingBudget))
	builder.WriteString(", ")
	builder.WriteString("tracked_competitors=")
	builder.WriteString(fmt.Sprintf("%v", _m.TrackedCompetitors))
	builder.WriteString(", ")
	builder.WriteString("connected_integrations=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConnectedIntegrations))
	builder.WriteString(", ")
	builder.WriteString("writing_style=")
	builder.WriteString(fmt.Sprintf("%v", _m.WritingStyle))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Users is a parsable slice of User.
type Users []*User
