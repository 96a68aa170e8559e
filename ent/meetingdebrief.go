// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ariahq/aria/ent/meetingdebrief"
)

// MeetingDebrief is the model entity for the MeetingDebrief schema.
type MeetingDebrief struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// MeetingID holds the value of the "meeting_id" field.
	MeetingID string `json:"meeting_id,omitempty"`
	// MeetingTitle holds the value of the "meeting_title" field.
	MeetingTitle string `json:"meeting_title,omitempty"`
	// PromptedAt holds the value of the "prompted_at" field.
	PromptedAt time.Time `json:"prompted_at,omitempty"`
	// Completed holds the value of the "completed" field.
	Completed bool `json:"completed,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes string `json:"notes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MeetingDebrief) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case meetingdebrief.FieldCompleted:
			values[i] = new(sql.NullBool)
		case meetingdebrief.FieldID, meetingdebrief.FieldUserID, meetingdebrief.FieldMeetingID, meetingdebrief.FieldMeetingTitle, meetingdebrief.FieldNotes:
			values[i] = new(sql.NullString)
		case meetingdebrief.FieldPromptedAt, meetingdebrief.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MeetingDebrief fields.
func (_m *MeetingDebrief) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case meetingdebrief.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case meetingdebrief.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case meetingdebrief.FieldMeetingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meeting_id", values[i])
			} else if value.Valid {
				_m.MeetingID = value.String
			}
		case meetingdebrief.FieldMeetingTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meeting_title", values[i])
			} else if value.Valid {
				_m.MeetingTitle = value.String
			}
		case meetingdebrief.FieldPromptedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field prompted_at", values[i])
			} else if value.Valid {
				_m.PromptedAt = value.Time
			}
		case meetingdebrief.FieldCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field completed", values[i])
			} else if value.Valid {
				_m.Completed = value.Bool
			}
		case meetingdebrief.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case meetingdebrief.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MeetingDebrief.
// This includes values selected through modifiers, order, etc.
func (_m *MeetingDebrief) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MeetingDebrief.
// Note that you need to call MeetingDebrief.Unwrap() before calling this method if this MeetingDebrief
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MeetingDebrief) Update() *MeetingDebriefUpdateOne {
	return NewMeetingDebriefClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MeetingDebrief entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MeetingDebrief) Unwrap() *MeetingDebrief {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MeetingDebrief is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MeetingDebrief) String() string {
	var builder strings.Builder
	builder.WriteString("MeetingDebrief(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("meeting_id=")
	builder.WriteString(_m.MeetingID)
	builder.WriteString(", ")
	builder.WriteString("meeting_title=")
	builder.WriteString(_m.MeetingTitle)
	builder.WriteString(", ")
	builder.WriteString("prompted_at=")
	builder.WriteString(_m.PromptedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Completed))
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MeetingDebriefs is a parsable slice of MeetingDebrief.
type MeetingDebriefs []*MeetingDebrief
