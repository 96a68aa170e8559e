// Code generated by ent, DO NOT EDIT.

package meetingdebrief

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the meetingdebrief type in the database.
	Label = "meeting_debrief"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "debrief_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldMeetingID holds the string denoting the meeting_id field in the database.
	FieldMeetingID = "meeting_id"
	// FieldMeetingTitle holds the string denoting the meeting_title field in the database.
	FieldMeetingTitle = "meeting_title"
	// FieldPromptedAt holds the string denoting the prompted_at field in the database.
	FieldPromptedAt = "prompted_at"
	// FieldCompleted holds the string denoting the completed field in the database.
	FieldCompleted = "completed"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the meetingdebrief in the database.
	Table = "meeting_debriefs"
)

// Columns holds all SQL columns for meetingdebrief fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldMeetingID,
	FieldMeetingTitle,
	FieldPromptedAt,
	FieldCompleted,
	FieldNotes,
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
	// DefaultPromptedAt holds the default value on creation for the "prompted_at" field.
	DefaultPromptedAt func() time.Time
	// DefaultCompleted holds the default value on creation for the "completed" field.
	DefaultCompleted bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the MeetingDebrief queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByMeetingID orders the results by the meeting_id field.
func ByMeetingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeetingID, opts...).ToFunc()
}

// ByMeetingTitle orders the results by the meeting_title field.
func ByMeetingTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeetingTitle, opts...).ToFunc()
}

// ByPromptedAt orders the results by the prompted_at field.
func ByPromptedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptedAt, opts...).ToFunc()
}

// ByCompleted orders the results by the completed field.
func ByCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompleted, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
