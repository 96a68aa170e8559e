package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Notification holds the schema definition for the Notification entity.
// Persistent user-facing notifications; also the lookup table for the
// one-hour delivery dedup window on (user_id, type, title).
type Notification struct {
	ent.Schema
}

// Annotations of the Notification.
func (Notification) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "notifications"},
	}
}

// Fields of the Notification.
func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("notification_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("type").
			Comment("Notification type, e.g. SIGNAL_DETECTED"),
		field.String("title"),
		field.Text("message"),
		field.String("link").
			Optional().
			Nillable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("read_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Notification.
func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		// Inbox listing
		index.Fields("user_id", "created_at"),
		// Dedup window lookup
		index.Fields("user_id", "type", "title", "created_at"),
	}
}
