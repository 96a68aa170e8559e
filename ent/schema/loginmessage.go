package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LoginMessage holds the schema definition for the LoginMessage entity.
// HIGH-priority insights that arrived while the user was offline; replayed
// into the conversation on the next chat session handshake.
type LoginMessage struct {
	ent.Schema
}

// Annotations of the LoginMessage.
func (LoginMessage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "login_message_queue"},
	}
}

// Fields of the LoginMessage.
func (LoginMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("category"),
		field.String("title"),
		field.Text("message"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Bool("delivered").
			Default(false).
			Comment("Marked true after replay on session handshake"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the LoginMessage.
func (LoginMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "delivered", "created_at"),
	}
}
