package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
// One row per platform user; owns budgets, timezone, and tracked entities.
type User struct {
	ent.Schema
}

// Annotations of the User.
func (User) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "users"},
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_id").
			Unique().
			Immutable(),
		field.String("email").
			Optional().
			Nillable(),
		field.String("display_name").
			Optional().
			Nillable(),
		field.String("timezone").
			Default("UTC").
			Comment("IANA zone name; business-hours gating"),
		field.Bool("onboarded").
			Default(false).
			Comment("Only onboarded users are visited by background jobs"),
		field.Int("daily_token_budget").
			Default(0).
			Comment("0 = use deployment default"),
		field.Int("daily_thinking_budget").
			Default(0),
		field.JSON("tracked_competitors", []string{}).
			Optional(),
		field.JSON("connected_integrations", []string{}).
			Optional(),
		field.JSON("writing_style", map[string]interface{}{}).
			Optional().
			Comment("Opaque style fingerprint used by the scribe agent"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("conversations", Conversation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("onboarded"),
	}
}
