package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BriefingItem holds the schema definition for the BriefingItem entity.
// LOW-priority insights parked here until the next morning briefing drains them.
type BriefingItem struct {
	ent.Schema
}

// Annotations of the BriefingItem.
func (BriefingItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "briefing_queue"},
	}
}

// Fields of the BriefingItem.
func (BriefingItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("item_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("category"),
		field.String("title"),
		field.Text("message"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Bool("consumed").
			Default(false).
			Comment("Transitions false -> true exactly once, on digest drain"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the BriefingItem.
func (BriefingItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "consumed", "created_at"),
	}
}
