package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Goal holds the schema definition for the Goal entity.
// The core only cares about the stable identifier and the completion
// transition (which clears the goal's retry counter); domain attributes
// live in metadata.
type Goal struct {
	ent.Schema
}

// Annotations of the Goal.
func (Goal) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "goals"},
	}
}

// Fields of the Goal.
func (Goal) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("goal_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("title"),
		field.Enum("status").
			Values("active", "completed", "abandoned").
			Default("active"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Goal.
func (Goal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "status"),
	}
}
