package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Commitment holds the schema definition for the Commitment entity.
// Promises the user made to contacts ("send the deck by Friday"); the
// overdue-commitment sweep nudges once per commitment via nudged_at.
type Commitment struct {
	ent.Schema
}

// Annotations of the Commitment.
func (Commitment) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "commitments"},
	}
}

// Fields of the Commitment.
func (Commitment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("commitment_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Text("description"),
		field.String("contact").
			Optional().
			Nillable(),
		field.Time("due_at"),
		field.Bool("completed").
			Default(false),
		field.Time("nudged_at").
			Optional().
			Nillable().
			Comment("Set when the sweep has already surfaced this commitment"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Commitment.
func (Commitment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "completed", "due_at"),
	}
}
