package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MarketSignal holds the schema definition for the MarketSignal entity.
// Output of the signal-scan job. The (user_id, headline) pair is the
// idempotency key: re-running a scan never stores the same headline twice.
type MarketSignal struct {
	ent.Schema
}

// Annotations of the MarketSignal.
func (MarketSignal) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "market_signals"},
	}
}

// Fields of the MarketSignal.
func (MarketSignal) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("signal_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("entity").
			Comment("Tracked subject the signal is about"),
		field.String("headline"),
		field.Text("summary").
			Optional(),
		field.String("source").
			Optional().
			Nillable(),
		field.Float("relevance").
			Default(0).
			Comment("0..1; drives delivery priority"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the MarketSignal.
func (MarketSignal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "headline").
			Unique(),
		index.Fields("user_id", "created_at"),
	}
}
