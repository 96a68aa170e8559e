package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UsageRecord holds the schema definition for the UsageRecord entity.
// One row per (user, calendar date) in the storage timezone (UTC).
// Counters only ever increase; rows are created on the first LLM call of
// the day via the upsert-and-add path in UsageService.
type UsageRecord struct {
	ent.Schema
}

// Annotations of the UsageRecord.
func (UsageRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "usage_tracking"},
	}
}

// Fields of the UsageRecord.
func (UsageRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Immutable(),
		field.String("day").
			StorageKey("usage_date").
			Immutable().
			Comment("Calendar date, YYYY-MM-DD, UTC"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int("thinking_tokens").
			StorageKey("extended_thinking_tokens").
			Default(0),
		field.Int("cache_read_tokens").
			Default(0),
		field.Int("cache_creation_tokens").
			Default(0),
		field.Int("estimated_cost_cents").
			Default(0),
		field.Int("request_count").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the UsageRecord.
func (UsageRecord) Indexes() []ent.Index {
	return []ent.Index{
		// Natural key: one row per user per day
		index.Fields("user_id", "day").
			Unique(),
	}
}
