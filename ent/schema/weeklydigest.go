package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WeeklyDigest holds the schema definition for the WeeklyDigest entity.
// One digest per user per week; (user_id, week_start) is the idempotency
// marker consulted before the digest job writes.
type WeeklyDigest struct {
	ent.Schema
}

// Annotations of the WeeklyDigest.
func (WeeklyDigest) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "weekly_digests"},
	}
}

// Fields of the WeeklyDigest.
func (WeeklyDigest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("digest_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("week_start").
			Immutable().
			Comment("Monday of the covered week, YYYY-MM-DD, user-local"),
		field.Text("content"),
		field.Int("item_count").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the WeeklyDigest.
func (WeeklyDigest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "week_start").
			Unique(),
	}
}
