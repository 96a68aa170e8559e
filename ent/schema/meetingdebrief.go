package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MeetingDebrief holds the schema definition for the MeetingDebrief entity.
// One debrief prompt per (user, meeting); the unique pair keeps the
// debrief-prompt job from nagging twice about the same meeting.
type MeetingDebrief struct {
	ent.Schema
}

// Annotations of the MeetingDebrief.
func (MeetingDebrief) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "meeting_debriefs"},
	}
}

// Fields of the MeetingDebrief.
func (MeetingDebrief) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("debrief_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("meeting_id").
			Immutable(),
		field.String("meeting_title"),
		field.Time("prompted_at").
			Default(time.Now),
		field.Bool("completed").
			Default(false),
		field.Text("notes").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the MeetingDebrief.
func (MeetingDebrief) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "meeting_id").
			Unique(),
		index.Fields("user_id", "completed"),
	}
}
