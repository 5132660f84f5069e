package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TimelineEvent holds the schema definition for the TimelineEvent entity:
// the ordered step/failure/repair/state history of a run, served by the
// timeline endpoint.
type TimelineEvent struct {
	ent.Schema
}

// Fields of the TimelineEvent.
func (TimelineEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("tenant").
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("kind").
			Immutable().
			Comment("state_change | step_queued | step_succeeded | step_failed | failure | repair | approval | canary"),
		field.String("message").
			Immutable(),
		field.String("step_id").
			Optional().
			Nillable().
			Immutable(),
		field.JSON("details", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TimelineEvent.
func (TimelineEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("timeline_events").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TimelineEvent.
func (TimelineEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant"),
		index.Fields("run_id", "created_at"),
	}
}
