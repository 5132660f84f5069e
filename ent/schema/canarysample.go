package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CanarySample holds the schema definition for the CanarySample entity:
// terminal metrics of a run, written once at terminal time and consumed
// by the canary evaluator's rolling window.
type CanarySample struct {
	ent.Schema
}

// Fields of the CanarySample.
func (CanarySample) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("sample_id").
			Unique().
			Immutable(),
		field.String("tenant").
			Immutable(),
		field.String("run_id").
			Unique().
			Immutable(),
		field.Enum("group").
			Values("control", "experimental").
			Immutable(),
		field.Bool("success").
			Immutable(),
		field.Float("cost_usd").
			Immutable(),
		field.Int64("duration_ms").
			Immutable(),
		field.Int("retry_count").
			Immutable(),
		field.Int("replan_count").
			Immutable(),
		field.Int("rollback_count").
			Immutable(),
		field.Time("recorded_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the CanarySample.
func (CanarySample) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("canary_sample").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CanarySample.
func (CanarySample) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant"),
		index.Fields("group", "recorded_at"),
	}
}
