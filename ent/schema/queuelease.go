package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QueueLease holds the schema definition for the QueueLease entity. A
// live lease is a row whose expires_at is in the future; releases delete
// the row, so a step has exactly one live lease or none.
type QueueLease struct {
	ent.Schema
}

// Fields of the QueueLease.
func (QueueLease) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("lease_id").
			Unique().
			Immutable(),
		field.String("tenant").
			Immutable(),
		field.String("worker_id").
			Immutable(),
		field.Enum("queue").
			Values("cpu", "io", "llm", "high", "low").
			Immutable(),
		field.String("step_id").
			Unique().
			Immutable(),
		field.Time("acquired_at").
			Default(time.Now).
			Immutable(),
		field.Time("expires_at").
			Comment("Extended by heartbeat; only monotonically forward"),
		field.Time("last_heartbeat"),
	}
}

// Edges of the QueueLease.
func (QueueLease) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("step", Step.Type).
			Ref("lease").
			Field("step_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the QueueLease.
func (QueueLease) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant"),
		index.Fields("worker_id"),
		index.Fields("expires_at"),
	}
}
