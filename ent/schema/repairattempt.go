package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RepairAttempt holds the schema definition for the RepairAttempt entity:
// one rung of the repair ladder taken for a failure.
type RepairAttempt struct {
	ent.Schema
}

// Fields of the RepairAttempt.
func (RepairAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("repair_id").
			Unique().
			Immutable(),
		field.String("tenant").
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("failure_id").
			Immutable(),
		field.Enum("phase").
			Values("retry", "patch", "replan", "rollback").
			Immutable(),
		field.String("strategy").
			Immutable().
			Comment("e.g. 'backoff', 'constrained_diff', 'scoped_replan'"),
		field.Enum("outcome").
			Values("pending", "succeeded", "failed").
			Default("pending"),
		field.Int("backoff_used_ms").
			Default(0),
		field.String("diff_ref").
			Optional().
			Nillable().
			Comment("Blob ref of the patch diff (patch phase only)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the RepairAttempt.
func (RepairAttempt) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("repair_attempts").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RepairAttempt.
func (RepairAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant"),
		index.Fields("run_id", "created_at"),
		index.Fields("failure_id"),
	}
}
