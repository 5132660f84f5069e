package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ApprovalGate holds the schema definition for the ApprovalGate entity.
// The run persists as paused until a decision flips the gate; gates never
// auto-expire (callers may cancel the run instead).
type ApprovalGate struct {
	ent.Schema
}

// Fields of the ApprovalGate.
func (ApprovalGate) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("gate_id").
			Unique().
			Immutable(),
		field.String("tenant").
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("reason").
			Immutable(),
		field.String("required_role").
			Immutable().
			Comment("Reviewer role demanded by policy"),
		field.Enum("decision").
			Values("pending", "approved", "rejected").
			Default("pending"),
		field.String("decider").
			Optional().
			Nillable(),
		field.Time("decided_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ApprovalGate.
func (ApprovalGate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("approval_gates").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ApprovalGate.
func (ApprovalGate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant"),
		index.Fields("run_id", "decision"),
		index.Fields("decision", "created_at"),
	}
}
