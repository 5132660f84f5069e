package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Step holds the schema definition for the Step entity: one agent
// invocation. Step rows double as queue tasks — the queued/leased state
// plus the queue column make a step eligible for worker claim. Rows are
// append-only except state/lease/attempts, which move through the state
// machine with compare-and-set semantics.
type Step struct {
	ent.Schema
}

// Fields of the Step.
func (Step) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("step_id").
			Unique().
			Immutable(),
		field.String("tenant").
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.Int("iteration").
			Immutable(),
		field.Enum("agent_role").
			Values("product_architect", "system_designer", "security_compliance",
				"codegen_engineer", "qa_evaluator", "auto_fixer", "devops", "reviewer").
			Immutable(),
		field.Enum("queue").
			Values("cpu", "io", "llm", "high", "low").
			Comment("Queue class after scheduler routing"),
		field.Int("priority").
			Default(0).
			Comment("Higher is claimed first within a queue"),
		field.Enum("state").
			Values("queued", "leased", "running", "succeeded", "failed", "skipped").
			Default("queued"),
		field.String("idempotency_key").
			Unique().
			Immutable().
			Comment("hash(run_id, iteration, role, input_digest)"),
		field.String("input_digest").
			Immutable(),
		field.String("input_ref").
			Immutable().
			Comment("Blob ref of the agent input"),
		field.String("output_ref").
			Optional().
			Nillable(),
		field.Int("attempts").
			Default(0),
		field.Enum("model_tier").
			Values("small", "medium", "large").
			Optional().
			Nillable().
			Comment("Tier picked at dispatch (LLM roles only)"),
		field.Float("est_cost_usd").
			Default(0),
		field.Int("tokens_in").
			Default(0),
		field.Int("tokens_out").
			Default(0),
		field.Float("cost_usd").
			Default(0),
		field.Time("not_before").
			Optional().
			Nillable().
			Comment("Delayed requeue target for retry backoff"),
		field.Time("lease_expires_at").
			Optional().
			Nillable(),
		field.String("worker_id").
			Optional().
			Nillable(),
		field.Bool("tombstoned").
			Default(false).
			Comment("Cancellation marker observed at lease/heartbeat boundaries"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Step.
func (Step) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("steps").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
		edge.To("failures", Failure.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("lease", QueueLease.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Step.
func (Step) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant"),
		index.Fields("run_id", "iteration"),
		// Claim scan: eligible tasks per queue in priority/FIFO order.
		index.Fields("queue", "state", "priority", "created_at"),
		index.Fields("state", "lease_expires_at"),
	}
}
