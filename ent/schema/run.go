package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Run holds the schema definition for the Run entity: one pass of the
// orchestrator over a spec. Mutated only by the state machine, always
// through compare-and-set updates on the state column.
type Run struct {
	ent.Schema
}

// Fields of the Run.
func (Run) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("tenant").
			Immutable(),
		field.String("spec_id").
			Immutable(),
		field.Enum("state").
			Values("draft", "planning", "designing", "generating", "evaluating",
				"repairing", "rolling_back", "paused_awaiting_approval",
				"succeeded", "failed", "cancelled").
			Default("draft"),
		field.Int("iteration").
			Default(1).
			Comment("1-indexed plan→generate→evaluate cycle counter"),
		field.Int("tokens_used").
			Default(0),
		field.Float("cost_used_usd").
			Default(0),
		field.Enum("canary_group").
			Values("control", "experimental").
			Default("control").
			Immutable().
			Comment("Sticky per-run A/B assignment"),
		field.String("paused_state").
			Optional().
			Nillable().
			Comment("State to resume to after approval"),
		field.Int("last_green_iteration").
			Optional().
			Nillable().
			Comment("Last iteration whose evaluation passed (rollback target)"),
		field.String("terminal_reason").
			Optional().
			Nillable(),
		field.Int("patch_streak").
			Default(0).
			Comment("Consecutive failed patch attempts (replan trigger)"),
		field.String("replan_scope").
			Optional().
			Nillable().
			Comment("Comma-separated failing modules for the next generate"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the Run.
func (Run) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("spec", BuildSpec.Type).
			Ref("runs").
			Field("spec_id").
			Unique().
			Required().
			Immutable(),
		edge.To("steps", Step.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("failures", Failure.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("repair_attempts", RepairAttempt.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("artifacts", Artifact.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("approval_gates", ApprovalGate.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("budget", Budget.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("timeline_events", TimelineEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("replay_bundle", ReplayBundle.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("canary_sample", CanarySample.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Run.
func (Run) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant"),
		index.Fields("state"),
		index.Fields("state", "created_at"),
		index.Fields("canary_group"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
