package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Failure holds the schema definition for the Failure entity: one
// classified failure of a step. A failed step may carry several.
type Failure struct {
	ent.Schema
}

// Fields of the Failure.
func (Failure) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("failure_id").
			Unique().
			Immutable(),
		field.String("tenant").
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("step_id").
			Immutable(),
		field.Enum("class").
			Values("transient", "infra", "test_assert", "lint", "type_check",
				"security", "policy", "runtime", "schema_migration", "rate_limit",
				"unknown").
			Immutable(),
		field.Float("confidence").
			Immutable().
			Comment("Classifier confidence in [0,1]"),
		field.Text("log_excerpt").
			Immutable().
			Comment("Secret-masked before persistence"),
		field.Bool("retryable").
			Immutable(),
		field.Bool("requires_replan").
			Default(false).
			Immutable(),
		field.Bool("requires_human").
			Default(false).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Failure.
func (Failure) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("failures").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
		edge.From("step", Step.Type).
			Ref("failures").
			Field("step_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Failure.
func (Failure) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant", "class", "created_at"),
		index.Fields("run_id"),
		index.Fields("step_id"),
	}
}
