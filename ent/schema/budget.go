package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Budget holds the schema definition for the Budget entity: the cost,
// time, and attempt envelope of a single run. One row per run.
type Budget struct {
	ent.Schema
}

// Fields of the Budget.
func (Budget) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("budget_id").
			Unique().
			Immutable(),
		field.String("tenant").
			Immutable(),
		field.String("run_id").
			Unique().
			Immutable(),
		field.Float("cost_limit_usd").
			Immutable(),
		field.Float("cost_used_usd").
			Default(0),
		field.Int("time_limit_s").
			Immutable(),
		field.Int("time_used_s").
			Default(0),
		field.Int("attempt_limit").
			Immutable(),
		field.Int("attempt_used").
			Default(0),
		field.Time("exceeded_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Budget.
func (Budget) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("budget").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Budget.
func (Budget) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant"),
	}
}
