package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BuildSpec holds the schema definition for the BuildSpec entity.
// A spec is frozen once a run starts: every field is immutable.
type BuildSpec struct {
	ent.Schema
}

// Fields of the BuildSpec.
func (BuildSpec) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("spec_id").
			Unique().
			Immutable(),
		field.String("tenant").
			Immutable(),
		field.Text("source").
			Immutable().
			Comment("Freeform text, structured DSL, or imported ERD/OpenAPI/CSV"),
		field.Enum("source_kind").
			Values("text", "dsl", "erd", "openapi", "csv").
			Default("text").
			Immutable(),
		field.Enum("sla_class").
			Values("fast", "normal", "thorough").
			Default("normal").
			Immutable(),
		field.Bool("review_required").
			Default(false).
			Immutable(),
		field.Int("max_iters").
			Immutable(),
		field.Int("token_budget").
			Immutable(),
		field.Float("cost_limit_usd").
			Immutable(),
		field.Int("wall_time_s").
			Immutable(),
		field.JSON("acceptance", []map[string]interface{}{}).
			Optional().
			Immutable().
			Comment("Run-specific acceptance criteria appended to the golden suite"),
		field.JSON("kpi_guards", map[string]interface{}{}).
			Optional().
			Immutable().
			Comment("pass_rate / p95_latency / cost thresholds"),
		field.JSON("domain_tags", []string{}).
			Optional().
			Immutable().
			Comment("Keys into the golden suite"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the BuildSpec.
func (BuildSpec) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("runs", Run.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the BuildSpec.
func (BuildSpec) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant"),
	}
}
