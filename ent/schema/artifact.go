package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Artifact holds the schema definition for the Artifact entity. Artifacts
// are immutable; a new version gets a new row.
type Artifact struct {
	ent.Schema
}

// Fields of the Artifact.
func (Artifact) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("artifact_id").
			Unique().
			Immutable(),
		field.String("tenant").
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.Int("iteration").
			Immutable(),
		field.Enum("kind").
			Values("plan", "diff", "eval_report", "bundle_zip", "pr_body", "replay_bundle").
			Immutable(),
		field.String("storage_ref").
			Immutable().
			Comment("Content-addressed blob ref"),
		field.String("sha256").
			Immutable(),
		field.Int64("bytes").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Artifact.
func (Artifact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("artifacts").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Artifact.
func (Artifact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant"),
		index.Fields("run_id", "kind", "created_at"),
	}
}
