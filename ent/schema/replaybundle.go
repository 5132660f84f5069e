package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReplayBundle holds the schema definition for the ReplayBundle entity:
// the deterministic record of every external call in a run. Written only
// on terminal failure to bound storage.
type ReplayBundle struct {
	ent.Schema
}

// Fields of the ReplayBundle.
func (ReplayBundle) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("bundle_id").
			Unique().
			Immutable(),
		field.String("tenant").
			Immutable(),
		field.String("run_id").
			Unique().
			Immutable(),
		field.String("bundle_hash").
			Immutable().
			Comment("sha256 over the canonical record concatenation"),
		field.String("storage_ref").
			Immutable().
			Comment("Blob ref of the serialized bundle"),
		field.Bool("replayed_ok").
			Optional().
			Nillable().
			Comment("Set after a deterministic re-run verifies the bundle"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ReplayBundle.
func (ReplayBundle) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("replay_bundle").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ReplayBundle.
func (ReplayBundle) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant"),
	}
}
