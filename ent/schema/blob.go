package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Blob holds the schema definition for the Blob entity: content-addressed
// bytes behind the BlobStore interface. The id IS the sha256 of the data,
// so writes of identical content are idempotent.
type Blob struct {
	ent.Schema
}

// Fields of the Blob.
func (Blob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("sha256").
			Unique().
			Immutable(),
		field.String("tenant").
			Immutable(),
		field.Bytes("data").
			Immutable(),
		field.Int64("size").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Blob.
func (Blob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant"),
	}
}
