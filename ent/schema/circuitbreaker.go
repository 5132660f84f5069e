package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CircuitBreaker holds the schema definition for the CircuitBreaker
// entity: one switch per (tenant, failure class). Transitions are
// monotonic per cooldown cycle: closed → open → half_open → {closed,open}.
// All mutation goes through CAS on the state column.
type CircuitBreaker struct {
	ent.Schema
}

// Fields of the CircuitBreaker.
func (CircuitBreaker) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("breaker_id").
			Unique().
			Immutable(),
		field.String("tenant").
			Immutable(),
		field.Enum("failure_class").
			Values("transient", "infra", "test_assert", "lint", "type_check",
				"security", "policy", "runtime", "schema_migration", "rate_limit",
				"unknown").
			Immutable(),
		field.Enum("state").
			Values("closed", "open", "half_open").
			Default("closed"),
		field.Int("fail_count").
			Default(0).
			Comment("Failures within the current sliding window"),
		field.Int("threshold").
			Comment("Fail count that trips the breaker"),
		field.Time("window_start").
			Optional().
			Nillable(),
		field.Time("opened_at").
			Optional().
			Nillable(),
		field.Time("cooldown_until").
			Optional().
			Nillable(),
		field.Int("cooldown_s").
			Comment("Current cooldown; doubles on half_open failure, capped"),
	}
}

// Indexes of the CircuitBreaker.
func (CircuitBreaker) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant", "failure_class").
			Unique(),
		index.Fields("state"),
	}
}
