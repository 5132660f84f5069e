// Code generated by ent, DO NOT EDIT.

package canarysample

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/forgeworks/metabuild/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldContainsFold(FieldID, id))
}

// Tenant applies equality check predicate on the "tenant" field. It's identical to TenantEQ.
func Tenant(v string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldEQ(FieldTenant, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldEQ(FieldRunID, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldEQ(FieldSuccess, v))
}

// CostUsd applies equality check predicate on the "cost_usd" field. It's identical to CostUsdEQ.
func CostUsd(v float64) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldEQ(FieldCostUsd, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldEQ(FieldDurationMs, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldEQ(FieldRetryCount, v))
}

// ReplanCount applies equality check predicate on the "replan_count" field. It's identical to ReplanCountEQ.
func ReplanCount(v int) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldEQ(FieldReplanCount, v))
}

// RollbackCount applies equality check predicate on the "rollback_count" field. It's identical to RollbackCountEQ.
func RollbackCount(v int) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldEQ(FieldRollbackCount, v))
}

// RecordedAt applies equality check predicate on the "recorded_at" field. It's identical to RecordedAtEQ.
func RecordedAt(v time.Time) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldEQ(FieldRecordedAt, v))
}

// TenantEQ applies the EQ predicate on the "tenant" field.
func TenantEQ(v string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldEQ(FieldTenant, v))
}

// TenantNEQ applies the NEQ predicate on the "tenant" field.
func TenantNEQ(v string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldNEQ(FieldTenant, v))
}

// TenantIn applies the In predicate on the "tenant" field.
func TenantIn(vs ...string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldIn(FieldTenant, vs...))
}

// TenantNotIn applies the NotIn predicate on the "tenant" field.
func TenantNotIn(vs ...string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldNotIn(FieldTenant, vs...))
}

// TenantGT applies the GT predicate on the "tenant" field.
func TenantGT(v string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldGT(FieldTenant, v))
}

// TenantGTE applies the GTE predicate on the "tenant" field.
func TenantGTE(v string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldGTE(FieldTenant, v))
}

// TenantLT applies the LT predicate on the "tenant" field.
func TenantLT(v string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldLT(FieldTenant, v))
}

// TenantLTE applies the LTE predicate on the "tenant" field.
func TenantLTE(v string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldLTE(FieldTenant, v))
}

// TenantContains applies the Contains predicate on the "tenant" field.
func TenantContains(v string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldContains(FieldTenant, v))
}

// TenantHasPrefix applies the HasPrefix predicate on the "tenant" field.
func TenantHasPrefix(v string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldHasPrefix(FieldTenant, v))
}

// TenantHasSuffix applies the HasSuffix predicate on the "tenant" field.
func TenantHasSuffix(v string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldHasSuffix(FieldTenant, v))
}

// TenantEqualFold applies the EqualFold predicate on the "tenant" field.
func TenantEqualFold(v string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldEqualFold(FieldTenant, v))
}

// TenantContainsFold applies the ContainsFold predicate on the "tenant" field.
func TenantContainsFold(v string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldContainsFold(FieldTenant, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldContainsFold(FieldRunID, v))
}

// GroupEQ applies the EQ predicate on the "group" field.
func GroupEQ(v Group) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldEQ(FieldGroup, v))
}

// GroupNEQ applies the NEQ predicate on the "group" field.
func GroupNEQ(v Group) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldNEQ(FieldGroup, v))
}

// GroupIn applies the In predicate on the "group" field.
func GroupIn(vs ...Group) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldIn(FieldGroup, vs...))
}

// GroupNotIn applies the NotIn predicate on the "group" field.
func GroupNotIn(vs ...Group) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldNotIn(FieldGroup, vs...))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldNEQ(FieldSuccess, v))
}

// CostUsdEQ applies the EQ predicate on the "cost_usd" field.
func CostUsdEQ(v float64) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldEQ(FieldCostUsd, v))
}

// CostUsdNEQ applies the NEQ predicate on the "cost_usd" field.
func CostUsdNEQ(v float64) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldNEQ(FieldCostUsd, v))
}

// CostUsdIn applies the In predicate on the "cost_usd" field.
func CostUsdIn(vs ...float64) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldIn(FieldCostUsd, vs...))
}

// CostUsdNotIn applies the NotIn predicate on the "cost_usd" field.
func CostUsdNotIn(vs ...float64) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldNotIn(FieldCostUsd, vs...))
}

// CostUsdGT applies the GT predicate on the "cost_usd" field.
func CostUsdGT(v float64) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldGT(FieldCostUsd, v))
}

// CostUsdGTE applies the GTE predicate on the "cost_usd" field.
func CostUsdGTE(v float64) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldGTE(FieldCostUsd, v))
}

// CostUsdLT applies the LT predicate on the "cost_usd" field.
func CostUsdLT(v float64) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldLT(FieldCostUsd, v))
}

// CostUsdLTE applies the LTE predicate on the "cost_usd" field.
func CostUsdLTE(v float64) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldLTE(FieldCostUsd, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldLTE(FieldDurationMs, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldLTE(FieldRetryCount, v))
}

// ReplanCountEQ applies the EQ predicate on the "replan_count" field.
func ReplanCountEQ(v int) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldEQ(FieldReplanCount, v))
}

// ReplanCountNEQ applies the NEQ predicate on the "replan_count" field.
func ReplanCountNEQ(v int) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldNEQ(FieldReplanCount, v))
}

// ReplanCountIn applies the In predicate on the "replan_count" field.
func ReplanCountIn(vs ...int) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldIn(FieldReplanCount, vs...))
}

// ReplanCountNotIn applies the NotIn predicate on the "replan_count" field.
func ReplanCountNotIn(vs ...int) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldNotIn(FieldReplanCount, vs...))
}

// ReplanCountGT applies the GT predicate on the "replan_count" field.
func ReplanCountGT(v int) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldGT(FieldReplanCount, v))
}

// ReplanCountGTE applies the GTE predicate on the "replan_count" field.
func ReplanCountGTE(v int) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldGTE(FieldReplanCount, v))
}

// ReplanCountLT applies the LT predicate on the "replan_count" field.
func ReplanCountLT(v int) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldLT(FieldReplanCount, v))
}

// ReplanCountLTE applies the LTE predicate on the "replan_count" field.
func ReplanCountLTE(v int) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldLTE(FieldReplanCount, v))
}

// RollbackCountEQ applies the EQ predicate on the "rollback_count" field.
func RollbackCountEQ(v int) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldEQ(FieldRollbackCount, v))
}

// RollbackCountNEQ applies the NEQ predicate on the "rollback_count" field.
func RollbackCountNEQ(v int) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldNEQ(FieldRollbackCount, v))
}

// RollbackCountIn applies the In predicate on the "rollback_count" field.
func RollbackCountIn(vs ...int) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldIn(FieldRollbackCount, vs...))
}

// RollbackCountNotIn applies the NotIn predicate on the "rollback_count" field.
func RollbackCountNotIn(vs ...int) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldNotIn(FieldRollbackCount, vs...))
}

// RollbackCountGT applies the GT predicate on the "rollback_count" field.
func RollbackCountGT(v int) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldGT(FieldRollbackCount, v))
}

// RollbackCountGTE applies the GTE predicate on the "rollback_count" field.
func RollbackCountGTE(v int) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldGTE(FieldRollbackCount, v))
}

// RollbackCountLT applies the LT predicate on the "rollback_count" field.
func RollbackCountLT(v int) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldLT(FieldRollbackCount, v))
}

// RollbackCountLTE applies the LTE predicate on the "rollback_count" field.
func RollbackCountLTE(v int) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldLTE(FieldRollbackCount, v))
}

// RecordedAtEQ applies the EQ predicate on the "recorded_at" field.
func RecordedAtEQ(v time.Time) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldEQ(FieldRecordedAt, v))
}

// RecordedAtNEQ applies the NEQ predicate on the "recorded_at" field.
func RecordedAtNEQ(v time.Time) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldNEQ(FieldRecordedAt, v))
}

// RecordedAtIn applies the In predicate on the "recorded_at" field.
func RecordedAtIn(vs ...time.Time) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldIn(FieldRecordedAt, vs...))
}

// RecordedAtNotIn applies the NotIn predicate on the "recorded_at" field.
func RecordedAtNotIn(vs ...time.Time) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldNotIn(FieldRecordedAt, vs...))
}

// RecordedAtGT applies the GT predicate on the "recorded_at" field.
func RecordedAtGT(v time.Time) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldGT(FieldRecordedAt, v))
}

// RecordedAtGTE applies the GTE predicate on the "recorded_at" field.
func RecordedAtGTE(v time.Time) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldGTE(FieldRecordedAt, v))
}

// RecordedAtLT applies the LT predicate on the "recorded_at" field.
func RecordedAtLT(v time.Time) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldLT(FieldRecordedAt, v))
}

// RecordedAtLTE applies the LTE predicate on the "recorded_at" field.
func RecordedAtLTE(v time.Time) predicate.CanarySample {
	return predicate.CanarySample(sql.FieldLTE(FieldRecordedAt, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.CanarySample {
	return predicate.CanarySample(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.Run) predicate.CanarySample {
	return predicate.CanarySample(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CanarySample) predicate.CanarySample {
	return predicate.CanarySample(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CanarySample) predicate.CanarySample {
	return predicate.CanarySample(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CanarySample) predicate.CanarySample {
	return predicate.CanarySample(sql.NotPredicates(p))
}
