// Code generated by ent, DO NOT EDIT.

package budget

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/forgeworks/metabuild/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Budget {
	return predicate.Budget(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Budget {
	return predicate.Budget(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Budget {
	return predicate.Budget(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Budget {
	return predicate.Budget(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Budget {
	return predicate.Budget(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Budget {
	return predicate.Budget(sql.FieldContainsFold(FieldID, id))
}

// Tenant applies equality check predicate on the "tenant" field. It's identical to TenantEQ.
func Tenant(v string) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldTenant, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldRunID, v))
}

// CostLimitUsd applies equality check predicate on the "cost_limit_usd" field. It's identical to CostLimitUsdEQ.
func CostLimitUsd(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldCostLimitUsd, v))
}

// CostUsedUsd applies equality check predicate on the "cost_used_usd" field. It's identical to CostUsedUsdEQ.
func CostUsedUsd(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldCostUsedUsd, v))
}

// TimeLimitS applies equality check predicate on the "time_limit_s" field. It's identical to TimeLimitSEQ.
func TimeLimitS(v int) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldTimeLimitS, v))
}

// TimeUsedS applies equality check predicate on the "time_used_s" field. It's identical to TimeUsedSEQ.
func TimeUsedS(v int) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldTimeUsedS, v))
}

// AttemptLimit applies equality check predicate on the "attempt_limit" field. It's identical to AttemptLimitEQ.
func AttemptLimit(v int) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldAttemptLimit, v))
}

// AttemptUsed applies equality check predicate on the "attempt_used" field. It's identical to AttemptUsedEQ.
func AttemptUsed(v int) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldAttemptUsed, v))
}

// ExceededAt applies equality check predicate on the "exceeded_at" field. It's identical to ExceededAtEQ.
func ExceededAt(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldExceededAt, v))
}

// TenantEQ applies the EQ predicate on the "tenant" field.
func TenantEQ(v string) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldTenant, v))
}

// TenantNEQ applies the NEQ predicate on the "tenant" field.
func TenantNEQ(v string) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldTenant, v))
}

// TenantIn applies the In predicate on the "tenant" field.
func TenantIn(vs ...string) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldTenant, vs...))
}

// TenantNotIn applies the NotIn predicate on the "tenant" field.
func TenantNotIn(vs ...string) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldTenant, vs...))
}

// TenantGT applies the GT predicate on the "tenant" field.
func TenantGT(v string) predicate.Budget {
	return predicate.Budget(sql.FieldGT(FieldTenant, v))
}

// TenantGTE applies the GTE predicate on the "tenant" field.
func TenantGTE(v string) predicate.Budget {
	return predicate.Budget(sql.FieldGTE(FieldTenant, v))
}

// TenantLT applies the LT predicate on the "tenant" field.
func TenantLT(v string) predicate.Budget {
	return predicate.Budget(sql.FieldLT(FieldTenant, v))
}

// TenantLTE applies the LTE predicate on the "tenant" field.
func TenantLTE(v string) predicate.Budget {
	return predicate.Budget(sql.FieldLTE(FieldTenant, v))
}

// TenantContains applies the Contains predicate on the "tenant" field.
func TenantContains(v string) predicate.Budget {
	return predicate.Budget(sql.FieldContains(FieldTenant, v))
}

// TenantHasPrefix applies the HasPrefix predicate on the "tenant" field.
func TenantHasPrefix(v string) predicate.Budget {
	return predicate.Budget(sql.FieldHasPrefix(FieldTenant, v))
}

// TenantHasSuffix applies the HasSuffix predicate on the "tenant" field.
func TenantHasSuffix(v string) predicate.Budget {
	return predicate.Budget(sql.FieldHasSuffix(FieldTenant, v))
}

// TenantEqualFold applies the EqualFold predicate on the "tenant" field.
func TenantEqualFold(v string) predicate.Budget {
	return predicate.Budget(sql.FieldEqualFold(FieldTenant, v))
}

// TenantContainsFold applies the ContainsFold predicate on the "tenant" field.
func TenantContainsFold(v string) predicate.Budget {
	return predicate.Budget(sql.FieldContainsFold(FieldTenant, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.Budget {
	return predicate.Budget(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.Budget {
	return predicate.Budget(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.Budget {
	return predicate.Budget(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.Budget {
	return predicate.Budget(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.Budget {
	return predicate.Budget(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.Budget {
	return predicate.Budget(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.Budget {
	return predicate.Budget(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.Budget {
	return predicate.Budget(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.Budget {
	return predicate.Budget(sql.FieldContainsFold(FieldRunID, v))
}

// CostLimitUsdEQ applies the EQ predicate on the "cost_limit_usd" field.
func CostLimitUsdEQ(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldCostLimitUsd, v))
}

// CostLimitUsdNEQ applies the NEQ predicate on the "cost_limit_usd" field.
func CostLimitUsdNEQ(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldCostLimitUsd, v))
}

// CostLimitUsdIn applies the In predicate on the "cost_limit_usd" field.
func CostLimitUsdIn(vs ...float64) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldCostLimitUsd, vs...))
}

// CostLimitUsdNotIn applies the NotIn predicate on the "cost_limit_usd" field.
func CostLimitUsdNotIn(vs ...float64) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldCostLimitUsd, vs...))
}

// CostLimitUsdGT applies the GT predicate on the "cost_limit_usd" field.
func CostLimitUsdGT(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldGT(FieldCostLimitUsd, v))
}

// CostLimitUsdGTE applies the GTE predicate on the "cost_limit_usd" field.
func CostLimitUsdGTE(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldGTE(FieldCostLimitUsd, v))
}

// CostLimitUsdLT applies the LT predicate on the "cost_limit_usd" field.
func CostLimitUsdLT(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldLT(FieldCostLimitUsd, v))
}

// CostLimitUsdLTE applies the LTE predicate on the "cost_limit_usd" field.
func CostLimitUsdLTE(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldLTE(FieldCostLimitUsd, v))
}

// CostUsedUsdEQ applies the EQ predicate on the "cost_used_usd" field.
func CostUsedUsdEQ(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldCostUsedUsd, v))
}

// CostUsedUsdNEQ applies the NEQ predicate on the "cost_used_usd" field.
func CostUsedUsdNEQ(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldCostUsedUsd, v))
}

// CostUsedUsdIn applies the In predicate on the "cost_used_usd" field.
func CostUsedUsdIn(vs ...float64) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldCostUsedUsd, vs...))
}

// CostUsedUsdNotIn applies the NotIn predicate on the "cost_used_usd" field.
func CostUsedUsdNotIn(vs ...float64) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldCostUsedUsd, vs...))
}

// CostUsedUsdGT applies the GT predicate on the "cost_used_usd" field.
func CostUsedUsdGT(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldGT(FieldCostUsedUsd, v))
}

// CostUsedUsdGTE applies the GTE predicate on the "cost_used_usd" field.
func CostUsedUsdGTE(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldGTE(FieldCostUsedUsd, v))
}

// CostUsedUsdLT applies the LT predicate on the "cost_used_usd" field.
func CostUsedUsdLT(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldLT(FieldCostUsedUsd, v))
}

// CostUsedUsdLTE applies the LTE predicate on the "cost_used_usd" field.
func CostUsedUsdLTE(v float64) predicate.Budget {
	return predicate.Budget(sql.FieldLTE(FieldCostUsedUsd, v))
}

// TimeLimitSEQ applies the EQ predicate on the "time_limit_s" field.
func TimeLimitSEQ(v int) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldTimeLimitS, v))
}

// TimeLimitSNEQ applies the NEQ predicate on the "time_limit_s" field.
func TimeLimitSNEQ(v int) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldTimeLimitS, v))
}

// TimeLimitSIn applies the In predicate on the "time_limit_s" field.
func TimeLimitSIn(vs ...int) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldTimeLimitS, vs...))
}

// TimeLimitSNotIn applies the NotIn predicate on the "time_limit_s" field.
func TimeLimitSNotIn(vs ...int) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldTimeLimitS, vs...))
}

// TimeLimitSGT applies the GT predicate on the "time_limit_s" field.
func TimeLimitSGT(v int) predicate.Budget {
	return predicate.Budget(sql.FieldGT(FieldTimeLimitS, v))
}

// TimeLimitSGTE applies the GTE predicate on the "time_limit_s" field.
func TimeLimitSGTE(v int) predicate.Budget {
	return predicate.Budget(sql.FieldGTE(FieldTimeLimitS, v))
}

// TimeLimitSLT applies the LT predicate on the "time_limit_s" field.
func TimeLimitSLT(v int) predicate.Budget {
	return predicate.Budget(sql.FieldLT(FieldTimeLimitS, v))
}

// TimeLimitSLTE applies the LTE predicate on the "time_limit_s" field.
func TimeLimitSLTE(v int) predicate.Budget {
	return predicate.Budget(sql.FieldLTE(FieldTimeLimitS, v))
}

// TimeUsedSEQ applies the EQ predicate on the "time_used_s" field.
func TimeUsedSEQ(v int) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldTimeUsedS, v))
}

// TimeUsedSNEQ applies the NEQ predicate on the "time_used_s" field.
func TimeUsedSNEQ(v int) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldTimeUsedS, v))
}

// TimeUsedSIn applies the In predicate on the "time_used_s" field.
func TimeUsedSIn(vs ...int) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldTimeUsedS, vs...))
}

// TimeUsedSNotIn applies the NotIn predicate on the "time_used_s" field.
func TimeUsedSNotIn(vs ...int) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldTimeUsedS, vs...))
}

// TimeUsedSGT applies the GT predicate on the "time_used_s" field.
func TimeUsedSGT(v int) predicate.Budget {
	return predicate.Budget(sql.FieldGT(FieldTimeUsedS, v))
}

// TimeUsedSGTE applies the GTE predicate on the "time_used_s" field.
func TimeUsedSGTE(v int) predicate.Budget {
	return predicate.Budget(sql.FieldGTE(FieldTimeUsedS, v))
}

// TimeUsedSLT applies the LT predicate on the "time_used_s" field.
func TimeUsedSLT(v int) predicate.Budget {
	return predicate.Budget(sql.FieldLT(FieldTimeUsedS, v))
}

// TimeUsedSLTE applies the LTE predicate on the "time_used_s" field.
func TimeUsedSLTE(v int) predicate.Budget {
	return predicate.Budget(sql.FieldLTE(FieldTimeUsedS, v))
}

// AttemptLimitEQ applies the EQ predicate on the "attempt_limit" field.
func AttemptLimitEQ(v int) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldAttemptLimit, v))
}

// AttemptLimitNEQ applies the NEQ predicate on the "attempt_limit" field.
func AttemptLimitNEQ(v int) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldAttemptLimit, v))
}

// AttemptLimitIn applies the In predicate on the "attempt_limit" field.
func AttemptLimitIn(vs ...int) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldAttemptLimit, vs...))
}

// AttemptLimitNotIn applies the NotIn predicate on the "attempt_limit" field.
func AttemptLimitNotIn(vs ...int) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldAttemptLimit, vs...))
}

// AttemptLimitGT applies the GT predicate on the "attempt_limit" field.
func AttemptLimitGT(v int) predicate.Budget {
	return predicate.Budget(sql.FieldGT(FieldAttemptLimit, v))
}

// AttemptLimitGTE applies the GTE predicate on the "attempt_limit" field.
func AttemptLimitGTE(v int) predicate.Budget {
	return predicate.Budget(sql.FieldGTE(FieldAttemptLimit, v))
}

// AttemptLimitLT applies the LT predicate on the "attempt_limit" field.
func AttemptLimitLT(v int) predicate.Budget {
	return predicate.Budget(sql.FieldLT(FieldAttemptLimit, v))
}

// AttemptLimitLTE applies the LTE predicate on the "attempt_limit" field.
func AttemptLimitLTE(v int) predicate.Budget {
	return predicate.Budget(sql.FieldLTE(FieldAttemptLimit, v))
}

// AttemptUsedEQ applies the EQ predicate on the "attempt_used" field.
func AttemptUsedEQ(v int) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldAttemptUsed, v))
}

// AttemptUsedNEQ applies the NEQ predicate on the "attempt_used" field.
func AttemptUsedNEQ(v int) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldAttemptUsed, v))
}

// AttemptUsedIn applies the In predicate on the "attempt_used" field.
func AttemptUsedIn(vs ...int) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldAttemptUsed, vs...))
}

// AttemptUsedNotIn applies the NotIn predicate on the "attempt_used" field.
func AttemptUsedNotIn(vs ...int) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldAttemptUsed, vs...))
}

// AttemptUsedGT applies the GT predicate on the "attempt_used" field.
func AttemptUsedGT(v int) predicate.Budget {
	return predicate.Budget(sql.FieldGT(FieldAttemptUsed, v))
}

// AttemptUsedGTE applies the GTE predicate on the "attempt_used" field.
func AttemptUsedGTE(v int) predicate.Budget {
	return predicate.Budget(sql.FieldGTE(FieldAttemptUsed, v))
}

// AttemptUsedLT applies the LT predicate on the "attempt_used" field.
func AttemptUsedLT(v int) predicate.Budget {
	return predicate.Budget(sql.FieldLT(FieldAttemptUsed, v))
}

// AttemptUsedLTE applies the LTE predicate on the "attempt_used" field.
func AttemptUsedLTE(v int) predicate.Budget {
	return predicate.Budget(sql.FieldLTE(FieldAttemptUsed, v))
}

// ExceededAtEQ applies the EQ predicate on the "exceeded_at" field.
func ExceededAtEQ(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldEQ(FieldExceededAt, v))
}

// ExceededAtNEQ applies the NEQ predicate on the "exceeded_at" field.
func ExceededAtNEQ(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldNEQ(FieldExceededAt, v))
}

// ExceededAtIn applies the In predicate on the "exceeded_at" field.
func ExceededAtIn(vs ...time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldIn(FieldExceededAt, vs...))
}

// ExceededAtNotIn applies the NotIn predicate on the "exceeded_at" field.
func ExceededAtNotIn(vs ...time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldNotIn(FieldExceededAt, vs...))
}

// ExceededAtGT applies the GT predicate on the "exceeded_at" field.
func ExceededAtGT(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldGT(FieldExceededAt, v))
}

// ExceededAtGTE applies the GTE predicate on the "exceeded_at" field.
func ExceededAtGTE(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldGTE(FieldExceededAt, v))
}

// ExceededAtLT applies the LT predicate on the "exceeded_at" field.
func ExceededAtLT(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldLT(FieldExceededAt, v))
}

// ExceededAtLTE applies the LTE predicate on the "exceeded_at" field.
func ExceededAtLTE(v time.Time) predicate.Budget {
	return predicate.Budget(sql.FieldLTE(FieldExceededAt, v))
}

// ExceededAtIsNil applies the IsNil predicate on the "exceeded_at" field.
func ExceededAtIsNil() predicate.Budget {
	return predicate.Budget(sql.FieldIsNull(FieldExceededAt))
}

// ExceededAtNotNil applies the NotNil predicate on the "exceeded_at" field.
func ExceededAtNotNil() predicate.Budget {
	return predicate.Budget(sql.FieldNotNull(FieldExceededAt))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.Budget {
	return predicate.Budget(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.Run) predicate.Budget {
	return predicate.Budget(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Budget) predicate.Budget {
	return predicate.Budget(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Budget) predicate.Budget {
	return predicate.Budget(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Budget) predicate.Budget {
	return predicate.Budget(sql.NotPredicates(p))
}
