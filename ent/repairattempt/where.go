// Code generated by ent, DO NOT EDIT.

package repairattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/forgeworks/metabuild/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldContainsFold(FieldID, id))
}

// Tenant applies equality check predicate on the "tenant" field. It's identical to TenantEQ.
func Tenant(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldEQ(FieldTenant, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldEQ(FieldRunID, v))
}

// FailureID applies equality check predicate on the "failure_id" field. It's identical to FailureIDEQ.
func FailureID(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldEQ(FieldFailureID, v))
}

// Strategy applies equality check predicate on the "strategy" field. It's identical to StrategyEQ.
func Strategy(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldEQ(FieldStrategy, v))
}

// BackoffUsedMs applies equality check predicate on the "backoff_used_ms" field. It's identical to BackoffUsedMsEQ.
func BackoffUsedMs(v int) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldEQ(FieldBackoffUsedMs, v))
}

// DiffRef applies equality check predicate on the "diff_ref" field. It's identical to DiffRefEQ.
func DiffRef(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldEQ(FieldDiffRef, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// TenantEQ applies the EQ predicate on the "tenant" field.
func TenantEQ(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldEQ(FieldTenant, v))
}

// TenantNEQ applies the NEQ predicate on the "tenant" field.
func TenantNEQ(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldNEQ(FieldTenant, v))
}

// TenantIn applies the In predicate on the "tenant" field.
func TenantIn(vs ...string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldIn(FieldTenant, vs...))
}

// TenantNotIn applies the NotIn predicate on the "tenant" field.
func TenantNotIn(vs ...string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldNotIn(FieldTenant, vs...))
}

// TenantGT applies the GT predicate on the "tenant" field.
func TenantGT(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldGT(FieldTenant, v))
}

// TenantGTE applies the GTE predicate on the "tenant" field.
func TenantGTE(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldGTE(FieldTenant, v))
}

// TenantLT applies the LT predicate on the "tenant" field.
func TenantLT(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldLT(FieldTenant, v))
}

// TenantLTE applies the LTE predicate on the "tenant" field.
func TenantLTE(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldLTE(FieldTenant, v))
}

// TenantContains applies the Contains predicate on the "tenant" field.
func TenantContains(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldContains(FieldTenant, v))
}

// TenantHasPrefix applies the HasPrefix predicate on the "tenant" field.
func TenantHasPrefix(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldHasPrefix(FieldTenant, v))
}

// TenantHasSuffix applies the HasSuffix predicate on the "tenant" field.
func TenantHasSuffix(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldHasSuffix(FieldTenant, v))
}

// TenantEqualFold applies the EqualFold predicate on the "tenant" field.
func TenantEqualFold(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldEqualFold(FieldTenant, v))
}

// TenantContainsFold applies the ContainsFold predicate on the "tenant" field.
func TenantContainsFold(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldContainsFold(FieldTenant, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldContainsFold(FieldRunID, v))
}

// FailureIDEQ applies the EQ predicate on the "failure_id" field.
func FailureIDEQ(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldEQ(FieldFailureID, v))
}

// FailureIDNEQ applies the NEQ predicate on the "failure_id" field.
func FailureIDNEQ(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldNEQ(FieldFailureID, v))
}

// FailureIDIn applies the In predicate on the "failure_id" field.
func FailureIDIn(vs ...string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldIn(FieldFailureID, vs...))
}

// FailureIDNotIn applies the NotIn predicate on the "failure_id" field.
func FailureIDNotIn(vs ...string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldNotIn(FieldFailureID, vs...))
}

// FailureIDGT applies the GT predicate on the "failure_id" field.
func FailureIDGT(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldGT(FieldFailureID, v))
}

// FailureIDGTE applies the GTE predicate on the "failure_id" field.
func FailureIDGTE(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldGTE(FieldFailureID, v))
}

// FailureIDLT applies the LT predicate on the "failure_id" field.
func FailureIDLT(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldLT(FieldFailureID, v))
}

// FailureIDLTE applies the LTE predicate on the "failure_id" field.
func FailureIDLTE(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldLTE(FieldFailureID, v))
}

// FailureIDContains applies the Contains predicate on the "failure_id" field.
func FailureIDContains(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldContains(FieldFailureID, v))
}

// FailureIDHasPrefix applies the HasPrefix predicate on the "failure_id" field.
func FailureIDHasPrefix(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldHasPrefix(FieldFailureID, v))
}

// FailureIDHasSuffix applies the HasSuffix predicate on the "failure_id" field.
func FailureIDHasSuffix(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldHasSuffix(FieldFailureID, v))
}

// FailureIDEqualFold applies the EqualFold predicate on the "failure_id" field.
func FailureIDEqualFold(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldEqualFold(FieldFailureID, v))
}

// FailureIDContainsFold applies the ContainsFold predicate on the "failure_id" field.
func FailureIDContainsFold(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldContainsFold(FieldFailureID, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v Phase) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v Phase) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...Phase) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...Phase) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldNotIn(FieldPhase, vs...))
}

// StrategyEQ applies the EQ predicate on the "strategy" field.
func StrategyEQ(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldEQ(FieldStrategy, v))
}

// StrategyNEQ applies the NEQ predicate on the "strategy" field.
func StrategyNEQ(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldNEQ(FieldStrategy, v))
}

// StrategyIn applies the In predicate on the "strategy" field.
func StrategyIn(vs ...string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldIn(FieldStrategy, vs...))
}

// StrategyNotIn applies the NotIn predicate on the "strategy" field.
func StrategyNotIn(vs ...string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldNotIn(FieldStrategy, vs...))
}

// StrategyGT applies the GT predicate on the "strategy" field.
func StrategyGT(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldGT(FieldStrategy, v))
}

// StrategyGTE applies the GTE predicate on the "strategy" field.
func StrategyGTE(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldGTE(FieldStrategy, v))
}

// StrategyLT applies the LT predicate on the "strategy" field.
func StrategyLT(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldLT(FieldStrategy, v))
}

// StrategyLTE applies the LTE predicate on the "strategy" field.
func StrategyLTE(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldLTE(FieldStrategy, v))
}

// StrategyContains applies the Contains predicate on the "strategy" field.
func StrategyContains(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldContains(FieldStrategy, v))
}

// StrategyHasPrefix applies the HasPrefix predicate on the "strategy" field.
func StrategyHasPrefix(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldHasPrefix(FieldStrategy, v))
}

// StrategyHasSuffix applies the HasSuffix predicate on the "strategy" field.
func StrategyHasSuffix(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldHasSuffix(FieldStrategy, v))
}

// StrategyEqualFold applies the EqualFold predicate on the "strategy" field.
func StrategyEqualFold(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldEqualFold(FieldStrategy, v))
}

// StrategyContainsFold applies the ContainsFold predicate on the "strategy" field.
func StrategyContainsFold(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldContainsFold(FieldStrategy, v))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v Outcome) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v Outcome) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...Outcome) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...Outcome) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldNotIn(FieldOutcome, vs...))
}

// BackoffUsedMsEQ applies the EQ predicate on the "backoff_used_ms" field.
func BackoffUsedMsEQ(v int) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldEQ(FieldBackoffUsedMs, v))
}

// BackoffUsedMsNEQ applies the NEQ predicate on the "backoff_used_ms" field.
func BackoffUsedMsNEQ(v int) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldNEQ(FieldBackoffUsedMs, v))
}

// BackoffUsedMsIn applies the In predicate on the "backoff_used_ms" field.
func BackoffUsedMsIn(vs ...int) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldIn(FieldBackoffUsedMs, vs...))
}

// BackoffUsedMsNotIn applies the NotIn predicate on the "backoff_used_ms" field.
func BackoffUsedMsNotIn(vs ...int) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldNotIn(FieldBackoffUsedMs, vs...))
}

// BackoffUsedMsGT applies the GT predicate on the "backoff_used_ms" field.
func BackoffUsedMsGT(v int) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldGT(FieldBackoffUsedMs, v))
}

// BackoffUsedMsGTE applies the GTE predicate on the "backoff_used_ms" field.
func BackoffUsedMsGTE(v int) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldGTE(FieldBackoffUsedMs, v))
}

// BackoffUsedMsLT applies the LT predicate on the "backoff_used_ms" field.
func BackoffUsedMsLT(v int) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldLT(FieldBackoffUsedMs, v))
}

// BackoffUsedMsLTE applies the LTE predicate on the "backoff_used_ms" field.
func BackoffUsedMsLTE(v int) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldLTE(FieldBackoffUsedMs, v))
}

// DiffRefEQ applies the EQ predicate on the "diff_ref" field.
func DiffRefEQ(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldEQ(FieldDiffRef, v))
}

// DiffRefNEQ applies the NEQ predicate on the "diff_ref" field.
func DiffRefNEQ(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldNEQ(FieldDiffRef, v))
}

// DiffRefIn applies the In predicate on the "diff_ref" field.
func DiffRefIn(vs ...string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldIn(FieldDiffRef, vs...))
}

// DiffRefNotIn applies the NotIn predicate on the "diff_ref" field.
func DiffRefNotIn(vs ...string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldNotIn(FieldDiffRef, vs...))
}

// DiffRefGT applies the GT predicate on the "diff_ref" field.
func DiffRefGT(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldGT(FieldDiffRef, v))
}

// DiffRefGTE applies the GTE predicate on the "diff_ref" field.
func DiffRefGTE(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldGTE(FieldDiffRef, v))
}

// DiffRefLT applies the LT predicate on the "diff_ref" field.
func DiffRefLT(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldLT(FieldDiffRef, v))
}

// DiffRefLTE applies the LTE predicate on the "diff_ref" field.
func DiffRefLTE(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldLTE(FieldDiffRef, v))
}

// DiffRefContains applies the Contains predicate on the "diff_ref" field.
func DiffRefContains(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldContains(FieldDiffRef, v))
}

// DiffRefHasPrefix applies the HasPrefix predicate on the "diff_ref" field.
func DiffRefHasPrefix(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldHasPrefix(FieldDiffRef, v))
}

// DiffRefHasSuffix applies the HasSuffix predicate on the "diff_ref" field.
func DiffRefHasSuffix(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldHasSuffix(FieldDiffRef, v))
}

// DiffRefIsNil applies the IsNil predicate on the "diff_ref" field.
func DiffRefIsNil() predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldIsNull(FieldDiffRef))
}

// DiffRefNotNil applies the NotNil predicate on the "diff_ref" field.
func DiffRefNotNil() predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldNotNull(FieldDiffRef))
}

// DiffRefEqualFold applies the EqualFold predicate on the "diff_ref" field.
func DiffRefEqualFold(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldEqualFold(FieldDiffRef, v))
}

// DiffRefContainsFold applies the ContainsFold predicate on the "diff_ref" field.
func DiffRefContainsFold(v string) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldContainsFold(FieldDiffRef, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.RepairAttempt {
	return predicate.RepairAttempt(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.Run) predicate.RepairAttempt {
	return predicate.RepairAttempt(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RepairAttempt) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RepairAttempt) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RepairAttempt) predicate.RepairAttempt {
	return predicate.RepairAttempt(sql.NotPredicates(p))
}
