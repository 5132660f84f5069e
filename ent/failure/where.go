// Code generated by ent, DO NOT EDIT.

package failure

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/forgeworks/metabuild/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Failure {
	return predicate.Failure(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Failure {
	return predicate.Failure(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Failure {
	return predicate.Failure(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Failure {
	return predicate.Failure(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Failure {
	return predicate.Failure(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Failure {
	return predicate.Failure(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Failure {
	return predicate.Failure(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Failure {
	return predicate.Failure(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Failure {
	return predicate.Failure(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Failure {
	return predicate.Failure(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Failure {
	return predicate.Failure(sql.FieldContainsFold(FieldID, id))
}

// Tenant applies equality check predicate on the "tenant" field. It's identical to TenantEQ.
func Tenant(v string) predicate.Failure {
	return predicate.Failure(sql.FieldEQ(FieldTenant, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.Failure {
	return predicate.Failure(sql.FieldEQ(FieldRunID, v))
}

// StepID applies equality check predicate on the "step_id" field. It's identical to StepIDEQ.
func StepID(v string) predicate.Failure {
	return predicate.Failure(sql.FieldEQ(FieldStepID, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Failure {
	return predicate.Failure(sql.FieldEQ(FieldConfidence, v))
}

// LogExcerpt applies equality check predicate on the "log_excerpt" field. It's identical to LogExcerptEQ.
func LogExcerpt(v string) predicate.Failure {
	return predicate.Failure(sql.FieldEQ(FieldLogExcerpt, v))
}

// Retryable applies equality check predicate on the "retryable" field. It's identical to RetryableEQ.
func Retryable(v bool) predicate.Failure {
	return predicate.Failure(sql.FieldEQ(FieldRetryable, v))
}

// RequiresReplan applies equality check predicate on the "requires_replan" field. It's identical to RequiresReplanEQ.
func RequiresReplan(v bool) predicate.Failure {
	return predicate.Failure(sql.FieldEQ(FieldRequiresReplan, v))
}

// RequiresHuman applies equality check predicate on the "requires_human" field. It's identical to RequiresHumanEQ.
func RequiresHuman(v bool) predicate.Failure {
	return predicate.Failure(sql.FieldEQ(FieldRequiresHuman, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Failure {
	return predicate.Failure(sql.FieldEQ(FieldCreatedAt, v))
}

// TenantEQ applies the EQ predicate on the "tenant" field.
func TenantEQ(v string) predicate.Failure {
	return predicate.Failure(sql.FieldEQ(FieldTenant, v))
}

// TenantNEQ applies the NEQ predicate on the "tenant" field.
func TenantNEQ(v string) predicate.Failure {
	return predicate.Failure(sql.FieldNEQ(FieldTenant, v))
}

// TenantIn applies the In predicate on the "tenant" field.
func TenantIn(vs ...string) predicate.Failure {
	return predicate.Failure(sql.FieldIn(FieldTenant, vs...))
}

// TenantNotIn applies the NotIn predicate on the "tenant" field.
func TenantNotIn(vs ...string) predicate.Failure {
	return predicate.Failure(sql.FieldNotIn(FieldTenant, vs...))
}

// TenantGT applies the GT predicate on the "tenant" field.
func TenantGT(v string) predicate.Failure {
	return predicate.Failure(sql.FieldGT(FieldTenant, v))
}

// TenantGTE applies the GTE predicate on the "tenant" field.
func TenantGTE(v string) predicate.Failure {
	return predicate.Failure(sql.FieldGTE(FieldTenant, v))
}

// TenantLT applies the LT predicate on the "tenant" field.
func TenantLT(v string) predicate.Failure {
	return predicate.Failure(sql.FieldLT(FieldTenant, v))
}

// TenantLTE applies the LTE predicate on the "tenant" field.
func TenantLTE(v string) predicate.Failure {
	return predicate.Failure(sql.FieldLTE(FieldTenant, v))
}

// TenantContains applies the Contains predicate on the "tenant" field.
func TenantContains(v string) predicate.Failure {
	return predicate.Failure(sql.FieldContains(FieldTenant, v))
}

// TenantHasPrefix applies the HasPrefix predicate on the "tenant" field.
func TenantHasPrefix(v string) predicate.Failure {
	return predicate.Failure(sql.FieldHasPrefix(FieldTenant, v))
}

// TenantHasSuffix applies the HasSuffix predicate on the "tenant" field.
func TenantHasSuffix(v string) predicate.Failure {
	return predicate.Failure(sql.FieldHasSuffix(FieldTenant, v))
}

// TenantEqualFold applies the EqualFold predicate on the "tenant" field.
func TenantEqualFold(v string) predicate.Failure {
	return predicate.Failure(sql.FieldEqualFold(FieldTenant, v))
}

// TenantContainsFold applies the ContainsFold predicate on the "tenant" field.
func TenantContainsFold(v string) predicate.Failure {
	return predicate.Failure(sql.FieldContainsFold(FieldTenant, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.Failure {
	return predicate.Failure(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.Failure {
	return predicate.Failure(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.Failure {
	return predicate.Failure(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.Failure {
	return predicate.Failure(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.Failure {
	return predicate.Failure(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.Failure {
	return predicate.Failure(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.Failure {
	return predicate.Failure(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.Failure {
	return predicate.Failure(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.Failure {
	return predicate.Failure(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.Failure {
	return predicate.Failure(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.Failure {
	return predicate.Failure(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.Failure {
	return predicate.Failure(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.Failure {
	return predicate.Failure(sql.FieldContainsFold(FieldRunID, v))
}

// StepIDEQ applies the EQ predicate on the "step_id" field.
func StepIDEQ(v string) predicate.Failure {
	return predicate.Failure(sql.FieldEQ(FieldStepID, v))
}

// StepIDNEQ applies the NEQ predicate on the "step_id" field.
func StepIDNEQ(v string) predicate.Failure {
	return predicate.Failure(sql.FieldNEQ(FieldStepID, v))
}

// StepIDIn applies the In predicate on the "step_id" field.
func StepIDIn(vs ...string) predicate.Failure {
	return predicate.Failure(sql.FieldIn(FieldStepID, vs...))
}

// StepIDNotIn applies the NotIn predicate on the "step_id" field.
func StepIDNotIn(vs ...string) predicate.Failure {
	return predicate.Failure(sql.FieldNotIn(FieldStepID, vs...))
}

// StepIDGT applies the GT predicate on the "step_id" field.
func StepIDGT(v string) predicate.Failure {
	return predicate.Failure(sql.FieldGT(FieldStepID, v))
}

// StepIDGTE applies the GTE predicate on the "step_id" field.
func StepIDGTE(v string) predicate.Failure {
	return predicate.Failure(sql.FieldGTE(FieldStepID, v))
}

// StepIDLT applies the LT predicate on the "step_id" field.
func StepIDLT(v string) predicate.Failure {
	return predicate.Failure(sql.FieldLT(FieldStepID, v))
}

// StepIDLTE applies the LTE predicate on the "step_id" field.
func StepIDLTE(v string) predicate.Failure {
	return predicate.Failure(sql.FieldLTE(FieldStepID, v))
}

// StepIDContains applies the Contains predicate on the "step_id" field.
func StepIDContains(v string) predicate.Failure {
	return predicate.Failure(sql.FieldContains(FieldStepID, v))
}

// StepIDHasPrefix applies the HasPrefix predicate on the "step_id" field.
func StepIDHasPrefix(v string) predicate.Failure {
	return predicate.Failure(sql.FieldHasPrefix(FieldStepID, v))
}

// StepIDHasSuffix applies the HasSuffix predicate on the "step_id" field.
func StepIDHasSuffix(v string) predicate.Failure {
	return predicate.Failure(sql.FieldHasSuffix(FieldStepID, v))
}

// StepIDEqualFold applies the EqualFold predicate on the "step_id" field.
func StepIDEqualFold(v string) predicate.Failure {
	return predicate.Failure(sql.FieldEqualFold(FieldStepID, v))
}

// StepIDContainsFold applies the ContainsFold predicate on the "step_id" field.
func StepIDContainsFold(v string) predicate.Failure {
	return predicate.Failure(sql.FieldContainsFold(FieldStepID, v))
}

// ClassEQ applies the EQ predicate on the "class" field.
func ClassEQ(v Class) predicate.Failure {
	return predicate.Failure(sql.FieldEQ(FieldClass, v))
}

// ClassNEQ applies the NEQ predicate on the "class" field.
func ClassNEQ(v Class) predicate.Failure {
	return predicate.Failure(sql.FieldNEQ(FieldClass, v))
}

// ClassIn applies the In predicate on the "class" field.
func ClassIn(vs ...Class) predicate.Failure {
	return predicate.Failure(sql.FieldIn(FieldClass, vs...))
}

// ClassNotIn applies the NotIn predicate on the "class" field.
func ClassNotIn(vs ...Class) predicate.Failure {
	return predicate.Failure(sql.FieldNotIn(FieldClass, vs...))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Failure {
	return predicate.Failure(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Failure {
	return predicate.Failure(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Failure {
	return predicate.Failure(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Failure {
	return predicate.Failure(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Failure {
	return predicate.Failure(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Failure {
	return predicate.Failure(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Failure {
	return predicate.Failure(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Failure {
	return predicate.Failure(sql.FieldLTE(FieldConfidence, v))
}

// LogExcerptEQ applies the EQ predicate on the "log_excerpt" field.
func LogExcerptEQ(v string) predicate.Failure {
	return predicate.Failure(sql.FieldEQ(FieldLogExcerpt, v))
}

// LogExcerptNEQ applies the NEQ predicate on the "log_excerpt" field.
func LogExcerptNEQ(v string) predicate.Failure {
	return predicate.Failure(sql.FieldNEQ(FieldLogExcerpt, v))
}

// LogExcerptIn applies the In predicate on the "log_excerpt" field.
func LogExcerptIn(vs ...string) predicate.Failure {
	return predicate.Failure(sql.FieldIn(FieldLogExcerpt, vs...))
}

// LogExcerptNotIn applies the NotIn predicate on the "log_excerpt" field.
func LogExcerptNotIn(vs ...string) predicate.Failure {
	return predicate.Failure(sql.FieldNotIn(FieldLogExcerpt, vs...))
}

// LogExcerptGT applies the GT predicate on the "log_excerpt" field.
func LogExcerptGT(v string) predicate.Failure {
	return predicate.Failure(sql.FieldGT(FieldLogExcerpt, v))
}

// LogExcerptGTE applies the GTE predicate on the "log_excerpt" field.
func LogExcerptGTE(v string) predicate.Failure {
	return predicate.Failure(sql.FieldGTE(FieldLogExcerpt, v))
}

// LogExcerptLT applies the LT predicate on the "log_excerpt" field.
func LogExcerptLT(v string) predicate.Failure {
	return predicate.Failure(sql.FieldLT(FieldLogExcerpt, v))
}

// LogExcerptLTE applies the LTE predicate on the "log_excerpt" field.
func LogExcerptLTE(v string) predicate.Failure {
	return predicate.Failure(sql.FieldLTE(FieldLogExcerpt, v))
}

// LogExcerptContains applies the Contains predicate on the "log_excerpt" field.
func LogExcerptContains(v string) predicate.Failure {
	return predicate.Failure(sql.FieldContains(FieldLogExcerpt, v))
}

// LogExcerptHasPrefix applies the HasPrefix predicate on the "log_excerpt" field.
func LogExcerptHasPrefix(v string) predicate.Failure {
	return predicate.Failure(sql.FieldHasPrefix(FieldLogExcerpt, v))
}

// LogExcerptHasSuffix applies the HasSuffix predicate on the "log_excerpt" field.
func LogExcerptHasSuffix(v string) predicate.Failure {
	return predicate.Failure(sql.FieldHasSuffix(FieldLogExcerpt, v))
}

// LogExcerptEqualFold applies the EqualFold predicate on the "log_excerpt" field.
func LogExcerptEqualFold(v string) predicate.Failure {
	return predicate.Failure(sql.FieldEqualFold(FieldLogExcerpt, v))
}

// LogExcerptContainsFold applies the ContainsFold predicate on the "log_excerpt" field.
func LogExcerptContainsFold(v string) predicate.Failure {
	return predicate.Failure(sql.FieldContainsFold(FieldLogExcerpt, v))
}

// RetryableEQ applies the EQ predicate on the "retryable" field.
func RetryableEQ(v bool) predicate.Failure {
	return predicate.Failure(sql.FieldEQ(FieldRetryable, v))
}

// RetryableNEQ applies the NEQ predicate on the "retryable" field.
func RetryableNEQ(v bool) predicate.Failure {
	return predicate.Failure(sql.FieldNEQ(FieldRetryable, v))
}

// RequiresReplanEQ applies the EQ predicate on the "requires_replan" field.
func RequiresReplanEQ(v bool) predicate.Failure {
	return predicate.Failure(sql.FieldEQ(FieldRequiresReplan, v))
}

// RequiresReplanNEQ applies the NEQ predicate on the "requires_replan" field.
func RequiresReplanNEQ(v bool) predicate.Failure {
	return predicate.Failure(sql.FieldNEQ(FieldRequiresReplan, v))
}

// RequiresHumanEQ applies the EQ predicate on the "requires_human" field.
func RequiresHumanEQ(v bool) predicate.Failure {
	return predicate.Failure(sql.FieldEQ(FieldRequiresHuman, v))
}

// RequiresHumanNEQ applies the NEQ predicate on the "requires_human" field.
func RequiresHumanNEQ(v bool) predicate.Failure {
	return predicate.Failure(sql.FieldNEQ(FieldRequiresHuman, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Failure {
	return predicate.Failure(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Failure {
	return predicate.Failure(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Failure {
	return predicate.Failure(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Failure {
	return predicate.Failure(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Failure {
	return predicate.Failure(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Failure {
	return predicate.Failure(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Failure {
	return predicate.Failure(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Failure {
	return predicate.Failure(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.Failure {
	return predicate.Failure(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.Run) predicate.Failure {
	return predicate.Failure(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStep applies the HasEdge predicate on the "step" edge.
func HasStep() predicate.Failure {
	return predicate.Failure(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StepTable, StepColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepWith applies the HasEdge predicate on the "step" edge with a given conditions (other predicates).
func HasStepWith(preds ...predicate.Step) predicate.Failure {
	return predicate.Failure(func(s *sql.Selector) {
		step := newStepStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Failure) predicate.Failure {
	return predicate.Failure(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Failure) predicate.Failure {
	return predicate.Failure(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Failure) predicate.Failure {
	return predicate.Failure(sql.NotPredicates(p))
}
