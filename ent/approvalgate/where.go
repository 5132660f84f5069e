// Code generated by ent, DO NOT EDIT.

package approvalgate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/forgeworks/metabuild/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldContainsFold(FieldID, id))
}

// Tenant applies equality check predicate on the "tenant" field. It's identical to TenantEQ.
func Tenant(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldTenant, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldRunID, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldReason, v))
}

// RequiredRole applies equality check predicate on the "required_role" field. It's identical to RequiredRoleEQ.
func RequiredRole(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldRequiredRole, v))
}

// Decider applies equality check predicate on the "decider" field. It's identical to DeciderEQ.
func Decider(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldDecider, v))
}

// DecidedAt applies equality check predicate on the "decided_at" field. It's identical to DecidedAtEQ.
func DecidedAt(v time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldDecidedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldCreatedAt, v))
}

// TenantEQ applies the EQ predicate on the "tenant" field.
func TenantEQ(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldTenant, v))
}

// TenantNEQ applies the NEQ predicate on the "tenant" field.
func TenantNEQ(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNEQ(FieldTenant, v))
}

// TenantIn applies the In predicate on the "tenant" field.
func TenantIn(vs ...string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldIn(FieldTenant, vs...))
}

// TenantNotIn applies the NotIn predicate on the "tenant" field.
func TenantNotIn(vs ...string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNotIn(FieldTenant, vs...))
}

// TenantGT applies the GT predicate on the "tenant" field.
func TenantGT(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGT(FieldTenant, v))
}

// TenantGTE applies the GTE predicate on the "tenant" field.
func TenantGTE(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGTE(FieldTenant, v))
}

// TenantLT applies the LT predicate on the "tenant" field.
func TenantLT(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLT(FieldTenant, v))
}

// TenantLTE applies the LTE predicate on the "tenant" field.
func TenantLTE(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLTE(FieldTenant, v))
}

// TenantContains applies the Contains predicate on the "tenant" field.
func TenantContains(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldContains(FieldTenant, v))
}

// TenantHasPrefix applies the HasPrefix predicate on the "tenant" field.
func TenantHasPrefix(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldHasPrefix(FieldTenant, v))
}

// TenantHasSuffix applies the HasSuffix predicate on the "tenant" field.
func TenantHasSuffix(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldHasSuffix(FieldTenant, v))
}

// TenantEqualFold applies the EqualFold predicate on the "tenant" field.
func TenantEqualFold(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEqualFold(FieldTenant, v))
}

// TenantContainsFold applies the ContainsFold predicate on the "tenant" field.
func TenantContainsFold(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldContainsFold(FieldTenant, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldContainsFold(FieldRunID, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldContainsFold(FieldReason, v))
}

// RequiredRoleEQ applies the EQ predicate on the "required_role" field.
func RequiredRoleEQ(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldRequiredRole, v))
}

// RequiredRoleNEQ applies the NEQ predicate on the "required_role" field.
func RequiredRoleNEQ(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNEQ(FieldRequiredRole, v))
}

// RequiredRoleIn applies the In predicate on the "required_role" field.
func RequiredRoleIn(vs ...string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldIn(FieldRequiredRole, vs...))
}

// RequiredRoleNotIn applies the NotIn predicate on the "required_role" field.
func RequiredRoleNotIn(vs ...string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNotIn(FieldRequiredRole, vs...))
}

// RequiredRoleGT applies the GT predicate on the "required_role" field.
func RequiredRoleGT(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGT(FieldRequiredRole, v))
}

// RequiredRoleGTE applies the GTE predicate on the "required_role" field.
func RequiredRoleGTE(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGTE(FieldRequiredRole, v))
}

// RequiredRoleLT applies the LT predicate on the "required_role" field.
func RequiredRoleLT(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLT(FieldRequiredRole, v))
}

// RequiredRoleLTE applies the LTE predicate on the "required_role" field.
func RequiredRoleLTE(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLTE(FieldRequiredRole, v))
}

// RequiredRoleContains applies the Contains predicate on the "required_role" field.
func RequiredRoleContains(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldContains(FieldRequiredRole, v))
}

// RequiredRoleHasPrefix applies the HasPrefix predicate on the "required_role" field.
func RequiredRoleHasPrefix(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldHasPrefix(FieldRequiredRole, v))
}

// RequiredRoleHasSuffix applies the HasSuffix predicate on the "required_role" field.
func RequiredRoleHasSuffix(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldHasSuffix(FieldRequiredRole, v))
}

// RequiredRoleEqualFold applies the EqualFold predicate on the "required_role" field.
func RequiredRoleEqualFold(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEqualFold(FieldRequiredRole, v))
}

// RequiredRoleContainsFold applies the ContainsFold predicate on the "required_role" field.
func RequiredRoleContainsFold(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldContainsFold(FieldRequiredRole, v))
}

// DecisionEQ applies the EQ predicate on the "decision" field.
func DecisionEQ(v Decision) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldDecision, v))
}

// DecisionNEQ applies the NEQ predicate on the "decision" field.
func DecisionNEQ(v Decision) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNEQ(FieldDecision, v))
}

// DecisionIn applies the In predicate on the "decision" field.
func DecisionIn(vs ...Decision) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldIn(FieldDecision, vs...))
}

// DecisionNotIn applies the NotIn predicate on the "decision" field.
func DecisionNotIn(vs ...Decision) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNotIn(FieldDecision, vs...))
}

// DeciderEQ applies the EQ predicate on the "decider" field.
func DeciderEQ(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldDecider, v))
}

// DeciderNEQ applies the NEQ predicate on the "decider" field.
func DeciderNEQ(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNEQ(FieldDecider, v))
}

// DeciderIn applies the In predicate on the "decider" field.
func DeciderIn(vs ...string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldIn(FieldDecider, vs...))
}

// DeciderNotIn applies the NotIn predicate on the "decider" field.
func DeciderNotIn(vs ...string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNotIn(FieldDecider, vs...))
}

// DeciderGT applies the GT predicate on the "decider" field.
func DeciderGT(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGT(FieldDecider, v))
}

// DeciderGTE applies the GTE predicate on the "decider" field.
func DeciderGTE(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGTE(FieldDecider, v))
}

// DeciderLT applies the LT predicate on the "decider" field.
func DeciderLT(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLT(FieldDecider, v))
}

// DeciderLTE applies the LTE predicate on the "decider" field.
func DeciderLTE(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLTE(FieldDecider, v))
}

// DeciderContains applies the Contains predicate on the "decider" field.
func DeciderContains(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldContains(FieldDecider, v))
}

// DeciderHasPrefix applies the HasPrefix predicate on the "decider" field.
func DeciderHasPrefix(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldHasPrefix(FieldDecider, v))
}

// DeciderHasSuffix applies the HasSuffix predicate on the "decider" field.
func DeciderHasSuffix(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldHasSuffix(FieldDecider, v))
}

// DeciderIsNil applies the IsNil predicate on the "decider" field.
func DeciderIsNil() predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldIsNull(FieldDecider))
}

// DeciderNotNil applies the NotNil predicate on the "decider" field.
func DeciderNotNil() predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNotNull(FieldDecider))
}

// DeciderEqualFold applies the EqualFold predicate on the "decider" field.
func DeciderEqualFold(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEqualFold(FieldDecider, v))
}

// DeciderContainsFold applies the ContainsFold predicate on the "decider" field.
func DeciderContainsFold(v string) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldContainsFold(FieldDecider, v))
}

// DecidedAtEQ applies the EQ predicate on the "decided_at" field.
func DecidedAtEQ(v time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldDecidedAt, v))
}

// DecidedAtNEQ applies the NEQ predicate on the "decided_at" field.
func DecidedAtNEQ(v time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNEQ(FieldDecidedAt, v))
}

// DecidedAtIn applies the In predicate on the "decided_at" field.
func DecidedAtIn(vs ...time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldIn(FieldDecidedAt, vs...))
}

// DecidedAtNotIn applies the NotIn predicate on the "decided_at" field.
func DecidedAtNotIn(vs ...time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNotIn(FieldDecidedAt, vs...))
}

// DecidedAtGT applies the GT predicate on the "decided_at" field.
func DecidedAtGT(v time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGT(FieldDecidedAt, v))
}

// DecidedAtGTE applies the GTE predicate on the "decided_at" field.
func DecidedAtGTE(v time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGTE(FieldDecidedAt, v))
}

// DecidedAtLT applies the LT predicate on the "decided_at" field.
func DecidedAtLT(v time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLT(FieldDecidedAt, v))
}

// DecidedAtLTE applies the LTE predicate on the "decided_at" field.
func DecidedAtLTE(v time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLTE(FieldDecidedAt, v))
}

// DecidedAtIsNil applies the IsNil predicate on the "decided_at" field.
func DecidedAtIsNil() predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldIsNull(FieldDecidedAt))
}

// DecidedAtNotNil applies the NotNil predicate on the "decided_at" field.
func DecidedAtNotNil() predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNotNull(FieldDecidedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.ApprovalGate {
	return predicate.ApprovalGate(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.Run) predicate.ApprovalGate {
	return predicate.ApprovalGate(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ApprovalGate) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ApprovalGate) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ApprovalGate) predicate.ApprovalGate {
	return predicate.ApprovalGate(sql.NotPredicates(p))
}
