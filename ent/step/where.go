// Code generated by ent, DO NOT EDIT.

package step

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/forgeworks/metabuild/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldID, id))
}

// Tenant applies equality check predicate on the "tenant" field. It's identical to TenantEQ.
func Tenant(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldTenant, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldRunID, v))
}

// Iteration applies equality check predicate on the "iteration" field. It's identical to IterationEQ.
func Iteration(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldIteration, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldPriority, v))
}

// IdempotencyKey applies equality check predicate on the "idempotency_key" field. It's identical to IdempotencyKeyEQ.
func IdempotencyKey(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldIdempotencyKey, v))
}

// InputDigest applies equality check predicate on the "input_digest" field. It's identical to InputDigestEQ.
func InputDigest(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldInputDigest, v))
}

// InputRef applies equality check predicate on the "input_ref" field. It's identical to InputRefEQ.
func InputRef(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldInputRef, v))
}

// OutputRef applies equality check predicate on the "output_ref" field. It's identical to OutputRefEQ.
func OutputRef(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldOutputRef, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldAttempts, v))
}

// EstCostUsd applies equality check predicate on the "est_cost_usd" field. It's identical to EstCostUsdEQ.
func EstCostUsd(v float64) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldEstCostUsd, v))
}

// TokensIn applies equality check predicate on the "tokens_in" field. It's identical to TokensInEQ.
func TokensIn(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldTokensIn, v))
}

// TokensOut applies equality check predicate on the "tokens_out" field. It's identical to TokensOutEQ.
func TokensOut(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldTokensOut, v))
}

// CostUsd applies equality check predicate on the "cost_usd" field. It's identical to CostUsdEQ.
func CostUsd(v float64) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldCostUsd, v))
}

// NotBefore applies equality check predicate on the "not_before" field. It's identical to NotBeforeEQ.
func NotBefore(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldNotBefore, v))
}

// LeaseExpiresAt applies equality check predicate on the "lease_expires_at" field. It's identical to LeaseExpiresAtEQ.
func LeaseExpiresAt(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldLeaseExpiresAt, v))
}

// WorkerID applies equality check predicate on the "worker_id" field. It's identical to WorkerIDEQ.
func WorkerID(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldWorkerID, v))
}

// Tombstoned applies equality check predicate on the "tombstoned" field. It's identical to TombstonedEQ.
func Tombstoned(v bool) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldTombstoned, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldCompletedAt, v))
}

// TenantEQ applies the EQ predicate on the "tenant" field.
func TenantEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldTenant, v))
}

// TenantNEQ applies the NEQ predicate on the "tenant" field.
func TenantNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldTenant, v))
}

// TenantIn applies the In predicate on the "tenant" field.
func TenantIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldTenant, vs...))
}

// TenantNotIn applies the NotIn predicate on the "tenant" field.
func TenantNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldTenant, vs...))
}

// TenantGT applies the GT predicate on the "tenant" field.
func TenantGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldTenant, v))
}

// TenantGTE applies the GTE predicate on the "tenant" field.
func TenantGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldTenant, v))
}

// TenantLT applies the LT predicate on the "tenant" field.
func TenantLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldTenant, v))
}

// TenantLTE applies the LTE predicate on the "tenant" field.
func TenantLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldTenant, v))
}

// TenantContains applies the Contains predicate on the "tenant" field.
func TenantContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldTenant, v))
}

// TenantHasPrefix applies the HasPrefix predicate on the "tenant" field.
func TenantHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldTenant, v))
}

// TenantHasSuffix applies the HasSuffix predicate on the "tenant" field.
func TenantHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldTenant, v))
}

// TenantEqualFold applies the EqualFold predicate on the "tenant" field.
func TenantEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldTenant, v))
}

// TenantContainsFold applies the ContainsFold predicate on the "tenant" field.
func TenantContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldTenant, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldRunID, v))
}

// IterationEQ applies the EQ predicate on the "iteration" field.
func IterationEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldIteration, v))
}

// IterationNEQ applies the NEQ predicate on the "iteration" field.
func IterationNEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldIteration, v))
}

// IterationIn applies the In predicate on the "iteration" field.
func IterationIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldIteration, vs...))
}

// IterationNotIn applies the NotIn predicate on the "iteration" field.
func IterationNotIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldIteration, vs...))
}

// IterationGT applies the GT predicate on the "iteration" field.
func IterationGT(v int) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldIteration, v))
}

// IterationGTE applies the GTE predicate on the "iteration" field.
func IterationGTE(v int) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldIteration, v))
}

// IterationLT applies the LT predicate on the "iteration" field.
func IterationLT(v int) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldIteration, v))
}

// IterationLTE applies the LTE predicate on the "iteration" field.
func IterationLTE(v int) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldIteration, v))
}

// AgentRoleEQ applies the EQ predicate on the "agent_role" field.
func AgentRoleEQ(v AgentRole) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldAgentRole, v))
}

// AgentRoleNEQ applies the NEQ predicate on the "agent_role" field.
func AgentRoleNEQ(v AgentRole) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldAgentRole, v))
}

// AgentRoleIn applies the In predicate on the "agent_role" field.
func AgentRoleIn(vs ...AgentRole) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldAgentRole, vs...))
}

// AgentRoleNotIn applies the NotIn predicate on the "agent_role" field.
func AgentRoleNotIn(vs ...AgentRole) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldAgentRole, vs...))
}

// QueueEQ applies the EQ predicate on the "queue" field.
func QueueEQ(v Queue) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldQueue, v))
}

// QueueNEQ applies the NEQ predicate on the "queue" field.
func QueueNEQ(v Queue) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldQueue, v))
}

// QueueIn applies the In predicate on the "queue" field.
func QueueIn(vs ...Queue) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldQueue, vs...))
}

// QueueNotIn applies the NotIn predicate on the "queue" field.
func QueueNotIn(vs ...Queue) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldQueue, vs...))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldPriority, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldState, vs...))
}

// IdempotencyKeyEQ applies the EQ predicate on the "idempotency_key" field.
func IdempotencyKeyEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyNEQ applies the NEQ predicate on the "idempotency_key" field.
func IdempotencyKeyNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyIn applies the In predicate on the "idempotency_key" field.
func IdempotencyKeyIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyNotIn applies the NotIn predicate on the "idempotency_key" field.
func IdempotencyKeyNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyGT applies the GT predicate on the "idempotency_key" field.
func IdempotencyKeyGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldIdempotencyKey, v))
}

// IdempotencyKeyGTE applies the GTE predicate on the "idempotency_key" field.
func IdempotencyKeyGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyLT applies the LT predicate on the "idempotency_key" field.
func IdempotencyKeyLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldIdempotencyKey, v))
}

// IdempotencyKeyLTE applies the LTE predicate on the "idempotency_key" field.
func IdempotencyKeyLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyContains applies the Contains predicate on the "idempotency_key" field.
func IdempotencyKeyContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasPrefix applies the HasPrefix predicate on the "idempotency_key" field.
func IdempotencyKeyHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasSuffix applies the HasSuffix predicate on the "idempotency_key" field.
func IdempotencyKeyHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldIdempotencyKey, v))
}

// IdempotencyKeyEqualFold applies the EqualFold predicate on the "idempotency_key" field.
func IdempotencyKeyEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldIdempotencyKey, v))
}

// IdempotencyKeyContainsFold applies the ContainsFold predicate on the "idempotency_key" field.
func IdempotencyKeyContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldIdempotencyKey, v))
}

// InputDigestEQ applies the EQ predicate on the "input_digest" field.
func InputDigestEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldInputDigest, v))
}

// InputDigestNEQ applies the NEQ predicate on the "input_digest" field.
func InputDigestNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldInputDigest, v))
}

// InputDigestIn applies the In predicate on the "input_digest" field.
func InputDigestIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldInputDigest, vs...))
}

// InputDigestNotIn applies the NotIn predicate on the "input_digest" field.
func InputDigestNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldInputDigest, vs...))
}

// InputDigestGT applies the GT predicate on the "input_digest" field.
func InputDigestGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldInputDigest, v))
}

// InputDigestGTE applies the GTE predicate on the "input_digest" field.
func InputDigestGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldInputDigest, v))
}

// InputDigestLT applies the LT predicate on the "input_digest" field.
func InputDigestLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldInputDigest, v))
}

// InputDigestLTE applies the LTE predicate on the "input_digest" field.
func InputDigestLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldInputDigest, v))
}

// InputDigestContains applies the Contains predicate on the "input_digest" field.
func InputDigestContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldInputDigest, v))
}

// InputDigestHasPrefix applies the HasPrefix predicate on the "input_digest" field.
func InputDigestHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldInputDigest, v))
}

// InputDigestHasSuffix applies the HasSuffix predicate on the "input_digest" field.
func InputDigestHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldInputDigest, v))
}

// InputDigestEqualFold applies the EqualFold predicate on the "input_digest" field.
func InputDigestEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldInputDigest, v))
}

// InputDigestContainsFold applies the ContainsFold predicate on the "input_digest" field.
func InputDigestContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldInputDigest, v))
}

// InputRefEQ applies the EQ predicate on the "input_ref" field.
func InputRefEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldInputRef, v))
}

// InputRefNEQ applies the NEQ predicate on the "input_ref" field.
func InputRefNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldInputRef, v))
}

// InputRefIn applies the In predicate on the "input_ref" field.
func InputRefIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldInputRef, vs...))
}

// InputRefNotIn applies the NotIn predicate on the "input_ref" field.
func InputRefNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldInputRef, vs...))
}

// InputRefGT applies the GT predicate on the "input_ref" field.
func InputRefGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldInputRef, v))
}

// InputRefGTE applies the GTE predicate on the "input_ref" field.
func InputRefGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldInputRef, v))
}

// InputRefLT applies the LT predicate on the "input_ref" field.
func InputRefLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldInputRef, v))
}

// InputRefLTE applies the LTE predicate on the "input_ref" field.
func InputRefLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldInputRef, v))
}

// InputRefContains applies the Contains predicate on the "input_ref" field.
func InputRefContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldInputRef, v))
}

// InputRefHasPrefix applies the HasPrefix predicate on the "input_ref" field.
func InputRefHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldInputRef, v))
}

// InputRefHasSuffix applies the HasSuffix predicate on the "input_ref" field.
func InputRefHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldInputRef, v))
}

// InputRefEqualFold applies the EqualFold predicate on the "input_ref" field.
func InputRefEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldInputRef, v))
}

// InputRefContainsFold applies the ContainsFold predicate on the "input_ref" field.
func InputRefContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldInputRef, v))
}

// OutputRefEQ applies the EQ predicate on the "output_ref" field.
func OutputRefEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldOutputRef, v))
}

// OutputRefNEQ applies the NEQ predicate on the "output_ref" field.
func OutputRefNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldOutputRef, v))
}

// OutputRefIn applies the In predicate on the "output_ref" field.
func OutputRefIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldOutputRef, vs...))
}

// OutputRefNotIn applies the NotIn predicate on the "output_ref" field.
func OutputRefNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldOutputRef, vs...))
}

// OutputRefGT applies the GT predicate on the "output_ref" field.
func OutputRefGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldOutputRef, v))
}

// OutputRefGTE applies the GTE predicate on the "output_ref" field.
func OutputRefGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldOutputRef, v))
}

// OutputRefLT applies the LT predicate on the "output_ref" field.
func OutputRefLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldOutputRef, v))
}

// OutputRefLTE applies the LTE predicate on the "output_ref" field.
func OutputRefLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldOutputRef, v))
}

// OutputRefContains applies the Contains predicate on the "output_ref" field.
func OutputRefContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldOutputRef, v))
}

// OutputRefHasPrefix applies the HasPrefix predicate on the "output_ref" field.
func OutputRefHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldOutputRef, v))
}

// OutputRefHasSuffix applies the HasSuffix predicate on the "output_ref" field.
func OutputRefHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldOutputRef, v))
}

// OutputRefIsNil applies the IsNil predicate on the "output_ref" field.
func OutputRefIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldOutputRef))
}

// OutputRefNotNil applies the NotNil predicate on the "output_ref" field.
func OutputRefNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldOutputRef))
}

// OutputRefEqualFold applies the EqualFold predicate on the "output_ref" field.
func OutputRefEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldOutputRef, v))
}

// OutputRefContainsFold applies the ContainsFold predicate on the "output_ref" field.
func OutputRefContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldOutputRef, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldAttempts, v))
}

// ModelTierEQ applies the EQ predicate on the "model_tier" field.
func ModelTierEQ(v ModelTier) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldModelTier, v))
}

// ModelTierNEQ applies the NEQ predicate on the "model_tier" field.
func ModelTierNEQ(v ModelTier) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldModelTier, v))
}

// ModelTierIn applies the In predicate on the "model_tier" field.
func ModelTierIn(vs ...ModelTier) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldModelTier, vs...))
}

// ModelTierNotIn applies the NotIn predicate on the "model_tier" field.
func ModelTierNotIn(vs ...ModelTier) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldModelTier, vs...))
}

// ModelTierIsNil applies the IsNil predicate on the "model_tier" field.
func ModelTierIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldModelTier))
}

// ModelTierNotNil applies the NotNil predicate on the "model_tier" field.
func ModelTierNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldModelTier))
}

// EstCostUsdEQ applies the EQ predicate on the "est_cost_usd" field.
func EstCostUsdEQ(v float64) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldEstCostUsd, v))
}

// EstCostUsdNEQ applies the NEQ predicate on the "est_cost_usd" field.
func EstCostUsdNEQ(v float64) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldEstCostUsd, v))
}

// EstCostUsdIn applies the In predicate on the "est_cost_usd" field.
func EstCostUsdIn(vs ...float64) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldEstCostUsd, vs...))
}

// EstCostUsdNotIn applies the NotIn predicate on the "est_cost_usd" field.
func EstCostUsdNotIn(vs ...float64) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldEstCostUsd, vs...))
}

// EstCostUsdGT applies the GT predicate on the "est_cost_usd" field.
func EstCostUsdGT(v float64) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldEstCostUsd, v))
}

// EstCostUsdGTE applies the GTE predicate on the "est_cost_usd" field.
func EstCostUsdGTE(v float64) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldEstCostUsd, v))
}

// EstCostUsdLT applies the LT predicate on the "est_cost_usd" field.
func EstCostUsdLT(v float64) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldEstCostUsd, v))
}

// EstCostUsdLTE applies the LTE predicate on the "est_cost_usd" field.
func EstCostUsdLTE(v float64) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldEstCostUsd, v))
}

// TokensInEQ applies the EQ predicate on the "tokens_in" field.
func TokensInEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldTokensIn, v))
}

// TokensInNEQ applies the NEQ predicate on the "tokens_in" field.
func TokensInNEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldTokensIn, v))
}

// TokensInIn applies the In predicate on the "tokens_in" field.
func TokensInIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldTokensIn, vs...))
}

// TokensInNotIn applies the NotIn predicate on the "tokens_in" field.
func TokensInNotIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldTokensIn, vs...))
}

// TokensInGT applies the GT predicate on the "tokens_in" field.
func TokensInGT(v int) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldTokensIn, v))
}

// TokensInGTE applies the GTE predicate on the "tokens_in" field.
func TokensInGTE(v int) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldTokensIn, v))
}

// TokensInLT applies the LT predicate on the "tokens_in" field.
func TokensInLT(v int) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldTokensIn, v))
}

// TokensInLTE applies the LTE predicate on the "tokens_in" field.
func TokensInLTE(v int) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldTokensIn, v))
}

// TokensOutEQ applies the EQ predicate on the "tokens_out" field.
func TokensOutEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldTokensOut, v))
}

// TokensOutNEQ applies the NEQ predicate on the "tokens_out" field.
func TokensOutNEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldTokensOut, v))
}

// TokensOutIn applies the In predicate on the "tokens_out" field.
func TokensOutIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldTokensOut, vs...))
}

// TokensOutNotIn applies the NotIn predicate on the "tokens_out" field.
func TokensOutNotIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldTokensOut, vs...))
}

// TokensOutGT applies the GT predicate on the "tokens_out" field.
func TokensOutGT(v int) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldTokensOut, v))
}

// TokensOutGTE applies the GTE predicate on the "tokens_out" field.
func TokensOutGTE(v int) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldTokensOut, v))
}

// TokensOutLT applies the LT predicate on the "tokens_out" field.
func TokensOutLT(v int) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldTokensOut, v))
}

// TokensOutLTE applies the LTE predicate on the "tokens_out" field.
func TokensOutLTE(v int) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldTokensOut, v))
}

// CostUsdEQ applies the EQ predicate on the "cost_usd" field.
func CostUsdEQ(v float64) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldCostUsd, v))
}

// CostUsdNEQ applies the NEQ predicate on the "cost_usd" field.
func CostUsdNEQ(v float64) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldCostUsd, v))
}

// CostUsdIn applies the In predicate on the "cost_usd" field.
func CostUsdIn(vs ...float64) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldCostUsd, vs...))
}

// CostUsdNotIn applies the NotIn predicate on the "cost_usd" field.
func CostUsdNotIn(vs ...float64) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldCostUsd, vs...))
}

// CostUsdGT applies the GT predicate on the "cost_usd" field.
func CostUsdGT(v float64) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldCostUsd, v))
}

// CostUsdGTE applies the GTE predicate on the "cost_usd" field.
func CostUsdGTE(v float64) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldCostUsd, v))
}

// CostUsdLT applies the LT predicate on the "cost_usd" field.
func CostUsdLT(v float64) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldCostUsd, v))
}

// CostUsdLTE applies the LTE predicate on the "cost_usd" field.
func CostUsdLTE(v float64) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldCostUsd, v))
}

// NotBeforeEQ applies the EQ predicate on the "not_before" field.
func NotBeforeEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldNotBefore, v))
}

// NotBeforeNEQ applies the NEQ predicate on the "not_before" field.
func NotBeforeNEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldNotBefore, v))
}

// NotBeforeIn applies the In predicate on the "not_before" field.
func NotBeforeIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldNotBefore, vs...))
}

// NotBeforeNotIn applies the NotIn predicate on the "not_before" field.
func NotBeforeNotIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldNotBefore, vs...))
}

// NotBeforeGT applies the GT predicate on the "not_before" field.
func NotBeforeGT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldNotBefore, v))
}

// NotBeforeGTE applies the GTE predicate on the "not_before" field.
func NotBeforeGTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldNotBefore, v))
}

// NotBeforeLT applies the LT predicate on the "not_before" field.
func NotBeforeLT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldNotBefore, v))
}

// NotBeforeLTE applies the LTE predicate on the "not_before" field.
func NotBeforeLTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldNotBefore, v))
}

// NotBeforeIsNil applies the IsNil predicate on the "not_before" field.
func NotBeforeIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldNotBefore))
}

// NotBeforeNotNil applies the NotNil predicate on the "not_before" field.
func NotBeforeNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldNotBefore))
}

// LeaseExpiresAtEQ applies the EQ predicate on the "lease_expires_at" field.
func LeaseExpiresAtEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtNEQ applies the NEQ predicate on the "lease_expires_at" field.
func LeaseExpiresAtNEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtIn applies the In predicate on the "lease_expires_at" field.
func LeaseExpiresAtIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldLeaseExpiresAt, vs...))
}

// LeaseExpiresAtNotIn applies the NotIn predicate on the "lease_expires_at" field.
func LeaseExpiresAtNotIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldLeaseExpiresAt, vs...))
}

// LeaseExpiresAtGT applies the GT predicate on the "lease_expires_at" field.
func LeaseExpiresAtGT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtGTE applies the GTE predicate on the "lease_expires_at" field.
func LeaseExpiresAtGTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtLT applies the LT predicate on the "lease_expires_at" field.
func LeaseExpiresAtLT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtLTE applies the LTE predicate on the "lease_expires_at" field.
func LeaseExpiresAtLTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtIsNil applies the IsNil predicate on the "lease_expires_at" field.
func LeaseExpiresAtIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldLeaseExpiresAt))
}

// LeaseExpiresAtNotNil applies the NotNil predicate on the "lease_expires_at" field.
func LeaseExpiresAtNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldLeaseExpiresAt))
}

// WorkerIDEQ applies the EQ predicate on the "worker_id" field.
func WorkerIDEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldWorkerID, v))
}

// WorkerIDNEQ applies the NEQ predicate on the "worker_id" field.
func WorkerIDNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldWorkerID, v))
}

// WorkerIDIn applies the In predicate on the "worker_id" field.
func WorkerIDIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldWorkerID, vs...))
}

// WorkerIDNotIn applies the NotIn predicate on the "worker_id" field.
func WorkerIDNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldWorkerID, vs...))
}

// WorkerIDGT applies the GT predicate on the "worker_id" field.
func WorkerIDGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldWorkerID, v))
}

// WorkerIDGTE applies the GTE predicate on the "worker_id" field.
func WorkerIDGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldWorkerID, v))
}

// WorkerIDLT applies the LT predicate on the "worker_id" field.
func WorkerIDLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldWorkerID, v))
}

// WorkerIDLTE applies the LTE predicate on the "worker_id" field.
func WorkerIDLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldWorkerID, v))
}

// WorkerIDContains applies the Contains predicate on the "worker_id" field.
func WorkerIDContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldWorkerID, v))
}

// WorkerIDHasPrefix applies the HasPrefix predicate on the "worker_id" field.
func WorkerIDHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldWorkerID, v))
}

// WorkerIDHasSuffix applies the HasSuffix predicate on the "worker_id" field.
func WorkerIDHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldWorkerID, v))
}

// WorkerIDIsNil applies the IsNil predicate on the "worker_id" field.
func WorkerIDIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldWorkerID))
}

// WorkerIDNotNil applies the NotNil predicate on the "worker_id" field.
func WorkerIDNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldWorkerID))
}

// WorkerIDEqualFold applies the EqualFold predicate on the "worker_id" field.
func WorkerIDEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldWorkerID, v))
}

// WorkerIDContainsFold applies the ContainsFold predicate on the "worker_id" field.
func WorkerIDContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldWorkerID, v))
}

// TombstonedEQ applies the EQ predicate on the "tombstoned" field.
func TombstonedEQ(v bool) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldTombstoned, v))
}

// TombstonedNEQ applies the NEQ predicate on the "tombstoned" field.
func TombstonedNEQ(v bool) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldTombstoned, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldCompletedAt))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.Step {
	return predicate.Step(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.Run) predicate.Step {
	return predicate.Step(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFailures applies the HasEdge predicate on the "failures" edge.
func HasFailures() predicate.Step {
	return predicate.Step(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FailuresTable, FailuresColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFailuresWith applies the HasEdge predicate on the "failures" edge with a given conditions (other predicates).
func HasFailuresWith(preds ...predicate.Failure) predicate.Step {
	return predicate.Step(func(s *sql.Selector) {
		step := newFailuresStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLease applies the HasEdge predicate on the "lease" edge.
func HasLease() predicate.Step {
	return predicate.Step(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, LeaseTable, LeaseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLeaseWith applies the HasEdge predicate on the "lease" edge with a given conditions (other predicates).
func HasLeaseWith(preds ...predicate.QueueLease) predicate.Step {
	return predicate.Step(func(s *sql.Selector) {
		step := newLeaseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Step) predicate.Step {
	return predicate.Step(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Step) predicate.Step {
	return predicate.Step(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Step) predicate.Step {
	return predicate.Step(sql.NotPredicates(p))
}
