// Code generated by ent, DO NOT EDIT.

package run

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/forgeworks/metabuild/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldID, id))
}

// Tenant applies equality check predicate on the "tenant" field. It's identical to TenantEQ.
func Tenant(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldTenant, v))
}

// SpecID applies equality check predicate on the "spec_id" field. It's identical to SpecIDEQ.
func SpecID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldSpecID, v))
}

// Iteration applies equality check predicate on the "iteration" field. It's identical to IterationEQ.
func Iteration(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldIteration, v))
}

// TokensUsed applies equality check predicate on the "tokens_used" field. It's identical to TokensUsedEQ.
func TokensUsed(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldTokensUsed, v))
}

// CostUsedUsd applies equality check predicate on the "cost_used_usd" field. It's identical to CostUsedUsdEQ.
func CostUsedUsd(v float64) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCostUsedUsd, v))
}

// PausedState applies equality check predicate on the "paused_state" field. It's identical to PausedStateEQ.
func PausedState(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldPausedState, v))
}

// LastGreenIteration applies equality check predicate on the "last_green_iteration" field. It's identical to LastGreenIterationEQ.
func LastGreenIteration(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldLastGreenIteration, v))
}

// TerminalReason applies equality check predicate on the "terminal_reason" field. It's identical to TerminalReasonEQ.
func TerminalReason(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldTerminalReason, v))
}

// PatchStreak applies equality check predicate on the "patch_streak" field. It's identical to PatchStreakEQ.
func PatchStreak(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldPatchStreak, v))
}

// ReplanScope applies equality check predicate on the "replan_scope" field. It's identical to ReplanScopeEQ.
func ReplanScope(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldReplanScope, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCompletedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldDeletedAt, v))
}

// TenantEQ applies the EQ predicate on the "tenant" field.
func TenantEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldTenant, v))
}

// TenantNEQ applies the NEQ predicate on the "tenant" field.
func TenantNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldTenant, v))
}

// TenantIn applies the In predicate on the "tenant" field.
func TenantIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldTenant, vs...))
}

// TenantNotIn applies the NotIn predicate on the "tenant" field.
func TenantNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldTenant, vs...))
}

// TenantGT applies the GT predicate on the "tenant" field.
func TenantGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldTenant, v))
}

// TenantGTE applies the GTE predicate on the "tenant" field.
func TenantGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldTenant, v))
}

// TenantLT applies the LT predicate on the "tenant" field.
func TenantLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldTenant, v))
}

// TenantLTE applies the LTE predicate on the "tenant" field.
func TenantLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldTenant, v))
}

// TenantContains applies the Contains predicate on the "tenant" field.
func TenantContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldTenant, v))
}

// TenantHasPrefix applies the HasPrefix predicate on the "tenant" field.
func TenantHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldTenant, v))
}

// TenantHasSuffix applies the HasSuffix predicate on the "tenant" field.
func TenantHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldTenant, v))
}

// TenantEqualFold applies the EqualFold predicate on the "tenant" field.
func TenantEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldTenant, v))
}

// TenantContainsFold applies the ContainsFold predicate on the "tenant" field.
func TenantContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldTenant, v))
}

// SpecIDEQ applies the EQ predicate on the "spec_id" field.
func SpecIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldSpecID, v))
}

// SpecIDNEQ applies the NEQ predicate on the "spec_id" field.
func SpecIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldSpecID, v))
}

// SpecIDIn applies the In predicate on the "spec_id" field.
func SpecIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldSpecID, vs...))
}

// SpecIDNotIn applies the NotIn predicate on the "spec_id" field.
func SpecIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldSpecID, vs...))
}

// SpecIDGT applies the GT predicate on the "spec_id" field.
func SpecIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldSpecID, v))
}

// SpecIDGTE applies the GTE predicate on the "spec_id" field.
func SpecIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldSpecID, v))
}

// SpecIDLT applies the LT predicate on the "spec_id" field.
func SpecIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldSpecID, v))
}

// SpecIDLTE applies the LTE predicate on the "spec_id" field.
func SpecIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldSpecID, v))
}

// SpecIDContains applies the Contains predicate on the "spec_id" field.
func SpecIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldSpecID, v))
}

// SpecIDHasPrefix applies the HasPrefix predicate on the "spec_id" field.
func SpecIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldSpecID, v))
}

// SpecIDHasSuffix applies the HasSuffix predicate on the "spec_id" field.
func SpecIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldSpecID, v))
}

// SpecIDEqualFold applies the EqualFold predicate on the "spec_id" field.
func SpecIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldSpecID, v))
}

// SpecIDContainsFold applies the ContainsFold predicate on the "spec_id" field.
func SpecIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldSpecID, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldState, vs...))
}

// IterationEQ applies the EQ predicate on the "iteration" field.
func IterationEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldIteration, v))
}

// IterationNEQ applies the NEQ predicate on the "iteration" field.
func IterationNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldIteration, v))
}

// IterationIn applies the In predicate on the "iteration" field.
func IterationIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldIteration, vs...))
}

// IterationNotIn applies the NotIn predicate on the "iteration" field.
func IterationNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldIteration, vs...))
}

// IterationGT applies the GT predicate on the "iteration" field.
func IterationGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldIteration, v))
}

// IterationGTE applies the GTE predicate on the "iteration" field.
func IterationGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldIteration, v))
}

// IterationLT applies the LT predicate on the "iteration" field.
func IterationLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldIteration, v))
}

// IterationLTE applies the LTE predicate on the "iteration" field.
func IterationLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldIteration, v))
}

// TokensUsedEQ applies the EQ predicate on the "tokens_used" field.
func TokensUsedEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldTokensUsed, v))
}

// TokensUsedNEQ applies the NEQ predicate on the "tokens_used" field.
func TokensUsedNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldTokensUsed, v))
}

// TokensUsedIn applies the In predicate on the "tokens_used" field.
func TokensUsedIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldTokensUsed, vs...))
}

// TokensUsedNotIn applies the NotIn predicate on the "tokens_used" field.
func TokensUsedNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldTokensUsed, vs...))
}

// TokensUsedGT applies the GT predicate on the "tokens_used" field.
func TokensUsedGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldTokensUsed, v))
}

// TokensUsedGTE applies the GTE predicate on the "tokens_used" field.
func TokensUsedGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldTokensUsed, v))
}

// TokensUsedLT applies the LT predicate on the "tokens_used" field.
func TokensUsedLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldTokensUsed, v))
}

// TokensUsedLTE applies the LTE predicate on the "tokens_used" field.
func TokensUsedLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldTokensUsed, v))
}

// CostUsedUsdEQ applies the EQ predicate on the "cost_used_usd" field.
func CostUsedUsdEQ(v float64) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCostUsedUsd, v))
}

// CostUsedUsdNEQ applies the NEQ predicate on the "cost_used_usd" field.
func CostUsedUsdNEQ(v float64) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldCostUsedUsd, v))
}

// CostUsedUsdIn applies the In predicate on the "cost_used_usd" field.
func CostUsedUsdIn(vs ...float64) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldCostUsedUsd, vs...))
}

// CostUsedUsdNotIn applies the NotIn predicate on the "cost_used_usd" field.
func CostUsedUsdNotIn(vs ...float64) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldCostUsedUsd, vs...))
}

// CostUsedUsdGT applies the GT predicate on the "cost_used_usd" field.
func CostUsedUsdGT(v float64) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldCostUsedUsd, v))
}

// CostUsedUsdGTE applies the GTE predicate on the "cost_used_usd" field.
func CostUsedUsdGTE(v float64) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldCostUsedUsd, v))
}

// CostUsedUsdLT applies the LT predicate on the "cost_used_usd" field.
func CostUsedUsdLT(v float64) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldCostUsedUsd, v))
}

// CostUsedUsdLTE applies the LTE predicate on the "cost_used_usd" field.
func CostUsedUsdLTE(v float64) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldCostUsedUsd, v))
}

// CanaryGroupEQ applies the EQ predicate on the "canary_group" field.
func CanaryGroupEQ(v CanaryGroup) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCanaryGroup, v))
}

// CanaryGroupNEQ applies the NEQ predicate on the "canary_group" field.
func CanaryGroupNEQ(v CanaryGroup) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldCanaryGroup, v))
}

// CanaryGroupIn applies the In predicate on the "canary_group" field.
func CanaryGroupIn(vs ...CanaryGroup) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldCanaryGroup, vs...))
}

// CanaryGroupNotIn applies the NotIn predicate on the "canary_group" field.
func CanaryGroupNotIn(vs ...CanaryGroup) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldCanaryGroup, vs...))
}

// PausedStateEQ applies the EQ predicate on the "paused_state" field.
func PausedStateEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldPausedState, v))
}

// PausedStateNEQ applies the NEQ predicate on the "paused_state" field.
func PausedStateNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldPausedState, v))
}

// PausedStateIn applies the In predicate on the "paused_state" field.
func PausedStateIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldPausedState, vs...))
}

// PausedStateNotIn applies the NotIn predicate on the "paused_state" field.
func PausedStateNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldPausedState, vs...))
}

// PausedStateGT applies the GT predicate on the "paused_state" field.
func PausedStateGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldPausedState, v))
}

// PausedStateGTE applies the GTE predicate on the "paused_state" field.
func PausedStateGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldPausedState, v))
}

// PausedStateLT applies the LT predicate on the "paused_state" field.
func PausedStateLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldPausedState, v))
}

// PausedStateLTE applies the LTE predicate on the "paused_state" field.
func PausedStateLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldPausedState, v))
}

// PausedStateContains applies the Contains predicate on the "paused_state" field.
func PausedStateContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldPausedState, v))
}

// PausedStateHasPrefix applies the HasPrefix predicate on the "paused_state" field.
func PausedStateHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldPausedState, v))
}

// PausedStateHasSuffix applies the HasSuffix predicate on the "paused_state" field.
func PausedStateHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldPausedState, v))
}

// PausedStateIsNil applies the IsNil predicate on the "paused_state" field.
func PausedStateIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldPausedState))
}

// PausedStateNotNil applies the NotNil predicate on the "paused_state" field.
func PausedStateNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldPausedState))
}

// PausedStateEqualFold applies the EqualFold predicate on the "paused_state" field.
func PausedStateEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldPausedState, v))
}

// PausedStateContainsFold applies the ContainsFold predicate on the "paused_state" field.
func PausedStateContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldPausedState, v))
}

// LastGreenIterationEQ applies the EQ predicate on the "last_green_iteration" field.
func LastGreenIterationEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldLastGreenIteration, v))
}

// LastGreenIterationNEQ applies the NEQ predicate on the "last_green_iteration" field.
func LastGreenIterationNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldLastGreenIteration, v))
}

// LastGreenIterationIn applies the In predicate on the "last_green_iteration" field.
func LastGreenIterationIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldLastGreenIteration, vs...))
}

// LastGreenIterationNotIn applies the NotIn predicate on the "last_green_iteration" field.
func LastGreenIterationNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldLastGreenIteration, vs...))
}

// LastGreenIterationGT applies the GT predicate on the "last_green_iteration" field.
func LastGreenIterationGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldLastGreenIteration, v))
}

// LastGreenIterationGTE applies the GTE predicate on the "last_green_iteration" field.
func LastGreenIterationGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldLastGreenIteration, v))
}

// LastGreenIterationLT applies the LT predicate on the "last_green_iteration" field.
func LastGreenIterationLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldLastGreenIteration, v))
}

// LastGreenIterationLTE applies the LTE predicate on the "last_green_iteration" field.
func LastGreenIterationLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldLastGreenIteration, v))
}

// LastGreenIterationIsNil applies the IsNil predicate on the "last_green_iteration" field.
func LastGreenIterationIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldLastGreenIteration))
}

// LastGreenIterationNotNil applies the NotNil predicate on the "last_green_iteration" field.
func LastGreenIterationNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldLastGreenIteration))
}

// TerminalReasonEQ applies the EQ predicate on the "terminal_reason" field.
func TerminalReasonEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldTerminalReason, v))
}

// TerminalReasonNEQ applies the NEQ predicate on the "terminal_reason" field.
func TerminalReasonNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldTerminalReason, v))
}

// TerminalReasonIn applies the In predicate on the "terminal_reason" field.
func TerminalReasonIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldTerminalReason, vs...))
}

// TerminalReasonNotIn applies the NotIn predicate on the "terminal_reason" field.
func TerminalReasonNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldTerminalReason, vs...))
}

// TerminalReasonGT applies the GT predicate on the "terminal_reason" field.
func TerminalReasonGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldTerminalReason, v))
}

// TerminalReasonGTE applies the GTE predicate on the "terminal_reason" field.
func TerminalReasonGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldTerminalReason, v))
}

// TerminalReasonLT applies the LT predicate on the "terminal_reason" field.
func TerminalReasonLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldTerminalReason, v))
}

// TerminalReasonLTE applies the LTE predicate on the "terminal_reason" field.
func TerminalReasonLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldTerminalReason, v))
}

// TerminalReasonContains applies the Contains predicate on the "terminal_reason" field.
func TerminalReasonContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldTerminalReason, v))
}

// TerminalReasonHasPrefix applies the HasPrefix predicate on the "terminal_reason" field.
func TerminalReasonHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldTerminalReason, v))
}

// TerminalReasonHasSuffix applies the HasSuffix predicate on the "terminal_reason" field.
func TerminalReasonHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldTerminalReason, v))
}

// TerminalReasonIsNil applies the IsNil predicate on the "terminal_reason" field.
func TerminalReasonIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldTerminalReason))
}

// TerminalReasonNotNil applies the NotNil predicate on the "terminal_reason" field.
func TerminalReasonNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldTerminalReason))
}

// TerminalReasonEqualFold applies the EqualFold predicate on the "terminal_reason" field.
func TerminalReasonEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldTerminalReason, v))
}

// TerminalReasonContainsFold applies the ContainsFold predicate on the "terminal_reason" field.
func TerminalReasonContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldTerminalReason, v))
}

// PatchStreakEQ applies the EQ predicate on the "patch_streak" field.
func PatchStreakEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldPatchStreak, v))
}

// PatchStreakNEQ applies the NEQ predicate on the "patch_streak" field.
func PatchStreakNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldPatchStreak, v))
}

// PatchStreakIn applies the In predicate on the "patch_streak" field.
func PatchStreakIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldPatchStreak, vs...))
}

// PatchStreakNotIn applies the NotIn predicate on the "patch_streak" field.
func PatchStreakNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldPatchStreak, vs...))
}

// PatchStreakGT applies the GT predicate on the "patch_streak" field.
func PatchStreakGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldPatchStreak, v))
}

// PatchStreakGTE applies the GTE predicate on the "patch_streak" field.
func PatchStreakGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldPatchStreak, v))
}

// PatchStreakLT applies the LT predicate on the "patch_streak" field.
func PatchStreakLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldPatchStreak, v))
}

// PatchStreakLTE applies the LTE predicate on the "patch_streak" field.
func PatchStreakLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldPatchStreak, v))
}

// ReplanScopeEQ applies the EQ predicate on the "replan_scope" field.
func ReplanScopeEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldReplanScope, v))
}

// ReplanScopeNEQ applies the NEQ predicate on the "replan_scope" field.
func ReplanScopeNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldReplanScope, v))
}

// ReplanScopeIn applies the In predicate on the "replan_scope" field.
func ReplanScopeIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldReplanScope, vs...))
}

// ReplanScopeNotIn applies the NotIn predicate on the "replan_scope" field.
func ReplanScopeNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldReplanScope, vs...))
}

// ReplanScopeGT applies the GT predicate on the "replan_scope" field.
func ReplanScopeGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldReplanScope, v))
}

// ReplanScopeGTE applies the GTE predicate on the "replan_scope" field.
func ReplanScopeGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldReplanScope, v))
}

// ReplanScopeLT applies the LT predicate on the "replan_scope" field.
func ReplanScopeLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldReplanScope, v))
}

// ReplanScopeLTE applies the LTE predicate on the "replan_scope" field.
func ReplanScopeLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldReplanScope, v))
}

// ReplanScopeContains applies the Contains predicate on the "replan_scope" field.
func ReplanScopeContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldReplanScope, v))
}

// ReplanScopeHasPrefix applies the HasPrefix predicate on the "replan_scope" field.
func ReplanScopeHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldReplanScope, v))
}

// ReplanScopeHasSuffix applies the HasSuffix predicate on the "replan_scope" field.
func ReplanScopeHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldReplanScope, v))
}

// ReplanScopeIsNil applies the IsNil predicate on the "replan_scope" field.
func ReplanScopeIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldReplanScope))
}

// ReplanScopeNotNil applies the NotNil predicate on the "replan_scope" field.
func ReplanScopeNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldReplanScope))
}

// ReplanScopeEqualFold applies the EqualFold predicate on the "replan_scope" field.
func ReplanScopeEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldReplanScope, v))
}

// ReplanScopeContainsFold applies the ContainsFold predicate on the "replan_scope" field.
func ReplanScopeContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldReplanScope, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldCompletedAt))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldDeletedAt))
}

// HasSpec applies the HasEdge predicate on the "spec" edge.
func HasSpec() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SpecTable, SpecColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSpecWith applies the HasEdge predicate on the "spec" edge with a given conditions (other predicates).
func HasSpecWith(preds ...predicate.BuildSpec) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newSpecStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSteps applies the HasEdge predicate on the "steps" edge.
func HasSteps() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepsWith applies the HasEdge predicate on the "steps" edge with a given conditions (other predicates).
func HasStepsWith(preds ...predicate.Step) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newStepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFailures applies the HasEdge predicate on the "failures" edge.
func HasFailures() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FailuresTable, FailuresColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFailuresWith applies the HasEdge predicate on the "failures" edge with a given conditions (other predicates).
func HasFailuresWith(preds ...predicate.Failure) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newFailuresStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRepairAttempts applies the HasEdge predicate on the "repair_attempts" edge.
func HasRepairAttempts() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RepairAttemptsTable, RepairAttemptsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRepairAttemptsWith applies the HasEdge predicate on the "repair_attempts" edge with a given conditions (other predicates).
func HasRepairAttemptsWith(preds ...predicate.RepairAttempt) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newRepairAttemptsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasArtifacts applies the HasEdge predicate on the "artifacts" edge.
func HasArtifacts() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ArtifactsTable, ArtifactsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasArtifactsWith applies the HasEdge predicate on the "artifacts" edge with a given conditions (other predicates).
func HasArtifactsWith(preds ...predicate.Artifact) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newArtifactsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasApprovalGates applies the HasEdge predicate on the "approval_gates" edge.
func HasApprovalGates() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ApprovalGatesTable, ApprovalGatesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasApprovalGatesWith applies the HasEdge predicate on the "approval_gates" edge with a given conditions (other predicates).
func HasApprovalGatesWith(preds ...predicate.ApprovalGate) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newApprovalGatesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBudget applies the HasEdge predicate on the "budget" edge.
func HasBudget() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, BudgetTable, BudgetColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBudgetWith applies the HasEdge predicate on the "budget" edge with a given conditions (other predicates).
func HasBudgetWith(preds ...predicate.Budget) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newBudgetStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTimelineEvents applies the HasEdge predicate on the "timeline_events" edge.
func HasTimelineEvents() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TimelineEventsTable, TimelineEventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTimelineEventsWith applies the HasEdge predicate on the "timeline_events" edge with a given conditions (other predicates).
func HasTimelineEventsWith(preds ...predicate.TimelineEvent) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newTimelineEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReplayBundle applies the HasEdge predicate on the "replay_bundle" edge.
func HasReplayBundle() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, ReplayBundleTable, ReplayBundleColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReplayBundleWith applies the HasEdge predicate on the "replay_bundle" edge with a given conditions (other predicates).
func HasReplayBundleWith(preds ...predicate.ReplayBundle) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newReplayBundleStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCanarySample applies the HasEdge predicate on the "canary_sample" edge.
func HasCanarySample() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, CanarySampleTable, CanarySampleColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCanarySampleWith applies the HasEdge predicate on the "canary_sample" edge with a given conditions (other predicates).
func HasCanarySampleWith(preds ...predicate.CanarySample) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newCanarySampleStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Run) predicate.Run {
	return predicate.Run(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Run) predicate.Run {
	return predicate.Run(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Run) predicate.Run {
	return predicate.Run(sql.NotPredicates(p))
}
