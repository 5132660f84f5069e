// Code generated by ent, DO NOT EDIT.

package circuitbreaker

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/forgeworks/metabuild/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldContainsFold(FieldID, id))
}

// Tenant applies equality check predicate on the "tenant" field. It's identical to TenantEQ.
func Tenant(v string) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldEQ(FieldTenant, v))
}

// FailCount applies equality check predicate on the "fail_count" field. It's identical to FailCountEQ.
func FailCount(v int) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldEQ(FieldFailCount, v))
}

// Threshold applies equality check predicate on the "threshold" field. It's identical to ThresholdEQ.
func Threshold(v int) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldEQ(FieldThreshold, v))
}

// WindowStart applies equality check predicate on the "window_start" field. It's identical to WindowStartEQ.
func WindowStart(v time.Time) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldEQ(FieldWindowStart, v))
}

// OpenedAt applies equality check predicate on the "opened_at" field. It's identical to OpenedAtEQ.
func OpenedAt(v time.Time) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldEQ(FieldOpenedAt, v))
}

// CooldownUntil applies equality check predicate on the "cooldown_until" field. It's identical to CooldownUntilEQ.
func CooldownUntil(v time.Time) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldEQ(FieldCooldownUntil, v))
}

// CooldownS applies equality check predicate on the "cooldown_s" field. It's identical to CooldownSEQ.
func CooldownS(v int) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldEQ(FieldCooldownS, v))
}

// TenantEQ applies the EQ predicate on the "tenant" field.
func TenantEQ(v string) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldEQ(FieldTenant, v))
}

// TenantNEQ applies the NEQ predicate on the "tenant" field.
func TenantNEQ(v string) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldNEQ(FieldTenant, v))
}

// TenantIn applies the In predicate on the "tenant" field.
func TenantIn(vs ...string) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldIn(FieldTenant, vs...))
}

// TenantNotIn applies the NotIn predicate on the "tenant" field.
func TenantNotIn(vs ...string) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldNotIn(FieldTenant, vs...))
}

// TenantGT applies the GT predicate on the "tenant" field.
func TenantGT(v string) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldGT(FieldTenant, v))
}

// TenantGTE applies the GTE predicate on the "tenant" field.
func TenantGTE(v string) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldGTE(FieldTenant, v))
}

// TenantLT applies the LT predicate on the "tenant" field.
func TenantLT(v string) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldLT(FieldTenant, v))
}

// TenantLTE applies the LTE predicate on the "tenant" field.
func TenantLTE(v string) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldLTE(FieldTenant, v))
}

// TenantContains applies the Contains predicate on the "tenant" field.
func TenantContains(v string) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldContains(FieldTenant, v))
}

// TenantHasPrefix applies the HasPrefix predicate on the "tenant" field.
func TenantHasPrefix(v string) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldHasPrefix(FieldTenant, v))
}

// TenantHasSuffix applies the HasSuffix predicate on the "tenant" field.
func TenantHasSuffix(v string) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldHasSuffix(FieldTenant, v))
}

// TenantEqualFold applies the EqualFold predicate on the "tenant" field.
func TenantEqualFold(v string) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldEqualFold(FieldTenant, v))
}

// TenantContainsFold applies the ContainsFold predicate on the "tenant" field.
func TenantContainsFold(v string) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldContainsFold(FieldTenant, v))
}

// FailureClassEQ applies the EQ predicate on the "failure_class" field.
func FailureClassEQ(v FailureClass) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldEQ(FieldFailureClass, v))
}

// FailureClassNEQ applies the NEQ predicate on the "failure_class" field.
func FailureClassNEQ(v FailureClass) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldNEQ(FieldFailureClass, v))
}

// FailureClassIn applies the In predicate on the "failure_class" field.
func FailureClassIn(vs ...FailureClass) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldIn(FieldFailureClass, vs...))
}

// FailureClassNotIn applies the NotIn predicate on the "failure_class" field.
func FailureClassNotIn(vs ...FailureClass) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldNotIn(FieldFailureClass, vs...))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldNotIn(FieldState, vs...))
}

// FailCountEQ applies the EQ predicate on the "fail_count" field.
func FailCountEQ(v int) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldEQ(FieldFailCount, v))
}

// FailCountNEQ applies the NEQ predicate on the "fail_count" field.
func FailCountNEQ(v int) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldNEQ(FieldFailCount, v))
}

// FailCountIn applies the In predicate on the "fail_count" field.
func FailCountIn(vs ...int) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldIn(FieldFailCount, vs...))
}

// FailCountNotIn applies the NotIn predicate on the "fail_count" field.
func FailCountNotIn(vs ...int) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldNotIn(FieldFailCount, vs...))
}

// FailCountGT applies the GT predicate on the "fail_count" field.
func FailCountGT(v int) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldGT(FieldFailCount, v))
}

// FailCountGTE applies the GTE predicate on the "fail_count" field.
func FailCountGTE(v int) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldGTE(FieldFailCount, v))
}

// FailCountLT applies the LT predicate on the "fail_count" field.
func FailCountLT(v int) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldLT(FieldFailCount, v))
}

// FailCountLTE applies the LTE predicate on the "fail_count" field.
func FailCountLTE(v int) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldLTE(FieldFailCount, v))
}

// ThresholdEQ applies the EQ predicate on the "threshold" field.
func ThresholdEQ(v int) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldEQ(FieldThreshold, v))
}

// ThresholdNEQ applies the NEQ predicate on the "threshold" field.
func ThresholdNEQ(v int) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldNEQ(FieldThreshold, v))
}

// ThresholdIn applies the In predicate on the "threshold" field.
func ThresholdIn(vs ...int) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldIn(FieldThreshold, vs...))
}

// ThresholdNotIn applies the NotIn predicate on the "threshold" field.
func ThresholdNotIn(vs ...int) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldNotIn(FieldThreshold, vs...))
}

// ThresholdGT applies the GT predicate on the "threshold" field.
func ThresholdGT(v int) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldGT(FieldThreshold, v))
}

// ThresholdGTE applies the GTE predicate on the "threshold" field.
func ThresholdGTE(v int) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldGTE(FieldThreshold, v))
}

// ThresholdLT applies the LT predicate on the "threshold" field.
func ThresholdLT(v int) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldLT(FieldThreshold, v))
}

// ThresholdLTE applies the LTE predicate on the "threshold" field.
func ThresholdLTE(v int) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldLTE(FieldThreshold, v))
}

// WindowStartEQ applies the EQ predicate on the "window_start" field.
func WindowStartEQ(v time.Time) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldEQ(FieldWindowStart, v))
}

// WindowStartNEQ applies the NEQ predicate on the "window_start" field.
func WindowStartNEQ(v time.Time) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldNEQ(FieldWindowStart, v))
}

// WindowStartIn applies the In predicate on the "window_start" field.
func WindowStartIn(vs ...time.Time) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldIn(FieldWindowStart, vs...))
}

// WindowStartNotIn applies the NotIn predicate on the "window_start" field.
func WindowStartNotIn(vs ...time.Time) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldNotIn(FieldWindowStart, vs...))
}

// WindowStartGT applies the GT predicate on the "window_start" field.
func WindowStartGT(v time.Time) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldGT(FieldWindowStart, v))
}

// WindowStartGTE applies the GTE predicate on the "window_start" field.
func WindowStartGTE(v time.Time) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldGTE(FieldWindowStart, v))
}

// WindowStartLT applies the LT predicate on the "window_start" field.
func WindowStartLT(v time.Time) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldLT(FieldWindowStart, v))
}

// WindowStartLTE applies the LTE predicate on the "window_start" field.
func WindowStartLTE(v time.Time) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldLTE(FieldWindowStart, v))
}

// WindowStartIsNil applies the IsNil predicate on the "window_start" field.
func WindowStartIsNil() predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldIsNull(FieldWindowStart))
}

// WindowStartNotNil applies the NotNil predicate on the "window_start" field.
func WindowStartNotNil() predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldNotNull(FieldWindowStart))
}

// OpenedAtEQ applies the EQ predicate on the "opened_at" field.
func OpenedAtEQ(v time.Time) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldEQ(FieldOpenedAt, v))
}

// OpenedAtNEQ applies the NEQ predicate on the "opened_at" field.
func OpenedAtNEQ(v time.Time) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldNEQ(FieldOpenedAt, v))
}

// OpenedAtIn applies the In predicate on the "opened_at" field.
func OpenedAtIn(vs ...time.Time) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldIn(FieldOpenedAt, vs...))
}

// OpenedAtNotIn applies the NotIn predicate on the "opened_at" field.
func OpenedAtNotIn(vs ...time.Time) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldNotIn(FieldOpenedAt, vs...))
}

// OpenedAtGT applies the GT predicate on the "opened_at" field.
func OpenedAtGT(v time.Time) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldGT(FieldOpenedAt, v))
}

// OpenedAtGTE applies the GTE predicate on the "opened_at" field.
func OpenedAtGTE(v time.Time) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldGTE(FieldOpenedAt, v))
}

// OpenedAtLT applies the LT predicate on the "opened_at" field.
func OpenedAtLT(v time.Time) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldLT(FieldOpenedAt, v))
}

// OpenedAtLTE applies the LTE predicate on the "opened_at" field.
func OpenedAtLTE(v time.Time) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldLTE(FieldOpenedAt, v))
}

// OpenedAtIsNil applies the IsNil predicate on the "opened_at" field.
func OpenedAtIsNil() predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldIsNull(FieldOpenedAt))
}

// OpenedAtNotNil applies the NotNil predicate on the "opened_at" field.
func OpenedAtNotNil() predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldNotNull(FieldOpenedAt))
}

// CooldownUntilEQ applies the EQ predicate on the "cooldown_until" field.
func CooldownUntilEQ(v time.Time) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldEQ(FieldCooldownUntil, v))
}

// CooldownUntilNEQ applies the NEQ predicate on the "cooldown_until" field.
func CooldownUntilNEQ(v time.Time) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldNEQ(FieldCooldownUntil, v))
}

// CooldownUntilIn applies the In predicate on the "cooldown_until" field.
func CooldownUntilIn(vs ...time.Time) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldIn(FieldCooldownUntil, vs...))
}

// CooldownUntilNotIn applies the NotIn predicate on the "cooldown_until" field.
func CooldownUntilNotIn(vs ...time.Time) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldNotIn(FieldCooldownUntil, vs...))
}

// CooldownUntilGT applies the GT predicate on the "cooldown_until" field.
func CooldownUntilGT(v time.Time) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldGT(FieldCooldownUntil, v))
}

// CooldownUntilGTE applies the GTE predicate on the "cooldown_until" field.
func CooldownUntilGTE(v time.Time) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldGTE(FieldCooldownUntil, v))
}

// CooldownUntilLT applies the LT predicate on the "cooldown_until" field.
func CooldownUntilLT(v time.Time) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldLT(FieldCooldownUntil, v))
}

// CooldownUntilLTE applies the LTE predicate on the "cooldown_until" field.
func CooldownUntilLTE(v time.Time) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldLTE(FieldCooldownUntil, v))
}

// CooldownUntilIsNil applies the IsNil predicate on the "cooldown_until" field.
func CooldownUntilIsNil() predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldIsNull(FieldCooldownUntil))
}

// CooldownUntilNotNil applies the NotNil predicate on the "cooldown_until" field.
func CooldownUntilNotNil() predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldNotNull(FieldCooldownUntil))
}

// CooldownSEQ applies the EQ predicate on the "cooldown_s" field.
func CooldownSEQ(v int) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldEQ(FieldCooldownS, v))
}

// CooldownSNEQ applies the NEQ predicate on the "cooldown_s" field.
func CooldownSNEQ(v int) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldNEQ(FieldCooldownS, v))
}

// CooldownSIn applies the In predicate on the "cooldown_s" field.
func CooldownSIn(vs ...int) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldIn(FieldCooldownS, vs...))
}

// CooldownSNotIn applies the NotIn predicate on the "cooldown_s" field.
func CooldownSNotIn(vs ...int) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldNotIn(FieldCooldownS, vs...))
}

// CooldownSGT applies the GT predicate on the "cooldown_s" field.
func CooldownSGT(v int) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldGT(FieldCooldownS, v))
}

// CooldownSGTE applies the GTE predicate on the "cooldown_s" field.
func CooldownSGTE(v int) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldGTE(FieldCooldownS, v))
}

// CooldownSLT applies the LT predicate on the "cooldown_s" field.
func CooldownSLT(v int) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldLT(FieldCooldownS, v))
}

// CooldownSLTE applies the LTE predicate on the "cooldown_s" field.
func CooldownSLTE(v int) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.FieldLTE(FieldCooldownS, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CircuitBreaker) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CircuitBreaker) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CircuitBreaker) predicate.CircuitBreaker {
	return predicate.CircuitBreaker(sql.NotPredicates(p))
}
