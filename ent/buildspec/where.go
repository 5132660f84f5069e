// Code generated by ent, DO NOT EDIT.

package buildspec

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/forgeworks/metabuild/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldContainsFold(FieldID, id))
}

// Tenant applies equality check predicate on the "tenant" field. It's identical to TenantEQ.
func Tenant(v string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldEQ(FieldTenant, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldEQ(FieldSource, v))
}

// ReviewRequired applies equality check predicate on the "review_required" field. It's identical to ReviewRequiredEQ.
func ReviewRequired(v bool) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldEQ(FieldReviewRequired, v))
}

// MaxIters applies equality check predicate on the "max_iters" field. It's identical to MaxItersEQ.
func MaxIters(v int) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldEQ(FieldMaxIters, v))
}

// TokenBudget applies equality check predicate on the "token_budget" field. It's identical to TokenBudgetEQ.
func TokenBudget(v int) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldEQ(FieldTokenBudget, v))
}

// CostLimitUsd applies equality check predicate on the "cost_limit_usd" field. It's identical to CostLimitUsdEQ.
func CostLimitUsd(v float64) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldEQ(FieldCostLimitUsd, v))
}

// WallTimeS applies equality check predicate on the "wall_time_s" field. It's identical to WallTimeSEQ.
func WallTimeS(v int) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldEQ(FieldWallTimeS, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldEQ(FieldCreatedAt, v))
}

// TenantEQ applies the EQ predicate on the "tenant" field.
func TenantEQ(v string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldEQ(FieldTenant, v))
}

// TenantNEQ applies the NEQ predicate on the "tenant" field.
func TenantNEQ(v string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldNEQ(FieldTenant, v))
}

// TenantIn applies the In predicate on the "tenant" field.
func TenantIn(vs ...string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldIn(FieldTenant, vs...))
}

// TenantNotIn applies the NotIn predicate on the "tenant" field.
func TenantNotIn(vs ...string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldNotIn(FieldTenant, vs...))
}

// TenantGT applies the GT predicate on the "tenant" field.
func TenantGT(v string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldGT(FieldTenant, v))
}

// TenantGTE applies the GTE predicate on the "tenant" field.
func TenantGTE(v string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldGTE(FieldTenant, v))
}

// TenantLT applies the LT predicate on the "tenant" field.
func TenantLT(v string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldLT(FieldTenant, v))
}

// TenantLTE applies the LTE predicate on the "tenant" field.
func TenantLTE(v string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldLTE(FieldTenant, v))
}

// TenantContains applies the Contains predicate on the "tenant" field.
func TenantContains(v string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldContains(FieldTenant, v))
}

// TenantHasPrefix applies the HasPrefix predicate on the "tenant" field.
func TenantHasPrefix(v string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldHasPrefix(FieldTenant, v))
}

// TenantHasSuffix applies the HasSuffix predicate on the "tenant" field.
func TenantHasSuffix(v string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldHasSuffix(FieldTenant, v))
}

// TenantEqualFold applies the EqualFold predicate on the "tenant" field.
func TenantEqualFold(v string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldEqualFold(FieldTenant, v))
}

// TenantContainsFold applies the ContainsFold predicate on the "tenant" field.
func TenantContainsFold(v string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldContainsFold(FieldTenant, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldContainsFold(FieldSource, v))
}

// SourceKindEQ applies the EQ predicate on the "source_kind" field.
func SourceKindEQ(v SourceKind) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldEQ(FieldSourceKind, v))
}

// SourceKindNEQ applies the NEQ predicate on the "source_kind" field.
func SourceKindNEQ(v SourceKind) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldNEQ(FieldSourceKind, v))
}

// SourceKindIn applies the In predicate on the "source_kind" field.
func SourceKindIn(vs ...SourceKind) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldIn(FieldSourceKind, vs...))
}

// SourceKindNotIn applies the NotIn predicate on the "source_kind" field.
func SourceKindNotIn(vs ...SourceKind) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldNotIn(FieldSourceKind, vs...))
}

// SLAClassEQ applies the EQ predicate on the "sla_class" field.
func SLAClassEQ(v SLAClass) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldEQ(FieldSLAClass, v))
}

// SLAClassNEQ applies the NEQ predicate on the "sla_class" field.
func SLAClassNEQ(v SLAClass) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldNEQ(FieldSLAClass, v))
}

// SLAClassIn applies the In predicate on the "sla_class" field.
func SLAClassIn(vs ...SLAClass) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldIn(FieldSLAClass, vs...))
}

// SLAClassNotIn applies the NotIn predicate on the "sla_class" field.
func SLAClassNotIn(vs ...SLAClass) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldNotIn(FieldSLAClass, vs...))
}

// ReviewRequiredEQ applies the EQ predicate on the "review_required" field.
func ReviewRequiredEQ(v bool) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldEQ(FieldReviewRequired, v))
}

// ReviewRequiredNEQ applies the NEQ predicate on the "review_required" field.
func ReviewRequiredNEQ(v bool) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldNEQ(FieldReviewRequired, v))
}

// MaxItersEQ applies the EQ predicate on the "max_iters" field.
func MaxItersEQ(v int) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldEQ(FieldMaxIters, v))
}

// MaxItersNEQ applies the NEQ predicate on the "max_iters" field.
func MaxItersNEQ(v int) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldNEQ(FieldMaxIters, v))
}

// MaxItersIn applies the In predicate on the "max_iters" field.
func MaxItersIn(vs ...int) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldIn(FieldMaxIters, vs...))
}

// MaxItersNotIn applies the NotIn predicate on the "max_iters" field.
func MaxItersNotIn(vs ...int) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldNotIn(FieldMaxIters, vs...))
}

// MaxItersGT applies the GT predicate on the "max_iters" field.
func MaxItersGT(v int) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldGT(FieldMaxIters, v))
}

// MaxItersGTE applies the GTE predicate on the "max_iters" field.
func MaxItersGTE(v int) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldGTE(FieldMaxIters, v))
}

// MaxItersLT applies the LT predicate on the "max_iters" field.
func MaxItersLT(v int) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldLT(FieldMaxIters, v))
}

// MaxItersLTE applies the LTE predicate on the "max_iters" field.
func MaxItersLTE(v int) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldLTE(FieldMaxIters, v))
}

// TokenBudgetEQ applies the EQ predicate on the "token_budget" field.
func TokenBudgetEQ(v int) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldEQ(FieldTokenBudget, v))
}

// TokenBudgetNEQ applies the NEQ predicate on the "token_budget" field.
func TokenBudgetNEQ(v int) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldNEQ(FieldTokenBudget, v))
}

// TokenBudgetIn applies the In predicate on the "token_budget" field.
func TokenBudgetIn(vs ...int) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldIn(FieldTokenBudget, vs...))
}

// TokenBudgetNotIn applies the NotIn predicate on the "token_budget" field.
func TokenBudgetNotIn(vs ...int) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldNotIn(FieldTokenBudget, vs...))
}

// TokenBudgetGT applies the GT predicate on the "token_budget" field.
func TokenBudgetGT(v int) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldGT(FieldTokenBudget, v))
}

// TokenBudgetGTE applies the GTE predicate on the "token_budget" field.
func TokenBudgetGTE(v int) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldGTE(FieldTokenBudget, v))
}

// TokenBudgetLT applies the LT predicate on the "token_budget" field.
func TokenBudgetLT(v int) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldLT(FieldTokenBudget, v))
}

// TokenBudgetLTE applies the LTE predicate on the "token_budget" field.
func TokenBudgetLTE(v int) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldLTE(FieldTokenBudget, v))
}

// CostLimitUsdEQ applies the EQ predicate on the "cost_limit_usd" field.
func CostLimitUsdEQ(v float64) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldEQ(FieldCostLimitUsd, v))
}

// CostLimitUsdNEQ applies the NEQ predicate on the "cost_limit_usd" field.
func CostLimitUsdNEQ(v float64) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldNEQ(FieldCostLimitUsd, v))
}

// CostLimitUsdIn applies the In predicate on the "cost_limit_usd" field.
func CostLimitUsdIn(vs ...float64) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldIn(FieldCostLimitUsd, vs...))
}

// CostLimitUsdNotIn applies the NotIn predicate on the "cost_limit_usd" field.
func CostLimitUsdNotIn(vs ...float64) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldNotIn(FieldCostLimitUsd, vs...))
}

// CostLimitUsdGT applies the GT predicate on the "cost_limit_usd" field.
func CostLimitUsdGT(v float64) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldGT(FieldCostLimitUsd, v))
}

// CostLimitUsdGTE applies the GTE predicate on the "cost_limit_usd" field.
func CostLimitUsdGTE(v float64) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldGTE(FieldCostLimitUsd, v))
}

// CostLimitUsdLT applies the LT predicate on the "cost_limit_usd" field.
func CostLimitUsdLT(v float64) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldLT(FieldCostLimitUsd, v))
}

// CostLimitUsdLTE applies the LTE predicate on the "cost_limit_usd" field.
func CostLimitUsdLTE(v float64) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldLTE(FieldCostLimitUsd, v))
}

// WallTimeSEQ applies the EQ predicate on the "wall_time_s" field.
func WallTimeSEQ(v int) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldEQ(FieldWallTimeS, v))
}

// WallTimeSNEQ applies the NEQ predicate on the "wall_time_s" field.
func WallTimeSNEQ(v int) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldNEQ(FieldWallTimeS, v))
}

// WallTimeSIn applies the In predicate on the "wall_time_s" field.
func WallTimeSIn(vs ...int) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldIn(FieldWallTimeS, vs...))
}

// WallTimeSNotIn applies the NotIn predicate on the "wall_time_s" field.
func WallTimeSNotIn(vs ...int) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldNotIn(FieldWallTimeS, vs...))
}

// WallTimeSGT applies the GT predicate on the "wall_time_s" field.
func WallTimeSGT(v int) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldGT(FieldWallTimeS, v))
}

// WallTimeSGTE applies the GTE predicate on the "wall_time_s" field.
func WallTimeSGTE(v int) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldGTE(FieldWallTimeS, v))
}

// WallTimeSLT applies the LT predicate on the "wall_time_s" field.
func WallTimeSLT(v int) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldLT(FieldWallTimeS, v))
}

// WallTimeSLTE applies the LTE predicate on the "wall_time_s" field.
func WallTimeSLTE(v int) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldLTE(FieldWallTimeS, v))
}

// AcceptanceIsNil applies the IsNil predicate on the "acceptance" field.
func AcceptanceIsNil() predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldIsNull(FieldAcceptance))
}

// AcceptanceNotNil applies the NotNil predicate on the "acceptance" field.
func AcceptanceNotNil() predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldNotNull(FieldAcceptance))
}

// KpiGuardsIsNil applies the IsNil predicate on the "kpi_guards" field.
func KpiGuardsIsNil() predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldIsNull(FieldKpiGuards))
}

// KpiGuardsNotNil applies the NotNil predicate on the "kpi_guards" field.
func KpiGuardsNotNil() predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldNotNull(FieldKpiGuards))
}

// DomainTagsIsNil applies the IsNil predicate on the "domain_tags" field.
func DomainTagsIsNil() predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldIsNull(FieldDomainTags))
}

// DomainTagsNotNil applies the NotNil predicate on the "domain_tags" field.
func DomainTagsNotNil() predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldNotNull(FieldDomainTags))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BuildSpec {
	return predicate.BuildSpec(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRuns applies the HasEdge predicate on the "runs" edge.
func HasRuns() predicate.BuildSpec {
	return predicate.BuildSpec(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RunsTable, RunsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunsWith applies the HasEdge predicate on the "runs" edge with a given conditions (other predicates).
func HasRunsWith(preds ...predicate.Run) predicate.BuildSpec {
	return predicate.BuildSpec(func(s *sql.Selector) {
		step := newRunsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BuildSpec) predicate.BuildSpec {
	return predicate.BuildSpec(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BuildSpec) predicate.BuildSpec {
	return predicate.BuildSpec(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BuildSpec) predicate.BuildSpec {
	return predicate.BuildSpec(sql.NotPredicates(p))
}
