// Code generated by ent, DO NOT EDIT.

package buildspec

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the buildspec type in the database.
	Label = "build_spec"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "spec_id"
	// FieldTenant holds the string denoting the tenant field in the database.
	FieldTenant = "tenant"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldSourceKind holds the string denoting the source_kind field in the database.
	FieldSourceKind = "source_kind"
	// FieldSLAClass holds the string denoting the sla_class field in the database.
	FieldSLAClass = "sla_class"
	// FieldReviewRequired holds the string denoting the review_required field in the database.
	FieldReviewRequired = "review_required"
	// FieldMaxIters holds the string denoting the max_iters field in the database.
	FieldMaxIters = "max_iters"
	// FieldTokenBudget holds the string denoting the token_budget field in the database.
	FieldTokenBudget = "token_budget"
	// FieldCostLimitUsd holds the string denoting the cost_limit_usd field in the database.
	FieldCostLimitUsd = "cost_limit_usd"
	// FieldWallTimeS holds the string denoting the wall_time_s field in the database.
	FieldWallTimeS = "wall_time_s"
	// FieldAcceptance holds the string denoting the acceptance field in the database.
	FieldAcceptance = "acceptance"
	// FieldKpiGuards holds the string denoting the kpi_guards field in the database.
	FieldKpiGuards = "kpi_guards"
	// FieldDomainTags holds the string denoting the domain_tags field in the database.
	FieldDomainTags = "domain_tags"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRuns holds the string denoting the runs edge name in mutations.
	EdgeRuns = "runs"
	// RunFieldID holds the string denoting the ID field of the Run.
	RunFieldID = "run_id"
	// Table holds the table name of the buildspec in the database.
	Table = "build_specs"
	// RunsTable is the table that holds the runs relation/edge.
	RunsTable = "runs"
	// RunsInverseTable is the table name for the Run entity.
	// It exists in this package in order to avoid circular dependency with the "run" package.
	RunsInverseTable = "runs"
	// RunsColumn is the table column denoting the runs relation/edge.
	RunsColumn = "spec_id"
)

// Columns holds all SQL columns for buildspec fields.
var Columns = []string{
	FieldID,
	FieldTenant,
	FieldSource,
	FieldSourceKind,
	FieldSLAClass,
	FieldReviewRequired,
	FieldMaxIters,
	FieldTokenBudget,
	FieldCostLimitUsd,
	FieldWallTimeS,
	FieldAcceptance,
	FieldKpiGuards,
	FieldDomainTags,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultReviewRequired holds the default value on creation for the "review_required" field.
	DefaultReviewRequired bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// SourceKind defines the type for the "source_kind" enum field.
type SourceKind string

// SourceKindText is the default value of the SourceKind enum.
const DefaultSourceKind = SourceKindText

// SourceKind values.
const (
	SourceKindText    SourceKind = "text"
	SourceKindDsl     SourceKind = "dsl"
	SourceKindErd     SourceKind = "erd"
	SourceKindOpenapi SourceKind = "openapi"
	SourceKindCsv     SourceKind = "csv"
)

func (sk SourceKind) String() string {
	return string(sk)
}

// SourceKindValidator is a validator for the "source_kind" field enum values. It is called by the builders before save.
func SourceKindValidator(sk SourceKind) error {
	switch sk {
	case SourceKindText, SourceKindDsl, SourceKindErd, SourceKindOpenapi, SourceKindCsv:
		return nil
	default:
		return fmt.Errorf("buildspec: invalid enum value for source_kind field: %q", sk)
	}
}

// SLAClass defines the type for the "sla_class" enum field.
type SLAClass string

// SLAClassNormal is the default value of the SLAClass enum.
const DefaultSLAClass = SLAClassNormal

// SLAClass values.
const (
	SLAClassFast     SLAClass = "fast"
	SLAClassNormal   SLAClass = "normal"
	SLAClassThorough SLAClass = "thorough"
)

func (sc SLAClass) String() string {
	return string(sc)
}

// SLAClassValidator is a validator for the "sla_class" field enum values. It is called by the builders before save.
func SLAClassValidator(sc SLAClass) error {
	switch sc {
	case SLAClassFast, SLAClassNormal, SLAClassThorough:
		return nil
	default:
		return fmt.Errorf("buildspec: invalid enum value for sla_class field: %q", sc)
	}
}

// OrderOption defines the ordering options for the BuildSpec queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenant orders the results by the tenant field.
func ByTenant(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenant, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// BySourceKind orders the results by the source_kind field.
func BySourceKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceKind, opts...).ToFunc()
}

// BySLAClass orders the results by the sla_class field.
func BySLAClass(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSLAClass, opts...).ToFunc()
}

// ByReviewRequired orders the results by the review_required field.
func ByReviewRequired(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewRequired, opts...).ToFunc()
}

// ByMaxIters orders the results by the max_iters field.
func ByMaxIters(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxIters, opts...).ToFunc()
}

// ByTokenBudget orders the results by the token_budget field.
func ByTokenBudget(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokenBudget, opts...).ToFunc()
}

// ByCostLimitUsd orders the results by the cost_limit_usd field.
func ByCostLimitUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCostLimitUsd, opts...).ToFunc()
}

// ByWallTimeS orders the results by the wall_time_s field.
func ByWallTimeS(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWallTimeS, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRunsCount orders the results by runs count.
func ByRunsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRunsStep(), opts...)
	}
}

// ByRuns orders the results by runs terms.
func ByRuns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRunsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunsInverseTable, RunFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RunsTable, RunsColumn),
	)
}
