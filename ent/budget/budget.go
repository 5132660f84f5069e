// Code generated by ent, DO NOT EDIT.

package budget

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the budget type in the database.
	Label = "budget"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "budget_id"
	// FieldTenant holds the string denoting the tenant field in the database.
	FieldTenant = "tenant"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldCostLimitUsd holds the string denoting the cost_limit_usd field in the database.
	FieldCostLimitUsd = "cost_limit_usd"
	// FieldCostUsedUsd holds the string denoting the cost_used_usd field in the database.
	FieldCostUsedUsd = "cost_used_usd"
	// FieldTimeLimitS holds the string denoting the time_limit_s field in the database.
	FieldTimeLimitS = "time_limit_s"
	// FieldTimeUsedS holds the string denoting the time_used_s field in the database.
	FieldTimeUsedS = "time_used_s"
	// FieldAttemptLimit holds the string denoting the attempt_limit field in the database.
	FieldAttemptLimit = "attempt_limit"
	// FieldAttemptUsed holds the string denoting the attempt_used field in the database.
	FieldAttemptUsed = "attempt_used"
	// FieldExceededAt holds the string denoting the exceeded_at field in the database.
	FieldExceededAt = "exceeded_at"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// RunFieldID holds the string denoting the ID field of the Run.
	RunFieldID = "run_id"
	// Table holds the table name of the budget in the database.
	Table = "budgets"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "budgets"
	// RunInverseTable is the table name for the Run entity.
	// It exists in this package in order to avoid circular dependency with the "run" package.
	RunInverseTable = "runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
)

// Columns holds all SQL columns for budget fields.
var Columns = []string{
	FieldID,
	FieldTenant,
	FieldRunID,
	FieldCostLimitUsd,
	FieldCostUsedUsd,
	FieldTimeLimitS,
	FieldTimeUsedS,
	FieldAttemptLimit,
	FieldAttemptUsed,
	FieldExceededAt,
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
	// DefaultCostUsedUsd holds the default value on creation for the "cost_used_usd" field.
	DefaultCostUsedUsd float64
	// DefaultTimeUsedS holds the default value on creation for the "time_used_s" field.
	DefaultTimeUsedS int
	// DefaultAttemptUsed holds the default value on creation for the "attempt_used" field.
	DefaultAttemptUsed int
)

// OrderOption defines the ordering options for the Budget queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenant orders the results by the tenant field.
func ByTenant(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenant, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByCostLimitUsd orders the results by the cost_limit_usd field.
func ByCostLimitUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCostLimitUsd, opts...).ToFunc()
}

// ByCostUsedUsd orders the results by the cost_used_usd field.
func ByCostUsedUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCostUsedUsd, opts...).ToFunc()
}

// ByTimeLimitS orders the results by the time_limit_s field.
func ByTimeLimitS(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeLimitS, opts...).ToFunc()
}

// ByTimeUsedS orders the results by the time_used_s field.
func ByTimeUsedS(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeUsedS, opts...).ToFunc()
}

// ByAttemptLimit orders the results by the attempt_limit field.
func ByAttemptLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptLimit, opts...).ToFunc()
}

// ByAttemptUsed orders the results by the attempt_used field.
func ByAttemptUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptUsed, opts...).ToFunc()
}

// ByExceededAt orders the results by the exceeded_at field.
func ByExceededAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExceededAt, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, RunFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, RunTable, RunColumn),
	)
}
