// Code generated by ent, DO NOT EDIT.

package failure

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the failure type in the database.
	Label = "failure"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "failure_id"
	// FieldTenant holds the string denoting the tenant field in the database.
	FieldTenant = "tenant"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldStepID holds the string denoting the step_id field in the database.
	FieldStepID = "step_id"
	// FieldClass holds the string denoting the class field in the database.
	FieldClass = "class"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldLogExcerpt holds the string denoting the log_excerpt field in the database.
	FieldLogExcerpt = "log_excerpt"
	// FieldRetryable holds the string denoting the retryable field in the database.
	FieldRetryable = "retryable"
	// FieldRequiresReplan holds the string denoting the requires_replan field in the database.
	FieldRequiresReplan = "requires_replan"
	// FieldRequiresHuman holds the string denoting the requires_human field in the database.
	FieldRequiresHuman = "requires_human"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// EdgeStep holds the string denoting the step edge name in mutations.
	EdgeStep = "step"
	// RunFieldID holds the string denoting the ID field of the Run.
	RunFieldID = "run_id"
	// StepFieldID holds the string denoting the ID field of the Step.
	StepFieldID = "step_id"
	// Table holds the table name of the failure in the database.
	Table = "failures"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "failures"
	// RunInverseTable is the table name for the Run entity.
	// It exists in this package in order to avoid circular dependency with the "run" package.
	RunInverseTable = "runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
	// StepTable is the table that holds the step relation/edge.
	StepTable = "failures"
	// StepInverseTable is the table name for the Step entity.
	// It exists in this package in order to avoid circular dependency with the "step" package.
	StepInverseTable = "steps"
	// StepColumn is the table column denoting the step relation/edge.
	StepColumn = "step_id"
)

// Columns holds all SQL columns for failure fields.
var Columns = []string{
	FieldID,
	FieldTenant,
	FieldRunID,
	FieldStepID,
	FieldClass,
	FieldConfidence,
	FieldLogExcerpt,
	FieldRetryable,
	FieldRequiresReplan,
	FieldRequiresHuman,
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
	// DefaultRequiresReplan holds the default value on creation for the "requires_replan" field.
	DefaultRequiresReplan bool
	// DefaultRequiresHuman holds the default value on creation for the "requires_human" field.
	DefaultRequiresHuman bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Class defines the type for the "class" enum field.
type Class string

// Class values.
const (
	ClassTransient       Class = "transient"
	ClassInfra           Class = "infra"
	ClassTestAssert      Class = "test_assert"
	ClassLint            Class = "lint"
	ClassTypeCheck       Class = "type_check"
	ClassSecurity        Class = "security"
	ClassPolicy          Class = "policy"
	ClassRuntime         Class = "runtime"
	ClassSchemaMigration Class = "schema_migration"
	ClassRateLimit       Class = "rate_limit"
	ClassUnknown         Class = "unknown"
)

func (c Class) String() string {
	return string(c)
}

// ClassValidator is a validator for the "class" field enum values. It is called by the builders before save.
func ClassValidator(c Class) error {
	switch c {
	case ClassTransient, ClassInfra, ClassTestAssert, ClassLint, ClassTypeCheck, ClassSecurity, ClassPolicy, ClassRuntime, ClassSchemaMigration, ClassRateLimit, ClassUnknown:
		return nil
	default:
		return fmt.Errorf("failure: invalid enum value for class field: %q", c)
	}
}

// OrderOption defines the ordering options for the Failure queries.
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

// ByStepID orders the results by the step_id field.
func ByStepID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepID, opts...).ToFunc()
}

// ByClass orders the results by the class field.
func ByClass(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClass, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByLogExcerpt orders the results by the log_excerpt field.
func ByLogExcerpt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogExcerpt, opts...).ToFunc()
}

// ByRetryable orders the results by the retryable field.
func ByRetryable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryable, opts...).ToFunc()
}

// ByRequiresReplan orders the results by the requires_replan field.
func ByRequiresReplan(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequiresReplan, opts...).ToFunc()
}

// ByRequiresHuman orders the results by the requires_human field.
func ByRequiresHuman(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequiresHuman, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}

// ByStepField orders the results by step field.
func ByStepField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepStep(), sql.OrderByField(field, opts...))
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, RunFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
	)
}
func newStepStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepInverseTable, StepFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, StepTable, StepColumn),
	)
}
