// Code generated by ent, DO NOT EDIT.

package repairattempt

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the repairattempt type in the database.
	Label = "repair_attempt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "repair_id"
	// FieldTenant holds the string denoting the tenant field in the database.
	FieldTenant = "tenant"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldFailureID holds the string denoting the failure_id field in the database.
	FieldFailureID = "failure_id"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldStrategy holds the string denoting the strategy field in the database.
	FieldStrategy = "strategy"
	// FieldOutcome holds the string denoting the outcome field in the database.
	FieldOutcome = "outcome"
	// FieldBackoffUsedMs holds the string denoting the backoff_used_ms field in the database.
	FieldBackoffUsedMs = "backoff_used_ms"
	// FieldDiffRef holds the string denoting the diff_ref field in the database.
	FieldDiffRef = "diff_ref"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// RunFieldID holds the string denoting the ID field of the Run.
	RunFieldID = "run_id"
	// Table holds the table name of the repairattempt in the database.
	Table = "repair_attempts"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "repair_attempts"
	// RunInverseTable is the table name for the Run entity.
	// It exists in this package in order to avoid circular dependency with the "run" package.
	RunInverseTable = "runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
)

// Columns holds all SQL columns for repairattempt fields.
var Columns = []string{
	FieldID,
	FieldTenant,
	FieldRunID,
	FieldFailureID,
	FieldPhase,
	FieldStrategy,
	FieldOutcome,
	FieldBackoffUsedMs,
	FieldDiffRef,
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
	// DefaultBackoffUsedMs holds the default value on creation for the "backoff_used_ms" field.
	DefaultBackoffUsedMs int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Phase defines the type for the "phase" enum field.
type Phase string

// Phase values.
const (
	PhaseRetry    Phase = "retry"
	PhasePatch    Phase = "patch"
	PhaseReplan   Phase = "replan"
	PhaseRollback Phase = "rollback"
)

func (ph Phase) String() string {
	return string(ph)
}

// PhaseValidator is a validator for the "phase" field enum values. It is called by the builders before save.
func PhaseValidator(ph Phase) error {
	switch ph {
	case PhaseRetry, PhasePatch, PhaseReplan, PhaseRollback:
		return nil
	default:
		return fmt.Errorf("repairattempt: invalid enum value for phase field: %q", ph)
	}
}

// Outcome defines the type for the "outcome" enum field.
type Outcome string

// OutcomePending is the default value of the Outcome enum.
const DefaultOutcome = OutcomePending

// Outcome values.
const (
	OutcomePending   Outcome = "pending"
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
)

func (o Outcome) String() string {
	return string(o)
}

// OutcomeValidator is a validator for the "outcome" field enum values. It is called by the builders before save.
func OutcomeValidator(o Outcome) error {
	switch o {
	case OutcomePending, OutcomeSucceeded, OutcomeFailed:
		return nil
	default:
		return fmt.Errorf("repairattempt: invalid enum value for outcome field: %q", o)
	}
}

// OrderOption defines the ordering options for the RepairAttempt queries.
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

// ByFailureID orders the results by the failure_id field.
func ByFailureID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureID, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByStrategy orders the results by the strategy field.
func ByStrategy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrategy, opts...).ToFunc()
}

// ByOutcome orders the results by the outcome field.
func ByOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcome, opts...).ToFunc()
}

// ByBackoffUsedMs orders the results by the backoff_used_ms field.
func ByBackoffUsedMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBackoffUsedMs, opts...).ToFunc()
}

// ByDiffRef orders the results by the diff_ref field.
func ByDiffRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiffRef, opts...).ToFunc()
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
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, RunFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
	)
}
