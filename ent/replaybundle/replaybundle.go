// Code generated by ent, DO NOT EDIT.

package replaybundle

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the replaybundle type in the database.
	Label = "replay_bundle"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "bundle_id"
	// FieldTenant holds the string denoting the tenant field in the database.
	FieldTenant = "tenant"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldBundleHash holds the string denoting the bundle_hash field in the database.
	FieldBundleHash = "bundle_hash"
	// FieldStorageRef holds the string denoting the storage_ref field in the database.
	FieldStorageRef = "storage_ref"
	// FieldReplayedOk holds the string denoting the replayed_ok field in the database.
	FieldReplayedOk = "replayed_ok"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// RunFieldID holds the string denoting the ID field of the Run.
	RunFieldID = "run_id"
	// Table holds the table name of the replaybundle in the database.
	Table = "replay_bundles"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "replay_bundles"
	// RunInverseTable is the table name for the Run entity.
	// It exists in this package in order to avoid circular dependency with the "run" package.
	RunInverseTable = "runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
)

// Columns holds all SQL columns for replaybundle fields.
var Columns = []string{
	FieldID,
	FieldTenant,
	FieldRunID,
	FieldBundleHash,
	FieldStorageRef,
	FieldReplayedOk,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ReplayBundle queries.
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

// ByBundleHash orders the results by the bundle_hash field.
func ByBundleHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBundleHash, opts...).ToFunc()
}

// ByStorageRef orders the results by the storage_ref field.
func ByStorageRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStorageRef, opts...).ToFunc()
}

// ByReplayedOk orders the results by the replayed_ok field.
func ByReplayedOk(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReplayedOk, opts...).ToFunc()
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
		sqlgraph.Edge(sqlgraph.O2O, true, RunTable, RunColumn),
	)
}
