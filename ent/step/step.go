// Code generated by ent, DO NOT EDIT.

package step

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the step type in the database.
	Label = "step"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "step_id"
	// FieldTenant holds the string denoting the tenant field in the database.
	FieldTenant = "tenant"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldIteration holds the string denoting the iteration field in the database.
	FieldIteration = "iteration"
	// FieldAgentRole holds the string denoting the agent_role field in the database.
	FieldAgentRole = "agent_role"
	// FieldQueue holds the string denoting the queue field in the database.
	FieldQueue = "queue"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldIdempotencyKey holds the string denoting the idempotency_key field in the database.
	FieldIdempotencyKey = "idempotency_key"
	// FieldInputDigest holds the string denoting the input_digest field in the database.
	FieldInputDigest = "input_digest"
	// FieldInputRef holds the string denoting the input_ref field in the database.
	FieldInputRef = "input_ref"
	// FieldOutputRef holds the string denoting the output_ref field in the database.
	FieldOutputRef = "output_ref"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldModelTier holds the string denoting the model_tier field in the database.
	FieldModelTier = "model_tier"
	// FieldEstCostUsd holds the string denoting the est_cost_usd field in the database.
	FieldEstCostUsd = "est_cost_usd"
	// FieldTokensIn holds the string denoting the tokens_in field in the database.
	FieldTokensIn = "tokens_in"
	// FieldTokensOut holds the string denoting the tokens_out field in the database.
	FieldTokensOut = "tokens_out"
	// FieldCostUsd holds the string denoting the cost_usd field in the database.
	FieldCostUsd = "cost_usd"
	// FieldNotBefore holds the string denoting the not_before field in the database.
	FieldNotBefore = "not_before"
	// FieldLeaseExpiresAt holds the string denoting the lease_expires_at field in the database.
	FieldLeaseExpiresAt = "lease_expires_at"
	// FieldWorkerID holds the string denoting the worker_id field in the database.
	FieldWorkerID = "worker_id"
	// FieldTombstoned holds the string denoting the tombstoned field in the database.
	FieldTombstoned = "tombstoned"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// EdgeFailures holds the string denoting the failures edge name in mutations.
	EdgeFailures = "failures"
	// EdgeLease holds the string denoting the lease edge name in mutations.
	EdgeLease = "lease"
	// RunFieldID holds the string denoting the ID field of the Run.
	RunFieldID = "run_id"
	// FailureFieldID holds the string denoting the ID field of the Failure.
	FailureFieldID = "failure_id"
	// QueueLeaseFieldID holds the string denoting the ID field of the QueueLease.
	QueueLeaseFieldID = "lease_id"
	// Table holds the table name of the step in the database.
	Table = "steps"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "steps"
	// RunInverseTable is the table name for the Run entity.
	// It exists in this package in order to avoid circular dependency with the "run" package.
	RunInverseTable = "runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
	// FailuresTable is the table that holds the failures relation/edge.
	FailuresTable = "failures"
	// FailuresInverseTable is the table name for the Failure entity.
	// It exists in this package in order to avoid circular dependency with the "failure" package.
	FailuresInverseTable = "failures"
	// FailuresColumn is the table column denoting the failures relation/edge.
	FailuresColumn = "step_id"
	// LeaseTable is the table that holds the lease relation/edge.
	LeaseTable = "queue_leases"
	// LeaseInverseTable is the table name for the QueueLease entity.
	// It exists in this package in order to avoid circular dependency with the "queuelease" package.
	LeaseInverseTable = "queue_leases"
	// LeaseColumn is the table column denoting the lease relation/edge.
	LeaseColumn = "step_id"
)

// Columns holds all SQL columns for step fields.
var Columns = []string{
	FieldID,
	FieldTenant,
	FieldRunID,
	FieldIteration,
	FieldAgentRole,
	FieldQueue,
	FieldPriority,
	FieldState,
	FieldIdempotencyKey,
	FieldInputDigest,
	FieldInputRef,
	FieldOutputRef,
	FieldAttempts,
	FieldModelTier,
	FieldEstCostUsd,
	FieldTokensIn,
	FieldTokensOut,
	FieldCostUsd,
	FieldNotBefore,
	FieldLeaseExpiresAt,
	FieldWorkerID,
	FieldTombstoned,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
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
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// DefaultEstCostUsd holds the default value on creation for the "est_cost_usd" field.
	DefaultEstCostUsd float64
	// DefaultTokensIn holds the default value on creation for the "tokens_in" field.
	DefaultTokensIn int
	// DefaultTokensOut holds the default value on creation for the "tokens_out" field.
	DefaultTokensOut int
	// DefaultCostUsd holds the default value on creation for the "cost_usd" field.
	DefaultCostUsd float64
	// DefaultTombstoned holds the default value on creation for the "tombstoned" field.
	DefaultTombstoned bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// AgentRole defines the type for the "agent_role" enum field.
type AgentRole string

// AgentRole values.
const (
	AgentRoleProductArchitect   AgentRole = "product_architect"
	AgentRoleSystemDesigner     AgentRole = "system_designer"
	AgentRoleSecurityCompliance AgentRole = "security_compliance"
	AgentRoleCodegenEngineer    AgentRole = "codegen_engineer"
	AgentRoleQaEvaluator        AgentRole = "qa_evaluator"
	AgentRoleAutoFixer          AgentRole = "auto_fixer"
	AgentRoleDevops             AgentRole = "devops"
	AgentRoleReviewer           AgentRole = "reviewer"
)

func (ar AgentRole) String() string {
	return string(ar)
}

// AgentRoleValidator is a validator for the "agent_role" field enum values. It is called by the builders before save.
func AgentRoleValidator(ar AgentRole) error {
	switch ar {
	case AgentRoleProductArchitect, AgentRoleSystemDesigner, AgentRoleSecurityCompliance, AgentRoleCodegenEngineer, AgentRoleQaEvaluator, AgentRoleAutoFixer, AgentRoleDevops, AgentRoleReviewer:
		return nil
	default:
		return fmt.Errorf("step: invalid enum value for agent_role field: %q", ar)
	}
}

// Queue defines the type for the "queue" enum field.
type Queue string

// Queue values.
const (
	QueueCPU  Queue = "cpu"
	QueueIo   Queue = "io"
	QueueLlm  Queue = "llm"
	QueueHigh Queue = "high"
	QueueLow  Queue = "low"
)

func (q Queue) String() string {
	return string(q)
}

// QueueValidator is a validator for the "queue" field enum values. It is called by the builders before save.
func QueueValidator(q Queue) error {
	switch q {
	case QueueCPU, QueueIo, QueueLlm, QueueHigh, QueueLow:
		return nil
	default:
		return fmt.Errorf("step: invalid enum value for queue field: %q", q)
	}
}

// State defines the type for the "state" enum field.
type State string

// StateQueued is the default value of the State enum.
const DefaultState = StateQueued

// State values.
const (
	StateQueued    State = "queued"
	StateLeased    State = "leased"
	StateRunning   State = "running"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
	StateSkipped   State = "skipped"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateQueued, StateLeased, StateRunning, StateSucceeded, StateFailed, StateSkipped:
		return nil
	default:
		return fmt.Errorf("step: invalid enum value for state field: %q", s)
	}
}

// ModelTier defines the type for the "model_tier" enum field.
type ModelTier string

// ModelTier values.
const (
	ModelTierSmall  ModelTier = "small"
	ModelTierMedium ModelTier = "medium"
	ModelTierLarge  ModelTier = "large"
)

func (mt ModelTier) String() string {
	return string(mt)
}

// ModelTierValidator is a validator for the "model_tier" field enum values. It is called by the builders before save.
func ModelTierValidator(mt ModelTier) error {
	switch mt {
	case ModelTierSmall, ModelTierMedium, ModelTierLarge:
		return nil
	default:
		return fmt.Errorf("step: invalid enum value for model_tier field: %q", mt)
	}
}

// OrderOption defines the ordering options for the Step queries.
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

// ByIteration orders the results by the iteration field.
func ByIteration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIteration, opts...).ToFunc()
}

// ByAgentRole orders the results by the agent_role field.
func ByAgentRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentRole, opts...).ToFunc()
}

// ByQueue orders the results by the queue field.
func ByQueue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQueue, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByIdempotencyKey orders the results by the idempotency_key field.
func ByIdempotencyKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIdempotencyKey, opts...).ToFunc()
}

// ByInputDigest orders the results by the input_digest field.
func ByInputDigest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputDigest, opts...).ToFunc()
}

// ByInputRef orders the results by the input_ref field.
func ByInputRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputRef, opts...).ToFunc()
}

// ByOutputRef orders the results by the output_ref field.
func ByOutputRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputRef, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByModelTier orders the results by the model_tier field.
func ByModelTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelTier, opts...).ToFunc()
}

// ByEstCostUsd orders the results by the est_cost_usd field.
func ByEstCostUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstCostUsd, opts...).ToFunc()
}

// ByTokensIn orders the results by the tokens_in field.
func ByTokensIn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensIn, opts...).ToFunc()
}

// ByTokensOut orders the results by the tokens_out field.
func ByTokensOut(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensOut, opts...).ToFunc()
}

// ByCostUsd orders the results by the cost_usd field.
func ByCostUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCostUsd, opts...).ToFunc()
}

// ByNotBefore orders the results by the not_before field.
func ByNotBefore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotBefore, opts...).ToFunc()
}

// ByLeaseExpiresAt orders the results by the lease_expires_at field.
func ByLeaseExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeaseExpiresAt, opts...).ToFunc()
}

// ByWorkerID orders the results by the worker_id field.
func ByWorkerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkerID, opts...).ToFunc()
}

// ByTombstoned orders the results by the tombstoned field.
func ByTombstoned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTombstoned, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}

// ByFailuresCount orders the results by failures count.
func ByFailuresCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFailuresStep(), opts...)
	}
}

// ByFailures orders the results by failures terms.
func ByFailures(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFailuresStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByLeaseField orders the results by lease field.
func ByLeaseField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLeaseStep(), sql.OrderByField(field, opts...))
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, RunFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
	)
}
func newFailuresStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FailuresInverseTable, FailureFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FailuresTable, FailuresColumn),
	)
}
func newLeaseStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LeaseInverseTable, QueueLeaseFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, LeaseTable, LeaseColumn),
	)
}
