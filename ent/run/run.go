// Code generated by ent, DO NOT EDIT.

package run

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the run type in the database.
	Label = "run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "run_id"
	// FieldTenant holds the string denoting the tenant field in the database.
	FieldTenant = "tenant"
	// FieldSpecID holds the string denoting the spec_id field in the database.
	FieldSpecID = "spec_id"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldIteration holds the string denoting the iteration field in the database.
	FieldIteration = "iteration"
	// FieldTokensUsed holds the string denoting the tokens_used field in the database.
	FieldTokensUsed = "tokens_used"
	// FieldCostUsedUsd holds the string denoting the cost_used_usd field in the database.
	FieldCostUsedUsd = "cost_used_usd"
	// FieldCanaryGroup holds the string denoting the canary_group field in the database.
	FieldCanaryGroup = "canary_group"
	// FieldPausedState holds the string denoting the paused_state field in the database.
	FieldPausedState = "paused_state"
	// FieldLastGreenIteration holds the string denoting the last_green_iteration field in the database.
	FieldLastGreenIteration = "last_green_iteration"
	// FieldTerminalReason holds the string denoting the terminal_reason field in the database.
	FieldTerminalReason = "terminal_reason"
	// FieldPatchStreak holds the string denoting the patch_streak field in the database.
	FieldPatchStreak = "patch_streak"
	// FieldReplanScope holds the string denoting the replan_scope field in the database.
	FieldReplanScope = "replan_scope"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeSpec holds the string denoting the spec edge name in mutations.
	EdgeSpec = "spec"
	// EdgeSteps holds the string denoting the steps edge name in mutations.
	EdgeSteps = "steps"
	// EdgeFailures holds the string denoting the failures edge name in mutations.
	EdgeFailures = "failures"
	// EdgeRepairAttempts holds the string denoting the repair_attempts edge name in mutations.
	EdgeRepairAttempts = "repair_attempts"
	// EdgeArtifacts holds the string denoting the artifacts edge name in mutations.
	EdgeArtifacts = "artifacts"
	// EdgeApprovalGates holds the string denoting the approval_gates edge name in mutations.
	EdgeApprovalGates = "approval_gates"
	// EdgeBudget holds the string denoting the budget edge name in mutations.
	EdgeBudget = "budget"
	// EdgeTimelineEvents holds the string denoting the timeline_events edge name in mutations.
	EdgeTimelineEvents = "timeline_events"
	// EdgeReplayBundle holds the string denoting the replay_bundle edge name in mutations.
	EdgeReplayBundle = "replay_bundle"
	// EdgeCanarySample holds the string denoting the canary_sample edge name in mutations.
	EdgeCanarySample = "canary_sample"
	// BuildSpecFieldID holds the string denoting the ID field of the BuildSpec.
	BuildSpecFieldID = "spec_id"
	// StepFieldID holds the string denoting the ID field of the Step.
	StepFieldID = "step_id"
	// FailureFieldID holds the string denoting the ID field of the Failure.
	FailureFieldID = "failure_id"
	// RepairAttemptFieldID holds the string denoting the ID field of the RepairAttempt.
	RepairAttemptFieldID = "repair_id"
	// ArtifactFieldID holds the string denoting the ID field of the Artifact.
	ArtifactFieldID = "artifact_id"
	// ApprovalGateFieldID holds the string denoting the ID field of the ApprovalGate.
	ApprovalGateFieldID = "gate_id"
	// BudgetFieldID holds the string denoting the ID field of the Budget.
	BudgetFieldID = "budget_id"
	// TimelineEventFieldID holds the string denoting the ID field of the TimelineEvent.
	TimelineEventFieldID = "event_id"
	// ReplayBundleFieldID holds the string denoting the ID field of the ReplayBundle.
	ReplayBundleFieldID = "bundle_id"
	// CanarySampleFieldID holds the string denoting the ID field of the CanarySample.
	CanarySampleFieldID = "sample_id"
	// Table holds the table name of the run in the database.
	Table = "runs"
	// SpecTable is the table that holds the spec relation/edge.
	SpecTable = "runs"
	// SpecInverseTable is the table name for the BuildSpec entity.
	// It exists in this package in order to avoid circular dependency with the "buildspec" package.
	SpecInverseTable = "build_specs"
	// SpecColumn is the table column denoting the spec relation/edge.
	SpecColumn = "spec_id"
	// StepsTable is the table that holds the steps relation/edge.
	StepsTable = "steps"
	// StepsInverseTable is the table name for the Step entity.
	// It exists in this package in order to avoid circular dependency with the "step" package.
	StepsInverseTable = "steps"
	// StepsColumn is the table column denoting the steps relation/edge.
	StepsColumn = "run_id"
	// FailuresTable is the table that holds the failures relation/edge.
	FailuresTable = "failures"
	// FailuresInverseTable is the table name for the Failure entity.
	// It exists in this package in order to avoid circular dependency with the "failure" package.
	FailuresInverseTable = "failures"
	// FailuresColumn is the table column denoting the failures relation/edge.
	FailuresColumn = "run_id"
	// RepairAttemptsTable is the table that holds the repair_attempts relation/edge.
	RepairAttemptsTable = "repair_attempts"
	// RepairAttemptsInverseTable is the table name for the RepairAttempt entity.
	// It exists in this package in order to avoid circular dependency with the "repairattempt" package.
	RepairAttemptsInverseTable = "repair_attempts"
	// RepairAttemptsColumn is the table column denoting the repair_attempts relation/edge.
	RepairAttemptsColumn = "run_id"
	// ArtifactsTable is the table that holds the artifacts relation/edge.
	ArtifactsTable = "artifacts"
	// ArtifactsInverseTable is the table name for the Artifact entity.
	// It exists in this package in order to avoid circular dependency with the "artifact" package.
	ArtifactsInverseTable = "artifacts"
	// ArtifactsColumn is the table column denoting the artifacts relation/edge.
	ArtifactsColumn = "run_id"
	// ApprovalGatesTable is the table that holds the approval_gates relation/edge.
	ApprovalGatesTable = "approval_gates"
	// ApprovalGatesInverseTable is the table name for the ApprovalGate entity.
	// It exists in this package in order to avoid circular dependency with the "approvalgate" package.
	ApprovalGatesInverseTable = "approval_gates"
	// ApprovalGatesColumn is the table column denoting the approval_gates relation/edge.
	ApprovalGatesColumn = "run_id"
	// BudgetTable is the table that holds the budget relation/edge.
	BudgetTable = "budgets"
	// BudgetInverseTable is the table name for the Budget entity.
	// It exists in this package in order to avoid circular dependency with the "budget" package.
	BudgetInverseTable = "budgets"
	// BudgetColumn is the table column denoting the budget relation/edge.
	BudgetColumn = "run_id"
	// TimelineEventsTable is the table that holds the timeline_events relation/edge.
	TimelineEventsTable = "timeline_events"
	// TimelineEventsInverseTable is the table name for the TimelineEvent entity.
	// It exists in this package in order to avoid circular dependency with the "timelineevent" package.
	TimelineEventsInverseTable = "timeline_events"
	// TimelineEventsColumn is the table column denoting the timeline_events relation/edge.
	TimelineEventsColumn = "run_id"
	// ReplayBundleTable is the table that holds the replay_bundle relation/edge.
	ReplayBundleTable = "replay_bundles"
	// ReplayBundleInverseTable is the table name for the ReplayBundle entity.
	// It exists in this package in order to avoid circular dependency with the "replaybundle" package.
	ReplayBundleInverseTable = "replay_bundles"
	// ReplayBundleColumn is the table column denoting the replay_bundle relation/edge.
	ReplayBundleColumn = "run_id"
	// CanarySampleTable is the table that holds the canary_sample relation/edge.
	CanarySampleTable = "canary_samples"
	// CanarySampleInverseTable is the table name for the CanarySample entity.
	// It exists in this package in order to avoid circular dependency with the "canarysample" package.
	CanarySampleInverseTable = "canary_samples"
	// CanarySampleColumn is the table column denoting the canary_sample relation/edge.
	CanarySampleColumn = "run_id"
)

// Columns holds all SQL columns for run fields.
var Columns = []string{
	FieldID,
	FieldTenant,
	FieldSpecID,
	FieldState,
	FieldIteration,
	FieldTokensUsed,
	FieldCostUsedUsd,
	FieldCanaryGroup,
	FieldPausedState,
	FieldLastGreenIteration,
	FieldTerminalReason,
	FieldPatchStreak,
	FieldReplanScope,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldDeletedAt,
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
	// DefaultIteration holds the default value on creation for the "iteration" field.
	DefaultIteration int
	// DefaultTokensUsed holds the default value on creation for the "tokens_used" field.
	DefaultTokensUsed int
	// DefaultCostUsedUsd holds the default value on creation for the "cost_used_usd" field.
	DefaultCostUsedUsd float64
	// DefaultPatchStreak holds the default value on creation for the "patch_streak" field.
	DefaultPatchStreak int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// State defines the type for the "state" enum field.
type State string

// StateDraft is the default value of the State enum.
const DefaultState = StateDraft

// State values.
const (
	StateDraft                  State = "draft"
	StatePlanning               State = "planning"
	StateDesigning              State = "designing"
	StateGenerating             State = "generating"
	StateEvaluating             State = "evaluating"
	StateRepairing              State = "repairing"
	StateRollingBack            State = "rolling_back"
	StatePausedAwaitingApproval State = "paused_awaiting_approval"
	StateSucceeded              State = "succeeded"
	StateFailed                 State = "failed"
	StateCancelled              State = "cancelled"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateDraft, StatePlanning, StateDesigning, StateGenerating, StateEvaluating, StateRepairing, StateRollingBack, StatePausedAwaitingApproval, StateSucceeded, StateFailed, StateCancelled:
		return nil
	default:
		return fmt.Errorf("run: invalid enum value for state field: %q", s)
	}
}

// CanaryGroup defines the type for the "canary_group" enum field.
type CanaryGroup string

// CanaryGroupControl is the default value of the CanaryGroup enum.
const DefaultCanaryGroup = CanaryGroupControl

// CanaryGroup values.
const (
	CanaryGroupControl      CanaryGroup = "control"
	CanaryGroupExperimental CanaryGroup = "experimental"
)

func (cg CanaryGroup) String() string {
	return string(cg)
}

// CanaryGroupValidator is a validator for the "canary_group" field enum values. It is called by the builders before save.
func CanaryGroupValidator(cg CanaryGroup) error {
	switch cg {
	case CanaryGroupControl, CanaryGroupExperimental:
		return nil
	default:
		return fmt.Errorf("run: invalid enum value for canary_group field: %q", cg)
	}
}

// OrderOption defines the ordering options for the Run queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenant orders the results by the tenant field.
func ByTenant(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenant, opts...).ToFunc()
}

// BySpecID orders the results by the spec_id field.
func BySpecID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpecID, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByIteration orders the results by the iteration field.
func ByIteration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIteration, opts...).ToFunc()
}

// ByTokensUsed orders the results by the tokens_used field.
func ByTokensUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensUsed, opts...).ToFunc()
}

// ByCostUsedUsd orders the results by the cost_used_usd field.
func ByCostUsedUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCostUsedUsd, opts...).ToFunc()
}

// ByCanaryGroup orders the results by the canary_group field.
func ByCanaryGroup(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanaryGroup, opts...).ToFunc()
}

// ByPausedState orders the results by the paused_state field.
func ByPausedState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPausedState, opts...).ToFunc()
}

// ByLastGreenIteration orders the results by the last_green_iteration field.
func ByLastGreenIteration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastGreenIteration, opts...).ToFunc()
}

// ByTerminalReason orders the results by the terminal_reason field.
func ByTerminalReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTerminalReason, opts...).ToFunc()
}

// ByPatchStreak orders the results by the patch_streak field.
func ByPatchStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatchStreak, opts...).ToFunc()
}

// ByReplanScope orders the results by the replan_scope field.
func ByReplanScope(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReplanScope, opts...).ToFunc()
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

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// BySpecField orders the results by spec field.
func BySpecField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSpecStep(), sql.OrderByField(field, opts...))
	}
}

// ByStepsCount orders the results by steps count.
func ByStepsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStepsStep(), opts...)
	}
}

// BySteps orders the results by steps terms.
func BySteps(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepsStep(), append([]sql.OrderTerm{term}, terms...)...)
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

// ByRepairAttemptsCount orders the results by repair_attempts count.
func ByRepairAttemptsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRepairAttemptsStep(), opts...)
	}
}

// ByRepairAttempts orders the results by repair_attempts terms.
func ByRepairAttempts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRepairAttemptsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByArtifactsCount orders the results by artifacts count.
func ByArtifactsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newArtifactsStep(), opts...)
	}
}

// ByArtifacts orders the results by artifacts terms.
func ByArtifacts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newArtifactsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByApprovalGatesCount orders the results by approval_gates count.
func ByApprovalGatesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newApprovalGatesStep(), opts...)
	}
}

// ByApprovalGates orders the results by approval_gates terms.
func ByApprovalGates(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newApprovalGatesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByBudgetField orders the results by budget field.
func ByBudgetField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBudgetStep(), sql.OrderByField(field, opts...))
	}
}

// ByTimelineEventsCount orders the results by timeline_events count.
func ByTimelineEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTimelineEventsStep(), opts...)
	}
}

// ByTimelineEvents orders the results by timeline_events terms.
func ByTimelineEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTimelineEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByReplayBundleField orders the results by replay_bundle field.
func ByReplayBundleField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReplayBundleStep(), sql.OrderByField(field, opts...))
	}
}

// ByCanarySampleField orders the results by canary_sample field.
func ByCanarySampleField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCanarySampleStep(), sql.OrderByField(field, opts...))
	}
}
func newSpecStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SpecInverseTable, BuildSpecFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SpecTable, SpecColumn),
	)
}
func newStepsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepsInverseTable, StepFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
	)
}
func newFailuresStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FailuresInverseTable, FailureFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FailuresTable, FailuresColumn),
	)
}
func newRepairAttemptsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RepairAttemptsInverseTable, RepairAttemptFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RepairAttemptsTable, RepairAttemptsColumn),
	)
}
func newArtifactsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ArtifactsInverseTable, ArtifactFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ArtifactsTable, ArtifactsColumn),
	)
}
func newApprovalGatesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ApprovalGatesInverseTable, ApprovalGateFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ApprovalGatesTable, ApprovalGatesColumn),
	)
}
func newBudgetStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BudgetInverseTable, BudgetFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, BudgetTable, BudgetColumn),
	)
}
func newTimelineEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TimelineEventsInverseTable, TimelineEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TimelineEventsTable, TimelineEventsColumn),
	)
}
func newReplayBundleStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReplayBundleInverseTable, ReplayBundleFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, ReplayBundleTable, ReplayBundleColumn),
	)
}
func newCanarySampleStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CanarySampleInverseTable, CanarySampleFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, CanarySampleTable, CanarySampleColumn),
	)
}
