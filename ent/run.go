// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgeworks/metabuild/ent/budget"
	"github.com/forgeworks/metabuild/ent/buildspec"
	"github.com/forgeworks/metabuild/ent/canarysample"
	"github.com/forgeworks/metabuild/ent/replaybundle"
	"github.com/forgeworks/metabuild/ent/run"
)

// Run is the model entity for the Run schema.
type Run struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Tenant holds the value of the "tenant" field.
	Tenant string `json:"tenant,omitempty"`
	// SpecID holds the value of the "spec_id" field.
	SpecID string `json:"spec_id,omitempty"`
	// State holds the value of the "state" field.
	State run.State `json:"state,omitempty"`
	// 1-indexed plan→generate→evaluate cycle counter
	Iteration int `json:"iteration,omitempty"`
	// TokensUsed holds the value of the "tokens_used" field.
	TokensUsed int `json:"tokens_used,omitempty"`
	// CostUsedUsd holds the value of the "cost_used_usd" field.
	CostUsedUsd float64 `json:"cost_used_usd,omitempty"`
	// Sticky per-run A/B assignment
	CanaryGroup run.CanaryGroup `json:"canary_group,omitempty"`
	// State to resume to after approval
	PausedState *string `json:"paused_state,omitempty"`
	// Last iteration whose evaluation passed (rollback target)
	LastGreenIteration *int `json:"last_green_iteration,omitempty"`
	// TerminalReason holds the value of the "terminal_reason" field.
	TerminalReason *string `json:"terminal_reason,omitempty"`
	// Consecutive failed patch attempts (replan trigger)
	PatchStreak int `json:"patch_streak,omitempty"`
	// Comma-separated failing modules for the next generate
	ReplanScope *string `json:"replan_scope,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Soft delete for retention policy
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RunQuery when eager-loading is set.
	Edges        RunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RunEdges holds the relations/edges for other nodes in the graph.
type RunEdges struct {
	// Spec holds the value of the spec edge.
	Spec *BuildSpec `json:"spec,omitempty"`
	// Steps holds the value of the steps edge.
	Steps []*Step `json:"steps,omitempty"`
	// Failures holds the value of the failures edge.
	Failures []*Failure `json:"failures,omitempty"`
	// RepairAttempts holds the value of the repair_attempts edge.
	RepairAttempts []*RepairAttempt `json:"repair_attempts,omitempty"`
	// Artifacts holds the value of the artifacts edge.
	Artifacts []*Artifact `json:"artifacts,omitempty"`
	// ApprovalGates holds the value of the approval_gates edge.
	ApprovalGates []*ApprovalGate `json:"approval_gates,omitempty"`
	// Budget holds the value of the budget edge.
	Budget *Budget `json:"budget,omitempty"`
	// TimelineEvents holds the value of the timeline_events edge.
	TimelineEvents []*TimelineEvent `json:"timeline_events,omitempty"`
	// ReplayBundle holds the value of the replay_bundle edge.
	ReplayBundle *ReplayBundle `json:"replay_bundle,omitempty"`
	// CanarySample holds the value of the canary_sample edge.
	CanarySample *CanarySample `json:"canary_sample,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [10]bool
}

// SpecOrErr returns the Spec value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RunEdges) SpecOrErr() (*BuildSpec, error) {
	if e.Spec != nil {
		return e.Spec, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: buildspec.Label}
	}
	return nil, &NotLoadedError{edge: "spec"}
}

// StepsOrErr returns the Steps value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) StepsOrErr() ([]*Step, error) {
	if e.loadedTypes[1] {
		return e.Steps, nil
	}
	return nil, &NotLoadedError{edge: "steps"}
}

// FailuresOrErr returns the Failures value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) FailuresOrErr() ([]*Failure, error) {
	if e.loadedTypes[2] {
		return e.Failures, nil
	}
	return nil, &NotLoadedError{edge: "failures"}
}

// RepairAttemptsOrErr returns the RepairAttempts value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) RepairAttemptsOrErr() ([]*RepairAttempt, error) {
	if e.loadedTypes[3] {
		return e.RepairAttempts, nil
	}
	return nil, &NotLoadedError{edge: "repair_attempts"}
}

// ArtifactsOrErr returns the Artifacts value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) ArtifactsOrErr() ([]*Artifact, error) {
	if e.loadedTypes[4] {
		return e.Artifacts, nil
	}
	return nil, &NotLoadedError{edge: "artifacts"}
}

// ApprovalGatesOrErr returns the ApprovalGates value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) ApprovalGatesOrErr() ([]*ApprovalGate, error) {
	if e.loadedTypes[5] {
		return e.ApprovalGates, nil
	}
	return nil, &NotLoadedError{edge: "approval_gates"}
}

// BudgetOrErr returns the Budget value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RunEdges) BudgetOrErr() (*Budget, error) {
	if e.Budget != nil {
		return e.Budget, nil
	} else if e.loadedTypes[6] {
		return nil, &NotFoundError{label: budget.Label}
	}
	return nil, &NotLoadedError{edge: "budget"}
}

// TimelineEventsOrErr returns the TimelineEvents value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) TimelineEventsOrErr() ([]*TimelineEvent, error) {
	if e.loadedTypes[7] {
		return e.TimelineEvents, nil
	}
	return nil, &NotLoadedError{edge: "timeline_events"}
}

// ReplayBundleOrErr returns the ReplayBundle value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RunEdges) ReplayBundleOrErr() (*ReplayBundle, error) {
	if e.ReplayBundle != nil {
		return e.ReplayBundle, nil
	} else if e.loadedTypes[8] {
		return nil, &NotFoundError{label: replaybundle.Label}
	}
	return nil, &NotLoadedError{edge: "replay_bundle"}
}

// CanarySampleOrErr returns the CanarySample value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RunEdges) CanarySampleOrErr() (*CanarySample, error) {
	if e.CanarySample != nil {
		return e.CanarySample, nil
	} else if e.loadedTypes[9] {
		return nil, &NotFoundError{label: canarysample.Label}
	}
	return nil, &NotLoadedError{edge: "canary_sample"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Run) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case run.FieldCostUsedUsd:
			values[i] = new(sql.NullFloat64)
		case run.FieldIteration, run.FieldTokensUsed, run.FieldLastGreenIteration, run.FieldPatchStreak:
			values[i] = new(sql.NullInt64)
		case run.FieldID, run.FieldTenant, run.FieldSpecID, run.FieldState, run.FieldCanaryGroup, run.FieldPausedState, run.FieldTerminalReason, run.FieldReplanScope:
			values[i] = new(sql.NullString)
		case run.FieldCreatedAt, run.FieldStartedAt, run.FieldCompletedAt, run.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Run fields.
func (_m *Run) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case run.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case run.FieldTenant:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant", values[i])
			} else if value.Valid {
				_m.Tenant = value.String
			}
		case run.FieldSpecID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field spec_id", values[i])
			} else if value.Valid {
				_m.SpecID = value.String
			}
		case run.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = run.State(value.String)
			}
		case run.FieldIteration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field iteration", values[i])
			} else if value.Valid {
				_m.Iteration = int(value.Int64)
			}
		case run.FieldTokensUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_used", values[i])
			} else if value.Valid {
				_m.TokensUsed = int(value.Int64)
			}
		case run.FieldCostUsedUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost_used_usd", values[i])
			} else if value.Valid {
				_m.CostUsedUsd = value.Float64
			}
		case run.FieldCanaryGroup:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field canary_group", values[i])
			} else if value.Valid {
				_m.CanaryGroup = run.CanaryGroup(value.String)
			}
		case run.FieldPausedState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field paused_state", values[i])
			} else if value.Valid {
				_m.PausedState = new(string)
				*_m.PausedState = value.String
			}
		case run.FieldLastGreenIteration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_green_iteration", values[i])
			} else if value.Valid {
				_m.LastGreenIteration = new(int)
				*_m.LastGreenIteration = int(value.Int64)
			}
		case run.FieldTerminalReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field terminal_reason", values[i])
			} else if value.Valid {
				_m.TerminalReason = new(string)
				*_m.TerminalReason = value.String
			}
		case run.FieldPatchStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field patch_streak", values[i])
			} else if value.Valid {
				_m.PatchStreak = int(value.Int64)
			}
		case run.FieldReplanScope:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field replan_scope", values[i])
			} else if value.Valid {
				_m.ReplanScope = new(string)
				*_m.ReplanScope = value.String
			}
		case run.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case run.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case run.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case run.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Run.
// This includes values selected through modifiers, order, etc.
func (_m *Run) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySpec queries the "spec" edge of the Run entity.
func (_m *Run) QuerySpec() *BuildSpecQuery {
	return NewRunClient(_m.config).QuerySpec(_m)
}

// QuerySteps queries the "steps" edge of the Run entity.
func (_m *Run) QuerySteps() *StepQuery {
	return NewRunClient(_m.config).QuerySteps(_m)
}

// QueryFailures queries the "failures" edge of the Run entity.
func (_m *Run) QueryFailures() *FailureQuery {
	return NewRunClient(_m.config).QueryFailures(_m)
}

// QueryRepairAttempts queries the "repair_attempts" edge of the Run entity.
func (_m *Run) QueryRepairAttempts() *RepairAttemptQuery {
	return NewRunClient(_m.config).QueryRepairAttempts(_m)
}

// QueryArtifacts queries the "artifacts" edge of the Run entity.
func (_m *Run) QueryArtifacts() *ArtifactQuery {
	return NewRunClient(_m.config).QueryArtifacts(_m)
}

// QueryApprovalGates queries the "approval_gates" edge of the Run entity.
func (_m *Run) QueryApprovalGates() *ApprovalGateQuery {
	return NewRunClient(_m.config).QueryApprovalGates(_m)
}

// QueryBudget queries the "budget" edge of the Run entity.
func (_m *Run) QueryBudget() *BudgetQuery {
	return NewRunClient(_m.config).QueryBudget(_m)
}

// QueryTimelineEvents queries the "timeline_events" edge of the Run entity.
func (_m *Run) QueryTimelineEvents() *TimelineEventQuery {
	return NewRunClient(_m.config).QueryTimelineEvents(_m)
}

// QueryReplayBundle queries the "replay_bundle" edge of the Run entity.
func (_m *Run) QueryReplayBundle() *ReplayBundleQuery {
	return NewRunClient(_m.config).QueryReplayBundle(_m)
}

// QueryCanarySample queries the "canary_sample" edge of the Run entity.
func (_m *Run) QueryCanarySample() *CanarySampleQuery {
	return NewRunClient(_m.config).QueryCanarySample(_m)
}

// Update returns a builder for updating this Run.
// Note that you need to call Run.Unwrap() before calling this method if this Run
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Run) Update() *RunUpdateOne {
	return NewRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Run entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Run) Unwrap() *Run {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Run is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Run) String() string {
	var builder strings.Builder
	builder.WriteString("Run(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant=")
	builder.WriteString(_m.Tenant)
	builder.WriteString(", ")
	builder.WriteString("spec_id=")
	builder.WriteString(_m.SpecID)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("iteration=")
	builder.WriteString(fmt.Sprintf("%v", _m.Iteration))
	builder.WriteString(", ")
	builder.WriteString("tokens_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensUsed))
	builder.WriteString(", ")
	builder.WriteString("cost_used_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.CostUsedUsd))
	builder.WriteString(", ")
	builder.WriteString("canary_group=")
	builder.WriteString(fmt.Sprintf("%v", _m.CanaryGroup))
	builder.WriteString(", ")
	if v := _m.PausedState; v != nil {
		builder.WriteString("paused_state=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastGreenIteration; v != nil {
		builder.WriteString("last_green_iteration=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TerminalReason; v != nil {
		builder.WriteString("terminal_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("patch_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatchStreak))
	builder.WriteString(", ")
	if v := _m.ReplanScope; v != nil {
		builder.WriteString("replan_scope=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Runs is a parsable slice of Run.
type Runs []*Run
