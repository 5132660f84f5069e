// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeworks/metabuild/ent/approvalgate"
	"github.com/forgeworks/metabuild/ent/artifact"
	"github.com/forgeworks/metabuild/ent/budget"
	"github.com/forgeworks/metabuild/ent/canarysample"
	"github.com/forgeworks/metabuild/ent/failure"
	"github.com/forgeworks/metabuild/ent/predicate"
	"github.com/forgeworks/metabuild/ent/repairattempt"
	"github.com/forgeworks/metabuild/ent/replaybundle"
	"github.com/forgeworks/metabuild/ent/run"
	"github.com/forgeworks/metabuild/ent/step"
	"github.com/forgeworks/metabuild/ent/timelineevent"
)

// RunUpdate is the builder for updating Run entities.
type RunUpdate struct {
	config
	hooks    []Hook
	mutation *RunMutation
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdate) Where(ps ...predicate.Run) *RunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetState sets the "state" field.
func (_u *RunUpdate) SetState(v run.State) *RunUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *RunUpdate) SetNillableState(v *run.State) *RunUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetIteration sets the "iteration" field.
func (_u *RunUpdate) SetIteration(v int) *RunUpdate {
	_u.mutation.ResetIteration()
	_u.mutation.SetIteration(v)
	return _u
}

// SetNillableIteration sets the "iteration" field if the given value is not nil.
func (_u *RunUpdate) SetNillableIteration(v *int) *RunUpdate {
	if v != nil {
		_u.SetIteration(*v)
	}
	return _u
}

// AddIteration adds value to the "iteration" field.
func (_u *RunUpdate) AddIteration(v int) *RunUpdate {
	_u.mutation.AddIteration(v)
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *RunUpdate) SetTokensUsed(v int) *RunUpdate {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *RunUpdate) SetNillableTokensUsed(v *int) *RunUpdate {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *RunUpdate) AddTokensUsed(v int) *RunUpdate {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetCostUsedUsd sets the "cost_used_usd" field.
func (_u *RunUpdate) SetCostUsedUsd(v float64) *RunUpdate {
	_u.mutation.ResetCostUsedUsd()
	_u.mutation.SetCostUsedUsd(v)
	return _u
}

// SetNillableCostUsedUsd sets the "cost_used_usd" field if the given value is not nil.
func (_u *RunUpdate) SetNillableCostUsedUsd(v *float64) *RunUpdate {
	if v != nil {
		_u.SetCostUsedUsd(*v)
	}
	return _u
}

// AddCostUsedUsd adds value to the "cost_used_usd" field.
func (_u *RunUpdate) AddCostUsedUsd(v float64) *RunUpdate {
	_u.mutation.AddCostUsedUsd(v)
	return _u
}

// SetPausedState sets the "paused_state" field.
func (_u *RunUpdate) SetPausedState(v string) *RunUpdate {
	_u.mutation.SetPausedState(v)
	return _u
}

// SetNillablePausedState sets the "paused_state" field if the given value is not nil.
func (_u *RunUpdate) SetNillablePausedState(v *string) *RunUpdate {
	if v != nil {
		_u.SetPausedState(*v)
	}
	return _u
}

// ClearPausedState clears the value of the "paused_state" field.
func (_u *RunUpdate) ClearPausedState() *RunUpdate {
	_u.mutation.ClearPausedState()
	return _u
}

// SetLastGreenIteration sets the "last_green_iteration" field.
func (_u *RunUpdate) SetLastGreenIteration(v int) *RunUpdate {
	_u.mutation.ResetLastGreenIteration()
	_u.mutation.SetLastGreenIteration(v)
	return _u
}

// SetNillableLastGreenIteration sets the "last_green_iteration" field if the given value is not nil.
func (_u *RunUpdate) SetNillableLastGreenIteration(v *int) *RunUpdate {
	if v != nil {
		_u.SetLastGreenIteration(*v)
	}
	return _u
}

// AddLastGreenIteration adds value to the "last_green_iteration" field.
func (_u *RunUpdate) AddLastGreenIteration(v int) *RunUpdate {
	_u.mutation.AddLastGreenIteration(v)
	return _u
}

// ClearLastGreenIteration clears the value of the "last_green_iteration" field.
func (_u *RunUpdate) ClearLastGreenIteration() *RunUpdate {
	_u.mutation.ClearLastGreenIteration()
	return _u
}

// SetTerminalReason sets the "terminal_reason" field.
func (_u *RunUpdate) SetTerminalReason(v string) *RunUpdate {
	_u.mutation.SetTerminalReason(v)
	return _u
}

// SetNillableTerminalReason sets the "terminal_reason" field if the given value is not nil.
func (_u *RunUpdate) SetNillableTerminalReason(v *string) *RunUpdate {
	if v != nil {
		_u.SetTerminalReason(*v)
	}
	return _u
}

// ClearTerminalReason clears the value of the "terminal_reason" field.
func (_u *RunUpdate) ClearTerminalReason() *RunUpdate {
	_u.mutation.ClearTerminalReason()
	return _u
}

// SetPatchStreak sets the "patch_streak" field.
func (_u *RunUpdate) SetPatchStreak(v int) *RunUpdate {
	_u.mutation.ResetPatchStreak()
	_u.mutation.SetPatchStreak(v)
	return _u
}

// SetNillablePatchStreak sets the "patch_streak" field if the given value is not nil.
func (_u *RunUpdate) SetNillablePatchStreak(v *int) *RunUpdate {
	if v != nil {
		_u.SetPatchStreak(*v)
	}
	return _u
}

// AddPatchStreak adds value to the "patch_streak" field.
func (_u *RunUpdate) AddPatchStreak(v int) *RunUpdate {
	_u.mutation.AddPatchStreak(v)
	return _u
}

// SetReplanScope sets the "replan_scope" field.
func (_u *RunUpdate) SetReplanScope(v string) *RunUpdate {
	_u.mutation.SetReplanScope(v)
	return _u
}

// SetNillableReplanScope sets the "replan_scope" field if the given value is not nil.
func (_u *RunUpdate) SetNillableReplanScope(v *string) *RunUpdate {
	if v != nil {
		_u.SetReplanScope(*v)
	}
	return _u
}

// ClearReplanScope clears the value of the "replan_scope" field.
func (_u *RunUpdate) ClearReplanScope() *RunUpdate {
	_u.mutation.ClearReplanScope()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunUpdate) SetStartedAt(v time.Time) *RunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableStartedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RunUpdate) ClearStartedAt() *RunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RunUpdate) SetCompletedAt(v time.Time) *RunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableCompletedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RunUpdate) ClearCompletedAt() *RunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *RunUpdate) SetDeletedAt(v time.Time) *RunUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableDeletedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *RunUpdate) ClearDeletedAt() *RunUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddStepIDs adds the "steps" edge to the Step entity by IDs.
func (_u *RunUpdate) AddStepIDs(ids ...string) *RunUpdate {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the Step entity.
func (_u *RunUpdate) AddSteps(v ...*Step) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddFailureIDs adds the "failures" edge to the Failure entity by IDs.
func (_u *RunUpdate) AddFailureIDs(ids ...string) *RunUpdate {
	_u.mutation.AddFailureIDs(ids...)
	return _u
}

// AddFailures adds the "failures" edges to the Failure entity.
func (_u *RunUpdate) AddFailures(v ...*Failure) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFailureIDs(ids...)
}

// AddRepairAttemptIDs adds the "repair_attempts" edge to the RepairAttempt entity by IDs.
func (_u *RunUpdate) AddRepairAttemptIDs(ids ...string) *RunUpdate {
	_u.mutation.AddRepairAttemptIDs(ids...)
	return _u
}

// AddRepairAttempts adds the "repair_attempts" edges to the RepairAttempt entity.
func (_u *RunUpdate) AddRepairAttempts(v ...*RepairAttempt) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRepairAttemptIDs(ids...)
}

// AddArtifactIDs adds the "artifacts" edge to the Artifact entity by IDs.
func (_u *RunUpdate) AddArtifactIDs(ids ...string) *RunUpdate {
	_u.mutation.AddArtifactIDs(ids...)
	return _u
}

// AddArtifacts adds the "artifacts" edges to the Artifact entity.
func (_u *RunUpdate) AddArtifacts(v ...*Artifact) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArtifactIDs(ids...)
}

// AddApprovalGateIDs adds the "approval_gates" edge to the ApprovalGate entity by IDs.
func (_u *RunUpdate) AddApprovalGateIDs(ids ...string) *RunUpdate {
	_u.mutation.AddApprovalGateIDs(ids...)
	return _u
}

// AddApprovalGates adds the "approval_gates" edges to the ApprovalGate entity.
func (_u *RunUpdate) AddApprovalGates(v ...*ApprovalGate) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApprovalGateIDs(ids...)
}

// SetBudgetID sets the "budget" edge to the Budget entity by ID.
func (_u *RunUpdate) SetBudgetID(id string) *RunUpdate {
	_u.mutation.SetBudgetID(id)
	return _u
}

// SetNillableBudgetID sets the "budget" edge to the Budget entity by ID if the given value is not nil.
func (_u *RunUpdate) SetNillableBudgetID(id *string) *RunUpdate {
	if id != nil {
		_u = _u.SetBudgetID(*id)
	}
	return _u
}

// SetBudget sets the "budget" edge to the Budget entity.
func (_u *RunUpdate) SetBudget(v *Budget) *RunUpdate {
	return _u.SetBudgetID(v.ID)
}

// AddTimelineEventIDs adds the "timeline_events" edge to the TimelineEvent entity by IDs.
func (_u *RunUpdate) AddTimelineEventIDs(ids ...string) *RunUpdate {
	_u.mutation.AddTimelineEventIDs(ids...)
	return _u
}

// AddTimelineEvents adds the "timeline_events" edges to the TimelineEvent entity.
func (_u *RunUpdate) AddTimelineEvents(v ...*TimelineEvent) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTimelineEventIDs(ids...)
}

// SetReplayBundleID sets the "replay_bundle" edge to the ReplayBundle entity by ID.
func (_u *RunUpdate) SetReplayBundleID(id string) *RunUpdate {
	_u.mutation.SetReplayBundleID(id)
	return _u
}

// SetNillableReplayBundleID sets the "replay_bundle" edge to the ReplayBundle entity by ID if the given value is not nil.
func (_u *RunUpdate) SetNillableReplayBundleID(id *string) *RunUpdate {
	if id != nil {
		_u = _u.SetReplayBundleID(*id)
	}
	return _u
}

// SetReplayBundle sets the "replay_bundle" edge to the ReplayBundle entity.
func (_u *RunUpdate) SetReplayBundle(v *ReplayBundle) *RunUpdate {
	return _u.SetReplayBundleID(v.ID)
}

// SetCanarySampleID sets the "canary_sample" edge to the CanarySample entity by ID.
func (_u *RunUpdate) SetCanarySampleID(id string) *RunUpdate {
	_u.mutation.SetCanarySampleID(id)
	return _u
}

// SetNillableCanarySampleID sets the "canary_sample" edge to the CanarySample entity by ID if the given value is not nil.
func (_u *RunUpdate) SetNillableCanarySampleID(id *string) *RunUpdate {
	if id != nil {
		_u = _u.SetCanarySampleID(*id)
	}
	return _u
}

// SetCanarySample sets the "canary_sample" edge to the CanarySample entity.
func (_u *RunUpdate) SetCanarySample(v *CanarySample) *RunUpdate {
	return _u.SetCanarySampleID(v.ID)
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdate) Mutation() *RunMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the Step entity.
func (_u *RunUpdate) ClearSteps() *RunUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to Step entities by IDs.
func (_u *RunUpdate) RemoveStepIDs(ids ...string) *RunUpdate {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to Step entities.
func (_u *RunUpdate) RemoveSteps(v ...*Step) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearFailures clears all "failures" edges to the Failure entity.
func (_u *RunUpdate) ClearFailures() *RunUpdate {
	_u.mutation.ClearFailures()
	return _u
}

// RemoveFailureIDs removes the "failures" edge to Failure entities by IDs.
func (_u *RunUpdate) RemoveFailureIDs(ids ...string) *RunUpdate {
	_u.mutation.RemoveFailureIDs(ids...)
	return _u
}

// RemoveFailures removes "failures" edges to Failure entities.
func (_u *RunUpdate) RemoveFailures(v ...*Failure) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFailureIDs(ids...)
}

// ClearRepairAttempts clears all "repair_attempts" edges to the RepairAttempt entity.
func (_u *RunUpdate) ClearRepairAttempts() *RunUpdate {
	_u.mutation.ClearRepairAttempts()
	return _u
}

// RemoveRepairAttemptIDs removes the "repair_attempts" edge to RepairAttempt entities by IDs.
func (_u *RunUpdate) RemoveRepairAttemptIDs(ids ...string) *RunUpdate {
	_u.mutation.RemoveRepairAttemptIDs(ids...)
	return _u
}

// RemoveRepairAttempts removes "repair_attempts" edges to RepairAttempt entities.
func (_u *RunUpdate) RemoveRepairAttempts(v ...*RepairAttempt) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRepairAttemptIDs(ids...)
}

// ClearArtifacts clears all "artifacts" edges to the Artifact entity.
func (_u *RunUpdate) ClearArtifacts() *RunUpdate {
	_u.mutation.ClearArtifacts()
	return _u
}

// RemoveArtifactIDs removes the "artifacts" edge to Artifact entities by IDs.
func (_u *RunUpdate) RemoveArtifactIDs(ids ...string) *RunUpdate {
	_u.mutation.RemoveArtifactIDs(ids...)
	return _u
}

// RemoveArtifacts removes "artifacts" edges to Artifact entities.
func (_u *RunUpdate) RemoveArtifacts(v ...*Artifact) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArtifactIDs(ids...)
}

// ClearApprovalGates clears all "approval_gates" edges to the ApprovalGate entity.
func (_u *RunUpdate) ClearApprovalGates() *RunUpdate {
	_u.mutation.ClearApprovalGates()
	return _u
}

// RemoveApprovalGateIDs removes the "approval_gates" edge to ApprovalGate entities by IDs.
func (_u *RunUpdate) RemoveApprovalGateIDs(ids ...string) *RunUpdate {
	_u.mutation.RemoveApprovalGateIDs(ids...)
	return _u
}

// RemoveApprovalGates removes "approval_gates" edges to ApprovalGate entities.
func (_u *RunUpdate) RemoveApprovalGates(v ...*ApprovalGate) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApprovalGateIDs(ids...)
}

// ClearBudget clears the "budget" edge to the Budget entity.
func (_u *RunUpdate) ClearBudget() *RunUpdate {
	_u.mutation.ClearBudget()
	return _u
}

// ClearTimelineEvents clears all "timeline_events" edges to the TimelineEvent entity.
func (_u *RunUpdate) ClearTimelineEvents() *RunUpdate {
	_u.mutation.ClearTimelineEvents()
	return _u
}

// RemoveTimelineEventIDs removes the "timeline_events" edge to TimelineEvent entities by IDs.
func (_u *RunUpdate) RemoveTimelineEventIDs(ids ...string) *RunUpdate {
	_u.mutation.RemoveTimelineEventIDs(ids...)
	return _u
}

// RemoveTimelineEvents removes "timeline_events" edges to TimelineEvent entities.
func (_u *RunUpdate) RemoveTimelineEvents(v ...*TimelineEvent) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTimelineEventIDs(ids...)
}

// ClearReplayBundle clears the "replay_bundle" edge to the ReplayBundle entity.
func (_u *RunUpdate) ClearReplayBundle() *RunUpdate {
	_u.mutation.ClearReplayBundle()
	return _u
}

// ClearCanarySample clears the "canary_sample" edge to the CanarySample entity.
func (_u *RunUpdate) ClearCanarySample() *RunUpdate {
	_u.mutation.ClearCanarySample()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := run.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Run.state": %w`, err)}
		}
	}
	if _u.mutation.SpecCleared() && len(_u.mutation.SpecIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Run.spec"`)
	}
	return nil
}

func (_u *RunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(run.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Iteration(); ok {
		_spec.SetField(run.FieldIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIteration(); ok {
		_spec.AddField(run.FieldIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(run.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(run.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CostUsedUsd(); ok {
		_spec.SetField(run.FieldCostUsedUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsedUsd(); ok {
		_spec.AddField(run.FieldCostUsedUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PausedState(); ok {
		_spec.SetField(run.FieldPausedState, field.TypeString, value)
	}
	if _u.mutation.PausedStateCleared() {
		_spec.ClearField(run.FieldPausedState, field.TypeString)
	}
	if value, ok := _u.mutation.LastGreenIteration(); ok {
		_spec.SetField(run.FieldLastGreenIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastGreenIteration(); ok {
		_spec.AddField(run.FieldLastGreenIteration, field.TypeInt, value)
	}
	if _u.mutation.LastGreenIterationCleared() {
		_spec.ClearField(run.FieldLastGreenIteration, field.TypeInt)
	}
	if value, ok := _u.mutation.TerminalReason(); ok {
		_spec.SetField(run.FieldTerminalReason, field.TypeString, value)
	}
	if _u.mutation.TerminalReasonCleared() {
		_spec.ClearField(run.FieldTerminalReason, field.TypeString)
	}
	if value, ok := _u.mutation.PatchStreak(); ok {
		_spec.SetField(run.FieldPatchStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPatchStreak(); ok {
		_spec.AddField(run.FieldPatchStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReplanScope(); ok {
		_spec.SetField(run.FieldReplanScope, field.TypeString, value)
	}
	if _u.mutation.ReplanScopeCleared() {
		_spec.ClearField(run.FieldReplanScope, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(run.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(run.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(run.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(run.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.StepsTable,
			Columns: []string{run.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.StepsTable,
			Columns: []string{run.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.StepsTable,
			Columns: []string{run.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FailuresCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.FailuresTable,
			Columns: []string{run.FailuresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(failure.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFailuresIDs(); len(nodes) > 0 && !_u.mutation.FailuresCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.FailuresTable,
			Columns: []string{run.FailuresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(failure.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FailuresIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.FailuresTable,
			Columns: []string{run.FailuresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(failure.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RepairAttemptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.RepairAttemptsTable,
			Columns: []string{run.RepairAttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(repairattempt.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRepairAttemptsIDs(); len(nodes) > 0 && !_u.mutation.RepairAttemptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.RepairAttemptsTable,
			Columns: []string{run.RepairAttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(repairattempt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RepairAttemptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.RepairAttemptsTable,
			Columns: []string{run.RepairAttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(repairattempt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ArtifactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ArtifactsTable,
			Columns: []string{run.ArtifactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArtifactsIDs(); len(nodes) > 0 && !_u.mutation.ArtifactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ArtifactsTable,
			Columns: []string{run.ArtifactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArtifactsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ArtifactsTable,
			Columns: []string{run.ArtifactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ApprovalGatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ApprovalGatesTable,
			Columns: []string{run.ApprovalGatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvalgate.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApprovalGatesIDs(); len(nodes) > 0 && !_u.mutation.ApprovalGatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ApprovalGatesTable,
			Columns: []string{run.ApprovalGatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvalgate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApprovalGatesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ApprovalGatesTable,
			Columns: []string{run.ApprovalGatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvalgate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BudgetCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   run.BudgetTable,
			Columns: []string{run.BudgetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(budget.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BudgetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   run.BudgetTable,
			Columns: []string{run.BudgetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(budget.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TimelineEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.TimelineEventsTable,
			Columns: []string{run.TimelineEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timelineevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTimelineEventsIDs(); len(nodes) > 0 && !_u.mutation.TimelineEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.TimelineEventsTable,
			Columns: []string{run.TimelineEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timelineevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TimelineEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.TimelineEventsTable,
			Columns: []string{run.TimelineEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timelineevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReplayBundleCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   run.ReplayBundleTable,
			Columns: []string{run.ReplayBundleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(replaybundle.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReplayBundleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   run.ReplayBundleTable,
			Columns: []string{run.ReplayBundleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(replaybundle.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CanarySampleCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   run.CanarySampleTable,
			Columns: []string{run.CanarySampleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(canarysample.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CanarySampleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   run.CanarySampleTable,
			Columns: []string{run.CanarySampleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(canarysample.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunUpdateOne is the builder for updating a single Run entity.
type RunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunMutation
}

// SetState sets the "state" field.
func (_u *RunUpdateOne) SetState(v run.State) *RunUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableState(v *run.State) *RunUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetIteration sets the "iteration" field.
func (_u *RunUpdateOne) SetIteration(v int) *RunUpdateOne {
	_u.mutation.ResetIteration()
	_u.mutation.SetIteration(v)
	return _u
}

// SetNillableIteration sets the "iteration" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableIteration(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetIteration(*v)
	}
	return _u
}

// AddIteration adds value to the "iteration" field.
func (_u *RunUpdateOne) AddIteration(v int) *RunUpdateOne {
	_u.mutation.AddIteration(v)
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *RunUpdateOne) SetTokensUsed(v int) *RunUpdateOne {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableTokensUsed(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *RunUpdateOne) AddTokensUsed(v int) *RunUpdateOne {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetCostUsedUsd sets the "cost_used_usd" field.
func (_u *RunUpdateOne) SetCostUsedUsd(v float64) *RunUpdateOne {
	_u.mutation.ResetCostUsedUsd()
	_u.mutation.SetCostUsedUsd(v)
	return _u
}

// SetNillableCostUsedUsd sets the "cost_used_usd" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableCostUsedUsd(v *float64) *RunUpdateOne {
	if v != nil {
		_u.SetCostUsedUsd(*v)
	}
	return _u
}

// AddCostUsedUsd adds value to the "cost_used_usd" field.
func (_u *RunUpdateOne) AddCostUsedUsd(v float64) *RunUpdateOne {
	_u.mutation.AddCostUsedUsd(v)
	return _u
}

// SetPausedState sets the "paused_state" field.
func (_u *RunUpdateOne) SetPausedState(v string) *RunUpdateOne {
	_u.mutation.SetPausedState(v)
	return _u
}

// SetNillablePausedState sets the "paused_state" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillablePausedState(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetPausedState(*v)
	}
	return _u
}

// ClearPausedState clears the value of the "paused_state" field.
func (_u *RunUpdateOne) ClearPausedState() *RunUpdateOne {
	_u.mutation.ClearPausedState()
	return _u
}

// SetLastGreenIteration sets the "last_green_iteration" field.
func (_u *RunUpdateOne) SetLastGreenIteration(v int) *RunUpdateOne {
	_u.mutation.ResetLastGreenIteration()
	_u.mutation.SetLastGreenIteration(v)
	return _u
}

// SetNillableLastGreenIteration sets the "last_green_iteration" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableLastGreenIteration(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetLastGreenIteration(*v)
	}
	return _u
}

// AddLastGreenIteration adds value to the "last_green_iteration" field.
func (_u *RunUpdateOne) AddLastGreenIteration(v int) *RunUpdateOne {
	_u.mutation.AddLastGreenIteration(v)
	return _u
}

// ClearLastGreenIteration clears the value of the "last_green_iteration" field.
func (_u *RunUpdateOne) ClearLastGreenIteration() *RunUpdateOne {
	_u.mutation.ClearLastGreenIteration()
	return _u
}

// SetTerminalReason sets the "terminal_reason" field.
func (_u *RunUpdateOne) SetTerminalReason(v string) *RunUpdateOne {
	_u.mutation.SetTerminalReason(v)
	return _u
}

// SetNillableTerminalReason sets the "terminal_reason" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableTerminalReason(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetTerminalReason(*v)
	}
	return _u
}

// ClearTerminalReason clears the value of the "terminal_reason" field.
func (_u *RunUpdateOne) ClearTerminalReason() *RunUpdateOne {
	_u.mutation.ClearTerminalReason()
	return _u
}

// SetPatchStreak sets the "patch_streak" field.
func (_u *RunUpdateOne) SetPatchStreak(v int) *RunUpdateOne {
	_u.mutation.ResetPatchStreak()
	_u.mutation.SetPatchStreak(v)
	return _u
}

// SetNillablePatchStreak sets the "patch_streak" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillablePatchStreak(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetPatchStreak(*v)
	}
	return _u
}

// AddPatchStreak adds value to the "patch_streak" field.
func (_u *RunUpdateOne) AddPatchStreak(v int) *RunUpdateOne {
	_u.mutation.AddPatchStreak(v)
	return _u
}

// SetReplanScope sets the "replan_scope" field.
func (_u *RunUpdateOne) SetReplanScope(v string) *RunUpdateOne {
	_u.mutation.SetReplanScope(v)
	return _u
}

// SetNillableReplanScope sets the "replan_scope" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableReplanScope(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetReplanScope(*v)
	}
	return _u
}

// ClearReplanScope clears the value of the "replan_scope" field.
func (_u *RunUpdateOne) ClearReplanScope() *RunUpdateOne {
	_u.mutation.ClearReplanScope()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunUpdateOne) SetStartedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableStartedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RunUpdateOne) ClearStartedAt() *RunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RunUpdateOne) SetCompletedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableCompletedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RunUpdateOne) ClearCompletedAt() *RunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *RunUpdateOne) SetDeletedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableDeletedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *RunUpdateOne) ClearDeletedAt() *RunUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddStepIDs adds the "steps" edge to the Step entity by IDs.
func (_u *RunUpdateOne) AddStepIDs(ids ...string) *RunUpdateOne {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the Step entity.
func (_u *RunUpdateOne) AddSteps(v ...*Step) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddFailureIDs adds the "failures" edge to the Failure entity by IDs.
func (_u *RunUpdateOne) AddFailureIDs(ids ...string) *RunUpdateOne {
	_u.mutation.AddFailureIDs(ids...)
	return _u
}

// AddFailures adds the "failures" edges to the Failure entity.
func (_u *RunUpdateOne) AddFailures(v ...*Failure) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFailureIDs(ids...)
}

// AddRepairAttemptIDs adds the "repair_attempts" edge to the RepairAttempt entity by IDs.
func (_u *RunUpdateOne) AddRepairAttemptIDs(ids ...string) *RunUpdateOne {
	_u.mutation.AddRepairAttemptIDs(ids...)
	return _u
}

// AddRepairAttempts adds the "repair_attempts" edges to the RepairAttempt entity.
func (_u *RunUpdateOne) AddRepairAttempts(v ...*RepairAttempt) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRepairAttemptIDs(ids...)
}

// AddArtifactIDs adds the "artifacts" edge to the Artifact entity by IDs.
func (_u *RunUpdateOne) AddArtifactIDs(ids ...string) *RunUpdateOne {
	_u.mutation.AddArtifactIDs(ids...)
	return _u
}

// AddArtifacts adds the "artifacts" edges to the Artifact entity.
func (_u *RunUpdateOne) AddArtifacts(v ...*Artifact) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArtifactIDs(ids...)
}

// AddApprovalGateIDs adds the "approval_gates" edge to the ApprovalGate entity by IDs.
func (_u *RunUpdateOne) AddApprovalGateIDs(ids ...string) *RunUpdateOne {
	_u.mutation.AddApprovalGateIDs(ids...)
	return _u
}

// AddApprovalGates adds the "approval_gates" edges to the ApprovalGate entity.
func (_u *RunUpdateOne) AddApprovalGates(v ...*ApprovalGate) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApprovalGateIDs(ids...)
}

// SetBudgetID sets the "budget" edge to the Budget entity by ID.
func (_u *RunUpdateOne) SetBudgetID(id string) *RunUpdateOne {
	_u.mutation.SetBudgetID(id)
	return _u
}

// SetNillableBudgetID sets the "budget" edge to the Budget entity by ID if the given value is not nil.
func (_u *RunUpdateOne) SetNillableBudgetID(id *string) *RunUpdateOne {
	if id != nil {
		_u = _u.SetBudgetID(*id)
	}
	return _u
}

// SetBudget sets the "budget" edge to the Budget entity.
func (_u *RunUpdateOne) SetBudget(v *Budget) *RunUpdateOne {
	return _u.SetBudgetID(v.ID)
}

// AddTimelineEventIDs adds the "timeline_events" edge to the TimelineEvent entity by IDs.
func (_u *RunUpdateOne) AddTimelineEventIDs(ids ...string) *RunUpdateOne {
	_u.mutation.AddTimelineEventIDs(ids...)
	return _u
}

// AddTimelineEvents adds the "timeline_events" edges to the TimelineEvent entity.
func (_u *RunUpdateOne) AddTimelineEvents(v ...*TimelineEvent) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTimelineEventIDs(ids...)
}

// SetReplayBundleID sets the "replay_bundle" edge to the ReplayBundle entity by ID.
func (_u *RunUpdateOne) SetReplayBundleID(id string) *RunUpdateOne {
	_u.mutation.SetReplayBundleID(id)
	return _u
}

// SetNillableReplayBundleID sets the "replay_bundle" edge to the ReplayBundle entity by ID if the given value is not nil.
func (_u *RunUpdateOne) SetNillableReplayBundleID(id *string) *RunUpdateOne {
	if id != nil {
		_u = _u.SetReplayBundleID(*id)
	}
	return _u
}

// SetReplayBundle sets the "replay_bundle" edge to the ReplayBundle entity.
func (_u *RunUpdateOne) SetReplayBundle(v *ReplayBundle) *RunUpdateOne {
	return _u.SetReplayBundleID(v.ID)
}

// SetCanarySampleID sets the "canary_sample" edge to the CanarySample entity by ID.
func (_u *RunUpdateOne) SetCanarySampleID(id string) *RunUpdateOne {
	_u.mutation.SetCanarySampleID(id)
	return _u
}

// SetNillableCanarySampleID sets the "canary_sample" edge to the CanarySample entity by ID if the given value is not nil.
func (_u *RunUpdateOne) SetNillableCanarySampleID(id *string) *RunUpdateOne {
	if id != nil {
		_u = _u.SetCanarySampleID(*id)
	}
	return _u
}

// SetCanarySample sets the "canary_sample" edge to the CanarySample entity.
func (_u *RunUpdateOne) SetCanarySample(v *CanarySample) *RunUpdateOne {
	return _u.SetCanarySampleID(v.ID)
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdateOne) Mutation() *RunMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the Step entity.
func (_u *RunUpdateOne) ClearSteps() *RunUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to Step entities by IDs.
func (_u *RunUpdateOne) RemoveStepIDs(ids ...string) *RunUpdateOne {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to Step entities.
func (_u *RunUpdateOne) RemoveSteps(v ...*Step) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearFailures clears all "failures" edges to the Failure entity.
func (_u *RunUpdateOne) ClearFailures() *RunUpdateOne {
	_u.mutation.ClearFailures()
	return _u
}

// RemoveFailureIDs removes the "failures" edge to Failure entities by IDs.
func (_u *RunUpdateOne) RemoveFailureIDs(ids ...string) *RunUpdateOne {
	_u.mutation.RemoveFailureIDs(ids...)
	return _u
}

// RemoveFailures removes "failures" edges to Failure entities.
func (_u *RunUpdateOne) RemoveFailures(v ...*Failure) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFailureIDs(ids...)
}

// ClearRepairAttempts clears all "repair_attempts" edges to the RepairAttempt entity.
func (_u *RunUpdateOne) ClearRepairAttempts() *RunUpdateOne {
	_u.mutation.ClearRepairAttempts()
	return _u
}

// RemoveRepairAttemptIDs removes the "repair_attempts" edge to RepairAttempt entities by IDs.
func (_u *RunUpdateOne) RemoveRepairAttemptIDs(ids ...string) *RunUpdateOne {
	_u.mutation.RemoveRepairAttemptIDs(ids...)
	return _u
}

// RemoveRepairAttempts removes "repair_attempts" edges to RepairAttempt entities.
func (_u *RunUpdateOne) RemoveRepairAttempts(v ...*RepairAttempt) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRepairAttemptIDs(ids...)
}

// ClearArtifacts clears all "artifacts" edges to the Artifact entity.
func (_u *RunUpdateOne) ClearArtifacts() *RunUpdateOne {
	_u.mutation.ClearArtifacts()
	return _u
}

// RemoveArtifactIDs removes the "artifacts" edge to Artifact entities by IDs.
func (_u *RunUpdateOne) RemoveArtifactIDs(ids ...string) *RunUpdateOne {
	_u.mutation.RemoveArtifactIDs(ids...)
	return _u
}

// RemoveArtifacts removes "artifacts" edges to Artifact entities.
func (_u *RunUpdateOne) RemoveArtifacts(v ...*Artifact) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArtifactIDs(ids...)
}

// ClearApprovalGates clears all "approval_gates" edges to the ApprovalGate entity.
func (_u *RunUpdateOne) ClearApprovalGates() *RunUpdateOne {
	_u.mutation.ClearApprovalGates()
	return _u
}

// RemoveApprovalGateIDs removes the "approval_gates" edge to ApprovalGate entities by IDs.
func (_u *RunUpdateOne) RemoveApprovalGateIDs(ids ...string) *RunUpdateOne {
	_u.mutation.RemoveApprovalGateIDs(ids...)
	return _u
}

// RemoveApprovalGates removes "approval_gates" edges to ApprovalGate entities.
func (_u *RunUpdateOne) RemoveApprovalGates(v ...*ApprovalGate) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApprovalGateIDs(ids...)
}

// ClearBudget clears the "budget" edge to the Budget entity.
func (_u *RunUpdateOne) ClearBudget() *RunUpdateOne {
	_u.mutation.ClearBudget()
	return _u
}

// ClearTimelineEvents clears all "timeline_events" edges to the TimelineEvent entity.
func (_u *RunUpdateOne) ClearTimelineEvents() *RunUpdateOne {
	_u.mutation.ClearTimelineEvents()
	return _u
}

// RemoveTimelineEventIDs removes the "timeline_events" edge to TimelineEvent entities by IDs.
func (_u *RunUpdateOne) RemoveTimelineEventIDs(ids ...string) *RunUpdateOne {
	_u.mutation.RemoveTimelineEventIDs(ids...)
	return _u
}

// RemoveTimelineEvents removes "timeline_events" edges to TimelineEvent entities.
func (_u *RunUpdateOne) RemoveTimelineEvents(v ...*TimelineEvent) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTimelineEventIDs(ids...)
}

// ClearReplayBundle clears the "replay_bundle" edge to the ReplayBundle entity.
func (_u *RunUpdateOne) ClearReplayBundle() *RunUpdateOne {
	_u.mutation.ClearReplayBundle()
	return _u
}

// ClearCanarySample clears the "canary_sample" edge to the CanarySample entity.
func (_u *RunUpdateOne) ClearCanarySample() *RunUpdateOne {
	_u.mutation.ClearCanarySample()
	return _u
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdateOne) Where(ps ...predicate.Run) *RunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunUpdateOne) Select(field string, fields ...string) *RunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Run entity.
func (_u *RunUpdateOne) Save(ctx context.Context) (*Run, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdateOne) SaveX(ctx context.Context) *Run {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := run.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Run.state": %w`, err)}
		}
	}
	if _u.mutation.SpecCleared() && len(_u.mutation.SpecIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Run.spec"`)
	}
	return nil
}

func (_u *RunUpdateOne) sqlSave(ctx context.Context) (_node *Run, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Run.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, run.FieldID)
		for _, f := range fields {
			if !run.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != run.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(run.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Iteration(); ok {
		_spec.SetField(run.FieldIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIteration(); ok {
		_spec.AddField(run.FieldIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(run.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(run.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CostUsedUsd(); ok {
		_spec.SetField(run.FieldCostUsedUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsedUsd(); ok {
		_spec.AddField(run.FieldCostUsedUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PausedState(); ok {
		_spec.SetField(run.FieldPausedState, field.TypeString, value)
	}
	if _u.mutation.PausedStateCleared() {
		_spec.ClearField(run.FieldPausedState, field.TypeString)
	}
	if value, ok := _u.mutation.LastGreenIteration(); ok {
		_spec.SetField(run.FieldLastGreenIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastGreenIteration(); ok {
		_spec.AddField(run.FieldLastGreenIteration, field.TypeInt, value)
	}
	if _u.mutation.LastGreenIterationCleared() {
		_spec.ClearField(run.FieldLastGreenIteration, field.TypeInt)
	}
	if value, ok := _u.mutation.TerminalReason(); ok {
		_spec.SetField(run.FieldTerminalReason, field.TypeString, value)
	}
	if _u.mutation.TerminalReasonCleared() {
		_spec.ClearField(run.FieldTerminalReason, field.TypeString)
	}
	if value, ok := _u.mutation.PatchStreak(); ok {
		_spec.SetField(run.FieldPatchStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPatchStreak(); ok {
		_spec.AddField(run.FieldPatchStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReplanScope(); ok {
		_spec.SetField(run.FieldReplanScope, field.TypeString, value)
	}
	if _u.mutation.ReplanScopeCleared() {
		_spec.ClearField(run.FieldReplanScope, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(run.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(run.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(run.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(run.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.StepsTable,
			Columns: []string{run.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.StepsTable,
			Columns: []string{run.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.StepsTable,
			Columns: []string{run.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FailuresCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.FailuresTable,
			Columns: []string{run.FailuresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(failure.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFailuresIDs(); len(nodes) > 0 && !_u.mutation.FailuresCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.FailuresTable,
			Columns: []string{run.FailuresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(failure.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FailuresIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.FailuresTable,
			Columns: []string{run.FailuresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(failure.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RepairAttemptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.RepairAttemptsTable,
			Columns: []string{run.RepairAttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(repairattempt.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRepairAttemptsIDs(); len(nodes) > 0 && !_u.mutation.RepairAttemptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.RepairAttemptsTable,
			Columns: []string{run.RepairAttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(repairattempt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RepairAttemptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.RepairAttemptsTable,
			Columns: []string{run.RepairAttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(repairattempt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ArtifactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ArtifactsTable,
			Columns: []string{run.ArtifactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArtifactsIDs(); len(nodes) > 0 && !_u.mutation.ArtifactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ArtifactsTable,
			Columns: []string{run.ArtifactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArtifactsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ArtifactsTable,
			Columns: []string{run.ArtifactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ApprovalGatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ApprovalGatesTable,
			Columns: []string{run.ApprovalGatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvalgate.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApprovalGatesIDs(); len(nodes) > 0 && !_u.mutation.ApprovalGatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ApprovalGatesTable,
			Columns: []string{run.ApprovalGatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvalgate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApprovalGatesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ApprovalGatesTable,
			Columns: []string{run.ApprovalGatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvalgate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BudgetCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   run.BudgetTable,
			Columns: []string{run.BudgetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(budget.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BudgetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   run.BudgetTable,
			Columns: []string{run.BudgetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(budget.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TimelineEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.TimelineEventsTable,
			Columns: []string{run.TimelineEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timelineevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTimelineEventsIDs(); len(nodes) > 0 && !_u.mutation.TimelineEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.TimelineEventsTable,
			Columns: []string{run.TimelineEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timelineevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TimelineEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.TimelineEventsTable,
			Columns: []string{run.TimelineEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timelineevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReplayBundleCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   run.ReplayBundleTable,
			Columns: []string{run.ReplayBundleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(replaybundle.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReplayBundleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   run.ReplayBundleTable,
			Columns: []string{run.ReplayBundleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(replaybundle.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CanarySampleCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   run.CanarySampleTable,
			Columns: []string{run.CanarySampleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(canarysample.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CanarySampleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   run.CanarySampleTable,
			Columns: []string{run.CanarySampleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(canarysample.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Run{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
