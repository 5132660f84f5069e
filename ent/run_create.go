// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeworks/metabuild/ent/approvalgate"
	"github.com/forgeworks/metabuild/ent/artifact"
	"github.com/forgeworks/metabuild/ent/budget"
	"github.com/forgeworks/metabuild/ent/buildspec"
	"github.com/forgeworks/metabuild/ent/canarysample"
	"github.com/forgeworks/metabuild/ent/failure"
	"github.com/forgeworks/metabuild/ent/repairattempt"
	"github.com/forgeworks/metabuild/ent/replaybundle"
	"github.com/forgeworks/metabuild/ent/run"
	"github.com/forgeworks/metabuild/ent/step"
	"github.com/forgeworks/metabuild/ent/timelineevent"
)

// RunCreate is the builder for creating a Run entity.
type RunCreate struct {
	config
	mutation *RunMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenant sets the "tenant" field.
func (_c *RunCreate) SetTenant(v string) *RunCreate {
	_c.mutation.SetTenant(v)
	return _c
}

// SetSpecID sets the "spec_id" field.
func (_c *RunCreate) SetSpecID(v string) *RunCreate {
	_c.mutation.SetSpecID(v)
	return _c
}

// SetState sets the "state" field.
func (_c *RunCreate) SetState(v run.State) *RunCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *RunCreate) SetNillableState(v *run.State) *RunCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetIteration sets the "iteration" field.
func (_c *RunCreate) SetIteration(v int) *RunCreate {
	_c.mutation.SetIteration(v)
	return _c
}

// SetNillableIteration sets the "iteration" field if the given value is not nil.
func (_c *RunCreate) SetNillableIteration(v *int) *RunCreate {
	if v != nil {
		_c.SetIteration(*v)
	}
	return _c
}

// SetTokensUsed sets the "tokens_used" field.
func (_c *RunCreate) SetTokensUsed(v int) *RunCreate {
	_c.mutation.SetTokensUsed(v)
	return _c
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_c *RunCreate) SetNillableTokensUsed(v *int) *RunCreate {
	if v != nil {
		_c.SetTokensUsed(*v)
	}
	return _c
}

// SetCostUsedUsd sets the "cost_used_usd" field.
func (_c *RunCreate) SetCostUsedUsd(v float64) *RunCreate {
	_c.mutation.SetCostUsedUsd(v)
	return _c
}

// SetNillableCostUsedUsd sets the "cost_used_usd" field if the given value is not nil.
func (_c *RunCreate) SetNillableCostUsedUsd(v *float64) *RunCreate {
	if v != nil {
		_c.SetCostUsedUsd(*v)
	}
	return _c
}

// SetCanaryGroup sets the "canary_group" field.
func (_c *RunCreate) SetCanaryGroup(v run.CanaryGroup) *RunCreate {
	_c.mutation.SetCanaryGroup(v)
	return _c
}

// SetNillableCanaryGroup sets the "canary_group" field if the given value is not nil.
func (_c *RunCreate) SetNillableCanaryGroup(v *run.CanaryGroup) *RunCreate {
	if v != nil {
		_c.SetCanaryGroup(*v)
	}
	return _c
}

// SetPausedState sets the "paused_state" field.
func (_c *RunCreate) SetPausedState(v string) *RunCreate {
	_c.mutation.SetPausedState(v)
	return _c
}

// SetNillablePausedState sets the "paused_state" field if the given value is not nil.
func (_c *RunCreate) SetNillablePausedState(v *string) *RunCreate {
	if v != nil {
		_c.SetPausedState(*v)
	}
	return _c
}

// SetLastGreenIteration sets the "last_green_iteration" field.
func (_c *RunCreate) SetLastGreenIteration(v int) *RunCreate {
	_c.mutation.SetLastGreenIteration(v)
	return _c
}

// SetNillableLastGreenIteration sets the "last_green_iteration" field if the given value is not nil.
func (_c *RunCreate) SetNillableLastGreenIteration(v *int) *RunCreate {
	if v != nil {
		_c.SetLastGreenIteration(*v)
	}
	return _c
}

// SetTerminalReason sets the "terminal_reason" field.
func (_c *RunCreate) SetTerminalReason(v string) *RunCreate {
	_c.mutation.SetTerminalReason(v)
	return _c
}

// SetNillableTerminalReason sets the "terminal_reason" field if the given value is not nil.
func (_c *RunCreate) SetNillableTerminalReason(v *string) *RunCreate {
	if v != nil {
		_c.SetTerminalReason(*v)
	}
	return _c
}

// SetPatchStreak sets the "patch_streak" field.
func (_c *RunCreate) SetPatchStreak(v int) *RunCreate {
	_c.mutation.SetPatchStreak(v)
	return _c
}

// SetNillablePatchStreak sets the "patch_streak" field if the given value is not nil.
func (_c *RunCreate) SetNillablePatchStreak(v *int) *RunCreate {
	if v != nil {
		_c.SetPatchStreak(*v)
	}
	return _c
}

// SetReplanScope sets the "replan_scope" field.
func (_c *RunCreate) SetReplanScope(v string) *RunCreate {
	_c.mutation.SetReplanScope(v)
	return _c
}

// SetNillableReplanScope sets the "replan_scope" field if the given value is not nil.
func (_c *RunCreate) SetNillableReplanScope(v *string) *RunCreate {
	if v != nil {
		_c.SetReplanScope(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RunCreate) SetCreatedAt(v time.Time) *RunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableCreatedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *RunCreate) SetStartedAt(v time.Time) *RunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableStartedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *RunCreate) SetCompletedAt(v time.Time) *RunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableCompletedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *RunCreate) SetDeletedAt(v time.Time) *RunCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableDeletedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RunCreate) SetID(v string) *RunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSpec sets the "spec" edge to the BuildSpec entity.
func (_c *RunCreate) SetSpec(v *BuildSpec) *RunCreate {
	return _c.SetSpecID(v.ID)
}

// AddStepIDs adds the "steps" edge to the Step entity by IDs.
func (_c *RunCreate) AddStepIDs(ids ...string) *RunCreate {
	_c.mutation.AddStepIDs(ids...)
	return _c
}

// AddSteps adds the "steps" edges to the Step entity.
func (_c *RunCreate) AddSteps(v ...*Step) *RunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepIDs(ids...)
}

// AddFailureIDs adds the "failures" edge to the Failure entity by IDs.
func (_c *RunCreate) AddFailureIDs(ids ...string) *RunCreate {
	_c.mutation.AddFailureIDs(ids...)
	return _c
}

// AddFailures adds the "failures" edges to the Failure entity.
func (_c *RunCreate) AddFailures(v ...*Failure) *RunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFailureIDs(ids...)
}

// AddRepairAttemptIDs adds the "repair_attempts" edge to the RepairAttempt entity by IDs.
func (_c *RunCreate) AddRepairAttemptIDs(ids ...string) *RunCreate {
	_c.mutation.AddRepairAttemptIDs(ids...)
	return _c
}

// AddRepairAttempts adds the "repair_attempts" edges to the RepairAttempt entity.
func (_c *RunCreate) AddRepairAttempts(v ...*RepairAttempt) *RunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRepairAttemptIDs(ids...)
}

// AddArtifactIDs adds the "artifacts" edge to the Artifact entity by IDs.
func (_c *RunCreate) AddArtifactIDs(ids ...string) *RunCreate {
	_c.mutation.AddArtifactIDs(ids...)
	return _c
}

// AddArtifacts adds the "artifacts" edges to the Artifact entity.
func (_c *RunCreate) AddArtifacts(v ...*Artifact) *RunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddArtifactIDs(ids...)
}

// AddApprovalGateIDs adds the "approval_gates" edge to the ApprovalGate entity by IDs.
func (_c *RunCreate) AddApprovalGateIDs(ids ...string) *RunCreate {
	_c.mutation.AddApprovalGateIDs(ids...)
	return _c
}

// AddApprovalGates adds the "approval_gates" edges to the ApprovalGate entity.
func (_c *RunCreate) AddApprovalGates(v ...*ApprovalGate) *RunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddApprovalGateIDs(ids...)
}

// SetBudgetID sets the "budget" edge to the Budget entity by ID.
func (_c *RunCreate) SetBudgetID(id string) *RunCreate {
	_c.mutation.SetBudgetID(id)
	return _c
}

// SetNillableBudgetID sets the "budget" edge to the Budget entity by ID if the given value is not nil.
func (_c *RunCreate) SetNillableBudgetID(id *string) *RunCreate {
	if id != nil {
		_c = _c.SetBudgetID(*id)
	}
	return _c
}

// SetBudget sets the "budget" edge to the Budget entity.
func (_c *RunCreate) SetBudget(v *Budget) *RunCreate {
	return _c.SetBudgetID(v.ID)
}

// AddTimelineEventIDs adds the "timeline_events" edge to the TimelineEvent entity by IDs.
func (_c *RunCreate) AddTimelineEventIDs(ids ...string) *RunCreate {
	_c.mutation.AddTimelineEventIDs(ids...)
	return _c
}

// AddTimelineEvents adds the "timeline_events" edges to the TimelineEvent entity.
func (_c *RunCreate) AddTimelineEvents(v ...*TimelineEvent) *RunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTimelineEventIDs(ids...)
}

// SetReplayBundleID sets the "replay_bundle" edge to the ReplayBundle entity by ID.
func (_c *RunCreate) SetReplayBundleID(id string) *RunCreate {
	_c.mutation.SetReplayBundleID(id)
	return _c
}

// SetNillableReplayBundleID sets the "replay_bundle" edge to the ReplayBundle entity by ID if the given value is not nil.
func (_c *RunCreate) SetNillableReplayBundleID(id *string) *RunCreate {
	if id != nil {
		_c = _c.SetReplayBundleID(*id)
	}
	return _c
}

// SetReplayBundle sets the "replay_bundle" edge to the ReplayBundle entity.
func (_c *RunCreate) SetReplayBundle(v *ReplayBundle) *RunCreate {
	return _c.SetReplayBundleID(v.ID)
}

// SetCanarySampleID sets the "canary_sample" edge to the CanarySample entity by ID.
func (_c *RunCreate) SetCanarySampleID(id string) *RunCreate {
	_c.mutation.SetCanarySampleID(id)
	return _c
}

// SetNillableCanarySampleID sets the "canary_sample" edge to the CanarySample entity by ID if the given value is not nil.
func (_c *RunCreate) SetNillableCanarySampleID(id *string) *RunCreate {
	if id != nil {
		_c = _c.SetCanarySampleID(*id)
	}
	return _c
}

// SetCanarySample sets the "canary_sample" edge to the CanarySample entity.
func (_c *RunCreate) SetCanarySample(v *CanarySample) *RunCreate {
	return _c.SetCanarySampleID(v.ID)
}

// Mutation returns the RunMutation object of the builder.
func (_c *RunCreate) Mutation() *RunMutation {
	return _c.mutation
}

// Save creates the Run in the database.
func (_c *RunCreate) Save(ctx context.Context) (*Run, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunCreate) SaveX(ctx context.Context) *Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := run.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.Iteration(); !ok {
		v := run.DefaultIteration
		_c.mutation.SetIteration(v)
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		v := run.DefaultTokensUsed
		_c.mutation.SetTokensUsed(v)
	}
	if _, ok := _c.mutation.CostUsedUsd(); !ok {
		v := run.DefaultCostUsedUsd
		_c.mutation.SetCostUsedUsd(v)
	}
	if _, ok := _c.mutation.CanaryGroup(); !ok {
		v := run.DefaultCanaryGroup
		_c.mutation.SetCanaryGroup(v)
	}
	if _, ok := _c.mutation.PatchStreak(); !ok {
		v := run.DefaultPatchStreak
		_c.mutation.SetPatchStreak(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := run.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunCreate) check() error {
	if _, ok := _c.mutation.Tenant(); !ok {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required field "Run.tenant"`)}
	}
	if _, ok := _c.mutation.SpecID(); !ok {
		return &ValidationError{Name: "spec_id", err: errors.New(`ent: missing required field "Run.spec_id"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Run.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := run.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Run.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Iteration(); !ok {
		return &ValidationError{Name: "iteration", err: errors.New(`ent: missing required field "Run.iteration"`)}
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		return &ValidationError{Name: "tokens_used", err: errors.New(`ent: missing required field "Run.tokens_used"`)}
	}
	if _, ok := _c.mutation.CostUsedUsd(); !ok {
		return &ValidationError{Name: "cost_used_usd", err: errors.New(`ent: missing required field "Run.cost_used_usd"`)}
	}
	if _, ok := _c.mutation.CanaryGroup(); !ok {
		return &ValidationError{Name: "canary_group", err: errors.New(`ent: missing required field "Run.canary_group"`)}
	}
	if v, ok := _c.mutation.CanaryGroup(); ok {
		if err := run.CanaryGroupValidator(v); err != nil {
			return &ValidationError{Name: "canary_group", err: fmt.Errorf(`ent: validator failed for field "Run.canary_group": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PatchStreak(); !ok {
		return &ValidationError{Name: "patch_streak", err: errors.New(`ent: missing required field "Run.patch_streak"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Run.created_at"`)}
	}
	if len(_c.mutation.SpecIDs()) == 0 {
		return &ValidationError{Name: "spec", err: errors.New(`ent: missing required edge "Run.spec"`)}
	}
	return nil
}

func (_c *RunCreate) sqlSave(ctx context.Context) (*Run, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Run.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RunCreate) createSpec() (*Run, *sqlgraph.CreateSpec) {
	var (
		_node = &Run{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(run.Table, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Tenant(); ok {
		_spec.SetField(run.FieldTenant, field.TypeString, value)
		_node.Tenant = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(run.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Iteration(); ok {
		_spec.SetField(run.FieldIteration, field.TypeInt, value)
		_node.Iteration = value
	}
	if value, ok := _c.mutation.TokensUsed(); ok {
		_spec.SetField(run.FieldTokensUsed, field.TypeInt, value)
		_node.TokensUsed = value
	}
	if value, ok := _c.mutation.CostUsedUsd(); ok {
		_spec.SetField(run.FieldCostUsedUsd, field.TypeFloat64, value)
		_node.CostUsedUsd = value
	}
	if value, ok := _c.mutation.CanaryGroup(); ok {
		_spec.SetField(run.FieldCanaryGroup, field.TypeEnum, value)
		_node.CanaryGroup = value
	}
	if value, ok := _c.mutation.PausedState(); ok {
		_spec.SetField(run.FieldPausedState, field.TypeString, value)
		_node.PausedState = &value
	}
	if value, ok := _c.mutation.LastGreenIteration(); ok {
		_spec.SetField(run.FieldLastGreenIteration, field.TypeInt, value)
		_node.LastGreenIteration = &value
	}
	if value, ok := _c.mutation.TerminalReason(); ok {
		_spec.SetField(run.FieldTerminalReason, field.TypeString, value)
		_node.TerminalReason = &value
	}
	if value, ok := _c.mutation.PatchStreak(); ok {
		_spec.SetField(run.FieldPatchStreak, field.TypeInt, value)
		_node.PatchStreak = value
	}
	if value, ok := _c.mutation.ReplanScope(); ok {
		_spec.SetField(run.FieldReplanScope, field.TypeString, value)
		_node.ReplanScope = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(run.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(run.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.SpecIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   run.SpecTable,
			Columns: []string{run.SpecColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(buildspec.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SpecID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FailuresIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RepairAttemptsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ArtifactsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ApprovalGatesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BudgetIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TimelineEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReplayBundleIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CanarySampleIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Run.Create().
//		SetTenant(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunUpsert) {
//			SetTenant(v+v).
//		}).
//		Exec(ctx)
func (_c *RunCreate) OnConflict(opts ...sql.ConflictOption) *RunUpsertOne {
	_c.conflict = opts
	return &RunUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Run.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunCreate) OnConflictColumns(columns ...string) *RunUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunUpsertOne{
		create: _c,
	}
}

type (
	// RunUpsertOne is the builder for "upsert"-ing
	//  one Run node.
	RunUpsertOne struct {
		create *RunCreate
	}

	// RunUpsert is the "OnConflict" setter.
	RunUpsert struct {
		*sql.UpdateSet
	}
)

// SetState sets the "state" field.
func (u *RunUpsert) SetState(v run.State) *RunUpsert {
	u.Set(run.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *RunUpsert) UpdateState() *RunUpsert {
	u.SetExcluded(run.FieldState)
	return u
}

// SetIteration sets the "iteration" field.
func (u *RunUpsert) SetIteration(v int) *RunUpsert {
	u.Set(run.FieldIteration, v)
	return u
}

// UpdateIteration sets the "iteration" field to the value that was provided on create.
func (u *RunUpsert) UpdateIteration() *RunUpsert {
	u.SetExcluded(run.FieldIteration)
	return u
}

// AddIteration adds v to the "iteration" field.
func (u *RunUpsert) AddIteration(v int) *RunUpsert {
	u.Add(run.FieldIteration, v)
	return u
}

// SetTokensUsed sets the "tokens_used" field.
func (u *RunUpsert) SetTokensUsed(v int) *RunUpsert {
	u.Set(run.FieldTokensUsed, v)
	return u
}

// UpdateTokensUsed sets the "tokens_used" field to the value that was provided on create.
func (u *RunUpsert) UpdateTokensUsed() *RunUpsert {
	u.SetExcluded(run.FieldTokensUsed)
	return u
}

// AddTokensUsed adds v to the "tokens_used" field.
func (u *RunUpsert) AddTokensUsed(v int) *RunUpsert {
	u.Add(run.FieldTokensUsed, v)
	return u
}

// SetCostUsedUsd sets the "cost_used_usd" field.
func (u *RunUpsert) SetCostUsedUsd(v float64) *RunUpsert {
	u.Set(run.FieldCostUsedUsd, v)
	return u
}

// UpdateCostUsedUsd sets the "cost_used_usd" field to the value that was provided on create.
func (u *RunUpsert) UpdateCostUsedUsd() *RunUpsert {
	u.SetExcluded(run.FieldCostUsedUsd)
	return u
}

// AddCostUsedUsd adds v to the "cost_used_usd" field.
func (u *RunUpsert) AddCostUsedUsd(v float64) *RunUpsert {
	u.Add(run.FieldCostUsedUsd, v)
	return u
}

// SetPausedState sets the "paused_state" field.
func (u *RunUpsert) SetPausedState(v string) *RunUpsert {
	u.Set(run.FieldPausedState, v)
	return u
}

// UpdatePausedState sets the "paused_state" field to the value that was provided on create.
func (u *RunUpsert) UpdatePausedState() *RunUpsert {
	u.SetExcluded(run.FieldPausedState)
	return u
}

// ClearPausedState clears the value of the "paused_state" field.
func (u *RunUpsert) ClearPausedState() *RunUpsert {
	u.SetNull(run.FieldPausedState)
	return u
}

// SetLastGreenIteration sets the "last_green_iteration" field.
func (u *RunUpsert) SetLastGreenIteration(v int) *RunUpsert {
	u.Set(run.FieldLastGreenIteration, v)
	return u
}

// UpdateLastGreenIteration sets the "last_green_iteration" field to the value that was provided on create.
func (u *RunUpsert) UpdateLastGreenIteration() *RunUpsert {
	u.SetExcluded(run.FieldLastGreenIteration)
	return u
}

// AddLastGreenIteration adds v to the "last_green_iteration" field.
func (u *RunUpsert) AddLastGreenIteration(v int) *RunUpsert {
	u.Add(run.FieldLastGreenIteration, v)
	return u
}

// ClearLastGreenIteration clears the value of the "last_green_iteration" field.
func (u *RunUpsert) ClearLastGreenIteration() *RunUpsert {
	u.SetNull(run.FieldLastGreenIteration)
	return u
}

// SetTerminalReason sets the "terminal_reason" field.
func (u *RunUpsert) SetTerminalReason(v string) *RunUpsert {
	u.Set(run.FieldTerminalReason, v)
	return u
}

// UpdateTerminalReason sets the "terminal_reason" field to the value that was provided on create.
func (u *RunUpsert) UpdateTerminalReason() *RunUpsert {
	u.SetExcluded(run.FieldTerminalReason)
	return u
}

// ClearTerminalReason clears the value of the "terminal_reason" field.
func (u *RunUpsert) ClearTerminalReason() *RunUpsert {
	u.SetNull(run.FieldTerminalReason)
	return u
}

// SetPatchStreak sets the "patch_streak" field.
func (u *RunUpsert) SetPatchStreak(v int) *RunUpsert {
	u.Set(run.FieldPatchStreak, v)
	return u
}

// UpdatePatchStreak sets the "patch_streak" field to the value that was provided on create.
func (u *RunUpsert) UpdatePatchStreak() *RunUpsert {
	u.SetExcluded(run.FieldPatchStreak)
	return u
}

// AddPatchStreak adds v to the "patch_streak" field.
func (u *RunUpsert) AddPatchStreak(v int) *RunUpsert {
	u.Add(run.FieldPatchStreak, v)
	return u
}

// SetReplanScope sets the "replan_scope" field.
func (u *RunUpsert) SetReplanScope(v string) *RunUpsert {
	u.Set(run.FieldReplanScope, v)
	return u
}

// UpdateReplanScope sets the "replan_scope" field to the value that was provided on create.
func (u *RunUpsert) UpdateReplanScope() *RunUpsert {
	u.SetExcluded(run.FieldReplanScope)
	return u
}

// ClearReplanScope clears the value of the "replan_scope" field.
func (u *RunUpsert) ClearReplanScope() *RunUpsert {
	u.SetNull(run.FieldReplanScope)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *RunUpsert) SetStartedAt(v time.Time) *RunUpsert {
	u.Set(run.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *RunUpsert) UpdateStartedAt() *RunUpsert {
	u.SetExcluded(run.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *RunUpsert) ClearStartedAt() *RunUpsert {
	u.SetNull(run.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *RunUpsert) SetCompletedAt(v time.Time) *RunUpsert {
	u.Set(run.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *RunUpsert) UpdateCompletedAt() *RunUpsert {
	u.SetExcluded(run.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *RunUpsert) ClearCompletedAt() *RunUpsert {
	u.SetNull(run.FieldCompletedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *RunUpsert) SetDeletedAt(v time.Time) *RunUpsert {
	u.Set(run.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *RunUpsert) UpdateDeletedAt() *RunUpsert {
	u.SetExcluded(run.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *RunUpsert) ClearDeletedAt() *RunUpsert {
	u.SetNull(run.FieldDeletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Run.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(run.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RunUpsertOne) UpdateNewValues() *RunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(run.FieldID)
		}
		if _, exists := u.create.mutation.Tenant(); exists {
			s.SetIgnore(run.FieldTenant)
		}
		if _, exists := u.create.mutation.SpecID(); exists {
			s.SetIgnore(run.FieldSpecID)
		}
		if _, exists := u.create.mutation.CanaryGroup(); exists {
			s.SetIgnore(run.FieldCanaryGroup)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(run.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Run.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RunUpsertOne) Ignore() *RunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunUpsertOne) DoNothing() *RunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunCreate.OnConflict
// documentation for more info.
func (u *RunUpsertOne) Update(set func(*RunUpsert)) *RunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunUpsert{UpdateSet: update})
	}))
	return u
}

// SetState sets the "state" field.
func (u *RunUpsertOne) SetState(v run.State) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateState() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateState()
	})
}

// SetIteration sets the "iteration" field.
func (u *RunUpsertOne) SetIteration(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetIteration(v)
	})
}

// AddIteration adds v to the "iteration" field.
func (u *RunUpsertOne) AddIteration(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.AddIteration(v)
	})
}

// UpdateIteration sets the "iteration" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateIteration() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateIteration()
	})
}

// SetTokensUsed sets the "tokens_used" field.
func (u *RunUpsertOne) SetTokensUsed(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetTokensUsed(v)
	})
}

// AddTokensUsed adds v to the "tokens_used" field.
func (u *RunUpsertOne) AddTokensUsed(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.AddTokensUsed(v)
	})
}

// UpdateTokensUsed sets the "tokens_used" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateTokensUsed() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateTokensUsed()
	})
}

// SetCostUsedUsd sets the "cost_used_usd" field.
func (u *RunUpsertOne) SetCostUsedUsd(v float64) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetCostUsedUsd(v)
	})
}

// AddCostUsedUsd adds v to the "cost_used_usd" field.
func (u *RunUpsertOne) AddCostUsedUsd(v float64) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.AddCostUsedUsd(v)
	})
}

// UpdateCostUsedUsd sets the "cost_used_usd" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateCostUsedUsd() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateCostUsedUsd()
	})
}

// SetPausedState sets the "paused_state" field.
func (u *RunUpsertOne) SetPausedState(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetPausedState(v)
	})
}

// UpdatePausedState sets the "paused_state" field to the value that was provided on create.
func (u *RunUpsertOne) UpdatePausedState() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdatePausedState()
	})
}

// ClearPausedState clears the value of the "paused_state" field.
func (u *RunUpsertOne) ClearPausedState() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearPausedState()
	})
}

// SetLastGreenIteration sets the "last_green_iteration" field.
func (u *RunUpsertOne) SetLastGreenIteration(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetLastGreenIteration(v)
	})
}

// AddLastGreenIteration adds v to the "last_green_iteration" field.
func (u *RunUpsertOne) AddLastGreenIteration(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.AddLastGreenIteration(v)
	})
}

// UpdateLastGreenIteration sets the "last_green_iteration" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateLastGreenIteration() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateLastGreenIteration()
	})
}

// ClearLastGreenIteration clears the value of the "last_green_iteration" field.
func (u *RunUpsertOne) ClearLastGreenIteration() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearLastGreenIteration()
	})
}

// SetTerminalReason sets the "terminal_reason" field.
func (u *RunUpsertOne) SetTerminalReason(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetTerminalReason(v)
	})
}

// UpdateTerminalReason sets the "terminal_reason" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateTerminalReason() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateTerminalReason()
	})
}

// ClearTerminalReason clears the value of the "terminal_reason" field.
func (u *RunUpsertOne) ClearTerminalReason() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearTerminalReason()
	})
}

// SetPatchStreak sets the "patch_streak" field.
func (u *RunUpsertOne) SetPatchStreak(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetPatchStreak(v)
	})
}

// AddPatchStreak adds v to the "patch_streak" field.
func (u *RunUpsertOne) AddPatchStreak(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.AddPatchStreak(v)
	})
}

// UpdatePatchStreak sets the "patch_streak" field to the value that was provided on create.
func (u *RunUpsertOne) UpdatePatchStreak() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdatePatchStreak()
	})
}

// SetReplanScope sets the "replan_scope" field.
func (u *RunUpsertOne) SetReplanScope(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetReplanScope(v)
	})
}

// UpdateReplanScope sets the "replan_scope" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateReplanScope() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateReplanScope()
	})
}

// ClearReplanScope clears the value of the "replan_scope" field.
func (u *RunUpsertOne) ClearReplanScope() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearReplanScope()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *RunUpsertOne) SetStartedAt(v time.Time) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateStartedAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *RunUpsertOne) ClearStartedAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *RunUpsertOne) SetCompletedAt(v time.Time) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateCompletedAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *RunUpsertOne) ClearCompletedAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *RunUpsertOne) SetDeletedAt(v time.Time) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateDeletedAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *RunUpsertOne) ClearDeletedAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *RunUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RunUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RunUpsertOne.ID is not supported by MySQL driver. Use RunUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RunUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RunCreateBulk is the builder for creating many Run entities in bulk.
type RunCreateBulk struct {
	config
	err      error
	builders []*RunCreate
	conflict []sql.ConflictOption
}

// Save creates the Run entities in the database.
func (_c *RunCreateBulk) Save(ctx context.Context) ([]*Run, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Run, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RunCreateBulk) SaveX(ctx context.Context) []*Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Run.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunUpsert) {
//			SetTenant(v+v).
//		}).
//		Exec(ctx)
func (_c *RunCreateBulk) OnConflict(opts ...sql.ConflictOption) *RunUpsertBulk {
	_c.conflict = opts
	return &RunUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Run.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunCreateBulk) OnConflictColumns(columns ...string) *RunUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunUpsertBulk{
		create: _c,
	}
}

// RunUpsertBulk is the builder for "upsert"-ing
// a bulk of Run nodes.
type RunUpsertBulk struct {
	create *RunCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Run.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(run.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RunUpsertBulk) UpdateNewValues() *RunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(run.FieldID)
			}
			if _, exists := b.mutation.Tenant(); exists {
				s.SetIgnore(run.FieldTenant)
			}
			if _, exists := b.mutation.SpecID(); exists {
				s.SetIgnore(run.FieldSpecID)
			}
			if _, exists := b.mutation.CanaryGroup(); exists {
				s.SetIgnore(run.FieldCanaryGroup)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(run.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Run.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RunUpsertBulk) Ignore() *RunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunUpsertBulk) DoNothing() *RunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunCreateBulk.OnConflict
// documentation for more info.
func (u *RunUpsertBulk) Update(set func(*RunUpsert)) *RunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunUpsert{UpdateSet: update})
	}))
	return u
}

// SetState sets the "state" field.
func (u *RunUpsertBulk) SetState(v run.State) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateState() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateState()
	})
}

// SetIteration sets the "iteration" field.
func (u *RunUpsertBulk) SetIteration(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetIteration(v)
	})
}

// AddIteration adds v to the "iteration" field.
func (u *RunUpsertBulk) AddIteration(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.AddIteration(v)
	})
}

// UpdateIteration sets the "iteration" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateIteration() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateIteration()
	})
}

// SetTokensUsed sets the "tokens_used" field.
func (u *RunUpsertBulk) SetTokensUsed(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetTokensUsed(v)
	})
}

// AddTokensUsed adds v to the "tokens_used" field.
func (u *RunUpsertBulk) AddTokensUsed(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.AddTokensUsed(v)
	})
}

// UpdateTokensUsed sets the "tokens_used" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateTokensUsed() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateTokensUsed()
	})
}

// SetCostUsedUsd sets the "cost_used_usd" field.
func (u *RunUpsertBulk) SetCostUsedUsd(v float64) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetCostUsedUsd(v)
	})
}

// AddCostUsedUsd adds v to the "cost_used_usd" field.
func (u *RunUpsertBulk) AddCostUsedUsd(v float64) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.AddCostUsedUsd(v)
	})
}

// UpdateCostUsedUsd sets the "cost_used_usd" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateCostUsedUsd() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateCostUsedUsd()
	})
}

// SetPausedState sets the "paused_state" field.
func (u *RunUpsertBulk) SetPausedState(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetPausedState(v)
	})
}

// UpdatePausedState sets the "paused_state" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdatePausedState() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdatePausedState()
	})
}

// ClearPausedState clears the value of the "paused_state" field.
func (u *RunUpsertBulk) ClearPausedState() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearPausedState()
	})
}

// SetLastGreenIteration sets the "last_green_iteration" field.
func (u *RunUpsertBulk) SetLastGreenIteration(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetLastGreenIteration(v)
	})
}

// AddLastGreenIteration adds v to the "last_green_iteration" field.
func (u *RunUpsertBulk) AddLastGreenIteration(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.AddLastGreenIteration(v)
	})
}

// UpdateLastGreenIteration sets the "last_green_iteration" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateLastGreenIteration() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateLastGreenIteration()
	})
}

// ClearLastGreenIteration clears the value of the "last_green_iteration" field.
func (u *RunUpsertBulk) ClearLastGreenIteration() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearLastGreenIteration()
	})
}

// SetTerminalReason sets the "terminal_reason" field.
func (u *RunUpsertBulk) SetTerminalReason(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetTerminalReason(v)
	})
}

// UpdateTerminalReason sets the "terminal_reason" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateTerminalReason() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateTerminalReason()
	})
}

// ClearTerminalReason clears the value of the "terminal_reason" field.
func (u *RunUpsertBulk) ClearTerminalReason() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearTerminalReason()
	})
}

// SetPatchStreak sets the "patch_streak" field.
func (u *RunUpsertBulk) SetPatchStreak(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetPatchStreak(v)
	})
}

// AddPatchStreak adds v to the "patch_streak" field.
func (u *RunUpsertBulk) AddPatchStreak(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.AddPatchStreak(v)
	})
}

// UpdatePatchStreak sets the "patch_streak" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdatePatchStreak() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdatePatchStreak()
	})
}

// SetReplanScope sets the "replan_scope" field.
func (u *RunUpsertBulk) SetReplanScope(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetReplanScope(v)
	})
}

// UpdateReplanScope sets the "replan_scope" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateReplanScope() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateReplanScope()
	})
}

// ClearReplanScope clears the value of the "replan_scope" field.
func (u *RunUpsertBulk) ClearReplanScope() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearReplanScope()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *RunUpsertBulk) SetStartedAt(v time.Time) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateStartedAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *RunUpsertBulk) ClearStartedAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *RunUpsertBulk) SetCompletedAt(v time.Time) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateCompletedAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *RunUpsertBulk) ClearCompletedAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *RunUpsertBulk) SetDeletedAt(v time.Time) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateDeletedAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *RunUpsertBulk) ClearDeletedAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *RunUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RunCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
