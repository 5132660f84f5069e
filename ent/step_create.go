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
	"github.com/forgeworks/metabuild/ent/failure"
	"github.com/forgeworks/metabuild/ent/queuelease"
	"github.com/forgeworks/metabuild/ent/run"
	"github.com/forgeworks/metabuild/ent/step"
)

// StepCreate is the builder for creating a Step entity.
type StepCreate struct {
	config
	mutation *StepMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenant sets the "tenant" field.
func (_c *StepCreate) SetTenant(v string) *StepCreate {
	_c.mutation.SetTenant(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *StepCreate) SetRunID(v string) *StepCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetIteration sets the "iteration" field.
func (_c *StepCreate) SetIteration(v int) *StepCreate {
	_c.mutation.SetIteration(v)
	return _c
}

// SetAgentRole sets the "agent_role" field.
func (_c *StepCreate) SetAgentRole(v step.AgentRole) *StepCreate {
	_c.mutation.SetAgentRole(v)
	return _c
}

// SetQueue sets the "queue" field.
func (_c *StepCreate) SetQueue(v step.Queue) *StepCreate {
	_c.mutation.SetQueue(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *StepCreate) SetPriority(v int) *StepCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *StepCreate) SetNillablePriority(v *int) *StepCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *StepCreate) SetState(v step.State) *StepCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *StepCreate) SetNillableState(v *step.State) *StepCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_c *StepCreate) SetIdempotencyKey(v string) *StepCreate {
	_c.mutation.SetIdempotencyKey(v)
	return _c
}

// SetInputDigest sets the "input_digest" field.
func (_c *StepCreate) SetInputDigest(v string) *StepCreate {
	_c.mutation.SetInputDigest(v)
	return _c
}

// SetInputRef sets the "input_ref" field.
func (_c *StepCreate) SetInputRef(v string) *StepCreate {
	_c.mutation.SetInputRef(v)
	return _c
}

// SetOutputRef sets the "output_ref" field.
func (_c *StepCreate) SetOutputRef(v string) *StepCreate {
	_c.mutation.SetOutputRef(v)
	return _c
}

// SetNillableOutputRef sets the "output_ref" field if the given value is not nil.
func (_c *StepCreate) SetNillableOutputRef(v *string) *StepCreate {
	if v != nil {
		_c.SetOutputRef(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *StepCreate) SetAttempts(v int) *StepCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *StepCreate) SetNillableAttempts(v *int) *StepCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetModelTier sets the "model_tier" field.
func (_c *StepCreate) SetModelTier(v step.ModelTier) *StepCreate {
	_c.mutation.SetModelTier(v)
	return _c
}

// SetNillableModelTier sets the "model_tier" field if the given value is not nil.
func (_c *StepCreate) SetNillableModelTier(v *step.ModelTier) *StepCreate {
	if v != nil {
		_c.SetModelTier(*v)
	}
	return _c
}

// SetEstCostUsd sets the "est_cost_usd" field.
func (_c *StepCreate) SetEstCostUsd(v float64) *StepCreate {
	_c.mutation.SetEstCostUsd(v)
	return _c
}

// SetNillableEstCostUsd sets the "est_cost_usd" field if the given value is not nil.
func (_c *StepCreate) SetNillableEstCostUsd(v *float64) *StepCreate {
	if v != nil {
		_c.SetEstCostUsd(*v)
	}
	return _c
}

// SetTokensIn sets the "tokens_in" field.
func (_c *StepCreate) SetTokensIn(v int) *StepCreate {
	_c.mutation.SetTokensIn(v)
	return _c
}

// SetNillableTokensIn sets the "tokens_in" field if the given value is not nil.
func (_c *StepCreate) SetNillableTokensIn(v *int) *StepCreate {
	if v != nil {
		_c.SetTokensIn(*v)
	}
	return _c
}

// SetTokensOut sets the "tokens_out" field.
func (_c *StepCreate) SetTokensOut(v int) *StepCreate {
	_c.mutation.SetTokensOut(v)
	return _c
}

// SetNillableTokensOut sets the "tokens_out" field if the given value is not nil.
func (_c *StepCreate) SetNillableTokensOut(v *int) *StepCreate {
	if v != nil {
		_c.SetTokensOut(*v)
	}
	return _c
}

// SetCostUsd sets the "cost_usd" field.
func (_c *StepCreate) SetCostUsd(v float64) *StepCreate {
	_c.mutation.SetCostUsd(v)
	return _c
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_c *StepCreate) SetNillableCostUsd(v *float64) *StepCreate {
	if v != nil {
		_c.SetCostUsd(*v)
	}
	return _c
}

// SetNotBefore sets the "not_before" field.
func (_c *StepCreate) SetNotBefore(v time.Time) *StepCreate {
	_c.mutation.SetNotBefore(v)
	return _c
}

// SetNillableNotBefore sets the "not_before" field if the given value is not nil.
func (_c *StepCreate) SetNillableNotBefore(v *time.Time) *StepCreate {
	if v != nil {
		_c.SetNotBefore(*v)
	}
	return _c
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_c *StepCreate) SetLeaseExpiresAt(v time.Time) *StepCreate {
	_c.mutation.SetLeaseExpiresAt(v)
	return _c
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_c *StepCreate) SetNillableLeaseExpiresAt(v *time.Time) *StepCreate {
	if v != nil {
		_c.SetLeaseExpiresAt(*v)
	}
	return _c
}

// SetWorkerID sets the "worker_id" field.
func (_c *StepCreate) SetWorkerID(v string) *StepCreate {
	_c.mutation.SetWorkerID(v)
	return _c
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_c *StepCreate) SetNillableWorkerID(v *string) *StepCreate {
	if v != nil {
		_c.SetWorkerID(*v)
	}
	return _c
}

// SetTombstoned sets the "tombstoned" field.
func (_c *StepCreate) SetTombstoned(v bool) *StepCreate {
	_c.mutation.SetTombstoned(v)
	return _c
}

// SetNillableTombstoned sets the "tombstoned" field if the given value is not nil.
func (_c *StepCreate) SetNillableTombstoned(v *bool) *StepCreate {
	if v != nil {
		_c.SetTombstoned(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *StepCreate) SetErrorMessage(v string) *StepCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *StepCreate) SetNillableErrorMessage(v *string) *StepCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StepCreate) SetCreatedAt(v time.Time) *StepCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StepCreate) SetNillableCreatedAt(v *time.Time) *StepCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *StepCreate) SetStartedAt(v time.Time) *StepCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *StepCreate) SetNillableStartedAt(v *time.Time) *StepCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *StepCreate) SetCompletedAt(v time.Time) *StepCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *StepCreate) SetNillableCompletedAt(v *time.Time) *StepCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StepCreate) SetID(v string) *StepCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *StepCreate) SetRun(v *Run) *StepCreate {
	return _c.SetRunID(v.ID)
}

// AddFailureIDs adds the "failures" edge to the Failure entity by IDs.
func (_c *StepCreate) AddFailureIDs(ids ...string) *StepCreate {
	_c.mutation.AddFailureIDs(ids...)
	return _c
}

// AddFailures adds the "failures" edges to the Failure entity.
func (_c *StepCreate) AddFailures(v ...*Failure) *StepCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFailureIDs(ids...)
}

// SetLeaseID sets the "lease" edge to the QueueLease entity by ID.
func (_c *StepCreate) SetLeaseID(id string) *StepCreate {
	_c.mutation.SetLeaseID(id)
	return _c
}

// SetNillableLeaseID sets the "lease" edge to the QueueLease entity by ID if the given value is not nil.
func (_c *StepCreate) SetNillableLeaseID(id *string) *StepCreate {
	if id != nil {
		_c = _c.SetLeaseID(*id)
	}
	return _c
}

// SetLease sets the "lease" edge to the QueueLease entity.
func (_c *StepCreate) SetLease(v *QueueLease) *StepCreate {
	return _c.SetLeaseID(v.ID)
}

// Mutation returns the StepMutation object of the builder.
func (_c *StepCreate) Mutation() *StepMutation {
	return _c.mutation
}

// Save creates the Step in the database.
func (_c *StepCreate) Save(ctx context.Context) (*Step, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StepCreate) SaveX(ctx context.Context) *Step {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StepCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := step.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := step.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := step.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.EstCostUsd(); !ok {
		v := step.DefaultEstCostUsd
		_c.mutation.SetEstCostUsd(v)
	}
	if _, ok := _c.mutation.TokensIn(); !ok {
		v := step.DefaultTokensIn
		_c.mutation.SetTokensIn(v)
	}
	if _, ok := _c.mutation.TokensOut(); !ok {
		v := step.DefaultTokensOut
		_c.mutation.SetTokensOut(v)
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		v := step.DefaultCostUsd
		_c.mutation.SetCostUsd(v)
	}
	if _, ok := _c.mutation.Tombstoned(); !ok {
		v := step.DefaultTombstoned
		_c.mutation.SetTombstoned(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := step.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StepCreate) check() error {
	if _, ok := _c.mutation.Tenant(); !ok {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required field "Step.tenant"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "Step.run_id"`)}
	}
	if _, ok := _c.mutation.Iteration(); !ok {
		return &ValidationError{Name: "iteration", err: errors.New(`ent: missing required field "Step.iteration"`)}
	}
	if _, ok := _c.mutation.AgentRole(); !ok {
		return &ValidationError{Name: "agent_role", err: errors.New(`ent: missing required field "Step.agent_role"`)}
	}
	if v, ok := _c.mutation.AgentRole(); ok {
		if err := step.AgentRoleValidator(v); err != nil {
			return &ValidationError{Name: "agent_role", err: fmt.Errorf(`ent: validator failed for field "Step.agent_role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Queue(); !ok {
		return &ValidationError{Name: "queue", err: errors.New(`ent: missing required field "Step.queue"`)}
	}
	if v, ok := _c.mutation.Queue(); ok {
		if err := step.QueueValidator(v); err != nil {
			return &ValidationError{Name: "queue", err: fmt.Errorf(`ent: validator failed for field "Step.queue": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Step.priority"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Step.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := step.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Step.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IdempotencyKey(); !ok {
		return &ValidationError{Name: "idempotency_key", err: errors.New(`ent: missing required field "Step.idempotency_key"`)}
	}
	if _, ok := _c.mutation.InputDigest(); !ok {
		return &ValidationError{Name: "input_digest", err: errors.New(`ent: missing required field "Step.input_digest"`)}
	}
	if _, ok := _c.mutation.InputRef(); !ok {
		return &ValidationError{Name: "input_ref", err: errors.New(`ent: missing required field "Step.input_ref"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "Step.attempts"`)}
	}
	if v, ok := _c.mutation.ModelTier(); ok {
		if err := step.ModelTierValidator(v); err != nil {
			return &ValidationError{Name: "model_tier", err: fmt.Errorf(`ent: validator failed for field "Step.model_tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EstCostUsd(); !ok {
		return &ValidationError{Name: "est_cost_usd", err: errors.New(`ent: missing required field "Step.est_cost_usd"`)}
	}
	if _, ok := _c.mutation.TokensIn(); !ok {
		return &ValidationError{Name: "tokens_in", err: errors.New(`ent: missing required field "Step.tokens_in"`)}
	}
	if _, ok := _c.mutation.TokensOut(); !ok {
		return &ValidationError{Name: "tokens_out", err: errors.New(`ent: missing required field "Step.tokens_out"`)}
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		return &ValidationError{Name: "cost_usd", err: errors.New(`ent: missing required field "Step.cost_usd"`)}
	}
	if _, ok := _c.mutation.Tombstoned(); !ok {
		return &ValidationError{Name: "tombstoned", err: errors.New(`ent: missing required field "Step.tombstoned"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Step.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "Step.run"`)}
	}
	return nil
}

func (_c *StepCreate) sqlSave(ctx context.Context) (*Step, error) {
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
			return nil, fmt.Errorf("unexpected Step.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StepCreate) createSpec() (*Step, *sqlgraph.CreateSpec) {
	var (
		_node = &Step{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(step.Table, sqlgraph.NewFieldSpec(step.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Tenant(); ok {
		_spec.SetField(step.FieldTenant, field.TypeString, value)
		_node.Tenant = value
	}
	if value, ok := _c.mutation.Iteration(); ok {
		_spec.SetField(step.FieldIteration, field.TypeInt, value)
		_node.Iteration = value
	}
	if value, ok := _c.mutation.AgentRole(); ok {
		_spec.SetField(step.FieldAgentRole, field.TypeEnum, value)
		_node.AgentRole = value
	}
	if value, ok := _c.mutation.Queue(); ok {
		_spec.SetField(step.FieldQueue, field.TypeEnum, value)
		_node.Queue = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(step.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(step.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.IdempotencyKey(); ok {
		_spec.SetField(step.FieldIdempotencyKey, field.TypeString, value)
		_node.IdempotencyKey = value
	}
	if value, ok := _c.mutation.InputDigest(); ok {
		_spec.SetField(step.FieldInputDigest, field.TypeString, value)
		_node.InputDigest = value
	}
	if value, ok := _c.mutation.InputRef(); ok {
		_spec.SetField(step.FieldInputRef, field.TypeString, value)
		_node.InputRef = value
	}
	if value, ok := _c.mutation.OutputRef(); ok {
		_spec.SetField(step.FieldOutputRef, field.TypeString, value)
		_node.OutputRef = &value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(step.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.ModelTier(); ok {
		_spec.SetField(step.FieldModelTier, field.TypeEnum, value)
		_node.ModelTier = &value
	}
	if value, ok := _c.mutation.EstCostUsd(); ok {
		_spec.SetField(step.FieldEstCostUsd, field.TypeFloat64, value)
		_node.EstCostUsd = value
	}
	if value, ok := _c.mutation.TokensIn(); ok {
		_spec.SetField(step.FieldTokensIn, field.TypeInt, value)
		_node.TokensIn = value
	}
	if value, ok := _c.mutation.TokensOut(); ok {
		_spec.SetField(step.FieldTokensOut, field.TypeInt, value)
		_node.TokensOut = value
	}
	if value, ok := _c.mutation.CostUsd(); ok {
		_spec.SetField(step.FieldCostUsd, field.TypeFloat64, value)
		_node.CostUsd = value
	}
	if value, ok := _c.mutation.NotBefore(); ok {
		_spec.SetField(step.FieldNotBefore, field.TypeTime, value)
		_node.NotBefore = &value
	}
	if value, ok := _c.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(step.FieldLeaseExpiresAt, field.TypeTime, value)
		_node.LeaseExpiresAt = &value
	}
	if value, ok := _c.mutation.WorkerID(); ok {
		_spec.SetField(step.FieldWorkerID, field.TypeString, value)
		_node.WorkerID = &value
	}
	if value, ok := _c.mutation.Tombstoned(); ok {
		_spec.SetField(step.FieldTombstoned, field.TypeBool, value)
		_node.Tombstoned = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(step.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(step.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(step.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(step.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   step.RunTable,
			Columns: []string{step.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FailuresIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   step.FailuresTable,
			Columns: []string{step.FailuresColumn},
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
	if nodes := _c.mutation.LeaseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   step.LeaseTable,
			Columns: []string{step.LeaseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(queuelease.FieldID, field.TypeString),
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
//	client.Step.Create().
//		SetTenant(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StepUpsert) {
//			SetTenant(v+v).
//		}).
//		Exec(ctx)
func (_c *StepCreate) OnConflict(opts ...sql.ConflictOption) *StepUpsertOne {
	_c.conflict = opts
	return &StepUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Step.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StepCreate) OnConflictColumns(columns ...string) *StepUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StepUpsertOne{
		create: _c,
	}
}

type (
	// StepUpsertOne is the builder for "upsert"-ing
	//  one Step node.
	StepUpsertOne struct {
		create *StepCreate
	}

	// StepUpsert is the "OnConflict" setter.
	StepUpsert struct {
		*sql.UpdateSet
	}
)

// SetQueue sets the "queue" field.
func (u *StepUpsert) SetQueue(v step.Queue) *StepUpsert {
	u.Set(step.FieldQueue, v)
	return u
}

// UpdateQueue sets the "queue" field to the value that was provided on create.
func (u *StepUpsert) UpdateQueue() *StepUpsert {
	u.SetExcluded(step.FieldQueue)
	return u
}

// SetPriority sets the "priority" field.
func (u *StepUpsert) SetPriority(v int) *StepUpsert {
	u.Set(step.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *StepUpsert) UpdatePriority() *StepUpsert {
	u.SetExcluded(step.FieldPriority)
	return u
}

// AddPriority adds v to the "priority" field.
func (u *StepUpsert) AddPriority(v int) *StepUpsert {
	u.Add(step.FieldPriority, v)
	return u
}

// SetState sets the "state" field.
func (u *StepUpsert) SetState(v step.State) *StepUpsert {
	u.Set(step.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *StepUpsert) UpdateState() *StepUpsert {
	u.SetExcluded(step.FieldState)
	return u
}

// SetOutputRef sets the "output_ref" field.
func (u *StepUpsert) SetOutputRef(v string) *StepUpsert {
	u.Set(step.FieldOutputRef, v)
	return u
}

// UpdateOutputRef sets the "output_ref" field to the value that was provided on create.
func (u *StepUpsert) UpdateOutputRef() *StepUpsert {
	u.SetExcluded(step.FieldOutputRef)
	return u
}

// ClearOutputRef clears the value of the "output_ref" field.
func (u *StepUpsert) ClearOutputRef() *StepUpsert {
	u.SetNull(step.FieldOutputRef)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *StepUpsert) SetAttempts(v int) *StepUpsert {
	u.Set(step.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *StepUpsert) UpdateAttempts() *StepUpsert {
	u.SetExcluded(step.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *StepUpsert) AddAttempts(v int) *StepUpsert {
	u.Add(step.FieldAttempts, v)
	return u
}

// SetModelTier sets the "model_tier" field.
func (u *StepUpsert) SetModelTier(v step.ModelTier) *StepUpsert {
	u.Set(step.FieldModelTier, v)
	return u
}

// UpdateModelTier sets the "model_tier" field to the value that was provided on create.
func (u *StepUpsert) UpdateModelTier() *StepUpsert {
	u.SetExcluded(step.FieldModelTier)
	return u
}

// ClearModelTier clears the value of the "model_tier" field.
func (u *StepUpsert) ClearModelTier() *StepUpsert {
	u.SetNull(step.FieldModelTier)
	return u
}

// SetEstCostUsd sets the "est_cost_usd" field.
func (u *StepUpsert) SetEstCostUsd(v float64) *StepUpsert {
	u.Set(step.FieldEstCostUsd, v)
	return u
}

// UpdateEstCostUsd sets the "est_cost_usd" field to the value that was provided on create.
func (u *StepUpsert) UpdateEstCostUsd() *StepUpsert {
	u.SetExcluded(step.FieldEstCostUsd)
	return u
}

// AddEstCostUsd adds v to the "est_cost_usd" field.
func (u *StepUpsert) AddEstCostUsd(v float64) *StepUpsert {
	u.Add(step.FieldEstCostUsd, v)
	return u
}

// SetTokensIn sets the "tokens_in" field.
func (u *StepUpsert) SetTokensIn(v int) *StepUpsert {
	u.Set(step.FieldTokensIn, v)
	return u
}

// UpdateTokensIn sets the "tokens_in" field to the value that was provided on create.
func (u *StepUpsert) UpdateTokensIn() *StepUpsert {
	u.SetExcluded(step.FieldTokensIn)
	return u
}

// AddTokensIn adds v to the "tokens_in" field.
func (u *StepUpsert) AddTokensIn(v int) *StepUpsert {
	u.Add(step.FieldTokensIn, v)
	return u
}

// SetTokensOut sets the "tokens_out" field.
func (u *StepUpsert) SetTokensOut(v int) *StepUpsert {
	u.Set(step.FieldTokensOut, v)
	return u
}

// UpdateTokensOut sets the "tokens_out" field to the value that was provided on create.
func (u *StepUpsert) UpdateTokensOut() *StepUpsert {
	u.SetExcluded(step.FieldTokensOut)
	return u
}

// AddTokensOut adds v to the "tokens_out" field.
func (u *StepUpsert) AddTokensOut(v int) *StepUpsert {
	u.Add(step.FieldTokensOut, v)
	return u
}

// SetCostUsd sets the "cost_usd" field.
func (u *StepUpsert) SetCostUsd(v float64) *StepUpsert {
	u.Set(step.FieldCostUsd, v)
	return u
}

// UpdateCostUsd sets the "cost_usd" field to the value that was provided on create.
func (u *StepUpsert) UpdateCostUsd() *StepUpsert {
	u.SetExcluded(step.FieldCostUsd)
	return u
}

// AddCostUsd adds v to the "cost_usd" field.
func (u *StepUpsert) AddCostUsd(v float64) *StepUpsert {
	u.Add(step.FieldCostUsd, v)
	return u
}

// SetNotBefore sets the "not_before" field.
func (u *StepUpsert) SetNotBefore(v time.Time) *StepUpsert {
	u.Set(step.FieldNotBefore, v)
	return u
}

// UpdateNotBefore sets the "not_before" field to the value that was provided on create.
func (u *StepUpsert) UpdateNotBefore() *StepUpsert {
	u.SetExcluded(step.FieldNotBefore)
	return u
}

// ClearNotBefore clears the value of the "not_before" field.
func (u *StepUpsert) ClearNotBefore() *StepUpsert {
	u.SetNull(step.FieldNotBefore)
	return u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *StepUpsert) SetLeaseExpiresAt(v time.Time) *StepUpsert {
	u.Set(step.FieldLeaseExpiresAt, v)
	return u
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *StepUpsert) UpdateLeaseExpiresAt() *StepUpsert {
	u.SetExcluded(step.FieldLeaseExpiresAt)
	return u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (u *StepUpsert) ClearLeaseExpiresAt() *StepUpsert {
	u.SetNull(step.FieldLeaseExpiresAt)
	return u
}

// SetWorkerID sets the "worker_id" field.
func (u *StepUpsert) SetWorkerID(v string) *StepUpsert {
	u.Set(step.FieldWorkerID, v)
	return u
}

// UpdateWorkerID sets the "worker_id" field to the value that was provided on create.
func (u *StepUpsert) UpdateWorkerID() *StepUpsert {
	u.SetExcluded(step.FieldWorkerID)
	return u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (u *StepUpsert) ClearWorkerID() *StepUpsert {
	u.SetNull(step.FieldWorkerID)
	return u
}

// SetTombstoned sets the "tombstoned" field.
func (u *StepUpsert) SetTombstoned(v bool) *StepUpsert {
	u.Set(step.FieldTombstoned, v)
	return u
}

// UpdateTombstoned sets the "tombstoned" field to the value that was provided on create.
func (u *StepUpsert) UpdateTombstoned() *StepUpsert {
	u.SetExcluded(step.FieldTombstoned)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *StepUpsert) SetErrorMessage(v string) *StepUpsert {
	u.Set(step.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *StepUpsert) UpdateErrorMessage() *StepUpsert {
	u.SetExcluded(step.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *StepUpsert) ClearErrorMessage() *StepUpsert {
	u.SetNull(step.FieldErrorMessage)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *StepUpsert) SetStartedAt(v time.Time) *StepUpsert {
	u.Set(step.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *StepUpsert) UpdateStartedAt() *StepUpsert {
	u.SetExcluded(step.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *StepUpsert) ClearStartedAt() *StepUpsert {
	u.SetNull(step.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *StepUpsert) SetCompletedAt(v time.Time) *StepUpsert {
	u.Set(step.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *StepUpsert) UpdateCompletedAt() *StepUpsert {
	u.SetExcluded(step.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *StepUpsert) ClearCompletedAt() *StepUpsert {
	u.SetNull(step.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Step.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(step.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StepUpsertOne) UpdateNewValues() *StepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(step.FieldID)
		}
		if _, exists := u.create.mutation.Tenant(); exists {
			s.SetIgnore(step.FieldTenant)
		}
		if _, exists := u.create.mutation.RunID(); exists {
			s.SetIgnore(step.FieldRunID)
		}
		if _, exists := u.create.mutation.Iteration(); exists {
			s.SetIgnore(step.FieldIteration)
		}
		if _, exists := u.create.mutation.AgentRole(); exists {
			s.SetIgnore(step.FieldAgentRole)
		}
		if _, exists := u.create.mutation.IdempotencyKey(); exists {
			s.SetIgnore(step.FieldIdempotencyKey)
		}
		if _, exists := u.create.mutation.InputDigest(); exists {
			s.SetIgnore(step.FieldInputDigest)
		}
		if _, exists := u.create.mutation.InputRef(); exists {
			s.SetIgnore(step.FieldInputRef)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(step.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Step.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StepUpsertOne) Ignore() *StepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StepUpsertOne) DoNothing() *StepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StepCreate.OnConflict
// documentation for more info.
func (u *StepUpsertOne) Update(set func(*StepUpsert)) *StepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StepUpsert{UpdateSet: update})
	}))
	return u
}

// SetQueue sets the "queue" field.
func (u *StepUpsertOne) SetQueue(v step.Queue) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetQueue(v)
	})
}

// UpdateQueue sets the "queue" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateQueue() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateQueue()
	})
}

// SetPriority sets the "priority" field.
func (u *StepUpsertOne) SetPriority(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *StepUpsertOne) AddPriority(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *StepUpsertOne) UpdatePriority() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdatePriority()
	})
}

// SetState sets the "state" field.
func (u *StepUpsertOne) SetState(v step.State) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateState() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateState()
	})
}

// SetOutputRef sets the "output_ref" field.
func (u *StepUpsertOne) SetOutputRef(v string) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetOutputRef(v)
	})
}

// UpdateOutputRef sets the "output_ref" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateOutputRef() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateOutputRef()
	})
}

// ClearOutputRef clears the value of the "output_ref" field.
func (u *StepUpsertOne) ClearOutputRef() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.ClearOutputRef()
	})
}

// SetAttempts sets the "attempts" field.
func (u *StepUpsertOne) SetAttempts(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *StepUpsertOne) AddAttempts(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateAttempts() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateAttempts()
	})
}

// SetModelTier sets the "model_tier" field.
func (u *StepUpsertOne) SetModelTier(v step.ModelTier) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetModelTier(v)
	})
}

// UpdateModelTier sets the "model_tier" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateModelTier() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateModelTier()
	})
}

// ClearModelTier clears the value of the "model_tier" field.
func (u *StepUpsertOne) ClearModelTier() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.ClearModelTier()
	})
}

// SetEstCostUsd sets the "est_cost_usd" field.
func (u *StepUpsertOne) SetEstCostUsd(v float64) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetEstCostUsd(v)
	})
}

// AddEstCostUsd adds v to the "est_cost_usd" field.
func (u *StepUpsertOne) AddEstCostUsd(v float64) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.AddEstCostUsd(v)
	})
}

// UpdateEstCostUsd sets the "est_cost_usd" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateEstCostUsd() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateEstCostUsd()
	})
}

// SetTokensIn sets the "tokens_in" field.
func (u *StepUpsertOne) SetTokensIn(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetTokensIn(v)
	})
}

// AddTokensIn adds v to the "tokens_in" field.
func (u *StepUpsertOne) AddTokensIn(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.AddTokensIn(v)
	})
}

// UpdateTokensIn sets the "tokens_in" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateTokensIn() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateTokensIn()
	})
}

// SetTokensOut sets the "tokens_out" field.
func (u *StepUpsertOne) SetTokensOut(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetTokensOut(v)
	})
}

// AddTokensOut adds v to the "tokens_out" field.
func (u *StepUpsertOne) AddTokensOut(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.AddTokensOut(v)
	})
}

// UpdateTokensOut sets the "tokens_out" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateTokensOut() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateTokensOut()
	})
}

// SetCostUsd sets the "cost_usd" field.
func (u *StepUpsertOne) SetCostUsd(v float64) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetCostUsd(v)
	})
}

// AddCostUsd adds v to the "cost_usd" field.
func (u *StepUpsertOne) AddCostUsd(v float64) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.AddCostUsd(v)
	})
}

// UpdateCostUsd sets the "cost_usd" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateCostUsd() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateCostUsd()
	})
}

// SetNotBefore sets the "not_before" field.
func (u *StepUpsertOne) SetNotBefore(v time.Time) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetNotBefore(v)
	})
}

// UpdateNotBefore sets the "not_before" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateNotBefore() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateNotBefore()
	})
}

// ClearNotBefore clears the value of the "not_before" field.
func (u *StepUpsertOne) ClearNotBefore() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.ClearNotBefore()
	})
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *StepUpsertOne) SetLeaseExpiresAt(v time.Time) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetLeaseExpiresAt(v)
	})
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateLeaseExpiresAt() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateLeaseExpiresAt()
	})
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (u *StepUpsertOne) ClearLeaseExpiresAt() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.ClearLeaseExpiresAt()
	})
}

// SetWorkerID sets the "worker_id" field.
func (u *StepUpsertOne) SetWorkerID(v string) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetWorkerID(v)
	})
}

// UpdateWorkerID sets the "worker_id" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateWorkerID() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateWorkerID()
	})
}

// ClearWorkerID clears the value of the "worker_id" field.
func (u *StepUpsertOne) ClearWorkerID() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.ClearWorkerID()
	})
}

// SetTombstoned sets the "tombstoned" field.
func (u *StepUpsertOne) SetTombstoned(v bool) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetTombstoned(v)
	})
}

// UpdateTombstoned sets the "tombstoned" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateTombstoned() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateTombstoned()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *StepUpsertOne) SetErrorMessage(v string) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateErrorMessage() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *StepUpsertOne) ClearErrorMessage() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.ClearErrorMessage()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *StepUpsertOne) SetStartedAt(v time.Time) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateStartedAt() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *StepUpsertOne) ClearStartedAt() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *StepUpsertOne) SetCompletedAt(v time.Time) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateCompletedAt() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *StepUpsertOne) ClearCompletedAt() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *StepUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StepCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StepUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StepUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StepUpsertOne.ID is not supported by MySQL driver. Use StepUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StepUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StepCreateBulk is the builder for creating many Step entities in bulk.
type StepCreateBulk struct {
	config
	err      error
	builders []*StepCreate
	conflict []sql.ConflictOption
}

// Save creates the Step entities in the database.
func (_c *StepCreateBulk) Save(ctx context.Context) ([]*Step, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Step, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StepMutation)
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
func (_c *StepCreateBulk) SaveX(ctx context.Context) []*Step {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Step.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StepUpsert) {
//			SetTenant(v+v).
//		}).
//		Exec(ctx)
func (_c *StepCreateBulk) OnConflict(opts ...sql.ConflictOption) *StepUpsertBulk {
	_c.conflict = opts
	return &StepUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Step.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StepCreateBulk) OnConflictColumns(columns ...string) *StepUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StepUpsertBulk{
		create: _c,
	}
}

// StepUpsertBulk is the builder for "upsert"-ing
// a bulk of Step nodes.
type StepUpsertBulk struct {
	create *StepCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Step.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(step.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StepUpsertBulk) UpdateNewValues() *StepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(step.FieldID)
			}
			if _, exists := b.mutation.Tenant(); exists {
				s.SetIgnore(step.FieldTenant)
			}
			if _, exists := b.mutation.RunID(); exists {
				s.SetIgnore(step.FieldRunID)
			}
			if _, exists := b.mutation.Iteration(); exists {
				s.SetIgnore(step.FieldIteration)
			}
			if _, exists := b.mutation.AgentRole(); exists {
				s.SetIgnore(step.FieldAgentRole)
			}
			if _, exists := b.mutation.IdempotencyKey(); exists {
				s.SetIgnore(step.FieldIdempotencyKey)
			}
			if _, exists := b.mutation.InputDigest(); exists {
				s.SetIgnore(step.FieldInputDigest)
			}
			if _, exists := b.mutation.InputRef(); exists {
				s.SetIgnore(step.FieldInputRef)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(step.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Step.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StepUpsertBulk) Ignore() *StepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StepUpsertBulk) DoNothing() *StepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StepCreateBulk.OnConflict
// documentation for more info.
func (u *StepUpsertBulk) Update(set func(*StepUpsert)) *StepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StepUpsert{UpdateSet: update})
	}))
	return u
}

// SetQueue sets the "queue" field.
func (u *StepUpsertBulk) SetQueue(v step.Queue) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetQueue(v)
	})
}

// UpdateQueue sets the "queue" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateQueue() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateQueue()
	})
}

// SetPriority sets the "priority" field.
func (u *StepUpsertBulk) SetPriority(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *StepUpsertBulk) AddPriority(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdatePriority() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdatePriority()
	})
}

// SetState sets the "state" field.
func (u *StepUpsertBulk) SetState(v step.State) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateState() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateState()
	})
}

// SetOutputRef sets the "output_ref" field.
func (u *StepUpsertBulk) SetOutputRef(v string) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetOutputRef(v)
	})
}

// UpdateOutputRef sets the "output_ref" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateOutputRef() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateOutputRef()
	})
}

// ClearOutputRef clears the value of the "output_ref" field.
func (u *StepUpsertBulk) ClearOutputRef() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.ClearOutputRef()
	})
}

// SetAttempts sets the "attempts" field.
func (u *StepUpsertBulk) SetAttempts(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *StepUpsertBulk) AddAttempts(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateAttempts() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateAttempts()
	})
}

// SetModelTier sets the "model_tier" field.
func (u *StepUpsertBulk) SetModelTier(v step.ModelTier) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetModelTier(v)
	})
}

// UpdateModelTier sets the "model_tier" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateModelTier() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateModelTier()
	})
}

// ClearModelTier clears the value of the "model_tier" field.
func (u *StepUpsertBulk) ClearModelTier() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.ClearModelTier()
	})
}

// SetEstCostUsd sets the "est_cost_usd" field.
func (u *StepUpsertBulk) SetEstCostUsd(v float64) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetEstCostUsd(v)
	})
}

// AddEstCostUsd adds v to the "est_cost_usd" field.
func (u *StepUpsertBulk) AddEstCostUsd(v float64) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.AddEstCostUsd(v)
	})
}

// UpdateEstCostUsd sets the "est_cost_usd" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateEstCostUsd() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateEstCostUsd()
	})
}

// SetTokensIn sets the "tokens_in" field.
func (u *StepUpsertBulk) SetTokensIn(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetTokensIn(v)
	})
}

// AddTokensIn adds v to the "tokens_in" field.
func (u *StepUpsertBulk) AddTokensIn(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.AddTokensIn(v)
	})
}

// UpdateTokensIn sets the "tokens_in" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateTokensIn() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateTokensIn()
	})
}

// SetTokensOut sets the "tokens_out" field.
func (u *StepUpsertBulk) SetTokensOut(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetTokensOut(v)
	})
}

// AddTokensOut adds v to the "tokens_out" field.
func (u *StepUpsertBulk) AddTokensOut(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.AddTokensOut(v)
	})
}

// UpdateTokensOut sets the "tokens_out" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateTokensOut() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateTokensOut()
	})
}

// SetCostUsd sets the "cost_usd" field.
func (u *StepUpsertBulk) SetCostUsd(v float64) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetCostUsd(v)
	})
}

// AddCostUsd adds v to the "cost_usd" field.
func (u *StepUpsertBulk) AddCostUsd(v float64) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.AddCostUsd(v)
	})
}

// UpdateCostUsd sets the "cost_usd" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateCostUsd() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateCostUsd()
	})
}

// SetNotBefore sets the "not_before" field.
func (u *StepUpsertBulk) SetNotBefore(v time.Time) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetNotBefore(v)
	})
}

// UpdateNotBefore sets the "not_before" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateNotBefore() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateNotBefore()
	})
}

// ClearNotBefore clears the value of the "not_before" field.
func (u *StepUpsertBulk) ClearNotBefore() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.ClearNotBefore()
	})
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *StepUpsertBulk) SetLeaseExpiresAt(v time.Time) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetLeaseExpiresAt(v)
	})
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateLeaseExpiresAt() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateLeaseExpiresAt()
	})
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (u *StepUpsertBulk) ClearLeaseExpiresAt() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.ClearLeaseExpiresAt()
	})
}

// SetWorkerID sets the "worker_id" field.
func (u *StepUpsertBulk) SetWorkerID(v string) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetWorkerID(v)
	})
}

// UpdateWorkerID sets the "worker_id" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateWorkerID() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateWorkerID()
	})
}

// ClearWorkerID clears the value of the "worker_id" field.
func (u *StepUpsertBulk) ClearWorkerID() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.ClearWorkerID()
	})
}

// SetTombstoned sets the "tombstoned" field.
func (u *StepUpsertBulk) SetTombstoned(v bool) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetTombstoned(v)
	})
}

// UpdateTombstoned sets the "tombstoned" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateTombstoned() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateTombstoned()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *StepUpsertBulk) SetErrorMessage(v string) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateErrorMessage() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *StepUpsertBulk) ClearErrorMessage() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.ClearErrorMessage()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *StepUpsertBulk) SetStartedAt(v time.Time) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateStartedAt() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *StepUpsertBulk) ClearStartedAt() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *StepUpsertBulk) SetCompletedAt(v time.Time) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateCompletedAt() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *StepUpsertBulk) ClearCompletedAt() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *StepUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StepCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StepCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StepUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
