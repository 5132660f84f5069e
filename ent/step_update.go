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
	"github.com/forgeworks/metabuild/ent/failure"
	"github.com/forgeworks/metabuild/ent/predicate"
	"github.com/forgeworks/metabuild/ent/queuelease"
	"github.com/forgeworks/metabuild/ent/step"
)

// StepUpdate is the builder for updating Step entities.
type StepUpdate struct {
	config
	hooks    []Hook
	mutation *StepMutation
}

// Where appends a list predicates to the StepUpdate builder.
func (_u *StepUpdate) Where(ps ...predicate.Step) *StepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQueue sets the "queue" field.
func (_u *StepUpdate) SetQueue(v step.Queue) *StepUpdate {
	_u.mutation.SetQueue(v)
	return _u
}

// SetNillableQueue sets the "queue" field if the given value is not nil.
func (_u *StepUpdate) SetNillableQueue(v *step.Queue) *StepUpdate {
	if v != nil {
		_u.SetQueue(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *StepUpdate) SetPriority(v int) *StepUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *StepUpdate) SetNillablePriority(v *int) *StepUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *StepUpdate) AddPriority(v int) *StepUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetState sets the "state" field.
func (_u *StepUpdate) SetState(v step.State) *StepUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *StepUpdate) SetNillableState(v *step.State) *StepUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetOutputRef sets the "output_ref" field.
func (_u *StepUpdate) SetOutputRef(v string) *StepUpdate {
	_u.mutation.SetOutputRef(v)
	return _u
}

// SetNillableOutputRef sets the "output_ref" field if the given value is not nil.
func (_u *StepUpdate) SetNillableOutputRef(v *string) *StepUpdate {
	if v != nil {
		_u.SetOutputRef(*v)
	}
	return _u
}

// ClearOutputRef clears the value of the "output_ref" field.
func (_u *StepUpdate) ClearOutputRef() *StepUpdate {
	_u.mutation.ClearOutputRef()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *StepUpdate) SetAttempts(v int) *StepUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *StepUpdate) SetNillableAttempts(v *int) *StepUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *StepUpdate) AddAttempts(v int) *StepUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetModelTier sets the "model_tier" field.
func (_u *StepUpdate) SetModelTier(v step.ModelTier) *StepUpdate {
	_u.mutation.SetModelTier(v)
	return _u
}

// SetNillableModelTier sets the "model_tier" field if the given value is not nil.
func (_u *StepUpdate) SetNillableModelTier(v *step.ModelTier) *StepUpdate {
	if v != nil {
		_u.SetModelTier(*v)
	}
	return _u
}

// ClearModelTier clears the value of the "model_tier" field.
func (_u *StepUpdate) ClearModelTier() *StepUpdate {
	_u.mutation.ClearModelTier()
	return _u
}

// SetEstCostUsd sets the "est_cost_usd" field.
func (_u *StepUpdate) SetEstCostUsd(v float64) *StepUpdate {
	_u.mutation.ResetEstCostUsd()
	_u.mutation.SetEstCostUsd(v)
	return _u
}

// SetNillableEstCostUsd sets the "est_cost_usd" field if the given value is not nil.
func (_u *StepUpdate) SetNillableEstCostUsd(v *float64) *StepUpdate {
	if v != nil {
		_u.SetEstCostUsd(*v)
	}
	return _u
}

// AddEstCostUsd adds value to the "est_cost_usd" field.
func (_u *StepUpdate) AddEstCostUsd(v float64) *StepUpdate {
	_u.mutation.AddEstCostUsd(v)
	return _u
}

// SetTokensIn sets the "tokens_in" field.
func (_u *StepUpdate) SetTokensIn(v int) *StepUpdate {
	_u.mutation.ResetTokensIn()
	_u.mutation.SetTokensIn(v)
	return _u
}

// SetNillableTokensIn sets the "tokens_in" field if the given value is not nil.
func (_u *StepUpdate) SetNillableTokensIn(v *int) *StepUpdate {
	if v != nil {
		_u.SetTokensIn(*v)
	}
	return _u
}

// AddTokensIn adds value to the "tokens_in" field.
func (_u *StepUpdate) AddTokensIn(v int) *StepUpdate {
	_u.mutation.AddTokensIn(v)
	return _u
}

// SetTokensOut sets the "tokens_out" field.
func (_u *StepUpdate) SetTokensOut(v int) *StepUpdate {
	_u.mutation.ResetTokensOut()
	_u.mutation.SetTokensOut(v)
	return _u
}

// SetNillableTokensOut sets the "tokens_out" field if the given value is not nil.
func (_u *StepUpdate) SetNillableTokensOut(v *int) *StepUpdate {
	if v != nil {
		_u.SetTokensOut(*v)
	}
	return _u
}

// AddTokensOut adds value to the "tokens_out" field.
func (_u *StepUpdate) AddTokensOut(v int) *StepUpdate {
	_u.mutation.AddTokensOut(v)
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *StepUpdate) SetCostUsd(v float64) *StepUpdate {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *StepUpdate) SetNillableCostUsd(v *float64) *StepUpdate {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *StepUpdate) AddCostUsd(v float64) *StepUpdate {
	_u.mutation.AddCostUsd(v)
	return _u
}

// SetNotBefore sets the "not_before" field.
func (_u *StepUpdate) SetNotBefore(v time.Time) *StepUpdate {
	_u.mutation.SetNotBefore(v)
	return _u
}

// SetNillableNotBefore sets the "not_before" field if the given value is not nil.
func (_u *StepUpdate) SetNillableNotBefore(v *time.Time) *StepUpdate {
	if v != nil {
		_u.SetNotBefore(*v)
	}
	return _u
}

// ClearNotBefore clears the value of the "not_before" field.
func (_u *StepUpdate) ClearNotBefore() *StepUpdate {
	_u.mutation.ClearNotBefore()
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *StepUpdate) SetLeaseExpiresAt(v time.Time) *StepUpdate {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *StepUpdate) SetNillableLeaseExpiresAt(v *time.Time) *StepUpdate {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (_u *StepUpdate) ClearLeaseExpiresAt() *StepUpdate {
	_u.mutation.ClearLeaseExpiresAt()
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *StepUpdate) SetWorkerID(v string) *StepUpdate {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *StepUpdate) SetNillableWorkerID(v *string) *StepUpdate {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *StepUpdate) ClearWorkerID() *StepUpdate {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetTombstoned sets the "tombstoned" field.
func (_u *StepUpdate) SetTombstoned(v bool) *StepUpdate {
	_u.mutation.SetTombstoned(v)
	return _u
}

// SetNillableTombstoned sets the "tombstoned" field if the given value is not nil.
func (_u *StepUpdate) SetNillableTombstoned(v *bool) *StepUpdate {
	if v != nil {
		_u.SetTombstoned(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *StepUpdate) SetErrorMessage(v string) *StepUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *StepUpdate) SetNillableErrorMessage(v *string) *StepUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *StepUpdate) ClearErrorMessage() *StepUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StepUpdate) SetStartedAt(v time.Time) *StepUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StepUpdate) SetNillableStartedAt(v *time.Time) *StepUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *StepUpdate) ClearStartedAt() *StepUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StepUpdate) SetCompletedAt(v time.Time) *StepUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StepUpdate) SetNillableCompletedAt(v *time.Time) *StepUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StepUpdate) ClearCompletedAt() *StepUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddFailureIDs adds the "failures" edge to the Failure entity by IDs.
func (_u *StepUpdate) AddFailureIDs(ids ...string) *StepUpdate {
	_u.mutation.AddFailureIDs(ids...)
	return _u
}

// AddFailures adds the "failures" edges to the Failure entity.
func (_u *StepUpdate) AddFailures(v ...*Failure) *StepUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFailureIDs(ids...)
}

// SetLeaseID sets the "lease" edge to the QueueLease entity by ID.
func (_u *StepUpdate) SetLeaseID(id string) *StepUpdate {
	_u.mutation.SetLeaseID(id)
	return _u
}

// SetNillableLeaseID sets the "lease" edge to the QueueLease entity by ID if the given value is not nil.
func (_u *StepUpdate) SetNillableLeaseID(id *string) *StepUpdate {
	if id != nil {
		_u = _u.SetLeaseID(*id)
	}
	return _u
}

// SetLease sets the "lease" edge to the QueueLease entity.
func (_u *StepUpdate) SetLease(v *QueueLease) *StepUpdate {
	return _u.SetLeaseID(v.ID)
}

// Mutation returns the StepMutation object of the builder.
func (_u *StepUpdate) Mutation() *StepMutation {
	return _u.mutation
}

// ClearFailures clears all "failures" edges to the Failure entity.
func (_u *StepUpdate) ClearFailures() *StepUpdate {
	_u.mutation.ClearFailures()
	return _u
}

// RemoveFailureIDs removes the "failures" edge to Failure entities by IDs.
func (_u *StepUpdate) RemoveFailureIDs(ids ...string) *StepUpdate {
	_u.mutation.RemoveFailureIDs(ids...)
	return _u
}

// RemoveFailures removes "failures" edges to Failure entities.
func (_u *StepUpdate) RemoveFailures(v ...*Failure) *StepUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFailureIDs(ids...)
}

// ClearLease clears the "lease" edge to the QueueLease entity.
func (_u *StepUpdate) ClearLease() *StepUpdate {
	_u.mutation.ClearLease()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepUpdate) check() error {
	if v, ok := _u.mutation.Queue(); ok {
		if err := step.QueueValidator(v); err != nil {
			return &ValidationError{Name: "queue", err: fmt.Errorf(`ent: validator failed for field "Step.queue": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := step.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Step.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelTier(); ok {
		if err := step.ModelTierValidator(v); err != nil {
			return &ValidationError{Name: "model_tier", err: fmt.Errorf(`ent: validator failed for field "Step.model_tier": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Step.run"`)
	}
	return nil
}

func (_u *StepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(step.Table, step.Columns, sqlgraph.NewFieldSpec(step.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Queue(); ok {
		_spec.SetField(step.FieldQueue, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(step.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(step.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(step.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OutputRef(); ok {
		_spec.SetField(step.FieldOutputRef, field.TypeString, value)
	}
	if _u.mutation.OutputRefCleared() {
		_spec.ClearField(step.FieldOutputRef, field.TypeString)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(step.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(step.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ModelTier(); ok {
		_spec.SetField(step.FieldModelTier, field.TypeEnum, value)
	}
	if _u.mutation.ModelTierCleared() {
		_spec.ClearField(step.FieldModelTier, field.TypeEnum)
	}
	if value, ok := _u.mutation.EstCostUsd(); ok {
		_spec.SetField(step.FieldEstCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstCostUsd(); ok {
		_spec.AddField(step.FieldEstCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TokensIn(); ok {
		_spec.SetField(step.FieldTokensIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensIn(); ok {
		_spec.AddField(step.FieldTokensIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensOut(); ok {
		_spec.SetField(step.FieldTokensOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensOut(); ok {
		_spec.AddField(step.FieldTokensOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(step.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(step.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NotBefore(); ok {
		_spec.SetField(step.FieldNotBefore, field.TypeTime, value)
	}
	if _u.mutation.NotBeforeCleared() {
		_spec.ClearField(step.FieldNotBefore, field.TypeTime)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(step.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresAtCleared() {
		_spec.ClearField(step.FieldLeaseExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(step.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(step.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.Tombstoned(); ok {
		_spec.SetField(step.FieldTombstoned, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(step.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(step.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(step.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(step.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(step.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(step.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.FailuresCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFailuresIDs(); len(nodes) > 0 && !_u.mutation.FailuresCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FailuresIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LeaseCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeaseIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{step.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StepUpdateOne is the builder for updating a single Step entity.
type StepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StepMutation
}

// SetQueue sets the "queue" field.
func (_u *StepUpdateOne) SetQueue(v step.Queue) *StepUpdateOne {
	_u.mutation.SetQueue(v)
	return _u
}

// SetNillableQueue sets the "queue" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableQueue(v *step.Queue) *StepUpdateOne {
	if v != nil {
		_u.SetQueue(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *StepUpdateOne) SetPriority(v int) *StepUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillablePriority(v *int) *StepUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *StepUpdateOne) AddPriority(v int) *StepUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetState sets the "state" field.
func (_u *StepUpdateOne) SetState(v step.State) *StepUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableState(v *step.State) *StepUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetOutputRef sets the "output_ref" field.
func (_u *StepUpdateOne) SetOutputRef(v string) *StepUpdateOne {
	_u.mutation.SetOutputRef(v)
	return _u
}

// SetNillableOutputRef sets the "output_ref" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableOutputRef(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetOutputRef(*v)
	}
	return _u
}

// ClearOutputRef clears the value of the "output_ref" field.
func (_u *StepUpdateOne) ClearOutputRef() *StepUpdateOne {
	_u.mutation.ClearOutputRef()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *StepUpdateOne) SetAttempts(v int) *StepUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableAttempts(v *int) *StepUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *StepUpdateOne) AddAttempts(v int) *StepUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetModelTier sets the "model_tier" field.
func (_u *StepUpdateOne) SetModelTier(v step.ModelTier) *StepUpdateOne {
	_u.mutation.SetModelTier(v)
	return _u
}

// SetNillableModelTier sets the "model_tier" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableModelTier(v *step.ModelTier) *StepUpdateOne {
	if v != nil {
		_u.SetModelTier(*v)
	}
	return _u
}

// ClearModelTier clears the value of the "model_tier" field.
func (_u *StepUpdateOne) ClearModelTier() *StepUpdateOne {
	_u.mutation.ClearModelTier()
	return _u
}

// SetEstCostUsd sets the "est_cost_usd" field.
func (_u *StepUpdateOne) SetEstCostUsd(v float64) *StepUpdateOne {
	_u.mutation.ResetEstCostUsd()
	_u.mutation.SetEstCostUsd(v)
	return _u
}

// SetNillableEstCostUsd sets the "est_cost_usd" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableEstCostUsd(v *float64) *StepUpdateOne {
	if v != nil {
		_u.SetEstCostUsd(*v)
	}
	return _u
}

// AddEstCostUsd adds value to the "est_cost_usd" field.
func (_u *StepUpdateOne) AddEstCostUsd(v float64) *StepUpdateOne {
	_u.mutation.AddEstCostUsd(v)
	return _u
}

// SetTokensIn sets the "tokens_in" field.
func (_u *StepUpdateOne) SetTokensIn(v int) *StepUpdateOne {
	_u.mutation.ResetTokensIn()
	_u.mutation.SetTokensIn(v)
	return _u
}

// SetNillableTokensIn sets the "tokens_in" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableTokensIn(v *int) *StepUpdateOne {
	if v != nil {
		_u.SetTokensIn(*v)
	}
	return _u
}

// AddTokensIn adds value to the "tokens_in" field.
func (_u *StepUpdateOne) AddTokensIn(v int) *StepUpdateOne {
	_u.mutation.AddTokensIn(v)
	return _u
}

// SetTokensOut sets the "tokens_out" field.
func (_u *StepUpdateOne) SetTokensOut(v int) *StepUpdateOne {
	_u.mutation.ResetTokensOut()
	_u.mutation.SetTokensOut(v)
	return _u
}

// SetNillableTokensOut sets the "tokens_out" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableTokensOut(v *int) *StepUpdateOne {
	if v != nil {
		_u.SetTokensOut(*v)
	}
	return _u
}

// AddTokensOut adds value to the "tokens_out" field.
func (_u *StepUpdateOne) AddTokensOut(v int) *StepUpdateOne {
	_u.mutation.AddTokensOut(v)
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *StepUpdateOne) SetCostUsd(v float64) *StepUpdateOne {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableCostUsd(v *float64) *StepUpdateOne {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *StepUpdateOne) AddCostUsd(v float64) *StepUpdateOne {
	_u.mutation.AddCostUsd(v)
	return _u
}

// SetNotBefore sets the "not_before" field.
func (_u *StepUpdateOne) SetNotBefore(v time.Time) *StepUpdateOne {
	_u.mutation.SetNotBefore(v)
	return _u
}

// SetNillableNotBefore sets the "not_before" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableNotBefore(v *time.Time) *StepUpdateOne {
	if v != nil {
		_u.SetNotBefore(*v)
	}
	return _u
}

// ClearNotBefore clears the value of the "not_before" field.
func (_u *StepUpdateOne) ClearNotBefore() *StepUpdateOne {
	_u.mutation.ClearNotBefore()
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *StepUpdateOne) SetLeaseExpiresAt(v time.Time) *StepUpdateOne {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableLeaseExpiresAt(v *time.Time) *StepUpdateOne {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (_u *StepUpdateOne) ClearLeaseExpiresAt() *StepUpdateOne {
	_u.mutation.ClearLeaseExpiresAt()
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *StepUpdateOne) SetWorkerID(v string) *StepUpdateOne {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableWorkerID(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *StepUpdateOne) ClearWorkerID() *StepUpdateOne {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetTombstoned sets the "tombstoned" field.
func (_u *StepUpdateOne) SetTombstoned(v bool) *StepUpdateOne {
	_u.mutation.SetTombstoned(v)
	return _u
}

// SetNillableTombstoned sets the "tombstoned" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableTombstoned(v *bool) *StepUpdateOne {
	if v != nil {
		_u.SetTombstoned(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *StepUpdateOne) SetErrorMessage(v string) *StepUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableErrorMessage(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *StepUpdateOne) ClearErrorMessage() *StepUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StepUpdateOne) SetStartedAt(v time.Time) *StepUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableStartedAt(v *time.Time) *StepUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *StepUpdateOne) ClearStartedAt() *StepUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StepUpdateOne) SetCompletedAt(v time.Time) *StepUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableCompletedAt(v *time.Time) *StepUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StepUpdateOne) ClearCompletedAt() *StepUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddFailureIDs adds the "failures" edge to the Failure entity by IDs.
func (_u *StepUpdateOne) AddFailureIDs(ids ...string) *StepUpdateOne {
	_u.mutation.AddFailureIDs(ids...)
	return _u
}

// AddFailures adds the "failures" edges to the Failure entity.
func (_u *StepUpdateOne) AddFailures(v ...*Failure) *StepUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFailureIDs(ids...)
}

// SetLeaseID sets the "lease" edge to the QueueLease entity by ID.
func (_u *StepUpdateOne) SetLeaseID(id string) *StepUpdateOne {
	_u.mutation.SetLeaseID(id)
	return _u
}

// SetNillableLeaseID sets the "lease" edge to the QueueLease entity by ID if the given value is not nil.
func (_u *StepUpdateOne) SetNillableLeaseID(id *string) *StepUpdateOne {
	if id != nil {
		_u = _u.SetLeaseID(*id)
	}
	return _u
}

// SetLease sets the "lease" edge to the QueueLease entity.
func (_u *StepUpdateOne) SetLease(v *QueueLease) *StepUpdateOne {
	return _u.SetLeaseID(v.ID)
}

// Mutation returns the StepMutation object of the builder.
func (_u *StepUpdateOne) Mutation() *StepMutation {
	return _u.mutation
}

// ClearFailures clears all "failures" edges to the Failure entity.
func (_u *StepUpdateOne) ClearFailures() *StepUpdateOne {
	_u.mutation.ClearFailures()
	return _u
}

// RemoveFailureIDs removes the "failures" edge to Failure entities by IDs.
func (_u *StepUpdateOne) RemoveFailureIDs(ids ...string) *StepUpdateOne {
	_u.mutation.RemoveFailureIDs(ids...)
	return _u
}

// RemoveFailures removes "failures" edges to Failure entities.
func (_u *StepUpdateOne) RemoveFailures(v ...*Failure) *StepUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFailureIDs(ids...)
}

// ClearLease clears the "lease" edge to the QueueLease entity.
func (_u *StepUpdateOne) ClearLease() *StepUpdateOne {
	_u.mutation.ClearLease()
	return _u
}

// Where appends a list predicates to the StepUpdate builder.
func (_u *StepUpdateOne) Where(ps ...predicate.Step) *StepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StepUpdateOne) Select(field string, fields ...string) *StepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Step entity.
func (_u *StepUpdateOne) Save(ctx context.Context) (*Step, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepUpdateOne) SaveX(ctx context.Context) *Step {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepUpdateOne) check() error {
	if v, ok := _u.mutation.Queue(); ok {
		if err := step.QueueValidator(v); err != nil {
			return &ValidationError{Name: "queue", err: fmt.Errorf(`ent: validator failed for field "Step.queue": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := step.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Step.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelTier(); ok {
		if err := step.ModelTierValidator(v); err != nil {
			return &ValidationError{Name: "model_tier", err: fmt.Errorf(`ent: validator failed for field "Step.model_tier": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Step.run"`)
	}
	return nil
}

func (_u *StepUpdateOne) sqlSave(ctx context.Context) (_node *Step, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(step.Table, step.Columns, sqlgraph.NewFieldSpec(step.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Step.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, step.FieldID)
		for _, f := range fields {
			if !step.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != step.FieldID {
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
	if value, ok := _u.mutation.Queue(); ok {
		_spec.SetField(step.FieldQueue, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(step.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(step.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(step.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OutputRef(); ok {
		_spec.SetField(step.FieldOutputRef, field.TypeString, value)
	}
	if _u.mutation.OutputRefCleared() {
		_spec.ClearField(step.FieldOutputRef, field.TypeString)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(step.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(step.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ModelTier(); ok {
		_spec.SetField(step.FieldModelTier, field.TypeEnum, value)
	}
	if _u.mutation.ModelTierCleared() {
		_spec.ClearField(step.FieldModelTier, field.TypeEnum)
	}
	if value, ok := _u.mutation.EstCostUsd(); ok {
		_spec.SetField(step.FieldEstCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstCostUsd(); ok {
		_spec.AddField(step.FieldEstCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TokensIn(); ok {
		_spec.SetField(step.FieldTokensIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensIn(); ok {
		_spec.AddField(step.FieldTokensIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensOut(); ok {
		_spec.SetField(step.FieldTokensOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensOut(); ok {
		_spec.AddField(step.FieldTokensOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(step.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(step.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NotBefore(); ok {
		_spec.SetField(step.FieldNotBefore, field.TypeTime, value)
	}
	if _u.mutation.NotBeforeCleared() {
		_spec.ClearField(step.FieldNotBefore, field.TypeTime)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(step.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresAtCleared() {
		_spec.ClearField(step.FieldLeaseExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(step.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(step.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.Tombstoned(); ok {
		_spec.SetField(step.FieldTombstoned, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(step.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(step.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(step.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(step.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(step.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(step.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.FailuresCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFailuresIDs(); len(nodes) > 0 && !_u.mutation.FailuresCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FailuresIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LeaseCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeaseIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Step{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{step.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
