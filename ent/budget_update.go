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
	"github.com/forgeworks/metabuild/ent/budget"
	"github.com/forgeworks/metabuild/ent/predicate"
)

// BudgetUpdate is the builder for updating Budget entities.
type BudgetUpdate struct {
	config
	hooks    []Hook
	mutation *BudgetMutation
}

// Where appends a list predicates to the BudgetUpdate builder.
func (_u *BudgetUpdate) Where(ps ...predicate.Budget) *BudgetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCostUsedUsd sets the "cost_used_usd" field.
func (_u *BudgetUpdate) SetCostUsedUsd(v float64) *BudgetUpdate {
	_u.mutation.ResetCostUsedUsd()
	_u.mutation.SetCostUsedUsd(v)
	return _u
}

// SetNillableCostUsedUsd sets the "cost_used_usd" field if the given value is not nil.
func (_u *BudgetUpdate) SetNillableCostUsedUsd(v *float64) *BudgetUpdate {
	if v != nil {
		_u.SetCostUsedUsd(*v)
	}
	return _u
}

// AddCostUsedUsd adds value to the "cost_used_usd" field.
func (_u *BudgetUpdate) AddCostUsedUsd(v float64) *BudgetUpdate {
	_u.mutation.AddCostUsedUsd(v)
	return _u
}

// SetTimeUsedS sets the "time_used_s" field.
func (_u *BudgetUpdate) SetTimeUsedS(v int) *BudgetUpdate {
	_u.mutation.ResetTimeUsedS()
	_u.mutation.SetTimeUsedS(v)
	return _u
}

// SetNillableTimeUsedS sets the "time_used_s" field if the given value is not nil.
func (_u *BudgetUpdate) SetNillableTimeUsedS(v *int) *BudgetUpdate {
	if v != nil {
		_u.SetTimeUsedS(*v)
	}
	return _u
}

// AddTimeUsedS adds value to the "time_used_s" field.
func (_u *BudgetUpdate) AddTimeUsedS(v int) *BudgetUpdate {
	_u.mutation.AddTimeUsedS(v)
	return _u
}

// SetAttemptUsed sets the "attempt_used" field.
func (_u *BudgetUpdate) SetAttemptUsed(v int) *BudgetUpdate {
	_u.mutation.ResetAttemptUsed()
	_u.mutation.SetAttemptUsed(v)
	return _u
}

// SetNillableAttemptUsed sets the "attempt_used" field if the given value is not nil.
func (_u *BudgetUpdate) SetNillableAttemptUsed(v *int) *BudgetUpdate {
	if v != nil {
		_u.SetAttemptUsed(*v)
	}
	return _u
}

// AddAttemptUsed adds value to the "attempt_used" field.
func (_u *BudgetUpdate) AddAttemptUsed(v int) *BudgetUpdate {
	_u.mutation.AddAttemptUsed(v)
	return _u
}

// SetExceededAt sets the "exceeded_at" field.
func (_u *BudgetUpdate) SetExceededAt(v time.Time) *BudgetUpdate {
	_u.mutation.SetExceededAt(v)
	return _u
}

// SetNillableExceededAt sets the "exceeded_at" field if the given value is not nil.
func (_u *BudgetUpdate) SetNillableExceededAt(v *time.Time) *BudgetUpdate {
	if v != nil {
		_u.SetExceededAt(*v)
	}
	return _u
}

// ClearExceededAt clears the value of the "exceeded_at" field.
func (_u *BudgetUpdate) ClearExceededAt() *BudgetUpdate {
	_u.mutation.ClearExceededAt()
	return _u
}

// Mutation returns the BudgetMutation object of the builder.
func (_u *BudgetUpdate) Mutation() *BudgetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BudgetUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BudgetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BudgetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BudgetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BudgetUpdate) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Budget.run"`)
	}
	return nil
}

func (_u *BudgetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(budget.Table, budget.Columns, sqlgraph.NewFieldSpec(budget.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CostUsedUsd(); ok {
		_spec.SetField(budget.FieldCostUsedUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsedUsd(); ok {
		_spec.AddField(budget.FieldCostUsedUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeUsedS(); ok {
		_spec.SetField(budget.FieldTimeUsedS, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeUsedS(); ok {
		_spec.AddField(budget.FieldTimeUsedS, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AttemptUsed(); ok {
		_spec.SetField(budget.FieldAttemptUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptUsed(); ok {
		_spec.AddField(budget.FieldAttemptUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExceededAt(); ok {
		_spec.SetField(budget.FieldExceededAt, field.TypeTime, value)
	}
	if _u.mutation.ExceededAtCleared() {
		_spec.ClearField(budget.FieldExceededAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{budget.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BudgetUpdateOne is the builder for updating a single Budget entity.
type BudgetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BudgetMutation
}

// SetCostUsedUsd sets the "cost_used_usd" field.
func (_u *BudgetUpdateOne) SetCostUsedUsd(v float64) *BudgetUpdateOne {
	_u.mutation.ResetCostUsedUsd()
	_u.mutation.SetCostUsedUsd(v)
	return _u
}

// SetNillableCostUsedUsd sets the "cost_used_usd" field if the given value is not nil.
func (_u *BudgetUpdateOne) SetNillableCostUsedUsd(v *float64) *BudgetUpdateOne {
	if v != nil {
		_u.SetCostUsedUsd(*v)
	}
	return _u
}

// AddCostUsedUsd adds value to the "cost_used_usd" field.
func (_u *BudgetUpdateOne) AddCostUsedUsd(v float64) *BudgetUpdateOne {
	_u.mutation.AddCostUsedUsd(v)
	return _u
}

// SetTimeUsedS sets the "time_used_s" field.
func (_u *BudgetUpdateOne) SetTimeUsedS(v int) *BudgetUpdateOne {
	_u.mutation.ResetTimeUsedS()
	_u.mutation.SetTimeUsedS(v)
	return _u
}

// SetNillableTimeUsedS sets the "time_used_s" field if the given value is not nil.
func (_u *BudgetUpdateOne) SetNillableTimeUsedS(v *int) *BudgetUpdateOne {
	if v != nil {
		_u.SetTimeUsedS(*v)
	}
	return _u
}

// AddTimeUsedS adds value to the "time_used_s" field.
func (_u *BudgetUpdateOne) AddTimeUsedS(v int) *BudgetUpdateOne {
	_u.mutation.AddTimeUsedS(v)
	return _u
}

// SetAttemptUsed sets the "attempt_used" field.
func (_u *BudgetUpdateOne) SetAttemptUsed(v int) *BudgetUpdateOne {
	_u.mutation.ResetAttemptUsed()
	_u.mutation.SetAttemptUsed(v)
	return _u
}

// SetNillableAttemptUsed sets the "attempt_used" field if the given value is not nil.
func (_u *BudgetUpdateOne) SetNillableAttemptUsed(v *int) *BudgetUpdateOne {
	if v != nil {
		_u.SetAttemptUsed(*v)
	}
	return _u
}

// AddAttemptUsed adds value to the "attempt_used" field.
func (_u *BudgetUpdateOne) AddAttemptUsed(v int) *BudgetUpdateOne {
	_u.mutation.AddAttemptUsed(v)
	return _u
}

// SetExceededAt sets the "exceeded_at" field.
func (_u *BudgetUpdateOne) SetExceededAt(v time.Time) *BudgetUpdateOne {
	_u.mutation.SetExceededAt(v)
	return _u
}

// SetNillableExceededAt sets the "exceeded_at" field if the given value is not nil.
func (_u *BudgetUpdateOne) SetNillableExceededAt(v *time.Time) *BudgetUpdateOne {
	if v != nil {
		_u.SetExceededAt(*v)
	}
	return _u
}

// ClearExceededAt clears the value of the "exceeded_at" field.
func (_u *BudgetUpdateOne) ClearExceededAt() *BudgetUpdateOne {
	_u.mutation.ClearExceededAt()
	return _u
}

// Mutation returns the BudgetMutation object of the builder.
func (_u *BudgetUpdateOne) Mutation() *BudgetMutation {
	return _u.mutation
}

// Where appends a list predicates to the BudgetUpdate builder.
func (_u *BudgetUpdateOne) Where(ps ...predicate.Budget) *BudgetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BudgetUpdateOne) Select(field string, fields ...string) *BudgetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Budget entity.
func (_u *BudgetUpdateOne) Save(ctx context.Context) (*Budget, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BudgetUpdateOne) SaveX(ctx context.Context) *Budget {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BudgetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BudgetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BudgetUpdateOne) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Budget.run"`)
	}
	return nil
}

func (_u *BudgetUpdateOne) sqlSave(ctx context.Context) (_node *Budget, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(budget.Table, budget.Columns, sqlgraph.NewFieldSpec(budget.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Budget.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, budget.FieldID)
		for _, f := range fields {
			if !budget.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != budget.FieldID {
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
	if value, ok := _u.mutation.CostUsedUsd(); ok {
		_spec.SetField(budget.FieldCostUsedUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsedUsd(); ok {
		_spec.AddField(budget.FieldCostUsedUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeUsedS(); ok {
		_spec.SetField(budget.FieldTimeUsedS, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeUsedS(); ok {
		_spec.AddField(budget.FieldTimeUsedS, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AttemptUsed(); ok {
		_spec.SetField(budget.FieldAttemptUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptUsed(); ok {
		_spec.AddField(budget.FieldAttemptUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExceededAt(); ok {
		_spec.SetField(budget.FieldExceededAt, field.TypeTime, value)
	}
	if _u.mutation.ExceededAtCleared() {
		_spec.ClearField(budget.FieldExceededAt, field.TypeTime)
	}
	_node = &Budget{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{budget.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
