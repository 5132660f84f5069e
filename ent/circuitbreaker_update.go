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
	"github.com/forgeworks/metabuild/ent/circuitbreaker"
	"github.com/forgeworks/metabuild/ent/predicate"
)

// CircuitBreakerUpdate is the builder for updating CircuitBreaker entities.
type CircuitBreakerUpdate struct {
	config
	hooks    []Hook
	mutation *CircuitBreakerMutation
}

// Where appends a list predicates to the CircuitBreakerUpdate builder.
func (_u *CircuitBreakerUpdate) Where(ps ...predicate.CircuitBreaker) *CircuitBreakerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetState sets the "state" field.
func (_u *CircuitBreakerUpdate) SetState(v circuitbreaker.State) *CircuitBreakerUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *CircuitBreakerUpdate) SetNillableState(v *circuitbreaker.State) *CircuitBreakerUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetFailCount sets the "fail_count" field.
func (_u *CircuitBreakerUpdate) SetFailCount(v int) *CircuitBreakerUpdate {
	_u.mutation.ResetFailCount()
	_u.mutation.SetFailCount(v)
	return _u
}

// SetNillableFailCount sets the "fail_count" field if the given value is not nil.
func (_u *CircuitBreakerUpdate) SetNillableFailCount(v *int) *CircuitBreakerUpdate {
	if v != nil {
		_u.SetFailCount(*v)
	}
	return _u
}

// AddFailCount adds value to the "fail_count" field.
func (_u *CircuitBreakerUpdate) AddFailCount(v int) *CircuitBreakerUpdate {
	_u.mutation.AddFailCount(v)
	return _u
}

// SetThreshold sets the "threshold" field.
func (_u *CircuitBreakerUpdate) SetThreshold(v int) *CircuitBreakerUpdate {
	_u.mutation.ResetThreshold()
	_u.mutation.SetThreshold(v)
	return _u
}

// SetNillableThreshold sets the "threshold" field if the given value is not nil.
func (_u *CircuitBreakerUpdate) SetNillableThreshold(v *int) *CircuitBreakerUpdate {
	if v != nil {
		_u.SetThreshold(*v)
	}
	return _u
}

// AddThreshold adds value to the "threshold" field.
func (_u *CircuitBreakerUpdate) AddThreshold(v int) *CircuitBreakerUpdate {
	_u.mutation.AddThreshold(v)
	return _u
}

// SetWindowStart sets the "window_start" field.
func (_u *CircuitBreakerUpdate) SetWindowStart(v time.Time) *CircuitBreakerUpdate {
	_u.mutation.SetWindowStart(v)
	return _u
}

// SetNillableWindowStart sets the "window_start" field if the given value is not nil.
func (_u *CircuitBreakerUpdate) SetNillableWindowStart(v *time.Time) *CircuitBreakerUpdate {
	if v != nil {
		_u.SetWindowStart(*v)
	}
	return _u
}

// ClearWindowStart clears the value of the "window_start" field.
func (_u *CircuitBreakerUpdate) ClearWindowStart() *CircuitBreakerUpdate {
	_u.mutation.ClearWindowStart()
	return _u
}

// SetOpenedAt sets the "opened_at" field.
func (_u *CircuitBreakerUpdate) SetOpenedAt(v time.Time) *CircuitBreakerUpdate {
	_u.mutation.SetOpenedAt(v)
	return _u
}

// SetNillableOpenedAt sets the "opened_at" field if the given value is not nil.
func (_u *CircuitBreakerUpdate) SetNillableOpenedAt(v *time.Time) *CircuitBreakerUpdate {
	if v != nil {
		_u.SetOpenedAt(*v)
	}
	return _u
}

// ClearOpenedAt clears the value of the "opened_at" field.
func (_u *CircuitBreakerUpdate) ClearOpenedAt() *CircuitBreakerUpdate {
	_u.mutation.ClearOpenedAt()
	return _u
}

// SetCooldownUntil sets the "cooldown_until" field.
func (_u *CircuitBreakerUpdate) SetCooldownUntil(v time.Time) *CircuitBreakerUpdate {
	_u.mutation.SetCooldownUntil(v)
	return _u
}

// SetNillableCooldownUntil sets the "cooldown_until" field if the given value is not nil.
func (_u *CircuitBreakerUpdate) SetNillableCooldownUntil(v *time.Time) *CircuitBreakerUpdate {
	if v != nil {
		_u.SetCooldownUntil(*v)
	}
	return _u
}

// ClearCooldownUntil clears the value of the "cooldown_until" field.
func (_u *CircuitBreakerUpdate) ClearCooldownUntil() *CircuitBreakerUpdate {
	_u.mutation.ClearCooldownUntil()
	return _u
}

// SetCooldownS sets the "cooldown_s" field.
func (_u *CircuitBreakerUpdate) SetCooldownS(v int) *CircuitBreakerUpdate {
	_u.mutation.ResetCooldownS()
	_u.mutation.SetCooldownS(v)
	return _u
}

// SetNillableCooldownS sets the "cooldown_s" field if the given value is not nil.
func (_u *CircuitBreakerUpdate) SetNillableCooldownS(v *int) *CircuitBreakerUpdate {
	if v != nil {
		_u.SetCooldownS(*v)
	}
	return _u
}

// AddCooldownS adds value to the "cooldown_s" field.
func (_u *CircuitBreakerUpdate) AddCooldownS(v int) *CircuitBreakerUpdate {
	_u.mutation.AddCooldownS(v)
	return _u
}

// Mutation returns the CircuitBreakerMutation object of the builder.
func (_u *CircuitBreakerUpdate) Mutation() *CircuitBreakerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CircuitBreakerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CircuitBreakerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CircuitBreakerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CircuitBreakerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CircuitBreakerUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := circuitbreaker.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "CircuitBreaker.state": %w`, err)}
		}
	}
	return nil
}

func (_u *CircuitBreakerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(circuitbreaker.Table, circuitbreaker.Columns, sqlgraph.NewFieldSpec(circuitbreaker.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(circuitbreaker.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FailCount(); ok {
		_spec.SetField(circuitbreaker.FieldFailCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailCount(); ok {
		_spec.AddField(circuitbreaker.FieldFailCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Threshold(); ok {
		_spec.SetField(circuitbreaker.FieldThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedThreshold(); ok {
		_spec.AddField(circuitbreaker.FieldThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WindowStart(); ok {
		_spec.SetField(circuitbreaker.FieldWindowStart, field.TypeTime, value)
	}
	if _u.mutation.WindowStartCleared() {
		_spec.ClearField(circuitbreaker.FieldWindowStart, field.TypeTime)
	}
	if value, ok := _u.mutation.OpenedAt(); ok {
		_spec.SetField(circuitbreaker.FieldOpenedAt, field.TypeTime, value)
	}
	if _u.mutation.OpenedAtCleared() {
		_spec.ClearField(circuitbreaker.FieldOpenedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CooldownUntil(); ok {
		_spec.SetField(circuitbreaker.FieldCooldownUntil, field.TypeTime, value)
	}
	if _u.mutation.CooldownUntilCleared() {
		_spec.ClearField(circuitbreaker.FieldCooldownUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.CooldownS(); ok {
		_spec.SetField(circuitbreaker.FieldCooldownS, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCooldownS(); ok {
		_spec.AddField(circuitbreaker.FieldCooldownS, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{circuitbreaker.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CircuitBreakerUpdateOne is the builder for updating a single CircuitBreaker entity.
type CircuitBreakerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CircuitBreakerMutation
}

// SetState sets the "state" field.
func (_u *CircuitBreakerUpdateOne) SetState(v circuitbreaker.State) *CircuitBreakerUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *CircuitBreakerUpdateOne) SetNillableState(v *circuitbreaker.State) *CircuitBreakerUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetFailCount sets the "fail_count" field.
func (_u *CircuitBreakerUpdateOne) SetFailCount(v int) *CircuitBreakerUpdateOne {
	_u.mutation.ResetFailCount()
	_u.mutation.SetFailCount(v)
	return _u
}

// SetNillableFailCount sets the "fail_count" field if the given value is not nil.
func (_u *CircuitBreakerUpdateOne) SetNillableFailCount(v *int) *CircuitBreakerUpdateOne {
	if v != nil {
		_u.SetFailCount(*v)
	}
	return _u
}

// AddFailCount adds value to the "fail_count" field.
func (_u *CircuitBreakerUpdateOne) AddFailCount(v int) *CircuitBreakerUpdateOne {
	_u.mutation.AddFailCount(v)
	return _u
}

// SetThreshold sets the "threshold" field.
func (_u *CircuitBreakerUpdateOne) SetThreshold(v int) *CircuitBreakerUpdateOne {
	_u.mutation.ResetThreshold()
	_u.mutation.SetThreshold(v)
	return _u
}

// SetNillableThreshold sets the "threshold" field if the given value is not nil.
func (_u *CircuitBreakerUpdateOne) SetNillableThreshold(v *int) *CircuitBreakerUpdateOne {
	if v != nil {
		_u.SetThreshold(*v)
	}
	return _u
}

// AddThreshold adds value to the "threshold" field.
func (_u *CircuitBreakerUpdateOne) AddThreshold(v int) *CircuitBreakerUpdateOne {
	_u.mutation.AddThreshold(v)
	return _u
}

// SetWindowStart sets the "window_start" field.
func (_u *CircuitBreakerUpdateOne) SetWindowStart(v time.Time) *CircuitBreakerUpdateOne {
	_u.mutation.SetWindowStart(v)
	return _u
}

// SetNillableWindowStart sets the "window_start" field if the given value is not nil.
func (_u *CircuitBreakerUpdateOne) SetNillableWindowStart(v *time.Time) *CircuitBreakerUpdateOne {
	if v != nil {
		_u.SetWindowStart(*v)
	}
	return _u
}

// ClearWindowStart clears the value of the "window_start" field.
func (_u *CircuitBreakerUpdateOne) ClearWindowStart() *CircuitBreakerUpdateOne {
	_u.mutation.ClearWindowStart()
	return _u
}

// SetOpenedAt sets the "opened_at" field.
func (_u *CircuitBreakerUpdateOne) SetOpenedAt(v time.Time) *CircuitBreakerUpdateOne {
	_u.mutation.SetOpenedAt(v)
	return _u
}

// SetNillableOpenedAt sets the "opened_at" field if the given value is not nil.
func (_u *CircuitBreakerUpdateOne) SetNillableOpenedAt(v *time.Time) *CircuitBreakerUpdateOne {
	if v != nil {
		_u.SetOpenedAt(*v)
	}
	return _u
}

// ClearOpenedAt clears the value of the "opened_at" field.
func (_u *CircuitBreakerUpdateOne) ClearOpenedAt() *CircuitBreakerUpdateOne {
	_u.mutation.ClearOpenedAt()
	return _u
}

// SetCooldownUntil sets the "cooldown_until" field.
func (_u *CircuitBreakerUpdateOne) SetCooldownUntil(v time.Time) *CircuitBreakerUpdateOne {
	_u.mutation.SetCooldownUntil(v)
	return _u
}

// SetNillableCooldownUntil sets the "cooldown_until" field if the given value is not nil.
func (_u *CircuitBreakerUpdateOne) SetNillableCooldownUntil(v *time.Time) *CircuitBreakerUpdateOne {
	if v != nil {
		_u.SetCooldownUntil(*v)
	}
	return _u
}

// ClearCooldownUntil clears the value of the "cooldown_until" field.
func (_u *CircuitBreakerUpdateOne) ClearCooldownUntil() *CircuitBreakerUpdateOne {
	_u.mutation.ClearCooldownUntil()
	return _u
}

// SetCooldownS sets the "cooldown_s" field.
func (_u *CircuitBreakerUpdateOne) SetCooldownS(v int) *CircuitBreakerUpdateOne {
	_u.mutation.ResetCooldownS()
	_u.mutation.SetCooldownS(v)
	return _u
}

// SetNillableCooldownS sets the "cooldown_s" field if the given value is not nil.
func (_u *CircuitBreakerUpdateOne) SetNillableCooldownS(v *int) *CircuitBreakerUpdateOne {
	if v != nil {
		_u.SetCooldownS(*v)
	}
	return _u
}

// AddCooldownS adds value to the "cooldown_s" field.
func (_u *CircuitBreakerUpdateOne) AddCooldownS(v int) *CircuitBreakerUpdateOne {
	_u.mutation.AddCooldownS(v)
	return _u
}

// Mutation returns the CircuitBreakerMutation object of the builder.
func (_u *CircuitBreakerUpdateOne) Mutation() *CircuitBreakerMutation {
	return _u.mutation
}

// Where appends a list predicates to the CircuitBreakerUpdate builder.
func (_u *CircuitBreakerUpdateOne) Where(ps ...predicate.CircuitBreaker) *CircuitBreakerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CircuitBreakerUpdateOne) Select(field string, fields ...string) *CircuitBreakerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CircuitBreaker entity.
func (_u *CircuitBreakerUpdateOne) Save(ctx context.Context) (*CircuitBreaker, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CircuitBreakerUpdateOne) SaveX(ctx context.Context) *CircuitBreaker {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CircuitBreakerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CircuitBreakerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CircuitBreakerUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := circuitbreaker.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "CircuitBreaker.state": %w`, err)}
		}
	}
	return nil
}

func (_u *CircuitBreakerUpdateOne) sqlSave(ctx context.Context) (_node *CircuitBreaker, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(circuitbreaker.Table, circuitbreaker.Columns, sqlgraph.NewFieldSpec(circuitbreaker.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CircuitBreaker.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, circuitbreaker.FieldID)
		for _, f := range fields {
			if !circuitbreaker.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != circuitbreaker.FieldID {
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
		_spec.SetField(circuitbreaker.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FailCount(); ok {
		_spec.SetField(circuitbreaker.FieldFailCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailCount(); ok {
		_spec.AddField(circuitbreaker.FieldFailCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Threshold(); ok {
		_spec.SetField(circuitbreaker.FieldThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedThreshold(); ok {
		_spec.AddField(circuitbreaker.FieldThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WindowStart(); ok {
		_spec.SetField(circuitbreaker.FieldWindowStart, field.TypeTime, value)
	}
	if _u.mutation.WindowStartCleared() {
		_spec.ClearField(circuitbreaker.FieldWindowStart, field.TypeTime)
	}
	if value, ok := _u.mutation.OpenedAt(); ok {
		_spec.SetField(circuitbreaker.FieldOpenedAt, field.TypeTime, value)
	}
	if _u.mutation.OpenedAtCleared() {
		_spec.ClearField(circuitbreaker.FieldOpenedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CooldownUntil(); ok {
		_spec.SetField(circuitbreaker.FieldCooldownUntil, field.TypeTime, value)
	}
	if _u.mutation.CooldownUntilCleared() {
		_spec.ClearField(circuitbreaker.FieldCooldownUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.CooldownS(); ok {
		_spec.SetField(circuitbreaker.FieldCooldownS, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCooldownS(); ok {
		_spec.AddField(circuitbreaker.FieldCooldownS, field.TypeInt, value)
	}
	_node = &CircuitBreaker{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{circuitbreaker.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
