// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeworks/metabuild/ent/predicate"
	"github.com/forgeworks/metabuild/ent/repairattempt"
)

// RepairAttemptUpdate is the builder for updating RepairAttempt entities.
type RepairAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *RepairAttemptMutation
}

// Where appends a list predicates to the RepairAttemptUpdate builder.
func (_u *RepairAttemptUpdate) Where(ps ...predicate.RepairAttempt) *RepairAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *RepairAttemptUpdate) SetOutcome(v repairattempt.Outcome) *RepairAttemptUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *RepairAttemptUpdate) SetNillableOutcome(v *repairattempt.Outcome) *RepairAttemptUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetBackoffUsedMs sets the "backoff_used_ms" field.
func (_u *RepairAttemptUpdate) SetBackoffUsedMs(v int) *RepairAttemptUpdate {
	_u.mutation.ResetBackoffUsedMs()
	_u.mutation.SetBackoffUsedMs(v)
	return _u
}

// SetNillableBackoffUsedMs sets the "backoff_used_ms" field if the given value is not nil.
func (_u *RepairAttemptUpdate) SetNillableBackoffUsedMs(v *int) *RepairAttemptUpdate {
	if v != nil {
		_u.SetBackoffUsedMs(*v)
	}
	return _u
}

// AddBackoffUsedMs adds value to the "backoff_used_ms" field.
func (_u *RepairAttemptUpdate) AddBackoffUsedMs(v int) *RepairAttemptUpdate {
	_u.mutation.AddBackoffUsedMs(v)
	return _u
}

// SetDiffRef sets the "diff_ref" field.
func (_u *RepairAttemptUpdate) SetDiffRef(v string) *RepairAttemptUpdate {
	_u.mutation.SetDiffRef(v)
	return _u
}

// SetNillableDiffRef sets the "diff_ref" field if the given value is not nil.
func (_u *RepairAttemptUpdate) SetNillableDiffRef(v *string) *RepairAttemptUpdate {
	if v != nil {
		_u.SetDiffRef(*v)
	}
	return _u
}

// ClearDiffRef clears the value of the "diff_ref" field.
func (_u *RepairAttemptUpdate) ClearDiffRef() *RepairAttemptUpdate {
	_u.mutation.ClearDiffRef()
	return _u
}

// Mutation returns the RepairAttemptMutation object of the builder.
func (_u *RepairAttemptUpdate) Mutation() *RepairAttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RepairAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RepairAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RepairAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RepairAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RepairAttemptUpdate) check() error {
	if v, ok := _u.mutation.Outcome(); ok {
		if err := repairattempt.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "RepairAttempt.outcome": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RepairAttempt.run"`)
	}
	return nil
}

func (_u *RepairAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(repairattempt.Table, repairattempt.Columns, sqlgraph.NewFieldSpec(repairattempt.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(repairattempt.FieldOutcome, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BackoffUsedMs(); ok {
		_spec.SetField(repairattempt.FieldBackoffUsedMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBackoffUsedMs(); ok {
		_spec.AddField(repairattempt.FieldBackoffUsedMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DiffRef(); ok {
		_spec.SetField(repairattempt.FieldDiffRef, field.TypeString, value)
	}
	if _u.mutation.DiffRefCleared() {
		_spec.ClearField(repairattempt.FieldDiffRef, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{repairattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RepairAttemptUpdateOne is the builder for updating a single RepairAttempt entity.
type RepairAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RepairAttemptMutation
}

// SetOutcome sets the "outcome" field.
func (_u *RepairAttemptUpdateOne) SetOutcome(v repairattempt.Outcome) *RepairAttemptUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *RepairAttemptUpdateOne) SetNillableOutcome(v *repairattempt.Outcome) *RepairAttemptUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetBackoffUsedMs sets the "backoff_used_ms" field.
func (_u *RepairAttemptUpdateOne) SetBackoffUsedMs(v int) *RepairAttemptUpdateOne {
	_u.mutation.ResetBackoffUsedMs()
	_u.mutation.SetBackoffUsedMs(v)
	return _u
}

// SetNillableBackoffUsedMs sets the "backoff_used_ms" field if the given value is not nil.
func (_u *RepairAttemptUpdateOne) SetNillableBackoffUsedMs(v *int) *RepairAttemptUpdateOne {
	if v != nil {
		_u.SetBackoffUsedMs(*v)
	}
	return _u
}

// AddBackoffUsedMs adds value to the "backoff_used_ms" field.
func (_u *RepairAttemptUpdateOne) AddBackoffUsedMs(v int) *RepairAttemptUpdateOne {
	_u.mutation.AddBackoffUsedMs(v)
	return _u
}

// SetDiffRef sets the "diff_ref" field.
func (_u *RepairAttemptUpdateOne) SetDiffRef(v string) *RepairAttemptUpdateOne {
	_u.mutation.SetDiffRef(v)
	return _u
}

// SetNillableDiffRef sets the "diff_ref" field if the given value is not nil.
func (_u *RepairAttemptUpdateOne) SetNillableDiffRef(v *string) *RepairAttemptUpdateOne {
	if v != nil {
		_u.SetDiffRef(*v)
	}
	return _u
}

// ClearDiffRef clears the value of the "diff_ref" field.
func (_u *RepairAttemptUpdateOne) ClearDiffRef() *RepairAttemptUpdateOne {
	_u.mutation.ClearDiffRef()
	return _u
}

// Mutation returns the RepairAttemptMutation object of the builder.
func (_u *RepairAttemptUpdateOne) Mutation() *RepairAttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the RepairAttemptUpdate builder.
func (_u *RepairAttemptUpdateOne) Where(ps ...predicate.RepairAttempt) *RepairAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RepairAttemptUpdateOne) Select(field string, fields ...string) *RepairAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RepairAttempt entity.
func (_u *RepairAttemptUpdateOne) Save(ctx context.Context) (*RepairAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RepairAttemptUpdateOne) SaveX(ctx context.Context) *RepairAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RepairAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RepairAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RepairAttemptUpdateOne) check() error {
	if v, ok := _u.mutation.Outcome(); ok {
		if err := repairattempt.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "RepairAttempt.outcome": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RepairAttempt.run"`)
	}
	return nil
}

func (_u *RepairAttemptUpdateOne) sqlSave(ctx context.Context) (_node *RepairAttempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(repairattempt.Table, repairattempt.Columns, sqlgraph.NewFieldSpec(repairattempt.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RepairAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, repairattempt.FieldID)
		for _, f := range fields {
			if !repairattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != repairattempt.FieldID {
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
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(repairattempt.FieldOutcome, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BackoffUsedMs(); ok {
		_spec.SetField(repairattempt.FieldBackoffUsedMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBackoffUsedMs(); ok {
		_spec.AddField(repairattempt.FieldBackoffUsedMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DiffRef(); ok {
		_spec.SetField(repairattempt.FieldDiffRef, field.TypeString, value)
	}
	if _u.mutation.DiffRefCleared() {
		_spec.ClearField(repairattempt.FieldDiffRef, field.TypeString)
	}
	_node = &RepairAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{repairattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
