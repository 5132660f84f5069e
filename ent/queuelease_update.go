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
	"github.com/forgeworks/metabuild/ent/predicate"
	"github.com/forgeworks/metabuild/ent/queuelease"
)

// QueueLeaseUpdate is the builder for updating QueueLease entities.
type QueueLeaseUpdate struct {
	config
	hooks    []Hook
	mutation *QueueLeaseMutation
}

// Where appends a list predicates to the QueueLeaseUpdate builder.
func (_u *QueueLeaseUpdate) Where(ps ...predicate.QueueLease) *QueueLeaseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *QueueLeaseUpdate) SetExpiresAt(v time.Time) *QueueLeaseUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *QueueLeaseUpdate) SetNillableExpiresAt(v *time.Time) *QueueLeaseUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *QueueLeaseUpdate) SetLastHeartbeat(v time.Time) *QueueLeaseUpdate {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *QueueLeaseUpdate) SetNillableLastHeartbeat(v *time.Time) *QueueLeaseUpdate {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// Mutation returns the QueueLeaseMutation object of the builder.
func (_u *QueueLeaseUpdate) Mutation() *QueueLeaseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QueueLeaseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueLeaseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QueueLeaseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueLeaseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueueLeaseUpdate) check() error {
	if _u.mutation.StepCleared() && len(_u.mutation.StepIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QueueLease.step"`)
	}
	return nil
}

func (_u *QueueLeaseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(queuelease.Table, queuelease.Columns, sqlgraph.NewFieldSpec(queuelease.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(queuelease.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(queuelease.FieldLastHeartbeat, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queuelease.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QueueLeaseUpdateOne is the builder for updating a single QueueLease entity.
type QueueLeaseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QueueLeaseMutation
}

// SetExpiresAt sets the "expires_at" field.
func (_u *QueueLeaseUpdateOne) SetExpiresAt(v time.Time) *QueueLeaseUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *QueueLeaseUpdateOne) SetNillableExpiresAt(v *time.Time) *QueueLeaseUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *QueueLeaseUpdateOne) SetLastHeartbeat(v time.Time) *QueueLeaseUpdateOne {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *QueueLeaseUpdateOne) SetNillableLastHeartbeat(v *time.Time) *QueueLeaseUpdateOne {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// Mutation returns the QueueLeaseMutation object of the builder.
func (_u *QueueLeaseUpdateOne) Mutation() *QueueLeaseMutation {
	return _u.mutation
}

// Where appends a list predicates to the QueueLeaseUpdate builder.
func (_u *QueueLeaseUpdateOne) Where(ps ...predicate.QueueLease) *QueueLeaseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QueueLeaseUpdateOne) Select(field string, fields ...string) *QueueLeaseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QueueLease entity.
func (_u *QueueLeaseUpdateOne) Save(ctx context.Context) (*QueueLease, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueLeaseUpdateOne) SaveX(ctx context.Context) *QueueLease {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QueueLeaseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueLeaseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueueLeaseUpdateOne) check() error {
	if _u.mutation.StepCleared() && len(_u.mutation.StepIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QueueLease.step"`)
	}
	return nil
}

func (_u *QueueLeaseUpdateOne) sqlSave(ctx context.Context) (_node *QueueLease, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(queuelease.Table, queuelease.Columns, sqlgraph.NewFieldSpec(queuelease.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QueueLease.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, queuelease.FieldID)
		for _, f := range fields {
			if !queuelease.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != queuelease.FieldID {
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
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(queuelease.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(queuelease.FieldLastHeartbeat, field.TypeTime, value)
	}
	_node = &QueueLease{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queuelease.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
