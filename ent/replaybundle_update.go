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
	"github.com/forgeworks/metabuild/ent/replaybundle"
)

// ReplayBundleUpdate is the builder for updating ReplayBundle entities.
type ReplayBundleUpdate struct {
	config
	hooks    []Hook
	mutation *ReplayBundleMutation
}

// Where appends a list predicates to the ReplayBundleUpdate builder.
func (_u *ReplayBundleUpdate) Where(ps ...predicate.ReplayBundle) *ReplayBundleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReplayedOk sets the "replayed_ok" field.
func (_u *ReplayBundleUpdate) SetReplayedOk(v bool) *ReplayBundleUpdate {
	_u.mutation.SetReplayedOk(v)
	return _u
}

// SetNillableReplayedOk sets the "replayed_ok" field if the given value is not nil.
func (_u *ReplayBundleUpdate) SetNillableReplayedOk(v *bool) *ReplayBundleUpdate {
	if v != nil {
		_u.SetReplayedOk(*v)
	}
	return _u
}

// ClearReplayedOk clears the value of the "replayed_ok" field.
func (_u *ReplayBundleUpdate) ClearReplayedOk() *ReplayBundleUpdate {
	_u.mutation.ClearReplayedOk()
	return _u
}

// Mutation returns the ReplayBundleMutation object of the builder.
func (_u *ReplayBundleUpdate) Mutation() *ReplayBundleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReplayBundleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReplayBundleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReplayBundleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReplayBundleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReplayBundleUpdate) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReplayBundle.run"`)
	}
	return nil
}

func (_u *ReplayBundleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(replaybundle.Table, replaybundle.Columns, sqlgraph.NewFieldSpec(replaybundle.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ReplayedOk(); ok {
		_spec.SetField(replaybundle.FieldReplayedOk, field.TypeBool, value)
	}
	if _u.mutation.ReplayedOkCleared() {
		_spec.ClearField(replaybundle.FieldReplayedOk, field.TypeBool)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{replaybundle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReplayBundleUpdateOne is the builder for updating a single ReplayBundle entity.
type ReplayBundleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReplayBundleMutation
}

// SetReplayedOk sets the "replayed_ok" field.
func (_u *ReplayBundleUpdateOne) SetReplayedOk(v bool) *ReplayBundleUpdateOne {
	_u.mutation.SetReplayedOk(v)
	return _u
}

// SetNillableReplayedOk sets the "replayed_ok" field if the given value is not nil.
func (_u *ReplayBundleUpdateOne) SetNillableReplayedOk(v *bool) *ReplayBundleUpdateOne {
	if v != nil {
		_u.SetReplayedOk(*v)
	}
	return _u
}

// ClearReplayedOk clears the value of the "replayed_ok" field.
func (_u *ReplayBundleUpdateOne) ClearReplayedOk() *ReplayBundleUpdateOne {
	_u.mutation.ClearReplayedOk()
	return _u
}

// Mutation returns the ReplayBundleMutation object of the builder.
func (_u *ReplayBundleUpdateOne) Mutation() *ReplayBundleMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReplayBundleUpdate builder.
func (_u *ReplayBundleUpdateOne) Where(ps ...predicate.ReplayBundle) *ReplayBundleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReplayBundleUpdateOne) Select(field string, fields ...string) *ReplayBundleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReplayBundle entity.
func (_u *ReplayBundleUpdateOne) Save(ctx context.Context) (*ReplayBundle, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReplayBundleUpdateOne) SaveX(ctx context.Context) *ReplayBundle {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReplayBundleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReplayBundleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReplayBundleUpdateOne) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReplayBundle.run"`)
	}
	return nil
}

func (_u *ReplayBundleUpdateOne) sqlSave(ctx context.Context) (_node *ReplayBundle, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(replaybundle.Table, replaybundle.Columns, sqlgraph.NewFieldSpec(replaybundle.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReplayBundle.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, replaybundle.FieldID)
		for _, f := range fields {
			if !replaybundle.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != replaybundle.FieldID {
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
	if value, ok := _u.mutation.ReplayedOk(); ok {
		_spec.SetField(replaybundle.FieldReplayedOk, field.TypeBool, value)
	}
	if _u.mutation.ReplayedOkCleared() {
		_spec.ClearField(replaybundle.FieldReplayedOk, field.TypeBool)
	}
	_node = &ReplayBundle{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{replaybundle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
