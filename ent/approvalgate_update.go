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
	"github.com/forgeworks/metabuild/ent/predicate"
)

// ApprovalGateUpdate is the builder for updating ApprovalGate entities.
type ApprovalGateUpdate struct {
	config
	hooks    []Hook
	mutation *ApprovalGateMutation
}

// Where appends a list predicates to the ApprovalGateUpdate builder.
func (_u *ApprovalGateUpdate) Where(ps ...predicate.ApprovalGate) *ApprovalGateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDecision sets the "decision" field.
func (_u *ApprovalGateUpdate) SetDecision(v approvalgate.Decision) *ApprovalGateUpdate {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *ApprovalGateUpdate) SetNillableDecision(v *approvalgate.Decision) *ApprovalGateUpdate {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetDecider sets the "decider" field.
func (_u *ApprovalGateUpdate) SetDecider(v string) *ApprovalGateUpdate {
	_u.mutation.SetDecider(v)
	return _u
}

// SetNillableDecider sets the "decider" field if the given value is not nil.
func (_u *ApprovalGateUpdate) SetNillableDecider(v *string) *ApprovalGateUpdate {
	if v != nil {
		_u.SetDecider(*v)
	}
	return _u
}

// ClearDecider clears the value of the "decider" field.
func (_u *ApprovalGateUpdate) ClearDecider() *ApprovalGateUpdate {
	_u.mutation.ClearDecider()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *ApprovalGateUpdate) SetDecidedAt(v time.Time) *ApprovalGateUpdate {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *ApprovalGateUpdate) SetNillableDecidedAt(v *time.Time) *ApprovalGateUpdate {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *ApprovalGateUpdate) ClearDecidedAt() *ApprovalGateUpdate {
	_u.mutation.ClearDecidedAt()
	return _u
}

// Mutation returns the ApprovalGateMutation object of the builder.
func (_u *ApprovalGateUpdate) Mutation() *ApprovalGateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApprovalGateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalGateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApprovalGateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalGateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalGateUpdate) check() error {
	if v, ok := _u.mutation.Decision(); ok {
		if err := approvalgate.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "ApprovalGate.decision": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ApprovalGate.run"`)
	}
	return nil
}

func (_u *ApprovalGateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approvalgate.Table, approvalgate.Columns, sqlgraph.NewFieldSpec(approvalgate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(approvalgate.FieldDecision, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Decider(); ok {
		_spec.SetField(approvalgate.FieldDecider, field.TypeString, value)
	}
	if _u.mutation.DeciderCleared() {
		_spec.ClearField(approvalgate.FieldDecider, field.TypeString)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(approvalgate.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(approvalgate.FieldDecidedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approvalgate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApprovalGateUpdateOne is the builder for updating a single ApprovalGate entity.
type ApprovalGateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApprovalGateMutation
}

// SetDecision sets the "decision" field.
func (_u *ApprovalGateUpdateOne) SetDecision(v approvalgate.Decision) *ApprovalGateUpdateOne {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *ApprovalGateUpdateOne) SetNillableDecision(v *approvalgate.Decision) *ApprovalGateUpdateOne {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetDecider sets the "decider" field.
func (_u *ApprovalGateUpdateOne) SetDecider(v string) *ApprovalGateUpdateOne {
	_u.mutation.SetDecider(v)
	return _u
}

// SetNillableDecider sets the "decider" field if the given value is not nil.
func (_u *ApprovalGateUpdateOne) SetNillableDecider(v *string) *ApprovalGateUpdateOne {
	if v != nil {
		_u.SetDecider(*v)
	}
	return _u
}

// ClearDecider clears the value of the "decider" field.
func (_u *ApprovalGateUpdateOne) ClearDecider() *ApprovalGateUpdateOne {
	_u.mutation.ClearDecider()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *ApprovalGateUpdateOne) SetDecidedAt(v time.Time) *ApprovalGateUpdateOne {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *ApprovalGateUpdateOne) SetNillableDecidedAt(v *time.Time) *ApprovalGateUpdateOne {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *ApprovalGateUpdateOne) ClearDecidedAt() *ApprovalGateUpdateOne {
	_u.mutation.ClearDecidedAt()
	return _u
}

// Mutation returns the ApprovalGateMutation object of the builder.
func (_u *ApprovalGateUpdateOne) Mutation() *ApprovalGateMutation {
	return _u.mutation
}

// Where appends a list predicates to the ApprovalGateUpdate builder.
func (_u *ApprovalGateUpdateOne) Where(ps ...predicate.ApprovalGate) *ApprovalGateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApprovalGateUpdateOne) Select(field string, fields ...string) *ApprovalGateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ApprovalGate entity.
func (_u *ApprovalGateUpdateOne) Save(ctx context.Context) (*ApprovalGate, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalGateUpdateOne) SaveX(ctx context.Context) *ApprovalGate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApprovalGateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalGateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalGateUpdateOne) check() error {
	if v, ok := _u.mutation.Decision(); ok {
		if err := approvalgate.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "ApprovalGate.decision": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ApprovalGate.run"`)
	}
	return nil
}

func (_u *ApprovalGateUpdateOne) sqlSave(ctx context.Context) (_node *ApprovalGate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approvalgate.Table, approvalgate.Columns, sqlgraph.NewFieldSpec(approvalgate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ApprovalGate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, approvalgate.FieldID)
		for _, f := range fields {
			if !approvalgate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != approvalgate.FieldID {
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
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(approvalgate.FieldDecision, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Decider(); ok {
		_spec.SetField(approvalgate.FieldDecider, field.TypeString, value)
	}
	if _u.mutation.DeciderCleared() {
		_spec.ClearField(approvalgate.FieldDecider, field.TypeString)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(approvalgate.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(approvalgate.FieldDecidedAt, field.TypeTime)
	}
	_node = &ApprovalGate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approvalgate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
