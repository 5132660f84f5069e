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
	"github.com/forgeworks/metabuild/ent/run"
)

// ApprovalGateCreate is the builder for creating a ApprovalGate entity.
type ApprovalGateCreate struct {
	config
	mutation *ApprovalGateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenant sets the "tenant" field.
func (_c *ApprovalGateCreate) SetTenant(v string) *ApprovalGateCreate {
	_c.mutation.SetTenant(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *ApprovalGateCreate) SetRunID(v string) *ApprovalGateCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *ApprovalGateCreate) SetReason(v string) *ApprovalGateCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetRequiredRole sets the "required_role" field.
func (_c *ApprovalGateCreate) SetRequiredRole(v string) *ApprovalGateCreate {
	_c.mutation.SetRequiredRole(v)
	return _c
}

// SetDecision sets the "decision" field.
func (_c *ApprovalGateCreate) SetDecision(v approvalgate.Decision) *ApprovalGateCreate {
	_c.mutation.SetDecision(v)
	return _c
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_c *ApprovalGateCreate) SetNillableDecision(v *approvalgate.Decision) *ApprovalGateCreate {
	if v != nil {
		_c.SetDecision(*v)
	}
	return _c
}

// SetDecider sets the "decider" field.
func (_c *ApprovalGateCreate) SetDecider(v string) *ApprovalGateCreate {
	_c.mutation.SetDecider(v)
	return _c
}

// SetNillableDecider sets the "decider" field if the given value is not nil.
func (_c *ApprovalGateCreate) SetNillableDecider(v *string) *ApprovalGateCreate {
	if v != nil {
		_c.SetDecider(*v)
	}
	return _c
}

// SetDecidedAt sets the "decided_at" field.
func (_c *ApprovalGateCreate) SetDecidedAt(v time.Time) *ApprovalGateCreate {
	_c.mutation.SetDecidedAt(v)
	return _c
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_c *ApprovalGateCreate) SetNillableDecidedAt(v *time.Time) *ApprovalGateCreate {
	if v != nil {
		_c.SetDecidedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApprovalGateCreate) SetCreatedAt(v time.Time) *ApprovalGateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApprovalGateCreate) SetNillableCreatedAt(v *time.Time) *ApprovalGateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApprovalGateCreate) SetID(v string) *ApprovalGateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *ApprovalGateCreate) SetRun(v *Run) *ApprovalGateCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the ApprovalGateMutation object of the builder.
func (_c *ApprovalGateCreate) Mutation() *ApprovalGateMutation {
	return _c.mutation
}

// Save creates the ApprovalGate in the database.
func (_c *ApprovalGateCreate) Save(ctx context.Context) (*ApprovalGate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApprovalGateCreate) SaveX(ctx context.Context) *ApprovalGate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalGateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalGateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApprovalGateCreate) defaults() {
	if _, ok := _c.mutation.Decision(); !ok {
		v := approvalgate.DefaultDecision
		_c.mutation.SetDecision(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := approvalgate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApprovalGateCreate) check() error {
	if _, ok := _c.mutation.Tenant(); !ok {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required field "ApprovalGate.tenant"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "ApprovalGate.run_id"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "ApprovalGate.reason"`)}
	}
	if _, ok := _c.mutation.RequiredRole(); !ok {
		return &ValidationError{Name: "required_role", err: errors.New(`ent: missing required field "ApprovalGate.required_role"`)}
	}
	if _, ok := _c.mutation.Decision(); !ok {
		return &ValidationError{Name: "decision", err: errors.New(`ent: missing required field "ApprovalGate.decision"`)}
	}
	if v, ok := _c.mutation.Decision(); ok {
		if err := approvalgate.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "ApprovalGate.decision": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ApprovalGate.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "ApprovalGate.run"`)}
	}
	return nil
}

func (_c *ApprovalGateCreate) sqlSave(ctx context.Context) (*ApprovalGate, error) {
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
			return nil, fmt.Errorf("unexpected ApprovalGate.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApprovalGateCreate) createSpec() (*ApprovalGate, *sqlgraph.CreateSpec) {
	var (
		_node = &ApprovalGate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(approvalgate.Table, sqlgraph.NewFieldSpec(approvalgate.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Tenant(); ok {
		_spec.SetField(approvalgate.FieldTenant, field.TypeString, value)
		_node.Tenant = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(approvalgate.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.RequiredRole(); ok {
		_spec.SetField(approvalgate.FieldRequiredRole, field.TypeString, value)
		_node.RequiredRole = value
	}
	if value, ok := _c.mutation.Decision(); ok {
		_spec.SetField(approvalgate.FieldDecision, field.TypeEnum, value)
		_node.Decision = value
	}
	if value, ok := _c.mutation.Decider(); ok {
		_spec.SetField(approvalgate.FieldDecider, field.TypeString, value)
		_node.Decider = &value
	}
	if value, ok := _c.mutation.DecidedAt(); ok {
		_spec.SetField(approvalgate.FieldDecidedAt, field.TypeTime, value)
		_node.DecidedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(approvalgate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   approvalgate.RunTable,
			Columns: []string{approvalgate.RunColumn},
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
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ApprovalGate.Create().
//		SetTenant(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ApprovalGateUpsert) {
//			SetTenant(v+v).
//		}).
//		Exec(ctx)
func (_c *ApprovalGateCreate) OnConflict(opts ...sql.ConflictOption) *ApprovalGateUpsertOne {
	_c.conflict = opts
	return &ApprovalGateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ApprovalGate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ApprovalGateCreate) OnConflictColumns(columns ...string) *ApprovalGateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ApprovalGateUpsertOne{
		create: _c,
	}
}

type (
	// ApprovalGateUpsertOne is the builder for "upsert"-ing
	//  one ApprovalGate node.
	ApprovalGateUpsertOne struct {
		create *ApprovalGateCreate
	}

	// ApprovalGateUpsert is the "OnConflict" setter.
	ApprovalGateUpsert struct {
		*sql.UpdateSet
	}
)

// SetDecision sets the "decision" field.
func (u *ApprovalGateUpsert) SetDecision(v approvalgate.Decision) *ApprovalGateUpsert {
	u.Set(approvalgate.FieldDecision, v)
	return u
}

// UpdateDecision sets the "decision" field to the value that was provided on create.
func (u *ApprovalGateUpsert) UpdateDecision() *ApprovalGateUpsert {
	u.SetExcluded(approvalgate.FieldDecision)
	return u
}

// SetDecider sets the "decider" field.
func (u *ApprovalGateUpsert) SetDecider(v string) *ApprovalGateUpsert {
	u.Set(approvalgate.FieldDecider, v)
	return u
}

// UpdateDecider sets the "decider" field to the value that was provided on create.
func (u *ApprovalGateUpsert) UpdateDecider() *ApprovalGateUpsert {
	u.SetExcluded(approvalgate.FieldDecider)
	return u
}

// ClearDecider clears the value of the "decider" field.
func (u *ApprovalGateUpsert) ClearDecider() *ApprovalGateUpsert {
	u.SetNull(approvalgate.FieldDecider)
	return u
}

// SetDecidedAt sets the "decided_at" field.
func (u *ApprovalGateUpsert) SetDecidedAt(v time.Time) *ApprovalGateUpsert {
	u.Set(approvalgate.FieldDecidedAt, v)
	return u
}

// UpdateDecidedAt sets the "decided_at" field to the value that was provided on create.
func (u *ApprovalGateUpsert) UpdateDecidedAt() *ApprovalGateUpsert {
	u.SetExcluded(approvalgate.FieldDecidedAt)
	return u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (u *ApprovalGateUpsert) ClearDecidedAt() *ApprovalGateUpsert {
	u.SetNull(approvalgate.FieldDecidedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ApprovalGate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(approvalgate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ApprovalGateUpsertOne) UpdateNewValues() *ApprovalGateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(approvalgate.FieldID)
		}
		if _, exists := u.create.mutation.Tenant(); exists {
			s.SetIgnore(approvalgate.FieldTenant)
		}
		if _, exists := u.create.mutation.RunID(); exists {
			s.SetIgnore(approvalgate.FieldRunID)
		}
		if _, exists := u.create.mutation.Reason(); exists {
			s.SetIgnore(approvalgate.FieldReason)
		}
		if _, exists := u.create.mutation.RequiredRole(); exists {
			s.SetIgnore(approvalgate.FieldRequiredRole)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(approvalgate.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ApprovalGate.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ApprovalGateUpsertOne) Ignore() *ApprovalGateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ApprovalGateUpsertOne) DoNothing() *ApprovalGateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ApprovalGateCreate.OnConflict
// documentation for more info.
func (u *ApprovalGateUpsertOne) Update(set func(*ApprovalGateUpsert)) *ApprovalGateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ApprovalGateUpsert{UpdateSet: update})
	}))
	return u
}

// SetDecision sets the "decision" field.
func (u *ApprovalGateUpsertOne) SetDecision(v approvalgate.Decision) *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.SetDecision(v)
	})
}

// UpdateDecision sets the "decision" field to the value that was provided on create.
func (u *ApprovalGateUpsertOne) UpdateDecision() *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.UpdateDecision()
	})
}

// SetDecider sets the "decider" field.
func (u *ApprovalGateUpsertOne) SetDecider(v string) *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.SetDecider(v)
	})
}

// UpdateDecider sets the "decider" field to the value that was provided on create.
func (u *ApprovalGateUpsertOne) UpdateDecider() *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.UpdateDecider()
	})
}

// ClearDecider clears the value of the "decider" field.
func (u *ApprovalGateUpsertOne) ClearDecider() *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.ClearDecider()
	})
}

// SetDecidedAt sets the "decided_at" field.
func (u *ApprovalGateUpsertOne) SetDecidedAt(v time.Time) *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.SetDecidedAt(v)
	})
}

// UpdateDecidedAt sets the "decided_at" field to the value that was provided on create.
func (u *ApprovalGateUpsertOne) UpdateDecidedAt() *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.UpdateDecidedAt()
	})
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (u *ApprovalGateUpsertOne) ClearDecidedAt() *ApprovalGateUpsertOne {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.ClearDecidedAt()
	})
}

// Exec executes the query.
func (u *ApprovalGateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ApprovalGateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ApprovalGateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ApprovalGateUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ApprovalGateUpsertOne.ID is not supported by MySQL driver. Use ApprovalGateUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ApprovalGateUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ApprovalGateCreateBulk is the builder for creating many ApprovalGate entities in bulk.
type ApprovalGateCreateBulk struct {
	config
	err      error
	builders []*ApprovalGateCreate
	conflict []sql.ConflictOption
}

// Save creates the ApprovalGate entities in the database.
func (_c *ApprovalGateCreateBulk) Save(ctx context.Context) ([]*ApprovalGate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ApprovalGate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApprovalGateMutation)
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
func (_c *ApprovalGateCreateBulk) SaveX(ctx context.Context) []*ApprovalGate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalGateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalGateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ApprovalGate.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ApprovalGateUpsert) {
//			SetTenant(v+v).
//		}).
//		Exec(ctx)
func (_c *ApprovalGateCreateBulk) OnConflict(opts ...sql.ConflictOption) *ApprovalGateUpsertBulk {
	_c.conflict = opts
	return &ApprovalGateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ApprovalGate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ApprovalGateCreateBulk) OnConflictColumns(columns ...string) *ApprovalGateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ApprovalGateUpsertBulk{
		create: _c,
	}
}

// ApprovalGateUpsertBulk is the builder for "upsert"-ing
// a bulk of ApprovalGate nodes.
type ApprovalGateUpsertBulk struct {
	create *ApprovalGateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ApprovalGate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(approvalgate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ApprovalGateUpsertBulk) UpdateNewValues() *ApprovalGateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(approvalgate.FieldID)
			}
			if _, exists := b.mutation.Tenant(); exists {
				s.SetIgnore(approvalgate.FieldTenant)
			}
			if _, exists := b.mutation.RunID(); exists {
				s.SetIgnore(approvalgate.FieldRunID)
			}
			if _, exists := b.mutation.Reason(); exists {
				s.SetIgnore(approvalgate.FieldReason)
			}
			if _, exists := b.mutation.RequiredRole(); exists {
				s.SetIgnore(approvalgate.FieldRequiredRole)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(approvalgate.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ApprovalGate.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ApprovalGateUpsertBulk) Ignore() *ApprovalGateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ApprovalGateUpsertBulk) DoNothing() *ApprovalGateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ApprovalGateCreateBulk.OnConflict
// documentation for more info.
func (u *ApprovalGateUpsertBulk) Update(set func(*ApprovalGateUpsert)) *ApprovalGateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ApprovalGateUpsert{UpdateSet: update})
	}))
	return u
}

// SetDecision sets the "decision" field.
func (u *ApprovalGateUpsertBulk) SetDecision(v approvalgate.Decision) *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.SetDecision(v)
	})
}

// UpdateDecision sets the "decision" field to the value that was provided on create.
func (u *ApprovalGateUpsertBulk) UpdateDecision() *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.UpdateDecision()
	})
}

// SetDecider sets the "decider" field.
func (u *ApprovalGateUpsertBulk) SetDecider(v string) *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.SetDecider(v)
	})
}

// UpdateDecider sets the "decider" field to the value that was provided on create.
func (u *ApprovalGateUpsertBulk) UpdateDecider() *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.UpdateDecider()
	})
}

// ClearDecider clears the value of the "decider" field.
func (u *ApprovalGateUpsertBulk) ClearDecider() *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.ClearDecider()
	})
}

// SetDecidedAt sets the "decided_at" field.
func (u *ApprovalGateUpsertBulk) SetDecidedAt(v time.Time) *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.SetDecidedAt(v)
	})
}

// UpdateDecidedAt sets the "decided_at" field to the value that was provided on create.
func (u *ApprovalGateUpsertBulk) UpdateDecidedAt() *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.UpdateDecidedAt()
	})
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (u *ApprovalGateUpsertBulk) ClearDecidedAt() *ApprovalGateUpsertBulk {
	return u.Update(func(s *ApprovalGateUpsert) {
		s.ClearDecidedAt()
	})
}

// Exec executes the query.
func (u *ApprovalGateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ApprovalGateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ApprovalGateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ApprovalGateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
