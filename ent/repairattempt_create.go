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
	"github.com/forgeworks/metabuild/ent/repairattempt"
	"github.com/forgeworks/metabuild/ent/run"
)

// RepairAttemptCreate is the builder for creating a RepairAttempt entity.
type RepairAttemptCreate struct {
	config
	mutation *RepairAttemptMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenant sets the "tenant" field.
func (_c *RepairAttemptCreate) SetTenant(v string) *RepairAttemptCreate {
	_c.mutation.SetTenant(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *RepairAttemptCreate) SetRunID(v string) *RepairAttemptCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetFailureID sets the "failure_id" field.
func (_c *RepairAttemptCreate) SetFailureID(v string) *RepairAttemptCreate {
	_c.mutation.SetFailureID(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *RepairAttemptCreate) SetPhase(v repairattempt.Phase) *RepairAttemptCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetStrategy sets the "strategy" field.
func (_c *RepairAttemptCreate) SetStrategy(v string) *RepairAttemptCreate {
	_c.mutation.SetStrategy(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *RepairAttemptCreate) SetOutcome(v repairattempt.Outcome) *RepairAttemptCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_c *RepairAttemptCreate) SetNillableOutcome(v *repairattempt.Outcome) *RepairAttemptCreate {
	if v != nil {
		_c.SetOutcome(*v)
	}
	return _c
}

// SetBackoffUsedMs sets the "backoff_used_ms" field.
func (_c *RepairAttemptCreate) SetBackoffUsedMs(v int) *RepairAttemptCreate {
	_c.mutation.SetBackoffUsedMs(v)
	return _c
}

// SetNillableBackoffUsedMs sets the "backoff_used_ms" field if the given value is not nil.
func (_c *RepairAttemptCreate) SetNillableBackoffUsedMs(v *int) *RepairAttemptCreate {
	if v != nil {
		_c.SetBackoffUsedMs(*v)
	}
	return _c
}

// SetDiffRef sets the "diff_ref" field.
func (_c *RepairAttemptCreate) SetDiffRef(v string) *RepairAttemptCreate {
	_c.mutation.SetDiffRef(v)
	return _c
}

// SetNillableDiffRef sets the "diff_ref" field if the given value is not nil.
func (_c *RepairAttemptCreate) SetNillableDiffRef(v *string) *RepairAttemptCreate {
	if v != nil {
		_c.SetDiffRef(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RepairAttemptCreate) SetCreatedAt(v time.Time) *RepairAttemptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RepairAttemptCreate) SetNillableCreatedAt(v *time.Time) *RepairAttemptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RepairAttemptCreate) SetID(v string) *RepairAttemptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *RepairAttemptCreate) SetRun(v *Run) *RepairAttemptCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the RepairAttemptMutation object of the builder.
func (_c *RepairAttemptCreate) Mutation() *RepairAttemptMutation {
	return _c.mutation
}

// Save creates the RepairAttempt in the database.
func (_c *RepairAttemptCreate) Save(ctx context.Context) (*RepairAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RepairAttemptCreate) SaveX(ctx context.Context) *RepairAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RepairAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RepairAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RepairAttemptCreate) defaults() {
	if _, ok := _c.mutation.Outcome(); !ok {
		v := repairattempt.DefaultOutcome
		_c.mutation.SetOutcome(v)
	}
	if _, ok := _c.mutation.BackoffUsedMs(); !ok {
		v := repairattempt.DefaultBackoffUsedMs
		_c.mutation.SetBackoffUsedMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := repairattempt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RepairAttemptCreate) check() error {
	if _, ok := _c.mutation.Tenant(); !ok {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required field "RepairAttempt.tenant"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "RepairAttempt.run_id"`)}
	}
	if _, ok := _c.mutation.FailureID(); !ok {
		return &ValidationError{Name: "failure_id", err: errors.New(`ent: missing required field "RepairAttempt.failure_id"`)}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "RepairAttempt.phase"`)}
	}
	if v, ok := _c.mutation.Phase(); ok {
		if err := repairattempt.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "RepairAttempt.phase": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Strategy(); !ok {
		return &ValidationError{Name: "strategy", err: errors.New(`ent: missing required field "RepairAttempt.strategy"`)}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "RepairAttempt.outcome"`)}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := repairattempt.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "RepairAttempt.outcome": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BackoffUsedMs(); !ok {
		return &ValidationError{Name: "backoff_used_ms", err: errors.New(`ent: missing required field "RepairAttempt.backoff_used_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RepairAttempt.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "RepairAttempt.run"`)}
	}
	return nil
}

func (_c *RepairAttemptCreate) sqlSave(ctx context.Context) (*RepairAttempt, error) {
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
			return nil, fmt.Errorf("unexpected RepairAttempt.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RepairAttemptCreate) createSpec() (*RepairAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &RepairAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(repairattempt.Table, sqlgraph.NewFieldSpec(repairattempt.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Tenant(); ok {
		_spec.SetField(repairattempt.FieldTenant, field.TypeString, value)
		_node.Tenant = value
	}
	if value, ok := _c.mutation.FailureID(); ok {
		_spec.SetField(repairattempt.FieldFailureID, field.TypeString, value)
		_node.FailureID = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(repairattempt.FieldPhase, field.TypeEnum, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.Strategy(); ok {
		_spec.SetField(repairattempt.FieldStrategy, field.TypeString, value)
		_node.Strategy = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(repairattempt.FieldOutcome, field.TypeEnum, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.BackoffUsedMs(); ok {
		_spec.SetField(repairattempt.FieldBackoffUsedMs, field.TypeInt, value)
		_node.BackoffUsedMs = value
	}
	if value, ok := _c.mutation.DiffRef(); ok {
		_spec.SetField(repairattempt.FieldDiffRef, field.TypeString, value)
		_node.DiffRef = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(repairattempt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   repairattempt.RunTable,
			Columns: []string{repairattempt.RunColumn},
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
//	client.RepairAttempt.Create().
//		SetTenant(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RepairAttemptUpsert) {
//			SetTenant(v+v).
//		}).
//		Exec(ctx)
func (_c *RepairAttemptCreate) OnConflict(opts ...sql.ConflictOption) *RepairAttemptUpsertOne {
	_c.conflict = opts
	return &RepairAttemptUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RepairAttempt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RepairAttemptCreate) OnConflictColumns(columns ...string) *RepairAttemptUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RepairAttemptUpsertOne{
		create: _c,
	}
}

type (
	// RepairAttemptUpsertOne is the builder for "upsert"-ing
	//  one RepairAttempt node.
	RepairAttemptUpsertOne struct {
		create *RepairAttemptCreate
	}

	// RepairAttemptUpsert is the "OnConflict" setter.
	RepairAttemptUpsert struct {
		*sql.UpdateSet
	}
)

// SetOutcome sets the "outcome" field.
func (u *RepairAttemptUpsert) SetOutcome(v repairattempt.Outcome) *RepairAttemptUpsert {
	u.Set(repairattempt.FieldOutcome, v)
	return u
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *RepairAttemptUpsert) UpdateOutcome() *RepairAttemptUpsert {
	u.SetExcluded(repairattempt.FieldOutcome)
	return u
}

// SetBackoffUsedMs sets the "backoff_used_ms" field.
func (u *RepairAttemptUpsert) SetBackoffUsedMs(v int) *RepairAttemptUpsert {
	u.Set(repairattempt.FieldBackoffUsedMs, v)
	return u
}

// UpdateBackoffUsedMs sets the "backoff_used_ms" field to the value that was provided on create.
func (u *RepairAttemptUpsert) UpdateBackoffUsedMs() *RepairAttemptUpsert {
	u.SetExcluded(repairattempt.FieldBackoffUsedMs)
	return u
}

// AddBackoffUsedMs adds v to the "backoff_used_ms" field.
func (u *RepairAttemptUpsert) AddBackoffUsedMs(v int) *RepairAttemptUpsert {
	u.Add(repairattempt.FieldBackoffUsedMs, v)
	return u
}

// SetDiffRef sets the "diff_ref" field.
func (u *RepairAttemptUpsert) SetDiffRef(v string) *RepairAttemptUpsert {
	u.Set(repairattempt.FieldDiffRef, v)
	return u
}

// UpdateDiffRef sets the "diff_ref" field to the value that was provided on create.
func (u *RepairAttemptUpsert) UpdateDiffRef() *RepairAttemptUpsert {
	u.SetExcluded(repairattempt.FieldDiffRef)
	return u
}

// ClearDiffRef clears the value of the "diff_ref" field.
func (u *RepairAttemptUpsert) ClearDiffRef() *RepairAttemptUpsert {
	u.SetNull(repairattempt.FieldDiffRef)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RepairAttempt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(repairattempt.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RepairAttemptUpsertOne) UpdateNewValues() *RepairAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(repairattempt.FieldID)
		}
		if _, exists := u.create.mutation.Tenant(); exists {
			s.SetIgnore(repairattempt.FieldTenant)
		}
		if _, exists := u.create.mutation.RunID(); exists {
			s.SetIgnore(repairattempt.FieldRunID)
		}
		if _, exists := u.create.mutation.FailureID(); exists {
			s.SetIgnore(repairattempt.FieldFailureID)
		}
		if _, exists := u.create.mutation.Phase(); exists {
			s.SetIgnore(repairattempt.FieldPhase)
		}
		if _, exists := u.create.mutation.Strategy(); exists {
			s.SetIgnore(repairattempt.FieldStrategy)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(repairattempt.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RepairAttempt.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RepairAttemptUpsertOne) Ignore() *RepairAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RepairAttemptUpsertOne) DoNothing() *RepairAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RepairAttemptCreate.OnConflict
// documentation for more info.
func (u *RepairAttemptUpsertOne) Update(set func(*RepairAttemptUpsert)) *RepairAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RepairAttemptUpsert{UpdateSet: update})
	}))
	return u
}

// SetOutcome sets the "outcome" field.
func (u *RepairAttemptUpsertOne) SetOutcome(v repairattempt.Outcome) *RepairAttemptUpsertOne {
	return u.Update(func(s *RepairAttemptUpsert) {
		s.SetOutcome(v)
	})
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *RepairAttemptUpsertOne) UpdateOutcome() *RepairAttemptUpsertOne {
	return u.Update(func(s *RepairAttemptUpsert) {
		s.UpdateOutcome()
	})
}

// SetBackoffUsedMs sets the "backoff_used_ms" field.
func (u *RepairAttemptUpsertOne) SetBackoffUsedMs(v int) *RepairAttemptUpsertOne {
	return u.Update(func(s *RepairAttemptUpsert) {
		s.SetBackoffUsedMs(v)
	})
}

// AddBackoffUsedMs adds v to the "backoff_used_ms" field.
func (u *RepairAttemptUpsertOne) AddBackoffUsedMs(v int) *RepairAttemptUpsertOne {
	return u.Update(func(s *RepairAttemptUpsert) {
		s.AddBackoffUsedMs(v)
	})
}

// UpdateBackoffUsedMs sets the "backoff_used_ms" field to the value that was provided on create.
func (u *RepairAttemptUpsertOne) UpdateBackoffUsedMs() *RepairAttemptUpsertOne {
	return u.Update(func(s *RepairAttemptUpsert) {
		s.UpdateBackoffUsedMs()
	})
}

// SetDiffRef sets the "diff_ref" field.
func (u *RepairAttemptUpsertOne) SetDiffRef(v string) *RepairAttemptUpsertOne {
	return u.Update(func(s *RepairAttemptUpsert) {
		s.SetDiffRef(v)
	})
}

// UpdateDiffRef sets the "diff_ref" field to the value that was provided on create.
func (u *RepairAttemptUpsertOne) UpdateDiffRef() *RepairAttemptUpsertOne {
	return u.Update(func(s *RepairAttemptUpsert) {
		s.UpdateDiffRef()
	})
}

// ClearDiffRef clears the value of the "diff_ref" field.
func (u *RepairAttemptUpsertOne) ClearDiffRef() *RepairAttemptUpsertOne {
	return u.Update(func(s *RepairAttemptUpsert) {
		s.ClearDiffRef()
	})
}

// Exec executes the query.
func (u *RepairAttemptUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RepairAttemptCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RepairAttemptUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RepairAttemptUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RepairAttemptUpsertOne.ID is not supported by MySQL driver. Use RepairAttemptUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RepairAttemptUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RepairAttemptCreateBulk is the builder for creating many RepairAttempt entities in bulk.
type RepairAttemptCreateBulk struct {
	config
	err      error
	builders []*RepairAttemptCreate
	conflict []sql.ConflictOption
}

// Save creates the RepairAttempt entities in the database.
func (_c *RepairAttemptCreateBulk) Save(ctx context.Context) ([]*RepairAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RepairAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RepairAttemptMutation)
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
func (_c *RepairAttemptCreateBulk) SaveX(ctx context.Context) []*RepairAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RepairAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RepairAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RepairAttempt.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RepairAttemptUpsert) {
//			SetTenant(v+v).
//		}).
//		Exec(ctx)
func (_c *RepairAttemptCreateBulk) OnConflict(opts ...sql.ConflictOption) *RepairAttemptUpsertBulk {
	_c.conflict = opts
	return &RepairAttemptUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RepairAttempt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RepairAttemptCreateBulk) OnConflictColumns(columns ...string) *RepairAttemptUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RepairAttemptUpsertBulk{
		create: _c,
	}
}

// RepairAttemptUpsertBulk is the builder for "upsert"-ing
// a bulk of RepairAttempt nodes.
type RepairAttemptUpsertBulk struct {
	create *RepairAttemptCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RepairAttempt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(repairattempt.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RepairAttemptUpsertBulk) UpdateNewValues() *RepairAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(repairattempt.FieldID)
			}
			if _, exists := b.mutation.Tenant(); exists {
				s.SetIgnore(repairattempt.FieldTenant)
			}
			if _, exists := b.mutation.RunID(); exists {
				s.SetIgnore(repairattempt.FieldRunID)
			}
			if _, exists := b.mutation.FailureID(); exists {
				s.SetIgnore(repairattempt.FieldFailureID)
			}
			if _, exists := b.mutation.Phase(); exists {
				s.SetIgnore(repairattempt.FieldPhase)
			}
			if _, exists := b.mutation.Strategy(); exists {
				s.SetIgnore(repairattempt.FieldStrategy)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(repairattempt.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RepairAttempt.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RepairAttemptUpsertBulk) Ignore() *RepairAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RepairAttemptUpsertBulk) DoNothing() *RepairAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RepairAttemptCreateBulk.OnConflict
// documentation for more info.
func (u *RepairAttemptUpsertBulk) Update(set func(*RepairAttemptUpsert)) *RepairAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RepairAttemptUpsert{UpdateSet: update})
	}))
	return u
}

// SetOutcome sets the "outcome" field.
func (u *RepairAttemptUpsertBulk) SetOutcome(v repairattempt.Outcome) *RepairAttemptUpsertBulk {
	return u.Update(func(s *RepairAttemptUpsert) {
		s.SetOutcome(v)
	})
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *RepairAttemptUpsertBulk) UpdateOutcome() *RepairAttemptUpsertBulk {
	return u.Update(func(s *RepairAttemptUpsert) {
		s.UpdateOutcome()
	})
}

// SetBackoffUsedMs sets the "backoff_used_ms" field.
func (u *RepairAttemptUpsertBulk) SetBackoffUsedMs(v int) *RepairAttemptUpsertBulk {
	return u.Update(func(s *RepairAttemptUpsert) {
		s.SetBackoffUsedMs(v)
	})
}

// AddBackoffUsedMs adds v to the "backoff_used_ms" field.
func (u *RepairAttemptUpsertBulk) AddBackoffUsedMs(v int) *RepairAttemptUpsertBulk {
	return u.Update(func(s *RepairAttemptUpsert) {
		s.AddBackoffUsedMs(v)
	})
}

// UpdateBackoffUsedMs sets the "backoff_used_ms" field to the value that was provided on create.
func (u *RepairAttemptUpsertBulk) UpdateBackoffUsedMs() *RepairAttemptUpsertBulk {
	return u.Update(func(s *RepairAttemptUpsert) {
		s.UpdateBackoffUsedMs()
	})
}

// SetDiffRef sets the "diff_ref" field.
func (u *RepairAttemptUpsertBulk) SetDiffRef(v string) *RepairAttemptUpsertBulk {
	return u.Update(func(s *RepairAttemptUpsert) {
		s.SetDiffRef(v)
	})
}

// UpdateDiffRef sets the "diff_ref" field to the value that was provided on create.
func (u *RepairAttemptUpsertBulk) UpdateDiffRef() *RepairAttemptUpsertBulk {
	return u.Update(func(s *RepairAttemptUpsert) {
		s.UpdateDiffRef()
	})
}

// ClearDiffRef clears the value of the "diff_ref" field.
func (u *RepairAttemptUpsertBulk) ClearDiffRef() *RepairAttemptUpsertBulk {
	return u.Update(func(s *RepairAttemptUpsert) {
		s.ClearDiffRef()
	})
}

// Exec executes the query.
func (u *RepairAttemptUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RepairAttemptCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RepairAttemptCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RepairAttemptUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
