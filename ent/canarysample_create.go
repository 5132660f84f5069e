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
	"github.com/forgeworks/metabuild/ent/canarysample"
	"github.com/forgeworks/metabuild/ent/run"
)

// CanarySampleCreate is the builder for creating a CanarySample entity.
type CanarySampleCreate struct {
	config
	mutation *CanarySampleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenant sets the "tenant" field.
func (_c *CanarySampleCreate) SetTenant(v string) *CanarySampleCreate {
	_c.mutation.SetTenant(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *CanarySampleCreate) SetRunID(v string) *CanarySampleCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetGroup sets the "group" field.
func (_c *CanarySampleCreate) SetGroup(v canarysample.Group) *CanarySampleCreate {
	_c.mutation.SetGroup(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *CanarySampleCreate) SetSuccess(v bool) *CanarySampleCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetCostUsd sets the "cost_usd" field.
func (_c *CanarySampleCreate) SetCostUsd(v float64) *CanarySampleCreate {
	_c.mutation.SetCostUsd(v)
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *CanarySampleCreate) SetDurationMs(v int64) *CanarySampleCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *CanarySampleCreate) SetRetryCount(v int) *CanarySampleCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetReplanCount sets the "replan_count" field.
func (_c *CanarySampleCreate) SetReplanCount(v int) *CanarySampleCreate {
	_c.mutation.SetReplanCount(v)
	return _c
}

// SetRollbackCount sets the "rollback_count" field.
func (_c *CanarySampleCreate) SetRollbackCount(v int) *CanarySampleCreate {
	_c.mutation.SetRollbackCount(v)
	return _c
}

// SetRecordedAt sets the "recorded_at" field.
func (_c *CanarySampleCreate) SetRecordedAt(v time.Time) *CanarySampleCreate {
	_c.mutation.SetRecordedAt(v)
	return _c
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_c *CanarySampleCreate) SetNillableRecordedAt(v *time.Time) *CanarySampleCreate {
	if v != nil {
		_c.SetRecordedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CanarySampleCreate) SetID(v string) *CanarySampleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *CanarySampleCreate) SetRun(v *Run) *CanarySampleCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the CanarySampleMutation object of the builder.
func (_c *CanarySampleCreate) Mutation() *CanarySampleMutation {
	return _c.mutation
}

// Save creates the CanarySample in the database.
func (_c *CanarySampleCreate) Save(ctx context.Context) (*CanarySample, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CanarySampleCreate) SaveX(ctx context.Context) *CanarySample {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CanarySampleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CanarySampleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CanarySampleCreate) defaults() {
	if _, ok := _c.mutation.RecordedAt(); !ok {
		v := canarysample.DefaultRecordedAt()
		_c.mutation.SetRecordedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CanarySampleCreate) check() error {
	if _, ok := _c.mutation.Tenant(); !ok {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required field "CanarySample.tenant"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "CanarySample.run_id"`)}
	}
	if _, ok := _c.mutation.Group(); !ok {
		return &ValidationError{Name: "group", err: errors.New(`ent: missing required field "CanarySample.group"`)}
	}
	if v, ok := _c.mutation.Group(); ok {
		if err := canarysample.GroupValidator(v); err != nil {
			return &ValidationError{Name: "group", err: fmt.Errorf(`ent: validator failed for field "CanarySample.group": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "CanarySample.success"`)}
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		return &ValidationError{Name: "cost_usd", err: errors.New(`ent: missing required field "CanarySample.cost_usd"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "CanarySample.duration_ms"`)}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "CanarySample.retry_count"`)}
	}
	if _, ok := _c.mutation.ReplanCount(); !ok {
		return &ValidationError{Name: "replan_count", err: errors.New(`ent: missing required field "CanarySample.replan_count"`)}
	}
	if _, ok := _c.mutation.RollbackCount(); !ok {
		return &ValidationError{Name: "rollback_count", err: errors.New(`ent: missing required field "CanarySample.rollback_count"`)}
	}
	if _, ok := _c.mutation.RecordedAt(); !ok {
		return &ValidationError{Name: "recorded_at", err: errors.New(`ent: missing required field "CanarySample.recorded_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "CanarySample.run"`)}
	}
	return nil
}

func (_c *CanarySampleCreate) sqlSave(ctx context.Context) (*CanarySample, error) {
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
			return nil, fmt.Errorf("unexpected CanarySample.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CanarySampleCreate) createSpec() (*CanarySample, *sqlgraph.CreateSpec) {
	var (
		_node = &CanarySample{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(canarysample.Table, sqlgraph.NewFieldSpec(canarysample.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Tenant(); ok {
		_spec.SetField(canarysample.FieldTenant, field.TypeString, value)
		_node.Tenant = value
	}
	if value, ok := _c.mutation.Group(); ok {
		_spec.SetField(canarysample.FieldGroup, field.TypeEnum, value)
		_node.Group = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(canarysample.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.CostUsd(); ok {
		_spec.SetField(canarysample.FieldCostUsd, field.TypeFloat64, value)
		_node.CostUsd = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(canarysample.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(canarysample.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.ReplanCount(); ok {
		_spec.SetField(canarysample.FieldReplanCount, field.TypeInt, value)
		_node.ReplanCount = value
	}
	if value, ok := _c.mutation.RollbackCount(); ok {
		_spec.SetField(canarysample.FieldRollbackCount, field.TypeInt, value)
		_node.RollbackCount = value
	}
	if value, ok := _c.mutation.RecordedAt(); ok {
		_spec.SetField(canarysample.FieldRecordedAt, field.TypeTime, value)
		_node.RecordedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   canarysample.RunTable,
			Columns: []string{canarysample.RunColumn},
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
//	client.CanarySample.Create().
//		SetTenant(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CanarySampleUpsert) {
//			SetTenant(v+v).
//		}).
//		Exec(ctx)
func (_c *CanarySampleCreate) OnConflict(opts ...sql.ConflictOption) *CanarySampleUpsertOne {
	_c.conflict = opts
	return &CanarySampleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CanarySample.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CanarySampleCreate) OnConflictColumns(columns ...string) *CanarySampleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CanarySampleUpsertOne{
		create: _c,
	}
}

type (
	// CanarySampleUpsertOne is the builder for "upsert"-ing
	//  one CanarySample node.
	CanarySampleUpsertOne struct {
		create *CanarySampleCreate
	}

	// CanarySampleUpsert is the "OnConflict" setter.
	CanarySampleUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CanarySample.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(canarysample.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CanarySampleUpsertOne) UpdateNewValues() *CanarySampleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(canarysample.FieldID)
		}
		if _, exists := u.create.mutation.Tenant(); exists {
			s.SetIgnore(canarysample.FieldTenant)
		}
		if _, exists := u.create.mutation.RunID(); exists {
			s.SetIgnore(canarysample.FieldRunID)
		}
		if _, exists := u.create.mutation.Group(); exists {
			s.SetIgnore(canarysample.FieldGroup)
		}
		if _, exists := u.create.mutation.Success(); exists {
			s.SetIgnore(canarysample.FieldSuccess)
		}
		if _, exists := u.create.mutation.CostUsd(); exists {
			s.SetIgnore(canarysample.FieldCostUsd)
		}
		if _, exists := u.create.mutation.DurationMs(); exists {
			s.SetIgnore(canarysample.FieldDurationMs)
		}
		if _, exists := u.create.mutation.RetryCount(); exists {
			s.SetIgnore(canarysample.FieldRetryCount)
		}
		if _, exists := u.create.mutation.ReplanCount(); exists {
			s.SetIgnore(canarysample.FieldReplanCount)
		}
		if _, exists := u.create.mutation.RollbackCount(); exists {
			s.SetIgnore(canarysample.FieldRollbackCount)
		}
		if _, exists := u.create.mutation.RecordedAt(); exists {
			s.SetIgnore(canarysample.FieldRecordedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CanarySample.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CanarySampleUpsertOne) Ignore() *CanarySampleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CanarySampleUpsertOne) DoNothing() *CanarySampleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CanarySampleCreate.OnConflict
// documentation for more info.
func (u *CanarySampleUpsertOne) Update(set func(*CanarySampleUpsert)) *CanarySampleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CanarySampleUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *CanarySampleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CanarySampleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CanarySampleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CanarySampleUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CanarySampleUpsertOne.ID is not supported by MySQL driver. Use CanarySampleUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CanarySampleUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CanarySampleCreateBulk is the builder for creating many CanarySample entities in bulk.
type CanarySampleCreateBulk struct {
	config
	err      error
	builders []*CanarySampleCreate
	conflict []sql.ConflictOption
}

// Save creates the CanarySample entities in the database.
func (_c *CanarySampleCreateBulk) Save(ctx context.Context) ([]*CanarySample, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CanarySample, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CanarySampleMutation)
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
func (_c *CanarySampleCreateBulk) SaveX(ctx context.Context) []*CanarySample {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CanarySampleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CanarySampleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CanarySample.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CanarySampleUpsert) {
//			SetTenant(v+v).
//		}).
//		Exec(ctx)
func (_c *CanarySampleCreateBulk) OnConflict(opts ...sql.ConflictOption) *CanarySampleUpsertBulk {
	_c.conflict = opts
	return &CanarySampleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CanarySample.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CanarySampleCreateBulk) OnConflictColumns(columns ...string) *CanarySampleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CanarySampleUpsertBulk{
		create: _c,
	}
}

// CanarySampleUpsertBulk is the builder for "upsert"-ing
// a bulk of CanarySample nodes.
type CanarySampleUpsertBulk struct {
	create *CanarySampleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CanarySample.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(canarysample.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CanarySampleUpsertBulk) UpdateNewValues() *CanarySampleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(canarysample.FieldID)
			}
			if _, exists := b.mutation.Tenant(); exists {
				s.SetIgnore(canarysample.FieldTenant)
			}
			if _, exists := b.mutation.RunID(); exists {
				s.SetIgnore(canarysample.FieldRunID)
			}
			if _, exists := b.mutation.Group(); exists {
				s.SetIgnore(canarysample.FieldGroup)
			}
			if _, exists := b.mutation.Success(); exists {
				s.SetIgnore(canarysample.FieldSuccess)
			}
			if _, exists := b.mutation.CostUsd(); exists {
				s.SetIgnore(canarysample.FieldCostUsd)
			}
			if _, exists := b.mutation.DurationMs(); exists {
				s.SetIgnore(canarysample.FieldDurationMs)
			}
			if _, exists := b.mutation.RetryCount(); exists {
				s.SetIgnore(canarysample.FieldRetryCount)
			}
			if _, exists := b.mutation.ReplanCount(); exists {
				s.SetIgnore(canarysample.FieldReplanCount)
			}
			if _, exists := b.mutation.RollbackCount(); exists {
				s.SetIgnore(canarysample.FieldRollbackCount)
			}
			if _, exists := b.mutation.RecordedAt(); exists {
				s.SetIgnore(canarysample.FieldRecordedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CanarySample.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CanarySampleUpsertBulk) Ignore() *CanarySampleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CanarySampleUpsertBulk) DoNothing() *CanarySampleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CanarySampleCreateBulk.OnConflict
// documentation for more info.
func (u *CanarySampleUpsertBulk) Update(set func(*CanarySampleUpsert)) *CanarySampleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CanarySampleUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *CanarySampleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CanarySampleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CanarySampleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CanarySampleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
