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
	"github.com/forgeworks/metabuild/ent/budget"
	"github.com/forgeworks/metabuild/ent/run"
)

// BudgetCreate is the builder for creating a Budget entity.
type BudgetCreate struct {
	config
	mutation *BudgetMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenant sets the "tenant" field.
func (_c *BudgetCreate) SetTenant(v string) *BudgetCreate {
	_c.mutation.SetTenant(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *BudgetCreate) SetRunID(v string) *BudgetCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetCostLimitUsd sets the "cost_limit_usd" field.
func (_c *BudgetCreate) SetCostLimitUsd(v float64) *BudgetCreate {
	_c.mutation.SetCostLimitUsd(v)
	return _c
}

// SetCostUsedUsd sets the "cost_used_usd" field.
func (_c *BudgetCreate) SetCostUsedUsd(v float64) *BudgetCreate {
	_c.mutation.SetCostUsedUsd(v)
	return _c
}

// SetNillableCostUsedUsd sets the "cost_used_usd" field if the given value is not nil.
func (_c *BudgetCreate) SetNillableCostUsedUsd(v *float64) *BudgetCreate {
	if v != nil {
		_c.SetCostUsedUsd(*v)
	}
	return _c
}

// SetTimeLimitS sets the "time_limit_s" field.
func (_c *BudgetCreate) SetTimeLimitS(v int) *BudgetCreate {
	_c.mutation.SetTimeLimitS(v)
	return _c
}

// SetTimeUsedS sets the "time_used_s" field.
func (_c *BudgetCreate) SetTimeUsedS(v int) *BudgetCreate {
	_c.mutation.SetTimeUsedS(v)
	return _c
}

// SetNillableTimeUsedS sets the "time_used_s" field if the given value is not nil.
func (_c *BudgetCreate) SetNillableTimeUsedS(v *int) *BudgetCreate {
	if v != nil {
		_c.SetTimeUsedS(*v)
	}
	return _c
}

// SetAttemptLimit sets the "attempt_limit" field.
func (_c *BudgetCreate) SetAttemptLimit(v int) *BudgetCreate {
	_c.mutation.SetAttemptLimit(v)
	return _c
}

// SetAttemptUsed sets the "attempt_used" field.
func (_c *BudgetCreate) SetAttemptUsed(v int) *BudgetCreate {
	_c.mutation.SetAttemptUsed(v)
	return _c
}

// SetNillableAttemptUsed sets the "attempt_used" field if the given value is not nil.
func (_c *BudgetCreate) SetNillableAttemptUsed(v *int) *BudgetCreate {
	if v != nil {
		_c.SetAttemptUsed(*v)
	}
	return _c
}

// SetExceededAt sets the "exceeded_at" field.
func (_c *BudgetCreate) SetExceededAt(v time.Time) *BudgetCreate {
	_c.mutation.SetExceededAt(v)
	return _c
}

// SetNillableExceededAt sets the "exceeded_at" field if the given value is not nil.
func (_c *BudgetCreate) SetNillableExceededAt(v *time.Time) *BudgetCreate {
	if v != nil {
		_c.SetExceededAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BudgetCreate) SetID(v string) *BudgetCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *BudgetCreate) SetRun(v *Run) *BudgetCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the BudgetMutation object of the builder.
func (_c *BudgetCreate) Mutation() *BudgetMutation {
	return _c.mutation
}

// Save creates the Budget in the database.
func (_c *BudgetCreate) Save(ctx context.Context) (*Budget, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BudgetCreate) SaveX(ctx context.Context) *Budget {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BudgetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BudgetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BudgetCreate) defaults() {
	if _, ok := _c.mutation.CostUsedUsd(); !ok {
		v := budget.DefaultCostUsedUsd
		_c.mutation.SetCostUsedUsd(v)
	}
	if _, ok := _c.mutation.TimeUsedS(); !ok {
		v := budget.DefaultTimeUsedS
		_c.mutation.SetTimeUsedS(v)
	}
	if _, ok := _c.mutation.AttemptUsed(); !ok {
		v := budget.DefaultAttemptUsed
		_c.mutation.SetAttemptUsed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BudgetCreate) check() error {
	if _, ok := _c.mutation.Tenant(); !ok {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required field "Budget.tenant"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "Budget.run_id"`)}
	}
	if _, ok := _c.mutation.CostLimitUsd(); !ok {
		return &ValidationError{Name: "cost_limit_usd", err: errors.New(`ent: missing required field "Budget.cost_limit_usd"`)}
	}
	if _, ok := _c.mutation.CostUsedUsd(); !ok {
		return &ValidationError{Name: "cost_used_usd", err: errors.New(`ent: missing required field "Budget.cost_used_usd"`)}
	}
	if _, ok := _c.mutation.TimeLimitS(); !ok {
		return &ValidationError{Name: "time_limit_s", err: errors.New(`ent: missing required field "Budget.time_limit_s"`)}
	}
	if _, ok := _c.mutation.TimeUsedS(); !ok {
		return &ValidationError{Name: "time_used_s", err: errors.New(`ent: missing required field "Budget.time_used_s"`)}
	}
	if _, ok := _c.mutation.AttemptLimit(); !ok {
		return &ValidationError{Name: "attempt_limit", err: errors.New(`ent: missing required field "Budget.attempt_limit"`)}
	}
	if _, ok := _c.mutation.AttemptUsed(); !ok {
		return &ValidationError{Name: "attempt_used", err: errors.New(`ent: missing required field "Budget.attempt_used"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "Budget.run"`)}
	}
	return nil
}

func (_c *BudgetCreate) sqlSave(ctx context.Context) (*Budget, error) {
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
			return nil, fmt.Errorf("unexpected Budget.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BudgetCreate) createSpec() (*Budget, *sqlgraph.CreateSpec) {
	var (
		_node = &Budget{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(budget.Table, sqlgraph.NewFieldSpec(budget.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Tenant(); ok {
		_spec.SetField(budget.FieldTenant, field.TypeString, value)
		_node.Tenant = value
	}
	if value, ok := _c.mutation.CostLimitUsd(); ok {
		_spec.SetField(budget.FieldCostLimitUsd, field.TypeFloat64, value)
		_node.CostLimitUsd = value
	}
	if value, ok := _c.mutation.CostUsedUsd(); ok {
		_spec.SetField(budget.FieldCostUsedUsd, field.TypeFloat64, value)
		_node.CostUsedUsd = value
	}
	if value, ok := _c.mutation.TimeLimitS(); ok {
		_spec.SetField(budget.FieldTimeLimitS, field.TypeInt, value)
		_node.TimeLimitS = value
	}
	if value, ok := _c.mutation.TimeUsedS(); ok {
		_spec.SetField(budget.FieldTimeUsedS, field.TypeInt, value)
		_node.TimeUsedS = value
	}
	if value, ok := _c.mutation.AttemptLimit(); ok {
		_spec.SetField(budget.FieldAttemptLimit, field.TypeInt, value)
		_node.AttemptLimit = value
	}
	if value, ok := _c.mutation.AttemptUsed(); ok {
		_spec.SetField(budget.FieldAttemptUsed, field.TypeInt, value)
		_node.AttemptUsed = value
	}
	if value, ok := _c.mutation.ExceededAt(); ok {
		_spec.SetField(budget.FieldExceededAt, field.TypeTime, value)
		_node.ExceededAt = &value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   budget.RunTable,
			Columns: []string{budget.RunColumn},
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
//	client.Budget.Create().
//		SetTenant(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BudgetUpsert) {
//			SetTenant(v+v).
//		}).
//		Exec(ctx)
func (_c *BudgetCreate) OnConflict(opts ...sql.ConflictOption) *BudgetUpsertOne {
	_c.conflict = opts
	return &BudgetUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Budget.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BudgetCreate) OnConflictColumns(columns ...string) *BudgetUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BudgetUpsertOne{
		create: _c,
	}
}

type (
	// BudgetUpsertOne is the builder for "upsert"-ing
	//  one Budget node.
	BudgetUpsertOne struct {
		create *BudgetCreate
	}

	// BudgetUpsert is the "OnConflict" setter.
	BudgetUpsert struct {
		*sql.UpdateSet
	}
)

// SetCostUsedUsd sets the "cost_used_usd" field.
func (u *BudgetUpsert) SetCostUsedUsd(v float64) *BudgetUpsert {
	u.Set(budget.FieldCostUsedUsd, v)
	return u
}

// UpdateCostUsedUsd sets the "cost_used_usd" field to the value that was provided on create.
func (u *BudgetUpsert) UpdateCostUsedUsd() *BudgetUpsert {
	u.SetExcluded(budget.FieldCostUsedUsd)
	return u
}

// AddCostUsedUsd adds v to the "cost_used_usd" field.
func (u *BudgetUpsert) AddCostUsedUsd(v float64) *BudgetUpsert {
	u.Add(budget.FieldCostUsedUsd, v)
	return u
}

// SetTimeUsedS sets the "time_used_s" field.
func (u *BudgetUpsert) SetTimeUsedS(v int) *BudgetUpsert {
	u.Set(budget.FieldTimeUsedS, v)
	return u
}

// UpdateTimeUsedS sets the "time_used_s" field to the value that was provided on create.
func (u *BudgetUpsert) UpdateTimeUsedS() *BudgetUpsert {
	u.SetExcluded(budget.FieldTimeUsedS)
	return u
}

// AddTimeUsedS adds v to the "time_used_s" field.
func (u *BudgetUpsert) AddTimeUsedS(v int) *BudgetUpsert {
	u.Add(budget.FieldTimeUsedS, v)
	return u
}

// SetAttemptUsed sets the "attempt_used" field.
func (u *BudgetUpsert) SetAttemptUsed(v int) *BudgetUpsert {
	u.Set(budget.FieldAttemptUsed, v)
	return u
}

// UpdateAttemptUsed sets the "attempt_used" field to the value that was provided on create.
func (u *BudgetUpsert) UpdateAttemptUsed() *BudgetUpsert {
	u.SetExcluded(budget.FieldAttemptUsed)
	return u
}

// AddAttemptUsed adds v to the "attempt_used" field.
func (u *BudgetUpsert) AddAttemptUsed(v int) *BudgetUpsert {
	u.Add(budget.FieldAttemptUsed, v)
	return u
}

// SetExceededAt sets the "exceeded_at" field.
func (u *BudgetUpsert) SetExceededAt(v time.Time) *BudgetUpsert {
	u.Set(budget.FieldExceededAt, v)
	return u
}

// UpdateExceededAt sets the "exceeded_at" field to the value that was provided on create.
func (u *BudgetUpsert) UpdateExceededAt() *BudgetUpsert {
	u.SetExcluded(budget.FieldExceededAt)
	return u
}

// ClearExceededAt clears the value of the "exceeded_at" field.
func (u *BudgetUpsert) ClearExceededAt() *BudgetUpsert {
	u.SetNull(budget.FieldExceededAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Budget.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(budget.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BudgetUpsertOne) UpdateNewValues() *BudgetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(budget.FieldID)
		}
		if _, exists := u.create.mutation.Tenant(); exists {
			s.SetIgnore(budget.FieldTenant)
		}
		if _, exists := u.create.mutation.RunID(); exists {
			s.SetIgnore(budget.FieldRunID)
		}
		if _, exists := u.create.mutation.CostLimitUsd(); exists {
			s.SetIgnore(budget.FieldCostLimitUsd)
		}
		if _, exists := u.create.mutation.TimeLimitS(); exists {
			s.SetIgnore(budget.FieldTimeLimitS)
		}
		if _, exists := u.create.mutation.AttemptLimit(); exists {
			s.SetIgnore(budget.FieldAttemptLimit)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Budget.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BudgetUpsertOne) Ignore() *BudgetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BudgetUpsertOne) DoNothing() *BudgetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BudgetCreate.OnConflict
// documentation for more info.
func (u *BudgetUpsertOne) Update(set func(*BudgetUpsert)) *BudgetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BudgetUpsert{UpdateSet: update})
	}))
	return u
}

// SetCostUsedUsd sets the "cost_used_usd" field.
func (u *BudgetUpsertOne) SetCostUsedUsd(v float64) *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.SetCostUsedUsd(v)
	})
}

// AddCostUsedUsd adds v to the "cost_used_usd" field.
func (u *BudgetUpsertOne) AddCostUsedUsd(v float64) *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.AddCostUsedUsd(v)
	})
}

// UpdateCostUsedUsd sets the "cost_used_usd" field to the value that was provided on create.
func (u *BudgetUpsertOne) UpdateCostUsedUsd() *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdateCostUsedUsd()
	})
}

// SetTimeUsedS sets the "time_used_s" field.
func (u *BudgetUpsertOne) SetTimeUsedS(v int) *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.SetTimeUsedS(v)
	})
}

// AddTimeUsedS adds v to the "time_used_s" field.
func (u *BudgetUpsertOne) AddTimeUsedS(v int) *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.AddTimeUsedS(v)
	})
}

// UpdateTimeUsedS sets the "time_used_s" field to the value that was provided on create.
func (u *BudgetUpsertOne) UpdateTimeUsedS() *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdateTimeUsedS()
	})
}

// SetAttemptUsed sets the "attempt_used" field.
func (u *BudgetUpsertOne) SetAttemptUsed(v int) *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.SetAttemptUsed(v)
	})
}

// AddAttemptUsed adds v to the "attempt_used" field.
func (u *BudgetUpsertOne) AddAttemptUsed(v int) *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.AddAttemptUsed(v)
	})
}

// UpdateAttemptUsed sets the "attempt_used" field to the value that was provided on create.
func (u *BudgetUpsertOne) UpdateAttemptUsed() *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdateAttemptUsed()
	})
}

// SetExceededAt sets the "exceeded_at" field.
func (u *BudgetUpsertOne) SetExceededAt(v time.Time) *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.SetExceededAt(v)
	})
}

// UpdateExceededAt sets the "exceeded_at" field to the value that was provided on create.
func (u *BudgetUpsertOne) UpdateExceededAt() *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdateExceededAt()
	})
}

// ClearExceededAt clears the value of the "exceeded_at" field.
func (u *BudgetUpsertOne) ClearExceededAt() *BudgetUpsertOne {
	return u.Update(func(s *BudgetUpsert) {
		s.ClearExceededAt()
	})
}

// Exec executes the query.
func (u *BudgetUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BudgetCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BudgetUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BudgetUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: BudgetUpsertOne.ID is not supported by MySQL driver. Use BudgetUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BudgetUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BudgetCreateBulk is the builder for creating many Budget entities in bulk.
type BudgetCreateBulk struct {
	config
	err      error
	builders []*BudgetCreate
	conflict []sql.ConflictOption
}

// Save creates the Budget entities in the database.
func (_c *BudgetCreateBulk) Save(ctx context.Context) ([]*Budget, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Budget, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BudgetMutation)
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
func (_c *BudgetCreateBulk) SaveX(ctx context.Context) []*Budget {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BudgetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BudgetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Budget.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BudgetUpsert) {
//			SetTenant(v+v).
//		}).
//		Exec(ctx)
func (_c *BudgetCreateBulk) OnConflict(opts ...sql.ConflictOption) *BudgetUpsertBulk {
	_c.conflict = opts
	return &BudgetUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Budget.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BudgetCreateBulk) OnConflictColumns(columns ...string) *BudgetUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BudgetUpsertBulk{
		create: _c,
	}
}

// BudgetUpsertBulk is the builder for "upsert"-ing
// a bulk of Budget nodes.
type BudgetUpsertBulk struct {
	create *BudgetCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Budget.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(budget.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BudgetUpsertBulk) UpdateNewValues() *BudgetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(budget.FieldID)
			}
			if _, exists := b.mutation.Tenant(); exists {
				s.SetIgnore(budget.FieldTenant)
			}
			if _, exists := b.mutation.RunID(); exists {
				s.SetIgnore(budget.FieldRunID)
			}
			if _, exists := b.mutation.CostLimitUsd(); exists {
				s.SetIgnore(budget.FieldCostLimitUsd)
			}
			if _, exists := b.mutation.TimeLimitS(); exists {
				s.SetIgnore(budget.FieldTimeLimitS)
			}
			if _, exists := b.mutation.AttemptLimit(); exists {
				s.SetIgnore(budget.FieldAttemptLimit)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Budget.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BudgetUpsertBulk) Ignore() *BudgetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BudgetUpsertBulk) DoNothing() *BudgetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BudgetCreateBulk.OnConflict
// documentation for more info.
func (u *BudgetUpsertBulk) Update(set func(*BudgetUpsert)) *BudgetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BudgetUpsert{UpdateSet: update})
	}))
	return u
}

// SetCostUsedUsd sets the "cost_used_usd" field.
func (u *BudgetUpsertBulk) SetCostUsedUsd(v float64) *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.SetCostUsedUsd(v)
	})
}

// AddCostUsedUsd adds v to the "cost_used_usd" field.
func (u *BudgetUpsertBulk) AddCostUsedUsd(v float64) *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.AddCostUsedUsd(v)
	})
}

// UpdateCostUsedUsd sets the "cost_used_usd" field to the value that was provided on create.
func (u *BudgetUpsertBulk) UpdateCostUsedUsd() *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdateCostUsedUsd()
	})
}

// SetTimeUsedS sets the "time_used_s" field.
func (u *BudgetUpsertBulk) SetTimeUsedS(v int) *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.SetTimeUsedS(v)
	})
}

// AddTimeUsedS adds v to the "time_used_s" field.
func (u *BudgetUpsertBulk) AddTimeUsedS(v int) *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.AddTimeUsedS(v)
	})
}

// UpdateTimeUsedS sets the "time_used_s" field to the value that was provided on create.
func (u *BudgetUpsertBulk) UpdateTimeUsedS() *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdateTimeUsedS()
	})
}

// SetAttemptUsed sets the "attempt_used" field.
func (u *BudgetUpsertBulk) SetAttemptUsed(v int) *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.SetAttemptUsed(v)
	})
}

// AddAttemptUsed adds v to the "attempt_used" field.
func (u *BudgetUpsertBulk) AddAttemptUsed(v int) *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.AddAttemptUsed(v)
	})
}

// UpdateAttemptUsed sets the "attempt_used" field to the value that was provided on create.
func (u *BudgetUpsertBulk) UpdateAttemptUsed() *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdateAttemptUsed()
	})
}

// SetExceededAt sets the "exceeded_at" field.
func (u *BudgetUpsertBulk) SetExceededAt(v time.Time) *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.SetExceededAt(v)
	})
}

// UpdateExceededAt sets the "exceeded_at" field to the value that was provided on create.
func (u *BudgetUpsertBulk) UpdateExceededAt() *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.UpdateExceededAt()
	})
}

// ClearExceededAt clears the value of the "exceeded_at" field.
func (u *BudgetUpsertBulk) ClearExceededAt() *BudgetUpsertBulk {
	return u.Update(func(s *BudgetUpsert) {
		s.ClearExceededAt()
	})
}

// Exec executes the query.
func (u *BudgetUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BudgetCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BudgetCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BudgetUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
