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
	"github.com/forgeworks/metabuild/ent/failure"
	"github.com/forgeworks/metabuild/ent/run"
	"github.com/forgeworks/metabuild/ent/step"
)

// FailureCreate is the builder for creating a Failure entity.
type FailureCreate struct {
	config
	mutation *FailureMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenant sets the "tenant" field.
func (_c *FailureCreate) SetTenant(v string) *FailureCreate {
	_c.mutation.SetTenant(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *FailureCreate) SetRunID(v string) *FailureCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetStepID sets the "step_id" field.
func (_c *FailureCreate) SetStepID(v string) *FailureCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetClass sets the "class" field.
func (_c *FailureCreate) SetClass(v failure.Class) *FailureCreate {
	_c.mutation.SetClass(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *FailureCreate) SetConfidence(v float64) *FailureCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetLogExcerpt sets the "log_excerpt" field.
func (_c *FailureCreate) SetLogExcerpt(v string) *FailureCreate {
	_c.mutation.SetLogExcerpt(v)
	return _c
}

// SetRetryable sets the "retryable" field.
func (_c *FailureCreate) SetRetryable(v bool) *FailureCreate {
	_c.mutation.SetRetryable(v)
	return _c
}

// SetRequiresReplan sets the "requires_replan" field.
func (_c *FailureCreate) SetRequiresReplan(v bool) *FailureCreate {
	_c.mutation.SetRequiresReplan(v)
	return _c
}

// SetNillableRequiresReplan sets the "requires_replan" field if the given value is not nil.
func (_c *FailureCreate) SetNillableRequiresReplan(v *bool) *FailureCreate {
	if v != nil {
		_c.SetRequiresReplan(*v)
	}
	return _c
}

// SetRequiresHuman sets the "requires_human" field.
func (_c *FailureCreate) SetRequiresHuman(v bool) *FailureCreate {
	_c.mutation.SetRequiresHuman(v)
	return _c
}

// SetNillableRequiresHuman sets the "requires_human" field if the given value is not nil.
func (_c *FailureCreate) SetNillableRequiresHuman(v *bool) *FailureCreate {
	if v != nil {
		_c.SetRequiresHuman(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FailureCreate) SetCreatedAt(v time.Time) *FailureCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FailureCreate) SetNillableCreatedAt(v *time.Time) *FailureCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FailureCreate) SetID(v string) *FailureCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *FailureCreate) SetRun(v *Run) *FailureCreate {
	return _c.SetRunID(v.ID)
}

// SetStep sets the "step" edge to the Step entity.
func (_c *FailureCreate) SetStep(v *Step) *FailureCreate {
	return _c.SetStepID(v.ID)
}

// Mutation returns the FailureMutation object of the builder.
func (_c *FailureCreate) Mutation() *FailureMutation {
	return _c.mutation
}

// Save creates the Failure in the database.
func (_c *FailureCreate) Save(ctx context.Context) (*Failure, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FailureCreate) SaveX(ctx context.Context) *Failure {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FailureCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FailureCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FailureCreate) defaults() {
	if _, ok := _c.mutation.RequiresReplan(); !ok {
		v := failure.DefaultRequiresReplan
		_c.mutation.SetRequiresReplan(v)
	}
	if _, ok := _c.mutation.RequiresHuman(); !ok {
		v := failure.DefaultRequiresHuman
		_c.mutation.SetRequiresHuman(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := failure.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FailureCreate) check() error {
	if _, ok := _c.mutation.Tenant(); !ok {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required field "Failure.tenant"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "Failure.run_id"`)}
	}
	if _, ok := _c.mutation.StepID(); !ok {
		return &ValidationError{Name: "step_id", err: errors.New(`ent: missing required field "Failure.step_id"`)}
	}
	if _, ok := _c.mutation.Class(); !ok {
		return &ValidationError{Name: "class", err: errors.New(`ent: missing required field "Failure.class"`)}
	}
	if v, ok := _c.mutation.Class(); ok {
		if err := failure.ClassValidator(v); err != nil {
			return &ValidationError{Name: "class", err: fmt.Errorf(`ent: validator failed for field "Failure.class": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Failure.confidence"`)}
	}
	if _, ok := _c.mutation.LogExcerpt(); !ok {
		return &ValidationError{Name: "log_excerpt", err: errors.New(`ent: missing required field "Failure.log_excerpt"`)}
	}
	if _, ok := _c.mutation.Retryable(); !ok {
		return &ValidationError{Name: "retryable", err: errors.New(`ent: missing required field "Failure.retryable"`)}
	}
	if _, ok := _c.mutation.RequiresReplan(); !ok {
		return &ValidationError{Name: "requires_replan", err: errors.New(`ent: missing required field "Failure.requires_replan"`)}
	}
	if _, ok := _c.mutation.RequiresHuman(); !ok {
		return &ValidationError{Name: "requires_human", err: errors.New(`ent: missing required field "Failure.requires_human"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Failure.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "Failure.run"`)}
	}
	if len(_c.mutation.StepIDs()) == 0 {
		return &ValidationError{Name: "step", err: errors.New(`ent: missing required edge "Failure.step"`)}
	}
	return nil
}

func (_c *FailureCreate) sqlSave(ctx context.Context) (*Failure, error) {
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
			return nil, fmt.Errorf("unexpected Failure.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FailureCreate) createSpec() (*Failure, *sqlgraph.CreateSpec) {
	var (
		_node = &Failure{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(failure.Table, sqlgraph.NewFieldSpec(failure.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Tenant(); ok {
		_spec.SetField(failure.FieldTenant, field.TypeString, value)
		_node.Tenant = value
	}
	if value, ok := _c.mutation.Class(); ok {
		_spec.SetField(failure.FieldClass, field.TypeEnum, value)
		_node.Class = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(failure.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.LogExcerpt(); ok {
		_spec.SetField(failure.FieldLogExcerpt, field.TypeString, value)
		_node.LogExcerpt = value
	}
	if value, ok := _c.mutation.Retryable(); ok {
		_spec.SetField(failure.FieldRetryable, field.TypeBool, value)
		_node.Retryable = value
	}
	if value, ok := _c.mutation.RequiresReplan(); ok {
		_spec.SetField(failure.FieldRequiresReplan, field.TypeBool, value)
		_node.RequiresReplan = value
	}
	if value, ok := _c.mutation.RequiresHuman(); ok {
		_spec.SetField(failure.FieldRequiresHuman, field.TypeBool, value)
		_node.RequiresHuman = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(failure.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   failure.RunTable,
			Columns: []string{failure.RunColumn},
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
	if nodes := _c.mutation.StepIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   failure.StepTable,
			Columns: []string{failure.StepColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.StepID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Failure.Create().
//		SetTenant(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FailureUpsert) {
//			SetTenant(v+v).
//		}).
//		Exec(ctx)
func (_c *FailureCreate) OnConflict(opts ...sql.ConflictOption) *FailureUpsertOne {
	_c.conflict = opts
	return &FailureUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Failure.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FailureCreate) OnConflictColumns(columns ...string) *FailureUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FailureUpsertOne{
		create: _c,
	}
}

type (
	// FailureUpsertOne is the builder for "upsert"-ing
	//  one Failure node.
	FailureUpsertOne struct {
		create *FailureCreate
	}

	// FailureUpsert is the "OnConflict" setter.
	FailureUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Failure.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(failure.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FailureUpsertOne) UpdateNewValues() *FailureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(failure.FieldID)
		}
		if _, exists := u.create.mutation.Tenant(); exists {
			s.SetIgnore(failure.FieldTenant)
		}
		if _, exists := u.create.mutation.RunID(); exists {
			s.SetIgnore(failure.FieldRunID)
		}
		if _, exists := u.create.mutation.StepID(); exists {
			s.SetIgnore(failure.FieldStepID)
		}
		if _, exists := u.create.mutation.Class(); exists {
			s.SetIgnore(failure.FieldClass)
		}
		if _, exists := u.create.mutation.Confidence(); exists {
			s.SetIgnore(failure.FieldConfidence)
		}
		if _, exists := u.create.mutation.LogExcerpt(); exists {
			s.SetIgnore(failure.FieldLogExcerpt)
		}
		if _, exists := u.create.mutation.Retryable(); exists {
			s.SetIgnore(failure.FieldRetryable)
		}
		if _, exists := u.create.mutation.RequiresReplan(); exists {
			s.SetIgnore(failure.FieldRequiresReplan)
		}
		if _, exists := u.create.mutation.RequiresHuman(); exists {
			s.SetIgnore(failure.FieldRequiresHuman)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(failure.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Failure.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FailureUpsertOne) Ignore() *FailureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FailureUpsertOne) DoNothing() *FailureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FailureCreate.OnConflict
// documentation for more info.
func (u *FailureUpsertOne) Update(set func(*FailureUpsert)) *FailureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FailureUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *FailureUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FailureCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FailureUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FailureUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: FailureUpsertOne.ID is not supported by MySQL driver. Use FailureUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FailureUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FailureCreateBulk is the builder for creating many Failure entities in bulk.
type FailureCreateBulk struct {
	config
	err      error
	builders []*FailureCreate
	conflict []sql.ConflictOption
}

// Save creates the Failure entities in the database.
func (_c *FailureCreateBulk) Save(ctx context.Context) ([]*Failure, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Failure, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FailureMutation)
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
func (_c *FailureCreateBulk) SaveX(ctx context.Context) []*Failure {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FailureCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FailureCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Failure.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FailureUpsert) {
//			SetTenant(v+v).
//		}).
//		Exec(ctx)
func (_c *FailureCreateBulk) OnConflict(opts ...sql.ConflictOption) *FailureUpsertBulk {
	_c.conflict = opts
	return &FailureUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Failure.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FailureCreateBulk) OnConflictColumns(columns ...string) *FailureUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FailureUpsertBulk{
		create: _c,
	}
}

// FailureUpsertBulk is the builder for "upsert"-ing
// a bulk of Failure nodes.
type FailureUpsertBulk struct {
	create *FailureCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Failure.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(failure.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FailureUpsertBulk) UpdateNewValues() *FailureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(failure.FieldID)
			}
			if _, exists := b.mutation.Tenant(); exists {
				s.SetIgnore(failure.FieldTenant)
			}
			if _, exists := b.mutation.RunID(); exists {
				s.SetIgnore(failure.FieldRunID)
			}
			if _, exists := b.mutation.StepID(); exists {
				s.SetIgnore(failure.FieldStepID)
			}
			if _, exists := b.mutation.Class(); exists {
				s.SetIgnore(failure.FieldClass)
			}
			if _, exists := b.mutation.Confidence(); exists {
				s.SetIgnore(failure.FieldConfidence)
			}
			if _, exists := b.mutation.LogExcerpt(); exists {
				s.SetIgnore(failure.FieldLogExcerpt)
			}
			if _, exists := b.mutation.Retryable(); exists {
				s.SetIgnore(failure.FieldRetryable)
			}
			if _, exists := b.mutation.RequiresReplan(); exists {
				s.SetIgnore(failure.FieldRequiresReplan)
			}
			if _, exists := b.mutation.RequiresHuman(); exists {
				s.SetIgnore(failure.FieldRequiresHuman)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(failure.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Failure.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FailureUpsertBulk) Ignore() *FailureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FailureUpsertBulk) DoNothing() *FailureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FailureCreateBulk.OnConflict
// documentation for more info.
func (u *FailureUpsertBulk) Update(set func(*FailureUpsert)) *FailureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FailureUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *FailureUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the FailureCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FailureCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FailureUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
