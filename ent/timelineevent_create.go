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
	"github.com/forgeworks/metabuild/ent/run"
	"github.com/forgeworks/metabuild/ent/timelineevent"
)

// TimelineEventCreate is the builder for creating a TimelineEvent entity.
type TimelineEventCreate struct {
	config
	mutation *TimelineEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenant sets the "tenant" field.
func (_c *TimelineEventCreate) SetTenant(v string) *TimelineEventCreate {
	_c.mutation.SetTenant(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *TimelineEventCreate) SetRunID(v string) *TimelineEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *TimelineEventCreate) SetKind(v string) *TimelineEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *TimelineEventCreate) SetMessage(v string) *TimelineEventCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetStepID sets the "step_id" field.
func (_c *TimelineEventCreate) SetStepID(v string) *TimelineEventCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_c *TimelineEventCreate) SetNillableStepID(v *string) *TimelineEventCreate {
	if v != nil {
		_c.SetStepID(*v)
	}
	return _c
}

// SetDetails sets the "details" field.
func (_c *TimelineEventCreate) SetDetails(v map[string]interface{}) *TimelineEventCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TimelineEventCreate) SetCreatedAt(v time.Time) *TimelineEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TimelineEventCreate) SetNillableCreatedAt(v *time.Time) *TimelineEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TimelineEventCreate) SetID(v string) *TimelineEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *TimelineEventCreate) SetRun(v *Run) *TimelineEventCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the TimelineEventMutation object of the builder.
func (_c *TimelineEventCreate) Mutation() *TimelineEventMutation {
	return _c.mutation
}

// Save creates the TimelineEvent in the database.
func (_c *TimelineEventCreate) Save(ctx context.Context) (*TimelineEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TimelineEventCreate) SaveX(ctx context.Context) *TimelineEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TimelineEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TimelineEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TimelineEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := timelineevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TimelineEventCreate) check() error {
	if _, ok := _c.mutation.Tenant(); !ok {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required field "TimelineEvent.tenant"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "TimelineEvent.run_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "TimelineEvent.kind"`)}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "TimelineEvent.message"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TimelineEvent.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "TimelineEvent.run"`)}
	}
	return nil
}

func (_c *TimelineEventCreate) sqlSave(ctx context.Context) (*TimelineEvent, error) {
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
			return nil, fmt.Errorf("unexpected TimelineEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TimelineEventCreate) createSpec() (*TimelineEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TimelineEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(timelineevent.Table, sqlgraph.NewFieldSpec(timelineevent.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Tenant(); ok {
		_spec.SetField(timelineevent.FieldTenant, field.TypeString, value)
		_node.Tenant = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(timelineevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(timelineevent.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.StepID(); ok {
		_spec.SetField(timelineevent.FieldStepID, field.TypeString, value)
		_node.StepID = &value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(timelineevent.FieldDetails, field.TypeJSON, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(timelineevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   timelineevent.RunTable,
			Columns: []string{timelineevent.RunColumn},
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
//	client.TimelineEvent.Create().
//		SetTenant(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TimelineEventUpsert) {
//			SetTenant(v+v).
//		}).
//		Exec(ctx)
func (_c *TimelineEventCreate) OnConflict(opts ...sql.ConflictOption) *TimelineEventUpsertOne {
	_c.conflict = opts
	return &TimelineEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TimelineEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TimelineEventCreate) OnConflictColumns(columns ...string) *TimelineEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TimelineEventUpsertOne{
		create: _c,
	}
}

type (
	// TimelineEventUpsertOne is the builder for "upsert"-ing
	//  one TimelineEvent node.
	TimelineEventUpsertOne struct {
		create *TimelineEventCreate
	}

	// TimelineEventUpsert is the "OnConflict" setter.
	TimelineEventUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TimelineEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(timelineevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TimelineEventUpsertOne) UpdateNewValues() *TimelineEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(timelineevent.FieldID)
		}
		if _, exists := u.create.mutation.Tenant(); exists {
			s.SetIgnore(timelineevent.FieldTenant)
		}
		if _, exists := u.create.mutation.RunID(); exists {
			s.SetIgnore(timelineevent.FieldRunID)
		}
		if _, exists := u.create.mutation.Kind(); exists {
			s.SetIgnore(timelineevent.FieldKind)
		}
		if _, exists := u.create.mutation.Message(); exists {
			s.SetIgnore(timelineevent.FieldMessage)
		}
		if _, exists := u.create.mutation.StepID(); exists {
			s.SetIgnore(timelineevent.FieldStepID)
		}
		if _, exists := u.create.mutation.Details(); exists {
			s.SetIgnore(timelineevent.FieldDetails)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(timelineevent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TimelineEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TimelineEventUpsertOne) Ignore() *TimelineEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TimelineEventUpsertOne) DoNothing() *TimelineEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TimelineEventCreate.OnConflict
// documentation for more info.
func (u *TimelineEventUpsertOne) Update(set func(*TimelineEventUpsert)) *TimelineEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TimelineEventUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *TimelineEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TimelineEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TimelineEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TimelineEventUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TimelineEventUpsertOne.ID is not supported by MySQL driver. Use TimelineEventUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TimelineEventUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TimelineEventCreateBulk is the builder for creating many TimelineEvent entities in bulk.
type TimelineEventCreateBulk struct {
	config
	err      error
	builders []*TimelineEventCreate
	conflict []sql.ConflictOption
}

// Save creates the TimelineEvent entities in the database.
func (_c *TimelineEventCreateBulk) Save(ctx context.Context) ([]*TimelineEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TimelineEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TimelineEventMutation)
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
func (_c *TimelineEventCreateBulk) SaveX(ctx context.Context) []*TimelineEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TimelineEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TimelineEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TimelineEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TimelineEventUpsert) {
//			SetTenant(v+v).
//		}).
//		Exec(ctx)
func (_c *TimelineEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *TimelineEventUpsertBulk {
	_c.conflict = opts
	return &TimelineEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TimelineEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TimelineEventCreateBulk) OnConflictColumns(columns ...string) *TimelineEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TimelineEventUpsertBulk{
		create: _c,
	}
}

// TimelineEventUpsertBulk is the builder for "upsert"-ing
// a bulk of TimelineEvent nodes.
type TimelineEventUpsertBulk struct {
	create *TimelineEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TimelineEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(timelineevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TimelineEventUpsertBulk) UpdateNewValues() *TimelineEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(timelineevent.FieldID)
			}
			if _, exists := b.mutation.Tenant(); exists {
				s.SetIgnore(timelineevent.FieldTenant)
			}
			if _, exists := b.mutation.RunID(); exists {
				s.SetIgnore(timelineevent.FieldRunID)
			}
			if _, exists := b.mutation.Kind(); exists {
				s.SetIgnore(timelineevent.FieldKind)
			}
			if _, exists := b.mutation.Message(); exists {
				s.SetIgnore(timelineevent.FieldMessage)
			}
			if _, exists := b.mutation.StepID(); exists {
				s.SetIgnore(timelineevent.FieldStepID)
			}
			if _, exists := b.mutation.Details(); exists {
				s.SetIgnore(timelineevent.FieldDetails)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(timelineevent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TimelineEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TimelineEventUpsertBulk) Ignore() *TimelineEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TimelineEventUpsertBulk) DoNothing() *TimelineEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TimelineEventCreateBulk.OnConflict
// documentation for more info.
func (u *TimelineEventUpsertBulk) Update(set func(*TimelineEventUpsert)) *TimelineEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TimelineEventUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *TimelineEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TimelineEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TimelineEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TimelineEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
