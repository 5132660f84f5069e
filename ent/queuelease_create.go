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
	"github.com/forgeworks/metabuild/ent/queuelease"
	"github.com/forgeworks/metabuild/ent/step"
)

// QueueLeaseCreate is the builder for creating a QueueLease entity.
type QueueLeaseCreate struct {
	config
	mutation *QueueLeaseMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenant sets the "tenant" field.
func (_c *QueueLeaseCreate) SetTenant(v string) *QueueLeaseCreate {
	_c.mutation.SetTenant(v)
	return _c
}

// SetWorkerID sets the "worker_id" field.
func (_c *QueueLeaseCreate) SetWorkerID(v string) *QueueLeaseCreate {
	_c.mutation.SetWorkerID(v)
	return _c
}

// SetQueue sets the "queue" field.
func (_c *QueueLeaseCreate) SetQueue(v queuelease.Queue) *QueueLeaseCreate {
	_c.mutation.SetQueue(v)
	return _c
}

// SetStepID sets the "step_id" field.
func (_c *QueueLeaseCreate) SetStepID(v string) *QueueLeaseCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetAcquiredAt sets the "acquired_at" field.
func (_c *QueueLeaseCreate) SetAcquiredAt(v time.Time) *QueueLeaseCreate {
	_c.mutation.SetAcquiredAt(v)
	return _c
}

// SetNillableAcquiredAt sets the "acquired_at" field if the given value is not nil.
func (_c *QueueLeaseCreate) SetNillableAcquiredAt(v *time.Time) *QueueLeaseCreate {
	if v != nil {
		_c.SetAcquiredAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *QueueLeaseCreate) SetExpiresAt(v time.Time) *QueueLeaseCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_c *QueueLeaseCreate) SetLastHeartbeat(v time.Time) *QueueLeaseCreate {
	_c.mutation.SetLastHeartbeat(v)
	return _c
}

// SetID sets the "id" field.
func (_c *QueueLeaseCreate) SetID(v string) *QueueLeaseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetStep sets the "step" edge to the Step entity.
func (_c *QueueLeaseCreate) SetStep(v *Step) *QueueLeaseCreate {
	return _c.SetStepID(v.ID)
}

// Mutation returns the QueueLeaseMutation object of the builder.
func (_c *QueueLeaseCreate) Mutation() *QueueLeaseMutation {
	return _c.mutation
}

// Save creates the QueueLease in the database.
func (_c *QueueLeaseCreate) Save(ctx context.Context) (*QueueLease, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QueueLeaseCreate) SaveX(ctx context.Context) *QueueLease {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueLeaseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueLeaseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QueueLeaseCreate) defaults() {
	if _, ok := _c.mutation.AcquiredAt(); !ok {
		v := queuelease.DefaultAcquiredAt()
		_c.mutation.SetAcquiredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QueueLeaseCreate) check() error {
	if _, ok := _c.mutation.Tenant(); !ok {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required field "QueueLease.tenant"`)}
	}
	if _, ok := _c.mutation.WorkerID(); !ok {
		return &ValidationError{Name: "worker_id", err: errors.New(`ent: missing required field "QueueLease.worker_id"`)}
	}
	if _, ok := _c.mutation.Queue(); !ok {
		return &ValidationError{Name: "queue", err: errors.New(`ent: missing required field "QueueLease.queue"`)}
	}
	if v, ok := _c.mutation.Queue(); ok {
		if err := queuelease.QueueValidator(v); err != nil {
			return &ValidationError{Name: "queue", err: fmt.Errorf(`ent: validator failed for field "QueueLease.queue": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepID(); !ok {
		return &ValidationError{Name: "step_id", err: errors.New(`ent: missing required field "QueueLease.step_id"`)}
	}
	if _, ok := _c.mutation.AcquiredAt(); !ok {
		return &ValidationError{Name: "acquired_at", err: errors.New(`ent: missing required field "QueueLease.acquired_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "QueueLease.expires_at"`)}
	}
	if _, ok := _c.mutation.LastHeartbeat(); !ok {
		return &ValidationError{Name: "last_heartbeat", err: errors.New(`ent: missing required field "QueueLease.last_heartbeat"`)}
	}
	if len(_c.mutation.StepIDs()) == 0 {
		return &ValidationError{Name: "step", err: errors.New(`ent: missing required edge "QueueLease.step"`)}
	}
	return nil
}

func (_c *QueueLeaseCreate) sqlSave(ctx context.Context) (*QueueLease, error) {
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
			return nil, fmt.Errorf("unexpected QueueLease.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QueueLeaseCreate) createSpec() (*QueueLease, *sqlgraph.CreateSpec) {
	var (
		_node = &QueueLease{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(queuelease.Table, sqlgraph.NewFieldSpec(queuelease.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Tenant(); ok {
		_spec.SetField(queuelease.FieldTenant, field.TypeString, value)
		_node.Tenant = value
	}
	if value, ok := _c.mutation.WorkerID(); ok {
		_spec.SetField(queuelease.FieldWorkerID, field.TypeString, value)
		_node.WorkerID = value
	}
	if value, ok := _c.mutation.Queue(); ok {
		_spec.SetField(queuelease.FieldQueue, field.TypeEnum, value)
		_node.Queue = value
	}
	if value, ok := _c.mutation.AcquiredAt(); ok {
		_spec.SetField(queuelease.FieldAcquiredAt, field.TypeTime, value)
		_node.AcquiredAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(queuelease.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.LastHeartbeat(); ok {
		_spec.SetField(queuelease.FieldLastHeartbeat, field.TypeTime, value)
		_node.LastHeartbeat = value
	}
	if nodes := _c.mutation.StepIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   queuelease.StepTable,
			Columns: []string{queuelease.StepColumn},
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
//	client.QueueLease.Create().
//		SetTenant(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QueueLeaseUpsert) {
//			SetTenant(v+v).
//		}).
//		Exec(ctx)
func (_c *QueueLeaseCreate) OnConflict(opts ...sql.ConflictOption) *QueueLeaseUpsertOne {
	_c.conflict = opts
	return &QueueLeaseUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QueueLease.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QueueLeaseCreate) OnConflictColumns(columns ...string) *QueueLeaseUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QueueLeaseUpsertOne{
		create: _c,
	}
}

type (
	// QueueLeaseUpsertOne is the builder for "upsert"-ing
	//  one QueueLease node.
	QueueLeaseUpsertOne struct {
		create *QueueLeaseCreate
	}

	// QueueLeaseUpsert is the "OnConflict" setter.
	QueueLeaseUpsert struct {
		*sql.UpdateSet
	}
)

// SetExpiresAt sets the "expires_at" field.
func (u *QueueLeaseUpsert) SetExpiresAt(v time.Time) *QueueLeaseUpsert {
	u.Set(queuelease.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *QueueLeaseUpsert) UpdateExpiresAt() *QueueLeaseUpsert {
	u.SetExcluded(queuelease.FieldExpiresAt)
	return u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (u *QueueLeaseUpsert) SetLastHeartbeat(v time.Time) *QueueLeaseUpsert {
	u.Set(queuelease.FieldLastHeartbeat, v)
	return u
}

// UpdateLastHeartbeat sets the "last_heartbeat" field to the value that was provided on create.
func (u *QueueLeaseUpsert) UpdateLastHeartbeat() *QueueLeaseUpsert {
	u.SetExcluded(queuelease.FieldLastHeartbeat)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.QueueLease.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(queuelease.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QueueLeaseUpsertOne) UpdateNewValues() *QueueLeaseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(queuelease.FieldID)
		}
		if _, exists := u.create.mutation.Tenant(); exists {
			s.SetIgnore(queuelease.FieldTenant)
		}
		if _, exists := u.create.mutation.WorkerID(); exists {
			s.SetIgnore(queuelease.FieldWorkerID)
		}
		if _, exists := u.create.mutation.Queue(); exists {
			s.SetIgnore(queuelease.FieldQueue)
		}
		if _, exists := u.create.mutation.StepID(); exists {
			s.SetIgnore(queuelease.FieldStepID)
		}
		if _, exists := u.create.mutation.AcquiredAt(); exists {
			s.SetIgnore(queuelease.FieldAcquiredAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QueueLease.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QueueLeaseUpsertOne) Ignore() *QueueLeaseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QueueLeaseUpsertOne) DoNothing() *QueueLeaseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QueueLeaseCreate.OnConflict
// documentation for more info.
func (u *QueueLeaseUpsertOne) Update(set func(*QueueLeaseUpsert)) *QueueLeaseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QueueLeaseUpsert{UpdateSet: update})
	}))
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *QueueLeaseUpsertOne) SetExpiresAt(v time.Time) *QueueLeaseUpsertOne {
	return u.Update(func(s *QueueLeaseUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *QueueLeaseUpsertOne) UpdateExpiresAt() *QueueLeaseUpsertOne {
	return u.Update(func(s *QueueLeaseUpsert) {
		s.UpdateExpiresAt()
	})
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (u *QueueLeaseUpsertOne) SetLastHeartbeat(v time.Time) *QueueLeaseUpsertOne {
	return u.Update(func(s *QueueLeaseUpsert) {
		s.SetLastHeartbeat(v)
	})
}

// UpdateLastHeartbeat sets the "last_heartbeat" field to the value that was provided on create.
func (u *QueueLeaseUpsertOne) UpdateLastHeartbeat() *QueueLeaseUpsertOne {
	return u.Update(func(s *QueueLeaseUpsert) {
		s.UpdateLastHeartbeat()
	})
}

// Exec executes the query.
func (u *QueueLeaseUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QueueLeaseCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QueueLeaseUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QueueLeaseUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: QueueLeaseUpsertOne.ID is not supported by MySQL driver. Use QueueLeaseUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QueueLeaseUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QueueLeaseCreateBulk is the builder for creating many QueueLease entities in bulk.
type QueueLeaseCreateBulk struct {
	config
	err      error
	builders []*QueueLeaseCreate
	conflict []sql.ConflictOption
}

// Save creates the QueueLease entities in the database.
func (_c *QueueLeaseCreateBulk) Save(ctx context.Context) ([]*QueueLease, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QueueLease, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QueueLeaseMutation)
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
func (_c *QueueLeaseCreateBulk) SaveX(ctx context.Context) []*QueueLease {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueLeaseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueLeaseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QueueLease.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QueueLeaseUpsert) {
//			SetTenant(v+v).
//		}).
//		Exec(ctx)
func (_c *QueueLeaseCreateBulk) OnConflict(opts ...sql.ConflictOption) *QueueLeaseUpsertBulk {
	_c.conflict = opts
	return &QueueLeaseUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QueueLease.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QueueLeaseCreateBulk) OnConflictColumns(columns ...string) *QueueLeaseUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QueueLeaseUpsertBulk{
		create: _c,
	}
}

// QueueLeaseUpsertBulk is the builder for "upsert"-ing
// a bulk of QueueLease nodes.
type QueueLeaseUpsertBulk struct {
	create *QueueLeaseCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.QueueLease.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(queuelease.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QueueLeaseUpsertBulk) UpdateNewValues() *QueueLeaseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(queuelease.FieldID)
			}
			if _, exists := b.mutation.Tenant(); exists {
				s.SetIgnore(queuelease.FieldTenant)
			}
			if _, exists := b.mutation.WorkerID(); exists {
				s.SetIgnore(queuelease.FieldWorkerID)
			}
			if _, exists := b.mutation.Queue(); exists {
				s.SetIgnore(queuelease.FieldQueue)
			}
			if _, exists := b.mutation.StepID(); exists {
				s.SetIgnore(queuelease.FieldStepID)
			}
			if _, exists := b.mutation.AcquiredAt(); exists {
				s.SetIgnore(queuelease.FieldAcquiredAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QueueLease.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QueueLeaseUpsertBulk) Ignore() *QueueLeaseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QueueLeaseUpsertBulk) DoNothing() *QueueLeaseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QueueLeaseCreateBulk.OnConflict
// documentation for more info.
func (u *QueueLeaseUpsertBulk) Update(set func(*QueueLeaseUpsert)) *QueueLeaseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QueueLeaseUpsert{UpdateSet: update})
	}))
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *QueueLeaseUpsertBulk) SetExpiresAt(v time.Time) *QueueLeaseUpsertBulk {
	return u.Update(func(s *QueueLeaseUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *QueueLeaseUpsertBulk) UpdateExpiresAt() *QueueLeaseUpsertBulk {
	return u.Update(func(s *QueueLeaseUpsert) {
		s.UpdateExpiresAt()
	})
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (u *QueueLeaseUpsertBulk) SetLastHeartbeat(v time.Time) *QueueLeaseUpsertBulk {
	return u.Update(func(s *QueueLeaseUpsert) {
		s.SetLastHeartbeat(v)
	})
}

// UpdateLastHeartbeat sets the "last_heartbeat" field to the value that was provided on create.
func (u *QueueLeaseUpsertBulk) UpdateLastHeartbeat() *QueueLeaseUpsertBulk {
	return u.Update(func(s *QueueLeaseUpsert) {
		s.UpdateLastHeartbeat()
	})
}

// Exec executes the query.
func (u *QueueLeaseUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QueueLeaseCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QueueLeaseCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QueueLeaseUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
