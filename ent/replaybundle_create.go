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
	"github.com/forgeworks/metabuild/ent/replaybundle"
	"github.com/forgeworks/metabuild/ent/run"
)

// ReplayBundleCreate is the builder for creating a ReplayBundle entity.
type ReplayBundleCreate struct {
	config
	mutation *ReplayBundleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenant sets the "tenant" field.
func (_c *ReplayBundleCreate) SetTenant(v string) *ReplayBundleCreate {
	_c.mutation.SetTenant(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *ReplayBundleCreate) SetRunID(v string) *ReplayBundleCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetBundleHash sets the "bundle_hash" field.
func (_c *ReplayBundleCreate) SetBundleHash(v string) *ReplayBundleCreate {
	_c.mutation.SetBundleHash(v)
	return _c
}

// SetStorageRef sets the "storage_ref" field.
func (_c *ReplayBundleCreate) SetStorageRef(v string) *ReplayBundleCreate {
	_c.mutation.SetStorageRef(v)
	return _c
}

// SetReplayedOk sets the "replayed_ok" field.
func (_c *ReplayBundleCreate) SetReplayedOk(v bool) *ReplayBundleCreate {
	_c.mutation.SetReplayedOk(v)
	return _c
}

// SetNillableReplayedOk sets the "replayed_ok" field if the given value is not nil.
func (_c *ReplayBundleCreate) SetNillableReplayedOk(v *bool) *ReplayBundleCreate {
	if v != nil {
		_c.SetReplayedOk(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReplayBundleCreate) SetCreatedAt(v time.Time) *ReplayBundleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReplayBundleCreate) SetNillableCreatedAt(v *time.Time) *ReplayBundleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReplayBundleCreate) SetID(v string) *ReplayBundleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *ReplayBundleCreate) SetRun(v *Run) *ReplayBundleCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the ReplayBundleMutation object of the builder.
func (_c *ReplayBundleCreate) Mutation() *ReplayBundleMutation {
	return _c.mutation
}

// Save creates the ReplayBundle in the database.
func (_c *ReplayBundleCreate) Save(ctx context.Context) (*ReplayBundle, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReplayBundleCreate) SaveX(ctx context.Context) *ReplayBundle {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReplayBundleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReplayBundleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReplayBundleCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := replaybundle.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReplayBundleCreate) check() error {
	if _, ok := _c.mutation.Tenant(); !ok {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required field "ReplayBundle.tenant"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "ReplayBundle.run_id"`)}
	}
	if _, ok := _c.mutation.BundleHash(); !ok {
		return &ValidationError{Name: "bundle_hash", err: errors.New(`ent: missing required field "ReplayBundle.bundle_hash"`)}
	}
	if _, ok := _c.mutation.StorageRef(); !ok {
		return &ValidationError{Name: "storage_ref", err: errors.New(`ent: missing required field "ReplayBundle.storage_ref"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReplayBundle.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "ReplayBundle.run"`)}
	}
	return nil
}

func (_c *ReplayBundleCreate) sqlSave(ctx context.Context) (*ReplayBundle, error) {
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
			return nil, fmt.Errorf("unexpected ReplayBundle.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReplayBundleCreate) createSpec() (*ReplayBundle, *sqlgraph.CreateSpec) {
	var (
		_node = &ReplayBundle{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(replaybundle.Table, sqlgraph.NewFieldSpec(replaybundle.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Tenant(); ok {
		_spec.SetField(replaybundle.FieldTenant, field.TypeString, value)
		_node.Tenant = value
	}
	if value, ok := _c.mutation.BundleHash(); ok {
		_spec.SetField(replaybundle.FieldBundleHash, field.TypeString, value)
		_node.BundleHash = value
	}
	if value, ok := _c.mutation.StorageRef(); ok {
		_spec.SetField(replaybundle.FieldStorageRef, field.TypeString, value)
		_node.StorageRef = value
	}
	if value, ok := _c.mutation.ReplayedOk(); ok {
		_spec.SetField(replaybundle.FieldReplayedOk, field.TypeBool, value)
		_node.ReplayedOk = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(replaybundle.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   replaybundle.RunTable,
			Columns: []string{replaybundle.RunColumn},
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
//	client.ReplayBundle.Create().
//		SetTenant(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReplayBundleUpsert) {
//			SetTenant(v+v).
//		}).
//		Exec(ctx)
func (_c *ReplayBundleCreate) OnConflict(opts ...sql.ConflictOption) *ReplayBundleUpsertOne {
	_c.conflict = opts
	return &ReplayBundleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReplayBundle.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReplayBundleCreate) OnConflictColumns(columns ...string) *ReplayBundleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReplayBundleUpsertOne{
		create: _c,
	}
}

type (
	// ReplayBundleUpsertOne is the builder for "upsert"-ing
	//  one ReplayBundle node.
	ReplayBundleUpsertOne struct {
		create *ReplayBundleCreate
	}

	// ReplayBundleUpsert is the "OnConflict" setter.
	ReplayBundleUpsert struct {
		*sql.UpdateSet
	}
)

// SetReplayedOk sets the "replayed_ok" field.
func (u *ReplayBundleUpsert) SetReplayedOk(v bool) *ReplayBundleUpsert {
	u.Set(replaybundle.FieldReplayedOk, v)
	return u
}

// UpdateReplayedOk sets the "replayed_ok" field to the value that was provided on create.
func (u *ReplayBundleUpsert) UpdateReplayedOk() *ReplayBundleUpsert {
	u.SetExcluded(replaybundle.FieldReplayedOk)
	return u
}

// ClearReplayedOk clears the value of the "replayed_ok" field.
func (u *ReplayBundleUpsert) ClearReplayedOk() *ReplayBundleUpsert {
	u.SetNull(replaybundle.FieldReplayedOk)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ReplayBundle.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(replaybundle.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReplayBundleUpsertOne) UpdateNewValues() *ReplayBundleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(replaybundle.FieldID)
		}
		if _, exists := u.create.mutation.Tenant(); exists {
			s.SetIgnore(replaybundle.FieldTenant)
		}
		if _, exists := u.create.mutation.RunID(); exists {
			s.SetIgnore(replaybundle.FieldRunID)
		}
		if _, exists := u.create.mutation.BundleHash(); exists {
			s.SetIgnore(replaybundle.FieldBundleHash)
		}
		if _, exists := u.create.mutation.StorageRef(); exists {
			s.SetIgnore(replaybundle.FieldStorageRef)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(replaybundle.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReplayBundle.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ReplayBundleUpsertOne) Ignore() *ReplayBundleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReplayBundleUpsertOne) DoNothing() *ReplayBundleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReplayBundleCreate.OnConflict
// documentation for more info.
func (u *ReplayBundleUpsertOne) Update(set func(*ReplayBundleUpsert)) *ReplayBundleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReplayBundleUpsert{UpdateSet: update})
	}))
	return u
}

// SetReplayedOk sets the "replayed_ok" field.
func (u *ReplayBundleUpsertOne) SetReplayedOk(v bool) *ReplayBundleUpsertOne {
	return u.Update(func(s *ReplayBundleUpsert) {
		s.SetReplayedOk(v)
	})
}

// UpdateReplayedOk sets the "replayed_ok" field to the value that was provided on create.
func (u *ReplayBundleUpsertOne) UpdateReplayedOk() *ReplayBundleUpsertOne {
	return u.Update(func(s *ReplayBundleUpsert) {
		s.UpdateReplayedOk()
	})
}

// ClearReplayedOk clears the value of the "replayed_ok" field.
func (u *ReplayBundleUpsertOne) ClearReplayedOk() *ReplayBundleUpsertOne {
	return u.Update(func(s *ReplayBundleUpsert) {
		s.ClearReplayedOk()
	})
}

// Exec executes the query.
func (u *ReplayBundleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReplayBundleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReplayBundleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ReplayBundleUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ReplayBundleUpsertOne.ID is not supported by MySQL driver. Use ReplayBundleUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ReplayBundleUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReplayBundleCreateBulk is the builder for creating many ReplayBundle entities in bulk.
type ReplayBundleCreateBulk struct {
	config
	err      error
	builders []*ReplayBundleCreate
	conflict []sql.ConflictOption
}

// Save creates the ReplayBundle entities in the database.
func (_c *ReplayBundleCreateBulk) Save(ctx context.Context) ([]*ReplayBundle, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReplayBundle, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReplayBundleMutation)
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
func (_c *ReplayBundleCreateBulk) SaveX(ctx context.Context) []*ReplayBundle {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReplayBundleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReplayBundleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReplayBundle.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReplayBundleUpsert) {
//			SetTenant(v+v).
//		}).
//		Exec(ctx)
func (_c *ReplayBundleCreateBulk) OnConflict(opts ...sql.ConflictOption) *ReplayBundleUpsertBulk {
	_c.conflict = opts
	return &ReplayBundleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReplayBundle.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReplayBundleCreateBulk) OnConflictColumns(columns ...string) *ReplayBundleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReplayBundleUpsertBulk{
		create: _c,
	}
}

// ReplayBundleUpsertBulk is the builder for "upsert"-ing
// a bulk of ReplayBundle nodes.
type ReplayBundleUpsertBulk struct {
	create *ReplayBundleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ReplayBundle.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(replaybundle.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReplayBundleUpsertBulk) UpdateNewValues() *ReplayBundleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(replaybundle.FieldID)
			}
			if _, exists := b.mutation.Tenant(); exists {
				s.SetIgnore(replaybundle.FieldTenant)
			}
			if _, exists := b.mutation.RunID(); exists {
				s.SetIgnore(replaybundle.FieldRunID)
			}
			if _, exists := b.mutation.BundleHash(); exists {
				s.SetIgnore(replaybundle.FieldBundleHash)
			}
			if _, exists := b.mutation.StorageRef(); exists {
				s.SetIgnore(replaybundle.FieldStorageRef)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(replaybundle.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReplayBundle.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ReplayBundleUpsertBulk) Ignore() *ReplayBundleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReplayBundleUpsertBulk) DoNothing() *ReplayBundleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReplayBundleCreateBulk.OnConflict
// documentation for more info.
func (u *ReplayBundleUpsertBulk) Update(set func(*ReplayBundleUpsert)) *ReplayBundleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReplayBundleUpsert{UpdateSet: update})
	}))
	return u
}

// SetReplayedOk sets the "replayed_ok" field.
func (u *ReplayBundleUpsertBulk) SetReplayedOk(v bool) *ReplayBundleUpsertBulk {
	return u.Update(func(s *ReplayBundleUpsert) {
		s.SetReplayedOk(v)
	})
}

// UpdateReplayedOk sets the "replayed_ok" field to the value that was provided on create.
func (u *ReplayBundleUpsertBulk) UpdateReplayedOk() *ReplayBundleUpsertBulk {
	return u.Update(func(s *ReplayBundleUpsert) {
		s.UpdateReplayedOk()
	})
}

// ClearReplayedOk clears the value of the "replayed_ok" field.
func (u *ReplayBundleUpsertBulk) ClearReplayedOk() *ReplayBundleUpsertBulk {
	return u.Update(func(s *ReplayBundleUpsert) {
		s.ClearReplayedOk()
	})
}

// Exec executes the query.
func (u *ReplayBundleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ReplayBundleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReplayBundleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReplayBundleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
