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
	"github.com/forgeworks/metabuild/ent/buildspec"
	"github.com/forgeworks/metabuild/ent/run"
)

// BuildSpecCreate is the builder for creating a BuildSpec entity.
type BuildSpecCreate struct {
	config
	mutation *BuildSpecMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenant sets the "tenant" field.
func (_c *BuildSpecCreate) SetTenant(v string) *BuildSpecCreate {
	_c.mutation.SetTenant(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *BuildSpecCreate) SetSource(v string) *BuildSpecCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetSourceKind sets the "source_kind" field.
func (_c *BuildSpecCreate) SetSourceKind(v buildspec.SourceKind) *BuildSpecCreate {
	_c.mutation.SetSourceKind(v)
	return _c
}

// SetNillableSourceKind sets the "source_kind" field if the given value is not nil.
func (_c *BuildSpecCreate) SetNillableSourceKind(v *buildspec.SourceKind) *BuildSpecCreate {
	if v != nil {
		_c.SetSourceKind(*v)
	}
	return _c
}

// SetSLAClass sets the "sla_class" field.
func (_c *BuildSpecCreate) SetSLAClass(v buildspec.SLAClass) *BuildSpecCreate {
	_c.mutation.SetSLAClass(v)
	return _c
}

// SetNillableSLAClass sets the "sla_class" field if the given value is not nil.
func (_c *BuildSpecCreate) SetNillableSLAClass(v *buildspec.SLAClass) *BuildSpecCreate {
	if v != nil {
		_c.SetSLAClass(*v)
	}
	return _c
}

// SetReviewRequired sets the "review_required" field.
func (_c *BuildSpecCreate) SetReviewRequired(v bool) *BuildSpecCreate {
	_c.mutation.SetReviewRequired(v)
	return _c
}

// SetNillableReviewRequired sets the "review_required" field if the given value is not nil.
func (_c *BuildSpecCreate) SetNillableReviewRequired(v *bool) *BuildSpecCreate {
	if v != nil {
		_c.SetReviewRequired(*v)
	}
	return _c
}

// SetMaxIters sets the "max_iters" field.
func (_c *BuildSpecCreate) SetMaxIters(v int) *BuildSpecCreate {
	_c.mutation.SetMaxIters(v)
	return _c
}

// SetTokenBudget sets the "token_budget" field.
func (_c *BuildSpecCreate) SetTokenBudget(v int) *BuildSpecCreate {
	_c.mutation.SetTokenBudget(v)
	return _c
}

// SetCostLimitUsd sets the "cost_limit_usd" field.
func (_c *BuildSpecCreate) SetCostLimitUsd(v float64) *BuildSpecCreate {
	_c.mutation.SetCostLimitUsd(v)
	return _c
}

// SetWallTimeS sets the "wall_time_s" field.
func (_c *BuildSpecCreate) SetWallTimeS(v int) *BuildSpecCreate {
	_c.mutation.SetWallTimeS(v)
	return _c
}

// SetAcceptance sets the "acceptance" field.
func (_c *BuildSpecCreate) SetAcceptance(v []map[string]interface{}) *BuildSpecCreate {
	_c.mutation.SetAcceptance(v)
	return _c
}

// SetKpiGuards sets the "kpi_guards" field.
func (_c *BuildSpecCreate) SetKpiGuards(v map[string]interface{}) *BuildSpecCreate {
	_c.mutation.SetKpiGuards(v)
	return _c
}

// SetDomainTags sets the "domain_tags" field.
func (_c *BuildSpecCreate) SetDomainTags(v []string) *BuildSpecCreate {
	_c.mutation.SetDomainTags(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BuildSpecCreate) SetCreatedAt(v time.Time) *BuildSpecCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BuildSpecCreate) SetNillableCreatedAt(v *time.Time) *BuildSpecCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BuildSpecCreate) SetID(v string) *BuildSpecCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddRunIDs adds the "runs" edge to the Run entity by IDs.
func (_c *BuildSpecCreate) AddRunIDs(ids ...string) *BuildSpecCreate {
	_c.mutation.AddRunIDs(ids...)
	return _c
}

// AddRuns adds the "runs" edges to the Run entity.
func (_c *BuildSpecCreate) AddRuns(v ...*Run) *BuildSpecCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRunIDs(ids...)
}

// Mutation returns the BuildSpecMutation object of the builder.
func (_c *BuildSpecCreate) Mutation() *BuildSpecMutation {
	return _c.mutation
}

// Save creates the BuildSpec in the database.
func (_c *BuildSpecCreate) Save(ctx context.Context) (*BuildSpec, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BuildSpecCreate) SaveX(ctx context.Context) *BuildSpec {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BuildSpecCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BuildSpecCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BuildSpecCreate) defaults() {
	if _, ok := _c.mutation.SourceKind(); !ok {
		v := buildspec.DefaultSourceKind
		_c.mutation.SetSourceKind(v)
	}
	if _, ok := _c.mutation.SLAClass(); !ok {
		v := buildspec.DefaultSLAClass
		_c.mutation.SetSLAClass(v)
	}
	if _, ok := _c.mutation.ReviewRequired(); !ok {
		v := buildspec.DefaultReviewRequired
		_c.mutation.SetReviewRequired(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := buildspec.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BuildSpecCreate) check() error {
	if _, ok := _c.mutation.Tenant(); !ok {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required field "BuildSpec.tenant"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "BuildSpec.source"`)}
	}
	if _, ok := _c.mutation.SourceKind(); !ok {
		return &ValidationError{Name: "source_kind", err: errors.New(`ent: missing required field "BuildSpec.source_kind"`)}
	}
	if v, ok := _c.mutation.SourceKind(); ok {
		if err := buildspec.SourceKindValidator(v); err != nil {
			return &ValidationError{Name: "source_kind", err: fmt.Errorf(`ent: validator failed for field "BuildSpec.source_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SLAClass(); !ok {
		return &ValidationError{Name: "sla_class", err: errors.New(`ent: missing required field "BuildSpec.sla_class"`)}
	}
	if v, ok := _c.mutation.SLAClass(); ok {
		if err := buildspec.SLAClassValidator(v); err != nil {
			return &ValidationError{Name: "sla_class", err: fmt.Errorf(`ent: validator failed for field "BuildSpec.sla_class": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReviewRequired(); !ok {
		return &ValidationError{Name: "review_required", err: errors.New(`ent: missing required field "BuildSpec.review_required"`)}
	}
	if _, ok := _c.mutation.MaxIters(); !ok {
		return &ValidationError{Name: "max_iters", err: errors.New(`ent: missing required field "BuildSpec.max_iters"`)}
	}
	if _, ok := _c.mutation.TokenBudget(); !ok {
		return &ValidationError{Name: "token_budget", err: errors.New(`ent: missing required field "BuildSpec.token_budget"`)}
	}
	if _, ok := _c.mutation.CostLimitUsd(); !ok {
		return &ValidationError{Name: "cost_limit_usd", err: errors.New(`ent: missing required field "BuildSpec.cost_limit_usd"`)}
	}
	if _, ok := _c.mutation.WallTimeS(); !ok {
		return &ValidationError{Name: "wall_time_s", err: errors.New(`ent: missing required field "BuildSpec.wall_time_s"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BuildSpec.created_at"`)}
	}
	return nil
}

func (_c *BuildSpecCreate) sqlSave(ctx context.Context) (*BuildSpec, error) {
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
			return nil, fmt.Errorf("unexpected BuildSpec.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BuildSpecCreate) createSpec() (*BuildSpec, *sqlgraph.CreateSpec) {
	var (
		_node = &BuildSpec{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(buildspec.Table, sqlgraph.NewFieldSpec(buildspec.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Tenant(); ok {
		_spec.SetField(buildspec.FieldTenant, field.TypeString, value)
		_node.Tenant = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(buildspec.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.SourceKind(); ok {
		_spec.SetField(buildspec.FieldSourceKind, field.TypeEnum, value)
		_node.SourceKind = value
	}
	if value, ok := _c.mutation.SLAClass(); ok {
		_spec.SetField(buildspec.FieldSLAClass, field.TypeEnum, value)
		_node.SLAClass = value
	}
	if value, ok := _c.mutation.ReviewRequired(); ok {
		_spec.SetField(buildspec.FieldReviewRequired, field.TypeBool, value)
		_node.ReviewRequired = value
	}
	if value, ok := _c.mutation.MaxIters(); ok {
		_spec.SetField(buildspec.FieldMaxIters, field.TypeInt, value)
		_node.MaxIters = value
	}
	if value, ok := _c.mutation.TokenBudget(); ok {
		_spec.SetField(buildspec.FieldTokenBudget, field.TypeInt, value)
		_node.TokenBudget = value
	}
	if value, ok := _c.mutation.CostLimitUsd(); ok {
		_spec.SetField(buildspec.FieldCostLimitUsd, field.TypeFloat64, value)
		_node.CostLimitUsd = value
	}
	if value, ok := _c.mutation.WallTimeS(); ok {
		_spec.SetField(buildspec.FieldWallTimeS, field.TypeInt, value)
		_node.WallTimeS = value
	}
	if value, ok := _c.mutation.Acceptance(); ok {
		_spec.SetField(buildspec.FieldAcceptance, field.TypeJSON, value)
		_node.Acceptance = value
	}
	if value, ok := _c.mutation.KpiGuards(); ok {
		_spec.SetField(buildspec.FieldKpiGuards, field.TypeJSON, value)
		_node.KpiGuards = value
	}
	if value, ok := _c.mutation.DomainTags(); ok {
		_spec.SetField(buildspec.FieldDomainTags, field.TypeJSON, value)
		_node.DomainTags = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(buildspec.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   buildspec.RunsTable,
			Columns: []string{buildspec.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BuildSpec.Create().
//		SetTenant(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BuildSpecUpsert) {
//			SetTenant(v+v).
//		}).
//		Exec(ctx)
func (_c *BuildSpecCreate) OnConflict(opts ...sql.ConflictOption) *BuildSpecUpsertOne {
	_c.conflict = opts
	return &BuildSpecUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BuildSpec.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BuildSpecCreate) OnConflictColumns(columns ...string) *BuildSpecUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BuildSpecUpsertOne{
		create: _c,
	}
}

type (
	// BuildSpecUpsertOne is the builder for "upsert"-ing
	//  one BuildSpec node.
	BuildSpecUpsertOne struct {
		create *BuildSpecCreate
	}

	// BuildSpecUpsert is the "OnConflict" setter.
	BuildSpecUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.BuildSpec.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(buildspec.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BuildSpecUpsertOne) UpdateNewValues() *BuildSpecUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(buildspec.FieldID)
		}
		if _, exists := u.create.mutation.Tenant(); exists {
			s.SetIgnore(buildspec.FieldTenant)
		}
		if _, exists := u.create.mutation.Source(); exists {
			s.SetIgnore(buildspec.FieldSource)
		}
		if _, exists := u.create.mutation.SourceKind(); exists {
			s.SetIgnore(buildspec.FieldSourceKind)
		}
		if _, exists := u.create.mutation.SLAClass(); exists {
			s.SetIgnore(buildspec.FieldSLAClass)
		}
		if _, exists := u.create.mutation.ReviewRequired(); exists {
			s.SetIgnore(buildspec.FieldReviewRequired)
		}
		if _, exists := u.create.mutation.MaxIters(); exists {
			s.SetIgnore(buildspec.FieldMaxIters)
		}
		if _, exists := u.create.mutation.TokenBudget(); exists {
			s.SetIgnore(buildspec.FieldTokenBudget)
		}
		if _, exists := u.create.mutation.CostLimitUsd(); exists {
			s.SetIgnore(buildspec.FieldCostLimitUsd)
		}
		if _, exists := u.create.mutation.WallTimeS(); exists {
			s.SetIgnore(buildspec.FieldWallTimeS)
		}
		if _, exists := u.create.mutation.Acceptance(); exists {
			s.SetIgnore(buildspec.FieldAcceptance)
		}
		if _, exists := u.create.mutation.KpiGuards(); exists {
			s.SetIgnore(buildspec.FieldKpiGuards)
		}
		if _, exists := u.create.mutation.DomainTags(); exists {
			s.SetIgnore(buildspec.FieldDomainTags)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(buildspec.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BuildSpec.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BuildSpecUpsertOne) Ignore() *BuildSpecUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BuildSpecUpsertOne) DoNothing() *BuildSpecUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BuildSpecCreate.OnConflict
// documentation for more info.
func (u *BuildSpecUpsertOne) Update(set func(*BuildSpecUpsert)) *BuildSpecUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BuildSpecUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *BuildSpecUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BuildSpecCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BuildSpecUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BuildSpecUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: BuildSpecUpsertOne.ID is not supported by MySQL driver. Use BuildSpecUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BuildSpecUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BuildSpecCreateBulk is the builder for creating many BuildSpec entities in bulk.
type BuildSpecCreateBulk struct {
	config
	err      error
	builders []*BuildSpecCreate
	conflict []sql.ConflictOption
}

// Save creates the BuildSpec entities in the database.
func (_c *BuildSpecCreateBulk) Save(ctx context.Context) ([]*BuildSpec, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BuildSpec, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BuildSpecMutation)
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
func (_c *BuildSpecCreateBulk) SaveX(ctx context.Context) []*BuildSpec {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BuildSpecCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BuildSpecCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BuildSpec.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BuildSpecUpsert) {
//			SetTenant(v+v).
//		}).
//		Exec(ctx)
func (_c *BuildSpecCreateBulk) OnConflict(opts ...sql.ConflictOption) *BuildSpecUpsertBulk {
	_c.conflict = opts
	return &BuildSpecUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BuildSpec.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BuildSpecCreateBulk) OnConflictColumns(columns ...string) *BuildSpecUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BuildSpecUpsertBulk{
		create: _c,
	}
}

// BuildSpecUpsertBulk is the builder for "upsert"-ing
// a bulk of BuildSpec nodes.
type BuildSpecUpsertBulk struct {
	create *BuildSpecCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.BuildSpec.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(buildspec.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BuildSpecUpsertBulk) UpdateNewValues() *BuildSpecUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(buildspec.FieldID)
			}
			if _, exists := b.mutation.Tenant(); exists {
				s.SetIgnore(buildspec.FieldTenant)
			}
			if _, exists := b.mutation.Source(); exists {
				s.SetIgnore(buildspec.FieldSource)
			}
			if _, exists := b.mutation.SourceKind(); exists {
				s.SetIgnore(buildspec.FieldSourceKind)
			}
			if _, exists := b.mutation.SLAClass(); exists {
				s.SetIgnore(buildspec.FieldSLAClass)
			}
			if _, exists := b.mutation.ReviewRequired(); exists {
				s.SetIgnore(buildspec.FieldReviewRequired)
			}
			if _, exists := b.mutation.MaxIters(); exists {
				s.SetIgnore(buildspec.FieldMaxIters)
			}
			if _, exists := b.mutation.TokenBudget(); exists {
				s.SetIgnore(buildspec.FieldTokenBudget)
			}
			if _, exists := b.mutation.CostLimitUsd(); exists {
				s.SetIgnore(buildspec.FieldCostLimitUsd)
			}
			if _, exists := b.mutation.WallTimeS(); exists {
				s.SetIgnore(buildspec.FieldWallTimeS)
			}
			if _, exists := b.mutation.Acceptance(); exists {
				s.SetIgnore(buildspec.FieldAcceptance)
			}
			if _, exists := b.mutation.KpiGuards(); exists {
				s.SetIgnore(buildspec.FieldKpiGuards)
			}
			if _, exists := b.mutation.DomainTags(); exists {
				s.SetIgnore(buildspec.FieldDomainTags)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(buildspec.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BuildSpec.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BuildSpecUpsertBulk) Ignore() *BuildSpecUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BuildSpecUpsertBulk) DoNothing() *BuildSpecUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BuildSpecCreateBulk.OnConflict
// documentation for more info.
func (u *BuildSpecUpsertBulk) Update(set func(*BuildSpecUpsert)) *BuildSpecUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BuildSpecUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *BuildSpecUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BuildSpecCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BuildSpecCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BuildSpecUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
