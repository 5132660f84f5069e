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
	"github.com/forgeworks/metabuild/ent/circuitbreaker"
)

// CircuitBreakerCreate is the builder for creating a CircuitBreaker entity.
type CircuitBreakerCreate struct {
	config
	mutation *CircuitBreakerMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenant sets the "tenant" field.
func (_c *CircuitBreakerCreate) SetTenant(v string) *CircuitBreakerCreate {
	_c.mutation.SetTenant(v)
	return _c
}

// SetFailureClass sets the "failure_class" field.
func (_c *CircuitBreakerCreate) SetFailureClass(v circuitbreaker.FailureClass) *CircuitBreakerCreate {
	_c.mutation.SetFailureClass(v)
	return _c
}

// SetState sets the "state" field.
func (_c *CircuitBreakerCreate) SetState(v circuitbreaker.State) *CircuitBreakerCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *CircuitBreakerCreate) SetNillableState(v *circuitbreaker.State) *CircuitBreakerCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetFailCount sets the "fail_count" field.
func (_c *CircuitBreakerCreate) SetFailCount(v int) *CircuitBreakerCreate {
	_c.mutation.SetFailCount(v)
	return _c
}

// SetNillableFailCount sets the "fail_count" field if the given value is not nil.
func (_c *CircuitBreakerCreate) SetNillableFailCount(v *int) *CircuitBreakerCreate {
	if v != nil {
		_c.SetFailCount(*v)
	}
	return _c
}

// SetThreshold sets the "threshold" field.
func (_c *CircuitBreakerCreate) SetThreshold(v int) *CircuitBreakerCreate {
	_c.mutation.SetThreshold(v)
	return _c
}

// SetWindowStart sets the "window_start" field.
func (_c *CircuitBreakerCreate) SetWindowStart(v time.Time) *CircuitBreakerCreate {
	_c.mutation.SetWindowStart(v)
	return _c
}

// SetNillableWindowStart sets the "window_start" field if the given value is not nil.
func (_c *CircuitBreakerCreate) SetNillableWindowStart(v *time.Time) *CircuitBreakerCreate {
	if v != nil {
		_c.SetWindowStart(*v)
	}
	return _c
}

// SetOpenedAt sets the "opened_at" field.
func (_c *CircuitBreakerCreate) SetOpenedAt(v time.Time) *CircuitBreakerCreate {
	_c.mutation.SetOpenedAt(v)
	return _c
}

// SetNillableOpenedAt sets the "opened_at" field if the given value is not nil.
func (_c *CircuitBreakerCreate) SetNillableOpenedAt(v *time.Time) *CircuitBreakerCreate {
	if v != nil {
		_c.SetOpenedAt(*v)
	}
	return _c
}

// SetCooldownUntil sets the "cooldown_until" field.
func (_c *CircuitBreakerCreate) SetCooldownUntil(v time.Time) *CircuitBreakerCreate {
	_c.mutation.SetCooldownUntil(v)
	return _c
}

// SetNillableCooldownUntil sets the "cooldown_until" field if the given value is not nil.
func (_c *CircuitBreakerCreate) SetNillableCooldownUntil(v *time.Time) *CircuitBreakerCreate {
	if v != nil {
		_c.SetCooldownUntil(*v)
	}
	return _c
}

// SetCooldownS sets the "cooldown_s" field.
func (_c *CircuitBreakerCreate) SetCooldownS(v int) *CircuitBreakerCreate {
	_c.mutation.SetCooldownS(v)
	return _c
}

// SetID sets the "id" field.
func (_c *CircuitBreakerCreate) SetID(v string) *CircuitBreakerCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CircuitBreakerMutation object of the builder.
func (_c *CircuitBreakerCreate) Mutation() *CircuitBreakerMutation {
	return _c.mutation
}

// Save creates the CircuitBreaker in the database.
func (_c *CircuitBreakerCreate) Save(ctx context.Context) (*CircuitBreaker, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CircuitBreakerCreate) SaveX(ctx context.Context) *CircuitBreaker {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CircuitBreakerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CircuitBreakerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CircuitBreakerCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := circuitbreaker.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.FailCount(); !ok {
		v := circuitbreaker.DefaultFailCount
		_c.mutation.SetFailCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CircuitBreakerCreate) check() error {
	if _, ok := _c.mutation.Tenant(); !ok {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required field "CircuitBreaker.tenant"`)}
	}
	if _, ok := _c.mutation.FailureClass(); !ok {
		return &ValidationError{Name: "failure_class", err: errors.New(`ent: missing required field "CircuitBreaker.failure_class"`)}
	}
	if v, ok := _c.mutation.FailureClass(); ok {
		if err := circuitbreaker.FailureClassValidator(v); err != nil {
			return &ValidationError{Name: "failure_class", err: fmt.Errorf(`ent: validator failed for field "CircuitBreaker.failure_class": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "CircuitBreaker.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := circuitbreaker.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "CircuitBreaker.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FailCount(); !ok {
		return &ValidationError{Name: "fail_count", err: errors.New(`ent: missing required field "CircuitBreaker.fail_count"`)}
	}
	if _, ok := _c.mutation.Threshold(); !ok {
		return &ValidationError{Name: "threshold", err: errors.New(`ent: missing required field "CircuitBreaker.threshold"`)}
	}
	if _, ok := _c.mutation.CooldownS(); !ok {
		return &ValidationError{Name: "cooldown_s", err: errors.New(`ent: missing required field "CircuitBreaker.cooldown_s"`)}
	}
	return nil
}

func (_c *CircuitBreakerCreate) sqlSave(ctx context.Context) (*CircuitBreaker, error) {
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
			return nil, fmt.Errorf("unexpected CircuitBreaker.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CircuitBreakerCreate) createSpec() (*CircuitBreaker, *sqlgraph.CreateSpec) {
	var (
		_node = &CircuitBreaker{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(circuitbreaker.Table, sqlgraph.NewFieldSpec(circuitbreaker.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Tenant(); ok {
		_spec.SetField(circuitbreaker.FieldTenant, field.TypeString, value)
		_node.Tenant = value
	}
	if value, ok := _c.mutation.FailureClass(); ok {
		_spec.SetField(circuitbreaker.FieldFailureClass, field.TypeEnum, value)
		_node.FailureClass = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(circuitbreaker.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.FailCount(); ok {
		_spec.SetField(circuitbreaker.FieldFailCount, field.TypeInt, value)
		_node.FailCount = value
	}
	if value, ok := _c.mutation.Threshold(); ok {
		_spec.SetField(circuitbreaker.FieldThreshold, field.TypeInt, value)
		_node.Threshold = value
	}
	if value, ok := _c.mutation.WindowStart(); ok {
		_spec.SetField(circuitbreaker.FieldWindowStart, field.TypeTime, value)
		_node.WindowStart = &value
	}
	if value, ok := _c.mutation.OpenedAt(); ok {
		_spec.SetField(circuitbreaker.FieldOpenedAt, field.TypeTime, value)
		_node.OpenedAt = &value
	}
	if value, ok := _c.mutation.CooldownUntil(); ok {
		_spec.SetField(circuitbreaker.FieldCooldownUntil, field.TypeTime, value)
		_node.CooldownUntil = &value
	}
	if value, ok := _c.mutation.CooldownS(); ok {
		_spec.SetField(circuitbreaker.FieldCooldownS, field.TypeInt, value)
		_node.CooldownS = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CircuitBreaker.Create().
//		SetTenant(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CircuitBreakerUpsert) {
//			SetTenant(v+v).
//		}).
//		Exec(ctx)
func (_c *CircuitBreakerCreate) OnConflict(opts ...sql.ConflictOption) *CircuitBreakerUpsertOne {
	_c.conflict = opts
	return &CircuitBreakerUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CircuitBreaker.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CircuitBreakerCreate) OnConflictColumns(columns ...string) *CircuitBreakerUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CircuitBreakerUpsertOne{
		create: _c,
	}
}

type (
	// CircuitBreakerUpsertOne is the builder for "upsert"-ing
	//  one CircuitBreaker node.
	CircuitBreakerUpsertOne struct {
		create *CircuitBreakerCreate
	}

	// CircuitBreakerUpsert is the "OnConflict" setter.
	CircuitBreakerUpsert struct {
		*sql.UpdateSet
	}
)

// SetState sets the "state" field.
func (u *CircuitBreakerUpsert) SetState(v circuitbreaker.State) *CircuitBreakerUpsert {
	u.Set(circuitbreaker.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *CircuitBreakerUpsert) UpdateState() *CircuitBreakerUpsert {
	u.SetExcluded(circuitbreaker.FieldState)
	return u
}

// SetFailCount sets the "fail_count" field.
func (u *CircuitBreakerUpsert) SetFailCount(v int) *CircuitBreakerUpsert {
	u.Set(circuitbreaker.FieldFailCount, v)
	return u
}

// UpdateFailCount sets the "fail_count" field to the value that was provided on create.
func (u *CircuitBreakerUpsert) UpdateFailCount() *CircuitBreakerUpsert {
	u.SetExcluded(circuitbreaker.FieldFailCount)
	return u
}

// AddFailCount adds v to the "fail_count" field.
func (u *CircuitBreakerUpsert) AddFailCount(v int) *CircuitBreakerUpsert {
	u.Add(circuitbreaker.FieldFailCount, v)
	return u
}

// SetThreshold sets the "threshold" field.
func (u *CircuitBreakerUpsert) SetThreshold(v int) *CircuitBreakerUpsert {
	u.Set(circuitbreaker.FieldThreshold, v)
	return u
}

// UpdateThreshold sets the "threshold" field to the value that was provided on create.
func (u *CircuitBreakerUpsert) UpdateThreshold() *CircuitBreakerUpsert {
	u.SetExcluded(circuitbreaker.FieldThreshold)
	return u
}

// AddThreshold adds v to the "threshold" field.
func (u *CircuitBreakerUpsert) AddThreshold(v int) *CircuitBreakerUpsert {
	u.Add(circuitbreaker.FieldThreshold, v)
	return u
}

// SetWindowStart sets the "window_start" field.
func (u *CircuitBreakerUpsert) SetWindowStart(v time.Time) *CircuitBreakerUpsert {
	u.Set(circuitbreaker.FieldWindowStart, v)
	return u
}

// UpdateWindowStart sets the "window_start" field to the value that was provided on create.
func (u *CircuitBreakerUpsert) UpdateWindowStart() *CircuitBreakerUpsert {
	u.SetExcluded(circuitbreaker.FieldWindowStart)
	return u
}

// ClearWindowStart clears the value of the "window_start" field.
func (u *CircuitBreakerUpsert) ClearWindowStart() *CircuitBreakerUpsert {
	u.SetNull(circuitbreaker.FieldWindowStart)
	return u
}

// SetOpenedAt sets the "opened_at" field.
func (u *CircuitBreakerUpsert) SetOpenedAt(v time.Time) *CircuitBreakerUpsert {
	u.Set(circuitbreaker.FieldOpenedAt, v)
	return u
}

// UpdateOpenedAt sets the "opened_at" field to the value that was provided on create.
func (u *CircuitBreakerUpsert) UpdateOpenedAt() *CircuitBreakerUpsert {
	u.SetExcluded(circuitbreaker.FieldOpenedAt)
	return u
}

// ClearOpenedAt clears the value of the "opened_at" field.
func (u *CircuitBreakerUpsert) ClearOpenedAt() *CircuitBreakerUpsert {
	u.SetNull(circuitbreaker.FieldOpenedAt)
	return u
}

// SetCooldownUntil sets the "cooldown_until" field.
func (u *CircuitBreakerUpsert) SetCooldownUntil(v time.Time) *CircuitBreakerUpsert {
	u.Set(circuitbreaker.FieldCooldownUntil, v)
	return u
}

// UpdateCooldownUntil sets the "cooldown_until" field to the value that was provided on create.
func (u *CircuitBreakerUpsert) UpdateCooldownUntil() *CircuitBreakerUpsert {
	u.SetExcluded(circuitbreaker.FieldCooldownUntil)
	return u
}

// ClearCooldownUntil clears the value of the "cooldown_until" field.
func (u *CircuitBreakerUpsert) ClearCooldownUntil() *CircuitBreakerUpsert {
	u.SetNull(circuitbreaker.FieldCooldownUntil)
	return u
}

// SetCooldownS sets the "cooldown_s" field.
func (u *CircuitBreakerUpsert) SetCooldownS(v int) *CircuitBreakerUpsert {
	u.Set(circuitbreaker.FieldCooldownS, v)
	return u
}

// UpdateCooldownS sets the "cooldown_s" field to the value that was provided on create.
func (u *CircuitBreakerUpsert) UpdateCooldownS() *CircuitBreakerUpsert {
	u.SetExcluded(circuitbreaker.FieldCooldownS)
	return u
}

// AddCooldownS adds v to the "cooldown_s" field.
func (u *CircuitBreakerUpsert) AddCooldownS(v int) *CircuitBreakerUpsert {
	u.Add(circuitbreaker.FieldCooldownS, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CircuitBreaker.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(circuitbreaker.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CircuitBreakerUpsertOne) UpdateNewValues() *CircuitBreakerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(circuitbreaker.FieldID)
		}
		if _, exists := u.create.mutation.Tenant(); exists {
			s.SetIgnore(circuitbreaker.FieldTenant)
		}
		if _, exists := u.create.mutation.FailureClass(); exists {
			s.SetIgnore(circuitbreaker.FieldFailureClass)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CircuitBreaker.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CircuitBreakerUpsertOne) Ignore() *CircuitBreakerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CircuitBreakerUpsertOne) DoNothing() *CircuitBreakerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CircuitBreakerCreate.OnConflict
// documentation for more info.
func (u *CircuitBreakerUpsertOne) Update(set func(*CircuitBreakerUpsert)) *CircuitBreakerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CircuitBreakerUpsert{UpdateSet: update})
	}))
	return u
}

// SetState sets the "state" field.
func (u *CircuitBreakerUpsertOne) SetState(v circuitbreaker.State) *CircuitBreakerUpsertOne {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *CircuitBreakerUpsertOne) UpdateState() *CircuitBreakerUpsertOne {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.UpdateState()
	})
}

// SetFailCount sets the "fail_count" field.
func (u *CircuitBreakerUpsertOne) SetFailCount(v int) *CircuitBreakerUpsertOne {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.SetFailCount(v)
	})
}

// AddFailCount adds v to the "fail_count" field.
func (u *CircuitBreakerUpsertOne) AddFailCount(v int) *CircuitBreakerUpsertOne {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.AddFailCount(v)
	})
}

// UpdateFailCount sets the "fail_count" field to the value that was provided on create.
func (u *CircuitBreakerUpsertOne) UpdateFailCount() *CircuitBreakerUpsertOne {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.UpdateFailCount()
	})
}

// SetThreshold sets the "threshold" field.
func (u *CircuitBreakerUpsertOne) SetThreshold(v int) *CircuitBreakerUpsertOne {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.SetThreshold(v)
	})
}

// AddThreshold adds v to the "threshold" field.
func (u *CircuitBreakerUpsertOne) AddThreshold(v int) *CircuitBreakerUpsertOne {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.AddThreshold(v)
	})
}

// UpdateThreshold sets the "threshold" field to the value that was provided on create.
func (u *CircuitBreakerUpsertOne) UpdateThreshold() *CircuitBreakerUpsertOne {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.UpdateThreshold()
	})
}

// SetWindowStart sets the "window_start" field.
func (u *CircuitBreakerUpsertOne) SetWindowStart(v time.Time) *CircuitBreakerUpsertOne {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.SetWindowStart(v)
	})
}

// UpdateWindowStart sets the "window_start" field to the value that was provided on create.
func (u *CircuitBreakerUpsertOne) UpdateWindowStart() *CircuitBreakerUpsertOne {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.UpdateWindowStart()
	})
}

// ClearWindowStart clears the value of the "window_start" field.
func (u *CircuitBreakerUpsertOne) ClearWindowStart() *CircuitBreakerUpsertOne {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.ClearWindowStart()
	})
}

// SetOpenedAt sets the "opened_at" field.
func (u *CircuitBreakerUpsertOne) SetOpenedAt(v time.Time) *CircuitBreakerUpsertOne {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.SetOpenedAt(v)
	})
}

// UpdateOpenedAt sets the "opened_at" field to the value that was provided on create.
func (u *CircuitBreakerUpsertOne) UpdateOpenedAt() *CircuitBreakerUpsertOne {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.UpdateOpenedAt()
	})
}

// ClearOpenedAt clears the value of the "opened_at" field.
func (u *CircuitBreakerUpsertOne) ClearOpenedAt() *CircuitBreakerUpsertOne {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.ClearOpenedAt()
	})
}

// SetCooldownUntil sets the "cooldown_until" field.
func (u *CircuitBreakerUpsertOne) SetCooldownUntil(v time.Time) *CircuitBreakerUpsertOne {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.SetCooldownUntil(v)
	})
}

// UpdateCooldownUntil sets the "cooldown_until" field to the value that was provided on create.
func (u *CircuitBreakerUpsertOne) UpdateCooldownUntil() *CircuitBreakerUpsertOne {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.UpdateCooldownUntil()
	})
}

// ClearCooldownUntil clears the value of the "cooldown_until" field.
func (u *CircuitBreakerUpsertOne) ClearCooldownUntil() *CircuitBreakerUpsertOne {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.ClearCooldownUntil()
	})
}

// SetCooldownS sets the "cooldown_s" field.
func (u *CircuitBreakerUpsertOne) SetCooldownS(v int) *CircuitBreakerUpsertOne {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.SetCooldownS(v)
	})
}

// AddCooldownS adds v to the "cooldown_s" field.
func (u *CircuitBreakerUpsertOne) AddCooldownS(v int) *CircuitBreakerUpsertOne {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.AddCooldownS(v)
	})
}

// UpdateCooldownS sets the "cooldown_s" field to the value that was provided on create.
func (u *CircuitBreakerUpsertOne) UpdateCooldownS() *CircuitBreakerUpsertOne {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.UpdateCooldownS()
	})
}

// Exec executes the query.
func (u *CircuitBreakerUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CircuitBreakerCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CircuitBreakerUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CircuitBreakerUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CircuitBreakerUpsertOne.ID is not supported by MySQL driver. Use CircuitBreakerUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CircuitBreakerUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CircuitBreakerCreateBulk is the builder for creating many CircuitBreaker entities in bulk.
type CircuitBreakerCreateBulk struct {
	config
	err      error
	builders []*CircuitBreakerCreate
	conflict []sql.ConflictOption
}

// Save creates the CircuitBreaker entities in the database.
func (_c *CircuitBreakerCreateBulk) Save(ctx context.Context) ([]*CircuitBreaker, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CircuitBreaker, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CircuitBreakerMutation)
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
func (_c *CircuitBreakerCreateBulk) SaveX(ctx context.Context) []*CircuitBreaker {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CircuitBreakerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CircuitBreakerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CircuitBreaker.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CircuitBreakerUpsert) {
//			SetTenant(v+v).
//		}).
//		Exec(ctx)
func (_c *CircuitBreakerCreateBulk) OnConflict(opts ...sql.ConflictOption) *CircuitBreakerUpsertBulk {
	_c.conflict = opts
	return &CircuitBreakerUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CircuitBreaker.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CircuitBreakerCreateBulk) OnConflictColumns(columns ...string) *CircuitBreakerUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CircuitBreakerUpsertBulk{
		create: _c,
	}
}

// CircuitBreakerUpsertBulk is the builder for "upsert"-ing
// a bulk of CircuitBreaker nodes.
type CircuitBreakerUpsertBulk struct {
	create *CircuitBreakerCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CircuitBreaker.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(circuitbreaker.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CircuitBreakerUpsertBulk) UpdateNewValues() *CircuitBreakerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(circuitbreaker.FieldID)
			}
			if _, exists := b.mutation.Tenant(); exists {
				s.SetIgnore(circuitbreaker.FieldTenant)
			}
			if _, exists := b.mutation.FailureClass(); exists {
				s.SetIgnore(circuitbreaker.FieldFailureClass)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CircuitBreaker.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CircuitBreakerUpsertBulk) Ignore() *CircuitBreakerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CircuitBreakerUpsertBulk) DoNothing() *CircuitBreakerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CircuitBreakerCreateBulk.OnConflict
// documentation for more info.
func (u *CircuitBreakerUpsertBulk) Update(set func(*CircuitBreakerUpsert)) *CircuitBreakerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CircuitBreakerUpsert{UpdateSet: update})
	}))
	return u
}

// SetState sets the "state" field.
func (u *CircuitBreakerUpsertBulk) SetState(v circuitbreaker.State) *CircuitBreakerUpsertBulk {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *CircuitBreakerUpsertBulk) UpdateState() *CircuitBreakerUpsertBulk {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.UpdateState()
	})
}

// SetFailCount sets the "fail_count" field.
func (u *CircuitBreakerUpsertBulk) SetFailCount(v int) *CircuitBreakerUpsertBulk {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.SetFailCount(v)
	})
}

// AddFailCount adds v to the "fail_count" field.
func (u *CircuitBreakerUpsertBulk) AddFailCount(v int) *CircuitBreakerUpsertBulk {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.AddFailCount(v)
	})
}

// UpdateFailCount sets the "fail_count" field to the value that was provided on create.
func (u *CircuitBreakerUpsertBulk) UpdateFailCount() *CircuitBreakerUpsertBulk {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.UpdateFailCount()
	})
}

// SetThreshold sets the "threshold" field.
func (u *CircuitBreakerUpsertBulk) SetThreshold(v int) *CircuitBreakerUpsertBulk {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.SetThreshold(v)
	})
}

// AddThreshold adds v to the "threshold" field.
func (u *CircuitBreakerUpsertBulk) AddThreshold(v int) *CircuitBreakerUpsertBulk {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.AddThreshold(v)
	})
}

// UpdateThreshold sets the "threshold" field to the value that was provided on create.
func (u *CircuitBreakerUpsertBulk) UpdateThreshold() *CircuitBreakerUpsertBulk {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.UpdateThreshold()
	})
}

// SetWindowStart sets the "window_start" field.
func (u *CircuitBreakerUpsertBulk) SetWindowStart(v time.Time) *CircuitBreakerUpsertBulk {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.SetWindowStart(v)
	})
}

// UpdateWindowStart sets the "window_start" field to the value that was provided on create.
func (u *CircuitBreakerUpsertBulk) UpdateWindowStart() *CircuitBreakerUpsertBulk {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.UpdateWindowStart()
	})
}

// ClearWindowStart clears the value of the "window_start" field.
func (u *CircuitBreakerUpsertBulk) ClearWindowStart() *CircuitBreakerUpsertBulk {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.ClearWindowStart()
	})
}

// SetOpenedAt sets the "opened_at" field.
func (u *CircuitBreakerUpsertBulk) SetOpenedAt(v time.Time) *CircuitBreakerUpsertBulk {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.SetOpenedAt(v)
	})
}

// UpdateOpenedAt sets the "opened_at" field to the value that was provided on create.
func (u *CircuitBreakerUpsertBulk) UpdateOpenedAt() *CircuitBreakerUpsertBulk {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.UpdateOpenedAt()
	})
}

// ClearOpenedAt clears the value of the "opened_at" field.
func (u *CircuitBreakerUpsertBulk) ClearOpenedAt() *CircuitBreakerUpsertBulk {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.ClearOpenedAt()
	})
}

// SetCooldownUntil sets the "cooldown_until" field.
func (u *CircuitBreakerUpsertBulk) SetCooldownUntil(v time.Time) *CircuitBreakerUpsertBulk {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.SetCooldownUntil(v)
	})
}

// UpdateCooldownUntil sets the "cooldown_until" field to the value that was provided on create.
func (u *CircuitBreakerUpsertBulk) UpdateCooldownUntil() *CircuitBreakerUpsertBulk {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.UpdateCooldownUntil()
	})
}

// ClearCooldownUntil clears the value of the "cooldown_until" field.
func (u *CircuitBreakerUpsertBulk) ClearCooldownUntil() *CircuitBreakerUpsertBulk {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.ClearCooldownUntil()
	})
}

// SetCooldownS sets the "cooldown_s" field.
func (u *CircuitBreakerUpsertBulk) SetCooldownS(v int) *CircuitBreakerUpsertBulk {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.SetCooldownS(v)
	})
}

// AddCooldownS adds v to the "cooldown_s" field.
func (u *CircuitBreakerUpsertBulk) AddCooldownS(v int) *CircuitBreakerUpsertBulk {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.AddCooldownS(v)
	})
}

// UpdateCooldownS sets the "cooldown_s" field to the value that was provided on create.
func (u *CircuitBreakerUpsertBulk) UpdateCooldownS() *CircuitBreakerUpsertBulk {
	return u.Update(func(s *CircuitBreakerUpsert) {
		s.UpdateCooldownS()
	})
}

// Exec executes the query.
func (u *CircuitBreakerUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CircuitBreakerCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CircuitBreakerCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CircuitBreakerUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
