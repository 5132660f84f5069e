// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgeworks/metabuild/ent/approvalgate"
	"github.com/forgeworks/metabuild/ent/artifact"
	"github.com/forgeworks/metabuild/ent/blob"
	"github.com/forgeworks/metabuild/ent/budget"
	"github.com/forgeworks/metabuild/ent/buildspec"
	"github.com/forgeworks/metabuild/ent/canarysample"
	"github.com/forgeworks/metabuild/ent/circuitbreaker"
	"github.com/forgeworks/metabuild/ent/event"
	"github.com/forgeworks/metabuild/ent/failure"
	"github.com/forgeworks/metabuild/ent/predicate"
	"github.com/forgeworks/metabuild/ent/queuelease"
	"github.com/forgeworks/metabuild/ent/repairattempt"
	"github.com/forgeworks/metabuild/ent/replaybundle"
	"github.com/forgeworks/metabuild/ent/run"
	"github.com/forgeworks/metabuild/ent/step"
	"github.com/forgeworks/metabuild/ent/timelineevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeApprovalGate   = "ApprovalGate"
	TypeArtifact       = "Artifact"
	TypeBlob           = "Blob"
	TypeBudget         = "Budget"
	TypeBuildSpec      = "BuildSpec"
	TypeCanarySample   = "CanarySample"
	TypeCircuitBreaker = "CircuitBreaker"
	TypeEvent          = "Event"
	TypeFailure        = "Failure"
	TypeQueueLease     = "QueueLease"
	TypeRepairAttempt  = "RepairAttempt"
	TypeReplayBundle   = "ReplayBundle"
	TypeRun            = "Run"
	TypeStep           = "Step"
	TypeTimelineEvent  = "TimelineEvent"
)

// ApprovalGateMutation represents an operation that mutates the ApprovalGate nodes in the graph.
type ApprovalGateMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant        *string
	reason        *string
	required_role *string
	decision      *approvalgate.Decision
	decider       *string
	decided_at    *time.Time
	created_at    *time.Time
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*ApprovalGate, error)
	predicates    []predicate.ApprovalGate
}

var _ ent.Mutation = (*ApprovalGateMutation)(nil)

// approvalgateOption allows management of the mutation configuration using functional options.
type approvalgateOption func(*ApprovalGateMutation)

// newApprovalGateMutation creates new mutation for the ApprovalGate entity.
func newApprovalGateMutation(c config, op Op, opts ...approvalgateOption) *ApprovalGateMutation {
	m := &ApprovalGateMutation{
		config:        c,
		op:            op,
		typ:           TypeApprovalGate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApprovalGateID sets the ID field of the mutation.
func withApprovalGateID(id string) approvalgateOption {
	return func(m *ApprovalGateMutation) {
		var (
			err   error
			once  sync.Once
			value *ApprovalGate
		)
		m.oldValue = func(ctx context.Context) (*ApprovalGate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ApprovalGate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApprovalGate sets the old ApprovalGate of the mutation.
func withApprovalGate(node *ApprovalGate) approvalgateOption {
	return func(m *ApprovalGateMutation) {
		m.oldValue = func(context.Context) (*ApprovalGate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApprovalGateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApprovalGateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ApprovalGate entities.
func (m *ApprovalGateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApprovalGateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApprovalGateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ApprovalGate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenant sets the "tenant" field.
func (m *ApprovalGateMutation) SetTenant(s string) {
	m.tenant = &s
}

// Tenant returns the value of the "tenant" field in the mutation.
func (m *ApprovalGateMutation) Tenant() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenant returns the old "tenant" field's value of the ApprovalGate entity.
// If the ApprovalGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalGateMutation) OldTenant(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenant: %w", err)
	}
	return oldValue.Tenant, nil
}

// ResetTenant resets all changes to the "tenant" field.
func (m *ApprovalGateMutation) ResetTenant() {
	m.tenant = nil
}

// SetRunID sets the "run_id" field.
func (m *ApprovalGateMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *ApprovalGateMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the ApprovalGate entity.
// If the ApprovalGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalGateMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *ApprovalGateMutation) ResetRunID() {
	m.run = nil
}

// SetReason sets the "reason" field.
func (m *ApprovalGateMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *ApprovalGateMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the ApprovalGate entity.
// If the ApprovalGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalGateMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *ApprovalGateMutation) ResetReason() {
	m.reason = nil
}

// SetRequiredRole sets the "required_role" field.
func (m *ApprovalGateMutation) SetRequiredRole(s string) {
	m.required_role = &s
}

// RequiredRole returns the value of the "required_role" field in the mutation.
func (m *ApprovalGateMutation) RequiredRole() (r string, exists bool) {
	v := m.required_role
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiredRole returns the old "required_role" field's value of the ApprovalGate entity.
// If the ApprovalGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalGateMutation) OldRequiredRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiredRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiredRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiredRole: %w", err)
	}
	return oldValue.RequiredRole, nil
}

// ResetRequiredRole resets all changes to the "required_role" field.
func (m *ApprovalGateMutation) ResetRequiredRole() {
	m.required_role = nil
}

// SetDecision sets the "decision" field.
func (m *ApprovalGateMutation) SetDecision(a approvalgate.Decision) {
	m.decision = &a
}

// Decision returns the value of the "decision" field in the mutation.
func (m *ApprovalGateMutation) Decision() (r approvalgate.Decision, exists bool) {
	v := m.decision
	if v == nil {
		return
	}
	return *v, true
}

// OldDecision returns the old "decision" field's value of the ApprovalGate entity.
// If the ApprovalGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalGateMutation) OldDecision(ctx context.Context) (v approvalgate.Decision, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecision: %w", err)
	}
	return oldValue.Decision, nil
}

// ResetDecision resets all changes to the "decision" field.
func (m *ApprovalGateMutation) ResetDecision() {
	m.decision = nil
}

// SetDecider sets the "decider" field.
func (m *ApprovalGateMutation) SetDecider(s string) {
	m.decider = &s
}

// Decider returns the value of the "decider" field in the mutation.
func (m *ApprovalGateMutation) Decider() (r string, exists bool) {
	v := m.decider
	if v == nil {
		return
	}
	return *v, true
}

// OldDecider returns the old "decider" field's value of the ApprovalGate entity.
// If the ApprovalGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalGateMutation) OldDecider(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecider: %w", err)
	}
	return oldValue.Decider, nil
}

// ClearDecider clears the value of the "decider" field.
func (m *ApprovalGateMutation) ClearDecider() {
	m.decider = nil
	m.clearedFields[approvalgate.FieldDecider] = struct{}{}
}

// DeciderCleared returns if the "decider" field was cleared in this mutation.
func (m *ApprovalGateMutation) DeciderCleared() bool {
	_, ok := m.clearedFields[approvalgate.FieldDecider]
	return ok
}

// ResetDecider resets all changes to the "decider" field.
func (m *ApprovalGateMutation) ResetDecider() {
	m.decider = nil
	delete(m.clearedFields, approvalgate.FieldDecider)
}

// SetDecidedAt sets the "decided_at" field.
func (m *ApprovalGateMutation) SetDecidedAt(t time.Time) {
	m.decided_at = &t
}

// DecidedAt returns the value of the "decided_at" field in the mutation.
func (m *ApprovalGateMutation) DecidedAt() (r time.Time, exists bool) {
	v := m.decided_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDecidedAt returns the old "decided_at" field's value of the ApprovalGate entity.
// If the ApprovalGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalGateMutation) OldDecidedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecidedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecidedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecidedAt: %w", err)
	}
	return oldValue.DecidedAt, nil
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (m *ApprovalGateMutation) ClearDecidedAt() {
	m.decided_at = nil
	m.clearedFields[approvalgate.FieldDecidedAt] = struct{}{}
}

// DecidedAtCleared returns if the "decided_at" field was cleared in this mutation.
func (m *ApprovalGateMutation) DecidedAtCleared() bool {
	_, ok := m.clearedFields[approvalgate.FieldDecidedAt]
	return ok
}

// ResetDecidedAt resets all changes to the "decided_at" field.
func (m *ApprovalGateMutation) ResetDecidedAt() {
	m.decided_at = nil
	delete(m.clearedFields, approvalgate.FieldDecidedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ApprovalGateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ApprovalGateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ApprovalGate entity.
// If the ApprovalGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalGateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ApprovalGateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *ApprovalGateMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[approvalgate.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *ApprovalGateMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *ApprovalGateMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *ApprovalGateMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the ApprovalGateMutation builder.
func (m *ApprovalGateMutation) Where(ps ...predicate.ApprovalGate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApprovalGateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApprovalGateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ApprovalGate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApprovalGateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApprovalGateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ApprovalGate).
func (m *ApprovalGateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApprovalGateMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.tenant != nil {
		fields = append(fields, approvalgate.FieldTenant)
	}
	if m.run != nil {
		fields = append(fields, approvalgate.FieldRunID)
	}
	if m.reason != nil {
		fields = append(fields, approvalgate.FieldReason)
	}
	if m.required_role != nil {
		fields = append(fields, approvalgate.FieldRequiredRole)
	}
	if m.decision != nil {
		fields = append(fields, approvalgate.FieldDecision)
	}
	if m.decider != nil {
		fields = append(fields, approvalgate.FieldDecider)
	}
	if m.decided_at != nil {
		fields = append(fields, approvalgate.FieldDecidedAt)
	}
	if m.created_at != nil {
		fields = append(fields, approvalgate.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApprovalGateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case approvalgate.FieldTenant:
		return m.Tenant()
	case approvalgate.FieldRunID:
		return m.RunID()
	case approvalgate.FieldReason:
		return m.Reason()
	case approvalgate.FieldRequiredRole:
		return m.RequiredRole()
	case approvalgate.FieldDecision:
		return m.Decision()
	case approvalgate.FieldDecider:
		return m.Decider()
	case approvalgate.FieldDecidedAt:
		return m.DecidedAt()
	case approvalgate.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApprovalGateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case approvalgate.FieldTenant:
		return m.OldTenant(ctx)
	case approvalgate.FieldRunID:
		return m.OldRunID(ctx)
	case approvalgate.FieldReason:
		return m.OldReason(ctx)
	case approvalgate.FieldRequiredRole:
		return m.OldRequiredRole(ctx)
	case approvalgate.FieldDecision:
		return m.OldDecision(ctx)
	case approvalgate.FieldDecider:
		return m.OldDecider(ctx)
	case approvalgate.FieldDecidedAt:
		return m.OldDecidedAt(ctx)
	case approvalgate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ApprovalGate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalGateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case approvalgate.FieldTenant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenant(v)
		return nil
	case approvalgate.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case approvalgate.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case approvalgate.FieldRequiredRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiredRole(v)
		return nil
	case approvalgate.FieldDecision:
		v, ok := value.(approvalgate.Decision)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecision(v)
		return nil
	case approvalgate.FieldDecider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecider(v)
		return nil
	case approvalgate.FieldDecidedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecidedAt(v)
		return nil
	case approvalgate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ApprovalGate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApprovalGateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApprovalGateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalGateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ApprovalGate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApprovalGateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(approvalgate.FieldDecider) {
		fields = append(fields, approvalgate.FieldDecider)
	}
	if m.FieldCleared(approvalgate.FieldDecidedAt) {
		fields = append(fields, approvalgate.FieldDecidedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApprovalGateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApprovalGateMutation) ClearField(name string) error {
	switch name {
	case approvalgate.FieldDecider:
		m.ClearDecider()
		return nil
	case approvalgate.FieldDecidedAt:
		m.ClearDecidedAt()
		return nil
	}
	return fmt.Errorf("unknown ApprovalGate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApprovalGateMutation) ResetField(name string) error {
	switch name {
	case approvalgate.FieldTenant:
		m.ResetTenant()
		return nil
	case approvalgate.FieldRunID:
		m.ResetRunID()
		return nil
	case approvalgate.FieldReason:
		m.ResetReason()
		return nil
	case approvalgate.FieldRequiredRole:
		m.ResetRequiredRole()
		return nil
	case approvalgate.FieldDecision:
		m.ResetDecision()
		return nil
	case approvalgate.FieldDecider:
		m.ResetDecider()
		return nil
	case approvalgate.FieldDecidedAt:
		m.ResetDecidedAt()
		return nil
	case approvalgate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ApprovalGate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApprovalGateMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, approvalgate.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApprovalGateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case approvalgate.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApprovalGateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApprovalGateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApprovalGateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, approvalgate.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApprovalGateMutation) EdgeCleared(name string) bool {
	switch name {
	case approvalgate.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApprovalGateMutation) ClearEdge(name string) error {
	switch name {
	case approvalgate.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown ApprovalGate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApprovalGateMutation) ResetEdge(name string) error {
	switch name {
	case approvalgate.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown ApprovalGate edge %s", name)
}

// ArtifactMutation represents an operation that mutates the Artifact nodes in the graph.
type ArtifactMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant        *string
	iteration     *int
	additeration  *int
	kind          *artifact.Kind
	storage_ref   *string
	sha256        *string
	bytes         *int64
	addbytes      *int64
	created_at    *time.Time
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*Artifact, error)
	predicates    []predicate.Artifact
}

var _ ent.Mutation = (*ArtifactMutation)(nil)

// artifactOption allows management of the mutation configuration using functional options.
type artifactOption func(*ArtifactMutation)

// newArtifactMutation creates new mutation for the Artifact entity.
func newArtifactMutation(c config, op Op, opts ...artifactOption) *ArtifactMutation {
	m := &ArtifactMutation{
		config:        c,
		op:            op,
		typ:           TypeArtifact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withArtifactID sets the ID field of the mutation.
func withArtifactID(id string) artifactOption {
	return func(m *ArtifactMutation) {
		var (
			err   error
			once  sync.Once
			value *Artifact
		)
		m.oldValue = func(ctx context.Context) (*Artifact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Artifact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withArtifact sets the old Artifact of the mutation.
func withArtifact(node *Artifact) artifactOption {
	return func(m *ArtifactMutation) {
		m.oldValue = func(context.Context) (*Artifact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ArtifactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ArtifactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Artifact entities.
func (m *ArtifactMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ArtifactMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ArtifactMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Artifact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenant sets the "tenant" field.
func (m *ArtifactMutation) SetTenant(s string) {
	m.tenant = &s
}

// Tenant returns the value of the "tenant" field in the mutation.
func (m *ArtifactMutation) Tenant() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenant returns the old "tenant" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldTenant(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenant: %w", err)
	}
	return oldValue.Tenant, nil
}

// ResetTenant resets all changes to the "tenant" field.
func (m *ArtifactMutation) ResetTenant() {
	m.tenant = nil
}

// SetRunID sets the "run_id" field.
func (m *ArtifactMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *ArtifactMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *ArtifactMutation) ResetRunID() {
	m.run = nil
}

// SetIteration sets the "iteration" field.
func (m *ArtifactMutation) SetIteration(i int) {
	m.iteration = &i
	m.additeration = nil
}

// Iteration returns the value of the "iteration" field in the mutation.
func (m *ArtifactMutation) Iteration() (r int, exists bool) {
	v := m.iteration
	if v == nil {
		return
	}
	return *v, true
}

// OldIteration returns the old "iteration" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldIteration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIteration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIteration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIteration: %w", err)
	}
	return oldValue.Iteration, nil
}

// AddIteration adds i to the "iteration" field.
func (m *ArtifactMutation) AddIteration(i int) {
	if m.additeration != nil {
		*m.additeration += i
	} else {
		m.additeration = &i
	}
}

// AddedIteration returns the value that was added to the "iteration" field in this mutation.
func (m *ArtifactMutation) AddedIteration() (r int, exists bool) {
	v := m.additeration
	if v == nil {
		return
	}
	return *v, true
}

// ResetIteration resets all changes to the "iteration" field.
func (m *ArtifactMutation) ResetIteration() {
	m.iteration = nil
	m.additeration = nil
}

// SetKind sets the "kind" field.
func (m *ArtifactMutation) SetKind(a artifact.Kind) {
	m.kind = &a
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ArtifactMutation) Kind() (r artifact.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldKind(ctx context.Context) (v artifact.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ArtifactMutation) ResetKind() {
	m.kind = nil
}

// SetStorageRef sets the "storage_ref" field.
func (m *ArtifactMutation) SetStorageRef(s string) {
	m.storage_ref = &s
}

// StorageRef returns the value of the "storage_ref" field in the mutation.
func (m *ArtifactMutation) StorageRef() (r string, exists bool) {
	v := m.storage_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageRef returns the old "storage_ref" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldStorageRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageRef: %w", err)
	}
	return oldValue.StorageRef, nil
}

// ResetStorageRef resets all changes to the "storage_ref" field.
func (m *ArtifactMutation) ResetStorageRef() {
	m.storage_ref = nil
}

// SetSha256 sets the "sha256" field.
func (m *ArtifactMutation) SetSha256(s string) {
	m.sha256 = &s
}

// Sha256 returns the value of the "sha256" field in the mutation.
func (m *ArtifactMutation) Sha256() (r string, exists bool) {
	v := m.sha256
	if v == nil {
		return
	}
	return *v, true
}

// OldSha256 returns the old "sha256" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldSha256(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSha256 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSha256 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSha256: %w", err)
	}
	return oldValue.Sha256, nil
}

// ResetSha256 resets all changes to the "sha256" field.
func (m *ArtifactMutation) ResetSha256() {
	m.sha256 = nil
}

// SetBytes sets the "bytes" field.
func (m *ArtifactMutation) SetBytes(i int64) {
	m.bytes = &i
	m.addbytes = nil
}

// Bytes returns the value of the "bytes" field in the mutation.
func (m *ArtifactMutation) Bytes() (r int64, exists bool) {
	v := m.bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldBytes returns the old "bytes" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBytes: %w", err)
	}
	return oldValue.Bytes, nil
}

// AddBytes adds i to the "bytes" field.
func (m *ArtifactMutation) AddBytes(i int64) {
	if m.addbytes != nil {
		*m.addbytes += i
	} else {
		m.addbytes = &i
	}
}

// AddedBytes returns the value that was added to the "bytes" field in this mutation.
func (m *ArtifactMutation) AddedBytes() (r int64, exists bool) {
	v := m.addbytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetBytes resets all changes to the "bytes" field.
func (m *ArtifactMutation) ResetBytes() {
	m.bytes = nil
	m.addbytes = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ArtifactMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ArtifactMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ArtifactMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *ArtifactMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[artifact.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *ArtifactMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *ArtifactMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *ArtifactMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the ArtifactMutation builder.
func (m *ArtifactMutation) Where(ps ...predicate.Artifact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ArtifactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ArtifactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Artifact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ArtifactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ArtifactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Artifact).
func (m *ArtifactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ArtifactMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.tenant != nil {
		fields = append(fields, artifact.FieldTenant)
	}
	if m.run != nil {
		fields = append(fields, artifact.FieldRunID)
	}
	if m.iteration != nil {
		fields = append(fields, artifact.FieldIteration)
	}
	if m.kind != nil {
		fields = append(fields, artifact.FieldKind)
	}
	if m.storage_ref != nil {
		fields = append(fields, artifact.FieldStorageRef)
	}
	if m.sha256 != nil {
		fields = append(fields, artifact.FieldSha256)
	}
	if m.bytes != nil {
		fields = append(fields, artifact.FieldBytes)
	}
	if m.created_at != nil {
		fields = append(fields, artifact.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ArtifactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case artifact.FieldTenant:
		return m.Tenant()
	case artifact.FieldRunID:
		return m.RunID()
	case artifact.FieldIteration:
		return m.Iteration()
	case artifact.FieldKind:
		return m.Kind()
	case artifact.FieldStorageRef:
		return m.StorageRef()
	case artifact.FieldSha256:
		return m.Sha256()
	case artifact.FieldBytes:
		return m.Bytes()
	case artifact.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ArtifactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case artifact.FieldTenant:
		return m.OldTenant(ctx)
	case artifact.FieldRunID:
		return m.OldRunID(ctx)
	case artifact.FieldIteration:
		return m.OldIteration(ctx)
	case artifact.FieldKind:
		return m.OldKind(ctx)
	case artifact.FieldStorageRef:
		return m.OldStorageRef(ctx)
	case artifact.FieldSha256:
		return m.OldSha256(ctx)
	case artifact.FieldBytes:
		return m.OldBytes(ctx)
	case artifact.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Artifact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArtifactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case artifact.FieldTenant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenant(v)
		return nil
	case artifact.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case artifact.FieldIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIteration(v)
		return nil
	case artifact.FieldKind:
		v, ok := value.(artifact.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case artifact.FieldStorageRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageRef(v)
		return nil
	case artifact.FieldSha256:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSha256(v)
		return nil
	case artifact.FieldBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBytes(v)
		return nil
	case artifact.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Artifact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ArtifactMutation) AddedFields() []string {
	var fields []string
	if m.additeration != nil {
		fields = append(fields, artifact.FieldIteration)
	}
	if m.addbytes != nil {
		fields = append(fields, artifact.FieldBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ArtifactMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case artifact.FieldIteration:
		return m.AddedIteration()
	case artifact.FieldBytes:
		return m.AddedBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArtifactMutation) AddField(name string, value ent.Value) error {
	switch name {
	case artifact.FieldIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIteration(v)
		return nil
	case artifact.FieldBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBytes(v)
		return nil
	}
	return fmt.Errorf("unknown Artifact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ArtifactMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ArtifactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ArtifactMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Artifact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ArtifactMutation) ResetField(name string) error {
	switch name {
	case artifact.FieldTenant:
		m.ResetTenant()
		return nil
	case artifact.FieldRunID:
		m.ResetRunID()
		return nil
	case artifact.FieldIteration:
		m.ResetIteration()
		return nil
	case artifact.FieldKind:
		m.ResetKind()
		return nil
	case artifact.FieldStorageRef:
		m.ResetStorageRef()
		return nil
	case artifact.FieldSha256:
		m.ResetSha256()
		return nil
	case artifact.FieldBytes:
		m.ResetBytes()
		return nil
	case artifact.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Artifact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ArtifactMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, artifact.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ArtifactMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case artifact.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ArtifactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ArtifactMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ArtifactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, artifact.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ArtifactMutation) EdgeCleared(name string) bool {
	switch name {
	case artifact.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ArtifactMutation) ClearEdge(name string) error {
	switch name {
	case artifact.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown Artifact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ArtifactMutation) ResetEdge(name string) error {
	switch name {
	case artifact.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown Artifact edge %s", name)
}

// BlobMutation represents an operation that mutates the Blob nodes in the graph.
type BlobMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant        *string
	data          *[]byte
	size          *int64
	addsize       *int64
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Blob, error)
	predicates    []predicate.Blob
}

var _ ent.Mutation = (*BlobMutation)(nil)

// blobOption allows management of the mutation configuration using functional options.
type blobOption func(*BlobMutation)

// newBlobMutation creates new mutation for the Blob entity.
func newBlobMutation(c config, op Op, opts ...blobOption) *BlobMutation {
	m := &BlobMutation{
		config:        c,
		op:            op,
		typ:           TypeBlob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBlobID sets the ID field of the mutation.
func withBlobID(id string) blobOption {
	return func(m *BlobMutation) {
		var (
			err   error
			once  sync.Once
			value *Blob
		)
		m.oldValue = func(ctx context.Context) (*Blob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Blob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBlob sets the old Blob of the mutation.
func withBlob(node *Blob) blobOption {
	return func(m *BlobMutation) {
		m.oldValue = func(context.Context) (*Blob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BlobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BlobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Blob entities.
func (m *BlobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BlobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BlobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Blob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenant sets the "tenant" field.
func (m *BlobMutation) SetTenant(s string) {
	m.tenant = &s
}

// Tenant returns the value of the "tenant" field in the mutation.
func (m *BlobMutation) Tenant() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenant returns the old "tenant" field's value of the Blob entity.
// If the Blob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlobMutation) OldTenant(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenant: %w", err)
	}
	return oldValue.Tenant, nil
}

// ResetTenant resets all changes to the "tenant" field.
func (m *BlobMutation) ResetTenant() {
	m.tenant = nil
}

// SetData sets the "data" field.
func (m *BlobMutation) SetData(b []byte) {
	m.data = &b
}

// Data returns the value of the "data" field in the mutation.
func (m *BlobMutation) Data() (r []byte, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Blob entity.
// If the Blob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlobMutation) OldData(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *BlobMutation) ResetData() {
	m.data = nil
}

// SetSize sets the "size" field.
func (m *BlobMutation) SetSize(i int64) {
	m.size = &i
	m.addsize = nil
}

// Size returns the value of the "size" field in the mutation.
func (m *BlobMutation) Size() (r int64, exists bool) {
	v := m.size
	if v == nil {
		return
	}
	return *v, true
}

// OldSize returns the old "size" field's value of the Blob entity.
// If the Blob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlobMutation) OldSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSize: %w", err)
	}
	return oldValue.Size, nil
}

// AddSize adds i to the "size" field.
func (m *BlobMutation) AddSize(i int64) {
	if m.addsize != nil {
		*m.addsize += i
	} else {
		m.addsize = &i
	}
}

// AddedSize returns the value that was added to the "size" field in this mutation.
func (m *BlobMutation) AddedSize() (r int64, exists bool) {
	v := m.addsize
	if v == nil {
		return
	}
	return *v, true
}

// ResetSize resets all changes to the "size" field.
func (m *BlobMutation) ResetSize() {
	m.size = nil
	m.addsize = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BlobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BlobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Blob entity.
// If the Blob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BlobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the BlobMutation builder.
func (m *BlobMutation) Where(ps ...predicate.Blob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BlobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BlobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Blob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BlobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BlobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Blob).
func (m *BlobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BlobMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.tenant != nil {
		fields = append(fields, blob.FieldTenant)
	}
	if m.data != nil {
		fields = append(fields, blob.FieldData)
	}
	if m.size != nil {
		fields = append(fields, blob.FieldSize)
	}
	if m.created_at != nil {
		fields = append(fields, blob.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BlobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case blob.FieldTenant:
		return m.Tenant()
	case blob.FieldData:
		return m.Data()
	case blob.FieldSize:
		return m.Size()
	case blob.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BlobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case blob.FieldTenant:
		return m.OldTenant(ctx)
	case blob.FieldData:
		return m.OldData(ctx)
	case blob.FieldSize:
		return m.OldSize(ctx)
	case blob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Blob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case blob.FieldTenant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenant(v)
		return nil
	case blob.FieldData:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case blob.FieldSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSize(v)
		return nil
	case blob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Blob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BlobMutation) AddedFields() []string {
	var fields []string
	if m.addsize != nil {
		fields = append(fields, blob.FieldSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BlobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case blob.FieldSize:
		return m.AddedSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case blob.FieldSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSize(v)
		return nil
	}
	return fmt.Errorf("unknown Blob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BlobMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BlobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BlobMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Blob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BlobMutation) ResetField(name string) error {
	switch name {
	case blob.FieldTenant:
		m.ResetTenant()
		return nil
	case blob.FieldData:
		m.ResetData()
		return nil
	case blob.FieldSize:
		m.ResetSize()
		return nil
	case blob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Blob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BlobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BlobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BlobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BlobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BlobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BlobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BlobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Blob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BlobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Blob edge %s", name)
}

// BudgetMutation represents an operation that mutates the Budget nodes in the graph.
type BudgetMutation struct {
	config
	op                Op
	typ               string
	id                *string
	tenant            *string
	cost_limit_usd    *float64
	addcost_limit_usd *float64
	cost_used_usd     *float64
	addcost_used_usd  *float64
	time_limit_s      *int
	addtime_limit_s   *int
	time_used_s       *int
	addtime_used_s    *int
	attempt_limit     *int
	addattempt_limit  *int
	attempt_used      *int
	addattempt_used   *int
	exceeded_at       *time.Time
	clearedFields     map[string]struct{}
	run               *string
	clearedrun        bool
	done              bool
	oldValue          func(context.Context) (*Budget, error)
	predicates        []predicate.Budget
}

var _ ent.Mutation = (*BudgetMutation)(nil)

// budgetOption allows management of the mutation configuration using functional options.
type budgetOption func(*BudgetMutation)

// newBudgetMutation creates new mutation for the Budget entity.
func newBudgetMutation(c config, op Op, opts ...budgetOption) *BudgetMutation {
	m := &BudgetMutation{
		config:        c,
		op:            op,
		typ:           TypeBudget,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBudgetID sets the ID field of the mutation.
func withBudgetID(id string) budgetOption {
	return func(m *BudgetMutation) {
		var (
			err   error
			once  sync.Once
			value *Budget
		)
		m.oldValue = func(ctx context.Context) (*Budget, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Budget.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBudget sets the old Budget of the mutation.
func withBudget(node *Budget) budgetOption {
	return func(m *BudgetMutation) {
		m.oldValue = func(context.Context) (*Budget, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BudgetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BudgetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Budget entities.
func (m *BudgetMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BudgetMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BudgetMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Budget.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenant sets the "tenant" field.
func (m *BudgetMutation) SetTenant(s string) {
	m.tenant = &s
}

// Tenant returns the value of the "tenant" field in the mutation.
func (m *BudgetMutation) Tenant() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenant returns the old "tenant" field's value of the Budget entity.
// If the Budget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetMutation) OldTenant(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenant: %w", err)
	}
	return oldValue.Tenant, nil
}

// ResetTenant resets all changes to the "tenant" field.
func (m *BudgetMutation) ResetTenant() {
	m.tenant = nil
}

// SetRunID sets the "run_id" field.
func (m *BudgetMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *BudgetMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Budget entity.
// If the Budget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *BudgetMutation) ResetRunID() {
	m.run = nil
}

// SetCostLimitUsd sets the "cost_limit_usd" field.
func (m *BudgetMutation) SetCostLimitUsd(f float64) {
	m.cost_limit_usd = &f
	m.addcost_limit_usd = nil
}

// CostLimitUsd returns the value of the "cost_limit_usd" field in the mutation.
func (m *BudgetMutation) CostLimitUsd() (r float64, exists bool) {
	v := m.cost_limit_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCostLimitUsd returns the old "cost_limit_usd" field's value of the Budget entity.
// If the Budget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetMutation) OldCostLimitUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostLimitUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostLimitUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostLimitUsd: %w", err)
	}
	return oldValue.CostLimitUsd, nil
}

// AddCostLimitUsd adds f to the "cost_limit_usd" field.
func (m *BudgetMutation) AddCostLimitUsd(f float64) {
	if m.addcost_limit_usd != nil {
		*m.addcost_limit_usd += f
	} else {
		m.addcost_limit_usd = &f
	}
}

// AddedCostLimitUsd returns the value that was added to the "cost_limit_usd" field in this mutation.
func (m *BudgetMutation) AddedCostLimitUsd() (r float64, exists bool) {
	v := m.addcost_limit_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostLimitUsd resets all changes to the "cost_limit_usd" field.
func (m *BudgetMutation) ResetCostLimitUsd() {
	m.cost_limit_usd = nil
	m.addcost_limit_usd = nil
}

// SetCostUsedUsd sets the "cost_used_usd" field.
func (m *BudgetMutation) SetCostUsedUsd(f float64) {
	m.cost_used_usd = &f
	m.addcost_used_usd = nil
}

// CostUsedUsd returns the value of the "cost_used_usd" field in the mutation.
func (m *BudgetMutation) CostUsedUsd() (r float64, exists bool) {
	v := m.cost_used_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCostUsedUsd returns the old "cost_used_usd" field's value of the Budget entity.
// If the Budget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetMutation) OldCostUsedUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostUsedUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostUsedUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostUsedUsd: %w", err)
	}
	return oldValue.CostUsedUsd, nil
}

// AddCostUsedUsd adds f to the "cost_used_usd" field.
func (m *BudgetMutation) AddCostUsedUsd(f float64) {
	if m.addcost_used_usd != nil {
		*m.addcost_used_usd += f
	} else {
		m.addcost_used_usd = &f
	}
}

// AddedCostUsedUsd returns the value that was added to the "cost_used_usd" field in this mutation.
func (m *BudgetMutation) AddedCostUsedUsd() (r float64, exists bool) {
	v := m.addcost_used_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostUsedUsd resets all changes to the "cost_used_usd" field.
func (m *BudgetMutation) ResetCostUsedUsd() {
	m.cost_used_usd = nil
	m.addcost_used_usd = nil
}

// SetTimeLimitS sets the "time_limit_s" field.
func (m *BudgetMutation) SetTimeLimitS(i int) {
	m.time_limit_s = &i
	m.addtime_limit_s = nil
}

// TimeLimitS returns the value of the "time_limit_s" field in the mutation.
func (m *BudgetMutation) TimeLimitS() (r int, exists bool) {
	v := m.time_limit_s
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeLimitS returns the old "time_limit_s" field's value of the Budget entity.
// If the Budget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetMutation) OldTimeLimitS(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeLimitS is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeLimitS requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeLimitS: %w", err)
	}
	return oldValue.TimeLimitS, nil
}

// AddTimeLimitS adds i to the "time_limit_s" field.
func (m *BudgetMutation) AddTimeLimitS(i int) {
	if m.addtime_limit_s != nil {
		*m.addtime_limit_s += i
	} else {
		m.addtime_limit_s = &i
	}
}

// AddedTimeLimitS returns the value that was added to the "time_limit_s" field in this mutation.
func (m *BudgetMutation) AddedTimeLimitS() (r int, exists bool) {
	v := m.addtime_limit_s
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeLimitS resets all changes to the "time_limit_s" field.
func (m *BudgetMutation) ResetTimeLimitS() {
	m.time_limit_s = nil
	m.addtime_limit_s = nil
}

// SetTimeUsedS sets the "time_used_s" field.
func (m *BudgetMutation) SetTimeUsedS(i int) {
	m.time_used_s = &i
	m.addtime_used_s = nil
}

// TimeUsedS returns the value of the "time_used_s" field in the mutation.
func (m *BudgetMutation) TimeUsedS() (r int, exists bool) {
	v := m.time_used_s
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeUsedS returns the old "time_used_s" field's value of the Budget entity.
// If the Budget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetMutation) OldTimeUsedS(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeUsedS is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeUsedS requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeUsedS: %w", err)
	}
	return oldValue.TimeUsedS, nil
}

// AddTimeUsedS adds i to the "time_used_s" field.
func (m *BudgetMutation) AddTimeUsedS(i int) {
	if m.addtime_used_s != nil {
		*m.addtime_used_s += i
	} else {
		m.addtime_used_s = &i
	}
}

// AddedTimeUsedS returns the value that was added to the "time_used_s" field in this mutation.
func (m *BudgetMutation) AddedTimeUsedS() (r int, exists bool) {
	v := m.addtime_used_s
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeUsedS resets all changes to the "time_used_s" field.
func (m *BudgetMutation) ResetTimeUsedS() {
	m.time_used_s = nil
	m.addtime_used_s = nil
}

// SetAttemptLimit sets the "attempt_limit" field.
func (m *BudgetMutation) SetAttemptLimit(i int) {
	m.attempt_limit = &i
	m.addattempt_limit = nil
}

// AttemptLimit returns the value of the "attempt_limit" field in the mutation.
func (m *BudgetMutation) AttemptLimit() (r int, exists bool) {
	v := m.attempt_limit
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptLimit returns the old "attempt_limit" field's value of the Budget entity.
// If the Budget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetMutation) OldAttemptLimit(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptLimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptLimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptLimit: %w", err)
	}
	return oldValue.AttemptLimit, nil
}

// AddAttemptLimit adds i to the "attempt_limit" field.
func (m *BudgetMutation) AddAttemptLimit(i int) {
	if m.addattempt_limit != nil {
		*m.addattempt_limit += i
	} else {
		m.addattempt_limit = &i
	}
}

// AddedAttemptLimit returns the value that was added to the "attempt_limit" field in this mutation.
func (m *BudgetMutation) AddedAttemptLimit() (r int, exists bool) {
	v := m.addattempt_limit
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptLimit resets all changes to the "attempt_limit" field.
func (m *BudgetMutation) ResetAttemptLimit() {
	m.attempt_limit = nil
	m.addattempt_limit = nil
}

// SetAttemptUsed sets the "attempt_used" field.
func (m *BudgetMutation) SetAttemptUsed(i int) {
	m.attempt_used = &i
	m.addattempt_used = nil
}

// AttemptUsed returns the value of the "attempt_used" field in the mutation.
func (m *BudgetMutation) AttemptUsed() (r int, exists bool) {
	v := m.attempt_used
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptUsed returns the old "attempt_used" field's value of the Budget entity.
// If the Budget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetMutation) OldAttemptUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptUsed: %w", err)
	}
	return oldValue.AttemptUsed, nil
}

// AddAttemptUsed adds i to the "attempt_used" field.
func (m *BudgetMutation) AddAttemptUsed(i int) {
	if m.addattempt_used != nil {
		*m.addattempt_used += i
	} else {
		m.addattempt_used = &i
	}
}

// AddedAttemptUsed returns the value that was added to the "attempt_used" field in this mutation.
func (m *BudgetMutation) AddedAttemptUsed() (r int, exists bool) {
	v := m.addattempt_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptUsed resets all changes to the "attempt_used" field.
func (m *BudgetMutation) ResetAttemptUsed() {
	m.attempt_used = nil
	m.addattempt_used = nil
}

// SetExceededAt sets the "exceeded_at" field.
func (m *BudgetMutation) SetExceededAt(t time.Time) {
	m.exceeded_at = &t
}

// ExceededAt returns the value of the "exceeded_at" field in the mutation.
func (m *BudgetMutation) ExceededAt() (r time.Time, exists bool) {
	v := m.exceeded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExceededAt returns the old "exceeded_at" field's value of the Budget entity.
// If the Budget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetMutation) OldExceededAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExceededAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExceededAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExceededAt: %w", err)
	}
	return oldValue.ExceededAt, nil
}

// ClearExceededAt clears the value of the "exceeded_at" field.
func (m *BudgetMutation) ClearExceededAt() {
	m.exceeded_at = nil
	m.clearedFields[budget.FieldExceededAt] = struct{}{}
}

// ExceededAtCleared returns if the "exceeded_at" field was cleared in this mutation.
func (m *BudgetMutation) ExceededAtCleared() bool {
	_, ok := m.clearedFields[budget.FieldExceededAt]
	return ok
}

// ResetExceededAt resets all changes to the "exceeded_at" field.
func (m *BudgetMutation) ResetExceededAt() {
	m.exceeded_at = nil
	delete(m.clearedFields, budget.FieldExceededAt)
}

// ClearRun clears the "run" edge to the Run entity.
func (m *BudgetMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[budget.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *BudgetMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *BudgetMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *BudgetMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the BudgetMutation builder.
func (m *BudgetMutation) Where(ps ...predicate.Budget) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BudgetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BudgetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Budget, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BudgetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BudgetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Budget).
func (m *BudgetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BudgetMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.tenant != nil {
		fields = append(fields, budget.FieldTenant)
	}
	if m.run != nil {
		fields = append(fields, budget.FieldRunID)
	}
	if m.cost_limit_usd != nil {
		fields = append(fields, budget.FieldCostLimitUsd)
	}
	if m.cost_used_usd != nil {
		fields = append(fields, budget.FieldCostUsedUsd)
	}
	if m.time_limit_s != nil {
		fields = append(fields, budget.FieldTimeLimitS)
	}
	if m.time_used_s != nil {
		fields = append(fields, budget.FieldTimeUsedS)
	}
	if m.attempt_limit != nil {
		fields = append(fields, budget.FieldAttemptLimit)
	}
	if m.attempt_used != nil {
		fields = append(fields, budget.FieldAttemptUsed)
	}
	if m.exceeded_at != nil {
		fields = append(fields, budget.FieldExceededAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BudgetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case budget.FieldTenant:
		return m.Tenant()
	case budget.FieldRunID:
		return m.RunID()
	case budget.FieldCostLimitUsd:
		return m.CostLimitUsd()
	case budget.FieldCostUsedUsd:
		return m.CostUsedUsd()
	case budget.FieldTimeLimitS:
		return m.TimeLimitS()
	case budget.FieldTimeUsedS:
		return m.TimeUsedS()
	case budget.FieldAttemptLimit:
		return m.AttemptLimit()
	case budget.FieldAttemptUsed:
		return m.AttemptUsed()
	case budget.FieldExceededAt:
		return m.ExceededAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BudgetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case budget.FieldTenant:
		return m.OldTenant(ctx)
	case budget.FieldRunID:
		return m.OldRunID(ctx)
	case budget.FieldCostLimitUsd:
		return m.OldCostLimitUsd(ctx)
	case budget.FieldCostUsedUsd:
		return m.OldCostUsedUsd(ctx)
	case budget.FieldTimeLimitS:
		return m.OldTimeLimitS(ctx)
	case budget.FieldTimeUsedS:
		return m.OldTimeUsedS(ctx)
	case budget.FieldAttemptLimit:
		return m.OldAttemptLimit(ctx)
	case budget.FieldAttemptUsed:
		return m.OldAttemptUsed(ctx)
	case budget.FieldExceededAt:
		return m.OldExceededAt(ctx)
	}
	return nil, fmt.Errorf("unknown Budget field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BudgetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case budget.FieldTenant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenant(v)
		return nil
	case budget.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case budget.FieldCostLimitUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostLimitUsd(v)
		return nil
	case budget.FieldCostUsedUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostUsedUsd(v)
		return nil
	case budget.FieldTimeLimitS:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeLimitS(v)
		return nil
	case budget.FieldTimeUsedS:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeUsedS(v)
		return nil
	case budget.FieldAttemptLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptLimit(v)
		return nil
	case budget.FieldAttemptUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptUsed(v)
		return nil
	case budget.FieldExceededAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExceededAt(v)
		return nil
	}
	return fmt.Errorf("unknown Budget field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BudgetMutation) AddedFields() []string {
	var fields []string
	if m.addcost_limit_usd != nil {
		fields = append(fields, budget.FieldCostLimitUsd)
	}
	if m.addcost_used_usd != nil {
		fields = append(fields, budget.FieldCostUsedUsd)
	}
	if m.addtime_limit_s != nil {
		fields = append(fields, budget.FieldTimeLimitS)
	}
	if m.addtime_used_s != nil {
		fields = append(fields, budget.FieldTimeUsedS)
	}
	if m.addattempt_limit != nil {
		fields = append(fields, budget.FieldAttemptLimit)
	}
	if m.addattempt_used != nil {
		fields = append(fields, budget.FieldAttemptUsed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BudgetMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case budget.FieldCostLimitUsd:
		return m.AddedCostLimitUsd()
	case budget.FieldCostUsedUsd:
		return m.AddedCostUsedUsd()
	case budget.FieldTimeLimitS:
		return m.AddedTimeLimitS()
	case budget.FieldTimeUsedS:
		return m.AddedTimeUsedS()
	case budget.FieldAttemptLimit:
		return m.AddedAttemptLimit()
	case budget.FieldAttemptUsed:
		return m.AddedAttemptUsed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BudgetMutation) AddField(name string, value ent.Value) error {
	switch name {
	case budget.FieldCostLimitUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostLimitUsd(v)
		return nil
	case budget.FieldCostUsedUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostUsedUsd(v)
		return nil
	case budget.FieldTimeLimitS:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeLimitS(v)
		return nil
	case budget.FieldTimeUsedS:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeUsedS(v)
		return nil
	case budget.FieldAttemptLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptLimit(v)
		return nil
	case budget.FieldAttemptUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptUsed(v)
		return nil
	}
	return fmt.Errorf("unknown Budget numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BudgetMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(budget.FieldExceededAt) {
		fields = append(fields, budget.FieldExceededAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BudgetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BudgetMutation) ClearField(name string) error {
	switch name {
	case budget.FieldExceededAt:
		m.ClearExceededAt()
		return nil
	}
	return fmt.Errorf("unknown Budget nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BudgetMutation) ResetField(name string) error {
	switch name {
	case budget.FieldTenant:
		m.ResetTenant()
		return nil
	case budget.FieldRunID:
		m.ResetRunID()
		return nil
	case budget.FieldCostLimitUsd:
		m.ResetCostLimitUsd()
		return nil
	case budget.FieldCostUsedUsd:
		m.ResetCostUsedUsd()
		return nil
	case budget.FieldTimeLimitS:
		m.ResetTimeLimitS()
		return nil
	case budget.FieldTimeUsedS:
		m.ResetTimeUsedS()
		return nil
	case budget.FieldAttemptLimit:
		m.ResetAttemptLimit()
		return nil
	case budget.FieldAttemptUsed:
		m.ResetAttemptUsed()
		return nil
	case budget.FieldExceededAt:
		m.ResetExceededAt()
		return nil
	}
	return fmt.Errorf("unknown Budget field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BudgetMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, budget.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BudgetMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case budget.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BudgetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BudgetMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BudgetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, budget.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BudgetMutation) EdgeCleared(name string) bool {
	switch name {
	case budget.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BudgetMutation) ClearEdge(name string) error {
	switch name {
	case budget.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown Budget unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BudgetMutation) ResetEdge(name string) error {
	switch name {
	case budget.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown Budget edge %s", name)
}

// BuildSpecMutation represents an operation that mutates the BuildSpec nodes in the graph.
type BuildSpecMutation struct {
	config
	op                Op
	typ               string
	id                *string
	tenant            *string
	source            *string
	source_kind       *buildspec.SourceKind
	sla_class         *buildspec.SLAClass
	review_required   *bool
	max_iters         *int
	addmax_iters      *int
	token_budget      *int
	addtoken_budget   *int
	cost_limit_usd    *float64
	addcost_limit_usd *float64
	wall_time_s       *int
	addwall_time_s    *int
	acceptance        *[]map[string]interface{}
	appendacceptance  []map[string]interface{}
	kpi_guards        *map[string]interface{}
	domain_tags       *[]string
	appenddomain_tags []string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	runs              map[string]struct{}
	removedruns       map[string]struct{}
	clearedruns       bool
	done              bool
	oldValue          func(context.Context) (*BuildSpec, error)
	predicates        []predicate.BuildSpec
}

var _ ent.Mutation = (*BuildSpecMutation)(nil)

// buildspecOption allows management of the mutation configuration using functional options.
type buildspecOption func(*BuildSpecMutation)

// newBuildSpecMutation creates new mutation for the BuildSpec entity.
func newBuildSpecMutation(c config, op Op, opts ...buildspecOption) *BuildSpecMutation {
	m := &BuildSpecMutation{
		config:        c,
		op:            op,
		typ:           TypeBuildSpec,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBuildSpecID sets the ID field of the mutation.
func withBuildSpecID(id string) buildspecOption {
	return func(m *BuildSpecMutation) {
		var (
			err   error
			once  sync.Once
			value *BuildSpec
		)
		m.oldValue = func(ctx context.Context) (*BuildSpec, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BuildSpec.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBuildSpec sets the old BuildSpec of the mutation.
func withBuildSpec(node *BuildSpec) buildspecOption {
	return func(m *BuildSpecMutation) {
		m.oldValue = func(context.Context) (*BuildSpec, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BuildSpecMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BuildSpecMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BuildSpec entities.
func (m *BuildSpecMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BuildSpecMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BuildSpecMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BuildSpec.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenant sets the "tenant" field.
func (m *BuildSpecMutation) SetTenant(s string) {
	m.tenant = &s
}

// Tenant returns the value of the "tenant" field in the mutation.
func (m *BuildSpecMutation) Tenant() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenant returns the old "tenant" field's value of the BuildSpec entity.
// If the BuildSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildSpecMutation) OldTenant(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenant: %w", err)
	}
	return oldValue.Tenant, nil
}

// ResetTenant resets all changes to the "tenant" field.
func (m *BuildSpecMutation) ResetTenant() {
	m.tenant = nil
}

// SetSource sets the "source" field.
func (m *BuildSpecMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *BuildSpecMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the BuildSpec entity.
// If the BuildSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildSpecMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *BuildSpecMutation) ResetSource() {
	m.source = nil
}

// SetSourceKind sets the "source_kind" field.
func (m *BuildSpecMutation) SetSourceKind(bk buildspec.SourceKind) {
	m.source_kind = &bk
}

// SourceKind returns the value of the "source_kind" field in the mutation.
func (m *BuildSpecMutation) SourceKind() (r buildspec.SourceKind, exists bool) {
	v := m.source_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceKind returns the old "source_kind" field's value of the BuildSpec entity.
// If the BuildSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildSpecMutation) OldSourceKind(ctx context.Context) (v buildspec.SourceKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceKind: %w", err)
	}
	return oldValue.SourceKind, nil
}

// ResetSourceKind resets all changes to the "source_kind" field.
func (m *BuildSpecMutation) ResetSourceKind() {
	m.source_kind = nil
}

// SetSLAClass sets the "sla_class" field.
func (m *BuildSpecMutation) SetSLAClass(bc buildspec.SLAClass) {
	m.sla_class = &bc
}

// SLAClass returns the value of the "sla_class" field in the mutation.
func (m *BuildSpecMutation) SLAClass() (r buildspec.SLAClass, exists bool) {
	v := m.sla_class
	if v == nil {
		return
	}
	return *v, true
}

// OldSLAClass returns the old "sla_class" field's value of the BuildSpec entity.
// If the BuildSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildSpecMutation) OldSLAClass(ctx context.Context) (v buildspec.SLAClass, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSLAClass is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSLAClass requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSLAClass: %w", err)
	}
	return oldValue.SLAClass, nil
}

// ResetSLAClass resets all changes to the "sla_class" field.
func (m *BuildSpecMutation) ResetSLAClass() {
	m.sla_class = nil
}

// SetReviewRequired sets the "review_required" field.
func (m *BuildSpecMutation) SetReviewRequired(b bool) {
	m.review_required = &b
}

// ReviewRequired returns the value of the "review_required" field in the mutation.
func (m *BuildSpecMutation) ReviewRequired() (r bool, exists bool) {
	v := m.review_required
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewRequired returns the old "review_required" field's value of the BuildSpec entity.
// If the BuildSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildSpecMutation) OldReviewRequired(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewRequired is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewRequired requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewRequired: %w", err)
	}
	return oldValue.ReviewRequired, nil
}

// ResetReviewRequired resets all changes to the "review_required" field.
func (m *BuildSpecMutation) ResetReviewRequired() {
	m.review_required = nil
}

// SetMaxIters sets the "max_iters" field.
func (m *BuildSpecMutation) SetMaxIters(i int) {
	m.max_iters = &i
	m.addmax_iters = nil
}

// MaxIters returns the value of the "max_iters" field in the mutation.
func (m *BuildSpecMutation) MaxIters() (r int, exists bool) {
	v := m.max_iters
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxIters returns the old "max_iters" field's value of the BuildSpec entity.
// If the BuildSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildSpecMutation) OldMaxIters(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxIters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxIters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxIters: %w", err)
	}
	return oldValue.MaxIters, nil
}

// AddMaxIters adds i to the "max_iters" field.
func (m *BuildSpecMutation) AddMaxIters(i int) {
	if m.addmax_iters != nil {
		*m.addmax_iters += i
	} else {
		m.addmax_iters = &i
	}
}

// AddedMaxIters returns the value that was added to the "max_iters" field in this mutation.
func (m *BuildSpecMutation) AddedMaxIters() (r int, exists bool) {
	v := m.addmax_iters
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxIters resets all changes to the "max_iters" field.
func (m *BuildSpecMutation) ResetMaxIters() {
	m.max_iters = nil
	m.addmax_iters = nil
}

// SetTokenBudget sets the "token_budget" field.
func (m *BuildSpecMutation) SetTokenBudget(i int) {
	m.token_budget = &i
	m.addtoken_budget = nil
}

// TokenBudget returns the value of the "token_budget" field in the mutation.
func (m *BuildSpecMutation) TokenBudget() (r int, exists bool) {
	v := m.token_budget
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenBudget returns the old "token_budget" field's value of the BuildSpec entity.
// If the BuildSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildSpecMutation) OldTokenBudget(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenBudget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenBudget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenBudget: %w", err)
	}
	return oldValue.TokenBudget, nil
}

// AddTokenBudget adds i to the "token_budget" field.
func (m *BuildSpecMutation) AddTokenBudget(i int) {
	if m.addtoken_budget != nil {
		*m.addtoken_budget += i
	} else {
		m.addtoken_budget = &i
	}
}

// AddedTokenBudget returns the value that was added to the "token_budget" field in this mutation.
func (m *BuildSpecMutation) AddedTokenBudget() (r int, exists bool) {
	v := m.addtoken_budget
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokenBudget resets all changes to the "token_budget" field.
func (m *BuildSpecMutation) ResetTokenBudget() {
	m.token_budget = nil
	m.addtoken_budget = nil
}

// SetCostLimitUsd sets the "cost_limit_usd" field.
func (m *BuildSpecMutation) SetCostLimitUsd(f float64) {
	m.cost_limit_usd = &f
	m.addcost_limit_usd = nil
}

// CostLimitUsd returns the value of the "cost_limit_usd" field in the mutation.
func (m *BuildSpecMutation) CostLimitUsd() (r float64, exists bool) {
	v := m.cost_limit_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCostLimitUsd returns the old "cost_limit_usd" field's value of the BuildSpec entity.
// If the BuildSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildSpecMutation) OldCostLimitUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostLimitUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostLimitUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostLimitUsd: %w", err)
	}
	return oldValue.CostLimitUsd, nil
}

// AddCostLimitUsd adds f to the "cost_limit_usd" field.
func (m *BuildSpecMutation) AddCostLimitUsd(f float64) {
	if m.addcost_limit_usd != nil {
		*m.addcost_limit_usd += f
	} else {
		m.addcost_limit_usd = &f
	}
}

// AddedCostLimitUsd returns the value that was added to the "cost_limit_usd" field in this mutation.
func (m *BuildSpecMutation) AddedCostLimitUsd() (r float64, exists bool) {
	v := m.addcost_limit_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostLimitUsd resets all changes to the "cost_limit_usd" field.
func (m *BuildSpecMutation) ResetCostLimitUsd() {
	m.cost_limit_usd = nil
	m.addcost_limit_usd = nil
}

// SetWallTimeS sets the "wall_time_s" field.
func (m *BuildSpecMutation) SetWallTimeS(i int) {
	m.wall_time_s = &i
	m.addwall_time_s = nil
}

// WallTimeS returns the value of the "wall_time_s" field in the mutation.
func (m *BuildSpecMutation) WallTimeS() (r int, exists bool) {
	v := m.wall_time_s
	if v == nil {
		return
	}
	return *v, true
}

// OldWallTimeS returns the old "wall_time_s" field's value of the BuildSpec entity.
// If the BuildSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildSpecMutation) OldWallTimeS(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWallTimeS is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWallTimeS requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWallTimeS: %w", err)
	}
	return oldValue.WallTimeS, nil
}

// AddWallTimeS adds i to the "wall_time_s" field.
func (m *BuildSpecMutation) AddWallTimeS(i int) {
	if m.addwall_time_s != nil {
		*m.addwall_time_s += i
	} else {
		m.addwall_time_s = &i
	}
}

// AddedWallTimeS returns the value that was added to the "wall_time_s" field in this mutation.
func (m *BuildSpecMutation) AddedWallTimeS() (r int, exists bool) {
	v := m.addwall_time_s
	if v == nil {
		return
	}
	return *v, true
}

// ResetWallTimeS resets all changes to the "wall_time_s" field.
func (m *BuildSpecMutation) ResetWallTimeS() {
	m.wall_time_s = nil
	m.addwall_time_s = nil
}

// SetAcceptance sets the "acceptance" field.
func (m *BuildSpecMutation) SetAcceptance(value []map[string]interface{}) {
	m.acceptance = &value
	m.appendacceptance = nil
}

// Acceptance returns the value of the "acceptance" field in the mutation.
func (m *BuildSpecMutation) Acceptance() (r []map[string]interface{}, exists bool) {
	v := m.acceptance
	if v == nil {
		return
	}
	return *v, true
}

// OldAcceptance returns the old "acceptance" field's value of the BuildSpec entity.
// If the BuildSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildSpecMutation) OldAcceptance(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcceptance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcceptance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcceptance: %w", err)
	}
	return oldValue.Acceptance, nil
}

// AppendAcceptance adds value to the "acceptance" field.
func (m *BuildSpecMutation) AppendAcceptance(value []map[string]interface{}) {
	m.appendacceptance = append(m.appendacceptance, value...)
}

// AppendedAcceptance returns the list of values that were appended to the "acceptance" field in this mutation.
func (m *BuildSpecMutation) AppendedAcceptance() ([]map[string]interface{}, bool) {
	if len(m.appendacceptance) == 0 {
		return nil, false
	}
	return m.appendacceptance, true
}

// ClearAcceptance clears the value of the "acceptance" field.
func (m *BuildSpecMutation) ClearAcceptance() {
	m.acceptance = nil
	m.appendacceptance = nil
	m.clearedFields[buildspec.FieldAcceptance] = struct{}{}
}

// AcceptanceCleared returns if the "acceptance" field was cleared in this mutation.
func (m *BuildSpecMutation) AcceptanceCleared() bool {
	_, ok := m.clearedFields[buildspec.FieldAcceptance]
	return ok
}

// ResetAcceptance resets all changes to the "acceptance" field.
func (m *BuildSpecMutation) ResetAcceptance() {
	m.acceptance = nil
	m.appendacceptance = nil
	delete(m.clearedFields, buildspec.FieldAcceptance)
}

// SetKpiGuards sets the "kpi_guards" field.
func (m *BuildSpecMutation) SetKpiGuards(value map[string]interface{}) {
	m.kpi_guards = &value
}

// KpiGuards returns the value of the "kpi_guards" field in the mutation.
func (m *BuildSpecMutation) KpiGuards() (r map[string]interface{}, exists bool) {
	v := m.kpi_guards
	if v == nil {
		return
	}
	return *v, true
}

// OldKpiGuards returns the old "kpi_guards" field's value of the BuildSpec entity.
// If the BuildSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildSpecMutation) OldKpiGuards(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKpiGuards is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKpiGuards requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKpiGuards: %w", err)
	}
	return oldValue.KpiGuards, nil
}

// ClearKpiGuards clears the value of the "kpi_guards" field.
func (m *BuildSpecMutation) ClearKpiGuards() {
	m.kpi_guards = nil
	m.clearedFields[buildspec.FieldKpiGuards] = struct{}{}
}

// KpiGuardsCleared returns if the "kpi_guards" field was cleared in this mutation.
func (m *BuildSpecMutation) KpiGuardsCleared() bool {
	_, ok := m.clearedFields[buildspec.FieldKpiGuards]
	return ok
}

// ResetKpiGuards resets all changes to the "kpi_guards" field.
func (m *BuildSpecMutation) ResetKpiGuards() {
	m.kpi_guards = nil
	delete(m.clearedFields, buildspec.FieldKpiGuards)
}

// SetDomainTags sets the "domain_tags" field.
func (m *BuildSpecMutation) SetDomainTags(s []string) {
	m.domain_tags = &s
	m.appenddomain_tags = nil
}

// DomainTags returns the value of the "domain_tags" field in the mutation.
func (m *BuildSpecMutation) DomainTags() (r []string, exists bool) {
	v := m.domain_tags
	if v == nil {
		return
	}
	return *v, true
}

// OldDomainTags returns the old "domain_tags" field's value of the BuildSpec entity.
// If the BuildSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildSpecMutation) OldDomainTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomainTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomainTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomainTags: %w", err)
	}
	return oldValue.DomainTags, nil
}

// AppendDomainTags adds s to the "domain_tags" field.
func (m *BuildSpecMutation) AppendDomainTags(s []string) {
	m.appenddomain_tags = append(m.appenddomain_tags, s...)
}

// AppendedDomainTags returns the list of values that were appended to the "domain_tags" field in this mutation.
func (m *BuildSpecMutation) AppendedDomainTags() ([]string, bool) {
	if len(m.appenddomain_tags) == 0 {
		return nil, false
	}
	return m.appenddomain_tags, true
}

// ClearDomainTags clears the value of the "domain_tags" field.
func (m *BuildSpecMutation) ClearDomainTags() {
	m.domain_tags = nil
	m.appenddomain_tags = nil
	m.clearedFields[buildspec.FieldDomainTags] = struct{}{}
}

// DomainTagsCleared returns if the "domain_tags" field was cleared in this mutation.
func (m *BuildSpecMutation) DomainTagsCleared() bool {
	_, ok := m.clearedFields[buildspec.FieldDomainTags]
	return ok
}

// ResetDomainTags resets all changes to the "domain_tags" field.
func (m *BuildSpecMutation) ResetDomainTags() {
	m.domain_tags = nil
	m.appenddomain_tags = nil
	delete(m.clearedFields, buildspec.FieldDomainTags)
}

// SetCreatedAt sets the "created_at" field.
func (m *BuildSpecMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BuildSpecMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BuildSpec entity.
// If the BuildSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildSpecMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BuildSpecMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddRunIDs adds the "runs" edge to the Run entity by ids.
func (m *BuildSpecMutation) AddRunIDs(ids ...string) {
	if m.runs == nil {
		m.runs = make(map[string]struct{})
	}
	for i := range ids {
		m.runs[ids[i]] = struct{}{}
	}
}

// ClearRuns clears the "runs" edge to the Run entity.
func (m *BuildSpecMutation) ClearRuns() {
	m.clearedruns = true
}

// RunsCleared reports if the "runs" edge to the Run entity was cleared.
func (m *BuildSpecMutation) RunsCleared() bool {
	return m.clearedruns
}

// RemoveRunIDs removes the "runs" edge to the Run entity by IDs.
func (m *BuildSpecMutation) RemoveRunIDs(ids ...string) {
	if m.removedruns == nil {
		m.removedruns = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.runs, ids[i])
		m.removedruns[ids[i]] = struct{}{}
	}
}

// RemovedRuns returns the removed IDs of the "runs" edge to the Run entity.
func (m *BuildSpecMutation) RemovedRunsIDs() (ids []string) {
	for id := range m.removedruns {
		ids = append(ids, id)
	}
	return
}

// RunsIDs returns the "runs" edge IDs in the mutation.
func (m *BuildSpecMutation) RunsIDs() (ids []string) {
	for id := range m.runs {
		ids = append(ids, id)
	}
	return
}

// ResetRuns resets all changes to the "runs" edge.
func (m *BuildSpecMutation) ResetRuns() {
	m.runs = nil
	m.clearedruns = false
	m.removedruns = nil
}

// Where appends a list predicates to the BuildSpecMutation builder.
func (m *BuildSpecMutation) Where(ps ...predicate.BuildSpec) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BuildSpecMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BuildSpecMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BuildSpec, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BuildSpecMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BuildSpecMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BuildSpec).
func (m *BuildSpecMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BuildSpecMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.tenant != nil {
		fields = append(fields, buildspec.FieldTenant)
	}
	if m.source != nil {
		fields = append(fields, buildspec.FieldSource)
	}
	if m.source_kind != nil {
		fields = append(fields, buildspec.FieldSourceKind)
	}
	if m.sla_class != nil {
		fields = append(fields, buildspec.FieldSLAClass)
	}
	if m.review_required != nil {
		fields = append(fields, buildspec.FieldReviewRequired)
	}
	if m.max_iters != nil {
		fields = append(fields, buildspec.FieldMaxIters)
	}
	if m.token_budget != nil {
		fields = append(fields, buildspec.FieldTokenBudget)
	}
	if m.cost_limit_usd != nil {
		fields = append(fields, buildspec.FieldCostLimitUsd)
	}
	if m.wall_time_s != nil {
		fields = append(fields, buildspec.FieldWallTimeS)
	}
	if m.acceptance != nil {
		fields = append(fields, buildspec.FieldAcceptance)
	}
	if m.kpi_guards != nil {
		fields = append(fields, buildspec.FieldKpiGuards)
	}
	if m.domain_tags != nil {
		fields = append(fields, buildspec.FieldDomainTags)
	}
	if m.created_at != nil {
		fields = append(fields, buildspec.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BuildSpecMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case buildspec.FieldTenant:
		return m.Tenant()
	case buildspec.FieldSource:
		return m.Source()
	case buildspec.FieldSourceKind:
		return m.SourceKind()
	case buildspec.FieldSLAClass:
		return m.SLAClass()
	case buildspec.FieldReviewRequired:
		return m.ReviewRequired()
	case buildspec.FieldMaxIters:
		return m.MaxIters()
	case buildspec.FieldTokenBudget:
		return m.TokenBudget()
	case buildspec.FieldCostLimitUsd:
		return m.CostLimitUsd()
	case buildspec.FieldWallTimeS:
		return m.WallTimeS()
	case buildspec.FieldAcceptance:
		return m.Acceptance()
	case buildspec.FieldKpiGuards:
		return m.KpiGuards()
	case buildspec.FieldDomainTags:
		return m.DomainTags()
	case buildspec.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BuildSpecMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case buildspec.FieldTenant:
		return m.OldTenant(ctx)
	case buildspec.FieldSource:
		return m.OldSource(ctx)
	case buildspec.FieldSourceKind:
		return m.OldSourceKind(ctx)
	case buildspec.FieldSLAClass:
		return m.OldSLAClass(ctx)
	case buildspec.FieldReviewRequired:
		return m.OldReviewRequired(ctx)
	case buildspec.FieldMaxIters:
		return m.OldMaxIters(ctx)
	case buildspec.FieldTokenBudget:
		return m.OldTokenBudget(ctx)
	case buildspec.FieldCostLimitUsd:
		return m.OldCostLimitUsd(ctx)
	case buildspec.FieldWallTimeS:
		return m.OldWallTimeS(ctx)
	case buildspec.FieldAcceptance:
		return m.OldAcceptance(ctx)
	case buildspec.FieldKpiGuards:
		return m.OldKpiGuards(ctx)
	case buildspec.FieldDomainTags:
		return m.OldDomainTags(ctx)
	case buildspec.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BuildSpec field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BuildSpecMutation) SetField(name string, value ent.Value) error {
	switch name {
	case buildspec.FieldTenant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenant(v)
		return nil
	case buildspec.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case buildspec.FieldSourceKind:
		v, ok := value.(buildspec.SourceKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceKind(v)
		return nil
	case buildspec.FieldSLAClass:
		v, ok := value.(buildspec.SLAClass)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSLAClass(v)
		return nil
	case buildspec.FieldReviewRequired:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewRequired(v)
		return nil
	case buildspec.FieldMaxIters:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxIters(v)
		return nil
	case buildspec.FieldTokenBudget:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenBudget(v)
		return nil
	case buildspec.FieldCostLimitUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostLimitUsd(v)
		return nil
	case buildspec.FieldWallTimeS:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWallTimeS(v)
		return nil
	case buildspec.FieldAcceptance:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcceptance(v)
		return nil
	case buildspec.FieldKpiGuards:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKpiGuards(v)
		return nil
	case buildspec.FieldDomainTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomainTags(v)
		return nil
	case buildspec.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BuildSpec field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BuildSpecMutation) AddedFields() []string {
	var fields []string
	if m.addmax_iters != nil {
		fields = append(fields, buildspec.FieldMaxIters)
	}
	if m.addtoken_budget != nil {
		fields = append(fields, buildspec.FieldTokenBudget)
	}
	if m.addcost_limit_usd != nil {
		fields = append(fields, buildspec.FieldCostLimitUsd)
	}
	if m.addwall_time_s != nil {
		fields = append(fields, buildspec.FieldWallTimeS)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BuildSpecMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case buildspec.FieldMaxIters:
		return m.AddedMaxIters()
	case buildspec.FieldTokenBudget:
		return m.AddedTokenBudget()
	case buildspec.FieldCostLimitUsd:
		return m.AddedCostLimitUsd()
	case buildspec.FieldWallTimeS:
		return m.AddedWallTimeS()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BuildSpecMutation) AddField(name string, value ent.Value) error {
	switch name {
	case buildspec.FieldMaxIters:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxIters(v)
		return nil
	case buildspec.FieldTokenBudget:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokenBudget(v)
		return nil
	case buildspec.FieldCostLimitUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostLimitUsd(v)
		return nil
	case buildspec.FieldWallTimeS:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWallTimeS(v)
		return nil
	}
	return fmt.Errorf("unknown BuildSpec numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BuildSpecMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(buildspec.FieldAcceptance) {
		fields = append(fields, buildspec.FieldAcceptance)
	}
	if m.FieldCleared(buildspec.FieldKpiGuards) {
		fields = append(fields, buildspec.FieldKpiGuards)
	}
	if m.FieldCleared(buildspec.FieldDomainTags) {
		fields = append(fields, buildspec.FieldDomainTags)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BuildSpecMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BuildSpecMutation) ClearField(name string) error {
	switch name {
	case buildspec.FieldAcceptance:
		m.ClearAcceptance()
		return nil
	case buildspec.FieldKpiGuards:
		m.ClearKpiGuards()
		return nil
	case buildspec.FieldDomainTags:
		m.ClearDomainTags()
		return nil
	}
	return fmt.Errorf("unknown BuildSpec nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BuildSpecMutation) ResetField(name string) error {
	switch name {
	case buildspec.FieldTenant:
		m.ResetTenant()
		return nil
	case buildspec.FieldSource:
		m.ResetSource()
		return nil
	case buildspec.FieldSourceKind:
		m.ResetSourceKind()
		return nil
	case buildspec.FieldSLAClass:
		m.ResetSLAClass()
		return nil
	case buildspec.FieldReviewRequired:
		m.ResetReviewRequired()
		return nil
	case buildspec.FieldMaxIters:
		m.ResetMaxIters()
		return nil
	case buildspec.FieldTokenBudget:
		m.ResetTokenBudget()
		return nil
	case buildspec.FieldCostLimitUsd:
		m.ResetCostLimitUsd()
		return nil
	case buildspec.FieldWallTimeS:
		m.ResetWallTimeS()
		return nil
	case buildspec.FieldAcceptance:
		m.ResetAcceptance()
		return nil
	case buildspec.FieldKpiGuards:
		m.ResetKpiGuards()
		return nil
	case buildspec.FieldDomainTags:
		m.ResetDomainTags()
		return nil
	case buildspec.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown BuildSpec field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BuildSpecMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.runs != nil {
		edges = append(edges, buildspec.EdgeRuns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BuildSpecMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case buildspec.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.runs))
		for id := range m.runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BuildSpecMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedruns != nil {
		edges = append(edges, buildspec.EdgeRuns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BuildSpecMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case buildspec.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.removedruns))
		for id := range m.removedruns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BuildSpecMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedruns {
		edges = append(edges, buildspec.EdgeRuns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BuildSpecMutation) EdgeCleared(name string) bool {
	switch name {
	case buildspec.EdgeRuns:
		return m.clearedruns
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BuildSpecMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown BuildSpec unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BuildSpecMutation) ResetEdge(name string) error {
	switch name {
	case buildspec.EdgeRuns:
		m.ResetRuns()
		return nil
	}
	return fmt.Errorf("unknown BuildSpec edge %s", name)
}

// CanarySampleMutation represents an operation that mutates the CanarySample nodes in the graph.
type CanarySampleMutation struct {
	config
	op                Op
	typ               string
	id                *string
	tenant            *string
	group             *canarysample.Group
	success           *bool
	cost_usd          *float64
	addcost_usd       *float64
	duration_ms       *int64
	addduration_ms    *int64
	retry_count       *int
	addretry_count    *int
	replan_count      *int
	addreplan_count   *int
	rollback_count    *int
	addrollback_count *int
	recorded_at       *time.Time
	clearedFields     map[string]struct{}
	run               *string
	clearedrun        bool
	done              bool
	oldValue          func(context.Context) (*CanarySample, error)
	predicates        []predicate.CanarySample
}

var _ ent.Mutation = (*CanarySampleMutation)(nil)

// canarysampleOption allows management of the mutation configuration using functional options.
type canarysampleOption func(*CanarySampleMutation)

// newCanarySampleMutation creates new mutation for the CanarySample entity.
func newCanarySampleMutation(c config, op Op, opts ...canarysampleOption) *CanarySampleMutation {
	m := &CanarySampleMutation{
		config:        c,
		op:            op,
		typ:           TypeCanarySample,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCanarySampleID sets the ID field of the mutation.
func withCanarySampleID(id string) canarysampleOption {
	return func(m *CanarySampleMutation) {
		var (
			err   error
			once  sync.Once
			value *CanarySample
		)
		m.oldValue = func(ctx context.Context) (*CanarySample, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CanarySample.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCanarySample sets the old CanarySample of the mutation.
func withCanarySample(node *CanarySample) canarysampleOption {
	return func(m *CanarySampleMutation) {
		m.oldValue = func(context.Context) (*CanarySample, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CanarySampleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CanarySampleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CanarySample entities.
func (m *CanarySampleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CanarySampleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CanarySampleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CanarySample.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenant sets the "tenant" field.
func (m *CanarySampleMutation) SetTenant(s string) {
	m.tenant = &s
}

// Tenant returns the value of the "tenant" field in the mutation.
func (m *CanarySampleMutation) Tenant() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenant returns the old "tenant" field's value of the CanarySample entity.
// If the CanarySample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CanarySampleMutation) OldTenant(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenant: %w", err)
	}
	return oldValue.Tenant, nil
}

// ResetTenant resets all changes to the "tenant" field.
func (m *CanarySampleMutation) ResetTenant() {
	m.tenant = nil
}

// SetRunID sets the "run_id" field.
func (m *CanarySampleMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *CanarySampleMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the CanarySample entity.
// If the CanarySample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CanarySampleMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *CanarySampleMutation) ResetRunID() {
	m.run = nil
}

// SetGroup sets the "group" field.
func (m *CanarySampleMutation) SetGroup(c canarysample.Group) {
	m.group = &c
}

// Group returns the value of the "group" field in the mutation.
func (m *CanarySampleMutation) Group() (r canarysample.Group, exists bool) {
	v := m.group
	if v == nil {
		return
	}
	return *v, true
}

// OldGroup returns the old "group" field's value of the CanarySample entity.
// If the CanarySample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CanarySampleMutation) OldGroup(ctx context.Context) (v canarysample.Group, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroup is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroup requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroup: %w", err)
	}
	return oldValue.Group, nil
}

// ResetGroup resets all changes to the "group" field.
func (m *CanarySampleMutation) ResetGroup() {
	m.group = nil
}

// SetSuccess sets the "success" field.
func (m *CanarySampleMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *CanarySampleMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the CanarySample entity.
// If the CanarySample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CanarySampleMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *CanarySampleMutation) ResetSuccess() {
	m.success = nil
}

// SetCostUsd sets the "cost_usd" field.
func (m *CanarySampleMutation) SetCostUsd(f float64) {
	m.cost_usd = &f
	m.addcost_usd = nil
}

// CostUsd returns the value of the "cost_usd" field in the mutation.
func (m *CanarySampleMutation) CostUsd() (r float64, exists bool) {
	v := m.cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCostUsd returns the old "cost_usd" field's value of the CanarySample entity.
// If the CanarySample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CanarySampleMutation) OldCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostUsd: %w", err)
	}
	return oldValue.CostUsd, nil
}

// AddCostUsd adds f to the "cost_usd" field.
func (m *CanarySampleMutation) AddCostUsd(f float64) {
	if m.addcost_usd != nil {
		*m.addcost_usd += f
	} else {
		m.addcost_usd = &f
	}
}

// AddedCostUsd returns the value that was added to the "cost_usd" field in this mutation.
func (m *CanarySampleMutation) AddedCostUsd() (r float64, exists bool) {
	v := m.addcost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostUsd resets all changes to the "cost_usd" field.
func (m *CanarySampleMutation) ResetCostUsd() {
	m.cost_usd = nil
	m.addcost_usd = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *CanarySampleMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *CanarySampleMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the CanarySample entity.
// If the CanarySample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CanarySampleMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *CanarySampleMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *CanarySampleMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *CanarySampleMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *CanarySampleMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *CanarySampleMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the CanarySample entity.
// If the CanarySample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CanarySampleMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *CanarySampleMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *CanarySampleMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *CanarySampleMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetReplanCount sets the "replan_count" field.
func (m *CanarySampleMutation) SetReplanCount(i int) {
	m.replan_count = &i
	m.addreplan_count = nil
}

// ReplanCount returns the value of the "replan_count" field in the mutation.
func (m *CanarySampleMutation) ReplanCount() (r int, exists bool) {
	v := m.replan_count
	if v == nil {
		return
	}
	return *v, true
}

// OldReplanCount returns the old "replan_count" field's value of the CanarySample entity.
// If the CanarySample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CanarySampleMutation) OldReplanCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReplanCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReplanCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReplanCount: %w", err)
	}
	return oldValue.ReplanCount, nil
}

// AddReplanCount adds i to the "replan_count" field.
func (m *CanarySampleMutation) AddReplanCount(i int) {
	if m.addreplan_count != nil {
		*m.addreplan_count += i
	} else {
		m.addreplan_count = &i
	}
}

// AddedReplanCount returns the value that was added to the "replan_count" field in this mutation.
func (m *CanarySampleMutation) AddedReplanCount() (r int, exists bool) {
	v := m.addreplan_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetReplanCount resets all changes to the "replan_count" field.
func (m *CanarySampleMutation) ResetReplanCount() {
	m.replan_count = nil
	m.addreplan_count = nil
}

// SetRollbackCount sets the "rollback_count" field.
func (m *CanarySampleMutation) SetRollbackCount(i int) {
	m.rollback_count = &i
	m.addrollback_count = nil
}

// RollbackCount returns the value of the "rollback_count" field in the mutation.
func (m *CanarySampleMutation) RollbackCount() (r int, exists bool) {
	v := m.rollback_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRollbackCount returns the old "rollback_count" field's value of the CanarySample entity.
// If the CanarySample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CanarySampleMutation) OldRollbackCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRollbackCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRollbackCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRollbackCount: %w", err)
	}
	return oldValue.RollbackCount, nil
}

// AddRollbackCount adds i to the "rollback_count" field.
func (m *CanarySampleMutation) AddRollbackCount(i int) {
	if m.addrollback_count != nil {
		*m.addrollback_count += i
	} else {
		m.addrollback_count = &i
	}
}

// AddedRollbackCount returns the value that was added to the "rollback_count" field in this mutation.
func (m *CanarySampleMutation) AddedRollbackCount() (r int, exists bool) {
	v := m.addrollback_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRollbackCount resets all changes to the "rollback_count" field.
func (m *CanarySampleMutation) ResetRollbackCount() {
	m.rollback_count = nil
	m.addrollback_count = nil
}

// SetRecordedAt sets the "recorded_at" field.
func (m *CanarySampleMutation) SetRecordedAt(t time.Time) {
	m.recorded_at = &t
}

// RecordedAt returns the value of the "recorded_at" field in the mutation.
func (m *CanarySampleMutation) RecordedAt() (r time.Time, exists bool) {
	v := m.recorded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordedAt returns the old "recorded_at" field's value of the CanarySample entity.
// If the CanarySample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CanarySampleMutation) OldRecordedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordedAt: %w", err)
	}
	return oldValue.RecordedAt, nil
}

// ResetRecordedAt resets all changes to the "recorded_at" field.
func (m *CanarySampleMutation) ResetRecordedAt() {
	m.recorded_at = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *CanarySampleMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[canarysample.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *CanarySampleMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *CanarySampleMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *CanarySampleMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the CanarySampleMutation builder.
func (m *CanarySampleMutation) Where(ps ...predicate.CanarySample) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CanarySampleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CanarySampleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CanarySample, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CanarySampleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CanarySampleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CanarySample).
func (m *CanarySampleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CanarySampleMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.tenant != nil {
		fields = append(fields, canarysample.FieldTenant)
	}
	if m.run != nil {
		fields = append(fields, canarysample.FieldRunID)
	}
	if m.group != nil {
		fields = append(fields, canarysample.FieldGroup)
	}
	if m.success != nil {
		fields = append(fields, canarysample.FieldSuccess)
	}
	if m.cost_usd != nil {
		fields = append(fields, canarysample.FieldCostUsd)
	}
	if m.duration_ms != nil {
		fields = append(fields, canarysample.FieldDurationMs)
	}
	if m.retry_count != nil {
		fields = append(fields, canarysample.FieldRetryCount)
	}
	if m.replan_count != nil {
		fields = append(fields, canarysample.FieldReplanCount)
	}
	if m.rollback_count != nil {
		fields = append(fields, canarysample.FieldRollbackCount)
	}
	if m.recorded_at != nil {
		fields = append(fields, canarysample.FieldRecordedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CanarySampleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case canarysample.FieldTenant:
		return m.Tenant()
	case canarysample.FieldRunID:
		return m.RunID()
	case canarysample.FieldGroup:
		return m.Group()
	case canarysample.FieldSuccess:
		return m.Success()
	case canarysample.FieldCostUsd:
		return m.CostUsd()
	case canarysample.FieldDurationMs:
		return m.DurationMs()
	case canarysample.FieldRetryCount:
		return m.RetryCount()
	case canarysample.FieldReplanCount:
		return m.ReplanCount()
	case canarysample.FieldRollbackCount:
		return m.RollbackCount()
	case canarysample.FieldRecordedAt:
		return m.RecordedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CanarySampleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case canarysample.FieldTenant:
		return m.OldTenant(ctx)
	case canarysample.FieldRunID:
		return m.OldRunID(ctx)
	case canarysample.FieldGroup:
		return m.OldGroup(ctx)
	case canarysample.FieldSuccess:
		return m.OldSuccess(ctx)
	case canarysample.FieldCostUsd:
		return m.OldCostUsd(ctx)
	case canarysample.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case canarysample.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case canarysample.FieldReplanCount:
		return m.OldReplanCount(ctx)
	case canarysample.FieldRollbackCount:
		return m.OldRollbackCount(ctx)
	case canarysample.FieldRecordedAt:
		return m.OldRecordedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CanarySample field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CanarySampleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case canarysample.FieldTenant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenant(v)
		return nil
	case canarysample.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case canarysample.FieldGroup:
		v, ok := value.(canarysample.Group)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroup(v)
		return nil
	case canarysample.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case canarysample.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostUsd(v)
		return nil
	case canarysample.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case canarysample.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case canarysample.FieldReplanCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReplanCount(v)
		return nil
	case canarysample.FieldRollbackCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRollbackCount(v)
		return nil
	case canarysample.FieldRecordedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CanarySample field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CanarySampleMutation) AddedFields() []string {
	var fields []string
	if m.addcost_usd != nil {
		fields = append(fields, canarysample.FieldCostUsd)
	}
	if m.addduration_ms != nil {
		fields = append(fields, canarysample.FieldDurationMs)
	}
	if m.addretry_count != nil {
		fields = append(fields, canarysample.FieldRetryCount)
	}
	if m.addreplan_count != nil {
		fields = append(fields, canarysample.FieldReplanCount)
	}
	if m.addrollback_count != nil {
		fields = append(fields, canarysample.FieldRollbackCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CanarySampleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case canarysample.FieldCostUsd:
		return m.AddedCostUsd()
	case canarysample.FieldDurationMs:
		return m.AddedDurationMs()
	case canarysample.FieldRetryCount:
		return m.AddedRetryCount()
	case canarysample.FieldReplanCount:
		return m.AddedReplanCount()
	case canarysample.FieldRollbackCount:
		return m.AddedRollbackCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CanarySampleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case canarysample.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostUsd(v)
		return nil
	case canarysample.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case canarysample.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case canarysample.FieldReplanCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReplanCount(v)
		return nil
	case canarysample.FieldRollbackCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRollbackCount(v)
		return nil
	}
	return fmt.Errorf("unknown CanarySample numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CanarySampleMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CanarySampleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CanarySampleMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CanarySample nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CanarySampleMutation) ResetField(name string) error {
	switch name {
	case canarysample.FieldTenant:
		m.ResetTenant()
		return nil
	case canarysample.FieldRunID:
		m.ResetRunID()
		return nil
	case canarysample.FieldGroup:
		m.ResetGroup()
		return nil
	case canarysample.FieldSuccess:
		m.ResetSuccess()
		return nil
	case canarysample.FieldCostUsd:
		m.ResetCostUsd()
		return nil
	case canarysample.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case canarysample.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case canarysample.FieldReplanCount:
		m.ResetReplanCount()
		return nil
	case canarysample.FieldRollbackCount:
		m.ResetRollbackCount()
		return nil
	case canarysample.FieldRecordedAt:
		m.ResetRecordedAt()
		return nil
	}
	return fmt.Errorf("unknown CanarySample field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CanarySampleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, canarysample.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CanarySampleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case canarysample.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CanarySampleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CanarySampleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CanarySampleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, canarysample.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CanarySampleMutation) EdgeCleared(name string) bool {
	switch name {
	case canarysample.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CanarySampleMutation) ClearEdge(name string) error {
	switch name {
	case canarysample.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown CanarySample unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CanarySampleMutation) ResetEdge(name string) error {
	switch name {
	case canarysample.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown CanarySample edge %s", name)
}

// CircuitBreakerMutation represents an operation that mutates the CircuitBreaker nodes in the graph.
type CircuitBreakerMutation struct {
	config
	op             Op
	typ            string
	id             *string
	tenant         *string
	failure_class  *circuitbreaker.FailureClass
	state          *circuitbreaker.State
	fail_count     *int
	addfail_count  *int
	threshold      *int
	addthreshold   *int
	window_start   *time.Time
	opened_at      *time.Time
	cooldown_until *time.Time
	cooldown_s     *int
	addcooldown_s  *int
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*CircuitBreaker, error)
	predicates     []predicate.CircuitBreaker
}

var _ ent.Mutation = (*CircuitBreakerMutation)(nil)

// circuitbreakerOption allows management of the mutation configuration using functional options.
type circuitbreakerOption func(*CircuitBreakerMutation)

// newCircuitBreakerMutation creates new mutation for the CircuitBreaker entity.
func newCircuitBreakerMutation(c config, op Op, opts ...circuitbreakerOption) *CircuitBreakerMutation {
	m := &CircuitBreakerMutation{
		config:        c,
		op:            op,
		typ:           TypeCircuitBreaker,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCircuitBreakerID sets the ID field of the mutation.
func withCircuitBreakerID(id string) circuitbreakerOption {
	return func(m *CircuitBreakerMutation) {
		var (
			err   error
			once  sync.Once
			value *CircuitBreaker
		)
		m.oldValue = func(ctx context.Context) (*CircuitBreaker, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CircuitBreaker.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCircuitBreaker sets the old CircuitBreaker of the mutation.
func withCircuitBreaker(node *CircuitBreaker) circuitbreakerOption {
	return func(m *CircuitBreakerMutation) {
		m.oldValue = func(context.Context) (*CircuitBreaker, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CircuitBreakerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CircuitBreakerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CircuitBreaker entities.
func (m *CircuitBreakerMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CircuitBreakerMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CircuitBreakerMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CircuitBreaker.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenant sets the "tenant" field.
func (m *CircuitBreakerMutation) SetTenant(s string) {
	m.tenant = &s
}

// Tenant returns the value of the "tenant" field in the mutation.
func (m *CircuitBreakerMutation) Tenant() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenant returns the old "tenant" field's value of the CircuitBreaker entity.
// If the CircuitBreaker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CircuitBreakerMutation) OldTenant(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenant: %w", err)
	}
	return oldValue.Tenant, nil
}

// ResetTenant resets all changes to the "tenant" field.
func (m *CircuitBreakerMutation) ResetTenant() {
	m.tenant = nil
}

// SetFailureClass sets the "failure_class" field.
func (m *CircuitBreakerMutation) SetFailureClass(cc circuitbreaker.FailureClass) {
	m.failure_class = &cc
}

// FailureClass returns the value of the "failure_class" field in the mutation.
func (m *CircuitBreakerMutation) FailureClass() (r circuitbreaker.FailureClass, exists bool) {
	v := m.failure_class
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureClass returns the old "failure_class" field's value of the CircuitBreaker entity.
// If the CircuitBreaker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CircuitBreakerMutation) OldFailureClass(ctx context.Context) (v circuitbreaker.FailureClass, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureClass is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureClass requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureClass: %w", err)
	}
	return oldValue.FailureClass, nil
}

// ResetFailureClass resets all changes to the "failure_class" field.
func (m *CircuitBreakerMutation) ResetFailureClass() {
	m.failure_class = nil
}

// SetState sets the "state" field.
func (m *CircuitBreakerMutation) SetState(c circuitbreaker.State) {
	m.state = &c
}

// State returns the value of the "state" field in the mutation.
func (m *CircuitBreakerMutation) State() (r circuitbreaker.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the CircuitBreaker entity.
// If the CircuitBreaker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CircuitBreakerMutation) OldState(ctx context.Context) (v circuitbreaker.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *CircuitBreakerMutation) ResetState() {
	m.state = nil
}

// SetFailCount sets the "fail_count" field.
func (m *CircuitBreakerMutation) SetFailCount(i int) {
	m.fail_count = &i
	m.addfail_count = nil
}

// FailCount returns the value of the "fail_count" field in the mutation.
func (m *CircuitBreakerMutation) FailCount() (r int, exists bool) {
	v := m.fail_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFailCount returns the old "fail_count" field's value of the CircuitBreaker entity.
// If the CircuitBreaker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CircuitBreakerMutation) OldFailCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailCount: %w", err)
	}
	return oldValue.FailCount, nil
}

// AddFailCount adds i to the "fail_count" field.
func (m *CircuitBreakerMutation) AddFailCount(i int) {
	if m.addfail_count != nil {
		*m.addfail_count += i
	} else {
		m.addfail_count = &i
	}
}

// AddedFailCount returns the value that was added to the "fail_count" field in this mutation.
func (m *CircuitBreakerMutation) AddedFailCount() (r int, exists bool) {
	v := m.addfail_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailCount resets all changes to the "fail_count" field.
func (m *CircuitBreakerMutation) ResetFailCount() {
	m.fail_count = nil
	m.addfail_count = nil
}

// SetThreshold sets the "threshold" field.
func (m *CircuitBreakerMutation) SetThreshold(i int) {
	m.threshold = &i
	m.addthreshold = nil
}

// Threshold returns the value of the "threshold" field in the mutation.
func (m *CircuitBreakerMutation) Threshold() (r int, exists bool) {
	v := m.threshold
	if v == nil {
		return
	}
	return *v, true
}

// OldThreshold returns the old "threshold" field's value of the CircuitBreaker entity.
// If the CircuitBreaker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CircuitBreakerMutation) OldThreshold(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreshold is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreshold requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreshold: %w", err)
	}
	return oldValue.Threshold, nil
}

// AddThreshold adds i to the "threshold" field.
func (m *CircuitBreakerMutation) AddThreshold(i int) {
	if m.addthreshold != nil {
		*m.addthreshold += i
	} else {
		m.addthreshold = &i
	}
}

// AddedThreshold returns the value that was added to the "threshold" field in this mutation.
func (m *CircuitBreakerMutation) AddedThreshold() (r int, exists bool) {
	v := m.addthreshold
	if v == nil {
		return
	}
	return *v, true
}

// ResetThreshold resets all changes to the "threshold" field.
func (m *CircuitBreakerMutation) ResetThreshold() {
	m.threshold = nil
	m.addthreshold = nil
}

// SetWindowStart sets the "window_start" field.
func (m *CircuitBreakerMutation) SetWindowStart(t time.Time) {
	m.window_start = &t
}

// WindowStart returns the value of the "window_start" field in the mutation.
func (m *CircuitBreakerMutation) WindowStart() (r time.Time, exists bool) {
	v := m.window_start
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowStart returns the old "window_start" field's value of the CircuitBreaker entity.
// If the CircuitBreaker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CircuitBreakerMutation) OldWindowStart(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowStart: %w", err)
	}
	return oldValue.WindowStart, nil
}

// ClearWindowStart clears the value of the "window_start" field.
func (m *CircuitBreakerMutation) ClearWindowStart() {
	m.window_start = nil
	m.clearedFields[circuitbreaker.FieldWindowStart] = struct{}{}
}

// WindowStartCleared returns if the "window_start" field was cleared in this mutation.
func (m *CircuitBreakerMutation) WindowStartCleared() bool {
	_, ok := m.clearedFields[circuitbreaker.FieldWindowStart]
	return ok
}

// ResetWindowStart resets all changes to the "window_start" field.
func (m *CircuitBreakerMutation) ResetWindowStart() {
	m.window_start = nil
	delete(m.clearedFields, circuitbreaker.FieldWindowStart)
}

// SetOpenedAt sets the "opened_at" field.
func (m *CircuitBreakerMutation) SetOpenedAt(t time.Time) {
	m.opened_at = &t
}

// OpenedAt returns the value of the "opened_at" field in the mutation.
func (m *CircuitBreakerMutation) OpenedAt() (r time.Time, exists bool) {
	v := m.opened_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOpenedAt returns the old "opened_at" field's value of the CircuitBreaker entity.
// If the CircuitBreaker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CircuitBreakerMutation) OldOpenedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpenedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpenedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpenedAt: %w", err)
	}
	return oldValue.OpenedAt, nil
}

// ClearOpenedAt clears the value of the "opened_at" field.
func (m *CircuitBreakerMutation) ClearOpenedAt() {
	m.opened_at = nil
	m.clearedFields[circuitbreaker.FieldOpenedAt] = struct{}{}
}

// OpenedAtCleared returns if the "opened_at" field was cleared in this mutation.
func (m *CircuitBreakerMutation) OpenedAtCleared() bool {
	_, ok := m.clearedFields[circuitbreaker.FieldOpenedAt]
	return ok
}

// ResetOpenedAt resets all changes to the "opened_at" field.
func (m *CircuitBreakerMutation) ResetOpenedAt() {
	m.opened_at = nil
	delete(m.clearedFields, circuitbreaker.FieldOpenedAt)
}

// SetCooldownUntil sets the "cooldown_until" field.
func (m *CircuitBreakerMutation) SetCooldownUntil(t time.Time) {
	m.cooldown_until = &t
}

// CooldownUntil returns the value of the "cooldown_until" field in the mutation.
func (m *CircuitBreakerMutation) CooldownUntil() (r time.Time, exists bool) {
	v := m.cooldown_until
	if v == nil {
		return
	}
	return *v, true
}

// OldCooldownUntil returns the old "cooldown_until" field's value of the CircuitBreaker entity.
// If the CircuitBreaker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CircuitBreakerMutation) OldCooldownUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCooldownUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCooldownUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCooldownUntil: %w", err)
	}
	return oldValue.CooldownUntil, nil
}

// ClearCooldownUntil clears the value of the "cooldown_until" field.
func (m *CircuitBreakerMutation) ClearCooldownUntil() {
	m.cooldown_until = nil
	m.clearedFields[circuitbreaker.FieldCooldownUntil] = struct{}{}
}

// CooldownUntilCleared returns if the "cooldown_until" field was cleared in this mutation.
func (m *CircuitBreakerMutation) CooldownUntilCleared() bool {
	_, ok := m.clearedFields[circuitbreaker.FieldCooldownUntil]
	return ok
}

// ResetCooldownUntil resets all changes to the "cooldown_until" field.
func (m *CircuitBreakerMutation) ResetCooldownUntil() {
	m.cooldown_until = nil
	delete(m.clearedFields, circuitbreaker.FieldCooldownUntil)
}

// SetCooldownS sets the "cooldown_s" field.
func (m *CircuitBreakerMutation) SetCooldownS(i int) {
	m.cooldown_s = &i
	m.addcooldown_s = nil
}

// CooldownS returns the value of the "cooldown_s" field in the mutation.
func (m *CircuitBreakerMutation) CooldownS() (r int, exists bool) {
	v := m.cooldown_s
	if v == nil {
		return
	}
	return *v, true
}

// OldCooldownS returns the old "cooldown_s" field's value of the CircuitBreaker entity.
// If the CircuitBreaker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CircuitBreakerMutation) OldCooldownS(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCooldownS is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCooldownS requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCooldownS: %w", err)
	}
	return oldValue.CooldownS, nil
}

// AddCooldownS adds i to the "cooldown_s" field.
func (m *CircuitBreakerMutation) AddCooldownS(i int) {
	if m.addcooldown_s != nil {
		*m.addcooldown_s += i
	} else {
		m.addcooldown_s = &i
	}
}

// AddedCooldownS returns the value that was added to the "cooldown_s" field in this mutation.
func (m *CircuitBreakerMutation) AddedCooldownS() (r int, exists bool) {
	v := m.addcooldown_s
	if v == nil {
		return
	}
	return *v, true
}

// ResetCooldownS resets all changes to the "cooldown_s" field.
func (m *CircuitBreakerMutation) ResetCooldownS() {
	m.cooldown_s = nil
	m.addcooldown_s = nil
}

// Where appends a list predicates to the CircuitBreakerMutation builder.
func (m *CircuitBreakerMutation) Where(ps ...predicate.CircuitBreaker) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CircuitBreakerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CircuitBreakerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CircuitBreaker, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CircuitBreakerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CircuitBreakerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CircuitBreaker).
func (m *CircuitBreakerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CircuitBreakerMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.tenant != nil {
		fields = append(fields, circuitbreaker.FieldTenant)
	}
	if m.failure_class != nil {
		fields = append(fields, circuitbreaker.FieldFailureClass)
	}
	if m.state != nil {
		fields = append(fields, circuitbreaker.FieldState)
	}
	if m.fail_count != nil {
		fields = append(fields, circuitbreaker.FieldFailCount)
	}
	if m.threshold != nil {
		fields = append(fields, circuitbreaker.FieldThreshold)
	}
	if m.window_start != nil {
		fields = append(fields, circuitbreaker.FieldWindowStart)
	}
	if m.opened_at != nil {
		fields = append(fields, circuitbreaker.FieldOpenedAt)
	}
	if m.cooldown_until != nil {
		fields = append(fields, circuitbreaker.FieldCooldownUntil)
	}
	if m.cooldown_s != nil {
		fields = append(fields, circuitbreaker.FieldCooldownS)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CircuitBreakerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case circuitbreaker.FieldTenant:
		return m.Tenant()
	case circuitbreaker.FieldFailureClass:
		return m.FailureClass()
	case circuitbreaker.FieldState:
		return m.State()
	case circuitbreaker.FieldFailCount:
		return m.FailCount()
	case circuitbreaker.FieldThreshold:
		return m.Threshold()
	case circuitbreaker.FieldWindowStart:
		return m.WindowStart()
	case circuitbreaker.FieldOpenedAt:
		return m.OpenedAt()
	case circuitbreaker.FieldCooldownUntil:
		return m.CooldownUntil()
	case circuitbreaker.FieldCooldownS:
		return m.CooldownS()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CircuitBreakerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case circuitbreaker.FieldTenant:
		return m.OldTenant(ctx)
	case circuitbreaker.FieldFailureClass:
		return m.OldFailureClass(ctx)
	case circuitbreaker.FieldState:
		return m.OldState(ctx)
	case circuitbreaker.FieldFailCount:
		return m.OldFailCount(ctx)
	case circuitbreaker.FieldThreshold:
		return m.OldThreshold(ctx)
	case circuitbreaker.FieldWindowStart:
		return m.OldWindowStart(ctx)
	case circuitbreaker.FieldOpenedAt:
		return m.OldOpenedAt(ctx)
	case circuitbreaker.FieldCooldownUntil:
		return m.OldCooldownUntil(ctx)
	case circuitbreaker.FieldCooldownS:
		return m.OldCooldownS(ctx)
	}
	return nil, fmt.Errorf("unknown CircuitBreaker field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CircuitBreakerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case circuitbreaker.FieldTenant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenant(v)
		return nil
	case circuitbreaker.FieldFailureClass:
		v, ok := value.(circuitbreaker.FailureClass)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureClass(v)
		return nil
	case circuitbreaker.FieldState:
		v, ok := value.(circuitbreaker.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case circuitbreaker.FieldFailCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailCount(v)
		return nil
	case circuitbreaker.FieldThreshold:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreshold(v)
		return nil
	case circuitbreaker.FieldWindowStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowStart(v)
		return nil
	case circuitbreaker.FieldOpenedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpenedAt(v)
		return nil
	case circuitbreaker.FieldCooldownUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCooldownUntil(v)
		return nil
	case circuitbreaker.FieldCooldownS:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCooldownS(v)
		return nil
	}
	return fmt.Errorf("unknown CircuitBreaker field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CircuitBreakerMutation) AddedFields() []string {
	var fields []string
	if m.addfail_count != nil {
		fields = append(fields, circuitbreaker.FieldFailCount)
	}
	if m.addthreshold != nil {
		fields = append(fields, circuitbreaker.FieldThreshold)
	}
	if m.addcooldown_s != nil {
		fields = append(fields, circuitbreaker.FieldCooldownS)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CircuitBreakerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case circuitbreaker.FieldFailCount:
		return m.AddedFailCount()
	case circuitbreaker.FieldThreshold:
		return m.AddedThreshold()
	case circuitbreaker.FieldCooldownS:
		return m.AddedCooldownS()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CircuitBreakerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case circuitbreaker.FieldFailCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailCount(v)
		return nil
	case circuitbreaker.FieldThreshold:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddThreshold(v)
		return nil
	case circuitbreaker.FieldCooldownS:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCooldownS(v)
		return nil
	}
	return fmt.Errorf("unknown CircuitBreaker numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CircuitBreakerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(circuitbreaker.FieldWindowStart) {
		fields = append(fields, circuitbreaker.FieldWindowStart)
	}
	if m.FieldCleared(circuitbreaker.FieldOpenedAt) {
		fields = append(fields, circuitbreaker.FieldOpenedAt)
	}
	if m.FieldCleared(circuitbreaker.FieldCooldownUntil) {
		fields = append(fields, circuitbreaker.FieldCooldownUntil)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CircuitBreakerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CircuitBreakerMutation) ClearField(name string) error {
	switch name {
	case circuitbreaker.FieldWindowStart:
		m.ClearWindowStart()
		return nil
	case circuitbreaker.FieldOpenedAt:
		m.ClearOpenedAt()
		return nil
	case circuitbreaker.FieldCooldownUntil:
		m.ClearCooldownUntil()
		return nil
	}
	return fmt.Errorf("unknown CircuitBreaker nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CircuitBreakerMutation) ResetField(name string) error {
	switch name {
	case circuitbreaker.FieldTenant:
		m.ResetTenant()
		return nil
	case circuitbreaker.FieldFailureClass:
		m.ResetFailureClass()
		return nil
	case circuitbreaker.FieldState:
		m.ResetState()
		return nil
	case circuitbreaker.FieldFailCount:
		m.ResetFailCount()
		return nil
	case circuitbreaker.FieldThreshold:
		m.ResetThreshold()
		return nil
	case circuitbreaker.FieldWindowStart:
		m.ResetWindowStart()
		return nil
	case circuitbreaker.FieldOpenedAt:
		m.ResetOpenedAt()
		return nil
	case circuitbreaker.FieldCooldownUntil:
		m.ResetCooldownUntil()
		return nil
	case circuitbreaker.FieldCooldownS:
		m.ResetCooldownS()
		return nil
	}
	return fmt.Errorf("unknown CircuitBreaker field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CircuitBreakerMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CircuitBreakerMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CircuitBreakerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CircuitBreakerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CircuitBreakerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CircuitBreakerMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CircuitBreakerMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CircuitBreaker unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CircuitBreakerMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CircuitBreaker edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int64
	tenant        *string
	run_id        *string
	channel       *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int64) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenant sets the "tenant" field.
func (m *EventMutation) SetTenant(s string) {
	m.tenant = &s
}

// Tenant returns the value of the "tenant" field in the mutation.
func (m *EventMutation) Tenant() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenant returns the old "tenant" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldTenant(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenant: %w", err)
	}
	return oldValue.Tenant, nil
}

// ResetTenant resets all changes to the "tenant" field.
func (m *EventMutation) ResetTenant() {
	m.tenant = nil
}

// SetRunID sets the "run_id" field.
func (m *EventMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *EventMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *EventMutation) ResetRunID() {
	m.run_id = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.tenant != nil {
		fields = append(fields, event.FieldTenant)
	}
	if m.run_id != nil {
		fields = append(fields, event.FieldRunID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldTenant:
		return m.Tenant()
	case event.FieldRunID:
		return m.RunID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldTenant:
		return m.OldTenant(ctx)
	case event.FieldRunID:
		return m.OldRunID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldTenant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenant(v)
		return nil
	case event.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldTenant:
		m.ResetTenant()
		return nil
	case event.FieldRunID:
		m.ResetRunID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// FailureMutation represents an operation that mutates the Failure nodes in the graph.
type FailureMutation struct {
	config
	op              Op
	typ             string
	id              *string
	tenant          *string
	class           *failure.Class
	confidence      *float64
	addconfidence   *float64
	log_excerpt     *string
	retryable       *bool
	requires_replan *bool
	requires_human  *bool
	created_at      *time.Time
	clearedFields   map[string]struct{}
	run             *string
	clearedrun      bool
	step            *string
	clearedstep     bool
	done            bool
	oldValue        func(context.Context) (*Failure, error)
	predicates      []predicate.Failure
}

var _ ent.Mutation = (*FailureMutation)(nil)

// failureOption allows management of the mutation configuration using functional options.
type failureOption func(*FailureMutation)

// newFailureMutation creates new mutation for the Failure entity.
func newFailureMutation(c config, op Op, opts ...failureOption) *FailureMutation {
	m := &FailureMutation{
		config:        c,
		op:            op,
		typ:           TypeFailure,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFailureID sets the ID field of the mutation.
func withFailureID(id string) failureOption {
	return func(m *FailureMutation) {
		var (
			err   error
			once  sync.Once
			value *Failure
		)
		m.oldValue = func(ctx context.Context) (*Failure, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Failure.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFailure sets the old Failure of the mutation.
func withFailure(node *Failure) failureOption {
	return func(m *FailureMutation) {
		m.oldValue = func(context.Context) (*Failure, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FailureMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FailureMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Failure entities.
func (m *FailureMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FailureMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FailureMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Failure.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenant sets the "tenant" field.
func (m *FailureMutation) SetTenant(s string) {
	m.tenant = &s
}

// Tenant returns the value of the "tenant" field in the mutation.
func (m *FailureMutation) Tenant() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenant returns the old "tenant" field's value of the Failure entity.
// If the Failure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FailureMutation) OldTenant(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenant: %w", err)
	}
	return oldValue.Tenant, nil
}

// ResetTenant resets all changes to the "tenant" field.
func (m *FailureMutation) ResetTenant() {
	m.tenant = nil
}

// SetRunID sets the "run_id" field.
func (m *FailureMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *FailureMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Failure entity.
// If the Failure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FailureMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *FailureMutation) ResetRunID() {
	m.run = nil
}

// SetStepID sets the "step_id" field.
func (m *FailureMutation) SetStepID(s string) {
	m.step = &s
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *FailureMutation) StepID() (r string, exists bool) {
	v := m.step
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the Failure entity.
// If the Failure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FailureMutation) OldStepID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ResetStepID resets all changes to the "step_id" field.
func (m *FailureMutation) ResetStepID() {
	m.step = nil
}

// SetClass sets the "class" field.
func (m *FailureMutation) SetClass(f failure.Class) {
	m.class = &f
}

// Class returns the value of the "class" field in the mutation.
func (m *FailureMutation) Class() (r failure.Class, exists bool) {
	v := m.class
	if v == nil {
		return
	}
	return *v, true
}

// OldClass returns the old "class" field's value of the Failure entity.
// If the Failure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FailureMutation) OldClass(ctx context.Context) (v failure.Class, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClass is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClass requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClass: %w", err)
	}
	return oldValue.Class, nil
}

// ResetClass resets all changes to the "class" field.
func (m *FailureMutation) ResetClass() {
	m.class = nil
}

// SetConfidence sets the "confidence" field.
func (m *FailureMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *FailureMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Failure entity.
// If the Failure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FailureMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *FailureMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *FailureMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *FailureMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetLogExcerpt sets the "log_excerpt" field.
func (m *FailureMutation) SetLogExcerpt(s string) {
	m.log_excerpt = &s
}

// LogExcerpt returns the value of the "log_excerpt" field in the mutation.
func (m *FailureMutation) LogExcerpt() (r string, exists bool) {
	v := m.log_excerpt
	if v == nil {
		return
	}
	return *v, true
}

// OldLogExcerpt returns the old "log_excerpt" field's value of the Failure entity.
// If the Failure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FailureMutation) OldLogExcerpt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLogExcerpt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLogExcerpt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLogExcerpt: %w", err)
	}
	return oldValue.LogExcerpt, nil
}

// ResetLogExcerpt resets all changes to the "log_excerpt" field.
func (m *FailureMutation) ResetLogExcerpt() {
	m.log_excerpt = nil
}

// SetRetryable sets the "retryable" field.
func (m *FailureMutation) SetRetryable(b bool) {
	m.retryable = &b
}

// Retryable returns the value of the "retryable" field in the mutation.
func (m *FailureMutation) Retryable() (r bool, exists bool) {
	v := m.retryable
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryable returns the old "retryable" field's value of the Failure entity.
// If the Failure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FailureMutation) OldRetryable(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryable: %w", err)
	}
	return oldValue.Retryable, nil
}

// ResetRetryable resets all changes to the "retryable" field.
func (m *FailureMutation) ResetRetryable() {
	m.retryable = nil
}

// SetRequiresReplan sets the "requires_replan" field.
func (m *FailureMutation) SetRequiresReplan(b bool) {
	m.requires_replan = &b
}

// RequiresReplan returns the value of the "requires_replan" field in the mutation.
func (m *FailureMutation) RequiresReplan() (r bool, exists bool) {
	v := m.requires_replan
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiresReplan returns the old "requires_replan" field's value of the Failure entity.
// If the Failure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FailureMutation) OldRequiresReplan(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiresReplan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiresReplan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiresReplan: %w", err)
	}
	return oldValue.RequiresReplan, nil
}

// ResetRequiresReplan resets all changes to the "requires_replan" field.
func (m *FailureMutation) ResetRequiresReplan() {
	m.requires_replan = nil
}

// SetRequiresHuman sets the "requires_human" field.
func (m *FailureMutation) SetRequiresHuman(b bool) {
	m.requires_human = &b
}

// RequiresHuman returns the value of the "requires_human" field in the mutation.
func (m *FailureMutation) RequiresHuman() (r bool, exists bool) {
	v := m.requires_human
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiresHuman returns the old "requires_human" field's value of the Failure entity.
// If the Failure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FailureMutation) OldRequiresHuman(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiresHuman is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiresHuman requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiresHuman: %w", err)
	}
	return oldValue.RequiresHuman, nil
}

// ResetRequiresHuman resets all changes to the "requires_human" field.
func (m *FailureMutation) ResetRequiresHuman() {
	m.requires_human = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FailureMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FailureMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Failure entity.
// If the Failure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FailureMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FailureMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *FailureMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[failure.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *FailureMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *FailureMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *FailureMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// ClearStep clears the "step" edge to the Step entity.
func (m *FailureMutation) ClearStep() {
	m.clearedstep = true
	m.clearedFields[failure.FieldStepID] = struct{}{}
}

// StepCleared reports if the "step" edge to the Step entity was cleared.
func (m *FailureMutation) StepCleared() bool {
	return m.clearedstep
}

// StepIDs returns the "step" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StepID instead. It exists only for internal usage by the builders.
func (m *FailureMutation) StepIDs() (ids []string) {
	if id := m.step; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStep resets all changes to the "step" edge.
func (m *FailureMutation) ResetStep() {
	m.step = nil
	m.clearedstep = false
}

// Where appends a list predicates to the FailureMutation builder.
func (m *FailureMutation) Where(ps ...predicate.Failure) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FailureMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FailureMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Failure, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FailureMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FailureMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Failure).
func (m *FailureMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FailureMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.tenant != nil {
		fields = append(fields, failure.FieldTenant)
	}
	if m.run != nil {
		fields = append(fields, failure.FieldRunID)
	}
	if m.step != nil {
		fields = append(fields, failure.FieldStepID)
	}
	if m.class != nil {
		fields = append(fields, failure.FieldClass)
	}
	if m.confidence != nil {
		fields = append(fields, failure.FieldConfidence)
	}
	if m.log_excerpt != nil {
		fields = append(fields, failure.FieldLogExcerpt)
	}
	if m.retryable != nil {
		fields = append(fields, failure.FieldRetryable)
	}
	if m.requires_replan != nil {
		fields = append(fields, failure.FieldRequiresReplan)
	}
	if m.requires_human != nil {
		fields = append(fields, failure.FieldRequiresHuman)
	}
	if m.created_at != nil {
		fields = append(fields, failure.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FailureMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case failure.FieldTenant:
		return m.Tenant()
	case failure.FieldRunID:
		return m.RunID()
	case failure.FieldStepID:
		return m.StepID()
	case failure.FieldClass:
		return m.Class()
	case failure.FieldConfidence:
		return m.Confidence()
	case failure.FieldLogExcerpt:
		return m.LogExcerpt()
	case failure.FieldRetryable:
		return m.Retryable()
	case failure.FieldRequiresReplan:
		return m.RequiresReplan()
	case failure.FieldRequiresHuman:
		return m.RequiresHuman()
	case failure.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FailureMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case failure.FieldTenant:
		return m.OldTenant(ctx)
	case failure.FieldRunID:
		return m.OldRunID(ctx)
	case failure.FieldStepID:
		return m.OldStepID(ctx)
	case failure.FieldClass:
		return m.OldClass(ctx)
	case failure.FieldConfidence:
		return m.OldConfidence(ctx)
	case failure.FieldLogExcerpt:
		return m.OldLogExcerpt(ctx)
	case failure.FieldRetryable:
		return m.OldRetryable(ctx)
	case failure.FieldRequiresReplan:
		return m.OldRequiresReplan(ctx)
	case failure.FieldRequiresHuman:
		return m.OldRequiresHuman(ctx)
	case failure.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Failure field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FailureMutation) SetField(name string, value ent.Value) error {
	switch name {
	case failure.FieldTenant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenant(v)
		return nil
	case failure.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case failure.FieldStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case failure.FieldClass:
		v, ok := value.(failure.Class)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClass(v)
		return nil
	case failure.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case failure.FieldLogExcerpt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLogExcerpt(v)
		return nil
	case failure.FieldRetryable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryable(v)
		return nil
	case failure.FieldRequiresReplan:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiresReplan(v)
		return nil
	case failure.FieldRequiresHuman:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiresHuman(v)
		return nil
	case failure.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Failure field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FailureMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, failure.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FailureMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case failure.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FailureMutation) AddField(name string, value ent.Value) error {
	switch name {
	case failure.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Failure numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FailureMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FailureMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FailureMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Failure nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FailureMutation) ResetField(name string) error {
	switch name {
	case failure.FieldTenant:
		m.ResetTenant()
		return nil
	case failure.FieldRunID:
		m.ResetRunID()
		return nil
	case failure.FieldStepID:
		m.ResetStepID()
		return nil
	case failure.FieldClass:
		m.ResetClass()
		return nil
	case failure.FieldConfidence:
		m.ResetConfidence()
		return nil
	case failure.FieldLogExcerpt:
		m.ResetLogExcerpt()
		return nil
	case failure.FieldRetryable:
		m.ResetRetryable()
		return nil
	case failure.FieldRequiresReplan:
		m.ResetRequiresReplan()
		return nil
	case failure.FieldRequiresHuman:
		m.ResetRequiresHuman()
		return nil
	case failure.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Failure field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FailureMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.run != nil {
		edges = append(edges, failure.EdgeRun)
	}
	if m.step != nil {
		edges = append(edges, failure.EdgeStep)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FailureMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case failure.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	case failure.EdgeStep:
		if id := m.step; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FailureMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FailureMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FailureMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrun {
		edges = append(edges, failure.EdgeRun)
	}
	if m.clearedstep {
		edges = append(edges, failure.EdgeStep)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FailureMutation) EdgeCleared(name string) bool {
	switch name {
	case failure.EdgeRun:
		return m.clearedrun
	case failure.EdgeStep:
		return m.clearedstep
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FailureMutation) ClearEdge(name string) error {
	switch name {
	case failure.EdgeRun:
		m.ClearRun()
		return nil
	case failure.EdgeStep:
		m.ClearStep()
		return nil
	}
	return fmt.Errorf("unknown Failure unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FailureMutation) ResetEdge(name string) error {
	switch name {
	case failure.EdgeRun:
		m.ResetRun()
		return nil
	case failure.EdgeStep:
		m.ResetStep()
		return nil
	}
	return fmt.Errorf("unknown Failure edge %s", name)
}

// QueueLeaseMutation represents an operation that mutates the QueueLease nodes in the graph.
type QueueLeaseMutation struct {
	config
	op             Op
	typ            string
	id             *string
	tenant         *string
	worker_id      *string
	queue          *queuelease.Queue
	acquired_at    *time.Time
	expires_at     *time.Time
	last_heartbeat *time.Time
	clearedFields  map[string]struct{}
	step           *string
	clearedstep    bool
	done           bool
	oldValue       func(context.Context) (*QueueLease, error)
	predicates     []predicate.QueueLease
}

var _ ent.Mutation = (*QueueLeaseMutation)(nil)

// queueleaseOption allows management of the mutation configuration using functional options.
type queueleaseOption func(*QueueLeaseMutation)

// newQueueLeaseMutation creates new mutation for the QueueLease entity.
func newQueueLeaseMutation(c config, op Op, opts ...queueleaseOption) *QueueLeaseMutation {
	m := &QueueLeaseMutation{
		config:        c,
		op:            op,
		typ:           TypeQueueLease,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQueueLeaseID sets the ID field of the mutation.
func withQueueLeaseID(id string) queueleaseOption {
	return func(m *QueueLeaseMutation) {
		var (
			err   error
			once  sync.Once
			value *QueueLease
		)
		m.oldValue = func(ctx context.Context) (*QueueLease, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QueueLease.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQueueLease sets the old QueueLease of the mutation.
func withQueueLease(node *QueueLease) queueleaseOption {
	return func(m *QueueLeaseMutation) {
		m.oldValue = func(context.Context) (*QueueLease, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QueueLeaseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QueueLeaseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QueueLease entities.
func (m *QueueLeaseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QueueLeaseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QueueLeaseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QueueLease.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenant sets the "tenant" field.
func (m *QueueLeaseMutation) SetTenant(s string) {
	m.tenant = &s
}

// Tenant returns the value of the "tenant" field in the mutation.
func (m *QueueLeaseMutation) Tenant() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenant returns the old "tenant" field's value of the QueueLease entity.
// If the QueueLease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueLeaseMutation) OldTenant(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenant: %w", err)
	}
	return oldValue.Tenant, nil
}

// ResetTenant resets all changes to the "tenant" field.
func (m *QueueLeaseMutation) ResetTenant() {
	m.tenant = nil
}

// SetWorkerID sets the "worker_id" field.
func (m *QueueLeaseMutation) SetWorkerID(s string) {
	m.worker_id = &s
}

// WorkerID returns the value of the "worker_id" field in the mutation.
func (m *QueueLeaseMutation) WorkerID() (r string, exists bool) {
	v := m.worker_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkerID returns the old "worker_id" field's value of the QueueLease entity.
// If the QueueLease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueLeaseMutation) OldWorkerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkerID: %w", err)
	}
	return oldValue.WorkerID, nil
}

// ResetWorkerID resets all changes to the "worker_id" field.
func (m *QueueLeaseMutation) ResetWorkerID() {
	m.worker_id = nil
}

// SetQueue sets the "queue" field.
func (m *QueueLeaseMutation) SetQueue(q queuelease.Queue) {
	m.queue = &q
}

// Queue returns the value of the "queue" field in the mutation.
func (m *QueueLeaseMutation) Queue() (r queuelease.Queue, exists bool) {
	v := m.queue
	if v == nil {
		return
	}
	return *v, true
}

// OldQueue returns the old "queue" field's value of the QueueLease entity.
// If the QueueLease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueLeaseMutation) OldQueue(ctx context.Context) (v queuelease.Queue, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueue: %w", err)
	}
	return oldValue.Queue, nil
}

// ResetQueue resets all changes to the "queue" field.
func (m *QueueLeaseMutation) ResetQueue() {
	m.queue = nil
}

// SetStepID sets the "step_id" field.
func (m *QueueLeaseMutation) SetStepID(s string) {
	m.step = &s
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *QueueLeaseMutation) StepID() (r string, exists bool) {
	v := m.step
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the QueueLease entity.
// If the QueueLease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueLeaseMutation) OldStepID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ResetStepID resets all changes to the "step_id" field.
func (m *QueueLeaseMutation) ResetStepID() {
	m.step = nil
}

// SetAcquiredAt sets the "acquired_at" field.
func (m *QueueLeaseMutation) SetAcquiredAt(t time.Time) {
	m.acquired_at = &t
}

// AcquiredAt returns the value of the "acquired_at" field in the mutation.
func (m *QueueLeaseMutation) AcquiredAt() (r time.Time, exists bool) {
	v := m.acquired_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAcquiredAt returns the old "acquired_at" field's value of the QueueLease entity.
// If the QueueLease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueLeaseMutation) OldAcquiredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcquiredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcquiredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcquiredAt: %w", err)
	}
	return oldValue.AcquiredAt, nil
}

// ResetAcquiredAt resets all changes to the "acquired_at" field.
func (m *QueueLeaseMutation) ResetAcquiredAt() {
	m.acquired_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *QueueLeaseMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *QueueLeaseMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the QueueLease entity.
// If the QueueLease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueLeaseMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *QueueLeaseMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (m *QueueLeaseMutation) SetLastHeartbeat(t time.Time) {
	m.last_heartbeat = &t
}

// LastHeartbeat returns the value of the "last_heartbeat" field in the mutation.
func (m *QueueLeaseMutation) LastHeartbeat() (r time.Time, exists bool) {
	v := m.last_heartbeat
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeat returns the old "last_heartbeat" field's value of the QueueLease entity.
// If the QueueLease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueLeaseMutation) OldLastHeartbeat(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeat: %w", err)
	}
	return oldValue.LastHeartbeat, nil
}

// ResetLastHeartbeat resets all changes to the "last_heartbeat" field.
func (m *QueueLeaseMutation) ResetLastHeartbeat() {
	m.last_heartbeat = nil
}

// ClearStep clears the "step" edge to the Step entity.
func (m *QueueLeaseMutation) ClearStep() {
	m.clearedstep = true
	m.clearedFields[queuelease.FieldStepID] = struct{}{}
}

// StepCleared reports if the "step" edge to the Step entity was cleared.
func (m *QueueLeaseMutation) StepCleared() bool {
	return m.clearedstep
}

// StepIDs returns the "step" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StepID instead. It exists only for internal usage by the builders.
func (m *QueueLeaseMutation) StepIDs() (ids []string) {
	if id := m.step; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStep resets all changes to the "step" edge.
func (m *QueueLeaseMutation) ResetStep() {
	m.step = nil
	m.clearedstep = false
}

// Where appends a list predicates to the QueueLeaseMutation builder.
func (m *QueueLeaseMutation) Where(ps ...predicate.QueueLease) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QueueLeaseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QueueLeaseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QueueLease, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QueueLeaseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QueueLeaseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QueueLease).
func (m *QueueLeaseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QueueLeaseMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.tenant != nil {
		fields = append(fields, queuelease.FieldTenant)
	}
	if m.worker_id != nil {
		fields = append(fields, queuelease.FieldWorkerID)
	}
	if m.queue != nil {
		fields = append(fields, queuelease.FieldQueue)
	}
	if m.step != nil {
		fields = append(fields, queuelease.FieldStepID)
	}
	if m.acquired_at != nil {
		fields = append(fields, queuelease.FieldAcquiredAt)
	}
	if m.expires_at != nil {
		fields = append(fields, queuelease.FieldExpiresAt)
	}
	if m.last_heartbeat != nil {
		fields = append(fields, queuelease.FieldLastHeartbeat)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QueueLeaseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case queuelease.FieldTenant:
		return m.Tenant()
	case queuelease.FieldWorkerID:
		return m.WorkerID()
	case queuelease.FieldQueue:
		return m.Queue()
	case queuelease.FieldStepID:
		return m.StepID()
	case queuelease.FieldAcquiredAt:
		return m.AcquiredAt()
	case queuelease.FieldExpiresAt:
		return m.ExpiresAt()
	case queuelease.FieldLastHeartbeat:
		return m.LastHeartbeat()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QueueLeaseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case queuelease.FieldTenant:
		return m.OldTenant(ctx)
	case queuelease.FieldWorkerID:
		return m.OldWorkerID(ctx)
	case queuelease.FieldQueue:
		return m.OldQueue(ctx)
	case queuelease.FieldStepID:
		return m.OldStepID(ctx)
	case queuelease.FieldAcquiredAt:
		return m.OldAcquiredAt(ctx)
	case queuelease.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case queuelease.FieldLastHeartbeat:
		return m.OldLastHeartbeat(ctx)
	}
	return nil, fmt.Errorf("unknown QueueLease field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueLeaseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case queuelease.FieldTenant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenant(v)
		return nil
	case queuelease.FieldWorkerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkerID(v)
		return nil
	case queuelease.FieldQueue:
		v, ok := value.(queuelease.Queue)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueue(v)
		return nil
	case queuelease.FieldStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case queuelease.FieldAcquiredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcquiredAt(v)
		return nil
	case queuelease.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case queuelease.FieldLastHeartbeat:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeat(v)
		return nil
	}
	return fmt.Errorf("unknown QueueLease field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QueueLeaseMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QueueLeaseMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueLeaseMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown QueueLease numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QueueLeaseMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QueueLeaseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QueueLeaseMutation) ClearField(name string) error {
	return fmt.Errorf("unknown QueueLease nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QueueLeaseMutation) ResetField(name string) error {
	switch name {
	case queuelease.FieldTenant:
		m.ResetTenant()
		return nil
	case queuelease.FieldWorkerID:
		m.ResetWorkerID()
		return nil
	case queuelease.FieldQueue:
		m.ResetQueue()
		return nil
	case queuelease.FieldStepID:
		m.ResetStepID()
		return nil
	case queuelease.FieldAcquiredAt:
		m.ResetAcquiredAt()
		return nil
	case queuelease.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case queuelease.FieldLastHeartbeat:
		m.ResetLastHeartbeat()
		return nil
	}
	return fmt.Errorf("unknown QueueLease field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QueueLeaseMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.step != nil {
		edges = append(edges, queuelease.EdgeStep)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QueueLeaseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case queuelease.EdgeStep:
		if id := m.step; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QueueLeaseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QueueLeaseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QueueLeaseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstep {
		edges = append(edges, queuelease.EdgeStep)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QueueLeaseMutation) EdgeCleared(name string) bool {
	switch name {
	case queuelease.EdgeStep:
		return m.clearedstep
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QueueLeaseMutation) ClearEdge(name string) error {
	switch name {
	case queuelease.EdgeStep:
		m.ClearStep()
		return nil
	}
	return fmt.Errorf("unknown QueueLease unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QueueLeaseMutation) ResetEdge(name string) error {
	switch name {
	case queuelease.EdgeStep:
		m.ResetStep()
		return nil
	}
	return fmt.Errorf("unknown QueueLease edge %s", name)
}

// RepairAttemptMutation represents an operation that mutates the RepairAttempt nodes in the graph.
type RepairAttemptMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	tenant             *string
	failure_id         *string
	phase              *repairattempt.Phase
	strategy           *string
	outcome            *repairattempt.Outcome
	backoff_used_ms    *int
	addbackoff_used_ms *int
	diff_ref           *string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	run                *string
	clearedrun         bool
	done               bool
	oldValue           func(context.Context) (*RepairAttempt, error)
	predicates         []predicate.RepairAttempt
}

var _ ent.Mutation = (*RepairAttemptMutation)(nil)

// repairattemptOption allows management of the mutation configuration using functional options.
type repairattemptOption func(*RepairAttemptMutation)

// newRepairAttemptMutation creates new mutation for the RepairAttempt entity.
func newRepairAttemptMutation(c config, op Op, opts ...repairattemptOption) *RepairAttemptMutation {
	m := &RepairAttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeRepairAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRepairAttemptID sets the ID field of the mutation.
func withRepairAttemptID(id string) repairattemptOption {
	return func(m *RepairAttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *RepairAttempt
		)
		m.oldValue = func(ctx context.Context) (*RepairAttempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RepairAttempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRepairAttempt sets the old RepairAttempt of the mutation.
func withRepairAttempt(node *RepairAttempt) repairattemptOption {
	return func(m *RepairAttemptMutation) {
		m.oldValue = func(context.Context) (*RepairAttempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RepairAttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RepairAttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RepairAttempt entities.
func (m *RepairAttemptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RepairAttemptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RepairAttemptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RepairAttempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenant sets the "tenant" field.
func (m *RepairAttemptMutation) SetTenant(s string) {
	m.tenant = &s
}

// Tenant returns the value of the "tenant" field in the mutation.
func (m *RepairAttemptMutation) Tenant() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenant returns the old "tenant" field's value of the RepairAttempt entity.
// If the RepairAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepairAttemptMutation) OldTenant(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenant: %w", err)
	}
	return oldValue.Tenant, nil
}

// ResetTenant resets all changes to the "tenant" field.
func (m *RepairAttemptMutation) ResetTenant() {
	m.tenant = nil
}

// SetRunID sets the "run_id" field.
func (m *RepairAttemptMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *RepairAttemptMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the RepairAttempt entity.
// If the RepairAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepairAttemptMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *RepairAttemptMutation) ResetRunID() {
	m.run = nil
}

// SetFailureID sets the "failure_id" field.
func (m *RepairAttemptMutation) SetFailureID(s string) {
	m.failure_id = &s
}

// FailureID returns the value of the "failure_id" field in the mutation.
func (m *RepairAttemptMutation) FailureID() (r string, exists bool) {
	v := m.failure_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureID returns the old "failure_id" field's value of the RepairAttempt entity.
// If the RepairAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepairAttemptMutation) OldFailureID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureID: %w", err)
	}
	return oldValue.FailureID, nil
}

// ResetFailureID resets all changes to the "failure_id" field.
func (m *RepairAttemptMutation) ResetFailureID() {
	m.failure_id = nil
}

// SetPhase sets the "phase" field.
func (m *RepairAttemptMutation) SetPhase(r repairattempt.Phase) {
	m.phase = &r
}

// Phase returns the value of the "phase" field in the mutation.
func (m *RepairAttemptMutation) Phase() (r repairattempt.Phase, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the RepairAttempt entity.
// If the RepairAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepairAttemptMutation) OldPhase(ctx context.Context) (v repairattempt.Phase, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *RepairAttemptMutation) ResetPhase() {
	m.phase = nil
}

// SetStrategy sets the "strategy" field.
func (m *RepairAttemptMutation) SetStrategy(s string) {
	m.strategy = &s
}

// Strategy returns the value of the "strategy" field in the mutation.
func (m *RepairAttemptMutation) Strategy() (r string, exists bool) {
	v := m.strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldStrategy returns the old "strategy" field's value of the RepairAttempt entity.
// If the RepairAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepairAttemptMutation) OldStrategy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrategy: %w", err)
	}
	return oldValue.Strategy, nil
}

// ResetStrategy resets all changes to the "strategy" field.
func (m *RepairAttemptMutation) ResetStrategy() {
	m.strategy = nil
}

// SetOutcome sets the "outcome" field.
func (m *RepairAttemptMutation) SetOutcome(r repairattempt.Outcome) {
	m.outcome = &r
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *RepairAttemptMutation) Outcome() (r repairattempt.Outcome, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the RepairAttempt entity.
// If the RepairAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepairAttemptMutation) OldOutcome(ctx context.Context) (v repairattempt.Outcome, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *RepairAttemptMutation) ResetOutcome() {
	m.outcome = nil
}

// SetBackoffUsedMs sets the "backoff_used_ms" field.
func (m *RepairAttemptMutation) SetBackoffUsedMs(i int) {
	m.backoff_used_ms = &i
	m.addbackoff_used_ms = nil
}

// BackoffUsedMs returns the value of the "backoff_used_ms" field in the mutation.
func (m *RepairAttemptMutation) BackoffUsedMs() (r int, exists bool) {
	v := m.backoff_used_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldBackoffUsedMs returns the old "backoff_used_ms" field's value of the RepairAttempt entity.
// If the RepairAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepairAttemptMutation) OldBackoffUsedMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBackoffUsedMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBackoffUsedMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBackoffUsedMs: %w", err)
	}
	return oldValue.BackoffUsedMs, nil
}

// AddBackoffUsedMs adds i to the "backoff_used_ms" field.
func (m *RepairAttemptMutation) AddBackoffUsedMs(i int) {
	if m.addbackoff_used_ms != nil {
		*m.addbackoff_used_ms += i
	} else {
		m.addbackoff_used_ms = &i
	}
}

// AddedBackoffUsedMs returns the value that was added to the "backoff_used_ms" field in this mutation.
func (m *RepairAttemptMutation) AddedBackoffUsedMs() (r int, exists bool) {
	v := m.addbackoff_used_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetBackoffUsedMs resets all changes to the "backoff_used_ms" field.
func (m *RepairAttemptMutation) ResetBackoffUsedMs() {
	m.backoff_used_ms = nil
	m.addbackoff_used_ms = nil
}

// SetDiffRef sets the "diff_ref" field.
func (m *RepairAttemptMutation) SetDiffRef(s string) {
	m.diff_ref = &s
}

// DiffRef returns the value of the "diff_ref" field in the mutation.
func (m *RepairAttemptMutation) DiffRef() (r string, exists bool) {
	v := m.diff_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldDiffRef returns the old "diff_ref" field's value of the RepairAttempt entity.
// If the RepairAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepairAttemptMutation) OldDiffRef(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiffRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiffRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiffRef: %w", err)
	}
	return oldValue.DiffRef, nil
}

// ClearDiffRef clears the value of the "diff_ref" field.
func (m *RepairAttemptMutation) ClearDiffRef() {
	m.diff_ref = nil
	m.clearedFields[repairattempt.FieldDiffRef] = struct{}{}
}

// DiffRefCleared returns if the "diff_ref" field was cleared in this mutation.
func (m *RepairAttemptMutation) DiffRefCleared() bool {
	_, ok := m.clearedFields[repairattempt.FieldDiffRef]
	return ok
}

// ResetDiffRef resets all changes to the "diff_ref" field.
func (m *RepairAttemptMutation) ResetDiffRef() {
	m.diff_ref = nil
	delete(m.clearedFields, repairattempt.FieldDiffRef)
}

// SetCreatedAt sets the "created_at" field.
func (m *RepairAttemptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RepairAttemptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RepairAttempt entity.
// If the RepairAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepairAttemptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RepairAttemptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *RepairAttemptMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[repairattempt.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *RepairAttemptMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *RepairAttemptMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *RepairAttemptMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the RepairAttemptMutation builder.
func (m *RepairAttemptMutation) Where(ps ...predicate.RepairAttempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RepairAttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RepairAttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RepairAttempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RepairAttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RepairAttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RepairAttempt).
func (m *RepairAttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RepairAttemptMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.tenant != nil {
		fields = append(fields, repairattempt.FieldTenant)
	}
	if m.run != nil {
		fields = append(fields, repairattempt.FieldRunID)
	}
	if m.failure_id != nil {
		fields = append(fields, repairattempt.FieldFailureID)
	}
	if m.phase != nil {
		fields = append(fields, repairattempt.FieldPhase)
	}
	if m.strategy != nil {
		fields = append(fields, repairattempt.FieldStrategy)
	}
	if m.outcome != nil {
		fields = append(fields, repairattempt.FieldOutcome)
	}
	if m.backoff_used_ms != nil {
		fields = append(fields, repairattempt.FieldBackoffUsedMs)
	}
	if m.diff_ref != nil {
		fields = append(fields, repairattempt.FieldDiffRef)
	}
	if m.created_at != nil {
		fields = append(fields, repairattempt.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RepairAttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case repairattempt.FieldTenant:
		return m.Tenant()
	case repairattempt.FieldRunID:
		return m.RunID()
	case repairattempt.FieldFailureID:
		return m.FailureID()
	case repairattempt.FieldPhase:
		return m.Phase()
	case repairattempt.FieldStrategy:
		return m.Strategy()
	case repairattempt.FieldOutcome:
		return m.Outcome()
	case repairattempt.FieldBackoffUsedMs:
		return m.BackoffUsedMs()
	case repairattempt.FieldDiffRef:
		return m.DiffRef()
	case repairattempt.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RepairAttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case repairattempt.FieldTenant:
		return m.OldTenant(ctx)
	case repairattempt.FieldRunID:
		return m.OldRunID(ctx)
	case repairattempt.FieldFailureID:
		return m.OldFailureID(ctx)
	case repairattempt.FieldPhase:
		return m.OldPhase(ctx)
	case repairattempt.FieldStrategy:
		return m.OldStrategy(ctx)
	case repairattempt.FieldOutcome:
		return m.OldOutcome(ctx)
	case repairattempt.FieldBackoffUsedMs:
		return m.OldBackoffUsedMs(ctx)
	case repairattempt.FieldDiffRef:
		return m.OldDiffRef(ctx)
	case repairattempt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RepairAttempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RepairAttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case repairattempt.FieldTenant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenant(v)
		return nil
	case repairattempt.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case repairattempt.FieldFailureID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureID(v)
		return nil
	case repairattempt.FieldPhase:
		v, ok := value.(repairattempt.Phase)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case repairattempt.FieldStrategy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrategy(v)
		return nil
	case repairattempt.FieldOutcome:
		v, ok := value.(repairattempt.Outcome)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case repairattempt.FieldBackoffUsedMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBackoffUsedMs(v)
		return nil
	case repairattempt.FieldDiffRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiffRef(v)
		return nil
	case repairattempt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RepairAttempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RepairAttemptMutation) AddedFields() []string {
	var fields []string
	if m.addbackoff_used_ms != nil {
		fields = append(fields, repairattempt.FieldBackoffUsedMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RepairAttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case repairattempt.FieldBackoffUsedMs:
		return m.AddedBackoffUsedMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RepairAttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case repairattempt.FieldBackoffUsedMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBackoffUsedMs(v)
		return nil
	}
	return fmt.Errorf("unknown RepairAttempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RepairAttemptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(repairattempt.FieldDiffRef) {
		fields = append(fields, repairattempt.FieldDiffRef)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RepairAttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RepairAttemptMutation) ClearField(name string) error {
	switch name {
	case repairattempt.FieldDiffRef:
		m.ClearDiffRef()
		return nil
	}
	return fmt.Errorf("unknown RepairAttempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RepairAttemptMutation) ResetField(name string) error {
	switch name {
	case repairattempt.FieldTenant:
		m.ResetTenant()
		return nil
	case repairattempt.FieldRunID:
		m.ResetRunID()
		return nil
	case repairattempt.FieldFailureID:
		m.ResetFailureID()
		return nil
	case repairattempt.FieldPhase:
		m.ResetPhase()
		return nil
	case repairattempt.FieldStrategy:
		m.ResetStrategy()
		return nil
	case repairattempt.FieldOutcome:
		m.ResetOutcome()
		return nil
	case repairattempt.FieldBackoffUsedMs:
		m.ResetBackoffUsedMs()
		return nil
	case repairattempt.FieldDiffRef:
		m.ResetDiffRef()
		return nil
	case repairattempt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RepairAttempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RepairAttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, repairattempt.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RepairAttemptMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case repairattempt.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RepairAttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RepairAttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RepairAttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, repairattempt.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RepairAttemptMutation) EdgeCleared(name string) bool {
	switch name {
	case repairattempt.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RepairAttemptMutation) ClearEdge(name string) error {
	switch name {
	case repairattempt.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown RepairAttempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RepairAttemptMutation) ResetEdge(name string) error {
	switch name {
	case repairattempt.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown RepairAttempt edge %s", name)
}

// ReplayBundleMutation represents an operation that mutates the ReplayBundle nodes in the graph.
type ReplayBundleMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant        *string
	bundle_hash   *string
	storage_ref   *string
	replayed_ok   *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*ReplayBundle, error)
	predicates    []predicate.ReplayBundle
}

var _ ent.Mutation = (*ReplayBundleMutation)(nil)

// replaybundleOption allows management of the mutation configuration using functional options.
type replaybundleOption func(*ReplayBundleMutation)

// newReplayBundleMutation creates new mutation for the ReplayBundle entity.
func newReplayBundleMutation(c config, op Op, opts ...replaybundleOption) *ReplayBundleMutation {
	m := &ReplayBundleMutation{
		config:        c,
		op:            op,
		typ:           TypeReplayBundle,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReplayBundleID sets the ID field of the mutation.
func withReplayBundleID(id string) replaybundleOption {
	return func(m *ReplayBundleMutation) {
		var (
			err   error
			once  sync.Once
			value *ReplayBundle
		)
		m.oldValue = func(ctx context.Context) (*ReplayBundle, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReplayBundle.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReplayBundle sets the old ReplayBundle of the mutation.
func withReplayBundle(node *ReplayBundle) replaybundleOption {
	return func(m *ReplayBundleMutation) {
		m.oldValue = func(context.Context) (*ReplayBundle, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReplayBundleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReplayBundleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ReplayBundle entities.
func (m *ReplayBundleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReplayBundleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReplayBundleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReplayBundle.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenant sets the "tenant" field.
func (m *ReplayBundleMutation) SetTenant(s string) {
	m.tenant = &s
}

// Tenant returns the value of the "tenant" field in the mutation.
func (m *ReplayBundleMutation) Tenant() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenant returns the old "tenant" field's value of the ReplayBundle entity.
// If the ReplayBundle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReplayBundleMutation) OldTenant(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenant: %w", err)
	}
	return oldValue.Tenant, nil
}

// ResetTenant resets all changes to the "tenant" field.
func (m *ReplayBundleMutation) ResetTenant() {
	m.tenant = nil
}

// SetRunID sets the "run_id" field.
func (m *ReplayBundleMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *ReplayBundleMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the ReplayBundle entity.
// If the ReplayBundle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReplayBundleMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *ReplayBundleMutation) ResetRunID() {
	m.run = nil
}

// SetBundleHash sets the "bundle_hash" field.
func (m *ReplayBundleMutation) SetBundleHash(s string) {
	m.bundle_hash = &s
}

// BundleHash returns the value of the "bundle_hash" field in the mutation.
func (m *ReplayBundleMutation) BundleHash() (r string, exists bool) {
	v := m.bundle_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldBundleHash returns the old "bundle_hash" field's value of the ReplayBundle entity.
// If the ReplayBundle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReplayBundleMutation) OldBundleHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBundleHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBundleHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBundleHash: %w", err)
	}
	return oldValue.BundleHash, nil
}

// ResetBundleHash resets all changes to the "bundle_hash" field.
func (m *ReplayBundleMutation) ResetBundleHash() {
	m.bundle_hash = nil
}

// SetStorageRef sets the "storage_ref" field.
func (m *ReplayBundleMutation) SetStorageRef(s string) {
	m.storage_ref = &s
}

// StorageRef returns the value of the "storage_ref" field in the mutation.
func (m *ReplayBundleMutation) StorageRef() (r string, exists bool) {
	v := m.storage_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageRef returns the old "storage_ref" field's value of the ReplayBundle entity.
// If the ReplayBundle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReplayBundleMutation) OldStorageRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageRef: %w", err)
	}
	return oldValue.StorageRef, nil
}

// ResetStorageRef resets all changes to the "storage_ref" field.
func (m *ReplayBundleMutation) ResetStorageRef() {
	m.storage_ref = nil
}

// SetReplayedOk sets the "replayed_ok" field.
func (m *ReplayBundleMutation) SetReplayedOk(b bool) {
	m.replayed_ok = &b
}

// ReplayedOk returns the value of the "replayed_ok" field in the mutation.
func (m *ReplayBundleMutation) ReplayedOk() (r bool, exists bool) {
	v := m.replayed_ok
	if v == nil {
		return
	}
	return *v, true
}

// OldReplayedOk returns the old "replayed_ok" field's value of the ReplayBundle entity.
// If the ReplayBundle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReplayBundleMutation) OldReplayedOk(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReplayedOk is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReplayedOk requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReplayedOk: %w", err)
	}
	return oldValue.ReplayedOk, nil
}

// ClearReplayedOk clears the value of the "replayed_ok" field.
func (m *ReplayBundleMutation) ClearReplayedOk() {
	m.replayed_ok = nil
	m.clearedFields[replaybundle.FieldReplayedOk] = struct{}{}
}

// ReplayedOkCleared returns if the "replayed_ok" field was cleared in this mutation.
func (m *ReplayBundleMutation) ReplayedOkCleared() bool {
	_, ok := m.clearedFields[replaybundle.FieldReplayedOk]
	return ok
}

// ResetReplayedOk resets all changes to the "replayed_ok" field.
func (m *ReplayBundleMutation) ResetReplayedOk() {
	m.replayed_ok = nil
	delete(m.clearedFields, replaybundle.FieldReplayedOk)
}

// SetCreatedAt sets the "created_at" field.
func (m *ReplayBundleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReplayBundleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ReplayBundle entity.
// If the ReplayBundle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReplayBundleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReplayBundleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *ReplayBundleMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[replaybundle.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *ReplayBundleMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *ReplayBundleMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *ReplayBundleMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the ReplayBundleMutation builder.
func (m *ReplayBundleMutation) Where(ps ...predicate.ReplayBundle) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReplayBundleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReplayBundleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReplayBundle, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReplayBundleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReplayBundleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReplayBundle).
func (m *ReplayBundleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReplayBundleMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.tenant != nil {
		fields = append(fields, replaybundle.FieldTenant)
	}
	if m.run != nil {
		fields = append(fields, replaybundle.FieldRunID)
	}
	if m.bundle_hash != nil {
		fields = append(fields, replaybundle.FieldBundleHash)
	}
	if m.storage_ref != nil {
		fields = append(fields, replaybundle.FieldStorageRef)
	}
	if m.replayed_ok != nil {
		fields = append(fields, replaybundle.FieldReplayedOk)
	}
	if m.created_at != nil {
		fields = append(fields, replaybundle.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReplayBundleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case replaybundle.FieldTenant:
		return m.Tenant()
	case replaybundle.FieldRunID:
		return m.RunID()
	case replaybundle.FieldBundleHash:
		return m.BundleHash()
	case replaybundle.FieldStorageRef:
		return m.StorageRef()
	case replaybundle.FieldReplayedOk:
		return m.ReplayedOk()
	case replaybundle.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReplayBundleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case replaybundle.FieldTenant:
		return m.OldTenant(ctx)
	case replaybundle.FieldRunID:
		return m.OldRunID(ctx)
	case replaybundle.FieldBundleHash:
		return m.OldBundleHash(ctx)
	case replaybundle.FieldStorageRef:
		return m.OldStorageRef(ctx)
	case replaybundle.FieldReplayedOk:
		return m.OldReplayedOk(ctx)
	case replaybundle.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ReplayBundle field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReplayBundleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case replaybundle.FieldTenant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenant(v)
		return nil
	case replaybundle.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case replaybundle.FieldBundleHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBundleHash(v)
		return nil
	case replaybundle.FieldStorageRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageRef(v)
		return nil
	case replaybundle.FieldReplayedOk:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReplayedOk(v)
		return nil
	case replaybundle.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ReplayBundle field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReplayBundleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReplayBundleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReplayBundleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ReplayBundle numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReplayBundleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(replaybundle.FieldReplayedOk) {
		fields = append(fields, replaybundle.FieldReplayedOk)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReplayBundleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReplayBundleMutation) ClearField(name string) error {
	switch name {
	case replaybundle.FieldReplayedOk:
		m.ClearReplayedOk()
		return nil
	}
	return fmt.Errorf("unknown ReplayBundle nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReplayBundleMutation) ResetField(name string) error {
	switch name {
	case replaybundle.FieldTenant:
		m.ResetTenant()
		return nil
	case replaybundle.FieldRunID:
		m.ResetRunID()
		return nil
	case replaybundle.FieldBundleHash:
		m.ResetBundleHash()
		return nil
	case replaybundle.FieldStorageRef:
		m.ResetStorageRef()
		return nil
	case replaybundle.FieldReplayedOk:
		m.ResetReplayedOk()
		return nil
	case replaybundle.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ReplayBundle field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReplayBundleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, replaybundle.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReplayBundleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case replaybundle.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReplayBundleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReplayBundleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReplayBundleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, replaybundle.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReplayBundleMutation) EdgeCleared(name string) bool {
	switch name {
	case replaybundle.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReplayBundleMutation) ClearEdge(name string) error {
	switch name {
	case replaybundle.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown ReplayBundle unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReplayBundleMutation) ResetEdge(name string) error {
	switch name {
	case replaybundle.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown ReplayBundle edge %s", name)
}

// RunMutation represents an operation that mutates the Run nodes in the graph.
type RunMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	tenant                  *string
	state                   *run.State
	iteration               *int
	additeration            *int
	tokens_used             *int
	addtokens_used          *int
	cost_used_usd           *float64
	addcost_used_usd        *float64
	canary_group            *run.CanaryGroup
	paused_state            *string
	last_green_iteration    *int
	addlast_green_iteration *int
	terminal_reason         *string
	patch_streak            *int
	addpatch_streak         *int
	replan_scope            *string
	created_at              *time.Time
	started_at              *time.Time
	completed_at            *time.Time
	deleted_at              *time.Time
	clearedFields           map[string]struct{}
	spec                    *string
	clearedspec             bool
	steps                   map[string]struct{}
	removedsteps            map[string]struct{}
	clearedsteps            bool
	failures                map[string]struct{}
	removedfailures         map[string]struct{}
	clearedfailures         bool
	repair_attempts         map[string]struct{}
	removedrepair_attempts  map[string]struct{}
	clearedrepair_attempts  bool
	artifacts               map[string]struct{}
	removedartifacts        map[string]struct{}
	clearedartifacts        bool
	approval_gates          map[string]struct{}
	removedapproval_gates   map[string]struct{}
	clearedapproval_gates   bool
	budget                  *string
	clearedbudget           bool
	timeline_events         map[string]struct{}
	removedtimeline_events  map[string]struct{}
	clearedtimeline_events  bool
	replay_bundle           *string
	clearedreplay_bundle    bool
	canary_sample           *string
	clearedcanary_sample    bool
	done                    bool
	oldValue                func(context.Context) (*Run, error)
	predicates              []predicate.Run
}

var _ ent.Mutation = (*RunMutation)(nil)

// runOption allows management of the mutation configuration using functional options.
type runOption func(*RunMutation)

// newRunMutation creates new mutation for the Run entity.
func newRunMutation(c config, op Op, opts ...runOption) *RunMutation {
	m := &RunMutation{
		config:        c,
		op:            op,
		typ:           TypeRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunID sets the ID field of the mutation.
func withRunID(id string) runOption {
	return func(m *RunMutation) {
		var (
			err   error
			once  sync.Once
			value *Run
		)
		m.oldValue = func(ctx context.Context) (*Run, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Run.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRun sets the old Run of the mutation.
func withRun(node *Run) runOption {
	return func(m *RunMutation) {
		m.oldValue = func(context.Context) (*Run, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Run entities.
func (m *RunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Run.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenant sets the "tenant" field.
func (m *RunMutation) SetTenant(s string) {
	m.tenant = &s
}

// Tenant returns the value of the "tenant" field in the mutation.
func (m *RunMutation) Tenant() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenant returns the old "tenant" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldTenant(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenant: %w", err)
	}
	return oldValue.Tenant, nil
}

// ResetTenant resets all changes to the "tenant" field.
func (m *RunMutation) ResetTenant() {
	m.tenant = nil
}

// SetSpecID sets the "spec_id" field.
func (m *RunMutation) SetSpecID(s string) {
	m.spec = &s
}

// SpecID returns the value of the "spec_id" field in the mutation.
func (m *RunMutation) SpecID() (r string, exists bool) {
	v := m.spec
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecID returns the old "spec_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldSpecID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecID: %w", err)
	}
	return oldValue.SpecID, nil
}

// ResetSpecID resets all changes to the "spec_id" field.
func (m *RunMutation) ResetSpecID() {
	m.spec = nil
}

// SetState sets the "state" field.
func (m *RunMutation) SetState(r run.State) {
	m.state = &r
}

// State returns the value of the "state" field in the mutation.
func (m *RunMutation) State() (r run.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldState(ctx context.Context) (v run.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *RunMutation) ResetState() {
	m.state = nil
}

// SetIteration sets the "iteration" field.
func (m *RunMutation) SetIteration(i int) {
	m.iteration = &i
	m.additeration = nil
}

// Iteration returns the value of the "iteration" field in the mutation.
func (m *RunMutation) Iteration() (r int, exists bool) {
	v := m.iteration
	if v == nil {
		return
	}
	return *v, true
}

// OldIteration returns the old "iteration" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldIteration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIteration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIteration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIteration: %w", err)
	}
	return oldValue.Iteration, nil
}

// AddIteration adds i to the "iteration" field.
func (m *RunMutation) AddIteration(i int) {
	if m.additeration != nil {
		*m.additeration += i
	} else {
		m.additeration = &i
	}
}

// AddedIteration returns the value that was added to the "iteration" field in this mutation.
func (m *RunMutation) AddedIteration() (r int, exists bool) {
	v := m.additeration
	if v == nil {
		return
	}
	return *v, true
}

// ResetIteration resets all changes to the "iteration" field.
func (m *RunMutation) ResetIteration() {
	m.iteration = nil
	m.additeration = nil
}

// SetTokensUsed sets the "tokens_used" field.
func (m *RunMutation) SetTokensUsed(i int) {
	m.tokens_used = &i
	m.addtokens_used = nil
}

// TokensUsed returns the value of the "tokens_used" field in the mutation.
func (m *RunMutation) TokensUsed() (r int, exists bool) {
	v := m.tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensUsed returns the old "tokens_used" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldTokensUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensUsed: %w", err)
	}
	return oldValue.TokensUsed, nil
}

// AddTokensUsed adds i to the "tokens_used" field.
func (m *RunMutation) AddTokensUsed(i int) {
	if m.addtokens_used != nil {
		*m.addtokens_used += i
	} else {
		m.addtokens_used = &i
	}
}

// AddedTokensUsed returns the value that was added to the "tokens_used" field in this mutation.
func (m *RunMutation) AddedTokensUsed() (r int, exists bool) {
	v := m.addtokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensUsed resets all changes to the "tokens_used" field.
func (m *RunMutation) ResetTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
}

// SetCostUsedUsd sets the "cost_used_usd" field.
func (m *RunMutation) SetCostUsedUsd(f float64) {
	m.cost_used_usd = &f
	m.addcost_used_usd = nil
}

// CostUsedUsd returns the value of the "cost_used_usd" field in the mutation.
func (m *RunMutation) CostUsedUsd() (r float64, exists bool) {
	v := m.cost_used_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCostUsedUsd returns the old "cost_used_usd" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCostUsedUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostUsedUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostUsedUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostUsedUsd: %w", err)
	}
	return oldValue.CostUsedUsd, nil
}

// AddCostUsedUsd adds f to the "cost_used_usd" field.
func (m *RunMutation) AddCostUsedUsd(f float64) {
	if m.addcost_used_usd != nil {
		*m.addcost_used_usd += f
	} else {
		m.addcost_used_usd = &f
	}
}

// AddedCostUsedUsd returns the value that was added to the "cost_used_usd" field in this mutation.
func (m *RunMutation) AddedCostUsedUsd() (r float64, exists bool) {
	v := m.addcost_used_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostUsedUsd resets all changes to the "cost_used_usd" field.
func (m *RunMutation) ResetCostUsedUsd() {
	m.cost_used_usd = nil
	m.addcost_used_usd = nil
}

// SetCanaryGroup sets the "canary_group" field.
func (m *RunMutation) SetCanaryGroup(rg run.CanaryGroup) {
	m.canary_group = &rg
}

// CanaryGroup returns the value of the "canary_group" field in the mutation.
func (m *RunMutation) CanaryGroup() (r run.CanaryGroup, exists bool) {
	v := m.canary_group
	if v == nil {
		return
	}
	return *v, true
}

// OldCanaryGroup returns the old "canary_group" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCanaryGroup(ctx context.Context) (v run.CanaryGroup, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanaryGroup is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanaryGroup requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanaryGroup: %w", err)
	}
	return oldValue.CanaryGroup, nil
}

// ResetCanaryGroup resets all changes to the "canary_group" field.
func (m *RunMutation) ResetCanaryGroup() {
	m.canary_group = nil
}

// SetPausedState sets the "paused_state" field.
func (m *RunMutation) SetPausedState(s string) {
	m.paused_state = &s
}

// PausedState returns the value of the "paused_state" field in the mutation.
func (m *RunMutation) PausedState() (r string, exists bool) {
	v := m.paused_state
	if v == nil {
		return
	}
	return *v, true
}

// OldPausedState returns the old "paused_state" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldPausedState(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPausedState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPausedState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPausedState: %w", err)
	}
	return oldValue.PausedState, nil
}

// ClearPausedState clears the value of the "paused_state" field.
func (m *RunMutation) ClearPausedState() {
	m.paused_state = nil
	m.clearedFields[run.FieldPausedState] = struct{}{}
}

// PausedStateCleared returns if the "paused_state" field was cleared in this mutation.
func (m *RunMutation) PausedStateCleared() bool {
	_, ok := m.clearedFields[run.FieldPausedState]
	return ok
}

// ResetPausedState resets all changes to the "paused_state" field.
func (m *RunMutation) ResetPausedState() {
	m.paused_state = nil
	delete(m.clearedFields, run.FieldPausedState)
}

// SetLastGreenIteration sets the "last_green_iteration" field.
func (m *RunMutation) SetLastGreenIteration(i int) {
	m.last_green_iteration = &i
	m.addlast_green_iteration = nil
}

// LastGreenIteration returns the value of the "last_green_iteration" field in the mutation.
func (m *RunMutation) LastGreenIteration() (r int, exists bool) {
	v := m.last_green_iteration
	if v == nil {
		return
	}
	return *v, true
}

// OldLastGreenIteration returns the old "last_green_iteration" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldLastGreenIteration(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastGreenIteration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastGreenIteration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastGreenIteration: %w", err)
	}
	return oldValue.LastGreenIteration, nil
}

// AddLastGreenIteration adds i to the "last_green_iteration" field.
func (m *RunMutation) AddLastGreenIteration(i int) {
	if m.addlast_green_iteration != nil {
		*m.addlast_green_iteration += i
	} else {
		m.addlast_green_iteration = &i
	}
}

// AddedLastGreenIteration returns the value that was added to the "last_green_iteration" field in this mutation.
func (m *RunMutation) AddedLastGreenIteration() (r int, exists bool) {
	v := m.addlast_green_iteration
	if v == nil {
		return
	}
	return *v, true
}

// ClearLastGreenIteration clears the value of the "last_green_iteration" field.
func (m *RunMutation) ClearLastGreenIteration() {
	m.last_green_iteration = nil
	m.addlast_green_iteration = nil
	m.clearedFields[run.FieldLastGreenIteration] = struct{}{}
}

// LastGreenIterationCleared returns if the "last_green_iteration" field was cleared in this mutation.
func (m *RunMutation) LastGreenIterationCleared() bool {
	_, ok := m.clearedFields[run.FieldLastGreenIteration]
	return ok
}

// ResetLastGreenIteration resets all changes to the "last_green_iteration" field.
func (m *RunMutation) ResetLastGreenIteration() {
	m.last_green_iteration = nil
	m.addlast_green_iteration = nil
	delete(m.clearedFields, run.FieldLastGreenIteration)
}

// SetTerminalReason sets the "terminal_reason" field.
func (m *RunMutation) SetTerminalReason(s string) {
	m.terminal_reason = &s
}

// TerminalReason returns the value of the "terminal_reason" field in the mutation.
func (m *RunMutation) TerminalReason() (r string, exists bool) {
	v := m.terminal_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldTerminalReason returns the old "terminal_reason" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldTerminalReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTerminalReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTerminalReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTerminalReason: %w", err)
	}
	return oldValue.TerminalReason, nil
}

// ClearTerminalReason clears the value of the "terminal_reason" field.
func (m *RunMutation) ClearTerminalReason() {
	m.terminal_reason = nil
	m.clearedFields[run.FieldTerminalReason] = struct{}{}
}

// TerminalReasonCleared returns if the "terminal_reason" field was cleared in this mutation.
func (m *RunMutation) TerminalReasonCleared() bool {
	_, ok := m.clearedFields[run.FieldTerminalReason]
	return ok
}

// ResetTerminalReason resets all changes to the "terminal_reason" field.
func (m *RunMutation) ResetTerminalReason() {
	m.terminal_reason = nil
	delete(m.clearedFields, run.FieldTerminalReason)
}

// SetPatchStreak sets the "patch_streak" field.
func (m *RunMutation) SetPatchStreak(i int) {
	m.patch_streak = &i
	m.addpatch_streak = nil
}

// PatchStreak returns the value of the "patch_streak" field in the mutation.
func (m *RunMutation) PatchStreak() (r int, exists bool) {
	v := m.patch_streak
	if v == nil {
		return
	}
	return *v, true
}

// OldPatchStreak returns the old "patch_streak" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldPatchStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatchStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatchStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatchStreak: %w", err)
	}
	return oldValue.PatchStreak, nil
}

// AddPatchStreak adds i to the "patch_streak" field.
func (m *RunMutation) AddPatchStreak(i int) {
	if m.addpatch_streak != nil {
		*m.addpatch_streak += i
	} else {
		m.addpatch_streak = &i
	}
}

// AddedPatchStreak returns the value that was added to the "patch_streak" field in this mutation.
func (m *RunMutation) AddedPatchStreak() (r int, exists bool) {
	v := m.addpatch_streak
	if v == nil {
		return
	}
	return *v, true
}

// ResetPatchStreak resets all changes to the "patch_streak" field.
func (m *RunMutation) ResetPatchStreak() {
	m.patch_streak = nil
	m.addpatch_streak = nil
}

// SetReplanScope sets the "replan_scope" field.
func (m *RunMutation) SetReplanScope(s string) {
	m.replan_scope = &s
}

// ReplanScope returns the value of the "replan_scope" field in the mutation.
func (m *RunMutation) ReplanScope() (r string, exists bool) {
	v := m.replan_scope
	if v == nil {
		return
	}
	return *v, true
}

// OldReplanScope returns the old "replan_scope" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldReplanScope(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReplanScope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReplanScope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReplanScope: %w", err)
	}
	return oldValue.ReplanScope, nil
}

// ClearReplanScope clears the value of the "replan_scope" field.
func (m *RunMutation) ClearReplanScope() {
	m.replan_scope = nil
	m.clearedFields[run.FieldReplanScope] = struct{}{}
}

// ReplanScopeCleared returns if the "replan_scope" field was cleared in this mutation.
func (m *RunMutation) ReplanScopeCleared() bool {
	_, ok := m.clearedFields[run.FieldReplanScope]
	return ok
}

// ResetReplanScope resets all changes to the "replan_scope" field.
func (m *RunMutation) ResetReplanScope() {
	m.replan_scope = nil
	delete(m.clearedFields, run.FieldReplanScope)
}

// SetCreatedAt sets the "created_at" field.
func (m *RunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *RunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *RunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *RunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[run.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *RunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[run.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *RunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, run.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *RunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *RunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *RunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[run.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *RunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[run.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *RunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, run.FieldCompletedAt)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *RunMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *RunMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *RunMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[run.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *RunMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[run.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *RunMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, run.FieldDeletedAt)
}

// ClearSpec clears the "spec" edge to the BuildSpec entity.
func (m *RunMutation) ClearSpec() {
	m.clearedspec = true
	m.clearedFields[run.FieldSpecID] = struct{}{}
}

// SpecCleared reports if the "spec" edge to the BuildSpec entity was cleared.
func (m *RunMutation) SpecCleared() bool {
	return m.clearedspec
}

// SpecIDs returns the "spec" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SpecID instead. It exists only for internal usage by the builders.
func (m *RunMutation) SpecIDs() (ids []string) {
	if id := m.spec; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSpec resets all changes to the "spec" edge.
func (m *RunMutation) ResetSpec() {
	m.spec = nil
	m.clearedspec = false
}

// AddStepIDs adds the "steps" edge to the Step entity by ids.
func (m *RunMutation) AddStepIDs(ids ...string) {
	if m.steps == nil {
		m.steps = make(map[string]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the Step entity.
func (m *RunMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the Step entity was cleared.
func (m *RunMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the Step entity by IDs.
func (m *RunMutation) RemoveStepIDs(ids ...string) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the Step entity.
func (m *RunMutation) RemovedStepsIDs() (ids []string) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *RunMutation) StepsIDs() (ids []string) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *RunMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// AddFailureIDs adds the "failures" edge to the Failure entity by ids.
func (m *RunMutation) AddFailureIDs(ids ...string) {
	if m.failures == nil {
		m.failures = make(map[string]struct{})
	}
	for i := range ids {
		m.failures[ids[i]] = struct{}{}
	}
}

// ClearFailures clears the "failures" edge to the Failure entity.
func (m *RunMutation) ClearFailures() {
	m.clearedfailures = true
}

// FailuresCleared reports if the "failures" edge to the Failure entity was cleared.
func (m *RunMutation) FailuresCleared() bool {
	return m.clearedfailures
}

// RemoveFailureIDs removes the "failures" edge to the Failure entity by IDs.
func (m *RunMutation) RemoveFailureIDs(ids ...string) {
	if m.removedfailures == nil {
		m.removedfailures = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.failures, ids[i])
		m.removedfailures[ids[i]] = struct{}{}
	}
}

// RemovedFailures returns the removed IDs of the "failures" edge to the Failure entity.
func (m *RunMutation) RemovedFailuresIDs() (ids []string) {
	for id := range m.removedfailures {
		ids = append(ids, id)
	}
	return
}

// FailuresIDs returns the "failures" edge IDs in the mutation.
func (m *RunMutation) FailuresIDs() (ids []string) {
	for id := range m.failures {
		ids = append(ids, id)
	}
	return
}

// ResetFailures resets all changes to the "failures" edge.
func (m *RunMutation) ResetFailures() {
	m.failures = nil
	m.clearedfailures = false
	m.removedfailures = nil
}

// AddRepairAttemptIDs adds the "repair_attempts" edge to the RepairAttempt entity by ids.
func (m *RunMutation) AddRepairAttemptIDs(ids ...string) {
	if m.repair_attempts == nil {
		m.repair_attempts = make(map[string]struct{})
	}
	for i := range ids {
		m.repair_attempts[ids[i]] = struct{}{}
	}
}

// ClearRepairAttempts clears the "repair_attempts" edge to the RepairAttempt entity.
func (m *RunMutation) ClearRepairAttempts() {
	m.clearedrepair_attempts = true
}

// RepairAttemptsCleared reports if the "repair_attempts" edge to the RepairAttempt entity was cleared.
func (m *RunMutation) RepairAttemptsCleared() bool {
	return m.clearedrepair_attempts
}

// RemoveRepairAttemptIDs removes the "repair_attempts" edge to the RepairAttempt entity by IDs.
func (m *RunMutation) RemoveRepairAttemptIDs(ids ...string) {
	if m.removedrepair_attempts == nil {
		m.removedrepair_attempts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.repair_attempts, ids[i])
		m.removedrepair_attempts[ids[i]] = struct{}{}
	}
}

// RemovedRepairAttempts returns the removed IDs of the "repair_attempts" edge to the RepairAttempt entity.
func (m *RunMutation) RemovedRepairAttemptsIDs() (ids []string) {
	for id := range m.removedrepair_attempts {
		ids = append(ids, id)
	}
	return
}

// RepairAttemptsIDs returns the "repair_attempts" edge IDs in the mutation.
func (m *RunMutation) RepairAttemptsIDs() (ids []string) {
	for id := range m.repair_attempts {
		ids = append(ids, id)
	}
	return
}

// ResetRepairAttempts resets all changes to the "repair_attempts" edge.
func (m *RunMutation) ResetRepairAttempts() {
	m.repair_attempts = nil
	m.clearedrepair_attempts = false
	m.removedrepair_attempts = nil
}

// AddArtifactIDs adds the "artifacts" edge to the Artifact entity by ids.
func (m *RunMutation) AddArtifactIDs(ids ...string) {
	if m.artifacts == nil {
		m.artifacts = make(map[string]struct{})
	}
	for i := range ids {
		m.artifacts[ids[i]] = struct{}{}
	}
}

// ClearArtifacts clears the "artifacts" edge to the Artifact entity.
func (m *RunMutation) ClearArtifacts() {
	m.clearedartifacts = true
}

// ArtifactsCleared reports if the "artifacts" edge to the Artifact entity was cleared.
func (m *RunMutation) ArtifactsCleared() bool {
	return m.clearedartifacts
}

// RemoveArtifactIDs removes the "artifacts" edge to the Artifact entity by IDs.
func (m *RunMutation) RemoveArtifactIDs(ids ...string) {
	if m.removedartifacts == nil {
		m.removedartifacts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.artifacts, ids[i])
		m.removedartifacts[ids[i]] = struct{}{}
	}
}

// RemovedArtifacts returns the removed IDs of the "artifacts" edge to the Artifact entity.
func (m *RunMutation) RemovedArtifactsIDs() (ids []string) {
	for id := range m.removedartifacts {
		ids = append(ids, id)
	}
	return
}

// ArtifactsIDs returns the "artifacts" edge IDs in the mutation.
func (m *RunMutation) ArtifactsIDs() (ids []string) {
	for id := range m.artifacts {
		ids = append(ids, id)
	}
	return
}

// ResetArtifacts resets all changes to the "artifacts" edge.
func (m *RunMutation) ResetArtifacts() {
	m.artifacts = nil
	m.clearedartifacts = false
	m.removedartifacts = nil
}

// AddApprovalGateIDs adds the "approval_gates" edge to the ApprovalGate entity by ids.
func (m *RunMutation) AddApprovalGateIDs(ids ...string) {
	if m.approval_gates == nil {
		m.approval_gates = make(map[string]struct{})
	}
	for i := range ids {
		m.approval_gates[ids[i]] = struct{}{}
	}
}

// ClearApprovalGates clears the "approval_gates" edge to the ApprovalGate entity.
func (m *RunMutation) ClearApprovalGates() {
	m.clearedapproval_gates = true
}

// ApprovalGatesCleared reports if the "approval_gates" edge to the ApprovalGate entity was cleared.
func (m *RunMutation) ApprovalGatesCleared() bool {
	return m.clearedapproval_gates
}

// RemoveApprovalGateIDs removes the "approval_gates" edge to the ApprovalGate entity by IDs.
func (m *RunMutation) RemoveApprovalGateIDs(ids ...string) {
	if m.removedapproval_gates == nil {
		m.removedapproval_gates = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.approval_gates, ids[i])
		m.removedapproval_gates[ids[i]] = struct{}{}
	}
}

// RemovedApprovalGates returns the removed IDs of the "approval_gates" edge to the ApprovalGate entity.
func (m *RunMutation) RemovedApprovalGatesIDs() (ids []string) {
	for id := range m.removedapproval_gates {
		ids = append(ids, id)
	}
	return
}

// ApprovalGatesIDs returns the "approval_gates" edge IDs in the mutation.
func (m *RunMutation) ApprovalGatesIDs() (ids []string) {
	for id := range m.approval_gates {
		ids = append(ids, id)
	}
	return
}

// ResetApprovalGates resets all changes to the "approval_gates" edge.
func (m *RunMutation) ResetApprovalGates() {
	m.approval_gates = nil
	m.clearedapproval_gates = false
	m.removedapproval_gates = nil
}

// SetBudgetID sets the "budget" edge to the Budget entity by id.
func (m *RunMutation) SetBudgetID(id string) {
	m.budget = &id
}

// ClearBudget clears the "budget" edge to the Budget entity.
func (m *RunMutation) ClearBudget() {
	m.clearedbudget = true
}

// BudgetCleared reports if the "budget" edge to the Budget entity was cleared.
func (m *RunMutation) BudgetCleared() bool {
	return m.clearedbudget
}

// BudgetID returns the "budget" edge ID in the mutation.
func (m *RunMutation) BudgetID() (id string, exists bool) {
	if m.budget != nil {
		return *m.budget, true
	}
	return
}

// BudgetIDs returns the "budget" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BudgetID instead. It exists only for internal usage by the builders.
func (m *RunMutation) BudgetIDs() (ids []string) {
	if id := m.budget; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBudget resets all changes to the "budget" edge.
func (m *RunMutation) ResetBudget() {
	m.budget = nil
	m.clearedbudget = false
}

// AddTimelineEventIDs adds the "timeline_events" edge to the TimelineEvent entity by ids.
func (m *RunMutation) AddTimelineEventIDs(ids ...string) {
	if m.timeline_events == nil {
		m.timeline_events = make(map[string]struct{})
	}
	for i := range ids {
		m.timeline_events[ids[i]] = struct{}{}
	}
}

// ClearTimelineEvents clears the "timeline_events" edge to the TimelineEvent entity.
func (m *RunMutation) ClearTimelineEvents() {
	m.clearedtimeline_events = true
}

// TimelineEventsCleared reports if the "timeline_events" edge to the TimelineEvent entity was cleared.
func (m *RunMutation) TimelineEventsCleared() bool {
	return m.clearedtimeline_events
}

// RemoveTimelineEventIDs removes the "timeline_events" edge to the TimelineEvent entity by IDs.
func (m *RunMutation) RemoveTimelineEventIDs(ids ...string) {
	if m.removedtimeline_events == nil {
		m.removedtimeline_events = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.timeline_events, ids[i])
		m.removedtimeline_events[ids[i]] = struct{}{}
	}
}

// RemovedTimelineEvents returns the removed IDs of the "timeline_events" edge to the TimelineEvent entity.
func (m *RunMutation) RemovedTimelineEventsIDs() (ids []string) {
	for id := range m.removedtimeline_events {
		ids = append(ids, id)
	}
	return
}

// TimelineEventsIDs returns the "timeline_events" edge IDs in the mutation.
func (m *RunMutation) TimelineEventsIDs() (ids []string) {
	for id := range m.timeline_events {
		ids = append(ids, id)
	}
	return
}

// ResetTimelineEvents resets all changes to the "timeline_events" edge.
func (m *RunMutation) ResetTimelineEvents() {
	m.timeline_events = nil
	m.clearedtimeline_events = false
	m.removedtimeline_events = nil
}

// SetReplayBundleID sets the "replay_bundle" edge to the ReplayBundle entity by id.
func (m *RunMutation) SetReplayBundleID(id string) {
	m.replay_bundle = &id
}

// ClearReplayBundle clears the "replay_bundle" edge to the ReplayBundle entity.
func (m *RunMutation) ClearReplayBundle() {
	m.clearedreplay_bundle = true
}

// ReplayBundleCleared reports if the "replay_bundle" edge to the ReplayBundle entity was cleared.
func (m *RunMutation) ReplayBundleCleared() bool {
	return m.clearedreplay_bundle
}

// ReplayBundleID returns the "replay_bundle" edge ID in the mutation.
func (m *RunMutation) ReplayBundleID() (id string, exists bool) {
	if m.replay_bundle != nil {
		return *m.replay_bundle, true
	}
	return
}

// ReplayBundleIDs returns the "replay_bundle" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReplayBundleID instead. It exists only for internal usage by the builders.
func (m *RunMutation) ReplayBundleIDs() (ids []string) {
	if id := m.replay_bundle; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReplayBundle resets all changes to the "replay_bundle" edge.
func (m *RunMutation) ResetReplayBundle() {
	m.replay_bundle = nil
	m.clearedreplay_bundle = false
}

// SetCanarySampleID sets the "canary_sample" edge to the CanarySample entity by id.
func (m *RunMutation) SetCanarySampleID(id string) {
	m.canary_sample = &id
}

// ClearCanarySample clears the "canary_sample" edge to the CanarySample entity.
func (m *RunMutation) ClearCanarySample() {
	m.clearedcanary_sample = true
}

// CanarySampleCleared reports if the "canary_sample" edge to the CanarySample entity was cleared.
func (m *RunMutation) CanarySampleCleared() bool {
	return m.clearedcanary_sample
}

// CanarySampleID returns the "canary_sample" edge ID in the mutation.
func (m *RunMutation) CanarySampleID() (id string, exists bool) {
	if m.canary_sample != nil {
		return *m.canary_sample, true
	}
	return
}

// CanarySampleIDs returns the "canary_sample" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CanarySampleID instead. It exists only for internal usage by the builders.
func (m *RunMutation) CanarySampleIDs() (ids []string) {
	if id := m.canary_sample; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCanarySample resets all changes to the "canary_sample" edge.
func (m *RunMutation) ResetCanarySample() {
	m.canary_sample = nil
	m.clearedcanary_sample = false
}

// Where appends a list predicates to the RunMutation builder.
func (m *RunMutation) Where(ps ...predicate.Run) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Run, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Run).
func (m *RunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.tenant != nil {
		fields = append(fields, run.FieldTenant)
	}
	if m.spec != nil {
		fields = append(fields, run.FieldSpecID)
	}
	if m.state != nil {
		fields = append(fields, run.FieldState)
	}
	if m.iteration != nil {
		fields = append(fields, run.FieldIteration)
	}
	if m.tokens_used != nil {
		fields = append(fields, run.FieldTokensUsed)
	}
	if m.cost_used_usd != nil {
		fields = append(fields, run.FieldCostUsedUsd)
	}
	if m.canary_group != nil {
		fields = append(fields, run.FieldCanaryGroup)
	}
	if m.paused_state != nil {
		fields = append(fields, run.FieldPausedState)
	}
	if m.last_green_iteration != nil {
		fields = append(fields, run.FieldLastGreenIteration)
	}
	if m.terminal_reason != nil {
		fields = append(fields, run.FieldTerminalReason)
	}
	if m.patch_streak != nil {
		fields = append(fields, run.FieldPatchStreak)
	}
	if m.replan_scope != nil {
		fields = append(fields, run.FieldReplanScope)
	}
	if m.created_at != nil {
		fields = append(fields, run.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, run.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, run.FieldCompletedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, run.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case run.FieldTenant:
		return m.Tenant()
	case run.FieldSpecID:
		return m.SpecID()
	case run.FieldState:
		return m.State()
	case run.FieldIteration:
		return m.Iteration()
	case run.FieldTokensUsed:
		return m.TokensUsed()
	case run.FieldCostUsedUsd:
		return m.CostUsedUsd()
	case run.FieldCanaryGroup:
		return m.CanaryGroup()
	case run.FieldPausedState:
		return m.PausedState()
	case run.FieldLastGreenIteration:
		return m.LastGreenIteration()
	case run.FieldTerminalReason:
		return m.TerminalReason()
	case run.FieldPatchStreak:
		return m.PatchStreak()
	case run.FieldReplanScope:
		return m.ReplanScope()
	case run.FieldCreatedAt:
		return m.CreatedAt()
	case run.FieldStartedAt:
		return m.StartedAt()
	case run.FieldCompletedAt:
		return m.CompletedAt()
	case run.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case run.FieldTenant:
		return m.OldTenant(ctx)
	case run.FieldSpecID:
		return m.OldSpecID(ctx)
	case run.FieldState:
		return m.OldState(ctx)
	case run.FieldIteration:
		return m.OldIteration(ctx)
	case run.FieldTokensUsed:
		return m.OldTokensUsed(ctx)
	case run.FieldCostUsedUsd:
		return m.OldCostUsedUsd(ctx)
	case run.FieldCanaryGroup:
		return m.OldCanaryGroup(ctx)
	case run.FieldPausedState:
		return m.OldPausedState(ctx)
	case run.FieldLastGreenIteration:
		return m.OldLastGreenIteration(ctx)
	case run.FieldTerminalReason:
		return m.OldTerminalReason(ctx)
	case run.FieldPatchStreak:
		return m.OldPatchStreak(ctx)
	case run.FieldReplanScope:
		return m.OldReplanScope(ctx)
	case run.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case run.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case run.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case run.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Run field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case run.FieldTenant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenant(v)
		return nil
	case run.FieldSpecID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecID(v)
		return nil
	case run.FieldState:
		v, ok := value.(run.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case run.FieldIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIteration(v)
		return nil
	case run.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensUsed(v)
		return nil
	case run.FieldCostUsedUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostUsedUsd(v)
		return nil
	case run.FieldCanaryGroup:
		v, ok := value.(run.CanaryGroup)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanaryGroup(v)
		return nil
	case run.FieldPausedState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPausedState(v)
		return nil
	case run.FieldLastGreenIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastGreenIteration(v)
		return nil
	case run.FieldTerminalReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTerminalReason(v)
		return nil
	case run.FieldPatchStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatchStreak(v)
		return nil
	case run.FieldReplanScope:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReplanScope(v)
		return nil
	case run.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case run.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case run.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case run.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunMutation) AddedFields() []string {
	var fields []string
	if m.additeration != nil {
		fields = append(fields, run.FieldIteration)
	}
	if m.addtokens_used != nil {
		fields = append(fields, run.FieldTokensUsed)
	}
	if m.addcost_used_usd != nil {
		fields = append(fields, run.FieldCostUsedUsd)
	}
	if m.addlast_green_iteration != nil {
		fields = append(fields, run.FieldLastGreenIteration)
	}
	if m.addpatch_streak != nil {
		fields = append(fields, run.FieldPatchStreak)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case run.FieldIteration:
		return m.AddedIteration()
	case run.FieldTokensUsed:
		return m.AddedTokensUsed()
	case run.FieldCostUsedUsd:
		return m.AddedCostUsedUsd()
	case run.FieldLastGreenIteration:
		return m.AddedLastGreenIteration()
	case run.FieldPatchStreak:
		return m.AddedPatchStreak()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case run.FieldIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIteration(v)
		return nil
	case run.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensUsed(v)
		return nil
	case run.FieldCostUsedUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostUsedUsd(v)
		return nil
	case run.FieldLastGreenIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastGreenIteration(v)
		return nil
	case run.FieldPatchStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPatchStreak(v)
		return nil
	}
	return fmt.Errorf("unknown Run numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(run.FieldPausedState) {
		fields = append(fields, run.FieldPausedState)
	}
	if m.FieldCleared(run.FieldLastGreenIteration) {
		fields = append(fields, run.FieldLastGreenIteration)
	}
	if m.FieldCleared(run.FieldTerminalReason) {
		fields = append(fields, run.FieldTerminalReason)
	}
	if m.FieldCleared(run.FieldReplanScope) {
		fields = append(fields, run.FieldReplanScope)
	}
	if m.FieldCleared(run.FieldStartedAt) {
		fields = append(fields, run.FieldStartedAt)
	}
	if m.FieldCleared(run.FieldCompletedAt) {
		fields = append(fields, run.FieldCompletedAt)
	}
	if m.FieldCleared(run.FieldDeletedAt) {
		fields = append(fields, run.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunMutation) ClearField(name string) error {
	switch name {
	case run.FieldPausedState:
		m.ClearPausedState()
		return nil
	case run.FieldLastGreenIteration:
		m.ClearLastGreenIteration()
		return nil
	case run.FieldTerminalReason:
		m.ClearTerminalReason()
		return nil
	case run.FieldReplanScope:
		m.ClearReplanScope()
		return nil
	case run.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case run.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case run.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Run nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunMutation) ResetField(name string) error {
	switch name {
	case run.FieldTenant:
		m.ResetTenant()
		return nil
	case run.FieldSpecID:
		m.ResetSpecID()
		return nil
	case run.FieldState:
		m.ResetState()
		return nil
	case run.FieldIteration:
		m.ResetIteration()
		return nil
	case run.FieldTokensUsed:
		m.ResetTokensUsed()
		return nil
	case run.FieldCostUsedUsd:
		m.ResetCostUsedUsd()
		return nil
	case run.FieldCanaryGroup:
		m.ResetCanaryGroup()
		return nil
	case run.FieldPausedState:
		m.ResetPausedState()
		return nil
	case run.FieldLastGreenIteration:
		m.ResetLastGreenIteration()
		return nil
	case run.FieldTerminalReason:
		m.ResetTerminalReason()
		return nil
	case run.FieldPatchStreak:
		m.ResetPatchStreak()
		return nil
	case run.FieldReplanScope:
		m.ResetReplanScope()
		return nil
	case run.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case run.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case run.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case run.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunMutation) AddedEdges() []string {
	edges := make([]string, 0, 10)
	if m.spec != nil {
		edges = append(edges, run.EdgeSpec)
	}
	if m.steps != nil {
		edges = append(edges, run.EdgeSteps)
	}
	if m.failures != nil {
		edges = append(edges, run.EdgeFailures)
	}
	if m.repair_attempts != nil {
		edges = append(edges, run.EdgeRepairAttempts)
	}
	if m.artifacts != nil {
		edges = append(edges, run.EdgeArtifacts)
	}
	if m.approval_gates != nil {
		edges = append(edges, run.EdgeApprovalGates)
	}
	if m.budget != nil {
		edges = append(edges, run.EdgeBudget)
	}
	if m.timeline_events != nil {
		edges = append(edges, run.EdgeTimelineEvents)
	}
	if m.replay_bundle != nil {
		edges = append(edges, run.EdgeReplayBundle)
	}
	if m.canary_sample != nil {
		edges = append(edges, run.EdgeCanarySample)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case run.EdgeSpec:
		if id := m.spec; id != nil {
			return []ent.Value{*id}
		}
	case run.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeFailures:
		ids := make([]ent.Value, 0, len(m.failures))
		for id := range m.failures {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeRepairAttempts:
		ids := make([]ent.Value, 0, len(m.repair_attempts))
		for id := range m.repair_attempts {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeArtifacts:
		ids := make([]ent.Value, 0, len(m.artifacts))
		for id := range m.artifacts {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeApprovalGates:
		ids := make([]ent.Value, 0, len(m.approval_gates))
		for id := range m.approval_gates {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeBudget:
		if id := m.budget; id != nil {
			return []ent.Value{*id}
		}
	case run.EdgeTimelineEvents:
		ids := make([]ent.Value, 0, len(m.timeline_events))
		for id := range m.timeline_events {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeReplayBundle:
		if id := m.replay_bundle; id != nil {
			return []ent.Value{*id}
		}
	case run.EdgeCanarySample:
		if id := m.canary_sample; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 10)
	if m.removedsteps != nil {
		edges = append(edges, run.EdgeSteps)
	}
	if m.removedfailures != nil {
		edges = append(edges, run.EdgeFailures)
	}
	if m.removedrepair_attempts != nil {
		edges = append(edges, run.EdgeRepairAttempts)
	}
	if m.removedartifacts != nil {
		edges = append(edges, run.EdgeArtifacts)
	}
	if m.removedapproval_gates != nil {
		edges = append(edges, run.EdgeApprovalGates)
	}
	if m.removedtimeline_events != nil {
		edges = append(edges, run.EdgeTimelineEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case run.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeFailures:
		ids := make([]ent.Value, 0, len(m.removedfailures))
		for id := range m.removedfailures {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeRepairAttempts:
		ids := make([]ent.Value, 0, len(m.removedrepair_attempts))
		for id := range m.removedrepair_attempts {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeArtifacts:
		ids := make([]ent.Value, 0, len(m.removedartifacts))
		for id := range m.removedartifacts {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeApprovalGates:
		ids := make([]ent.Value, 0, len(m.removedapproval_gates))
		for id := range m.removedapproval_gates {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeTimelineEvents:
		ids := make([]ent.Value, 0, len(m.removedtimeline_events))
		for id := range m.removedtimeline_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 10)
	if m.clearedspec {
		edges = append(edges, run.EdgeSpec)
	}
	if m.clearedsteps {
		edges = append(edges, run.EdgeSteps)
	}
	if m.clearedfailures {
		edges = append(edges, run.EdgeFailures)
	}
	if m.clearedrepair_attempts {
		edges = append(edges, run.EdgeRepairAttempts)
	}
	if m.clearedartifacts {
		edges = append(edges, run.EdgeArtifacts)
	}
	if m.clearedapproval_gates {
		edges = append(edges, run.EdgeApprovalGates)
	}
	if m.clearedbudget {
		edges = append(edges, run.EdgeBudget)
	}
	if m.clearedtimeline_events {
		edges = append(edges, run.EdgeTimelineEvents)
	}
	if m.clearedreplay_bundle {
		edges = append(edges, run.EdgeReplayBundle)
	}
	if m.clearedcanary_sample {
		edges = append(edges, run.EdgeCanarySample)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunMutation) EdgeCleared(name string) bool {
	switch name {
	case run.EdgeSpec:
		return m.clearedspec
	case run.EdgeSteps:
		return m.clearedsteps
	case run.EdgeFailures:
		return m.clearedfailures
	case run.EdgeRepairAttempts:
		return m.clearedrepair_attempts
	case run.EdgeArtifacts:
		return m.clearedartifacts
	case run.EdgeApprovalGates:
		return m.clearedapproval_gates
	case run.EdgeBudget:
		return m.clearedbudget
	case run.EdgeTimelineEvents:
		return m.clearedtimeline_events
	case run.EdgeReplayBundle:
		return m.clearedreplay_bundle
	case run.EdgeCanarySample:
		return m.clearedcanary_sample
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunMutation) ClearEdge(name string) error {
	switch name {
	case run.EdgeSpec:
		m.ClearSpec()
		return nil
	case run.EdgeBudget:
		m.ClearBudget()
		return nil
	case run.EdgeReplayBundle:
		m.ClearReplayBundle()
		return nil
	case run.EdgeCanarySample:
		m.ClearCanarySample()
		return nil
	}
	return fmt.Errorf("unknown Run unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunMutation) ResetEdge(name string) error {
	switch name {
	case run.EdgeSpec:
		m.ResetSpec()
		return nil
	case run.EdgeSteps:
		m.ResetSteps()
		return nil
	case run.EdgeFailures:
		m.ResetFailures()
		return nil
	case run.EdgeRepairAttempts:
		m.ResetRepairAttempts()
		return nil
	case run.EdgeArtifacts:
		m.ResetArtifacts()
		return nil
	case run.EdgeApprovalGates:
		m.ResetApprovalGates()
		return nil
	case run.EdgeBudget:
		m.ResetBudget()
		return nil
	case run.EdgeTimelineEvents:
		m.ResetTimelineEvents()
		return nil
	case run.EdgeReplayBundle:
		m.ResetReplayBundle()
		return nil
	case run.EdgeCanarySample:
		m.ResetCanarySample()
		return nil
	}
	return fmt.Errorf("unknown Run edge %s", name)
}

// StepMutation represents an operation that mutates the Step nodes in the graph.
type StepMutation struct {
	config
	op               Op
	typ              string
	id               *string
	tenant           *string
	iteration        *int
	additeration     *int
	agent_role       *step.AgentRole
	queue            *step.Queue
	priority         *int
	addpriority      *int
	state            *step.State
	idempotency_key  *string
	input_digest     *string
	input_ref        *string
	output_ref       *string
	attempts         *int
	addattempts      *int
	model_tier       *step.ModelTier
	est_cost_usd     *float64
	addest_cost_usd  *float64
	tokens_in        *int
	addtokens_in     *int
	tokens_out       *int
	addtokens_out    *int
	cost_usd         *float64
	addcost_usd      *float64
	not_before       *time.Time
	lease_expires_at *time.Time
	worker_id        *string
	tombstoned       *bool
	error_message    *string
	created_at       *time.Time
	started_at       *time.Time
	completed_at     *time.Time
	clearedFields    map[string]struct{}
	run              *string
	clearedrun       bool
	failures         map[string]struct{}
	removedfailures  map[string]struct{}
	clearedfailures  bool
	lease            *string
	clearedlease     bool
	done             bool
	oldValue         func(context.Context) (*Step, error)
	predicates       []predicate.Step
}

var _ ent.Mutation = (*StepMutation)(nil)

// stepOption allows management of the mutation configuration using functional options.
type stepOption func(*StepMutation)

// newStepMutation creates new mutation for the Step entity.
func newStepMutation(c config, op Op, opts ...stepOption) *StepMutation {
	m := &StepMutation{
		config:        c,
		op:            op,
		typ:           TypeStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStepID sets the ID field of the mutation.
func withStepID(id string) stepOption {
	return func(m *StepMutation) {
		var (
			err   error
			once  sync.Once
			value *Step
		)
		m.oldValue = func(ctx context.Context) (*Step, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Step.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStep sets the old Step of the mutation.
func withStep(node *Step) stepOption {
	return func(m *StepMutation) {
		m.oldValue = func(context.Context) (*Step, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Step entities.
func (m *StepMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StepMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StepMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Step.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenant sets the "tenant" field.
func (m *StepMutation) SetTenant(s string) {
	m.tenant = &s
}

// Tenant returns the value of the "tenant" field in the mutation.
func (m *StepMutation) Tenant() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenant returns the old "tenant" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldTenant(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenant: %w", err)
	}
	return oldValue.Tenant, nil
}

// ResetTenant resets all changes to the "tenant" field.
func (m *StepMutation) ResetTenant() {
	m.tenant = nil
}

// SetRunID sets the "run_id" field.
func (m *StepMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *StepMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *StepMutation) ResetRunID() {
	m.run = nil
}

// SetIteration sets the "iteration" field.
func (m *StepMutation) SetIteration(i int) {
	m.iteration = &i
	m.additeration = nil
}

// Iteration returns the value of the "iteration" field in the mutation.
func (m *StepMutation) Iteration() (r int, exists bool) {
	v := m.iteration
	if v == nil {
		return
	}
	return *v, true
}

// OldIteration returns the old "iteration" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldIteration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIteration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIteration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIteration: %w", err)
	}
	return oldValue.Iteration, nil
}

// AddIteration adds i to the "iteration" field.
func (m *StepMutation) AddIteration(i int) {
	if m.additeration != nil {
		*m.additeration += i
	} else {
		m.additeration = &i
	}
}

// AddedIteration returns the value that was added to the "iteration" field in this mutation.
func (m *StepMutation) AddedIteration() (r int, exists bool) {
	v := m.additeration
	if v == nil {
		return
	}
	return *v, true
}

// ResetIteration resets all changes to the "iteration" field.
func (m *StepMutation) ResetIteration() {
	m.iteration = nil
	m.additeration = nil
}

// SetAgentRole sets the "agent_role" field.
func (m *StepMutation) SetAgentRole(sr step.AgentRole) {
	m.agent_role = &sr
}

// AgentRole returns the value of the "agent_role" field in the mutation.
func (m *StepMutation) AgentRole() (r step.AgentRole, exists bool) {
	v := m.agent_role
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentRole returns the old "agent_role" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldAgentRole(ctx context.Context) (v step.AgentRole, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentRole: %w", err)
	}
	return oldValue.AgentRole, nil
}

// ResetAgentRole resets all changes to the "agent_role" field.
func (m *StepMutation) ResetAgentRole() {
	m.agent_role = nil
}

// SetQueue sets the "queue" field.
func (m *StepMutation) SetQueue(s step.Queue) {
	m.queue = &s
}

// Queue returns the value of the "queue" field in the mutation.
func (m *StepMutation) Queue() (r step.Queue, exists bool) {
	v := m.queue
	if v == nil {
		return
	}
	return *v, true
}

// OldQueue returns the old "queue" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldQueue(ctx context.Context) (v step.Queue, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueue: %w", err)
	}
	return oldValue.Queue, nil
}

// ResetQueue resets all changes to the "queue" field.
func (m *StepMutation) ResetQueue() {
	m.queue = nil
}

// SetPriority sets the "priority" field.
func (m *StepMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *StepMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *StepMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *StepMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *StepMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetState sets the "state" field.
func (m *StepMutation) SetState(s step.State) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *StepMutation) State() (r step.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldState(ctx context.Context) (v step.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *StepMutation) ResetState() {
	m.state = nil
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (m *StepMutation) SetIdempotencyKey(s string) {
	m.idempotency_key = &s
}

// IdempotencyKey returns the value of the "idempotency_key" field in the mutation.
func (m *StepMutation) IdempotencyKey() (r string, exists bool) {
	v := m.idempotency_key
	if v == nil {
		return
	}
	return *v, true
}

// OldIdempotencyKey returns the old "idempotency_key" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldIdempotencyKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdempotencyKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdempotencyKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdempotencyKey: %w", err)
	}
	return oldValue.IdempotencyKey, nil
}

// ResetIdempotencyKey resets all changes to the "idempotency_key" field.
func (m *StepMutation) ResetIdempotencyKey() {
	m.idempotency_key = nil
}

// SetInputDigest sets the "input_digest" field.
func (m *StepMutation) SetInputDigest(s string) {
	m.input_digest = &s
}

// InputDigest returns the value of the "input_digest" field in the mutation.
func (m *StepMutation) InputDigest() (r string, exists bool) {
	v := m.input_digest
	if v == nil {
		return
	}
	return *v, true
}

// OldInputDigest returns the old "input_digest" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldInputDigest(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputDigest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputDigest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputDigest: %w", err)
	}
	return oldValue.InputDigest, nil
}

// ResetInputDigest resets all changes to the "input_digest" field.
func (m *StepMutation) ResetInputDigest() {
	m.input_digest = nil
}

// SetInputRef sets the "input_ref" field.
func (m *StepMutation) SetInputRef(s string) {
	m.input_ref = &s
}

// InputRef returns the value of the "input_ref" field in the mutation.
func (m *StepMutation) InputRef() (r string, exists bool) {
	v := m.input_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldInputRef returns the old "input_ref" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldInputRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputRef: %w", err)
	}
	return oldValue.InputRef, nil
}

// ResetInputRef resets all changes to the "input_ref" field.
func (m *StepMutation) ResetInputRef() {
	m.input_ref = nil
}

// SetOutputRef sets the "output_ref" field.
func (m *StepMutation) SetOutputRef(s string) {
	m.output_ref = &s
}

// OutputRef returns the value of the "output_ref" field in the mutation.
func (m *StepMutation) OutputRef() (r string, exists bool) {
	v := m.output_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputRef returns the old "output_ref" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldOutputRef(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputRef: %w", err)
	}
	return oldValue.OutputRef, nil
}

// ClearOutputRef clears the value of the "output_ref" field.
func (m *StepMutation) ClearOutputRef() {
	m.output_ref = nil
	m.clearedFields[step.FieldOutputRef] = struct{}{}
}

// OutputRefCleared returns if the "output_ref" field was cleared in this mutation.
func (m *StepMutation) OutputRefCleared() bool {
	_, ok := m.clearedFields[step.FieldOutputRef]
	return ok
}

// ResetOutputRef resets all changes to the "output_ref" field.
func (m *StepMutation) ResetOutputRef() {
	m.output_ref = nil
	delete(m.clearedFields, step.FieldOutputRef)
}

// SetAttempts sets the "attempts" field.
func (m *StepMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *StepMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *StepMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *StepMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *StepMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetModelTier sets the "model_tier" field.
func (m *StepMutation) SetModelTier(st step.ModelTier) {
	m.model_tier = &st
}

// ModelTier returns the value of the "model_tier" field in the mutation.
func (m *StepMutation) ModelTier() (r step.ModelTier, exists bool) {
	v := m.model_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldModelTier returns the old "model_tier" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldModelTier(ctx context.Context) (v *step.ModelTier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelTier: %w", err)
	}
	return oldValue.ModelTier, nil
}

// ClearModelTier clears the value of the "model_tier" field.
func (m *StepMutation) ClearModelTier() {
	m.model_tier = nil
	m.clearedFields[step.FieldModelTier] = struct{}{}
}

// ModelTierCleared returns if the "model_tier" field was cleared in this mutation.
func (m *StepMutation) ModelTierCleared() bool {
	_, ok := m.clearedFields[step.FieldModelTier]
	return ok
}

// ResetModelTier resets all changes to the "model_tier" field.
func (m *StepMutation) ResetModelTier() {
	m.model_tier = nil
	delete(m.clearedFields, step.FieldModelTier)
}

// SetEstCostUsd sets the "est_cost_usd" field.
func (m *StepMutation) SetEstCostUsd(f float64) {
	m.est_cost_usd = &f
	m.addest_cost_usd = nil
}

// EstCostUsd returns the value of the "est_cost_usd" field in the mutation.
func (m *StepMutation) EstCostUsd() (r float64, exists bool) {
	v := m.est_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldEstCostUsd returns the old "est_cost_usd" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldEstCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstCostUsd: %w", err)
	}
	return oldValue.EstCostUsd, nil
}

// AddEstCostUsd adds f to the "est_cost_usd" field.
func (m *StepMutation) AddEstCostUsd(f float64) {
	if m.addest_cost_usd != nil {
		*m.addest_cost_usd += f
	} else {
		m.addest_cost_usd = &f
	}
}

// AddedEstCostUsd returns the value that was added to the "est_cost_usd" field in this mutation.
func (m *StepMutation) AddedEstCostUsd() (r float64, exists bool) {
	v := m.addest_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstCostUsd resets all changes to the "est_cost_usd" field.
func (m *StepMutation) ResetEstCostUsd() {
	m.est_cost_usd = nil
	m.addest_cost_usd = nil
}

// SetTokensIn sets the "tokens_in" field.
func (m *StepMutation) SetTokensIn(i int) {
	m.tokens_in = &i
	m.addtokens_in = nil
}

// TokensIn returns the value of the "tokens_in" field in the mutation.
func (m *StepMutation) TokensIn() (r int, exists bool) {
	v := m.tokens_in
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensIn returns the old "tokens_in" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldTokensIn(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensIn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensIn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensIn: %w", err)
	}
	return oldValue.TokensIn, nil
}

// AddTokensIn adds i to the "tokens_in" field.
func (m *StepMutation) AddTokensIn(i int) {
	if m.addtokens_in != nil {
		*m.addtokens_in += i
	} else {
		m.addtokens_in = &i
	}
}

// AddedTokensIn returns the value that was added to the "tokens_in" field in this mutation.
func (m *StepMutation) AddedTokensIn() (r int, exists bool) {
	v := m.addtokens_in
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensIn resets all changes to the "tokens_in" field.
func (m *StepMutation) ResetTokensIn() {
	m.tokens_in = nil
	m.addtokens_in = nil
}

// SetTokensOut sets the "tokens_out" field.
func (m *StepMutation) SetTokensOut(i int) {
	m.tokens_out = &i
	m.addtokens_out = nil
}

// TokensOut returns the value of the "tokens_out" field in the mutation.
func (m *StepMutation) TokensOut() (r int, exists bool) {
	v := m.tokens_out
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensOut returns the old "tokens_out" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldTokensOut(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensOut is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensOut requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensOut: %w", err)
	}
	return oldValue.TokensOut, nil
}

// AddTokensOut adds i to the "tokens_out" field.
func (m *StepMutation) AddTokensOut(i int) {
	if m.addtokens_out != nil {
		*m.addtokens_out += i
	} else {
		m.addtokens_out = &i
	}
}

// AddedTokensOut returns the value that was added to the "tokens_out" field in this mutation.
func (m *StepMutation) AddedTokensOut() (r int, exists bool) {
	v := m.addtokens_out
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensOut resets all changes to the "tokens_out" field.
func (m *StepMutation) ResetTokensOut() {
	m.tokens_out = nil
	m.addtokens_out = nil
}

// SetCostUsd sets the "cost_usd" field.
func (m *StepMutation) SetCostUsd(f float64) {
	m.cost_usd = &f
	m.addcost_usd = nil
}

// CostUsd returns the value of the "cost_usd" field in the mutation.
func (m *StepMutation) CostUsd() (r float64, exists bool) {
	v := m.cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCostUsd returns the old "cost_usd" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostUsd: %w", err)
	}
	return oldValue.CostUsd, nil
}

// AddCostUsd adds f to the "cost_usd" field.
func (m *StepMutation) AddCostUsd(f float64) {
	if m.addcost_usd != nil {
		*m.addcost_usd += f
	} else {
		m.addcost_usd = &f
	}
}

// AddedCostUsd returns the value that was added to the "cost_usd" field in this mutation.
func (m *StepMutation) AddedCostUsd() (r float64, exists bool) {
	v := m.addcost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostUsd resets all changes to the "cost_usd" field.
func (m *StepMutation) ResetCostUsd() {
	m.cost_usd = nil
	m.addcost_usd = nil
}

// SetNotBefore sets the "not_before" field.
func (m *StepMutation) SetNotBefore(t time.Time) {
	m.not_before = &t
}

// NotBefore returns the value of the "not_before" field in the mutation.
func (m *StepMutation) NotBefore() (r time.Time, exists bool) {
	v := m.not_before
	if v == nil {
		return
	}
	return *v, true
}

// OldNotBefore returns the old "not_before" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldNotBefore(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotBefore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotBefore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotBefore: %w", err)
	}
	return oldValue.NotBefore, nil
}

// ClearNotBefore clears the value of the "not_before" field.
func (m *StepMutation) ClearNotBefore() {
	m.not_before = nil
	m.clearedFields[step.FieldNotBefore] = struct{}{}
}

// NotBeforeCleared returns if the "not_before" field was cleared in this mutation.
func (m *StepMutation) NotBeforeCleared() bool {
	_, ok := m.clearedFields[step.FieldNotBefore]
	return ok
}

// ResetNotBefore resets all changes to the "not_before" field.
func (m *StepMutation) ResetNotBefore() {
	m.not_before = nil
	delete(m.clearedFields, step.FieldNotBefore)
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (m *StepMutation) SetLeaseExpiresAt(t time.Time) {
	m.lease_expires_at = &t
}

// LeaseExpiresAt returns the value of the "lease_expires_at" field in the mutation.
func (m *StepMutation) LeaseExpiresAt() (r time.Time, exists bool) {
	v := m.lease_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaseExpiresAt returns the old "lease_expires_at" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldLeaseExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaseExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaseExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaseExpiresAt: %w", err)
	}
	return oldValue.LeaseExpiresAt, nil
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (m *StepMutation) ClearLeaseExpiresAt() {
	m.lease_expires_at = nil
	m.clearedFields[step.FieldLeaseExpiresAt] = struct{}{}
}

// LeaseExpiresAtCleared returns if the "lease_expires_at" field was cleared in this mutation.
func (m *StepMutation) LeaseExpiresAtCleared() bool {
	_, ok := m.clearedFields[step.FieldLeaseExpiresAt]
	return ok
}

// ResetLeaseExpiresAt resets all changes to the "lease_expires_at" field.
func (m *StepMutation) ResetLeaseExpiresAt() {
	m.lease_expires_at = nil
	delete(m.clearedFields, step.FieldLeaseExpiresAt)
}

// SetWorkerID sets the "worker_id" field.
func (m *StepMutation) SetWorkerID(s string) {
	m.worker_id = &s
}

// WorkerID returns the value of the "worker_id" field in the mutation.
func (m *StepMutation) WorkerID() (r string, exists bool) {
	v := m.worker_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkerID returns the old "worker_id" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldWorkerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkerID: %w", err)
	}
	return oldValue.WorkerID, nil
}

// ClearWorkerID clears the value of the "worker_id" field.
func (m *StepMutation) ClearWorkerID() {
	m.worker_id = nil
	m.clearedFields[step.FieldWorkerID] = struct{}{}
}

// WorkerIDCleared returns if the "worker_id" field was cleared in this mutation.
func (m *StepMutation) WorkerIDCleared() bool {
	_, ok := m.clearedFields[step.FieldWorkerID]
	return ok
}

// ResetWorkerID resets all changes to the "worker_id" field.
func (m *StepMutation) ResetWorkerID() {
	m.worker_id = nil
	delete(m.clearedFields, step.FieldWorkerID)
}

// SetTombstoned sets the "tombstoned" field.
func (m *StepMutation) SetTombstoned(b bool) {
	m.tombstoned = &b
}

// Tombstoned returns the value of the "tombstoned" field in the mutation.
func (m *StepMutation) Tombstoned() (r bool, exists bool) {
	v := m.tombstoned
	if v == nil {
		return
	}
	return *v, true
}

// OldTombstoned returns the old "tombstoned" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldTombstoned(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTombstoned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTombstoned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTombstoned: %w", err)
	}
	return oldValue.Tombstoned, nil
}

// ResetTombstoned resets all changes to the "tombstoned" field.
func (m *StepMutation) ResetTombstoned() {
	m.tombstoned = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *StepMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *StepMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *StepMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[step.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *StepMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[step.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *StepMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, step.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *StepMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StepMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StepMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *StepMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *StepMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *StepMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[step.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *StepMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[step.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *StepMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, step.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *StepMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *StepMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *StepMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[step.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *StepMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[step.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *StepMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, step.FieldCompletedAt)
}

// ClearRun clears the "run" edge to the Run entity.
func (m *StepMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[step.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *StepMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *StepMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *StepMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// AddFailureIDs adds the "failures" edge to the Failure entity by ids.
func (m *StepMutation) AddFailureIDs(ids ...string) {
	if m.failures == nil {
		m.failures = make(map[string]struct{})
	}
	for i := range ids {
		m.failures[ids[i]] = struct{}{}
	}
}

// ClearFailures clears the "failures" edge to the Failure entity.
func (m *StepMutation) ClearFailures() {
	m.clearedfailures = true
}

// FailuresCleared reports if the "failures" edge to the Failure entity was cleared.
func (m *StepMutation) FailuresCleared() bool {
	return m.clearedfailures
}

// RemoveFailureIDs removes the "failures" edge to the Failure entity by IDs.
func (m *StepMutation) RemoveFailureIDs(ids ...string) {
	if m.removedfailures == nil {
		m.removedfailures = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.failures, ids[i])
		m.removedfailures[ids[i]] = struct{}{}
	}
}

// RemovedFailures returns the removed IDs of the "failures" edge to the Failure entity.
func (m *StepMutation) RemovedFailuresIDs() (ids []string) {
	for id := range m.removedfailures {
		ids = append(ids, id)
	}
	return
}

// FailuresIDs returns the "failures" edge IDs in the mutation.
func (m *StepMutation) FailuresIDs() (ids []string) {
	for id := range m.failures {
		ids = append(ids, id)
	}
	return
}

// ResetFailures resets all changes to the "failures" edge.
func (m *StepMutation) ResetFailures() {
	m.failures = nil
	m.clearedfailures = false
	m.removedfailures = nil
}

// SetLeaseID sets the "lease" edge to the QueueLease entity by id.
func (m *StepMutation) SetLeaseID(id string) {
	m.lease = &id
}

// ClearLease clears the "lease" edge to the QueueLease entity.
func (m *StepMutation) ClearLease() {
	m.clearedlease = true
}

// LeaseCleared reports if the "lease" edge to the QueueLease entity was cleared.
func (m *StepMutation) LeaseCleared() bool {
	return m.clearedlease
}

// LeaseID returns the "lease" edge ID in the mutation.
func (m *StepMutation) LeaseID() (id string, exists bool) {
	if m.lease != nil {
		return *m.lease, true
	}
	return
}

// LeaseIDs returns the "lease" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LeaseID instead. It exists only for internal usage by the builders.
func (m *StepMutation) LeaseIDs() (ids []string) {
	if id := m.lease; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLease resets all changes to the "lease" edge.
func (m *StepMutation) ResetLease() {
	m.lease = nil
	m.clearedlease = false
}

// Where appends a list predicates to the StepMutation builder.
func (m *StepMutation) Where(ps ...predicate.Step) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Step, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Step).
func (m *StepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StepMutation) Fields() []string {
	fields := make([]string, 0, 25)
	if m.tenant != nil {
		fields = append(fields, step.FieldTenant)
	}
	if m.run != nil {
		fields = append(fields, step.FieldRunID)
	}
	if m.iteration != nil {
		fields = append(fields, step.FieldIteration)
	}
	if m.agent_role != nil {
		fields = append(fields, step.FieldAgentRole)
	}
	if m.queue != nil {
		fields = append(fields, step.FieldQueue)
	}
	if m.priority != nil {
		fields = append(fields, step.FieldPriority)
	}
	if m.state != nil {
		fields = append(fields, step.FieldState)
	}
	if m.idempotency_key != nil {
		fields = append(fields, step.FieldIdempotencyKey)
	}
	if m.input_digest != nil {
		fields = append(fields, step.FieldInputDigest)
	}
	if m.input_ref != nil {
		fields = append(fields, step.FieldInputRef)
	}
	if m.output_ref != nil {
		fields = append(fields, step.FieldOutputRef)
	}
	if m.attempts != nil {
		fields = append(fields, step.FieldAttempts)
	}
	if m.model_tier != nil {
		fields = append(fields, step.FieldModelTier)
	}
	if m.est_cost_usd != nil {
		fields = append(fields, step.FieldEstCostUsd)
	}
	if m.tokens_in != nil {
		fields = append(fields, step.FieldTokensIn)
	}
	if m.tokens_out != nil {
		fields = append(fields, step.FieldTokensOut)
	}
	if m.cost_usd != nil {
		fields = append(fields, step.FieldCostUsd)
	}
	if m.not_before != nil {
		fields = append(fields, step.FieldNotBefore)
	}
	if m.lease_expires_at != nil {
		fields = append(fields, step.FieldLeaseExpiresAt)
	}
	if m.worker_id != nil {
		fields = append(fields, step.FieldWorkerID)
	}
	if m.tombstoned != nil {
		fields = append(fields, step.FieldTombstoned)
	}
	if m.error_message != nil {
		fields = append(fields, step.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, step.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, step.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, step.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case step.FieldTenant:
		return m.Tenant()
	case step.FieldRunID:
		return m.RunID()
	case step.FieldIteration:
		return m.Iteration()
	case step.FieldAgentRole:
		return m.AgentRole()
	case step.FieldQueue:
		return m.Queue()
	case step.FieldPriority:
		return m.Priority()
	case step.FieldState:
		return m.State()
	case step.FieldIdempotencyKey:
		return m.IdempotencyKey()
	case step.FieldInputDigest:
		return m.InputDigest()
	case step.FieldInputRef:
		return m.InputRef()
	case step.FieldOutputRef:
		return m.OutputRef()
	case step.FieldAttempts:
		return m.Attempts()
	case step.FieldModelTier:
		return m.ModelTier()
	case step.FieldEstCostUsd:
		return m.EstCostUsd()
	case step.FieldTokensIn:
		return m.TokensIn()
	case step.FieldTokensOut:
		return m.TokensOut()
	case step.FieldCostUsd:
		return m.CostUsd()
	case step.FieldNotBefore:
		return m.NotBefore()
	case step.FieldLeaseExpiresAt:
		return m.LeaseExpiresAt()
	case step.FieldWorkerID:
		return m.WorkerID()
	case step.FieldTombstoned:
		return m.Tombstoned()
	case step.FieldErrorMessage:
		return m.ErrorMessage()
	case step.FieldCreatedAt:
		return m.CreatedAt()
	case step.FieldStartedAt:
		return m.StartedAt()
	case step.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case step.FieldTenant:
		return m.OldTenant(ctx)
	case step.FieldRunID:
		return m.OldRunID(ctx)
	case step.FieldIteration:
		return m.OldIteration(ctx)
	case step.FieldAgentRole:
		return m.OldAgentRole(ctx)
	case step.FieldQueue:
		return m.OldQueue(ctx)
	case step.FieldPriority:
		return m.OldPriority(ctx)
	case step.FieldState:
		return m.OldState(ctx)
	case step.FieldIdempotencyKey:
		return m.OldIdempotencyKey(ctx)
	case step.FieldInputDigest:
		return m.OldInputDigest(ctx)
	case step.FieldInputRef:
		return m.OldInputRef(ctx)
	case step.FieldOutputRef:
		return m.OldOutputRef(ctx)
	case step.FieldAttempts:
		return m.OldAttempts(ctx)
	case step.FieldModelTier:
		return m.OldModelTier(ctx)
	case step.FieldEstCostUsd:
		return m.OldEstCostUsd(ctx)
	case step.FieldTokensIn:
		return m.OldTokensIn(ctx)
	case step.FieldTokensOut:
		return m.OldTokensOut(ctx)
	case step.FieldCostUsd:
		return m.OldCostUsd(ctx)
	case step.FieldNotBefore:
		return m.OldNotBefore(ctx)
	case step.FieldLeaseExpiresAt:
		return m.OldLeaseExpiresAt(ctx)
	case step.FieldWorkerID:
		return m.OldWorkerID(ctx)
	case step.FieldTombstoned:
		return m.OldTombstoned(ctx)
	case step.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case step.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case step.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case step.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Step field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case step.FieldTenant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenant(v)
		return nil
	case step.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case step.FieldIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIteration(v)
		return nil
	case step.FieldAgentRole:
		v, ok := value.(step.AgentRole)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentRole(v)
		return nil
	case step.FieldQueue:
		v, ok := value.(step.Queue)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueue(v)
		return nil
	case step.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case step.FieldState:
		v, ok := value.(step.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case step.FieldIdempotencyKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdempotencyKey(v)
		return nil
	case step.FieldInputDigest:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputDigest(v)
		return nil
	case step.FieldInputRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputRef(v)
		return nil
	case step.FieldOutputRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputRef(v)
		return nil
	case step.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case step.FieldModelTier:
		v, ok := value.(step.ModelTier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelTier(v)
		return nil
	case step.FieldEstCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstCostUsd(v)
		return nil
	case step.FieldTokensIn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensIn(v)
		return nil
	case step.FieldTokensOut:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensOut(v)
		return nil
	case step.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostUsd(v)
		return nil
	case step.FieldNotBefore:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotBefore(v)
		return nil
	case step.FieldLeaseExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaseExpiresAt(v)
		return nil
	case step.FieldWorkerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkerID(v)
		return nil
	case step.FieldTombstoned:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTombstoned(v)
		return nil
	case step.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case step.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case step.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case step.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Step field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StepMutation) AddedFields() []string {
	var fields []string
	if m.additeration != nil {
		fields = append(fields, step.FieldIteration)
	}
	if m.addpriority != nil {
		fields = append(fields, step.FieldPriority)
	}
	if m.addattempts != nil {
		fields = append(fields, step.FieldAttempts)
	}
	if m.addest_cost_usd != nil {
		fields = append(fields, step.FieldEstCostUsd)
	}
	if m.addtokens_in != nil {
		fields = append(fields, step.FieldTokensIn)
	}
	if m.addtokens_out != nil {
		fields = append(fields, step.FieldTokensOut)
	}
	if m.addcost_usd != nil {
		fields = append(fields, step.FieldCostUsd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case step.FieldIteration:
		return m.AddedIteration()
	case step.FieldPriority:
		return m.AddedPriority()
	case step.FieldAttempts:
		return m.AddedAttempts()
	case step.FieldEstCostUsd:
		return m.AddedEstCostUsd()
	case step.FieldTokensIn:
		return m.AddedTokensIn()
	case step.FieldTokensOut:
		return m.AddedTokensOut()
	case step.FieldCostUsd:
		return m.AddedCostUsd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case step.FieldIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIteration(v)
		return nil
	case step.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case step.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case step.FieldEstCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstCostUsd(v)
		return nil
	case step.FieldTokensIn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensIn(v)
		return nil
	case step.FieldTokensOut:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensOut(v)
		return nil
	case step.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostUsd(v)
		return nil
	}
	return fmt.Errorf("unknown Step numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(step.FieldOutputRef) {
		fields = append(fields, step.FieldOutputRef)
	}
	if m.FieldCleared(step.FieldModelTier) {
		fields = append(fields, step.FieldModelTier)
	}
	if m.FieldCleared(step.FieldNotBefore) {
		fields = append(fields, step.FieldNotBefore)
	}
	if m.FieldCleared(step.FieldLeaseExpiresAt) {
		fields = append(fields, step.FieldLeaseExpiresAt)
	}
	if m.FieldCleared(step.FieldWorkerID) {
		fields = append(fields, step.FieldWorkerID)
	}
	if m.FieldCleared(step.FieldErrorMessage) {
		fields = append(fields, step.FieldErrorMessage)
	}
	if m.FieldCleared(step.FieldStartedAt) {
		fields = append(fields, step.FieldStartedAt)
	}
	if m.FieldCleared(step.FieldCompletedAt) {
		fields = append(fields, step.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StepMutation) ClearField(name string) error {
	switch name {
	case step.FieldOutputRef:
		m.ClearOutputRef()
		return nil
	case step.FieldModelTier:
		m.ClearModelTier()
		return nil
	case step.FieldNotBefore:
		m.ClearNotBefore()
		return nil
	case step.FieldLeaseExpiresAt:
		m.ClearLeaseExpiresAt()
		return nil
	case step.FieldWorkerID:
		m.ClearWorkerID()
		return nil
	case step.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case step.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case step.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Step nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StepMutation) ResetField(name string) error {
	switch name {
	case step.FieldTenant:
		m.ResetTenant()
		return nil
	case step.FieldRunID:
		m.ResetRunID()
		return nil
	case step.FieldIteration:
		m.ResetIteration()
		return nil
	case step.FieldAgentRole:
		m.ResetAgentRole()
		return nil
	case step.FieldQueue:
		m.ResetQueue()
		return nil
	case step.FieldPriority:
		m.ResetPriority()
		return nil
	case step.FieldState:
		m.ResetState()
		return nil
	case step.FieldIdempotencyKey:
		m.ResetIdempotencyKey()
		return nil
	case step.FieldInputDigest:
		m.ResetInputDigest()
		return nil
	case step.FieldInputRef:
		m.ResetInputRef()
		return nil
	case step.FieldOutputRef:
		m.ResetOutputRef()
		return nil
	case step.FieldAttempts:
		m.ResetAttempts()
		return nil
	case step.FieldModelTier:
		m.ResetModelTier()
		return nil
	case step.FieldEstCostUsd:
		m.ResetEstCostUsd()
		return nil
	case step.FieldTokensIn:
		m.ResetTokensIn()
		return nil
	case step.FieldTokensOut:
		m.ResetTokensOut()
		return nil
	case step.FieldCostUsd:
		m.ResetCostUsd()
		return nil
	case step.FieldNotBefore:
		m.ResetNotBefore()
		return nil
	case step.FieldLeaseExpiresAt:
		m.ResetLeaseExpiresAt()
		return nil
	case step.FieldWorkerID:
		m.ResetWorkerID()
		return nil
	case step.FieldTombstoned:
		m.ResetTombstoned()
		return nil
	case step.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case step.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case step.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case step.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Step field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StepMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.run != nil {
		edges = append(edges, step.EdgeRun)
	}
	if m.failures != nil {
		edges = append(edges, step.EdgeFailures)
	}
	if m.lease != nil {
		edges = append(edges, step.EdgeLease)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case step.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	case step.EdgeFailures:
		ids := make([]ent.Value, 0, len(m.failures))
		for id := range m.failures {
			ids = append(ids, id)
		}
		return ids
	case step.EdgeLease:
		if id := m.lease; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedfailures != nil {
		edges = append(edges, step.EdgeFailures)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StepMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case step.EdgeFailures:
		ids := make([]ent.Value, 0, len(m.removedfailures))
		for id := range m.removedfailures {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedrun {
		edges = append(edges, step.EdgeRun)
	}
	if m.clearedfailures {
		edges = append(edges, step.EdgeFailures)
	}
	if m.clearedlease {
		edges = append(edges, step.EdgeLease)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StepMutation) EdgeCleared(name string) bool {
	switch name {
	case step.EdgeRun:
		return m.clearedrun
	case step.EdgeFailures:
		return m.clearedfailures
	case step.EdgeLease:
		return m.clearedlease
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StepMutation) ClearEdge(name string) error {
	switch name {
	case step.EdgeRun:
		m.ClearRun()
		return nil
	case step.EdgeLease:
		m.ClearLease()
		return nil
	}
	return fmt.Errorf("unknown Step unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StepMutation) ResetEdge(name string) error {
	switch name {
	case step.EdgeRun:
		m.ResetRun()
		return nil
	case step.EdgeFailures:
		m.ResetFailures()
		return nil
	case step.EdgeLease:
		m.ResetLease()
		return nil
	}
	return fmt.Errorf("unknown Step edge %s", name)
}

// TimelineEventMutation represents an operation that mutates the TimelineEvent nodes in the graph.
type TimelineEventMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant        *string
	kind          *string
	message       *string
	step_id       *string
	details       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*TimelineEvent, error)
	predicates    []predicate.TimelineEvent
}

var _ ent.Mutation = (*TimelineEventMutation)(nil)

// timelineeventOption allows management of the mutation configuration using functional options.
type timelineeventOption func(*TimelineEventMutation)

// newTimelineEventMutation creates new mutation for the TimelineEvent entity.
func newTimelineEventMutation(c config, op Op, opts ...timelineeventOption) *TimelineEventMutation {
	m := &TimelineEventMutation{
		config:        c,
		op:            op,
		typ:           TypeTimelineEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTimelineEventID sets the ID field of the mutation.
func withTimelineEventID(id string) timelineeventOption {
	return func(m *TimelineEventMutation) {
		var (
			err   error
			once  sync.Once
			value *TimelineEvent
		)
		m.oldValue = func(ctx context.Context) (*TimelineEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TimelineEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTimelineEvent sets the old TimelineEvent of the mutation.
func withTimelineEvent(node *TimelineEvent) timelineeventOption {
	return func(m *TimelineEventMutation) {
		m.oldValue = func(context.Context) (*TimelineEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TimelineEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TimelineEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TimelineEvent entities.
func (m *TimelineEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TimelineEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TimelineEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TimelineEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenant sets the "tenant" field.
func (m *TimelineEventMutation) SetTenant(s string) {
	m.tenant = &s
}

// Tenant returns the value of the "tenant" field in the mutation.
func (m *TimelineEventMutation) Tenant() (r string, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenant returns the old "tenant" field's value of the TimelineEvent entity.
// If the TimelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEventMutation) OldTenant(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenant: %w", err)
	}
	return oldValue.Tenant, nil
}

// ResetTenant resets all changes to the "tenant" field.
func (m *TimelineEventMutation) ResetTenant() {
	m.tenant = nil
}

// SetRunID sets the "run_id" field.
func (m *TimelineEventMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *TimelineEventMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the TimelineEvent entity.
// If the TimelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEventMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *TimelineEventMutation) ResetRunID() {
	m.run = nil
}

// SetKind sets the "kind" field.
func (m *TimelineEventMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *TimelineEventMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the TimelineEvent entity.
// If the TimelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEventMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *TimelineEventMutation) ResetKind() {
	m.kind = nil
}

// SetMessage sets the "message" field.
func (m *TimelineEventMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *TimelineEventMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the TimelineEvent entity.
// If the TimelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEventMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *TimelineEventMutation) ResetMessage() {
	m.message = nil
}

// SetStepID sets the "step_id" field.
func (m *TimelineEventMutation) SetStepID(s string) {
	m.step_id = &s
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *TimelineEventMutation) StepID() (r string, exists bool) {
	v := m.step_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the TimelineEvent entity.
// If the TimelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEventMutation) OldStepID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ClearStepID clears the value of the "step_id" field.
func (m *TimelineEventMutation) ClearStepID() {
	m.step_id = nil
	m.clearedFields[timelineevent.FieldStepID] = struct{}{}
}

// StepIDCleared returns if the "step_id" field was cleared in this mutation.
func (m *TimelineEventMutation) StepIDCleared() bool {
	_, ok := m.clearedFields[timelineevent.FieldStepID]
	return ok
}

// ResetStepID resets all changes to the "step_id" field.
func (m *TimelineEventMutation) ResetStepID() {
	m.step_id = nil
	delete(m.clearedFields, timelineevent.FieldStepID)
}

// SetDetails sets the "details" field.
func (m *TimelineEventMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *TimelineEventMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the TimelineEvent entity.
// If the TimelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEventMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *TimelineEventMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[timelineevent.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *TimelineEventMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[timelineevent.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *TimelineEventMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, timelineevent.FieldDetails)
}

// SetCreatedAt sets the "created_at" field.
func (m *TimelineEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TimelineEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TimelineEvent entity.
// If the TimelineEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimelineEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TimelineEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *TimelineEventMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[timelineevent.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *TimelineEventMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *TimelineEventMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *TimelineEventMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the TimelineEventMutation builder.
func (m *TimelineEventMutation) Where(ps ...predicate.TimelineEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TimelineEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TimelineEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TimelineEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TimelineEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TimelineEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TimelineEvent).
func (m *TimelineEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TimelineEventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.tenant != nil {
		fields = append(fields, timelineevent.FieldTenant)
	}
	if m.run != nil {
		fields = append(fields, timelineevent.FieldRunID)
	}
	if m.kind != nil {
		fields = append(fields, timelineevent.FieldKind)
	}
	if m.message != nil {
		fields = append(fields, timelineevent.FieldMessage)
	}
	if m.step_id != nil {
		fields = append(fields, timelineevent.FieldStepID)
	}
	if m.details != nil {
		fields = append(fields, timelineevent.FieldDetails)
	}
	if m.created_at != nil {
		fields = append(fields, timelineevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TimelineEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case timelineevent.FieldTenant:
		return m.Tenant()
	case timelineevent.FieldRunID:
		return m.RunID()
	case timelineevent.FieldKind:
		return m.Kind()
	case timelineevent.FieldMessage:
		return m.Message()
	case timelineevent.FieldStepID:
		return m.StepID()
	case timelineevent.FieldDetails:
		return m.Details()
	case timelineevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TimelineEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case timelineevent.FieldTenant:
		return m.OldTenant(ctx)
	case timelineevent.FieldRunID:
		return m.OldRunID(ctx)
	case timelineevent.FieldKind:
		return m.OldKind(ctx)
	case timelineevent.FieldMessage:
		return m.OldMessage(ctx)
	case timelineevent.FieldStepID:
		return m.OldStepID(ctx)
	case timelineevent.FieldDetails:
		return m.OldDetails(ctx)
	case timelineevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TimelineEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TimelineEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case timelineevent.FieldTenant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenant(v)
		return nil
	case timelineevent.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case timelineevent.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case timelineevent.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case timelineevent.FieldStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case timelineevent.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case timelineevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TimelineEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TimelineEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TimelineEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TimelineEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TimelineEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TimelineEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(timelineevent.FieldStepID) {
		fields = append(fields, timelineevent.FieldStepID)
	}
	if m.FieldCleared(timelineevent.FieldDetails) {
		fields = append(fields, timelineevent.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TimelineEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TimelineEventMutation) ClearField(name string) error {
	switch name {
	case timelineevent.FieldStepID:
		m.ClearStepID()
		return nil
	case timelineevent.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown TimelineEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TimelineEventMutation) ResetField(name string) error {
	switch name {
	case timelineevent.FieldTenant:
		m.ResetTenant()
		return nil
	case timelineevent.FieldRunID:
		m.ResetRunID()
		return nil
	case timelineevent.FieldKind:
		m.ResetKind()
		return nil
	case timelineevent.FieldMessage:
		m.ResetMessage()
		return nil
	case timelineevent.FieldStepID:
		m.ResetStepID()
		return nil
	case timelineevent.FieldDetails:
		m.ResetDetails()
		return nil
	case timelineevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TimelineEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TimelineEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, timelineevent.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TimelineEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case timelineevent.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TimelineEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TimelineEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TimelineEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, timelineevent.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TimelineEventMutation) EdgeCleared(name string) bool {
	switch name {
	case timelineevent.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TimelineEventMutation) ClearEdge(name string) error {
	switch name {
	case timelineevent.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown TimelineEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TimelineEventMutation) ResetEdge(name string) error {
	switch name {
	case timelineevent.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown TimelineEvent edge %s", name)
}
