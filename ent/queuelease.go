// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgeworks/metabuild/ent/queuelease"
	"github.com/forgeworks/metabuild/ent/step"
)

// QueueLease is the model entity for the QueueLease schema.
type QueueLease struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Tenant holds the value of the "tenant" field.
	Tenant string `json:"tenant,omitempty"`
	// WorkerID holds the value of the "worker_id" field.
	WorkerID string `json:"worker_id,omitempty"`
	// Queue holds the value of the "queue" field.
	Queue queuelease.Queue `json:"queue,omitempty"`
	// StepID holds the value of the "step_id" field.
	StepID string `json:"step_id,omitempty"`
	// AcquiredAt holds the value of the "acquired_at" field.
	AcquiredAt time.Time `json:"acquired_at,omitempty"`
	// Extended by heartbeat; only monotonically forward
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	// LastHeartbeat holds the value of the "last_heartbeat" field.
	LastHeartbeat time.Time `json:"last_heartbeat,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QueueLeaseQuery when eager-loading is set.
	Edges        QueueLeaseEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QueueLeaseEdges holds the relations/edges for other nodes in the graph.
type QueueLeaseEdges struct {
	// Step holds the value of the step edge.
	Step *Step `json:"step,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// StepOrErr returns the Step value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QueueLeaseEdges) StepOrErr() (*Step, error) {
	if e.Step != nil {
		return e.Step, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: step.Label}
	}
	return nil, &NotLoadedError{edge: "step"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QueueLease) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case queuelease.FieldID, queuelease.FieldTenant, queuelease.FieldWorkerID, queuelease.FieldQueue, queuelease.FieldStepID:
			values[i] = new(sql.NullString)
		case queuelease.FieldAcquiredAt, queuelease.FieldExpiresAt, queuelease.FieldLastHeartbeat:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QueueLease fields.
func (_m *QueueLease) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case queuelease.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case queuelease.FieldTenant:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant", values[i])
			} else if value.Valid {
				_m.Tenant = value.String
			}
		case queuelease.FieldWorkerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field worker_id", values[i])
			} else if value.Valid {
				_m.WorkerID = value.String
			}
		case queuelease.FieldQueue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field queue", values[i])
			} else if value.Valid {
				_m.Queue = queuelease.Queue(value.String)
			}
		case queuelease.FieldStepID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_id", values[i])
			} else if value.Valid {
				_m.StepID = value.String
			}
		case queuelease.FieldAcquiredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field acquired_at", values[i])
			} else if value.Valid {
				_m.AcquiredAt = value.Time
			}
		case queuelease.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		case queuelease.FieldLastHeartbeat:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat", values[i])
			} else if value.Valid {
				_m.LastHeartbeat = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QueueLease.
// This includes values selected through modifiers, order, etc.
func (_m *QueueLease) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStep queries the "step" edge of the QueueLease entity.
func (_m *QueueLease) QueryStep() *StepQuery {
	return NewQueueLeaseClient(_m.config).QueryStep(_m)
}

// Update returns a builder for updating this QueueLease.
// Note that you need to call QueueLease.Unwrap() before calling this method if this QueueLease
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QueueLease) Update() *QueueLeaseUpdateOne {
	return NewQueueLeaseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QueueLease entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QueueLease) Unwrap() *QueueLease {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QueueLease is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QueueLease) String() string {
	var builder strings.Builder
	builder.WriteString("QueueLease(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant=")
	builder.WriteString(_m.Tenant)
	builder.WriteString(", ")
	builder.WriteString("worker_id=")
	builder.WriteString(_m.WorkerID)
	builder.WriteString(", ")
	builder.WriteString("queue=")
	builder.WriteString(fmt.Sprintf("%v", _m.Queue))
	builder.WriteString(", ")
	builder.WriteString("step_id=")
	builder.WriteString(_m.StepID)
	builder.WriteString(", ")
	builder.WriteString("acquired_at=")
	builder.WriteString(_m.AcquiredAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_heartbeat=")
	builder.WriteString(_m.LastHeartbeat.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QueueLeases is a parsable slice of QueueLease.
type QueueLeases []*QueueLease
