// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgeworks/metabuild/ent/repairattempt"
	"github.com/forgeworks/metabuild/ent/run"
)

// RepairAttempt is the model entity for the RepairAttempt schema.
type RepairAttempt struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Tenant holds the value of the "tenant" field.
	Tenant string `json:"tenant,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// FailureID holds the value of the "failure_id" field.
	FailureID string `json:"failure_id,omitempty"`
	// Phase holds the value of the "phase" field.
	Phase repairattempt.Phase `json:"phase,omitempty"`
	// e.g. 'backoff', 'constrained_diff', 'scoped_replan'
	Strategy string `json:"strategy,omitempty"`
	// Outcome holds the value of the "outcome" field.
	Outcome repairattempt.Outcome `json:"outcome,omitempty"`
	// BackoffUsedMs holds the value of the "backoff_used_ms" field.
	BackoffUsedMs int `json:"backoff_used_ms,omitempty"`
	// Blob ref of the patch diff (patch phase only)
	DiffRef *string `json:"diff_ref,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RepairAttemptQuery when eager-loading is set.
	Edges        RepairAttemptEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RepairAttemptEdges holds the relations/edges for other nodes in the graph.
type RepairAttemptEdges struct {
	// Run holds the value of the run edge.
	Run *Run `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RepairAttemptEdges) RunOrErr() (*Run, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: run.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RepairAttempt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case repairattempt.FieldBackoffUsedMs:
			values[i] = new(sql.NullInt64)
		case repairattempt.FieldID, repairattempt.FieldTenant, repairattempt.FieldRunID, repairattempt.FieldFailureID, repairattempt.FieldPhase, repairattempt.FieldStrategy, repairattempt.FieldOutcome, repairattempt.FieldDiffRef:
			values[i] = new(sql.NullString)
		case repairattempt.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RepairAttempt fields.
func (_m *RepairAttempt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case repairattempt.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case repairattempt.FieldTenant:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant", values[i])
			} else if value.Valid {
				_m.Tenant = value.String
			}
		case repairattempt.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case repairattempt.FieldFailureID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_id", values[i])
			} else if value.Valid {
				_m.FailureID = value.String
			}
		case repairattempt.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = repairattempt.Phase(value.String)
			}
		case repairattempt.FieldStrategy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field strategy", values[i])
			} else if value.Valid {
				_m.Strategy = value.String
			}
		case repairattempt.FieldOutcome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome", values[i])
			} else if value.Valid {
				_m.Outcome = repairattempt.Outcome(value.String)
			}
		case repairattempt.FieldBackoffUsedMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field backoff_used_ms", values[i])
			} else if value.Valid {
				_m.BackoffUsedMs = int(value.Int64)
			}
		case repairattempt.FieldDiffRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field diff_ref", values[i])
			} else if value.Valid {
				_m.DiffRef = new(string)
				*_m.DiffRef = value.String
			}
		case repairattempt.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RepairAttempt.
// This includes values selected through modifiers, order, etc.
func (_m *RepairAttempt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the RepairAttempt entity.
func (_m *RepairAttempt) QueryRun() *RunQuery {
	return NewRepairAttemptClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this RepairAttempt.
// Note that you need to call RepairAttempt.Unwrap() before calling this method if this RepairAttempt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RepairAttempt) Update() *RepairAttemptUpdateOne {
	return NewRepairAttemptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RepairAttempt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RepairAttempt) Unwrap() *RepairAttempt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RepairAttempt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RepairAttempt) String() string {
	var builder strings.Builder
	builder.WriteString("RepairAttempt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant=")
	builder.WriteString(_m.Tenant)
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("failure_id=")
	builder.WriteString(_m.FailureID)
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(fmt.Sprintf("%v", _m.Phase))
	builder.WriteString(", ")
	builder.WriteString("strategy=")
	builder.WriteString(_m.Strategy)
	builder.WriteString(", ")
	builder.WriteString("outcome=")
	builder.WriteString(fmt.Sprintf("%v", _m.Outcome))
	builder.WriteString(", ")
	builder.WriteString("backoff_used_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.BackoffUsedMs))
	builder.WriteString(", ")
	if v := _m.DiffRef; v != nil {
		builder.WriteString("diff_ref=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RepairAttempts is a parsable slice of RepairAttempt.
type RepairAttempts []*RepairAttempt
