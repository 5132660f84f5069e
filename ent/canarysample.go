// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgeworks/metabuild/ent/canarysample"
	"github.com/forgeworks/metabuild/ent/run"
)

// CanarySample is the model entity for the CanarySample schema.
type CanarySample struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Tenant holds the value of the "tenant" field.
	Tenant string `json:"tenant,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// Group holds the value of the "group" field.
	Group canarysample.Group `json:"group,omitempty"`
	// Success holds the value of the "success" field.
	Success bool `json:"success,omitempty"`
	// CostUsd holds the value of the "cost_usd" field.
	CostUsd float64 `json:"cost_usd,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs int64 `json:"duration_ms,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// ReplanCount holds the value of the "replan_count" field.
	ReplanCount int `json:"replan_count,omitempty"`
	// RollbackCount holds the value of the "rollback_count" field.
	RollbackCount int `json:"rollback_count,omitempty"`
	// RecordedAt holds the value of the "recorded_at" field.
	RecordedAt time.Time `json:"recorded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CanarySampleQuery when eager-loading is set.
	Edges        CanarySampleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CanarySampleEdges holds the relations/edges for other nodes in the graph.
type CanarySampleEdges struct {
	// Run holds the value of the run edge.
	Run *Run `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CanarySampleEdges) RunOrErr() (*Run, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: run.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CanarySample) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case canarysample.FieldSuccess:
			values[i] = new(sql.NullBool)
		case canarysample.FieldCostUsd:
			values[i] = new(sql.NullFloat64)
		case canarysample.FieldDurationMs, canarysample.FieldRetryCount, canarysample.FieldReplanCount, canarysample.FieldRollbackCount:
			values[i] = new(sql.NullInt64)
		case canarysample.FieldID, canarysample.FieldTenant, canarysample.FieldRunID, canarysample.FieldGroup:
			values[i] = new(sql.NullString)
		case canarysample.FieldRecordedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CanarySample fields.
func (_m *CanarySample) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case canarysample.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case canarysample.FieldTenant:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant", values[i])
			} else if value.Valid {
				_m.Tenant = value.String
			}
		case canarysample.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case canarysample.FieldGroup:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field group", values[i])
			} else if value.Valid {
				_m.Group = canarysample.Group(value.String)
			}
		case canarysample.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		case canarysample.FieldCostUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost_usd", values[i])
			} else if value.Valid {
				_m.CostUsd = value.Float64
			}
		case canarysample.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = value.Int64
			}
		case canarysample.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case canarysample.FieldReplanCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field replan_count", values[i])
			} else if value.Valid {
				_m.ReplanCount = int(value.Int64)
			}
		case canarysample.FieldRollbackCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rollback_count", values[i])
			} else if value.Valid {
				_m.RollbackCount = int(value.Int64)
			}
		case canarysample.FieldRecordedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field recorded_at", values[i])
			} else if value.Valid {
				_m.RecordedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CanarySample.
// This includes values selected through modifiers, order, etc.
func (_m *CanarySample) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the CanarySample entity.
func (_m *CanarySample) QueryRun() *RunQuery {
	return NewCanarySampleClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this CanarySample.
// Note that you need to call CanarySample.Unwrap() before calling this method if this CanarySample
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CanarySample) Update() *CanarySampleUpdateOne {
	return NewCanarySampleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CanarySample entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CanarySample) Unwrap() *CanarySample {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CanarySample is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CanarySample) String() string {
	var builder strings.Builder
	builder.WriteString("CanarySample(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant=")
	builder.WriteString(_m.Tenant)
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("group=")
	builder.WriteString(fmt.Sprintf("%v", _m.Group))
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteString(", ")
	builder.WriteString("cost_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.CostUsd))
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	builder.WriteString("replan_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReplanCount))
	builder.WriteString(", ")
	builder.WriteString("rollback_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RollbackCount))
	builder.WriteString(", ")
	builder.WriteString("recorded_at=")
	builder.WriteString(_m.RecordedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CanarySamples is a parsable slice of CanarySample.
type CanarySamples []*CanarySample
