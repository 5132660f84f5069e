// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgeworks/metabuild/ent/failure"
	"github.com/forgeworks/metabuild/ent/run"
	"github.com/forgeworks/metabuild/ent/step"
)

// Failure is the model entity for the Failure schema.
type Failure struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Tenant holds the value of the "tenant" field.
	Tenant string `json:"tenant,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// StepID holds the value of the "step_id" field.
	StepID string `json:"step_id,omitempty"`
	// Class holds the value of the "class" field.
	Class failure.Class `json:"class,omitempty"`
	// Classifier confidence in [0,1]
	Confidence float64 `json:"confidence,omitempty"`
	// Secret-masked before persistence
	LogExcerpt string `json:"log_excerpt,omitempty"`
	// Retryable holds the value of the "retryable" field.
	Retryable bool `json:"retryable,omitempty"`
	// RequiresReplan holds the value of the "requires_replan" field.
	RequiresReplan bool `json:"requires_replan,omitempty"`
	// RequiresHuman holds the value of the "requires_human" field.
	RequiresHuman bool `json:"requires_human,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FailureQuery when eager-loading is set.
	Edges        FailureEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FailureEdges holds the relations/edges for other nodes in the graph.
type FailureEdges struct {
	// Run holds the value of the run edge.
	Run *Run `json:"run,omitempty"`
	// Step holds the value of the step edge.
	Step *Step `json:"step,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FailureEdges) RunOrErr() (*Run, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: run.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// StepOrErr returns the Step value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FailureEdges) StepOrErr() (*Step, error) {
	if e.Step != nil {
		return e.Step, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: step.Label}
	}
	return nil, &NotLoadedError{edge: "step"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Failure) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case failure.FieldRetryable, failure.FieldRequiresReplan, failure.FieldRequiresHuman:
			values[i] = new(sql.NullBool)
		case failure.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case failure.FieldID, failure.FieldTenant, failure.FieldRunID, failure.FieldStepID, failure.FieldClass, failure.FieldLogExcerpt:
			values[i] = new(sql.NullString)
		case failure.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Failure fields.
func (_m *Failure) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case failure.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case failure.FieldTenant:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant", values[i])
			} else if value.Valid {
				_m.Tenant = value.String
			}
		case failure.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case failure.FieldStepID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_id", values[i])
			} else if value.Valid {
				_m.StepID = value.String
			}
		case failure.FieldClass:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field class", values[i])
			} else if value.Valid {
				_m.Class = failure.Class(value.String)
			}
		case failure.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case failure.FieldLogExcerpt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field log_excerpt", values[i])
			} else if value.Valid {
				_m.LogExcerpt = value.String
			}
		case failure.FieldRetryable:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field retryable", values[i])
			} else if value.Valid {
				_m.Retryable = value.Bool
			}
		case failure.FieldRequiresReplan:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field requires_replan", values[i])
			} else if value.Valid {
				_m.RequiresReplan = value.Bool
			}
		case failure.FieldRequiresHuman:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field requires_human", values[i])
			} else if value.Valid {
				_m.RequiresHuman = value.Bool
			}
		case failure.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Failure.
// This includes values selected through modifiers, order, etc.
func (_m *Failure) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the Failure entity.
func (_m *Failure) QueryRun() *RunQuery {
	return NewFailureClient(_m.config).QueryRun(_m)
}

// QueryStep queries the "step" edge of the Failure entity.
func (_m *Failure) QueryStep() *StepQuery {
	return NewFailureClient(_m.config).QueryStep(_m)
}

// Update returns a builder for updating this Failure.
// Note that you need to call Failure.Unwrap() before calling this method if this Failure
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Failure) Update() *FailureUpdateOne {
	return NewFailureClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Failure entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Failure) Unwrap() *Failure {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Failure is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Failure) String() string {
	var builder strings.Builder
	builder.WriteString("Failure(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant=")
	builder.WriteString(_m.Tenant)
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("step_id=")
	builder.WriteString(_m.StepID)
	builder.WriteString(", ")
	builder.WriteString("class=")
	builder.WriteString(fmt.Sprintf("%v", _m.Class))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("log_excerpt=")
	builder.WriteString(_m.LogExcerpt)
	builder.WriteString(", ")
	builder.WriteString("retryable=")
	builder.WriteString(fmt.Sprintf("%v", _m.Retryable))
	builder.WriteString(", ")
	builder.WriteString("requires_replan=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequiresReplan))
	builder.WriteString(", ")
	builder.WriteString("requires_human=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequiresHuman))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Failures is a parsable slice of Failure.
type Failures []*Failure
