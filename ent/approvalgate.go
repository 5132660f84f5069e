// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgeworks/metabuild/ent/approvalgate"
	"github.com/forgeworks/metabuild/ent/run"
)

// ApprovalGate is the model entity for the ApprovalGate schema.
type ApprovalGate struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Tenant holds the value of the "tenant" field.
	Tenant string `json:"tenant,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// Reviewer role demanded by policy
	RequiredRole string `json:"required_role,omitempty"`
	// Decision holds the value of the "decision" field.
	Decision approvalgate.Decision `json:"decision,omitempty"`
	// Decider holds the value of the "decider" field.
	Decider *string `json:"decider,omitempty"`
	// DecidedAt holds the value of the "decided_at" field.
	DecidedAt *time.Time `json:"decided_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ApprovalGateQuery when eager-loading is set.
	Edges        ApprovalGateEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ApprovalGateEdges holds the relations/edges for other nodes in the graph.
type ApprovalGateEdges struct {
	// Run holds the value of the run edge.
	Run *Run `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ApprovalGateEdges) RunOrErr() (*Run, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: run.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ApprovalGate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case approvalgate.FieldID, approvalgate.FieldTenant, approvalgate.FieldRunID, approvalgate.FieldReason, approvalgate.FieldRequiredRole, approvalgate.FieldDecision, approvalgate.FieldDecider:
			values[i] = new(sql.NullString)
		case approvalgate.FieldDecidedAt, approvalgate.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ApprovalGate fields.
func (_m *ApprovalGate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case approvalgate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case approvalgate.FieldTenant:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant", values[i])
			} else if value.Valid {
				_m.Tenant = value.String
			}
		case approvalgate.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case approvalgate.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case approvalgate.FieldRequiredRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field required_role", values[i])
			} else if value.Valid {
				_m.RequiredRole = value.String
			}
		case approvalgate.FieldDecision:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decision", values[i])
			} else if value.Valid {
				_m.Decision = approvalgate.Decision(value.String)
			}
		case approvalgate.FieldDecider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decider", values[i])
			} else if value.Valid {
				_m.Decider = new(string)
				*_m.Decider = value.String
			}
		case approvalgate.FieldDecidedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field decided_at", values[i])
			} else if value.Valid {
				_m.DecidedAt = new(time.Time)
				*_m.DecidedAt = value.Time
			}
		case approvalgate.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ApprovalGate.
// This includes values selected through modifiers, order, etc.
func (_m *ApprovalGate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the ApprovalGate entity.
func (_m *ApprovalGate) QueryRun() *RunQuery {
	return NewApprovalGateClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this ApprovalGate.
// Note that you need to call ApprovalGate.Unwrap() before calling this method if this ApprovalGate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ApprovalGate) Update() *ApprovalGateUpdateOne {
	return NewApprovalGateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ApprovalGate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ApprovalGate) Unwrap() *ApprovalGate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ApprovalGate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ApprovalGate) String() string {
	var builder strings.Builder
	builder.WriteString("ApprovalGate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant=")
	builder.WriteString(_m.Tenant)
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("required_role=")
	builder.WriteString(_m.RequiredRole)
	builder.WriteString(", ")
	builder.WriteString("decision=")
	builder.WriteString(fmt.Sprintf("%v", _m.Decision))
	builder.WriteString(", ")
	if v := _m.Decider; v != nil {
		builder.WriteString("decider=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DecidedAt; v != nil {
		builder.WriteString("decided_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ApprovalGates is a parsable slice of ApprovalGate.
type ApprovalGates []*ApprovalGate
