// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgeworks/metabuild/ent/budget"
	"github.com/forgeworks/metabuild/ent/run"
)

// Budget is the model entity for the Budget schema.
type Budget struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Tenant holds the value of the "tenant" field.
	Tenant string `json:"tenant,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// CostLimitUsd holds the value of the "cost_limit_usd" field.
	CostLimitUsd float64 `json:"cost_limit_usd,omitempty"`
	// CostUsedUsd holds the value of the "cost_used_usd" field.
	CostUsedUsd float64 `json:"cost_used_usd,omitempty"`
	// TimeLimitS holds the value of the "time_limit_s" field.
	TimeLimitS int `json:"time_limit_s,omitempty"`
	// TimeUsedS holds the value of the "time_used_s" field.
	TimeUsedS int `json:"time_used_s,omitempty"`
	// AttemptLimit holds the value of the "attempt_limit" field.
	AttemptLimit int `json:"attempt_limit,omitempty"`
	// AttemptUsed holds the value of the "attempt_used" field.
	AttemptUsed int `json:"attempt_used,omitempty"`
	// ExceededAt holds the value of the "exceeded_at" field.
	ExceededAt *time.Time `json:"exceeded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BudgetQuery when eager-loading is set.
	Edges        BudgetEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BudgetEdges holds the relations/edges for other nodes in the graph.
type BudgetEdges struct {
	// Run holds the value of the run edge.
	Run *Run `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BudgetEdges) RunOrErr() (*Run, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: run.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Budget) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case budget.FieldCostLimitUsd, budget.FieldCostUsedUsd:
			values[i] = new(sql.NullFloat64)
		case budget.FieldTimeLimitS, budget.FieldTimeUsedS, budget.FieldAttemptLimit, budget.FieldAttemptUsed:
			values[i] = new(sql.NullInt64)
		case budget.FieldID, budget.FieldTenant, budget.FieldRunID:
			values[i] = new(sql.NullString)
		case budget.FieldExceededAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Budget fields.
func (_m *Budget) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case budget.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case budget.FieldTenant:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant", values[i])
			} else if value.Valid {
				_m.Tenant = value.String
			}
		case budget.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case budget.FieldCostLimitUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost_limit_usd", values[i])
			} else if value.Valid {
				_m.CostLimitUsd = value.Float64
			}
		case budget.FieldCostUsedUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost_used_usd", values[i])
			} else if value.Valid {
				_m.CostUsedUsd = value.Float64
			}
		case budget.FieldTimeLimitS:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_limit_s", values[i])
			} else if value.Valid {
				_m.TimeLimitS = int(value.Int64)
			}
		case budget.FieldTimeUsedS:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_used_s", values[i])
			} else if value.Valid {
				_m.TimeUsedS = int(value.Int64)
			}
		case budget.FieldAttemptLimit:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_limit", values[i])
			} else if value.Valid {
				_m.AttemptLimit = int(value.Int64)
			}
		case budget.FieldAttemptUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_used", values[i])
			} else if value.Valid {
				_m.AttemptUsed = int(value.Int64)
			}
		case budget.FieldExceededAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field exceeded_at", values[i])
			} else if value.Valid {
				_m.ExceededAt = new(time.Time)
				*_m.ExceededAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Budget.
// This includes values selected through modifiers, order, etc.
func (_m *Budget) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the Budget entity.
func (_m *Budget) QueryRun() *RunQuery {
	return NewBudgetClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this Budget.
// Note that you need to call Budget.Unwrap() before calling this method if this Budget
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Budget) Update() *BudgetUpdateOne {
	return NewBudgetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Budget entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Budget) Unwrap() *Budget {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Budget is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Budget) String() string {
	var builder strings.Builder
	builder.WriteString("Budget(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant=")
	builder.WriteString(_m.Tenant)
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("cost_limit_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.CostLimitUsd))
	builder.WriteString(", ")
	builder.WriteString("cost_used_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.CostUsedUsd))
	builder.WriteString(", ")
	builder.WriteString("time_limit_s=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeLimitS))
	builder.WriteString(", ")
	builder.WriteString("time_used_s=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeUsedS))
	builder.WriteString(", ")
	builder.WriteString("attempt_limit=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptLimit))
	builder.WriteString(", ")
	builder.WriteString("attempt_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptUsed))
	builder.WriteString(", ")
	if v := _m.ExceededAt; v != nil {
		builder.WriteString("exceeded_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Budgets is a parsable slice of Budget.
type Budgets []*Budget
