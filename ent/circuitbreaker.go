// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgeworks/metabuild/ent/circuitbreaker"
)

// CircuitBreaker is the model entity for the CircuitBreaker schema.
type CircuitBreaker struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Tenant holds the value of the "tenant" field.
	Tenant string `json:"tenant,omitempty"`
	// FailureClass holds the value of the "failure_class" field.
	FailureClass circuitbreaker.FailureClass `json:"failure_class,omitempty"`
	// State holds the value of the "state" field.
	State circuitbreaker.State `json:"state,omitempty"`
	// Failures within the current sliding window
	FailCount int `json:"fail_count,omitempty"`
	// Fail count that trips the breaker
	Threshold int `json:"threshold,omitempty"`
	// WindowStart holds the value of the "window_start" field.
	WindowStart *time.Time `json:"window_start,omitempty"`
	// OpenedAt holds the value of the "opened_at" field.
	OpenedAt *time.Time `json:"opened_at,omitempty"`
	// CooldownUntil holds the value of the "cooldown_until" field.
	CooldownUntil *time.Time `json:"cooldown_until,omitempty"`
	// Current cooldown; doubles on half_open failure, capped
	CooldownS    int `json:"cooldown_s,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CircuitBreaker) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case circuitbreaker.FieldFailCount, circuitbreaker.FieldThreshold, circuitbreaker.FieldCooldownS:
			values[i] = new(sql.NullInt64)
		case circuitbreaker.FieldID, circuitbreaker.FieldTenant, circuitbreaker.FieldFailureClass, circuitbreaker.FieldState:
			values[i] = new(sql.NullString)
		case circuitbreaker.FieldWindowStart, circuitbreaker.FieldOpenedAt, circuitbreaker.FieldCooldownUntil:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CircuitBreaker fields.
func (_m *CircuitBreaker) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case circuitbreaker.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case circuitbreaker.FieldTenant:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant", values[i])
			} else if value.Valid {
				_m.Tenant = value.String
			}
		case circuitbreaker.FieldFailureClass:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_class", values[i])
			} else if value.Valid {
				_m.FailureClass = circuitbreaker.FailureClass(value.String)
			}
		case circuitbreaker.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = circuitbreaker.State(value.String)
			}
		case circuitbreaker.FieldFailCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field fail_count", values[i])
			} else if value.Valid {
				_m.FailCount = int(value.Int64)
			}
		case circuitbreaker.FieldThreshold:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field threshold", values[i])
			} else if value.Valid {
				_m.Threshold = int(value.Int64)
			}
		case circuitbreaker.FieldWindowStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field window_start", values[i])
			} else if value.Valid {
				_m.WindowStart = new(time.Time)
				*_m.WindowStart = value.Time
			}
		case circuitbreaker.FieldOpenedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field opened_at", values[i])
			} else if value.Valid {
				_m.OpenedAt = new(time.Time)
				*_m.OpenedAt = value.Time
			}
		case circuitbreaker.FieldCooldownUntil:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field cooldown_until", values[i])
			} else if value.Valid {
				_m.CooldownUntil = new(time.Time)
				*_m.CooldownUntil = value.Time
			}
		case circuitbreaker.FieldCooldownS:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cooldown_s", values[i])
			} else if value.Valid {
				_m.CooldownS = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CircuitBreaker.
// This includes values selected through modifiers, order, etc.
func (_m *CircuitBreaker) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CircuitBreaker.
// Note that you need to call CircuitBreaker.Unwrap() before calling this method if this CircuitBreaker
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CircuitBreaker) Update() *CircuitBreakerUpdateOne {
	return NewCircuitBreakerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CircuitBreaker entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CircuitBreaker) Unwrap() *CircuitBreaker {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CircuitBreaker is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CircuitBreaker) String() string {
	var builder strings.Builder
	builder.WriteString("CircuitBreaker(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant=")
	builder.WriteString(_m.Tenant)
	builder.WriteString(", ")
	builder.WriteString("failure_class=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailureClass))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("fail_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailCount))
	builder.WriteString(", ")
	builder.WriteString("threshold=")
	builder.WriteString(fmt.Sprintf("%v", _m.Threshold))
	builder.WriteString(", ")
	if v := _m.WindowStart; v != nil {
		builder.WriteString("window_start=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.OpenedAt; v != nil {
		builder.WriteString("opened_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CooldownUntil; v != nil {
		builder.WriteString("cooldown_until=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("cooldown_s=")
	builder.WriteString(fmt.Sprintf("%v", _m.CooldownS))
	builder.WriteByte(')')
	return builder.String()
}

// CircuitBreakers is a parsable slice of CircuitBreaker.
type CircuitBreakers []*CircuitBreaker
