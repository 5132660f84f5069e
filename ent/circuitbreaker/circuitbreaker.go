// Code generated by ent, DO NOT EDIT.

package circuitbreaker

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the circuitbreaker type in the database.
	Label = "circuit_breaker"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "breaker_id"
	// FieldTenant holds the string denoting the tenant field in the database.
	FieldTenant = "tenant"
	// FieldFailureClass holds the string denoting the failure_class field in the database.
	FieldFailureClass = "failure_class"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldFailCount holds the string denoting the fail_count field in the database.
	FieldFailCount = "fail_count"
	// FieldThreshold holds the string denoting the threshold field in the database.
	FieldThreshold = "threshold"
	// FieldWindowStart holds the string denoting the window_start field in the database.
	FieldWindowStart = "window_start"
	// FieldOpenedAt holds the string denoting the opened_at field in the database.
	FieldOpenedAt = "opened_at"
	// FieldCooldownUntil holds the string denoting the cooldown_until field in the database.
	FieldCooldownUntil = "cooldown_until"
	// FieldCooldownS holds the string denoting the cooldown_s field in the database.
	FieldCooldownS = "cooldown_s"
	// Table holds the table name of the circuitbreaker in the database.
	Table = "circuit_breakers"
)

// Columns holds all SQL columns for circuitbreaker fields.
var Columns = []string{
	FieldID,
	FieldTenant,
	FieldFailureClass,
	FieldState,
	FieldFailCount,
	FieldThreshold,
	FieldWindowStart,
	FieldOpenedAt,
	FieldCooldownUntil,
	FieldCooldownS,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultFailCount holds the default value on creation for the "fail_count" field.
	DefaultFailCount int
)

// FailureClass defines the type for the "failure_class" enum field.
type FailureClass string

// FailureClass values.
const (
	FailureClassTransient       FailureClass = "transient"
	FailureClassInfra           FailureClass = "infra"
	FailureClassTestAssert      FailureClass = "test_assert"
	FailureClassLint            FailureClass = "lint"
	FailureClassTypeCheck       FailureClass = "type_check"
	FailureClassSecurity        FailureClass = "security"
	FailureClassPolicy          FailureClass = "policy"
	FailureClassRuntime         FailureClass = "runtime"
	FailureClassSchemaMigration FailureClass = "schema_migration"
	FailureClassRateLimit       FailureClass = "rate_limit"
	FailureClassUnknown         FailureClass = "unknown"
)

func (fc FailureClass) String() string {
	return string(fc)
}

// FailureClassValidator is a validator for the "failure_class" field enum values. It is called by the builders before save.
func FailureClassValidator(fc FailureClass) error {
	switch fc {
	case FailureClassTransient, FailureClassInfra, FailureClassTestAssert, FailureClassLint, FailureClassTypeCheck, FailureClassSecurity, FailureClassPolicy, FailureClassRuntime, FailureClassSchemaMigration, FailureClassRateLimit, FailureClassUnknown:
		return nil
	default:
		return fmt.Errorf("circuitbreaker: invalid enum value for failure_class field: %q", fc)
	}
}

// State defines the type for the "state" enum field.
type State string

// StateClosed is the default value of the State enum.
const DefaultState = StateClosed

// State values.
const (
	StateClosed   State = "closed"
	StateOpen     State = "open"
	StateHalfOpen State = "half_open"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateClosed, StateOpen, StateHalfOpen:
		return nil
	default:
		return fmt.Errorf("circuitbreaker: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the CircuitBreaker queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenant orders the results by the tenant field.
func ByTenant(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenant, opts...).ToFunc()
}

// ByFailureClass orders the results by the failure_class field.
func ByFailureClass(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureClass, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByFailCount orders the results by the fail_count field.
func ByFailCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailCount, opts...).ToFunc()
}

// ByThreshold orders the results by the threshold field.
func ByThreshold(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThreshold, opts...).ToFunc()
}

// ByWindowStart orders the results by the window_start field.
func ByWindowStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowStart, opts...).ToFunc()
}

// ByOpenedAt orders the results by the opened_at field.
func ByOpenedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOpenedAt, opts...).ToFunc()
}

// ByCooldownUntil orders the results by the cooldown_until field.
func ByCooldownUntil(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCooldownUntil, opts...).ToFunc()
}

// ByCooldownS orders the results by the cooldown_s field.
func ByCooldownS(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCooldownS, opts...).ToFunc()
}
