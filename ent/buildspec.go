// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgeworks/metabuild/ent/buildspec"
)

// BuildSpec is the model entity for the BuildSpec schema.
type BuildSpec struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Tenant holds the value of the "tenant" field.
	Tenant string `json:"tenant,omitempty"`
	// Freeform text, structured DSL, or imported ERD/OpenAPI/CSV
	Source string `json:"source,omitempty"`
	// SourceKind holds the value of the "source_kind" field.
	SourceKind buildspec.SourceKind `json:"source_kind,omitempty"`
	// SLAClass holds the value of the "sla_class" field.
	SLAClass buildspec.SLAClass `json:"sla_class,omitempty"`
	// ReviewRequired holds the value of the "review_required" field.
	ReviewRequired bool `json:"review_required,omitempty"`
	// MaxIters holds the value of the "max_iters" field.
	MaxIters int `json:"max_iters,omitempty"`
	// TokenBudget holds the value of the "token_budget" field.
	TokenBudget int `json:"token_budget,omitempty"`
	// CostLimitUsd holds the value of the "cost_limit_usd" field.
	CostLimitUsd float64 `json:"cost_limit_usd,omitempty"`
	// WallTimeS holds the value of the "wall_time_s" field.
	WallTimeS int `json:"wall_time_s,omitempty"`
	// Run-specific acceptance criteria appended to the golden suite
	Acceptance []map[string]interface{} `json:"acceptance,omitempty"`
	// pass_rate / p95_latency / cost thresholds
	KpiGuards map[string]interface{} `json:"kpi_guards,omitempty"`
	// Keys into the golden suite
	DomainTags []string `json:"domain_tags,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BuildSpecQuery when eager-loading is set.
	Edges        BuildSpecEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BuildSpecEdges holds the relations/edges for other nodes in the graph.
type BuildSpecEdges struct {
	// Runs holds the value of the runs edge.
	Runs []*Run `json:"runs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunsOrErr returns the Runs value or an error if the edge
// was not loaded in eager-loading.
func (e BuildSpecEdges) RunsOrErr() ([]*Run, error) {
	if e.loadedTypes[0] {
		return e.Runs, nil
	}
	return nil, &NotLoadedError{edge: "runs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BuildSpec) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case buildspec.FieldAcceptance, buildspec.FieldKpiGuards, buildspec.FieldDomainTags:
			values[i] = new([]byte)
		case buildspec.FieldReviewRequired:
			values[i] = new(sql.NullBool)
		case buildspec.FieldCostLimitUsd:
			values[i] = new(sql.NullFloat64)
		case buildspec.FieldMaxIters, buildspec.FieldTokenBudget, buildspec.FieldWallTimeS:
			values[i] = new(sql.NullInt64)
		case buildspec.FieldID, buildspec.FieldTenant, buildspec.FieldSource, buildspec.FieldSourceKind, buildspec.FieldSLAClass:
			values[i] = new(sql.NullString)
		case buildspec.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BuildSpec fields.
func (_m *BuildSpec) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case buildspec.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case buildspec.FieldTenant:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant", values[i])
			} else if value.Valid {
				_m.Tenant = value.String
			}
		case buildspec.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case buildspec.FieldSourceKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_kind", values[i])
			} else if value.Valid {
				_m.SourceKind = buildspec.SourceKind(value.String)
			}
		case buildspec.FieldSLAClass:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sla_class", values[i])
			} else if value.Valid {
				_m.SLAClass = buildspec.SLAClass(value.String)
			}
		case buildspec.FieldReviewRequired:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field review_required", values[i])
			} else if value.Valid {
				_m.ReviewRequired = value.Bool
			}
		case buildspec.FieldMaxIters:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_iters", values[i])
			} else if value.Valid {
				_m.MaxIters = int(value.Int64)
			}
		case buildspec.FieldTokenBudget:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field token_budget", values[i])
			} else if value.Valid {
				_m.TokenBudget = int(value.Int64)
			}
		case buildspec.FieldCostLimitUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost_limit_usd", values[i])
			} else if value.Valid {
				_m.CostLimitUsd = value.Float64
			}
		case buildspec.FieldWallTimeS:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field wall_time_s", values[i])
			} else if value.Valid {
				_m.WallTimeS = int(value.Int64)
			}
		case buildspec.FieldAcceptance:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field acceptance", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Acceptance); err != nil {
					return fmt.Errorf("unmarshal field acceptance: %w", err)
				}
			}
		case buildspec.FieldKpiGuards:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field kpi_guards", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.KpiGuards); err != nil {
					return fmt.Errorf("unmarshal field kpi_guards: %w", err)
				}
			}
		case buildspec.FieldDomainTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field domain_tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DomainTags); err != nil {
					return fmt.Errorf("unmarshal field domain_tags: %w", err)
				}
			}
		case buildspec.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the BuildSpec.
// This includes values selected through modifiers, order, etc.
func (_m *BuildSpec) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRuns queries the "runs" edge of the BuildSpec entity.
func (_m *BuildSpec) QueryRuns() *RunQuery {
	return NewBuildSpecClient(_m.config).QueryRuns(_m)
}

// Update returns a builder for updating this BuildSpec.
// Note that you need to call BuildSpec.Unwrap() before calling this method if this BuildSpec
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BuildSpec) Update() *BuildSpecUpdateOne {
	return NewBuildSpecClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BuildSpec entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BuildSpec) Unwrap() *BuildSpec {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BuildSpec is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BuildSpec) String() string {
	var builder strings.Builder
	builder.WriteString("BuildSpec(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant=")
	builder.WriteString(_m.Tenant)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("source_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceKind))
	builder.WriteString(", ")
	builder.WriteString("sla_class=")
	builder.WriteString(fmt.Sprintf("%v", _m.SLAClass))
	builder.WriteString(", ")
	builder.WriteString("review_required=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewRequired))
	builder.WriteString(", ")
	builder.WriteString("max_iters=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxIters))
	builder.WriteString(", ")
	builder.WriteString("token_budget=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokenBudget))
	builder.WriteString(", ")
	builder.WriteString("cost_limit_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.CostLimitUsd))
	builder.WriteString(", ")
	builder.WriteString("wall_time_s=")
	builder.WriteString(fmt.Sprintf("%v", _m.WallTimeS))
	builder.WriteString(", ")
	builder.WriteString("acceptance=")
	builder.WriteString(fmt.Sprintf("%v", _m.Acceptance))
	builder.WriteString(", ")
	builder.WriteString("kpi_guards=")
	builder.WriteString(fmt.Sprintf("%v", _m.KpiGuards))
	builder.WriteString(", ")
	builder.WriteString("domain_tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.DomainTags))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BuildSpecs is a parsable slice of BuildSpec.
type BuildSpecs []*BuildSpec
