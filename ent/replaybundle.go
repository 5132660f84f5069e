// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgeworks/metabuild/ent/replaybundle"
	"github.com/forgeworks/metabuild/ent/run"
)

// ReplayBundle is the model entity for the ReplayBundle schema.
type ReplayBundle struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Tenant holds the value of the "tenant" field.
	Tenant string `json:"tenant,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// sha256 over the canonical record concatenation
	BundleHash string `json:"bundle_hash,omitempty"`
	// Blob ref of the serialized bundle
	StorageRef string `json:"storage_ref,omitempty"`
	// Set after a deterministic re-run verifies the bundle
	ReplayedOk *bool `json:"replayed_ok,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReplayBundleQuery when eager-loading is set.
	Edges        ReplayBundleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReplayBundleEdges holds the relations/edges for other nodes in the graph.
type ReplayBundleEdges struct {
	// Run holds the value of the run edge.
	Run *Run `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReplayBundleEdges) RunOrErr() (*Run, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: run.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReplayBundle) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case replaybundle.FieldReplayedOk:
			values[i] = new(sql.NullBool)
		case replaybundle.FieldID, replaybundle.FieldTenant, replaybundle.FieldRunID, replaybundle.FieldBundleHash, replaybundle.FieldStorageRef:
			values[i] = new(sql.NullString)
		case replaybundle.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReplayBundle fields.
func (_m *ReplayBundle) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case replaybundle.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case replaybundle.FieldTenant:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant", values[i])
			} else if value.Valid {
				_m.Tenant = value.String
			}
		case replaybundle.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case replaybundle.FieldBundleHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bundle_hash", values[i])
			} else if value.Valid {
				_m.BundleHash = value.String
			}
		case replaybundle.FieldStorageRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_ref", values[i])
			} else if value.Valid {
				_m.StorageRef = value.String
			}
		case replaybundle.FieldReplayedOk:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field replayed_ok", values[i])
			} else if value.Valid {
				_m.ReplayedOk = new(bool)
				*_m.ReplayedOk = value.Bool
			}
		case replaybundle.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ReplayBundle.
// This includes values selected through modifiers, order, etc.
func (_m *ReplayBundle) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the ReplayBundle entity.
func (_m *ReplayBundle) QueryRun() *RunQuery {
	return NewReplayBundleClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this ReplayBundle.
// Note that you need to call ReplayBundle.Unwrap() before calling this method if this ReplayBundle
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReplayBundle) Update() *ReplayBundleUpdateOne {
	return NewReplayBundleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReplayBundle entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReplayBundle) Unwrap() *ReplayBundle {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReplayBundle is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReplayBundle) String() string {
	var builder strings.Builder
	builder.WriteString("ReplayBundle(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant=")
	builder.WriteString(_m.Tenant)
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("bundle_hash=")
	builder.WriteString(_m.BundleHash)
	builder.WriteString(", ")
	builder.WriteString("storage_ref=")
	builder.WriteString(_m.StorageRef)
	builder.WriteString(", ")
	if v := _m.ReplayedOk; v != nil {
		builder.WriteString("replayed_ok=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ReplayBundles is a parsable slice of ReplayBundle.
type ReplayBundles []*ReplayBundle
