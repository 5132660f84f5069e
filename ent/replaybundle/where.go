// Code generated by ent, DO NOT EDIT.

package replaybundle

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/forgeworks/metabuild/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldContainsFold(FieldID, id))
}

// Tenant applies equality check predicate on the "tenant" field. It's identical to TenantEQ.
func Tenant(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldEQ(FieldTenant, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldEQ(FieldRunID, v))
}

// BundleHash applies equality check predicate on the "bundle_hash" field. It's identical to BundleHashEQ.
func BundleHash(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldEQ(FieldBundleHash, v))
}

// StorageRef applies equality check predicate on the "storage_ref" field. It's identical to StorageRefEQ.
func StorageRef(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldEQ(FieldStorageRef, v))
}

// ReplayedOk applies equality check predicate on the "replayed_ok" field. It's identical to ReplayedOkEQ.
func ReplayedOk(v bool) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldEQ(FieldReplayedOk, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldEQ(FieldCreatedAt, v))
}

// TenantEQ applies the EQ predicate on the "tenant" field.
func TenantEQ(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldEQ(FieldTenant, v))
}

// TenantNEQ applies the NEQ predicate on the "tenant" field.
func TenantNEQ(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldNEQ(FieldTenant, v))
}

// TenantIn applies the In predicate on the "tenant" field.
func TenantIn(vs ...string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldIn(FieldTenant, vs...))
}

// TenantNotIn applies the NotIn predicate on the "tenant" field.
func TenantNotIn(vs ...string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldNotIn(FieldTenant, vs...))
}

// TenantGT applies the GT predicate on the "tenant" field.
func TenantGT(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldGT(FieldTenant, v))
}

// TenantGTE applies the GTE predicate on the "tenant" field.
func TenantGTE(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldGTE(FieldTenant, v))
}

// TenantLT applies the LT predicate on the "tenant" field.
func TenantLT(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldLT(FieldTenant, v))
}

// TenantLTE applies the LTE predicate on the "tenant" field.
func TenantLTE(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldLTE(FieldTenant, v))
}

// TenantContains applies the Contains predicate on the "tenant" field.
func TenantContains(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldContains(FieldTenant, v))
}

// TenantHasPrefix applies the HasPrefix predicate on the "tenant" field.
func TenantHasPrefix(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldHasPrefix(FieldTenant, v))
}

// TenantHasSuffix applies the HasSuffix predicate on the "tenant" field.
func TenantHasSuffix(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldHasSuffix(FieldTenant, v))
}

// TenantEqualFold applies the EqualFold predicate on the "tenant" field.
func TenantEqualFold(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldEqualFold(FieldTenant, v))
}

// TenantContainsFold applies the ContainsFold predicate on the "tenant" field.
func TenantContainsFold(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldContainsFold(FieldTenant, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldContainsFold(FieldRunID, v))
}

// BundleHashEQ applies the EQ predicate on the "bundle_hash" field.
func BundleHashEQ(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldEQ(FieldBundleHash, v))
}

// BundleHashNEQ applies the NEQ predicate on the "bundle_hash" field.
func BundleHashNEQ(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldNEQ(FieldBundleHash, v))
}

// BundleHashIn applies the In predicate on the "bundle_hash" field.
func BundleHashIn(vs ...string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldIn(FieldBundleHash, vs...))
}

// BundleHashNotIn applies the NotIn predicate on the "bundle_hash" field.
func BundleHashNotIn(vs ...string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldNotIn(FieldBundleHash, vs...))
}

// BundleHashGT applies the GT predicate on the "bundle_hash" field.
func BundleHashGT(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldGT(FieldBundleHash, v))
}

// BundleHashGTE applies the GTE predicate on the "bundle_hash" field.
func BundleHashGTE(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldGTE(FieldBundleHash, v))
}

// BundleHashLT applies the LT predicate on the "bundle_hash" field.
func BundleHashLT(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldLT(FieldBundleHash, v))
}

// BundleHashLTE applies the LTE predicate on the "bundle_hash" field.
func BundleHashLTE(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldLTE(FieldBundleHash, v))
}

// BundleHashContains applies the Contains predicate on the "bundle_hash" field.
func BundleHashContains(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldContains(FieldBundleHash, v))
}

// BundleHashHasPrefix applies the HasPrefix predicate on the "bundle_hash" field.
func BundleHashHasPrefix(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldHasPrefix(FieldBundleHash, v))
}

// BundleHashHasSuffix applies the HasSuffix predicate on the "bundle_hash" field.
func BundleHashHasSuffix(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldHasSuffix(FieldBundleHash, v))
}

// BundleHashEqualFold applies the EqualFold predicate on the "bundle_hash" field.
func BundleHashEqualFold(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldEqualFold(FieldBundleHash, v))
}

// BundleHashContainsFold applies the ContainsFold predicate on the "bundle_hash" field.
func BundleHashContainsFold(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldContainsFold(FieldBundleHash, v))
}

// StorageRefEQ applies the EQ predicate on the "storage_ref" field.
func StorageRefEQ(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldEQ(FieldStorageRef, v))
}

// StorageRefNEQ applies the NEQ predicate on the "storage_ref" field.
func StorageRefNEQ(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldNEQ(FieldStorageRef, v))
}

// StorageRefIn applies the In predicate on the "storage_ref" field.
func StorageRefIn(vs ...string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldIn(FieldStorageRef, vs...))
}

// StorageRefNotIn applies the NotIn predicate on the "storage_ref" field.
func StorageRefNotIn(vs ...string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldNotIn(FieldStorageRef, vs...))
}

// StorageRefGT applies the GT predicate on the "storage_ref" field.
func StorageRefGT(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldGT(FieldStorageRef, v))
}

// StorageRefGTE applies the GTE predicate on the "storage_ref" field.
func StorageRefGTE(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldGTE(FieldStorageRef, v))
}

// StorageRefLT applies the LT predicate on the "storage_ref" field.
func StorageRefLT(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldLT(FieldStorageRef, v))
}

// StorageRefLTE applies the LTE predicate on the "storage_ref" field.
func StorageRefLTE(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldLTE(FieldStorageRef, v))
}

// StorageRefContains applies the Contains predicate on the "storage_ref" field.
func StorageRefContains(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldContains(FieldStorageRef, v))
}

// StorageRefHasPrefix applies the HasPrefix predicate on the "storage_ref" field.
func StorageRefHasPrefix(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldHasPrefix(FieldStorageRef, v))
}

// StorageRefHasSuffix applies the HasSuffix predicate on the "storage_ref" field.
func StorageRefHasSuffix(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldHasSuffix(FieldStorageRef, v))
}

// StorageRefEqualFold applies the EqualFold predicate on the "storage_ref" field.
func StorageRefEqualFold(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldEqualFold(FieldStorageRef, v))
}

// StorageRefContainsFold applies the ContainsFold predicate on the "storage_ref" field.
func StorageRefContainsFold(v string) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldContainsFold(FieldStorageRef, v))
}

// ReplayedOkEQ applies the EQ predicate on the "replayed_ok" field.
func ReplayedOkEQ(v bool) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldEQ(FieldReplayedOk, v))
}

// ReplayedOkNEQ applies the NEQ predicate on the "replayed_ok" field.
func ReplayedOkNEQ(v bool) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldNEQ(FieldReplayedOk, v))
}

// ReplayedOkIsNil applies the IsNil predicate on the "replayed_ok" field.
func ReplayedOkIsNil() predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldIsNull(FieldReplayedOk))
}

// ReplayedOkNotNil applies the NotNil predicate on the "replayed_ok" field.
func ReplayedOkNotNil() predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldNotNull(FieldReplayedOk))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.ReplayBundle {
	return predicate.ReplayBundle(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.Run) predicate.ReplayBundle {
	return predicate.ReplayBundle(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReplayBundle) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReplayBundle) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReplayBundle) predicate.ReplayBundle {
	return predicate.ReplayBundle(sql.NotPredicates(p))
}
