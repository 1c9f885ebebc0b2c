// Code generated by ent, DO NOT EDIT.

package matchhistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/mbalogun/invoice-pipeline/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldLTE(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v uuid.UUID) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldEQ(FieldTenantID, v))
}

// VendorID applies equality check predicate on the "vendor_id" field. It's identical to VendorIDEQ.
func VendorID(v uuid.UUID) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldEQ(FieldVendorID, v))
}

// ProductID applies equality check predicate on the "product_id" field. It's identical to ProductIDEQ.
func ProductID(v uuid.UUID) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldEQ(FieldProductID, v))
}

// VendorSku applies equality check predicate on the "vendor_sku" field. It's identical to VendorSkuEQ.
func VendorSku(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldEQ(FieldVendorSku, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldEQ(FieldDescription, v))
}

// Method applies equality check predicate on the "method" field. It's identical to MethodEQ.
func Method(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldEQ(FieldMethod, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldEQ(FieldConfidence, v))
}

// Confirmed applies equality check predicate on the "confirmed" field. It's identical to ConfirmedEQ.
func Confirmed(v bool) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldEQ(FieldConfirmed, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v uuid.UUID) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v uuid.UUID) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...uuid.UUID) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...uuid.UUID) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldNotIn(FieldTenantID, vs...))
}

// VendorIDEQ applies the EQ predicate on the "vendor_id" field.
func VendorIDEQ(v uuid.UUID) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldEQ(FieldVendorID, v))
}

// VendorIDNEQ applies the NEQ predicate on the "vendor_id" field.
func VendorIDNEQ(v uuid.UUID) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldNEQ(FieldVendorID, v))
}

// VendorIDIn applies the In predicate on the "vendor_id" field.
func VendorIDIn(vs ...uuid.UUID) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldIn(FieldVendorID, vs...))
}

// VendorIDNotIn applies the NotIn predicate on the "vendor_id" field.
func VendorIDNotIn(vs ...uuid.UUID) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldNotIn(FieldVendorID, vs...))
}

// VendorIDGT applies the GT predicate on the "vendor_id" field.
func VendorIDGT(v uuid.UUID) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldGT(FieldVendorID, v))
}

// VendorIDGTE applies the GTE predicate on the "vendor_id" field.
func VendorIDGTE(v uuid.UUID) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldGTE(FieldVendorID, v))
}

// VendorIDLT applies the LT predicate on the "vendor_id" field.
func VendorIDLT(v uuid.UUID) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldLT(FieldVendorID, v))
}

// VendorIDLTE applies the LTE predicate on the "vendor_id" field.
func VendorIDLTE(v uuid.UUID) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldLTE(FieldVendorID, v))
}

// ProductIDEQ applies the EQ predicate on the "product_id" field.
func ProductIDEQ(v uuid.UUID) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldEQ(FieldProductID, v))
}

// ProductIDNEQ applies the NEQ predicate on the "product_id" field.
func ProductIDNEQ(v uuid.UUID) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldNEQ(FieldProductID, v))
}

// ProductIDIn applies the In predicate on the "product_id" field.
func ProductIDIn(vs ...uuid.UUID) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldIn(FieldProductID, vs...))
}

// ProductIDNotIn applies the NotIn predicate on the "product_id" field.
func ProductIDNotIn(vs ...uuid.UUID) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldNotIn(FieldProductID, vs...))
}

// VendorSkuEQ applies the EQ predicate on the "vendor_sku" field.
func VendorSkuEQ(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldEQ(FieldVendorSku, v))
}

// VendorSkuNEQ applies the NEQ predicate on the "vendor_sku" field.
func VendorSkuNEQ(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldNEQ(FieldVendorSku, v))
}

// VendorSkuIn applies the In predicate on the "vendor_sku" field.
func VendorSkuIn(vs ...string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldIn(FieldVendorSku, vs...))
}

// VendorSkuNotIn applies the NotIn predicate on the "vendor_sku" field.
func VendorSkuNotIn(vs ...string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldNotIn(FieldVendorSku, vs...))
}

// VendorSkuGT applies the GT predicate on the "vendor_sku" field.
func VendorSkuGT(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldGT(FieldVendorSku, v))
}

// VendorSkuGTE applies the GTE predicate on the "vendor_sku" field.
func VendorSkuGTE(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldGTE(FieldVendorSku, v))
}

// VendorSkuLT applies the LT predicate on the "vendor_sku" field.
func VendorSkuLT(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldLT(FieldVendorSku, v))
}

// VendorSkuLTE applies the LTE predicate on the "vendor_sku" field.
func VendorSkuLTE(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldLTE(FieldVendorSku, v))
}

// VendorSkuContains applies the Contains predicate on the "vendor_sku" field.
func VendorSkuContains(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldContains(FieldVendorSku, v))
}

// VendorSkuHasPrefix applies the HasPrefix predicate on the "vendor_sku" field.
func VendorSkuHasPrefix(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldHasPrefix(FieldVendorSku, v))
}

// VendorSkuHasSuffix applies the HasSuffix predicate on the "vendor_sku" field.
func VendorSkuHasSuffix(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldHasSuffix(FieldVendorSku, v))
}

// VendorSkuEqualFold applies the EqualFold predicate on the "vendor_sku" field.
func VendorSkuEqualFold(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldEqualFold(FieldVendorSku, v))
}

// VendorSkuContainsFold applies the ContainsFold predicate on the "vendor_sku" field.
func VendorSkuContainsFold(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldContainsFold(FieldVendorSku, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldContainsFold(FieldDescription, v))
}

// MethodEQ applies the EQ predicate on the "method" field.
func MethodEQ(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldEQ(FieldMethod, v))
}

// MethodNEQ applies the NEQ predicate on the "method" field.
func MethodNEQ(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldNEQ(FieldMethod, v))
}

// MethodIn applies the In predicate on the "method" field.
func MethodIn(vs ...string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldIn(FieldMethod, vs...))
}

// MethodNotIn applies the NotIn predicate on the "method" field.
func MethodNotIn(vs ...string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldNotIn(FieldMethod, vs...))
}

// MethodGT applies the GT predicate on the "method" field.
func MethodGT(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldGT(FieldMethod, v))
}

// MethodGTE applies the GTE predicate on the "method" field.
func MethodGTE(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldGTE(FieldMethod, v))
}

// MethodLT applies the LT predicate on the "method" field.
func MethodLT(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldLT(FieldMethod, v))
}

// MethodLTE applies the LTE predicate on the "method" field.
func MethodLTE(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldLTE(FieldMethod, v))
}

// MethodContains applies the Contains predicate on the "method" field.
func MethodContains(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldContains(FieldMethod, v))
}

// MethodHasPrefix applies the HasPrefix predicate on the "method" field.
func MethodHasPrefix(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldHasPrefix(FieldMethod, v))
}

// MethodHasSuffix applies the HasSuffix predicate on the "method" field.
func MethodHasSuffix(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldHasSuffix(FieldMethod, v))
}

// MethodEqualFold applies the EqualFold predicate on the "method" field.
func MethodEqualFold(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldEqualFold(FieldMethod, v))
}

// MethodContainsFold applies the ContainsFold predicate on the "method" field.
func MethodContainsFold(v string) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldContainsFold(FieldMethod, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldLTE(FieldConfidence, v))
}

// ConfirmedEQ applies the EQ predicate on the "confirmed" field.
func ConfirmedEQ(v bool) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldEQ(FieldConfirmed, v))
}

// ConfirmedNEQ applies the NEQ predicate on the "confirmed" field.
func ConfirmedNEQ(v bool) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldNEQ(FieldConfirmed, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MatchHistory {
	return predicate.MatchHistory(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTenant applies the HasEdge predicate on the "tenant" edge.
func HasTenant() predicate.MatchHistory {
	return predicate.MatchHistory(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTenantWith applies the HasEdge predicate on the "tenant" edge with a given conditions (other predicates).
func HasTenantWith(preds ...predicate.Tenant) predicate.MatchHistory {
	return predicate.MatchHistory(func(s *sql.Selector) {
		step := newTenantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProduct applies the HasEdge predicate on the "product" edge.
func HasProduct() predicate.MatchHistory {
	return predicate.MatchHistory(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProductTable, ProductColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProductWith applies the HasEdge predicate on the "product" edge with a given conditions (other predicates).
func HasProductWith(preds ...predicate.Product) predicate.MatchHistory {
	return predicate.MatchHistory(func(s *sql.Selector) {
		step := newProductStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MatchHistory) predicate.MatchHistory {
	return predicate.MatchHistory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MatchHistory) predicate.MatchHistory {
	return predicate.MatchHistory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MatchHistory) predicate.MatchHistory {
	return predicate.MatchHistory(sql.NotPredicates(p))
}
