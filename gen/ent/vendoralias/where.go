// Code generated by ent, DO NOT EDIT.

package vendoralias

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/mbalogun/invoice-pipeline/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldLTE(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v uuid.UUID) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldEQ(FieldTenantID, v))
}

// VendorID applies equality check predicate on the "vendor_id" field. It's identical to VendorIDEQ.
func VendorID(v uuid.UUID) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldEQ(FieldVendorID, v))
}

// ProductID applies equality check predicate on the "product_id" field. It's identical to ProductIDEQ.
func ProductID(v uuid.UUID) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldEQ(FieldProductID, v))
}

// VendorSku applies equality check predicate on the "vendor_sku" field. It's identical to VendorSkuEQ.
func VendorSku(v string) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldEQ(FieldVendorSku, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldEQ(FieldPriority, v))
}

// UsageCount applies equality check predicate on the "usage_count" field. It's identical to UsageCountEQ.
func UsageCount(v int) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldEQ(FieldUsageCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldEQ(FieldCreatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v uuid.UUID) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v uuid.UUID) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...uuid.UUID) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...uuid.UUID) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldNotIn(FieldTenantID, vs...))
}

// VendorIDEQ applies the EQ predicate on the "vendor_id" field.
func VendorIDEQ(v uuid.UUID) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldEQ(FieldVendorID, v))
}

// VendorIDNEQ applies the NEQ predicate on the "vendor_id" field.
func VendorIDNEQ(v uuid.UUID) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldNEQ(FieldVendorID, v))
}

// VendorIDIn applies the In predicate on the "vendor_id" field.
func VendorIDIn(vs ...uuid.UUID) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldIn(FieldVendorID, vs...))
}

// VendorIDNotIn applies the NotIn predicate on the "vendor_id" field.
func VendorIDNotIn(vs ...uuid.UUID) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldNotIn(FieldVendorID, vs...))
}

// VendorIDGT applies the GT predicate on the "vendor_id" field.
func VendorIDGT(v uuid.UUID) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldGT(FieldVendorID, v))
}

// VendorIDGTE applies the GTE predicate on the "vendor_id" field.
func VendorIDGTE(v uuid.UUID) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldGTE(FieldVendorID, v))
}

// VendorIDLT applies the LT predicate on the "vendor_id" field.
func VendorIDLT(v uuid.UUID) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldLT(FieldVendorID, v))
}

// VendorIDLTE applies the LTE predicate on the "vendor_id" field.
func VendorIDLTE(v uuid.UUID) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldLTE(FieldVendorID, v))
}

// ProductIDEQ applies the EQ predicate on the "product_id" field.
func ProductIDEQ(v uuid.UUID) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldEQ(FieldProductID, v))
}

// ProductIDNEQ applies the NEQ predicate on the "product_id" field.
func ProductIDNEQ(v uuid.UUID) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldNEQ(FieldProductID, v))
}

// ProductIDIn applies the In predicate on the "product_id" field.
func ProductIDIn(vs ...uuid.UUID) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldIn(FieldProductID, vs...))
}

// ProductIDNotIn applies the NotIn predicate on the "product_id" field.
func ProductIDNotIn(vs ...uuid.UUID) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldNotIn(FieldProductID, vs...))
}

// VendorSkuEQ applies the EQ predicate on the "vendor_sku" field.
func VendorSkuEQ(v string) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldEQ(FieldVendorSku, v))
}

// VendorSkuNEQ applies the NEQ predicate on the "vendor_sku" field.
func VendorSkuNEQ(v string) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldNEQ(FieldVendorSku, v))
}

// VendorSkuIn applies the In predicate on the "vendor_sku" field.
func VendorSkuIn(vs ...string) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldIn(FieldVendorSku, vs...))
}

// VendorSkuNotIn applies the NotIn predicate on the "vendor_sku" field.
func VendorSkuNotIn(vs ...string) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldNotIn(FieldVendorSku, vs...))
}

// VendorSkuGT applies the GT predicate on the "vendor_sku" field.
func VendorSkuGT(v string) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldGT(FieldVendorSku, v))
}

// VendorSkuGTE applies the GTE predicate on the "vendor_sku" field.
func VendorSkuGTE(v string) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldGTE(FieldVendorSku, v))
}

// VendorSkuLT applies the LT predicate on the "vendor_sku" field.
func VendorSkuLT(v string) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldLT(FieldVendorSku, v))
}

// VendorSkuLTE applies the LTE predicate on the "vendor_sku" field.
func VendorSkuLTE(v string) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldLTE(FieldVendorSku, v))
}

// VendorSkuContains applies the Contains predicate on the "vendor_sku" field.
func VendorSkuContains(v string) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldContains(FieldVendorSku, v))
}

// VendorSkuHasPrefix applies the HasPrefix predicate on the "vendor_sku" field.
func VendorSkuHasPrefix(v string) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldHasPrefix(FieldVendorSku, v))
}

// VendorSkuHasSuffix applies the HasSuffix predicate on the "vendor_sku" field.
func VendorSkuHasSuffix(v string) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldHasSuffix(FieldVendorSku, v))
}

// VendorSkuEqualFold applies the EqualFold predicate on the "vendor_sku" field.
func VendorSkuEqualFold(v string) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldEqualFold(FieldVendorSku, v))
}

// VendorSkuContainsFold applies the ContainsFold predicate on the "vendor_sku" field.
func VendorSkuContainsFold(v string) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldContainsFold(FieldVendorSku, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldLTE(FieldPriority, v))
}

// UsageCountEQ applies the EQ predicate on the "usage_count" field.
func UsageCountEQ(v int) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldEQ(FieldUsageCount, v))
}

// UsageCountNEQ applies the NEQ predicate on the "usage_count" field.
func UsageCountNEQ(v int) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldNEQ(FieldUsageCount, v))
}

// UsageCountIn applies the In predicate on the "usage_count" field.
func UsageCountIn(vs ...int) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldIn(FieldUsageCount, vs...))
}

// UsageCountNotIn applies the NotIn predicate on the "usage_count" field.
func UsageCountNotIn(vs ...int) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldNotIn(FieldUsageCount, vs...))
}

// UsageCountGT applies the GT predicate on the "usage_count" field.
func UsageCountGT(v int) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldGT(FieldUsageCount, v))
}

// UsageCountGTE applies the GTE predicate on the "usage_count" field.
func UsageCountGTE(v int) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldGTE(FieldUsageCount, v))
}

// UsageCountLT applies the LT predicate on the "usage_count" field.
func UsageCountLT(v int) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldLT(FieldUsageCount, v))
}

// UsageCountLTE applies the LTE predicate on the "usage_count" field.
func UsageCountLTE(v int) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldLTE(FieldUsageCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.VendorAlias {
	return predicate.VendorAlias(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTenant applies the HasEdge predicate on the "tenant" edge.
func HasTenant() predicate.VendorAlias {
	return predicate.VendorAlias(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTenantWith applies the HasEdge predicate on the "tenant" edge with a given conditions (other predicates).
func HasTenantWith(preds ...predicate.Tenant) predicate.VendorAlias {
	return predicate.VendorAlias(func(s *sql.Selector) {
		step := newTenantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProduct applies the HasEdge predicate on the "product" edge.
func HasProduct() predicate.VendorAlias {
	return predicate.VendorAlias(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProductTable, ProductColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProductWith applies the HasEdge predicate on the "product" edge with a given conditions (other predicates).
func HasProductWith(preds ...predicate.Product) predicate.VendorAlias {
	return predicate.VendorAlias(func(s *sql.Selector) {
		step := newProductStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VendorAlias) predicate.VendorAlias {
	return predicate.VendorAlias(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VendorAlias) predicate.VendorAlias {
	return predicate.VendorAlias(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VendorAlias) predicate.VendorAlias {
	return predicate.VendorAlias(sql.NotPredicates(p))
}
