// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mbalogun/invoice-pipeline/gen/ent/matchhistory"
	"github.com/mbalogun/invoice-pipeline/gen/ent/product"
	"github.com/mbalogun/invoice-pipeline/gen/ent/tenant"
)

// MatchHistory is the model entity for the MatchHistory schema.
type MatchHistory struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID uuid.UUID `json:"tenant_id,omitempty"`
	// VendorID holds the value of the "vendor_id" field.
	VendorID uuid.UUID `json:"vendor_id,omitempty"`
	// ProductID holds the value of the "product_id" field.
	ProductID uuid.UUID `json:"product_id,omitempty"`
	// VendorSku holds the value of the "vendor_sku" field.
	VendorSku string `json:"vendor_sku,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Method holds the value of the "method" field.
	Method string `json:"method,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// Confirmed holds the value of the "confirmed" field.
	Confirmed bool `json:"confirmed,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MatchHistoryQuery when eager-loading is set.
	Edges        MatchHistoryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MatchHistoryEdges holds the relations/edges for other nodes in the graph.
type MatchHistoryEdges struct {
	// Tenant holds the value of the tenant edge.
	Tenant *Tenant `json:"tenant,omitempty"`
	// Product holds the value of the product edge.
	Product *Product `json:"product,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// TenantOrErr returns the Tenant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MatchHistoryEdges) TenantOrErr() (*Tenant, error) {
	if e.Tenant != nil {
		return e.Tenant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: tenant.Label}
	}
	return nil, &NotLoadedError{edge: "tenant"}
}

// ProductOrErr returns the Product value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MatchHistoryEdges) ProductOrErr() (*Product, error) {
	if e.Product != nil {
		return e.Product, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: product.Label}
	}
	return nil, &NotLoadedError{edge: "product"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MatchHistory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case matchhistory.FieldConfirmed:
			values[i] = new(sql.NullBool)
		case matchhistory.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case matchhistory.FieldVendorSku, matchhistory.FieldDescription, matchhistory.FieldMethod:
			values[i] = new(sql.NullString)
		case matchhistory.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case matchhistory.FieldID, matchhistory.FieldTenantID, matchhistory.FieldVendorID, matchhistory.FieldProductID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MatchHistory fields.
func (_m *MatchHistory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case matchhistory.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case matchhistory.FieldTenantID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value != nil {
				_m.TenantID = *value
			}
		case matchhistory.FieldVendorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field vendor_id", values[i])
			} else if value != nil {
				_m.VendorID = *value
			}
		case matchhistory.FieldProductID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field product_id", values[i])
			} else if value != nil {
				_m.ProductID = *value
			}
		case matchhistory.FieldVendorSku:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vendor_sku", values[i])
			} else if value.Valid {
				_m.VendorSku = value.String
			}
		case matchhistory.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case matchhistory.FieldMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field method", values[i])
			} else if value.Valid {
				_m.Method = value.String
			}
		case matchhistory.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case matchhistory.FieldConfirmed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field confirmed", values[i])
			} else if value.Valid {
				_m.Confirmed = value.Bool
			}
		case matchhistory.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MatchHistory.
// This includes values selected through modifiers, order, etc.
func (_m *MatchHistory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTenant queries the "tenant" edge of the MatchHistory entity.
func (_m *MatchHistory) QueryTenant() *TenantQuery {
	return NewMatchHistoryClient(_m.config).QueryTenant(_m)
}

// QueryProduct queries the "product" edge of the MatchHistory entity.
func (_m *MatchHistory) QueryProduct() *ProductQuery {
	return NewMatchHistoryClient(_m.config).QueryProduct(_m)
}

// Update returns a builder for updating this MatchHistory.
// Note that you need to call MatchHistory.Unwrap() before calling this method if this MatchHistory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MatchHistory) Update() *MatchHistoryUpdateOne {
	return NewMatchHistoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MatchHistory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MatchHistory) Unwrap() *MatchHistory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MatchHistory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MatchHistory) String() string {
	var builder strings.Builder
	builder.WriteString("MatchHistory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TenantID))
	builder.WriteString(", ")
	builder.WriteString("vendor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.VendorID))
	builder.WriteString(", ")
	builder.WriteString("product_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProductID))
	builder.WriteString(", ")
	builder.WriteString("vendor_sku=")
	builder.WriteString(_m.VendorSku)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("method=")
	builder.WriteString(_m.Method)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("confirmed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confirmed))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MatchHistories is a parsable slice of MatchHistory.
type MatchHistories []*MatchHistory
