package entity

import (
	"time"

	"github.com/google/uuid"
)

// VendorAlias maps a vendor's SKU directly to a catalog product.
type VendorAlias struct {
	ID         uuid.UUID `json:"id"`
	TenantID   uuid.UUID `json:"tenant_id"`
	VendorID   uuid.UUID `json:"vendor_id"`
	VendorSKU  string    `json:"vendor_sku"` // normalized form
	ProductID  uuid.UUID `json:"product_id"`
	Priority   int       `json:"priority"`
	UsageCount int       `json:"usage_count"`
	CreatedAt  time.Time `json:"created_at"`
}
