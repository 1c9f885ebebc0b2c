package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a catalog product for data transfer between layers.
type Product struct {
	ID            uuid.UUID         `json:"id"`
	TenantID      uuid.UUID         `json:"tenant_id"`
	SKU           string            `json:"sku"`
	NormalizedSKU string            `json:"normalized_sku"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Barcode       string            `json:"barcode,omitempty"`
	Attributes    map[string]string `json:"attributes,omitempty"`
	IsActive      bool              `json:"is_active"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}
