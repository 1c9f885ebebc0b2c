package match

import (
	"context"

	"github.com/google/uuid"

	"github.com/mbalogun/invoice-pipeline/internal/entity"
)

// Catalog is the read-only product lookup the cascade depends on. Lookup
// methods return (nil, nil) for a clean miss; errors are real database
// failures and propagate out of Match.
type Catalog interface {
	GetByID(ctx context.Context, tenantID, productID uuid.UUID) (*entity.Product, error)
	GetBySKU(ctx context.Context, tenantID uuid.UUID, normalizedSKU string) (*entity.Product, error)
	GetByBarcode(ctx context.Context, tenantID uuid.UUID, barcode string) (*entity.Product, error)
	GetByAttribute(ctx context.Context, tenantID uuid.UUID, key, value string) (*entity.Product, error)
	// ActiveProducts lists the tenant's active products for fuzzy scoring.
	ActiveProducts(ctx context.Context, tenantID uuid.UUID) ([]entity.Product, error)
}

// Aliases is the per-vendor alias table.
type Aliases interface {
	// ForVendorSKU returns aliases for the normalized vendor SKU, ranked
	// by priority then usage count.
	ForVendorSKU(ctx context.Context, tenantID, vendorID uuid.UUID, vendorSKU string) ([]entity.VendorAlias, error)
	IncrementUsage(ctx context.Context, aliasID uuid.UUID) error
}

// History is the record of previously resolved lines.
type History interface {
	// LatestConfirmed returns the most recent user-confirmed match for the
	// same vendor and SKU or description, nil when there is none.
	LatestConfirmed(ctx context.Context, tenantID, vendorID uuid.UUID, vendorSKU, description string) (*entity.MatchHistory, error)
	Record(ctx context.Context, h entity.MatchHistory) error
}

// Attribute keys consulted by the attribute tier.
const (
	AttrManufacturerPart = "manufacturer_part"
	AttrVendorSKU        = "vendor_sku"
)
