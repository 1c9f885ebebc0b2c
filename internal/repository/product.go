package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mbalogun/invoice-pipeline/gen/ent"
	"github.com/mbalogun/invoice-pipeline/gen/ent/product"
	"github.com/mbalogun/invoice-pipeline/internal/entity"
)

// ProductRepository is the catalog lookup surface consumed by the
// matching engine. Misses return (nil, nil); errors are database errors.
type ProductRepository interface {
	GetByID(ctx context.Context, tenantID, productID uuid.UUID) (*entity.Product, error)
	GetBySKU(ctx context.Context, tenantID uuid.UUID, normalizedSKU string) (*entity.Product, error)
	GetByBarcode(ctx context.Context, tenantID uuid.UUID, barcode string) (*entity.Product, error)
	GetByAttribute(ctx context.Context, tenantID uuid.UUID, key, value string) (*entity.Product, error)
	ActiveProducts(ctx context.Context, tenantID uuid.UUID) ([]entity.Product, error)
}

type productRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewProductRepository(entc *ent.Client, log *slog.Logger) ProductRepository {
	return &productRepo{ent: entc, log: log}
}

func (r *productRepo) GetByID(ctx context.Context, tenantID, productID uuid.UUID) (*entity.Product, error) {
	row, err := r.ent.Product.Query().
		Where(product.ID(productID), product.TenantID(tenantID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("product by id failed", "product_id", productID, "err", err)
		return nil, err
	}
	return toProduct(row), nil
}

func (r *productRepo) GetBySKU(ctx context.Context, tenantID uuid.UUID, normalizedSKU string) (*entity.Product, error) {
	row, err := r.ent.Product.Query().
		Where(product.TenantID(tenantID), product.NormalizedSku(normalizedSKU)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("product by sku failed", "sku", normalizedSKU, "err", err)
		return nil, err
	}
	return toProduct(row), nil
}

func (r *productRepo) GetByBarcode(ctx context.Context, tenantID uuid.UUID, barcode string) (*entity.Product, error) {
	row, err := r.ent.Product.Query().
		Where(product.TenantID(tenantID), product.Barcode(barcode)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("product by barcode failed", "err", err)
		return nil, err
	}
	return toProduct(row), nil
}

// GetByAttribute scans the tenant's active products and compares the
// attribute in Go: JSON containment predicates differ between postgres
// and sqlite, and catalogs are small enough per tenant.
func (r *productRepo) GetByAttribute(ctx context.Context, tenantID uuid.UUID, key, value string) (*entity.Product, error) {
	rows, err := r.ent.Product.Query().
		Where(product.TenantID(tenantID), product.IsActive(true)).
		All(ctx)
	if err != nil {
		r.log.Error("product attribute scan failed", "key", key, "err", err)
		return nil, err
	}
	for _, row := range rows {
		if row.Attributes[key] == value && value != "" {
			return toProduct(row), nil
		}
	}
	return nil, nil
}

func (r *productRepo) ActiveProducts(ctx context.Context, tenantID uuid.UUID) ([]entity.Product, error) {
	rows, err := r.ent.Product.Query().
		Where(product.TenantID(tenantID), product.IsActive(true)).
		All(ctx)
	if err != nil {
		r.log.Error("active products query failed", "tenant_id", tenantID, "err", err)
		return nil, err
	}
	out := make([]entity.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toProduct(row))
	}
	return out, nil
}

func toProduct(e *ent.Product) *entity.Product {
	return &entity.Product{
		ID:            e.ID,
		TenantID:      e.TenantID,
		SKU:           e.Sku,
		NormalizedSKU: e.NormalizedSku,
		Name:          e.Name,
		Description:   e.Description,
		Barcode:       e.Barcode,
		Attributes:    e.Attributes,
		IsActive:      e.IsActive,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
