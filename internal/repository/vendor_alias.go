package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mbalogun/invoice-pipeline/gen/ent"
	"github.com/mbalogun/invoice-pipeline/gen/ent/vendoralias"
	"github.com/mbalogun/invoice-pipeline/internal/entity"
)

// VendorAliasRepository serves the alias tier of the match cascade.
type VendorAliasRepository interface {
	ForVendorSKU(ctx context.Context, tenantID, vendorID uuid.UUID, vendorSKU string) ([]entity.VendorAlias, error)
	IncrementUsage(ctx context.Context, aliasID uuid.UUID) error
}

type vendorAliasRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewVendorAliasRepository(entc *ent.Client, log *slog.Logger) VendorAliasRepository {
	return &vendorAliasRepo{ent: entc, log: log}
}

func (r *vendorAliasRepo) ForVendorSKU(ctx context.Context, tenantID, vendorID uuid.UUID, vendorSKU string) ([]entity.VendorAlias, error) {
	rows, err := r.ent.VendorAlias.Query().
		Where(
			vendoralias.TenantID(tenantID),
			vendoralias.VendorID(vendorID),
			vendoralias.VendorSku(vendorSKU),
		).
		Order(
			ent.Asc(vendoralias.FieldPriority),
			ent.Desc(vendoralias.FieldUsageCount),
		).
		All(ctx)
	if err != nil {
		r.log.Error("vendor alias query failed", "vendor_sku", vendorSKU, "err", err)
		return nil, err
	}

	out := make([]entity.VendorAlias, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.VendorAlias{
			ID:         row.ID,
			TenantID:   row.TenantID,
			VendorID:   row.VendorID,
			VendorSKU:  row.VendorSku,
			ProductID:  row.ProductID,
			Priority:   row.Priority,
			UsageCount: row.UsageCount,
			CreatedAt:  row.CreatedAt,
		})
	}
	return out, nil
}

func (r *vendorAliasRepo) IncrementUsage(ctx context.Context, aliasID uuid.UUID) error {
	err := r.ent.VendorAlias.
		UpdateOneID(aliasID).
		AddUsageCount(1).
		Exec(ctx)
	if err != nil {
		r.log.Error("alias usage increment failed", "alias_id", aliasID, "err", err)
		return err
	}
	return nil
}
