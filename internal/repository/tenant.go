package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mbalogun/invoice-pipeline/gen/ent"
	"github.com/mbalogun/invoice-pipeline/gen/ent/tenant"
	"github.com/mbalogun/invoice-pipeline/internal/common"
	"github.com/mbalogun/invoice-pipeline/internal/entity"
)

// TenantRepository validates tenant scoping before catalog work.
type TenantRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error)
	EnsureActive(ctx context.Context, id uuid.UUID) error
}

type tenantRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewTenantRepository(entc *ent.Client, log *slog.Logger) TenantRepository {
	return &tenantRepo{ent: entc, log: log}
}

func (r *tenantRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error) {
	row, err := r.ent.Tenant.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("tenant lookup failed", "tenant_id", id, "err", err)
		return nil, err
	}
	return &entity.Tenant{
		ID:        row.ID,
		Name:      row.Name,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func (r *tenantRepo) EnsureActive(ctx context.Context, id uuid.UUID) error {
	n, err := r.ent.Tenant.Query().
		Where(tenant.ID(id), tenant.IsActive(true)).
		Count(ctx)
	if err != nil {
		r.log.Error("tenant check failed", "tenant_id", id, "err", err)
		return err
	}
	if n == 0 {
		return common.NewAppError("TENANT_NOT_FOUND", "tenant missing or inactive", common.ErrNotFound)
	}
	return nil
}
