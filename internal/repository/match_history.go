package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mbalogun/invoice-pipeline/gen/ent"
	"github.com/mbalogun/invoice-pipeline/gen/ent/matchhistory"
	"github.com/mbalogun/invoice-pipeline/gen/ent/predicate"
	"github.com/mbalogun/invoice-pipeline/internal/entity"
)

// MatchHistoryRepository serves the history tier of the match cascade and
// records resolved lines.
type MatchHistoryRepository interface {
	LatestConfirmed(ctx context.Context, tenantID, vendorID uuid.UUID, vendorSKU, description string) (*entity.MatchHistory, error)
	Record(ctx context.Context, h entity.MatchHistory) error
}

type matchHistoryRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewMatchHistoryRepository(entc *ent.Client, log *slog.Logger) MatchHistoryRepository {
	return &matchHistoryRepo{ent: entc, log: log}
}

func (r *matchHistoryRepo) LatestConfirmed(ctx context.Context, tenantID, vendorID uuid.UUID, vendorSKU, description string) (*entity.MatchHistory, error) {
	preds := []predicate.MatchHistory{}
	if vendorSKU != "" {
		preds = append(preds, matchhistory.VendorSku(vendorSKU))
	}
	if description != "" {
		preds = append(preds, matchhistory.Description(description))
	}
	if len(preds) == 0 {
		return nil, nil
	}

	row, err := r.ent.MatchHistory.Query().
		Where(
			matchhistory.TenantID(tenantID),
			matchhistory.VendorID(vendorID),
			matchhistory.Confirmed(true),
			matchhistory.Or(preds...),
		).
		Order(ent.Desc(matchhistory.FieldCreatedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("match history query failed", "vendor_sku", vendorSKU, "err", err)
		return nil, err
	}

	return &entity.MatchHistory{
		ID:          row.ID,
		TenantID:    row.TenantID,
		VendorID:    row.VendorID,
		ProductID:   row.ProductID,
		VendorSKU:   row.VendorSku,
		Description: row.Description,
		Method:      row.Method,
		Confidence:  row.Confidence,
		Confirmed:   row.Confirmed,
		CreatedAt:   row.CreatedAt,
	}, nil
}

func (r *matchHistoryRepo) Record(ctx context.Context, h entity.MatchHistory) error {
	_, err := r.ent.MatchHistory.
		Create().
		SetTenantID(h.TenantID).
		SetVendorID(h.VendorID).
		SetProductID(h.ProductID).
		SetVendorSku(h.VendorSKU).
		SetDescription(h.Description).
		SetMethod(h.Method).
		SetConfidence(h.Confidence).
		SetConfirmed(h.Confirmed).
		Save(ctx)
	if err != nil {
		r.log.Error("match history record failed", "vendor_sku", h.VendorSKU, "err", err)
		return err
	}
	r.log.Info("match history recorded",
		"tenant_id", h.TenantID,
		"vendor_id", h.VendorID,
		"method", h.Method,
		"confirmed", h.Confirmed,
	)
	return nil
}
