package main

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mbalogun/invoice-pipeline/gen/ent"
	"github.com/mbalogun/invoice-pipeline/internal/common"
	"github.com/mbalogun/invoice-pipeline/internal/entity"
	"github.com/mbalogun/invoice-pipeline/internal/match"
	repo "github.com/mbalogun/invoice-pipeline/internal/repository"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) < 4 {
		logger.Error("usage", "cmd", "match-line <tenant-id> <vendor-id> <vendor-sku> [description...]")
		os.Exit(2)
	}
	tenantID, err := uuid.Parse(os.Args[1])
	if err != nil {
		logger.Error("invalid tenant id (must be UUID)", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}
	vendorID, err := uuid.Parse(os.Args[2])
	if err != nil {
		logger.Error("invalid vendor id (must be UUID)", "arg", os.Args[2], "error", err)
		os.Exit(2)
	}
	line := entity.LineItem{
		VendorSKU:   os.Args[3],
		Description: strings.Join(os.Args[4:], " "),
	}

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("DB_URL required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer func(entc *ent.Client) {
		if cerr := entc.Close(); cerr != nil {
			logger.Error("close ent client", "error", cerr)
		}
	}(entc)
	defer pool.Close()

	tenants := repo.NewTenantRepository(entc, logger)
	if err := tenants.EnsureActive(ctx, tenantID); err != nil {
		logger.Error("tenant check failed", "tenant_id", tenantID, "error", err)
		os.Exit(1)
	}

	engine := match.NewEngine(
		repo.NewProductRepository(entc, logger),
		repo.NewVendorAliasRepository(entc, logger),
		repo.NewMatchHistoryRepository(entc, logger),
		logger,
	)

	start := time.Now()
	res, err := engine.Match(ctx, line, vendorID, tenantID)
	dur := time.Since(start)

	if err != nil {
		logger.Error("match failed",
			"vendor_sku", line.VendorSKU, "error", err, "duration_ms", dur.Milliseconds())
		os.Exit(1)
	}

	decision := match.Classify(res.Confidence, match.Thresholds{AutoAccept: 0.9, Review: 0.5})
	logger.Info("match OK",
		"vendor_sku", line.VendorSKU,
		"matched_sku", res.MatchedSKU,
		"method", res.Method,
		"confidence", res.Confidence,
		"decision", decision,
		"reason", res.Reason,
		"duration_ms", dur.Milliseconds(),
	)
	for _, alt := range res.Alternatives {
		logger.Info("alternative", "sku", alt.SKU, "confidence", alt.Confidence)
	}
}
