package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/mbalogun/invoice-pipeline/internal/cache"
	"github.com/mbalogun/invoice-pipeline/internal/candidates"
	"github.com/mbalogun/invoice-pipeline/internal/common"
	"github.com/mbalogun/invoice-pipeline/internal/crop"
	"github.com/mbalogun/invoice-pipeline/internal/ingest"
	"github.com/mbalogun/invoice-pipeline/internal/lexicon"
	"github.com/mbalogun/invoice-pipeline/internal/pipeline"
	"github.com/mbalogun/invoice-pipeline/internal/recognize"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 || len(os.Args) > 3 {
		logger.Error("usage", "cmd", "pipeline-run <document-path> [vendor-id]")
		os.Exit(2)
	}
	path := os.Args[1]
	vendorID := ""
	if len(os.Args) == 3 {
		vendorID = os.Args[2]
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	lex, err := lexicon.Load(cfg.Lexicon.Path)
	if err != nil {
		logger.Error("load lexicon", "path", cfg.Lexicon.Path, "error", err)
		os.Exit(1)
	}

	artifacts, err := cache.New(cache.Config{
		Dir:               cfg.Cache.Dir,
		MaxBytes:          cfg.Cache.MaxBytes,
		MaxAge:            cfg.Cache.MaxAge,
		PreserveOriginals: cfg.Cache.PreserveOriginals,
	}, logger)
	if err != nil {
		logger.Error("open artifact cache", "dir", cfg.Cache.Dir, "error", err)
		os.Exit(1)
	}

	ingestor := ingest.NewFSIngestor(ingest.Config{
		StorageDir:   cfg.Ingest.StorageDir,
		MaxFileBytes: cfg.Ingest.MaxFileBytes,
		Pdftotext:    cfg.OCR.Pdftotext,
	}, logger)
	cropper := crop.NewCropper(crop.Config{
		Padding: cfg.Crop.Padding,
		OutDir:  cfg.Crop.OutDir,
	}, crop.IntersectMasker{}, logger)
	recognizer := recognize.NewTesseract(recognize.Config{
		Tesseract:   cfg.OCR.Tesseract,
		Lang:        cfg.OCR.TesseractLang,
		TessdataDir: cfg.OCR.TessdataDir,
		PSM:         cfg.OCR.PSM,
		OEM:         cfg.OCR.OEM,
	}, logger)
	generator := candidates.NewGenerator(lex, logger)

	p := pipeline.NewProcessor(
		logger,
		ingestor,
		artifacts,
		cropper,
		pipeline.HeuristicDetector{},
		recognizer,
		generator,
		cfg.Ingest.StorageDir,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	start := time.Now()
	summary, err := p.ProcessFile(ctx, path, vendorID)
	dur := time.Since(start)

	if err != nil {
		logger.Error("pipeline run failed",
			"path", path, "error", err, "duration_ms", dur.Milliseconds())
		os.Exit(1)
	}

	logger.Info("pipeline run OK",
		"path", path,
		"input_hash", summary.InputHash,
		"pages", summary.Pages,
		"zones", summary.Zones,
		"fields", len(summary.Fields),
		"duration_ms", dur.Milliseconds(),
	)
	for _, field := range lex.FieldNames() {
		for _, c := range summary.Fields[field] {
			logger.Info("candidate",
				"field", field,
				"value", c.Normalized,
				"score", c.Score,
			)
		}
	}

	if expired, err := artifacts.CleanupExpired(); err != nil {
		logger.Warn("cache cleanup", "error", err)
	} else if expired > 0 {
		logger.Info("cache cleanup", "expired", expired)
	}
}
