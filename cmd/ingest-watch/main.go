package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/mbalogun/invoice-pipeline/constants"
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
	// Logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if len(cfg.Ingest.WatchRoots) == 0 {
		log.Fatal("INGEST_WATCH_ROOTS env var is required (comma-separated directories)")
	}

	vendorID := os.Getenv("VENDOR_ID")

	lex, err := lexicon.Load(cfg.Lexicon.Path)
	if err != nil {
		log.Fatalf("loading lexicon %s: %v", cfg.Lexicon.Path, err)
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// The internal packages log through slog; the daemon shell stays on zap.
	plog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	artifacts, err := cache.New(cache.Config{
		Dir:               cfg.Cache.Dir,
		MaxBytes:          cfg.Cache.MaxBytes,
		MaxAge:            cfg.Cache.MaxAge,
		PreserveOriginals: cfg.Cache.PreserveOriginals,
	}, plog)
	if err != nil {
		log.Fatalf("opening artifact cache: %v", err)
	}

	p := pipeline.NewProcessor(
		plog,
		ingest.NewFSIngestor(ingest.Config{
			StorageDir:   cfg.Ingest.StorageDir,
			MaxFileBytes: cfg.Ingest.MaxFileBytes,
			Pdftotext:    cfg.OCR.Pdftotext,
		}, plog),
		artifacts,
		crop.NewCropper(crop.Config{Padding: cfg.Crop.Padding, OutDir: cfg.Crop.OutDir}, crop.IntersectMasker{}, plog),
		pipeline.HeuristicDetector{},
		recognize.NewTesseract(recognize.Config{
			Tesseract:   cfg.OCR.Tesseract,
			Lang:        cfg.OCR.TesseractLang,
			TessdataDir: cfg.OCR.TessdataDir,
			PSM:         cfg.OCR.PSM,
			OEM:         cfg.OCR.OEM,
		}, plog),
		candidates.NewGenerator(lex, plog),
		cfg.Ingest.StorageDir,
	)

	files, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       cfg.Ingest.WatchRoots,
		AllowedExts: constants.AllowedExtensions,
		InitialScan: true,
		Debounce:    2 * time.Second,
	}, plog)
	if err != nil {
		log.Fatalf("starting watcher: %v", err)
	}
	log.Infow("watching for documents", "roots", cfg.Ingest.WatchRoots)

	sweep := time.NewTicker(time.Hour)
	defer sweep.Stop()

	runLoop(ctx, log, p, artifacts, files, errs, sweep.C, vendorID)
	log.Info("stopped.")
}

// runLoop is the daemon's single event loop. The cache is single-owner,
// so both document processing and expiry sweeps run here and never touch
// it from another goroutine.
func runLoop(
	ctx context.Context,
	log *zap.SugaredLogger,
	p *pipeline.Processor,
	artifacts *cache.Cache,
	files <-chan string,
	errs <-chan error,
	sweep <-chan time.Time,
	vendorID string,
) {
	for {
		select {
		case <-ctx.Done():
			log.Info("shutting down...")
			return
		case <-sweep:
			if n, err := artifacts.CleanupExpired(); err != nil {
				log.Errorw("cache cleanup", "error", err)
			} else if n > 0 {
				log.Infow("cache cleanup", "expired", n)
			}
		case werr, ok := <-errs:
			if !ok {
				continue
			}
			log.Errorw("watcher error", "error", werr)
		case path, ok := <-files:
			if !ok {
				log.Info("watcher closed")
				return
			}
			summary, err := p.ProcessFile(ctx, path, vendorID)
			if err != nil {
				log.Errorw("processing failed", "path", path, "error", err)
				continue
			}
			log.Infow("processed",
				"path", path,
				"input_hash", summary.InputHash,
				"pages", summary.Pages,
				"zones", summary.Zones,
			)
		}
	}
}
