package common

import (
	"errors"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.Cache.MaxBytes != 1<<30 {
		t.Fatalf("cache max bytes = %d", cfg.Cache.MaxBytes)
	}
	if !cfg.Cache.PreserveOriginals {
		t.Fatal("originals not preserved by default")
	}
	if cfg.Ingest.MaxFileBytes != 50<<20 {
		t.Fatalf("ingest max file bytes = %d", cfg.Ingest.MaxFileBytes)
	}
	if cfg.OCR.Tesseract != "tesseract" || cfg.OCR.Pdftotext != "pdftotext" {
		t.Fatalf("ocr binaries = %q, %q", cfg.OCR.Tesseract, cfg.OCR.Pdftotext)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("ARTIFACT_CACHE_MAX_BYTES", "1024")
	t.Setenv("ARTIFACT_CACHE_MAX_AGE", "48h")
	t.Setenv("ARTIFACT_CACHE_PRESERVE_ORIGINALS", "false")
	t.Setenv("INGEST_WATCH_ROOTS", "/in/a, /in/b ,")
	t.Setenv("DB_MAX_CONNS", "7")

	cfg := LoadConfig()
	if cfg.Cache.MaxBytes != 1024 {
		t.Fatalf("cache max bytes = %d", cfg.Cache.MaxBytes)
	}
	if cfg.Cache.MaxAge != 48*time.Hour {
		t.Fatalf("cache max age = %v", cfg.Cache.MaxAge)
	}
	if cfg.Cache.PreserveOriginals {
		t.Fatal("preserve originals not overridden")
	}
	if len(cfg.Ingest.WatchRoots) != 2 || cfg.Ingest.WatchRoots[1] != "/in/b" {
		t.Fatalf("watch roots = %v", cfg.Ingest.WatchRoots)
	}
	if cfg.Database.MaxConns != 7 {
		t.Fatalf("db max conns = %d", cfg.Database.MaxConns)
	}
}

func TestLoadConfigIgnoresMalformedEnv(t *testing.T) {
	t.Setenv("ARTIFACT_CACHE_MAX_BYTES", "lots")
	t.Setenv("ARTIFACT_CACHE_MAX_AGE", "soon")

	cfg := LoadConfig()
	if cfg.Cache.MaxBytes != 1<<30 {
		t.Fatalf("malformed int did not fall back: %d", cfg.Cache.MaxBytes)
	}
	if cfg.Cache.MaxAge != 720*time.Hour {
		t.Fatalf("malformed duration did not fall back: %v", cfg.Cache.MaxAge)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := LoadConfig()
	cfg.Cache.MaxBytes = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	cfg = LoadConfig()
	cfg.Ingest.StorageDir = ""
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
