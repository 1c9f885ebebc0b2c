package main

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mbalogun/invoice-pipeline/internal/artifact"
	"github.com/mbalogun/invoice-pipeline/internal/cache"
	"github.com/mbalogun/invoice-pipeline/internal/candidates"
	"github.com/mbalogun/invoice-pipeline/internal/crop"
	"github.com/mbalogun/invoice-pipeline/internal/ingest"
	"github.com/mbalogun/invoice-pipeline/internal/lexicon"
	"github.com/mbalogun/invoice-pipeline/internal/pipeline"
	"github.com/mbalogun/invoice-pipeline/internal/recognize"
)

type stubIngestor struct{}

func (stubIngestor) IngestFile(_ context.Context, path string) (ingest.Result, error) {
	return ingest.Result{
		Input: artifact.Input{ID: uuid.New(), SourcePath: path, ContentHash: "x", FileSize: 1},
	}, nil
}

func (stubIngestor) IngestDirectory(context.Context, string, bool) ([]ingest.FileResult, ingest.DirStats, error) {
	return nil, ingest.DirStats{}, nil
}

type stubRecognizer struct{}

func (stubRecognizer) Recognize(context.Context, string) (recognize.Result, error) {
	return recognize.Result{}, nil
}

func (stubRecognizer) Profile() string { return "stub/v1" }

// The event loop owns the cache: document processing and expiry sweeps
// both run on it, back to back, never from a second goroutine.
func TestRunLoopSerializesProcessingAndSweep(t *testing.T) {
	plog := slog.New(slog.NewTextHandler(io.Discard, nil))
	artifacts, err := cache.New(cache.Config{
		Dir:      t.TempDir(),
		MaxBytes: 1 << 20,
		MaxAge:   time.Nanosecond,
	}, plog)
	if err != nil {
		t.Fatalf("cache: %v", err)
	}
	lex, err := lexicon.Parse([]byte(`{"fields": {"total": {"synonyms": ["total"]}}}`))
	if err != nil {
		t.Fatalf("lexicon: %v", err)
	}
	p := pipeline.NewProcessor(
		plog,
		stubIngestor{},
		artifacts,
		crop.NewCropper(crop.Config{OutDir: t.TempDir()}, nil, plog),
		pipeline.HeuristicDetector{},
		stubRecognizer{},
		candidates.NewGenerator(lex, plog),
		t.TempDir(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	files := make(chan string)
	errs := make(chan error)
	sweep := make(chan time.Time)
	done := make(chan struct{})
	go func() {
		runLoop(ctx, zap.NewNop().Sugar(), p, artifacts, files, errs, sweep, "")
		close(done)
	}()

	// unbuffered sends: the loop has consumed each phase before the next
	files <- "/in/invoice.png"
	sweep <- time.Now()
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("event loop did not shut down")
	}
	if n := artifacts.Len(); n != 0 {
		t.Fatalf("sweep left %d artifacts in the cache", n)
	}
}
