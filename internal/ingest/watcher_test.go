package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStartWatcherRequiresRoots(t *testing.T) {
	_, _, err := StartWatcher(context.Background(), WatchConfig{}, nil)
	if err == nil {
		t.Fatal("expected error for empty roots")
	}
}

func TestStartWatcherRejectsMissingRoot(t *testing.T) {
	cfg := WatchConfig{Roots: []string{filepath.Join(t.TempDir(), "absent")}}
	if _, _, err := StartWatcher(context.Background(), cfg, nil); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestStartWatcherInitialScan(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "existing.pdf", []byte("%PDF"))
	writeFile(t, root, "ignored.txt", []byte("x"))

	sub := filepath.Join(root, "nested")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, sub, "deep.png", []byte("png"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	files, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{root}, InitialScan: true}, nil)
	if err != nil {
		t.Fatalf("StartWatcher: %v", err)
	}

	// initial-scan paths are buffered before StartWatcher returns
	got := map[string]bool{}
	for i := 0; i < 2; i++ {
		select {
		case p := <-files:
			got[filepath.Base(p)] = true
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out after %d initial paths: %v", i, got)
		}
	}
	if !got["existing.pdf"] || !got["deep.png"] {
		t.Fatalf("initial scan emitted %v", got)
	}
	if got["ignored.txt"] {
		t.Fatal("disallowed extension emitted")
	}
}

func TestStartWatcherEmitsNewFiles(t *testing.T) {
	root := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	files, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{root}, Debounce: 10 * time.Millisecond}, nil)
	if err != nil {
		t.Fatalf("StartWatcher: %v", err)
	}

	path := writeFile(t, root, "arrived.pdf", []byte("%PDF"))

	select {
	case p := <-files:
		if p != path {
			t.Fatalf("emitted %q, want %q", p, path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("new file never emitted")
	}
}
