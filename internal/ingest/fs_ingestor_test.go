package ingest

import (
	"context"
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
)

// stubRunner replaces pdftotext in tests.
type stubRunner struct {
	stdout []byte
	stderr []byte
	err    error

	gotName string
	gotArgs []string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.gotName = name
	s.gotArgs = args
	return s.stdout, s.stderr, s.err
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func writePNG(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := imaging.Save(image.NewRGBA(image.Rect(0, 0, 40, 40)), path); err != nil {
		t.Fatalf("save %s: %v", name, err)
	}
	return path
}

func TestIngestFileUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.txt", []byte("hello"))

	ing := NewFSIngestor(Config{StorageDir: dir}, nil)
	_, err := ing.IngestFile(context.Background(), path)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestIngestFileMissing(t *testing.T) {
	ing := NewFSIngestor(Config{StorageDir: t.TempDir()}, nil)
	_, err := ing.IngestFile(context.Background(), filepath.Join(t.TempDir(), "absent.pdf"))
	if !errors.Is(err, ErrInvalidFile) {
		t.Fatalf("expected ErrInvalidFile, got %v", err)
	}
}

func TestIngestFileRejectsDirectory(t *testing.T) {
	dir := t.TempDir()
	ing := NewFSIngestor(Config{StorageDir: dir}, nil)
	_, err := ing.IngestFile(context.Background(), dir)
	if !errors.Is(err, ErrInvalidFile) {
		t.Fatalf("expected ErrInvalidFile, got %v", err)
	}
}

func TestIngestFileTooLarge(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "big.pdf", make([]byte, 128))

	ing := NewFSIngestor(Config{StorageDir: dir, MaxFileBytes: 64}, nil)
	_, err := ing.IngestFile(context.Background(), path)

	var tooLarge *FileTooLargeError
	if !errors.As(err, &tooLarge) {
		t.Fatalf("expected FileTooLargeError, got %v", err)
	}
	if tooLarge.Size != 128 || tooLarge.Max != 64 {
		t.Fatalf("FileTooLargeError = %+v", tooLarge)
	}
}

func TestIngestFilePDFPages(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "invoice.pdf", []byte("%PDF-1.4 fake"))

	stub := &stubRunner{stdout: []byte("ACME Corp\nInvoice 42\fline items\ftotals page\f")}
	ing := NewFSIngestor(Config{StorageDir: dir}, nil)
	ing.runner = stub

	res, err := ing.IngestFile(context.Background(), path)
	if err != nil {
		t.Fatalf("IngestFile: %v", err)
	}

	if stub.gotName != "pdftotext" {
		t.Fatalf("ran %q, want pdftotext", stub.gotName)
	}
	if res.Input.MimeType != "application/pdf" {
		t.Fatalf("mime = %q", res.Input.MimeType)
	}
	if res.Input.ContentHash == "" || res.Input.FileSize == 0 {
		t.Fatalf("input metadata incomplete: %+v", res.Input)
	}

	if len(res.Pages) != 3 {
		t.Fatalf("got %d pages, want 3", len(res.Pages))
	}
	for idx, p := range res.Pages {
		if p.PageNumber != idx+1 {
			t.Fatalf("page %d numbered %d", idx, p.PageNumber)
		}
		if p.InputID != res.Input.ID {
			t.Fatalf("page %d not linked to input", p.PageNumber)
		}
		if p.ImagePath != "" {
			t.Fatalf("pdf page %d has an image before rasterization", p.PageNumber)
		}
		if p.DPI != 300 {
			t.Fatalf("page %d dpi = %d, want default 300", p.PageNumber, p.DPI)
		}
	}
	if res.Pages[0].Text != "ACME Corp\nInvoice 42" {
		t.Fatalf("page 1 text = %q", res.Pages[0].Text)
	}
	if res.Pages[0].Score <= 0 {
		t.Fatalf("page 1 score = %v", res.Pages[0].Score)
	}
}

func TestIngestFilePDFPageScores(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "invoice.pdf", []byte("%PDF-1.4 fake"))

	// page 1 carries a dense text layer, page 2 is blank
	quality := strings.Repeat("INVOICE 12345 qty 2 price 10.00\n", 20)
	ing := NewFSIngestor(Config{StorageDir: dir}, nil)
	ing.runner = &stubRunner{stdout: []byte(quality + "\f\f")}

	res, err := ing.IngestFile(context.Background(), path)
	if err != nil {
		t.Fatalf("IngestFile: %v", err)
	}
	if len(res.Pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(res.Pages))
	}
	if res.Pages[0].Score < 0.8 {
		t.Fatalf("quality page scored %v, want >= 0.8", res.Pages[0].Score)
	}
	if res.Pages[1].Score != 0.0 {
		t.Fatalf("blank page scored %v, want 0", res.Pages[1].Score)
	}
}

func TestIngestFilePDFExtractionFailure(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "broken.pdf", []byte("%PDF"))

	ing := NewFSIngestor(Config{StorageDir: dir}, nil)
	ing.runner = &stubRunner{stderr: []byte("syntax error"), err: errors.New("exit status 1")}

	_, err := ing.IngestFile(context.Background(), path)
	if !errors.Is(err, ErrInvalidFile) {
		t.Fatalf("expected ErrInvalidFile, got %v", err)
	}
}

func TestIngestFileImage(t *testing.T) {
	dir := t.TempDir()
	storage := t.TempDir()
	path := writePNG(t, dir, "receipt.png")

	ing := NewFSIngestor(Config{StorageDir: storage}, nil)
	res, err := ing.IngestFile(context.Background(), path)
	if err != nil {
		t.Fatalf("IngestFile: %v", err)
	}

	if res.Input.MimeType != "image/png" {
		t.Fatalf("mime = %q", res.Input.MimeType)
	}
	if len(res.Pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(res.Pages))
	}
	p := res.Pages[0]
	if p.Score != 1.0 {
		t.Fatalf("image page score = %v, want 1.0", p.Score)
	}
	if p.ImagePath == "" {
		t.Fatal("image page has no image path")
	}
	if _, err := os.Stat(p.ImagePath); err != nil {
		t.Fatalf("page image not on disk: %v", err)
	}
	if filepath.Dir(p.ImagePath) != storage {
		t.Fatalf("page image stored at %s, want under %s", p.ImagePath, storage)
	}
}

func TestIngestDirectory(t *testing.T) {
	root := t.TempDir()
	writePNG(t, root, "a.png")
	writeFile(t, root, "skip.txt", []byte("not a document"))

	hidden := filepath.Join(root, ".staging")
	if err := os.MkdirAll(hidden, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writePNG(t, hidden, "b.png")

	ing := NewFSIngestor(Config{StorageDir: t.TempDir()}, nil)
	results, stats, err := ing.IngestDirectory(context.Background(), root, true)
	if err != nil {
		t.Fatalf("IngestDirectory: %v", err)
	}

	if stats.Matched != 1 || stats.Succeeded != 1 || stats.Failed != 0 {
		t.Fatalf("stats = %+v", stats)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Pages != 1 || results[0].InputID == "" {
		t.Fatalf("result = %+v", results[0])
	}
}

func TestIngestDirectoryEmptyRoot(t *testing.T) {
	ing := NewFSIngestor(Config{StorageDir: t.TempDir()}, nil)
	if _, _, err := ing.IngestDirectory(context.Background(), "  ", false); err == nil {
		t.Fatal("expected error for blank root")
	}
}
