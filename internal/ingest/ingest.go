package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/mbalogun/invoice-pipeline/internal/artifact"
)

// Typed ingest failures.
var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrInvalidFile       = errors.New("invalid file")
)

// FileTooLargeError is returned when a file exceeds the configured cap.
type FileTooLargeError struct {
	Size int64
	Max  int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("file too large: %d bytes exceeds limit of %d", e.Size, e.Max)
}

// Result is the outcome of ingesting one document: the root input artifact
// plus its ordered, 1-based pages.
type Result struct {
	Input artifact.Input
	Pages []artifact.Page
}

// DirStats summarizes a directory ingest.
type DirStats struct {
	Scanned   uint32
	Matched   uint32
	Succeeded uint32
	Failed    uint32
}

// FileResult is the per-file outcome of a directory ingest.
type FileResult struct {
	Path    string
	InputID string
	Pages   int
	Err     string
}

// Ingestor is the behavior the pipeline depends on.
type Ingestor interface {
	// IngestFile ingests a single document.
	IngestFile(ctx context.Context, path string) (Result, error)
	// IngestDirectory ingests all matching files under root.
	IngestDirectory(ctx context.Context, root string, skipHidden bool) ([]FileResult, DirStats, error)
}
