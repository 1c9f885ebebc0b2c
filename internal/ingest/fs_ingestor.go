package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/mbalogun/invoice-pipeline/constants"
	"github.com/mbalogun/invoice-pipeline/internal/artifact"
)

// DefaultMaxFileBytes caps ingested files at 50MB.
const DefaultMaxFileBytes int64 = 50 << 20

const hashChunkSize = 64 << 10

// Config controls the filesystem ingestor.
type Config struct {
	StorageDir   string // rendered page images land here, named by random id
	MaxFileBytes int64  // 0 -> DefaultMaxFileBytes
	Pdftotext    string // binary name or absolute path; if empty -> "pdftotext"
	DPI          int    // intended render DPI recorded on PDF pages, default 300
	AllowedExts  map[string]struct{} // lowercased sans '.'; nil -> default set
}

// FSIngestor reads documents from the local filesystem.
type FSIngestor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewFSIngestor(cfg Config, logger *slog.Logger) *FSIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxFileBytes <= 0 {
		cfg.MaxFileBytes = DefaultMaxFileBytes
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if cfg.AllowedExts == nil {
		cfg.AllowedExts = constants.AllowedExtensions
	}
	return &FSIngestor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// IngestFile turns one file into an input artifact plus ordered pages.
func (i *FSIngestor) IngestFile(ctx context.Context, path string) (Result, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Result{}, fmt.Errorf("resolve path: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		i.logger.Error("stat failed", "path", abs, "error", err)
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	if info.IsDir() {
		return Result{}, fmt.Errorf("%w: %s is a directory", ErrInvalidFile, abs)
	}
	if info.Size() > i.cfg.MaxFileBytes {
		return Result{}, &FileTooLargeError{Size: info.Size(), Max: i.cfg.MaxFileBytes}
	}

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if _, ok := i.cfg.AllowedExts[ext]; !ok || constants.MapExtToFormat(ext) == "" {
		i.logger.Error("unsupported or missing extension", "path", abs, "ext", ext)
		return Result{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	sum, err := i.hashFile(abs)
	if err != nil {
		return Result{}, err
	}

	input := artifact.Input{
		ID:          uuid.New(),
		SourcePath:  abs,
		ContentHash: sum,
		FileSize:    info.Size(),
		MimeType:    constants.MimeForExt(ext),
	}

	var pages []artifact.Page
	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		pages, err = i.pdfPages(ctx, abs, input.ID)
	case constants.IMAGE:
		pages, err = i.imagePage(abs, input.ID)
	}
	if err != nil {
		return Result{}, err
	}

	i.logger.Info("ingested document",
		"path", abs,
		"input_id", input.ID,
		"hash", sum,
		"pages", len(pages),
	)
	return Result{Input: input, Pages: pages}, nil
}

// hashFile streams the file through sha256 in fixed chunks so large
// documents never sit in memory whole.
func (i *FSIngestor) hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		i.logger.Error("open failed", "path", path, "error", err)
		return "", fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	defer func(f *os.File) {
		if err := f.Close(); err != nil {
			i.logger.Warn("close file failed", "path", path, "error", err)
		}
	}(f)

	h := sha256.New()
	buf := make([]byte, hashChunkSize)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return "", fmt.Errorf("hash file: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// pdfPages extracts per-page text via pdftotext (pages separated by \f)
// and scores each text layer. A text-extraction failure aborts the whole
// document; rasterization happens outside this stage, so ImagePath stays
// empty until a renderer fills it downstream.
func (i *FSIngestor) pdfPages(ctx context.Context, path string, inputID uuid.UUID) ([]artifact.Page, error) {
	out, errb, err := i.runner.Run(ctx, i.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		i.logger.Error("pdftotext failed", "path", path, "stderr", string(errb), "error", err)
		return nil, fmt.Errorf("%w: pdf text extraction: %v", ErrInvalidFile, err)
	}

	pageTexts := strings.Split(string(out), "\f")
	// pdftotext terminates the last page with \f as well
	if n := len(pageTexts); n > 1 && strings.TrimSpace(pageTexts[n-1]) == "" {
		pageTexts = pageTexts[:n-1]
	}

	pages := make([]artifact.Page, 0, len(pageTexts))
	for idx, text := range pageTexts {
		text = strings.TrimSpace(text)
		pages = append(pages, artifact.Page{
			ID:         uuid.New(),
			InputID:    inputID,
			PageNumber: idx + 1,
			DPI:        i.cfg.DPI,
			Score:      TextQualityScore(text),
			Text:       text,
		})
	}
	return pages, nil
}

// imagePage loads and re-saves a single-image document into the storage
// dir under a fresh random id, producing exactly one page.
func (i *FSIngestor) imagePage(path string, inputID uuid.UUID) ([]artifact.Page, error) {
	img, err := imaging.Open(path)
	if err != nil {
		i.logger.Error("image open failed", "path", path, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	if err := os.MkdirAll(i.cfg.StorageDir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	dest := filepath.Join(i.cfg.StorageDir, uuid.NewString()+".png")
	if err := imaging.Save(img, dest); err != nil {
		return nil, fmt.Errorf("save page image: %w", err)
	}

	return []artifact.Page{{
		ID:         uuid.New(),
		InputID:    inputID,
		PageNumber: 1,
		Score:      1.0,
		ImagePath:  dest,
	}}, nil
}

// IngestDirectory walks root, skips hidden entries if requested, and
// ingests each matching file. Returns per-file results + aggregate stats.
func (i *FSIngestor) IngestDirectory(ctx context.Context, root string, skipHidden bool) ([]FileResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	var results []FileResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, FileResult{Path: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && isHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := i.cfg.AllowedExts[ext]; !ok {
			return nil
		}
		stats.Matched++

		r, err := i.IngestFile(ctx, path)
		if err != nil {
			results = append(results, FileResult{Path: path, Err: err.Error()})
			stats.Failed++
			return nil
		}

		results = append(results, FileResult{
			Path:    path,
			InputID: r.Input.ID.String(),
			Pages:   len(r.Pages),
		})
		stats.Succeeded++
		return nil
	})

	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}

func isHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}
