// Package pipeline wires the stages together: ingest a document, persist
// artifacts in the content-addressed cache, enhance and crop pages, run
// recognition and generate field candidates for the decision stage.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/mbalogun/invoice-pipeline/internal/artifact"
	"github.com/mbalogun/invoice-pipeline/internal/cache"
	"github.com/mbalogun/invoice-pipeline/internal/candidates"
	"github.com/mbalogun/invoice-pipeline/internal/crop"
	"github.com/mbalogun/invoice-pipeline/internal/ingest"
	"github.com/mbalogun/invoice-pipeline/internal/recognize"
)

// ZoneDetector is the external layout-analysis collaborator: given a page
// variant image it proposes typed regions.
type ZoneDetector interface {
	Detect(ctx context.Context, imagePath string) ([]crop.DetectedZone, error)
}

// Summary reports what one document run produced.
type Summary struct {
	InputHash  string
	PageHashes []string
	Pages      int
	Zones      int
	Fields     map[string][]candidates.FieldCandidate
}

// Processor coordinates one document end to end. The cache instance is
// owned exclusively by this processor for the duration of a call.
type Processor struct {
	Logger     *slog.Logger
	Ingestor   ingest.Ingestor
	Cache      *cache.Cache
	Cropper    *crop.Cropper
	Detector   ZoneDetector
	Recognizer recognize.Recognizer
	Generator  *candidates.Generator
	StorageDir string
}

func NewProcessor(
	logger *slog.Logger,
	ingestor ingest.Ingestor,
	c *cache.Cache,
	cropper *crop.Cropper,
	detector ZoneDetector,
	recognizer recognize.Recognizer,
	generator *candidates.Generator,
	storageDir string,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		Logger:     logger,
		Ingestor:   ingestor,
		Cache:      c,
		Cropper:    cropper,
		Detector:   detector,
		Recognizer: recognizer,
		Generator:  generator,
		StorageDir: storageDir,
	}
}

// ProcessFile runs the full pipeline for one document. Zone-level
// collaborator failures degrade to skipped zones; stage-level failures
// abort and propagate.
func (p *Processor) ProcessFile(ctx context.Context, path, vendorID string) (Summary, error) {
	res, err := p.Ingestor.IngestFile(ctx, path)
	if err != nil {
		p.Logger.Error("pipeline.ingest.failed", "path", path, "err", err)
		return Summary{}, err
	}

	inputHash, err := p.Cache.Store(res.Input)
	if err != nil {
		return Summary{}, fmt.Errorf("cache input: %w", err)
	}
	summary := Summary{
		InputHash: inputHash,
		Pages:     len(res.Pages),
		Fields:    map[string][]candidates.FieldCandidate{},
	}

	ocrsByZoneType := map[string][]artifact.OCR{}
	for _, page := range res.Pages {
		hash, err := p.Cache.Store(page)
		if err != nil {
			return Summary{}, fmt.Errorf("cache page %d: %w", page.PageNumber, err)
		}
		summary.PageHashes = append(summary.PageHashes, hash)

		if page.ImagePath == "" {
			// not rasterized yet; the renderer collaborator resumes later
			p.Logger.Info("pipeline.page.not_rasterized", "page", page.PageNumber)
			continue
		}

		zones, err := p.processPage(ctx, page, ocrsByZoneType)
		if err != nil {
			return Summary{}, err
		}
		summary.Zones += zones
	}

	for zoneType, ocrs := range ocrsByZoneType {
		for field, cands := range p.Generator.Generate(ocrs, zoneType, vendorID) {
			summary.Fields[field] = append(summary.Fields[field], cands...)
		}
	}
	// Zone priors may put the same field in scope for several zone types;
	// re-rank each merged list so it stays sorted, deduped and capped.
	for field, cands := range summary.Fields {
		summary.Fields[field] = candidates.Rank(cands, p.Generator.MaxPerField())
	}

	p.Logger.Info("pipeline.ok",
		"path", path,
		"input_hash", inputHash,
		"pages", summary.Pages,
		"zones", summary.Zones,
	)
	return summary, nil
}

func (p *Processor) processPage(ctx context.Context, page artifact.Page, ocrsByZoneType map[string][]artifact.OCR) (int, error) {
	img, err := imaging.Open(page.ImagePath)
	if err != nil {
		return 0, fmt.Errorf("open page image: %w", err)
	}

	variants, err := crop.Variants(page.ID, img, p.StorageDir, p.Logger)
	if err != nil {
		return 0, err
	}
	best := variants[0]
	for _, v := range variants {
		if _, err := p.Cache.Store(v); err != nil {
			return 0, fmt.Errorf("cache variant: %w", err)
		}
		if v.ReadinessScore > best.ReadinessScore {
			best = v
		}
	}

	detected, err := p.Detector.Detect(ctx, best.ImagePath)
	if err != nil {
		// a broken detector must not abort the document
		p.Logger.Warn("pipeline.detect.failed", "page", page.PageNumber, "err", err)
		return 0, nil
	}

	variantImg, err := imaging.Open(best.ImagePath)
	if err != nil {
		return 0, fmt.Errorf("open variant image: %w", err)
	}
	zones, _, err := p.Cropper.Crop(best.ID, variantImg, detected, nil)
	if err != nil {
		return 0, err
	}

	for _, zone := range zones {
		if _, err := p.Cache.Store(zone); err != nil {
			return 0, fmt.Errorf("cache zone: %w", err)
		}

		rec, err := p.Recognizer.Recognize(ctx, zone.ImagePath)
		if err != nil {
			p.Logger.Warn("pipeline.recognize.failed", "zone_type", zone.ZoneType, "err", err)
			continue
		}
		ocr := artifact.OCR{
			ID:            uuid.New(),
			ZoneID:        zone.ID,
			EngineProfile: p.Recognizer.Profile(),
			Text:          rec.Text,
			Words:         rec.Words,
			AvgConfidence: rec.AvgConfidence,
		}
		if _, err := p.Cache.Store(ocr); err != nil {
			return 0, fmt.Errorf("cache ocr: %w", err)
		}
		ocrsByZoneType[zone.ZoneType] = append(ocrsByZoneType[zone.ZoneType], ocr)
	}
	return len(zones), nil
}
