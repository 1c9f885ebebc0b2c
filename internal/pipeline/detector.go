package pipeline

import (
	"context"
	"fmt"

	"github.com/disintegration/imaging"

	"github.com/mbalogun/invoice-pipeline/constants"
	"github.com/mbalogun/invoice-pipeline/internal/artifact"
	"github.com/mbalogun/invoice-pipeline/internal/crop"
)

// HeuristicDetector is the built-in fallback when no layout-analysis
// service is configured. Invoices overwhelmingly follow a vertical band
// layout, so it slices the page into header, body and totals strips with
// low confidence. A real detector should replace it in production runs.
type HeuristicDetector struct{}

func (HeuristicDetector) Detect(_ context.Context, imagePath string) ([]crop.DetectedZone, error) {
	img, err := imaging.Open(imagePath)
	if err != nil {
		return nil, fmt.Errorf("heuristic detect: %w", err)
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	return []crop.DetectedZone{
		{
			Type:       constants.ZoneHeader,
			Box:        artifact.BoundingBox{X: 0, Y: 0, Width: w, Height: h / 4},
			Confidence: 0.4,
		},
		{
			Type:       constants.ZoneLineItems,
			Box:        artifact.BoundingBox{X: 0, Y: h / 4, Width: w, Height: h / 2},
			Confidence: 0.4,
		},
		{
			Type:       constants.ZoneTotals,
			Box:        artifact.BoundingBox{X: 0, Y: (h * 3) / 4, Width: w, Height: h - (h*3)/4},
			Confidence: 0.4,
		},
	}, nil
}
