package crop

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/mbalogun/invoice-pipeline/constants"
	"github.com/mbalogun/invoice-pipeline/internal/artifact"
)

// Readiness scores per variant kind. Grayscale renditions read best for
// recognition engines; the contrast-boosted variant is a fallback for
// faded thermal prints.
const (
	grayscaleReadiness = 0.9
	contrastReadiness  = 0.8
)

// Variants produces the standard pre-recognition renditions of a page
// image: a grayscale pass and a contrast-boosted, sharpened pass. Each is
// saved under a fresh random id in outDir.
func Variants(pageID uuid.UUID, img image.Image, outDir string, logger *slog.Logger) ([]artifact.Variant, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create out dir: %v", ErrSave, err)
	}

	gray := imaging.Grayscale(img)
	grayPath := filepath.Join(outDir, uuid.NewString()+".png")
	if err := imaging.Save(gray, grayPath); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSave, err)
	}

	contrast := imaging.AdjustContrast(gray, 30)
	contrast = imaging.Sharpen(contrast, 1.5)
	contrastPath := filepath.Join(outDir, uuid.NewString()+".png")
	if err := imaging.Save(contrast, contrastPath); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSave, err)
	}

	logger.Debug("generated page variants", "page_id", pageID)
	return []artifact.Variant{
		{
			ID:             uuid.New(),
			PageID:         pageID,
			VariantKind:    constants.VariantGrayscale,
			ReadinessScore: grayscaleReadiness,
			ImagePath:      grayPath,
		},
		{
			ID:             uuid.New(),
			PageID:         pageID,
			VariantKind:    constants.VariantContrast,
			ReadinessScore: contrastReadiness,
			ImagePath:      contrastPath,
		},
	}, nil
}
