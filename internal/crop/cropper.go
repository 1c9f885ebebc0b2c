// Package crop turns detected page regions into zone artifacts with
// bidirectional coordinate mappings back to the source image.
package crop

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/mbalogun/invoice-pipeline/internal/artifact"
)

// Typed cropper failures. Invalid detector boxes are not errors: they are
// dropped so one bad detection never aborts the pipeline.
var (
	ErrCrop = errors.New("crop failed")
	ErrSave = errors.New("failed to save zone image")
)

// DefaultPadding is the pixel margin added around detector boxes.
const DefaultPadding = 5

// DetectedZone is a region reported by an external zone detector.
type DetectedZone struct {
	Type       string
	Box        artifact.BoundingBox
	Confidence float64
}

// Config controls the cropper.
type Config struct {
	Padding int    // 0 -> DefaultPadding; negative -> no padding
	OutDir  string // cropped zone images land here
}

// Cropper crops detected zones out of page variant images. The Masker is
// an optional injected capability; nil disables redaction handling.
type Cropper struct {
	cfg    Config
	masker Masker
	logger *slog.Logger
}

func NewCropper(cfg Config, masker Masker, logger *slog.Logger) *Cropper {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Padding == 0 {
		cfg.Padding = DefaultPadding
	}
	if cfg.Padding < 0 {
		cfg.Padding = 0
	}
	return &Cropper{cfg: cfg, masker: masker, logger: logger}
}

// Crop cuts every valid zone out of img. Out-of-bounds or non-positive
// boxes are silently dropped. The persisted bbox is the padded region
// clamped to image bounds, so downstream coordinate math stays
// self-consistent with the saved crop.
func (c *Cropper) Crop(variantID uuid.UUID, img image.Image, zones []DetectedZone, redactions []artifact.BoundingBox) ([]artifact.Zone, []Mapping, error) {
	bounds := img.Bounds()
	imgW, imgH := bounds.Dx(), bounds.Dy()

	if err := os.MkdirAll(c.cfg.OutDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("%w: create out dir: %v", ErrSave, err)
	}

	var out []artifact.Zone
	var mappings []Mapping
	for _, z := range zones {
		if !boxInBounds(z.Box, imgW, imgH) {
			c.logger.Debug("dropping invalid zone box",
				"zone_type", z.Type,
				"x", z.Box.X, "y", z.Box.Y,
				"width", z.Box.Width, "height", z.Box.Height,
			)
			continue
		}

		region := clampWithPadding(z.Box, c.cfg.Padding, imgW, imgH)
		rect := image.Rect(region.X, region.Y, region.X+region.Width, region.Y+region.Height)
		cropped := imaging.Crop(img, rect)

		dest := filepath.Join(c.cfg.OutDir, fmt.Sprintf("%s_%s.png", z.Type, uuid.NewString()))
		if err := imaging.Save(cropped, dest); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrSave, err)
		}

		za := artifact.Zone{
			ID:         uuid.New(),
			VariantID:  variantID,
			ZoneType:   z.Type,
			Box:        region,
			Confidence: z.Confidence,
			ImagePath:  dest,
		}
		if c.masker != nil && len(redactions) > 0 {
			applied := c.masker.Apply(region, redactions)
			za.Redactions = applied
			c.logger.Debug("applied redaction masks", "zone_type", z.Type, "count", len(applied))
		}

		out = append(out, za)
		mappings = append(mappings, Mapping{ZoneID: za.ID, Region: region})
	}
	return out, mappings, nil
}

// boxInBounds rejects non-positive and out-of-bounds detector boxes.
func boxInBounds(b artifact.BoundingBox, imgW, imgH int) bool {
	if b.Width <= 0 || b.Height <= 0 {
		return false
	}
	if b.X < 0 || b.Y < 0 {
		return false
	}
	return b.X+b.Width <= imgW && b.Y+b.Height <= imgH
}

// clampWithPadding grows the box by padding on each side, clamped so the
// region never leaves the image.
func clampWithPadding(b artifact.BoundingBox, padding, imgW, imgH int) artifact.BoundingBox {
	x0 := b.X - padding
	if x0 < 0 {
		x0 = 0
	}
	y0 := b.Y - padding
	if y0 < 0 {
		y0 = 0
	}
	x1 := b.X + b.Width + padding
	if x1 > imgW {
		x1 = imgW
	}
	y1 := b.Y + b.Height + padding
	if y1 > imgH {
		y1 = imgH
	}
	return artifact.BoundingBox{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
