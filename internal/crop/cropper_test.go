package crop

import (
	"image"
	"os"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/mbalogun/invoice-pipeline/constants"
	"github.com/mbalogun/invoice-pipeline/internal/artifact"
)

func testImage(w, h int) image.Image {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func TestCropDropsOutOfBoundsZones(t *testing.T) {
	c := NewCropper(Config{OutDir: t.TempDir()}, nil, nil)
	img := testImage(1000, 1000)

	zones := []DetectedZone{
		{Type: constants.ZoneHeader, Box: artifact.BoundingBox{X: 0, Y: 0, Width: 1000, Height: 200}, Confidence: 0.9},
		// extends past the right and bottom edges
		{Type: constants.ZoneTotals, Box: artifact.BoundingBox{X: 990, Y: 990, Width: 50, Height: 50}, Confidence: 0.8},
		// degenerate
		{Type: constants.ZoneFooter, Box: artifact.BoundingBox{X: 10, Y: 10, Width: 0, Height: 40}, Confidence: 0.8},
		{Type: constants.ZoneLogo, Box: artifact.BoundingBox{X: -5, Y: 10, Width: 40, Height: 40}, Confidence: 0.8},
	}

	out, mappings, err := c.Crop(uuid.New(), img, zones, nil)
	if err != nil {
		t.Fatalf("Crop: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d zones, want only the header", len(out))
	}
	if out[0].ZoneType != constants.ZoneHeader {
		t.Fatalf("kept zone %q", out[0].ZoneType)
	}
	if len(mappings) != 1 || mappings[0].ZoneID != out[0].ID {
		t.Fatalf("mappings = %+v", mappings)
	}
	if _, err := os.Stat(out[0].ImagePath); err != nil {
		t.Fatalf("zone image not saved: %v", err)
	}
}

func TestCropPaddingClampedToImage(t *testing.T) {
	c := NewCropper(Config{OutDir: t.TempDir(), Padding: 10}, nil, nil)
	img := testImage(100, 100)

	// box touches the top-left corner: padding has no room on those sides
	out, _, err := c.Crop(uuid.New(), img, []DetectedZone{
		{Type: constants.ZoneHeader, Box: artifact.BoundingBox{X: 0, Y: 0, Width: 50, Height: 30}},
	}, nil)
	if err != nil {
		t.Fatalf("Crop: %v", err)
	}
	got := out[0].Box
	want := artifact.BoundingBox{X: 0, Y: 0, Width: 60, Height: 40}
	if got != want {
		t.Fatalf("persisted box = %+v, want %+v", got, want)
	}

	// saved crop matches the persisted bbox
	saved, err := imaging.Open(out[0].ImagePath)
	if err != nil {
		t.Fatalf("open saved crop: %v", err)
	}
	if saved.Bounds().Dx() != want.Width || saved.Bounds().Dy() != want.Height {
		t.Fatalf("saved crop is %dx%d, want %dx%d",
			saved.Bounds().Dx(), saved.Bounds().Dy(), want.Width, want.Height)
	}
}

func TestCropNegativePaddingDisables(t *testing.T) {
	c := NewCropper(Config{OutDir: t.TempDir(), Padding: -1}, nil, nil)
	img := testImage(100, 100)

	out, _, err := c.Crop(uuid.New(), img, []DetectedZone{
		{Type: constants.ZoneTotals, Box: artifact.BoundingBox{X: 20, Y: 20, Width: 30, Height: 30}},
	}, nil)
	if err != nil {
		t.Fatalf("Crop: %v", err)
	}
	if got := out[0].Box; got != (artifact.BoundingBox{X: 20, Y: 20, Width: 30, Height: 30}) {
		t.Fatalf("box padded despite padding disabled: %+v", got)
	}
}

func TestCropAppliesRedactionMasks(t *testing.T) {
	c := NewCropper(Config{OutDir: t.TempDir()}, IntersectMasker{}, nil)
	img := testImage(200, 200)

	redactions := []artifact.BoundingBox{
		{X: 10, Y: 10, Width: 20, Height: 20},   // inside the zone
		{X: 150, Y: 150, Width: 20, Height: 20}, // outside
	}
	out, _, err := c.Crop(uuid.New(), img, []DetectedZone{
		{Type: constants.ZoneHeader, Box: artifact.BoundingBox{X: 5, Y: 5, Width: 90, Height: 90}},
	}, redactions)
	if err != nil {
		t.Fatalf("Crop: %v", err)
	}
	if len(out[0].Redactions) != 1 {
		t.Fatalf("got %d redactions, want 1: %+v", len(out[0].Redactions), out[0].Redactions)
	}
}

func TestMappingRoundTrip(t *testing.T) {
	m := Mapping{Region: artifact.BoundingBox{X: 100, Y: 50, Width: 40, Height: 30}}

	ox, oy, ok := m.ToOriginal(10, 20)
	if !ok || ox != 110 || oy != 70 {
		t.Fatalf("ToOriginal(10,20) = (%d,%d,%v)", ox, oy, ok)
	}
	zx, zy, ok := m.ToZone(ox, oy)
	if !ok || zx != 10 || zy != 20 {
		t.Fatalf("ToZone(%d,%d) = (%d,%d,%v)", ox, oy, zx, zy, ok)
	}

	if _, _, ok := m.ToOriginal(40, 0); ok {
		t.Fatal("point past zone width should not map")
	}
	if _, _, ok := m.ToZone(99, 60); ok {
		t.Fatal("point left of the region should not map")
	}
}

func TestIntersectMasker(t *testing.T) {
	zone := artifact.BoundingBox{X: 0, Y: 0, Width: 100, Height: 100}
	got := IntersectMasker{}.Apply(zone, []artifact.BoundingBox{
		{X: 90, Y: 90, Width: 40, Height: 40}, // partial overlap
		{X: 200, Y: 200, Width: 10, Height: 10},
		{X: 100, Y: 0, Width: 10, Height: 10}, // edge-adjacent, no area
	})
	if len(got) != 1 {
		t.Fatalf("got %d overlaps, want 1: %+v", len(got), got)
	}
	want := artifact.BoundingBox{X: 90, Y: 90, Width: 10, Height: 10}
	if got[0] != want {
		t.Fatalf("overlap = %+v, want %+v", got[0], want)
	}
}

func TestVariants(t *testing.T) {
	dir := t.TempDir()
	pageID := uuid.New()

	variants, err := Variants(pageID, testImage(80, 80), dir, nil)
	if err != nil {
		t.Fatalf("Variants: %v", err)
	}
	if len(variants) != 2 {
		t.Fatalf("got %d variants, want 2", len(variants))
	}

	kinds := map[string]bool{}
	for _, v := range variants {
		kinds[v.VariantKind] = true
		if v.PageID != pageID {
			t.Fatalf("variant %s not linked to page", v.VariantKind)
		}
		if v.ReadinessScore <= 0 || v.ReadinessScore > 1 {
			t.Fatalf("variant %s readiness = %v", v.VariantKind, v.ReadinessScore)
		}
		if _, err := os.Stat(v.ImagePath); err != nil {
			t.Fatalf("variant image missing: %v", err)
		}
	}
	if !kinds[constants.VariantGrayscale] || !kinds[constants.VariantContrast] {
		t.Fatalf("unexpected variant kinds: %v", kinds)
	}
}
