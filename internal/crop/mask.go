package crop

import "github.com/mbalogun/invoice-pipeline/internal/artifact"

// Masker intersects externally supplied redaction boxes with a zone's
// persisted bbox and reports the boxes that actually overlap. Rendering
// the redaction itself happens elsewhere.
type Masker interface {
	Apply(zone artifact.BoundingBox, redactions []artifact.BoundingBox) []artifact.BoundingBox
}

// IntersectMasker is the standard Masker: it keeps the overlapping part
// of each redaction box, in original page coordinates.
type IntersectMasker struct{}

func (IntersectMasker) Apply(zone artifact.BoundingBox, redactions []artifact.BoundingBox) []artifact.BoundingBox {
	var applied []artifact.BoundingBox
	for _, r := range redactions {
		if inter, ok := intersect(zone, r); ok {
			applied = append(applied, inter)
		}
	}
	return applied
}

func intersect(a, b artifact.BoundingBox) (artifact.BoundingBox, bool) {
	x0 := max(a.X, b.X)
	y0 := max(a.Y, b.Y)
	x1 := min(a.X+a.Width, b.X+b.Width)
	y1 := min(a.Y+a.Height, b.Y+b.Height)
	if x1 <= x0 || y1 <= y0 {
		return artifact.BoundingBox{}, false
	}
	return artifact.BoundingBox{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, true
}
