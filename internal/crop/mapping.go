package crop

import (
	"github.com/google/uuid"

	"github.com/mbalogun/invoice-pipeline/internal/artifact"
)

// Mapping converts between zone-local and original page coordinates for
// one cropped region. The two directions are exact inverses over the
// region; points outside it report ok=false.
type Mapping struct {
	ZoneID uuid.UUID
	Region artifact.BoundingBox
}

// ToOriginal maps a zone-local point to original page coordinates.
func (m Mapping) ToOriginal(x, y int) (int, int, bool) {
	if x < 0 || y < 0 || x >= m.Region.Width || y >= m.Region.Height {
		return 0, 0, false
	}
	return x + m.Region.X, y + m.Region.Y, true
}

// ToZone maps an original page point to zone-local coordinates.
func (m Mapping) ToZone(ox, oy int) (int, int, bool) {
	x, y := ox-m.Region.X, oy-m.Region.Y
	if x < 0 || y < 0 || x >= m.Region.Width || y >= m.Region.Height {
		return 0, 0, false
	}
	return x, y, true
}
