package artifact

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/mbalogun/invoice-pipeline/internal/common"
)

func TestContentHashIgnoresAssignedID(t *testing.T) {
	inputID := uuid.New()
	a := Page{ID: uuid.New(), InputID: inputID, PageNumber: 1, DPI: 300, Text: "total 12.00"}
	b := Page{ID: uuid.New(), InputID: inputID, PageNumber: 1, DPI: 300, Text: "total 12.00"}

	ha, err := ContentHash(a)
	if err != nil {
		t.Fatalf("ContentHash: %v", err)
	}
	hb, err := ContentHash(b)
	if err != nil {
		t.Fatalf("ContentHash: %v", err)
	}
	if ha != hb {
		t.Fatalf("hashes differ for identical content: %s vs %s", ha, hb)
	}
	if len(ha) != 64 {
		t.Fatalf("expected hex sha256, got %q", ha)
	}
}

func TestContentHashDistinguishesContent(t *testing.T) {
	a := Page{ID: uuid.New(), PageNumber: 1}
	b := Page{ID: a.ID, PageNumber: 2}

	ha, _ := ContentHash(a)
	hb, _ := ContentHash(b)
	if ha == hb {
		t.Fatal("different page numbers hashed identically")
	}
}

func TestContentHashDistinguishesKinds(t *testing.T) {
	// Two kinds whose canonical payloads could collide must still differ
	// through the envelope's kind tag.
	ha, _ := ContentHash(Input{})
	hb, _ := ContentHash(Page{})
	if ha == hb {
		t.Fatal("input and page artifacts hashed identically")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	zone := Zone{
		ID:         uuid.New(),
		VariantID:  uuid.New(),
		ZoneType:   "totals",
		Box:        BoundingBox{X: 10, Y: 20, Width: 200, Height: 60},
		Confidence: 0.92,
		ImagePath:  "/tmp/zone.png",
		Redactions: []BoundingBox{{X: 12, Y: 22, Width: 30, Height: 10}},
	}

	b, err := Encode(zone)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	dz, ok := got.(Zone)
	if !ok {
		t.Fatalf("decoded wrong type %T", got)
	}
	if dz.ID != zone.ID || dz.Box != zone.Box || dz.ZoneType != zone.ZoneType {
		t.Fatalf("round trip mismatch: %+v vs %+v", dz, zone)
	}
	if len(dz.Redactions) != 1 || dz.Redactions[0] != zone.Redactions[0] {
		t.Fatalf("redactions lost in round trip: %+v", dz.Redactions)
	}
}

func TestDecodeRejectsUnknownKind(t *testing.T) {
	_, err := Decode([]byte(`{"kind":"receipt","data":{}}`))
	if !errors.Is(err, common.ErrSerialization) {
		t.Fatalf("expected ErrSerialization, got %v", err)
	}
}

func TestIsOriginal(t *testing.T) {
	if !IsOriginal(Input{ID: uuid.New()}) {
		t.Fatal("input artifact should be original")
	}
	if IsOriginal(OCR{ID: uuid.New()}) {
		t.Fatal("ocr artifact should not be original")
	}
}
