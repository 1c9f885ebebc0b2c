package artifact

import (
	"github.com/google/uuid"
)

// Kind discriminates the artifact variants. The set is closed: every
// consumer switches over it and treats unknown kinds as corruption.
type Kind string

const (
	KindInput   Kind = "input"
	KindPage    Kind = "page"
	KindVariant Kind = "variant"
	KindZone    Kind = "zone"
	KindOCR     Kind = "ocr"
)

// BoundingBox is a pixel-space rectangle on a page or zone image.
type BoundingBox struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Word is a single recognized token with its position and confidence.
type Word struct {
	Text       string      `json:"text"`
	Box        BoundingBox `json:"box"`
	Confidence float64     `json:"confidence"`
}

// Artifact is an immutable pipeline record. Implementations form a closed
// set; the unexported method keeps outside packages from adding variants.
type Artifact interface {
	ArtifactID() uuid.UUID
	Kind() Kind

	// canonical returns a copy of the artifact with its assigned id
	// cleared, so content hashing ignores identity.
	canonical() any
}

// Input is the root of a document's lineage: the raw file as received.
type Input struct {
	ID          uuid.UUID `json:"id"`
	SourcePath  string    `json:"source_path"`
	ContentHash string    `json:"content_hash"`
	FileSize    int64     `json:"file_size"`
	MimeType    string    `json:"mime_type"`
}

func (a Input) ArtifactID() uuid.UUID { return a.ID }
func (a Input) Kind() Kind            { return KindInput }
func (a Input) canonical() any        { a.ID = uuid.Nil; return a }

// Page is one rendered page of an input document. Pages are 1-based and
// contiguous. Text holds an extracted text layer when the source has one.
type Page struct {
	ID         uuid.UUID `json:"id"`
	InputID    uuid.UUID `json:"input_id"`
	PageNumber int       `json:"page_number"`
	DPI        int       `json:"dpi"`
	Rotation   int       `json:"rotation"`
	Score      float64   `json:"score"`
	ImagePath  string    `json:"image_path,omitempty"`
	Text       string    `json:"text,omitempty"`
}

func (a Page) ArtifactID() uuid.UUID { return a.ID }
func (a Page) Kind() Kind            { return KindPage }
func (a Page) canonical() any        { a.ID = uuid.Nil; return a }

// Variant is a processed rendition of a page (grayscale, deskewed, ...).
type Variant struct {
	ID             uuid.UUID `json:"id"`
	PageID         uuid.UUID `json:"page_id"`
	VariantKind    string    `json:"variant_kind"`
	ReadinessScore float64   `json:"readiness_score"`
	ImagePath      string    `json:"image_path"`
}

func (a Variant) ArtifactID() uuid.UUID { return a.ID }
func (a Variant) Kind() Kind            { return KindVariant }
func (a Variant) canonical() any        { a.ID = uuid.Nil; return a }

// Zone is a cropped region of a page variant. Box is the region actually
// persisted after padding and clamping, not the raw detector box.
type Zone struct {
	ID         uuid.UUID     `json:"id"`
	VariantID  uuid.UUID     `json:"variant_id"`
	ZoneType   string        `json:"zone_type"`
	Box        BoundingBox   `json:"box"`
	Confidence float64       `json:"confidence"`
	ImagePath  string        `json:"image_path"`
	Redactions []BoundingBox `json:"redactions,omitempty"`
}

func (a Zone) ArtifactID() uuid.UUID { return a.ID }
func (a Zone) Kind() Kind            { return KindZone }
func (a Zone) canonical() any        { a.ID = uuid.Nil; return a }

// OCR is the recognized text of one zone.
type OCR struct {
	ID            uuid.UUID `json:"id"`
	ZoneID        uuid.UUID `json:"zone_id"`
	EngineProfile string    `json:"engine_profile"`
	Text          string    `json:"text"`
	Words         []Word    `json:"words"`
	AvgConfidence float64   `json:"avg_confidence"`
}

func (a OCR) ArtifactID() uuid.UUID { return a.ID }
func (a OCR) Kind() Kind            { return KindOCR }
func (a OCR) canonical() any        { a.ID = uuid.Nil; return a }

// IsOriginal reports whether the artifact is an input-stage record, the
// class the cache may be configured to never evict.
func IsOriginal(a Artifact) bool {
	return a.Kind() == KindInput
}
