// Package candidates converts noisy recognized text into ranked,
// deduplicated field candidates using the declarative lexicon.
package candidates

import (
	"github.com/google/uuid"

	"github.com/mbalogun/invoice-pipeline/internal/artifact"
)

// Evidence strategy kinds.
const (
	EvidenceLabelProximity = "label-proximity"
	EvidenceFormatPattern  = "format-pattern"
	EvidenceZonePrior      = "zone-prior"
)

// Evidence is a weighted justification for a candidate, citing the
// strategy that produced it and the artifact it came from.
type Evidence struct {
	Kind             string    `json:"kind"`
	Weight           float64   `json:"weight"`
	SourceArtifactID uuid.UUID `json:"source_artifact_id"`
}

// FieldCandidate is a transient ranked value for one field. Candidates
// are handed straight to the decision stage and never cached.
type FieldCandidate struct {
	Field      string               `json:"field"`
	Raw        string               `json:"raw"`
	Normalized string               `json:"normalized"`
	Score      int                  `json:"score"`
	Evidence   []Evidence           `json:"evidence"`
	Box        artifact.BoundingBox `json:"box"`
}
