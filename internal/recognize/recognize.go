// Package recognize holds the text-recognition collaborator contract and
// the tesseract-backed adapter. The recognition engine itself is external;
// this package only shells out and parses results.
package recognize

import (
	"context"

	"github.com/mbalogun/invoice-pipeline/internal/artifact"
)

// Result is the recognition output for one zone image.
type Result struct {
	Text          string
	Words         []artifact.Word
	AvgConfidence float64
}

// Recognizer is the collaborator the candidate pipeline depends on.
type Recognizer interface {
	Recognize(ctx context.Context, imagePath string) (Result, error)
	// Profile identifies the engine and its settings for provenance.
	Profile() string
}
