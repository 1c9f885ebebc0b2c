package artifact

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/mbalogun/invoice-pipeline/internal/common"
)

// envelope is the on-disk shape: a kind tag plus the full artifact record.
type envelope struct {
	Kind Kind            `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// CanonicalJSON serializes the artifact with its assigned id cleared, so
// two structurally identical artifacts always produce identical bytes.
func CanonicalJSON(a Artifact) ([]byte, error) {
	payload, err := json.Marshal(a.canonical())
	if err != nil {
		return nil, common.WrapError(err, "canonical marshal")
	}
	return json.Marshal(envelope{Kind: a.Kind(), Data: payload})
}

// ContentHash returns the hex SHA-256 of the artifact's canonical content.
func ContentHash(a Artifact) (string, error) {
	b, err := CanonicalJSON(a)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

// Encode serializes the artifact, id included, for cache storage.
func Encode(a Artifact) ([]byte, error) {
	payload, err := json.Marshal(a)
	if err != nil {
		return nil, common.WrapError(err, "encode artifact")
	}
	return json.Marshal(envelope{Kind: a.Kind(), Data: payload})
}

// Decode restores an artifact from its encoded envelope.
func Decode(b []byte) (Artifact, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, common.WrapError(err, "decode envelope")
	}
	switch env.Kind {
	case KindInput:
		var a Input
		if err := json.Unmarshal(env.Data, &a); err != nil {
			return nil, common.WrapError(err, "decode input artifact")
		}
		return a, nil
	case KindPage:
		var a Page
		if err := json.Unmarshal(env.Data, &a); err != nil {
			return nil, common.WrapError(err, "decode page artifact")
		}
		return a, nil
	case KindVariant:
		var a Variant
		if err := json.Unmarshal(env.Data, &a); err != nil {
			return nil, common.WrapError(err, "decode variant artifact")
		}
		return a, nil
	case KindZone:
		var a Zone
		if err := json.Unmarshal(env.Data, &a); err != nil {
			return nil, common.WrapError(err, "decode zone artifact")
		}
		return a, nil
	case KindOCR:
		var a OCR
		if err := json.Unmarshal(env.Data, &a); err != nil {
			return nil, common.WrapError(err, "decode ocr artifact")
		}
		return a, nil
	default:
		return nil, fmt.Errorf("unknown artifact kind %q: %w", env.Kind, common.ErrSerialization)
	}
}
