package candidates

import (
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/mbalogun/invoice-pipeline/internal/artifact"
	"github.com/mbalogun/invoice-pipeline/internal/lexicon"
)

// Generator pools three extraction strategies per field and ranks the
// results. It is a pure function over its inputs plus the read-only
// lexicon; no locking needed.
type Generator struct {
	lex    *lexicon.Lexicon
	logger *slog.Logger
}

func NewGenerator(lex *lexicon.Lexicon, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{lex: lex, logger: logger}
}

// Generate produces ranked candidates per field from the zone OCR output.
// zoneType narrows the field search space via the lexicon's zone priors;
// vendorID selects per-vendor synonym overrides. Both may be empty.
func (g *Generator) Generate(ocrs []artifact.OCR, zoneType, vendorID string) map[string][]FieldCandidate {
	fields := g.lex.FieldsForZone(zoneType)
	out := make(map[string][]FieldCandidate, len(fields))

	for _, field := range fields {
		def, ok := g.lex.Fields[field]
		if !ok {
			continue
		}

		var pool []FieldCandidate
		for _, ocr := range ocrs {
			pool = append(pool, g.labelProximity(field, def, ocr, vendorID)...)
			pool = append(pool, g.formatPattern(field, def, ocr)...)
			pool = append(pool, g.zonePrior(field, ocr)...)
		}

		out[field] = Rank(pool, g.lex.MaxPerField)
	}
	return out
}

// MaxPerField exposes the lexicon's per-field cap so callers merging
// candidate lists from several Generate calls can re-rank with it.
func (g *Generator) MaxPerField() int {
	return g.lex.MaxPerField
}

// labelProximity scores every word against the field's synonyms and, on a
// hit, takes the next word to the right as the value, falling back to the
// nearest word on a lower line.
func (g *Generator) labelProximity(field string, def *lexicon.Field, ocr artifact.OCR, vendorID string) []FieldCandidate {
	synonyms := def.SynonymsFor(vendorID)
	var cands []FieldCandidate

	for i, word := range ocr.Words {
		score := bestLabelScore(word.Text, synonyms)
		if score < g.lex.MinLabelScore {
			continue
		}

		value, ok := valueFor(ocr.Words, i, g.lex.LineDeltaY)
		if !ok {
			continue
		}
		cands = append(cands, FieldCandidate{
			Field:      field,
			Raw:        value.Text,
			Normalized: Normalize(field, value.Text, g.lex.DateFormats),
			Score:      int(math.Round(score * 100)),
			Evidence: []Evidence{{
				Kind:             EvidenceLabelProximity,
				Weight:           score,
				SourceArtifactID: ocr.ID,
			}},
			Box: value.Box,
		})
	}
	return cands
}

// formatPattern promotes any word matching the field's configured regex.
func (g *Generator) formatPattern(field string, def *lexicon.Field, ocr artifact.OCR) []FieldCandidate {
	re := def.Regexp()
	if re == nil {
		return nil
	}
	var cands []FieldCandidate
	for _, word := range ocr.Words {
		if !re.MatchString(word.Text) {
			continue
		}
		cands = append(cands, FieldCandidate{
			Field:      field,
			Raw:        word.Text,
			Normalized: Normalize(field, word.Text, g.lex.DateFormats),
			Score:      g.lex.PatternScore,
			Evidence: []Evidence{{
				Kind:             EvidenceFormatPattern,
				Weight:           float64(g.lex.PatternScore) / 100.0,
				SourceArtifactID: ocr.ID,
			}},
			Box: word.Box,
		})
	}
	return cands
}

// zonePrior is the low-confidence fallback: each OCR artifact's first
// word, so a field in scope is never silently empty.
func (g *Generator) zonePrior(field string, ocr artifact.OCR) []FieldCandidate {
	if len(ocr.Words) == 0 {
		return nil
	}
	first := ocr.Words[0]
	return []FieldCandidate{{
		Field:      field,
		Raw:        first.Text,
		Normalized: Normalize(field, first.Text, g.lex.DateFormats),
		Score:      g.lex.ZonePriorScore,
		Evidence: []Evidence{{
			Kind:             EvidenceZonePrior,
			Weight:           float64(g.lex.ZonePriorScore) / 100.0,
			SourceArtifactID: ocr.ID,
		}},
		Box: first.Box,
	}}
}

// bestLabelScore is the best similarity between the word and any synonym.
func bestLabelScore(word string, synonyms []string) float64 {
	w := strings.ToLower(strings.TrimRight(word, ":"))
	var best float64
	for _, syn := range synonyms {
		if s := levenshtein.Similarity(w, strings.ToLower(syn), nil); s > best {
			best = s
		}
	}
	return best
}

// valueFor picks the value word for a label at index i: the nearest word
// to the right on the same line, else the nearest word on a lower line
// (y-delta beyond lineDeltaY).
func valueFor(words []artifact.Word, i, lineDeltaY int) (artifact.Word, bool) {
	label := words[i]

	var right *artifact.Word
	for j := range words {
		if j == i {
			continue
		}
		w := &words[j]
		dy := w.Box.Y - label.Box.Y
		if dy < 0 {
			dy = -dy
		}
		if dy > lineDeltaY || w.Box.X <= label.Box.X {
			continue
		}
		if right == nil || w.Box.X < right.Box.X {
			right = w
		}
	}
	if right != nil {
		return *right, true
	}

	var below *artifact.Word
	for j := range words {
		if j == i {
			continue
		}
		w := &words[j]
		if w.Box.Y-label.Box.Y <= lineDeltaY {
			continue
		}
		if below == nil || w.Box.Y < below.Box.Y ||
			(w.Box.Y == below.Box.Y && w.Box.X < below.Box.X) {
			below = w
		}
	}
	if below != nil {
		return *below, true
	}
	return artifact.Word{}, false
}

// Rank sorts by descending score, drops later duplicates of the same
// normalized value and truncates to maxPerField.
func Rank(pool []FieldCandidate, maxPerField int) []FieldCandidate {
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Score > pool[j].Score
	})

	seen := make(map[string]struct{}, len(pool))
	out := make([]FieldCandidate, 0, maxPerField)
	for _, c := range pool {
		if _, dup := seen[c.Normalized]; dup {
			continue
		}
		seen[c.Normalized] = struct{}{}
		out = append(out, c)
		if len(out) == maxPerField {
			break
		}
	}
	return out
}
