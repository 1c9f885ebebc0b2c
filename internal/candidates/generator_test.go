package candidates

import (
	"testing"

	"github.com/google/uuid"

	"github.com/mbalogun/invoice-pipeline/internal/artifact"
	"github.com/mbalogun/invoice-pipeline/internal/lexicon"
)

const testLexicon = `{
  "fields": {
    "total": {
      "synonyms": ["total", "amount due"],
      "vendor_synonyms": {"acme": ["grand"]}
    },
    "invoice_number": {
      "synonyms": ["invoice no"],
      "pattern": "^INV-\\d+$"
    },
    "invoice_date": {
      "synonyms": ["date"]
    }
  },
  "zone_priors": {
    "totals": ["total"]
  }
}`

func testGenerator(t *testing.T, doc string) *Generator {
	t.Helper()
	lex, err := lexicon.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse lexicon: %v", err)
	}
	return NewGenerator(lex, nil)
}

func word(text string, x, y int) artifact.Word {
	return artifact.Word{
		Text:       text,
		Box:        artifact.BoundingBox{X: x, Y: y, Width: 10 * len(text), Height: 12},
		Confidence: 0.95,
	}
}

func ocrWith(words ...artifact.Word) artifact.OCR {
	return artifact.OCR{ID: uuid.New(), ZoneID: uuid.New(), Words: words, AvgConfidence: 0.9}
}

func TestGenerateLabelProximitySameLine(t *testing.T) {
	g := testGenerator(t, testLexicon)

	ocr := ocrWith(
		word("Total:", 10, 100),
		word("$1,234.50", 120, 102),
	)
	got := g.Generate([]artifact.OCR{ocr}, "totals", "")

	cands := got["total"]
	if len(cands) == 0 {
		t.Fatal("no candidates for total")
	}
	top := cands[0]
	if top.Normalized != "1234.50" {
		t.Fatalf("normalized = %q, want 1234.50", top.Normalized)
	}
	if top.Raw != "$1,234.50" {
		t.Fatalf("raw = %q", top.Raw)
	}
	if top.Score != 100 {
		t.Fatalf("score = %d, want 100 for an exact label", top.Score)
	}
	if len(top.Evidence) != 1 || top.Evidence[0].Kind != EvidenceLabelProximity {
		t.Fatalf("evidence = %+v", top.Evidence)
	}
	if top.Evidence[0].SourceArtifactID != ocr.ID {
		t.Fatal("evidence does not cite the source artifact")
	}
}

func TestGenerateValueFallsBackToLineBelow(t *testing.T) {
	g := testGenerator(t, testLexicon)

	// nothing right of the label on its line; value sits on the next line
	ocr := ocrWith(
		word("Date", 10, 100),
		word("01/15/2026", 10, 140),
	)
	got := g.Generate([]artifact.OCR{ocr}, "", "")

	cands := got["invoice_date"]
	if len(cands) == 0 {
		t.Fatal("no candidates for invoice_date")
	}
	if cands[0].Normalized != "2026-01-15" {
		t.Fatalf("normalized = %q, want 2026-01-15", cands[0].Normalized)
	}
}

func TestGenerateDeduplicatesByNormalizedValue(t *testing.T) {
	g := testGenerator(t, testLexicon)

	// "Invoice" scores 0.7 against "invoice no", so the same value arrives
	// via both label proximity (70) and the format pattern (75)
	ocr := ocrWith(
		word("Invoice", 10, 100),
		word("INV-7842", 100, 100),
	)
	got := g.Generate([]artifact.OCR{ocr}, "", "")

	var invCands []FieldCandidate
	for _, c := range got["invoice_number"] {
		if c.Normalized == "INV-7842" {
			invCands = append(invCands, c)
		}
	}
	if len(invCands) != 1 {
		t.Fatalf("value listed %d times, want 1", len(invCands))
	}
	if invCands[0].Score != 75 || invCands[0].Evidence[0].Kind != EvidenceFormatPattern {
		t.Fatalf("kept candidate = %+v, want the higher-scored pattern hit", invCands[0])
	}
}

func TestGenerateRankingAndCap(t *testing.T) {
	g := testGenerator(t, `{
	  "fields": {"total": {"synonyms": ["total"]}},
	  "max_per_field": 2
	}`)

	// three artifacts, three distinct zone-prior fallbacks
	ocrs := []artifact.OCR{
		ocrWith(word("alpha", 0, 0)),
		ocrWith(word("beta", 0, 0)),
		ocrWith(word("gamma", 0, 0)),
	}
	got := g.Generate(ocrs, "", "")

	cands := got["total"]
	if len(cands) != 2 {
		t.Fatalf("got %d candidates, want cap of 2", len(cands))
	}
	for i := 1; i < len(cands); i++ {
		if cands[i].Score > cands[i-1].Score {
			t.Fatalf("candidates not sorted: %+v", cands)
		}
	}
}

func TestGenerateZonePriorFallback(t *testing.T) {
	g := testGenerator(t, testLexicon)

	// no labels, no pattern matches: the first word still surfaces
	ocr := ocrWith(word("149.99", 10, 10), word("misc", 80, 10))
	got := g.Generate([]artifact.OCR{ocr}, "totals", "")

	cands := got["total"]
	if len(cands) == 0 {
		t.Fatal("zone prior produced nothing")
	}
	if cands[0].Normalized != "149.99" {
		t.Fatalf("normalized = %q", cands[0].Normalized)
	}
	if cands[0].Evidence[0].Kind != EvidenceZonePrior {
		t.Fatalf("evidence = %+v", cands[0].Evidence)
	}
	if cands[0].Score != lexicon.DefaultZonePriorScore {
		t.Fatalf("score = %d, want %d", cands[0].Score, lexicon.DefaultZonePriorScore)
	}
}

func TestGenerateZonePriorsNarrowFields(t *testing.T) {
	g := testGenerator(t, testLexicon)

	ocr := ocrWith(word("anything", 0, 0))
	got := g.Generate([]artifact.OCR{ocr}, "totals", "")

	if _, ok := got["invoice_number"]; ok {
		t.Fatal("zone prior table should exclude invoice_number from totals")
	}
	if _, ok := got["total"]; !ok {
		t.Fatal("total missing from totals zone")
	}
}

func TestGenerateVendorSynonymOverride(t *testing.T) {
	g := testGenerator(t, testLexicon)

	ocr := ocrWith(
		word("Grand", 10, 100),
		word("99.00", 80, 100),
	)
	// acme labels its total "grand"; the generic synonyms never match it
	gotAcme := g.Generate([]artifact.OCR{ocr}, "totals", "acme")
	gotOther := g.Generate([]artifact.OCR{ocr}, "totals", "")

	scoreOf := func(m map[string][]FieldCandidate) int {
		for _, c := range m["total"] {
			if c.Evidence[0].Kind == EvidenceLabelProximity {
				return c.Score
			}
		}
		return 0
	}
	if scoreOf(gotAcme) <= scoreOf(gotOther) {
		t.Fatalf("vendor override did not improve label score: acme=%d generic=%d",
			scoreOf(gotAcme), scoreOf(gotOther))
	}
}

func TestGenerateEmptyOCR(t *testing.T) {
	g := testGenerator(t, testLexicon)
	got := g.Generate(nil, "", "")
	for field, cands := range got {
		if len(cands) != 0 {
			t.Fatalf("field %s has candidates with no input: %+v", field, cands)
		}
	}
}
