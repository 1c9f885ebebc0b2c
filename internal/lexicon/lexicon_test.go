package lexicon

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const validLexicon = `{
  "fields": {
    "invoice_number": {
      "synonyms": ["invoice no", "invoice #", "inv"],
      "pattern": "[A-Z]{2,4}-?\\d{3,8}"
    },
    "total": {
      "synonyms": ["total", "amount due"],
      "vendor_synonyms": {
        "acme": ["grand total"]
      }
    },
    "invoice_date": {
      "synonyms": ["date", "invoice date"]
    }
  },
  "zone_priors": {
    "totals": ["total"],
    "header": ["invoice_number", "invoice_date"]
  },
  "max_per_field": 3
}`

func TestParseValidLexicon(t *testing.T) {
	lex, err := Parse([]byte(validLexicon))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got := lex.FieldNames(); len(got) != 3 || got[0] != "invoice_date" {
		t.Fatalf("FieldNames = %v", got)
	}

	f := lex.Fields["invoice_number"]
	if f.Regexp() == nil {
		t.Fatal("pattern not compiled")
	}
	if !f.Regexp().MatchString("INV-12345") {
		t.Fatal("compiled pattern rejects a valid invoice number")
	}

	// defaults fill unset tunables; explicit values survive
	if lex.MaxPerField != 3 {
		t.Fatalf("MaxPerField = %d, want 3", lex.MaxPerField)
	}
	if lex.MinLabelScore != DefaultMinLabelScore {
		t.Fatalf("MinLabelScore = %v, want default", lex.MinLabelScore)
	}
	if lex.LineDeltaY != DefaultLineDeltaY || lex.PatternScore != DefaultPatternScore {
		t.Fatal("tunable defaults not applied")
	}
	if len(lex.DateFormats) == 0 {
		t.Fatal("date format defaults not applied")
	}
}

func TestVendorSynonymOverride(t *testing.T) {
	lex, err := Parse([]byte(validLexicon))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	f := lex.Fields["total"]

	if got := f.SynonymsFor("acme"); len(got) != 1 || got[0] != "grand total" {
		t.Fatalf("SynonymsFor(acme) = %v", got)
	}
	if got := f.SynonymsFor("other-vendor"); len(got) != 2 {
		t.Fatalf("SynonymsFor(other) = %v, want generic synonyms", got)
	}
	if got := f.SynonymsFor(""); len(got) != 2 {
		t.Fatalf("SynonymsFor(\"\") = %v, want generic synonyms", got)
	}
}

func TestFieldsForZone(t *testing.T) {
	lex, err := Parse([]byte(validLexicon))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got := lex.FieldsForZone("totals"); len(got) != 1 || got[0] != "total" {
		t.Fatalf("FieldsForZone(totals) = %v", got)
	}
	// unknown zone falls back to every field
	if got := lex.FieldsForZone("barcode"); len(got) != 3 {
		t.Fatalf("FieldsForZone(barcode) = %v", got)
	}
	if got := lex.FieldsForZone(""); len(got) != 3 {
		t.Fatalf("FieldsForZone(\"\") = %v", got)
	}
}

func TestParseRejectsSchemaViolations(t *testing.T) {
	cases := map[string]string{
		"missing fields":    `{"zone_priors": {}}`,
		"empty fields":      `{"fields": {}}`,
		"missing synonyms":  `{"fields": {"total": {"pattern": "x"}}}`,
		"empty synonym":     `{"fields": {"total": {"synonyms": [""]}}}`,
		"unknown top key":   `{"fields": {"total": {"synonyms": ["total"]}}, "bogus": 1}`,
		"bad max_per_field": `{"fields": {"total": {"synonyms": ["total"]}}, "max_per_field": 0}`,
	}
	for name, doc := range cases {
		if _, err := Parse([]byte(doc)); !errors.Is(err, ErrLexicon) {
			t.Errorf("%s: expected ErrLexicon, got %v", name, err)
		}
	}
}

func TestParseRejectsBadPattern(t *testing.T) {
	doc := `{"fields": {"total": {"synonyms": ["total"], "pattern": "("}}}`
	if _, err := Parse([]byte(doc)); !errors.Is(err, ErrParsing) {
		t.Fatalf("expected ErrParsing, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.json")
	if err := os.WriteFile(path, []byte(validLexicon), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); !errors.Is(err, ErrLexicon) {
		t.Fatalf("expected ErrLexicon for missing file, got %v", err)
	}
}
