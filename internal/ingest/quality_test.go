package ingest

import (
	"math"
	"strings"
	"testing"
)

func TestTextQualityScoreEmpty(t *testing.T) {
	if got := TextQualityScore(""); got != 0.0 {
		t.Fatalf("empty text scored %v, want 0", got)
	}
}

func TestTextQualityScoreRealisticInvoiceText(t *testing.T) {
	// a dense text layer with normal whitespace, well past 500 chars
	text := strings.Repeat("INVOICE 12345 qty 2 price 10.00\n", 20)
	if len(text) <= 500 {
		t.Fatalf("fixture too short: %d", len(text))
	}
	if got := TextQualityScore(text); got < 0.8 {
		t.Fatalf("realistic text scored %v, want >= 0.8", got)
	}
}

func TestTextQualityScoreShortCleanText(t *testing.T) {
	// short, all alphanumeric, no whitespace: base + both density bumps
	got := TextQualityScore("abc123")
	if math.Abs(got-0.7) > 1e-9 {
		t.Fatalf("scored %v, want 0.7", got)
	}
}

func TestTextQualityScorePunctuationNoise(t *testing.T) {
	// garbage with no alphanumerics or whitespace earns only the base
	got := TextQualityScore(strings.Repeat("#$%@!", 10))
	if math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("scored %v, want 0.5", got)
	}
}

func TestTextQualityScoreCapped(t *testing.T) {
	text := strings.Repeat("clean invoice line with words 99 ", 30)
	if got := TextQualityScore(text); got > 1.0 {
		t.Fatalf("score %v exceeds cap", got)
	}
}
