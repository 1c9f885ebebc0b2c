package candidates

import (
	"testing"

	"github.com/mbalogun/invoice-pipeline/internal/lexicon"
)

func TestNormalizeAmounts(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"$1,234.50", "1234.50"},
		{"€ 99", "99.00"},
		{"£12.5", "12.50"},
		{"1 234,56", "123456.00"}, // comma stripped as a thousands separator
		{"42", "42.00"},
		{"N/A", "N/A"}, // unparseable passes through
	}
	for _, tc := range cases {
		if got := Normalize("total", tc.raw, nil); got != tc.want {
			t.Errorf("Normalize(total, %q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeDates(t *testing.T) {
	formats := lexicon.DefaultDateFormats
	cases := []struct {
		raw  string
		want string
	}{
		{"2026-03-09", "2026-03-09"},
		{"03/09/2026", "2026-03-09"},
		{"Jan 2, 2026", "2026-01-02"},
		{"not a date", "not a date"},
	}
	for _, tc := range cases {
		if got := Normalize("invoice_date", tc.raw, formats); got != tc.want {
			t.Errorf("Normalize(invoice_date, %q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeDateFormatOrderWins(t *testing.T) {
	// both layouts parse "02/03/2026"; the first configured one decides
	got := Normalize("invoice_date", "02/03/2026", []string{"02/01/2006", "01/02/2006"})
	if got != "2026-03-02" {
		t.Fatalf("got %q, want day-first interpretation 2026-03-02", got)
	}
}

func TestNormalizeDefaultTrims(t *testing.T) {
	if got := Normalize("vendor_name", "  ACME Corp  ", nil); got != "ACME Corp" {
		t.Fatalf("got %q", got)
	}
}
