package candidates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Normalize canonicalizes a raw value keyed on the field name: date-bearing
// fields re-emit ISO YYYY-MM-DD, money-bearing fields re-emit fixed
// 2-decimal text, everything else is trimmed.
func Normalize(field, raw string, dateFormats []string) string {
	trimmed := strings.TrimSpace(raw)
	name := strings.ToLower(field)

	switch {
	case strings.Contains(name, "date"):
		return normalizeDate(trimmed, dateFormats)
	case strings.Contains(name, "total"),
		strings.Contains(name, "price"),
		strings.Contains(name, "amount"):
		return normalizeAmount(trimmed)
	default:
		return trimmed
	}
}

// normalizeDate tries the configured formats in order and re-emits ISO on
// the first match; unparseable input passes through trimmed.
func normalizeDate(s string, formats []string) string {
	for _, layout := range formats {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}

// normalizeAmount strips currency symbols and thousands separators and
// re-emits fixed 2-decimal text; unparseable input passes through trimmed.
func normalizeAmount(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '$', '€', '£', '¥', ',', ' ':
			return -1
		}
		return r
	}, s)

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return s
	}
	return fmt.Sprintf("%.2f", v)
}
