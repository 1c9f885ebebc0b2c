package match

import (
	"strings"
	"unicode"

	"github.com/agext/levenshtein"
)

// NormalizeSKU case-folds and strips everything non-alphanumeric, so
// "ABC-123" and "abc 123" compare equal.
func NormalizeSKU(sku string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(sku) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Similarity is 1 - edit_distance/max_len over case-folded input.
func Similarity(a, b string) float64 {
	return levenshtein.Similarity(strings.ToLower(a), strings.ToLower(b), nil)
}
