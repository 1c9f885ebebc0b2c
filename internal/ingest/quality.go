package ingest

import "unicode"

// TextQualityScore rates an extracted text layer in [0,1]. It stands in
// for recognition confidence until OCR has actually run: 0.5 base for
// non-empty text, with bumps for length, alphanumeric density and a sane
// whitespace ratio, capped at 1.0.
func TextQualityScore(text string) float64 {
	if len(text) == 0 {
		return 0.0
	}

	score := 0.5
	if len(text) > 100 {
		score += 0.1
	}
	if len(text) > 500 {
		score += 0.1
	}

	var alnum, space int
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			alnum++
		case unicode.IsSpace(r):
			space++
		}
	}
	total := float64(len([]rune(text)))
	alnumRatio := float64(alnum) / total
	spaceRatio := float64(space) / total

	if alnumRatio > 0.5 {
		score += 0.1
	}
	if alnumRatio > 0.7 {
		score += 0.1
	}
	if spaceRatio > 0.1 && spaceRatio < 0.5 {
		score += 0.1
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}
