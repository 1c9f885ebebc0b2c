// Package lexicon loads the declarative extraction configuration: field
// synonyms with vendor overrides, format patterns, zone priors and
// tunables. Changing extraction behavior means editing the lexicon file,
// not code.
package lexicon

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
)

// Typed lexicon failures.
var (
	ErrLexicon = errors.New("invalid lexicon")
	ErrParsing = errors.New("lexicon parse error")
)

// Defaults applied when the file leaves a tunable unset.
const (
	DefaultMinLabelScore = 0.6
	DefaultMaxPerField   = 5
	DefaultLineDeltaY    = 10
	DefaultPatternScore  = 75
	DefaultZonePriorScore = 60
)

// DefaultDateFormats are tried in order when normalizing date fields.
var DefaultDateFormats = []string{
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
	"1/2/2006",
	"01-02-2006",
	"02.01.2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"January 2, 2006",
}

// Field is one extractable field's configuration.
type Field struct {
	Synonyms       []string            `json:"synonyms"`
	VendorSynonyms map[string][]string `json:"vendor_synonyms,omitempty"`
	Pattern        string              `json:"pattern,omitempty"`

	re *regexp.Regexp
}

// SynonymsFor returns the vendor's override list when present, otherwise
// the generic synonyms.
func (f *Field) SynonymsFor(vendorID string) []string {
	if vendorID != "" {
		if syns, ok := f.VendorSynonyms[vendorID]; ok && len(syns) > 0 {
			return syns
		}
	}
	return f.Synonyms
}

// Regexp returns the compiled format pattern, nil when unset.
func (f *Field) Regexp() *regexp.Regexp { return f.re }

// Lexicon is the full declarative configuration.
type Lexicon struct {
	Fields        map[string]*Field   `json:"fields"`
	ZonePriors    map[string][]string `json:"zone_priors,omitempty"`
	MinLabelScore float64             `json:"min_label_score,omitempty"`
	MaxPerField   int                 `json:"max_per_field,omitempty"`
	LineDeltaY    int                 `json:"line_delta_y,omitempty"`
	PatternScore  int                 `json:"pattern_score,omitempty"`
	ZonePriorScore int                `json:"zone_prior_score,omitempty"`
	DateFormats   []string            `json:"date_formats,omitempty"`
}

// Load reads, validates and compiles a lexicon file.
func Load(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrLexicon, path, err)
	}
	return Parse(data)
}

// Parse validates raw lexicon JSON against the schema and compiles it.
func Parse(data []byte) (*Lexicon, error) {
	if err := ValidateJSONAgainstSchema(buildLexiconJSONSchema(), data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLexicon, err)
	}

	var lex Lexicon
	if err := json.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParsing, err)
	}

	if lex.MinLabelScore <= 0 {
		lex.MinLabelScore = DefaultMinLabelScore
	}
	if lex.MaxPerField <= 0 {
		lex.MaxPerField = DefaultMaxPerField
	}
	if lex.LineDeltaY <= 0 {
		lex.LineDeltaY = DefaultLineDeltaY
	}
	if lex.PatternScore <= 0 {
		lex.PatternScore = DefaultPatternScore
	}
	if lex.ZonePriorScore <= 0 {
		lex.ZonePriorScore = DefaultZonePriorScore
	}
	if len(lex.DateFormats) == 0 {
		lex.DateFormats = DefaultDateFormats
	}

	for name, f := range lex.Fields {
		if f.Pattern == "" {
			continue
		}
		re, err := regexp.Compile(f.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q pattern: %v", ErrParsing, name, err)
		}
		f.re = re
	}
	return &lex, nil
}

// FieldNames lists every configured field, sorted for determinism.
func (l *Lexicon) FieldNames() []string {
	names := make([]string, 0, len(l.Fields))
	for name := range l.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FieldsForZone narrows the search space to the fields the zone-prior
// table associates with zoneType; unknown or empty zone types fall back
// to the full field list.
func (l *Lexicon) FieldsForZone(zoneType string) []string {
	if zoneType != "" {
		if fields, ok := l.ZonePriors[zoneType]; ok && len(fields) > 0 {
			out := make([]string, len(fields))
			copy(out, fields)
			sort.Strings(out)
			return out
		}
	}
	return l.FieldNames()
}
