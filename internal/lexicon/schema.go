package lexicon

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// buildLexiconJSONSchema returns the lexicon's JSON-Schema (draft 2020-12
// subset) as a generic map, used to validate files before decoding.
func buildLexiconJSONSchema() map[string]any {
	synonymList := map[string]any{
		"type":     "array",
		"items":    map[string]any{"type": "string", "minLength": 1},
		"minItems": 1,
	}
	fieldProps := map[string]any{
		"synonyms": synonymList,
		"vendor_synonyms": map[string]any{
			"type":                 "object",
			"additionalProperties": synonymList,
		},
		"pattern": map[string]any{"type": "string"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"fields"},
		"properties": map[string]any{
			"fields": map[string]any{
				"type":          "object",
				"minProperties": 1,
				"additionalProperties": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []string{"synonyms"},
					"properties":           fieldProps,
				},
			},
			"zone_priors": map[string]any{
				"type": "object",
				"additionalProperties": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string", "minLength": 1},
				},
			},
			"min_label_score":  map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
			"max_per_field":    map[string]any{"type": "integer", "minimum": 1},
			"line_delta_y":     map[string]any{"type": "integer", "minimum": 1},
			"pattern_score":    map[string]any{"type": "integer", "minimum": 1, "maximum": 100},
			"zone_prior_score": map[string]any{"type": "integer", "minimum": 1, "maximum": 100},
			"date_formats": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string", "minLength": 1},
			},
		},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
