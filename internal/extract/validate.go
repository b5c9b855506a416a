package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Artifact payloads are validated against these schemas before they are
// persisted, so a malformed extractor result can never poison the artifact
// log downstream consumers read.

func rentRollSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"total_units": map[string]any{"type": "integer", "minimum": 1},
			"unit_mix": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"unit_type": map[string]any{"type": "string", "minLength": 1},
						"count":     map[string]any{"type": "integer", "minimum": 1},
						"avg_rent":  map[string]any{"type": []string{"number", "null"}},
					},
					"required": []string{"unit_type", "count"},
				},
			},
			"occupancy":      map[string]any{"type": []string{"number", "null"}, "minimum": 0.0, "maximum": 1.0},
			"method":         map[string]any{"type": "string", "enum": []string{MethodSpreadsheet, MethodOCRTable}},
			"confidence":     map[string]any{"type": []string{"number", "null"}, "minimum": 0.0, "maximum": 1.0},
			"source_file_id": map[string]any{"type": "string"},
		},
		"required": []string{"total_units", "unit_mix", "method"},
	}
}

func t12Schema() map[string]any {
	metric := map[string]any{"type": []string{"number", "null"}}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"gross_potential_rent":     metric,
			"effective_gross_income":   metric,
			"total_operating_expenses": metric,
			"net_operating_income":     metric,
			"method":                   map[string]any{"type": "string", "enum": []string{MethodSpreadsheet, MethodOCRTable}},
			"confidence":               map[string]any{"type": []string{"number", "null"}, "minimum": 0.0, "maximum": 1.0},
			"source_file_id":           map[string]any{"type": "string"},
		},
		"required": []string{"method"},
	}
}

// ValidateRentRollResult checks a rent-roll payload against its schema.
func ValidateRentRollResult(result *RentRollResult) error {
	return validateAgainstSchema(rentRollSchema(), result)
}

// ValidateT12Result checks a T12 payload against its schema.
func ValidateT12Result(result *T12Result) error {
	return validateAgainstSchema(t12Schema(), result)
}

func validateAgainstSchema(schemaMap map[string]any, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
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
		return fmt.Errorf("unmarshal payload: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("payload does not match schema: %w", err)
	}
	return nil
}
