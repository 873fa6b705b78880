package jsonschema

import "github.com/jvcore/jsonschema/jsonvalue"

func evaluateRequired(schema *Schema, instance *jsonvalue.Value) *EvaluationError {
	if len(schema.Required) == 0 {
		return nil
	}
	var missing []string
	for _, name := range schema.Required {
		if !instance.HasMember(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return NewEvaluationError("required", "missing_required_properties",
		"Required properties {properties} are missing",
		map[string]any{"properties": missing})
}
