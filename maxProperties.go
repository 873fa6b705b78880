package jsonschema

import "github.com/jvcore/jsonschema/jsonvalue"

func evaluateMaxProperties(schema *Schema, instance *jsonvalue.Value) *EvaluationError {
	if !schema.HasMaxProperties {
		return nil
	}
	n := instance.NbMembers()
	if n > schema.MaxProperties {
		return NewEvaluationError("maxProperties", "max_properties_mismatch",
			"Object must have at most {max_properties} properties, got {count}",
			map[string]any{"max_properties": schema.MaxProperties, "count": n})
	}
	return nil
}
