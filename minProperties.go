package jsonschema

import "github.com/jvcore/jsonschema/jsonvalue"

func evaluateMinProperties(schema *Schema, instance *jsonvalue.Value) *EvaluationError {
	if !schema.HasMinProperties {
		return nil
	}
	n := instance.NbMembers()
	if n < schema.MinProperties {
		return NewEvaluationError("minProperties", "min_properties_mismatch",
			"Object must have at least {min_properties} properties, got {count}",
			map[string]any{"min_properties": schema.MinProperties, "count": n})
	}
	return nil
}
