package jsonschema

import "github.com/jvcore/jsonschema/jsonvalue"

func evaluateEnum(schema *Schema, instance *jsonvalue.Value) *EvaluationError {
	if len(schema.Enum) == 0 {
		return nil
	}
	for _, allowed := range schema.Enum {
		if jsonvalue.Equal(allowed, instance) {
			return nil
		}
	}
	return NewEvaluationError("enum", "enum_mismatch", "Value does not match any allowed enum value", nil)
}
