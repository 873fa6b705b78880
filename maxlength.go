package jsonschema

import "github.com/jvcore/jsonschema/jsonvalue"

func evaluateMaxLength(schema *Schema, value []byte) *EvaluationError {
	if !schema.HasMaxLength {
		return nil
	}
	n, err := jsonvalue.CountCodepoints(value)
	if err != nil {
		return NewEvaluationError("maxLength", "invalid_utf8", "Value is not valid UTF-8", nil)
	}
	if n > schema.MaxLength {
		return NewEvaluationError("maxLength", "string_too_long",
			"Value must be at most {max_length} characters, got {length}",
			map[string]any{"max_length": schema.MaxLength, "length": n})
	}
	return nil
}
