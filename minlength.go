package jsonschema

import "github.com/jvcore/jsonschema/jsonvalue"

// evaluateMinLength/evaluateMaxLength count codepoints via C1, not
// bytes, per spec §4.6.
func evaluateMinLength(schema *Schema, value []byte) *EvaluationError {
	if !schema.HasMinLength {
		return nil
	}
	n, err := jsonvalue.CountCodepoints(value)
	if err != nil {
		return NewEvaluationError("minLength", "invalid_utf8", "Value is not valid UTF-8", nil)
	}
	if n < schema.MinLength {
		return NewEvaluationError("minLength", "string_too_short",
			"Value must be at least {min_length} characters, got {length}",
			map[string]any{"min_length": schema.MinLength, "length": n})
	}
	return nil
}
