package jsonschema

// evaluatePattern runs the compiled regex over the string bytes; a
// match anywhere in the string is sufficient (not anchored).
func evaluatePattern(schema *Schema, value string) *EvaluationError {
	if schema.Pattern == "" {
		return nil
	}
	re, err := schema.compilePattern()
	if err != nil {
		return NewEvaluationError("pattern", "invalid_pattern", "Invalid regular expression pattern {pattern}",
			map[string]any{"pattern": schema.Pattern})
	}
	if !re.MatchString(value) {
		return NewEvaluationError("pattern", "pattern_mismatch", "Value does not match the required pattern {pattern}",
			map[string]any{"pattern": schema.Pattern, "value": value})
	}
	return nil
}
