package jsonschema

import (
	"strconv"

	"github.com/jvcore/jsonschema/jsonvalue"
)

// evaluateOneOf requires instance to validate against exactly one
// sub-schema in schema.OneOf; zero or multiple matches both fail
// (spec §8 scenario 6).
func evaluateOneOf(schema *Schema, instance *jsonvalue.Value) ([]*EvaluationResult, *EvaluationError) {
	if len(schema.OneOf) == 0 {
		return nil, nil
	}

	var results []*EvaluationResult
	matchCount := 0

	for i, sub := range schema.OneOf {
		result := sub.evaluate(instance)
		result.SetEvaluationPath(appendToken(appendToken(schema.path, "oneOf"), strconv.Itoa(i)))
		results = append(results, result)
		if result.IsValid() {
			matchCount++
		}
	}

	if matchCount == 1 {
		return results, nil
	}
	return results, NewEvaluationError("oneOf", "one_of_mismatch",
		"Value must match exactly one of the oneOf schemas, matched {count}",
		map[string]any{"count": matchCount})
}
