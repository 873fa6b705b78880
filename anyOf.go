package jsonschema

import (
	"strconv"

	"github.com/jvcore/jsonschema/jsonvalue"
)

// evaluateAnyOf requires instance to validate against at least one
// sub-schema in schema.AnyOf.
func evaluateAnyOf(schema *Schema, instance *jsonvalue.Value) ([]*EvaluationResult, *EvaluationError) {
	if len(schema.AnyOf) == 0 {
		return nil, nil
	}

	var results []*EvaluationResult
	matched := false

	for i, sub := range schema.AnyOf {
		result := sub.evaluate(instance)
		result.SetEvaluationPath(appendToken(appendToken(schema.path, "anyOf"), strconv.Itoa(i)))
		results = append(results, result)
		if result.IsValid() {
			matched = true
		}
	}

	if matched {
		return results, nil
	}
	return results, NewEvaluationError("anyOf", "any_of_mismatch",
		"Value does not match any of the anyOf schemas", nil)
}
