package jsonschema

import (
	"strconv"
	"strings"

	"github.com/jvcore/jsonschema/jsonvalue"
)

// evaluateAllOf requires instance to validate against every sub-schema
// in schema.AllOf. Each branch's result is attached as a Detail so
// ToList/AllErrors can report every failing branch, not just the
// first.
func evaluateAllOf(schema *Schema, instance *jsonvalue.Value) ([]*EvaluationResult, *EvaluationError) {
	if len(schema.AllOf) == 0 {
		return nil, nil
	}

	var results []*EvaluationResult
	var failedIndexes []string

	for i, sub := range schema.AllOf {
		result := sub.evaluate(instance)
		result.SetEvaluationPath(appendToken(appendToken(schema.path, "allOf"), strconv.Itoa(i)))
		results = append(results, result)
		if !result.IsValid() {
			failedIndexes = append(failedIndexes, strconv.Itoa(i))
		}
	}

	if len(failedIndexes) == 0 {
		return results, nil
	}
	return results, NewEvaluationError("allOf", "all_of_mismatch",
		"Value does not match the allOf schema at index {indexes}",
		map[string]any{"indexes": strings.Join(failedIndexes, ", ")})
}
