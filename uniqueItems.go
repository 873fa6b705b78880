package jsonschema

import "github.com/jvcore/jsonschema/jsonvalue"

// evaluateUniqueItems compares every pair of elements structurally via
// jsonvalue.Equal; object member order never affects equality there,
// so {"a":1,"b":2} and {"b":2,"a":1} are duplicates.
func evaluateUniqueItems(schema *Schema, instance *jsonvalue.Value) *EvaluationError {
	if !schema.UniqueItems {
		return nil
	}
	var items []*jsonvalue.Value
	for e := range instance.Elements() {
		items = append(items, e)
	}
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if jsonvalue.Equal(items[i], items[j]) {
				return NewEvaluationError("uniqueItems", "unique_items_mismatch",
					"Array items at index {first} and {second} are duplicates",
					map[string]any{"first": i, "second": j})
			}
		}
	}
	return nil
}
