package jsonschema

import "github.com/jvcore/jsonschema/jsonvalue"

func evaluateMinItems(schema *Schema, instance *jsonvalue.Value) *EvaluationError {
	if !schema.HasMinItems {
		return nil
	}
	n := 0
	for range instance.Elements() {
		n++
	}
	if n < schema.MinItems {
		return NewEvaluationError("minItems", "min_items_mismatch",
			"Array must have at least {min_items} items, got {length}",
			map[string]any{"min_items": schema.MinItems, "length": n})
	}
	return nil
}
