package jsonschema

import "github.com/jvcore/jsonschema/jsonvalue"

func evaluateMaxItems(schema *Schema, instance *jsonvalue.Value) *EvaluationError {
	if !schema.HasMaxItems {
		return nil
	}
	n := 0
	for range instance.Elements() {
		n++
	}
	if n > schema.MaxItems {
		return NewEvaluationError("maxItems", "max_items_mismatch",
			"Array must have at most {max_items} items, got {length}",
			map[string]any{"max_items": schema.MaxItems, "length": n})
	}
	return nil
}
