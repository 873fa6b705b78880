package jsonschema

import (
	"strconv"

	"github.com/jvcore/jsonschema/jsonvalue"
)

// evaluateItems validates each array element against schema.Items (the
// single-schema form) or pairs element i with ItemsList[i] (the
// positional form), falling back to AdditionalItems past the end of
// the list.
func evaluateItems(schema *Schema, instance *jsonvalue.Value) ([]*EvaluationResult, *EvaluationError) {
	if schema.Items == nil && !schema.ItemsIsArray {
		return nil, nil
	}

	var results []*EvaluationResult
	failCount := 0
	i := 0
	for e := range instance.Elements() {
		var sub *Schema
		switch {
		case !schema.ItemsIsArray:
			sub = schema.Items
		case i < len(schema.ItemsList):
			sub = schema.ItemsList[i]
		default:
			sub = nil
		}

		if sub != nil {
			result := sub.evaluate(e)
			result.SetEvaluationPath(appendToken(appendToken(schema.path, "items"), strconv.Itoa(i)))
			result.SetInstanceLocation(appendToken("", strconv.Itoa(i)))
			results = append(results, result)
			if !result.IsValid() {
				failCount++
			}
		} else if schema.ItemsIsArray {
			switch {
			case schema.AdditionalItems == nil:
				// absent: allow anything past the list
			case schema.AdditionalItems.Deny:
				failCount++
			case schema.AdditionalItems.Schema != nil:
				result := schema.AdditionalItems.Schema.evaluate(e)
				result.SetEvaluationPath(appendToken(schema.path, "additionalItems"))
				result.SetInstanceLocation(appendToken("", strconv.Itoa(i)))
				results = append(results, result)
				if !result.IsValid() {
					failCount++
				}
			}
		}
		i++
	}

	if failCount == 0 {
		return results, nil
	}
	return results, NewEvaluationError("items", "items_mismatch",
		"{count} array item(s) do not match the items schema",
		map[string]any{"count": failCount})
}
