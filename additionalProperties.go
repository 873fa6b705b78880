package jsonschema

import "github.com/jvcore/jsonschema/jsonvalue"

// evaluateAdditionalProperties checks members not already matched by
// properties or patternProperties against AdditionalProperties.
func evaluateAdditionalProperties(schema *Schema, instance *jsonvalue.Value, matched []string) ([]*EvaluationResult, *EvaluationError) {
	if schema.AdditionalProperties == nil {
		return nil, nil
	}
	isMatched := make(map[string]bool, len(matched))
	for _, k := range matched {
		isMatched[k] = true
	}

	var results []*EvaluationResult
	var denied []string
	for key, member := range instance.Members() {
		k := key.StringValue()
		if isMatched[k] {
			continue
		}
		switch {
		case schema.AdditionalProperties.Deny:
			denied = append(denied, k)
		case schema.AdditionalProperties.Schema != nil:
			result := schema.AdditionalProperties.Schema.evaluate(member)
			result.SetEvaluationPath(appendToken(schema.path, "additionalProperties"))
			result.SetInstanceLocation(appendToken("", k))
			results = append(results, result)
			if !result.IsValid() {
				denied = append(denied, k)
			}
		}
	}
	if len(denied) == 0 {
		return results, nil
	}
	return results, NewEvaluationError("additionalProperties", "additional_properties_mismatch",
		"Additional properties {properties} are not allowed",
		map[string]any{"properties": denied})
}
