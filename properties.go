package jsonschema

import "github.com/jvcore/jsonschema/jsonvalue"

// evaluateProperties validates each named member against its schema.
// Returns the set of member keys matched, so additionalProperties can
// skip them (spec §4.6: additionalProperties only applies to members
// untouched by properties or patternProperties).
func evaluateProperties(schema *Schema, instance *jsonvalue.Value) ([]*EvaluationResult, []string, *EvaluationError) {
	if len(schema.Properties) == 0 {
		return nil, nil, nil
	}
	var results []*EvaluationResult
	var matched []string
	var failed []string
	for _, ps := range schema.Properties {
		member, ok := instance.Member(ps.Name)
		if !ok {
			continue
		}
		matched = append(matched, ps.Name)
		result := ps.Schema.evaluate(member)
		result.SetEvaluationPath(appendToken(appendToken(schema.path, "properties"), ps.Name))
		result.SetInstanceLocation(appendToken("", ps.Name))
		results = append(results, result)
		if !result.IsValid() {
			failed = append(failed, ps.Name)
		}
	}
	if len(failed) == 0 {
		return results, matched, nil
	}
	return results, matched, NewEvaluationError("properties", "properties_mismatch",
		"Properties {properties} do not match their schema",
		map[string]any{"properties": failed})
}
