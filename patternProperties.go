package jsonschema

import "github.com/jvcore/jsonschema/jsonvalue"

// evaluatePatternProperties validates every member whose key matches
// at least one pattern. A member matching several patterns must
// satisfy ALL of their schemas, not just one (decided in SPEC_FULL.md
// EXPANSION 5, a deliberate departure from the C ancestor, which keeps
// only the last matching pattern).
func evaluatePatternProperties(schema *Schema, instance *jsonvalue.Value) ([]*EvaluationResult, []string, *EvaluationError) {
	if len(schema.PatternProperties) == 0 {
		return nil, nil, nil
	}
	var results []*EvaluationResult
	var matched []string
	var failed []string
	for key, member := range instance.Members() {
		k := key.StringValue()
		memberMatched := false
		memberFailed := false
		for _, ps := range schema.PatternProperties {
			if !ps.Regex.MatchString(k) {
				continue
			}
			memberMatched = true
			result := ps.Schema.evaluate(member)
			result.SetEvaluationPath(appendToken(schema.path, "patternProperties"))
			result.SetInstanceLocation(appendToken("", k))
			results = append(results, result)
			if !result.IsValid() {
				memberFailed = true
			}
		}
		if memberMatched {
			matched = append(matched, k)
		}
		if memberFailed {
			failed = append(failed, k)
		}
	}
	if len(failed) == 0 {
		return results, matched, nil
	}
	return results, matched, NewEvaluationError("patternProperties", "pattern_properties_mismatch",
		"Properties {properties} do not match their pattern schema",
		map[string]any{"properties": failed})
}
