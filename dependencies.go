package jsonschema

import "github.com/jvcore/jsonschema/jsonvalue"

// evaluateDependencies implements Draft-04's single "dependencies"
// keyword, which the teacher splits into dependentSchemas and
// dependentRequired (a later-draft distinction); each entry here is
// either a schema dependency or a property dependency depending on
// what was compiled (compiler.go, per-key exclusive).
func evaluateDependencies(schema *Schema, instance *jsonvalue.Value) ([]*EvaluationResult, *EvaluationError) {
	if len(schema.Dependencies) == 0 {
		return nil, nil
	}
	var results []*EvaluationResult
	var violated []string
	for name, dep := range schema.Dependencies {
		if !instance.HasMember(name) {
			continue
		}
		if dep.Schema != nil {
			result := dep.Schema.evaluate(instance)
			result.SetEvaluationPath(appendToken(appendToken(schema.path, "dependencies"), name))
			results = append(results, result)
			if !result.IsValid() {
				violated = append(violated, name)
			}
			continue
		}
		for _, req := range dep.Properties {
			if !instance.HasMember(req) {
				violated = append(violated, name)
				break
			}
		}
	}
	if len(violated) == 0 {
		return results, nil
	}
	return results, NewEvaluationError("dependencies", "dependency_mismatch",
		"Dependencies for {properties} are not satisfied",
		map[string]any{"properties": violated})
}
