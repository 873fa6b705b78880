package jsonschema

import "github.com/jvcore/jsonschema/jsonvalue"

// evaluateNot requires instance to NOT validate against schema.Not.
func evaluateNot(schema *Schema, instance *jsonvalue.Value) (*EvaluationResult, *EvaluationError) {
	if schema.Not == nil {
		return nil, nil
	}

	result := schema.Not.evaluate(instance)
	result.SetEvaluationPath(appendToken(schema.path, "not"))
	if !result.IsValid() {
		// instance fails to match Not, so the keyword is satisfied; the
		// failing sub-result carries no violation worth reporting.
		return nil, nil
	}
	return result, NewEvaluationError("not", "not_mismatch",
		"Value must not match the not schema", nil)
}
