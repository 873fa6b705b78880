package jsonschema

import "github.com/jvcore/jsonschema/jsonvalue"

// Validate checks instance against the schema and returns the full
// result tree. Use result.FirstError() for the single deepest failure
// or result.AllErrors()/result.ToList() to see every violation.
func (s *Schema) Validate(instance *jsonvalue.Value) *EvaluationResult {
	result := s.evaluate(instance)
	result.SetEvaluationPath(s.path)
	result.SetInstanceLocation("")
	return result
}

// evaluate runs every keyword applicable to instance's kind, in
// generic-then-kind-specific order (spec §4.6): type, enum, allOf,
// anyOf, oneOf, not apply to every instance regardless of kind; the
// remaining keywords only apply when instance is of the matching
// kind, since JSON Schema keywords that don't apply to an instance's
// kind are simply ignored rather than treated as failures.
func (s *Schema) evaluate(instance *jsonvalue.Value) *EvaluationResult {
	result := NewEvaluationResult(s)

	result.AddError(evaluateType(s, instance))
	result.AddError(evaluateEnum(s, instance))

	if details, err := evaluateAllOf(s, instance); err != nil || len(details) > 0 {
		for _, d := range details {
			result.AddDetail(d)
		}
		result.AddError(err)
	}
	if details, err := evaluateAnyOf(s, instance); err != nil {
		for _, d := range details {
			result.AddDetail(d)
		}
		result.AddError(err)
	}
	if details, err := evaluateOneOf(s, instance); err != nil {
		for _, d := range details {
			result.AddDetail(d)
		}
		result.AddError(err)
	}
	if detail, err := evaluateNot(s, instance); detail != nil {
		result.AddDetail(detail)
		result.AddError(err)
	}

	switch instance.Kind() {
	case jsonvalue.Integer, jsonvalue.Real:
		result.AddError(evaluateMultipleOf(s, instance))
		result.AddError(evaluateMinimum(s, instance))
		result.AddError(evaluateMaximum(s, instance))

	case jsonvalue.String:
		value := instance.StringValue()
		bytes := []byte(value)
		result.AddError(evaluateMinLength(s, bytes))
		result.AddError(evaluateMaxLength(s, bytes))
		result.AddError(evaluatePattern(s, value))

	case jsonvalue.Array:
		if details, err := evaluateItems(s, instance); err != nil || len(details) > 0 {
			for _, d := range details {
				result.AddDetail(d)
			}
			result.AddError(err)
		}
		result.AddError(evaluateMinItems(s, instance))
		result.AddError(evaluateMaxItems(s, instance))
		result.AddError(evaluateUniqueItems(s, instance))

	case jsonvalue.Object:
		propResults, matched, propErr := evaluateProperties(s, instance)
		for _, d := range propResults {
			result.AddDetail(d)
		}
		result.AddError(propErr)

		patResults, patMatched, patErr := evaluatePatternProperties(s, instance)
		for _, d := range patResults {
			result.AddDetail(d)
		}
		result.AddError(patErr)

		addlResults, addlErr := evaluateAdditionalProperties(s, instance, append(matched, patMatched...))
		for _, d := range addlResults {
			result.AddDetail(d)
		}
		result.AddError(addlErr)

		result.AddError(evaluateRequired(s, instance))
		result.AddError(evaluateMinProperties(s, instance))
		result.AddError(evaluateMaxProperties(s, instance))

		depResults, depErr := evaluateDependencies(s, instance)
		for _, d := range depResults {
			result.AddDetail(d)
		}
		result.AddError(depErr)
	}

	return result
}
