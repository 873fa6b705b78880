package jsonschema

import (
	"strings"

	"github.com/jvcore/jsonschema/jsonvalue"
)

func kindMatchesType(k jsonvalue.Kind, t SimpleType) bool {
	switch t {
	case TypeArray:
		return k == jsonvalue.Array
	case TypeBoolean:
		return k == jsonvalue.Boolean
	case TypeInteger:
		return k == jsonvalue.Integer
	case TypeNull:
		return k == jsonvalue.Null
	case TypeNumber:
		return k == jsonvalue.Integer || k == jsonvalue.Real
	case TypeObject:
		return k == jsonvalue.Object
	case TypeString:
		return k == jsonvalue.String
	default:
		return false
	}
}

func evaluateType(schema *Schema, instance *jsonvalue.Value) *EvaluationError {
	if len(schema.Types) == 0 {
		return nil
	}
	for _, t := range schema.Types {
		if kindMatchesType(instance.Kind(), t) {
			return nil
		}
	}

	names := make([]string, len(schema.Types))
	for i, t := range schema.Types {
		names[i] = string(t)
	}
	return NewEvaluationError("type", "type_mismatch",
		"Value must be of type {expected}",
		map[string]any{"expected": strings.Join(names, " or ")})
}
