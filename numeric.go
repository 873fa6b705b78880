package jsonschema

import (
	"math/big"

	"github.com/jvcore/jsonschema/jsonvalue"
)

// multipleOfEpsilon tolerates binary64 rounding error in the real/real
// division case of multipleOf (spec §9: "implementations MAY tolerate
// a small epsilon but MUST document it").
const multipleOfEpsilon = 1e-9

// numberRat promotes an Integer or Real jsonvalue.Value to an exact
// big.Rat, the explicit-promotion approach spec §9 calls for instead
// of ad hoc float64 comparisons.
func numberRat(v *jsonvalue.Value) (*big.Rat, bool) {
	switch {
	case v.IsInteger():
		return new(big.Rat).SetInt64(v.IntegerValue()), true
	case v.IsReal():
		r := new(big.Rat)
		if r.SetFloat64(v.RealValue()) == nil {
			return nil, false
		}
		return r, true
	default:
		return nil, false
	}
}

func evaluateMultipleOf(schema *Schema, instance *jsonvalue.Value) *EvaluationError {
	if schema.MultipleOf == nil {
		return nil
	}
	value, ok := numberRat(instance)
	if !ok {
		return nil
	}

	ratio := new(big.Rat).Quo(value, schema.MultipleOf)
	if ratio.IsInt() {
		return nil
	}

	// An integer divisor leaves no rounding error to tolerate: the exact
	// check above is final.
	if schema.MultipleOf.IsInt() {
		return NewEvaluationError("multipleOf", "multiple_of_mismatch",
			"Value must be a multiple of {multiple_of}",
			map[string]any{"multiple_of": ratDecimalString(schema.MultipleOf)})
	}

	// Tolerate binary64 imprecision: accept when the ratio is within
	// multipleOfEpsilon of an integer.
	f, _ := ratio.Float64()
	frac := f - float64(int64(f))
	if frac < 0 {
		frac = -frac
	}
	if frac < multipleOfEpsilon || frac > 1-multipleOfEpsilon {
		return nil
	}

	return NewEvaluationError("multipleOf", "multiple_of_mismatch",
		"Value must be a multiple of {multiple_of}",
		map[string]any{"multiple_of": ratDecimalString(schema.MultipleOf)})
}

func evaluateMinimum(schema *Schema, instance *jsonvalue.Value) *EvaluationError {
	if schema.Minimum == nil {
		return nil
	}
	value, ok := numberRat(instance)
	if !ok {
		return nil
	}
	cmp := value.Cmp(schema.Minimum)
	if cmp > 0 || (cmp == 0 && !schema.ExclusiveMinimum) {
		return nil
	}
	if schema.ExclusiveMinimum {
		return NewEvaluationError("minimum", "exclusive_minimum_mismatch",
			"Value must be greater than {minimum}",
			map[string]any{"minimum": ratDecimalString(schema.Minimum)})
	}
	return NewEvaluationError("minimum", "minimum_mismatch",
		"Value must be greater than or equal to {minimum}",
		map[string]any{"minimum": ratDecimalString(schema.Minimum)})
}

func evaluateMaximum(schema *Schema, instance *jsonvalue.Value) *EvaluationError {
	if schema.Maximum == nil {
		return nil
	}
	value, ok := numberRat(instance)
	if !ok {
		return nil
	}
	cmp := value.Cmp(schema.Maximum)
	if cmp < 0 || (cmp == 0 && !schema.ExclusiveMaximum) {
		return nil
	}
	if schema.ExclusiveMaximum {
		return NewEvaluationError("maximum", "exclusive_maximum_mismatch",
			"Value must be less than {maximum}",
			map[string]any{"maximum": ratDecimalString(schema.Maximum)})
	}
	return NewEvaluationError("maximum", "maximum_mismatch",
		"Value must be less than or equal to {maximum}",
		map[string]any{"maximum": ratDecimalString(schema.Maximum)})
}

// ratDecimalString renders a big.Rat for error messages: integers as
// plain digits, anything else rounded to exactly 10 digits after the
// decimal point.
func ratDecimalString(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	return r.FloatString(10)
}
