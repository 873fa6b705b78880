package jsonschema

import (
	"testing"

	"github.com/jvcore/jsonschema/jsonvalue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseValue(t *testing.T, src string) *jsonvalue.Value {
	t.Helper()
	v, err := jsonvalue.ParseString(src, jsonvalue.ParseDefault)
	require.NoError(t, err)
	return v
}

func TestValidateTypeMismatch(t *testing.T) {
	schema, err := CompileString(`{"type": "string"}`)
	require.NoError(t, err)

	result := schema.Validate(parseValue(t, `42`))
	assert.False(t, result.IsValid())
	require.NotNil(t, result.FirstError())
	assert.Equal(t, "type_mismatch", result.FirstError().Code)
}

func TestValidateNumberMatchesIntegerOrReal(t *testing.T) {
	schema, err := CompileString(`{"type": "number"}`)
	require.NoError(t, err)

	assert.True(t, schema.Validate(parseValue(t, `1`)).IsValid())
	assert.True(t, schema.Validate(parseValue(t, `1.5`)).IsValid())
	assert.False(t, schema.Validate(parseValue(t, `"1"`)).IsValid())
}

func TestValidateMinimumExclusive(t *testing.T) {
	schema, err := CompileString(`{"minimum": 1, "exclusiveMinimum": true}`)
	require.NoError(t, err)

	assert.False(t, schema.Validate(parseValue(t, `1`)).IsValid())
	assert.True(t, schema.Validate(parseValue(t, `1.0001`)).IsValid())
}

func TestValidateMultipleOfExactAndFloatTolerance(t *testing.T) {
	schema, err := CompileString(`{"multipleOf": 0.1}`)
	require.NoError(t, err)

	assert.True(t, schema.Validate(parseValue(t, `0.3`)).IsValid())
	assert.False(t, schema.Validate(parseValue(t, `0.25`)).IsValid())
}

func TestValidateRequiredProperties(t *testing.T) {
	schema, err := CompileString(`{"type": "object", "required": ["name"]}`)
	require.NoError(t, err)

	result := schema.Validate(parseValue(t, `{"age": 1}`))
	assert.False(t, result.IsValid())
	assert.Equal(t, "missing_required_properties", result.Errors["required"].Code)
}

func TestValidateAdditionalPropertiesDeniedExceptDeclared(t *testing.T) {
	schema, err := CompileString(`{
		"type": "object",
		"properties": {"name": {"type": "string"}},
		"additionalProperties": false
	}`)
	require.NoError(t, err)

	assert.True(t, schema.Validate(parseValue(t, `{"name": "a"}`)).IsValid())
	assert.False(t, schema.Validate(parseValue(t, `{"name": "a", "extra": 1}`)).IsValid())
}

func TestValidatePatternPropertiesAllMustMatch(t *testing.T) {
	// a key matching two patterns must satisfy both schemas.
	schema, err := CompileString(`{
		"patternProperties": {
			"^a": {"type": "string"},
			"b$": {"minLength": 3}
		}
	}`)
	require.NoError(t, err)

	assert.True(t, schema.Validate(parseValue(t, `{"ab": "xyz"}`)).IsValid())
	assert.False(t, schema.Validate(parseValue(t, `{"ab": "xy"}`)).IsValid())
}

func TestValidateAllOfAnyOfOneOf(t *testing.T) {
	allOf, err := CompileString(`{"allOf": [{"type": "integer"}, {"minimum": 0}]}`)
	require.NoError(t, err)
	assert.True(t, allOf.Validate(parseValue(t, `5`)).IsValid())
	assert.False(t, allOf.Validate(parseValue(t, `-5`)).IsValid())

	anyOf, err := CompileString(`{"anyOf": [{"type": "string"}, {"type": "integer"}]}`)
	require.NoError(t, err)
	assert.True(t, anyOf.Validate(parseValue(t, `"x"`)).IsValid())
	assert.False(t, anyOf.Validate(parseValue(t, `1.5`)).IsValid())

	oneOf, err := CompileString(`{"oneOf": [{"minimum": 0}, {"maximum": 10}]}`)
	require.NoError(t, err)
	assert.False(t, oneOf.Validate(parseValue(t, `5`)).IsValid(), "5 matches both branches")
	assert.True(t, oneOf.Validate(parseValue(t, `-5`)).IsValid())
}

func TestValidateNot(t *testing.T) {
	schema, err := CompileString(`{"not": {"type": "string"}}`)
	require.NoError(t, err)
	assert.True(t, schema.Validate(parseValue(t, `1`)).IsValid())
	assert.False(t, schema.Validate(parseValue(t, `"x"`)).IsValid())
}

func TestValidateItemsPositionalWithAdditionalItems(t *testing.T) {
	schema, err := CompileString(`{
		"items": [{"type": "string"}, {"type": "integer"}],
		"additionalItems": false
	}`)
	require.NoError(t, err)
	assert.True(t, schema.Validate(parseValue(t, `["a", 1]`)).IsValid())
	assert.False(t, schema.Validate(parseValue(t, `["a", 1, "extra"]`)).IsValid())
}

func TestValidateUniqueItems(t *testing.T) {
	schema, err := CompileString(`{"uniqueItems": true}`)
	require.NoError(t, err)
	assert.True(t, schema.Validate(parseValue(t, `[1, 2, 3]`)).IsValid())
	assert.False(t, schema.Validate(parseValue(t, `[1, 2, 1]`)).IsValid())
	// structurally equal objects with different member order are still duplicates.
	assert.False(t, schema.Validate(parseValue(t, `[{"a":1,"b":2}, {"b":2,"a":1}]`)).IsValid())
}

func TestValidateDependencies(t *testing.T) {
	schema, err := CompileString(`{
		"dependencies": {
			"credit_card": ["billing_address"]
		}
	}`)
	require.NoError(t, err)
	assert.True(t, schema.Validate(parseValue(t, `{}`)).IsValid())
	assert.True(t, schema.Validate(parseValue(t, `{"credit_card": 1, "billing_address": "x"}`)).IsValid())
	assert.False(t, schema.Validate(parseValue(t, `{"credit_card": 1}`)).IsValid())
}

func TestAllErrorsCollectsEveryViolation(t *testing.T) {
	schema, err := CompileString(`{
		"type": "object",
		"properties": {"name": {"type": "string", "minLength": 2}},
		"required": ["name", "age"]
	}`)
	require.NoError(t, err)

	result := schema.Validate(parseValue(t, `{"name": "x"}`))
	require.False(t, result.IsValid())
	errs := result.AllErrors()
	assert.NotEmpty(t, errs)

	var sawRequired, sawMinLength bool
	for _, e := range errs {
		switch e.Code {
		case "missing_required_properties":
			sawRequired = true
		case "string_too_short":
			sawMinLength = true
		}
	}
	assert.True(t, sawRequired)
	assert.True(t, sawMinLength)
}
