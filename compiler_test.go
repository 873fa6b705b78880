package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileBasicObjectSchema(t *testing.T) {
	schema, err := CompileString(`{
		"type": "object",
		"properties": {"name": {"type": "string"}, "age": {"type": "integer"}},
		"required": ["name"]
	}`)
	require.NoError(t, err)
	assert.Equal(t, []SimpleType{TypeObject}, schema.Types)
	require.Len(t, schema.Properties, 2)
	assert.Equal(t, []string{"name"}, schema.Required)
}

func TestCompileRejectsUnknownKeyword(t *testing.T) {
	_, err := CompileString(`{"typo": "object"}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownKeyword)
}

func TestCompileRejectsNonObjectSchema(t *testing.T) {
	_, err := CompileString(`"not a schema"`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaNotObject)
}

func TestCompileRejectsUnknownSchemaURI(t *testing.T) {
	_, err := CompileString(`{"$schema": "http://json-schema.org/draft-07/schema#"}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownSchemaURI)
}

func TestCompileAcceptsKnownSchemaURI(t *testing.T) {
	schema, err := CompileString(`{"$schema": "http://json-schema.org/draft-04/schema#"}`)
	require.NoError(t, err)
	assert.Equal(t, "http://json-schema.org/draft-04/schema#", schema.SchemaURI)
}

func TestCompileExclusiveMinimumIsBoolean(t *testing.T) {
	// Draft-04: exclusiveMinimum is a sibling boolean flag, not a
	// numeric replacement for minimum as in later drafts.
	schema, err := CompileString(`{"minimum": 1, "exclusiveMinimum": true}`)
	require.NoError(t, err)
	assert.True(t, schema.ExclusiveMinimum)
	assert.Equal(t, "1", schema.Minimum.RatString())
}

func TestCompileExclusiveMinimumRejectsNumber(t *testing.T) {
	_, err := CompileString(`{"minimum": 1, "exclusiveMinimum": 1}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidKeywordValue)
}

func TestCompileItemsObjectForm(t *testing.T) {
	schema, err := CompileString(`{"items": {"type": "string"}}`)
	require.NoError(t, err)
	require.NotNil(t, schema.Items)
	assert.False(t, schema.ItemsIsArray)
}

func TestCompileItemsArrayForm(t *testing.T) {
	schema, err := CompileString(`{"items": [{"type": "string"}, {"type": "integer"}], "additionalItems": false}`)
	require.NoError(t, err)
	assert.True(t, schema.ItemsIsArray)
	require.Len(t, schema.ItemsList, 2)
	require.NotNil(t, schema.AdditionalItems)
	assert.True(t, schema.AdditionalItems.Deny)
}

func TestCompileAdditionalPropertiesTrueMeansNoConstraint(t *testing.T) {
	schema, err := CompileString(`{"additionalProperties": true}`)
	require.NoError(t, err)
	require.NotNil(t, schema.AdditionalProperties)
	assert.False(t, schema.AdditionalProperties.Deny)
	assert.Nil(t, schema.AdditionalProperties.Schema)
}

func TestCompileDependenciesSchemaAndPropertyForms(t *testing.T) {
	schema, err := CompileString(`{
		"dependencies": {
			"credit_card": {"properties": {"billing_address": {"type": "string"}}},
			"name": ["age"]
		}
	}`)
	require.NoError(t, err)
	require.Contains(t, schema.Dependencies, "credit_card")
	assert.NotNil(t, schema.Dependencies["credit_card"].Schema)
	require.Contains(t, schema.Dependencies, "name")
	assert.Equal(t, []string{"age"}, schema.Dependencies["name"].Properties)
}

func TestCompileRejectsInvalidPattern(t *testing.T) {
	_, err := CompileString(`{"pattern": "("}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidKeywordValue)
}
