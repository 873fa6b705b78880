package jsonschema

import (
	"math/big"

	"github.com/jvcore/jsonschema/internal/regexcap"
	"github.com/jvcore/jsonschema/jsonvalue"
)

// SimpleType is one of the seven type names the "type" keyword may
// name. "number" matches both Integer and Real values.
type SimpleType string

const (
	TypeArray   SimpleType = "array"
	TypeBoolean SimpleType = "boolean"
	TypeInteger SimpleType = "integer"
	TypeNull    SimpleType = "null"
	TypeNumber  SimpleType = "number"
	TypeObject  SimpleType = "object"
	TypeString  SimpleType = "string"
)

var knownSimpleTypes = map[string]SimpleType{
	"array":   TypeArray,
	"boolean": TypeBoolean,
	"integer": TypeInteger,
	"null":    TypeNull,
	"number":  TypeNumber,
	"object":  TypeObject,
	"string":  TypeString,
}

// known $schema draft-04 identifiers. $schema must resolve to one of
// these or the schema parser fails with ErrUnknownSchemaURI.
var knownSchemaURIs = map[string]bool{
	"http://json-schema.org/draft-04/schema#": true,
	"https://json-schema.org/draft-04/schema#": true,
}

// knownFormatTags are the format names the schema parser accepts.
// The validator never enforces them (spec: format is reserved).
var knownFormatTags = map[string]bool{
	"date-time": true, "email": true, "hostname": true,
	"ipv4": true, "ipv6": true, "uri": true, "uri-reference": true,
	"regex": true, "color": true, "style": true, "phone": true,
	"utc-millisec": true, "date": true, "time": true,
}

// PropertySchema is one (name, schema) pair of the "properties" keyword.
// Stored as a slice, not a map, so compile-time member order is
// reproducible — useful for deterministic error ordering.
type PropertySchema struct {
	Name   string
	Schema *Schema
}

// PatternSchema is one (regex, schema) pair of "patternProperties".
type PatternSchema struct {
	Source string
	Regex  regexcap.Pattern
	Schema *Schema
}

// AdditionalSchema encodes the three states "additionalItems" and
// "additionalProperties" can take beyond plain absence: Deny models
// the literal `false` (no further items/properties allowed), and
// Schema models both `true` (Schema is nil, always accept) and an
// object (Schema constrains). A nil *AdditionalSchema on the owning
// Schema means the keyword was absent — allow anything.
type AdditionalSchema struct {
	Deny   bool
	Schema *Schema
}

// Dependency is one value of the "dependencies" keyword: either a
// schema dependency (the named property, if present, requires the
// instance to validate against Schema) or a property dependency (the
// named property, if present, requires Properties to also be present).
type Dependency struct {
	Schema     *Schema
	Properties []string
}

// Schema is a parsed Draft-04 schema node. Zero value is a schema
// that imposes no constraints (matches everything).
type Schema struct {
	compiler *Compiler
	path     string // evaluation path from the compiled root, e.g. "/properties/a"

	ID          string
	Ref         string
	SchemaURI   string
	Title       string
	Description string
	Default     *jsonvalue.Value

	Types []SimpleType
	Enum  []*jsonvalue.Value

	AllOf []*Schema
	AnyOf []*Schema
	OneOf []*Schema
	Not   *Schema

	Format string

	MultipleOf       *big.Rat
	Minimum          *big.Rat
	Maximum          *big.Rat
	ExclusiveMinimum bool
	ExclusiveMaximum bool

	HasMinLength bool
	MinLength    int
	HasMaxLength bool
	MaxLength    int
	Pattern      string

	compiledPattern regexcap.Pattern

	Items           *Schema
	ItemsList       []*Schema
	ItemsIsArray    bool
	AdditionalItems *AdditionalSchema
	HasMinItems     bool
	MinItems        int
	HasMaxItems     bool
	MaxItems        int
	UniqueItems     bool

	HasMinProperties     bool
	MinProperties        int
	HasMaxProperties     bool
	MaxProperties        int
	Required             []string
	Properties           []PropertySchema
	PatternProperties    []PatternSchema
	AdditionalProperties *AdditionalSchema
	Dependencies         map[string]*Dependency

	Definitions map[string]*Schema
}

// compilePattern lazily compiles Pattern, caching the result.
func (s *Schema) compilePattern() (regexcap.Pattern, error) {
	if s.compiledPattern != nil {
		return s.compiledPattern, nil
	}
	re, err := regexcap.Compile(s.Pattern)
	if err != nil {
		return nil, err
	}
	s.compiledPattern = re
	return re, nil
}

// EvaluationPath returns the keyword path this schema was compiled
// from, relative to its root (e.g. "/properties/address").
func (s *Schema) EvaluationPath() string {
	return s.path
}
