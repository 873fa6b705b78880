package jsonschema

import (
	"math/big"
	"strconv"

	"github.com/jvcore/jsonschema/internal/regexcap"
	"github.com/jvcore/jsonschema/jsonvalue"
)

// Compiler parses schema documents into Schema trees. The zero value
// is ready to use; a Compiler holds no mutable state today, but gives
// callers a place to hang future configuration (e.g. a registry of
// known $schema URIs) without changing the Compile signature.
type Compiler struct{}

// NewCompiler returns a ready-to-use Compiler.
func NewCompiler() *Compiler {
	return &Compiler{}
}

// defaultCompiler backs the package-level Compile/CompileString helpers.
var defaultCompiler = NewCompiler()

// Compile parses a schema document into a Schema tree.
func Compile(data []byte) (*Schema, error) {
	return defaultCompiler.Compile(data)
}

// CompileString is a convenience wrapper around Compile.
func CompileString(s string) (*Schema, error) {
	return defaultCompiler.Compile([]byte(s))
}

// MustCompile is like Compile but panics on error.
func MustCompile(data []byte) *Schema {
	s, err := Compile(data)
	if err != nil {
		panic(err)
	}
	return s
}

// Compile parses a schema document as UTF-8 bytes, internally via
// jsonvalue.Parse with RejectDuplicateKeys|RejectNullCharacters, per
// spec §4.5.
func (c *Compiler) Compile(data []byte) (*Schema, error) {
	root, err := jsonvalue.Parse(data, jsonvalue.RejectDuplicateKeys|jsonvalue.RejectNullCharacters)
	if err != nil {
		return nil, err
	}
	return c.CompileValue(root)
}

// CompileValue compiles an already-parsed value tree into a Schema.
func (c *Compiler) CompileValue(root *jsonvalue.Value) (*Schema, error) {
	return c.compileSchema(root, "")
}

func schemaErr(err error, keyword, path string) error {
	return &SchemaError{Err: err, Keyword: keyword, Path: path}
}

func (c *Compiler) compileSchema(v *jsonvalue.Value, path string) (*Schema, error) {
	if !v.IsObject() {
		return nil, schemaErr(ErrSchemaNotObject, "", path)
	}

	s := &Schema{compiler: c, path: path}

	for key, value := range v.Members() {
		k := key.StringValue()
		sub := appendToken(path, k)
		var err error
		switch k {
		case "id":
			s.ID, err = requireString(value, k, sub)
		case "$ref":
			s.Ref, err = requireString(value, k, sub)
		case "title":
			s.Title, err = requireString(value, k, sub)
		case "description":
			s.Description, err = requireString(value, k, sub)
		case "$schema":
			var uri string
			uri, err = requireString(value, k, sub)
			if err == nil && !knownSchemaURIs[uri] {
				err = schemaErr(ErrUnknownSchemaURI, k, sub)
			}
			s.SchemaURI = uri
		case "default":
			s.Default = value.Clone()
		case "type":
			s.Types, err = compileTypeSet(value, sub)
		case "enum":
			s.Enum, err = compileEnum(value, sub)
		case "allOf":
			s.AllOf, err = c.compileSchemaArray(value, k, sub)
		case "anyOf":
			s.AnyOf, err = c.compileSchemaArray(value, k, sub)
		case "oneOf":
			s.OneOf, err = c.compileSchemaArray(value, k, sub)
		case "not":
			s.Not, err = c.compileSchema(value, sub)
		case "format":
			var tag string
			tag, err = requireString(value, k, sub)
			if err == nil && !knownFormatTags[tag] {
				err = schemaErr(ErrUnknownFormatTag, k, sub)
			}
			s.Format = tag
		case "multipleOf":
			s.MultipleOf, err = requirePositiveNumber(value, k, sub)
		case "minimum":
			s.Minimum, err = requireRat(value, k, sub)
		case "maximum":
			s.Maximum, err = requireRat(value, k, sub)
		case "exclusiveMinimum":
			s.ExclusiveMinimum, err = requireBool(value, k, sub)
		case "exclusiveMaximum":
			s.ExclusiveMaximum, err = requireBool(value, k, sub)
		case "minLength":
			s.MinLength, err = requireNonNegativeInt(value, k, sub)
			s.HasMinLength = err == nil
		case "maxLength":
			s.MaxLength, err = requireNonNegativeInt(value, k, sub)
			s.HasMaxLength = err == nil
		case "pattern":
			s.Pattern, err = requireString(value, k, sub)
			if err == nil {
				_, err = regexcap.Compile(s.Pattern)
				if err != nil {
					err = schemaErr(ErrInvalidKeywordValue, k, sub)
				}
			}
		case "items":
			err = c.compileItems(s, value, sub)
		case "additionalItems":
			s.AdditionalItems, err = c.compileAdditional(value, k, sub)
		case "minItems":
			s.MinItems, err = requireNonNegativeInt(value, k, sub)
			s.HasMinItems = err == nil
		case "maxItems":
			s.MaxItems, err = requireNonNegativeInt(value, k, sub)
			s.HasMaxItems = err == nil
		case "uniqueItems":
			s.UniqueItems, err = requireBool(value, k, sub)
		case "minProperties":
			s.MinProperties, err = requireNonNegativeInt(value, k, sub)
			s.HasMinProperties = err == nil
		case "maxProperties":
			s.MaxProperties, err = requireNonNegativeInt(value, k, sub)
			s.HasMaxProperties = err == nil
		case "required":
			s.Required, err = requireUniqueStringArray(value, k, sub)
		case "properties":
			s.Properties, err = c.compileProperties(value, sub)
		case "patternProperties":
			s.PatternProperties, err = c.compilePatternProperties(value, sub)
		case "additionalProperties":
			s.AdditionalProperties, err = c.compileAdditional(value, k, sub)
		case "dependencies":
			s.Dependencies, err = c.compileDependencies(value, sub)
		case "definitions":
			s.Definitions, err = c.compileDefinitions(value, sub)
		default:
			err = schemaErr(ErrUnknownKeyword, k, sub)
		}
		if err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (c *Compiler) compileSchemaArray(v *jsonvalue.Value, keyword, path string) ([]*Schema, error) {
	if !v.IsArray() || v.NbElements() == 0 {
		return nil, schemaErr(ErrInvalidKeywordValue, keyword, path)
	}
	out := make([]*Schema, 0, v.NbElements())
	i := 0
	for e := range v.Elements() {
		sub, err := c.compileSchema(e, appendToken(path, strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
		i++
	}
	return out, nil
}

func (c *Compiler) compileItems(s *Schema, v *jsonvalue.Value, path string) error {
	switch {
	case v.IsObject():
		sub, err := c.compileSchema(v, path)
		if err != nil {
			return err
		}
		s.Items = sub
		return nil
	case v.IsArray():
		list := make([]*Schema, 0, v.NbElements())
		i := 0
		for e := range v.Elements() {
			sub, err := c.compileSchema(e, appendToken(path, strconv.Itoa(i)))
			if err != nil {
				return err
			}
			list = append(list, sub)
			i++
		}
		s.ItemsList = list
		s.ItemsIsArray = true
		return nil
	default:
		return schemaErr(ErrInvalidKeywordValue, "items", path)
	}
}

func (c *Compiler) compileAdditional(v *jsonvalue.Value, keyword, path string) (*AdditionalSchema, error) {
	switch {
	case v.IsBoolean():
		if v.BooleanValue() {
			return &AdditionalSchema{}, nil
		}
		return &AdditionalSchema{Deny: true}, nil
	case v.IsObject():
		sub, err := c.compileSchema(v, path)
		if err != nil {
			return nil, err
		}
		return &AdditionalSchema{Schema: sub}, nil
	default:
		return nil, schemaErr(ErrInvalidKeywordValue, keyword, path)
	}
}

func (c *Compiler) compileProperties(v *jsonvalue.Value, path string) ([]PropertySchema, error) {
	if !v.IsObject() {
		return nil, schemaErr(ErrInvalidKeywordValue, "properties", path)
	}
	out := make([]PropertySchema, 0, v.NbMembers())
	for key, value := range v.Members() {
		name := key.StringValue()
		sub, err := c.compileSchema(value, appendToken(path, name))
		if err != nil {
			return nil, err
		}
		out = append(out, PropertySchema{Name: name, Schema: sub})
	}
	return out, nil
}

func (c *Compiler) compilePatternProperties(v *jsonvalue.Value, path string) ([]PatternSchema, error) {
	if !v.IsObject() {
		return nil, schemaErr(ErrInvalidKeywordValue, "patternProperties", path)
	}
	out := make([]PatternSchema, 0, v.NbMembers())
	for key, value := range v.Members() {
		source := key.StringValue()
		re, err := regexcap.Compile(source)
		if err != nil {
			return nil, schemaErr(ErrInvalidKeywordValue, "patternProperties", path)
		}
		sub, err := c.compileSchema(value, appendToken(path, source))
		if err != nil {
			return nil, err
		}
		out = append(out, PatternSchema{Source: source, Regex: re, Schema: sub})
	}
	return out, nil
}

func (c *Compiler) compileDependencies(v *jsonvalue.Value, path string) (map[string]*Dependency, error) {
	if !v.IsObject() {
		return nil, schemaErr(ErrInvalidKeywordValue, "dependencies", path)
	}
	out := make(map[string]*Dependency, v.NbMembers())
	for key, value := range v.Members() {
		name := key.StringValue()
		switch {
		case value.IsObject():
			sub, err := c.compileSchema(value, appendToken(path, name))
			if err != nil {
				return nil, err
			}
			out[name] = &Dependency{Schema: sub}
		case value.IsArray():
			props, err := requireUniqueStringArray(value, "dependencies", appendToken(path, name))
			if err != nil {
				return nil, err
			}
			out[name] = &Dependency{Properties: props}
		default:
			return nil, schemaErr(ErrInvalidKeywordValue, "dependencies", appendToken(path, name))
		}
	}
	return out, nil
}

func (c *Compiler) compileDefinitions(v *jsonvalue.Value, path string) (map[string]*Schema, error) {
	if !v.IsObject() {
		return nil, schemaErr(ErrInvalidKeywordValue, "definitions", path)
	}
	out := make(map[string]*Schema, v.NbMembers())
	for key, value := range v.Members() {
		name := key.StringValue()
		sub, err := c.compileSchema(value, appendToken(path, name))
		if err != nil {
			return nil, err
		}
		out[name] = sub
	}
	return out, nil
}

// --- keyword-value coercion helpers ---

func requireString(v *jsonvalue.Value, keyword, path string) (string, error) {
	if !v.IsString() {
		return "", schemaErr(ErrInvalidKeywordValue, keyword, path)
	}
	return v.StringValue(), nil
}

func requireBool(v *jsonvalue.Value, keyword, path string) (bool, error) {
	if !v.IsBoolean() {
		return false, schemaErr(ErrInvalidKeywordValue, keyword, path)
	}
	return v.BooleanValue(), nil
}

func requireNonNegativeInt(v *jsonvalue.Value, keyword, path string) (int, error) {
	if !v.IsInteger() || v.IntegerValue() < 0 {
		return 0, schemaErr(ErrInvalidKeywordValue, keyword, path)
	}
	return int(v.IntegerValue()), nil
}

func requireRat(v *jsonvalue.Value, keyword, path string) (*big.Rat, error) {
	switch {
	case v.IsInteger():
		return new(big.Rat).SetInt64(v.IntegerValue()), nil
	case v.IsReal():
		r := new(big.Rat)
		r.SetFloat64(v.RealValue())
		return r, nil
	default:
		return nil, schemaErr(ErrInvalidKeywordValue, keyword, path)
	}
}

func requirePositiveNumber(v *jsonvalue.Value, keyword, path string) (*big.Rat, error) {
	r, err := requireRat(v, keyword, path)
	if err != nil {
		return nil, err
	}
	if r.Sign() <= 0 {
		return nil, schemaErr(ErrInvalidKeywordValue, keyword, path)
	}
	return r, nil
}

func requireUniqueStringArray(v *jsonvalue.Value, keyword, path string) ([]string, error) {
	if !v.IsArray() || v.NbElements() == 0 {
		return nil, schemaErr(ErrInvalidKeywordValue, keyword, path)
	}
	seen := make(map[string]bool, v.NbElements())
	out := make([]string, 0, v.NbElements())
	for e := range v.Elements() {
		if !e.IsString() {
			return nil, schemaErr(ErrInvalidKeywordValue, keyword, path)
		}
		s := e.StringValue()
		if seen[s] {
			return nil, schemaErr(ErrInvalidKeywordValue, keyword, path)
		}
		seen[s] = true
		out = append(out, s)
	}
	return out, nil
}

func compileTypeSet(v *jsonvalue.Value, path string) ([]SimpleType, error) {
	switch {
	case v.IsString():
		t, ok := knownSimpleTypes[v.StringValue()]
		if !ok {
			return nil, schemaErr(ErrInvalidKeywordValue, "type", path)
		}
		return []SimpleType{t}, nil
	case v.IsArray():
		if v.NbElements() == 0 {
			return nil, schemaErr(ErrInvalidKeywordValue, "type", path)
		}
		out := make([]SimpleType, 0, v.NbElements())
		for e := range v.Elements() {
			if !e.IsString() {
				return nil, schemaErr(ErrInvalidKeywordValue, "type", path)
			}
			t, ok := knownSimpleTypes[e.StringValue()]
			if !ok {
				return nil, schemaErr(ErrInvalidKeywordValue, "type", path)
			}
			out = append(out, t)
		}
		return out, nil
	default:
		return nil, schemaErr(ErrInvalidKeywordValue, "type", path)
	}
}

func compileEnum(v *jsonvalue.Value, path string) ([]*jsonvalue.Value, error) {
	if !v.IsArray() || v.NbElements() == 0 {
		return nil, schemaErr(ErrInvalidKeywordValue, "enum", path)
	}
	out := make([]*jsonvalue.Value, 0, v.NbElements())
	for e := range v.Elements() {
		clone := e.Clone()
		for _, existing := range out {
			if jsonvalue.Equal(existing, clone) {
				return nil, schemaErr(ErrInvalidKeywordValue, "enum", path)
			}
		}
		out = append(out, clone)
	}
	return out, nil
}

