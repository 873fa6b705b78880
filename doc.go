// Package jsonschema parses a JSON Schema Draft-04 document into a
// Schema tree and validates jsonvalue.Value instances against it.
//
// A schema is compiled once with Compile and then reused across many
// Validate calls; both operate purely over *jsonvalue.Value, never
// over Go's any/map[string]any, so schema documents and instances
// alike inherit the value tree's ordering and duplicate-key
// semantics.
package jsonschema
