package jsonschema

// format is parsed and stored on Schema.Format (restricted to the
// tags listed in knownFormatTags) but never enforced: spec
// §4.6 reserves it without defining validation behavior for this
// core. Callers that want format enforcement apply it themselves
// using Schema.Format.
