// Package jsonvalue is the hard core of this module: a strict JSON
// value tree, UTF-8 codec, recursive-descent parser and recursive
// formatter. It preserves member insertion order, enforces an explicit
// duplicate-key policy, and round-trips UTF-8/UTF-16 escapes exactly.
//
// It has no dependency on package jsonschema; jsonschema is built on
// top of the tree this package produces.
package jsonvalue
