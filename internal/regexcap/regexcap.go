// Package regexcap declares the regular-expression capability the
// validator depends on: compile a pattern, match it against a string.
// The validator never imports regexp directly, so the engine can be
// swapped without touching keyword evaluation.
package regexcap

import "regexp"

// Pattern is a compiled regular expression. *regexp.Regexp already
// satisfies this interface.
type Pattern interface {
	MatchString(s string) bool
}

// Engine compiles pattern sources into a Pattern.
type Engine interface {
	Compile(pattern string) (Pattern, error)
}

type stdlibEngine struct{}

func (stdlibEngine) Compile(pattern string) (Pattern, error) {
	return regexp.Compile(pattern)
}

// Default is the engine used by the validator unless overridden.
// Swapping in a third-party engine (RE2-incompatible ECMA-262
// dialects, for instance) is a one-line reassignment.
var Default Engine = stdlibEngine{}

// Compile compiles pattern with Default.
func Compile(pattern string) (Pattern, error) {
	return Default.Compile(pattern)
}
