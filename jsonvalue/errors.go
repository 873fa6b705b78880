package jsonvalue

import (
	"errors"
	"fmt"
)

// Sentinel errors for the value tree, the UTF-8 codec and the formatter.
// The parser has its own richer error types below, since it must carry
// byte offsets and context back to the caller.
var (
	// ErrIndexOutOfRange is returned by Array.Element when the index is
	// not in [0, NbElements).
	ErrIndexOutOfRange = errors.New("jsonvalue: index out of range")

	// ErrNotObject / ErrNotArray are programming-error guards: calling an
	// object-only or array-only accessor on a value of the wrong kind.
	ErrNotObject = errors.New("jsonvalue: value is not an object")
	ErrNotArray  = errors.New("jsonvalue: value is not an array")

	// ErrInvalidCodepoint is returned by Encode for codepoints above
	// 0x7FFFFFFF.
	ErrInvalidCodepoint = errors.New("jsonvalue: invalid codepoint")

	// ErrInvalidUTF8 is returned by Decode/CountCodepoints on malformed
	// byte sequences.
	ErrInvalidUTF8 = errors.New("jsonvalue: invalid utf-8 sequence")

	// ErrIndentTooDeep is returned by the formatter when nesting exceeds
	// the configured depth limit.
	ErrIndentTooDeep = errors.New("jsonvalue: indent nesting too deep")

	// ErrNestingTooDeep is returned by the parser when the grammar nests
	// objects/arrays past the configured recursion-depth safeguard.
	ErrNestingTooDeep = errors.New("jsonvalue: nesting too deep")
)

// ParseErrorKind enumerates the stable, abstract parser error kinds of
// spec §7.
type ParseErrorKind int

const (
	ErrInvalidCharacter ParseErrorKind = iota
	ErrTruncated
	ErrInvalidEscape
	ErrInvalidUnicode
	ErrNumberOutOfRange
	ErrInvalidNumber
	ErrDuplicateKey
	ErrNullCharacter
)

func (k ParseErrorKind) String() string {
	switch k {
	case ErrInvalidCharacter:
		return "invalid character"
	case ErrTruncated:
		return "truncated input"
	case ErrInvalidEscape:
		return "invalid escape sequence"
	case ErrInvalidUnicode:
		return "invalid unicode escape"
	case ErrNumberOutOfRange:
		return "number out of range"
	case ErrInvalidNumber:
		return "invalid number"
	case ErrDuplicateKey:
		return "duplicate key"
	case ErrNullCharacter:
		return "null character not allowed"
	default:
		return "unknown parse error"
	}
}

// ParseError is the typed, fatal error returned by Parse. It carries the
// byte offset at which the failure was detected and a short context tag
// describing what the parser was doing (e.g. "object key", "string
// escape"), matching spec §7's "MAY thread a context string".
type ParseError struct {
	Kind   ParseErrorKind
	Offset int
	Ctx    string
	Byte   byte // only meaningful for ErrInvalidCharacter
}

func (e *ParseError) Error() string {
	if e.Ctx != "" {
		return fmt.Sprintf("jsonvalue: parse error at offset %d (%s): %s", e.Offset, e.Ctx, e.Kind)
	}
	return fmt.Sprintf("jsonvalue: parse error at offset %d: %s", e.Offset, e.Kind)
}

// Is lets callers compare against the package-level sentinel kinds with
// errors.Is-style matching on Kind alone (ignoring offset/ctx).
func (e *ParseError) Is(target error) bool {
	other, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}
