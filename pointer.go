package jsonschema

import "github.com/kaptinlin/jsonpointer"

// appendToken extends a JSON Pointer string with one more raw token,
// escaping "~" and "/" per RFC 6901 along the way (teacher's
// schema.go/ref.go use the same library for exactly this: building
// instance/evaluation paths out of property names, pattern sources
// and array indices that may themselves contain pointer-special
// characters).
func appendToken(path string, token string) string {
	return path + jsonpointer.Format(token)
}
