package jsonvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRoundTrip(t *testing.T) {
	texts := []string{
		`{"a":1,"b":[1,2,3],"c":"hello","d":true,"e":null,"f":1.5}`,
		`[]`,
		`{}`,
		`"with \"quotes\" and \\backslash\\"`,
	}
	for _, text := range texts {
		v1, err := ParseString(text, ParseDefault)
		require.NoError(t, err)

		out, err := Format(v1, FormatDefault)
		require.NoError(t, err)

		v2, err := ParseString(string(out), ParseDefault)
		require.NoError(t, err)

		assert.True(t, Equal(v1, v2), "round trip mismatch for %s -> %s", text, out)
	}
}

func TestFormatIndent(t *testing.T) {
	v, err := ParseString(`{"a":1,"b":[1,2]}`, ParseDefault)
	require.NoError(t, err)

	out, err := Format(v, Indent)
	require.NoError(t, err)

	want := "{\n  \"a\": 1, \n  \"b\": [\n    1, \n    2\n  ]\n}"
	assert.Equal(t, want, string(out))
}

func TestFormatEmptyContainersUnderIndent(t *testing.T) {
	obj := NewObject()
	out, err := Format(obj, Indent)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(out))

	arr := NewArray()
	out, err = Format(arr, Indent)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(out))
}

func TestFormatEscapesNonPrintableAsUnicodeEscape(t *testing.T) {
	v := NewString([]byte{0x01})
	out, err := Format(v, FormatDefault)
	require.NoError(t, err)
	want := "\"" + "\\u0001" + "\""
	assert.Equal(t, want, string(out))
}

func TestFormatEscapesAboveBMPAsSurrogatePair(t *testing.T) {
	v := NewString([]byte{0xF0, 0x9D, 0x84, 0x9E})
	out, err := Format(v, FormatDefault)
	require.NoError(t, err)
	want := "\"" + "\\ud834\\udd1e" + "\""
	assert.Equal(t, want, string(out))
}

func TestFormatSolidusEscaping(t *testing.T) {
	v := NewStringFromString("a/b")

	out, err := Format(v, FormatDefault)
	require.NoError(t, err)
	assert.Equal(t, "\"a/b\"", string(out))

	out, err = Format(v, EscapeSolidus)
	require.NoError(t, err)
	want := "\"a" + "\\/" + "b\""
	assert.Equal(t, want, string(out))
}

func TestFormatColorANSIWrapsFragments(t *testing.T) {
	v := NewInteger(5)
	out, err := Format(v, ColorANSI)
	require.NoError(t, err)
	want := "\x1b[31m5\x1b[0m"
	assert.Equal(t, want, string(out))
}

func TestFormatIndentTooDeep(t *testing.T) {
	v := NewArray()
	cur := v
	for i := 0; i < maxIndentDepth+2; i++ {
		next := NewArray()
		cur.AddElement(next)
		cur = next
	}
	_, err := Format(v, FormatDefault)
	assert.ErrorIs(t, err, ErrIndentTooDeep)
}

func TestFormatObjectOrderIsInsertionOrder(t *testing.T) {
	obj := NewObject()
	obj.AddMember("z", NewInteger(1))
	obj.AddMember("a", NewInteger(2))
	obj.SortBy(ByKey)

	out, err := Format(obj, FormatDefault)
	require.NoError(t, err)
	assert.Equal(t, `{"z": 1, "a": 2}`, string(out), "Format always re-sorts by insertion index regardless of prior SortBy")
}
