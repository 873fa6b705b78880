package jsonvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntegerArray(t *testing.T) {
	v, err := ParseString("[0, 1, -1, 42, -127]", ParseDefault)
	require.NoError(t, err)
	require.True(t, v.IsArray())
	require.Equal(t, 5, v.NbElements())

	want := []int64{0, 1, -1, 42, -127}
	for i, w := range want {
		e, err := v.Element(i)
		require.NoError(t, err)
		assert.True(t, e.IsInteger())
		assert.Equal(t, w, e.IntegerValue())
	}

	out, err := Format(v, FormatDefault)
	require.NoError(t, err)
	assert.Equal(t, "[0, 1, -1, 42, -127]", string(out))
}

func TestParseSurrogatePair(t *testing.T) {
	v, err := ParseString("\"\\ud834\\udd1e\"", ParseDefault)
	require.NoError(t, err)
	require.True(t, v.IsString())
	assert.Equal(t, []byte{0xF0, 0x9D, 0x84, 0x9E}, v.StringBytes())
}

func TestParseUppercaseUnicodeEscape(t *testing.T) {
	lower, err := ParseString("\"\\u00e9\"", ParseDefault)
	require.NoError(t, err)
	upper, err := ParseString(`"\U00e9"`, ParseDefault)
	require.NoError(t, err)
	assert.True(t, Equal(lower, upper))
}

func TestParseUnpairedSurrogateIsError(t *testing.T) {
	_, err := ParseString(`"\ud834"`, ParseDefault)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ErrInvalidUnicode, pe.Kind)
}

func TestParseDuplicateKeysDefaultAllowsBoth(t *testing.T) {
	v, err := ParseString(`{"a":1,"a":2}`, ParseDefault)
	require.NoError(t, err)
	require.Equal(t, 2, v.NbMembers())

	first, ok := v.Member("a")
	require.True(t, ok)
	assert.Equal(t, int64(1), first.IntegerValue())
}

func TestParseDuplicateKeysRejected(t *testing.T) {
	_, err := ParseString(`{"a":1,"a":2}`, RejectDuplicateKeys)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ErrDuplicateKey, pe.Kind)
}

func TestParseRejectNullCharacters(t *testing.T) {
	_, err := ParseString("\"\\u0000\"", RejectNullCharacters)
	require.Error(t, err)

	v, err := ParseString("\"\\u0000\"", ParseDefault)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, v.StringBytes())
}

func TestParseIntegerVsRealDispatch(t *testing.T) {
	i, err := ParseString("42", ParseDefault)
	require.NoError(t, err)
	assert.True(t, i.IsInteger())

	r, err := ParseString("42.0", ParseDefault)
	require.NoError(t, err)
	assert.True(t, r.IsReal())

	r2, err := ParseString("4.2e1", ParseDefault)
	require.NoError(t, err)
	assert.True(t, r2.IsReal())
}

func TestParseIntegerOverflow(t *testing.T) {
	_, err := ParseString("99999999999999999999999", ParseDefault)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ErrNumberOutOfRange, pe.Kind)
}

func TestParseTopLevelAcceptsAnyValue(t *testing.T) {
	for _, text := range []string{`"hello"`, "true", "false", "null", "1", "1.5", "[]", "{}"} {
		_, err := ParseString(text, ParseDefault)
		assert.NoError(t, err, text)
	}
}

func TestParseTruncatedObjectIsTruncatedError(t *testing.T) {
	_, err := ParseString(`{"a":`, ParseDefault)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ErrTruncated, pe.Kind)
}

func TestParseTrailingDataIsInvalidCharacter(t *testing.T) {
	_, err := ParseString(`1 2`, ParseDefault)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ErrInvalidCharacter, pe.Kind)
}

func TestParseWhitespaceVariants(t *testing.T) {
	_, err := ParseString("\t\n\r [1, 2]\t", ParseDefault)
	assert.NoError(t, err)
}
