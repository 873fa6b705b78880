package jsonvalue

import (
	"strconv"
)

// ParseOptions is the options bitmask accepted by Parse (spec §4.3).
type ParseOptions uint32

const (
	ParseDefault ParseOptions = 0

	RejectDuplicateKeys ParseOptions = 1 << (iota - 1)
	RejectNullCharacters
)

// maxParseDepth bounds object/array nesting so that adversarial input
// cannot blow the Go call stack (spec §5: recursion-depth safeguard).
const maxParseDepth = 10000

const whitespaceBytes = "\x20\x09\x0a\x0d"

func isWhitespace(c byte) bool {
	switch c {
	case 0x20, 0x09, 0x0a, 0x0d:
		return true
	default:
		return false
	}
}

func isTokenBoundary(c byte) bool {
	if isWhitespace(c) {
		return true
	}
	switch c {
	case ',', ']', ':', '}':
		return true
	default:
		return false
	}
}

type parser struct {
	data []byte
	pos  int
	opts ParseOptions
	depth int
}

// Parse parses bytes into a value tree per RFC 8259 plus the \UXXXX
// escape extension (spec §4.3, §6.3). The top level may be any JSON
// value (§4.3 "Top-level").
func Parse(data []byte, opts ParseOptions) (*Value, error) {
	p := &parser{data: data, opts: opts}
	p.skipWhitespace()
	v, err := p.parseValue("top level")
	if err != nil {
		return nil, err
	}
	p.skipWhitespace()
	if p.pos != len(p.data) {
		return nil, &ParseError{Kind: ErrInvalidCharacter, Offset: p.pos, Ctx: "top level", Byte: p.data[p.pos]}
	}
	return v, nil
}

// ParseString is a convenience wrapper for Go string input.
func ParseString(s string, opts ParseOptions) (*Value, error) {
	return Parse([]byte(s), opts)
}

func (p *parser) skipWhitespace() {
	for p.pos < len(p.data) && isWhitespace(p.data[p.pos]) {
		p.pos++
	}
}

func (p *parser) errTruncated(ctx string) error {
	return &ParseError{Kind: ErrTruncated, Offset: p.pos, Ctx: ctx}
}

func (p *parser) errInvalidChar(ctx string) error {
	if p.pos >= len(p.data) {
		return p.errTruncated(ctx)
	}
	return &ParseError{Kind: ErrInvalidCharacter, Offset: p.pos, Ctx: ctx, Byte: p.data[p.pos]}
}

func (p *parser) parseValue(ctx string) (*Value, error) {
	if p.pos >= len(p.data) {
		return nil, p.errTruncated(ctx)
	}

	switch c := p.data[p.pos]; {
	case c == '{':
		return p.parseObject()
	case c == '[':
		return p.parseArray()
	case c == '"':
		return p.parseString()
	case c == 't' || c == 'f':
		return p.parseBoolean()
	case c == 'n':
		return p.parseNull()
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	default:
		return nil, p.errInvalidChar(ctx)
	}
}

func (p *parser) parseObject() (*Value, error) {
	p.depth++
	if p.depth > maxParseDepth {
		return nil, ErrNestingTooDeep
	}
	defer func() { p.depth-- }()

	p.pos++ // consume '{'
	obj := NewObject()
	seenKeys := make(map[string]bool)

	p.skipWhitespace()
	if p.pos < len(p.data) && p.data[p.pos] == '}' {
		p.pos++
		return obj, nil
	}

	for {
		p.skipWhitespace()
		if p.pos >= len(p.data) || p.data[p.pos] != '"' {
			return nil, p.errInvalidChar("object key")
		}
		keyVal, err := p.parseString()
		if err != nil {
			return nil, err
		}
		key := keyVal.StringValue()

		if p.opts&RejectDuplicateKeys != 0 {
			if seenKeys[key] {
				return nil, &ParseError{Kind: ErrDuplicateKey, Offset: p.pos, Ctx: "object key " + key}
			}
			seenKeys[key] = true
		}

		p.skipWhitespace()
		if p.pos >= len(p.data) || p.data[p.pos] != ':' {
			return nil, p.errInvalidChar("object separator")
		}
		p.pos++
		p.skipWhitespace()

		val, err := p.parseValue("object value")
		if err != nil {
			return nil, err
		}
		obj.AddMember(key, val)

		p.skipWhitespace()
		if p.pos >= len(p.data) {
			return nil, p.errTruncated("object")
		}
		switch p.data[p.pos] {
		case ',':
			p.pos++
			continue
		case '}':
			p.pos++
			return obj, nil
		default:
			return nil, p.errInvalidChar("object")
		}
	}
}

func (p *parser) parseArray() (*Value, error) {
	p.depth++
	if p.depth > maxParseDepth {
		return nil, ErrNestingTooDeep
	}
	defer func() { p.depth-- }()

	p.pos++ // consume '['
	arr := NewArray()

	p.skipWhitespace()
	if p.pos < len(p.data) && p.data[p.pos] == ']' {
		p.pos++
		return arr, nil
	}

	for {
		p.skipWhitespace()
		val, err := p.parseValue("array element")
		if err != nil {
			return nil, err
		}
		arr.AddElement(val)

		p.skipWhitespace()
		if p.pos >= len(p.data) {
			return nil, p.errTruncated("array")
		}
		switch p.data[p.pos] {
		case ',':
			p.pos++
			continue
		case ']':
			p.pos++
			return arr, nil
		default:
			return nil, p.errInvalidChar("array")
		}
	}
}

func (p *parser) parseBoolean() (*Value, error) {
	if hasPrefixAt(p.data, p.pos, "true") {
		p.pos += 4
		return NewBoolean(true), nil
	}
	if hasPrefixAt(p.data, p.pos, "false") {
		p.pos += 5
		return NewBoolean(false), nil
	}
	return nil, p.errInvalidChar("literal")
}

func (p *parser) parseNull() (*Value, error) {
	if hasPrefixAt(p.data, p.pos, "null") {
		p.pos += 4
		return NewNull(), nil
	}
	return nil, p.errInvalidChar("literal")
}

func hasPrefixAt(data []byte, pos int, lit string) bool {
	if pos+len(lit) > len(data) {
		return false
	}
	return string(data[pos:pos+len(lit)]) == lit
}

// parseNumber classifies the token as Integer (no '.'/'e'/'E') or Real
// by scanning ahead to the next token boundary, then parses it (spec
// §4.3 "Numbers").
func (p *parser) parseNumber() (*Value, error) {
	start := p.pos
	isReal := false

	if p.pos < len(p.data) && p.data[p.pos] == '-' {
		p.pos++
	}
	if p.pos >= len(p.data) || p.data[p.pos] < '0' || p.data[p.pos] > '9' {
		return nil, p.errInvalidChar("number")
	}
	for p.pos < len(p.data) && p.data[p.pos] >= '0' && p.data[p.pos] <= '9' {
		p.pos++
	}
	if p.pos < len(p.data) && p.data[p.pos] == '.' {
		isReal = true
		p.pos++
		if p.pos >= len(p.data) || p.data[p.pos] < '0' || p.data[p.pos] > '9' {
			return nil, p.errInvalidChar("number")
		}
		for p.pos < len(p.data) && p.data[p.pos] >= '0' && p.data[p.pos] <= '9' {
			p.pos++
		}
	}
	if p.pos < len(p.data) && (p.data[p.pos] == 'e' || p.data[p.pos] == 'E') {
		isReal = true
		p.pos++
		if p.pos < len(p.data) && (p.data[p.pos] == '+' || p.data[p.pos] == '-') {
			p.pos++
		}
		if p.pos >= len(p.data) || p.data[p.pos] < '0' || p.data[p.pos] > '9' {
			return nil, p.errInvalidChar("number")
		}
		for p.pos < len(p.data) && p.data[p.pos] >= '0' && p.data[p.pos] <= '9' {
			p.pos++
		}
	}

	if p.pos < len(p.data) && !isTokenBoundary(p.data[p.pos]) {
		return nil, p.errInvalidChar("number")
	}

	tok := string(p.data[start:p.pos])

	if !isReal {
		i, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
				return nil, &ParseError{Kind: ErrNumberOutOfRange, Offset: start, Ctx: "integer"}
			}
			return nil, &ParseError{Kind: ErrInvalidNumber, Offset: start, Ctx: "integer"}
		}
		return NewInteger(i), nil
	}

	r, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return nil, &ParseError{Kind: ErrNumberOutOfRange, Offset: start, Ctx: "real"}
		}
		return nil, &ParseError{Kind: ErrInvalidNumber, Offset: start, Ctx: "real"}
	}
	return NewReal(r), nil
}
