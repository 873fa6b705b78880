package jsonvalue

// parseString scans the raw slice between two unescaped quotes, then
// decodes it via decodeStringBody. An embedded backslash always
// consumes the next byte during the boundary scan so that `\"` never
// ends the string early (spec §4.3 "Strings").
func (p *parser) parseString() (*Value, error) {
	if p.pos >= len(p.data) || p.data[p.pos] != '"' {
		return nil, p.errInvalidChar("string")
	}
	start := p.pos
	p.pos++ // consume opening quote

	for {
		if p.pos >= len(p.data) {
			return nil, p.errTruncated("string")
		}
		c := p.data[p.pos]
		if c == '"' {
			raw := p.data[start+1 : p.pos]
			p.pos++
			decoded, err := p.decodeStringBody(raw, start)
			if err != nil {
				return nil, err
			}
			return NewString(decoded), nil
		}
		if c == '\\' {
			p.pos += 2 // skip the escaped byte too; validated during decode
			continue
		}
		p.pos++
	}
}

// decodeStringBody decodes the escapes in raw (the bytes between the
// quotes) and re-encodes decoded codepoints as UTF-8 via the C1 codec.
// bodyOffset is the absolute offset of the opening quote, used to
// build error positions.
func (p *parser) decodeStringBody(raw []byte, bodyOffset int) ([]byte, error) {
	out := make([]byte, 0, len(raw))
	i := 0
	for i < len(raw) {
		c := raw[i]

		if c == 0x00 {
			if p.opts&RejectNullCharacters != 0 {
				return nil, &ParseError{Kind: ErrNullCharacter, Offset: bodyOffset + 1 + i, Ctx: "string"}
			}
			out = append(out, 0x00)
			i++
			continue
		}

		if c != '\\' {
			out = append(out, c)
			i++
			continue
		}

		// c == '\\'
		if i+1 >= len(raw) {
			return nil, &ParseError{Kind: ErrInvalidEscape, Offset: bodyOffset + 1 + i, Ctx: "string escape"}
		}
		esc := raw[i+1]
		switch esc {
		case '"':
			out = append(out, '"')
			i += 2
		case '\\':
			out = append(out, '\\')
			i += 2
		case '/':
			out = append(out, '/')
			i += 2
		case 'b':
			out = append(out, 0x08)
			i += 2
		case 'f':
			out = append(out, 0x0c)
			i += 2
		case 'n':
			out = append(out, 0x0a)
			i += 2
		case 'r':
			out = append(out, 0x0d)
			i += 2
		case 't':
			out = append(out, 0x09)
			i += 2
		case 'u', 'U':
			cp, consumed, err := p.decodeUnicodeEscape(raw, i, bodyOffset)
			if err != nil {
				return nil, err
			}
			if cp == 0 && p.opts&RejectNullCharacters != 0 {
				return nil, &ParseError{Kind: ErrNullCharacter, Offset: bodyOffset + 1 + i, Ctx: "string"}
			}
			enc, err := Encode(cp)
			if err != nil {
				return nil, &ParseError{Kind: ErrInvalidUnicode, Offset: bodyOffset + 1 + i, Ctx: "string escape"}
			}
			out = append(out, enc...)
			i += consumed
		default:
			return nil, &ParseError{Kind: ErrInvalidEscape, Offset: bodyOffset + 1 + i, Ctx: "string escape"}
		}
	}
	return out, nil
}

// decodeUnicodeEscape decodes a \uXXXX or \UXXXX escape starting at
// raw[i] (pointing at the 'u'/'U'), including the combined surrogate
// pair case for codepoints above U+FFFF (spec §4.3). Returns the
// decoded codepoint and the number of raw bytes consumed, including
// the second escape if a surrogate pair was combined.
func (p *parser) decodeUnicodeEscape(raw []byte, i int, bodyOffset int) (rune, int, error) {
	// raw[i] == '\\', raw[i+1] == 'u' or 'U'
	if i+6 > len(raw) {
		return 0, 0, &ParseError{Kind: ErrInvalidUnicode, Offset: bodyOffset + 1 + i, Ctx: "unicode escape"}
	}
	hex := raw[i+2 : i+6]
	cp, ok := parseHex4(hex)
	if !ok {
		return 0, 0, &ParseError{Kind: ErrInvalidUnicode, Offset: bodyOffset + 1 + i, Ctx: "unicode escape"}
	}

	if cp >= 0xD800 && cp <= 0xDBFF {
		// High surrogate: the next six bytes must be \uXXXX (or \UXXXX)
		// with a low surrogate.
		if i+12 > len(raw) || raw[i+6] != '\\' || (raw[i+7] != 'u' && raw[i+7] != 'U') {
			return 0, 0, &ParseError{Kind: ErrInvalidUnicode, Offset: bodyOffset + 1 + i, Ctx: "unpaired surrogate"}
		}
		lowHex := raw[i+8 : i+12]
		low, ok := parseHex4(lowHex)
		if !ok {
			return 0, 0, &ParseError{Kind: ErrInvalidUnicode, Offset: bodyOffset + 1 + i, Ctx: "unicode escape"}
		}
		if low < 0xDC00 || low > 0xDFFF {
			return 0, 0, &ParseError{Kind: ErrInvalidUnicode, Offset: bodyOffset + 1 + i, Ctx: "unpaired surrogate"}
		}
		combined := rune(0x10000 + (cp-0xD800)<<10 + (low - 0xDC00))
		return combined, 12, nil
	}

	if cp >= 0xDC00 && cp <= 0xDFFF {
		// A low surrogate with no preceding high surrogate is an error.
		return 0, 0, &ParseError{Kind: ErrInvalidUnicode, Offset: bodyOffset + 1 + i, Ctx: "unpaired surrogate"}
	}

	return rune(cp), 6, nil
}

func parseHex4(b []byte) (rune, bool) {
	if len(b) != 4 {
		return 0, false
	}
	var v rune
	for _, c := range b {
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			v |= rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v |= rune(c-'A') + 10
		default:
			return 0, false
		}
	}
	return v, true
}
