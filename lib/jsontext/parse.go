// Copyright 2026 The CBD Authors
// SPDX-License-Identifier: Apache-2.0

package jsontext

import (
	"fmt"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/fotoetienne/cbd/lib/value"
)

// DefaultMaxDepth bounds object/array nesting during parse, mirroring
// the CBOR decoder's limit.
const DefaultMaxDepth = 256

// ParseOptions configures Parse.
type ParseOptions struct {
	// MaxDepth is the maximum container nesting depth. Zero means
	// DefaultMaxDepth.
	MaxDepth int
}

// Parse reads exactly one JSON value from data with default options.
// Surrounding whitespace is permitted; any other trailing content is
// an error.
func Parse(data []byte) (value.Value, error) {
	return ParseWithOptions(data, ParseOptions{})
}

// ParseWithOptions reads exactly one JSON value from data.
func ParseWithOptions(data []byte, options ParseOptions) (value.Value, error) {
	maxDepth := options.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	p := &parser{data: data, maxDepth: maxDepth}
	p.skipWhitespace()
	item, err := p.parseValue(0)
	if err != nil {
		return nil, err
	}
	p.skipWhitespace()
	if p.offset != len(p.data) {
		return nil, p.failf(p.offset, ErrTrailingData, "")
	}
	return item, nil
}

type parser struct {
	data     []byte
	offset   int
	maxDepth int
}

func (p *parser) failf(offset int, sentinel error, format string, args ...any) error {
	detail := fmt.Sprintf(format, args...)
	if detail != "" {
		detail = ": " + detail
	}
	return fmt.Errorf("json: at byte %d%s: %w", offset, detail, sentinel)
}

func (p *parser) skipWhitespace() {
	for p.offset < len(p.data) {
		switch p.data[p.offset] {
		case ' ', '\t', '\n', '\r':
			p.offset++
		default:
			return
		}
	}
}

func (p *parser) parseValue(depth int) (value.Value, error) {
	if depth > p.maxDepth {
		return nil, p.failf(p.offset, ErrDepthExceeded, "depth limit %d", p.maxDepth)
	}
	if p.offset >= len(p.data) {
		return nil, p.failf(p.offset, ErrSyntax, "unexpected end of input")
	}

	switch b := p.data[p.offset]; {
	case b == '{':
		return p.parseObject(depth)
	case b == '[':
		return p.parseArray(depth)
	case b == '"':
		text, err := p.parseString()
		if err != nil {
			return nil, err
		}
		return value.String(text), nil
	case b == 't':
		if err := p.expectLiteral("true"); err != nil {
			return nil, err
		}
		return value.Bool(true), nil
	case b == 'f':
		if err := p.expectLiteral("false"); err != nil {
			return nil, err
		}
		return value.Bool(false), nil
	case b == 'n':
		if err := p.expectLiteral("null"); err != nil {
			return nil, err
		}
		return value.Null{}, nil
	case b == '-' || (b >= '0' && b <= '9'):
		return p.parseNumber()
	default:
		return nil, p.failf(p.offset, ErrSyntax, "unexpected character %q", b)
	}
}

func (p *parser) expectLiteral(literal string) error {
	start := p.offset
	if len(p.data)-p.offset < len(literal) || string(p.data[p.offset:p.offset+len(literal)]) != literal {
		return p.failf(start, ErrSyntax, "invalid literal")
	}
	p.offset += len(literal)
	return nil
}

func (p *parser) parseObject(depth int) (value.Value, error) {
	p.offset++ // consume '{'
	pairs := value.Map{}

	p.skipWhitespace()
	if p.offset < len(p.data) && p.data[p.offset] == '}' {
		p.offset++
		return pairs, nil
	}

	for {
		p.skipWhitespace()
		if p.offset >= len(p.data) || p.data[p.offset] != '"' {
			return nil, p.failf(p.offset, ErrSyntax, "expected object key")
		}
		key, err := p.parseString()
		if err != nil {
			return nil, err
		}

		p.skipWhitespace()
		if p.offset >= len(p.data) || p.data[p.offset] != ':' {
			return nil, p.failf(p.offset, ErrSyntax, "expected ':' after object key")
		}
		p.offset++

		p.skipWhitespace()
		element, err := p.parseValue(depth + 1)
		if err != nil {
			return nil, err
		}
		// Duplicate keys are retained as written; collapsing them is
		// a consumer policy, not a parser concern.
		pairs = append(pairs, value.Pair{Key: value.String(key), Value: element})

		p.skipWhitespace()
		if p.offset >= len(p.data) {
			return nil, p.failf(p.offset, ErrSyntax, "unterminated object")
		}
		switch p.data[p.offset] {
		case ',':
			p.offset++
		case '}':
			p.offset++
			return pairs, nil
		default:
			return nil, p.failf(p.offset, ErrSyntax, "expected ',' or '}' in object, got %q", p.data[p.offset])
		}
	}
}

func (p *parser) parseArray(depth int) (value.Value, error) {
	p.offset++ // consume '['
	elements := value.Array{}

	p.skipWhitespace()
	if p.offset < len(p.data) && p.data[p.offset] == ']' {
		p.offset++
		return elements, nil
	}

	for {
		p.skipWhitespace()
		element, err := p.parseValue(depth + 1)
		if err != nil {
			return nil, err
		}
		elements = append(elements, element)

		p.skipWhitespace()
		if p.offset >= len(p.data) {
			return nil, p.failf(p.offset, ErrSyntax, "unterminated array")
		}
		switch p.data[p.offset] {
		case ',':
			p.offset++
		case ']':
			p.offset++
			return elements, nil
		default:
			return nil, p.failf(p.offset, ErrSyntax, "expected ',' or ']' in array, got %q", p.data[p.offset])
		}
	}
}

// parseString scans a JSON string starting at the opening quote and
// returns its decoded contents.
func (p *parser) parseString() (string, error) {
	start := p.offset
	p.offset++ // consume '"'
	var out []byte

	for {
		if p.offset >= len(p.data) {
			return "", p.failf(start, ErrSyntax, "unterminated string")
		}
		b := p.data[p.offset]
		switch {
		case b == '"':
			p.offset++
			if !utf8.Valid(out) {
				return "", p.failf(start, ErrSyntax, "string is not valid UTF-8")
			}
			return string(out), nil

		case b == '\\':
			decoded, err := p.parseEscape()
			if err != nil {
				return "", err
			}
			out = append(out, decoded...)

		case b < 0x20:
			return "", p.failf(p.offset, ErrSyntax, "unescaped control character 0x%02x in string", b)

		default:
			out = append(out, b)
			p.offset++
		}
	}
}

// parseEscape decodes one backslash escape starting at the backslash.
func (p *parser) parseEscape() ([]byte, error) {
	start := p.offset
	p.offset++ // consume '\'
	if p.offset >= len(p.data) {
		return nil, p.failf(start, ErrInvalidEscape, "truncated escape")
	}

	b := p.data[p.offset]
	p.offset++
	switch b {
	case '"', '\\', '/':
		return []byte{b}, nil
	case 'b':
		return []byte{'\b'}, nil
	case 'f':
		return []byte{'\f'}, nil
	case 'n':
		return []byte{'\n'}, nil
	case 'r':
		return []byte{'\r'}, nil
	case 't':
		return []byte{'\t'}, nil
	case 'u':
		return p.parseUnicodeEscape(start)
	default:
		return nil, p.failf(start, ErrInvalidEscape, `unknown escape \%c`, b)
	}
}

// parseUnicodeEscape decodes \uXXXX, consuming a second \uXXXX for
// surrogate pairs. An unpaired surrogate is an error rather than a
// replacement character.
func (p *parser) parseUnicodeEscape(start int) ([]byte, error) {
	first, err := p.readHex4(start)
	if err != nil {
		return nil, err
	}

	if utf16.IsSurrogate(rune(first)) {
		if first >= 0xdc00 {
			return nil, p.failf(start, ErrInvalidEscape, "unpaired low surrogate")
		}
		if len(p.data)-p.offset < 2 || p.data[p.offset] != '\\' || p.data[p.offset+1] != 'u' {
			return nil, p.failf(start, ErrInvalidEscape, "high surrogate without low surrogate")
		}
		p.offset += 2
		second, err := p.readHex4(start)
		if err != nil {
			return nil, err
		}
		combined := utf16.DecodeRune(rune(first), rune(second))
		if combined == utf8.RuneError {
			return nil, p.failf(start, ErrInvalidEscape, "invalid surrogate pair")
		}
		return utf8.AppendRune(nil, combined), nil
	}

	return utf8.AppendRune(nil, rune(first)), nil
}

func (p *parser) readHex4(start int) (uint16, error) {
	if len(p.data)-p.offset < 4 {
		return 0, p.failf(start, ErrInvalidEscape, "truncated \\u escape")
	}
	var out uint16
	for i := 0; i < 4; i++ {
		b := p.data[p.offset]
		out <<= 4
		switch {
		case b >= '0' && b <= '9':
			out |= uint16(b - '0')
		case b >= 'a' && b <= 'f':
			out |= uint16(b-'a') + 10
		case b >= 'A' && b <= 'F':
			out |= uint16(b-'A') + 10
		default:
			return 0, p.failf(start, ErrInvalidEscape, "invalid hex digit %q in \\u escape", b)
		}
		p.offset++
	}
	return out, nil
}

// parseNumber scans a number literal. A literal without '.' or an
// exponent is an Integer; integers that overflow both int64 and uint64
// fall back to Float.
func (p *parser) parseNumber() (value.Value, error) {
	start := p.offset
	isFloat := false

	if p.data[p.offset] == '-' {
		p.offset++
	}

	// Integer part: a lone zero or a nonzero digit run.
	switch {
	case p.offset < len(p.data) && p.data[p.offset] == '0':
		p.offset++
	case p.offset < len(p.data) && p.data[p.offset] >= '1' && p.data[p.offset] <= '9':
		for p.offset < len(p.data) && p.data[p.offset] >= '0' && p.data[p.offset] <= '9' {
			p.offset++
		}
	default:
		return nil, p.failf(start, ErrSyntax, "invalid number")
	}

	// Fraction.
	if p.offset < len(p.data) && p.data[p.offset] == '.' {
		isFloat = true
		p.offset++
		if p.offset >= len(p.data) || p.data[p.offset] < '0' || p.data[p.offset] > '9' {
			return nil, p.failf(start, ErrSyntax, "invalid number: missing fraction digits")
		}
		for p.offset < len(p.data) && p.data[p.offset] >= '0' && p.data[p.offset] <= '9' {
			p.offset++
		}
	}

	// Exponent.
	if p.offset < len(p.data) && (p.data[p.offset] == 'e' || p.data[p.offset] == 'E') {
		isFloat = true
		p.offset++
		if p.offset < len(p.data) && (p.data[p.offset] == '+' || p.data[p.offset] == '-') {
			p.offset++
		}
		if p.offset >= len(p.data) || p.data[p.offset] < '0' || p.data[p.offset] > '9' {
			return nil, p.failf(start, ErrSyntax, "invalid number: missing exponent digits")
		}
		for p.offset < len(p.data) && p.data[p.offset] >= '0' && p.data[p.offset] <= '9' {
			p.offset++
		}
	}

	literal := string(p.data[start:p.offset])

	if !isFloat {
		if literal[0] == '-' {
			if parsed, err := strconv.ParseInt(literal, 10, 64); err == nil {
				return value.FromInt64(parsed), nil
			}
		} else {
			if parsed, err := strconv.ParseUint(literal, 10, 64); err == nil {
				return value.FromUint64(parsed), nil
			}
		}
		// Overflows 64 bits: fall through to float.
	}

	parsed, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return nil, p.failf(start, ErrSyntax, "invalid number %q", literal)
	}
	return value.Float(parsed), nil
}
