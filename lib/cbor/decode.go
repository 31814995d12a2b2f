// Copyright 2026 The CBD Authors
// SPDX-License-Identifier: Apache-2.0

package cbor

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/x448/float16"

	"github.com/fotoetienne/cbd/lib/value"
)

// Major types, RFC 8949 §3: top three bits of the initial byte.
const (
	majorUnsigned   = 0
	majorNegative   = 1
	majorByteString = 2
	majorTextString = 3
	majorArray      = 4
	majorMap        = 5
	majorTag        = 6
	majorSimple     = 7
)

// Additional-info values with special meaning (bottom five bits).
const (
	infoOneByte    = 24
	infoTwoBytes   = 25
	infoFourBytes  = 26
	infoEightBytes = 27
	infoIndefinite = 31
)

// breakByte terminates indefinite-length containers.
const breakByte = 0xff

// DefaultMaxDepth bounds array/map/tag nesting during decode. Generous
// for any real document, small enough that adversarial nesting cannot
// exhaust the stack.
const DefaultMaxDepth = 256

// DecodeOptions configures Decode.
type DecodeOptions struct {
	// MaxDepth is the maximum container nesting depth. Zero means
	// DefaultMaxDepth.
	MaxDepth int
}

// Decode parses exactly one CBOR data item from data with default
// options. Trailing bytes after the item are an error.
func Decode(data []byte) (value.Value, error) {
	return DecodeWithOptions(data, DecodeOptions{})
}

// DecodeWithOptions parses exactly one CBOR data item from data.
func DecodeWithOptions(data []byte, options DecodeOptions) (value.Value, error) {
	maxDepth := options.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	d := &decoder{data: data, maxDepth: maxDepth}
	item, err := d.decodeItem(0)
	if err != nil {
		return nil, err
	}
	if d.offset != len(d.data) {
		return nil, fmt.Errorf("cbor: %d byte(s) at offset %d: %w", len(d.data)-d.offset, d.offset, ErrTrailingData)
	}
	return item, nil
}

type decoder struct {
	data     []byte
	offset   int
	maxDepth int
}

// failf wraps sentinel with the byte offset where decoding failed.
func (d *decoder) failf(offset int, sentinel error, format string, args ...any) error {
	detail := fmt.Sprintf(format, args...)
	if detail != "" {
		detail = ": " + detail
	}
	return fmt.Errorf("cbor: at byte %d%s: %w", offset, detail, sentinel)
}

func (d *decoder) readByte() (byte, error) {
	if d.offset >= len(d.data) {
		return 0, d.failf(d.offset, ErrUnexpectedEOF, "")
	}
	b := d.data[d.offset]
	d.offset++
	return b, nil
}

func (d *decoder) readBytes(count uint64) ([]byte, error) {
	remaining := uint64(len(d.data) - d.offset)
	if count > remaining {
		return nil, d.failf(d.offset, ErrUnexpectedEOF, "need %d byte(s), have %d", count, remaining)
	}
	chunk := d.data[d.offset : d.offset+int(count)]
	d.offset += int(count)
	return chunk, nil
}

// readArgument resolves the additional-info field to its argument
// value: either embedded directly (0-23) or following in 1/2/4/8
// big-endian bytes. Reserved values 28-30 and indefinite (31) are
// rejected; callers that accept indefinite length check for info 31
// before calling this.
func (d *decoder) readArgument(info byte) (uint64, error) {
	switch {
	case info < infoOneByte:
		return uint64(info), nil
	case info == infoOneByte:
		b, err := d.readByte()
		if err != nil {
			return 0, err
		}
		return uint64(b), nil
	case info == infoTwoBytes:
		raw, err := d.readBytes(2)
		if err != nil {
			return 0, err
		}
		return uint64(binary.BigEndian.Uint16(raw)), nil
	case info == infoFourBytes:
		raw, err := d.readBytes(4)
		if err != nil {
			return 0, err
		}
		return uint64(binary.BigEndian.Uint32(raw)), nil
	case info == infoEightBytes:
		raw, err := d.readBytes(8)
		if err != nil {
			return 0, err
		}
		return binary.BigEndian.Uint64(raw), nil
	default:
		return 0, d.failf(d.offset-1, ErrInvalidAdditionalInfo, "additional info %d", info)
	}
}

func (d *decoder) decodeItem(depth int) (value.Value, error) {
	if depth > d.maxDepth {
		return nil, d.failf(d.offset, ErrDepthExceeded, "depth limit %d", d.maxDepth)
	}

	start := d.offset
	initial, err := d.readByte()
	if err != nil {
		return nil, err
	}
	major := initial >> 5
	info := initial & 0x1f

	switch major {
	case majorUnsigned:
		if info == infoIndefinite {
			return nil, d.failf(start, ErrInvalidAdditionalInfo, "indefinite length on unsigned integer")
		}
		magnitude, err := d.readArgument(info)
		if err != nil {
			return nil, err
		}
		return value.FromUint64(magnitude), nil

	case majorNegative:
		if info == infoIndefinite {
			return nil, d.failf(start, ErrInvalidAdditionalInfo, "indefinite length on negative integer")
		}
		magnitude, err := d.readArgument(info)
		if err != nil {
			return nil, err
		}
		return value.NegFromMagnitude(magnitude), nil

	case majorByteString:
		raw, err := d.decodeString(major, info, start)
		if err != nil {
			return nil, err
		}
		return value.Bytes(raw), nil

	case majorTextString:
		raw, err := d.decodeString(major, info, start)
		if err != nil {
			return nil, err
		}
		return value.String(raw), nil

	case majorArray:
		return d.decodeArray(info, depth, start)

	case majorMap:
		return d.decodeMap(info, depth, start)

	case majorTag:
		if info == infoIndefinite {
			return nil, d.failf(start, ErrInvalidAdditionalInfo, "indefinite length on tag")
		}
		number, err := d.readArgument(info)
		if err != nil {
			return nil, err
		}
		content, err := d.decodeItem(depth + 1)
		if err != nil {
			return nil, err
		}
		return value.Tag{Number: number, Content: content}, nil

	default: // majorSimple
		return d.decodeSimple(info, start)
	}
}

// decodeString handles major types 2 and 3, definite or indefinite.
// Indefinite-length strings are a sequence of definite-length chunks
// of the same major type, terminated by a break byte; text chunks must
// each be valid UTF-8 on their own (a rune split across chunks is
// malformed per RFC 8949 §3.2.3).
func (d *decoder) decodeString(major, info byte, start int) ([]byte, error) {
	if info != infoIndefinite {
		length, err := d.readArgument(info)
		if err != nil {
			return nil, err
		}
		raw, err := d.readBytes(length)
		if err != nil {
			return nil, err
		}
		if major == majorTextString && !utf8.Valid(raw) {
			return nil, d.failf(start, ErrInvalidTextString, "")
		}
		return raw, nil
	}

	var assembled []byte
	for {
		chunkStart := d.offset
		initial, err := d.readByte()
		if err != nil {
			return nil, err
		}
		if initial == breakByte {
			return assembled, nil
		}
		chunkMajor := initial >> 5
		chunkInfo := initial & 0x1f
		if chunkMajor != major || chunkInfo == infoIndefinite {
			return nil, d.failf(chunkStart, ErrMalformedIndefiniteString, "chunk with initial byte 0x%02x", initial)
		}
		length, err := d.readArgument(chunkInfo)
		if err != nil {
			return nil, err
		}
		chunk, err := d.readBytes(length)
		if err != nil {
			return nil, err
		}
		if major == majorTextString && !utf8.Valid(chunk) {
			return nil, d.failf(chunkStart, ErrInvalidTextString, "")
		}
		assembled = append(assembled, chunk...)
	}
}

func (d *decoder) decodeArray(info byte, depth, start int) (value.Value, error) {
	if info == infoIndefinite {
		var elements value.Array
		for {
			if d.peekBreak() {
				return elements, nil
			}
			element, err := d.decodeItem(depth + 1)
			if err != nil {
				return nil, err
			}
			elements = append(elements, element)
		}
	}

	count, err := d.readArgument(info)
	if err != nil {
		return nil, err
	}
	// Every element occupies at least one byte, so a count beyond the
	// remaining input is truncated regardless of content. Checking up
	// front also makes the preallocation below safe.
	if count > uint64(len(d.data)-d.offset) {
		return nil, d.failf(start, ErrUnexpectedEOF, "array of %d element(s)", count)
	}
	elements := make(value.Array, 0, count)
	for i := uint64(0); i < count; i++ {
		element, err := d.decodeItem(depth + 1)
		if err != nil {
			return nil, err
		}
		elements = append(elements, element)
	}
	return elements, nil
}

func (d *decoder) decodeMap(info byte, depth, start int) (value.Value, error) {
	if info == infoIndefinite {
		var pairs value.Map
		for {
			if d.peekBreak() {
				return pairs, nil
			}
			pair, err := d.decodePair(depth)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, pair)
		}
	}

	count, err := d.readArgument(info)
	if err != nil {
		return nil, err
	}
	// Each pair occupies at least two bytes.
	if count > uint64(len(d.data)-d.offset)/2 {
		return nil, d.failf(start, ErrUnexpectedEOF, "map of %d pair(s)", count)
	}
	pairs := make(value.Map, 0, count)
	for i := uint64(0); i < count; i++ {
		pair, err := d.decodePair(depth)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

func (d *decoder) decodePair(depth int) (value.Pair, error) {
	key, err := d.decodeItem(depth + 1)
	if err != nil {
		return value.Pair{}, err
	}
	element, err := d.decodeItem(depth + 1)
	if err != nil {
		return value.Pair{}, err
	}
	return value.Pair{Key: key, Value: element}, nil
}

// peekBreak consumes a break byte at the current offset if present.
// Only called at element boundaries inside indefinite containers,
// which is the one place a break is legal.
func (d *decoder) peekBreak() bool {
	if d.offset < len(d.data) && d.data[d.offset] == breakByte {
		d.offset++
		return true
	}
	return false
}

// decodeSimple handles major type 7: simple values, floats, and the
// break code.
func (d *decoder) decodeSimple(info byte, start int) (value.Value, error) {
	switch info {
	case 20:
		return value.Bool(false), nil
	case 21:
		return value.Bool(true), nil
	case 22:
		return value.Null{}, nil
	case 23:
		// undefined: kept as its simple-value code so it re-encodes
		// faithfully instead of collapsing to null.
		return value.Simple(23), nil

	case infoOneByte:
		code, err := d.readByte()
		if err != nil {
			return nil, err
		}
		// Two-byte simple values below 32 shadow the one-byte forms
		// and are malformed (RFC 8949 §3.3).
		if code < 32 {
			return nil, d.failf(start, ErrInvalidAdditionalInfo, "two-byte simple value %d", code)
		}
		return value.Simple(code), nil

	case infoTwoBytes:
		raw, err := d.readBytes(2)
		if err != nil {
			return nil, err
		}
		half := float16.Frombits(binary.BigEndian.Uint16(raw))
		return value.Float(half.Float32()), nil

	case infoFourBytes:
		raw, err := d.readBytes(4)
		if err != nil {
			return nil, err
		}
		return value.Float(math.Float32frombits(binary.BigEndian.Uint32(raw))), nil

	case infoEightBytes:
		raw, err := d.readBytes(8)
		if err != nil {
			return nil, err
		}
		return value.Float(math.Float64frombits(binary.BigEndian.Uint64(raw))), nil

	case infoIndefinite:
		return nil, d.failf(start, ErrUnexpectedBreak, "")

	case 28, 29, 30:
		return nil, d.failf(start, ErrInvalidAdditionalInfo, "additional info %d", info)

	default: // 0-19: unassigned simple values.
		return value.Simple(info), nil
	}
}
