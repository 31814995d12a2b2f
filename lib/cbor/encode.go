// Copyright 2026 The CBD Authors
// SPDX-License-Identifier: Apache-2.0

package cbor

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/fotoetienne/cbd/lib/value"
)

// Encode serializes v as a single CBOR data item. The output always
// uses definite lengths and minimal-width integer heads. Floats are
// always emitted as 64-bit doubles and map pairs keep their stored
// order; both are deliberate departures from canonical CBOR in favor
// of byte-for-byte predictability from the Value alone.
func Encode(v value.Value) ([]byte, error) {
	e := &encoder{}
	if err := e.encodeItem(v); err != nil {
		return nil, err
	}
	return e.out, nil
}

type encoder struct {
	out []byte
}

// writeHead emits the initial byte and argument for the given major
// type, using the smallest additional-info width that fits.
func (e *encoder) writeHead(major byte, argument uint64) {
	base := major << 5
	switch {
	case argument < infoOneByte:
		e.out = append(e.out, base|byte(argument))
	case argument <= math.MaxUint8:
		e.out = append(e.out, base|infoOneByte, byte(argument))
	case argument <= math.MaxUint16:
		e.out = append(e.out, base|infoTwoBytes)
		e.out = binary.BigEndian.AppendUint16(e.out, uint16(argument))
	case argument <= math.MaxUint32:
		e.out = append(e.out, base|infoFourBytes)
		e.out = binary.BigEndian.AppendUint32(e.out, uint32(argument))
	default:
		e.out = append(e.out, base|infoEightBytes)
		e.out = binary.BigEndian.AppendUint64(e.out, argument)
	}
}

func (e *encoder) encodeItem(v value.Value) error {
	switch item := v.(type) {
	case value.Null:
		e.out = append(e.out, majorSimple<<5|22)

	case value.Bool:
		if item {
			e.out = append(e.out, majorSimple<<5|21)
		} else {
			e.out = append(e.out, majorSimple<<5|20)
		}

	case value.Integer:
		if item.Negative() {
			e.writeHead(majorNegative, item.Magnitude())
		} else {
			e.writeHead(majorUnsigned, item.Magnitude())
		}

	case value.Float:
		e.out = append(e.out, majorSimple<<5|infoEightBytes)
		e.out = binary.BigEndian.AppendUint64(e.out, math.Float64bits(float64(item)))

	case value.Bytes:
		e.writeHead(majorByteString, uint64(len(item)))
		e.out = append(e.out, item...)

	case value.String:
		e.writeHead(majorTextString, uint64(len(item)))
		e.out = append(e.out, item...)

	case value.Array:
		e.writeHead(majorArray, uint64(len(item)))
		for _, element := range item {
			if err := e.encodeItem(element); err != nil {
				return err
			}
		}

	case value.Map:
		e.writeHead(majorMap, uint64(len(item)))
		for _, pair := range item {
			if err := e.encodeItem(pair.Key); err != nil {
				return err
			}
			if err := e.encodeItem(pair.Value); err != nil {
				return err
			}
		}

	case value.Tag:
		e.writeHead(majorTag, item.Number)
		if err := e.encodeItem(item.Content); err != nil {
			return err
		}

	case value.Simple:
		switch {
		case item < infoOneByte:
			e.out = append(e.out, majorSimple<<5|byte(item))
		case item < 32:
			// Codes 24-31 have no encoding: the one-byte form is
			// taken by floats and the break code, and the two-byte
			// form below 32 is malformed (RFC 8949 §3.3). The decoder
			// never produces them, so only hand-built values land here.
			return fmt.Errorf("simple value %d: %w", item, ErrUnsupportedValue)
		default:
			e.out = append(e.out, majorSimple<<5|infoOneByte, byte(item))
		}

	default: // nil Value
		return ErrUnsupportedValue
	}
	return nil
}
