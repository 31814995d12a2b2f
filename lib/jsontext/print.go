// Copyright 2026 The CBD Authors
// SPDX-License-Identifier: Apache-2.0

package jsontext

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fotoetienne/cbd/lib/b64"
	"github.com/fotoetienne/cbd/lib/value"
)

// Print serializes v as compact JSON: no whitespace except a single
// space after each ':'.
//
// Lossy projections, by policy:
//   - Bytes become an unpadded standard-base64 JSON string.
//   - Tags print their content only; the tag number is dropped.
//   - Simple values and non-finite floats print as null.
//   - Integer map keys print as their decimal form; any other
//     non-string key is ErrNonStringMapKey.
func Print(v value.Value) (string, error) {
	var out strings.Builder
	if err := printValue(&out, v); err != nil {
		return "", err
	}
	return out.String(), nil
}

func printValue(out *strings.Builder, v value.Value) error {
	switch item := v.(type) {
	case value.Null:
		out.WriteString("null")

	case value.Bool:
		if item {
			out.WriteString("true")
		} else {
			out.WriteString("false")
		}

	case value.Integer:
		out.WriteString(item.String())

	case value.Float:
		out.WriteString(formatFloat(float64(item)))

	case value.Bytes:
		writeQuoted(out, b64.Encode(item))

	case value.String:
		writeQuoted(out, string(item))

	case value.Array:
		out.WriteByte('[')
		for index, element := range item {
			if index > 0 {
				out.WriteByte(',')
			}
			if err := printValue(out, element); err != nil {
				return err
			}
		}
		out.WriteByte(']')

	case value.Map:
		out.WriteByte('{')
		for index, pair := range item {
			if index > 0 {
				out.WriteByte(',')
			}
			key, err := keyString(pair.Key)
			if err != nil {
				return err
			}
			writeQuoted(out, key)
			out.WriteString(": ")
			if err := printValue(out, pair.Value); err != nil {
				return err
			}
		}
		out.WriteByte('}')

	case value.Tag:
		return printValue(out, item.Content)

	case value.Simple:
		out.WriteString("null")

	default: // nil Value
		return ErrUnsupportedValue
	}
	return nil
}

// keyString resolves a map key to its JSON key text. Text strings pass
// through and integers stringify to decimal; everything else has no
// defensible string form.
func keyString(key value.Value) (string, error) {
	switch item := key.(type) {
	case value.String:
		return string(item), nil
	case value.Integer:
		return item.String(), nil
	default:
		return "", fmt.Errorf("key of type %T: %w", key, ErrNonStringMapKey)
	}
}

// formatFloat renders a float with the shortest representation that
// round-trips, forcing a ".0" suffix onto integral values so the
// integer/float distinction survives in the output text. Non-finite
// values have no JSON form and render as null.
func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	formatted := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(formatted, ".eE") {
		formatted += ".0"
	}
	return formatted
}

// writeQuoted writes text as a JSON string literal. Only the required
// escapes are applied; multi-byte UTF-8 passes through unescaped.
func writeQuoted(out *strings.Builder, text string) {
	out.WriteByte('"')
	for index := 0; index < len(text); index++ {
		b := text[index]
		switch {
		case b == '"':
			out.WriteString(`\"`)
		case b == '\\':
			out.WriteString(`\\`)
		case b == '\b':
			out.WriteString(`\b`)
		case b == '\f':
			out.WriteString(`\f`)
		case b == '\n':
			out.WriteString(`\n`)
		case b == '\r':
			out.WriteString(`\r`)
		case b == '\t':
			out.WriteString(`\t`)
		case b < 0x20:
			fmt.Fprintf(out, `\u%04x`, b)
		default:
			out.WriteByte(b)
		}
	}
	out.WriteByte('"')
}
