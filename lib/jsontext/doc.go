// Copyright 2026 The CBD Authors
// SPDX-License-Identifier: Apache-2.0

// Package jsontext implements the text side of the transcoder: a
// parser from JSON to value.Value and a compact printer back.
//
// The parser differs from encoding/json where the transcoder needs it
// to: object member order is preserved (including duplicate keys, kept
// as written), and the integer/float distinction follows the literal
// form — a number without '.' or an exponent is an Integer, anything
// else is a Float. That distinction decides the CBOR major type on the
// way out.
//
// The printer is compact except for a single space after ':'
// ({"key": "value"}). Byte strings project to unpadded base64 text,
// tags print their content only, and integer map keys stringify to
// their decimal form; those are the documented lossy edges of the
// CBOR→JSON direction.
package jsontext
