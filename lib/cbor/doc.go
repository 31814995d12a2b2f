// Copyright 2026 The CBD Authors
// SPDX-License-Identifier: Apache-2.0

// Package cbor implements the binary side of the transcoder: a decoder
// from RFC 8949 wire bytes to value.Value and an encoder back.
//
// The decoder accepts general CBOR: definite and indefinite lengths,
// tags, simple values, and half/single/double-precision floats. It
// consumes exactly one top-level item and rejects trailing bytes.
//
// The encoder is deliberately narrower than canonical CBOR. It always
// emits definite lengths and minimal-width integer heads, but floats
// are always 64-bit and map pairs keep their source order instead of
// being sorted. Same input order in, same byte order out.
package cbor
