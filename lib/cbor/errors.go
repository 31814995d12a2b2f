// Copyright 2026 The CBD Authors
// SPDX-License-Identifier: Apache-2.0

package cbor

import "errors"

// Decode error sentinels. Decode wraps these with the byte offset of
// the failure; match with errors.Is.
var (
	// ErrUnexpectedEOF means the input ended in the middle of an item.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrInvalidAdditionalInfo means an initial byte used a reserved
	// additional-info value (28-30), indefinite length on a major type
	// that does not support it, or a two-byte simple value below 32.
	ErrInvalidAdditionalInfo = errors.New("invalid additional info")

	// ErrUnexpectedBreak means a break byte (0xff) appeared outside an
	// indefinite-length container.
	ErrUnexpectedBreak = errors.New("unexpected break code")

	// ErrMalformedIndefiniteString means a chunk inside an
	// indefinite-length string was not a definite-length string of the
	// same major type.
	ErrMalformedIndefiniteString = errors.New("malformed indefinite-length string")

	// ErrInvalidTextString means a text string was not valid UTF-8.
	ErrInvalidTextString = errors.New("text string is not valid UTF-8")

	// ErrDepthExceeded means nesting went past DecodeOptions.MaxDepth.
	ErrDepthExceeded = errors.New("nesting depth exceeded")

	// ErrTrailingData means bytes remained after the first complete
	// item. The tool processes one value per invocation.
	ErrTrailingData = errors.New("trailing data after top-level item")
)

// ErrUnsupportedValue is returned by Encode for a nil Value or a
// Simple value with code 24-31, the codes RFC 8949 reserves so they
// cannot appear on the wire. Neither is producible by Decode.
var ErrUnsupportedValue = errors.New("unsupported value")
