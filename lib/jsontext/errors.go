// Copyright 2026 The CBD Authors
// SPDX-License-Identifier: Apache-2.0

package jsontext

import "errors"

// Parse error sentinels, wrapped with the byte offset of the failure.
var (
	// ErrSyntax covers malformed JSON: unexpected tokens, unterminated
	// strings, trailing commas, bad literals.
	ErrSyntax = errors.New("syntax error")

	// ErrInvalidEscape means a string contained an unknown escape, a
	// truncated \u sequence, or an unpaired surrogate.
	ErrInvalidEscape = errors.New("invalid escape sequence")

	// ErrTrailingData means non-whitespace input remained after the
	// first complete value.
	ErrTrailingData = errors.New("trailing data after top-level value")

	// ErrDepthExceeded means nesting went past ParseOptions.MaxDepth.
	ErrDepthExceeded = errors.New("nesting depth exceeded")
)

// Print error sentinels.
var (
	// ErrNonStringMapKey means a map key was neither a text string nor
	// an integer, so it has no JSON key form.
	ErrNonStringMapKey = errors.New("map key has no JSON string form")

	// ErrUnsupportedValue is returned by Print for a nil Value.
	ErrUnsupportedValue = errors.New("unsupported value")
)
