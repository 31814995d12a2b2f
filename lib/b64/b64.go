// Copyright 2026 The CBD Authors
// SPDX-License-Identifier: Apache-2.0

// Package b64 is the base64 transport collaborator: a pure byte⇄text
// function pair the pipeline applies around the CBOR codec when the
// base64 option is in play.
//
// Encoding always produces the unpadded standard alphabet. Decoding is
// lenient: CBOR payloads arrive from logs, JWTs, URLs, and shell
// pipelines with no agreement on alphabet or padding, so Decode tries
// the four RFC 4648 variants before giving up.
package b64

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// Decode error sentinels.
var (
	// ErrInvalidLength means the input length is impossible for base64
	// under any padding convention.
	ErrInvalidLength = errors.New("invalid base64 length")

	// ErrInvalidCharacter means the input decoded under none of the
	// accepted alphabet/padding variants.
	ErrInvalidCharacter = errors.New("invalid base64 character")
)

// decodings in the order tried, matching the original tool: url-safe
// unpadded, standard padded, url-safe padded, standard unpadded.
var decodings = []*base64.Encoding{
	base64.RawURLEncoding,
	base64.StdEncoding,
	base64.URLEncoding,
	base64.RawStdEncoding,
}

// Encode returns the unpadded standard-alphabet base64 of data.
func Encode(data []byte) string {
	return base64.RawStdEncoding.EncodeToString(data)
}

// Decode converts base64 text back to bytes, accepting any RFC 4648
// alphabet with or without padding. Trailing whitespace (the usual
// shell newline) is ignored.
func Decode(text string) ([]byte, error) {
	trimmed := strings.TrimRight(text, " \t\r\n")
	for _, encoding := range decodings {
		if decoded, err := encoding.DecodeString(trimmed); err == nil {
			return decoded, nil
		}
	}
	// A length of 4k+1 cannot be produced by any base64 encoder,
	// padded or not; everything else that reaches here had a byte
	// outside every alphabet (or misplaced padding).
	if len(trimmed)%4 == 1 {
		return nil, fmt.Errorf("b64: %d byte(s): %w", len(trimmed), ErrInvalidLength)
	}
	return nil, fmt.Errorf("b64: %w", ErrInvalidCharacter)
}
