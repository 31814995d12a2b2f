// Copyright 2026 The CBD Authors
// SPDX-License-Identifier: Apache-2.0

package transcode

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"unicode"
)

// decodeHexInput strips whitespace from hex-encoded input and decodes
// it to binary. Whitespace between digit pairs is allowed, so both
// "a1 63 6b 65 79" and "a1636b6579" work, as do xxd-style dumps that
// were stripped of their offset column.
func decodeHexInput(data []byte) ([]byte, error) {
	cleaned := bytes.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, data)

	if len(cleaned) == 0 {
		return nil, fmt.Errorf("empty input after stripping whitespace from hex")
	}

	decoded := make([]byte, hex.DecodedLen(len(cleaned)))
	count, err := hex.Decode(decoded, cleaned)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return decoded[:count], nil
}

// encodeHexOutput renders data as lowercase hex text.
func encodeHexOutput(data []byte) []byte {
	encoded := make([]byte, hex.EncodedLen(len(data)))
	hex.Encode(encoded, data)
	return encoded
}
