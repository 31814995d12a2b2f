// Copyright 2026 The CBD Authors
// SPDX-License-Identifier: Apache-2.0

package b64

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"
)

func TestEncodeUnpaddedStandard(t *testing.T) {
	// The CBOR for {"key": "value"}; the tool's canonical example.
	input := []byte{0xa1, 0x63, 'k', 'e', 'y', 0x65, 'v', 'a', 'l', 'u', 'e'}
	got := Encode(input)
	if got != "oWNrZXlldmFsdWU" {
		t.Errorf("Encode = %q, want %q", got, "oWNrZXlldmFsdWU")
	}
}

func TestDecodeAcceptsAllVariants(t *testing.T) {
	// Bytes chosen so the url-safe and standard alphabets actually
	// differ: 0xfb 0xef 0xbe encodes to "++++" / "----".
	payload := []byte{0xfb, 0xef, 0xbe, 0xfb, 0xef, 0xbe}

	tests := []struct {
		name     string
		encoding *base64.Encoding
	}{
		{"standard padded", base64.StdEncoding},
		{"standard unpadded", base64.RawStdEncoding},
		{"url-safe padded", base64.URLEncoding},
		{"url-safe unpadded", base64.RawURLEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := tt.encoding.EncodeToString(payload)
			got, err := Decode(text)
			if err != nil {
				t.Fatalf("Decode(%q): %v", text, err)
			}
			if !bytes.Equal(got, payload) {
				t.Errorf("Decode(%q) = %x, want %x", text, got, payload)
			}
		})
	}
}

func TestDecodeTrimsTrailingWhitespace(t *testing.T) {
	got, err := Decode("oWNrZXlldmFsdWU\n")
	if err != nil {
		t.Fatalf("Decode with trailing newline: %v", err)
	}
	want := []byte{0xa1, 0x63, 'k', 'e', 'y', 0x65, 'v', 'a', 'l', 'u', 'e'}
	if !bytes.Equal(got, want) {
		t.Errorf("Decode = %x, want %x", got, want)
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode("not base64!!"); !errors.Is(err, ErrInvalidCharacter) {
		t.Errorf("invalid character error = %v, want %v", err, ErrInvalidCharacter)
	}
	if _, err := Decode("abcde"); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("invalid length error = %v, want %v", err, ErrInvalidLength)
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := [][]byte{
		{},
		{0x00},
		{0xff, 0xfe},
		[]byte("arbitrary payload bytes"),
	}
	for _, input := range inputs {
		decoded, err := Decode(Encode(input))
		if err != nil {
			t.Fatalf("Decode(Encode(%x)): %v", input, err)
		}
		if !bytes.Equal(decoded, input) {
			t.Errorf("round trip of %x: got %x", input, decoded)
		}
	}
}
