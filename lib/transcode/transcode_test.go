// Copyright 2026 The CBD Authors
// SPDX-License-Identifier: Apache-2.0

package transcode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fotoetienne/cbd/lib/cbor"
	"github.com/fotoetienne/cbd/lib/jsontext"
)

// keyValueCBOR is {"key": "value"} on the wire: a one-entry map with
// text-string key and value.
var keyValueCBOR = []byte{0xa1, 0x63, 'k', 'e', 'y', 0x65, 'v', 'a', 'l', 'u', 'e'}

func mustTranscoder(t *testing.T, options Options) *Transcoder {
	t.Helper()
	transcoder, err := New(options)
	if err != nil {
		t.Fatalf("New(%+v): %v", options, err)
	}
	return transcoder
}

func TestDecodeDirection(t *testing.T) {
	got, err := mustTranscoder(t, Options{}).Run(keyValueCBOR)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if string(got) != "{\"key\": \"value\"}\n" {
		t.Errorf("Run = %q, want %q", got, "{\"key\": \"value\"}\n")
	}
}

func TestDecodeDirectionBase64(t *testing.T) {
	// The same CBOR wrapped in base64 must produce identical JSON.
	got, err := mustTranscoder(t, Options{Base64: true}).Run([]byte("oWNrZXlldmFsdWU\n"))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if string(got) != "{\"key\": \"value\"}\n" {
		t.Errorf("Run = %q, want %q", got, "{\"key\": \"value\"}\n")
	}
}

func TestDecodeDirectionHex(t *testing.T) {
	got, err := mustTranscoder(t, Options{Hex: true}).Run([]byte("a1 63 6b 65 79 65 76 61 6c 75 65\n"))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if string(got) != "{\"key\": \"value\"}\n" {
		t.Errorf("Run = %q, want %q", got, "{\"key\": \"value\"}\n")
	}
}

func TestEncodeDirection(t *testing.T) {
	got, err := mustTranscoder(t, Options{Encode: true}).Run([]byte(`{"key": "value"}`))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !bytes.Equal(got, keyValueCBOR) {
		t.Errorf("Run = %x, want %x", got, keyValueCBOR)
	}
}

func TestEncodeDirectionBase64(t *testing.T) {
	got, err := mustTranscoder(t, Options{Encode: true, Base64: true}).Run([]byte(`{"key": "value"}`))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if string(got) != "oWNrZXlldmFsdWU" {
		t.Errorf("Run = %q, want unpadded base64 %q", got, "oWNrZXlldmFsdWU")
	}
}

func TestEncodeDirectionHex(t *testing.T) {
	got, err := mustTranscoder(t, Options{Encode: true, Hex: true}).Run([]byte(`{"key": "value"}`))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if string(got) != "a1636b65796576616c7565" {
		t.Errorf("Run = %q, want hex %q", got, "a1636b65796576616c7565")
	}
}

func TestEncodeIntegerFloatDistinction(t *testing.T) {
	// 42 is a CBOR unsigned integer, 42.0 a CBOR double; and each
	// prints back to its original literal.
	integer, err := mustTranscoder(t, Options{Encode: true}).Run([]byte("42"))
	if err != nil {
		t.Fatalf("Run(42): %v", err)
	}
	if !bytes.Equal(integer, []byte{0x18, 0x2a}) {
		t.Errorf("encode 42 = %x, want 182a", integer)
	}

	float, err := mustTranscoder(t, Options{Encode: true}).Run([]byte("42.0"))
	if err != nil {
		t.Fatalf("Run(42.0): %v", err)
	}
	if float[0] != 0xfb || len(float) != 9 {
		t.Errorf("encode 42.0 = %x, want a double-precision item", float)
	}

	back, err := mustTranscoder(t, Options{}).Run(integer)
	if err != nil {
		t.Fatalf("decode back: %v", err)
	}
	if strings.TrimSpace(string(back)) != "42" {
		t.Errorf("42 printed back as %q", back)
	}

	back, err = mustTranscoder(t, Options{}).Run(float)
	if err != nil {
		t.Fatalf("decode back: %v", err)
	}
	if strings.TrimSpace(string(back)) != "42.0" {
		t.Errorf("42.0 printed back as %q", back)
	}
}

func TestMapOrderSurvivesEndToEnd(t *testing.T) {
	source := `{"z": 1,"a": 2,"m": 3}`
	encoded, err := mustTranscoder(t, Options{Encode: true}).Run([]byte(source))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := mustTranscoder(t, Options{}).Run(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if strings.TrimSpace(string(decoded)) != source {
		t.Errorf("round trip = %q, want key order preserved in %q", decoded, source)
	}
}

func TestDiagOutput(t *testing.T) {
	got, err := mustTranscoder(t, Options{Diag: true}).Run(keyValueCBOR)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	notation := string(got)
	if !strings.Contains(notation, "key") || !strings.Contains(notation, "value") {
		t.Errorf("diagnostic notation %q does not mention the map contents", notation)
	}
	if !strings.HasSuffix(notation, "\n") {
		t.Errorf("diagnostic notation %q is not newline-terminated", notation)
	}
}

func TestJSONCInput(t *testing.T) {
	source := `{
		// comment survives stripping
		"key": "value", /* block */
	}`
	got, err := mustTranscoder(t, Options{Encode: true, JSONC: true}).Run([]byte(source))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !bytes.Equal(got, keyValueCBOR) {
		t.Errorf("Run = %x, want %x", got, keyValueCBOR)
	}

	// Without the option, comments are a syntax error.
	_, err = mustTranscoder(t, Options{Encode: true}).Run([]byte(source))
	if !errors.Is(err, jsontext.ErrSyntax) {
		t.Errorf("plain mode error = %v, want %v", err, jsontext.ErrSyntax)
	}
}

func TestErrorSurfacing(t *testing.T) {
	// Truncated CBOR: a map header declaring one entry, no bytes after.
	_, err := mustTranscoder(t, Options{}).Run([]byte{0xa1})
	if !errors.Is(err, cbor.ErrUnexpectedEOF) {
		t.Errorf("truncated CBOR error = %v, want %v", err, cbor.ErrUnexpectedEOF)
	}

	// Malformed JSON: unterminated string, with a position indicator.
	_, err = mustTranscoder(t, Options{Encode: true}).Run([]byte(`{"key": "unterminated`))
	if !errors.Is(err, jsontext.ErrSyntax) {
		t.Fatalf("malformed JSON error = %v, want %v", err, jsontext.ErrSyntax)
	}
	if !strings.Contains(err.Error(), "byte") {
		t.Errorf("error %q carries no position", err.Error())
	}
}

func TestEmptyInput(t *testing.T) {
	for _, options := range []Options{{}, {Encode: true}} {
		_, err := mustTranscoder(t, options).Run(nil)
		if !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Run(nil) with %+v error = %v, want %v", options, err, ErrEmptyInput)
		}
	}
}

func TestInvalidOptionCombinations(t *testing.T) {
	if _, err := New(Options{Base64: true, Hex: true}); err == nil {
		t.Error("New accepted base64+hex")
	}
	if _, err := New(Options{Encode: true, Diag: true}); err == nil {
		t.Error("New accepted encode+diag")
	}
}

func TestMaxDepthThreadsThrough(t *testing.T) {
	_, err := mustTranscoder(t, Options{MaxDepth: 2}).Run([]byte{0x81, 0x81, 0x81, 0x00})
	if !errors.Is(err, cbor.ErrDepthExceeded) {
		t.Errorf("CBOR depth error = %v, want %v", err, cbor.ErrDepthExceeded)
	}

	_, err = mustTranscoder(t, Options{Encode: true, MaxDepth: 2}).Run([]byte("[[[0]]]"))
	if !errors.Is(err, jsontext.ErrDepthExceeded) {
		t.Errorf("JSON depth error = %v, want %v", err, jsontext.ErrDepthExceeded)
	}
}
