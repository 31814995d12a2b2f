// Copyright 2026 The CBD Authors
// SPDX-License-Identifier: Apache-2.0

// Package transcode orchestrates the codec pipeline: one input buffer
// in, one output buffer out, no partial results. The decode direction
// runs [hex|base64 decode] → CBOR decode → JSON print (or diagnostic
// notation); the encode direction runs [JSONC strip] → JSON parse →
// CBOR encode → [base64|hex encode]. All policy lives in the codec
// packages; this one only wires them together.
package transcode

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	gocbor "github.com/fxamacker/cbor/v2"
	"github.com/tidwall/jsonc"

	"github.com/fotoetienne/cbd/lib/b64"
	"github.com/fotoetienne/cbd/lib/cbor"
	"github.com/fotoetienne/cbd/lib/jsontext"
)

// ErrEmptyInput is returned before any codec runs when the input
// buffer is empty.
var ErrEmptyInput = errors.New("empty input")

// Options selects the pipeline direction and transports.
type Options struct {
	// Encode selects JSON→CBOR. Default is CBOR→JSON.
	Encode bool

	// Base64 routes the binary side through the base64 collaborator:
	// input in decode mode, output in encode mode.
	Base64 bool

	// Hex routes the binary side through hex instead: whitespace-
	// tolerant hex input in decode mode, lowercase hex output in
	// encode mode. Mutually exclusive with Base64.
	Hex bool

	// Diag emits RFC 8949 diagnostic notation instead of JSON in
	// decode mode, preserving CBOR type information JSON cannot carry.
	Diag bool

	// JSONC strips // and /* */ comments and trailing commas from the
	// input before parsing in encode mode.
	JSONC bool

	// MaxDepth overrides the codecs' nesting limit. Zero keeps their
	// defaults.
	MaxDepth int

	// Logger receives debug-level progress. Nil discards.
	Logger *slog.Logger
}

// Transcoder runs the pipeline for one configuration.
type Transcoder struct {
	options Options
	logger  *slog.Logger
}

// New returns a Transcoder for the given options.
func New(options Options) (*Transcoder, error) {
	if options.Base64 && options.Hex {
		return nil, errors.New("transcode: base64 and hex transports are mutually exclusive")
	}
	if options.Diag && options.Encode {
		return nil, errors.New("transcode: diagnostic notation is decode-direction only")
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Transcoder{options: options, logger: logger}, nil
}

// Run transforms one complete input buffer into one complete output
// buffer. On error nothing is emitted.
func (t *Transcoder) Run(input []byte) ([]byte, error) {
	if len(input) == 0 {
		return nil, fmt.Errorf("%w: expected %s on stdin", ErrEmptyInput, t.inputKind())
	}
	if t.options.Encode {
		return t.runEncode(input)
	}
	return t.runDecode(input)
}

func (t *Transcoder) inputKind() string {
	if t.options.Encode {
		return "JSON data"
	}
	return "CBOR data"
}

func (t *Transcoder) runDecode(input []byte) ([]byte, error) {
	raw := input
	switch {
	case t.options.Hex:
		decoded, err := decodeHexInput(input)
		if err != nil {
			return nil, err
		}
		raw = decoded
	case t.options.Base64:
		decoded, err := b64.Decode(string(input))
		if err != nil {
			return nil, err
		}
		raw = decoded
	}
	t.logger.Debug("decoding CBOR", "bytes", len(raw))

	item, err := cbor.DecodeWithOptions(raw, cbor.DecodeOptions{MaxDepth: t.options.MaxDepth})
	if err != nil {
		return nil, err
	}

	if t.options.Diag {
		// The hand decoder above already enforced the one-item,
		// no-trailing-bytes contract; fxamacker only supplies the
		// notation.
		notation, _, err := gocbor.DiagnoseFirst(raw)
		if err != nil {
			return nil, fmt.Errorf("diagnose CBOR: %w", err)
		}
		return append([]byte(notation), '\n'), nil
	}

	text, err := jsontext.Print(item)
	if err != nil {
		return nil, err
	}
	return append([]byte(text), '\n'), nil
}

func (t *Transcoder) runEncode(input []byte) ([]byte, error) {
	text := input
	if t.options.JSONC {
		text = jsonc.ToJSON(text)
	}
	t.logger.Debug("parsing JSON", "bytes", len(text))

	item, err := jsontext.ParseWithOptions(text, jsontext.ParseOptions{MaxDepth: t.options.MaxDepth})
	if err != nil {
		return nil, err
	}

	encoded, err := cbor.Encode(item)
	if err != nil {
		return nil, err
	}
	t.logger.Debug("encoded CBOR", "bytes", len(encoded))

	switch {
	case t.options.Base64:
		return []byte(b64.Encode(encoded)), nil
	case t.options.Hex:
		return encodeHexOutput(encoded), nil
	default:
		return encoded, nil
	}
}
