// Copyright 2026 The CBD Authors
// SPDX-License-Identifier: Apache-2.0

// Package value defines the in-memory representation shared by the
// CBOR codec and the JSON codec.
//
// Value is a sealed interface: the closed set of types in this package
// are its only implementations, one per CBOR major-type category plus
// Simple for reserved simple values. Both codecs switch exhaustively
// over this set, so a variant added here without updating every
// consumer fails loudly rather than silently.
//
// Maps are pair slices, not Go maps. CBOR permits any key type and the
// transcoder preserves source order end to end, so the natural Go map
// is unusable twice over: it restricts key types and it randomizes
// iteration order.
//
// Values are treated as immutable once constructed. Ownership passes
// down the pipeline (decode → print, parse → encode) without sharing.
package value
