// Copyright 2026 The CBD Authors
// SPDX-License-Identifier: Apache-2.0

package value

// Value is the tagged union both codecs read and write. It is sealed:
// only the types in this package implement it.
type Value interface {
	isValue()
}

// Null is the null/nil variant.
type Null struct{}

func (Null) isValue() {}

// Bool is a boolean.
type Bool bool

func (Bool) isValue() {}

// Float is a 64-bit floating point number. The Integer/Float split is
// load-bearing: CBOR encodes them with different major types and JSON
// formats them differently (no decimal point for integers).
type Float float64

func (Float) isValue() {}

// Bytes is a CBOR byte string. It has no native JSON form; the JSON
// printer projects it to base64.
type Bytes []byte

func (Bytes) isValue() {}

// String is a text string (valid UTF-8, enforced by the CBOR decoder).
type String string

func (String) isValue() {}

// Array is an ordered sequence of values.
type Array []Value

func (Array) isValue() {}

// Pair is one map entry. Keys are full Values because CBOR permits
// non-string keys.
type Pair struct {
	Key   Value
	Value Value
}

// Map is an ordered sequence of key/value pairs. Order is insertion
// order and survives decode→encode round trips; duplicate keys are
// retained as written.
type Map []Pair

func (Map) isValue() {}

// Tag is a CBOR tagged value, carried opaquely: the tag number is
// preserved but never interpreted.
type Tag struct {
	Number  uint64
	Content Value
}

func (Tag) isValue() {}

// Simple is a CBOR major-type-7 simple value with no dedicated variant
// here: undefined (23) and the unassigned/reserved codes. False, true,
// and null decode to Bool and Null instead.
type Simple uint8

func (Simple) isValue() {}
