// Copyright 2026 The CBD Authors
// SPDX-License-Identifier: Apache-2.0

package value

import "bytes"

// Equal reports structural equality of two values. Integer and Float
// never compare equal to each other even when numerically identical;
// the codecs depend on that distinction surviving. Float comparison is
// bitwise-style (NaN equals NaN) so round-trip tests can cover
// non-finite values.
func Equal(a, b Value) bool {
	switch left := a.(type) {
	case nil:
		return b == nil

	case Null:
		_, ok := b.(Null)
		return ok

	case Bool:
		right, ok := b.(Bool)
		return ok && left == right

	case Integer:
		right, ok := b.(Integer)
		return ok && left == right

	case Float:
		right, ok := b.(Float)
		if !ok {
			return false
		}
		if left != left && right != right {
			return true // both NaN
		}
		return left == right

	case Bytes:
		right, ok := b.(Bytes)
		return ok && bytes.Equal(left, right)

	case String:
		right, ok := b.(String)
		return ok && left == right

	case Array:
		right, ok := b.(Array)
		if !ok || len(left) != len(right) {
			return false
		}
		for index, element := range left {
			if !Equal(element, right[index]) {
				return false
			}
		}
		return true

	case Map:
		right, ok := b.(Map)
		if !ok || len(left) != len(right) {
			return false
		}
		for index, pair := range left {
			if !Equal(pair.Key, right[index].Key) || !Equal(pair.Value, right[index].Value) {
				return false
			}
		}
		return true

	case Tag:
		right, ok := b.(Tag)
		return ok && left.Number == right.Number && Equal(left.Content, right.Content)

	case Simple:
		right, ok := b.(Simple)
		return ok && left == right
	}

	return false
}
