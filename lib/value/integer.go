// Copyright 2026 The CBD Authors
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"math"
	"strconv"
)

// Integer is an integer in CBOR's full range: 0 through 2^64-1 for
// positive values and -1 through -2^64 for negative values. It is
// stored as a sign plus the CBOR magnitude (for negative values the
// encoded value is -1-magnitude), which is wider than int64 on both
// ends without reaching for math/big.
type Integer struct {
	negative  bool
	magnitude uint64
}

func (Integer) isValue() {}

// FromInt64 returns the Integer representing n.
func FromInt64(n int64) Integer {
	if n >= 0 {
		return Integer{magnitude: uint64(n)}
	}
	// -1-magnitude == n, so magnitude == -(n+1).
	return Integer{negative: true, magnitude: uint64(-(n + 1))}
}

// FromUint64 returns the Integer representing n.
func FromUint64(n uint64) Integer {
	return Integer{magnitude: n}
}

// NegFromMagnitude returns the Integer -1-magnitude, the value a CBOR
// major-type-1 item with the given magnitude decodes to.
func NegFromMagnitude(magnitude uint64) Integer {
	return Integer{negative: true, magnitude: magnitude}
}

// Negative reports whether the value is below zero.
func (i Integer) Negative() bool {
	return i.negative
}

// Magnitude returns the CBOR wire magnitude: the value itself for
// positive integers, -1-value for negative integers.
func (i Integer) Magnitude() uint64 {
	return i.magnitude
}

// Int64 returns the value as an int64 when it fits.
func (i Integer) Int64() (int64, bool) {
	if i.negative {
		if i.magnitude > math.MaxInt64 {
			return 0, false
		}
		return -1 - int64(i.magnitude), true
	}
	if i.magnitude > math.MaxInt64 {
		return 0, false
	}
	return int64(i.magnitude), true
}

// Uint64 returns the value as a uint64 when it is non-negative.
func (i Integer) Uint64() (uint64, bool) {
	if i.negative {
		return 0, false
	}
	return i.magnitude, true
}

// Float64 returns the nearest float64. Values beyond 2^53 lose
// precision, same as any integer-to-double conversion.
func (i Integer) Float64() float64 {
	if i.negative {
		return -1 - float64(i.magnitude)
	}
	return float64(i.magnitude)
}

// String returns the decimal form. This is also the JSON literal and
// the map-key stringification for integer keys.
func (i Integer) String() string {
	if !i.negative {
		return strconv.FormatUint(i.magnitude, 10)
	}
	if i.magnitude == math.MaxUint64 {
		// -1-magnitude overflows uint64 by exactly one here.
		return "-18446744073709551616"
	}
	return "-" + strconv.FormatUint(i.magnitude+1, 10)
}
