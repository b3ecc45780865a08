// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package digits defines helper functions to count the decimal digits of
// non-negative integers.
//
// All counting methods agree on every uint64 and count a single digit for 0.
package digits

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// ErrNegative is returned if a negative integer is counted.
var ErrNegative = errors.New("digits: negative integer")

// ErrMethod is returned for an unknown counting method.
var ErrMethod = errors.New("digits: unknown method")

// MaxDigits is the digit count of math.MaxUint64.
const MaxDigits = 20

// pow10[i] == 10^i
var pow10 = [MaxDigits]uint64{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000,
	10000000,
	100000000,
	1000000000,
	10000000000,
	100000000000,
	1000000000000,
	10000000000000,
	100000000000000,
	1000000000000000,
	10000000000000000,
	100000000000000000,
	1000000000000000000,
	10000000000000000000,
}

// Count returns the digits of u.
func Count(u uint64) int {
	if u < 10 {
		return 1
	}
	// (bits.Len64(u) * 1233) >> 12 approximates log10(2^bits.Len64(u)) and is
	// either exact or one short.
	r := (bits.Len64(u) * 1233) >> 12
	if u < pow10[r] {
		return r
	}
	return r + 1
}

// CountDiv returns the digits of u by dividing it by 10 until nothing is left.
func CountDiv(u uint64) int {
	if u == 0 {
		return 1
	}
	var n int
	for ; u > 0; u /= 10 {
		n++
	}
	return n
}

// CountLog returns the digits of u as floor(log10(u)) + 1.
func CountLog(u uint64) int {
	if u == 0 {
		return 1 // log10(0) is -Inf
	}
	n := int(math.Floor(math.Log10(float64(u)))) + 1
	// float64(u) rounds for u > 2^53 and Log10 can land on the wrong side of
	// a power of ten: settle the estimate on the exact table.
	if n > MaxDigits {
		n = MaxDigits
	}
	if u < pow10[n-1] {
		n--
	} else if n < MaxDigits && u >= pow10[n] {
		n++
	}
	return n
}

// CountInt64 returns the digits of i. Negative integers are not supported
// and return ErrNegative.
func CountInt64(i int64) (int, error) {
	if i < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegative, i)
	}
	return Count(uint64(i)), nil
}

// Pow10 returns 10^n for 0 <= n < MaxDigits.
func Pow10(n int) uint64 {
	return pow10[n]
}
