// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bindigits counts the binary digits (bits) of non-negative integers
// and converts them to their binary digit sequence.
//
// Zero is written with a single binary digit: every bit counting method
// returns 1 for 0 and Digits(0) is []uint8{0}.
package bindigits

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strings"
)

// MaxBits is the bit count of math.MaxUint64.
const MaxBits = 64

var (
	// ErrNegative is returned if a negative integer is counted.
	ErrNegative = errors.New("bindigits: negative integer")
	// ErrDigit is returned for binary digits other than 0 and 1.
	ErrDigit = errors.New("bindigits: invalid binary digit")
	// ErrOverflow is returned if a binary digit sequence exceeds 64 bits.
	ErrOverflow = errors.New("bindigits: value overflows uint64")
)

// Count returns the bits of u.
func Count(u uint64) int {
	if u == 0 {
		return 1
	}
	return bits.Len64(u)
}

// CountShiftRight returns the bits of u by shifting it to the right until
// nothing is left.
func CountShiftRight(u uint64) int {
	if u == 0 {
		return 1
	}
	var n int
	for ; u > 0; u >>= 1 {
		n++
	}
	return n
}

// CountShiftLeft returns the bits of u as the smallest n with 2^n > u.
func CountShiftLeft(u uint64) int {
	if u == 0 {
		return 1
	}
	var n int
	// 1<<64 does not fit, every u >= 2^63 has MaxBits bits
	for n < MaxBits && uint64(1)<<uint(n) <= u {
		n++
	}
	return n
}

// CountLog returns the bits of u as floor(log2(u)) + 1.
func CountLog(u uint64) int {
	if u == 0 {
		return 1 // log2(0) is -Inf
	}
	n := int(math.Floor(math.Log2(float64(u)))) + 1
	// float64(u) rounds for u > 2^53, possibly up to the next power of two.
	if n > MaxBits {
		n = MaxBits
	}
	if u < uint64(1)<<uint(n-1) {
		n--
	} else if n < MaxBits && u >= uint64(1)<<uint(n) {
		n++
	}
	return n
}

// CountInt64 returns the bits of i. Negative integers are not supported and
// return ErrNegative.
func CountInt64(i int64) (int, error) {
	if i < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegative, i)
	}
	return Count(uint64(i)), nil
}

// Digits returns the binary digits of u, most significant digit first.
// The result has Count(u) elements.
func Digits(u uint64) []uint8 {
	return fill(make([]uint8, Count(u)), u)
}

// DigitsWith returns the binary digits of u, sized with the bit counting
// method m.
func DigitsWith(m Method, u uint64) ([]uint8, error) {
	n, err := CountWith(m, u)
	if err != nil {
		return nil, err
	}
	return fill(make([]uint8, n), u), nil
}

// fill writes the binary digits of u into d from the last position towards
// the first. d must be large enough to hold them.
func fill(d []uint8, u uint64) []uint8 {
	for i := len(d) - 1; u > 0; i-- {
		d[i] = uint8(u % 2)
		u >>= 1
	}
	return d
}

// Value returns the integer the binary digits d stand for, most significant
// digit first. Leading zeros are allowed, the empty sequence is 0.
func Value(d []uint8) (uint64, error) {
	var u uint64
	for i, b := range d {
		if b > 1 {
			return 0, fmt.Errorf("%w: %d at position %d", ErrDigit, b, i)
		}
		if u>>(MaxBits-1) != 0 {
			return 0, ErrOverflow
		}
		u = u<<1 | uint64(b)
	}
	return u, nil
}

// Format returns the binary digits d as a string of '0' and '1'.
func Format(d []uint8) string {
	var b strings.Builder
	b.Grow(len(d))
	for _, bit := range d {
		b.WriteByte('0' + bit)
	}
	return b.String()
}
