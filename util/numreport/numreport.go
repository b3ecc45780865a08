// Copyright (c) 2017 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numreport collects the decimal and binary digit counts of a value,
// as computed by every counting method, and checks that they agree.
package numreport

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/fatih/structs"
	"github.com/mutecomm/numbase/util/bindigits"
	"github.com/mutecomm/numbase/util/digits"
)

// ErrDisagree is returned if the counting methods or the binary conversion
// of a value are inconsistent.
var ErrDisagree = errors.New("numreport: inconsistent result")

// ErrRange is returned for an empty verification range.
var ErrRange = errors.New("numreport: empty range")

// Report describes a single value.
type Report struct {
	Value      uint64 `structs:"value"`
	Digits     int    `structs:"digits"`
	Bits       int    `structs:"bits"`
	Binary     string `structs:"binary"`
	Consistent bool   `structs:"consistent"`

	BinaryDigits []uint8                  `structs:"-"`
	DigitCounts  map[digits.Method]int    `structs:"-"`
	BitCounts    map[bindigits.Method]int `structs:"-"`

	err error
}

// New returns the report for u.
func New(u uint64) *Report {
	r := &Report{
		Value:        u,
		Digits:       digits.Count(u),
		Bits:         bindigits.Count(u),
		BinaryDigits: bindigits.Digits(u),
		DigitCounts:  make(map[digits.Method]int),
		BitCounts:    make(map[bindigits.Method]int),
	}
	r.Binary = bindigits.Format(r.BinaryDigits)
	for _, m := range digits.Methods() {
		r.DigitCounts[m], _ = digits.CountWith(m, u)
	}
	for _, m := range bindigits.Methods() {
		r.BitCounts[m], _ = bindigits.CountWith(m, u)
	}
	r.err = r.check()
	r.Consistent = r.err == nil
	return r
}

func (r *Report) check() error {
	for _, m := range digits.Methods() {
		if n := r.DigitCounts[m]; n != r.Digits {
			return fmt.Errorf("%w: %d has %d digits, method %s counts %d",
				ErrDisagree, r.Value, r.Digits, m, n)
		}
	}
	for _, m := range bindigits.Methods() {
		if n := r.BitCounts[m]; n != r.Bits {
			return fmt.Errorf("%w: %d has %d bits, method %s counts %d",
				ErrDisagree, r.Value, r.Bits, m, n)
		}
	}
	if len(r.BinaryDigits) != r.Bits {
		return fmt.Errorf("%w: %d has %d bits but %d binary digits",
			ErrDisagree, r.Value, r.Bits, len(r.BinaryDigits))
	}
	v, err := bindigits.Value(r.BinaryDigits)
	if err != nil {
		return err
	}
	if v != r.Value {
		return fmt.Errorf("%w: binary digits %s of %d read back as %d",
			ErrDisagree, r.Binary, r.Value, v)
	}
	return nil
}

// Agree reports whether all methods agree on r and the binary digits read
// back as r.Value.
func (r *Report) Agree() bool {
	return r.err == nil
}

// Err returns the first inconsistency found in r, if any.
func (r *Report) Err() error {
	return r.err
}

// Fields returns r as a flat map. Per-method counts are keyed
// "digits.<method>" and "bits.<method>".
func (r *Report) Fields() map[string]interface{} {
	m := structs.Map(r)
	for method, n := range r.DigitCounts {
		m["digits."+method.String()] = n
	}
	for method, n := range r.BitCounts {
		m["bits."+method.String()] = n
	}
	return m
}

// Keys returns the keys of fields in sorted order.
func Keys(fields map[string]interface{}) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Verify checks every value in the closed range [from, to]. cb, if not nil,
// is called with the report of every consistent value; a non-nil error
// returned by cb stops the verification and is returned.
func Verify(from, to uint64, cb func(*Report) error) error {
	if from > to {
		return fmt.Errorf("%w: [%d, %d]", ErrRange, from, to)
	}
	for u := from; ; u++ {
		if err := verify(u, cb); err != nil {
			return err
		}
		if u == to {
			return nil
		}
	}
}

// VerifyBoundaries checks all values returned by Boundaries, see Verify.
func VerifyBoundaries(cb func(*Report) error) error {
	for _, u := range Boundaries() {
		if err := verify(u, cb); err != nil {
			return err
		}
	}
	return nil
}

func verify(u uint64, cb func(*Report) error) error {
	r := New(u)
	if err := r.Err(); err != nil {
		return err
	}
	if cb != nil {
		return cb(r)
	}
	return nil
}

// Boundaries returns, in ascending order, the values at which the digit or
// bit count changes: every power of ten and two together with its
// predecessor, plus 0 and math.MaxUint64.
func Boundaries() []uint64 {
	set := map[uint64]struct{}{
		0:              {},
		math.MaxUint64: {},
	}
	for i := 1; i < digits.MaxDigits; i++ {
		p := digits.Pow10(i)
		set[p-1] = struct{}{}
		set[p] = struct{}{}
	}
	for i := 1; i < bindigits.MaxBits; i++ {
		p := uint64(1) << uint(i)
		set[p-1] = struct{}{}
		set[p] = struct{}{}
	}
	b := make([]uint64, 0, len(set))
	for u := range set {
		b = append(b, u)
	}
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
	return b
}
