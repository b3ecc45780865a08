// Copyright (c) 2017 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numreport

import (
	"errors"
	"math"
	"testing"

	"github.com/mutecomm/numbase/util/bindigits"
	"github.com/mutecomm/numbase/util/digits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	r := New(6735)
	assert.Equal(t, uint64(6735), r.Value)
	assert.Equal(t, 4, r.Digits)
	assert.Equal(t, 13, r.Bits)
	assert.Equal(t, "1101001001111", r.Binary)
	assert.True(t, r.Consistent)
	assert.True(t, r.Agree())
	assert.NoError(t, r.Err())
	assert.Len(t, r.DigitCounts, len(digits.Methods()))
	assert.Len(t, r.BitCounts, len(bindigits.Methods()))

	r = New(0)
	assert.Equal(t, 1, r.Digits)
	assert.Equal(t, 1, r.Bits)
	assert.Equal(t, "0", r.Binary)
	assert.True(t, r.Agree())
}

func TestInconsistent(t *testing.T) {
	r := New(16)
	r.BitCounts[bindigits.ShiftLeft] = 4
	err := r.check()
	assert.True(t, errors.Is(err, ErrDisagree))
	assert.Contains(t, err.Error(), "lshift")

	r = New(16)
	r.BinaryDigits = []uint8{1, 0, 0, 0, 1}
	assert.ErrorIs(t, r.check(), ErrDisagree)

	r = New(16)
	r.BinaryDigits = []uint8{1, 0}
	assert.ErrorIs(t, r.check(), ErrDisagree)
}

func TestFields(t *testing.T) {
	f := New(245).Fields()
	assert.Equal(t, uint64(245), f["value"])
	assert.Equal(t, 3, f["digits"])
	assert.Equal(t, 8, f["bits"])
	assert.Equal(t, "11110101", f["binary"])
	assert.Equal(t, true, f["consistent"])
	assert.Equal(t, 3, f["digits.div"])
	assert.Equal(t, 8, f["bits.rshift"])
	assert.NotContains(t, f, "BinaryDigits")
	keys := Keys(f)
	require.Len(t, keys, 5+len(digits.Methods())+len(bindigits.Methods()))
	assert.Equal(t, "binary", keys[0])
	assert.Equal(t, "value", keys[len(keys)-1])
}

func TestVerify(t *testing.T) {
	var n int
	err := Verify(0, 1<<12, func(r *Report) error {
		n++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1<<12+1, n)

	// range ending at math.MaxUint64 must terminate
	n = 0
	require.NoError(t, Verify(math.MaxUint64-2, math.MaxUint64, func(r *Report) error {
		n++
		return nil
	}))
	assert.Equal(t, 3, n)

	assert.NoError(t, Verify(7, 7, nil))
	assert.ErrorIs(t, Verify(2, 1, nil), ErrRange)

	errStop := errors.New("stop")
	err = Verify(0, 100, func(r *Report) error {
		if r.Value == 10 {
			return errStop
		}
		return nil
	})
	assert.Equal(t, errStop, err)
}

func TestBoundaries(t *testing.T) {
	b := Boundaries()
	require.Len(t, b, 166)
	assert.Equal(t, uint64(0), b[0])
	assert.Equal(t, uint64(math.MaxUint64), b[len(b)-1])
	for i := 1; i < len(b); i++ {
		assert.True(t, b[i-1] < b[i], "not ascending at %d", i)
	}
	assert.Contains(t, b, uint64(999))
	assert.Contains(t, b, uint64(1000))
	assert.Contains(t, b, uint64(1<<53))
	assert.NoError(t, VerifyBoundaries(nil))
}
