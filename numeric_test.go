// Copyright 2025 The Gromb Authors. All rights reserved.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fxvec

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt32VectorSetGet(t *testing.T) {
	v := NewInt32Vector("a", NewAllocator())
	require.NoError(t, v.AllocateNew())

	v.Set(0, 42)
	v.Set(1, -7)
	require.NoError(t, v.SetValueCount(2))

	assert.Equal(t, int32(42), v.Get(0))
	assert.Equal(t, int32(-7), v.Get(1))
	assert.True(t, v.IsSet(0))
}

func TestInt32VectorGetPanicsOnNull(t *testing.T) {
	v := NewInt32Vector("a", NewAllocator())
	require.NoError(t, v.AllocateNewCap(4))
	require.NoError(t, v.SetValueCount(4))

	assert.PanicsWithError(t, ErrNullValue.Error()+": element 0", func() { v.Get(0) })
}

func TestInt32VectorGetObject(t *testing.T) {
	v := NewInt32Vector("a", NewAllocator())
	require.NoError(t, v.AllocateNewCap(4))
	require.NoError(t, v.SetValueCount(4))
	v.Set(1, 10)

	val, ok := v.GetObject(0)
	assert.False(t, ok)
	assert.Equal(t, int32(0), val)

	val, ok = v.GetObject(1)
	assert.True(t, ok)
	assert.Equal(t, int32(10), val)
}

func TestInt32VectorSetPanicsOutOfBounds(t *testing.T) {
	v := NewInt32Vector("a", NewAllocator())
	require.NoError(t, v.AllocateNewCap(1))

	assert.PanicsWithError(t, ErrIndexOutOfBounds.Error()+": index 5 (capacity 1)", func() { v.Set(5, 1) })
}

func TestInt32VectorSetSafeGrows(t *testing.T) {
	v := NewInt32Vector("a", NewAllocator())
	require.NoError(t, v.AllocateNewCap(1))

	require.NoError(t, v.SetSafe(100, 7))
	require.NoError(t, v.SetValueCount(101))
	assert.Equal(t, int32(7), v.Get(100))
	assert.Greater(t, v.GetValueCapacity(), 100)
}

func TestInt32VectorSetNull(t *testing.T) {
	v := NewInt32Vector("a", NewAllocator())
	require.NoError(t, v.AllocateNewCap(4))
	require.NoError(t, v.SetValueCount(4))
	v.Set(0, 5)
	assert.True(t, v.IsSet(0))

	require.NoError(t, v.SetNull(0))
	assert.False(t, v.IsSet(0))
}

func TestInt32VectorHolderRoundTrip(t *testing.T) {
	v := NewInt32Vector("a", NewAllocator())
	require.NoError(t, v.AllocateNewCap(4))
	require.NoError(t, v.SetValueCount(4))

	require.NoError(t, v.SetHolderSafe(0, NumericHolder[int32]{IsSet: 1, Value: 77}))
	var h NumericHolder[int32]
	v.GetHolder(0, &h)
	if diff := cmp.Diff(NumericHolder[int32]{IsSet: 1, Value: 77}, h); diff != "" {
		t.Errorf("holder mismatch (-want +got):\n%s", diff)
	}

	require.NoError(t, v.SetHolderSafe(1, NumericHolder[int32]{IsSet: 0}))
	v.GetHolder(1, &h)
	assert.Equal(t, int32(0), h.IsSet)
}

func TestInt32VectorSetHolderSafeRejectsNegativeIsSet(t *testing.T) {
	v := NewInt32Vector("a", NewAllocator())
	require.NoError(t, v.AllocateNewCap(4))

	err := v.SetHolderSafe(0, NumericHolder[int32]{IsSet: -1})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestInt32VectorCopyFromLeavesDestinationOnNullSource(t *testing.T) {
	src := NewInt32Vector("src", NewAllocator())
	dst := NewInt32Vector("dst", NewAllocator())
	require.NoError(t, src.AllocateNewCap(4))
	require.NoError(t, dst.AllocateNewCap(4))
	require.NoError(t, src.SetValueCount(4))
	require.NoError(t, dst.SetValueCount(4))
	dst.Set(0, 9)

	require.NoError(t, src.CopyFrom(0, dst, 0))
	assert.Equal(t, int32(9), dst.Get(0))
}

func TestInt32VectorCopyFromSafeGrows(t *testing.T) {
	src := NewInt32Vector("src", NewAllocator())
	dst := NewInt32Vector("dst", NewAllocator())
	require.NoError(t, src.AllocateNewCap(4))
	require.NoError(t, dst.AllocateNewCap(1))
	src.Set(2, 55)

	require.NoError(t, src.CopyFromSafe(2, dst, 2))
	require.NoError(t, dst.SetValueCount(3))
	assert.Equal(t, int32(55), dst.Get(2))
}

func TestInt32VectorTransferToMovesOwnership(t *testing.T) {
	src := NewInt32Vector("src", NewAllocator())
	dst := NewInt32Vector("dst", NewAllocator())
	require.NoError(t, src.AllocateNewCap(4))
	require.NoError(t, dst.AllocateNewCap(4))
	require.NoError(t, src.SetValueCount(2))
	src.Set(0, 3)

	require.NoError(t, src.TransferTo(dst))
	assert.Equal(t, int32(3), dst.Get(0))
	assert.Equal(t, 0, src.Len())
}

func TestInt32VectorTransferToRejectsDifferentScalarType(t *testing.T) {
	src := NewInt32Vector("src", NewAllocator())
	dst := NewFloat4Vector("dst", NewAllocator())
	require.NoError(t, src.AllocateNewCap(4))
	require.NoError(t, dst.AllocateNewCap(4))

	err := src.TransferTo(dst)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestDomainTypesRejectCrossTransferDespiteSharedWidth(t *testing.T) {
	// DateDay and TimeSec are both physically int32, but spec.md §7
	// requires TransferTo between distinct minor types to fail (S6).
	alloc := NewAllocator()
	day := NewDateDayVector("d", alloc)
	sec := NewTimeSecVector("s", alloc)
	require.NoError(t, day.AllocateNewCap(4))
	require.NoError(t, sec.AllocateNewCap(4))

	err := day.TransferTo(sec)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	err = day.SplitAndTransferTo(0, 1, sec)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestDomainTypesAllowSameTypeTransfer(t *testing.T) {
	alloc := NewAllocator()
	src := NewDateDayVector("d1", alloc)
	dst := NewDateDayVector("d2", alloc)
	require.NoError(t, src.AllocateNewCap(4))
	require.NoError(t, dst.AllocateNewCap(4))
	require.NoError(t, src.SetValueCount(1))
	src.Set(0, 19000)

	require.NoError(t, src.TransferTo(dst))
	assert.Equal(t, int32(19000), dst.Get(0))
}

func TestNumericVectorGetTransferPair(t *testing.T) {
	v := NewInt32Vector("a", NewAllocator())
	require.NoError(t, v.AllocateNewCap(8))
	require.NoError(t, v.SetValueCount(2))
	v.Set(0, 1)
	v.Set(1, 2)

	pair := v.GetTransferPair("a-copy")
	require.NoError(t, pair.Transfer())
	assert.Equal(t, 0, v.Len())

	copied := pair.To().(*Int32Vector)
	assert.Equal(t, int32(1), copied.Get(0))
	assert.Equal(t, int32(2), copied.Get(1))
}

func TestNumericVectorTransferPairCopyValueSafe(t *testing.T) {
	alloc := NewAllocator()
	src := NewInt32Vector("src", alloc)
	dst := NewInt32Vector("dst", alloc)
	require.NoError(t, src.AllocateNewCap(4))
	require.NoError(t, dst.AllocateNewCap(1))
	src.Set(0, 123)

	pair := src.MakeTransferPair(dst)
	require.NoError(t, pair.CopyValueSafe(0, 3))
	require.NoError(t, dst.SetValueCount(4))
	assert.Equal(t, int32(123), dst.Get(3))
}

func TestBufferSizeMatchesLaw(t *testing.T) {
	v := NewInt64Vector("a", NewAllocator())
	require.NoError(t, v.AllocateNewCap(10))
	require.NoError(t, v.SetValueCount(10))
	assert.Equal(t, sizeFromCount(10)+10*8, v.BufferSize())
}

func TestNumericVectorFieldBuffers(t *testing.T) {
	v := NewInt32Vector("a", NewAllocator())
	require.NoError(t, v.AllocateNewCap(4))
	require.NoError(t, v.SetValueCount(2))
	v.Set(0, 7)

	validity, value := v.FieldBuffers()
	require.NotNil(t, validity)
	require.NotNil(t, value)
	assert.Equal(t, 1, getBit(validity.Bytes(), 0))
	assert.Equal(t, int32(7), v.codec.decode(value.Bytes()[0:4]))
}

// TestFloat8VectorRoundTrip exercises the float64Codec path spec.md's S3
// scenario names directly: Float8 [1.0, null, -0.0, +Inf, NaN], checking
// that +Inf and NaN survive the little-endian bit-pattern round trip
// (NaN compares unequal to itself under ==, so the check is bit-for-bit
// via math.Float64bits).
func TestFloat8VectorRoundTrip(t *testing.T) {
	v := NewFloat8Vector("f", NewAllocator())
	require.NoError(t, v.AllocateNewCap(8))

	v.Set(0, 1.0)
	// index 1 left null
	v.Set(2, math.Copysign(0, -1))
	v.Set(3, math.Inf(1))
	v.Set(4, math.NaN())
	require.NoError(t, v.SetValueCount(5))

	assert.Equal(t, float64(1.0), v.Get(0))
	assert.False(t, v.IsSet(1))
	assert.Equal(t, math.Float64bits(math.Copysign(0, -1)), math.Float64bits(v.Get(2)))
	assert.True(t, math.IsInf(v.Get(3), 1))
	assert.Equal(t, math.Float64bits(math.NaN()), math.Float64bits(v.Get(4)))
}
