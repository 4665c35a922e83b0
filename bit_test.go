// Copyright 2025 The Gromb Authors. All rights reserved.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fxvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitVectorSetGet(t *testing.T) {
	v := NewBitVector("flags", NewAllocator())
	require.NoError(t, v.AllocateNewCap(16))

	v.Set(0, true)
	v.Set(1, false)
	v.Set(9, true)
	require.NoError(t, v.SetValueCount(10))

	assert.True(t, v.Get(0))
	assert.False(t, v.Get(1))
	assert.True(t, v.Get(9))
}

func TestBitVectorGetPanicsOnNull(t *testing.T) {
	v := NewBitVector("flags", NewAllocator())
	require.NoError(t, v.AllocateNewCap(4))
	require.NoError(t, v.SetValueCount(4))

	assert.Panics(t, func() { v.Get(2) })
}

func TestBitVectorGetObject(t *testing.T) {
	v := NewBitVector("flags", NewAllocator())
	require.NoError(t, v.AllocateNewCap(4))
	require.NoError(t, v.SetValueCount(4))
	v.Set(1, true)

	val, ok := v.GetObject(0)
	assert.False(t, ok)
	assert.False(t, val)

	val, ok = v.GetObject(1)
	assert.True(t, ok)
	assert.True(t, val)
}

func TestBitVectorSetSafeGrows(t *testing.T) {
	v := NewBitVector("flags", NewAllocator())
	require.NoError(t, v.AllocateNewCap(1))

	require.NoError(t, v.SetSafe(40, true))
	require.NoError(t, v.SetValueCount(41))
	assert.True(t, v.Get(40))
}

func TestBitVectorSplitAndTransferUnaligned(t *testing.T) {
	alloc := NewAllocator()
	src := NewBitVector("src", alloc)
	dst := NewBitVector("dst", alloc)
	require.NoError(t, src.AllocateNewCap(16))
	require.NoError(t, src.SetValueCount(16))
	for i := 0; i < 16; i++ {
		require.NoError(t, src.SetSafe(i, i%3 == 0))
	}

	require.NoError(t, src.SplitAndTransferTo(3, 6, dst))
	assert.Equal(t, 6, dst.Len())
	for i := 0; i < 6; i++ {
		assert.Equal(t, (3+i)%3 == 0, dst.Get(i), "element %d", i)
	}
}

func TestBitVectorCopyFromSafe(t *testing.T) {
	alloc := NewAllocator()
	src := NewBitVector("src", alloc)
	dst := NewBitVector("dst", alloc)
	require.NoError(t, src.AllocateNewCap(4))
	require.NoError(t, dst.AllocateNewCap(1))
	src.Set(0, true)

	require.NoError(t, src.CopyFromSafe(0, dst, 2))
	require.NoError(t, dst.SetValueCount(3))
	assert.True(t, dst.Get(2))
}

func TestBitVectorSetDisjointSafe(t *testing.T) {
	v := NewBitVector("flags", NewAllocator())
	require.NoError(t, v.AllocateNewCap(4))

	require.NoError(t, v.SetDisjointSafe(0, 1, true))
	require.NoError(t, v.SetValueCount(1))
	assert.True(t, v.Get(0))

	require.NoError(t, v.SetDisjointSafe(1, 0, false))
	require.NoError(t, v.SetValueCount(2))
	assert.False(t, v.IsSet(1))
}

func TestBitVectorFieldBuffers(t *testing.T) {
	v := NewBitVector("flags", NewAllocator())
	require.NoError(t, v.AllocateNewCap(4))

	validity, value := v.FieldBuffers()
	require.NotNil(t, validity)
	require.NotNil(t, value)
}

func TestBitVectorTransferToRejectsNonBitVector(t *testing.T) {
	bits := NewBitVector("b", NewAllocator())
	ints := NewInt8Vector("i", NewAllocator())
	require.NoError(t, bits.AllocateNewCap(4))
	require.NoError(t, ints.AllocateNewCap(4))

	err := bits.TransferTo(ints)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}
