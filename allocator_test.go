// Copyright 2025 The Gromb Authors. All rights reserved.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fxvec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocatorBuffer(t *testing.T) {
	alloc := NewAllocator()

	buf, err := alloc.Buffer(16)
	require.NoError(t, err)
	assert.Equal(t, 16, buf.Capacity())
	assert.Equal(t, int64(1), buf.RefCount())

	_, err = alloc.Buffer(-1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestAllocatorMaxAllocationBytes(t *testing.T) {
	alloc := NewAllocator(WithMaxAllocationBytes(8))

	_, err := alloc.Buffer(9)
	assert.ErrorIs(t, err, ErrOversizedAllocation)

	buf, err := alloc.Buffer(8)
	require.NoError(t, err)
	assert.Equal(t, 8, buf.Capacity())
}

func TestByteBufferScalarRoundTrip(t *testing.T) {
	alloc := NewAllocator()
	buf, err := alloc.Buffer(32)
	require.NoError(t, err)

	buf.SetByte(0, 0xAB)
	assert.Equal(t, uint8(0xAB), buf.GetByte(0))

	buf.SetShort(2, -1234)
	assert.Equal(t, int16(-1234), buf.GetShort(2))

	buf.SetInt(4, -123456)
	assert.Equal(t, int32(-123456), buf.GetInt(4))

	buf.SetLong(8, -123456789012)
	assert.Equal(t, int64(-123456789012), buf.GetLong(8))

	buf.SetFloat(16, 3.5)
	assert.Equal(t, float32(3.5), buf.GetFloat(16))

	buf.SetDouble(20, 2.25)
	assert.Equal(t, float64(2.25), buf.GetDouble(20))

	src := []byte{1, 2, 3, 4}
	buf.SetBytes(28, src)
	dst := make([]byte, 4)
	buf.GetBytes(28, dst)
	assert.Equal(t, src, dst)
}

func TestByteBufferSetZero(t *testing.T) {
	alloc := NewAllocator()
	buf, err := alloc.Buffer(8)
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		buf.SetByte(i, 0xFF)
	}
	buf.SetZero(2, 4)
	want := []byte{0xFF, 0xFF, 0, 0, 0, 0, 0xFF, 0xFF}
	assert.Equal(t, want, buf.Bytes())
}

func TestByteBufferSliceSharesRefCount(t *testing.T) {
	alloc := NewAllocator()
	buf, err := alloc.Buffer(16)
	require.NoError(t, err)

	view := buf.Slice(4, 8)
	assert.Equal(t, int64(2), buf.RefCount())
	assert.Equal(t, int64(2), view.RefCount())

	buf.SetByte(4, 0x42)
	assert.Equal(t, uint8(0x42), view.GetByte(0), "slice must share storage with its parent")

	view.Release()
	assert.Equal(t, int64(1), buf.RefCount())
}

func TestByteBufferRetainRelease(t *testing.T) {
	alloc := NewAllocator()
	buf, err := alloc.Buffer(4)
	require.NoError(t, err)

	buf.Retain()
	assert.Equal(t, int64(2), buf.RefCount())
	buf.Release()
	assert.Equal(t, int64(1), buf.RefCount())
	buf.Release()
	assert.Equal(t, int64(0), buf.RefCount())
}

func TestAllocatorErrorsAreWrapped(t *testing.T) {
	alloc := NewAllocator(WithMaxAllocationBytes(4))
	_, err := alloc.Buffer(5)
	assert.True(t, errors.Is(err, ErrOversizedAllocation))
}
