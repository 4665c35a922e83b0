// Copyright 2025 The Gromb Authors. All rights reserved.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fxvec

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync/atomic"
)

// DefaultMaxAllocationBytes is the hard cap on a single buffer allocation,
// matching spec.md §4.2's "implementation-defined hard cap" default.
const DefaultMaxAllocationBytes = 1<<31 - 8

// ByteBuffer is the external byte-buffer collaborator (spec.md §6): a
// reference-counted, contiguous byte region with fixed-width scalar access,
// little-endian throughout, plus slicing, retain/release, and bulk copy.
//
// FixedWidthBase treats ByteBuffer as opaque; it never reaches past this
// interface into a concrete implementation.
type ByteBuffer interface {
	// Capacity returns the buffer's length in bytes.
	Capacity() int

	// Slice returns a view over [offset, offset+length) sharing storage
	// with the receiver. The view's refcount is bumped; Release it
	// independently of the parent.
	Slice(offset, length int) ByteBuffer

	// Retain increases the reference count by 1.
	Retain()

	// Release decreases the reference count by 1. The last releaser
	// frees the underlying memory.
	Release()

	// RefCount reports the current reference count. Exposed so callers
	// (and tests) can observe zero-copy sharing (spec.md §8, S8).
	RefCount() int64

	// SetZero zeroes [offset, offset+length).
	SetZero(offset, length int)

	GetByte(offset int) uint8
	SetByte(offset int, v uint8)
	GetShort(offset int) int16
	SetShort(offset int, v int16)
	GetInt(offset int) int32
	SetInt(offset int, v int32)
	GetLong(offset int) int64
	SetLong(offset int, v int64)
	GetFloat(offset int) float32
	SetFloat(offset int, v float32)
	GetDouble(offset int) float64
	SetDouble(offset int, v float64)

	// GetBytes copies len(dst) bytes starting at offset into dst.
	GetBytes(offset int, dst []byte)
	// SetBytes copies src into the buffer starting at offset.
	SetBytes(offset int, src []byte)

	// Bytes exposes the full backing slice for bulk operations internal
	// to this package (growth, aligned copy in split-and-transfer).
	Bytes() []byte
}

// Allocator supplies reference-counted ByteBuffers (spec.md §6). It is
// specified only at its interface; simpleAllocator below (returned by
// NewAllocator) is a reference implementation used by this package's own tests and by
// callers who don't need a pooling/arena allocator of their own.
type Allocator interface {
	// Buffer allocates a zero-initialized ByteBuffer of exactly nBytes.
	Buffer(nBytes int) (ByteBuffer, error)
}

// simpleAllocator is the reference Allocator implementation: every buffer
// is its own Go-heap-backed slice, growth and slicing managed the way
// mbuff.Builder.ensure / mbuff.Buffer.Since manage a growable []byte.
type simpleAllocator struct {
	maxAllocationBytes int
}

// AllocatorOption configures a simpleAllocator at construction.
type AllocatorOption func(*simpleAllocator)

// WithMaxAllocationBytes overrides DefaultMaxAllocationBytes.
func WithMaxAllocationBytes(n int) AllocatorOption {
	return func(a *simpleAllocator) { a.maxAllocationBytes = n }
}

// NewAllocator returns the reference Allocator implementation.
func NewAllocator(opts ...AllocatorOption) Allocator {
	a := &simpleAllocator{maxAllocationBytes: DefaultMaxAllocationBytes}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *simpleAllocator) Buffer(nBytes int) (ByteBuffer, error) {
	if nBytes < 0 {
		return nil, fmt.Errorf("%w: negative buffer size %d", ErrInvalidArgument, nBytes)
	}
	if nBytes > a.maxAllocationBytes {
		return nil, fmt.Errorf("%w: %d bytes exceeds max %d", ErrOversizedAllocation, nBytes, a.maxAllocationBytes)
	}
	return newSliceBuffer(nBytes), nil
}

// sliceBuffer is the concrete ByteBuffer: a []byte plus a refcount shared
// by every view produced from it via Slice.
type sliceBuffer struct {
	data     []byte
	refCount *int64
}

func newSliceBuffer(n int) *sliceBuffer {
	rc := int64(1)
	return &sliceBuffer{data: make([]byte, n), refCount: &rc}
}

func (b *sliceBuffer) Capacity() int    { return len(b.data) }
func (b *sliceBuffer) Bytes() []byte    { return b.data }
func (b *sliceBuffer) RefCount() int64  { return atomic.LoadInt64(b.refCount) }
func (b *sliceBuffer) Retain()          { atomic.AddInt64(b.refCount, 1) }
func (b *sliceBuffer) Release()         { atomic.AddInt64(b.refCount, -1) }

func (b *sliceBuffer) Slice(offset, length int) ByteBuffer {
	atomic.AddInt64(b.refCount, 1)
	return &sliceBuffer{
		data:     b.data[offset : offset+length : offset+length],
		refCount: b.refCount,
	}
}

func (b *sliceBuffer) SetZero(offset, length int) {
	clear(b.data[offset : offset+length])
}

func (b *sliceBuffer) GetByte(offset int) uint8   { return b.data[offset] }
func (b *sliceBuffer) SetByte(offset int, v uint8) { b.data[offset] = v }

func (b *sliceBuffer) GetShort(offset int) int16 {
	return int16(binary.LittleEndian.Uint16(b.data[offset:]))
}
func (b *sliceBuffer) SetShort(offset int, v int16) {
	binary.LittleEndian.PutUint16(b.data[offset:], uint16(v))
}

func (b *sliceBuffer) GetInt(offset int) int32 {
	return int32(binary.LittleEndian.Uint32(b.data[offset:]))
}
func (b *sliceBuffer) SetInt(offset int, v int32) {
	binary.LittleEndian.PutUint32(b.data[offset:], uint32(v))
}

func (b *sliceBuffer) GetLong(offset int) int64 {
	return int64(binary.LittleEndian.Uint64(b.data[offset:]))
}
func (b *sliceBuffer) SetLong(offset int, v int64) {
	binary.LittleEndian.PutUint64(b.data[offset:], uint64(v))
}

func (b *sliceBuffer) GetFloat(offset int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b.data[offset:]))
}
func (b *sliceBuffer) SetFloat(offset int, v float32) {
	binary.LittleEndian.PutUint32(b.data[offset:], math.Float32bits(v))
}

func (b *sliceBuffer) GetDouble(offset int) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(b.data[offset:]))
}
func (b *sliceBuffer) SetDouble(offset int, v float64) {
	binary.LittleEndian.PutUint64(b.data[offset:], math.Float64bits(v))
}

func (b *sliceBuffer) GetBytes(offset int, dst []byte) {
	copy(dst, b.data[offset:offset+len(dst)])
}
func (b *sliceBuffer) SetBytes(offset int, src []byte) {
	copy(b.data[offset:offset+len(src)], src)
}
