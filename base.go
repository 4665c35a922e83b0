// Copyright 2025 The Gromb Authors. All rights reserved.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fxvec

import "fmt"

// DefaultVectorCapacity is used by AllocateNew() when no explicit initial
// capacity has been configured via SetInitialCapacity.
const DefaultVectorCapacity = 4096

// Vector is the minimal surface an external Reader (spec.md §6) or a
// TransferPair destination needs: enough to visit a vector's logical
// contents without knowing its concrete element type.
type Vector interface {
	Len() int
	IsSet(i int) bool
	NullCount() int
	MinorType() MinorType
	BufferSize() int
}

// fixedWidthBase is the shared container every typed façade embeds
// (spec.md §4.2). It owns the validity bitmap and value buffer, and
// implements allocation, doubling growth, clear, transfer, split-transfer,
// and the element-count bookkeeping that is otherwise repeated across
// every scalar width.
type fixedWidthBase struct {
	allocator Allocator
	field     FieldType

	// elemWidthBits is the element width in bits: 1 for Bit, 128 for
	// Decimal, 8/16/32/64 for the native-numeric-backed types.
	elemWidthBits int

	validityBuf ByteBuffer
	valueBuf    ByteBuffer
	valueCount  int

	// initialCapacity is the capacity AllocateNew() uses absent an
	// explicit AllocateNewCap call; set via SetInitialCapacity.
	initialCapacity int
}

func newFixedWidthBase(allocator Allocator, field FieldType, elemWidthBits int) fixedWidthBase {
	return fixedWidthBase{allocator: allocator, field: field, elemWidthBits: elemWidthBits}
}

// valueBytesFor returns the value-buffer byte size needed for n elements,
// per spec.md §3.1: n*(W/8) for W>=8, ceil(n/8) for W=1.
func (b *fixedWidthBase) valueBytesFor(n int) int {
	if b.elemWidthBits == 1 {
		return sizeFromCount(n)
	}
	return n * b.elemWidthBits / 8
}

// SetInitialCapacity records the capacity a later AllocateNew() should use.
// It does not allocate (spec.md §4.2).
func (b *fixedWidthBase) SetInitialCapacity(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative initial capacity %d", ErrInvalidArgument, n)
	}
	if b.valueBytesFor(n) > DefaultMaxAllocationBytes || sizeFromCount(n) > DefaultMaxAllocationBytes {
		return fmt.Errorf("%w: capacity %d requires more than %d bytes", ErrOversizedAllocation, n, DefaultMaxAllocationBytes)
	}
	b.initialCapacity = n
	return nil
}

// AllocateNew allocates both buffers at the configured (or default)
// initial capacity.
func (b *fixedWidthBase) AllocateNew() error {
	n := b.initialCapacity
	if n <= 0 {
		n = DefaultVectorCapacity
	}
	return b.AllocateNewCap(n)
}

// AllocateNewCap allocates both buffers at exactly n elements of capacity.
func (b *fixedWidthBase) AllocateNewCap(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative capacity %d", ErrInvalidArgument, n)
	}
	valBytes := b.valueBytesFor(n)
	validityBytes := sizeFromCount(n)
	if valBytes > DefaultMaxAllocationBytes || validityBytes > DefaultMaxAllocationBytes {
		return fmt.Errorf("%w: capacity %d requires more than %d bytes", ErrOversizedAllocation, n, DefaultMaxAllocationBytes)
	}

	valBuf, err := b.allocator.Buffer(valBytes)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutOfMemory, err)
	}
	validityBuf, err := b.allocator.Buffer(validityBytes)
	if err != nil {
		valBuf.Release()
		return fmt.Errorf("%w: %v", ErrOutOfMemory, err)
	}
	valBuf.SetZero(0, valBytes)
	validityBuf.SetZero(0, validityBytes)

	b.releaseBuffers()
	b.valueBuf = valBuf
	b.validityBuf = validityBuf
	b.valueCount = 0
	return nil
}

// ReAlloc doubles the current capacity (or starts from initialCapacity / 1
// if nothing is allocated yet), preserving existing contents.
func (b *fixedWidthBase) ReAlloc() error {
	if b.valueBuf == nil || b.validityBuf == nil {
		n := b.initialCapacity
		if n <= 0 {
			n = 1
		}
		return b.AllocateNewCap(n)
	}

	newCapacity := b.GetValueCapacity() * 2
	if newCapacity == 0 {
		newCapacity = 1
	}
	newValBytes := b.valueBytesFor(newCapacity)
	newValidityBytes := sizeFromCount(newCapacity)
	if newValBytes > DefaultMaxAllocationBytes || newValidityBytes > DefaultMaxAllocationBytes {
		return fmt.Errorf("%w: doubled capacity %d requires more than %d bytes", ErrOversizedAllocation, newCapacity, DefaultMaxAllocationBytes)
	}

	newValBuf, err := b.allocator.Buffer(newValBytes)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutOfMemory, err)
	}
	newValidityBuf, err := b.allocator.Buffer(newValidityBytes)
	if err != nil {
		newValBuf.Release()
		return fmt.Errorf("%w: %v", ErrOutOfMemory, err)
	}
	newValBuf.SetZero(0, newValBytes)
	newValidityBuf.SetZero(0, newValidityBytes)

	copy(newValBuf.Bytes(), b.valueBuf.Bytes())
	copy(newValidityBuf.Bytes(), b.validityBuf.Bytes())

	b.valueBuf.Release()
	b.validityBuf.Release()
	b.valueBuf = newValBuf
	b.validityBuf = newValidityBuf
	return nil
}

// HandleSafe grows the vector, doubling as many times as needed, until
// index i is addressable. This is the gate behind every *Safe setter.
func (b *fixedWidthBase) HandleSafe(i int) error {
	if i < 0 {
		return fmt.Errorf("%w: negative index %d", ErrInvalidArgument, i)
	}
	if b.valueBuf == nil || b.validityBuf == nil {
		if err := b.AllocateNewCap(b.initialCapacity); err != nil {
			return err
		}
	}
	for i >= b.GetValueCapacity() {
		if err := b.ReAlloc(); err != nil {
			return err
		}
	}
	return nil
}

// GetValueCapacity returns the number of elements addressable without
// further allocation (spec.md §4.2).
func (b *fixedWidthBase) GetValueCapacity() int {
	if b.validityBuf == nil {
		return 0
	}
	if b.elemWidthBits == 1 {
		return b.validityBuf.Capacity() * 8
	}
	byWidth := b.valueBuf.Capacity() * 8 / b.elemWidthBits
	byValidity := b.validityBuf.Capacity() * 8
	if byWidth < byValidity {
		return byWidth
	}
	return byValidity
}

// SetValueCount fixes the logical length, growing if necessary, and
// normalizes validity bits in [n, nextByteBoundary(n)) to zero.
func (b *fixedWidthBase) SetValueCount(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative value count %d", ErrInvalidArgument, n)
	}
	if n > b.GetValueCapacity() {
		if err := b.HandleSafe(n - 1); err != nil {
			return err
		}
	}
	b.valueCount = n
	if b.validityBuf == nil {
		return nil
	}
	next := sizeFromCount(n) * 8
	if cap := b.GetValueCapacity(); next > cap {
		next = cap
	}
	bits := b.validityBuf.Bytes()
	for i := n; i < next; i++ {
		setBit(bits, i, 0)
	}
	return nil
}

// IsSet reports whether element i's validity bit is 1. Reading at or
// beyond valueCount is defined as null.
func (b *fixedWidthBase) IsSet(i int) int {
	if i < 0 || i >= b.valueCount {
		return 0
	}
	return getBit(b.validityBuf.Bytes(), i)
}

// GetNullCount returns the number of null elements among [0, valueCount).
func (b *fixedWidthBase) GetNullCount() int {
	if b.valueCount == 0 {
		return 0
	}
	return b.valueCount - popCount(b.validityBuf.Bytes(), sizeFromCount(b.valueCount))
}

// Clear releases both buffers and returns the vector to its empty state.
// Idempotent.
func (b *fixedWidthBase) Clear() {
	b.releaseBuffers()
	b.valueCount = 0
}

func (b *fixedWidthBase) releaseBuffers() {
	if b.valueBuf != nil {
		b.valueBuf.Release()
		b.valueBuf = nil
	}
	if b.validityBuf != nil {
		b.validityBuf.Release()
		b.validityBuf = nil
	}
}

// TransferTo moves buffer ownership from b to target, which must be the
// same concrete element width. b becomes empty; no bytes are copied.
func (b *fixedWidthBase) TransferTo(target *fixedWidthBase) error {
	if b.elemWidthBits != target.elemWidthBits {
		return fmt.Errorf("%w: transfer between width-%d and width-%d vectors", ErrTypeMismatch, b.elemWidthBits, target.elemWidthBits)
	}
	target.releaseBuffers()
	target.valueBuf = b.valueBuf
	target.validityBuf = b.validityBuf
	target.valueCount = b.valueCount
	b.valueBuf = nil
	b.validityBuf = nil
	b.valueCount = 0
	return nil
}

// SplitAndTransferTo derives target as the half-open range [start,
// start+length) of b, sharing storage when byte-aligned (spec.md §4.2).
// b is left unchanged.
func (b *fixedWidthBase) SplitAndTransferTo(start, length int, target *fixedWidthBase) error {
	if b.elemWidthBits != target.elemWidthBits {
		return fmt.Errorf("%w: split-transfer between width-%d and width-%d vectors", ErrTypeMismatch, b.elemWidthBits, target.elemWidthBits)
	}
	if start < 0 || length < 0 || start+length > b.valueCount {
		return fmt.Errorf("%w: range [%d,%d) exceeds value count %d", ErrInvalidArgument, start, start+length, b.valueCount)
	}

	var valueBuf ByteBuffer
	var err error
	switch {
	case length == 0:
		valueBuf, err = b.allocator.Buffer(0)
	case b.elemWidthBits >= 8:
		widthBytes := b.elemWidthBits / 8
		valueBuf = b.valueBuf.Slice(start*widthBytes, length*widthBytes)
	default:
		valueBuf, err = splitBitBuffer(b.allocator, b.valueBuf, start, length)
	}
	if err != nil {
		return err
	}

	validityBuf, err := splitBitBuffer(b.allocator, b.validityBuf, start, length)
	if err != nil {
		valueBuf.Release()
		return err
	}

	target.releaseBuffers()
	target.valueBuf = valueBuf
	target.validityBuf = validityBuf
	target.valueCount = length
	return nil
}

// splitBitBuffer derives a bit-packed buffer (validity, or the value
// buffer of a 1-bit vector) covering [start, start+length) bits of src:
// a zero-copy slice when start is byte-aligned, a freshly-allocated and
// reassembled buffer otherwise (spec.md §4.2).
func splitBitBuffer(allocator Allocator, src ByteBuffer, start, length int) (ByteBuffer, error) {
	if length == 0 {
		return allocator.Buffer(0)
	}

	byteSizeTarget := sizeFromCount(length)
	if start%8 == 0 {
		return src.Slice(start/8, byteSizeTarget), nil
	}

	target, err := allocator.Buffer(byteSizeTarget)
	if err != nil {
		return nil, err
	}
	target.SetZero(0, byteSizeTarget)

	offset := uint(start % 8)
	firstByteSource := start / 8
	lastByteSource := byteIndex(start + length - 1)
	srcBytes := src.Bytes()
	dstBytes := target.Bytes()

	for i := 0; i < byteSizeTarget-1; i++ {
		dstBytes[i] = getBitsFromCurrentByte(srcBytes, firstByteSource+i, offset) |
			getBitsFromNextByte(srcBytes, firstByteSource+i+1, offset)
	}

	lastTargetByte := byteSizeTarget - 1
	currentByteSourceIdx := firstByteSource + lastTargetByte
	assembled := getBitsFromCurrentByte(srcBytes, currentByteSourceIdx, offset)
	if currentByteSourceIdx < lastByteSource {
		assembled |= getBitsFromNextByte(srcBytes, currentByteSourceIdx+1, offset)
	}
	dstBytes[lastTargetByte] = assembled

	return target, nil
}

// copyFixedWidthElement copies element j of src to slot i of dst when
// src's bit j is set, leaving dst unchanged otherwise (spec.md §4.2: the
// destination validity bit is intentionally left untouched in the null
// case — see DESIGN.md's Open Question resolution). Both vectors must
// share elemWidthBits; i must already be within dst's capacity.
func copyFixedWidthElement(src *fixedWidthBase, j int, dst *fixedWidthBase, i int) error {
	if src.elemWidthBits != dst.elemWidthBits {
		return fmt.Errorf("%w: copy between width-%d and width-%d vectors", ErrTypeMismatch, src.elemWidthBits, dst.elemWidthBits)
	}
	if getBit(src.validityBuf.Bytes(), j) == 0 {
		return nil
	}

	setBitToOne(dst.validityBuf.Bytes(), i)

	if src.elemWidthBits == 1 {
		setBit(dst.valueBuf.Bytes(), i, getBit(src.valueBuf.Bytes(), j))
		return nil
	}

	widthBytes := src.elemWidthBits / 8
	buf := make([]byte, widthBytes)
	src.valueBuf.GetBytes(j*widthBytes, buf)
	dst.valueBuf.SetBytes(i*widthBytes, buf)
	return nil
}

// BufferSizeFor returns the serialized size in bytes for n elements, per
// the buffer-size contract in spec.md §6: ceil(n/8) + n*W/8 for W>=8,
// 2*ceil(n/8) for W=1.
func (b *fixedWidthBase) BufferSizeFor(n int) int {
	if n == 0 {
		return 0
	}
	if b.elemWidthBits == 1 {
		return 2 * sizeFromCount(n)
	}
	return sizeFromCount(n) + n*b.elemWidthBits/8
}

// BufferSize returns BufferSizeFor(valueCount).
func (b *fixedWidthBase) BufferSize() int {
	return b.BufferSizeFor(b.valueCount)
}

// FieldBuffers returns the ordered (validity, value) buffer pair for
// zero-copy IPC serialization (spec.md §6).
func (b *fixedWidthBase) FieldBuffers() (ByteBuffer, ByteBuffer) {
	return b.validityBuf, b.valueBuf
}
