// Copyright 2025 The Gromb Authors. All rights reserved.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fxvec

import "fmt"

// NumericVector is the generic typed façade for every scalar type backed
// by a native Go numeric type (spec.md §4.3, §9 design note: one generic
// base plus thin per-type shims). Domain-semantic types that share an
// underlying width (DateDay, TimeSec, IntervalYear all ride on int32) wrap
// a NumericVector rather than instantiating a second copy of it, so the
// element-width bookkeeping is written exactly once.
type NumericVector[T any] struct {
	base  fixedWidthBase
	codec rawCodec[T]
}

// NumericHolder is the allocation-free {isSet, value} struct spec.md §4.3
// describes for reader/writer handoff.
type NumericHolder[T any] struct {
	IsSet int32
	Value T
}

func newNumericVector[T any](allocator Allocator, field FieldType, codec rawCodec[T]) *NumericVector[T] {
	return &NumericVector[T]{base: newFixedWidthBase(allocator, field, codec.width*8), codec: codec}
}

// Len returns the logical element count (valueCount).
func (v *NumericVector[T]) Len() int { return v.base.valueCount }

// NullCount returns the number of null elements.
func (v *NumericVector[T]) NullCount() int { return v.base.GetNullCount() }

// MinorType returns the vector's scalar type tag.
func (v *NumericVector[T]) MinorType() MinorType { return v.base.field.Type }

// BufferSize returns the serialized size in bytes for the current
// valueCount (spec.md §6).
func (v *NumericVector[T]) BufferSize() int { return v.base.BufferSize() }

// BufferSizeFor returns the serialized size in bytes for n elements.
func (v *NumericVector[T]) BufferSizeFor(n int) int { return v.base.BufferSizeFor(n) }

// IsSet reports whether element i is non-null.
func (v *NumericVector[T]) IsSet(i int) bool { return v.base.IsSet(i) != 0 }

// SetInitialCapacity records the capacity a later AllocateNew() should use.
func (v *NumericVector[T]) SetInitialCapacity(n int) error { return v.base.SetInitialCapacity(n) }

// AllocateNew allocates both buffers at the configured or default capacity.
func (v *NumericVector[T]) AllocateNew() error { return v.base.AllocateNew() }

// AllocateNewCap allocates both buffers at exactly n elements.
func (v *NumericVector[T]) AllocateNewCap(n int) error { return v.base.AllocateNewCap(n) }

// GetValueCapacity returns the number of elements addressable without
// further allocation.
func (v *NumericVector[T]) GetValueCapacity() int { return v.base.GetValueCapacity() }

// SetValueCount fixes the logical length, growing if necessary.
func (v *NumericVector[T]) SetValueCount(n int) error { return v.base.SetValueCount(n) }

// Clear releases both buffers and returns the vector to its empty state.
func (v *NumericVector[T]) Clear() { v.base.Clear() }

// FieldBuffers returns the ordered (validity, value) buffer pair for
// zero-copy IPC serialization (spec.md §6).
func (v *NumericVector[T]) FieldBuffers() (ByteBuffer, ByteBuffer) { return v.base.FieldBuffers() }

func (v *NumericVector[T]) rawAt(i int) []byte {
	off := i * v.codec.width
	return v.base.valueBuf.Bytes()[off : off+v.codec.width]
}

// Get returns the value at i. Precondition: element i is non-null; a null
// slot panics with ErrNullValue.
func (v *NumericVector[T]) Get(i int) T {
	if v.base.IsSet(i) == 0 {
		panic(fmt.Errorf("%w: element %d", ErrNullValue, i))
	}
	return v.codec.decode(v.rawAt(i))
}

// GetObject returns the value at i and true, or the zero value and false
// if i is null.
func (v *NumericVector[T]) GetObject(i int) (T, bool) {
	if v.base.IsSet(i) == 0 {
		var zero T
		return zero, false
	}
	return v.codec.decode(v.rawAt(i)), true
}

// Set writes val at i and marks it non-null. Requires i < capacity; an
// out-of-range i panics with ErrIndexOutOfBounds.
func (v *NumericVector[T]) Set(i int, val T) {
	if i < 0 || i >= v.base.GetValueCapacity() {
		panic(fmt.Errorf("%w: index %d (capacity %d)", ErrIndexOutOfBounds, i, v.base.GetValueCapacity()))
	}
	setBitToOne(v.base.validityBuf.Bytes(), i)
	v.codec.encode(v.rawAt(i), val)
}

// SetSafe grows the vector if necessary, then sets val at i.
func (v *NumericVector[T]) SetSafe(i int, val T) error {
	if err := v.base.HandleSafe(i); err != nil {
		return err
	}
	v.Set(i, val)
	return nil
}

// SetNull grows the vector if necessary, then clears element i's
// validity bit.
func (v *NumericVector[T]) SetNull(i int) error {
	if err := v.base.HandleSafe(i); err != nil {
		return err
	}
	setBit(v.base.validityBuf.Bytes(), i, 0)
	return nil
}

// GetHolder populates h from element i.
func (v *NumericVector[T]) GetHolder(i int, h *NumericHolder[T]) {
	if v.base.IsSet(i) == 0 {
		var zero T
		h.IsSet, h.Value = 0, zero
		return
	}
	h.IsSet = 1
	h.Value = v.codec.decode(v.rawAt(i))
}

// SetHolderSafe writes h at i, growing if necessary. h.IsSet < 0 is
// rejected with ErrInvalidArgument; h.IsSet == 0 clears the slot.
func (v *NumericVector[T]) SetHolderSafe(i int, h NumericHolder[T]) error {
	if h.IsSet < 0 {
		return fmt.Errorf("%w: holder.IsSet = %d", ErrInvalidArgument, h.IsSet)
	}
	if err := v.base.HandleSafe(i); err != nil {
		return err
	}
	if h.IsSet > 0 {
		v.Set(i, h.Value)
		return nil
	}
	setBit(v.base.validityBuf.Bytes(), i, 0)
	return nil
}

// SetDisjointSafe mirrors SetHolderSafe with two explicit parameters
// (spec.md §4.3's "disjoint-form set").
func (v *NumericVector[T]) SetDisjointSafe(i int, isSet int32, value T) error {
	return v.SetHolderSafe(i, NumericHolder[T]{IsSet: isSet, Value: value})
}

// CopyFrom copies element j of v into slot i of dst, without growing dst.
// dst is left unchanged if element j is null (see DESIGN.md).
func (v *NumericVector[T]) CopyFrom(j int, dst *NumericVector[T], i int) error {
	return copyFixedWidthElement(&v.base, j, &dst.base, i)
}

// CopyFromSafe grows dst if necessary, then calls CopyFrom.
func (v *NumericVector[T]) CopyFromSafe(j int, dst *NumericVector[T], i int) error {
	if err := dst.base.HandleSafe(i); err != nil {
		return err
	}
	return v.CopyFrom(j, dst, i)
}

// TransferTo moves v's buffers into dst, which must be the same concrete
// type; dst of any other type raises ErrTypeMismatch. v becomes empty.
func (v *NumericVector[T]) TransferTo(dst Vector) error {
	target, ok := dst.(*NumericVector[T])
	if !ok {
		return fmt.Errorf("%w: cannot transfer %s into %T", ErrTypeMismatch, v.MinorType(), dst)
	}
	return v.base.TransferTo(&target.base)
}

// SplitAndTransferTo derives dst as the range [start, start+length) of v.
func (v *NumericVector[T]) SplitAndTransferTo(start, length int, dst Vector) error {
	target, ok := dst.(*NumericVector[T])
	if !ok {
		return fmt.Errorf("%w: cannot split-transfer %s into %T", ErrTypeMismatch, v.MinorType(), dst)
	}
	return v.base.SplitAndTransferTo(start, length, &target.base)
}

// GetTransferPair constructs a fresh, empty sibling vector named name
// under v's own allocator and returns a TransferPair bound to it
// (spec.md §4.4).
func (v *NumericVector[T]) GetTransferPair(name string) *TransferPair {
	to := newNumericVector[T](v.base.allocator, FieldType{Name: name, Type: v.base.field.Type}, v.codec)
	return v.MakeTransferPair(to)
}

// MakeTransferPair returns a TransferPair that moves or copies values from
// v into the caller-supplied to.
func (v *NumericVector[T]) MakeTransferPair(to *NumericVector[T]) *TransferPair {
	return newTransferPair(v, to, func(fromIndex, toIndex int) error {
		return v.CopyFromSafe(fromIndex, to, toIndex)
	})
}

// Int8Vector holds signed 8-bit values (roster: TinyInt).
type Int8Vector = NumericVector[int8]

// NewInt8Vector constructs an empty TinyInt vector.
func NewInt8Vector(name string, allocator Allocator) *Int8Vector {
	return newNumericVector[int8](allocator, FieldType{Name: name, Type: MinorTypeTinyInt}, int8Codec)
}

// UInt1Vector holds unsigned 8-bit values (roster: UInt1).
type UInt1Vector = NumericVector[uint8]

// NewUInt1Vector constructs an empty UInt1 vector.
func NewUInt1Vector(name string, allocator Allocator) *UInt1Vector {
	return newNumericVector[uint8](allocator, FieldType{Name: name, Type: MinorTypeUInt1}, uint8Codec)
}

// Int16Vector holds signed 16-bit values (roster: SmallInt).
type Int16Vector = NumericVector[int16]

// NewInt16Vector constructs an empty SmallInt vector.
func NewInt16Vector(name string, allocator Allocator) *Int16Vector {
	return newNumericVector[int16](allocator, FieldType{Name: name, Type: MinorTypeSmallInt}, int16Codec)
}

// UInt2Vector holds unsigned 16-bit values (roster: UInt2).
type UInt2Vector = NumericVector[uint16]

// NewUInt2Vector constructs an empty UInt2 vector.
func NewUInt2Vector(name string, allocator Allocator) *UInt2Vector {
	return newNumericVector[uint16](allocator, FieldType{Name: name, Type: MinorTypeUInt2}, uint16Codec)
}

// Int32Vector holds signed 32-bit values (roster: Int).
type Int32Vector = NumericVector[int32]

// NewInt32Vector constructs an empty Int vector.
func NewInt32Vector(name string, allocator Allocator) *Int32Vector {
	return newNumericVector[int32](allocator, FieldType{Name: name, Type: MinorTypeInt}, int32Codec)
}

// UInt4Vector holds unsigned 32-bit values (roster: UInt4).
type UInt4Vector = NumericVector[uint32]

// NewUInt4Vector constructs an empty UInt4 vector.
func NewUInt4Vector(name string, allocator Allocator) *UInt4Vector {
	return newNumericVector[uint32](allocator, FieldType{Name: name, Type: MinorTypeUInt4}, uint32Codec)
}

// Int64Vector holds signed 64-bit values (roster: BigInt).
type Int64Vector = NumericVector[int64]

// NewInt64Vector constructs an empty BigInt vector.
func NewInt64Vector(name string, allocator Allocator) *Int64Vector {
	return newNumericVector[int64](allocator, FieldType{Name: name, Type: MinorTypeBigInt}, int64Codec)
}

// UInt8Vector holds unsigned 64-bit values (roster: UInt8).
type UInt8Vector = NumericVector[uint64]

// NewUInt8Vector constructs an empty UInt8 vector.
func NewUInt8Vector(name string, allocator Allocator) *UInt8Vector {
	return newNumericVector[uint64](allocator, FieldType{Name: name, Type: MinorTypeUInt8}, uint64Codec)
}

// Float4Vector holds IEEE-754 binary32 values (roster: Float4).
type Float4Vector = NumericVector[float32]

// NewFloat4Vector constructs an empty Float4 vector.
func NewFloat4Vector(name string, allocator Allocator) *Float4Vector {
	return newNumericVector[float32](allocator, FieldType{Name: name, Type: MinorTypeFloat4}, float32Codec)
}

// Float8Vector holds IEEE-754 binary64 values (roster: Float8).
type Float8Vector = NumericVector[float64]

// NewFloat8Vector constructs an empty Float8 vector.
func NewFloat8Vector(name string, allocator Allocator) *Float8Vector {
	return newNumericVector[float64](allocator, FieldType{Name: name, Type: MinorTypeFloat8}, float64Codec)
}
