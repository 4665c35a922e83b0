// Copyright 2025 The Gromb Authors. All rights reserved.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fxvec

import "fmt"

// BitHolder is the allocation-free {isSet, value} struct for Bit.
type BitHolder struct {
	IsSet int32
	Value bool
}

// BitVector holds 1-bit-packed booleans (roster: Bit). Its value buffer
// uses the same LSB-first bit packing as the validity bitmap (spec.md
// §3.1), so it reuses bitmap.go's routines directly rather than going
// through the byte-oriented NumericVector codec path.
type BitVector struct {
	base fixedWidthBase
}

// NewBitVector constructs an empty Bit vector.
func NewBitVector(name string, allocator Allocator) *BitVector {
	return &BitVector{base: newFixedWidthBase(allocator, FieldType{Name: name, Type: MinorTypeBit}, 1)}
}

func (v *BitVector) Len() int                      { return v.base.valueCount }
func (v *BitVector) NullCount() int                { return v.base.GetNullCount() }
func (v *BitVector) MinorType() MinorType           { return v.base.field.Type }
func (v *BitVector) BufferSize() int               { return v.base.BufferSize() }
func (v *BitVector) BufferSizeFor(n int) int        { return v.base.BufferSizeFor(n) }
func (v *BitVector) IsSet(i int) bool               { return v.base.IsSet(i) != 0 }
func (v *BitVector) SetInitialCapacity(n int) error { return v.base.SetInitialCapacity(n) }
func (v *BitVector) AllocateNew() error             { return v.base.AllocateNew() }
func (v *BitVector) AllocateNewCap(n int) error     { return v.base.AllocateNewCap(n) }
func (v *BitVector) GetValueCapacity() int          { return v.base.GetValueCapacity() }
func (v *BitVector) SetValueCount(n int) error      { return v.base.SetValueCount(n) }
func (v *BitVector) Clear()                         { v.base.Clear() }

// FieldBuffers returns the ordered (validity, value) buffer pair for
// zero-copy IPC serialization (spec.md §6).
func (v *BitVector) FieldBuffers() (ByteBuffer, ByteBuffer) { return v.base.FieldBuffers() }

// Get returns the value at i. Precondition: element i is non-null.
func (v *BitVector) Get(i int) bool {
	if v.base.IsSet(i) == 0 {
		panic(fmt.Errorf("%w: element %d", ErrNullValue, i))
	}
	return getBit(v.base.valueBuf.Bytes(), i) == 1
}

// GetObject returns the value at i and true, or false and false if null.
func (v *BitVector) GetObject(i int) (bool, bool) {
	if v.base.IsSet(i) == 0 {
		return false, false
	}
	return getBit(v.base.valueBuf.Bytes(), i) == 1, true
}

// Set writes val at i and marks it non-null. Requires i < capacity.
func (v *BitVector) Set(i int, val bool) {
	if i < 0 || i >= v.base.GetValueCapacity() {
		panic(fmt.Errorf("%w: index %d (capacity %d)", ErrIndexOutOfBounds, i, v.base.GetValueCapacity()))
	}
	setBitToOne(v.base.validityBuf.Bytes(), i)
	bit := 0
	if val {
		bit = 1
	}
	setBit(v.base.valueBuf.Bytes(), i, bit)
}

// SetSafe grows the vector if necessary, then sets val at i.
func (v *BitVector) SetSafe(i int, val bool) error {
	if err := v.base.HandleSafe(i); err != nil {
		return err
	}
	v.Set(i, val)
	return nil
}

// SetNull grows the vector if necessary, then clears element i's
// validity bit.
func (v *BitVector) SetNull(i int) error {
	if err := v.base.HandleSafe(i); err != nil {
		return err
	}
	setBit(v.base.validityBuf.Bytes(), i, 0)
	return nil
}

// GetHolder populates h from element i.
func (v *BitVector) GetHolder(i int, h *BitHolder) {
	if v.base.IsSet(i) == 0 {
		h.IsSet, h.Value = 0, false
		return
	}
	h.IsSet = 1
	h.Value = getBit(v.base.valueBuf.Bytes(), i) == 1
}

// SetHolderSafe writes h at i, growing if necessary.
func (v *BitVector) SetHolderSafe(i int, h BitHolder) error {
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
func (v *BitVector) SetDisjointSafe(i int, isSet int32, value bool) error {
	return v.SetHolderSafe(i, BitHolder{IsSet: isSet, Value: value})
}

// CopyFrom copies element j of v into slot i of dst, without growing dst.
func (v *BitVector) CopyFrom(j int, dst *BitVector, i int) error {
	return copyFixedWidthElement(&v.base, j, &dst.base, i)
}

// CopyFromSafe grows dst if necessary, then calls CopyFrom.
func (v *BitVector) CopyFromSafe(j int, dst *BitVector, i int) error {
	if err := dst.base.HandleSafe(i); err != nil {
		return err
	}
	return v.CopyFrom(j, dst, i)
}

func (v *BitVector) TransferTo(dst Vector) error {
	target, ok := dst.(*BitVector)
	if !ok {
		return fmt.Errorf("%w: cannot transfer %s into %T", ErrTypeMismatch, v.MinorType(), dst)
	}
	return v.base.TransferTo(&target.base)
}

func (v *BitVector) SplitAndTransferTo(start, length int, dst Vector) error {
	target, ok := dst.(*BitVector)
	if !ok {
		return fmt.Errorf("%w: cannot split-transfer %s into %T", ErrTypeMismatch, v.MinorType(), dst)
	}
	return v.base.SplitAndTransferTo(start, length, &target.base)
}

// GetTransferPair constructs a fresh Bit sibling under v's allocator.
func (v *BitVector) GetTransferPair(name string) *TransferPair {
	return v.MakeTransferPair(NewBitVector(name, v.base.allocator))
}

// MakeTransferPair returns a TransferPair bound to the caller-supplied to.
func (v *BitVector) MakeTransferPair(to *BitVector) *TransferPair {
	return newTransferPair(v, to, func(fromIndex, toIndex int) error {
		return v.CopyFromSafe(fromIndex, to, toIndex)
	})
}
