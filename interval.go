// Copyright 2025 The Gromb Authors. All rights reserved.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fxvec

import (
	"encoding/binary"
	"fmt"
)

// IntervalYearVector holds a whole number of months (roster:
// IntervalYear), physically a plain int32 vector.
type IntervalYearVector struct{ *NumericVector[int32] }

// NewIntervalYearVector constructs an empty IntervalYear vector.
func NewIntervalYearVector(name string, allocator Allocator) *IntervalYearVector {
	return &IntervalYearVector{newNumericVector[int32](allocator, FieldType{Name: name, Type: MinorTypeIntervalYear}, int32Codec)}
}

func (v *IntervalYearVector) TransferTo(dst Vector) error {
	target, ok := dst.(*IntervalYearVector)
	if !ok {
		return fmt.Errorf("%w: cannot transfer %s into %T", ErrTypeMismatch, v.MinorType(), dst)
	}
	return v.base.TransferTo(&target.base)
}

func (v *IntervalYearVector) SplitAndTransferTo(start, length int, dst Vector) error {
	target, ok := dst.(*IntervalYearVector)
	if !ok {
		return fmt.Errorf("%w: cannot split-transfer %s into %T", ErrTypeMismatch, v.MinorType(), dst)
	}
	return v.base.SplitAndTransferTo(start, length, &target.base)
}

// GetTransferPair constructs a fresh IntervalYear sibling under v's allocator.
func (v *IntervalYearVector) GetTransferPair(name string) *TransferPair {
	return v.MakeTransferPair(NewIntervalYearVector(name, v.base.allocator))
}

// MakeTransferPair returns a TransferPair bound to the caller-supplied to.
func (v *IntervalYearVector) MakeTransferPair(to *IntervalYearVector) *TransferPair {
	return newTransferPair(v, to, func(fromIndex, toIndex int) error {
		return v.CopyFromSafe(fromIndex, to.NumericVector, toIndex)
	})
}

// IntervalDayValue is (days, milliseconds-of-day), packed little-endian as
// two consecutive int32 (roster: IntervalDay). This packing isn't a
// single scalar reinterpretation, so IntervalDayVector is a standalone
// type rather than a NumericVector instantiation.
type IntervalDayValue struct {
	Days   int32
	Millis int32
}

// IntervalDayHolder is the allocation-free {isSet, value} struct for
// IntervalDay.
type IntervalDayHolder struct {
	IsSet int32
	Value IntervalDayValue
}

// IntervalDayVector holds packed (days, millis) interval values.
type IntervalDayVector struct {
	base fixedWidthBase
}

// NewIntervalDayVector constructs an empty IntervalDay vector.
func NewIntervalDayVector(name string, allocator Allocator) *IntervalDayVector {
	return &IntervalDayVector{base: newFixedWidthBase(allocator, FieldType{Name: name, Type: MinorTypeIntervalDay}, 64)}
}

func (v *IntervalDayVector) Len() int                       { return v.base.valueCount }
func (v *IntervalDayVector) NullCount() int                 { return v.base.GetNullCount() }
func (v *IntervalDayVector) MinorType() MinorType            { return v.base.field.Type }
func (v *IntervalDayVector) BufferSize() int                { return v.base.BufferSize() }
func (v *IntervalDayVector) BufferSizeFor(n int) int         { return v.base.BufferSizeFor(n) }
func (v *IntervalDayVector) IsSet(i int) bool                { return v.base.IsSet(i) != 0 }
func (v *IntervalDayVector) SetInitialCapacity(n int) error  { return v.base.SetInitialCapacity(n) }
func (v *IntervalDayVector) AllocateNew() error              { return v.base.AllocateNew() }
func (v *IntervalDayVector) AllocateNewCap(n int) error      { return v.base.AllocateNewCap(n) }
func (v *IntervalDayVector) GetValueCapacity() int           { return v.base.GetValueCapacity() }
func (v *IntervalDayVector) SetValueCount(n int) error       { return v.base.SetValueCount(n) }
func (v *IntervalDayVector) Clear()                          { v.base.Clear() }

// FieldBuffers returns the ordered (validity, value) buffer pair for
// zero-copy IPC serialization (spec.md §6).
func (v *IntervalDayVector) FieldBuffers() (ByteBuffer, ByteBuffer) { return v.base.FieldBuffers() }

func (v *IntervalDayVector) decodeAt(i int) IntervalDayValue {
	buf := v.base.valueBuf.Bytes()[i*8 : i*8+8]
	return IntervalDayValue{
		Days:   int32(binary.LittleEndian.Uint32(buf[0:4])),
		Millis: int32(binary.LittleEndian.Uint32(buf[4:8])),
	}
}

func (v *IntervalDayVector) encodeAt(i int, val IntervalDayValue) {
	buf := v.base.valueBuf.Bytes()[i*8 : i*8+8]
	binary.LittleEndian.PutUint32(buf[0:4], uint32(val.Days))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(val.Millis))
}

// Get returns the value at i. Precondition: element i is non-null.
func (v *IntervalDayVector) Get(i int) IntervalDayValue {
	if v.base.IsSet(i) == 0 {
		panic(fmt.Errorf("%w: element %d", ErrNullValue, i))
	}
	return v.decodeAt(i)
}

// GetObject returns the value at i and true, or the zero value and false
// if i is null.
func (v *IntervalDayVector) GetObject(i int) (IntervalDayValue, bool) {
	if v.base.IsSet(i) == 0 {
		return IntervalDayValue{}, false
	}
	return v.decodeAt(i), true
}

// Set writes val at i and marks it non-null. Requires i < capacity.
func (v *IntervalDayVector) Set(i int, val IntervalDayValue) {
	if i < 0 || i >= v.base.GetValueCapacity() {
		panic(fmt.Errorf("%w: index %d (capacity %d)", ErrIndexOutOfBounds, i, v.base.GetValueCapacity()))
	}
	setBitToOne(v.base.validityBuf.Bytes(), i)
	v.encodeAt(i, val)
}

// SetSafe grows the vector if necessary, then sets val at i.
func (v *IntervalDayVector) SetSafe(i int, val IntervalDayValue) error {
	if err := v.base.HandleSafe(i); err != nil {
		return err
	}
	v.Set(i, val)
	return nil
}

// SetNull grows the vector if necessary, then clears element i's
// validity bit.
func (v *IntervalDayVector) SetNull(i int) error {
	if err := v.base.HandleSafe(i); err != nil {
		return err
	}
	setBit(v.base.validityBuf.Bytes(), i, 0)
	return nil
}

// GetHolder populates h from element i.
func (v *IntervalDayVector) GetHolder(i int, h *IntervalDayHolder) {
	if v.base.IsSet(i) == 0 {
		h.IsSet, h.Value = 0, IntervalDayValue{}
		return
	}
	h.IsSet = 1
	h.Value = v.decodeAt(i)
}

// SetHolderSafe writes h at i, growing if necessary.
func (v *IntervalDayVector) SetHolderSafe(i int, h IntervalDayHolder) error {
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
func (v *IntervalDayVector) SetDisjointSafe(i int, isSet int32, value IntervalDayValue) error {
	return v.SetHolderSafe(i, IntervalDayHolder{IsSet: isSet, Value: value})
}

// CopyFrom copies element j of v into slot i of dst, without growing dst.
func (v *IntervalDayVector) CopyFrom(j int, dst *IntervalDayVector, i int) error {
	return copyFixedWidthElement(&v.base, j, &dst.base, i)
}

// CopyFromSafe grows dst if necessary, then calls CopyFrom.
func (v *IntervalDayVector) CopyFromSafe(j int, dst *IntervalDayVector, i int) error {
	if err := dst.base.HandleSafe(i); err != nil {
		return err
	}
	return v.CopyFrom(j, dst, i)
}

func (v *IntervalDayVector) TransferTo(dst Vector) error {
	target, ok := dst.(*IntervalDayVector)
	if !ok {
		return fmt.Errorf("%w: cannot transfer %s into %T", ErrTypeMismatch, v.MinorType(), dst)
	}
	return v.base.TransferTo(&target.base)
}

func (v *IntervalDayVector) SplitAndTransferTo(start, length int, dst Vector) error {
	target, ok := dst.(*IntervalDayVector)
	if !ok {
		return fmt.Errorf("%w: cannot split-transfer %s into %T", ErrTypeMismatch, v.MinorType(), dst)
	}
	return v.base.SplitAndTransferTo(start, length, &target.base)
}

// GetTransferPair constructs a fresh IntervalDay sibling under v's allocator.
func (v *IntervalDayVector) GetTransferPair(name string) *TransferPair {
	return v.MakeTransferPair(NewIntervalDayVector(name, v.base.allocator))
}

// MakeTransferPair returns a TransferPair bound to the caller-supplied to.
func (v *IntervalDayVector) MakeTransferPair(to *IntervalDayVector) *TransferPair {
	return newTransferPair(v, to, func(fromIndex, toIndex int) error {
		return v.CopyFromSafe(fromIndex, to, toIndex)
	})
}
