// Copyright 2025 The Gromb Authors. All rights reserved.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fxvec

import (
	"fmt"
	"math/big"
)

// Decimal128 is the decoded form of a Decimal128Vector element: an
// arbitrary-precision unscaled integer plus the vector's fixed scale
// (roster: Decimal, spec.md §4.3.2). GetBytes hands back the raw 16-byte
// little-endian two's-complement view without allocating; Get/GetObject
// decode into this struct, which does allocate.
type Decimal128 struct {
	UnscaledValue *big.Int
	Scale         int32
}

// DecimalHolder is the allocation-free {isSet, value} struct for Decimal.
// Unlike NumericHolder, Value still carries a *big.Int, so "allocation-free"
// here only means no extra vector growth — matching the other holder types'
// role as a handoff struct rather than a zero-allocation guarantee.
type DecimalHolder struct {
	IsSet int32
	Value Decimal128
}

var (
	decimal128Min = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	decimal128Max = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
)

// decodeDecimal128LE reinterprets a 16-byte little-endian two's-complement
// buffer as a signed big.Int.
func decodeDecimal128LE(buf []byte) *big.Int {
	be := make([]byte, 16)
	for i := 0; i < 16; i++ {
		be[i] = buf[15-i]
	}
	val := new(big.Int).SetBytes(be)
	if be[0]&0x80 != 0 {
		val.Sub(val, new(big.Int).Lsh(big.NewInt(1), 128))
	}
	return val
}

// encodeDecimal128LE writes v into dst (len 16) as little-endian two's
// complement. v must fit a signed 128-bit integer.
func encodeDecimal128LE(dst []byte, v *big.Int) error {
	if v.Cmp(decimal128Min) < 0 || v.Cmp(decimal128Max) > 0 {
		return fmt.Errorf("%w: unscaled value %s exceeds the 128-bit signed range", ErrInvalidArgument, v.String())
	}
	unsigned := v
	if v.Sign() < 0 {
		unsigned = new(big.Int).Add(v, new(big.Int).Lsh(big.NewInt(1), 128))
	}
	be := unsigned.FillBytes(make([]byte, 16))
	for i := 0; i < 16; i++ {
		dst[i] = be[15-i]
	}
	return nil
}

// Decimal128Vector holds fixed-point decimal values as a 16-byte
// two's-complement significand (roster: Decimal). Precision and scale are
// carried on the field, not the element, per spec.md §4.3.2.
type Decimal128Vector struct {
	base      fixedWidthBase
	precision int32
	scale     int32
}

// NewDecimal128Vector constructs an empty Decimal vector. precision must be
// in [1, 38] and scale in [0, precision]; otherwise ErrInvalidArgument.
func NewDecimal128Vector(name string, precision, scale int32, allocator Allocator) (*Decimal128Vector, error) {
	if precision < 1 || precision > 38 {
		return nil, fmt.Errorf("%w: precision %d out of range [1,38]", ErrInvalidArgument, precision)
	}
	if scale < 0 || scale > precision {
		return nil, fmt.Errorf("%w: scale %d out of range [0,%d]", ErrInvalidArgument, scale, precision)
	}
	field := FieldType{Name: name, Type: MinorTypeDecimal, Precision: precision, Scale: scale}
	return &Decimal128Vector{
		base:      newFixedWidthBase(allocator, field, 128),
		precision: precision,
		scale:     scale,
	}, nil
}

func (v *Decimal128Vector) Precision() int32 { return v.precision }
func (v *Decimal128Vector) Scale() int32     { return v.scale }

func (v *Decimal128Vector) Len() int                      { return v.base.valueCount }
func (v *Decimal128Vector) NullCount() int                { return v.base.GetNullCount() }
func (v *Decimal128Vector) MinorType() MinorType           { return v.base.field.Type }
func (v *Decimal128Vector) BufferSize() int               { return v.base.BufferSize() }
func (v *Decimal128Vector) BufferSizeFor(n int) int        { return v.base.BufferSizeFor(n) }
func (v *Decimal128Vector) IsSet(i int) bool               { return v.base.IsSet(i) != 0 }
func (v *Decimal128Vector) SetInitialCapacity(n int) error { return v.base.SetInitialCapacity(n) }
func (v *Decimal128Vector) AllocateNew() error             { return v.base.AllocateNew() }
func (v *Decimal128Vector) AllocateNewCap(n int) error     { return v.base.AllocateNewCap(n) }
func (v *Decimal128Vector) GetValueCapacity() int          { return v.base.GetValueCapacity() }
func (v *Decimal128Vector) SetValueCount(n int) error      { return v.base.SetValueCount(n) }
func (v *Decimal128Vector) Clear()                         { v.base.Clear() }

// FieldBuffers returns the ordered (validity, value) buffer pair for
// zero-copy IPC serialization (spec.md §6).
func (v *Decimal128Vector) FieldBuffers() (ByteBuffer, ByteBuffer) { return v.base.FieldBuffers() }

// maxMagnitude returns 10^precision, the exclusive bound on |unscaled value|.
func (v *Decimal128Vector) maxMagnitude() *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(v.precision)), nil)
}

// GetBytes returns a zero-copy 16-byte little-endian two's-complement view
// of element i. Precondition: element i is non-null.
func (v *Decimal128Vector) GetBytes(i int) []byte {
	if v.base.IsSet(i) == 0 {
		panic(fmt.Errorf("%w: element %d", ErrNullValue, i))
	}
	return v.base.valueBuf.Bytes()[i*16 : i*16+16]
}

// Get decodes element i into a Decimal128. Precondition: element i is
// non-null.
func (v *Decimal128Vector) Get(i int) Decimal128 {
	return Decimal128{UnscaledValue: decodeDecimal128LE(v.GetBytes(i)), Scale: v.scale}
}

// GetObject returns the decoded value at i and true, or the zero value and
// false if i is null.
func (v *Decimal128Vector) GetObject(i int) (Decimal128, bool) {
	if v.base.IsSet(i) == 0 {
		return Decimal128{}, false
	}
	return v.Get(i), true
}

// Set writes val at i and marks it non-null. Requires i < capacity, and
// |val.UnscaledValue| < 10^precision; violations panic with
// ErrIndexOutOfBounds / ErrInvalidArgument respectively.
func (v *Decimal128Vector) Set(i int, val Decimal128) {
	if i < 0 || i >= v.base.GetValueCapacity() {
		panic(fmt.Errorf("%w: index %d (capacity %d)", ErrIndexOutOfBounds, i, v.base.GetValueCapacity()))
	}
	abs := new(big.Int).Abs(val.UnscaledValue)
	if abs.Cmp(v.maxMagnitude()) >= 0 {
		panic(fmt.Errorf("%w: unscaled value %s exceeds precision %d", ErrInvalidArgument, val.UnscaledValue.String(), v.precision))
	}
	setBitToOne(v.base.validityBuf.Bytes(), i)
	if err := encodeDecimal128LE(v.base.valueBuf.Bytes()[i*16:i*16+16], val.UnscaledValue); err != nil {
		panic(err)
	}
}

// SetSafe grows the vector if necessary, then sets val at i. Unlike Set, an
// out-of-range magnitude is reported rather than panicked (spec.md S5).
func (v *Decimal128Vector) SetSafe(i int, val Decimal128) error {
	abs := new(big.Int).Abs(val.UnscaledValue)
	if abs.Cmp(v.maxMagnitude()) >= 0 {
		return fmt.Errorf("%w: unscaled value %s exceeds precision %d", ErrInvalidArgument, val.UnscaledValue.String(), v.precision)
	}
	if err := v.base.HandleSafe(i); err != nil {
		return err
	}
	setBitToOne(v.base.validityBuf.Bytes(), i)
	return encodeDecimal128LE(v.base.valueBuf.Bytes()[i*16:i*16+16], val.UnscaledValue)
}

// SetNull grows the vector if necessary, then clears element i's
// validity bit.
func (v *Decimal128Vector) SetNull(i int) error {
	if err := v.base.HandleSafe(i); err != nil {
		return err
	}
	setBit(v.base.validityBuf.Bytes(), i, 0)
	return nil
}

// GetHolder populates h from element i.
func (v *Decimal128Vector) GetHolder(i int, h *DecimalHolder) {
	if v.base.IsSet(i) == 0 {
		h.IsSet, h.Value = 0, Decimal128{}
		return
	}
	h.IsSet = 1
	h.Value = v.Get(i)
}

// SetHolderSafe writes h at i, growing if necessary.
func (v *Decimal128Vector) SetHolderSafe(i int, h DecimalHolder) error {
	if h.IsSet < 0 {
		return fmt.Errorf("%w: holder.IsSet = %d", ErrInvalidArgument, h.IsSet)
	}
	if h.IsSet > 0 {
		return v.SetSafe(i, h.Value)
	}
	if err := v.base.HandleSafe(i); err != nil {
		return err
	}
	setBit(v.base.validityBuf.Bytes(), i, 0)
	return nil
}

// SetDisjointSafe mirrors SetHolderSafe with two explicit parameters
// (spec.md §4.3's "disjoint-form set").
func (v *Decimal128Vector) SetDisjointSafe(i int, isSet int32, value Decimal128) error {
	return v.SetHolderSafe(i, DecimalHolder{IsSet: isSet, Value: value})
}

// CopyFrom copies element j of v into slot i of dst, without growing dst.
// v and dst must share precision and scale.
func (v *Decimal128Vector) CopyFrom(j int, dst *Decimal128Vector, i int) error {
	if v.precision != dst.precision || v.scale != dst.scale {
		return fmt.Errorf("%w: decimal(%d,%d) into decimal(%d,%d)", ErrTypeMismatch, v.precision, v.scale, dst.precision, dst.scale)
	}
	return copyFixedWidthElement(&v.base, j, &dst.base, i)
}

// CopyFromSafe grows dst if necessary, then calls CopyFrom.
func (v *Decimal128Vector) CopyFromSafe(j int, dst *Decimal128Vector, i int) error {
	if err := dst.base.HandleSafe(i); err != nil {
		return err
	}
	return v.CopyFrom(j, dst, i)
}

func (v *Decimal128Vector) TransferTo(dst Vector) error {
	target, ok := dst.(*Decimal128Vector)
	if !ok {
		return fmt.Errorf("%w: cannot transfer %s into %T", ErrTypeMismatch, v.MinorType(), dst)
	}
	if v.precision != target.precision || v.scale != target.scale {
		return fmt.Errorf("%w: decimal(%d,%d) into decimal(%d,%d)", ErrTypeMismatch, v.precision, v.scale, target.precision, target.scale)
	}
	return v.base.TransferTo(&target.base)
}

func (v *Decimal128Vector) SplitAndTransferTo(start, length int, dst Vector) error {
	target, ok := dst.(*Decimal128Vector)
	if !ok {
		return fmt.Errorf("%w: cannot split-transfer %s into %T", ErrTypeMismatch, v.MinorType(), dst)
	}
	if v.precision != target.precision || v.scale != target.scale {
		return fmt.Errorf("%w: decimal(%d,%d) into decimal(%d,%d)", ErrTypeMismatch, v.precision, v.scale, target.precision, target.scale)
	}
	return v.base.SplitAndTransferTo(start, length, &target.base)
}

// GetTransferPair constructs a fresh Decimal sibling under v's allocator,
// sharing v's precision and scale.
func (v *Decimal128Vector) GetTransferPair(name string) (*TransferPair, error) {
	to, err := NewDecimal128Vector(name, v.precision, v.scale, v.base.allocator)
	if err != nil {
		return nil, err
	}
	return v.MakeTransferPair(to), nil
}

// MakeTransferPair returns a TransferPair bound to the caller-supplied to.
func (v *Decimal128Vector) MakeTransferPair(to *Decimal128Vector) *TransferPair {
	return newTransferPair(v, to, func(fromIndex, toIndex int) error {
		return v.CopyFromSafe(fromIndex, to, toIndex)
	})
}
