// Copyright 2025 The Gromb Authors. All rights reserved.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fxvec

import "fmt"

// The Date/Time/Timestamp rows of the type roster (spec.md §4.3.1) share
// their physical representation with a plain signed integer vector
// (int32 for DateDay, TimeSec and TimeMilli; int64 for DateMilli,
// TimeMicro, TimeNano and every TimeStamp unit). Each gets its own named type — not a second copy of
// NumericVector's logic, just a one-line wrapper — so that TransferTo
// rejects, say, a DateDay buffer handed to a TimeSec sibling even though
// both are physically int32 (spec.md §7, ErrTypeMismatch; see S6).

// DateDayVector holds days-since-epoch values (roster: DateDay).
type DateDayVector struct{ *NumericVector[int32] }

// NewDateDayVector constructs an empty DateDay vector.
func NewDateDayVector(name string, allocator Allocator) *DateDayVector {
	return &DateDayVector{newNumericVector[int32](allocator, FieldType{Name: name, Type: MinorTypeDateDay}, int32Codec)}
}

func (v *DateDayVector) TransferTo(dst Vector) error {
	target, ok := dst.(*DateDayVector)
	if !ok {
		return fmt.Errorf("%w: cannot transfer %s into %T", ErrTypeMismatch, v.MinorType(), dst)
	}
	return v.base.TransferTo(&target.base)
}

func (v *DateDayVector) SplitAndTransferTo(start, length int, dst Vector) error {
	target, ok := dst.(*DateDayVector)
	if !ok {
		return fmt.Errorf("%w: cannot split-transfer %s into %T", ErrTypeMismatch, v.MinorType(), dst)
	}
	return v.base.SplitAndTransferTo(start, length, &target.base)
}

// GetTransferPair constructs a fresh DateDay sibling under v's allocator.
func (v *DateDayVector) GetTransferPair(name string) *TransferPair {
	return v.MakeTransferPair(NewDateDayVector(name, v.base.allocator))
}

// MakeTransferPair returns a TransferPair bound to the caller-supplied to.
func (v *DateDayVector) MakeTransferPair(to *DateDayVector) *TransferPair {
	return newTransferPair(v, to, func(fromIndex, toIndex int) error {
		return v.CopyFromSafe(fromIndex, to.NumericVector, toIndex)
	})
}

// DateMilliVector holds milliseconds-since-epoch values (roster: DateMilli).
type DateMilliVector struct{ *NumericVector[int64] }

// NewDateMilliVector constructs an empty DateMilli vector.
func NewDateMilliVector(name string, allocator Allocator) *DateMilliVector {
	return &DateMilliVector{newNumericVector[int64](allocator, FieldType{Name: name, Type: MinorTypeDateMilli}, int64Codec)}
}

func (v *DateMilliVector) TransferTo(dst Vector) error {
	target, ok := dst.(*DateMilliVector)
	if !ok {
		return fmt.Errorf("%w: cannot transfer %s into %T", ErrTypeMismatch, v.MinorType(), dst)
	}
	return v.base.TransferTo(&target.base)
}

func (v *DateMilliVector) SplitAndTransferTo(start, length int, dst Vector) error {
	target, ok := dst.(*DateMilliVector)
	if !ok {
		return fmt.Errorf("%w: cannot split-transfer %s into %T", ErrTypeMismatch, v.MinorType(), dst)
	}
	return v.base.SplitAndTransferTo(start, length, &target.base)
}

// GetTransferPair constructs a fresh DateMilli sibling under v's allocator.
func (v *DateMilliVector) GetTransferPair(name string) *TransferPair {
	return v.MakeTransferPair(NewDateMilliVector(name, v.base.allocator))
}

// MakeTransferPair returns a TransferPair bound to the caller-supplied to.
func (v *DateMilliVector) MakeTransferPair(to *DateMilliVector) *TransferPair {
	return newTransferPair(v, to, func(fromIndex, toIndex int) error {
		return v.CopyFromSafe(fromIndex, to.NumericVector, toIndex)
	})
}

// TimeSecVector holds seconds-of-day values (roster: TimeSec).
type TimeSecVector struct{ *NumericVector[int32] }

// NewTimeSecVector constructs an empty TimeSec vector.
func NewTimeSecVector(name string, allocator Allocator) *TimeSecVector {
	return &TimeSecVector{newNumericVector[int32](allocator, FieldType{Name: name, Type: MinorTypeTimeSec}, int32Codec)}
}

func (v *TimeSecVector) TransferTo(dst Vector) error {
	target, ok := dst.(*TimeSecVector)
	if !ok {
		return fmt.Errorf("%w: cannot transfer %s into %T", ErrTypeMismatch, v.MinorType(), dst)
	}
	return v.base.TransferTo(&target.base)
}

func (v *TimeSecVector) SplitAndTransferTo(start, length int, dst Vector) error {
	target, ok := dst.(*TimeSecVector)
	if !ok {
		return fmt.Errorf("%w: cannot split-transfer %s into %T", ErrTypeMismatch, v.MinorType(), dst)
	}
	return v.base.SplitAndTransferTo(start, length, &target.base)
}

// GetTransferPair constructs a fresh TimeSec sibling under v's allocator.
func (v *TimeSecVector) GetTransferPair(name string) *TransferPair {
	return v.MakeTransferPair(NewTimeSecVector(name, v.base.allocator))
}

// MakeTransferPair returns a TransferPair bound to the caller-supplied to.
func (v *TimeSecVector) MakeTransferPair(to *TimeSecVector) *TransferPair {
	return newTransferPair(v, to, func(fromIndex, toIndex int) error {
		return v.CopyFromSafe(fromIndex, to.NumericVector, toIndex)
	})
}

// TimeMilliVector holds milliseconds-of-day values (roster: TimeMilli).
type TimeMilliVector struct{ *NumericVector[int32] }

// NewTimeMilliVector constructs an empty TimeMilli vector.
func NewTimeMilliVector(name string, allocator Allocator) *TimeMilliVector {
	return &TimeMilliVector{newNumericVector[int32](allocator, FieldType{Name: name, Type: MinorTypeTimeMilli}, int32Codec)}
}

func (v *TimeMilliVector) TransferTo(dst Vector) error {
	target, ok := dst.(*TimeMilliVector)
	if !ok {
		return fmt.Errorf("%w: cannot transfer %s into %T", ErrTypeMismatch, v.MinorType(), dst)
	}
	return v.base.TransferTo(&target.base)
}

func (v *TimeMilliVector) SplitAndTransferTo(start, length int, dst Vector) error {
	target, ok := dst.(*TimeMilliVector)
	if !ok {
		return fmt.Errorf("%w: cannot split-transfer %s into %T", ErrTypeMismatch, v.MinorType(), dst)
	}
	return v.base.SplitAndTransferTo(start, length, &target.base)
}

// GetTransferPair constructs a fresh TimeMilli sibling under v's allocator.
func (v *TimeMilliVector) GetTransferPair(name string) *TransferPair {
	return v.MakeTransferPair(NewTimeMilliVector(name, v.base.allocator))
}

// MakeTransferPair returns a TransferPair bound to the caller-supplied to.
func (v *TimeMilliVector) MakeTransferPair(to *TimeMilliVector) *TransferPair {
	return newTransferPair(v, to, func(fromIndex, toIndex int) error {
		return v.CopyFromSafe(fromIndex, to.NumericVector, toIndex)
	})
}

// TimeMicroVector holds microseconds-of-day values (roster: TimeMicro).
type TimeMicroVector struct{ *NumericVector[int64] }

// NewTimeMicroVector constructs an empty TimeMicro vector.
func NewTimeMicroVector(name string, allocator Allocator) *TimeMicroVector {
	return &TimeMicroVector{newNumericVector[int64](allocator, FieldType{Name: name, Type: MinorTypeTimeMicro}, int64Codec)}
}

func (v *TimeMicroVector) TransferTo(dst Vector) error {
	target, ok := dst.(*TimeMicroVector)
	if !ok {
		return fmt.Errorf("%w: cannot transfer %s into %T", ErrTypeMismatch, v.MinorType(), dst)
	}
	return v.base.TransferTo(&target.base)
}

func (v *TimeMicroVector) SplitAndTransferTo(start, length int, dst Vector) error {
	target, ok := dst.(*TimeMicroVector)
	if !ok {
		return fmt.Errorf("%w: cannot split-transfer %s into %T", ErrTypeMismatch, v.MinorType(), dst)
	}
	return v.base.SplitAndTransferTo(start, length, &target.base)
}

// GetTransferPair constructs a fresh TimeMicro sibling under v's allocator.
func (v *TimeMicroVector) GetTransferPair(name string) *TransferPair {
	return v.MakeTransferPair(NewTimeMicroVector(name, v.base.allocator))
}

// MakeTransferPair returns a TransferPair bound to the caller-supplied to.
func (v *TimeMicroVector) MakeTransferPair(to *TimeMicroVector) *TransferPair {
	return newTransferPair(v, to, func(fromIndex, toIndex int) error {
		return v.CopyFromSafe(fromIndex, to.NumericVector, toIndex)
	})
}

// TimeNanoVector holds nanoseconds-of-day values (roster: TimeNano).
type TimeNanoVector struct{ *NumericVector[int64] }

// NewTimeNanoVector constructs an empty TimeNano vector.
func NewTimeNanoVector(name string, allocator Allocator) *TimeNanoVector {
	return &TimeNanoVector{newNumericVector[int64](allocator, FieldType{Name: name, Type: MinorTypeTimeNano}, int64Codec)}
}

func (v *TimeNanoVector) TransferTo(dst Vector) error {
	target, ok := dst.(*TimeNanoVector)
	if !ok {
		return fmt.Errorf("%w: cannot transfer %s into %T", ErrTypeMismatch, v.MinorType(), dst)
	}
	return v.base.TransferTo(&target.base)
}

func (v *TimeNanoVector) SplitAndTransferTo(start, length int, dst Vector) error {
	target, ok := dst.(*TimeNanoVector)
	if !ok {
		return fmt.Errorf("%w: cannot split-transfer %s into %T", ErrTypeMismatch, v.MinorType(), dst)
	}
	return v.base.SplitAndTransferTo(start, length, &target.base)
}

// GetTransferPair constructs a fresh TimeNano sibling under v's allocator.
func (v *TimeNanoVector) GetTransferPair(name string) *TransferPair {
	return v.MakeTransferPair(NewTimeNanoVector(name, v.base.allocator))
}

// MakeTransferPair returns a TransferPair bound to the caller-supplied to.
func (v *TimeNanoVector) MakeTransferPair(to *TimeNanoVector) *TransferPair {
	return newTransferPair(v, to, func(fromIndex, toIndex int) error {
		return v.CopyFromSafe(fromIndex, to.NumericVector, toIndex)
	})
}

// TimeStampSecVector holds signed epoch-second offsets (roster: TimeStampSec).
type TimeStampSecVector struct{ *NumericVector[int64] }

// NewTimeStampSecVector constructs an empty TimeStampSec vector.
func NewTimeStampSecVector(name string, allocator Allocator) *TimeStampSecVector {
	return &TimeStampSecVector{newNumericVector[int64](allocator, FieldType{Name: name, Type: MinorTypeTimeStampSec}, int64Codec)}
}

func (v *TimeStampSecVector) TransferTo(dst Vector) error {
	target, ok := dst.(*TimeStampSecVector)
	if !ok {
		return fmt.Errorf("%w: cannot transfer %s into %T", ErrTypeMismatch, v.MinorType(), dst)
	}
	return v.base.TransferTo(&target.base)
}

func (v *TimeStampSecVector) SplitAndTransferTo(start, length int, dst Vector) error {
	target, ok := dst.(*TimeStampSecVector)
	if !ok {
		return fmt.Errorf("%w: cannot split-transfer %s into %T", ErrTypeMismatch, v.MinorType(), dst)
	}
	return v.base.SplitAndTransferTo(start, length, &target.base)
}

// GetTransferPair constructs a fresh TimeStampSec sibling under v's allocator.
func (v *TimeStampSecVector) GetTransferPair(name string) *TransferPair {
	return v.MakeTransferPair(NewTimeStampSecVector(name, v.base.allocator))
}

// MakeTransferPair returns a TransferPair bound to the caller-supplied to.
func (v *TimeStampSecVector) MakeTransferPair(to *TimeStampSecVector) *TransferPair {
	return newTransferPair(v, to, func(fromIndex, toIndex int) error {
		return v.CopyFromSafe(fromIndex, to.NumericVector, toIndex)
	})
}

// TimeStampMilliVector holds signed epoch-millisecond offsets (roster:
// TimeStampMilli).
type TimeStampMilliVector struct{ *NumericVector[int64] }

// NewTimeStampMilliVector constructs an empty TimeStampMilli vector.
func NewTimeStampMilliVector(name string, allocator Allocator) *TimeStampMilliVector {
	return &TimeStampMilliVector{newNumericVector[int64](allocator, FieldType{Name: name, Type: MinorTypeTimeStampMilli}, int64Codec)}
}

func (v *TimeStampMilliVector) TransferTo(dst Vector) error {
	target, ok := dst.(*TimeStampMilliVector)
	if !ok {
		return fmt.Errorf("%w: cannot transfer %s into %T", ErrTypeMismatch, v.MinorType(), dst)
	}
	return v.base.TransferTo(&target.base)
}

func (v *TimeStampMilliVector) SplitAndTransferTo(start, length int, dst Vector) error {
	target, ok := dst.(*TimeStampMilliVector)
	if !ok {
		return fmt.Errorf("%w: cannot split-transfer %s into %T", ErrTypeMismatch, v.MinorType(), dst)
	}
	return v.base.SplitAndTransferTo(start, length, &target.base)
}

// GetTransferPair constructs a fresh TimeStampMilli sibling under v's allocator.
func (v *TimeStampMilliVector) GetTransferPair(name string) *TransferPair {
	return v.MakeTransferPair(NewTimeStampMilliVector(name, v.base.allocator))
}

// MakeTransferPair returns a TransferPair bound to the caller-supplied to.
func (v *TimeStampMilliVector) MakeTransferPair(to *TimeStampMilliVector) *TransferPair {
	return newTransferPair(v, to, func(fromIndex, toIndex int) error {
		return v.CopyFromSafe(fromIndex, to.NumericVector, toIndex)
	})
}

// TimeStampMicroVector holds signed epoch-microsecond offsets (roster:
// TimeStampMicro).
type TimeStampMicroVector struct{ *NumericVector[int64] }

// NewTimeStampMicroVector constructs an empty TimeStampMicro vector.
func NewTimeStampMicroVector(name string, allocator Allocator) *TimeStampMicroVector {
	return &TimeStampMicroVector{newNumericVector[int64](allocator, FieldType{Name: name, Type: MinorTypeTimeStampMicro}, int64Codec)}
}

func (v *TimeStampMicroVector) TransferTo(dst Vector) error {
	target, ok := dst.(*TimeStampMicroVector)
	if !ok {
		return fmt.Errorf("%w: cannot transfer %s into %T", ErrTypeMismatch, v.MinorType(), dst)
	}
	return v.base.TransferTo(&target.base)
}

func (v *TimeStampMicroVector) SplitAndTransferTo(start, length int, dst Vector) error {
	target, ok := dst.(*TimeStampMicroVector)
	if !ok {
		return fmt.Errorf("%w: cannot split-transfer %s into %T", ErrTypeMismatch, v.MinorType(), dst)
	}
	return v.base.SplitAndTransferTo(start, length, &target.base)
}

// GetTransferPair constructs a fresh TimeStampMicro sibling under v's allocator.
func (v *TimeStampMicroVector) GetTransferPair(name string) *TransferPair {
	return v.MakeTransferPair(NewTimeStampMicroVector(name, v.base.allocator))
}

// MakeTransferPair returns a TransferPair bound to the caller-supplied to.
func (v *TimeStampMicroVector) MakeTransferPair(to *TimeStampMicroVector) *TransferPair {
	return newTransferPair(v, to, func(fromIndex, toIndex int) error {
		return v.CopyFromSafe(fromIndex, to.NumericVector, toIndex)
	})
}

// TimeStampNanoVector holds signed epoch-nanosecond offsets (roster:
// TimeStampNano).
type TimeStampNanoVector struct{ *NumericVector[int64] }

// NewTimeStampNanoVector constructs an empty TimeStampNano vector.
func NewTimeStampNanoVector(name string, allocator Allocator) *TimeStampNanoVector {
	return &TimeStampNanoVector{newNumericVector[int64](allocator, FieldType{Name: name, Type: MinorTypeTimeStampNano}, int64Codec)}
}

func (v *TimeStampNanoVector) TransferTo(dst Vector) error {
	target, ok := dst.(*TimeStampNanoVector)
	if !ok {
		return fmt.Errorf("%w: cannot transfer %s into %T", ErrTypeMismatch, v.MinorType(), dst)
	}
	return v.base.TransferTo(&target.base)
}

func (v *TimeStampNanoVector) SplitAndTransferTo(start, length int, dst Vector) error {
	target, ok := dst.(*TimeStampNanoVector)
	if !ok {
		return fmt.Errorf("%w: cannot split-transfer %s into %T", ErrTypeMismatch, v.MinorType(), dst)
	}
	return v.base.SplitAndTransferTo(start, length, &target.base)
}

// GetTransferPair constructs a fresh TimeStampNano sibling under v's allocator.
func (v *TimeStampNanoVector) GetTransferPair(name string) *TransferPair {
	return v.MakeTransferPair(NewTimeStampNanoVector(name, v.base.allocator))
}

// MakeTransferPair returns a TransferPair bound to the caller-supplied to.
func (v *TimeStampNanoVector) MakeTransferPair(to *TimeStampNanoVector) *TransferPair {
	return newTransferPair(v, to, func(fromIndex, toIndex int) error {
		return v.CopyFromSafe(fromIndex, to.NumericVector, toIndex)
	})
}
