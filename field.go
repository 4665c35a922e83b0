// Copyright 2025 The Gromb Authors. All rights reserved.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fxvec

// MinorType tags the scalar interpretation of a vector's element bytes,
// per the type roster in spec.md §4.3.1.
type MinorType uint8

const (
	MinorTypeBit MinorType = iota
	MinorTypeTinyInt
	MinorTypeUInt1
	MinorTypeSmallInt
	MinorTypeUInt2
	MinorTypeInt
	MinorTypeUInt4
	MinorTypeBigInt
	MinorTypeUInt8
	MinorTypeFloat4
	MinorTypeFloat8
	MinorTypeDateDay
	MinorTypeDateMilli
	MinorTypeTimeSec
	MinorTypeTimeMilli
	MinorTypeTimeMicro
	MinorTypeTimeNano
	MinorTypeTimeStampSec
	MinorTypeTimeStampMilli
	MinorTypeTimeStampMicro
	MinorTypeTimeStampNano
	MinorTypeIntervalYear
	MinorTypeIntervalDay
	MinorTypeDecimal
)

func (t MinorType) String() string {
	switch t {
	case MinorTypeBit:
		return "Bit"
	case MinorTypeTinyInt:
		return "TinyInt"
	case MinorTypeUInt1:
		return "UInt1"
	case MinorTypeSmallInt:
		return "SmallInt"
	case MinorTypeUInt2:
		return "UInt2"
	case MinorTypeInt:
		return "Int"
	case MinorTypeUInt4:
		return "UInt4"
	case MinorTypeBigInt:
		return "BigInt"
	case MinorTypeUInt8:
		return "UInt8"
	case MinorTypeFloat4:
		return "Float4"
	case MinorTypeFloat8:
		return "Float8"
	case MinorTypeDateDay:
		return "DateDay"
	case MinorTypeDateMilli:
		return "DateMilli"
	case MinorTypeTimeSec:
		return "TimeSec"
	case MinorTypeTimeMilli:
		return "TimeMilli"
	case MinorTypeTimeMicro:
		return "TimeMicro"
	case MinorTypeTimeNano:
		return "TimeNano"
	case MinorTypeTimeStampSec:
		return "TimeStampSec"
	case MinorTypeTimeStampMilli:
		return "TimeStampMilli"
	case MinorTypeTimeStampMicro:
		return "TimeStampMicro"
	case MinorTypeTimeStampNano:
		return "TimeStampNano"
	case MinorTypeIntervalYear:
		return "IntervalYear"
	case MinorTypeIntervalDay:
		return "IntervalDay"
	case MinorTypeDecimal:
		return "Decimal"
	default:
		return "Unknown"
	}
}

// FieldType is the minimal external field descriptor this core needs: a
// minor-type tag, immutable per vector, plus decimal precision/scale when
// applicable. The full schema/field metadata system is out of scope
// (spec.md §1); this is the slice of it the core actually consumes.
type FieldType struct {
	Name      string
	Type      MinorType
	Nullable  bool
	Precision int32 // decimal only
	Scale     int32 // decimal only
}
