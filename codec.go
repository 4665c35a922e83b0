// Copyright 2025 The Gromb Authors. All rights reserved.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fxvec

import (
	"encoding/binary"
	"math"
)

// rawCodec reinterprets the raw little-endian bytes of a fixed-width slot
// as T and back. One codec instance is shared by every NumericVector[T]
// of that element type; this is the "typed read/write shim" spec.md §9
// asks for instead of duplicating a whole vector type per width.
type rawCodec[T any] struct {
	width  int
	encode func(buf []byte, v T)
	decode func(buf []byte) T
}

var int8Codec = rawCodec[int8]{
	width:  1,
	encode: func(buf []byte, v int8) { buf[0] = byte(v) },
	decode: func(buf []byte) int8 { return int8(buf[0]) },
}

var uint8Codec = rawCodec[uint8]{
	width:  1,
	encode: func(buf []byte, v uint8) { buf[0] = v },
	decode: func(buf []byte) uint8 { return buf[0] },
}

var int16Codec = rawCodec[int16]{
	width:  2,
	encode: func(buf []byte, v int16) { binary.LittleEndian.PutUint16(buf, uint16(v)) },
	decode: func(buf []byte) int16 { return int16(binary.LittleEndian.Uint16(buf)) },
}

var uint16Codec = rawCodec[uint16]{
	width:  2,
	encode: func(buf []byte, v uint16) { binary.LittleEndian.PutUint16(buf, v) },
	decode: func(buf []byte) uint16 { return binary.LittleEndian.Uint16(buf) },
}

var int32Codec = rawCodec[int32]{
	width:  4,
	encode: func(buf []byte, v int32) { binary.LittleEndian.PutUint32(buf, uint32(v)) },
	decode: func(buf []byte) int32 { return int32(binary.LittleEndian.Uint32(buf)) },
}

var uint32Codec = rawCodec[uint32]{
	width:  4,
	encode: func(buf []byte, v uint32) { binary.LittleEndian.PutUint32(buf, v) },
	decode: func(buf []byte) uint32 { return binary.LittleEndian.Uint32(buf) },
}

var int64Codec = rawCodec[int64]{
	width:  8,
	encode: func(buf []byte, v int64) { binary.LittleEndian.PutUint64(buf, uint64(v)) },
	decode: func(buf []byte) int64 { return int64(binary.LittleEndian.Uint64(buf)) },
}

var uint64Codec = rawCodec[uint64]{
	width:  8,
	encode: func(buf []byte, v uint64) { binary.LittleEndian.PutUint64(buf, v) },
	decode: func(buf []byte) uint64 { return binary.LittleEndian.Uint64(buf) },
}

var float32Codec = rawCodec[float32]{
	width:  4,
	encode: func(buf []byte, v float32) { binary.LittleEndian.PutUint32(buf, math.Float32bits(v)) },
	decode: func(buf []byte) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(buf)) },
}

var float64Codec = rawCodec[float64]{
	width:  8,
	encode: func(buf []byte, v float64) { binary.LittleEndian.PutUint64(buf, math.Float64bits(v)) },
	decode: func(buf []byte) float64 { return math.Float64frombits(binary.LittleEndian.Uint64(buf)) },
}
