// Copyright 2025 The Gromb Authors. All rights reserved.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fxvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSetBit(t *testing.T) {
	buf := make([]byte, 2)

	setBitToOne(buf, 0)
	setBitToOne(buf, 9)
	assert.Equal(t, 1, getBit(buf, 0))
	assert.Equal(t, 1, getBit(buf, 9))
	assert.Equal(t, 0, getBit(buf, 1))

	setBit(buf, 9, 0)
	assert.Equal(t, 0, getBit(buf, 9))
	assert.Equal(t, 1, getBit(buf, 0), "clearing bit 9 must not disturb bit 0")
}

func TestSizeFromCount(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 7: 1, 8: 1, 9: 2, 16: 2, 17: 3}
	for n, want := range cases {
		assert.Equal(t, want, sizeFromCount(n), "sizeFromCount(%d)", n)
	}
}

func TestPopCount(t *testing.T) {
	buf := []byte{0xFF, 0x0F}
	assert.Equal(t, 12, popCount(buf, 2))

	buf2 := make([]byte, 4)
	assert.Equal(t, 0, popCount(buf2, 4))
}

func TestCrossByteBitExtraction(t *testing.T) {
	// 0b1011_0100, 0b0000_1101
	src := []byte{0xB4, 0x0D}
	offset := uint(4)

	lo := getBitsFromCurrentByte(src, 0, offset)
	hi := getBitsFromNextByte(src, 1, offset)
	assembled := lo | hi

	// Bits [4,12) of src, reassembled at [0,8) of assembled.
	want := byte(0)
	for i := 0; i < 8; i++ {
		if getBit(src, 4+i) == 1 {
			want |= 1 << uint(i)
		}
	}
	assert.Equal(t, want, assembled)
}
