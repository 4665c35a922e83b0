// Copyright 2025 The Gromb Authors. All rights reserved.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fxvec

// Transferable is the surface TransferPair needs from a concrete vector
// type: the buffer-ownership move and split-move already defined on every
// typed façade in this package.
type Transferable interface {
	Vector
	TransferTo(dst Vector) error
	SplitAndTransferTo(start, length int, dst Vector) error
}

// TransferPair binds a source vector to a destination vector of the same
// concrete type and bundles the three operations a caller driving a split
// (e.g. a hash-partition or a filter) needs against that pair (spec.md
// §4.4, §6): a whole-buffer Transfer, a range-based SplitAndTransfer, and
// an element-at-a-time CopyValueSafe for building the destination up one
// row at a time instead of moving a contiguous range.
//
// Construct one via a vector's GetTransferPair (fresh named sibling under
// the same allocator) or MakeTransferPair (wrap a caller-supplied target)
// method, not directly.
type TransferPair struct {
	from, to      Transferable
	copyValueSafe func(fromIndex, toIndex int) error
}

func newTransferPair(from, to Transferable, copyValueSafe func(fromIndex, toIndex int) error) *TransferPair {
	return &TransferPair{from: from, to: to, copyValueSafe: copyValueSafe}
}

// To returns the pair's destination vector.
func (p *TransferPair) To() Vector { return p.to }

// Transfer moves the entire source buffer pair into the destination. The
// source vector is empty afterward.
func (p *TransferPair) Transfer() error {
	return p.from.TransferTo(p.to)
}

// SplitAndTransfer derives the destination as the half-open range [start,
// start+length) of the source, sharing storage when byte-aligned. The
// source vector is left unchanged.
func (p *TransferPair) SplitAndTransfer(start, length int) error {
	return p.from.SplitAndTransferTo(start, length, p.to)
}

// CopyValueSafe copies element fromIndex of the source into slot toIndex
// of the destination, growing the destination if necessary.
func (p *TransferPair) CopyValueSafe(fromIndex, toIndex int) error {
	return p.copyValueSafe(fromIndex, toIndex)
}
