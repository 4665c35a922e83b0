// Copyright 2025 The Gromb Authors. All rights reserved.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fxvec

import "errors"

// Sentinel error kinds returned or panicked with by vector operations.
// Callers match against these with errors.Is, exactly as
// calvinalkan-agent-task matches errCacheNotFound/errCacheCorrupt.
var (
	// ErrNullValue is raised by Get(i) when element i's validity bit is 0.
	ErrNullValue = errors.New("fxvec: value is null")

	// ErrIndexOutOfBounds is raised by the non-safe Set(i, ...) when
	// i >= capacity. *Safe variants never raise this; they grow instead.
	ErrIndexOutOfBounds = errors.New("fxvec: index out of bounds")

	// ErrInvalidArgument covers negative capacities, a negative
	// holder.IsSet, and out-of-range decimal precision/scale/magnitude.
	ErrInvalidArgument = errors.New("fxvec: invalid argument")

	// ErrOversizedAllocation is raised when a requested buffer size
	// exceeds the configured maximum allocation.
	ErrOversizedAllocation = errors.New("fxvec: oversized allocation")

	// ErrOutOfMemory is raised when the allocator refuses a request.
	ErrOutOfMemory = errors.New("fxvec: out of memory")

	// ErrTypeMismatch is raised by TransferTo/SplitAndTransferTo/CopyFrom
	// when the two vectors involved are not the same concrete type.
	ErrTypeMismatch = errors.New("fxvec: type mismatch")
)
