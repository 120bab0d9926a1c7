package pool

import "errors"

var (
	// ErrInitialized indicates Begin was called on a pool that is already
	// initialized. The call is a no-op.
	ErrInitialized = errors.New("pool: already initialized")

	// ErrUninitialized indicates an operation that needs a sized pool was
	// called before Begin (or after Clean).
	ErrUninitialized = errors.New("pool: not initialized")

	// ErrSegmentCount indicates Begin was given zero segments or more than
	// the 64-segment maximum.
	ErrSegmentCount = errors.New("pool: segment count must be between 1 and 64")

	// ErrCellSize indicates a segment descriptor with a zero cell size or a
	// resolved size above the 64-byte maximum.
	ErrCellSize = errors.New("pool: cell size must resolve to 4..64 bytes")

	// ErrCellCount indicates a segment descriptor with a zero cell count or
	// more cells than one group mask word can track.
	ErrCellCount = errors.New("pool: cell count must be between 1 and 1024")

	// ErrBadSize indicates an Alloc request for zero or negative bytes.
	ErrBadSize = errors.New("pool: allocation size must be positive")

	// ErrOversized indicates an Alloc request larger than the largest
	// segment's resolved cell size.
	ErrOversized = errors.New("pool: allocation size exceeds the largest segment")

	// ErrNoSegment indicates the size lookup found no fitting segment.
	ErrNoSegment = errors.New("pool: no segment fits the allocation size")

	// ErrExhausted indicates every segment that could hold the request has
	// no free cell left.
	ErrExhausted = errors.New("pool: all fitting segments are exhausted")
)
