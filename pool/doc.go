// Package pool provides a fixed-segment slab allocator with bounded,
// predictable allocation and release cost.
//
// # Overview
//
// The pool replaces general-purpose heap allocation with a small set of
// pre-sized cell segments carved from one contiguous arena. Each segment
// holds a fixed number of equally sized cells and is tracked by a two-level
// bitmap: one group-mask bit per 32 cells plus a 32-bit cell mask per
// group. Allocation is a table lookup and two trailing-zero scans; release
// is a binary search over segment bases plus a constant-time cell index
// recovery. There are no free lists to walk and no metadata stored next to
// the cells.
//
// # Lifecycle
//
//	p := pool.New()
//	err := p.Begin([]pool.Segment{
//	    {Count: 64, Size: 1}, // 64 cells of 4 bytes
//	    {Count: 32, Size: 4}, // 32 cells of 16 bytes
//	    {Count: 8, Size: 16}, // 8 cells of 64 bytes
//	})
//	if err != nil {
//	    return err
//	}
//	defer p.Clean()
//
//	ref, buf, err := p.Alloc(12)
//	if err != nil {
//	    // ErrOversized, ErrNoSegment, ErrExhausted: recoverable,
//	    // treat as out-of-memory.
//	}
//	// ... use buf ...
//	p.Release(ref)
//
// Begin runs once per pool lifetime; the arena, bitmap buffer, and lookup
// table are never resized afterwards. Clean releases everything and allows
// a fresh Begin.
//
// # Escalation
//
// A request whose natural-fit segment is exhausted is retried as a request
// for the next larger segment's cell size rather than failing outright.
// This trades internal fragmentation for availability; only when every
// larger segment is also saturated does Alloc return ErrExhausted.
//
// # References
//
// Alloc returns a Ref, the cell's byte offset into the arena, together
// with the cell's payload window. Release accepts any Ref and silently
// ignores invalid ones: NoRef, offsets outside the arena, and offsets that
// do not sit on a cell boundary. Locate converts a Ref into its typed
// (segment, cell) handle for diagnostics.
//
// # Thread Safety
//
// A Pool is a single mutually exclusive resource: every exported operation
// holds the pool's mutex for its whole duration, and every operation is
// O(log segments) or better and non-blocking, so the critical section is
// always short and bounded. No operation performs I/O except the explicit
// Dump*/WriteStats diagnostics.
//
// # Diagnostics
//
// Statistics are off by default; pass WithStats(&pool.Stats{}) to record
// total/failed allocation counts and per-segment peaks, and render them
// with WriteStats. DumpArena, DumpBitmap, and DumpLookup print raw state
// in a caller-chosen numeric base.
package pool
