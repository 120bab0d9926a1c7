// Package arena owns the backing storage for a pool: one contiguous byte
// buffer allocated exactly once and never resized. The default backing is a
// garbage-collected slice; on unix an anonymous memory mapping can be used
// instead, optionally pinned with mlock for callers that cannot tolerate
// page faults on the allocation path.
package arena

// Arena is a fixed-size byte buffer plus the teardown for whatever backs it.
type Arena struct {
	data    []byte
	cleanup func() error
}

// NewHeap returns an arena backed by a zeroed, garbage-collected slice.
func NewHeap(size int) *Arena {
	return &Arena{data: make([]byte, size)}
}

// Bytes returns the arena contents. The slice is owned by the arena and must
// not be used after Release.
func (a *Arena) Bytes() []byte {
	return a.data
}

// Size returns the arena length in bytes.
func (a *Arena) Size() int {
	return len(a.data)
}

// Release tears down the backing storage. Safe to call more than once.
func (a *Arena) Release() error {
	a.data = nil
	if a.cleanup == nil {
		return nil
	}
	c := a.cleanup
	a.cleanup = nil
	return c()
}
