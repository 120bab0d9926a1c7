//go:build !unix

package arena

// NewMapped degrades to a heap-backed arena on platforms without anonymous
// mappings; the lock request is ignored.
func NewMapped(size int, _ bool) (*Arena, error) {
	return NewHeap(size), nil
}
