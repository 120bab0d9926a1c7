package pool

import "unsafe"

// AllocFor allocates room for count values of T, sizing the request as
// sizeof(T) * count. The payload window is returned as raw bytes; layout
// and decoding stay with the caller.
func AllocFor[T any](p *Pool, count int) (Ref, []byte, error) {
	var zero T
	return p.Alloc(int(unsafe.Sizeof(zero)) * count)
}

// ReleaseFor releases a reference obtained from AllocFor with the same T.
// It exists for symmetry with AllocFor; the element type does not change
// how the cell is classified.
func ReleaseFor[T any](p *Pool, ref Ref) {
	p.Release(ref)
}
