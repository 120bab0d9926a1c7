//go:build unix

package arena

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// NewMapped returns an arena backed by an anonymous private mapping. With
// lock set, the pages are additionally pinned with mlock so the kernel can
// never page them out mid-allocation.
func NewMapped(size int, lock bool) (*Arena, error) {
	if size == 0 {
		return &Arena{data: []byte{}}, nil
	}
	data, err := unix.Mmap(
		-1,
		0,
		size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE,
	)
	if err != nil {
		return nil, fmt.Errorf("arena: mmap %d bytes: %w", size, err)
	}
	if lock {
		if err := unix.Mlock(data); err != nil {
			_ = unix.Munmap(data)
			return nil, fmt.Errorf("arena: mlock %d bytes: %w", size, err)
		}
	}
	cleanup := func() error {
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		return err
	}
	return &Arena{data: data, cleanup: cleanup}, nil
}
