//go:build unix

package arena

import "testing"

func TestMappedArenaUnix(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping mmap test in short mode")
	}
	a, err := NewMapped(4096, false)
	if err != nil {
		t.Fatalf("NewMapped: %v", err)
	}
	if a.Size() != 4096 {
		t.Fatalf("Size = %d, want 4096", a.Size())
	}
	data := a.Bytes()
	data[0], data[4095] = 0xDE, 0xAD
	if data[0] != 0xDE || data[4095] != 0xAD {
		t.Fatal("mapped pages must be writable")
	}
	if err := a.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if err := a.Release(); err != nil {
		t.Fatalf("double Release: %v", err)
	}
}

func TestMappedArenaZeroSize(t *testing.T) {
	a, err := NewMapped(0, false)
	if err != nil {
		t.Fatalf("NewMapped(0): %v", err)
	}
	if a.Size() != 0 {
		t.Fatalf("Size = %d, want 0", a.Size())
	}
	if err := a.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
}
