package arena

import "testing"

func TestHeapArena(t *testing.T) {
	a := NewHeap(128)
	if a.Size() != 128 {
		t.Fatalf("Size = %d, want 128", a.Size())
	}
	data := a.Bytes()
	for i, b := range data {
		if b != 0 {
			t.Fatalf("byte %d not zeroed: %#x", i, b)
		}
	}
	data[0] = 0xAA
	if a.Bytes()[0] != 0xAA {
		t.Fatal("Bytes must return the same backing slice")
	}
	if err := a.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if a.Bytes() != nil {
		t.Fatal("Bytes must be nil after Release")
	}
	if err := a.Release(); err != nil {
		t.Fatalf("double Release: %v", err)
	}
}
