package main

import (
	"testing"

	"github.com/dynapptor/mempool-32/pool"
)

func TestParseSegments(t *testing.T) {
	segs, err := parseSegments("64x1, 32x4,8x16")
	if err != nil {
		t.Fatalf("parseSegments: %v", err)
	}
	want := []pool.Segment{
		{Count: 64, Size: 1},
		{Count: 32, Size: 4},
		{Count: 8, Size: 16},
	}
	if len(segs) != len(want) {
		t.Fatalf("got %d segments, want %d", len(segs), len(want))
	}
	for i := range want {
		if segs[i] != want[i] {
			t.Errorf("segment %d = %+v, want %+v", i, segs[i], want[i])
		}
	}
}

func TestParseSegmentsErrors(t *testing.T) {
	for _, spec := range []string{"", "64", "64x", "x4", "axb", "64x1,,2x4"} {
		if _, err := parseSegments(spec); err == nil {
			t.Errorf("parseSegments(%q): expected error", spec)
		}
	}
}
