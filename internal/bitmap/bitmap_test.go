package bitmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newMap(t *testing.T, cells int) Map {
	t.Helper()
	m := View(make([]uint32, WordsFor(cells)), cells)
	m.Reset()
	return m
}

func Test_Bitmap_AcquireOrder(t *testing.T) {
	m := newMap(t, 40)
	for want := 0; want < 40; want++ {
		got, ok := m.Acquire()
		require.True(t, ok, "cell %d", want)
		require.Equal(t, want, got, "cells come back lowest-index first")
	}
	_, ok := m.Acquire()
	require.False(t, ok, "41st acquire must fail")
	require.True(t, m.Full())
}

func Test_Bitmap_PaddingBitsArmed(t *testing.T) {
	// 5 cells: one group, 27 padding bits in the cell mask, 31 padding
	// bits in the group mask.
	m := newMap(t, 5)
	require.Equal(t, uint32(0xFFFFFFFE), m.words[0])
	require.Equal(t, uint32(0xFFFFFFE0), m.words[1])

	for i := 0; i < 5; i++ {
		_, ok := m.Acquire()
		require.True(t, ok)
	}
	require.True(t, m.Full(), "padding bits must make a partial group saturate")

	// Releasing an out-of-range cell must not clear padding.
	m.Release(5)
	m.Release(31)
	require.True(t, m.Full())
}

func Test_Bitmap_GroupBitPropagation(t *testing.T) {
	m := newMap(t, 64)
	for i := 0; i < 32; i++ {
		m.Acquire()
	}
	require.Equal(t, uint32(1), m.words[0]&1, "group 0 full after 32 cells")
	require.False(t, m.Full())

	m.Release(7)
	require.Equal(t, uint32(0), m.words[0]&1, "release clears the group bit")

	got, ok := m.Acquire()
	require.True(t, ok)
	require.Equal(t, 7, got, "freed cell is the lowest free bit again")
}

func Test_Bitmap_ExactMultipleOf32(t *testing.T) {
	m := newMap(t, 32)
	require.Equal(t, uint32(0xFFFFFFFE), m.words[0], "one valid group")
	require.Equal(t, uint32(0), m.words[1], "no padding in a full group")

	for i := 0; i < 32; i++ {
		_, ok := m.Acquire()
		require.True(t, ok)
	}
	require.True(t, m.Full())
	_, ok := m.Acquire()
	require.False(t, ok)
}

func Test_Bitmap_MaxCells(t *testing.T) {
	m := newMap(t, 1024)
	require.Equal(t, uint32(0), m.words[0], "all 32 groups valid")
	for i := 0; i < 1024; i++ {
		got, ok := m.Acquire()
		require.True(t, ok)
		require.Equal(t, i, got)
	}
	require.True(t, m.Full())
}

func Test_Bitmap_UsedAndFreeCount(t *testing.T) {
	m := newMap(t, 40)
	require.Equal(t, 40, m.FreeCount())
	require.False(t, m.Used(0))
	require.True(t, m.Used(40), "out of range reads as permanently occupied")

	m.Acquire()
	m.Acquire()
	require.True(t, m.Used(0))
	require.True(t, m.Used(1))
	require.Equal(t, 38, m.FreeCount())

	m.Release(0)
	require.False(t, m.Used(0))
	require.Equal(t, 39, m.FreeCount())
}

// Test_Bitmap_RoundTrip churns acquire/release pairs and verifies the map
// drains back to its initial word state.
func Test_Bitmap_RoundTrip(t *testing.T) {
	m := newMap(t, 100)
	initial := make([]uint32, len(m.words))
	copy(initial, m.words)

	cells := make([]int, 0, 100)
	for {
		c, ok := m.Acquire()
		if !ok {
			break
		}
		cells = append(cells, c)
	}
	require.Len(t, cells, 100)

	for _, c := range cells {
		m.Release(c)
	}
	require.Equal(t, initial, m.words, "full drain restores the initial bitmap")
}
