package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_BuildTable_OrdersStrictlyIncreasing(t *testing.T) {
	tab, err := buildTable([]Segment{
		{Count: 2, Size: 16},
		{Count: 8, Size: 1},
		{Count: 4, Size: 4},
		{Count: 6, Size: 2},
	})
	require.NoError(t, err)
	require.Equal(t, []int{4, 8, 16, 64}, tab.sizes)
	require.Equal(t, []int{8, 6, 4, 2}, tab.counts, "counts travel with their sizes")

	for i := 1; i < tab.segments(); i++ {
		require.Greater(t, tab.sizes[i], tab.sizes[i-1])
	}
}

func Test_BuildTable_StableOnDuplicateSizes(t *testing.T) {
	tab, err := buildTable([]Segment{
		{Count: 3, Size: 2},
		{Count: 7, Size: 2},
	})
	require.NoError(t, err)
	require.Equal(t, []int{8, 8}, tab.sizes)
	require.Equal(t, []int{3, 7}, tab.counts, "ties keep first-occurrence order")
}

func Test_BuildTable_Layout(t *testing.T) {
	// 8 cells of 4 bytes, 4 cells of 16 bytes, 33 cells of 64 bytes.
	tab, err := buildTable([]Segment{
		{Count: 8, Size: 1},
		{Count: 4, Size: 4},
		{Count: 33, Size: 16},
	})
	require.NoError(t, err)

	// base chains: base[i+1] = base[i] + size*count.
	require.Equal(t, []int{0, 32, 96}, tab.base)
	require.Equal(t, 96+33*64, tab.arenaBytes)

	// mask chains: 1 group word + ceil(count/32) cell words per segment.
	require.Equal(t, []int{0, 2, 4}, tab.mask)
	require.Equal(t, 4+3, tab.maskWords, "33 cells need two cell-mask words")
}

func Test_BuildTable_Validation(t *testing.T) {
	cases := []struct {
		name string
		segs []Segment
		want error
	}{
		{"empty", nil, ErrSegmentCount},
		{"too many", make([]Segment, 65), ErrSegmentCount},
		{"zero size", []Segment{{Count: 1, Size: 0}}, ErrCellSize},
		{"oversize", []Segment{{Count: 1, Size: 17}}, ErrCellSize},
		{"zero count", []Segment{{Count: 0, Size: 1}}, ErrCellCount},
		{"count over group span", []Segment{{Count: 1025, Size: 1}}, ErrCellCount},
		{"bad after good", []Segment{{Count: 4, Size: 2}, {Count: 4, Size: 0}}, ErrCellSize},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := buildTable(c.segs)
			require.ErrorIs(t, err, c.want)
		})
	}
}

func Test_BuildTable_MaxBounds(t *testing.T) {
	tab, err := buildTable([]Segment{{Count: 1024, Size: 16}})
	require.NoError(t, err)
	require.Equal(t, 64, tab.maxSize())
	require.Equal(t, 1024*64, tab.arenaBytes)
	require.Equal(t, 33, tab.maskWords)
}
