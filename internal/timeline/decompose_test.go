package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecomposeEpochIgnoresRange(t *testing.T) {
	want := []TimeRange{
		{-4000, -3001}, {-3000, -2001}, {-2000, -1001}, {-1000, -1},
		{0, 999}, {1000, 1999}, {2000, 2999},
	}

	for _, r := range []TimeRange{RootRange, {0, 0}, {1980, 1989}, {-10, 10}} {
		assert.Equal(t, want, Decompose(Epoch, r), "range %v", r)
	}
}

func TestDecomposeMillennium(t *testing.T) {
	blocks := Decompose(Millennium, TimeRange{Start: -4000, End: -3001})
	require.Len(t, blocks, 10)
	assert.Equal(t, TimeRange{-4000, -3901}, blocks[0])
	assert.Equal(t, TimeRange{-3100, -3001}, blocks[9])
}

func TestDecomposeCentury(t *testing.T) {
	blocks := Decompose(Century, TimeRange{Start: 1900, End: 1999})
	require.Len(t, blocks, 10)
	assert.Equal(t, TimeRange{1900, 1909}, blocks[0])
	assert.Equal(t, TimeRange{1980, 1989}, blocks[8])
}

func TestDecomposeDecadeIsInclusive(t *testing.T) {
	blocks := Decompose(Decade, TimeRange{Start: 1980, End: 1989})
	require.Len(t, blocks, 10)
	for i, b := range blocks {
		assert.Equal(t, TimeRange{1980 + i, 1980 + i}, b)
	}
}

func TestDecomposeYearYieldsMonths(t *testing.T) {
	blocks := Decompose(Year, TimeRange{Start: 2024, End: 2024})
	require.Len(t, blocks, 12)
	assert.Equal(t, TimeRange{1, 1}, blocks[0])
	assert.Equal(t, TimeRange{12, 12}, blocks[11])
}

func TestDecomposeTilesContiguously(t *testing.T) {
	tests := []struct {
		level Level
		r     TimeRange
	}{
		{Millennium, TimeRange{-4000, -3001}},
		{Millennium, TimeRange{1000, 1999}},
		{Century, TimeRange{-500, -401}},
		{Century, TimeRange{1900, 1999}},
		{Decade, TimeRange{-10, -1}},
	}

	for _, tc := range tests {
		blocks := Decompose(tc.level, tc.r)
		require.NotEmpty(t, blocks)

		step := Step(tc.level)
		wantCount := (tc.r.Span() + step - 1) / step
		if tc.level == Decade {
			wantCount = tc.r.Span() + 1
		}
		assert.Len(t, blocks, wantCount, "%s %v", tc.level, tc.r)

		assert.Equal(t, tc.r.Start, blocks[0].Start)
		for i := 1; i < len(blocks); i++ {
			assert.Equal(t, blocks[i-1].End+1, blocks[i].Start, "gap at block %d", i)
		}
		assert.GreaterOrEqual(t, blocks[len(blocks)-1].End, tc.r.End)
	}
}

func TestDecomposeOverflowsFinalBlock(t *testing.T) {
	// 1000..1049 is not a multiple of 100 wide: one block reaching 1099.
	blocks := Decompose(Millennium, TimeRange{Start: 1000, End: 1049})
	assert.Equal(t, []TimeRange{{1000, 1099}}, blocks)

	blocks = Decompose(Century, TimeRange{Start: 1900, End: 1925})
	require.Len(t, blocks, 3)
	assert.Equal(t, TimeRange{1920, 1929}, blocks[2])
}

func TestDecomposeUnknownLevel(t *testing.T) {
	assert.Nil(t, Decompose(Level(42), RootRange))
}
