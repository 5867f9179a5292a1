package venue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	cfg, ok := Get(SeminarHall)
	require.True(t, ok)
	assert.Equal(t, "Seminar Hall", cfg.Name)
	assert.Equal(t, 160, cfg.TotalSeats)
	assert.Equal(t, 16, cfg.SeatsPerRow)

	_, ok = Get("open-air")
	assert.False(t, ok)
}

func TestConfigGeometryInvariant(t *testing.T) {
	for _, vt := range Types() {
		cfg, ok := Get(vt)
		require.True(t, ok)
		assert.GreaterOrEqual(t, cfg.Rows, 1, vt)
		assert.GreaterOrEqual(t, cfg.SeatsPerRow, 1, vt)
		assert.LessOrEqual(t, cfg.TotalSeats, cfg.Rows*cfg.SeatsPerRow, vt)
	}
}

func TestRowOf(t *testing.T) {
	cases := []struct {
		seat, perRow, want int
	}{
		{1, 16, 1},
		{16, 16, 1},
		{17, 16, 2},
		{32, 16, 2},
		{33, 16, 3},
		{160, 16, 10},
		{1, 13, 1},
		{13, 13, 1},
		{14, 13, 2},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, RowOf(c.seat, c.perRow), "seat %d perRow %d", c.seat, c.perRow)
	}
}

func TestRowsFor(t *testing.T) {
	// Duplicate rows collapse and the result is sorted.
	assert.Equal(t, []int{1}, RowsFor([]int{1, 2, 10}, 16))
	assert.Equal(t, []int{1, 2}, RowsFor([]int{20, 1, 17}, 16))
	assert.Empty(t, RowsFor(nil, 16))
}

func TestInBounds(t *testing.T) {
	cfg, _ := Get(SeminarHall)
	assert.True(t, cfg.InBounds(1))
	assert.True(t, cfg.InBounds(160))
	assert.False(t, cfg.InBounds(0))
	assert.False(t, cfg.InBounds(161))
}

func TestCatalogs(t *testing.T) {
	assert.True(t, ValidDepartment("CSE"))
	assert.True(t, ValidDepartment("ECE"))
	assert.False(t, ValidDepartment("EEE"))

	assert.True(t, ValidYear("2nd Year"))
	assert.False(t, ValidYear("5th Year"))

	assert.True(t, ValidGender(""))
	assert.True(t, ValidGender("Girls"))
	assert.False(t, ValidGender("Other"))
}
