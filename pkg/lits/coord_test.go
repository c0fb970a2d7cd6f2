package lits_test

import (
	"testing"

	"github.com/rsarvar1a/golits/pkg/lits"
	"github.com/stretchr/testify/assert"
)

func TestCoord(t *testing.T) {

	t.Run("index roundtrip", func(t *testing.T) {
		for row := 0; row < lits.BoardSize; row++ {
			for col := 0; col < lits.BoardSize; col++ {
				c := lits.NewCoord(row, col)
				assert.Equal(t, c, lits.CoordFromIndex(c.Index()))
			}
		}
	})

	t.Run("in bounds", func(t *testing.T) {
		tests := []struct {
			c        lits.Coord
			expected bool
		}{
			{lits.NewCoord(0, 0), true},
			{lits.NewCoord(9, 9), true},
			{lits.NewCoord(-1, 0), false},
			{lits.NewCoord(0, 10), false},
			{lits.NewCoord(10, 10), false},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.expected, tt.c.InBounds())
		}
	})

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "00", lits.NewCoord(0, 0).String())
		assert.Equal(t, "93", lits.NewCoord(9, 3).String())
	})
}

func TestOffsetCoord(t *testing.T) {

	t.Run("neighbours", func(t *testing.T) {
		a := lits.NewOffsetCoord(4, 4)
		tests := []struct {
			b        lits.OffsetCoord
			expected bool
		}{
			{lits.NewOffsetCoord(3, 4), true},
			{lits.NewOffsetCoord(5, 4), true},
			{lits.NewOffsetCoord(4, 3), true},
			{lits.NewOffsetCoord(4, 5), true},
			{lits.NewOffsetCoord(4, 4), false},
			{lits.NewOffsetCoord(5, 5), false},
			{lits.NewOffsetCoord(6, 4), false},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.expected, a.Neighbours(tt.b))
		}
	})

	t.Run("foursquare bounds", func(t *testing.T) {
		assert.True(t, lits.NewOffsetCoord(0, 0).InFoursquareBounds())
		assert.True(t, lits.NewOffsetCoord(8, 8).InFoursquareBounds())
		assert.False(t, lits.NewOffsetCoord(9, 8).InFoursquareBounds())
		assert.False(t, lits.NewOffsetCoord(8, 9).InFoursquareBounds())
	})

	t.Run("coerce roundtrip", func(t *testing.T) {
		c := lits.NewCoord(5, 7)
		assert.Equal(t, c, c.Offset().Coerce())
	})
}
