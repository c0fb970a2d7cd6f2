package lits_test

import (
	"testing"

	"github.com/rsarvar1a/golits/pkg/lits"
	"github.com/stretchr/testify/assert"
)

func TestTetrominoEnumerate(t *testing.T) {
	tests := []struct {
		kind     lits.Kind
		expected int
	}{
		{lits.L, 8},
		{lits.I, 2},
		{lits.T, 4},
		{lits.S, 4},
	}

	for _, tt := range tests {
		base := lits.NewTetromino(tt.kind, lits.NewCoord(5, 5))
		variants := base.Enumerate()
		assert.Len(t, variants, tt.expected, "kind %v", tt.kind)

		seen := make(map[lits.CoordSet]bool)
		for _, v := range variants {
			assert.Equal(t, tt.kind, v.Kind)
			cs := v.RealCoordSet()
			assert.False(t, seen[cs], "duplicate footprint for kind %v", tt.kind)
			seen[cs] = true
		}
	}
}

func TestTetrominoRealCoordsSorted(t *testing.T) {
	tet := lits.NewTetromino(lits.L, lits.NewCoord(5, 5))
	coords := tet.RealCoords()
	for i := 1; i < len(coords); i++ {
		prev, cur := coords[i-1], coords[i]
		assert.True(t, prev.Rows < cur.Rows || (prev.Rows == cur.Rows && prev.Cols <= cur.Cols))
	}
}

func TestTetrominoInBounds(t *testing.T) {
	assert.True(t, lits.NewTetromino(lits.I, lits.NewCoord(5, 5)).InBounds())
	assert.False(t, lits.NewTetromino(lits.I, lits.NewCoord(0, 0)).InBounds())
}

func TestTetrominoEqual(t *testing.T) {
	a := lits.NewTetromino(lits.T, lits.NewCoord(3, 3))
	b := lits.NewTetromino(lits.T, lits.NewCoord(3, 3))
	assert.True(t, a.Equal(b))

	c := lits.NewTetromino(lits.T, lits.NewCoord(4, 4))
	assert.False(t, a.Equal(c))

	d := lits.NewTetromino(lits.S, lits.NewCoord(3, 3))
	assert.False(t, a.Equal(d))
}

func TestTetrominoNeighboursExcludesFootprint(t *testing.T) {
	tet := lits.NewTetromino(lits.I, lits.NewCoord(5, 5))
	footprint := tet.RealCoordSet()
	neighbours := tet.Neighbours()
	assert.True(t, footprint.IsDisjoint(neighbours))
	assert.False(t, neighbours.IsEmpty())
}

func TestTetrominoAt(t *testing.T) {
	tet := lits.NewTetromino(lits.L, lits.NewCoord(2, 2))
	moved := tet.At(lits.NewCoord(6, 6))
	assert.Equal(t, tet.Kind, moved.Kind)
	assert.Equal(t, tet.Points, moved.Points)
	assert.NotEqual(t, tet.RealCoords(), moved.RealCoords())
}
