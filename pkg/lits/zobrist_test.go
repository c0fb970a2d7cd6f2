package lits_test

import (
	"testing"

	"github.com/rsarvar1a/golits/pkg/lits"
	"github.com/stretchr/testify/assert"
)

func TestZobristTable(t *testing.T) {

	t.Run("deterministic for a fixed seed", func(t *testing.T) {
		a := lits.NewZobristTable(42)
		b := lits.NewZobristTable(42)
		coord := lits.NewCoord(3, 3)
		assert.Equal(t, a.CellHash(coord, lits.X, true), b.CellHash(coord, lits.X, true))
		assert.Equal(t, a.MoveHash(17), b.MoveHash(17))
	})

	t.Run("different seeds diverge", func(t *testing.T) {
		a := lits.NewZobristTable(1)
		b := lits.NewZobristTable(2)
		assert.NotEqual(t, a.InitialHash(), b.InitialHash())
	})

	t.Run("distinguishes X, O and empty at the same cell", func(t *testing.T) {
		table := lits.NewZobristTable(7)
		coord := lits.NewCoord(0, 0)
		x := table.CellHash(coord, lits.X, true)
		o := table.CellHash(coord, lits.O, true)
		empty := table.CellHash(coord, 0, false)
		assert.NotEqual(t, x, o)
		assert.NotEqual(t, x, empty)
		assert.NotEqual(t, o, empty)
	})

	t.Run("default table is a process-wide singleton", func(t *testing.T) {
		a := lits.DefaultZobristTable()
		b := lits.DefaultZobristTable()
		assert.Same(t, a, b)
	})
}
