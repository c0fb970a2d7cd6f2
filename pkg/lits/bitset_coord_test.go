package lits_test

import (
	"testing"

	"github.com/rsarvar1a/golits/pkg/lits"
	"github.com/stretchr/testify/assert"
)

func TestCoordSet(t *testing.T) {

	t.Run("insert and contains", func(t *testing.T) {
		var s lits.CoordSet
		c := lits.NewCoord(3, 4)
		assert.False(t, s.Contains(c))
		s.Insert(c)
		assert.True(t, s.Contains(c))
		assert.Equal(t, 1, s.Len())
	})

	t.Run("remove", func(t *testing.T) {
		s := lits.NewCoordSet(lits.NewCoord(0, 0), lits.NewCoord(1, 1))
		s.Remove(lits.NewCoord(0, 0))
		assert.False(t, s.Contains(lits.NewCoord(0, 0)))
		assert.True(t, s.Contains(lits.NewCoord(1, 1)))
	})

	t.Run("empty", func(t *testing.T) {
		var s lits.CoordSet
		assert.True(t, s.IsEmpty())
		s.Insert(lits.NewCoord(9, 9))
		assert.False(t, s.IsEmpty())
	})

	t.Run("set algebra", func(t *testing.T) {
		a := lits.NewCoordSet(lits.NewCoord(0, 0), lits.NewCoord(0, 1))
		b := lits.NewCoordSet(lits.NewCoord(0, 1), lits.NewCoord(0, 2))

		union := a.Union(b)
		assert.Equal(t, 3, union.Len())

		inter := a.Intersect(b)
		assert.Equal(t, 1, inter.Len())
		assert.True(t, inter.Contains(lits.NewCoord(0, 1)))

		diff := a.Difference(b)
		assert.Equal(t, 1, diff.Len())
		assert.True(t, diff.Contains(lits.NewCoord(0, 0)))
	})

	t.Run("inplace variants match value variants", func(t *testing.T) {
		a := lits.NewCoordSet(lits.NewCoord(0, 0), lits.NewCoord(0, 1))
		b := lits.NewCoordSet(lits.NewCoord(0, 1), lits.NewCoord(0, 2))

		union := a.Union(b)
		ac := a
		ac.UnionInplace(b)
		assert.Equal(t, union, ac)

		inter := a.Intersect(b)
		ac = a
		ac.IntersectInplace(b)
		assert.Equal(t, inter, ac)

		diff := a.Difference(b)
		ac = a
		ac.DifferenceInplace(b)
		assert.Equal(t, diff, ac)
	})

	t.Run("complement stays within the 100-cell universe", func(t *testing.T) {
		var s lits.CoordSet
		s.Insert(lits.NewCoord(0, 0))
		c := s.Complement()
		assert.Equal(t, 99, c.Len())
		assert.False(t, c.Contains(lits.NewCoord(0, 0)))
	})

	t.Run("disjoint and intersects", func(t *testing.T) {
		a := lits.NewCoordSet(lits.NewCoord(0, 0))
		b := lits.NewCoordSet(lits.NewCoord(0, 1))
		assert.True(t, a.IsDisjoint(b))
		assert.False(t, a.Intersects(b))

		c := lits.NewCoordSet(lits.NewCoord(0, 0), lits.NewCoord(5, 5))
		assert.False(t, a.IsDisjoint(c))
		assert.True(t, a.Intersects(c))
	})

	t.Run("iteration is ascending and exhaustive", func(t *testing.T) {
		s := lits.NewCoordSet(lits.NewCoord(5, 5), lits.NewCoord(0, 0), lits.NewCoord(2, 3))
		coords := s.Coords()
		assert.Equal(t, []lits.Coord{lits.NewCoord(0, 0), lits.NewCoord(2, 3), lits.NewCoord(5, 5)}, coords)
	})

	t.Run("extend", func(t *testing.T) {
		var s lits.CoordSet
		s.Extend([]lits.Coord{lits.NewCoord(1, 1), lits.NewCoord(2, 2)})
		assert.Equal(t, 2, s.Len())
	})
}
