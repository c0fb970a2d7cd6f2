package lits

import "sync"

var (
	foursquareCells    [BoardSize - 1][BoardSize - 1]CoordSet
	affectedAnchors    [BoardSize][BoardSize]CoordSet
	foursquareTablesOn sync.Once
)

func initFoursquareTables() {
	for row := 0; row < BoardSize-1; row++ {
		for col := 0; col < BoardSize-1; col++ {
			var set CoordSet
			set.Insert(NewCoord(row, col))
			set.Insert(NewCoord(row, col+1))
			set.Insert(NewCoord(row+1, col))
			set.Insert(NewCoord(row+1, col+1))
			foursquareCells[row][col] = set
		}
	}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			c := NewCoord(row, col)
			var set CoordSet
			for _, off := range AnchorOffsets {
				anchor := c.Add(off)
				if anchor.InFoursquareBounds() {
					set.Insert(anchor.Coerce())
				}
			}
			affectedAnchors[row][col] = set
		}
	}
}

// FoursquareCounter tracks, for every 2x2 square anchored at its top-left corner, how
// many of its four cells are currently covered by a tile. No foursquare may ever reach
// a count of 4; a prospective placement that would complete one is illegal.
type FoursquareCounter struct {
	counts [BoardSize - 1][BoardSize - 1]int8
}

// Count returns the number of tiles in the foursquare anchored at coord.
func (f *FoursquareCounter) Count(coord Coord) int8 {
	return f.counts[coord.Row][coord.Col]
}

// Three reports whether any foursquare touching coord currently has exactly 3 tiles,
// meaning a tile placed at coord would complete it.
func (f *FoursquareCounter) Three(coord Coord) bool {
	foursquareTablesOn.Do(initFoursquareTables)
	for _, off := range AnchorOffsets {
		anchor := coord.Add(off)
		if anchor.InFoursquareBounds() && f.Count(anchor.Coerce()) == 3 {
			return true
		}
	}
	return false
}

// Four reports whether any foursquare touching coord currently has all 4 cells
// covered, meaning a tile just placed at coord completed it.
func (f *FoursquareCounter) Four(coord Coord) bool {
	foursquareTablesOn.Do(initFoursquareTables)
	for _, off := range AnchorOffsets {
		anchor := coord.Add(off)
		if anchor.InFoursquareBounds() && f.Count(anchor.Coerce()) == 4 {
			return true
		}
	}
	return false
}

// UpdateUnchecked adjusts every foursquare touching coord by +1 (tile placed) or -1
// (tile removed).
func (f *FoursquareCounter) UpdateUnchecked(coord Coord, covered bool) {
	foursquareTablesOn.Do(initFoursquareTables)
	delta := int8(-1)
	if covered {
		delta = 1
	}
	it := affectedAnchors[coord.Row][coord.Col].Iter()
	for anchor, ok := it.Next(); ok; anchor, ok = it.Next() {
		f.counts[anchor.Row][anchor.Col] += delta
	}
}

// ProtectedCells returns every cell belonging to a foursquare that already has 3
// tiles: the union of cells a legal move may never cover.
func (f *FoursquareCounter) ProtectedCells() CoordSet {
	foursquareTablesOn.Do(initFoursquareTables)
	var result CoordSet
	for row := 0; row < BoardSize-1; row++ {
		for col := 0; col < BoardSize-1; col++ {
			if f.counts[row][col] >= 3 {
				result.UnionInplace(foursquareCells[row][col])
			}
		}
	}
	return result
}

// ViolatesFoursquare reports whether placing a piece covering pieceCoords would
// overlap the protected region, i.e. complete some foursquare.
func ViolatesFoursquare(pieceCoords, protected CoordSet) bool {
	return protected.Intersects(pieceCoords)
}
