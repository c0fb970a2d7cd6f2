package lits

import (
	"context"
	"sync"
	"time"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

// PieceMap is the precomputed table of every legal tetromino placement on a 10x10
// board, along with the pairwise interactions and adjacency data move generation needs.
// It is expensive to build and immutable once built, so callers should share a single
// instance rather than rebuilding it; DefaultPieceMap does exactly that.
type PieceMap struct {
	forward              [NumPieces]Tetromino
	reverse              map[[4]OffsetCoord]int
	associations         [NumPieces][NumPieces]Interaction
	associationsSpecific [NumPieces][3]MoveSet
	coordNeighbours      [BoardSize * BoardSize]CoordSet
	neighbours           [NumPieces]CoordSet
	selfs                [NumPieces]CoordSet
	shadowsets           [NumPieces]CoordSet
	piecesByKind         [NumKinds]MoveSet
}

// NewPieceMap builds a PieceMap from scratch. Building is O(NumPieces^2) and is meant
// to be done once; see DefaultPieceMap for the process-wide shared instance.
func NewPieceMap(ctx context.Context) *PieceMap {
	start := time.Now()
	pm := &PieceMap{reverse: make(map[[4]OffsetCoord]int, NumPieces)}
	pm.buildForward()
	pm.buildAssociations()
	pm.buildNeighbours()
	pm.buildCoordNeighbours()
	logw.Infof(ctx, "Built PieceMap: %v pieces, %v", NumPieces, time.Since(start))
	return pm
}

func (pm *PieceMap) buildForward() {
	idx := 0
	for _, kind := range Kinds() {
		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				base := NewTetromino(kind, NewCoord(row, col))
				for _, isomorph := range base.Enumerate() {
					if !isomorph.InBounds() {
						continue
					}
					pm.forward[idx] = isomorph
					pm.reverse[isomorph.RealCoords()] = idx
					pm.piecesByKind[kind].Insert(idx)
					idx++
				}
			}
		}
	}
	if idx != NumPieces {
		panic("lits: piece enumeration produced an unexpected piece count")
	}
}

func (pm *PieceMap) buildAssociations() {
	coords := make([]CoordSet, NumPieces)
	for i := range pm.forward {
		coords[i] = pm.forward[i].RealCoordSet()
		pm.selfs[i] = coords[i]
	}

	for i := 0; i < NumPieces; i++ {
		for j := i + 1; j < NumPieces; j++ {
			pm.associations[i][j] = classify(pm.forward[i], coords[i], pm.forward[j], coords[j])
		}
	}

	for idx := 0; idx < NumPieces; idx++ {
		for p := 0; p < NumPieces; p++ {
			if p == idx {
				continue
			}
			r, c := idx, p
			if r > c {
				r, c = c, r
			}
			pm.associationsSpecific[idx][pm.associations[r][c]].Insert(p)
		}
	}
}

// classify reproduces the four-step pairwise interaction rule: overlap beats everything,
// then no-adjacency is Neutral, then same-kind adjacency is Conflicting, then a combined
// footprint that covers a 2x2 square is Conflicting (it would violate the foursquare
// rule on its own), and anything left standing is Adjacent.
func classify(lhs Tetromino, lCoords CoordSet, rhs Tetromino, rCoords CoordSet) Interaction {
	if lCoords.Intersects(rCoords) {
		return Conflicting
	}

	adjacent := false
	for _, l := range lhs.RealCoords() {
		for _, r := range rhs.RealCoords() {
			if l.Neighbours(r) {
				adjacent = true
				break
			}
		}
		if adjacent {
			break
		}
	}
	if !adjacent {
		return Neutral
	}

	if lhs.Kind == rhs.Kind {
		return Conflicting
	}

	cover := lCoords.Union(rCoords)
	for _, c := range cover.Coords() {
		right := c.Add(NewOffsetCoord(0, 1))
		down := c.Add(NewOffsetCoord(1, 0))
		diag := c.Add(NewOffsetCoord(1, 1))
		if right.InBounds() && down.InBounds() && diag.InBounds() &&
			cover.Contains(right.Coerce()) && cover.Contains(down.Coerce()) && cover.Contains(diag.Coerce()) {
			return Conflicting
		}
	}

	return Adjacent
}

func (pm *PieceMap) buildNeighbours() {
	for i := range pm.forward {
		pm.neighbours[i] = pm.forward[i].Neighbours()
		pm.shadowsets[i] = pm.selfs[i].Union(pm.neighbours[i])
	}
}

func (pm *PieceMap) buildCoordNeighbours() {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			c := NewCoord(row, col)
			var set CoordSet
			for _, off := range OrthogonalOffsets {
				n := c.Add(off)
				if n.InBounds() {
					set.Insert(n.Coerce())
				}
			}
			pm.coordNeighbours[c.Index()] = set
		}
	}
}

// Piece returns the tetromino placement with the given id.
func (pm *PieceMap) Piece(id int) Tetromino {
	return pm.forward[id]
}

// PieceChecked returns the tetromino placement with the given id, or false if id is out
// of range.
func (pm *PieceMap) PieceChecked(id int) (Tetromino, bool) {
	if id < 0 || id >= NumPieces {
		return Tetromino{}, false
	}
	return pm.forward[id], true
}

// Kind returns the kind of the piece placement with the given id.
func (pm *PieceMap) Kind(id int) Kind {
	return pm.forward[id].Kind
}

// Find returns the id of the placement occupying exactly the given four real
// coordinates, or false if no such placement exists.
func (pm *PieceMap) Find(coords [4]OffsetCoord) (int, bool) {
	id, ok := pm.reverse[coords]
	return id, ok
}

// FindOptional is Find wrapped as an optional value, for callers (notation parsing) that
// thread the result through further lang.Optional-typed plumbing rather than branching
// immediately.
func (pm *PieceMap) FindOptional(coords [4]OffsetCoord) lang.Optional[int] {
	if id, ok := pm.Find(coords); ok {
		return lang.Some(id)
	}
	return lang.Optional[int]{}
}

// Coordset returns the footprint of the piece placement with the given id.
func (pm *PieceMap) Coordset(id int) CoordSet {
	return pm.selfs[id]
}

// Neighbours returns the cells orthogonally adjacent to the piece placement's
// footprint.
func (pm *PieceMap) Neighbours(id int) CoordSet {
	return pm.neighbours[id]
}

// Shadowset returns the union of a placement's footprint and its neighbours; the
// region an opponent placement must avoid to stay clear of it entirely.
func (pm *PieceMap) Shadowset(id int) CoordSet {
	return pm.shadowsets[id]
}

// CoordNeighbours returns the on-board cells orthogonally adjacent to c.
func (pm *PieceMap) CoordNeighbours(c Coord) CoordSet {
	return pm.coordNeighbours[c.Index()]
}

// Association returns the interaction between two placements by id.
func (pm *PieceMap) Association(i, j int) Interaction {
	if i > j {
		i, j = j, i
	}
	if i == j {
		return Conflicting
	}
	return pm.associations[i][j]
}

// WithInteraction returns the set of placements that have the given interaction with
// placement id.
func (pm *PieceMap) WithInteraction(id int, interaction Interaction) MoveSet {
	return pm.associationsSpecific[id][interaction]
}

// PiecesByKind returns every placement of the given kind.
func (pm *PieceMap) PiecesByKind(kind Kind) MoveSet {
	return pm.piecesByKind[kind]
}

// Notate renders a piece id's board notation, or "swap" for NullMove.
func (pm *PieceMap) Notate(id int) string {
	if id == NullMove {
		return "swap"
	}
	return pm.forward[id].Notate()
}

var (
	defaultPieceMap     *PieceMap
	defaultPieceMapOnce sync.Once
)

// DefaultPieceMap returns the process-wide shared PieceMap, building it on first use.
// Construction is expensive; every caller that does not need an isolated instance
// should go through this accessor.
func DefaultPieceMap() *PieceMap {
	defaultPieceMapOnce.Do(func() {
		defaultPieceMap = NewPieceMap(context.Background())
	})
	return defaultPieceMap
}
