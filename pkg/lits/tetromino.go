package lits

import (
	"fmt"
	"sort"
	"strings"
)

// Tetromino is a shape of a given Kind, anchored at a board point, expressed as four
// offsets from that anchor under the shape's current Transform.
type Tetromino struct {
	Kind      Kind
	Anchor    OffsetCoord
	Points    [4]OffsetCoord
	Transform Transform
}

// identityTemplate returns the four untransformed offsets defining kind's base shape.
func identityTemplate(kind Kind) [4]OffsetCoord {
	switch kind {
	case L:
		return [4]OffsetCoord{{-1, 0}, {0, 0}, {1, 0}, {1, 1}}
	case I:
		return [4]OffsetCoord{{-1, 0}, {0, 0}, {1, 0}, {2, 0}}
	case T:
		return [4]OffsetCoord{{0, -1}, {0, 0}, {0, 1}, {1, 0}}
	default: // S
		return [4]OffsetCoord{{0, -1}, {0, 0}, {1, 0}, {1, 1}}
	}
}

// NewTetromino constructs the identity-transform tetromino of the given kind anchored
// at coord. Makes no guarantee that the result is in bounds.
func NewTetromino(kind Kind, anchor Coord) Tetromino {
	return Tetromino{Kind: kind, Anchor: anchor.Offset(), Points: identityTemplate(kind), Transform: Identity}
}

// At returns t moved to a new anchor, keeping its shape and transform.
func (t Tetromino) At(anchor Coord) Tetromino {
	return Tetromino{Kind: t.Kind, Anchor: anchor.Offset(), Points: t.Points, Transform: t.Transform}
}

// Apply applies tr to t: the four points are remapped through tr's canonical form for
// t's kind, and the resulting transform is t's transform composed with tr, itself
// canonicalized.
func (tr Transform) Apply(t Tetromino) Tetromino {
	canon := tr.Canonicalize(t.Kind)
	var points [4]OffsetCoord
	for i, p := range t.Points {
		points[i] = canon.ApplyOne(p)
	}
	return Tetromino{
		Kind:      t.Kind,
		Anchor:    t.Anchor,
		Points:    points,
		Transform: t.Transform.Compose(tr).Canonicalize(t.Kind),
	}
}

// Enumerate returns every tetromino obtainable from t by a canonical transform of its
// kind: 8 results for L, 2 for I, 4 for T, 4 for S.
func (t Tetromino) Enumerate() []Tetromino {
	transforms := EnumerateTransforms(t.Kind)
	out := make([]Tetromino, 0, len(transforms))
	for _, tr := range transforms {
		out = append(out, tr.Apply(t))
	}
	return out
}

// RealCoords returns the four board offsets of t (anchor plus each point), sorted by
// row then column.
func (t Tetromino) RealCoords() [4]OffsetCoord {
	var out [4]OffsetCoord
	for i, p := range t.Points {
		out[i] = t.Anchor.Add(p)
	}
	sort.Slice(out[:], func(i, j int) bool {
		if out[i].Rows != out[j].Rows {
			return out[i].Rows < out[j].Rows
		}
		return out[i].Cols < out[j].Cols
	})
	return out
}

// InBounds returns true iff every real coordinate of t lands on the board.
func (t Tetromino) InBounds() bool {
	for _, rc := range t.RealCoords() {
		if !rc.InBounds() {
			return false
		}
	}
	return true
}

// RealCoordSet returns the coordinates of t as a CoordSet. Callers must ensure t is
// InBounds first.
func (t Tetromino) RealCoordSet() CoordSet {
	var s CoordSet
	for _, rc := range t.RealCoords() {
		s.Insert(rc.Coerce())
	}
	return s
}

// Equal reports whether t and o occupy the same cells with the same kind and transform.
// Kind and transform are compared first as a cheap short-circuit before the coordinate
// comparison.
func (t Tetromino) Equal(o Tetromino) bool {
	if t.Kind != o.Kind || t.Transform != o.Transform {
		return false
	}
	return t.RealCoordSet() == o.RealCoordSet()
}

// Neighbours returns the cells orthogonally adjacent to t's footprint, excluding the
// footprint itself.
func (t Tetromino) Neighbours() CoordSet {
	var inside CoordSet
	for _, rc := range t.RealCoords() {
		if rc.InBounds() {
			inside.Insert(rc.Coerce())
		}
	}
	var out CoordSet
	for _, c := range inside.Coords() {
		for _, off := range OrthogonalOffsets {
			n := c.Add(off)
			if n.InBounds() && !inside.Contains(n.Coerce()) {
				out.Insert(n.Coerce())
			}
		}
	}
	return out
}

// Notate renders t's canonical board notation. Callers must ensure t is InBounds first.
func (t Tetromino) Notate() string {
	coords := t.RealCoords()
	parts := make([]string, 4)
	for i, rc := range coords {
		parts[i] = rc.Coerce().String()
	}
	return fmt.Sprintf("%s[%s]", t.Kind, strings.Join(parts, ","))
}
