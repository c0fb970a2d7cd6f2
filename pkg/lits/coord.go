package lits

import "fmt"

// Coord is a board coordinate, row then column; it lies on the board when both are in
// [0,BoardSize), which InBounds checks.
type Coord struct {
	Row, Col int
}

// NewCoord constructs a coordinate. Does not validate bounds; use InBounds to check.
func NewCoord(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// Index returns the row-major linear index of the coordinate into a BoardSize*BoardSize grid.
func (c Coord) Index() int {
	return c.Row*BoardSize + c.Col
}

// InBounds returns true iff the coordinate is within the board.
func (c Coord) InBounds() bool {
	return 0 <= c.Row && c.Row < BoardSize && 0 <= c.Col && c.Col < BoardSize
}

// Offset returns the offset coordinate equivalent of c.
func (c Coord) Offset() OffsetCoord {
	return OffsetCoord{Rows: c.Row, Cols: c.Col}
}

// Add returns c shifted by the given offset, as a signed OffsetCoord (may be out of bounds).
func (c Coord) Add(o OffsetCoord) OffsetCoord {
	return OffsetCoord{Rows: c.Row + o.Rows, Cols: c.Col + o.Cols}
}

func (c Coord) String() string {
	return fmt.Sprintf("%d%d", c.Row, c.Col)
}

// CoordFromIndex is the inverse of Coord.Index.
func CoordFromIndex(idx int) Coord {
	return Coord{Row: idx / BoardSize, Col: idx % BoardSize}
}

// OffsetCoord is a signed coordinate permitting out-of-range intermediates, used while
// composing tetromino offsets before a final bounds check.
type OffsetCoord struct {
	Rows, Cols int
}

// NewOffsetCoord constructs an offset coordinate.
func NewOffsetCoord(rows, cols int) OffsetCoord {
	return OffsetCoord{Rows: rows, Cols: cols}
}

// InBounds returns true iff the offset coordinate, if coerced, would land on the board.
func (o OffsetCoord) InBounds() bool {
	return 0 <= o.Rows && o.Rows < BoardSize && 0 <= o.Cols && o.Cols < BoardSize
}

// InFoursquareBounds returns true iff the offset coordinate is a valid top-left anchor
// of a 2x2 foursquare, i.e. in [0,BoardSize-1)^2.
func (o OffsetCoord) InFoursquareBounds() bool {
	return 0 <= o.Rows && o.Rows < BoardSize-1 && 0 <= o.Cols && o.Cols < BoardSize-1
}

// Coerce converts the offset into a Coord unchecked; callers must have verified InBounds.
func (o OffsetCoord) Coerce() Coord {
	return Coord{Row: o.Rows, Col: o.Cols}
}

// Add returns the sum of two offsets.
func (o OffsetCoord) Add(p OffsetCoord) OffsetCoord {
	return OffsetCoord{Rows: o.Rows + p.Rows, Cols: o.Cols + p.Cols}
}

// Manhattan returns the taxicab distance between two offsets.
func (o OffsetCoord) Manhattan(p OffsetCoord) int {
	return absInt(o.Rows-p.Rows) + absInt(o.Cols-p.Cols)
}

// Neighbours returns true iff the two offsets are orthogonally adjacent.
func (o OffsetCoord) Neighbours(p OffsetCoord) bool {
	return o.Manhattan(p) == 1
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// OrthogonalOffsets are the four offsets that turn a coordinate into an orthogonal neighbour.
var OrthogonalOffsets = [4]OffsetCoord{
	{Rows: -1, Cols: 0},
	{Rows: 0, Cols: -1},
	{Rows: 0, Cols: 1},
	{Rows: 1, Cols: 0},
}

// AnchorOffsets are the offsets to the top-left anchors of all 2x2 foursquares touching a coordinate.
var AnchorOffsets = [4]OffsetCoord{
	{Rows: -1, Cols: -1},
	{Rows: -1, Cols: 0},
	{Rows: 0, Cols: -1},
	{Rows: 0, Cols: 0},
}
