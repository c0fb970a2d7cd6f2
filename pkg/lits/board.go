package lits

// Board is a mutable LITS position: a 10x10 grid of cells, the running bookkeeping
// needed to generate and validate moves in constant-ish time, and the linear history
// of piece ids played so far.
type Board struct {
	cells        [BoardSize][BoardSize]Cell
	cover        CoordSet
	foursquare   FoursquareCounter
	history      []int
	neighbours   CoordSet
	pieceBag     [NumKinds]int
	piecemap     *PieceMap
	playerToMove Player
	score        int16
	swapped      bool
	zobristHash  ZobristHash
	zobrist      *ZobristTable
}

// Option configures a Board at construction time.
type Option func(*Board)

// WithPieceMap overrides the PieceMap a Board uses, e.g. for tests that want an
// isolated instance instead of the process-wide default.
func WithPieceMap(pm *PieceMap) Option {
	return func(b *Board) { b.piecemap = pm }
}

// WithZobristTable overrides the ZobristTable a Board hashes with.
func WithZobristTable(zt *ZobristTable) Option {
	return func(b *Board) { b.zobrist = zt }
}

// WithInitialSymbols seeds the board's scoring symbols before any piece is played,
// e.g. when replaying a gamestring's setup fragment. Cells left as their zero value
// are empty.
func WithInitialSymbols(symbols [BoardSize][BoardSize]Cell) Option {
	return func(b *Board) { b.cells = symbols }
}

// NewBoard constructs an empty-history board: a full bag of pieces, the player to move
// set to X, and a score and hash derived from whatever initial symbols were supplied.
func NewBoard(opts ...Option) *Board {
	b := &Board{playerToMove: X}
	for i := range b.pieceBag {
		b.pieceBag[i] = PiecesPerKind
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.piecemap == nil {
		b.piecemap = DefaultPieceMap()
	}
	if b.zobrist == nil {
		b.zobrist = DefaultZobristTable()
	}
	b.score = b.computeInitialScore()
	b.zobristHash = b.computeInitialHash()
	return b
}

// Clone returns an independent copy of the board. The piece map and zobrist table
// remain shared; everything mutable, the history included, is copied so the clone and
// the original can diverge freely. Search drivers snapshot positions this way.
func (b *Board) Clone() *Board {
	c := *b
	c.history = append([]int(nil), b.history...)
	return &c
}

func (b *Board) computeInitialScore() int16 {
	var score int16
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			cell := b.cells[r][c]
			if cell.Covered() {
				continue
			}
			if p, ok := cell.Symbol(); ok {
				score += p.Perspective()
			}
		}
	}
	return score
}

func (b *Board) computeInitialHash() ZobristHash {
	var h ZobristHash
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			coord := NewCoord(r, c)
			p, ok := b.cells[r][c].Symbol()
			h ^= b.zobrist.CellHash(coord, p, ok)
		}
	}
	return h
}

func (b *Board) cellAt(coord Coord) *Cell {
	return &b.cells[coord.Row][coord.Col]
}

// Symbol returns the scoring symbol at coord, if any, checking bounds first.
func (b *Board) Symbol(coord Coord) (Player, bool, error) {
	if !coord.InBounds() {
		return 0, false, ErrOutOfBounds
	}
	p, ok := b.cellAt(coord).Symbol()
	return p, ok, nil
}

// Tile returns the tetromino kind covering coord, if any, checking bounds first.
func (b *Board) Tile(coord Coord) (Kind, bool, error) {
	if !coord.InBounds() {
		return 0, false, ErrOutOfBounds
	}
	k, ok := b.cellAt(coord).Kind()
	return k, ok, nil
}

func (b *Board) symbolUnchecked(coord Coord) (Player, bool) {
	return b.cellAt(coord).Symbol()
}

func (b *Board) tileUnchecked(coord Coord) (Kind, bool) {
	return b.cellAt(coord).Kind()
}

// setTileUnchecked covers or uncovers coord with kind, maintaining the running score
// and foursquare counters. The scoring symbol at coord, if any, never changes here;
// only its visibility (covered or not) does.
func (b *Board) setTileUnchecked(coord Coord, kind Kind, covered bool) {
	cell := b.cellAt(coord)
	*cell = cell.WithKind(kind, covered)
	if sym, ok := cell.Symbol(); ok {
		delta := sym.Perspective()
		if covered {
			delta = -delta
		}
		b.score += delta
	}
	b.foursquare.UpdateUnchecked(coord, covered)
}

// PlayerToMove returns whose turn it is.
func (b *Board) PlayerToMove() Player {
	return b.playerToMove
}

func (b *Board) nextPlayer() {
	b.playerToMove = b.playerToMove.Opponent()
}

// Score returns the naive material score from X's perspective: the count of X's
// uncovered symbols minus O's.
func (b *Board) Score() int16 {
	return b.score
}

// History returns the linear sequence of piece ids played so far. The slice is not
// safe to mutate.
func (b *Board) History() []int {
	return b.history
}

// Swapped reports whether the pie rule has been invoked this game.
func (b *Board) Swapped() bool {
	return b.swapped
}

// CanSwap reports whether O may currently invoke the pie rule: only directly after X's
// first move, and only once.
func (b *Board) CanSwap() bool {
	return !b.swapped && len(b.history) == 1
}

// Zobrist returns the running position hash.
func (b *Board) Zobrist() ZobristHash {
	return b.zobristHash
}

// PieceMap returns the PieceMap this board was built against.
func (b *Board) PieceMap() *PieceMap {
	return b.piecemap
}

// PiecesRemaining returns how many pieces of kind are left in the bag.
func (b *Board) PiecesRemaining(kind Kind) int {
	return b.pieceBag[kind]
}

// Cover returns the set of cells currently covered by a tile.
func (b *Board) Cover() CoordSet {
	return b.cover
}

// Neighbours returns the uncovered cells orthogonally adjacent to some played piece.
// Not every element is necessarily reachable by a legal move; this is a superset used
// by heuristics, not a move generator.
func (b *Board) Neighbours() CoordSet {
	return b.neighbours
}

// IsProtected reports whether coord belongs to a foursquare that already has 3 tiles,
// meaning its symbol (if uncovered) can never be covered without violating the
// foursquare rule: an "earned" point for whichever player holds it.
func (b *Board) IsProtected(coord Coord) bool {
	return b.foursquare.Three(coord)
}

// ProtectedCells returns every cell currently protected by the foursquare rule.
func (b *Board) ProtectedCells() CoordSet {
	return b.foursquare.ProtectedCells()
}
