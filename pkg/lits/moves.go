package lits

// Play validates and applies a move. A move id must name an actual piece placement;
// the pie-rule swap goes through Pass instead.
func (b *Board) Play(id int) error {
	if id == NullMove {
		return ErrIllegalMove
	}
	if !b.ValidMovesSet().Contains(id) {
		return ErrIllegalMove
	}
	b.PlayUnchecked(id)
	return nil
}

// PlayUnchecked applies a move without validating it. Intended for callers (move
// generators, search) that already know the move is legal.
func (b *Board) PlayUnchecked(id int) {
	piece := b.piecemap.Piece(id)

	b.pieceBag[piece.Kind]--
	for _, rc := range piece.RealCoords() {
		b.setTileUnchecked(rc.Coerce(), piece.Kind, true)
	}

	for _, rc := range piece.RealCoords() {
		b.cover.Insert(rc.Coerce())
	}
	b.neighbours.UnionInplace(b.piecemap.Neighbours(id))
	b.neighbours.DifferenceInplace(b.cover)

	b.zobristHash ^= b.zobrist.MoveHash(id)
	b.history = append(b.history, id)
	b.nextPlayer()
}

// Pass invokes the pie rule: O takes over X's position by negating every scoring
// symbol on the board, then control passes to X. Legal only directly after X's first
// move, and the rule may be invoked at most once per game.
func (b *Board) Pass() error {
	if !b.CanSwap() {
		return ErrIllegalMove
	}
	b.PassUnchecked()
	return nil
}

// PassUnchecked invokes the swap without validating that it is currently legal.
func (b *Board) PassUnchecked() {
	b.swap()
}

// swap is self-inverse: negating every symbol and flipping control back is exactly
// undoing a prior swap, which is why the rule can only ever apply once in practice
// (CanSwap rejects a second attempt rather than the operation being unsafe to repeat).
func (b *Board) swap() {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			coord := NewCoord(r, c)
			cell := &b.cells[r][c]

			prevP, prevOK := cell.Symbol()
			b.zobristHash ^= b.zobrist.CellHash(coord, prevP, prevOK)

			*cell = cell.Negated()

			newP, newOK := cell.Symbol()
			b.zobristHash ^= b.zobrist.CellHash(coord, newP, newOK)
		}
	}
	b.score = -b.score
	b.swapped = !b.swapped
	b.nextPlayer()
}
