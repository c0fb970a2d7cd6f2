package lits

// gameLengthLowerBound is the number of plies below which the board does not bother
// proving terminality by full computation: a LITS game can never end this early.
const gameLengthLowerBound = 10

// ValidMovesSet returns the set of currently legal move ids, NullMove included when the
// swap is available. History length 0 and 1 are special-cased: with no history every
// piece is legal, and with one move only that move's Adjacent set (plus the swap, if
// unswapped) can possibly apply, skipping the general adjacency/conflict accumulation.
func (b *Board) ValidMovesSet() MoveSet {
	switch len(b.history) {
	case 0:
		var all MoveSet
		for i := 0; i < NumPieces; i++ {
			all.Insert(i)
		}
		return all
	case 1:
		mvs := b.piecemap.WithInteraction(b.history[0], Adjacent)
		if !b.swapped {
			mvs.Insert(NullMove)
		}
		return mvs
	}

	candidates := b.candidateMoves()
	var filtered MoveSet
	it := candidates.Iter()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		if b.canPlace(p) {
			filtered.Insert(p)
		}
	}
	return filtered
}

// candidateMoves computes every placement adjacent to some played piece, minus any
// placement that conflicts with one already on the board, minus the history itself.
// It does not yet account for piece-bag exhaustion or the foursquare rule; canPlace
// applies those per-candidate checks, which are each more expensive than a set op.
func (b *Board) candidateMoves() MoveSet {
	var history MoveSet
	for _, mv := range b.history {
		history.Insert(mv)
	}

	var candidates MoveSet
	for _, mv := range b.history {
		candidates.UnionInplace(b.piecemap.WithInteraction(mv, Adjacent))
	}
	for _, mv := range b.history {
		candidates.DifferenceInplace(b.piecemap.WithInteraction(mv, Conflicting))
	}
	candidates.DifferenceInplace(history)
	return candidates
}

// canPlace reports whether placement p is legal given the current piece bag and
// foursquare state. Candidates are assumed to already be board-adjacent and
// non-conflicting with history, per candidateMoves.
func (b *Board) canPlace(p int) bool {
	kind := b.piecemap.Kind(p)
	if b.pieceBag[kind] == 0 {
		return false
	}
	return !b.wouldCompleteFoursquare(p)
}

// wouldCompleteFoursquare simulates placing p against a scratch copy of the foursquare
// counters and reports whether any of the four cells it covers would finish a 2x2
// square. FoursquareCounter is a small fixed array, so copying it is cheap.
func (b *Board) wouldCompleteFoursquare(p int) bool {
	piece := b.piecemap.Piece(p)
	fs := b.foursquare
	for _, rc := range piece.RealCoords() {
		fs.UpdateUnchecked(rc.Coerce(), true)
	}
	for _, rc := range piece.RealCoords() {
		if fs.Four(rc.Coerce()) {
			return true
		}
	}
	return false
}

// GenerateMoves returns the legal move ids, NullMove included when the swap is
// available, as a plain slice.
func (b *Board) GenerateMoves() []int {
	return b.ValidMovesSet().IDs()
}

// IsTerminal reports whether the current player has no legal move. Below
// gameLengthLowerBound plies the board short-circuits to false: the board is too
// sparse this early for every move to have been exhausted.
func (b *Board) IsTerminal() bool {
	if len(b.history) < gameLengthLowerBound {
		return false
	}
	return b.ValidMovesSet().IsEmpty()
}

// Noise returns the greedy single-move score swing of playing mv, from the current
// player's perspective: the immediate material it covers plus the foursquare
// protection it would grant or deny at its neighbouring cells. The swap is always
// reported as noisy, to keep search from pruning it away.
func (b *Board) Noise(mv int) int16 {
	if mv == NullMove {
		return 6
	}

	piece := b.piecemap.Piece(mv)

	var coverage int16
	for _, rc := range piece.RealCoords() {
		if p, ok := b.symbolUnchecked(rc.Coerce()); ok {
			coverage -= p.Perspective()
		}
	}

	fs := b.foursquare
	for _, rc := range piece.RealCoords() {
		fs.UpdateUnchecked(rc.Coerce(), true)
	}

	var protection int16
	it := b.piecemap.Neighbours(mv).Iter()
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		if _, covered := b.tileUnchecked(c); covered {
			continue
		}
		if !fs.Three(c) {
			continue
		}
		if p, ok := b.symbolUnchecked(c); ok {
			protection += p.Perspective()
		}
	}

	return (coverage + protection) * b.playerToMove.Perspective()
}

// NoisyMoves returns the legal moves whose Noise is at least 3 for the current player,
// always including the swap when it is legal.
func (b *Board) NoisyMoves() []int {
	switch len(b.history) {
	case 0:
		out := make([]int, 0)
		for mv := 0; mv < NumPieces; mv++ {
			if b.Noise(mv) >= 3 {
				out = append(out, mv)
			}
		}
		return out
	case 1:
		out := make([]int, 0)
		it := b.piecemap.WithInteraction(b.history[0], Adjacent).Iter()
		for mv, ok := it.Next(); ok; mv, ok = it.Next() {
			if b.Noise(mv) >= 3 {
				out = append(out, mv)
			}
		}
		if !b.swapped {
			out = append(out, NullMove)
		}
		return out
	}

	candidates := b.candidateMoves()
	out := make([]int, 0)
	it := candidates.Iter()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		if b.Noise(p) < 3 {
			continue
		}
		if !b.canPlace(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}
