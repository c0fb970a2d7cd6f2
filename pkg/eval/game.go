package eval

import (
	"github.com/rsarvar1a/golits/pkg/lits"
)

// Winner is the terminal result of a game, from the perspective of the player on move
// when terminality was observed.
type Winner int

const (
	WinnerNone Winner = iota
	WinnerPlayerToMove
	WinnerPlayerJustMoved
	WinnerDraw
)

func (w Winner) String() string {
	switch w {
	case WinnerPlayerToMove:
		return "player-to-move"
	case WinnerPlayerJustMoved:
		return "player-just-moved"
	case WinnerDraw:
		return "draw"
	default:
		return "none"
	}
}

// MaxTableIndex is the largest value Game.TableIndex can return, for callers sizing a
// transposition or policy table indexed directly by move id.
const MaxTableIndex = lits.NumPieces - 1

// Game adapts *lits.Board to the move-id-indexed contract a search algorithm expects:
// apply a move, enumerate legal ones, probe for a null move, read off the winner and
// hash of a position, and render a move as notation. Board already does the rules work;
// Game exists so a search package can depend on this narrow interface instead of the
// full board API.
type Game struct{}

// Apply plays move id against b, routing NullMove through the pie-rule swap. The move
// is assumed legal; search drivers only apply moves they got from GenerateMoves.
func (Game) Apply(b *lits.Board, id int) {
	if id == lits.NullMove {
		b.PassUnchecked()
		return
	}
	b.PlayUnchecked(id)
}

// GenerateMoves returns every legal move id, NullMove included when the swap applies.
func (Game) GenerateMoves(b *lits.Board) []int {
	return b.GenerateMoves()
}

// NullMove returns NullMove and true iff the swap is currently available.
func (Game) NullMove(b *lits.Board) (int, bool) {
	if b.CanSwap() {
		return lits.NullMove, true
	}
	return 0, false
}

// GetWinner reports the terminal result for b, or WinnerNone if the game is not over.
func (Game) GetWinner(b *lits.Board) Winner {
	if !b.IsTerminal() {
		return WinnerNone
	}
	signum := int(b.Score()) * int(b.PlayerToMove().Perspective())
	switch {
	case signum > 0:
		return WinnerPlayerToMove
	case signum < 0:
		return WinnerPlayerJustMoved
	default:
		return WinnerDraw
	}
}

// ZobristHash returns b's running position hash.
func (Game) ZobristHash(b *lits.Board) lits.ZobristHash {
	return b.Zobrist()
}

// Notation renders move id the way it would appear in a gamestring, using b's piece map.
func (Game) Notation(b *lits.Board, id int) string {
	return b.PieceMap().Notate(id)
}

// TableIndex maps a move id directly onto a dense table slot: move ids already are
// dense, contiguous, and zero-based, so no remapping is needed.
func (Game) TableIndex(id int) int {
	return id
}
