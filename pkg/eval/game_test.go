package eval_test

import (
	"testing"

	"github.com/rsarvar1a/golits/pkg/eval"
	"github.com/rsarvar1a/golits/pkg/lits"
	"github.com/stretchr/testify/assert"
)

func TestGameGenerateMovesEmptyBoard(t *testing.T) {
	g := eval.Game{}
	b := lits.NewBoard()
	assert.Len(t, g.GenerateMoves(b), lits.NumPieces)
}

func TestGameNullMoveUnavailableBeforeFirstMove(t *testing.T) {
	g := eval.Game{}
	b := lits.NewBoard()
	_, ok := g.NullMove(b)
	assert.False(t, ok)
}

func TestGameNullMoveAvailableAfterFirstMove(t *testing.T) {
	g := eval.Game{}
	b := lits.NewBoard()
	moves := g.GenerateMoves(b)
	require := assert.New(t)
	require.NotEmpty(moves)

	g.Apply(b, moves[0])

	id, ok := g.NullMove(b)
	require.True(ok)
	require.Equal(lits.NullMove, id)
}

func TestGameGetWinnerNonTerminal(t *testing.T) {
	g := eval.Game{}
	b := lits.NewBoard()
	assert.Equal(t, eval.WinnerNone, g.GetWinner(b))
}

func TestGameTableIndex(t *testing.T) {
	g := eval.Game{}
	assert.Equal(t, 0, g.TableIndex(0))
	assert.Equal(t, lits.NumPieces-1, g.TableIndex(lits.NumPieces-1))
	assert.Equal(t, lits.NumPieces-1, eval.MaxTableIndex)
}

func TestGameZobristHashTracksBoard(t *testing.T) {
	g := eval.Game{}
	b := lits.NewBoard()
	assert.Equal(t, b.Zobrist(), g.ZobristHash(b))
}
