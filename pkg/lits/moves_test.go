package lits_test

import (
	"testing"

	"github.com/rsarvar1a/golits/pkg/lits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayUncheckedUpdatesZobristHash(t *testing.T) {
	b := lits.NewBoard()
	before := b.Zobrist()
	moves := b.GenerateMoves()
	require.NotEmpty(t, moves)

	b.PlayUnchecked(moves[0])
	assert.NotEqual(t, before, b.Zobrist())
}

func TestSwapIsSelfInverse(t *testing.T) {
	var symbols [lits.BoardSize][lits.BoardSize]lits.Cell
	symbols[0][0] = symbols[0][0].WithSymbol(lits.X, true)
	symbols[9][9] = symbols[9][9].WithSymbol(lits.O, true)

	b := lits.NewBoard(lits.WithInitialSymbols(symbols))
	b.PlayUnchecked(0) // advance history so Pass is legal regardless of which piece this is

	score := b.Score()
	hash := b.Zobrist()
	player := b.PlayerToMove()

	b.PassUnchecked()
	b.PassUnchecked()

	assert.Equal(t, score, b.Score())
	assert.Equal(t, hash, b.Zobrist())
	assert.Equal(t, player, b.PlayerToMove())
}

func TestPassUncheckedTogglesSwappedAndPlayer(t *testing.T) {
	b := lits.NewBoard()
	b.PlayUnchecked(0)
	before := b.PlayerToMove()

	b.PassUnchecked()
	assert.True(t, b.Swapped())
	assert.NotEqual(t, before, b.PlayerToMove())
}
