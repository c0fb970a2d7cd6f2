// Package eval contains position evaluation logic for LITS boards.
package eval

import (
	"context"

	"github.com/rsarvar1a/golits/pkg/lits"
)

// Evaluator is a static position evaluator.
type Evaluator interface {
	// Evaluate returns the position score from the side to move's perspective.
	Evaluate(ctx context.Context, b *lits.Board) Score
}

// Material returns the naive score balance for the side to move: the count of its
// uncovered scoring symbols minus the opponent's.
type Material struct{}

func (Material) Evaluate(ctx context.Context, b *lits.Board) Score {
	return Score(b.Score()) * Unit(b.PlayerToMove())
}
