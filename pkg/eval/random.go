package eval

import (
	"context"
	"math/rand"

	"github.com/rsarvar1a/golits/pkg/lits"
)

// Random returns a small amount of noise, uniformly in [-limit/2, limit-limit/2) with
// integer division; it does not read the board or wrap another evaluator. A limit of
// zero always returns zero, useful for disabling noise without special-casing the caller.
type Random struct {
	rand  *rand.Rand
	limit int
}

func NewRandom(limit int, seed int64) Random {
	return Random{
		limit: limit,
		rand:  rand.New(rand.NewSource(seed)),
	}
}

func (n Random) Evaluate(ctx context.Context, b *lits.Board) Score {
	if n.limit <= 0 {
		return 0
	}
	return Score(n.rand.Intn(n.limit) - n.limit/2)
}
