package eval_test

import (
	"context"
	"testing"

	"github.com/rsarvar1a/golits/pkg/eval"
	"github.com/rsarvar1a/golits/pkg/lits"
	"github.com/stretchr/testify/assert"
)

func TestRandomZeroLimit(t *testing.T) {
	n := eval.NewRandom(0, 1)
	b := lits.NewBoard()
	assert.Equal(t, eval.Score(0), n.Evaluate(context.Background(), b))
}

func TestRandomBounds(t *testing.T) {
	n := eval.NewRandom(100, 42)
	b := lits.NewBoard()
	for i := 0; i < 1000; i++ {
		s := n.Evaluate(context.Background(), b)
		assert.GreaterOrEqual(t, int(s), -50)
		assert.Less(t, int(s), 50)
	}
}
