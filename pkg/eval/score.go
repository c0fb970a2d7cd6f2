package eval

import (
	"fmt"

	"github.com/rsarvar1a/golits/pkg/lits"
)

// Score is a signed position score from the side-to-move's perspective. Weighted
// evaluators multiply material swings by up to a few hundred, so Score must comfortably
// exceed the material range a 100-cell board can produce; +/- 1,000,000 leaves ample
// headroom while staying far from int32 overflow during summation.
type Score int32

const (
	NegInf         = MinScore - 1
	MinScore Score = -1000000
	MaxScore Score = 1000000
	Inf            = MaxScore + 1
)

func (s Score) String() string {
	return fmt.Sprintf("%d", s)
}

// Unit returns the signed unit for the player: 1 for X and -1 for O.
func Unit(p lits.Player) Score {
	return Score(p.Perspective())
}

// Crop clamps a Score into [MinScore, MaxScore].
func Crop(s Score) Score {
	switch {
	case s > MaxScore:
		return MaxScore
	case s < MinScore:
		return MinScore
	default:
		return s
	}
}

// Max returns the larger of two scores.
func Max(a, b Score) Score {
	if a < b {
		return b
	}
	return a
}

// Min returns the smaller of two scores.
func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}
