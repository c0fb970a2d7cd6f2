package eval

import (
	"context"

	"github.com/rsarvar1a/golits/pkg/lits"
)

// WeightedEvaluator extends Material with cheap positional terms computed over the
// board's neighbour frontier: symbols already protected by the foursquare rule count
// as earned material at a higher weight, unprotected enemy symbols count as a threat,
// own uncovered symbols adjacent to the frontier count toward connectivity, and the
// spread of remaining pieces across the four kinds is rewarded for staying balanced.
// Full reachability analysis (shadow regions, connectivity bridges, isolation
// potential) is not modelled.
type WeightedEvaluator struct {
	Security     Score
	Threat       Score
	Connectivity Score
	Constraint   Score
	Diversity    Score
}

// NewWeightedEvaluator returns a WeightedEvaluator with the reference weighting.
func NewWeightedEvaluator() WeightedEvaluator {
	return WeightedEvaluator{
		Security:     100,
		Threat:       -25,
		Connectivity: 15,
		Constraint:   -10,
		Diversity:    5,
	}
}

func (w WeightedEvaluator) Evaluate(ctx context.Context, b *lits.Board) Score {
	current := b.PlayerToMove()
	xPerspective := Score(b.Score())

	var security, threat, connectivity, constraint Score
	it := b.Neighbours().Iter()
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		sym, present, _ := b.Symbol(c)
		protected := b.IsProtected(c)

		if protected {
			if present {
				security += Score(sym.Perspective())
			}
			constraint++
		} else if present && sym != current {
			threat += Score(current.Perspective())
		}

		if present && sym == current {
			connectivity += Score(current.Perspective())
		}
	}

	total := xPerspective +
		w.Security*security +
		w.Threat*threat +
		w.Connectivity*connectivity +
		w.Constraint*constraint +
		w.Diversity*diversity(b)

	return total * Score(current.Perspective())
}

// diversity rewards a balanced remaining piece bag: the negative variance of the four
// kinds' remaining counts, so hoarding one kind while exhausting another is penalized.
func diversity(b *lits.Board) Score {
	var counts [lits.NumKinds]float64
	var mean float64
	for i, kind := range lits.Kinds() {
		counts[i] = float64(b.PiecesRemaining(kind))
		mean += counts[i]
	}
	mean /= float64(lits.NumKinds)

	var variance float64
	for _, c := range counts {
		d := c - mean
		variance += d * d
	}
	variance /= float64(lits.NumKinds)

	return Score(-variance)
}
