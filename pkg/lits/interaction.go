package lits

// Interaction classifies how two distinct piece placements relate on the board.
type Interaction uint8

const (
	// Conflicting placements overlap, are orthogonally adjacent tiles of the same kind, or
	// together fully cover some 2x2 square.
	Conflicting Interaction = iota
	// Neutral placements share no orthogonal adjacency at all.
	Neutral
	// Adjacent placements touch orthogonally, are of different kinds, and together cover
	// no 2x2 square.
	Adjacent
)

func (i Interaction) String() string {
	switch i {
	case Conflicting:
		return "Conflicting"
	case Neutral:
		return "Neutral"
	default:
		return "Adjacent"
	}
}
