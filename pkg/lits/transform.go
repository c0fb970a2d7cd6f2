package lits

// Transform is one of the 8 elements of the dihedral group D4, applied to a tetromino's
// offsets relative to its anchor. Identity is the null transform; Reflect mirrors across
// the horizontal axis (negates the row offset).
type Transform uint8

const (
	Identity Transform = iota
	Rot90
	Rot180
	Rot270
	Reflect
	ReflRot90
	ReflRot180
	ReflRot270
)

// Transforms returns all 8 transforms in canonical order.
func Transforms() [8]Transform {
	return [8]Transform{Identity, Rot90, Rot180, Rot270, Reflect, ReflRot90, ReflRot180, ReflRot270}
}

// Rotate returns the transform obtained by following t with a 90 degree rotation.
func (t Transform) Rotate() Transform {
	switch t {
	case Identity:
		return Rot90
	case Rot90:
		return Rot180
	case Rot180:
		return Rot270
	case Rot270:
		return Identity
	case Reflect:
		return ReflRot90
	case ReflRot90:
		return ReflRot180
	case ReflRot180:
		return ReflRot270
	default: // ReflRot270
		return Reflect
	}
}

// Reflect returns the transform obtained by following t with a reflection.
func (t Transform) Reflect() Transform {
	switch t {
	case Identity:
		return Reflect
	case Rot90:
		return ReflRot270
	case Rot180:
		return ReflRot180
	case Rot270:
		return ReflRot90
	case Reflect:
		return Identity
	case ReflRot90:
		return Rot270
	case ReflRot180:
		return Rot180
	default: // ReflRot270
		return Rot90
	}
}

// Compose returns the transform equivalent to applying t followed by o.
func (t Transform) Compose(o Transform) Transform {
	switch o {
	case Identity:
		return t
	case Rot90:
		return t.Rotate()
	case Rot180:
		return t.Rotate().Rotate()
	case Rot270:
		return t.Rotate().Rotate().Rotate()
	case Reflect:
		return t.Reflect()
	case ReflRot90:
		return t.Reflect().Rotate()
	case ReflRot180:
		return t.Reflect().Rotate().Rotate()
	default: // ReflRot270
		return t.Reflect().Rotate().Rotate().Rotate()
	}
}

// ApplyOne applies t to a single offset coordinate.
func (t Transform) ApplyOne(o OffsetCoord) OffsetCoord {
	r, c := o.Rows, o.Cols
	switch t {
	case Identity:
		return NewOffsetCoord(r, c)
	case Rot90:
		return NewOffsetCoord(c, -r)
	case Rot180:
		return NewOffsetCoord(-r, -c)
	case Rot270:
		return NewOffsetCoord(-c, r)
	case Reflect:
		return NewOffsetCoord(-r, c)
	case ReflRot90:
		return NewOffsetCoord(c, r)
	case ReflRot180:
		return NewOffsetCoord(r, -c)
	default: // ReflRot270
		return NewOffsetCoord(-c, -r)
	}
}

// Canonicalize returns the most direct transform equivalent to t under the rotational
// and reflective symmetries of the given tetromino kind. An L has no symmetry, so it
// canonicalizes to itself; I is symmetric under a 180 degree rotation and under
// reflection, so its 8 transforms collapse to 2; T is symmetric only under a single
// reflective axis and collapses to 4; S is symmetric under a 180 degree rotation and
// collapses to 4.
func (t Transform) Canonicalize(kind Kind) Transform {
	switch kind {
	case L:
		return t
	case I:
		switch t {
		case Rot180, Reflect, ReflRot180:
			return Identity
		case Rot270, ReflRot90, ReflRot270:
			return Rot90
		default:
			return t
		}
	case T:
		switch t {
		case Reflect:
			return Rot180
		case ReflRot270:
			return Rot90
		case ReflRot180:
			return Identity
		case ReflRot90:
			return Rot270
		default:
			return t
		}
	default: // S
		switch t {
		case Rot180:
			return Identity
		case Rot270:
			return Rot90
		case ReflRot180:
			return Reflect
		case ReflRot270:
			return ReflRot90
		default:
			return t
		}
	}
}

// EnumerateTransforms returns the distinct canonical transforms applicable to kind, in
// ascending order: 8 for L, 2 for I, 4 for T, 4 for S.
func EnumerateTransforms(kind Kind) []Transform {
	var seen [8]bool
	for _, t := range Transforms() {
		seen[t.Canonicalize(kind)] = true
	}
	out := make([]Transform, 0, 8)
	for _, t := range Transforms() {
		if seen[t] {
			out = append(out, t)
		}
	}
	return out
}

func (t Transform) String() string {
	switch t {
	case Identity:
		return "Identity"
	case Rot90:
		return "Rot90"
	case Rot180:
		return "Rot180"
	case Rot270:
		return "Rot270"
	case Reflect:
		return "Reflect"
	case ReflRot90:
		return "ReflRot90"
	case ReflRot180:
		return "ReflRot180"
	default:
		return "ReflRot270"
	}
}
