package lits

import "errors"

// ErrOutOfBounds is returned by checked accessors given a coordinate off the board.
var ErrOutOfBounds = errors.New("lits: coordinate out of bounds")

// ErrIllegalMove is returned when a move id is not legal in the current position.
var ErrIllegalMove = errors.New("lits: move is not legal in this position")

// ErrParse is returned by notation parsing on malformed input.
var ErrParse = errors.New("lits: malformed gamestring")
