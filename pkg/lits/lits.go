// Package lits implements the core rules engine for The Battle of LITS, a two-player
// abstract strategy game played on a 10x10 board with L-, I-, T- and S-shaped
// tetrominoes. The package provides a precomputed piece catalog (PieceMap), an
// incremental bitset-backed board (Board), and legal move generation fast enough to
// feed a minimax/MCTS search. Search strategies, notation parsing at the command-loop
// level, and CLI concerns are external collaborators and are out of scope here.
package lits

// BoardSize is the width and height of a LITS board.
const BoardSize = 10

// PiecesPerKind is the number of tetrominoes of each kind in the bag both players share.
const PiecesPerKind = 5
