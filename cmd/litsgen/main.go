// litsgen is a movegen debugging tool, grounded on the same perft idea used to validate
// chess move generation: build the PieceMap, report how big it is and how long it took,
// and optionally traverse the legal move tree from a gamestring to a fixed depth.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/rsarvar1a/golits/pkg/lits"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

var (
	depth      = flag.Int("depth", 3, "Traversal depth")
	gamestring = flag.String("gamestring", "", "Start position as a gamestring (default to the empty board)")
	divide     = flag.Bool("divide", false, "Divide counts by initial move")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	logw.Infof(ctx, "litsgen %v", version)

	start := time.Now()
	pm := lits.NewPieceMap(ctx)
	logw.Infof(ctx, "PieceMap ready in %v: %v pieces", time.Since(start), lits.NumPieces)

	b, err := newBoard(pm, *gamestring)
	if err != nil {
		logw.Exitf(ctx, "Invalid gamestring %q: %v", *gamestring, err)
	}

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := search(b, i, *divide && i == *depth)
		duration := time.Since(start)

		fmt.Printf("perft,%v,%v,%v,%v\n", *gamestring, i, nodes, duration.Microseconds())
	}
}

func newBoard(pm *lits.PieceMap, s string) (*lits.Board, error) {
	if s == "" {
		return lits.NewBoard(lits.WithPieceMap(pm)), nil
	}

	gs, err := lits.ParseGameString(s)
	if err != nil {
		return nil, err
	}

	b := lits.NewBoard(lits.WithPieceMap(pm), lits.WithInitialSymbols(gs.Setup))
	for _, mv := range gs.Moves {
		id, err := lits.ResolveMove(pm, mv)
		if err != nil {
			return nil, err
		}
		if id == lits.NullMove {
			if err := b.Pass(); err != nil {
				return nil, err
			}
			continue
		}
		if err := b.Play(id); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func search(b *lits.Board, depth int, d bool) int64 {
	if depth == 0 {
		return 1
	}

	var nodes int64
	for _, m := range b.GenerateMoves() {
		clone := b.Clone()
		if m == lits.NullMove {
			clone.PassUnchecked()
		} else {
			clone.PlayUnchecked(m)
		}

		count := search(clone, depth-1, false)
		if d {
			fmt.Printf("%v: %v\n", clone.PieceMap().Notate(m), count)
		}
		nodes += count
	}
	return nodes
}
