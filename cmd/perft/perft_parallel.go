/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package main

import (
	"golang.org/x/sync/errgroup"

	"github.com/frankkopp/chesscore/movegen"
	"github.com/frankkopp/chesscore/position"
)

// RunParallel splits the root move list across goroutines, one
// sub-walk per root move, the way spec.md §5 sanctions: GameState (and
// the PositionCore underneath it) is an immutable value, so handing
// each goroutine its own post-move core is race-free by construction
// and needs no locking around the shared board the teacher's
// DoMove/UndoMove approach would have required.
func RunParallel(core position.PositionCore, depth int) (Counters, error) {
	if depth <= 1 {
		return Run(core, depth), nil
	}

	gen := movegen.New()
	moves := gen.GenerateLegalMoves(core)
	results := make([]Counters, len(moves))

	var g errgroup.Group
	for i, m := range moves {
		i, next := i, core.WithMoveApplied(m)
		g.Go(func() error {
			results[i] = walk(gen, next, depth-1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Counters{}, err
	}

	var total Counters
	for _, r := range results {
		total.add(r)
	}
	return total, nil
}
