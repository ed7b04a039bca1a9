/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Command perft counts the leaf nodes of the legal move tree below a
// position to a given depth, the standard way to cross-check a move
// generator against known-correct node counts. Grounded on
// movegen/perft.go's Perft type (Nodes/CaptureCounter/EnpassantCounter/
// CastleCounter/PromotionCounter/CheckCounter/CheckMateCounter and its
// miniMax walk), adapted from the teacher's shared-Position
// DoMove/UndoMove mutation to chesscore's value-typed PositionCore,
// which has nothing to undo: every recursive call just gets the next
// value.
package main

import (
	"github.com/frankkopp/chesscore/movegen"
	"github.com/frankkopp/chesscore/position"
	. "github.com/frankkopp/chesscore/types"
)

// Counters tallies the node count and move-kind breakdown a perft
// fixture checks against.
type Counters struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
	CheckMates uint64
}

func (c *Counters) add(o Counters) {
	c.Nodes += o.Nodes
	c.Captures += o.Captures
	c.EnPassant += o.EnPassant
	c.Castles += o.Castles
	c.Promotions += o.Promotions
	c.Checks += o.Checks
	c.CheckMates += o.CheckMates
}

// Run counts leaf nodes reachable from core in depth plies.
func Run(core position.PositionCore, depth int) Counters {
	if depth <= 0 {
		depth = 1
	}
	return walk(movegen.New(), core, depth)
}

func walk(gen movegen.Generator, core position.PositionCore, depth int) Counters {
	var c Counters
	for _, m := range gen.GenerateLegalMoves(core) {
		next := core.WithMoveApplied(m)
		if depth > 1 {
			c.add(walk(gen, next, depth-1))
			continue
		}
		c.Nodes++
		if m.IsCapture() {
			c.Captures++
		}
		switch m.Kind {
		case EnPassant:
			c.EnPassant++
		case Castling:
			c.Castles++
		case Promotion:
			c.Promotions++
		}
		if next.IsInCheck() {
			c.Checks++
			if !gen.HasLegalMove(next) {
				c.CheckMates++
			}
		}
	}
	return c
}
