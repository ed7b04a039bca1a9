/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package notation

import (
	"strings"

	"github.com/frankkopp/chesscore/movegen"
	"github.com/frankkopp/chesscore/position"
	. "github.com/frankkopp/chesscore/types"
)

// ToLAN renders m, played from core, in long algebraic notation: piece
// letter (none for pawns), origin square, an "x" for a capture or "-"
// for a non-capture, destination
// square, and a promotion suffix, followed by the usual check/checkmate
// suffix. LAN never needs disambiguation since the origin square is
// always written out, which is why it is the simpler of the two
// formats and is built first.
func ToLAN(core position.PositionCore, m Move) string {
	if m.Kind == Castling {
		return castlingString(m) + suffix(core, m)
	}

	var sb strings.Builder
	sb.WriteString(pieceLetter(m.Piece))
	sb.WriteString(m.From.String())
	if m.IsCapture() {
		sb.WriteString("x")
	} else {
		sb.WriteString("-")
	}
	sb.WriteString(m.To.String())
	if m.Kind == Promotion {
		sb.WriteString("=")
		sb.WriteString(m.PromotedTo.String())
	}
	sb.WriteString(suffix(core, m))
	return sb.String()
}

// ToSAN renders m, played from core, in standard algebraic notation:
// the same shape as LAN but with the origin square collapsed to the
// minimum needed to disambiguate m from every other legal move sharing
// its piece type and destination square. Grounded on
// original_source/src/notation/algebraic.rs's notation_creator /
// AmbiguationLevel pattern, but disambiguation order follows spec.md's
// explicit "file, then rank, then full square" rule rather than the
// Rust original's rank-first check.
func ToSAN(core position.PositionCore, m Move) string {
	if m.Kind == Castling {
		return castlingString(m) + suffix(core, m)
	}

	var sb strings.Builder
	if m.Piece.Type == Pawn {
		if m.IsCapture() {
			sb.WriteString(m.From.FileOf().String())
			sb.WriteString("x")
		}
		sb.WriteString(m.To.String())
		if m.Kind == Promotion {
			sb.WriteString("=")
			sb.WriteString(m.PromotedTo.String())
		}
		sb.WriteString(suffix(core, m))
		return sb.String()
	}

	sb.WriteString(m.Piece.Type.String())
	sb.WriteString(disambiguation(core, m))
	if m.IsCapture() {
		sb.WriteString("x")
	}
	sb.WriteString(m.To.String())
	sb.WriteString(suffix(core, m))
	return sb.String()
}

// disambiguation returns the minimal origin-square fragment needed to
// distinguish m from every other legal move of the same piece type
// landing on the same destination square: empty if m.Piece's type and
// m.To alone are unique among the side to move's legal moves, the
// origin file if distinct origin files disambiguate, the origin rank
// if distinct origin files do not but distinct origin ranks do, and the
// full origin square if two same-type pieces share both a file and a
// rank with a third (a rare but possible configuration with promoted
// pieces on the board).
func disambiguation(core position.PositionCore, m Move) string {
	var sameFile, sameRank, others bool
	for _, o := range movegen.New().GenerateLegalMoves(core) {
		if o.From == m.From || o.Piece.Type != m.Piece.Type || o.To != m.To {
			continue
		}
		others = true
		if o.From.FileOf() == m.From.FileOf() {
			sameFile = true
		}
		if o.From.RankOf() == m.From.RankOf() {
			sameRank = true
		}
	}
	if !others {
		return ""
	}
	if !sameFile {
		return m.From.FileOf().String()
	}
	if !sameRank {
		return m.From.RankOf().String()
	}
	return m.From.String()
}

func pieceLetter(p Piece) string {
	if p.Type == Pawn {
		return ""
	}
	return p.Type.String()
}

func castlingString(m Move) string {
	if m.To.FileOf() == FileG {
		return "O-O"
	}
	return "O-O-O"
}

// suffix computes the check/checkmate marker for m played from core by
// applying it and asking the move generator whether the side now to
// move has any legal reply. It deliberately does not go through the
// game package's Step (which would also judge draws chesscore's SAN/LAN
// output has no notation for) to avoid an import cycle: game imports
// notation for FEN, so notation cannot import game back.
func suffix(core position.PositionCore, m Move) string {
	next := core.WithMoveApplied(m)
	if !next.IsInCheck() {
		return ""
	}
	if movegen.New().HasLegalMove(next) {
		return "+"
	}
	return "#"
}
