/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package movegen generates legal moves for a position: every move a
// player is actually allowed to play, not merely every move that
// matches a piece's shape. Grounded on movegen/movegen.go's struct-
// holding-reusable-buffers idiom (a constructor, per-category private
// generators feeding a shared move list) but built against the mailbox
// board and the three-stream design spec.md calls for: threat-based
// candidates for the non-pawn pieces, pawn-step candidates (including
// double-step, en passant and promotion), and castling candidates —
// followed by a single king-safety filter applied uniformly to all
// three streams, since "does this move leave my own king in check" is
// the same question regardless of which stream produced the candidate.
package movegen

import (
	"github.com/frankkopp/chesscore/position"
	. "github.com/frankkopp/chesscore/types"
)

// Generator produces legal moves for a PositionCore. It carries no
// state of its own; New exists so call sites read the way the
// teacher's movegen.New() does and so a future reusable-buffer
// optimization has somewhere to live without changing callers.
type Generator struct{}

// New returns a ready-to-use Generator.
func New() Generator {
	return Generator{}
}

// GenerateLegalMoves returns every legal move available to the side to
// move in p.
func (g Generator) GenerateLegalMoves(p position.PositionCore) []Move {
	candidates := g.generatePseudoLegalMoves(p)
	legal := make([]Move, 0, len(candidates))
	for _, m := range candidates {
		next := p.WithMoveApplied(m)
		if !next.Board.IsKingInCheck(p.SideToMove) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMove reports whether the side to move has at least one legal
// move, without building the full legal list — used by the game package
// to distinguish checkmate/stalemate. All pseudo-legal candidates are
// still generated; the king-safety test stops at the first candidate
// that passes it.
func (g Generator) HasLegalMove(p position.PositionCore) bool {
	for _, m := range g.generatePseudoLegalMoves(p) {
		next := p.WithMoveApplied(m)
		if !next.Board.IsKingInCheck(p.SideToMove) {
			return true
		}
	}
	return false
}

// generatePseudoLegalMoves produces every move that matches a piece's
// movement shape and doesn't capture a friendly piece, without
// filtering for king safety. The three streams are independent and
// are simply concatenated; GenerateLegalMoves applies the shared
// filter over the result.
func (g Generator) generatePseudoLegalMoves(p position.PositionCore) []Move {
	var moves []Move
	moves = append(moves, g.generateThreatBasedMoves(p)...)
	moves = append(moves, g.generatePawnMoves(p)...)
	moves = append(moves, g.generateCastlingMoves(p)...)
	return moves
}

// generateThreatBasedMoves covers every piece type except pawns: a
// piece may step (or slide) along its own threat directions onto any
// empty square, or capture by landing on the first enemy piece found,
// stopping before (for sliding pieces) or simply not considering (for
// step pieces) any square beyond a blocker.
func (g Generator) generateThreatBasedMoves(p position.PositionCore) []Move {
	var moves []Move
	for _, from := range AllSquares() {
		piece := p.Board.At(from)
		if piece == PieceNone || piece.Color != p.SideToMove || piece.Type == Pawn {
			continue
		}
		dirs, rng := piece.ThreatDirections()
		for _, dir := range dirs {
			cur := from
			steps := 0
			for rng < 0 || steps < rng {
				to, ok := cur.Add(dir)
				if !ok {
					break
				}
				cur = to
				steps++
				occupant := p.Board.At(to)
				if occupant == PieceNone {
					moves = append(moves, NewNormalMove(from, to, piece, PieceNone))
					continue
				}
				if occupant.Color != p.SideToMove {
					moves = append(moves, NewNormalMove(from, to, piece, occupant))
				}
				break
			}
		}
	}
	return moves
}

var promotionPieceTypes = []PieceType{Queen, Rook, Bishop, Knight}

// generatePawnMoves covers single/double pushes, diagonal captures, en
// passant, and promotion (a pawn reaching the back rank generates one
// move per promotion piece type rather than a single ambiguous move).
func (g Generator) generatePawnMoves(p position.PositionCore) []Move {
	var moves []Move
	color := p.SideToMove
	single := PawnSingleStep[color]
	double := PawnDoubleStep[color]
	diagonals := PawnDiagonals[color]
	promotionRank := color.PromotionRank()

	emit := func(from, to Square, piece, captured Piece) {
		if to.RankOf() == promotionRank {
			for _, pt := range promotionPieceTypes {
				moves = append(moves, NewPromotionMove(from, to, piece, captured, pt))
			}
			return
		}
		moves = append(moves, NewNormalMove(from, to, piece, captured))
	}

	for _, from := range AllSquares() {
		piece := p.Board.At(from)
		if piece.Type != Pawn || piece.Color != color {
			continue
		}

		if to, ok := from.Add(single); ok && p.Board.IsEmpty(to) {
			emit(from, to, piece, PieceNone)
			if from.RankOf() == color.PawnRank() {
				if to2, ok2 := from.Add(double); ok2 && p.Board.IsEmpty(to2) {
					moves = append(moves, NewNormalMove(from, to2, piece, PieceNone))
				}
			}
		}

		for _, dir := range diagonals {
			to, ok := from.Add(dir)
			if !ok {
				continue
			}
			occupant := p.Board.At(to)
			if occupant != PieceNone && occupant.Color != color {
				emit(from, to, piece, occupant)
				continue
			}
			if to == p.EnPassantTarget {
				captureSq := SquareOf(to.FileOf(), from.RankOf())
				captured := p.Board.At(captureSq)
				moves = append(moves, NewEnPassantMove(from, to, captureSq, piece, captured))
			}
		}
	}
	return moves
}

type castlingSpec struct {
	right            CastlingRights
	kingFrom, kingTo Square
	rookFrom, rookTo Square
	transit          []Square // squares that must be empty and not attacked (besides kingFrom)
	mustBeEmptyOnly  []Square // squares that must be empty but are not on the king's path (queenside b-file)
}

func castlingSpecsFor(color Color) []castlingSpec {
	if color == White {
		return []castlingSpec{
			{CastlingWhiteKingside, SqE1, SqG1, SqH1, SqF1, []Square{SqF1, SqG1}, nil},
			{CastlingWhiteQueenside, SqE1, SqC1, SqA1, SqD1, []Square{SqD1, SqC1}, []Square{SqB1}},
		}
	}
	return []castlingSpec{
		{CastlingBlackKingside, SqE8, SqG8, SqH8, SqF8, []Square{SqF8, SqG8}, nil},
		{CastlingBlackQueenside, SqE8, SqC8, SqA8, SqD8, []Square{SqD8, SqC8}, []Square{SqB8}},
	}
}

// generateCastlingMoves produces a castling candidate for each right
// still held whose squares between king and rook are empty and whose
// king-transit squares (including the origin) are not attacked. The
// shared king-safety filter independently re-confirms the destination
// square is safe; this only needs to rule out castling "through" check.
func (g Generator) generateCastlingMoves(p position.PositionCore) []Move {
	var moves []Move
	color := p.SideToMove
	opponent := color.Flip()
	for _, spec := range castlingSpecsFor(color) {
		if !p.CastlingRights.Has(spec.right) {
			continue
		}
		if p.Board.At(spec.kingFrom).Type != King || p.Board.At(spec.rookFrom).Type != Rook {
			continue
		}
		allEmpty := true
		for _, sq := range append(append([]Square{}, spec.transit...), spec.mustBeEmptyOnly...) {
			if !p.Board.IsEmpty(sq) {
				allEmpty = false
				break
			}
		}
		if !allEmpty {
			continue
		}
		safe := !p.Board.IsAttacked(spec.kingFrom, opponent)
		for _, sq := range spec.transit {
			if p.Board.IsAttacked(sq, opponent) {
				safe = false
			}
		}
		if !safe {
			continue
		}
		moves = append(moves, NewCastlingMove(spec.kingFrom, spec.kingTo, spec.rookFrom, spec.rookTo, p.Board.At(spec.kingFrom)))
	}
	return moves
}
