/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package board implements the 8x8 mailbox board: piece placement, ray
// based attack/threat generation, and raw move application. It knows
// nothing about move legality, castling rights, en passant history or
// move counters — those live one layer up in position.PositionCore.
// FrankyGo represents a board as a set of bitboards; chesscore's board
// is a mailbox, the way original_source/src/board.rs's
// Board([[Option<Piece>; 8]; 8]) is, since a ray-walking move generator
// over a mailbox is what spec.md requires.
package board

import (
	"strings"

	"github.com/frankkopp/chesscore/assert"
	. "github.com/frankkopp/chesscore/types"
)

// Board is a fixed-size array of 64 squares, each holding a Piece
// (PieceNone for empty). Value type: copying a Board copies the whole
// array, which is exactly what WithMoveApplied and make-and-test
// legality checking want.
type Board struct {
	squares [SquareLength]Piece
}

// Empty returns a board with no pieces on it.
func Empty() Board {
	b := Board{}
	for i := range b.squares {
		b.squares[i] = PieceNone
	}
	return b
}

// New returns a board set up for the start of a standard game.
func New() Board {
	b := Empty()
	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f := FileA; f <= FileH; f++ {
		b.Set(SquareOf(f, Rank1), MakePiece(backRank[f], White))
		b.Set(SquareOf(f, Rank2), MakePiece(Pawn, White))
		b.Set(SquareOf(f, Rank7), MakePiece(Pawn, Black))
		b.Set(SquareOf(f, Rank8), MakePiece(backRank[f], Black))
	}
	return b
}

// At returns the piece on sq, or PieceNone if sq is empty.
func (b Board) At(sq Square) Piece {
	return b.squares[sq]
}

// IsEmpty reports whether sq holds no piece.
func (b Board) IsEmpty(sq Square) bool {
	return b.squares[sq] == PieceNone
}

// Set places piece on sq, overwriting whatever was there.
func (b *Board) Set(sq Square, piece Piece) {
	b.squares[sq] = piece
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b.squares[sq] = PieceNone
}

// KingSquare returns the square color's king sits on. A board missing a
// king is a broken invariant of position.PositionCore (which always
// maintains exactly one king per side), not a value callers are
// expected to handle, so its absence is asserted rather than left for
// ok to signal silently.
func (b Board) KingSquare(color Color) (sq Square, ok bool) {
	for _, s := range AllSquares() {
		p := b.squares[s]
		if p.Type == King && p.Color == color {
			return s, true
		}
	}
	if assert.DEBUG {
		assert.Assert(false, "board has no %s king", color.String())
	}
	return SqNone, false
}

// walkRay walks from origin in direction dir up to maxRange squares (or
// until the edge of the board / an occupied square), calling visit for
// every square stepped onto. visit returns false to stop the walk early
// (e.g. once a blocking piece has been found).
func walkRay(origin Square, dir Offset, maxRange int, visit func(sq Square, piece Piece) bool) {
	cur := origin
	steps := 0
	for maxRange < 0 || steps < maxRange {
		next, ok := cur.Add(dir)
		if !ok {
			return
		}
		cur = next
		steps++
		if !visit(cur, Piece{}) {
			return
		}
	}
}

// IsAttacked reports whether sq is attacked by any piece of color
// attacker, found by walking every ray/step direction outward from sq
// and asking "would a piece of this type standing here attack back
// along the direction it came from" — the standard symmetric trick for
// mailbox attack detection, grounded on
// original_source/src/board.rs's threatening_moves_by/attacked_squares.
func (b Board) IsAttacked(sq Square, attacker Color) bool {
	// Sliding pieces (and adjacent king/queen/rook/bishop overlap) and
	// knights: walk outward from sq using each piece type's own threat
	// shape, and see if the attacking piece type sits at the far end.
	for _, pt := range []PieceType{Rook, Bishop, Queen, Knight, King} {
		dirs, rng := MakePiece(pt, attacker).ThreatDirections()
		for _, dir := range dirs {
			blocked := false
			walkRay(sq, dir, rng, func(at Square, _ Piece) bool {
				occupant := b.At(at)
				if occupant == PieceNone {
					return true
				}
				if occupant.Color == attacker && occupant.Type == pt {
					blocked = true
				}
				return false
			})
			if blocked {
				return true
			}
		}
	}
	// Pawns are handled separately: their attack direction is the
	// reverse of their push direction, not a symmetric ray/step shape.
	for _, dir := range PawnDiagonals[attacker.Flip()] {
		if at, ok := sq.Add(dir); ok {
			occupant := b.At(at)
			if occupant.Type == Pawn && occupant.Color == attacker {
				return true
			}
		}
	}
	return false
}

// IsKingInCheck reports whether color's king is currently attacked by
// the opposing color. A missing king is asserted in KingSquare, the
// same broken-invariant condition this function would otherwise paper
// over by reporting "not in check".
func (b Board) IsKingInCheck(color Color) bool {
	sq, ok := b.KingSquare(color)
	if !ok {
		if assert.DEBUG {
			assert.Assert(false, "board has no %s king", color.String())
		}
		return false
	}
	return b.IsAttacked(sq, color.Flip())
}

// ThreatenedSquares returns the set of squares attacked by any piece of
// the given color, computed by calling IsAttacked for every square.
func (b Board) ThreatenedSquares(attacker Color) map[Square]bool {
	threatened := make(map[Square]bool)
	for _, sq := range AllSquares() {
		if b.IsAttacked(sq, attacker) {
			threatened[sq] = true
		}
	}
	return threatened
}

// ApplyRaw performs the raw piece movement for a move without any
// legality checking: it is the mover's and the board's responsibility
// (position.PositionCore) to have already established the move is
// pseudo-legal. Returns the captured piece, if any (PieceNone
// otherwise). Grounded on position.go's movePiece/putPiece/removePiece
// trio, collapsed here into board-level primitives since position no
// longer needs to juggle bitboard mirrors alongside the mailbox.
func (b *Board) ApplyRaw(m Move) Piece {
	switch m.Kind {
	case EnPassant:
		captured := b.At(m.CaptureSquare)
		b.Clear(m.CaptureSquare)
		b.movePiece(m.From, m.To)
		return captured
	case Promotion:
		captured := b.At(m.To)
		b.Clear(m.From)
		b.Set(m.To, MakePiece(m.PromotedTo, m.Piece.Color))
		return captured
	case Castling:
		b.movePiece(m.From, m.To)
		b.movePiece(m.RookFrom, m.RookTo)
		return PieceNone
	default:
		captured := b.At(m.To)
		b.movePiece(m.From, m.To)
		return captured
	}
}

func (b *Board) movePiece(from, to Square) {
	p := b.At(from)
	b.Clear(from)
	b.Set(to, p)
}

// WithMoveApplied returns a new Board with m applied, leaving b
// untouched. This is the make-and-test primitive the legal-move filter
// and the game package's Step both build on: Board is a value type, so
// copying it (implicitly, by returning a new Board by value) is cheap
// and safe to use from multiple goroutines.
func (b Board) WithMoveApplied(m Move) Board {
	next := b
	next.ApplyRaw(m)
	return next
}

// String renders the board as an 8-rank ASCII grid, rank 8 at the top,
// the way a human reads a chess diagram.
func (b Board) String() string {
	var sb strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		sb.WriteString(r.String())
		sb.WriteString(" ")
		for f := FileA; f <= FileH; f++ {
			sb.WriteString(b.At(SquareOf(f, r)).String())
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
		if r == Rank1 {
			break
		}
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
