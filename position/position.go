/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package position defines PositionCore: a board plus the state that
// accompanies it but doesn't live on the board itself — side to move,
// castling rights, the en passant target square, and the two move
// counters FEN carries. It is a pure value type: WithMoveApplied builds
// a new PositionCore from an old one rather than mutating in place,
// mirroring how board.Board works one layer down.
package position

import (
	"github.com/frankkopp/chesscore/board"
	. "github.com/frankkopp/chesscore/types"
	"github.com/frankkopp/chesscore/util"
)

// PositionCore is the full state needed to resume a game from scratch:
// everything FEN can express. Grounded on position/position.go's
// Position struct, stripped of its bitboard mirrors (piecesBb,
// occupiedBb*) and evaluation accumulators (material, psqMidValue/
// EndValue, gamePhase) since neither has a home in this module.
type PositionCore struct {
	Board           board.Board
	SideToMove      Color
	CastlingRights  CastlingRights
	EnPassantTarget Square
	HalfMoveClock   int
	FullMoveNumber  int
}

// New returns the standard chess starting position.
func New() PositionCore {
	return PositionCore{
		Board:           board.New(),
		SideToMove:      White,
		CastlingRights:  CastlingAll,
		EnPassantTarget: SqNone,
		HalfMoveClock:   0,
		FullMoveNumber:  1,
	}
}

// Hash returns a Zobrist hash covering piece placement, side to move,
// castling rights and en passant target — exactly the fields two
// positions must agree on to count as the same position for repetition
// purposes (the move counters do not participate, matching spec.md's
// "position" equality used by the threefold rule).
func (p PositionCore) Hash() Key {
	var h Key
	for _, sq := range AllSquares() {
		h ^= pieceKey(p.Board.At(sq), sq)
	}
	h ^= castlingKey(p.CastlingRights)
	h ^= enPassantKey(p.EnPassantTarget)
	if p.SideToMove == Black {
		h ^= sideToMoveKey()
	}
	return h
}

// IsInCheck reports whether the side to move's king is currently
// attacked.
func (p PositionCore) IsInCheck() bool {
	return p.Board.IsKingInCheck(p.SideToMove)
}

// castlingCornerSquares maps a rook's home square to the castling right
// it corresponds to, used to invalidate rights when either the king or
// a rook corner square is touched by a move (as mover or as a captured
// square). Grounded on position.go's invalidateCastlingRights.
var castlingCornerSquares = map[Square]CastlingRights{
	SqH1: CastlingWhiteKingside,
	SqA1: CastlingWhiteQueenside,
	SqH8: CastlingBlackKingside,
	SqA8: CastlingBlackQueenside,
}

func castlingRightsAfterTouching(cr CastlingRights, sq Square, color Color) CastlingRights {
	if sq == color.KingHomeSquare() {
		cr = cr.Remove(Kingside(color)).Remove(Queenside(color))
	}
	if right, ok := castlingCornerSquares[sq]; ok {
		cr = cr.Remove(right)
	}
	return cr
}

// WithMoveApplied returns the PositionCore that results from playing m,
// a pseudo-legal move, against p. It performs no legality checking of
// its own — callers go through movegen for that — but it does apply
// every positional side effect a move can have: castling-rights
// invalidation, en passant target assignment/clearing, the halfmove
// clock, and the fullmove counter. Grounded on position.go's DoMove,
// generalized from FrankyGo's switch-on-MoveType shape to the explicit
// Move struct this module uses.
func (p PositionCore) WithMoveApplied(m Move) PositionCore {
	next := p
	next.Board = p.Board.WithMoveApplied(m)
	next.EnPassantTarget = SqNone

	isPawnMove := m.Piece.Type == Pawn
	isCapture := m.IsCapture()

	switch m.Kind {
	case Castling:
		next.CastlingRights = castlingRightsAfterTouching(next.CastlingRights, m.From, m.Piece.Color)
	default:
		next.CastlingRights = castlingRightsAfterTouching(next.CastlingRights, m.From, m.Piece.Color)
		next.CastlingRights = castlingRightsAfterTouching(next.CastlingRights, m.To, m.Piece.Color.Flip())
		if m.Kind == Normal && isPawnMove && distanceRanks(m.From, m.To) == 2 {
			next.EnPassantTarget = midpoint(m.From, m.To)
		}
	}

	if isPawnMove || isCapture {
		next.HalfMoveClock = 0
	} else {
		next.HalfMoveClock++
	}

	if p.SideToMove == Black {
		next.FullMoveNumber++
	}
	next.SideToMove = p.SideToMove.Flip()

	return next
}

func distanceRanks(a, b Square) int {
	return util.Abs(int(a.RankOf()) - int(b.RankOf()))
}

func midpoint(a, b Square) Square {
	r := (int(a.RankOf()) + int(b.RankOf())) / 2
	return SquareOf(a.FileOf(), Rank(r))
}
