/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package types

import "strings"

// MoveKind discriminates the four shapes a move can take. Unlike the
// teacher's bit-packed uint32 Move (16 bits of from/to/type/promotion
// squeezed alongside a 16 bit sort value used by search move ordering),
// chesscore's Move carries an explicit per-kind payload: an en passant
// capture square doesn't live on the same line as its destination
// square, and a castling move needs the rook's own origin/destination.
// There is no search here to feed a sort value to, so the packed
// encoding buys compactness chesscore has no use for at the cost of the
// payload fields the generator and notation packages both need.
type MoveKind int8

const (
	// Normal covers quiet moves and ordinary captures.
	Normal MoveKind = iota
	// Promotion is a pawn reaching the back rank, replacing itself with
	// PromotedTo (and possibly capturing on the destination square).
	Promotion
	// EnPassant is a pawn capturing the pawn that just double-stepped
	// past it, removing a piece on a square other than To.
	EnPassant
	// Castling moves the king two squares and its rook to the square
	// the king crossed, in the same ply.
	Castling
)

// String names the move kind for diagnostics.
func (k MoveKind) String() string {
	switch k {
	case Normal:
		return "normal"
	case Promotion:
		return "promotion"
	case EnPassant:
		return "en-passant"
	case Castling:
		return "castling"
	default:
		return "unknown"
	}
}

// Move describes one ply. Fields beyond Kind/From/To/Piece are only
// meaningful for the move kind that needs them; MoveNone (From and To
// both SqNone) is never a legal move.
type Move struct {
	Kind  MoveKind
	From  Square
	To    Square
	Piece Piece // the piece making the move, before any promotion

	// Captured is the piece removed by this move, PieceNone if none.
	// For EnPassant this is the piece on CaptureSquare, not To.
	Captured Piece

	// PromotedTo is the piece type a pawn becomes on Promotion
	// (Knight, Bishop, Rook or Queen).
	PromotedTo PieceType

	// CaptureSquare is the square the captured pawn actually occupies
	// for an EnPassant move (one rank behind To).
	CaptureSquare Square

	// RookFrom/RookTo describe the castling rook's own move for a
	// Castling move.
	RookFrom Square
	RookTo   Square
}

// MoveNone is the sentinel move with From and To both SqNone, never
// produced by the generator and never legal to step.
var MoveNone = Move{Kind: Normal, From: SqNone, To: SqNone}

// IsValid reports whether m has well-formed from/to squares. It does
// not validate legality against any position.
func (m Move) IsValid() bool {
	return m.From.IsValid() && m.To.IsValid() && m.From != m.To
}

// IsCapture reports whether the move removes an enemy piece, whether by
// landing on it (Normal, Promotion) or by the en passant rule.
func (m Move) IsCapture() bool {
	return m.Captured.IsValid()
}

// NewNormalMove builds a quiet move or an ordinary capture.
func NewNormalMove(from, to Square, piece, captured Piece) Move {
	return Move{Kind: Normal, From: from, To: to, Piece: piece, Captured: captured}
}

// NewPromotionMove builds a pawn promotion, optionally capturing on the
// destination square.
func NewPromotionMove(from, to Square, piece, captured Piece, promotedTo PieceType) Move {
	return Move{Kind: Promotion, From: from, To: to, Piece: piece, Captured: captured, PromotedTo: promotedTo}
}

// NewEnPassantMove builds an en passant capture. captureSquare is the
// square the captured pawn sits on (same file as To, same rank as From).
func NewEnPassantMove(from, to, captureSquare Square, piece, captured Piece) Move {
	return Move{Kind: EnPassant, From: from, To: to, Piece: piece, Captured: captured, CaptureSquare: captureSquare}
}

// NewCastlingMove builds a castling move: the king's own from/to plus
// the rook's from/to on the same rank.
func NewCastlingMove(kingFrom, kingTo, rookFrom, rookTo Square, king Piece) Move {
	return Move{Kind: Castling, From: kingFrom, To: kingTo, Piece: king, RookFrom: rookFrom, RookTo: rookTo}
}

// String renders the move in long algebraic form (from-square,
// to-square, promotion suffix), the same shape UCI uses. The notation
// package builds proper SAN/LAN against a position; this is a
// position-independent fallback for logging and debugging.
func (m Move) String() string {
	if !m.IsValid() {
		return "-"
	}
	var b strings.Builder
	b.WriteString(m.From.String())
	b.WriteString(m.To.String())
	if m.Kind == Promotion {
		b.WriteString(strings.ToLower(m.PromotedTo.String()))
	}
	return b.String()
}
