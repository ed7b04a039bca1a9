/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chesscore/board"
	"github.com/frankkopp/chesscore/position"
	. "github.com/frankkopp/chesscore/types"
)

func TestToSAN_PawnAdvance(t *testing.T) {
	core := position.New()
	m := NewNormalMove(SqE2, SqE4, MakePiece(Pawn, White), PieceNone)
	assert.Equal(t, "e4", ToSAN(core, m))
}

func TestToSAN_PawnCaptureShowsOriginFile(t *testing.T) {
	b := board.Empty()
	b.Set(SqE1, MakePiece(King, White))
	b.Set(SqE8, MakePiece(King, Black))
	b.Set(SqD4, MakePiece(Pawn, White))
	b.Set(SqE5, MakePiece(Pawn, Black))
	core := position.PositionCore{Board: b, SideToMove: White, CastlingRights: CastlingNone, EnPassantTarget: SqNone}
	m := NewNormalMove(SqD4, SqE5, MakePiece(Pawn, White), MakePiece(Pawn, Black))
	assert.Equal(t, "dxe5", ToSAN(core, m))
}

func TestToSAN_KnightMoveNoDisambiguationNeeded(t *testing.T) {
	b := board.Empty()
	b.Set(SqE1, MakePiece(King, White))
	b.Set(SqE8, MakePiece(King, Black))
	b.Set(SqB1, MakePiece(Knight, White))
	core := position.PositionCore{Board: b, SideToMove: White, CastlingRights: CastlingNone, EnPassantTarget: SqNone}
	m := NewNormalMove(SqB1, SqC3, MakePiece(Knight, White), PieceNone)
	assert.Equal(t, "Nc3", ToSAN(core, m))
}

func TestToSAN_DisambiguatesByFileWhenRanksDiffer(t *testing.T) {
	// Two white knights, on b1 and f3, can both reach d2 — distinct
	// files disambiguate, so the file alone is written.
	b := board.Empty()
	b.Set(SqE1, MakePiece(King, White))
	b.Set(SqE8, MakePiece(King, Black))
	b.Set(SqB1, MakePiece(Knight, White))
	b.Set(SqF3, MakePiece(Knight, White))
	core := position.PositionCore{Board: b, SideToMove: White, CastlingRights: CastlingNone, EnPassantTarget: SqNone}
	m := NewNormalMove(SqB1, SqD2, MakePiece(Knight, White), PieceNone)
	assert.Equal(t, "Nbd2", ToSAN(core, m))
}

func TestToSAN_DisambiguatesByRankWhenFilesMatch(t *testing.T) {
	// Two white rooks share the a-file (a1 and a4); the file alone
	// cannot disambiguate a move to a2, so the rank is used instead.
	b := board.Empty()
	b.Set(SqE1, MakePiece(King, White))
	b.Set(SqE8, MakePiece(King, Black))
	b.Set(SqA1, MakePiece(Rook, White))
	b.Set(SqA4, MakePiece(Rook, White))
	core := position.PositionCore{Board: b, SideToMove: White, CastlingRights: CastlingNone, EnPassantTarget: SqNone}
	m := NewNormalMove(SqA1, SqA2, MakePiece(Rook, White), PieceNone)
	assert.Equal(t, "R1a2", ToSAN(core, m))
}

func TestToSAN_CastlingKingside(t *testing.T) {
	b := board.Empty()
	b.Set(SqE1, MakePiece(King, White))
	b.Set(SqH1, MakePiece(Rook, White))
	b.Set(SqE8, MakePiece(King, Black))
	core := position.PositionCore{Board: b, SideToMove: White, CastlingRights: CastlingWhiteKingside, EnPassantTarget: SqNone}
	m := NewCastlingMove(SqE1, SqG1, SqH1, SqF1, MakePiece(King, White))
	assert.Equal(t, "O-O", ToSAN(core, m))
}

func TestToSAN_CheckSuffix(t *testing.T) {
	b := board.Empty()
	b.Set(SqA1, MakePiece(King, White))
	b.Set(SqA8, MakePiece(King, Black))
	b.Set(SqH1, MakePiece(Rook, White))
	core := position.PositionCore{Board: b, SideToMove: White, CastlingRights: CastlingNone, EnPassantTarget: SqNone}
	m := NewNormalMove(SqH1, SqH8, MakePiece(Rook, White), PieceNone)
	assert.Equal(t, "Rh8+", ToSAN(core, m))
}

func TestToSAN_CheckmateSuffix(t *testing.T) {
	// Back-rank mate: black king confined to the back rank by its own
	// pawns, white rook delivers mate along the rank.
	b := board.Empty()
	b.Set(SqG1, MakePiece(King, White))
	b.Set(SqG8, MakePiece(King, Black))
	b.Set(SqF7, MakePiece(Pawn, Black))
	b.Set(SqG7, MakePiece(Pawn, Black))
	b.Set(SqH7, MakePiece(Pawn, Black))
	b.Set(SqA1, MakePiece(Rook, White))
	core := position.PositionCore{Board: b, SideToMove: White, CastlingRights: CastlingNone, EnPassantTarget: SqNone}
	m := NewNormalMove(SqA1, SqA8, MakePiece(Rook, White), PieceNone)
	assert.Equal(t, "Ra8#", ToSAN(core, m))
}

func TestToLAN_ShowsOriginSquareAlways(t *testing.T) {
	core := position.New()
	m := NewNormalMove(SqG1, SqF3, MakePiece(Knight, White), PieceNone)
	assert.Equal(t, "Ng1-f3", ToLAN(core, m))
}

func TestToLAN_PromotionSuffix(t *testing.T) {
	b := board.Empty()
	b.Set(SqE1, MakePiece(King, White))
	b.Set(SqA8, MakePiece(King, Black))
	b.Set(SqE7, MakePiece(Pawn, White))
	core := position.PositionCore{Board: b, SideToMove: White, CastlingRights: CastlingNone, EnPassantTarget: SqNone}
	m := NewPromotionMove(SqE7, SqE8, MakePiece(Pawn, White), PieceNone, Queen)
	// The new queen on e8 checks the black king on a8 along the back rank.
	assert.Equal(t, "e7-e8=Q+", ToLAN(core, m))
}
