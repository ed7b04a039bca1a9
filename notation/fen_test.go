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

func TestParseFEN_StartingPositionRoundTrips(t *testing.T) {
	core, err := ParseFEN(StartFEN)
	assert.NoError(t, err)
	assert.Equal(t, position.New(), core)
	assert.Equal(t, StartFEN, EmitFEN(core))
}

func TestParseFEN_KiwipeteRoundTrips(t *testing.T) {
	kiwipete := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	core, err := ParseFEN(kiwipete)
	assert.NoError(t, err)
	assert.Equal(t, kiwipete, EmitFEN(core))
	assert.Equal(t, White, core.SideToMove)
	assert.Equal(t, CastlingAll, core.CastlingRights)
}

func TestParseFEN_EnPassantTargetParsed(t *testing.T) {
	core, err := ParseFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	assert.NoError(t, err)
	assert.Equal(t, SqD6, core.EnPassantTarget)
}

func TestParseFEN_RejectsNonAscii(t *testing.T) {
	_, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 é")
	assert.Error(t, err)
	var fe *FenError
	assert.ErrorAs(t, err, &fe)
}

func TestParseFEN_RejectsWrongFieldCount(t *testing.T) {
	_, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	var fe *FenError
	assert.ErrorAs(t, err, &fe)
	assert.Equal(t, ErrWrongFieldCount, fe.Kind)
}

func TestParseFEN_RejectsIllegalBoardCharacter(t *testing.T) {
	_, err := ParseFEN("rnbqkbnx/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	var fe *FenError
	assert.ErrorAs(t, err, &fe)
	assert.Equal(t, ErrIllegalBoardCharacter, fe.Kind)
}

func TestParseFEN_RejectsWrongRankCount(t *testing.T) {
	_, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1")
	var fe *FenError
	assert.ErrorAs(t, err, &fe)
	assert.Equal(t, ErrWrongRankCount, fe.Kind)
}

func TestParseFEN_RejectsWrongFileCountInRank(t *testing.T) {
	_, err := ParseFEN("rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	var fe *FenError
	assert.ErrorAs(t, err, &fe)
	assert.Equal(t, ErrWrongFileCountInRank, fe.Kind)
}

func TestParseFEN_RejectsIllegalActivePlayer(t *testing.T) {
	_, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1")
	var fe *FenError
	assert.ErrorAs(t, err, &fe)
	assert.Equal(t, ErrIllegalActivePlayerCharacter, fe.Kind)
}

func TestParseFEN_RejectsMalformedEnPassantTarget(t *testing.T) {
	_, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e9 0 1")
	var fe *FenError
	assert.ErrorAs(t, err, &fe)
	assert.Equal(t, ErrMalformedEnPassantTarget, fe.Kind)
}

func TestParseFEN_RejectsMalformedHalfMoveClock(t *testing.T) {
	_, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1")
	var fe *FenError
	assert.ErrorAs(t, err, &fe)
	assert.Equal(t, ErrMalformedFiftyMoveClock, fe.Kind)
}

func TestParseFEN_RejectsMalformedFullMoveCount(t *testing.T) {
	_, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0")
	var fe *FenError
	assert.ErrorAs(t, err, &fe)
	assert.Equal(t, ErrMalformedFullMoveCount, fe.Kind)
}

func TestParseFEN_LenientCastlingFieldAcceptsDash(t *testing.T) {
	core, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, CastlingNone, core.CastlingRights)
}

func TestEmitFEN_EmptyBoardFieldsUseDashes(t *testing.T) {
	core := position.PositionCore{
		Board:           emptyBoardWithTwoKings(),
		SideToMove:      Black,
		CastlingRights:  CastlingNone,
		EnPassantTarget: SqNone,
		HalfMoveClock:   0,
		FullMoveNumber:  1,
	}
	fen := EmitFEN(core)
	assert.Equal(t, "4k3/8/8/8/8/8/8/4K3 b - - 0 1", fen)
}

func emptyBoardWithTwoKings() board.Board {
	b := board.Empty()
	b.Set(SqE8, MakePiece(King, Black))
	b.Set(SqE1, MakePiece(King, White))
	return b
}
