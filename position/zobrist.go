/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package position

import (
	"math/rand"

	. "github.com/frankkopp/chesscore/types"
)

// Key is a Zobrist hash of a position, used as the repetition-detection
// key instead of storing and comparing full PositionCore snapshots, per
// spec.md's design notes. Grounded on position/zobrist.go's zobrist
// helper struct and its incremental-update convention (DoMove/UndoMove
// xor keys in and out rather than rehash from scratch); chesscore
// recomputes the keys below from a fixed seed with math/rand instead of
// the teacher's own Rand64 PRNG, since that PRNG lived in the bitboard
// types package this module does not carry forward.
type Key uint64

type zobristKeys struct {
	pieces         [ColorLength][PtLength][SquareLength]Key
	castlingRights [16]Key
	enPassantFile  [8]Key
	sideToMove     Key
}

var zobrist = newZobristKeys()

func newZobristKeys() zobristKeys {
	r := rand.New(rand.NewSource(1070372))
	var z zobristKeys
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt < PtLength; pt++ {
			for sq := SqA1; sq <= SqH8; sq++ {
				z.pieces[c][pt][sq] = Key(r.Uint64())
			}
		}
	}
	for cr := 0; cr < 16; cr++ {
		z.castlingRights[cr] = Key(r.Uint64())
	}
	for f := FileA; f <= FileH; f++ {
		z.enPassantFile[f] = Key(r.Uint64())
	}
	z.sideToMove = Key(r.Uint64())
	return z
}

func pieceKey(p Piece, sq Square) Key {
	if p == PieceNone {
		return 0
	}
	return zobrist.pieces[p.Color][p.Type][sq]
}

func castlingKey(cr CastlingRights) Key {
	return zobrist.castlingRights[cr]
}

func enPassantKey(sq Square) Key {
	if sq == SqNone {
		return 0
	}
	return zobrist.enPassantFile[sq.FileOf()]
}

func sideToMoveKey() Key {
	return zobrist.sideToMove
}
