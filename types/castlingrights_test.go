package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCastlingRights_StringFenOrder(t *testing.T) {
	assert.Equal(t, "KQkq", CastlingAll.String())
	assert.Equal(t, "-", CastlingNone.String())
	assert.Equal(t, "Kq", (CastlingWhiteKingside | CastlingBlackQueenside).String())
}

func TestCastlingRights_RemoveIsIndependent(t *testing.T) {
	cr := CastlingAll.Remove(CastlingWhiteKingside)
	assert.False(t, cr.Has(CastlingWhiteKingside))
	assert.True(t, cr.Has(CastlingWhiteQueenside))
	assert.True(t, cr.Has(CastlingBlackKingside))
	assert.True(t, cr.Has(CastlingBlackQueenside))
}

func TestCastlingRights_Add(t *testing.T) {
	cr := CastlingNone.Add(CastlingBlackKingside)
	assert.True(t, cr.Has(CastlingBlackKingside))
	assert.False(t, cr.Has(CastlingWhiteKingside))
}

func TestCastlingRights_KingsideQueensideByColor(t *testing.T) {
	assert.Equal(t, CastlingWhiteKingside, Kingside(White))
	assert.Equal(t, CastlingBlackKingside, Kingside(Black))
	assert.Equal(t, CastlingWhiteQueenside, Queenside(White))
	assert.Equal(t, CastlingBlackQueenside, Queenside(Black))
}
