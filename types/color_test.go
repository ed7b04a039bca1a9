package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColor_Flip(t *testing.T) {
	assert.Equal(t, Black, White.Flip())
	assert.Equal(t, White, Black.Flip())
}

func TestColor_String(t *testing.T) {
	assert.Equal(t, "w", White.String())
	assert.Equal(t, "b", Black.String())
}

func TestColor_PromotionRank(t *testing.T) {
	assert.Equal(t, Rank8, White.PromotionRank())
	assert.Equal(t, Rank1, Black.PromotionRank())
}

func TestColor_EnPassantRank(t *testing.T) {
	assert.Equal(t, Rank4, White.EnPassantRank())
	assert.Equal(t, Rank5, Black.EnPassantRank())
}

func TestColor_KingHomeSquare(t *testing.T) {
	assert.Equal(t, SqE1, White.KingHomeSquare())
	assert.Equal(t, SqE8, Black.KingHomeSquare())
}
