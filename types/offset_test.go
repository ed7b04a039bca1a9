package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffset_AddOnBoard(t *testing.T) {
	to, ok := SqE4.Add(OffU)
	assert.True(t, ok)
	assert.Equal(t, SqE5, to)
}

func TestOffset_AddOffBoard(t *testing.T) {
	_, ok := SqA1.Add(OffL)
	assert.False(t, ok)
	_, ok = SqH8.Add(OffUR)
	assert.False(t, ok)
}

func TestOffset_To(t *testing.T) {
	assert.Equal(t, SqE5, SqE4.To(OffU))
	assert.Equal(t, SqNone, SqA1.To(OffD))
}

func TestOffset_KnightDirectionsCount(t *testing.T) {
	assert.Len(t, KnightDirections, 8)
}

func TestOffset_KnightShapeFromE4(t *testing.T) {
	expected := map[Square]bool{
		SqD6: true, SqF6: true, SqC5: true, SqG5: true,
		SqC3: true, SqG3: true, SqD2: true, SqF2: true,
	}
	got := map[Square]bool{}
	for _, o := range KnightDirections {
		if to, ok := SqE4.Add(o); ok {
			got[to] = true
		}
	}
	assert.Equal(t, expected, got)
}

func TestOffset_PawnDirectionsAsymmetric(t *testing.T) {
	assert.Equal(t, OffU, PawnSingleStep[White])
	assert.Equal(t, OffD, PawnSingleStep[Black])
	assert.NotEqual(t, PawnDiagonals[White], PawnDiagonals[Black])
}
