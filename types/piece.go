/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package types

// Piece is a piece type bound to a color, e.g. "white knight". PieceNone
// is an empty square's piece value.
type Piece struct {
	Type  PieceType
	Color Color
}

// PieceNone is the sentinel piece value held by an empty board square.
var PieceNone = Piece{Type: PtNone, Color: ColorNone}

// MakePiece constructs a Piece from its type and color.
func MakePiece(pt PieceType, c Color) Piece {
	return Piece{Type: pt, Color: c}
}

// IsValid reports whether p names an actual piece (not an empty square).
func (p Piece) IsValid() bool {
	return p.Type.IsValid() && p.Color.IsValid()
}

// String returns the algebraic piece letter, upper case for White and
// lower case for Black ("-" for an empty square).
func (p Piece) String() string {
	if !p.IsValid() {
		return "-"
	}
	s := p.Type.String()
	if p.Color == Black {
		return toLower(s)
	}
	return s
}

func toLower(s string) string {
	b := []byte(s)
	if len(b) == 1 && b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}

// PieceFromChar parses a single FEN piece letter into a Piece. It
// returns PieceNone, false if the letter is not a recognized piece
// letter.
func PieceFromChar(c byte) (Piece, bool) {
	var pt PieceType
	switch c {
	case 'p', 'P':
		pt = Pawn
	case 'n', 'N':
		pt = Knight
	case 'b', 'B':
		pt = Bishop
	case 'r', 'R':
		pt = Rook
	case 'q', 'Q':
		pt = Queen
	case 'k', 'K':
		pt = King
	default:
		return PieceNone, false
	}
	color := White
	if c >= 'a' && c <= 'z' {
		color = Black
	}
	return MakePiece(pt, color), true
}

// ThreatDirections exposes the offsets and range (1 for step pieces,
// -1 for unlimited sliding range) this piece threatens along. Pawns are
// handled separately by the board's attack generator since their threat
// directions depend on color and never coincide with their push
// directions.
func (p Piece) ThreatDirections() ([]Offset, int) {
	if p.Type.IsSliding() {
		return p.Type.Directions(), -1
	}
	if p.Type == Pawn {
		return PawnDiagonals[p.Color], 1
	}
	return p.Type.Directions(), 1
}
