/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package types contains the leaf data types shared by every other package:
// board geometry (File, Rank, Square, Offset), pieces and colors, castling
// rights and the move model. Many of these would be perfect enum candidates
// but Go does not provide enums.
package types

import (
	"github.com/frankkopp/chesscore/assert"
)

// File represents a chess board file a-h.
type File int8

// Constants for each file. FileNone marks an out-of-range file.
const (
	FileA    File = 0
	FileB    File = 1
	FileC    File = 2
	FileD    File = 3
	FileE    File = 4
	FileF    File = 5
	FileG    File = 6
	FileH    File = 7
	FileNone File = 8
)

// IsValid checks if f represents a valid file.
func (f File) IsValid() bool {
	return f >= FileA && f <= FileH
}

const fileLabels = "abcdefgh"

// String returns the single letter label for the file, or "-" if invalid.
func (f File) String() string {
	if !f.IsValid() {
		return "-"
	}
	return string(fileLabels[f])
}

// Rank represents a chess board rank 1-8.
type Rank int8

// Constants for each rank. RankNone marks an out-of-range rank.
const (
	Rank1    Rank = 0
	Rank2    Rank = 1
	Rank3    Rank = 2
	Rank4    Rank = 3
	Rank5    Rank = 4
	Rank6    Rank = 5
	Rank7    Rank = 6
	Rank8    Rank = 7
	RankNone Rank = 8
)

// IsValid checks if r represents a valid rank.
func (r Rank) IsValid() bool {
	return r >= Rank1 && r <= Rank8
}

const rankLabels = "12345678"

// String returns the single digit label for the rank, or "-" if invalid.
func (r Rank) String() string {
	if !r.IsValid() {
		return "-"
	}
	return string(rankLabels[r])
}

// Square represents exactly one square on a chess board, encoded as
// rank*8+file so that rank-major iteration ("a1..h1, a2..h2, ...") and
// file/rank extraction are both cheap.
type Square int8

//noinspection GoUnusedConst
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
)

// SquareLength is the number of squares on a board.
const SquareLength = 64

// IsValid checks if sq represents a valid square on the board.
func (sq Square) IsValid() bool {
	return sq >= SqA1 && sq < SqNone
}

// FileOf returns the file of the square.
func (sq Square) FileOf() File {
	return File(sq % 8)
}

// RankOf returns the rank of the square.
func (sq Square) RankOf() Rank {
	return Rank(sq / 8)
}

// SquareOf returns the square made up of the given file and rank, or
// SqNone if either is out of range.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(int(r)*8 + int(f))
}

// IsDark reports whether the square is a dark square, i.e. file+rank is even.
func (sq Square) IsDark() bool {
	return (int(sq.FileOf())+int(sq.RankOf()))%2 == 0
}

// MakeSquare parses a two character algebraic square (e.g. "e4") and
// returns SqNone if the string does not describe a valid square.
func MakeSquare(s string) Square {
	if assert.DEBUG {
		assert.Assert(len(s) == 2, "square string is not 2 characters long: %s", s)
	}
	if len(s) != 2 {
		return SqNone
	}
	f := File(s[0] - 'a')
	r := Rank(s[1] - '1')
	return SquareOf(f, r)
}

// String returns the algebraic notation for the square (e.g. "e4"), or
// "-" if the square is not valid.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// AllSquares returns all 64 squares in rank-major order starting a1, b1, ...
func AllSquares() []Square {
	squares := make([]Square, 0, SquareLength)
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			squares = append(squares, SquareOf(f, r))
		}
	}
	return squares
}

// Distance returns the Chebyshev (king-move) distance between two squares.
func Distance(a, b Square) int {
	df := int(a.FileOf()) - int(b.FileOf())
	if df < 0 {
		df = -df
	}
	dr := int(a.RankOf()) - int(b.RankOf())
	if dr < 0 {
		dr = -dr
	}
	if df > dr {
		return df
	}
	return dr
}
