/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package notation implements the two text formats the core exchanges
// with the outside world: FEN (parse and emit, for a full PositionCore)
// and SAN/LAN (emit only, for a single move relative to a position).
// Grounded on position/position.go's fen()/setupBoard() (regex-guarded
// field validation, strings.Builder-based emission, the same six-field
// layout) and on original_source/src/notation/fen.rs's structured
// per-field error enum, which this package carries over as FenError
// instead of position.go's single untyped error string.
package notation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/frankkopp/chesscore/board"
	"github.com/frankkopp/chesscore/logging"
	"github.com/frankkopp/chesscore/position"
	. "github.com/frankkopp/chesscore/types"
)

var log = logging.GetNotationLog()

// StartFEN is the FEN of the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FenErrorKind names the structured error kinds spec.md §7 requires FEN
// parsing to surface, mirroring original_source/src/notation/fen.rs's
// GameFromFenError/BoardFromFenError/InvalidPlayer/SquareFromFenError
// enums collapsed into one Go type since Go has no sum types.
type FenErrorKind int

const (
	ErrNotAscii FenErrorKind = iota
	ErrWrongFieldCount
	ErrIllegalBoardCharacter
	ErrWrongRankCount
	ErrWrongFileCountInRank
	ErrEmptyActivePlayer
	ErrActivePlayerTooLong
	ErrIllegalActivePlayerCharacter
	ErrMalformedEnPassantTarget
	ErrMalformedFiftyMoveClock
	ErrMalformedFullMoveCount
)

// FenError is the error type every parse failure in this package
// returns, carrying enough detail to reconstruct a human message
// without the caller needing to re-derive which field failed.
type FenError struct {
	Kind   FenErrorKind
	Detail string
}

func (e *FenError) Error() string {
	switch e.Kind {
	case ErrNotAscii:
		return "fen: input is not 7-bit ASCII"
	case ErrWrongFieldCount:
		return "fen: expected 6 whitespace-separated fields, got " + e.Detail
	case ErrIllegalBoardCharacter:
		return "fen: illegal character in piece placement: " + e.Detail
	case ErrWrongRankCount:
		return "fen: piece placement does not describe exactly 8 ranks"
	case ErrWrongFileCountInRank:
		return "fen: rank does not sum to 8 files: " + e.Detail
	case ErrEmptyActivePlayer:
		return "fen: active color field is empty"
	case ErrActivePlayerTooLong:
		return "fen: active color field is too long: " + e.Detail
	case ErrIllegalActivePlayerCharacter:
		return "fen: active color must be 'w' or 'b', got " + e.Detail
	case ErrMalformedEnPassantTarget:
		return "fen: malformed en passant target square: " + e.Detail
	case ErrMalformedFiftyMoveClock:
		return "fen: malformed halfmove clock: " + e.Detail
	case ErrMalformedFullMoveCount:
		return "fen: malformed fullmove number: " + e.Detail
	default:
		return "fen: unknown error"
	}
}

var boardCharPattern = regexp.MustCompile(`^[1-8pPnNbBrRqQkK]$`)
var enPassantPattern = regexp.MustCompile(`^[a-h][36]$`)

// ParseFEN parses a FEN string into a PositionCore. Parsing is strict,
// per spec.md §6.1: unknown characters, a wrong field count, malformed
// numeric fields or out-of-range squares all fail with a FenError
// rather than silently defaulting.
func ParseFEN(fen string) (position.PositionCore, error) {
	for i := 0; i < len(fen); i++ {
		if fen[i] > 127 {
			return position.PositionCore{}, &FenError{Kind: ErrNotAscii}
		}
	}

	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return position.PositionCore{}, &FenError{Kind: ErrWrongFieldCount, Detail: strconv.Itoa(len(fields))}
	}

	b, err := parseBoard(fields[0])
	if err != nil {
		return position.PositionCore{}, err
	}

	sideToMove, err := parseActiveColor(fields[1])
	if err != nil {
		return position.PositionCore{}, err
	}

	castlingRights := parseCastlingRights(fields[2])

	enPassant, err := parseEnPassantTarget(fields[3])
	if err != nil {
		return position.PositionCore{}, err
	}

	halfMove, err := strconv.Atoi(fields[4])
	if err != nil || halfMove < 0 {
		return position.PositionCore{}, &FenError{Kind: ErrMalformedFiftyMoveClock, Detail: fields[4]}
	}

	fullMove, err := strconv.Atoi(fields[5])
	if err != nil || fullMove < 1 {
		return position.PositionCore{}, &FenError{Kind: ErrMalformedFullMoveCount, Detail: fields[5]}
	}

	return position.PositionCore{
		Board:           b,
		SideToMove:      sideToMove,
		CastlingRights:  castlingRights,
		EnPassantTarget: enPassant,
		HalfMoveClock:   halfMove,
		FullMoveNumber:  fullMove,
	}, nil
}

// parseBoard decodes the rank-8-to-1, run-length-encoded piece
// placement field, grounded on position.go's setupBoard rank/file walk.
func parseBoard(field string) (board.Board, error) {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return board.Board{}, &FenError{Kind: ErrWrongRankCount}
	}

	b := board.Empty()
	for i, rank := range ranks {
		r := Rank8 - Rank(i)
		file := FileA
		for _, c := range rank {
			if !boardCharPattern.MatchString(string(c)) {
				return board.Board{}, &FenError{Kind: ErrIllegalBoardCharacter, Detail: string(c)}
			}
			if c >= '1' && c <= '8' {
				file += File(c - '0')
				continue
			}
			piece, _ := PieceFromChar(byte(c))
			if file > FileH {
				return board.Board{}, &FenError{Kind: ErrWrongFileCountInRank, Detail: rank}
			}
			b.Set(SquareOf(file, r), piece)
			file++
		}
		if file != FileNone {
			return board.Board{}, &FenError{Kind: ErrWrongFileCountInRank, Detail: rank}
		}
	}
	return b, nil
}

func parseActiveColor(field string) (Color, error) {
	if len(field) == 0 {
		return ColorNone, &FenError{Kind: ErrEmptyActivePlayer}
	}
	if len(field) > 1 {
		return ColorNone, &FenError{Kind: ErrActivePlayerTooLong, Detail: field}
	}
	switch field {
	case "w":
		return White, nil
	case "b":
		return Black, nil
	default:
		return ColorNone, &FenError{Kind: ErrIllegalActivePlayerCharacter, Detail: field}
	}
}

// parseCastlingRights is deliberately lenient: spec.md §7's error kind
// list has no entry for a malformed castling field, so any of K/Q/k/q
// present sets the corresponding right and anything else (including
// "-") is simply not one of those four characters.
func parseCastlingRights(field string) CastlingRights {
	var cr CastlingRights
	for _, c := range field {
		switch c {
		case 'K':
			cr = cr.Add(CastlingWhiteKingside)
		case 'Q':
			cr = cr.Add(CastlingWhiteQueenside)
		case 'k':
			cr = cr.Add(CastlingBlackKingside)
		case 'q':
			cr = cr.Add(CastlingBlackQueenside)
		}
	}
	return cr
}

func parseEnPassantTarget(field string) (Square, error) {
	if field == "-" {
		return SqNone, nil
	}
	if !enPassantPattern.MatchString(field) {
		return SqNone, &FenError{Kind: ErrMalformedEnPassantTarget, Detail: field}
	}
	return MakeSquare(field), nil
}

// EmitFEN renders core's six FEN fields in order. It is the byte-for-
// byte inverse of ParseFEN for every position reachable from the
// initial position via game.Step, per spec.md §6.1.
func EmitFEN(core position.PositionCore) string {
	var sb strings.Builder
	writeBoard(&sb, core.Board)
	sb.WriteString(" ")
	sb.WriteString(core.SideToMove.String())
	sb.WriteString(" ")
	sb.WriteString(core.CastlingRights.String())
	sb.WriteString(" ")
	sb.WriteString(core.EnPassantTarget.String())
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(core.HalfMoveClock))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(core.FullMoveNumber))
	return sb.String()
}

func writeBoard(sb *strings.Builder, b board.Board) {
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			piece := b.At(SquareOf(f, r))
			if piece == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			return
		}
		sb.WriteString("/")
	}
}
