/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package game ties position, movegen and the termination rules
// together into GameState and its single entry point, Step. Grounded
// on original_source/src/game.rs's step procedure and its
// GameResultKind::Draw(DrawKind) enum (carried here as
// TerminationKind/DrawKind named constants), and on FrankyGo's
// position.go history-stack idiom for how a move threads repetition
// history forward — except chesscore's history lives in GameState, one
// layer above PositionCore, since PositionCore itself has no notion of
// "how many times has this exact position occurred before."
package game

import (
	"github.com/frankkopp/chesscore/assert"
	"github.com/frankkopp/chesscore/config"
	"github.com/frankkopp/chesscore/logging"
	"github.com/frankkopp/chesscore/movegen"
	"github.com/frankkopp/chesscore/notation"
	"github.com/frankkopp/chesscore/position"
	. "github.com/frankkopp/chesscore/types"
)

var log = logging.GetLog()

// RuleSet discriminates which termination rules apply. Perft is a
// configuration flag, not a subtype: it disables repetition, fifty-move
// and insufficient-material termination (and the history append that
// repetition detection needs) while keeping checkmate/stalemate
// detection, so perft node counts aren't polluted by draw adjudication
// that has nothing to do with move-generation correctness.
type RuleSet int

const (
	Standard RuleSet = iota
	Perft
)

// TerminationKind is the top-level shape of a terminal result.
type TerminationKind int

const (
	// NotTerminated marks a StepOutcome that is still Ongoing.
	NotTerminated TerminationKind = iota
	Win
	Draw
)

// DrawKind further classifies a Draw termination.
type DrawKind int

const (
	NoDraw DrawKind = iota
	Stalemate
	ThreefoldRepetition
	FiftyMove
	InsufficientMaterial
)

func (d DrawKind) String() string {
	switch d {
	case Stalemate:
		return "stalemate"
	case ThreefoldRepetition:
		return "threefold repetition"
	case FiftyMove:
		return "fifty-move rule"
	case InsufficientMaterial:
		return "insufficient material"
	default:
		return "none"
	}
}

// GameState is an immutable value: Step consumes one and returns a new
// one (or a terminal outcome containing the final one). Safe to clone
// and hand to independent goroutines, per spec.md §5 — position_history
// is a plain slice copied by value along with the rest of the struct.
type GameState struct {
	Core           position.PositionCore
	PositionHashes []position.Key
	RuleSet        RuleSet
}

// Default returns a GameState at the standard starting position, with
// the rule set config.Settings.Rules.DefaultPerftRuleSet selects: Perft
// if set, Standard otherwise. Callers that need one rule set
// unconditionally should use NewPerft or build a GameState literal
// directly instead of going through this config-driven default.
func Default() GameState {
	rs := Standard
	if config.Settings.Rules.DefaultPerftRuleSet {
		rs = Perft
	}
	return GameState{Core: position.New(), RuleSet: rs}
}

// NewPerft returns a GameState at the standard starting position with
// the Perft rule set, the way FrankyGo's perft harness builds a fresh
// position per run rather than reusing one seeded for search.
func NewPerft() GameState {
	return GameState{Core: position.New(), RuleSet: Perft}
}

// FromFEN builds a GameState from a FEN string under rs. The returned
// state starts with an empty repetition history: FEN has no way to
// encode prior occurrences of the position it describes, so a game
// resumed from FEN can only detect repetitions that occur after it.
func FromFEN(fen string, rs RuleSet) (GameState, error) {
	core, err := notation.ParseFEN(fen)
	if err != nil {
		return GameState{}, err
	}
	return GameState{Core: core, RuleSet: rs}, nil
}

// ToFEN renders g.Core as a FEN string.
func (g GameState) ToFEN() string {
	return notation.EmitFEN(g.Core)
}

// Clone returns an independent deep copy of g: PositionHashes gets its
// own backing array so appending to one clone's history never aliases
// another's.
func (g GameState) Clone() GameState {
	hashes := make([]position.Key, len(g.PositionHashes))
	copy(hashes, g.PositionHashes)
	return GameState{Core: g.Core, PositionHashes: hashes, RuleSet: g.RuleSet}
}

// LegalMoves delegates to the move generator for g.Core.
func (g GameState) LegalMoves() []Move {
	return movegen.New().GenerateLegalMoves(g.Core)
}

// StepOutcome is the result of Step: either an ongoing game (Terminated
// == NotTerminated) or a terminal result naming a Kind and, for draws,
// a DrawKind. State always holds the position reached by playing the
// move — the spec's "Ongoing(GameState)" and "Terminated{kind,
// final_state}" collapsed into one struct since Go has no tagged-union
// return type as convenient as Rust's enum.
type StepOutcome struct {
	State      GameState
	Terminated TerminationKind
	Draw       DrawKind
	// Winner is set only when Terminated == Win: the side that just
	// moved, per spec.md's "Win is always credited to the side that
	// just moved."
	Winner Color
}

// IsOngoing reports whether the game continues after this step.
func (o StepOutcome) IsOngoing() bool {
	return o.Terminated == NotTerminated
}

// Step applies move to g and returns the resulting outcome. move must
// be an element of g.LegalMoves(); passing any other move is a
// programming error, asserted rather than returned as an error, per
// spec.md §7's "move application precondition" design. The eleven
// numbered steps of spec.md §4.4 execute in the exact order below;
// reordering them changes which termination condition wins when more
// than one applies simultaneously.
func (g GameState) Step(move Move) StepOutcome {
	legal := isLegalMove(g, move)
	if !legal {
		log.Warningf("Step called with a move not in LegalMoves(): %s", move.String())
	}
	if assert.DEBUG {
		assert.Assert(legal, "Step called with a move not in LegalMoves(): %s", move.String())
	}

	mover := g.Core.SideToMove

	// 1. Apply move to board (plus 3,4,5,6,11: PositionCore.WithMoveApplied
	// already folds in the halfmove clock, castling-rights invalidation,
	// en-passant target update, fullmove increment and side-to-move flip).
	nextCore := g.Core.WithMoveApplied(move)

	next := GameState{Core: nextCore, RuleSet: g.RuleSet}
	if g.RuleSet == Standard {
		next.PositionHashes = append(append([]position.Key{}, g.PositionHashes...), nextCore.Hash())
	}

	// 7. Opponent (new side to move) legal-move check: checkmate or stalemate.
	if !movegen.New().HasLegalMove(nextCore) {
		if nextCore.IsInCheck() {
			return StepOutcome{State: next, Terminated: Win, Winner: mover}
		}
		return StepOutcome{State: next, Terminated: Draw, Draw: Stalemate}
	}

	if g.RuleSet == Standard {
		// 8. Repetition check.
		if countOccurrences(next.PositionHashes, nextCore.Hash()) >= config.Settings.Rules.RepetitionThreshold {
			return StepOutcome{State: next, Terminated: Draw, Draw: ThreefoldRepetition}
		}
		// 9. Fifty-move-rule check.
		if nextCore.HalfMoveClock >= 100 {
			return StepOutcome{State: next, Terminated: Draw, Draw: FiftyMove}
		}
		// 10. Insufficient material check.
		if hasInsufficientMaterial(nextCore) {
			return StepOutcome{State: next, Terminated: Draw, Draw: InsufficientMaterial}
		}
	}

	return StepOutcome{State: next, Terminated: NotTerminated}
}

func countOccurrences(hashes []position.Key, target position.Key) int {
	n := 0
	for _, h := range hashes {
		if h == target {
			n++
		}
	}
	return n
}

func isLegalMove(g GameState, move Move) bool {
	for _, m := range g.LegalMoves() {
		if m == move {
			return true
		}
	}
	return false
}

// hasInsufficientMaterial reports the narrow set of material
// configurations spec.md §4.4 names explicitly: king versus king; king
// plus a single minor piece (knight or bishop) versus a lone king; and
// king plus bishop versus king plus bishop where both bishops travel on
// the same square color. Every other material-light ending (two
// knights, opposite-colored bishops, any pawn or major piece still on
// the board) is not a forced draw and is deliberately left to
// threefold repetition or the fifty-move rule instead, per the Open
// Question decision in DESIGN.md.
func hasInsufficientMaterial(core position.PositionCore) bool {
	type minor struct {
		piece Piece
		sq    Square
	}
	var minors []minor
	for _, sq := range AllSquares() {
		p := core.Board.At(sq)
		if p == PieceNone || p.Type == King {
			continue
		}
		if p.Type != Knight && p.Type != Bishop {
			return false
		}
		minors = append(minors, minor{p, sq})
	}

	switch len(minors) {
	case 0, 1:
		return true
	case 2:
		if minors[0].piece.Type != Bishop || minors[1].piece.Type != Bishop {
			return false
		}
		if minors[0].piece.Color == minors[1].piece.Color {
			return false
		}
		return minors[0].sq.IsDark() == minors[1].sq.IsDark()
	default:
		return false
	}
}
