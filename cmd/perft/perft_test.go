/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chesscore/notation"
	"github.com/frankkopp/chesscore/position"
)

// Well-known perft node counts for the starting position, used across
// chess engines to validate a move generator end to end.
var startingPositionPerft = map[int]uint64{
	1: 20,
	2: 400,
	3: 8902,
	4: 197281,
}

func TestRun_StartingPositionMatchesKnownNodeCounts(t *testing.T) {
	core := position.New()
	for depth, expected := range startingPositionPerft {
		counters := Run(core, depth)
		assert.Equal(t, expected, counters.Nodes, "depth %d", depth)
	}
}

func TestRunParallel_MatchesSerialRun(t *testing.T) {
	core := position.New()
	serial := Run(core, 3)
	parallel, err := RunParallel(core, 3)
	assert.NoError(t, err)
	assert.Equal(t, serial, parallel)
}

func TestRun_KiwipeteDepthOneCounters(t *testing.T) {
	// Kiwipete depth 1: 48 moves, 8 captures, 2 castles, no promotions,
	// no en passant, 0 checks.
	core, err := notation.ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	counters := Run(core, 1)
	assert.Equal(t, uint64(48), counters.Nodes)
	assert.Equal(t, uint64(8), counters.Captures)
	assert.Equal(t, uint64(2), counters.Castles)
	assert.Equal(t, uint64(0), counters.Promotions)
}

func TestParseFixtureLine_ParsesValidFixture(t *testing.T) {
	f := parseFixtureLine("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1;3;8902")
	assert.NotNil(t, f)
	assert.Equal(t, 3, f.depth)
	assert.Equal(t, uint64(8902), f.expected)
}

func TestParseFixtureLine_SkipsCommentsAndBlankLines(t *testing.T) {
	assert.Nil(t, parseFixtureLine("# a comment"))
	assert.Nil(t, parseFixtureLine("   "))
}

func TestParseFixtureLine_SkipsMalformedLine(t *testing.T) {
	assert.Nil(t, parseFixtureLine("not-a-fixture-line"))
}
