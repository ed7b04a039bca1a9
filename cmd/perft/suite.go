/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package main

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/chesscore/logging"
	"github.com/frankkopp/chesscore/notation"
)

var out = message.NewPrinter(language.English)
var log = logging.GetPerftLog()

// fixture is one line of a perft suite file: a position, the depth to
// search it to, and the node count a correct move generator must
// produce at that depth. Grounded on testsuite/testsuite.go's Test
// struct, with the EPD bm/am/dm opcode fields replaced by the single
// node-count fixture perft suites use.
type fixture struct {
	fen      string
	depth    int
	expected uint64
	line     string

	actual  uint64
	elapsed time.Duration
	passed  bool
	ran     bool
}

var leadingComment = regexp.MustCompile(`^\s*#.*$`)
var fixtureLine = regexp.MustCompile(`^\s*([^;]+?)\s*;\s*(\d+)\s*;\s*(\d+)\s*$`)

// loadSuite reads filePath and parses every non-comment, non-blank line
// as a "fen;depth;nodes" fixture.
func loadSuite(filePath string) ([]*fixture, error) {
	lines, err := readLines(filePath)
	if err != nil {
		return nil, err
	}
	var fixtures []*fixture
	for _, line := range lines {
		f := parseFixtureLine(line)
		if f != nil {
			fixtures = append(fixtures, f)
		}
	}
	return fixtures, nil
}

func parseFixtureLine(line string) *fixture {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || leadingComment.MatchString(trimmed) {
		return nil
	}
	m := fixtureLine.FindStringSubmatch(trimmed)
	if m == nil {
		log.Warningf("skipping malformed perft fixture line: %s", line)
		return nil
	}
	if _, err := notation.ParseFEN(m[1]); err != nil {
		log.Warningf("skipping fixture with invalid fen %q: %v", m[1], err)
		return nil
	}
	depth, err := strconv.Atoi(m[2])
	if err != nil {
		log.Warningf("skipping fixture with invalid depth %q: %v", m[2], err)
		return nil
	}
	nodes, err := strconv.ParseUint(m[3], 10, 64)
	if err != nil {
		log.Warningf("skipping fixture with invalid node count %q: %v", m[3], err)
		return nil
	}
	return &fixture{fen: m[1], depth: depth, expected: nodes, line: trimmed}
}

func readLines(filePath string) ([]string, error) {
	if !filepath.IsAbs(filePath) {
		wd, _ := os.Getwd()
		filePath = filepath.Join(wd, filePath)
	}
	filePath = filepath.Clean(filePath)

	f, err := os.Open(filePath)
	if err != nil {
		log.Errorf("suite file %q could not be opened: %v", filePath, err)
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Errorf("suite file %q could not be closed: %v", filePath, cerr)
		}
	}()

	var lines []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Errorf("error reading suite file %q: %v", filePath, err)
		return nil, err
	}
	return lines, nil
}

// runSuite executes every fixture in filePath and prints the same
// aligned report table testsuite.go prints for EPD runs, with bm/am/dm
// target columns swapped for expected/actual node counts.
func runSuite(filePath string, parallel bool) error {
	fixtures, err := loadSuite(filePath)
	if err != nil {
		return err
	}

	out.Printf("Running Perft Suite\n")
	out.Printf("==================================================================\n")
	out.Printf("Suite File: %s\n", filePath)
	out.Printf("Fixtures:   %d\n", len(fixtures))
	out.Println()

	start := time.Now()
	for _, f := range fixtures {
		core, err := notation.ParseFEN(f.fen)
		if err != nil {
			continue
		}
		fixtureStart := time.Now()
		var counters Counters
		if parallel {
			counters, err = RunParallel(core, f.depth)
			if err != nil {
				log.Errorf("parallel perft failed for %q: %v", f.fen, err)
				continue
			}
		} else {
			counters = Run(core, f.depth)
		}
		f.actual = counters.Nodes
		f.passed = f.actual == f.expected
		f.ran = true
		f.elapsed = time.Since(fixtureStart)
	}
	elapsed := time.Since(start)

	printReport(fixtures, filePath, elapsed)
	return nil
}

func printReport(fixtures []*fixture, filePath string, elapsed time.Duration) {
	passed, failed := 0, 0
	for _, f := range fixtures {
		if !f.ran {
			continue
		}
		if f.passed {
			passed++
		} else {
			failed++
		}
	}

	out.Printf("Results for Perft Suite\n")
	out.Printf("====================================================================================================================================\n")
	out.Printf("Suite File: %s\n", filePath)
	out.Printf("Date:       %s\n", time.Now().Local())
	out.Printf("====================================================================================================================================\n")
	out.Printf(" %-4s | %-6s | %-5s | %-14s | %-14s | %s\n", "Nr.", "Result", "Depth", "Expected", "Actual", "Fen")
	out.Printf("====================================================================================================================================\n")
	for i, f := range fixtures {
		result := "SKIPPED"
		if f.ran {
			result = "FAILED"
			if f.passed {
				result = "PASSED"
			}
		}
		out.Printf(" %-4d | %-6s | %-5d | %-14d | %-14d | %s\n", i+1, result, f.depth, f.expected, f.actual, f.fen)
	}
	out.Printf("====================================================================================================================================\n")
	out.Printf("Passed:  %-3d\n", passed)
	out.Printf("Failed:  %-3d\n", failed)
	out.Printf("\n")
	out.Printf("Suite time: %d ms\n", elapsed.Milliseconds())
}
