/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package main

import (
	"flag"
	"time"

	"github.com/pkg/profile"

	"github.com/frankkopp/chesscore/config"
	"github.com/frankkopp/chesscore/notation"
)

func main() {
	fen := flag.String("fen", notation.StartFEN, "FEN of the position to run perft on")
	depth := flag.Int("depth", 5, "perft depth")
	suite := flag.String("suite", "", "path to a perft suite file (fen;depth;nodes per line); overrides -fen/-depth")
	parallel := flag.Bool("parallel", false, "split perft across the root move list using goroutines")
	profileFlag := flag.Bool("profile", false, "write a pprof CPU profile for this run")
	configPath := flag.String("config", "", "path to config.toml")
	flag.Parse()

	config.Setup(*configPath)

	if *profileFlag {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	if *suite != "" {
		if err := runSuite(*suite, *parallel); err != nil {
			log.Errorf("perft suite run failed: %v", err)
		}
		return
	}

	core, err := notation.ParseFEN(*fen)
	if err != nil {
		log.Errorf("invalid fen %q: %v", *fen, err)
		return
	}

	out.Printf("Performing PERFT Test for Depth %d\n", *depth)
	out.Printf("-----------------------------------------\n")
	out.Printf("Fen: %s\n", *fen)

	start := time.Now()
	var counters Counters
	if *parallel {
		counters, err = RunParallel(core, *depth)
		if err != nil {
			log.Errorf("parallel perft failed: %v", err)
			return
		}
	} else {
		counters = Run(core, *depth)
	}
	elapsed := time.Since(start)

	nps := uint64(0)
	if elapsed.Nanoseconds() > 0 {
		nps = (counters.Nodes * uint64(time.Second.Nanoseconds())) / uint64(elapsed.Nanoseconds())
	}

	out.Printf("Time         : %d ms\n", elapsed.Milliseconds())
	out.Printf("NPS          : %d nps\n", nps)
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", counters.Nodes)
	out.Printf("   Captures  : %d\n", counters.Captures)
	out.Printf("   EnPassant : %d\n", counters.EnPassant)
	out.Printf("   Castles   : %d\n", counters.Castles)
	out.Printf("   Promotions: %d\n", counters.Promotions)
	out.Printf("   Checks    : %d\n", counters.Checks)
	out.Printf("   CheckMates: %d\n", counters.CheckMates)
	out.Printf("-----------------------------------------\n")
	out.Printf("Finished PERFT Test for Depth %d\n\n", *depth)
}
