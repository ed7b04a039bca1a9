/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package config

// rulesConfiguration holds the engine-level choices spec.md leaves open
// rather than mandating a single constant.
type rulesConfiguration struct {
	// RepetitionThreshold is the number of times a position must recur
	// (including the current occurrence) for the game to be drawn by
	// repetition. FIDE rules use 3.
	RepetitionThreshold int

	// DefaultPerftRuleSet selects whether a freshly constructed
	// GameState with no explicit rule set defaults to the perft rule
	// set (checkmate and stalemate still end the game; repetition,
	// fifty-move and insufficient-material draws are not detected)
	// instead of the standard rule set.
	DefaultPerftRuleSet bool
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Rules.RepetitionThreshold = 3
	Settings.Rules.DefaultPerftRuleSet = false
}

// set defaults for configurations here in case a configuration
// is not available from the config file
func setupRules() {
	if Settings.Rules.RepetitionThreshold <= 0 {
		Settings.Rules.RepetitionThreshold = 3
	}
}
