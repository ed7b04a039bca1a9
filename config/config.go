/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package config reads chesscore's TOML configuration file into a
// package-level Settings struct, the way frankkopp/FrankyGo's config
// package does. Search and evaluation sub-configurations are dropped —
// there is no search or evaluation function in this module — and a
// Rules sub-configuration is added for the one rule spec.md leaves as
// an engine-level choice: the repetition-draw threshold.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/frankkopp/chesscore/util"
)

// globally available config values
var (
	// LogLevel defines the general log level set by default or given by the command line arguments
	LogLevel = 2

	// TestLogLevel defines the log level used by package tests
	TestLogLevel = 2

	// Settings is the global configuration read in from file
	Settings conf

	initialized = false
)

type conf struct {
	Log   logConfiguration
	Rules rulesConfiguration
}

// Setup reads config.toml (if present) and applies defaults for any
// values not specified in the file. Safe to call more than once.
func Setup(path string) {
	if initialized {
		return
	}

	if path == "" {
		path = "config.toml"
	}
	if resolved, err := util.ResolveFile(path); err == nil {
		path = resolved
	}
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		fmt.Println("config: no configuration file loaded:", err)
	}

	setupLogLvl()
	setupRules()

	initialized = true
}
