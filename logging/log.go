/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package logging is a helper for the "github.com/op/go-logging" package
// to reduce the lines of code within each go file to one line. The
// functions return Logger instances which are configured with the
// necessary backends and formatters.
package logging

import (
	"log"
	"os"

	"github.com/op/go-logging"

	"github.com/frankkopp/chesscore/config"
)

var (
	coreLog     *logging.Logger
	notationLog *logging.Logger
	perftLog    *logging.Logger
	testLog     *logging.Logger

	standardFormat = logging.MustStringFormatter(`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
)

func init() {
	coreLog = logging.MustGetLogger("core")
	notationLog = logging.MustGetLogger("notation")
	perftLog = logging.MustGetLogger("perft")
	testLog = logging.MustGetLogger("test")
}

func newBackend(lvl int) logging.LeveledBackend {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatter := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatter)
	leveled.SetLevel(logging.Level(lvl), "")
	return leveled
}

// GetLog returns the core engine logger (board/position/movegen/game),
// preconfigured with an os.Stdout backend at config.LogLevel. The core
// logs only at WARNING or above on the happy path — a 218-branch move
// generator has no business logging per-move at INFO.
func GetLog() *logging.Logger {
	coreLog.SetBackend(newBackend(config.LogLevel))
	return coreLog
}

// GetNotationLog returns the logger used by the notation package (FEN,
// SAN, LAN parsing/emitting).
func GetNotationLog() *logging.Logger {
	notationLog.SetBackend(newBackend(config.LogLevel))
	return notationLog
}

// GetPerftLog returns the logger used by cmd/perft.
func GetPerftLog() *logging.Logger {
	perftLog.SetBackend(newBackend(config.LogLevel))
	return perftLog
}

// GetTestLog returns a logger preconfigured at config.TestLogLevel for
// use from package tests.
func GetTestLog() *logging.Logger {
	testLog.SetBackend(newBackend(config.TestLogLevel))
	return testLog
}
