// +build debug

/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package assert

import "fmt"

func init() {
	fmt.Println("DEBUG MODE")
}

// DEBUG if this is set to "true" asserts are evaluated
const DEBUG = true

// Assert panics with the formatted message if test is false. Callers are
// expected to guard the call itself with "if assert.DEBUG { ... }" so that
// argument evaluation (often a String() call) is compiled out entirely in
// a release build rather than merely skipped at runtime.
func Assert(test bool, msg string, a ...interface{}) {
	if !test {
		panic(fmt.Sprintf(msg, a...))
	}
}
