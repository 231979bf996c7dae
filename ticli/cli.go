// Package ticli provides the small ambient toolkit cmd/infocmp is built
// on: stdin/stdout/stderr indirection for testing, process exit helpers,
// terminal/color detection, minimal flag parsing, and output paging.
//
// It is a deliberately trimmed descendant of zgo.at/zli: the parts of that
// package this module's one CLI command actually uses, kept in the same
// idiom.
package ticli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Stdin, Stdout, and Stderr are package-level indirections over the real
// standard streams so tests can swap them out; see Test in test.go.
var (
	Stdin          io.Reader = os.Stdin
	Stdout         io.Writer = os.Stdout
	Stderr         io.Writer = os.Stderr
	Exit                     = os.Exit
)

// Program returns the program's name (os.Args[0], base name only).
func Program() string {
	if len(os.Args) == 0 {
		return ""
	}
	return filepath.Base(os.Args[0])
}

// Errorf prints "program: message" to Stderr, like a Unix tool reporting a
// non-fatal error.
func Errorf(format string, args ...interface{}) {
	fmt.Fprintf(Stderr, "%s: %s\n", Program(), fmt.Sprintf(format, args...))
}

// Fatalf prints "program: message" to Stderr and exits with status 1.
func Fatalf(format string, args ...interface{}) {
	Errorf(format, args...)
	Exit(1)
}

// F exits with status 1 if err is non-nil, printing it via Fatalf first.
func F(err error) {
	if err != nil {
		Fatalf("%s", err)
	}
}
