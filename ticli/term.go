package ticli

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is connected to a terminal, per
// golang.org/x/term.IsTerminal. The teacher's raw-mode, password-prompt,
// and cursor-position helpers that used to sit alongside this are device
// control, out of scope here — this is just a capability query.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TerminalSize returns the terminal's width and height in columns/rows, or
// (0, 0) if f isn't a terminal.
func TerminalSize(f *os.File) (width, height int) {
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0
	}
	return w, h
}

// WantColor reports whether output should be colorized: true unless
// NO_COLOR is set (https://no-color.org) or stdout isn't a terminal.
func WantColor(forceColor, forceNoColor bool) bool {
	if forceNoColor {
		return false
	}
	if forceColor {
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return IsTerminal(os.Stdout)
}
