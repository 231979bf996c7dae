package ticli

import "fmt"

// Bold and Dim wrap s in SGR escapes when color is true, and return s
// unchanged otherwise. This replaces the teacher's much larger Color
// bitmask type and regex-based usage-text highlighter: cmd/infocmp only
// ever needs to bold a heading or dim a hint, never arbitrary 256-color or
// truecolor output.
func Bold(s string, color bool) string { return wrap(s, "1", color) }
func Dim(s string, color bool) string  { return wrap(s, "2", color) }

func wrap(s, code string, color bool) string {
	if !color {
		return s
	}
	return fmt.Sprintf("\x1b[%sm%s\x1b[0m", code, s)
}
