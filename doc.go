// Package terminfo reads the binary terminfo database ncurses-compatible
// terminals use, compiles the term(5) capability parameter-string
// language, and executes compiled capability programs against runtime
// parameters.
//
// A typical lookup:
//
//	db, err := terminfo.Open("/usr/share/terminfo")
//	entry, err := db.LoadDefault("xterm-256color")
//	src, _ := entry.Str("cup")
//	prog, err := terminfo.Compile(src)
//	out, err := prog.Exec(terminfo.NewTerminal(), 1, terminfo.IntValue(4), terminfo.IntValue(9))
//
// Terminal I/O device control (termios, baud rate), a curses-style drawing
// layer, and interactive keyboard input are out of scope for this package;
// see cmd/infocmp for a small command-line consumer.
package terminfo
