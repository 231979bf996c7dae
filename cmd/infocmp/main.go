// Command infocmp inspects terminfo entries and expands capability strings
// from the command line, in the spirit of the real ncurses infocmp/tput
// utilities.
package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"zgo.at/terminfo"
	"zgo.at/terminfo/ticli"
)

const usage = `Usage: infocmp [-dir path] [-color auto|always|never] [name]
       infocmp cap <name> <capability> [params...]

Without a subcommand, infocmp prints the booleans, numbers, and strings of
the named terminal entry (default: $TERM), sorted by capability name.

The "cap" subcommand compiles and executes one string capability against
the given parameters and writes the resulting bytes to stdout.

Flags:
  -dir path    terminfo database root (default /usr/share/terminfo)
  -color mode  auto, always, or never (default auto)
`

func main() {
	defer ticli.Recover()

	f := ticli.NewFlags(os.Args)
	dir := f.String("/usr/share/terminfo", "dir")
	color := f.String("auto", "color")
	if err := f.Parse(); err != nil {
		ticli.Fatalf("%s", err)
	}

	db, err := terminfo.Open(dir())
	if err != nil {
		ticli.Fatalf("%s", err)
	}

	wantColor := ticli.WantColor(color() == "always", color() == "never")

	first := f.Shift()
	if first == "cap" {
		runCap(db, f)
		return
	}
	runList(db, first, wantColor)
}

func runList(db *terminfo.Database, name string, wantColor bool) {
	var e *terminfo.Entry
	var err error
	if name == "" {
		e, err = db.LoadDefault("")
	} else {
		e, err = db.Load(name)
	}
	if err != nil {
		ticli.Fatalf("%s", err)
	}

	out := ticli.PagerStdout()
	defer out.Close()

	n := e.Names()
	fmt.Fprintln(out, ticli.Bold(n.Primary, wantColor))
	if len(n.Synonyms) > 0 {
		fmt.Fprintln(out, ticli.Dim(fmt.Sprintf("synonyms: %v", n.Synonyms), wantColor))
	}
	if n.Description != "" {
		fmt.Fprintln(out, n.Description)
	}
	fmt.Fprintln(out)

	bools := e.Booleans()
	boolNames := make([]string, 0, len(bools))
	for k := range bools {
		boolNames = append(boolNames, k)
	}
	sort.Strings(boolNames)
	for _, k := range boolNames {
		fmt.Fprintf(out, "%s\n", k)
	}

	nums := e.Numbers()
	numNames := make([]string, 0, len(nums))
	for k := range nums {
		numNames = append(numNames, k)
	}
	sort.Strings(numNames)
	for _, k := range numNames {
		fmt.Fprintf(out, "%s#%d\n", k, nums[k])
	}

	strs := e.Strings()
	strNames := make([]string, 0, len(strs))
	for k := range strs {
		strNames = append(strNames, k)
	}
	sort.Strings(strNames)
	for _, k := range strNames {
		fmt.Fprintf(out, "%s=%s\n", k, strs[k])
	}
}

func runCap(db *terminfo.Database, f ticli.Flags) {
	termName := f.Shift()
	capName := f.Shift()
	if capName == "" {
		ticli.Fatalf("usage: infocmp cap <name> <capability> [params...]")
	}

	var e *terminfo.Entry
	var err error
	if termName == "" {
		e, err = db.LoadDefault("")
	} else {
		e, err = db.Load(termName)
	}
	if err != nil {
		ticli.Fatalf("%s", err)
	}

	src, ok := e.Str(capName)
	if !ok {
		ticli.Fatalf("%s: no such string capability", capName)
	}

	prog, err := terminfo.Compile(src)
	if err != nil {
		ticli.Fatalf("%s", err)
	}

	params := make([]terminfo.Value, 0, len(f.Args))
	for _, a := range f.Args {
		if n, err := strconv.Atoi(a); err == nil {
			params = append(params, terminfo.IntValue(n))
		} else {
			params = append(params, terminfo.StrValue(a))
		}
	}

	term := terminfo.NewTerminal()
	out, err := prog.Exec(term, 1, params...)
	if err != nil {
		ticli.Fatalf("%s", err)
	}
	ticli.Stdout.Write(out)
}
