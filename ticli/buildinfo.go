package ticli

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

var (
	progname = ""
	version  = "dev"
)

// GetVersion returns this program's version, commit, and commit date, read
// from the build's embedded VCS info.
func GetVersion() (tag string, commit string, date time.Time) {
	b, ok := debug.ReadBuildInfo()
	if !ok {
		return version, "", time.Time{}
	}

	var vcs string
	for _, s := range b.Settings {
		switch s.Key {
		case "vcs.revision":
			commit = s.Value
		case "vcs.time":
			date, _ = time.Parse(time.RFC3339, s.Value)
		case "vcs":
			vcs = s.Value
		}
	}
	if vcs == "git" && len(commit) > 8 {
		commit = commit[:8]
	}
	return version, commit, date
}

// PrintVersion prints this program's version to Stdout in the form:
//
//	infocmp 336b4c73 2024-06-07; go1.22 linux/amd64; race=false; cgo=false
//
// A tagged release can be baked in at build time with:
//
//	go build -ldflags "-X zgo.at/terminfo/ticli.version=v1.2.3"
//
// If verbose is true, the full embedded build info is printed as well.
func PrintVersion(verbose bool) {
	name := progname
	if name == "" {
		name = Program()
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		fmt.Fprintln(Stdout, "failed reading detailed build info")
		return
	}

	var (
		race, cgo, mod            bool
		goos, goarch, commit, vcs string
		date                      time.Time
	)
	for _, s := range info.Settings {
		switch s.Key {
		case "-race":
			race = s.Value == "true"
		case "CGO_ENABLED":
			cgo = s.Value == "1"
		case "GOARCH":
			goarch = s.Value
		case "GOOS":
			goos = s.Value
		case "vcs.revision":
			commit = s.Value
		case "vcs.time":
			date, _ = time.Parse(time.RFC3339, s.Value)
		case "vcs.modified":
			mod = s.Value == "true"
		case "vcs":
			vcs = s.Value
		}
	}
	if vcs == "git" && len(commit) > 8 {
		commit = commit[:8]
	}

	v := make([]string, 0, 4)
	if version != "" && version != "dev" {
		v = append(v, version)
	}
	if commit != "" {
		v = append(v, commit)
	}
	if !date.IsZero() {
		v = append(v, date.Format("2006-01-02"))
	}
	if mod {
		v = append(v, "(modified)")
	}

	fmt.Fprintf(Stdout, "%s %s; %s %s/%s; race=%t; cgo=%t\n",
		name, strings.Join(v, " "), info.GoVersion, goos, goarch, race, cgo)

	if verbose {
		fmt.Fprint(Stdout, "\n", info)
	}
}
