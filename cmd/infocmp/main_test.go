package main

import (
	"os"
	"path/filepath"
	"testing"

	"zgo.at/terminfo/ticli"
)

// writeFixture writes a minimal terminfo entry directly, to avoid pulling
// in the core package's internal test helpers from a different package.
func writeFixture(t *testing.T, root, name string) {
	t.Helper()
	dir := filepath.Join(root, name[:1])
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	// Magic(2) + header(10) + names("x\0"=2) + bool(0) + pad + num(0) +
	// stroffsets(0) + strtable(0): the smallest legal classic-magic file.
	data := []byte{
		0x1a, 0x01, // magic
		2, 0, // sizeNames
		0, 0, // nCapBool
		0, 0, // nCapNum
		0, 0, // nCapStr
		0, 0, // sizeStr
		'x', 0,
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestInfocmpList(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "x")

	_, out, _ := ticli.Test(t, "")
	os.Args = []string{"infocmp", "-dir", root, "x"}

	func() {
		defer ticli.Recover()
		main()
	}()

	if got := out(); got == "" {
		t.Error("expected some output listing the entry")
	}
}

func TestInfocmpUnknownTerminal(t *testing.T) {
	root := t.TempDir()

	exit, _, errOut := ticli.Test(t, "")
	os.Args = []string{"infocmp", "-dir", root, "does-not-exist"}

	func() {
		defer ticli.Recover()
		main()
	}()

	if exit() == 0 {
		t.Error("expected a non-zero exit code for an unknown terminal")
	}
	if errOut() == "" {
		t.Error("expected an error message on stderr")
	}
}
