package terminfo

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, dir, name string) string {
	t.Helper()
	sub := filepath.Join(dir, name[:1])
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(sub, name)
	if err := os.WriteFile(path, buildBasic(t), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDatabaseOpenAndLoad(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "xterm-test")

	db, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	names := db.Names()
	if len(names) != 1 || names[0] != "xterm-test" {
		t.Fatalf("Names() = %v, want [xterm-test]", names)
	}

	e, err := db.Load("xterm-test")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if e.Names().Primary != "xterm-test" {
		t.Errorf("Primary = %q", e.Names().Primary)
	}

	_, err = db.Load("does-not-exist")
	if _, ok := err.(*NotFoundError); !ok {
		t.Fatalf("expected *NotFoundError, got %T: %v", err, err)
	}
}

func TestDatabaseLoadDefault(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "xterm-test")
	db, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	t.Setenv("TERM", "")
	_, err = db.LoadDefault("")
	if _, ok := err.(*ConfigError); !ok {
		t.Fatalf("expected *ConfigError, got %T: %v", err, err)
	}

	e, err := db.LoadDefault("xterm-test")
	if err != nil {
		t.Fatalf("LoadDefault with fallback: %v", err)
	}
	if e.Names().Primary != "xterm-test" {
		t.Errorf("Primary = %q", e.Names().Primary)
	}

	t.Setenv("TERM", "xterm-test")
	e, err = db.LoadDefault("")
	if err != nil {
		t.Fatalf("LoadDefault with $TERM: %v", err)
	}
	if e.Names().Primary != "xterm-test" {
		t.Errorf("Primary = %q", e.Names().Primary)
	}
}
