package ticli

import "testing"

func TestFlagsStringAndShift(t *testing.T) {
	f := NewFlags([]string{"infocmp", "-color=always", "-dir", "/usr/share/terminfo", "xterm"})
	color := f.String("auto", "color")
	dir := f.String("", "dir")

	if err := f.Parse(); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if color() != "always" {
		t.Errorf("color = %q, want always", color())
	}
	if dir() != "/usr/share/terminfo" {
		t.Errorf("dir = %q, want /usr/share/terminfo", dir())
	}
	if got := f.Shift(); got != "xterm" {
		t.Errorf("Shift() = %q, want xterm", got)
	}
}

func TestFlagsBoolSwitch(t *testing.T) {
	f := NewFlags([]string{"prog", "-v"})
	verbose := f.Bool(false, "v", "verbose")
	if err := f.Parse(); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !verbose() {
		t.Error("verbose should be true")
	}
}

func TestFlagsUnknown(t *testing.T) {
	f := NewFlags([]string{"prog", "-nope"})
	err := f.Parse()
	if _, ok := err.(*ErrFlagUnknown); !ok {
		t.Fatalf("expected *ErrFlagUnknown, got %T: %v", err, err)
	}
}

func TestFlagsMissingValue(t *testing.T) {
	f := NewFlags([]string{"prog", "-dir"})
	f.String("", "dir")
	err := f.Parse()
	if _, ok := err.(*ErrFlagInvalid); !ok {
		t.Fatalf("expected *ErrFlagInvalid, got %T: %v", err, err)
	}
}
