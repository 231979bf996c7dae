package terminfo

import "testing"

func TestFormatOctalPrecisionCancelsAltPrefix(t *testing.T) {
	fs := formatSpec{alt: true, hasPrecision: true, precision: 3, verb: 'o'}
	got, err := formatValue(fs, IntValue(8))
	if err != nil {
		t.Fatalf("formatValue: %v", err)
	}
	if got != "010" {
		t.Errorf("got %q, want %q", got, "010")
	}
}

func TestFormatOctalAltWithoutPrecision(t *testing.T) {
	fs := formatSpec{alt: true, verb: 'o'}
	got, err := formatValue(fs, IntValue(8))
	if err != nil {
		t.Fatalf("formatValue: %v", err)
	}
	if got != "010" {
		t.Errorf("got %q, want %q", got, "010")
	}
}

func TestFormatDecimalWidthZeroPad(t *testing.T) {
	fs := formatSpec{hasWidth: true, width: 3, zero: true, verb: 'd'}
	got, err := formatValue(fs, IntValue(7))
	if err != nil {
		t.Fatalf("formatValue: %v", err)
	}
	if got != "007" {
		t.Errorf("got %q, want %q", got, "007")
	}
}

func TestFormatHex(t *testing.T) {
	fs := formatSpec{alt: true, verb: 'x'}
	got, err := formatValue(fs, IntValue(255))
	if err != nil {
		t.Fatalf("formatValue: %v", err)
	}
	if got != "0xff" {
		t.Errorf("got %q, want %q", got, "0xff")
	}
}

func TestFormatString(t *testing.T) {
	fs := formatSpec{hasWidth: true, width: 5, verb: 's'}
	got, err := formatValue(fs, StrValue("ab"))
	if err != nil {
		t.Fatalf("formatValue: %v", err)
	}
	if got != "   ab" {
		t.Errorf("got %q, want %q", got, "   ab")
	}
}
