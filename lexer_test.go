package terminfo

import "testing"

func TestLexDelay(t *testing.T) {
	cases := []struct {
		src      string
		wantMS   float64
		wantMndt bool
	}{
		{`$<5>`, 5, false},
		{`$<5/>`, 5, true},
		{`$<5*>`, 5, false},
		{`$<5*/>`, 5, true}, // combined proportional + mandatory flags, term(5) order
		{`$<5.5>`, 5.5, false},
	}
	for _, c := range cases {
		toks, err := lex(c.src)
		if err != nil {
			t.Fatalf("lex(%q): %v", c.src, err)
		}
		if len(toks) != 1 || toks[0].kind != tokDelay {
			t.Fatalf("lex(%q) = %#v, want a single tokDelay", c.src, toks)
		}
		if toks[0].delayMS != c.wantMS {
			t.Errorf("lex(%q).delayMS = %v, want %v", c.src, toks[0].delayMS, c.wantMS)
		}
		if toks[0].delayMandt != c.wantMndt {
			t.Errorf("lex(%q).delayMandt = %v, want %v", c.src, toks[0].delayMandt, c.wantMndt)
		}
	}
}

func TestLexDelayDoesNotLeakRawBytes(t *testing.T) {
	p, err := Compile(`a$<5*/>b`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	out, err := p.Exec(NewTerminal(), 1)
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if string(out) != "ab" {
		t.Errorf("got %q, want %q (no raw $<...> bytes)", out, "ab")
	}
}
