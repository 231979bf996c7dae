package terminfo

import "testing"

func TestCompileLiteralAndParams(t *testing.T) {
	p, err := Compile(`\E[%i%p1%d;%p2%dH`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if p.maxUsedParam != 2 {
		t.Errorf("maxUsedParam = %d, want 2", p.maxUsedParam)
	}

	var ops []Op
	for _, in := range p.instructions {
		ops = append(ops, in.Op)
	}
	want := []Op{OpOut, OpParamInc, OpPushParam, OpPrint, OpOut, OpPushParam, OpPrint, OpOut}
	if len(ops) != len(want) {
		t.Fatalf("ops = %v, want %v", ops, want)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Errorf("ops[%d] = %v, want %v", i, ops[i], want[i])
		}
	}
}

func TestCompileIfThenElse(t *testing.T) {
	p, err := Compile(`%?%p1%{1}%=%tone%e%p1%{2}%=%ttwo%eother%;`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	// Sanity: the program should contain exactly two JUMP_ZERO and two JUMP
	// instructions (one JUMP_ZERO per %t test, one JUMP per %e closing the
	// arm before it; the final "other" arm falls through with no jump).
	var jz, jmp int
	for _, in := range p.instructions {
		switch in.Op {
		case OpJumpZero:
			jz++
		case OpJump:
			jmp++
		}
	}
	if jz != 2 {
		t.Errorf("JUMP_ZERO count = %d, want 2", jz)
	}
	if jmp != 2 {
		t.Errorf("JUMP count = %d, want 2", jmp)
	}

	// Every jump's Target must land inside the instruction stream.
	for i, in := range p.instructions {
		if in.Op == OpJump || in.Op == OpJumpZero {
			dest := i + in.Target + 1
			if dest < 0 || dest > len(p.instructions) {
				t.Errorf("instruction %d: target %d out of range", i, dest)
			}
		}
	}
}

func TestCompileUnterminatedIf(t *testing.T) {
	_, err := Compile(`%?%p1%t foo`)
	if err == nil {
		t.Fatal("expected an error for an unterminated %? block")
	}
}

func TestCompileStrayEndIf(t *testing.T) {
	_, err := Compile(`foo%;`)
	if err == nil {
		t.Fatal("expected an error for a stray %;")
	}
}
