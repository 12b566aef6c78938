package vm

import (
	"errors"
	"testing"
)

func TestParseProgramFiltersUnrecognizedBytes(t *testing.T) {
	p, err := ParseProgram("<>+- [ x ] , . # comment", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Instruction{MoveLeft, MoveRight, Increment, Decrement, StartLoop, EndLoop, Read, Accept}
	if len(p.Instructions) != len(want) {
		t.Fatalf("got %d instructions, want %d: %v", len(p.Instructions), len(want), p.Instructions)
	}
	for i, in := range want {
		if p.Instructions[i] != in {
			t.Errorf("instruction %d: got %v, want %v", i, p.Instructions[i], in)
		}
	}
}

func TestParseProgramEmptyTextYieldsEmptyProgram(t *testing.T) {
	p, err := ParseProgram("not brainfuck at all", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Instructions) != 0 {
		t.Fatalf("expected no instructions, got %v", p.Instructions)
	}
}

func TestParseProgramRejectsNonPositiveCellCount(t *testing.T) {
	for _, cc := range []int{0, -1, -100} {
		_, err := ParseProgram(",.", cc)
		if err == nil {
			t.Fatalf("cell count %d: expected error", cc)
		}
		var perr *ProgramError
		if !errors.As(err, &perr) {
			t.Fatalf("cell count %d: expected *ProgramError, got %T", cc, err)
		}
		if perr.Kind != InvalidCellCount {
			t.Errorf("cell count %d: got kind %v, want InvalidCellCount", cc, perr.Kind)
		}
	}
}

func TestProgramErrorIsMatchesByKind(t *testing.T) {
	err1 := invalidCellCountError(0)
	err2 := invalidCellCountError(-5)
	if !errors.Is(err1, err2) {
		t.Fatal("two InvalidCellCount errors should satisfy errors.Is")
	}
}
