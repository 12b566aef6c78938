package bfdfa

import (
	"errors"
	"strings"
	"testing"

	"github.com/coregx/bfdfa/vm"
)

func TestBuildDOTRejectsInvalidCellCount(t *testing.T) {
	_, err := BuildDOT(",.", 0)
	if err == nil {
		t.Fatal("expected an error for a zero cell count")
	}
	var perr *vm.ProgramError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *vm.ProgramError, got %T", err)
	}
	if perr.Kind != vm.InvalidCellCount {
		t.Errorf("got kind %v, want InvalidCellCount", perr.Kind)
	}
}

func TestBuildDOTDiscardsUnrecognizedCharacters(t *testing.T) {
	withComments, err := BuildDOT("this is not , [ . , ] brainfuck", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bare, err := BuildDOT(",[.,]", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if withComments != bare {
		t.Fatalf("prose interspersed with instructions should parse identically to the bare program:\n%s\nvs\n%s", withComments, bare)
	}
}

func TestBuildDOTOutputIsWellFormedDigraph(t *testing.T) {
	out, err := BuildDOT(",>,[-<->]<[>.,<]", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "digraph G {\n") || !strings.HasSuffix(out, "}\n") {
		t.Fatalf("unexpected DOT shape: %q", out)
	}
}

func TestBuildReturnsATotalMinimizedTable(t *testing.T) {
	table, err := Build("+[>,]+[[.,]+]", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n := len(table.Rows)
	if n == 0 {
		t.Fatal("expected at least one state")
	}
	for i, row := range table.Rows {
		for s, next := range row.Next {
			if next < 0 || next >= n {
				t.Fatalf("state %d input %d: next=%d out of range", i, s, next)
			}
		}
	}
}
