package dfa

import "testing"

func TestTableIsSink(t *testing.T) {
	table := &Table{Rows: []Row{
		{Accepting: false, Next: [AlphabetSize]int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}},
		{Accepting: true, Next: [AlphabetSize]int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}},
	}}
	if table.IsSink(0) {
		t.Fatal("state 0 points entirely at state 1, not itself; should not be a sink")
	}
	if !table.IsSink(1) {
		t.Fatal("state 1 self-loops on every input; should be a sink")
	}
}

func TestTableRunDrivesFromState0(t *testing.T) {
	// state 0 --1--> 1, state 1 self-loops and is accepting.
	table := &Table{Rows: []Row{
		{Accepting: false, Next: func() (n [AlphabetSize]int) { n[1] = 1; return }()},
		{Accepting: true, Next: func() (n [AlphabetSize]int) { for i := range n { n[i] = 1 }; return }()},
	}}
	if got := table.Run(nil); got != 0 {
		t.Fatalf("empty input should stay at state 0, got %d", got)
	}
	if got := table.Run([]uint8{1}); got != 1 {
		t.Fatalf("input [1] should land on state 1, got %d", got)
	}
	if got := table.Run([]uint8{1, 5, 9}); got != 1 {
		t.Fatalf("state 1 self-loops on any input, got %d", got)
	}
}
