// Package dfa builds, minimizes, and exposes the deterministic automaton
// whose alphabet is the 16 possible 4-bit input symbols a tape-machine
// program can read. A Table is the sole artifact handed between the
// Builder, the Minimizer, and the dot package's serializer.
package dfa

// AlphabetSize is the number of distinct input symbols: every 4-bit value.
const AlphabetSize = 16

// Row is one state of the transition table: whether it is accepting, and
// where each of the 16 possible inputs leads.
type Row struct {
	Accepting bool
	Next      [AlphabetSize]int
}

// Table is an ordered transition table. State 0 is always the start state.
// Every Next entry is a valid index into Rows. A sink row (no further
// observable behavior) satisfies Next[s] == its own index for every s.
type Table struct {
	Rows []Row
}

// IsSink reports whether row i is a self-looping sink.
func (t *Table) IsSink(i int) bool {
	row := t.Rows[i]
	for _, next := range row.Next {
		if next != i {
			return false
		}
	}
	return true
}

// Run drives the table from the start state through the input string w,
// returning the state index reached. It is used by tests to check
// language-preservation across minimization; the core package never calls
// it itself (the Builder and Minimizer only manipulate tables structurally).
func (t *Table) Run(w []uint8) int {
	state := 0
	for _, s := range w {
		state = t.Rows[state].Next[s]
	}
	return state
}
