// Package bfdfa converts a tape-machine program into the minimized DFA that
// recognizes, over the alphabet {0..15}, every input sequence after which
// the program's distinguished Accept instruction has fired since the last
// input was consumed.
//
// The pipeline is: parse program text into an instruction sequence, build
// the DFA by symbolically executing the program between inputs (subset
// construction), minimize it (Hopcroft partition refinement), and emit it
// as Graphviz DOT.
//
// Basic usage:
//
//	table, err := bfdfa.BuildDOT(",[.,]", 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(table)
package bfdfa

import (
	"github.com/coregx/bfdfa/dfa"
	"github.com/coregx/bfdfa/dot"
	"github.com/coregx/bfdfa/vm"
)

// BuildDOT parses programText against cellCount, builds and minimizes the
// equivalent DFA, and returns its DOT serialization. It returns an error
// only for an invalid cellCount; the program text itself cannot be
// malformed (unrecognized characters in the program text are simply
// discarded).
func BuildDOT(programText string, cellCount int) (string, error) {
	table, err := Build(programText, cellCount)
	if err != nil {
		return "", err
	}
	return dot.Write(table), nil
}

// Build parses programText against cellCount and returns the minimized
// transition table, without serializing it. Exposed for callers (and tests)
// that want to inspect the table directly rather than its DOT rendering.
func Build(programText string, cellCount int) (*dfa.Table, error) {
	program, err := vm.ParseProgram(programText, cellCount)
	if err != nil {
		return nil, err
	}

	table := dfa.Build(program)
	dfa.Minimize(table)
	return table, nil
}
