// Package dot serializes a minimized dfa.Table as Graphviz DOT, compressing
// each edge's input set into maximal contiguous hex runs.
package dot

import (
	"fmt"
	"strings"

	"github.com/coregx/bfdfa/dfa"
)

// Write renders t as a DOT digraph: one edge line per ordered (from, to)
// pair that has at least one input, followed by one peripheries=2 line per
// accepting state. Indentation is four spaces; every line ends in "\n".
func Write(t *dfa.Table) string {
	var b strings.Builder
	b.WriteString("digraph G {\n")

	n := len(t.Rows)
	for from := 0; from < n; from++ {
		edges := t.Rows[from].Next
		for to := 0; to < n; to++ {
			label := edgeLabel(edges, to)
			if label == "" {
				continue
			}
			fmt.Fprintf(&b, "    %d -> %d [label=\"%s\"];\n", from, to, label)
		}
	}

	for id, row := range t.Rows {
		if row.Accepting {
			fmt.Fprintf(&b, "    %d[peripheries=2];\n", id)
		}
	}

	b.WriteString("}\n")
	return b.String()
}

// edgeLabel builds the compressed label for every input on which `edges`
// transitions to `to`, grouping the matching inputs into maximal contiguous
// runs. A run of 1-3 inputs is written digit by digit; a run of 4 or more
// is written "START-END". Runs are concatenated with no separator.
func edgeLabel(edges [dfa.AlphabetSize]int, to int) string {
	var b strings.Builder
	runStart := -1

	flush := func(end int) {
		if runStart < 0 {
			return
		}
		writeRun(&b, runStart, end)
		runStart = -1
	}

	for input := 0; input < dfa.AlphabetSize; input++ {
		if edges[input] == to {
			if runStart < 0 {
				runStart = input
			}
		} else {
			flush(input)
		}
	}
	flush(dfa.AlphabetSize)

	return b.String()
}

// writeRun appends the run [start, end) to b: as bare hex digits if its
// length is under 4, or as a "START-END" range otherwise.
func writeRun(b *strings.Builder, start, end int) {
	if end-start < 4 {
		for n := start; n < end; n++ {
			fmt.Fprintf(b, "%X", n)
		}
		return
	}
	fmt.Fprintf(b, "%X-%X", start, end-1)
}
