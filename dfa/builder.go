package dfa

import "github.com/coregx/bfdfa/vm"

// stateIdent identifies a dfa.State (in the subset-construction sense of
// vm.State) by value, so the builder can recognize a state it has already
// assigned an index to. A sink carries no tape identity; all sinks with the
// same Accepting flag collapse onto one ident regardless of which run
// produced them, since the only observable property of a blocked run is its
// Accepting flag.
type stateIdent struct {
	isSink    bool
	cells     string
	head      int
	ip        int
	accepting bool
}

func identOf(s vm.State) stateIdent {
	if s.Inner == nil {
		return stateIdent{isSink: true, accepting: s.Accepting}
	}
	return stateIdent{
		cells:     string(s.Inner.Cells),
		head:      s.Inner.Head,
		ip:        s.Inner.IP,
		accepting: s.Accepting,
	}
}

// Build runs the subset-construction driver: it seeds the exploration with
// the pre-first-input run (cells zeroed, head 0, ip 0, input 0), then pops
// states off a work stack, driving the engine with all 16 inputs at each
// frontier state, until every reachable DFA state has a row. Input order at
// each state is ascending 0..15, so two calls to Build on the same program
// produce byte-identical tables.
func Build(program *vm.Program) *Table {
	engine := vm.NewEngine(program)

	ids := make(map[stateIdent]int)
	table := &Table{}

	start := engine.RunBetweenInputs(vm.InnerState{
		Cells: vm.NewTape(program.CellCount),
		Head:  0,
		IP:    0,
	}, 0)

	startIdent := identOf(start)
	ids[startIdent] = 0
	table.Rows = append(table.Rows, Row{Accepting: start.Accepting})

	stack := []vm.State{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		currentID := ids[identOf(current)]

		if current.Inner == nil {
			row := Row{Accepting: current.Accepting}
			for s := range row.Next {
				row.Next[s] = currentID
			}
			table.Rows[currentID] = row
			continue
		}

		for input := 0; input < AlphabetSize; input++ {
			next := engine.RunBetweenInputs(*current.Inner, uint8(input))
			nextIdent := identOf(next)

			nextID, known := ids[nextIdent]
			if !known {
				nextID = len(table.Rows)
				ids[nextIdent] = nextID
				table.Rows = append(table.Rows, Row{Accepting: next.Accepting})
				stack = append(stack, next)
			}
			table.Rows[currentID].Next[input] = nextID
		}
	}

	return table
}
