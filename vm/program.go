package vm

// Program is an immutable pair of an instruction sequence and the cell
// count its tape rings over. Programs are safe to share across goroutines:
// nothing in this package mutates a Program after ParseProgram returns it.
type Program struct {
	Instructions []Instruction
	CellCount    int
}

// ParseProgram filters program text down to its instruction sequence,
// discarding every byte outside the eight-character syntax (whitespace,
// comments, anything), and pairs it with cellCount.
//
// ParseProgram is the one validated entry point into this package: it
// rejects a non-positive cellCount. An instruction sequence that ends up
// empty after filtering is not an error; it simply builds a DFA whose start
// state is also its only sink.
func ParseProgram(text string, cellCount int) (*Program, error) {
	if cellCount < 1 {
		return nil, invalidCellCountError(cellCount)
	}

	instrs := make([]Instruction, 0, len(text))
	for i := 0; i < len(text); i++ {
		if in, ok := instructionFromByte(text[i]); ok {
			instrs = append(instrs, in)
		}
	}

	return &Program{
		Instructions: instrs,
		CellCount:    cellCount,
	}, nil
}
