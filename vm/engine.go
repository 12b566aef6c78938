package vm

// InnerState is one (tape, head, instruction-pointer) configuration of a
// running program. IP == len(instructions) is not a valid running position;
// the engine treats reaching it as halt.
type InnerState struct {
	Cells Tape
	Head  int
	IP    int
}

// Clone returns an independent copy, deep-copying the tape.
func (s InnerState) Clone() InnerState {
	return InnerState{Cells: s.Cells.Clone(), Head: s.Head, IP: s.IP}
}

// key identifies an InnerState by value, for the cycle-detection set. Two
// InnerStates with the same key are guaranteed
// interchangeable for all future execution.
type key struct {
	cells string
	head  int
	ip    int
}

func (s InnerState) key() key {
	return key{cells: s.Cells.key(), head: s.Head, ip: s.IP}
}

// State is one DFA state: either a live configuration (Inner != nil) or the
// terminal sink (Inner == nil, meaning the program halted or was judged
// never to read again). Accepting records whether Accept executed since the
// last input was consumed.
type State struct {
	Inner     *InnerState
	Accepting bool
}

// Engine runs a Program's instructions between successive input events.
type Engine struct {
	program *Program
}

// NewEngine returns an Engine bound to program.
func NewEngine(program *Program) *Engine {
	return &Engine{program: program}
}

// RunBetweenInputs writes input into start's cell under the head, then runs
// instructions from start.IP until the program blocks on the next Read,
// halts by running off the instruction sequence, or a StartLoop decision
// point recurs (detected via a configuration set scoped to this call) — in
// which case it can never reach another Read and the result is the sink.
//
// start is not mutated; RunBetweenInputs operates on its own clone.
func (e *Engine) RunBetweenInputs(start InnerState, input uint8) State {
	state := start.Clone()
	state.Cells.Set(state.Head, input)

	instrs := e.program.Instructions
	n := len(instrs)
	cellCount := e.program.CellCount
	accepting := false
	seen := make(map[key]struct{})

outer:
	for state.IP < n {
		switch instrs[state.IP] {
		case MoveLeft:
			if state.Head == 0 {
				state.Head = cellCount - 1
			} else {
				state.Head--
			}
		case MoveRight:
			if state.Head == cellCount-1 {
				state.Head = 0
			} else {
				state.Head++
			}
		case Increment:
			state.Cells.Set(state.Head, (state.Cells.Get(state.Head)+1)&0x0F)
		case Decrement:
			state.Cells.Set(state.Head, (state.Cells.Get(state.Head)+15)&0x0F)
		case StartLoop:
			if state.Cells.Get(state.Head) == 0 {
				newIP, ok := scanForwardToMatchingEnd(instrs, state.IP, n)
				if !ok {
					break outer
				}
				state.IP = newIP
			} else {
				k := state.key()
				if _, dup := seen[k]; dup {
					break outer
				}
				seen[k] = struct{}{}
			}
		case EndLoop:
			newIP, ok := scanBackToMatchingStart(instrs, state.IP)
			if !ok {
				break outer
			}
			state.IP = newIP
			continue outer
		case Read:
			state.IP++
			return State{Inner: &state, Accepting: accepting}
		case Accept:
			accepting = true
		}
		state.IP++
	}

	return State{Inner: nil, Accepting: accepting}
}

// scanForwardToMatchingEnd scans forward from a StartLoop (at ip, already
// known to be about to be skipped because its cell is zero) to the EndLoop
// that balances it, counting ip itself as the first StartLoop of the nest.
// It returns the matching EndLoop's index, or ok=false if the scan runs off
// the end of the instruction sequence unbalanced.
func scanForwardToMatchingEnd(instrs []Instruction, ip, n int) (int, bool) {
	nesting := 0
	for {
		switch instrs[ip] {
		case StartLoop:
			nesting++
		case EndLoop:
			nesting--
			if nesting == 0 {
				return ip, true
			}
		}
		ip++
		if ip == n {
			return 0, false
		}
	}
}

// scanBackToMatchingStart scans backward from an EndLoop (at ip) to the
// StartLoop that balances it, counting ip itself as the first EndLoop of the
// nest. It returns the matching StartLoop's index, or ok=false if the scan
// runs off the beginning of the instruction sequence unbalanced.
func scanBackToMatchingStart(instrs []Instruction, ip int) (int, bool) {
	nesting := 0
	for {
		switch instrs[ip] {
		case EndLoop:
			nesting++
		case StartLoop:
			nesting--
			if nesting == 0 {
				return ip, true
			}
		}
		if ip == 0 {
			return 0, false
		}
		ip--
	}
}
