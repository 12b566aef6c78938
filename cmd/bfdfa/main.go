// Command bfdfa converts a tape-machine program into its minimized
// input-DFA and prints the DFA as Graphviz DOT.
//
// Usage:
//
//	bfdfa <cell-count> <program-text>
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/coregx/bfdfa"
	"github.com/projectdiscovery/gologger"
)

func main() {
	if len(os.Args) != 3 {
		gologger.Fatal().Msgf("usage: %s <cell-count> <program-text>", os.Args[0])
	}

	cellCount, err := strconv.Atoi(os.Args[1])
	if err != nil {
		gologger.Fatal().Msgf("invalid cell count: %v", err)
	}

	table, err := bfdfa.BuildDOT(os.Args[2], cellCount)
	if err != nil {
		gologger.Fatal().Msgf("%v", err)
	}

	// The DOT grammar is byte-exact; gologger's level-prefixed Print would
	// corrupt it, so the result goes straight to stdout.
	fmt.Print(table)
}
