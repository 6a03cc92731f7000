// Command districts grows random districting partitions over a voter grid
// and optionally random-walks them with the contiguity-guarded mutator.
//
// Examples:
//
//	districts build --width 12 --height 8 --districts 3 --seed 7
//	districts walk --config run.yaml --steps 500 --strict
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
