// Command vrpsolve is a demo CLI around the search engine: it builds a
// small synthetic routing instance, runs the local search driver over it,
// and prints the resulting solution's cost and route count.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
