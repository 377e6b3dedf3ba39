package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spboyer/dineplan/internal/assign"
)

// Exit codes for different failure modes
const (
	ExitSuccess    = 0 // A plan was produced
	ExitInfeasible = 1 // No feasible assignment exists for the given input
	ExitError      = 2 // Configuration or runtime error
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		if errors.Is(err, assign.ErrInfeasible) {
			os.Exit(ExitInfeasible)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
