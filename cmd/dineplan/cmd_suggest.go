package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spboyer/dineplan/internal/assign"
	"github.com/spboyer/dineplan/internal/models"
	"github.com/spboyer/dineplan/internal/reporting"
)

func newSuggestCommand() *cobra.Command {
	opts := &planOptions{}

	cmd := &cobra.Command{
		Use:   "suggest <preferences.csv>",
		Short: "Rank which additional reservation to pursue next",
		Long: `Rank which additional reservation to pursue next.

Solves the assignment with the current reservations, then scores candidate
restaurants for the days where diners went unseated. Ranking is a pure
heuristic over the normalized preferences; it does not re-run the solver per
candidate.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(cmd, args[0], opts)
		},
	}

	opts.register(cmd)
	return cmd
}

func runSuggest(cmd *cobra.Command, prefsPath string, opts *planOptions) error {
	out := cmd.OutOrStdout()

	run, err := opts.load(prefsPath)
	if err != nil {
		return err
	}

	// With no reservations there is nothing to solve; rank as if everyone
	// were unseated.
	var plan *models.Plan
	if len(run.reservations) > 0 || opts.oneShot {
		plan, err = assign.Solve(run.input)
		if err != nil && !errors.Is(err, assign.ErrInfeasible) {
			return err
		}
	}

	fmt.Fprint(out, reporting.FormatSuggestions(run.rankSuggestions(plan)))
	return nil
}
