package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/spboyer/dineplan/internal/models"
	"github.com/spboyer/dineplan/internal/scoring"
)

func newCheckCommand() *cobra.Command {
	opts := &planOptions{}

	cmd := &cobra.Command{
		Use:   "check <preferences.csv>",
		Short: "Validate the inputs without solving",
		Long: `Validate the inputs without solving.

Reports the problems that would stop a plan run before the solver starts:
days with no confirmed reservations, confirmed capacities below the minimum
group size, diners excluded from every restaurant, and a shortfall summary
per day.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], opts)
		},
	}

	opts.register(cmd)
	return cmd
}

func runCheck(cmd *cobra.Command, prefsPath string, opts *planOptions) error {
	out := cmd.OutOrStdout()

	run, err := opts.load(prefsPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Loaded %d diners and %d restaurants\n\n", len(run.diners), len(run.restaurants))

	problems := 0
	report := func(format string, args ...any) {
		problems++
		fmt.Fprintf(out, "  ✗ "+format+"\n", args...)
	}

	if opts.minGroupSize > opts.maxGroupSize {
		report("minimum group size %d exceeds maximum %d", opts.minGroupSize, opts.maxGroupSize)
	}

	capacityByDay := map[string]int{}
	for _, res := range run.reservations {
		if res.Status != models.StatusConfirmed {
			continue
		}
		capacityByDay[res.Day] += res.Capacity
		if res.Capacity < opts.minGroupSize {
			report("reservation %s/%s capacity %d is below minimum group size %d",
				res.Restaurant, res.Day, res.Capacity, opts.minGroupSize)
		}
	}

	for _, day := range run.days {
		capacity := capacityByDay[day]
		if capacity == 0 && !opts.oneShot {
			report("no confirmed reservations for %s", day)
			continue
		}
		if capacity < len(run.diners) && !opts.oneShot {
			fmt.Fprintf(out, "  ! %s seats %d of %d diners (shortfall %d)\n",
				day, capacity, len(run.diners), len(run.diners)-capacity)
		}
	}

	scores := scoring.Normalize(run.diners, run.restaurants)
	for _, diner := range run.diners {
		finite := 0
		for _, s := range scores[diner.Email] {
			if !math.IsInf(s, -1) {
				finite++
			}
		}
		if finite == 0 {
			report("diner %s is excluded from every restaurant", diner.Email)
		}
	}

	fmt.Fprintln(out)
	if problems == 0 {
		fmt.Fprintln(out, "Inputs look good.")
		return nil
	}
	return fmt.Errorf("check found %d problem(s)", problems)
}
