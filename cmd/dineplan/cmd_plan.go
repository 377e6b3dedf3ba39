package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spboyer/dineplan/internal/assign"
	"github.com/spboyer/dineplan/internal/config"
	"github.com/spboyer/dineplan/internal/dataset"
	"github.com/spboyer/dineplan/internal/models"
	"github.com/spboyer/dineplan/internal/reporting"
	"github.com/spboyer/dineplan/internal/scoring"
	"github.com/spboyer/dineplan/internal/suggest"
	"github.com/spboyer/dineplan/internal/template"
)

// planOptions holds the flags shared by the plan and suggest commands.
type planOptions struct {
	days            []string
	reservations    string
	minGroupSize    int
	maxGroupSize    int
	oneShot         bool
	diversityWeight float64
	maxNodes        int
	exportPath      string
}

func (o *planOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&o.days, "days", nil, "Day names for the outing (e.g. tuesday,wednesday)")
	cmd.Flags().StringVar(&o.reservations, "reservations", "", "Path to the reservations YAML file")
	cmd.Flags().IntVar(&o.minGroupSize, "min-group-size", config.DefaultMinGroupSize, "Minimum diners per restaurant")
	cmd.Flags().IntVar(&o.maxGroupSize, "max-group-size", config.DefaultMaxGroupSize, "Maximum diners per restaurant")
	cmd.Flags().BoolVar(&o.oneShot, "one-shot", false, "Treat every restaurant/day slot as a candidate, ignoring reservation status")
	cmd.Flags().Float64Var(&o.diversityWeight, "diversity-weight", -1, "Diversity penalty weight (negative = auto-computed, 0 = disabled)")
	cmd.Flags().IntVar(&o.maxNodes, "max-nodes", config.DefaultMaxSolverNodes, "Branch-and-bound node budget")
	_ = cmd.MarkFlagRequired("days")
}

// loadedRun bundles the parsed inputs for one optimization run.
type loadedRun struct {
	diners       []models.Diner
	restaurants  []string
	days         []string
	reservations []models.Reservation
	input        assign.Input
}

func (o *planOptions) load(prefsPath string) (*loadedRun, error) {
	diners, restaurants, err := dataset.LoadPreferences(prefsPath)
	if err != nil {
		return nil, err
	}

	var reservations []models.Reservation
	if o.reservations != "" {
		reservations, err = config.LoadReservations(o.reservations)
		if err != nil {
			return nil, err
		}
	}

	run := &loadedRun{
		diners:       diners,
		restaurants:  restaurants,
		days:         config.NormalizeDays(o.days),
		reservations: reservations,
	}
	run.input = assign.Input{
		Diners:       diners,
		Restaurants:  restaurants,
		Days:         run.days,
		Reservations: reservations,
		MinGroupSize: o.minGroupSize,
		MaxGroupSize: o.maxGroupSize,
		OneShot:      o.oneShot,
		MaxNodes:     o.maxNodes,
	}
	if o.diversityWeight >= 0 {
		w := o.diversityWeight
		run.input.DiversityWeight = &w
	}
	return run, nil
}

func (r *loadedRun) rankSuggestions(plan *models.Plan) []models.Suggestion {
	return suggest.Rank(suggest.Input{
		Diners:       r.diners,
		Restaurants:  r.restaurants,
		Days:         r.days,
		Reservations: r.reservations,
		Scores:       scoring.Normalize(r.diners, r.restaurants),
		Plan:         plan,
		MinGroupSize: r.input.MinGroupSize,
		MaxGroupSize: r.input.MaxGroupSize,
	})
}

func newPlanCommand() *cobra.Command {
	opts := &planOptions{}

	cmd := &cobra.Command{
		Use:   "plan <preferences.csv>",
		Short: "Solve the restaurant assignment for the given preferences",
		Long: `Solve the restaurant assignment for the given preferences.

Reads the survey CSV and (optionally) a reservations YAML file, solves the
assignment, and prints per-day tables. Without --reservations a template
file is written for you to fill in.

Examples:
  dineplan plan preferences.csv --days tuesday,wednesday --reservations reservations.yaml
  dineplan plan preferences.csv --days tuesday,wednesday --one-shot
  dineplan plan preferences.csv --days mon,tue --min-group-size 3 --max-group-size 6`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, args[0], opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&opts.exportPath, "export", "", "Write the assignments to a CSV file")

	return cmd
}

func runPlan(cmd *cobra.Command, prefsPath string, opts *planOptions) error {
	out := cmd.OutOrStdout()

	run, err := opts.load(prefsPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Loaded %d diners and %d restaurants\n\n", len(run.diners), len(run.restaurants))

	if opts.reservations == "" && !opts.oneShot {
		if err := template.WriteReservations(config.DefaultTemplatePath, run.restaurants, run.days); err != nil {
			return err
		}
		fmt.Fprintf(out, "No reservations file provided. Created template at: %s\n", config.DefaultTemplatePath)
		fmt.Fprintln(out, "Edit this file to add your confirmed reservations, then run again.")
		return nil
	}

	plan, err := assign.Solve(run.input)
	if err != nil {
		return err
	}

	fmt.Fprint(out, reporting.FormatPlan(plan, run.days))
	fmt.Fprint(out, reporting.FormatPreferenceSummary(plan, run.diners))
	fmt.Fprintln(out)
	fmt.Fprint(out, reporting.FormatSuggestions(run.rankSuggestions(plan)))

	if opts.exportPath != "" {
		f, err := os.Create(opts.exportPath)
		if err != nil {
			return fmt.Errorf("export: create %s: %w", opts.exportPath, err)
		}
		defer f.Close() //nolint:errcheck
		if err := reporting.WriteAssignmentsCSV(f, plan); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nAssignments exported to %s\n", opts.exportPath)
	}

	return nil
}
