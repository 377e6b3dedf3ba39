package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/spboyer/dineplan/internal/config"
	"github.com/spboyer/dineplan/internal/dataset"
	"github.com/spboyer/dineplan/internal/template"
	"github.com/spboyer/dineplan/internal/wizard"
)

func newInitCommand() *cobra.Command {
	var (
		interactive bool
		days        []string
		output      string
	)

	cmd := &cobra.Command{
		Use:   "init <preferences.csv>",
		Short: "Create a reservations file for the given preferences",
		Long: `Create a reservations file for the given preferences.

Writes a commented YAML template listing the restaurants from the survey.
Use --interactive to run a guided wizard that collects reservation entries
instead of writing the bare template.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return initCommandE(cmd, args[0], interactive, days, output)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Run the guided reservation wizard")
	cmd.Flags().StringSliceVar(&days, "days", nil, "Day names for the outing")
	cmd.Flags().StringVar(&output, "output", config.DefaultTemplatePath, "Path for the reservations file")
	_ = cmd.MarkFlagRequired("days")

	return cmd
}

func initCommandE(cmd *cobra.Command, prefsPath string, interactive bool, days []string, output string) error {
	out := cmd.OutOrStdout()

	_, restaurants, err := dataset.LoadPreferences(prefsPath)
	if err != nil {
		return err
	}
	normalized := config.NormalizeDays(days)

	if !interactive {
		if err := template.WriteReservations(output, restaurants, normalized); err != nil {
			return err
		}
		fmt.Fprintf(out, "Created reservations template at %s\n", output)
		return nil
	}

	reservations, err := wizard.RunReservationWizard(cmd.InOrStdin(), out, restaurants, normalized)
	if err != nil {
		return err
	}

	content, err := yaml.Marshal(config.ReservationsFile{Reservations: reservations})
	if err != nil {
		return fmt.Errorf("reservations: marshal: %w", err)
	}
	if err := os.WriteFile(output, content, 0o644); err != nil {
		return fmt.Errorf("reservations: write %s: %w", output, err)
	}
	fmt.Fprintf(out, "Wrote %d reservations to %s\n", len(reservations), output)
	return nil
}
