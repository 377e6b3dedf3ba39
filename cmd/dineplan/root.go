package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dineplan",
		Short: "Dineplan - assign diners to restaurant reservations",
		Long: `Dineplan assigns a team to restaurant reservations across multiple days.

It maximizes aggregate preference satisfaction while honoring dietary
exclusions, table capacity bounds, and one table per diner per day, and it
discourages the same pairs of diners from sharing a table on more than one
day. When confirmed capacity cannot seat everyone, it ranks which
reservation to pursue next.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newPlanCommand())
	cmd.AddCommand(newSuggestCommand())
	cmd.AddCommand(newInitCommand())
	cmd.AddCommand(newCheckCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
