package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/beveridges/practice-app/internal/cli"
	"github.com/beveridges/practice-app/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "practice-app",
		Short:   "practice-app - recurring instrument care and practice tracking",
		Version: version.String(),
		Long: `practice-app tracks recurring care tasks for musical instruments.
Routines generate dated occurrences ahead of time; completing them feeds
streaks, completion rates, and per-instrument scores.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InstrumentCmd())
	rootCmd.AddCommand(cli.RoutineCmd())
	rootCmd.AddCommand(cli.TaskCmd())
	rootCmd.AddCommand(cli.StatsCmd())
	rootCmd.AddCommand(cli.ExportCmd())
	rootCmd.AddCommand(cli.DaemonCmd())

	// Developer tools
	rootCmd.AddCommand(cli.DevCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
