package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/beveridges/practice-app/internal/ports/primary"
	"github.com/beveridges/practice-app/internal/wire"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show completion analytics",
	Long:  "Completion rates, streaks, per-instrument scores, and history breakdowns",
}

var statsRateCmd = &cobra.Command{
	Use:   "rate [weekly|monthly]",
	Short: "Show the trailing completion rate",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		period := primary.PeriodWeekly
		if len(args) == 1 {
			period = primary.Period(args[0])
		}

		rate, err := wire.AnalyticsService().CompletionRate(ctx, period)
		if err != nil {
			return err
		}

		fmt.Printf("Completion rate (%s): %s (%d/%d)\n",
			rate.Period, colorRate(rate.Rate), rate.Completed, rate.Total)
		return nil
	},
}

var statsStreakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show the current daily completion streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		streak, err := wire.AnalyticsService().Streak(ctx)
		if err != nil {
			return err
		}

		if streak == 0 {
			fmt.Println("No active streak")
			return nil
		}
		fmt.Printf("Current streak: %s\n", color.New(color.FgGreen, color.Bold).Sprintf("%d day(s)", streak))
		return nil
	},
}

var statsScoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show per-instrument scores over the trailing 30 days",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		scores, err := wire.AnalyticsService().InstrumentScores(ctx)
		if err != nil {
			return err
		}

		if len(scores) == 0 {
			fmt.Println("No instruments found")
			return nil
		}

		for _, score := range scores {
			fmt.Printf("%-30s %s (%d/%d)\n",
				score.InstrumentName, colorRate(score.Score), score.Completed, score.Total)
		}
		return nil
	},
}

var statsBreakdownCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Show occurrence counts by task type and instrument",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		breakdown, err := wire.AnalyticsService().Breakdown(ctx)
		if err != nil {
			return err
		}

		fmt.Println("By task type:")
		printCounts(breakdown.ByType)
		fmt.Println()
		fmt.Println("By instrument:")
		printCounts(breakdown.ByInstrument)
		return nil
	},
}

// colorRate renders a percentage green, yellow, or red by band.
func colorRate(rate int) string {
	switch {
	case rate >= 80:
		return color.New(color.FgGreen, color.Bold).Sprintf("%d%%", rate)
	case rate >= 50:
		return color.New(color.FgYellow).Sprintf("%d%%", rate)
	default:
		return color.New(color.FgRed).Sprintf("%d%%", rate)
	}
}

func printCounts(counts map[string]int) {
	if len(counts) == 0 {
		fmt.Println("  (none)")
		return
	}
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("  %-30s %d\n", key, counts[key])
	}
}

func init() {
	statsCmd.AddCommand(statsRateCmd)
	statsCmd.AddCommand(statsStreakCmd)
	statsCmd.AddCommand(statsScoresCmd)
	statsCmd.AddCommand(statsBreakdownCmd)
}

// StatsCmd returns the stats command
func StatsCmd() *cobra.Command {
	return statsCmd
}
