package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beveridges/practice-app/internal/ports/primary"
	"github.com/beveridges/practice-app/internal/wire"
)

var routineCmd = &cobra.Command{
	Use:   "routine",
	Short: "Manage recurring care routines",
	Long:  "Create, list, and delete routines, and materialize their occurrences",
}

var routineAddCmd = &cobra.Command{
	Use:   "add [instrument-id]",
	Short: "Add a routine to an instrument",
	Long:  "Add a recurring routine. Occurrences are generated through the horizon immediately.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		taskType, _ := cmd.Flags().GetString("type")
		frequency, _ := cmd.Flags().GetString("frequency")
		interval, _ := cmd.Flags().GetInt("interval")
		start, _ := cmd.Flags().GetString("start")

		resp, err := wire.RoutineService().CreateRoutine(ctx, primary.CreateRoutineRequest{
			InstrumentID: args[0],
			TaskType:     taskType,
			Frequency:    frequency,
			IntervalDays: interval,
			StartDate:    start,
		})
		if err != nil {
			return fmt.Errorf("failed to create routine: %w", err)
		}

		fmt.Printf("✓ Added routine %s: %s, %s\n", resp.Routine.ID, resp.Routine.TaskType, describeFrequency(resp.Routine))
		fmt.Printf("  Generated %d occurrence(s)\n", len(resp.Generated))
		return nil
	},
}

var routineListCmd = &cobra.Command{
	Use:   "list",
	Short: "List routines",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		instrumentID, _ := cmd.Flags().GetString("instrument")

		routines, err := wire.RoutineService().ListRoutines(ctx, instrumentID)
		if err != nil {
			return fmt.Errorf("failed to list routines: %w", err)
		}

		if len(routines) == 0 {
			fmt.Println("No routines found")
			return nil
		}

		fmt.Printf("Found %d routine(s):\n\n", len(routines))
		for _, routine := range routines {
			fmt.Printf("%-38s %-38s %-14s %-16s from %s\n",
				routine.ID, routine.InstrumentID, routine.TaskType, describeFrequency(routine), routine.StartDate)
		}
		return nil
	},
}

var routineDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a routine and its occurrences",
	Long:  "Delete a routine. Its occurrences are removed; the completion log is kept.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if err := wire.RoutineService().DeleteRoutine(ctx, args[0]); err != nil {
			return err
		}

		fmt.Printf("✓ Deleted routine: %s\n", args[0])
		return nil
	},
}

var routineGenerateCmd = &cobra.Command{
	Use:   "generate [routine-id]",
	Short: "Extend one routine's occurrences through the horizon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		created, err := wire.RoutineService().Generate(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to generate occurrences: %w", err)
		}

		fmt.Printf("✓ Generated %d occurrence(s)\n", len(created))
		for _, occ := range created {
			fmt.Printf("  %s  %s\n", occ.DueDate, occ.TaskType)
		}
		return nil
	},
}

var routineGenerateAllCmd = &cobra.Command{
	Use:   "generate-all",
	Short: "Extend every routine's occurrences through the horizon",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		count, err := wire.RoutineService().GenerateAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to generate occurrences: %w", err)
		}

		fmt.Printf("✓ Generated %d occurrence(s)\n", count)
		return nil
	},
}

// describeFrequency renders a routine's recurrence rule for display.
func describeFrequency(routine *primary.Routine) string {
	switch routine.Frequency {
	case "days":
		if routine.IntervalDays == 1 {
			return "every day"
		}
		return fmt.Sprintf("every %d days", routine.IntervalDays)
	case "weekly":
		return "weekly"
	case "monthly":
		return "monthly"
	default:
		return routine.Frequency
	}
}

func init() {
	routineAddCmd.Flags().StringP("type", "t", "", "Task type (Cleaning, Maintenance, Practice, ...)")
	routineAddCmd.Flags().StringP("frequency", "f", "", "Frequency: days, weekly, or monthly")
	routineAddCmd.Flags().IntP("interval", "i", 0, "Interval in days (frequency=days only)")
	routineAddCmd.Flags().StringP("start", "s", "", "Start date (YYYY-MM-DD)")
	routineAddCmd.MarkFlagRequired("type")
	routineAddCmd.MarkFlagRequired("frequency")
	routineAddCmd.MarkFlagRequired("start")

	routineListCmd.Flags().String("instrument", "", "Filter by instrument ID")

	routineCmd.AddCommand(routineAddCmd)
	routineCmd.AddCommand(routineListCmd)
	routineCmd.AddCommand(routineDeleteCmd)
	routineCmd.AddCommand(routineGenerateCmd)
	routineCmd.AddCommand(routineGenerateAllCmd)
}

// RoutineCmd returns the routine command
func RoutineCmd() *cobra.Command {
	return routineCmd
}
