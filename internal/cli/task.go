package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/beveridges/practice-app/internal/ports/primary"
	"github.com/beveridges/practice-app/internal/wire"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "View and complete scheduled tasks",
	Long:  "List generated occurrences and mark them done",
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List scheduled tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		today, _ := cmd.Flags().GetBool("today")
		tomorrow, _ := cmd.Flags().GetBool("tomorrow")
		overdue, _ := cmd.Flags().GetBool("overdue")

		var occurrences []*primary.Occurrence
		var err error
		switch {
		case today:
			occurrences, err = wire.OccurrenceService().ListToday(ctx)
		case tomorrow:
			occurrences, err = wire.OccurrenceService().ListTomorrow(ctx)
		case overdue:
			occurrences, err = wire.OccurrenceService().ListOverdue(ctx)
		default:
			filters := primary.OccurrenceFilters{}
			filters.InstrumentID, _ = cmd.Flags().GetString("instrument")
			filters.TaskType, _ = cmd.Flags().GetString("type")
			filters.DueFrom, _ = cmd.Flags().GetString("from")
			filters.DueTo, _ = cmd.Flags().GetString("to")
			if cmd.Flags().Changed("pending") {
				pending, _ := cmd.Flags().GetBool("pending")
				completed := !pending
				filters.Completed = &completed
			}
			occurrences, err = wire.OccurrenceService().ListOccurrences(ctx, filters)
		}
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}

		if len(occurrences) == 0 {
			fmt.Println("No tasks found")
			return nil
		}

		fmt.Printf("Found %d task(s):\n\n", len(occurrences))
		for _, occ := range occurrences {
			printOccurrence(occ)
		}
		return nil
	},
}

var taskDoneCmd = &cobra.Command{
	Use:   "done [occurrence-id]",
	Short: "Mark a task done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		notes, _ := cmd.Flags().GetString("notes")
		photo, _ := cmd.Flags().GetString("photo")

		occ, err := wire.OccurrenceService().Complete(ctx, primary.CompleteRequest{
			OccurrenceID: args[0],
			Notes:        notes,
			PhotoURL:     photo,
		})
		if err != nil {
			return err
		}

		fmt.Printf("✓ Completed: %s (due %s) at %s\n", occ.TaskType, occ.DueDate, occ.CompletedAt)
		return nil
	},
}

var taskDoneAllCmd = &cobra.Command{
	Use:   "done-all [instrument-id]",
	Short: "Mark all of an instrument's due tasks done",
	Long:  "Complete every pending task of the instrument due on or before today",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		resp, err := wire.OccurrenceService().CompleteAll(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("✓ Completed %d task(s)\n", len(resp.Completed))
		for _, occ := range resp.Completed {
			fmt.Printf("  %s  %s\n", occ.DueDate, occ.TaskType)
		}
		if len(resp.Failed) > 0 {
			fmt.Printf("%d task(s) failed:\n", len(resp.Failed))
			for _, failure := range resp.Failed {
				fmt.Printf("  %s: %v\n", failure.OccurrenceID, failure.Err)
			}
		}
		return nil
	},
}

// printOccurrence renders one occurrence line with a colored status mark.
func printOccurrence(occ *primary.Occurrence) {
	status := color.New(color.FgYellow).Sprint("○")
	if occ.Completed {
		status = color.New(color.FgGreen).Sprint("●")
	}
	fmt.Printf("%s %s  %-14s %-38s %s", status, occ.DueDate, occ.TaskType, occ.InstrumentID, occ.ID)
	if occ.Notes != "" {
		fmt.Printf("  (%s)", occ.Notes)
	}
	fmt.Println()
}

func init() {
	taskListCmd.Flags().Bool("today", false, "Only tasks due today")
	taskListCmd.Flags().Bool("tomorrow", false, "Only tasks due tomorrow")
	taskListCmd.Flags().Bool("overdue", false, "Only pending tasks due before today")
	taskListCmd.Flags().String("instrument", "", "Filter by instrument ID")
	taskListCmd.Flags().StringP("type", "t", "", "Filter by task type")
	taskListCmd.Flags().String("from", "", "Only tasks due on or after this date (YYYY-MM-DD)")
	taskListCmd.Flags().String("to", "", "Only tasks due on or before this date (YYYY-MM-DD)")
	taskListCmd.Flags().Bool("pending", false, "Only pending tasks (use --pending=false for completed)")

	taskDoneCmd.Flags().StringP("notes", "n", "", "Notes to attach to the completion")
	taskDoneCmd.Flags().String("photo", "", "Photo URL to attach to the completion")

	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskDoneAllCmd)
}

// TaskCmd returns the task command
func TaskCmd() *cobra.Command {
	return taskCmd
}
