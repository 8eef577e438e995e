package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/beveridges/practice-app/internal/ports/primary"
	"github.com/beveridges/practice-app/internal/wire"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export schedule and history",
	Long:  "Render the schedule as iCalendar, the history as CSV, or a full JSON backup",
}

var exportICSCmd = &cobra.Command{
	Use:   "ics",
	Short: "Export the schedule as an iCalendar document",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		filters := primary.OccurrenceFilters{}
		filters.InstrumentID, _ = cmd.Flags().GetString("instrument")
		filters.TaskType, _ = cmd.Flags().GetString("type")

		out, err := wire.ExportService().ICS(ctx, filters)
		if err != nil {
			return fmt.Errorf("failed to export calendar: %w", err)
		}
		return writeExport(cmd, out)
	},
}

var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Export the occurrence history as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := wire.ExportService().CSV(context.Background())
		if err != nil {
			return fmt.Errorf("failed to export CSV: %w", err)
		}
		return writeExport(cmd, out)
	},
}

var exportJSONCmd = &cobra.Command{
	Use:   "json",
	Short: "Export a full JSON backup",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := wire.ExportService().JSON(context.Background())
		if err != nil {
			return fmt.Errorf("failed to export backup: %w", err)
		}
		return writeExport(cmd, out)
	},
}

// writeExport sends the document to --output when set, else stdout.
func writeExport(cmd *cobra.Command, out string) error {
	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Printf("✓ Wrote %s\n", path)
	return nil
}

func init() {
	exportICSCmd.Flags().String("instrument", "", "Only events for this instrument ID")
	exportICSCmd.Flags().StringP("type", "t", "", "Only events of this task type")

	exportCmd.PersistentFlags().StringP("output", "o", "", "Write to file instead of stdout")

	exportCmd.AddCommand(exportICSCmd)
	exportCmd.AddCommand(exportCSVCmd)
	exportCmd.AddCommand(exportJSONCmd)
}

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	return exportCmd
}
