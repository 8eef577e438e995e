// Package cli contains the cobra subcommands.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beveridges/practice-app/internal/ports/primary"
	"github.com/beveridges/practice-app/internal/wire"
)

var instrumentCmd = &cobra.Command{
	Use:   "instrument",
	Short: "Manage instruments",
	Long:  "Create, list, show, update, and delete the instruments routines attach to",
}

var instrumentAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new instrument",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		category, _ := cmd.Flags().GetString("category")
		notes, _ := cmd.Flags().GetString("notes")

		instrument, err := wire.InstrumentService().CreateInstrument(ctx, primary.CreateInstrumentRequest{
			Name:     args[0],
			Category: category,
			Notes:    notes,
		})
		if err != nil {
			return fmt.Errorf("failed to create instrument: %w", err)
		}

		fmt.Printf("✓ Added instrument %s: %s (%s)\n", instrument.ID, instrument.Name, instrument.Category)
		return nil
	},
}

var instrumentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List instruments",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		category, _ := cmd.Flags().GetString("category")

		instruments, err := wire.InstrumentService().ListInstruments(ctx, primary.InstrumentFilters{Category: category})
		if err != nil {
			return fmt.Errorf("failed to list instruments: %w", err)
		}

		if len(instruments) == 0 {
			fmt.Println("No instruments found")
			return nil
		}

		fmt.Printf("Found %d instrument(s):\n\n", len(instruments))
		for _, instrument := range instruments {
			fmt.Printf("%-38s %s [%s]", instrument.ID, instrument.Name, instrument.Category)
			if instrument.Notes != "" {
				fmt.Printf(" - %s", instrument.Notes)
			}
			fmt.Println()
		}
		return nil
	},
}

var instrumentShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show instrument details and its routines",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		instrument, err := wire.InstrumentService().GetInstrument(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Instrument: %s (%s)\n", instrument.Name, instrument.ID)
		fmt.Printf("Category: %s\n", instrument.Category)
		if instrument.Notes != "" {
			fmt.Printf("Notes: %s\n", instrument.Notes)
		}
		fmt.Printf("Created: %s\n", instrument.CreatedAt)
		fmt.Println()

		routines, err := wire.RoutineService().ListRoutines(ctx, instrument.ID)
		if err != nil {
			return fmt.Errorf("failed to list routines: %w", err)
		}

		if len(routines) == 0 {
			fmt.Println("No routines for this instrument")
			return nil
		}

		fmt.Printf("Routines (%d):\n", len(routines))
		for _, routine := range routines {
			fmt.Printf("  %-38s %-14s %s\n", routine.ID, routine.TaskType, describeFrequency(routine))
		}
		return nil
	},
}

var instrumentUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update an instrument's name, category, or notes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		current, err := wire.InstrumentService().GetInstrument(ctx, args[0])
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		category, _ := cmd.Flags().GetString("category")
		notes, _ := cmd.Flags().GetString("notes")
		if name == "" {
			name = current.Name
		}
		if category == "" {
			category = current.Category
		}
		if !cmd.Flags().Changed("notes") {
			notes = current.Notes
		}

		updated, err := wire.InstrumentService().UpdateInstrument(ctx, primary.UpdateInstrumentRequest{
			InstrumentID: args[0],
			Name:         name,
			Category:     category,
			Notes:        notes,
		})
		if err != nil {
			return fmt.Errorf("failed to update instrument: %w", err)
		}

		fmt.Printf("✓ Updated instrument %s: %s (%s)\n", updated.ID, updated.Name, updated.Category)
		return nil
	},
}

var instrumentDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete an instrument and its schedule",
	Long:  "Delete an instrument. Its routines and occurrences are removed; the completion log is kept.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if err := wire.InstrumentService().DeleteInstrument(ctx, args[0]); err != nil {
			return err
		}

		fmt.Printf("✓ Deleted instrument: %s\n", args[0])
		return nil
	},
}

func init() {
	instrumentAddCmd.Flags().StringP("category", "c", "", "Category (Woodwind, Brass, Plucked string, Bowed string, Percussion, Storage/Case, Other)")
	instrumentAddCmd.Flags().StringP("notes", "n", "", "Free-form notes")

	instrumentListCmd.Flags().StringP("category", "c", "", "Filter by category")

	instrumentUpdateCmd.Flags().String("name", "", "New name")
	instrumentUpdateCmd.Flags().StringP("category", "c", "", "New category")
	instrumentUpdateCmd.Flags().StringP("notes", "n", "", "New notes")

	instrumentCmd.AddCommand(instrumentAddCmd)
	instrumentCmd.AddCommand(instrumentListCmd)
	instrumentCmd.AddCommand(instrumentShowCmd)
	instrumentCmd.AddCommand(instrumentUpdateCmd)
	instrumentCmd.AddCommand(instrumentDeleteCmd)
}

// InstrumentCmd returns the instrument command
func InstrumentCmd() *cobra.Command {
	return instrumentCmd
}
