package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/beveridges/practice-app/internal/scheduler"
	"github.com/beveridges/practice-app/internal/wire"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run the daily generation daemon",
	Long:  "Extend every routine's occurrences each day at the configured time and print what is due",
	RunE: func(cmd *cobra.Command, args []string) error {
		dailyTime := wire.Config().DailyTime
		if override, _ := cmd.Flags().GetString("time"); override != "" {
			dailyTime = override
		}

		sched := scheduler.New(time.Local)
		if err := sched.ScheduleDaily(dailyTime, runDailyJob); err != nil {
			return err
		}

		// Catch up immediately so a machine that slept through the
		// scheduled time still gets its occurrences.
		runDailyJob()

		sched.Start()
		defer sched.Stop()
		fmt.Printf("Daemon running, generating daily at %s. Ctrl-C to stop.\n", dailyTime)

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		fmt.Println("\nShutting down")
		return nil
	},
}

// runDailyJob extends all routines and prints today's due tasks.
func runDailyJob() {
	ctx := context.Background()

	count, err := wire.RoutineService().GenerateAll(ctx)
	if err != nil {
		log.Printf("daily generation failed: %v", err)
		return
	}
	log.Printf("daily generation created %d occurrence(s)", count)

	due, err := wire.OccurrenceService().ListToday(ctx)
	if err != nil {
		log.Printf("failed to list today's tasks: %v", err)
		return
	}
	if len(due) == 0 {
		log.Printf("nothing due today")
		return
	}
	log.Printf("%d task(s) due today:", len(due))
	for _, occ := range due {
		log.Printf("  %s  %s (%s)", occ.DueDate, occ.TaskType, occ.InstrumentID)
	}
}

func init() {
	daemonCmd.Flags().String("time", "", "Daily run time HH:MM (overrides config)")
}

// DaemonCmd returns the daemon command
func DaemonCmd() *cobra.Command {
	return daemonCmd
}
