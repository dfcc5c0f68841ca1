package schedule

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/felixgeelhaar/slotwise/adapter/cli"
	"github.com/felixgeelhaar/slotwise/internal/scheduling/application/queries"
	"github.com/spf13/cobra"
)

var errAppNotInitialized = errors.New("schedule commands require an initialized app")

// Cmd is the schedule command group
var Cmd = &cobra.Command{
	Use:   "schedule",
	Short: "Manage your schedule template and place tasks",
	Long: `View and edit the daily schedule template and find the right slot
for a task.`,
}

func init() {
	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(smartCmd)
	Cmd.AddCommand(atCmd)
	Cmd.AddCommand(nextCmd)
	Cmd.AddCommand(categoriesCmd)
	Cmd.AddCommand(importCmd)
	Cmd.AddCommand(exportCmd)
	Cmd.AddCommand(slotCmd)
	Cmd.AddCommand(resetCmd)
}

func requireApp() (*cli.App, error) {
	app := cli.GetApp()
	if app == nil {
		return nil, errAppNotInitialized
	}
	return app, nil
}

func printSlots(out io.Writer, slots []queries.SlotDTO) {
	for i, s := range slots {
		fmt.Fprintf(out, "%2d  %s-%s  %-12s %s\n", i, s.StartTime, s.EndTime, s.Category, s.Description)
		if cli.Verbose() {
			if len(s.Keywords) > 0 {
				fmt.Fprintf(out, "      keywords: %s\n", strings.Join(s.Keywords, ", "))
			}
			if len(s.DaysOfWeek) > 0 {
				fmt.Fprintf(out, "      days: %v\n", s.DaysOfWeek)
			}
			fmt.Fprintf(out, "      priority: %d\n", s.Priority)
		}
	}
}

func printSlot(out io.Writer, s *queries.SlotDTO) {
	fmt.Fprintf(out, "%s  %s-%s", s.Category, s.StartTime, s.EndTime)
	if s.Description != "" {
		fmt.Fprintf(out, "  (%s)", s.Description)
	}
	fmt.Fprintln(out)
}
