package schedule

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/slotwise/internal/scheduling/application/queries"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active schedule template",
	Long: `Display the stored default schedule, or the built-in template when
nothing has been saved yet.

Examples:
  slotwise schedule show
  slotwise schedule show -v`,
	Aliases: []string{"view"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}

		schedule, err := app.GetScheduleHandler.Handle(cmd.Context(), queries.GetScheduleQuery{UserID: app.CurrentUserID})
		if err != nil {
			return fmt.Errorf("failed to get schedule: %w", err)
		}

		out := cmd.OutOrStdout()
		title := schedule.Name
		if schedule.IsTemporary {
			title += " (built-in template, not saved)"
		}
		fmt.Fprintln(out, title)
		fmt.Fprintln(out, strings.Repeat("=", 60))
		printSlots(out, schedule.Slots)
		fmt.Fprintf(out, "\nLLM fallback: %t\n", schedule.UseLLMFallback)
		return nil
	},
}
