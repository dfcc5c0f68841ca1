package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/felixgeelhaar/slotwise/internal/scheduling/application/queries"
	"github.com/felixgeelhaar/slotwise/internal/scheduling/domain"
	"github.com/spf13/cobra"
)

var (
	nextAfter string
	nextNow   bool
)

var nextCmd = &cobra.Command{
	Use:   "next <category>",
	Short: "Show the next slot of a category",
	Long: `Show the next slot of a category. Without --after or --now the first
slot of the category is shown.

Examples:
  slotwise schedule next Marktiz
  slotwise schedule next "Bug Bounty" --after 15:00
  slotwise schedule next Gymlingoo --now`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}

		query := queries.GetNextSlotQuery{
			UserID:   app.CurrentUserID,
			Category: strings.Join(args, " "),
		}
		switch {
		case nextAfter != "":
			after, err := domain.ParseClockTime(nextAfter)
			if err != nil {
				return err
			}
			query.After = &after
		case nextNow:
			now := domain.ClockTimeOf(time.Now())
			query.After = &now
		}

		slot, err := app.GetNextSlotHandler.Handle(cmd.Context(), query)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if slot == nil {
			fmt.Fprintf(out, "No slot for category %q\n", query.Category)
			return nil
		}
		printSlot(out, slot)
		return nil
	},
}

func init() {
	nextCmd.Flags().StringVar(&nextAfter, "after", "", "reference time HH:MM")
	nextCmd.Flags().BoolVar(&nextNow, "now", false, "use the current time as reference")
}
