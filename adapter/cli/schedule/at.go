package schedule

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/slotwise/internal/scheduling/application/queries"
	"github.com/felixgeelhaar/slotwise/internal/scheduling/domain"
	"github.com/spf13/cobra"
)

var atDay int

var atCmd = &cobra.Command{
	Use:   "at [HH:MM]",
	Short: "Show the slot active at a time of day",
	Long: `Show which slot covers a time of day. Without a time the current time
and weekday are used.

Examples:
  slotwise schedule at
  slotwise schedule at 23:30
  slotwise schedule at 10:00 --day 6`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}

		query := queries.GetActiveSlotQuery{UserID: app.CurrentUserID}
		if len(args) == 1 {
			query.At, err = domain.ParseClockTime(args[0])
			if err != nil {
				return err
			}
		} else {
			now := time.Now()
			query.At = domain.ClockTimeOf(now)
			today := now.Weekday()
			query.Day = &today
		}
		if cmd.Flags().Changed("day") {
			if atDay < 0 || atDay > 6 {
				return fmt.Errorf("%w: %d", domain.ErrInvalidWeekday, atDay)
			}
			day := time.Weekday(atDay)
			query.Day = &day
		}

		slot, err := app.GetActiveSlotHandler.Handle(cmd.Context(), query)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if slot == nil {
			fmt.Fprintf(out, "No slot at %s\n", query.At)
			return nil
		}
		printSlot(out, slot)
		return nil
	},
}

func init() {
	atCmd.Flags().IntVar(&atDay, "day", 0, "weekday 0-6 (0 = Sunday)")
}
