package schedule

import (
	"fmt"

	"github.com/felixgeelhaar/slotwise/internal/scheduling/application/commands"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the stored schedule and go back to the built-in template",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}

		result, err := app.ResetScheduleHandler.Handle(cmd.Context(), commands.ResetScheduleCommand{UserID: app.CurrentUserID})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Schedule deleted. The built-in template (%d slots) will be used.\n", len(result.Slots))
		return nil
	},
}
