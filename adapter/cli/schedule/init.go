package schedule

import (
	"fmt"

	"github.com/felixgeelhaar/slotwise/internal/scheduling/application/commands"
	"github.com/felixgeelhaar/slotwise/internal/scheduling/domain"
	"github.com/spf13/cobra"
)

var (
	initName  string
	initNoLLM bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Store the built-in template as your default schedule",
	Long: `Save the built-in template as your default schedule so it can be
edited with 'slotwise schedule slot'. An existing schedule with the same
name is replaced.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}

		useLLM := !initNoLLM
		result, err := app.SaveScheduleHandler.Handle(cmd.Context(), commands.SaveScheduleCommand{
			UserID:         app.CurrentUserID,
			Name:           initName,
			Slots:          domain.DefaultSlotSpecs(),
			UseLLMFallback: &useLLM,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Saved schedule %q with %d slots\n", result.Name, result.SlotCount)
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initName, "name", domain.DefaultScheduleName, "schedule name")
	initCmd.Flags().BoolVar(&initNoLLM, "no-llm", false, "disable LLM fallback for this schedule")
	Cmd.AddCommand(initCmd)
}
