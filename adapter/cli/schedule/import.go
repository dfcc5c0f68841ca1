package schedule

import (
	"fmt"

	"github.com/felixgeelhaar/slotwise/internal/scheduling/application/commands"
	"github.com/spf13/cobra"
)

var importName string

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a schedule template from YAML, JSON or TOML",
	Long: `Import a schedule template file. The format is taken from the file
extension (.yaml, .yml, .json, .toml). A schedule with the same name is
replaced.

Examples:
  slotwise schedule import week.yaml
  slotwise schedule import week.toml --name "Summer"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}

		result, err := app.ImportScheduleHandler.Handle(cmd.Context(), commands.ImportScheduleCommand{
			UserID: app.CurrentUserID,
			Path:   args[0],
			Name:   importName,
		})
		if err != nil {
			return err
		}

		verb := "Updated"
		if result.Created {
			verb = "Created"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s schedule %q with %d slots\n", verb, result.Name, result.SlotCount)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importName, "name", "", "override the schedule name from the file")
}
