package schedule

import (
	"fmt"

	"github.com/felixgeelhaar/slotwise/internal/scheduling/application/queries"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the categories of the active schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}

		categories, err := app.ListCategoriesHandler.Handle(cmd.Context(), queries.ListCategoriesQuery{UserID: app.CurrentUserID})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, c := range categories {
			fmt.Fprintln(out, c)
		}
		return nil
	},
}
