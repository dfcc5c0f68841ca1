package cli

import (
	"errors"
	"fmt"

	"github.com/felixgeelhaar/slotwise/pkg/observability"
	"github.com/spf13/cobra"
)

// ErrUnhealthy is returned when a required component fails its check.
var ErrUnhealthy = errors.New("slotwise is unhealthy")

var healthCmd = &cobra.Command{
	Use:     "health",
	Aliases: []string{"doctor"},
	Short:   "Check storage and classifier health",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.Health == nil {
			return fmt.Errorf("app not initialized")
		}

		results := app.Health.Check(cmd.Context())
		out := cmd.OutOrStdout()
		for _, r := range results {
			fmt.Fprintf(out, "%-12s %-10s %s\n", r.Name, r.Status, r.Message)
		}

		status := observability.OverallStatus(results)
		fmt.Fprintf(out, "\noverall: %s\n", status)
		if status == observability.HealthStatusUnhealthy {
			return ErrUnhealthy
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
