package schedule

import (
	"bytes"
	"fmt"
	"os"

	"github.com/felixgeelhaar/slotwise/internal/scheduling/application/queries"
	"github.com/felixgeelhaar/slotwise/internal/scheduling/domain"
	"github.com/felixgeelhaar/slotwise/internal/scheduling/infrastructure/template"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the active schedule as a template",
	Long: `Write the active schedule as YAML, JSON or TOML.

Examples:
  slotwise schedule export
  slotwise schedule export --format toml --output week.toml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}

		format, err := template.ParseFormat(exportFormat)
		if err != nil {
			return err
		}
		if exportOutput != "" && !cmd.Flags().Changed("format") {
			if f, err := template.FormatFromPath(exportOutput); err == nil {
				format = f
			}
		}

		schedule, err := app.GetScheduleHandler.Handle(cmd.Context(), queries.GetScheduleQuery{UserID: app.CurrentUserID})
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if err := template.EncodeDocument(&buf, documentOf(schedule), format); err != nil {
			return err
		}

		if exportOutput == "" {
			_, err = cmd.OutOrStdout().Write(buf.Bytes())
			return err
		}
		if err := os.WriteFile(exportOutput, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d slots to %s\n", len(schedule.Slots), exportOutput)
		return nil
	},
}

func documentOf(s *queries.ScheduleDTO) template.Document {
	isDefault := s.IsDefault
	useLLM := s.UseLLMFallback
	specs := make([]domain.SlotSpec, len(s.Slots))
	for i, slot := range s.Slots {
		specs[i] = domain.SlotSpec{
			Category:    slot.Category,
			StartTime:   slot.StartTime,
			EndTime:     slot.EndTime,
			Keywords:    slot.Keywords,
			Description: slot.Description,
			Priority:    slot.Priority,
			DaysOfWeek:  slot.DaysOfWeek,
			Color:       slot.Color,
		}
	}
	return template.Document{
		Name:           s.Name,
		IsDefault:      &isDefault,
		UseLLMFallback: &useLLM,
		Slots:          specs,
	}
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "yaml", "output format: yaml, json or toml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
}
