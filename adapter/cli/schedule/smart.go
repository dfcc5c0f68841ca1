package schedule

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/slotwise/internal/scheduling/application/commands"
	"github.com/spf13/cobra"
)

var (
	smartDescription string
	smartLLM         bool
)

var smartCmd = &cobra.Command{
	Use:   "smart <title>",
	Short: "Find the best slot for a task",
	Long: `Match a task to a slot by keyword, falling back to LLM classification
when no keyword matches. When the task cannot be placed, the available
categories and slots are listed for manual selection.

Examples:
  slotwise schedule smart "Deploy new API to staging"
  slotwise schedule smart "Weekly sync" --description "prepare slides"
  slotwise schedule smart "Buy groceries" --llm=false`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}

		useLLM := app.LLMFallback
		if cmd.Flags().Changed("llm") {
			useLLM = smartLLM
		}

		result, err := app.SmartScheduleTaskHandler.Handle(cmd.Context(), commands.SmartScheduleTaskCommand{
			UserID:      app.CurrentUserID,
			Title:       strings.Join(args, " "),
			Description: smartDescription,
			UseLLM:      &useLLM,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !result.Resolved {
			fmt.Fprintln(out, "Could not automatically classify task.")
			fmt.Fprintf(out, "\nAvailable categories: %s\n\n", strings.Join(result.AvailableCategories, ", "))
			for _, s := range result.Slots {
				fmt.Fprintf(out, "  %s-%s  %-12s %s\n", s.StartTime, s.EndTime, s.Category, s.Description)
			}
			return nil
		}

		r := result.Result
		fmt.Fprintf(out, "%s  %s-%s\n", r.Category, r.StartTime, r.EndTime)
		fmt.Fprintf(out, "  method:     %s\n", r.MatchMethod)
		fmt.Fprintf(out, "  confidence: %s\n", r.Confidence)
		if r.MatchedKeyword != "" {
			fmt.Fprintf(out, "  keyword:    %s\n", r.MatchedKeyword)
		}
		if result.Description != "" {
			fmt.Fprintf(out, "  slot:       %s\n", result.Description)
		}
		return nil
	},
}

func init() {
	smartCmd.Flags().StringVarP(&smartDescription, "description", "d", "", "task description, also searched for keywords")
	smartCmd.Flags().BoolVar(&smartLLM, "llm", true, "allow LLM classification when no stored schedule decides")
}
