package schedule

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/felixgeelhaar/slotwise/internal/scheduling/application/commands"
	"github.com/felixgeelhaar/slotwise/internal/scheduling/domain"
	"github.com/spf13/cobra"
)

var (
	slotCategory    string
	slotStart       string
	slotEnd         string
	slotKeywords    []string
	slotDescription string
	slotPriority    int
	slotDays        []int
	slotColor       string
)

var slotCmd = &cobra.Command{
	Use:   "slot",
	Short: "Add, update or delete slots of the stored schedule",
	Long: `Edit single slots of the stored default schedule. Slot indexes are the
ones printed by 'slotwise schedule show'. Run 'slotwise schedule init' first
to store the built-in template.`,
}

var slotAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Append a slot",
	Long: `Append a slot to the stored schedule.

Examples:
  slotwise schedule slot add --category Reading --start 21:00 --end 22:00 --keywords book,read
  slotwise schedule slot add --category Late --start 23:00 --end 01:00 --days 5,6`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSlotEdit(cmd, commands.EditSlotCommand{
			Action: commands.SlotActionAdd,
			Slot: domain.SlotSpec{
				Category:    slotCategory,
				StartTime:   slotStart,
				EndTime:     slotEnd,
				Keywords:    slotKeywords,
				Description: slotDescription,
				Priority:    slotPriority,
				DaysOfWeek:  slotDays,
				Color:       slotColor,
			},
		})
	},
}

var slotUpdateCmd = &cobra.Command{
	Use:   "update <index>",
	Short: "Update fields of a slot",
	Long: `Update a slot. Only the flags given are changed.

Examples:
  slotwise schedule slot update 0 --end 13:00
  slotwise schedule slot update 3 --keywords lunch,dinner`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		return runSlotEdit(cmd, commands.EditSlotCommand{
			Action:    commands.SlotActionUpdate,
			SlotIndex: &index,
			Patch:     patchFromFlags(cmd),
		})
	},
}

var slotDeleteCmd = &cobra.Command{
	Use:     "delete <index>",
	Aliases: []string{"rm"},
	Short:   "Delete a slot",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		return runSlotEdit(cmd, commands.EditSlotCommand{
			Action:    commands.SlotActionDelete,
			SlotIndex: &index,
		})
	},
}

func runSlotEdit(cmd *cobra.Command, edit commands.EditSlotCommand) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	edit.UserID = app.CurrentUserID

	result, err := app.EditSlotHandler.Handle(cmd.Context(), edit)
	if errors.Is(err, commands.ErrNoDefaultSchedule) {
		return fmt.Errorf("%w, run 'slotwise schedule init' first", err)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Slot %s, schedule now has %d slots\n", pastTense[edit.Action], len(result.Slots))
	return nil
}

var pastTense = map[commands.SlotAction]string{
	commands.SlotActionAdd:    "added",
	commands.SlotActionUpdate: "updated",
	commands.SlotActionDelete: "deleted",
}

func patchFromFlags(cmd *cobra.Command) domain.SlotPatch {
	var patch domain.SlotPatch
	flags := cmd.Flags()
	if flags.Changed("category") {
		patch.Category = &slotCategory
	}
	if flags.Changed("start") {
		patch.StartTime = &slotStart
	}
	if flags.Changed("end") {
		patch.EndTime = &slotEnd
	}
	if flags.Changed("keywords") {
		patch.Keywords = append([]string{}, slotKeywords...)
	}
	if flags.Changed("description") {
		patch.Description = &slotDescription
	}
	if flags.Changed("priority") {
		patch.Priority = &slotPriority
	}
	if flags.Changed("days") {
		patch.DaysOfWeek = append([]int{}, slotDays...)
	}
	if flags.Changed("color") {
		patch.Color = &slotColor
	}
	return patch
}

func parseIndex(s string) (int, error) {
	index, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid slot index %q", s)
	}
	return index, nil
}

func init() {
	for _, c := range []*cobra.Command{slotAddCmd, slotUpdateCmd} {
		c.Flags().StringVar(&slotCategory, "category", "", "slot category")
		c.Flags().StringVar(&slotStart, "start", "", "start time HH:MM")
		c.Flags().StringVar(&slotEnd, "end", "", "end time HH:MM (earlier than start wraps past midnight)")
		c.Flags().StringSliceVar(&slotKeywords, "keywords", nil, "comma-separated keywords")
		c.Flags().StringVar(&slotDescription, "description", "", "slot description")
		c.Flags().IntVar(&slotPriority, "priority", 0, "priority, higher wins keyword ties")
		c.Flags().IntSliceVar(&slotDays, "days", nil, "weekdays 0-6 (0 = Sunday), empty means every day")
		c.Flags().StringVar(&slotColor, "color", "", "display color")
	}
	_ = slotAddCmd.MarkFlagRequired("category")
	_ = slotAddCmd.MarkFlagRequired("start")
	_ = slotAddCmd.MarkFlagRequired("end")

	slotCmd.AddCommand(slotAddCmd)
	slotCmd.AddCommand(slotUpdateCmd)
	slotCmd.AddCommand(slotDeleteCmd)
}
