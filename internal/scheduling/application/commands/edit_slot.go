package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/felixgeelhaar/slotwise/internal/scheduling/domain"
	"github.com/google/uuid"
)

var (
	ErrNoDefaultSchedule = errors.New("no default schedule found")
	ErrInvalidSlotAction = errors.New("invalid action, use 'add', 'update', or 'delete'")
)

// SlotAction is an edit applied to a single slot of the default schedule.
type SlotAction string

const (
	SlotActionAdd    SlotAction = "add"
	SlotActionUpdate SlotAction = "update"
	SlotActionDelete SlotAction = "delete"
)

// EditSlotCommand edits one slot of the user's default schedule.
type EditSlotCommand struct {
	UserID uuid.UUID
	Action SlotAction
	// SlotIndex is required for update and delete.
	SlotIndex *int
	// Slot is the new slot for add.
	Slot domain.SlotSpec
	// Patch is merged over the existing slot for update.
	Patch domain.SlotPatch
}

// EditSlotResult contains the schedule after the edit.
type EditSlotResult struct {
	ScheduleID uuid.UUID
	Slots      []domain.SlotSpec
}

// EditSlotHandler handles the EditSlotCommand.
type EditSlotHandler struct {
	scheduleRepo domain.ScheduleRepository
}

// NewEditSlotHandler creates a new EditSlotHandler.
func NewEditSlotHandler(scheduleRepo domain.ScheduleRepository) *EditSlotHandler {
	return &EditSlotHandler{scheduleRepo: scheduleRepo}
}

// Handle executes the EditSlotCommand.
func (h *EditSlotHandler) Handle(ctx context.Context, cmd EditSlotCommand) (*EditSlotResult, error) {
	schedule, err := h.scheduleRepo.FindDefault(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, ErrNoDefaultSchedule
	}

	switch {
	case cmd.Action == SlotActionAdd:
		slot, err := domain.NewSlot(cmd.Slot)
		if err != nil {
			return nil, err
		}
		schedule.AddSlot(slot)
	case cmd.Action == SlotActionUpdate && cmd.SlotIndex != nil:
		if _, err := schedule.UpdateSlot(*cmd.SlotIndex, cmd.Patch); err != nil {
			return nil, fmt.Errorf("update slot %d: %w", *cmd.SlotIndex, err)
		}
	case cmd.Action == SlotActionDelete && cmd.SlotIndex != nil:
		if err := schedule.RemoveSlot(*cmd.SlotIndex); err != nil {
			return nil, fmt.Errorf("delete slot %d: %w", *cmd.SlotIndex, err)
		}
	default:
		return nil, ErrInvalidSlotAction
	}

	if err := h.scheduleRepo.Save(ctx, schedule); err != nil {
		return nil, err
	}

	return &EditSlotResult{
		ScheduleID: schedule.ID(),
		Slots:      domain.SlotSpecs(schedule.Slots()),
	}, nil
}
