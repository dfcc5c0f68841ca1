package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/felixgeelhaar/slotwise/internal/scheduling/domain"
	"github.com/google/uuid"
)

var ErrSlotsRequired = errors.New("slots are required")

// SaveScheduleCommand creates or replaces a schedule, matched by name.
type SaveScheduleCommand struct {
	UserID         uuid.UUID
	Name           string
	Slots          []domain.SlotSpec
	UseLLMFallback *bool
	IsDefault      *bool
}

// SaveScheduleResult contains the result of saving a schedule.
type SaveScheduleResult struct {
	ScheduleID uuid.UUID
	Name       string
	IsDefault  bool
	SlotCount  int
	Created    bool
}

// SaveScheduleHandler handles the SaveScheduleCommand.
type SaveScheduleHandler struct {
	scheduleRepo domain.ScheduleRepository
}

// NewSaveScheduleHandler creates a new SaveScheduleHandler.
func NewSaveScheduleHandler(scheduleRepo domain.ScheduleRepository) *SaveScheduleHandler {
	return &SaveScheduleHandler{scheduleRepo: scheduleRepo}
}

// Handle executes the SaveScheduleCommand.
func (h *SaveScheduleHandler) Handle(ctx context.Context, cmd SaveScheduleCommand) (*SaveScheduleResult, error) {
	if cmd.Slots == nil {
		return nil, ErrSlotsRequired
	}
	slots, err := domain.NewSlots(cmd.Slots)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		name = domain.DefaultScheduleName
	}

	schedule, err := h.scheduleRepo.FindByName(ctx, cmd.UserID, name)
	if err != nil {
		return nil, err
	}
	created := schedule == nil
	if created {
		schedule = domain.NewSchedule(cmd.UserID, name, slots)
	} else {
		schedule.ReplaceSlots(slots)
	}

	schedule.SetUseLLMFallback(cmd.UseLLMFallback == nil || *cmd.UseLLMFallback)
	if cmd.IsDefault == nil || *cmd.IsDefault {
		schedule.MarkDefault()
	} else {
		schedule.ClearDefault()
	}

	if err := h.scheduleRepo.Save(ctx, schedule); err != nil {
		return nil, err
	}

	return &SaveScheduleResult{
		ScheduleID: schedule.ID(),
		Name:       schedule.Name(),
		IsDefault:  schedule.IsDefault(),
		SlotCount:  schedule.SlotCount(),
		Created:    created,
	}, nil
}
