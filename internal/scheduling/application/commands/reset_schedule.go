package commands

import (
	"context"

	"github.com/felixgeelhaar/slotwise/internal/scheduling/domain"
	"github.com/google/uuid"
)

// ResetScheduleCommand drops the user's default schedule so the built-in
// template is used again.
type ResetScheduleCommand struct {
	UserID uuid.UUID
}

// ResetScheduleResult contains the template now in effect.
type ResetScheduleResult struct {
	Slots []domain.SlotSpec
}

// ResetScheduleHandler handles the ResetScheduleCommand.
type ResetScheduleHandler struct {
	scheduleRepo domain.ScheduleRepository
}

// NewResetScheduleHandler creates a new ResetScheduleHandler.
func NewResetScheduleHandler(scheduleRepo domain.ScheduleRepository) *ResetScheduleHandler {
	return &ResetScheduleHandler{scheduleRepo: scheduleRepo}
}

// Handle executes the ResetScheduleCommand.
func (h *ResetScheduleHandler) Handle(ctx context.Context, cmd ResetScheduleCommand) (*ResetScheduleResult, error) {
	if err := h.scheduleRepo.DeleteDefault(ctx, cmd.UserID); err != nil {
		return nil, err
	}
	return &ResetScheduleResult{Slots: domain.DefaultSlotSpecs()}, nil
}
