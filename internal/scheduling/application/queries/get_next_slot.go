package queries

import (
	"context"

	"github.com/felixgeelhaar/slotwise/internal/scheduling/domain"
	"github.com/google/uuid"
)

// GetNextSlotQuery asks for the next slot of a category.
type GetNextSlotQuery struct {
	UserID   uuid.UUID
	Category string
	// After is the reference time; nil returns the first slot of the category.
	After *domain.ClockTime
}

// GetNextSlotHandler handles the GetNextSlotQuery.
type GetNextSlotHandler struct {
	scheduleRepo domain.ScheduleRepository
}

// NewGetNextSlotHandler creates a new GetNextSlotHandler.
func NewGetNextSlotHandler(scheduleRepo domain.ScheduleRepository) *GetNextSlotHandler {
	return &GetNextSlotHandler{scheduleRepo: scheduleRepo}
}

// Handle returns the next slot, or nil when the category has no slot.
func (h *GetNextSlotHandler) Handle(ctx context.Context, query GetNextSlotQuery) (*SlotDTO, error) {
	schedule, _, err := domain.LoadActiveSchedule(ctx, h.scheduleRepo, query.UserID)
	if err != nil {
		return nil, err
	}

	slot, ok := domain.GetNextAvailableSlot(query.Category, schedule.Slots(), query.After)
	if !ok {
		return nil, nil
	}
	dto := toSlotDTO(slot)
	return &dto, nil
}
