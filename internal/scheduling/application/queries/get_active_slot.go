package queries

import (
	"context"
	"time"

	"github.com/felixgeelhaar/slotwise/internal/scheduling/domain"
	"github.com/google/uuid"
)

// GetActiveSlotQuery asks which slot covers a time of day.
type GetActiveSlotQuery struct {
	UserID uuid.UUID
	At     domain.ClockTime
	// Day restricts matching to slots active on that weekday. Nil ignores
	// slot day restrictions.
	Day *time.Weekday
}

// GetActiveSlotHandler handles the GetActiveSlotQuery.
type GetActiveSlotHandler struct {
	scheduleRepo domain.ScheduleRepository
}

// NewGetActiveSlotHandler creates a new GetActiveSlotHandler.
func NewGetActiveSlotHandler(scheduleRepo domain.ScheduleRepository) *GetActiveSlotHandler {
	return &GetActiveSlotHandler{scheduleRepo: scheduleRepo}
}

// Handle returns the active slot, or nil when no slot covers the time.
func (h *GetActiveSlotHandler) Handle(ctx context.Context, query GetActiveSlotQuery) (*SlotDTO, error) {
	schedule, _, err := domain.LoadActiveSchedule(ctx, h.scheduleRepo, query.UserID)
	if err != nil {
		return nil, err
	}

	slot, ok := domain.GetSlotForTime(query.At, schedule.Slots(), query.Day)
	if !ok {
		return nil, nil
	}
	dto := toSlotDTO(slot)
	return &dto, nil
}
