package queries

import (
	"context"

	"github.com/felixgeelhaar/slotwise/internal/scheduling/domain"
	"github.com/google/uuid"
)

// SlotDTO is a data transfer object for schedule slots.
type SlotDTO struct {
	Category    string
	StartTime   string
	EndTime     string
	Keywords    []string
	Description string
	Priority    int
	DaysOfWeek  []int
	Color       string
}

// ScheduleDTO is a data transfer object for schedules.
type ScheduleDTO struct {
	ID             uuid.UUID
	Name           string
	IsDefault      bool
	UseLLMFallback bool
	// IsTemporary marks the built-in template served while nothing is stored.
	IsTemporary bool
	Slots       []SlotDTO
}

// GetScheduleQuery contains the parameters for getting a schedule.
type GetScheduleQuery struct {
	UserID uuid.UUID
}

// GetScheduleHandler handles the GetScheduleQuery.
type GetScheduleHandler struct {
	scheduleRepo domain.ScheduleRepository
}

// NewGetScheduleHandler creates a new GetScheduleHandler.
func NewGetScheduleHandler(scheduleRepo domain.ScheduleRepository) *GetScheduleHandler {
	return &GetScheduleHandler{scheduleRepo: scheduleRepo}
}

// Handle executes the GetScheduleQuery.
func (h *GetScheduleHandler) Handle(ctx context.Context, query GetScheduleQuery) (*ScheduleDTO, error) {
	schedule, temporary, err := domain.LoadActiveSchedule(ctx, h.scheduleRepo, query.UserID)
	if err != nil {
		return nil, err
	}

	dto := &ScheduleDTO{
		Name:           schedule.Name(),
		IsDefault:      schedule.IsDefault(),
		UseLLMFallback: schedule.UseLLMFallback(),
		IsTemporary:    temporary,
		Slots:          toSlotDTOs(schedule.Slots()),
	}
	if !temporary {
		dto.ID = schedule.ID()
	}
	return dto, nil
}

func toSlotDTO(slot domain.Slot) SlotDTO {
	spec := slot.Spec()
	return SlotDTO{
		Category:    spec.Category,
		StartTime:   spec.StartTime,
		EndTime:     spec.EndTime,
		Keywords:    spec.Keywords,
		Description: spec.Description,
		Priority:    spec.Priority,
		DaysOfWeek:  spec.DaysOfWeek,
		Color:       spec.Color,
	}
}

func toSlotDTOs(slots []domain.Slot) []SlotDTO {
	dtos := make([]SlotDTO, len(slots))
	for i, s := range slots {
		dtos[i] = toSlotDTO(s)
	}
	return dtos
}
