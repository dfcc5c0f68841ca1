package queries

import (
	"context"

	"github.com/felixgeelhaar/slotwise/internal/scheduling/domain"
	"github.com/google/uuid"
)

// ListCategoriesQuery lists the categories of the active schedule.
type ListCategoriesQuery struct {
	UserID uuid.UUID
}

// ListCategoriesHandler handles the ListCategoriesQuery.
type ListCategoriesHandler struct {
	scheduleRepo domain.ScheduleRepository
}

// NewListCategoriesHandler creates a new ListCategoriesHandler.
func NewListCategoriesHandler(scheduleRepo domain.ScheduleRepository) *ListCategoriesHandler {
	return &ListCategoriesHandler{scheduleRepo: scheduleRepo}
}

// Handle executes the ListCategoriesQuery.
func (h *ListCategoriesHandler) Handle(ctx context.Context, query ListCategoriesQuery) ([]string, error) {
	schedule, _, err := domain.LoadActiveSchedule(ctx, h.scheduleRepo, query.UserID)
	if err != nil {
		return nil, err
	}
	return domain.Categories(schedule.Slots()), nil
}
