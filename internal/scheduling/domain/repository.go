package domain

import (
	"context"

	"github.com/google/uuid"
)

// ScheduleRepository defines the interface for schedule template persistence.
// Implementations return nil, nil when nothing is found.
type ScheduleRepository interface {
	// Save persists a schedule (create or update). Saving a default schedule
	// clears the default flag on every other schedule of the same user.
	Save(ctx context.Context, schedule *Schedule) error

	// FindDefault returns the user's default schedule.
	FindDefault(ctx context.Context, userID uuid.UUID) (*Schedule, error)

	// FindByName finds a schedule by its name.
	FindByName(ctx context.Context, userID uuid.UUID, name string) (*Schedule, error)

	// List returns all schedules of a user ordered by name.
	List(ctx context.Context, userID uuid.UUID) ([]*Schedule, error)

	// DeleteDefault removes the user's default schedule(s).
	DeleteDefault(ctx context.Context, userID uuid.UUID) error
}

// LoadActiveSchedule returns the user's stored default schedule. When none is
// stored it returns the built-in template and temporary is true.
func LoadActiveSchedule(ctx context.Context, repo ScheduleRepository, userID uuid.UUID) (schedule *Schedule, temporary bool, err error) {
	schedule, err = repo.FindDefault(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if schedule == nil {
		return DefaultSchedule(userID), true, nil
	}
	return schedule, false, nil
}
