package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/felixgeelhaar/slotwise/internal/scheduling/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func workSpec() domain.SlotSpec {
	return domain.SlotSpec{Category: "Work", StartTime: "09:00", EndTime: "12:00", Keywords: []string{"deploy"}}
}

func TestSaveScheduleHandler_CreatesWithDefaults(t *testing.T) {
	repo := new(mockScheduleRepo)
	userID := uuid.New()
	repo.On("FindByName", mock.Anything, userID, domain.DefaultScheduleName).Return(nil, nil)

	var saved *domain.Schedule
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Schedule")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.Schedule) }).
		Return(nil)

	handler := NewSaveScheduleHandler(repo)
	result, err := handler.Handle(context.Background(), SaveScheduleCommand{
		UserID: userID,
		Slots:  []domain.SlotSpec{workSpec()},
	})

	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.True(t, result.IsDefault)
	assert.Equal(t, domain.DefaultScheduleName, result.Name)
	assert.Equal(t, 1, result.SlotCount)
	require.NotNil(t, saved)
	assert.True(t, saved.UseLLMFallback())
	assert.Equal(t, saved.ID(), result.ScheduleID)
	repo.AssertExpectations(t)
}

func TestSaveScheduleHandler_UpdatesExistingByName(t *testing.T) {
	repo := new(mockScheduleRepo)
	userID := uuid.New()
	existing := domain.NewSchedule(userID, "Week", domain.DefaultSlots())
	repo.On("FindByName", mock.Anything, userID, "Week").Return(existing, nil)
	repo.On("Save", mock.Anything, existing).Return(nil)

	handler := NewSaveScheduleHandler(repo)
	result, err := handler.Handle(context.Background(), SaveScheduleCommand{
		UserID:         userID,
		Name:           " Week ",
		Slots:          []domain.SlotSpec{workSpec()},
		UseLLMFallback: boolPtr(false),
		IsDefault:      boolPtr(false),
	})

	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Equal(t, existing.ID(), result.ScheduleID)
	assert.Equal(t, 1, existing.SlotCount())
	assert.False(t, existing.UseLLMFallback())
	assert.False(t, existing.IsDefault())
	repo.AssertExpectations(t)
}

func TestSaveScheduleHandler_Validation(t *testing.T) {
	repo := new(mockScheduleRepo)
	handler := NewSaveScheduleHandler(repo)

	_, err := handler.Handle(context.Background(), SaveScheduleCommand{})
	assert.ErrorIs(t, err, ErrSlotsRequired)

	_, err = handler.Handle(context.Background(), SaveScheduleCommand{
		Slots: []domain.SlotSpec{{Category: "Work", StartTime: "9am", EndTime: "10:00"}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidClockTime)

	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSaveScheduleHandler_EmptySlotListIsAllowed(t *testing.T) {
	repo := new(mockScheduleRepo)
	repo.On("FindByName", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	result, err := NewSaveScheduleHandler(repo).Handle(context.Background(), SaveScheduleCommand{
		Slots: []domain.SlotSpec{},
	})

	require.NoError(t, err)
	assert.Zero(t, result.SlotCount)
}

func TestSaveScheduleHandler_SaveError(t *testing.T) {
	repo := new(mockScheduleRepo)
	repo.On("FindByName", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err := NewSaveScheduleHandler(repo).Handle(context.Background(), SaveScheduleCommand{
		Slots: []domain.SlotSpec{workSpec()},
	})

	assert.EqualError(t, err, "disk full")
}
