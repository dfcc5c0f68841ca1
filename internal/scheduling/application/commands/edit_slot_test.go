package commands

import (
	"context"
	"testing"

	"github.com/felixgeelhaar/slotwise/internal/scheduling/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedDefault(userID uuid.UUID) *domain.Schedule {
	return domain.NewSchedule(userID, "", []domain.Slot{
		domain.MustNewSlot(workSpec()),
		domain.MustNewSlot(domain.SlotSpec{Category: "Break", StartTime: "12:00", EndTime: "13:00"}),
	})
}

func TestEditSlotHandler_NoDefaultSchedule(t *testing.T) {
	repo := new(mockScheduleRepo)
	repo.On("FindDefault", mock.Anything, mock.Anything).Return(nil, nil)

	_, err := NewEditSlotHandler(repo).Handle(context.Background(), EditSlotCommand{Action: SlotActionAdd, Slot: workSpec()})

	assert.ErrorIs(t, err, ErrNoDefaultSchedule)
}

func TestEditSlotHandler_Add(t *testing.T) {
	repo := new(mockScheduleRepo)
	userID := uuid.New()
	schedule := storedDefault(userID)
	repo.On("FindDefault", mock.Anything, userID).Return(schedule, nil)
	repo.On("Save", mock.Anything, schedule).Return(nil)

	result, err := NewEditSlotHandler(repo).Handle(context.Background(), EditSlotCommand{
		UserID: userID,
		Action: SlotActionAdd,
		Slot:   domain.SlotSpec{Category: "Sleep", StartTime: "23:00", EndTime: "07:00"},
	})

	require.NoError(t, err)
	require.Len(t, result.Slots, 3)
	assert.Equal(t, "Sleep", result.Slots[2].Category)
	repo.AssertExpectations(t)
}

func TestEditSlotHandler_UpdateMerges(t *testing.T) {
	repo := new(mockScheduleRepo)
	userID := uuid.New()
	schedule := storedDefault(userID)
	repo.On("FindDefault", mock.Anything, userID).Return(schedule, nil)
	repo.On("Save", mock.Anything, schedule).Return(nil)

	result, err := NewEditSlotHandler(repo).Handle(context.Background(), EditSlotCommand{
		UserID:    userID,
		Action:    SlotActionUpdate,
		SlotIndex: intPtr(0),
		Patch:     domain.SlotPatch{EndTime: strPtr("13:30")},
	})

	require.NoError(t, err)
	assert.Equal(t, "Work", result.Slots[0].Category)
	assert.Equal(t, "09:00", result.Slots[0].StartTime)
	assert.Equal(t, "13:30", result.Slots[0].EndTime)
	assert.Equal(t, []string{"deploy"}, result.Slots[0].Keywords)
}

func TestEditSlotHandler_Delete(t *testing.T) {
	repo := new(mockScheduleRepo)
	userID := uuid.New()
	schedule := storedDefault(userID)
	repo.On("FindDefault", mock.Anything, userID).Return(schedule, nil)
	repo.On("Save", mock.Anything, schedule).Return(nil)

	result, err := NewEditSlotHandler(repo).Handle(context.Background(), EditSlotCommand{
		UserID:    userID,
		Action:    SlotActionDelete,
		SlotIndex: intPtr(0),
	})

	require.NoError(t, err)
	require.Len(t, result.Slots, 1)
	assert.Equal(t, "Break", result.Slots[0].Category)
}

func TestEditSlotHandler_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cmd     EditSlotCommand
		wantErr error
	}{
		{
			name:    "update out of range",
			cmd:     EditSlotCommand{Action: SlotActionUpdate, SlotIndex: intPtr(5)},
			wantErr: domain.ErrSlotIndexOutOfRange,
		},
		{
			name:    "delete negative index",
			cmd:     EditSlotCommand{Action: SlotActionDelete, SlotIndex: intPtr(-1)},
			wantErr: domain.ErrSlotIndexOutOfRange,
		},
		{
			name:    "update without index",
			cmd:     EditSlotCommand{Action: SlotActionUpdate},
			wantErr: ErrInvalidSlotAction,
		},
		{
			name:    "unknown action",
			cmd:     EditSlotCommand{Action: "move", SlotIndex: intPtr(0)},
			wantErr: ErrInvalidSlotAction,
		},
		{
			name:    "invalid new slot",
			cmd:     EditSlotCommand{Action: SlotActionAdd, Slot: domain.SlotSpec{StartTime: "09:00", EndTime: "10:00"}},
			wantErr: domain.ErrEmptyCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockScheduleRepo)
			repo.On("FindDefault", mock.Anything, mock.Anything).Return(storedDefault(uuid.Nil), nil)

			_, err := NewEditSlotHandler(repo).Handle(context.Background(), tt.cmd)

			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}
