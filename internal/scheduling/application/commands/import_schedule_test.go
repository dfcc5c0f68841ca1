package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/felixgeelhaar/slotwise/internal/scheduling/domain"
	"github.com/felixgeelhaar/slotwise/internal/scheduling/infrastructure/template"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const importYAML = `name: Imported
useLLMFallback: false
slots:
  - category: Work
    startTime: "09:00"
    endTime: "17:00"
    keywords: [deploy]
    priority: 1
    daysOfWeek: [1, 2, 3, 4, 5]
`

func TestImportScheduleHandler(t *testing.T) {
	path := filepath.Join(t.TempDir(), "week.yaml")
	require.NoError(t, os.WriteFile(path, []byte(importYAML), 0o600))

	repo := new(mockScheduleRepo)
	userID := uuid.New()
	repo.On("FindByName", mock.Anything, userID, "Imported").Return(nil, nil)

	var saved *domain.Schedule
	repo.On("Save", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.Schedule) }).
		Return(nil)

	result, err := NewImportScheduleHandler(repo).Handle(context.Background(), ImportScheduleCommand{
		UserID: userID,
		Path:   path,
	})

	require.NoError(t, err)
	assert.Equal(t, "Imported", result.Name)
	assert.Equal(t, 1, result.SlotCount)
	require.NotNil(t, saved)
	assert.False(t, saved.UseLLMFallback())
	assert.True(t, saved.IsDefault())
}

func TestImportScheduleHandler_NameOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "week.yaml")
	require.NoError(t, os.WriteFile(path, []byte(importYAML), 0o600))

	repo := new(mockScheduleRepo)
	repo.On("FindByName", mock.Anything, mock.Anything, "Override").Return(nil, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	result, err := NewImportScheduleHandler(repo).Handle(context.Background(), ImportScheduleCommand{
		Path: path,
		Name: "Override",
	})

	require.NoError(t, err)
	assert.Equal(t, "Override", result.Name)
}

func TestImportScheduleHandler_BadFile(t *testing.T) {
	repo := new(mockScheduleRepo)

	_, err := NewImportScheduleHandler(repo).Handle(context.Background(), ImportScheduleCommand{
		Path: filepath.Join(t.TempDir(), "week.ini"),
	})

	assert.ErrorIs(t, err, template.ErrUnsupportedFormat)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
