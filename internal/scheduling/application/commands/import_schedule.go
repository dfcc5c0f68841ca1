package commands

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/slotwise/internal/scheduling/domain"
	"github.com/felixgeelhaar/slotwise/internal/scheduling/infrastructure/template"
	"github.com/google/uuid"
)

// ImportScheduleCommand loads a template file and saves it as a schedule.
type ImportScheduleCommand struct {
	UserID uuid.UUID
	Path   string
	// Name overrides the name stored in the file.
	Name string
}

// ImportScheduleHandler handles the ImportScheduleCommand.
type ImportScheduleHandler struct {
	save *SaveScheduleHandler
	load func(path string) (*template.Template, error)
}

// NewImportScheduleHandler creates a new ImportScheduleHandler.
func NewImportScheduleHandler(scheduleRepo domain.ScheduleRepository) *ImportScheduleHandler {
	return &ImportScheduleHandler{
		save: NewSaveScheduleHandler(scheduleRepo),
		load: template.LoadFile,
	}
}

// Handle executes the ImportScheduleCommand.
func (h *ImportScheduleHandler) Handle(ctx context.Context, cmd ImportScheduleCommand) (*SaveScheduleResult, error) {
	tpl, err := h.load(cmd.Path)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", cmd.Path, err)
	}

	name := tpl.Name
	if cmd.Name != "" {
		name = cmd.Name
	}

	return h.save.Handle(ctx, SaveScheduleCommand{
		UserID:         cmd.UserID,
		Name:           name,
		Slots:          domain.SlotSpecs(tpl.Slots),
		UseLLMFallback: &tpl.UseLLMFallback,
		IsDefault:      &tpl.IsDefault,
	})
}
