package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/felixgeelhaar/slotwise/internal/scheduling/application/services"
	"github.com/felixgeelhaar/slotwise/internal/scheduling/domain"
	"github.com/google/uuid"
)

var ErrTitleRequired = errors.New("task title is required")

// SmartScheduleTaskCommand asks for a slot for a task.
type SmartScheduleTaskCommand struct {
	UserID      uuid.UUID
	Title       string
	Description string
	// UseLLM is only consulted when the user has no stored schedule.
	UseLLM *bool
}

// SlotOption is a slot offered for manual selection.
type SlotOption struct {
	Category    string
	StartTime   string
	EndTime     string
	Description string
	Color       string
}

// SmartScheduleTaskResult is either a resolved placement or the options for
// picking a slot by hand.
type SmartScheduleTaskResult struct {
	Resolved    bool
	Result      *domain.SmartScheduleResult
	Description string
	Color       string

	AvailableCategories []string
	Slots               []SlotOption
}

// SmartScheduleTaskHandler handles the SmartScheduleTaskCommand.
type SmartScheduleTaskHandler struct {
	scheduleRepo domain.ScheduleRepository
	scheduler    *services.SmartScheduler
}

// NewSmartScheduleTaskHandler creates a new SmartScheduleTaskHandler.
func NewSmartScheduleTaskHandler(scheduleRepo domain.ScheduleRepository, scheduler *services.SmartScheduler) *SmartScheduleTaskHandler {
	return &SmartScheduleTaskHandler{
		scheduleRepo: scheduleRepo,
		scheduler:    scheduler,
	}
}

// Handle executes the SmartScheduleTaskCommand.
func (h *SmartScheduleTaskHandler) Handle(ctx context.Context, cmd SmartScheduleTaskCommand) (*SmartScheduleTaskResult, error) {
	if strings.TrimSpace(cmd.Title) == "" {
		return nil, ErrTitleRequired
	}

	stored, err := h.scheduleRepo.FindDefault(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	var slots []domain.Slot
	useLLM := true
	switch {
	case stored != nil:
		slots = stored.Slots()
		useLLM = stored.UseLLMFallback()
	default:
		slots = domain.DefaultSlots()
		if cmd.UseLLM != nil {
			useLLM = *cmd.UseLLM
		}
	}

	result := h.scheduler.ScheduleTask(ctx, services.SmartScheduleRequest{
		Title:          cmd.Title,
		Description:    cmd.Description,
		Slots:          slots,
		UseLLMFallback: useLLM,
	})
	if result == nil {
		return manualSelection(slots), nil
	}

	out := &SmartScheduleTaskResult{Resolved: true, Result: result}
	if slot, ok := slotForResult(slots, result); ok {
		out.Description = slot.Description()
		out.Color = slot.Color()
	}
	return out, nil
}

func manualSelection(slots []domain.Slot) *SmartScheduleTaskResult {
	options := make([]SlotOption, len(slots))
	for i, s := range slots {
		options[i] = SlotOption{
			Category:    s.Category(),
			StartTime:   s.StartTime().String(),
			EndTime:     s.EndTime().String(),
			Description: s.Description(),
			Color:       s.Color(),
		}
	}
	return &SmartScheduleTaskResult{
		AvailableCategories: domain.Categories(slots),
		Slots:               options,
	}
}

func slotForResult(slots []domain.Slot, result *domain.SmartScheduleResult) (domain.Slot, bool) {
	for _, s := range slots {
		if s.Category() == result.Category &&
			s.StartTime().String() == result.StartTime &&
			s.EndTime().String() == result.EndTime {
			return s, true
		}
	}
	return domain.Slot{}, false
}
