package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/felixgeelhaar/slotwise/internal/scheduling/domain"
	"github.com/felixgeelhaar/slotwise/pkg/observability"
)

const outcomeUnresolved = "unresolved"

// SmartScheduleRequest is a task to place into a schedule.
type SmartScheduleRequest struct {
	Title          string
	Description    string
	Slots          []domain.Slot
	UseLLMFallback bool
}

// SmartScheduler places tasks into schedule slots. Keyword matching runs
// first; the classifier is only consulted on a miss and only when the
// request enables it.
type SmartScheduler struct {
	fallback *FallbackClassifier
	logger   *slog.Logger
	metrics  *observability.SchedulerMetrics
}

// NewSmartScheduler creates a scheduler. A nil classifier disables the
// LLM fallback; nil metrics record nothing.
func NewSmartScheduler(classifier Classifier, logger *slog.Logger, metrics *observability.SchedulerMetrics) *SmartScheduler {
	if logger == nil {
		logger = slog.Default()
	}
	s := &SmartScheduler{
		logger:  logger,
		metrics: metrics,
	}
	if classifier != nil {
		s.fallback = NewFallbackClassifier(classifier, logger)
	}
	return s
}

// ScheduleTask returns the slot chosen for the task, or nil when the task
// could not be placed and the user has to pick a slot manually.
func (s *SmartScheduler) ScheduleTask(ctx context.Context, req SmartScheduleRequest) *domain.SmartScheduleResult {
	text := strings.TrimSpace(req.Title + " " + req.Description)

	if match, ok := domain.FindSlotByKeywords(text, req.Slots); ok {
		s.logger.DebugContext(ctx, "task matched by keyword",
			"title", req.Title,
			"category", match.Slot.Category(),
			"keyword", match.MatchedKeyword,
		)
		s.metrics.RecordSchedule(string(domain.MatchMethodKeyword))
		return domain.NewSmartScheduleResult(match.Slot, domain.MatchMethodKeyword, match.Confidence, match.MatchedKeyword)
	}

	if !req.UseLLMFallback || s.fallback == nil {
		return s.unresolved(ctx, req.Title, "no keyword match")
	}

	category, ok := s.fallback.Classify(ctx, req.Title, domain.Categories(req.Slots))
	if !ok {
		return s.unresolved(ctx, req.Title, "classifier gave no category")
	}

	slot, ok := domain.GetNextAvailableSlot(category, req.Slots, nil)
	if !ok {
		return s.unresolved(ctx, req.Title, "no slot for classified category")
	}

	s.logger.DebugContext(ctx, "task classified by llm",
		"title", req.Title,
		"category", slot.Category(),
	)
	s.metrics.RecordSchedule(string(domain.MatchMethodLLM))
	return domain.NewSmartScheduleResult(slot, domain.MatchMethodLLM, domain.ConfidenceMedium, "")
}

func (s *SmartScheduler) unresolved(ctx context.Context, title, reason string) *domain.SmartScheduleResult {
	s.logger.DebugContext(ctx, "task left for manual scheduling",
		"title", title,
		"reason", reason,
	)
	s.metrics.RecordSchedule(outcomeUnresolved)
	return nil
}
