package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Classifier is an external text-classification capability. It receives a
// short prompt and replies with free text.
type Classifier interface {
	Classify(ctx context.Context, prompt string) (string, error)
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(ctx context.Context, prompt string) (string, error)

func (f ClassifierFunc) Classify(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// BuildClassificationPrompt renders the prompt sent to the classifier.
func BuildClassificationPrompt(title string, categories []string) string {
	var b strings.Builder
	b.WriteString("Classify this task into ONE category.\n")
	fmt.Fprintf(&b, "Task: \"%s\"\n", title)
	fmt.Fprintf(&b, "Categories: %s\n", strings.Join(categories, ", "))
	b.WriteString("Reply with ONLY the category name, nothing else.")
	return b.String()
}

// ParseClassificationResponse maps a free-text reply onto a known category.
// The first category whose name appears anywhere in the reply wins, so
// "The category is Work." resolves to "Work".
func ParseClassificationResponse(reply string, categories []string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(reply))
	if normalized == "" {
		return "", false
	}
	for _, category := range categories {
		if strings.Contains(normalized, strings.ToLower(category)) {
			return category, true
		}
	}
	return "", false
}

// FallbackClassifier asks the external classifier for a category when
// keyword matching found nothing. Failures are logged and reported as
// "no category", never returned to the caller.
type FallbackClassifier struct {
	classifier Classifier
	logger     *slog.Logger
}

// NewFallbackClassifier creates a fallback classifier. It imposes no timeout;
// deadlines come from ctx or the classifier itself.
func NewFallbackClassifier(classifier Classifier, logger *slog.Logger) *FallbackClassifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &FallbackClassifier{
		classifier: classifier,
		logger:     logger,
	}
}

// Classify returns the category chosen for title among categories.
func (f *FallbackClassifier) Classify(ctx context.Context, title string, categories []string) (string, bool) {
	if f == nil || f.classifier == nil || len(categories) == 0 {
		return "", false
	}

	prompt := BuildClassificationPrompt(title, categories)
	reply, err := f.classifier.Classify(ctx, prompt)
	if err != nil {
		f.logger.WarnContext(ctx, "classifier call failed",
			"error", err,
			"title", title,
		)
		return "", false
	}

	category, ok := ParseClassificationResponse(reply, categories)
	if !ok {
		f.logger.DebugContext(ctx, "classifier reply matched no category",
			"reply", reply,
			"categories", categories,
		)
		return "", false
	}
	return category, true
}
