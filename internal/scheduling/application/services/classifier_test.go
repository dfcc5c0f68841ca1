package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildClassificationPrompt(t *testing.T) {
	prompt := BuildClassificationPrompt("Buy groceries", []string{"Work", "Errands"})

	expected := "Classify this task into ONE category.\n" +
		"Task: \"Buy groceries\"\n" +
		"Categories: Work, Errands\n" +
		"Reply with ONLY the category name, nothing else."
	assert.Equal(t, expected, prompt)
}

func TestParseClassificationResponse(t *testing.T) {
	categories := []string{"Work", "Gymlingoo", "Bug Bounty"}

	tests := []struct {
		name  string
		reply string
		want  string
		found bool
	}{
		{name: "exact", reply: "Gymlingoo", want: "Gymlingoo", found: true},
		{name: "verbose", reply: "  The category is Work.\n", want: "Work", found: true},
		{name: "lowercase", reply: "bug bounty", want: "Bug Bounty", found: true},
		{name: "embedded in longer word", reply: "Homework", want: "Work", found: true},
		{name: "empty", reply: "   ", found: false},
		{name: "unknown", reply: "Shopping", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseClassificationResponse(tt.reply, categories)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFallbackClassifier_Classify(t *testing.T) {
	var gotPrompt string
	classifier := ClassifierFunc(func(ctx context.Context, prompt string) (string, error) {
		gotPrompt = prompt
		return "Errands", nil
	})
	fc := NewFallbackClassifier(classifier, testLogger())

	category, ok := fc.Classify(context.Background(), "Buy milk", []string{"Work", "Errands"})

	assert.True(t, ok)
	assert.Equal(t, "Errands", category)
	assert.Contains(t, gotPrompt, `Task: "Buy milk"`)
}

func TestFallbackClassifier_AbsorbsErrors(t *testing.T) {
	classifier := ClassifierFunc(func(ctx context.Context, prompt string) (string, error) {
		return "", errors.New("rate limited")
	})
	fc := NewFallbackClassifier(classifier, testLogger())

	category, ok := fc.Classify(context.Background(), "Buy milk", []string{"Work"})

	assert.False(t, ok)
	assert.Empty(t, category)
}

func TestFallbackClassifier_CancelledContext(t *testing.T) {
	classifier := ClassifierFunc(func(ctx context.Context, prompt string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})
	fc := NewFallbackClassifier(classifier, testLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok := fc.Classify(ctx, "Buy milk", []string{"Work"})

	assert.False(t, ok)
}

func TestFallbackClassifier_NoCategories(t *testing.T) {
	called := false
	fc := NewFallbackClassifier(ClassifierFunc(func(ctx context.Context, prompt string) (string, error) {
		called = true
		return "Work", nil
	}), testLogger())

	_, ok := fc.Classify(context.Background(), "Buy milk", nil)

	assert.False(t, ok)
	assert.False(t, called)
}
