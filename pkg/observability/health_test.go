package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthRegistry_Check(t *testing.T) {
	registry := NewHealthRegistry()
	registry.Register("storage", StorageHealthChecker("sqlite", func(ctx context.Context) error { return nil }))
	registry.Register("classifier", ClassifierHealthChecker(
		func() []string { return nil },
		func() []string { return nil },
	))

	results := registry.Check(context.Background())

	require.Len(t, results, 2)
	assert.Equal(t, "classifier", results[0].Name)
	assert.Equal(t, HealthStatusDegraded, results[0].Status)
	assert.Equal(t, "storage", results[1].Name)
	assert.Equal(t, HealthStatusHealthy, results[1].Status)
	assert.Equal(t, HealthStatusDegraded, OverallStatus(results))
}

func TestStorageHealthChecker_Failure(t *testing.T) {
	check := StorageHealthChecker("postgres", func(ctx context.Context) error { return errors.New("refused") })

	result := check(context.Background())

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Contains(t, result.Message, "refused")
	assert.Equal(t, HealthStatusUnhealthy, OverallStatus([]HealthCheckResult{result, {Status: HealthStatusDegraded}}))
}

func TestClassifierHealthChecker(t *testing.T) {
	providers := func() []string { return []string{"groq/a", "groq/b"} }

	healthy := ClassifierHealthChecker(providers, func() []string { return nil })(context.Background())
	assert.Equal(t, HealthStatusHealthy, healthy.Status)

	open := ClassifierHealthChecker(providers, func() []string { return []string{"groq/a"} })(context.Background())
	assert.Equal(t, HealthStatusDegraded, open.Status)
	assert.Contains(t, open.Message, "groq/a")
}

func TestOverallStatus_Empty(t *testing.T) {
	assert.Equal(t, HealthStatusHealthy, OverallStatus(nil))
}
