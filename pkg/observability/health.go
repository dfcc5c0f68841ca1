package observability

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// HealthStatus represents the health state of a component.
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusDegraded  HealthStatus = "degraded"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthCheckResult is the result of a health check.
type HealthCheckResult struct {
	Name     string        `json:"name"`
	Status   HealthStatus  `json:"status"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

// HealthChecker performs one health check.
type HealthChecker func(ctx context.Context) HealthCheckResult

// HealthRegistry runs named health checks.
type HealthRegistry struct {
	mu       sync.RWMutex
	checkers map[string]HealthChecker
}

// NewHealthRegistry creates a new health registry.
func NewHealthRegistry() *HealthRegistry {
	return &HealthRegistry{checkers: make(map[string]HealthChecker)}
}

// Register adds a health checker for a component.
func (r *HealthRegistry) Register(name string, checker HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[name] = checker
}

// Check runs all checks concurrently and returns the results sorted by name.
func (r *HealthRegistry) Check(ctx context.Context) []HealthCheckResult {
	r.mu.RLock()
	names := make([]string, 0, len(r.checkers))
	checkers := make([]HealthChecker, 0, len(r.checkers))
	for name, checker := range r.checkers {
		names = append(names, name)
		checkers = append(checkers, checker)
	}
	r.mu.RUnlock()

	results := make([]HealthCheckResult, len(checkers))
	var wg sync.WaitGroup
	for i := range checkers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			start := time.Now()
			result := checkers[i](ctx)
			result.Name = names[i]
			result.Duration = time.Since(start)
			results[i] = result
		}(i)
	}
	wg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })
	return results
}

// OverallStatus folds results into the worst status seen.
func OverallStatus(results []HealthCheckResult) HealthStatus {
	status := HealthStatusHealthy
	for _, r := range results {
		switch r.Status {
		case HealthStatusUnhealthy:
			return HealthStatusUnhealthy
		case HealthStatusDegraded:
			status = HealthStatusDegraded
		}
	}
	return status
}

// StorageHealthChecker reports the schedule store as unhealthy when ping fails.
func StorageHealthChecker(driver string, ping func(ctx context.Context) error) HealthChecker {
	return func(ctx context.Context) HealthCheckResult {
		if err := ping(ctx); err != nil {
			return HealthCheckResult{
				Status:  HealthStatusUnhealthy,
				Message: fmt.Sprintf("%s connection failed: %v", driver, err),
			}
		}
		return HealthCheckResult{
			Status:  HealthStatusHealthy,
			Message: driver + " connection healthy",
		}
	}
}

// ClassifierHealthChecker reports the LLM fallback. Scheduling keeps working
// without it, so problems only degrade health.
func ClassifierHealthChecker(providers func() []string, openBreakers func() []string) HealthChecker {
	return func(ctx context.Context) HealthCheckResult {
		names := providers()
		if len(names) == 0 {
			return HealthCheckResult{
				Status:  HealthStatusDegraded,
				Message: "no classifier providers configured, keyword matching only",
			}
		}
		if open := openBreakers(); len(open) > 0 {
			return HealthCheckResult{
				Status:  HealthStatusDegraded,
				Message: fmt.Sprintf("circuit open for %v", open),
			}
		}
		return HealthCheckResult{
			Status:  HealthStatusHealthy,
			Message: fmt.Sprintf("%d providers: %v", len(names), names),
		}
	}
}
