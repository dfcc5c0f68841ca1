package classifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/slotwise/pkg/observability"
	"github.com/sony/gobreaker/v2"
)

// ClassificationSystemPrompt is sent ahead of every classification prompt.
const ClassificationSystemPrompt = "You are a task classifier. Reply with only the category name."

// ChainConfig configures the per-provider circuit breakers.
type ChainConfig struct {
	// FailureThreshold is the number of consecutive failures that opens a breaker.
	FailureThreshold uint32
	// MaxRequests is the number of trial requests allowed while half-open.
	MaxRequests uint32
	// Interval is the cyclic period for clearing counts while closed.
	Interval time.Duration
	// Timeout is how long a breaker stays open before going half-open.
	Timeout time.Duration
}

// DefaultChainConfig returns sensible breaker defaults.
func DefaultChainConfig() ChainConfig {
	return ChainConfig{
		FailureThreshold: 3,
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
	}
}

type link struct {
	provider Provider
	breaker  *gobreaker.CircuitBreaker[string]
}

// Chain tries providers in order until one answers. Each provider sits
// behind its own circuit breaker so a failing backend is skipped quickly.
type Chain struct {
	links   []link
	logger  *slog.Logger
	metrics *observability.SchedulerMetrics
}

// NewChain creates a chain over providers, in priority order.
func NewChain(providers []Provider, config ChainConfig, logger *slog.Logger, metrics *observability.SchedulerMetrics) *Chain {
	if logger == nil {
		logger = slog.Default()
	}
	if config.FailureThreshold == 0 {
		config.FailureThreshold = DefaultChainConfig().FailureThreshold
	}

	c := &Chain{
		logger:  logger,
		metrics: metrics,
	}
	for _, p := range providers {
		c.links = append(c.links, link{
			provider: p,
			breaker:  c.newBreaker(p.Name(), config),
		})
		metrics.SetCircuitState(p.Name(), observability.CircuitClosed)
	}
	return c
}

func (c *Chain) newBreaker(name string, config ChainConfig) *gobreaker.CircuitBreaker[string] {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: config.MaxRequests,
		Interval:    config.Interval,
		Timeout:     config.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= config.FailureThreshold
		},
		IsSuccessful: func(err error) bool {
			// a caller giving up says nothing about the provider
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Info("circuit breaker state changed",
				"provider", name,
				"from", from.String(),
				"to", to.String(),
			)
			c.metrics.SetCircuitState(name, circuitState(to))
		},
	}
	return gobreaker.NewCircuitBreaker[string](settings)
}

// Len returns the number of providers in the chain.
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.links)
}

// Providers returns the provider names in order.
func (c *Chain) Providers() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.links))
	for i, l := range c.links {
		names[i] = l.provider.Name()
	}
	return names
}

// OpenCircuits returns the providers currently skipped by an open breaker.
func (c *Chain) OpenCircuits() []string {
	if c == nil {
		return nil
	}
	var open []string
	for _, l := range c.links {
		if l.breaker.State() == gobreaker.StateOpen {
			open = append(open, l.provider.Name())
		}
	}
	return open
}

// Classify sends prompt with the classification system message.
func (c *Chain) Classify(ctx context.Context, prompt string) (string, error) {
	return c.Complete(ctx, []Message{
		{Role: RoleSystem, Content: ClassificationSystemPrompt},
		{Role: RoleUser, Content: prompt},
	})
}

// Complete returns the first successful provider reply. Context
// cancellation stops the chain immediately.
func (c *Chain) Complete(ctx context.Context, messages []Message) (string, error) {
	if len(c.links) == 0 {
		return "", ErrNoProviders
	}

	var lastErr error
	for i, l := range c.links {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		name := l.provider.Name()
		start := time.Now()
		reply, err := l.breaker.Execute(func() (string, error) {
			return l.provider.Complete(ctx, messages)
		})
		duration := time.Since(start)

		if err == nil {
			c.metrics.RecordClassifierCall(name, observability.OutcomeSuccess, duration)
			if i > 0 {
				c.logger.InfoContext(ctx, "classifier fallback succeeded", "provider", name)
			}
			return reply, nil
		}

		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.metrics.RecordClassifierCall(name, observability.OutcomeCircuitOpen, duration)
			c.logger.WarnContext(ctx, "classifier provider skipped, circuit open", "provider", name)
			lastErr = fmt.Errorf("%s: %w", name, err)
			continue
		}

		c.metrics.RecordClassifierCall(name, observability.OutcomeError, duration)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		c.logger.WarnContext(ctx, "classifier provider failed, falling back",
			"provider", name,
			"error", err,
		)
		lastErr = err
	}

	return "", fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

func circuitState(s gobreaker.State) observability.CircuitState {
	switch s {
	case gobreaker.StateOpen:
		return observability.CircuitOpen
	case gobreaker.StateHalfOpen:
		return observability.CircuitHalfOpen
	default:
		return observability.CircuitClosed
	}
}
