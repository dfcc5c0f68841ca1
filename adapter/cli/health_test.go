package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/felixgeelhaar/slotwise/pkg/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runHealth(t *testing.T, registry *observability.HealthRegistry) (string, error) {
	t.Helper()
	SetApp(&App{Health: registry})
	t.Cleanup(func() { SetApp(nil) })

	var out bytes.Buffer
	healthCmd.SetOut(&out)
	healthCmd.SetContext(context.Background())
	t.Cleanup(func() { healthCmd.SetOut(nil) })

	err := healthCmd.RunE(healthCmd, nil)
	return out.String(), err
}

func TestHealthCmd_Healthy(t *testing.T) {
	registry := observability.NewHealthRegistry()
	registry.Register("storage", observability.StorageHealthChecker("sqlite", func(ctx context.Context) error {
		return nil
	}))

	out, err := runHealth(t, registry)

	require.NoError(t, err)
	assert.Contains(t, out, "storage")
	assert.Contains(t, out, "overall: healthy")
}

func TestHealthCmd_Unhealthy(t *testing.T) {
	registry := observability.NewHealthRegistry()
	registry.Register("storage", observability.StorageHealthChecker("sqlite", func(ctx context.Context) error {
		return errors.New("database is locked")
	}))

	out, err := runHealth(t, registry)

	assert.ErrorIs(t, err, ErrUnhealthy)
	assert.Contains(t, out, "overall: unhealthy")
}

func TestHealthCmd_AppNotInitialized(t *testing.T) {
	SetApp(nil)

	err := healthCmd.RunE(healthCmd, nil)

	assert.Error(t, err)
}
