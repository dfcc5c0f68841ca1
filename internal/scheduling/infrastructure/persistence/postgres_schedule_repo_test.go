package persistence_test

import (
	"context"
	"os"
	"testing"

	"github.com/felixgeelhaar/slotwise/internal/scheduling/domain"
	"github.com/felixgeelhaar/slotwise/internal/scheduling/infrastructure/persistence"
	"github.com/felixgeelhaar/slotwise/internal/shared/infrastructure/migrations"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	// Use test database URL from environment
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Skipf("Failed to connect to test database: %v", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Skipf("Failed to ping test database: %v", err)
	}

	require.NoError(t, migrations.RunPostgresMigrations(ctx, pool))
	_, _ = pool.Exec(ctx, "DELETE FROM schedule_templates")

	return pool
}

func TestPostgresScheduleRepository_SaveAndFindDefault(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	ctx := context.Background()
	repo := persistence.NewPostgresScheduleRepository(pool)
	userID := uuid.New()

	schedule := domain.NewSchedule(userID, "Week", workSlots())
	require.NoError(t, repo.Save(ctx, schedule))

	found, err := repo.FindDefault(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, schedule.ID(), found.ID())
	assert.Equal(t, domain.SlotSpecs(schedule.Slots()), domain.SlotSpecs(found.Slots()))
}

func TestPostgresScheduleRepository_SingleDefault(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	ctx := context.Background()
	repo := persistence.NewPostgresScheduleRepository(pool)
	userID := uuid.New()

	first := domain.NewSchedule(userID, "First", workSlots())
	require.NoError(t, repo.Save(ctx, first))
	second := domain.NewSchedule(userID, "Second", workSlots())
	require.NoError(t, repo.Save(ctx, second))

	found, err := repo.FindDefault(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, second.ID(), found.ID())

	previous, err := repo.FindByName(ctx, userID, "First")
	require.NoError(t, err)
	require.NotNil(t, previous)
	assert.False(t, previous.IsDefault())
}

func TestPostgresScheduleRepository_DeleteDefault(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	ctx := context.Background()
	repo := persistence.NewPostgresScheduleRepository(pool)
	userID := uuid.New()

	require.NoError(t, repo.Save(ctx, domain.NewSchedule(userID, "", workSlots())))
	require.NoError(t, repo.DeleteDefault(ctx, userID))

	found, err := repo.FindDefault(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, found)

	all, err := repo.List(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, all)
}
