package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/felixgeelhaar/slotwise/internal/scheduling/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresScheduleRepository implements domain.ScheduleRepository using PostgreSQL.
type PostgresScheduleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresScheduleRepository creates a new PostgreSQL schedule repository.
func NewPostgresScheduleRepository(pool *pgxpool.Pool) *PostgresScheduleRepository {
	return &PostgresScheduleRepository{pool: pool}
}

const postgresScheduleColumns = `id, user_id, name, is_default, use_llm_fallback, slots, created_at, updated_at`

// Save persists a schedule to the database.
func (r *PostgresScheduleRepository) Save(ctx context.Context, schedule *domain.Schedule) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := r.saveWithTx(ctx, tx, schedule); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresScheduleRepository) saveWithTx(ctx context.Context, tx pgx.Tx, schedule *domain.Schedule) error {
	slotsJSON, err := marshalSlots(schedule.Slots())
	if err != nil {
		return err
	}

	if schedule.IsDefault() {
		_, err = tx.Exec(ctx,
			`UPDATE schedule_templates SET is_default = FALSE, updated_at = NOW()
			 WHERE user_id = $1 AND id <> $2 AND is_default`,
			schedule.UserID(), schedule.ID(),
		)
		if err != nil {
			return fmt.Errorf("failed to clear previous default: %w", err)
		}
	}

	query := `
		INSERT INTO schedule_templates (` + postgresScheduleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			is_default = EXCLUDED.is_default,
			use_llm_fallback = EXCLUDED.use_llm_fallback,
			slots = EXCLUDED.slots,
			updated_at = EXCLUDED.updated_at
	`
	_, err = tx.Exec(ctx, query,
		schedule.ID(),
		schedule.UserID(),
		schedule.Name(),
		schedule.IsDefault(),
		schedule.UseLLMFallback(),
		slotsJSON,
		schedule.CreatedAt(),
		schedule.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to save schedule: %w", err)
	}
	return nil
}

// FindDefault returns the user's default schedule, or nil.
func (r *PostgresScheduleRepository) FindDefault(ctx context.Context, userID uuid.UUID) (*domain.Schedule, error) {
	query := `SELECT ` + postgresScheduleColumns + ` FROM schedule_templates
		WHERE user_id = $1 AND is_default
		ORDER BY updated_at DESC LIMIT 1`
	return r.findOne(ctx, query, userID)
}

// FindByName returns the user's schedule named name, or nil.
func (r *PostgresScheduleRepository) FindByName(ctx context.Context, userID uuid.UUID, name string) (*domain.Schedule, error) {
	query := `SELECT ` + postgresScheduleColumns + ` FROM schedule_templates WHERE user_id = $1 AND name = $2`
	return r.findOne(ctx, query, userID, name)
}

// List returns the user's schedules ordered by name.
func (r *PostgresScheduleRepository) List(ctx context.Context, userID uuid.UUID) ([]*domain.Schedule, error) {
	query := `SELECT ` + postgresScheduleColumns + ` FROM schedule_templates WHERE user_id = $1 ORDER BY name`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []*domain.Schedule
	for rows.Next() {
		schedule, err := scanPostgresSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}
	return schedules, rows.Err()
}

// DeleteDefault removes the user's default schedule(s).
func (r *PostgresScheduleRepository) DeleteDefault(ctx context.Context, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM schedule_templates WHERE user_id = $1 AND is_default`, userID)
	return err
}

func (r *PostgresScheduleRepository) findOne(ctx context.Context, query string, args ...any) (*domain.Schedule, error) {
	schedule, err := scanPostgresSchedule(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return schedule, nil
}

func scanPostgresSchedule(row pgx.Row) (*domain.Schedule, error) {
	var (
		id, userID           uuid.UUID
		name                 string
		isDefault, useLLM    bool
		slotsJSON            []byte
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &userID, &name, &isDefault, &useLLM, &slotsJSON, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	slots, err := unmarshalSlots(slotsJSON)
	if err != nil {
		return nil, fmt.Errorf("schedule %s: %w", id, err)
	}
	return domain.RehydrateSchedule(id, userID, name, isDefault, useLLM, slots, createdAt, updatedAt), nil
}
