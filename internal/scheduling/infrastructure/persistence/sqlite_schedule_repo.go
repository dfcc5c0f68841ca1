package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/felixgeelhaar/slotwise/internal/scheduling/domain"
	"github.com/google/uuid"
)

// SQLiteScheduleRepository stores schedule templates in SQLite.
type SQLiteScheduleRepository struct {
	db *sql.DB
}

// NewSQLiteScheduleRepository creates a new SQLite schedule repository.
func NewSQLiteScheduleRepository(db *sql.DB) *SQLiteScheduleRepository {
	return &SQLiteScheduleRepository{db: db}
}

// execer is an interface that both *sql.DB and *sql.Tx implement.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

const sqliteScheduleColumns = `id, user_id, name, is_default, use_llm_fallback, slots, created_at, updated_at`

// Save upserts the schedule. A default schedule clears the default flag of
// the user's other schedules in the same transaction.
func (r *SQLiteScheduleRepository) Save(ctx context.Context, schedule *domain.Schedule) error {
	slotsJSON, err := marshalSlots(schedule.Slots())
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if schedule.IsDefault() {
		_, err = tx.ExecContext(ctx,
			`UPDATE schedule_templates SET is_default = 0, updated_at = ? WHERE user_id = ? AND id != ? AND is_default = 1`,
			time.Now().UTC().Format(time.RFC3339),
			schedule.UserID().String(),
			schedule.ID().String(),
		)
		if err != nil {
			return fmt.Errorf("failed to clear previous default: %w", err)
		}
	}

	query := `
		INSERT INTO schedule_templates (` + sqliteScheduleColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			is_default = excluded.is_default,
			use_llm_fallback = excluded.use_llm_fallback,
			slots = excluded.slots,
			updated_at = excluded.updated_at
	`
	_, err = tx.ExecContext(ctx, query,
		schedule.ID().String(),
		schedule.UserID().String(),
		schedule.Name(),
		boolToInt(schedule.IsDefault()),
		boolToInt(schedule.UseLLMFallback()),
		string(slotsJSON),
		schedule.CreatedAt().UTC().Format(time.RFC3339),
		schedule.UpdatedAt().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save schedule: %w", err)
	}

	return tx.Commit()
}

// FindDefault returns the user's default schedule, or nil.
func (r *SQLiteScheduleRepository) FindDefault(ctx context.Context, userID uuid.UUID) (*domain.Schedule, error) {
	query := `SELECT ` + sqliteScheduleColumns + ` FROM schedule_templates
		WHERE user_id = ? AND is_default = 1
		ORDER BY updated_at DESC LIMIT 1`
	return r.findOne(ctx, r.db, query, userID.String())
}

// FindByName returns the user's schedule named name, or nil.
func (r *SQLiteScheduleRepository) FindByName(ctx context.Context, userID uuid.UUID, name string) (*domain.Schedule, error) {
	query := `SELECT ` + sqliteScheduleColumns + ` FROM schedule_templates WHERE user_id = ? AND name = ?`
	return r.findOne(ctx, r.db, query, userID.String(), name)
}

// List returns the user's schedules ordered by name.
func (r *SQLiteScheduleRepository) List(ctx context.Context, userID uuid.UUID) ([]*domain.Schedule, error) {
	query := `SELECT ` + sqliteScheduleColumns + ` FROM schedule_templates WHERE user_id = ? ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, userID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []*domain.Schedule
	for rows.Next() {
		schedule, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return schedules, nil
}

// DeleteDefault removes the user's default schedule(s).
func (r *SQLiteScheduleRepository) DeleteDefault(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM schedule_templates WHERE user_id = ? AND is_default = 1`,
		userID.String(),
	)
	return err
}

func (r *SQLiteScheduleRepository) findOne(ctx context.Context, exec execer, query string, args ...any) (*domain.Schedule, error) {
	schedule, err := r.scan(exec.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return schedule, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteScheduleRepository) scan(row rowScanner) (*domain.Schedule, error) {
	var (
		idStr, userIDStr, name string
		isDefault, useLLM      int
		slotsJSON              string
		createdAt, updatedAt   string
	)
	if err := row.Scan(&idStr, &userIDStr, &name, &isDefault, &useLLM, &slotsJSON, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, err
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, err
	}
	slots, err := unmarshalSlots([]byte(slotsJSON))
	if err != nil {
		return nil, fmt.Errorf("schedule %s: %w", idStr, err)
	}
	created, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, err
	}
	updated, err := time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, err
	}

	return domain.RehydrateSchedule(id, userID, name, isDefault == 1, useLLM == 1, slots, created, updated), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
