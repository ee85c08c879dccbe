// Package persistence stores the task pool.
package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/felixgeelhaar/paretofocus/internal/productivity/domain/task"
)

// SQLiteTaskRepository implements task.Repository using SQLite.
type SQLiteTaskRepository struct {
	db *sql.DB
}

// NewSQLiteTaskRepository creates a new SQLite task repository.
func NewSQLiteTaskRepository(db *sql.DB) *SQLiteTaskRepository {
	return &SQLiteTaskRepository{db: db}
}

const taskColumns = `id, name, impact, duration, project, confidence, effort, created_at, updated_at`

// Create inserts a record and assigns its ID.
func (r *SQLiteTaskRepository) Create(ctx context.Context, rec *task.Record) error {
	query := `
		INSERT INTO tasks (name, impact, duration, project, confidence, effort, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query,
		rec.Name,
		rec.Impact,
		rec.Duration,
		rec.Project,
		nullFloat(rec.Confidence),
		nullFloat(rec.Effort),
		rec.CreatedAt.UTC().Format(time.RFC3339),
		rec.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rec.ID = id
	return nil
}

// Update replaces an existing record.
func (r *SQLiteTaskRepository) Update(ctx context.Context, rec *task.Record) error {
	query := `
		UPDATE tasks
		SET name = ?, impact = ?, duration = ?, project = ?, confidence = ?, effort = ?, updated_at = ?
		WHERE id = ?
	`
	res, err := r.db.ExecContext(ctx, query,
		rec.Name,
		rec.Impact,
		rec.Duration,
		rec.Project,
		nullFloat(rec.Confidence),
		nullFloat(rec.Effort),
		rec.UpdatedAt.UTC().Format(time.RFC3339),
		rec.ID,
	)
	if err != nil {
		return err
	}
	return requireOneRow(res)
}

// FindByID retrieves a record.
func (r *SQLiteTaskRepository) FindByID(ctx context.Context, id int64) (*task.Record, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, task.ErrTaskNotFound
	}
	return rec, err
}

// List returns every record in ID order.
func (r *SQLiteTaskRepository) List(ctx context.Context) ([]*task.Record, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*task.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Delete removes a record.
func (r *SQLiteTaskRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireOneRow(res)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (*task.Record, error) {
	var (
		rec                  task.Record
		confidence, effort   sql.NullFloat64
		createdAt, updatedAt string
	)
	if err := s.Scan(
		&rec.ID, &rec.Name, &rec.Impact, &rec.Duration, &rec.Project,
		&confidence, &effort, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	if confidence.Valid {
		rec.Confidence = &confidence.Float64
	}
	if effort.Valid {
		rec.Effort = &effort.Float64
	}

	var err error
	if rec.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("task %d: bad created_at: %w", rec.ID, err)
	}
	if rec.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("task %d: bad updated_at: %w", rec.ID, err)
	}
	return &rec, nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}
