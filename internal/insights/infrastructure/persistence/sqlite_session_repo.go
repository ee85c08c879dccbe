// Package persistence stores sessions and interrupts.
package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/felixgeelhaar/paretofocus/internal/insights/domain"
	learning "github.com/felixgeelhaar/paretofocus/internal/learning/domain"
)

// Timestamps are stored as UTC RFC3339 so that text order is time order.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// SQLiteSessionRepository implements domain.SessionRepository using SQLite.
type SQLiteSessionRepository struct {
	db *sql.DB
}

// NewSQLiteSessionRepository creates a new SQLite session repository.
func NewSQLiteSessionRepository(db *sql.DB) *SQLiteSessionRepository {
	return &SQLiteSessionRepository{db: db}
}

// Create creates a new session.
func (r *SQLiteSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	query := `
		INSERT INTO sessions (id, task_id, project, title, seconds, started_at, feedback)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	var feedback sql.NullString
	if session.Feedback != "" {
		feedback = sql.NullString{String: string(session.Feedback), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		session.ID,
		session.TaskID,
		session.Project,
		session.Title,
		session.Seconds,
		formatTime(session.StartedAt),
		feedback,
	)
	return err
}

// Since returns sessions started at or after since, oldest first.
func (r *SQLiteSessionRepository) Since(ctx context.Context, since time.Time) ([]domain.Session, error) {
	query := `
		SELECT id, task_id, project, title, seconds, started_at, feedback
		FROM sessions
		WHERE started_at >= ?
		ORDER BY started_at, id
	`
	return r.query(ctx, query, formatTime(since))
}

// List returns every session, oldest first.
func (r *SQLiteSessionRepository) List(ctx context.Context) ([]domain.Session, error) {
	query := `
		SELECT id, task_id, project, title, seconds, started_at, feedback
		FROM sessions
		ORDER BY started_at, id
	`
	return r.query(ctx, query)
}

// DeleteByTask removes all sessions logged against a task.
func (r *SQLiteSessionRepository) DeleteByTask(ctx context.Context, taskID int64) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE task_id = ?`, taskID)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (r *SQLiteSessionRepository) query(ctx context.Context, query string, args ...any) ([]domain.Session, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		var (
			s         domain.Session
			startedAt string
			feedback  sql.NullString
		)
		if err := rows.Scan(&s.ID, &s.TaskID, &s.Project, &s.Title, &s.Seconds, &startedAt, &feedback); err != nil {
			return nil, err
		}
		if s.StartedAt, err = parseTime(startedAt); err != nil {
			return nil, fmt.Errorf("session %s: bad started_at: %w", s.ID, err)
		}
		if feedback.Valid {
			if a, ok := learning.ParseAnswer(feedback.String); ok {
				s.Feedback = a
			}
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
