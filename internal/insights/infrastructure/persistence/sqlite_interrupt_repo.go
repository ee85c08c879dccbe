package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/felixgeelhaar/paretofocus/internal/insights/domain"
)

// SQLiteInterruptRepository implements domain.InterruptRepository using SQLite.
type SQLiteInterruptRepository struct {
	db *sql.DB
}

// NewSQLiteInterruptRepository creates a new SQLite interrupt repository.
func NewSQLiteInterruptRepository(db *sql.DB) *SQLiteInterruptRepository {
	return &SQLiteInterruptRepository{db: db}
}

// Create creates a new interrupt.
func (r *SQLiteInterruptRepository) Create(ctx context.Context, interrupt *domain.Interrupt) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO interrupts (id, occurred_at, note) VALUES (?, ?, ?)`,
		interrupt.ID, formatTime(interrupt.At), interrupt.Reason,
	)
	return err
}

// Since returns interrupts at or after since, oldest first.
func (r *SQLiteInterruptRepository) Since(ctx context.Context, since time.Time) ([]domain.Interrupt, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, occurred_at, note FROM interrupts WHERE occurred_at >= ? ORDER BY occurred_at, id`,
		formatTime(since),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Interrupt
	for rows.Next() {
		var (
			it domain.Interrupt
			at string
		)
		if err := rows.Scan(&it.ID, &at, &it.Reason); err != nil {
			return nil, err
		}
		if it.At, err = parseTime(at); err != nil {
			return nil, fmt.Errorf("interrupt %s: bad occurred_at: %w", it.ID, err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
