package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/felixgeelhaar/paretofocus/internal/learning/domain"
)

// SQLiteStore implements domain.Store on the feedback_counts table.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite feedback store.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Get returns the tally for key, or zero counts when none exists.
func (s *SQLiteStore) Get(ctx context.Context, key domain.Key) (domain.Counts, error) {
	query := `SELECT yes, no FROM feedback_counts WHERE scope = ? AND key = ?`

	var c domain.Counts
	err := s.db.QueryRowContext(ctx, query, string(key.Scope), key.ID).Scan(&c.Yes, &c.No)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Counts{}, nil
	}
	if err != nil {
		return domain.Counts{}, err
	}
	return c, nil
}

// Put upserts the tally for key.
func (s *SQLiteStore) Put(ctx context.Context, key domain.Key, counts domain.Counts) error {
	query := `
		INSERT INTO feedback_counts (scope, key, yes, no, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (scope, key) DO UPDATE SET
			yes = excluded.yes,
			no = excluded.no,
			updated_at = excluded.updated_at
	`
	_, err := s.db.ExecContext(ctx, query,
		string(key.Scope),
		key.ID,
		counts.Yes,
		counts.No,
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// Delete removes the tally for key.
func (s *SQLiteStore) Delete(ctx context.Context, key domain.Key) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM feedback_counts WHERE scope = ? AND key = ?`,
		string(key.Scope), key.ID,
	)
	return err
}
