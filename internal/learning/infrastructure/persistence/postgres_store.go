package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/felixgeelhaar/paretofocus/internal/learning/domain"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS feedback_counts (
    scope       TEXT        NOT NULL,
    key         TEXT        NOT NULL,
    yes         INTEGER     NOT NULL DEFAULT 0,
    no          INTEGER     NOT NULL DEFAULT 0,
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    PRIMARY KEY (scope, key)
)`

// PostgresStore implements domain.Store on a shared PostgreSQL database,
// letting several machines learn from the same history.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL feedback store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// EnsureSchema creates the feedback table if it is missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresSchema)
	return err
}

func (s *PostgresStore) Get(ctx context.Context, key domain.Key) (domain.Counts, error) {
	var c domain.Counts
	err := s.pool.QueryRow(ctx,
		`SELECT yes, no FROM feedback_counts WHERE scope = $1 AND key = $2`,
		string(key.Scope), key.ID,
	).Scan(&c.Yes, &c.No)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Counts{}, nil
	}
	if err != nil {
		return domain.Counts{}, err
	}
	return c, nil
}

func (s *PostgresStore) Put(ctx context.Context, key domain.Key, counts domain.Counts) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO feedback_counts (scope, key, yes, no, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (scope, key) DO UPDATE SET
			yes = EXCLUDED.yes,
			no = EXCLUDED.no,
			updated_at = EXCLUDED.updated_at
	`, string(key.Scope), key.ID, counts.Yes, counts.No)
	return err
}

func (s *PostgresStore) Delete(ctx context.Context, key domain.Key) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM feedback_counts WHERE scope = $1 AND key = $2`,
		string(key.Scope), key.ID,
	)
	return err
}
