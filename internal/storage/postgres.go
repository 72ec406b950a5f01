package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS users (
	clerk_user_id TEXT PRIMARY KEY,
	email TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS entries (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	entry_date DATE NOT NULL,
	mood TEXT NOT NULL,
	stress_level INTEGER NOT NULL DEFAULT 0,
	sleep_hours DOUBLE PRECISION NOT NULL DEFAULT 0,
	journal_text TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS entries_user_date_idx ON entries (user_id, entry_date);
`

type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects and pings before returning.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	op := "internal/storage/postgres.go NewPostgresStore"

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: unable to connect to db: %w", op, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: unable to ping db: %w", op, err)
	}

	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	op := "internal/storage/postgres.go Migrate"

	if _, err := s.pool.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}
