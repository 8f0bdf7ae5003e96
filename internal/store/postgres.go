package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStorage keeps profile records in a single key/value table, one row
// per record key.
type PostgresStorage struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool and makes sure the record
// table exists.
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresStorage, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &PostgresStorage{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStorage) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx,
		// Values are opaque here: profile records are JSON but flag and tour
		// records are plain strings, so the column stays TEXT.
		`CREATE TABLE IF NOT EXISTS profile_records (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create profile_records table: %w", err)
	}
	return nil
}

// Get returns the record for key, or ErrNotFound.
func (s *PostgresStorage) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM profile_records WHERE key = $1`, key,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &StorageError{Message: "failed to read record", Cause: err}
	}
	return value, nil
}

// Set upserts the record for key.
func (s *PostgresStorage) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO profile_records (key, value, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = NOW()`,
		key, value)
	if err != nil {
		return &StorageError{Message: "failed to write record", Cause: err}
	}
	return nil
}

// Delete removes the record for key. Deleting a missing key is a no-op.
func (s *PostgresStorage) Delete(ctx context.Context, key string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM profile_records WHERE key = $1`, key)
	if err != nil {
		return &StorageError{Message: "failed to delete record", Cause: err}
	}
	return nil
}

// Close closes the connection pool.
func (s *PostgresStorage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
