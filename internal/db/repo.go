package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Repository is a Postgres-backed key-value table used as durable profile
// storage. Each key holds one serialized document that is rewritten whole.
type Repository struct {
	DB *sql.DB
}

// NewRepository constructs a new Repository from an existing sql.DB.
// The caller is responsible for managing the DB connection lifecycle.
func NewRepository(db *sql.DB) *Repository { return &Repository{DB: db} }

// Get returns the value stored under key. found is false when no row exists.
func (r *Repository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := r.DB.QueryRowContext(ctx,
		`SELECT value FROM profile_storage WHERE storage_key = $1`, key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read %s: %w", key, err)
	}
	return []byte(value), true, nil
}

// Put creates or overwrites the value stored under key.
func (r *Repository) Put(ctx context.Context, key string, value []byte) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO profile_storage (storage_key, value, updated_at)
         VALUES ($1, $2, NOW())
         ON CONFLICT (storage_key)
         DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		key, string(value),
	)
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (r *Repository) Delete(ctx context.Context, key string) error {
	if _, err := r.DB.ExecContext(ctx,
		`DELETE FROM profile_storage WHERE storage_key = $1`, key,
	); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
