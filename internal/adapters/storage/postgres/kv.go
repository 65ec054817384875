package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

type KV struct {
	db *sql.DB
}

func NewKV(db *sql.DB) *KV {
	return &KV{db: db}
}

// EnsureSchema crea kv_state si no existe. Idempotente.
func (r *KV) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS kv_state (
			key        TEXT PRIMARY KEY,
			payload    TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("postgres: create kv_state: %w", err)
	}
	return nil
}

func (r *KV) Save(ctx context.Context, key string, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("postgres: key required")
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kv_state (key, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET payload = EXCLUDED.payload, updated_at = now()
	`, key, value)
	if err != nil {
		return fmt.Errorf("postgres: save %s: %w", key, err)
	}
	return nil
}

func (r *KV) Load(ctx context.Context, key string) (string, bool, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT payload
		FROM kv_state
		WHERE key = $1
	`, key)

	var payload string
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("postgres: load %s: %w", key, err)
	}
	return payload, true, nil
}

func (r *KV) Close() error {
	return r.db.Close()
}
