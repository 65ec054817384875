// Package sqlite persiste el estado del tracker en un archivo SQLite
// (driver pure-go modernc.org/sqlite), una fila por key.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS kv_state (
	key     TEXT PRIMARY KEY,
	payload TEXT NOT NULL
)`

type KV struct {
	db *sql.DB
}

// Open abre (o crea) el archivo y asegura la tabla kv_state.
func Open(path string) (*KV, error) {
	if strings.TrimSpace(path) == "" {
		path = "petcare.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("sqlite: create dirs: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	// un solo writer; evita SQLITE_BUSY con el pool de database/sql
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: create kv_state: %w", err)
	}
	return &KV{db: db}, nil
}

func (s *KV) Save(ctx context.Context, key string, value string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("sqlite: key required")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv_state (key, payload) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload
	`, key, value)
	if err != nil {
		return fmt.Errorf("sqlite: save %s: %w", key, err)
	}
	return nil
}

func (s *KV) Load(ctx context.Context, key string) (string, bool, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM kv_state WHERE key = ?`, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("sqlite: load %s: %w", key, err)
	}
	return payload, true, nil
}

func (s *KV) Close() error {
	return s.db.Close()
}
