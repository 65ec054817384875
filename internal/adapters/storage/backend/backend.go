// Package backend elige e inicializa la implementación de storage.KV
// según la config (server o CLI).
package backend

import (
	"context"
	"fmt"
	"strings"

	"pet-care-tracker/internal/adapters/storage/memory"
	pg "pet-care-tracker/internal/adapters/storage/postgres"
	rd "pet-care-tracker/internal/adapters/storage/redis"
	"pet-care-tracker/internal/adapters/storage/sqlite"
	"pet-care-tracker/internal/platform/config"
	"pet-care-tracker/internal/ports/storage"
)

type Settings struct {
	Backend    string
	KeyPrefix  string
	SQLitePath string
	DBDSN      string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// FromConfig arma Settings desde la config del server.
func FromConfig(c config.Config) Settings {
	return Settings{
		Backend:       c.StorageBackend,
		KeyPrefix:     c.KeyPrefix,
		SQLitePath:    c.SQLitePath,
		DBDSN:         c.DBDSN,
		RedisAddr:     c.RedisAddr,
		RedisPassword: c.RedisPassword,
		RedisDB:       c.RedisDB,
	}
}

// Open devuelve el KV listo para usar y una función para cerrarlo.
func Open(ctx context.Context, s Settings) (storage.KV, func() error, error) {
	noop := func() error { return nil }

	switch strings.ToLower(strings.TrimSpace(s.Backend)) {
	case config.BackendMemory, "":
		return withPrefix(memory.NewKV(), s.KeyPrefix), noop, nil

	case config.BackendSQLite:
		kv, err := sqlite.Open(s.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		return withPrefix(kv, s.KeyPrefix), kv.Close, nil

	case config.BackendPostgres:
		if strings.TrimSpace(s.DBDSN) == "" {
			return nil, noop, config.ErrMissingDSN
		}
		db, err := pg.Open(s.DBDSN)
		if err != nil {
			return nil, noop, fmt.Errorf("postgres: open: %w", err)
		}
		kv := pg.NewKV(db)
		if err := kv.EnsureSchema(ctx); err != nil {
			_ = kv.Close()
			return nil, noop, err
		}
		return withPrefix(kv, s.KeyPrefix), kv.Close, nil

	case config.BackendRedis:
		kv := rd.NewKV(rd.NewClient(rd.Options{
			Addr:     s.RedisAddr,
			Password: s.RedisPassword,
			DB:       s.RedisDB,
		}), s.KeyPrefix)
		if err := kv.Ping(ctx); err != nil {
			_ = kv.Close()
			return nil, noop, fmt.Errorf("redis: ping %s: %w", s.RedisAddr, err)
		}
		return kv, kv.Close, nil

	default:
		return nil, noop, fmt.Errorf("%w: %q", config.ErrUnknownBackend, s.Backend)
	}
}

// prefixed antepone un prefijo a cada key (redis lo hace nativo).
type prefixed struct {
	kv     storage.KV
	prefix string
}

func withPrefix(kv storage.KV, prefix string) storage.KV {
	if prefix == "" {
		return kv
	}
	return prefixed{kv: kv, prefix: prefix}
}

func (p prefixed) Save(ctx context.Context, key, value string) error {
	return p.kv.Save(ctx, p.prefix+key, value)
}

func (p prefixed) Load(ctx context.Context, key string) (string, bool, error) {
	return p.kv.Load(ctx, p.prefix+key)
}
