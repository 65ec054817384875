package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-redis/redis/v8"
)

type Options struct {
	Addr     string
	Password string
	DB       int

	// Prefix se antepone a cada key (ej "petcare:"), para compartir instancia.
	Prefix string
}

type KV struct {
	c      *redis.Client
	prefix string
}

// NewClient crea el cliente go-redis a partir de Options.
func NewClient(opts Options) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
}

func NewKV(c *redis.Client, prefix string) *KV {
	return &KV{c: c, prefix: prefix}
}

// Ping verifica la conexión.
func (r *KV) Ping(ctx context.Context) error {
	return r.c.Ping(ctx).Err()
}

func (r *KV) Save(ctx context.Context, key string, value string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("redis: key required")
	}
	// sin TTL: es el estado persistido, no un cache
	if err := r.c.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis: save %s: %w", key, err)
	}
	return nil
}

func (r *KV) Load(ctx context.Context, key string) (string, bool, error) {
	val, err := r.c.Get(ctx, r.prefix+key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis: load %s: %w", key, err)
	}
	return val, true, nil
}

func (r *KV) Close() error {
	return r.c.Close()
}
