package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
)

var (
	ErrUnknownBackend = errors.New("unknown storage backend")
	ErrMissingDSN     = errors.New("DB_DSN is required for the postgres backend")
	ErrUnknownTZ      = errors.New("unknown timezone")
)

// Backends soportados para persistir el estado del tracker.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"memory"`
	KeyPrefix      string `env:"STORAGE_KEY_PREFIX"`
	SQLitePath     string `env:"SQLITE_PATH" envDefault:"petcare.db"`
	DBDSN          string `env:"DB_DSN"`

	// Zona para fechas sin hora y días calendario (IANA). Vacío = zona local del host.
	Timezone string `env:"STORAGE_TZ"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string `env:"APP_NAME" envDefault:"pet-care-tracker"`
}

// Load lee la config desde env y la valida.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.StorageBackend = strings.ToLower(strings.TrimSpace(cfg.StorageBackend))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := ParseLocation(c.Timezone); err != nil {
		return err
	}
	switch c.StorageBackend {
	case BackendMemory, BackendSQLite, BackendRedis:
		return nil
	case BackendPostgres:
		if strings.TrimSpace(c.DBDSN) == "" {
			return ErrMissingDSN
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.StorageBackend)
	}
}

// Addr es la dirección de escucha del server HTTP.
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// Location resuelve Timezone (ya validado por Load).
func (c Config) Location() *time.Location {
	loc, err := ParseLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// ParseLocation acepta un nombre IANA ("UTC", "America/New_York"); vacío o "Local" es la zona del host.
func ParseLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTZ, name)
	}
	return loc, nil
}
