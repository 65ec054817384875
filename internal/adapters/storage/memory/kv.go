package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-care-tracker/internal/ports/storage"
)

type kv struct {
	mu    sync.RWMutex
	byKey map[string]string
}

// NewKV crea un KV en memoria (modo dev / tests). No sobrevive al proceso.
func NewKV() storage.KV {
	return &kv{
		byKey: make(map[string]string),
	}
}

func (r *kv) Save(ctx context.Context, key string, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(key) == "" {
		return errors.New("key required")
	}
	r.byKey[key] = value
	return nil
}

func (r *kv) Load(ctx context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.byKey[key]
	return v, ok, nil
}
