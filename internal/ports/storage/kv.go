package storage

import "context"

// KV es el medio clave-valor del host donde el tracker serializa su estado.
// Load devuelve found=false (sin error) cuando la key no existe.
type KV interface {
	Save(ctx context.Context, key string, value string) error
	Load(ctx context.Context, key string) (value string, found bool, err error)
}
