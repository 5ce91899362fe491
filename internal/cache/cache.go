// Package cache define la abstracción de cache con backends memory y redis.
//
// El servicio lo usa para cachear listados por usuario; una falla de cache
// nunca es fatal, el caller cae al store.
package cache

import (
	"context"
	"time"
)

// Client define las operaciones de cache.
type Client interface {
	// Get obtiene un valor. Retorna ErrNotFound si la key no existe.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set guarda un valor con TTL. ttl 0 usa el default del backend.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete elimina una key (no es error si no existe).
	Delete(ctx context.Context, key string) error

	// Ping verifica la conexión.
	Ping(ctx context.Context) error

	// Close cierra la conexión.
	Close() error
}

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "cache: key not found" }
