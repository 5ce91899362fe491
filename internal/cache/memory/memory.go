package memory

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/dropDatabas3/finanzas/internal/cache"
)

type Mem struct{ c *gocache.Cache }

func New(defaultTTL time.Duration) *Mem {
	if defaultTTL <= 0 {
		defaultTTL = 2 * time.Minute
	}
	return &Mem{c: gocache.New(defaultTTL, time.Minute)}
}

func (m *Mem) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.c.Get(key)
	if !ok {
		return nil, cache.ErrNotFound
	}
	b, _ := v.([]byte)
	return b, nil
}

func (m *Mem) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.c.Set(key, value, ttl)
	return nil
}

func (m *Mem) Delete(_ context.Context, key string) error {
	m.c.Delete(key)
	return nil
}

func (m *Mem) Ping(context.Context) error { return nil }
func (m *Mem) Close() error               { return nil }
