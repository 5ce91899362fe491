package redis

import (
	"context"
	"errors"
	"time"

	rdb "github.com/redis/go-redis/v9"

	"github.com/dropDatabas3/finanzas/internal/cache"
)

type Cache struct {
	c      *rdb.Client
	prefix string
}

func New(addr string, db int, prefix string) *Cache {
	return &Cache{
		c:      rdb.NewClient(&rdb.Options{Addr: addr, DB: db}),
		prefix: prefix,
	}
}

func (r *Cache) key(k string) string { return r.prefix + k }

func (r *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := r.c.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, rdb.Nil) {
			return nil, cache.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.c.Set(ctx, r.key(key), value, ttl).Err()
}

func (r *Cache) Delete(ctx context.Context, key string) error {
	return r.c.Del(ctx, r.key(key)).Err()
}

func (r *Cache) Ping(ctx context.Context) error { return r.c.Ping(ctx).Err() }
func (r *Cache) Close() error                   { return r.c.Close() }
