package records

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dropDatabas3/finanzas/internal/cache"
	"github.com/dropDatabas3/finanzas/internal/observability/logger"
)

// ListCache cachea los listados por (recurso, usuario) como JSON.
//
// El cache es estrictamente best-effort: cualquier fallo de Get/Set/Delete se
// loguea y se sigue contra el store. Las lecturas que fallan el Get se
// colapsan con singleflight para no apilar N queries idénticas.
type ListCache struct {
	client cache.Client
	ttl    time.Duration
	sf     singleflight.Group
}

// NewListCache envuelve un cache.Client. client nil desactiva el cache.
func NewListCache(client cache.Client, ttl time.Duration) *ListCache {
	return &ListCache{client: client, ttl: ttl}
}

func (lc *ListCache) enabled() bool { return lc != nil && lc.client != nil }

// Invalidate descarta el listado cacheado de un usuario tras una mutación.
func (lc *ListCache) Invalidate(ctx context.Context, kind, userID string) {
	if !lc.enabled() {
		return
	}
	if err := lc.client.Delete(ctx, kind+":"+userID); err != nil {
		logger.From(ctx).Warn("cache: invalidate falló",
			logger.Resource(kind), logger.Err(err))
	}
}

// cachedList resuelve un listado vía cache, con fallback al fetch del store.
func cachedList[T any](ctx context.Context, lc *ListCache, kind, userID string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	if !lc.enabled() {
		return fetch(ctx)
	}
	key := kind + ":" + userID

	if raw, err := lc.client.Get(ctx, key); err == nil {
		var out []T
		if err := json.Unmarshal(raw, &out); err == nil {
			return out, nil
		}
		// Entrada corrupta: se descarta y se sigue al store.
		_ = lc.client.Delete(ctx, key)
	} else if !errors.Is(err, cache.ErrNotFound) {
		logger.From(ctx).Warn("cache: get falló", logger.Resource(kind), logger.Err(err))
	}

	v, err, _ := lc.sf.Do(key, func() (interface{}, error) {
		out, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		if raw, mErr := json.Marshal(out); mErr == nil {
			if sErr := lc.client.Set(ctx, key, raw, lc.ttl); sErr != nil {
				logger.From(ctx).Warn("cache: set falló", logger.Resource(kind), logger.Err(sErr))
			}
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]T), nil
}
