// Package store selecciona la implementación de core.Repository según config.
package store

import (
	"context"
	"fmt"

	"github.com/dropDatabas3/finanzas/internal/config"
	"github.com/dropDatabas3/finanzas/internal/store/core"
	"github.com/dropDatabas3/finanzas/internal/store/memory"
	"github.com/dropDatabas3/finanzas/internal/store/pg"
)

// New crea el repositorio según cfg.Storage.Driver: "postgres" o "memory".
// "memory" existe para dev/tests; no persiste nada.
func New(ctx context.Context, cfg *config.Config) (core.Repository, error) {
	switch cfg.Storage.Driver {
	case "postgres", "pg":
		if cfg.Storage.DSN == "" {
			return nil, fmt.Errorf("storage: driver postgres requiere dsn")
		}
		return pg.New(ctx, cfg.Storage.DSN, pg.Config{
			MaxConns:        cfg.Storage.Postgres.MaxConns,
			MinConns:        cfg.Storage.Postgres.MinConns,
			ConnMaxLifetime: cfg.Storage.Postgres.ConnMaxLifetime,
		})
	case "memory", "":
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("storage: driver desconocido %q", cfg.Storage.Driver)
	}
}
