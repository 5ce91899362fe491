package pg

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dropDatabas3/finanzas/internal/observability/logger"
)

// Store implementa core.Repository sobre PostgreSQL (pgxpool).
type Store struct{ pool *pgxpool.Pool }

// Config tuning opcional del pool.
type Config struct {
	MaxConns        int
	MinConns        int
	ConnMaxLifetime string
}

func New(ctx context.Context, dsn string, cfg Config) (*Store, error) {
	pcfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	if cfg.MaxConns > 0 {
		pcfg.MaxConns = int32(cfg.MaxConns)
	}
	if cfg.MinConns > 0 {
		pcfg.MinConns = int32(cfg.MinConns)
	}
	if cfg.ConnMaxLifetime != "" {
		if d, err := time.ParseDuration(cfg.ConnMaxLifetime); err == nil {
			pcfg.MaxConnLifetime = d
			pcfg.MaxConnIdleTime = d
		}
	}
	if pcfg.MaxConns == 0 {
		pcfg.MaxConns = 8
	}

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, err
	}

	// Arranque no bloqueante: si la DB está caída igual levantamos el proceso.
	// /readyz reporta el estado real.
	if err := pool.Ping(ctx); err != nil {
		logger.L().Warn("pg pool startup ping failed", logger.Err(err))
	} else {
		logger.L().Info("pg pool ready", logger.Int("max_conns", int(pcfg.MaxConns)))
	}

	return &Store{pool: pool}, nil
}

func (s *Store) Ping(ctx context.Context) error { return s.pool.Ping(ctx) }

// Pool expone el pool interno (metrics/migraciones).
func (s *Store) Pool() *pgxpool.Pool {
	if s == nil {
		return nil
	}
	return s.pool
}

// Close cierra el pool subyacente (idempotente).
func (s *Store) Close() {
	if s != nil && s.pool != nil {
		s.pool.Close()
	}
}

// isUniqueViolation detecta el código 23505 (unique_violation) de Postgres.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
