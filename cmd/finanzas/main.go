package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dropDatabas3/finanzas/internal/cache"
	cachemem "github.com/dropDatabas3/finanzas/internal/cache/memory"
	cacheredis "github.com/dropDatabas3/finanzas/internal/cache/redis"
	"github.com/dropDatabas3/finanzas/internal/config"
	httpserver "github.com/dropDatabas3/finanzas/internal/http"
	"github.com/dropDatabas3/finanzas/internal/http/controllers/health"
	recordsctl "github.com/dropDatabas3/finanzas/internal/http/controllers/records"
	"github.com/dropDatabas3/finanzas/internal/http/router"
	recordssvc "github.com/dropDatabas3/finanzas/internal/http/services/records"
	jwtx "github.com/dropDatabas3/finanzas/internal/jwt"
	"github.com/dropDatabas3/finanzas/internal/observability/logger"
	"github.com/dropDatabas3/finanzas/internal/store"
	"github.com/dropDatabas3/finanzas/internal/store/core"
	pgdriver "github.com/dropDatabas3/finanzas/internal/store/pg"
)

var version = "dev"

func main() {
	// .env es opcional; si no existe se sigue con el entorno real.
	_ = godotenv.Load()

	var cfgPath string

	root := &cobra.Command{
		Use:           "finanzas",
		Short:         "API de registros financieros personales",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "ruta al YAML de configuración (vacío = solo entorno)")

	root.AddCommand(serveCmd(&cfgPath))
	root.AddCommand(migrateCmd(&cfgPath))
	root.AddCommand(tokenCmd(&cfgPath))
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Imprime la versión",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Println(version)
		},
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.FromEnv(), nil
	}
	return config.Load(path)
}

func serveCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Levanta el servidor HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}
			if cfg.JWT.Secret == "" {
				return fmt.Errorf("falta el secreto JWT (JWT_SECRET / ACCESS_TOKEN_SECRET)")
			}

			logger.Init(logger.Config{
				Env:         cfg.App.Env,
				Level:       cfg.Log.Level,
				ServiceName: "finanzas",
			})
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			repo, err := store.New(ctx, cfg)
			if err != nil {
				return err
			}
			defer repo.Close()

			if cfg.Flags.Migrate {
				if err := runMigrations(ctx, repo, cfg, false); err != nil {
					return err
				}
			}

			listCache, closeCache, err := buildListCache(ctx, cfg)
			if err != nil {
				return err
			}
			if closeCache != nil {
				defer closeCache()
			}

			services := recordssvc.New(recordssvc.Deps{
				Repo:  repo,
				IDs:   core.UUIDGenerator{},
				Cache: listCache,
			})

			var metricsHandler = httpserver.RegisterMetrics(pgPool(repo))

			handler := router.New(router.Deps{
				Records:  recordsctl.New(services),
				Health:   health.New(repo),
				Verifier: jwtx.NewVerifier(cfg.JWT.Secret, cfg.JWT.Issuer),
				Metrics:  metricsHandler,
				CORS:     cfg.Server.CORSAllowedOrigins,
			})

			shutdown := parseDuration(cfg.Server.ShutdownTimeout, 10*time.Second)
			srv := httpserver.NewServer(cfg.Server.Addr, handler, shutdown)

			logger.L().Info("serve: arrancando",
				logger.String("env", cfg.App.Env),
				logger.String("driver", cfg.Storage.Driver),
				logger.String("cache", cfg.Cache.Kind),
			)
			return srv.Start(ctx)
		},
	}
}

func migrateCmd(cfgPath *string) *cobra.Command {
	var down bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Corre las migraciones de la base (up por defecto)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}
			logger.Init(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, ServiceName: "finanzas"})
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			repo, err := store.New(ctx, cfg)
			if err != nil {
				return err
			}
			defer repo.Close()

			return runMigrations(ctx, repo, cfg, down)
		},
	}
	cmd.Flags().BoolVar(&down, "down", false, "revierte en vez de aplicar")
	return cmd
}

func tokenCmd(cfgPath *string) *cobra.Command {
	var (
		sub string
		ttl time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite un token de acceso HS256 para pruebas locales",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}
			if cfg.JWT.Secret == "" {
				return fmt.Errorf("falta el secreto JWT (JWT_SECRET / ACCESS_TOKEN_SECRET)")
			}
			issuer := jwtx.NewIssuer(cfg.JWT.Secret, cfg.JWT.Issuer)
			tok, exp, err := issuer.Issue(sub, ttl)
			if err != nil {
				return err
			}
			fmt.Println(tok)
			fmt.Fprintln(os.Stderr, "expira:", exp.Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().StringVar(&sub, "sub", "", "user ID (UUID) para la claim sub")
	cmd.Flags().DurationVar(&ttl, "ttl", 15*time.Minute, "vigencia del token")
	_ = cmd.MarkFlagRequired("sub")
	return cmd
}

// runMigrations solo aplica con el driver postgres; con memory no hay nada
// que migrar.
func runMigrations(ctx context.Context, repo core.Repository, cfg *config.Config, down bool) error {
	pgStore, ok := repo.(*pgdriver.Store)
	if !ok {
		logger.L().Info("migrate: driver sin migraciones", logger.String("driver", cfg.Storage.Driver))
		return nil
	}
	if down {
		return pgStore.RunMigrationsDown(ctx, cfg.Storage.MigrationsDir)
	}
	return pgStore.RunMigrations(ctx, cfg.Storage.MigrationsDir)
}

// buildListCache arma el backend de cache según config. "off" devuelve nil
// (los servicios van directo al store).
func buildListCache(ctx context.Context, cfg *config.Config) (*recordssvc.ListCache, func(), error) {
	ttl := parseDuration(cfg.Cache.TTL, 2*time.Minute)

	var client cache.Client
	switch cfg.Cache.Kind {
	case "off", "none":
		return nil, nil, nil
	case "redis":
		rc := cacheredis.New(cfg.Cache.Redis.Addr, cfg.Cache.Redis.DB, cfg.Cache.Redis.Prefix)
		if err := rc.Ping(ctx); err != nil {
			return nil, nil, fmt.Errorf("cache redis: %w", err)
		}
		client = rc
	case "memory", "":
		client = cachemem.New(ttl)
	default:
		return nil, nil, fmt.Errorf("cache kind desconocido: %q", cfg.Cache.Kind)
	}

	closeFn := func() { _ = client.Close() }
	return recordssvc.NewListCache(client, ttl), closeFn, nil
}

func pgPool(repo core.Repository) *pgxpool.Pool {
	if pgStore, ok := repo.(*pgdriver.Store); ok {
		return pgStore.Pool()
	}
	return nil
}

func parseDuration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
