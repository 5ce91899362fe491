package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
app:
  env: prod
server:
  addr: ":9090"
  cors_allowed_origins: ["https://app.example.com"]
storage:
  driver: postgres
  dsn: "postgres://localhost/finanzas"
cache:
  kind: redis
  redis:
    addr: "localhost:6379"
    prefix: "fz:"
jwt:
  secret: "abc"
  issuer: "finanzas-auth"
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.Env != "prod" {
		t.Fatalf("env = %q", cfg.App.Env)
	}
	if cfg.Server.Addr != ":9090" {
		t.Fatalf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Storage.Driver != "postgres" {
		t.Fatalf("driver = %q", cfg.Storage.Driver)
	}
	if cfg.Cache.Kind != "redis" || cfg.Cache.Redis.Prefix != "fz:" {
		t.Fatalf("cache = %+v", cfg.Cache)
	}
	if cfg.JWT.Issuer != "finanzas-auth" {
		t.Fatalf("issuer = %q", cfg.JWT.Issuer)
	}
	// Defaults aplicados sobre lo no seteado.
	if cfg.Server.ShutdownTimeout != "10s" {
		t.Fatalf("shutdown_timeout = %q", cfg.Server.ShutdownTimeout)
	}
	if cfg.Cache.TTL != "2m" {
		t.Fatalf("ttl = %q", cfg.Cache.TTL)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/no/existe/config.yaml"); err == nil {
		t.Fatal("esperaba error de archivo inexistente")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":7070")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("DATABASE_URL", "postgres://db/fallback")
	t.Setenv("ACCESS_TOKEN_SECRET", "legacy-secret")
	t.Setenv("SERVER_CORS_ALLOWED_ORIGINS", "https://a.com, https://b.com")

	cfg := FromEnv()
	if cfg.Server.Addr != ":7070" {
		t.Fatalf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Storage.Driver != "memory" {
		t.Fatalf("driver = %q", cfg.Storage.Driver)
	}
	// DATABASE_URL actúa de fallback de STORAGE_DSN.
	if cfg.Storage.DSN != "postgres://db/fallback" {
		t.Fatalf("dsn = %q", cfg.Storage.DSN)
	}
	// ACCESS_TOKEN_SECRET actúa de fallback de JWT_SECRET.
	if cfg.JWT.Secret != "legacy-secret" {
		t.Fatalf("secret = %q", cfg.JWT.Secret)
	}
	if len(cfg.Server.CORSAllowedOrigins) != 2 || cfg.Server.CORSAllowedOrigins[1] != "https://b.com" {
		t.Fatalf("cors = %v", cfg.Server.CORSAllowedOrigins)
	}
}

func TestDefaults(t *testing.T) {
	var c Config
	c.applyDefaults()
	if c.App.Env != "dev" || c.Server.Addr != ":8080" || c.Storage.Driver != "memory" {
		t.Fatalf("defaults = %+v", c)
	}
}
