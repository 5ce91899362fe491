// Package config carga la configuración del servicio desde YAML y/o entorno.
package config

import (
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		// dev | prod
		Env string `yaml:"env"`
	} `yaml:"app"`

	Server struct {
		Addr               string   `yaml:"addr"`
		CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
		ShutdownTimeout    string   `yaml:"shutdown_timeout"`
	} `yaml:"server"`

	Storage struct {
		Driver   string `yaml:"driver"` // postgres | memory
		DSN      string `yaml:"dsn"`
		Postgres struct {
			MaxConns        int    `yaml:"max_conns"`
			MinConns        int    `yaml:"min_conns"`
			ConnMaxLifetime string `yaml:"conn_max_lifetime"`
		} `yaml:"postgres"`
		MigrationsDir string `yaml:"migrations_dir"`
	} `yaml:"storage"`

	Cache struct {
		Kind  string `yaml:"kind"` // memory | redis | off
		TTL   string `yaml:"ttl"`
		Redis struct {
			Addr   string `yaml:"addr"`
			DB     int    `yaml:"db"`
			Prefix string `yaml:"prefix"`
		} `yaml:"redis"`
	} `yaml:"cache"`

	JWT struct {
		// Secret compartido con el servicio de auth que emite los tokens.
		Secret string `yaml:"secret"`
		Issuer string `yaml:"issuer"`
	} `yaml:"jwt"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`

	Flags struct {
		// Migrate corre las migraciones al arrancar `serve`.
		Migrate bool `yaml:"migrate"`
	} `yaml:"flags"`
}

// Load lee un YAML y aplica defaults.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	c.applyDefaults()
	return &c, nil
}

// FromEnv arma la config solo desde variables de entorno (sin YAML).
// Las keys matchean las del archivo: SERVER_ADDR, STORAGE_DSN, JWT_SECRET...
func FromEnv() *Config {
	c := &Config{}

	c.App.Env = getenv("APP_ENV", "dev")

	c.Server.Addr = getenv("SERVER_ADDR", ":8080")
	c.Server.CORSAllowedOrigins = splitCSV(getenv("SERVER_CORS_ALLOWED_ORIGINS", "*"))
	c.Server.ShutdownTimeout = getenv("SERVER_SHUTDOWN_TIMEOUT", "10s")

	c.Storage.Driver = getenv("STORAGE_DRIVER", "postgres")
	c.Storage.DSN = getenv("STORAGE_DSN", getenv("DATABASE_URL", ""))
	c.Storage.Postgres.MaxConns = getenvInt("POSTGRES_MAX_CONNS", 8)
	c.Storage.Postgres.MinConns = getenvInt("POSTGRES_MIN_CONNS", 2)
	c.Storage.Postgres.ConnMaxLifetime = getenv("POSTGRES_CONN_MAX_LIFETIME", "30m")
	c.Storage.MigrationsDir = getenv("STORAGE_MIGRATIONS_DIR", "migrations")

	c.Cache.Kind = getenv("CACHE_KIND", "memory")
	c.Cache.TTL = getenv("CACHE_TTL", "2m")
	c.Cache.Redis.Addr = getenv("REDIS_ADDR", "localhost:6379")
	c.Cache.Redis.DB = getenvInt("REDIS_DB", 0)
	c.Cache.Redis.Prefix = getenv("REDIS_PREFIX", "finanzas:")

	c.JWT.Secret = getenv("JWT_SECRET", getenv("ACCESS_TOKEN_SECRET", ""))
	c.JWT.Issuer = getenv("JWT_ISSUER", "")

	c.Log.Level = getenv("LOG_LEVEL", "info")
	c.Flags.Migrate = getenvBool("FLAGS_MIGRATE", false)

	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = "10s"
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = "memory"
	}
	if c.Storage.MigrationsDir == "" {
		c.Storage.MigrationsDir = "migrations"
	}
	if c.Cache.Kind == "" {
		c.Cache.Kind = "memory"
	}
	if c.Cache.TTL == "" {
		c.Cache.TTL = "2m"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
