// Package logger expone un zap.Logger singleton para todo el servicio.
//
// Init() se llama una vez desde main; el resto del código usa L() o, dentro
// de un request, From(ctx) para obtener el logger con los campos del request
// ya aplicados.
package logger

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	once     sync.Once
	instance *zap.Logger
)

// Config configura el logger.
type Config struct {
	// Env: "dev" (consola con colores) o "prod" (JSON).
	Env string
	// Level: "debug", "info", "warn", "error". Default: "info".
	Level string
	// ServiceName opcional, se agrega como campo base.
	ServiceName string
}

// Init inicializa el singleton. Idempotente: solo la primera llamada tiene efecto.
func Init(cfg Config) {
	once.Do(func() {
		instance = build(cfg)
	})
}

// L retorna el logger singleton. Si Init no fue llamado, crea uno por defecto.
func L() *zap.Logger {
	if instance == nil {
		Init(Config{Env: "dev", Level: "info"})
	}
	return instance
}

// Sync flushea buffers pendientes. Llamar con defer en main.
func Sync() error {
	if instance != nil {
		return instance.Sync()
	}
	return nil
}

func build(cfg Config) *zap.Logger {
	level := parseLevel(cfg.Level)

	var zcfg zap.Config
	if strings.ToLower(cfg.Env) == "prod" {
		zcfg = zap.NewProductionConfig()
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zcfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		zcfg.DisableStacktrace = true
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	l, err := zcfg.Build(zap.AddCaller())
	if err != nil {
		l, _ = zap.NewProduction()
	}
	if cfg.ServiceName != "" {
		l = l.With(zap.String("service", cfg.ServiceName))
	}
	return l
}

func parseLevel(lvl string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
