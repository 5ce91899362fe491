package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey struct{}

// ToContext inyecta un logger "scoped" en el contexto (lo hace el middleware
// de logging con los campos del request).
func ToContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// From extrae el logger del contexto, o el singleton si no hay ninguno.
// Seguro de usar en cualquier capa sin saber si el middleware corrió.
func From(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return L()
	}
	if v := ctx.Value(ctxKey{}); v != nil {
		if l, ok := v.(*zap.Logger); ok {
			return l
		}
	}
	return L()
}
