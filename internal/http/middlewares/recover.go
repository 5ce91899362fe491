package middlewares

import (
	"net/http"

	httperrors "github.com/dropDatabas3/finanzas/internal/http/errors"
	"github.com/dropDatabas3/finanzas/internal/observability/logger"
)

// WithRecover captura panics y devuelve 500 en lugar de voltear el proceso.
// Un request roto no debe tirar el listener.
func WithRecover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log := logger.From(r.Context())
					log.Error("panic recovered",
						logger.Op("recover"),
						logger.Any("panic", rec),
					)
					httperrors.WriteError(w, httperrors.ErrInternalServerError.WithDetail("panic recovered"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
