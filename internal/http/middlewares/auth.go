package middlewares

import (
	"errors"
	"net/http"
	"strings"

	httperrors "github.com/dropDatabas3/finanzas/internal/http/errors"
	jwtx "github.com/dropDatabas3/finanzas/internal/jwt"
)

// RequireAuth valida Authorization: Bearer <JWT> y guarda userID + claims en
// el contexto. Sin token válido responde 401 y el request nunca llega al
// store: es la única puerta de identidad, no hay camino anónimo.
func RequireAuth(verifier *jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ah := strings.TrimSpace(r.Header.Get("Authorization"))
			if ah == "" || !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
				w.Header().Set("WWW-Authenticate", `Bearer realm="api", error="invalid_token", error_description="missing bearer token"`)
				httperrors.WriteError(w, httperrors.ErrTokenMissing)
				return
			}
			raw := strings.TrimSpace(ah[len("Bearer "):])

			userID, claims, err := verifier.Verify(raw)
			if err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer realm="api", error="invalid_token", error_description="`+err.Error()+`"`)
				if errors.Is(err, jwtx.ErrTokenExpired) {
					httperrors.WriteError(w, httperrors.ErrTokenExpired)
					return
				}
				httperrors.WriteError(w, httperrors.ErrTokenInvalid.WithDetail(err.Error()))
				return
			}

			ctx := WithClaims(r.Context(), claims)
			ctx = WithUserID(ctx, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
