package middlewares

import "context"

type ctxKey string

const (
	ctxClaimsKey    ctxKey = "claims"
	ctxUserIDKey    ctxKey = "user_id"
	ctxRequestIDKey ctxKey = "request_id"
)

// WithClaims inyecta las claims JWT parseadas en el contexto.
func WithClaims(ctx context.Context, claims map[string]any) context.Context {
	return context.WithValue(ctx, ctxClaimsKey, claims)
}

// WithUserID inyecta el user ID verificado en el contexto.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxUserIDKey, userID)
}

func setRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxRequestIDKey, requestID)
}

// GetClaims obtiene las claims del contexto, o nil si no hay token validado.
func GetClaims(ctx context.Context) map[string]any {
	if v := ctx.Value(ctxClaimsKey); v != nil {
		if m, ok := v.(map[string]any); ok {
			return m
		}
	}
	return nil
}

// GetUserID obtiene el user ID verificado, o "" si el gate no corrió.
// Ningún handler debe tocar el store con un userID vacío.
func GetUserID(ctx context.Context) string {
	if v := ctx.Value(ctxUserIDKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetRequestID obtiene el request ID, o "".
func GetRequestID(ctx context.Context) string {
	if v := ctx.Value(ctxRequestIDKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
