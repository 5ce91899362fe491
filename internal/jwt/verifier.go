// Package jwt implementa la puerta de identidad: verificación de tokens HS256
// emitidos por el servicio de auth externo. Acá no se emiten tokens de
// producción — ver Issuer para el caso dev/test.
package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenInvalid  = errors.New("invalid_jwt")
	ErrTokenExpired  = errors.New("expired")
	ErrInvalidIssuer = errors.New("invalid_issuer")
	ErrInvalidSub    = errors.New("invalid_sub")
)

// Verifier valida firma HS256, iss (si expectedIss != "") y exp/nbf con una
// pequeña tolerancia. La verificación es pura: no toca red ni storage.
type Verifier struct {
	secret []byte
	iss    string
	leeway time.Duration
}

func NewVerifier(secret, expectedIss string) *Verifier {
	return &Verifier{
		secret: []byte(secret),
		iss:    expectedIss,
		leeway: 30 * time.Second,
	}
}

// Verify valida el token y devuelve el userID (claim "sub", debe ser UUID)
// más las claims completas.
func (v *Verifier) Verify(token string) (string, map[string]any, error) {
	keyfunc := func(*jwtv5.Token) (any, error) { return v.secret, nil }

	tok, err := jwtv5.Parse(token, keyfunc,
		jwtv5.WithValidMethods([]string{"HS256"}),
		jwtv5.WithLeeway(v.leeway),
	)
	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return "", nil, ErrTokenExpired
		}
		return "", nil, ErrTokenInvalid
	}
	if !tok.Valid {
		return "", nil, ErrTokenInvalid
	}

	claims, ok := tok.Claims.(jwtv5.MapClaims)
	if !ok {
		return "", nil, ErrTokenInvalid
	}

	if v.iss != "" {
		if iss, _ := claims["iss"].(string); iss != v.iss {
			return "", nil, ErrInvalidIssuer
		}
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", nil, ErrInvalidSub
	}
	if _, err := uuid.Parse(sub); err != nil {
		return "", nil, ErrInvalidSub
	}

	out := make(map[string]any, len(claims))
	for k, val := range claims {
		out[k] = val
	}
	return sub, out, nil
}
