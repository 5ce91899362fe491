package jwt

import (
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

// Issuer firma tokens HS256 con el mismo secreto que usa el Verifier.
// Lo usan los tests y el subcomando `finanzas token` para obtener credenciales
// de dev sin levantar el servicio de auth.
type Issuer struct {
	secret    []byte
	iss       string
	AccessTTL time.Duration
}

func NewIssuer(secret, iss string) *Issuer {
	return &Issuer{
		secret:    []byte(secret),
		iss:       iss,
		AccessTTL: 15 * time.Minute,
	}
}

// Issue emite un access token para el sub dado. ttl 0 usa AccessTTL.
// Un ttl negativo produce un token ya expirado (útil en tests).
func (i *Issuer) Issue(sub string, ttl time.Duration) (string, time.Time, error) {
	now := time.Now().UTC()
	if ttl == 0 {
		ttl = i.AccessTTL
	}
	exp := now.Add(ttl)

	claims := jwtv5.MapClaims{
		"iss": i.iss,
		"sub": sub,
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"exp": exp.Unix(),
	}
	tk := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	tk.Header["typ"] = "JWT"

	signed, err := tk.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}
