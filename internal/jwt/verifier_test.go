package jwt

import (
	"errors"
	"testing"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const testSecret = "super-secret-para-tests"

func TestVerifyValidToken(t *testing.T) {
	sub := uuid.NewString()
	iss := NewIssuer(testSecret, "finanzas-auth")
	tok, _, err := iss.Issue(sub, 5*time.Minute)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	v := NewVerifier(testSecret, "finanzas-auth")
	got, claims, err := v.Verify(tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if got != sub {
		t.Fatalf("sub = %q, esperaba %q", got, sub)
	}
	if claims["iss"] != "finanzas-auth" {
		t.Fatalf("iss = %v", claims["iss"])
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	iss := NewIssuer("otro-secreto", "")
	tok, _, err := iss.Issue(uuid.NewString(), 5*time.Minute)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	v := NewVerifier(testSecret, "")
	if _, _, err := v.Verify(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("err = %v, esperaba ErrTokenInvalid", err)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	iss := NewIssuer(testSecret, "")
	// TTL bien pasado del leeway de 30s.
	tok, _, err := iss.Issue(uuid.NewString(), -2*time.Minute)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	v := NewVerifier(testSecret, "")
	if _, _, err := v.Verify(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("err = %v, esperaba ErrTokenExpired", err)
	}
}

func TestVerifyExpiredWithinLeeway(t *testing.T) {
	iss := NewIssuer(testSecret, "")
	// Expirado hace ~5s: el leeway de 30s lo tiene que aceptar.
	tok, _, err := iss.Issue(uuid.NewString(), -5*time.Second)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	v := NewVerifier(testSecret, "")
	if _, _, err := v.Verify(tok); err != nil {
		t.Fatalf("Verify dentro del leeway: %v", err)
	}
}

func TestVerifyWrongIssuer(t *testing.T) {
	iss := NewIssuer(testSecret, "otro-emisor")
	tok, _, err := iss.Issue(uuid.NewString(), 5*time.Minute)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	v := NewVerifier(testSecret, "finanzas-auth")
	if _, _, err := v.Verify(tok); !errors.Is(err, ErrInvalidIssuer) {
		t.Fatalf("err = %v, esperaba ErrInvalidIssuer", err)
	}
}

func TestVerifySubMustBeUUID(t *testing.T) {
	claims := jwtv5.MapClaims{
		"sub": "no-es-un-uuid",
		"exp": time.Now().Add(5 * time.Minute).Unix(),
	}
	tok, err := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}

	v := NewVerifier(testSecret, "")
	if _, _, err := v.Verify(tok); !errors.Is(err, ErrInvalidSub) {
		t.Fatalf("err = %v, esperaba ErrInvalidSub", err)
	}
}

func TestVerifyRejectsNoneAlg(t *testing.T) {
	claims := jwtv5.MapClaims{
		"sub": uuid.NewString(),
		"exp": time.Now().Add(5 * time.Minute).Unix(),
	}
	tok, err := jwtv5.NewWithClaims(jwtv5.SigningMethodNone, claims).SignedString(jwtv5.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}

	v := NewVerifier(testSecret, "")
	if _, _, err := v.Verify(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("err = %v, esperaba ErrTokenInvalid", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	v := NewVerifier(testSecret, "")
	if _, _, err := v.Verify("no.es.jwt"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("err = %v, esperaba ErrTokenInvalid", err)
	}
}
