// Package validation contiene los chequeos de payload por campo.
//
// La validación corre SIEMPRE antes de tocar el store: un payload malformado
// se rechaza con 400, nunca se delega a que la base lo rechace.
package validation

import (
	"math"
	"strings"

	"github.com/dropDatabas3/finanzas/internal/store/core"
)

// FieldError describe el primer campo inválido del payload.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Reason }

// Required valida presencia de un string no-blanco.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &FieldError{Field: field, Reason: "requerido"}
	}
	return nil
}

// MaxLen limita el largo de un string.
func MaxLen(field, value string, max int) error {
	if len(value) > max {
		return &FieldError{Field: field, Reason: "demasiado largo"}
	}
	return nil
}

// PositiveAmount exige un monto presente, finito y > 0.
func PositiveAmount(field string, v *float64) error {
	if v == nil {
		return &FieldError{Field: field, Reason: "requerido"}
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return &FieldError{Field: field, Reason: "no es un número válido"}
	}
	if *v <= 0 {
		return &FieldError{Field: field, Reason: "debe ser mayor que cero"}
	}
	return nil
}

// NonNegative acepta ausencia (nil) pero rechaza negativos o no-finitos.
func NonNegative(field string, v *float64) error {
	if v == nil {
		return nil
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return &FieldError{Field: field, Reason: "no es un número válido"}
	}
	if *v < 0 {
		return &FieldError{Field: field, Reason: "no puede ser negativo"}
	}
	return nil
}

// OneOf exige que el valor esté en el conjunto permitido.
func OneOf(field, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &FieldError{Field: field, Reason: "valor no permitido"}
}

// Date parsea una fecha requerida "YYYY-MM-DD".
func Date(field, value string) (core.Date, error) {
	if strings.TrimSpace(value) == "" {
		return core.Date{}, &FieldError{Field: field, Reason: "requerido"}
	}
	d, err := core.ParseDate(value)
	if err != nil {
		return core.Date{}, &FieldError{Field: field, Reason: "formato inválido (se espera YYYY-MM-DD)"}
	}
	return d, nil
}

// OptionalDate parsea una fecha opcional; "" devuelve nil.
func OptionalDate(field, value string) (*core.Date, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	d, err := core.ParseDate(value)
	if err != nil {
		return nil, &FieldError{Field: field, Reason: "formato inválido (se espera YYYY-MM-DD)"}
	}
	return &d, nil
}
