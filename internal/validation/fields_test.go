package validation

import (
	"errors"
	"math"
	"testing"
)

func fieldOf(t *testing.T, err error) string {
	t.Helper()
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, esperaba *FieldError", err)
	}
	return fe.Field
}

func TestRequired(t *testing.T) {
	if err := Required("name", "Comida"); err != nil {
		t.Fatalf("valor presente: %v", err)
	}
	if f := fieldOf(t, Required("name", "   ")); f != "name" {
		t.Fatalf("field = %q", f)
	}
}

func TestPositiveAmount(t *testing.T) {
	ok := 10.5
	if err := PositiveAmount("amount", &ok); err != nil {
		t.Fatalf("monto válido: %v", err)
	}

	if err := PositiveAmount("amount", nil); err == nil {
		t.Fatal("nil tendría que fallar")
	}
	zero := 0.0
	if err := PositiveAmount("amount", &zero); err == nil {
		t.Fatal("cero tendría que fallar")
	}
	neg := -3.0
	if err := PositiveAmount("amount", &neg); err == nil {
		t.Fatal("negativo tendría que fallar")
	}
	nan := math.NaN()
	if err := PositiveAmount("amount", &nan); err == nil {
		t.Fatal("NaN tendría que fallar")
	}
	inf := math.Inf(1)
	if err := PositiveAmount("amount", &inf); err == nil {
		t.Fatal("Inf tendría que fallar")
	}
}

func TestNonNegative(t *testing.T) {
	if err := NonNegative("saved", nil); err != nil {
		t.Fatalf("nil es válido (campo opcional): %v", err)
	}
	zero := 0.0
	if err := NonNegative("saved", &zero); err != nil {
		t.Fatalf("cero es válido: %v", err)
	}
	neg := -1.0
	if err := NonNegative("saved", &neg); err == nil {
		t.Fatal("negativo tendría que fallar")
	}
}

func TestOneOf(t *testing.T) {
	if err := OneOf("type", "income", "income", "expense"); err != nil {
		t.Fatalf("valor permitido: %v", err)
	}
	if err := OneOf("type", "transfer", "income", "expense"); err == nil {
		t.Fatal("valor no permitido tendría que fallar")
	}
}

func TestDate(t *testing.T) {
	d, err := Date("date", "2026-08-30")
	if err != nil {
		t.Fatalf("fecha válida: %v", err)
	}
	if d.String() != "2026-08-30" {
		t.Fatalf("d = %v", d)
	}

	if _, err := Date("date", ""); err == nil {
		t.Fatal("vacía tendría que fallar")
	}
	if _, err := Date("date", "30-08-2026"); err == nil {
		t.Fatal("formato inválido tendría que fallar")
	}
}

func TestOptionalDate(t *testing.T) {
	d, err := OptionalDate("target_date", "")
	if err != nil || d != nil {
		t.Fatalf("vacía = (%v, %v), esperaba (nil, nil)", d, err)
	}
	d, err = OptionalDate("target_date", "2027-01-01")
	if err != nil || d == nil {
		t.Fatalf("válida = (%v, %v)", d, err)
	}
	if _, err := OptionalDate("target_date", "pronto"); err == nil {
		t.Fatal("formato inválido tendría que fallar")
	}
}

func TestMaxLen(t *testing.T) {
	if err := MaxLen("name", "corto", 100); err != nil {
		t.Fatalf("dentro del límite: %v", err)
	}
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	if err := MaxLen("name", string(long), 100); err == nil {
		t.Fatal("sobre el límite tendría que fallar")
	}
}
