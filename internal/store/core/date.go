package core

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout es el único formato aceptado para fechas de la API.
const DateLayout = "2006-01-02"

// Date es una fecha con precisión de día (sin hora ni zona).
// En JSON viaja como "YYYY-MM-DD"; en SQL mapea a DATE.
type Date struct {
	time.Time
}

// ParseDate parsea "YYYY-MM-DD".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: fecha inválida %q (se espera YYYY-MM-DD)", ErrInvalid, s)
	}
	return Date{Time: t}, nil
}

// NewDate construye una Date truncando el instante al día (UTC).
func NewDate(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string { return d.Format(DateLayout) }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
