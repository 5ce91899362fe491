// Package records define los payloads de entrada de la API de registros.
//
// Los campos numéricos y booleanos usan punteros para distinguir "ausente"
// de "cero": un monto omitido es un error de validación, no un 0.
package records

import "github.com/dropDatabas3/finanzas/internal/validation"

// CategoryRequest es el cuerpo de POST/PUT /api/categories.
type CategoryRequest struct {
	Name string `json:"name"`
}

func (r *CategoryRequest) Validate() error {
	if err := validation.Required("name", r.Name); err != nil {
		return err
	}
	return validation.MaxLen("name", r.Name, 100)
}
