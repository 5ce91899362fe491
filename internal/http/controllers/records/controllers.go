// Package records expone los handlers HTTP de los recursos financieros.
//
// Los controllers no contienen lógica de negocio: leen el request, sacan el
// userID del contexto (puesto por el middleware de auth), delegan en el
// servicio y traducen los errores de dominio a respuestas HTTP.
package records

import (
	"errors"
	"net/http"

	httperr "github.com/dropDatabas3/finanzas/internal/http/errors"
	svc "github.com/dropDatabas3/finanzas/internal/http/services/records"
	"github.com/dropDatabas3/finanzas/internal/observability/logger"
	"github.com/dropDatabas3/finanzas/internal/store/core"
	"github.com/dropDatabas3/finanzas/internal/validation"
)

// Controllers agrupa los handlers de los cuatro recursos.
type Controllers struct {
	svc *svc.Services
}

func New(s *svc.Services) *Controllers {
	return &Controllers{svc: s}
}

// deleteResponse es la confirmación de los DELETE.
type deleteResponse struct {
	Message string `json:"message"`
}

// writeDomainError traduce un error de servicio/store a la respuesta HTTP.
// notFoundMsg personaliza el 404 por recurso ("Categoría no encontrada", etc).
func writeDomainError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	var fieldErr *validation.FieldError
	switch {
	case errors.As(err, &fieldErr):
		httperr.WriteError(w, httperr.ErrInvalidFormat.WithDetail(fieldErr.Error()))
	case errors.Is(err, core.ErrConflict):
		httperr.WriteError(w, httperr.ErrAlreadyExists)
	case errors.Is(err, core.ErrNotFound):
		httperr.WriteError(w, httperr.ErrNotFound.WithMessage(notFoundMsg))
	default:
		var appErr *httperr.AppError
		if errors.As(err, &appErr) {
			httperr.WriteError(w, appErr)
			return
		}
		logger.From(r.Context()).Error("handler: error no mapeado", logger.Err(err))
		httperr.WriteError(w, httperr.ErrInternalServerError)
	}
}
