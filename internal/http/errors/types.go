package errors

import (
	"fmt"
	"net/http"
)

// AppError define la estructura estándar para errores de la aplicación.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Detail     string `json:"detail,omitempty"`
	HTTPStatus int    `json:"-"` // usado para el header, no se serializa
	Err        error  `json:"-"` // causa original, para logs
}

// Error implementa la interfaz error.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap permite acceder al error original.
func (e *AppError) Unwrap() error { return e.Err }

// WithDetail agrega detalle. Devuelve una COPIA para no mutar las vars base.
func (e *AppError) WithDetail(detail string) *AppError {
	newErr := *e
	newErr.Detail = detail
	return &newErr
}

// WithMessage reemplaza el mensaje humano. Devuelve una COPIA.
func (e *AppError) WithMessage(msg string) *AppError {
	newErr := *e
	newErr.Message = msg
	return &newErr
}

// WithCause agrega la causa original. Devuelve una COPIA.
func (e *AppError) WithCause(err error) *AppError {
	newErr := *e
	newErr.Err = err
	return &newErr
}

// FromError convierte un error genérico en AppError; si no lo es, lo envuelve
// como error interno conservando la causa.
func FromError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return ErrInternalServerError.WithCause(err)
}

// =================================================================================
// ERRORES PREDEFINIDOS
// =================================================================================

// 400 — validación / payload
var (
	ErrInvalidJSON = &AppError{
		Code:       "INVALID_JSON",
		Message:    "El cuerpo de la solicitud no es un JSON válido.",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrMissingFields = &AppError{
		Code:       "MISSING_FIELDS",
		Message:    "Faltan campos requeridos en la solicitud.",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrInvalidFormat = &AppError{
		Code:       "INVALID_FORMAT",
		Message:    "El formato de uno o más campos es inválido.",
		HTTPStatus: http.StatusBadRequest,
	}
)

// 401 — puerta de identidad
var (
	ErrUnauthorized = &AppError{
		Code:       "UNAUTHORIZED",
		Message:    "No autorizado. Se requiere autenticación.",
		HTTPStatus: http.StatusUnauthorized,
	}

	ErrTokenMissing = &AppError{
		Code:       "TOKEN_MISSING",
		Message:    "No se proporcionó token de autenticación.",
		HTTPStatus: http.StatusUnauthorized,
	}

	ErrTokenInvalid = &AppError{
		Code:       "TOKEN_INVALID",
		Message:    "El token de acceso es inválido o está malformado.",
		HTTPStatus: http.StatusUnauthorized,
	}

	ErrTokenExpired = &AppError{
		Code:       "TOKEN_EXPIRED",
		Message:    "El token de acceso ha expirado.",
		HTTPStatus: http.StatusUnauthorized,
	}
)

// 404 — el mismo error cubre "no existe" y "es de otro usuario"
var (
	ErrNotFound = &AppError{
		Code:       "NOT_FOUND",
		Message:    "El recurso solicitado no fue encontrado.",
		HTTPStatus: http.StatusNotFound,
	}

	ErrRouteNotFound = &AppError{
		Code:       "ROUTE_NOT_FOUND",
		Message:    "La ruta solicitada no existe.",
		HTTPStatus: http.StatusNotFound,
	}
)

// 405
var ErrMethodNotAllowed = &AppError{
	Code:       "METHOD_NOT_ALLOWED",
	Message:    "El método HTTP no está permitido para este recurso.",
	HTTPStatus: http.StatusMethodNotAllowed,
}

// 409
var ErrAlreadyExists = &AppError{
	Code:       "ALREADY_EXISTS",
	Message:    "El recurso ya existe.",
	HTTPStatus: http.StatusConflict,
}

// 5xx
var (
	ErrInternalServerError = &AppError{
		Code:       "INTERNAL_SERVER_ERROR",
		Message:    "Ocurrió un error interno en el servidor.",
		HTTPStatus: http.StatusInternalServerError,
	}

	ErrServiceUnavailable = &AppError{
		Code:       "SERVICE_UNAVAILABLE",
		Message:    "El servicio no está disponible temporalmente.",
		HTTPStatus: http.StatusServiceUnavailable,
	}
)
