package core

import "errors"

var (
	// ErrNotFound cubre tanto "no existe" como "existe pero es de otro usuario".
	// El store nunca distingue los dos casos hacia afuera.
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	ErrInvalid  = errors.New("invalid")
)
