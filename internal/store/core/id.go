package core

import "github.com/google/uuid"

// IDGenerator genera identificadores de registro. Los IDs los asigna siempre
// el servidor al crear; el caller nunca los provee. Inyectable para poder
// fijar IDs deterministas en tests.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator genera UUIDs v4 (128 bits aleatorios).
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }
