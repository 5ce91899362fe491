package core

import "context"

// Repository es el contrato del store de recursos por tenant.
//
// Toda operación recibe el userID verificado y lo usa como parte del predicado
// de búsqueda — nunca como chequeo posterior al fetch. Un registro de otro
// usuario es indistinguible de uno inexistente: ambos devuelven ErrNotFound.
//
// Create espera el registro completo (ID y UserID ya asignados) y devuelve
// ErrConflict si viola una invariante de unicidad (categorías: (name, user_id)).
// Update reemplaza los campos mutables del registro que matchee (id, user_id).
// Delete devuelve el registro eliminado, o ErrNotFound.
type Repository interface {
	Ping(ctx context.Context) error
	Close()

	ListCategories(ctx context.Context, userID string) ([]Category, error)
	CreateCategory(ctx context.Context, c *Category) error
	UpdateCategory(ctx context.Context, c *Category) error
	DeleteCategory(ctx context.Context, userID, id string) (*Category, error)

	ListTransactions(ctx context.Context, userID string) ([]Transaction, error)
	CreateTransaction(ctx context.Context, t *Transaction) error
	UpdateTransaction(ctx context.Context, t *Transaction) error
	DeleteTransaction(ctx context.Context, userID, id string) (*Transaction, error)

	ListGoals(ctx context.Context, userID string) ([]Goal, error)
	CreateGoal(ctx context.Context, g *Goal) error
	UpdateGoal(ctx context.Context, g *Goal) error
	DeleteGoal(ctx context.Context, userID, id string) (*Goal, error)

	ListBills(ctx context.Context, userID string) ([]Bill, error)
	CreateBill(ctx context.Context, b *Bill) error
	UpdateBill(ctx context.Context, b *Bill) error
	DeleteBill(ctx context.Context, userID, id string) (*Bill, error)
}
