package core

// Tipos de transacción soportados.
const (
	TxIncome  = "income"
	TxExpense = "expense"
)

// Category es una categoría de gasto/ingreso del usuario.
// (name, user_id) es único por tenant: dos usuarios pueden tener "Groceries",
// el mismo usuario no.
type Category struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	UserID string `json:"user_id"`
}

// Transaction es un movimiento puntual (ingreso o gasto).
// Category es texto denormalizado, no una FK a Category.
type Transaction struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        Date    `json:"date"`
	Type        string  `json:"type"` // income | expense
	Category    string  `json:"category,omitempty"`
}

// Goal es una meta de ahorro.
type Goal struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Saved      float64 `json:"saved"`
	TargetDate *Date   `json:"target_date,omitempty"`
	UserID     string  `json:"user_id"`
}

// Bill es una cuenta a pagar.
type Bill struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	DueDate     Date    `json:"due_date"`
	Paid        bool    `json:"paid"`
	UserID      string  `json:"user_id"`
}
