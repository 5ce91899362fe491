package records

import (
	"github.com/dropDatabas3/finanzas/internal/store/core"
	"github.com/dropDatabas3/finanzas/internal/validation"
)

// TransactionRequest es el cuerpo de POST/PUT /api/transactions.
// Category es opcional; vacío significa "sin categoría".
type TransactionRequest struct {
	Description string   `json:"description"`
	Amount      *float64 `json:"amount"`
	Date        string   `json:"date"`
	Type        string   `json:"type"`
	Category    string   `json:"category"`
}

func (r *TransactionRequest) Validate() error {
	if err := validation.Required("description", r.Description); err != nil {
		return err
	}
	if err := validation.PositiveAmount("amount", r.Amount); err != nil {
		return err
	}
	if _, err := validation.Date("date", r.Date); err != nil {
		return err
	}
	return validation.OneOf("type", r.Type, core.TxIncome, core.TxExpense)
}
