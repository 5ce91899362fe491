package records

import "github.com/dropDatabas3/finanzas/internal/validation"

// BillRequest es el cuerpo de POST/PUT /api/bills.
// Paid omitido se interpreta como false.
type BillRequest struct {
	Description string   `json:"description"`
	Amount      *float64 `json:"amount"`
	DueDate     string   `json:"due_date"`
	Paid        *bool    `json:"paid"`
}

func (r *BillRequest) Validate() error {
	if err := validation.Required("description", r.Description); err != nil {
		return err
	}
	if err := validation.PositiveAmount("amount", r.Amount); err != nil {
		return err
	}
	_, err := validation.Date("due_date", r.DueDate)
	return err
}
