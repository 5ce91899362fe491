package records

import "github.com/dropDatabas3/finanzas/internal/validation"

// GoalRequest es el cuerpo de POST/PUT /api/goals.
// Saved omitido arranca en 0; TargetDate es opcional.
type GoalRequest struct {
	Name       string   `json:"name"`
	Amount     *float64 `json:"amount"`
	Saved      *float64 `json:"saved"`
	TargetDate string   `json:"target_date"`
}

func (r *GoalRequest) Validate() error {
	if err := validation.Required("name", r.Name); err != nil {
		return err
	}
	if err := validation.PositiveAmount("amount", r.Amount); err != nil {
		return err
	}
	if err := validation.NonNegative("saved", r.Saved); err != nil {
		return err
	}
	_, err := validation.OptionalDate("target_date", r.TargetDate)
	return err
}
