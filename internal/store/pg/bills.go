package pg

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dropDatabas3/finanzas/internal/store/core"
)

func (s *Store) ListBills(ctx context.Context, userID string) ([]core.Bill, error) {
	const q = `
SELECT id, description, amount, due_date, paid, user_id
FROM bills
WHERE user_id = $1
ORDER BY due_date ASC`
	rows, err := s.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []core.Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

func (s *Store) CreateBill(ctx context.Context, b *core.Bill) error {
	const q = `
INSERT INTO bills (id, description, amount, due_date, paid, user_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, description, amount, due_date, paid, user_id`
	row := s.pool.QueryRow(ctx, q, b.ID, b.Description, b.Amount, b.DueDate.Time, b.Paid, b.UserID)
	stored, err := scanBill(row)
	if err != nil {
		return err
	}
	*b = *stored
	return nil
}

func (s *Store) UpdateBill(ctx context.Context, b *core.Bill) error {
	const q = `
UPDATE bills
SET description = $1, amount = $2, due_date = $3, paid = $4
WHERE id = $5 AND user_id = $6
RETURNING id, description, amount, due_date, paid, user_id`
	row := s.pool.QueryRow(ctx, q, b.Description, b.Amount, b.DueDate.Time, b.Paid, b.ID, b.UserID)
	stored, err := scanBill(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return core.ErrNotFound
		}
		return err
	}
	*b = *stored
	return nil
}

func (s *Store) DeleteBill(ctx context.Context, userID, id string) (*core.Bill, error) {
	const q = `
DELETE FROM bills WHERE id = $1 AND user_id = $2
RETURNING id, description, amount, due_date, paid, user_id`
	b, err := scanBill(s.pool.QueryRow(ctx, q, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func scanBill(row pgx.Row) (*core.Bill, error) {
	var b core.Bill
	var due time.Time
	if err := row.Scan(&b.ID, &b.Description, &b.Amount, &due, &b.Paid, &b.UserID); err != nil {
		return nil, err
	}
	b.DueDate = core.NewDate(due)
	return &b, nil
}
