package pg

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dropDatabas3/finanzas/internal/store/core"
)

func (s *Store) ListTransactions(ctx context.Context, userID string) ([]core.Transaction, error) {
	const q = `
SELECT id, user_id, description, amount, date, type, category
FROM transactions
WHERE user_id = $1
ORDER BY date DESC`
	rows, err := s.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

func (s *Store) CreateTransaction(ctx context.Context, t *core.Transaction) error {
	const q = `
INSERT INTO transactions (id, user_id, description, amount, date, type, category)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, user_id, description, amount, date, type, category`
	row := s.pool.QueryRow(ctx, q, t.ID, t.UserID, t.Description, t.Amount, t.Date.Time, t.Type, t.Category)
	stored, err := scanTransaction(row)
	if err != nil {
		return err
	}
	*t = *stored
	return nil
}

func (s *Store) UpdateTransaction(ctx context.Context, t *core.Transaction) error {
	const q = `
UPDATE transactions
SET description = $1, amount = $2, date = $3, type = $4, category = $5
WHERE id = $6 AND user_id = $7
RETURNING id, user_id, description, amount, date, type, category`
	row := s.pool.QueryRow(ctx, q, t.Description, t.Amount, t.Date.Time, t.Type, t.Category, t.ID, t.UserID)
	stored, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return core.ErrNotFound
		}
		return err
	}
	*t = *stored
	return nil
}

func (s *Store) DeleteTransaction(ctx context.Context, userID, id string) (*core.Transaction, error) {
	const q = `
DELETE FROM transactions WHERE id = $1 AND user_id = $2
RETURNING id, user_id, description, amount, date, type, category`
	t, err := scanTransaction(s.pool.QueryRow(ctx, q, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func scanTransaction(row pgx.Row) (*core.Transaction, error) {
	var t core.Transaction
	var date time.Time
	if err := row.Scan(&t.ID, &t.UserID, &t.Description, &t.Amount, &date, &t.Type, &t.Category); err != nil {
		return nil, err
	}
	t.Date = core.NewDate(date)
	return &t, nil
}
