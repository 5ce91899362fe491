package pg

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dropDatabas3/finanzas/internal/store/core"
)

func (s *Store) ListGoals(ctx context.Context, userID string) ([]core.Goal, error) {
	const q = `
SELECT id, name, amount, saved, target_date, user_id
FROM goals
WHERE user_id = $1
ORDER BY id`
	rows, err := s.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []core.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *g)
	}
	return out, rows.Err()
}

func (s *Store) CreateGoal(ctx context.Context, g *core.Goal) error {
	const q = `
INSERT INTO goals (id, name, amount, saved, target_date, user_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, name, amount, saved, target_date, user_id`
	row := s.pool.QueryRow(ctx, q, g.ID, g.Name, g.Amount, g.Saved, datePtr(g.TargetDate), g.UserID)
	stored, err := scanGoal(row)
	if err != nil {
		return err
	}
	*g = *stored
	return nil
}

func (s *Store) UpdateGoal(ctx context.Context, g *core.Goal) error {
	const q = `
UPDATE goals
SET name = $1, amount = $2, saved = $3, target_date = $4
WHERE id = $5 AND user_id = $6
RETURNING id, name, amount, saved, target_date, user_id`
	row := s.pool.QueryRow(ctx, q, g.Name, g.Amount, g.Saved, datePtr(g.TargetDate), g.ID, g.UserID)
	stored, err := scanGoal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return core.ErrNotFound
		}
		return err
	}
	*g = *stored
	return nil
}

func (s *Store) DeleteGoal(ctx context.Context, userID, id string) (*core.Goal, error) {
	const q = `
DELETE FROM goals WHERE id = $1 AND user_id = $2
RETURNING id, name, amount, saved, target_date, user_id`
	g, err := scanGoal(s.pool.QueryRow(ctx, q, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func scanGoal(row pgx.Row) (*core.Goal, error) {
	var g core.Goal
	var target *time.Time
	if err := row.Scan(&g.ID, &g.Name, &g.Amount, &g.Saved, &target, &g.UserID); err != nil {
		return nil, err
	}
	if target != nil {
		d := core.NewDate(*target)
		g.TargetDate = &d
	}
	return &g, nil
}

// datePtr convierte *core.Date al valor que espera el driver (NULL si es nil).
func datePtr(d *core.Date) any {
	if d == nil {
		return nil
	}
	return d.Time
}
