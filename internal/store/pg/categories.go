package pg

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/dropDatabas3/finanzas/internal/store/core"
)

func (s *Store) ListCategories(ctx context.Context, userID string) ([]core.Category, error) {
	const q = `SELECT id, name, user_id FROM categories WHERE user_id = $1 ORDER BY name ASC`
	rows, err := s.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []core.Category
	for rows.Next() {
		var c core.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.UserID); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) CreateCategory(ctx context.Context, c *core.Category) error {
	const q = `
INSERT INTO categories (id, name, user_id)
VALUES ($1, $2, $3)
RETURNING id, name, user_id`
	if err := s.pool.QueryRow(ctx, q, c.ID, c.Name, c.UserID).Scan(&c.ID, &c.Name, &c.UserID); err != nil {
		if isUniqueViolation(err) {
			return core.ErrConflict
		}
		return err
	}
	return nil
}

func (s *Store) UpdateCategory(ctx context.Context, c *core.Category) error {
	const q = `
UPDATE categories SET name = $1
WHERE id = $2 AND user_id = $3
RETURNING id, name, user_id`
	if err := s.pool.QueryRow(ctx, q, c.Name, c.ID, c.UserID).Scan(&c.ID, &c.Name, &c.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return core.ErrNotFound
		}
		if isUniqueViolation(err) {
			return core.ErrConflict
		}
		return err
	}
	return nil
}

func (s *Store) DeleteCategory(ctx context.Context, userID, id string) (*core.Category, error) {
	const q = `DELETE FROM categories WHERE id = $1 AND user_id = $2 RETURNING id, name, user_id`
	var c core.Category
	if err := s.pool.QueryRow(ctx, q, id, userID).Scan(&c.ID, &c.Name, &c.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
