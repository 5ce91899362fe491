package records

import (
	"context"

	"github.com/dropDatabas3/finanzas/internal/http/dto/records"
	"github.com/dropDatabas3/finanzas/internal/store/core"
)

func (s *Services) ListCategories(ctx context.Context, userID string) ([]core.Category, error) {
	return cachedList(ctx, s.cache, kindCategories, userID, func(ctx context.Context) ([]core.Category, error) {
		return s.repo.ListCategories(ctx, userID)
	})
}

func (s *Services) CreateCategory(ctx context.Context, userID string, req *records.CategoryRequest) (*core.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	c := &core.Category{
		ID:     s.ids.NewID(),
		Name:   req.Name,
		UserID: userID,
	}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, kindCategories, userID)
	return c, nil
}

func (s *Services) UpdateCategory(ctx context.Context, userID, id string, req *records.CategoryRequest) (*core.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	c := &core.Category{
		ID:     id,
		Name:   req.Name,
		UserID: userID,
	}
	if err := s.repo.UpdateCategory(ctx, c); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, kindCategories, userID)
	return c, nil
}

func (s *Services) DeleteCategory(ctx context.Context, userID, id string) (*core.Category, error) {
	c, err := s.repo.DeleteCategory(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, kindCategories, userID)
	return c, nil
}
