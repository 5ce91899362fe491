package records

import (
	"context"

	"github.com/dropDatabas3/finanzas/internal/http/dto/records"
	"github.com/dropDatabas3/finanzas/internal/store/core"
	"github.com/dropDatabas3/finanzas/internal/validation"
)

func (s *Services) ListGoals(ctx context.Context, userID string) ([]core.Goal, error) {
	return cachedList(ctx, s.cache, kindGoals, userID, func(ctx context.Context) ([]core.Goal, error) {
		return s.repo.ListGoals(ctx, userID)
	})
}

func (s *Services) CreateGoal(ctx context.Context, userID string, req *records.GoalRequest) (*core.Goal, error) {
	g, err := s.buildGoal(userID, req)
	if err != nil {
		return nil, err
	}
	g.ID = s.ids.NewID()
	if err := s.repo.CreateGoal(ctx, g); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, kindGoals, userID)
	return g, nil
}

func (s *Services) UpdateGoal(ctx context.Context, userID, id string, req *records.GoalRequest) (*core.Goal, error) {
	g, err := s.buildGoal(userID, req)
	if err != nil {
		return nil, err
	}
	g.ID = id
	if err := s.repo.UpdateGoal(ctx, g); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, kindGoals, userID)
	return g, nil
}

func (s *Services) DeleteGoal(ctx context.Context, userID, id string) (*core.Goal, error) {
	g, err := s.repo.DeleteGoal(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, kindGoals, userID)
	return g, nil
}

func (s *Services) buildGoal(userID string, req *records.GoalRequest) (*core.Goal, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	target, err := validation.OptionalDate("target_date", req.TargetDate)
	if err != nil {
		return nil, err
	}
	g := &core.Goal{
		UserID:     userID,
		Name:       req.Name,
		Amount:     *req.Amount,
		TargetDate: target,
	}
	if req.Saved != nil {
		g.Saved = *req.Saved
	}
	return g, nil
}
