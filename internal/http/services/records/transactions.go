package records

import (
	"context"

	"github.com/dropDatabas3/finanzas/internal/http/dto/records"
	"github.com/dropDatabas3/finanzas/internal/store/core"
	"github.com/dropDatabas3/finanzas/internal/validation"
)

func (s *Services) ListTransactions(ctx context.Context, userID string) ([]core.Transaction, error) {
	return cachedList(ctx, s.cache, kindTransactions, userID, func(ctx context.Context) ([]core.Transaction, error) {
		return s.repo.ListTransactions(ctx, userID)
	})
}

func (s *Services) CreateTransaction(ctx context.Context, userID string, req *records.TransactionRequest) (*core.Transaction, error) {
	t, err := s.buildTransaction(userID, req)
	if err != nil {
		return nil, err
	}
	t.ID = s.ids.NewID()
	if err := s.repo.CreateTransaction(ctx, t); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, kindTransactions, userID)
	return t, nil
}

func (s *Services) UpdateTransaction(ctx context.Context, userID, id string, req *records.TransactionRequest) (*core.Transaction, error) {
	t, err := s.buildTransaction(userID, req)
	if err != nil {
		return nil, err
	}
	t.ID = id
	if err := s.repo.UpdateTransaction(ctx, t); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, kindTransactions, userID)
	return t, nil
}

func (s *Services) DeleteTransaction(ctx context.Context, userID, id string) (*core.Transaction, error) {
	t, err := s.repo.DeleteTransaction(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, kindTransactions, userID)
	return t, nil
}

func (s *Services) buildTransaction(userID string, req *records.TransactionRequest) (*core.Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	date, err := validation.Date("date", req.Date)
	if err != nil {
		return nil, err
	}
	return &core.Transaction{
		UserID:      userID,
		Description: req.Description,
		Amount:      *req.Amount,
		Date:        date,
		Type:        req.Type,
		Category:    req.Category,
	}, nil
}
