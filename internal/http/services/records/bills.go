package records

import (
	"context"

	"github.com/dropDatabas3/finanzas/internal/http/dto/records"
	"github.com/dropDatabas3/finanzas/internal/store/core"
	"github.com/dropDatabas3/finanzas/internal/validation"
)

func (s *Services) ListBills(ctx context.Context, userID string) ([]core.Bill, error) {
	return cachedList(ctx, s.cache, kindBills, userID, func(ctx context.Context) ([]core.Bill, error) {
		return s.repo.ListBills(ctx, userID)
	})
}

func (s *Services) CreateBill(ctx context.Context, userID string, req *records.BillRequest) (*core.Bill, error) {
	b, err := s.buildBill(userID, req)
	if err != nil {
		return nil, err
	}
	b.ID = s.ids.NewID()
	if err := s.repo.CreateBill(ctx, b); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, kindBills, userID)
	return b, nil
}

func (s *Services) UpdateBill(ctx context.Context, userID, id string, req *records.BillRequest) (*core.Bill, error) {
	b, err := s.buildBill(userID, req)
	if err != nil {
		return nil, err
	}
	b.ID = id
	if err := s.repo.UpdateBill(ctx, b); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, kindBills, userID)
	return b, nil
}

func (s *Services) DeleteBill(ctx context.Context, userID, id string) (*core.Bill, error) {
	b, err := s.repo.DeleteBill(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, kindBills, userID)
	return b, nil
}

func (s *Services) buildBill(userID string, req *records.BillRequest) (*core.Bill, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	due, err := validation.Date("due_date", req.DueDate)
	if err != nil {
		return nil, err
	}
	b := &core.Bill{
		UserID:      userID,
		Description: req.Description,
		Amount:      *req.Amount,
		DueDate:     due,
	}
	if req.Paid != nil {
		b.Paid = *req.Paid
	}
	return b, nil
}
