package records

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	cachemem "github.com/dropDatabas3/finanzas/internal/cache/memory"
	dto "github.com/dropDatabas3/finanzas/internal/http/dto/records"
	"github.com/dropDatabas3/finanzas/internal/store/core"
	"github.com/dropDatabas3/finanzas/internal/store/memory"
	"github.com/dropDatabas3/finanzas/internal/validation"
)

const (
	userA = "2a7b8a06-5a0f-4a6e-9f1e-111111111111"
	userB = "9c3d4e21-7b2c-4d8f-8a3b-222222222222"
)

// seqIDs emite ids deterministas para poder assertear contra ellos.
type seqIDs struct{ n int }

func (s *seqIDs) NewID() string {
	s.n++
	return fmt.Sprintf("id-%03d", s.n)
}

func newServices(t *testing.T) (*Services, *memory.Store) {
	t.Helper()
	repo := memory.New()
	svc := New(Deps{
		Repo:  repo,
		IDs:   &seqIDs{},
		Cache: NewListCache(cachemem.New(time.Minute), time.Minute),
	})
	return svc, repo
}

func f64(v float64) *float64 { return &v }

func TestCreateCategoryAssignsServerID(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()

	c, err := svc.CreateCategory(ctx, userA, &dto.CategoryRequest{Name: "Comida"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.ID != "id-001" {
		t.Fatalf("id = %q, esperaba id generado por el server", c.ID)
	}
	if c.UserID != userA {
		t.Fatalf("user_id = %q", c.UserID)
	}
}

func TestCreateCategoryValidatesBeforeStore(t *testing.T) {
	svc, repo := newServices(t)
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, userA, &dto.CategoryRequest{Name: "  "})
	var fe *validation.FieldError
	if !errors.As(err, &fe) || fe.Field != "name" {
		t.Fatalf("err = %v, esperaba FieldError en name", err)
	}

	// Nada tocó el store.
	out, _ := repo.ListCategories(ctx, userA)
	if len(out) != 0 {
		t.Fatalf("el store no tendría que tener registros: %d", len(out))
	}
}

func TestListCacheInvalidatedOnMutation(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()

	if _, err := svc.CreateCategory(ctx, userA, &dto.CategoryRequest{Name: "Comida"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Primera lectura puebla el cache.
	out, err := svc.ListCategories(ctx, userA)
	if err != nil || len(out) != 1 {
		t.Fatalf("list inicial = (%d, %v)", len(out), err)
	}

	// Una mutación tiene que invalidar: la próxima lectura ve el alta nueva.
	if _, err := svc.CreateCategory(ctx, userA, &dto.CategoryRequest{Name: "Transporte"}); err != nil {
		t.Fatalf("segundo create: %v", err)
	}
	out, err = svc.ListCategories(ctx, userA)
	if err != nil || len(out) != 2 {
		t.Fatalf("list tras mutación = (%d, %v), esperaba 2", len(out), err)
	}
}

func TestListCachePerUser(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()

	_, _ = svc.CreateCategory(ctx, userA, &dto.CategoryRequest{Name: "Comida"})
	_, _ = svc.CreateCategory(ctx, userB, &dto.CategoryRequest{Name: "Viajes"})

	outA, _ := svc.ListCategories(ctx, userA)
	outB, _ := svc.ListCategories(ctx, userB)
	if len(outA) != 1 || outA[0].Name != "Comida" {
		t.Fatalf("lista A contaminada: %+v", outA)
	}
	if len(outB) != 1 || outB[0].Name != "Viajes" {
		t.Fatalf("lista B contaminada: %+v", outB)
	}
}

func TestCreateTransaction(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()

	tx, err := svc.CreateTransaction(ctx, userA, &dto.TransactionRequest{
		Description: "Sueldo",
		Amount:      f64(1500),
		Date:        "2026-08-01",
		Type:        core.TxIncome,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if tx.Date.String() != "2026-08-01" || tx.Type != core.TxIncome {
		t.Fatalf("tx = %+v", tx)
	}
}

func TestCreateTransactionRejectsBadType(t *testing.T) {
	svc, _ := newServices(t)
	_, err := svc.CreateTransaction(context.Background(), userA, &dto.TransactionRequest{
		Description: "x",
		Amount:      f64(10),
		Date:        "2026-08-01",
		Type:        "transfer",
	})
	var fe *validation.FieldError
	if !errors.As(err, &fe) || fe.Field != "type" {
		t.Fatalf("err = %v, esperaba FieldError en type", err)
	}
}

func TestCreateGoalDefaults(t *testing.T) {
	svc, _ := newServices(t)
	g, err := svc.CreateGoal(context.Background(), userA, &dto.GoalRequest{
		Name:   "Auto",
		Amount: f64(20000),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if g.Saved != 0 {
		t.Fatalf("saved = %v, esperaba 0 por defecto", g.Saved)
	}
	if g.TargetDate != nil {
		t.Fatalf("target_date = %v, esperaba nil", g.TargetDate)
	}
}

func TestCreateBillDefaultsUnpaid(t *testing.T) {
	svc, _ := newServices(t)
	b, err := svc.CreateBill(context.Background(), userA, &dto.BillRequest{
		Description: "Internet",
		Amount:      f64(45),
		DueDate:     "2026-09-10",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if b.Paid {
		t.Fatal("paid tendría que arrancar en false")
	}
}

func TestUpdateCrossTenantIsNotFound(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()

	b, err := svc.CreateBill(ctx, userA, &dto.BillRequest{
		Description: "Luz", Amount: f64(120), DueDate: "2026-09-01",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.UpdateBill(ctx, userB, b.ID, &dto.BillRequest{
		Description: "Ajena", Amount: f64(1), DueDate: "2026-09-01",
	})
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("err = %v, esperaba ErrNotFound", err)
	}
}

func TestDeleteInvalidatesCache(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()

	g, _ := svc.CreateGoal(ctx, userA, &dto.GoalRequest{Name: "Moto", Amount: f64(5000)})
	if out, _ := svc.ListGoals(ctx, userA); len(out) != 1 {
		t.Fatalf("list = %d", len(out))
	}

	if _, err := svc.DeleteGoal(ctx, userA, g.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if out, _ := svc.ListGoals(ctx, userA); len(out) != 0 {
		t.Fatal("el cache devolvió la meta borrada")
	}
}

func TestNilCacheGoesStraightToStore(t *testing.T) {
	repo := memory.New()
	svc := New(Deps{Repo: repo, IDs: &seqIDs{}, Cache: nil})
	ctx := context.Background()

	if _, err := svc.CreateCategory(ctx, userA, &dto.CategoryRequest{Name: "Comida"}); err != nil {
		t.Fatalf("create sin cache: %v", err)
	}
	out, err := svc.ListCategories(ctx, userA)
	if err != nil || len(out) != 1 {
		t.Fatalf("list sin cache = (%d, %v)", len(out), err)
	}
}
