package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/dropDatabas3/finanzas/internal/store/core"
)

const (
	userA = "2a7b8a06-5a0f-4a6e-9f1e-111111111111"
	userB = "9c3d4e21-7b2c-4d8f-8a3b-222222222222"
)

func mustDate(t *testing.T, s string) core.Date {
	t.Helper()
	d, err := core.ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

func TestCategoryUniquePerUser(t *testing.T) {
	s := New()
	ctx := context.Background()

	if err := s.CreateCategory(ctx, &core.Category{ID: "c1", Name: "Groceries", UserID: userA}); err != nil {
		t.Fatalf("create: %v", err)
	}
	// Mismo nombre, otro usuario: permitido.
	if err := s.CreateCategory(ctx, &core.Category{ID: "c2", Name: "Groceries", UserID: userB}); err != nil {
		t.Fatalf("create mismo nombre otro usuario: %v", err)
	}
	// Mismo nombre, mismo usuario: conflicto.
	err := s.CreateCategory(ctx, &core.Category{ID: "c3", Name: "Groceries", UserID: userA})
	if !errors.Is(err, core.ErrConflict) {
		t.Fatalf("err = %v, esperaba ErrConflict", err)
	}
}

func TestCategoryRenameConflict(t *testing.T) {
	s := New()
	ctx := context.Background()

	_ = s.CreateCategory(ctx, &core.Category{ID: "c1", Name: "Comida", UserID: userA})
	_ = s.CreateCategory(ctx, &core.Category{ID: "c2", Name: "Transporte", UserID: userA})

	err := s.UpdateCategory(ctx, &core.Category{ID: "c2", Name: "Comida", UserID: userA})
	if !errors.Is(err, core.ErrConflict) {
		t.Fatalf("rename a nombre ocupado: err = %v, esperaba ErrConflict", err)
	}

	// Renombrar a un nombre libre sí funciona.
	if err := s.UpdateCategory(ctx, &core.Category{ID: "c2", Name: "Viajes", UserID: userA}); err != nil {
		t.Fatalf("rename válido: %v", err)
	}
}

func TestListCategoriesSortedAndScoped(t *testing.T) {
	s := New()
	ctx := context.Background()

	_ = s.CreateCategory(ctx, &core.Category{ID: "c1", Name: "Zapatos", UserID: userA})
	_ = s.CreateCategory(ctx, &core.Category{ID: "c2", Name: "Alquiler", UserID: userA})
	_ = s.CreateCategory(ctx, &core.Category{ID: "c3", Name: "Medio", UserID: userB})

	out, err := s.ListCategories(ctx, userA)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len = %d, esperaba 2", len(out))
	}
	if out[0].Name != "Alquiler" || out[1].Name != "Zapatos" {
		t.Fatalf("orden = [%s, %s], esperaba [Alquiler, Zapatos]", out[0].Name, out[1].Name)
	}
}

func TestCrossTenantLooksLikeNotFound(t *testing.T) {
	s := New()
	ctx := context.Background()

	_ = s.CreateBill(ctx, &core.Bill{
		ID: "b1", Description: "Luz", Amount: 120, DueDate: mustDate(t, "2026-09-01"), UserID: userA,
	})

	// Update ajeno: NotFound, sin tocar el registro.
	err := s.UpdateBill(ctx, &core.Bill{
		ID: "b1", Description: "Hackeada", Amount: 1, DueDate: mustDate(t, "2026-09-01"), UserID: userB,
	})
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("update ajeno: err = %v, esperaba ErrNotFound", err)
	}

	// Delete ajeno: también NotFound.
	if _, err := s.DeleteBill(ctx, userB, "b1"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("delete ajeno: err = %v, esperaba ErrNotFound", err)
	}

	// El registro del dueño quedó intacto.
	out, _ := s.ListBills(ctx, userA)
	if len(out) != 1 || out[0].Description != "Luz" || out[0].Amount != 120 {
		t.Fatalf("registro modificado por otro tenant: %+v", out)
	}
}

func TestTransactionsOrderedByDateDesc(t *testing.T) {
	s := New()
	ctx := context.Background()

	_ = s.CreateTransaction(ctx, &core.Transaction{
		ID: "t1", UserID: userA, Description: "vieja", Amount: 10,
		Date: mustDate(t, "2026-01-10"), Type: core.TxExpense,
	})
	_ = s.CreateTransaction(ctx, &core.Transaction{
		ID: "t2", UserID: userA, Description: "nueva", Amount: 20,
		Date: mustDate(t, "2026-03-05"), Type: core.TxIncome,
	})
	_ = s.CreateTransaction(ctx, &core.Transaction{
		ID: "t3", UserID: userA, Description: "media", Amount: 15,
		Date: mustDate(t, "2026-02-01"), Type: core.TxExpense,
	})

	out, err := s.ListTransactions(ctx, userA)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"t2", "t3", "t1"}
	for i, id := range want {
		if out[i].ID != id {
			t.Fatalf("pos %d = %s, esperaba %s", i, out[i].ID, id)
		}
	}
}

func TestBillsOrderedByDueDateAsc(t *testing.T) {
	s := New()
	ctx := context.Background()

	_ = s.CreateBill(ctx, &core.Bill{ID: "b1", Description: "c", Amount: 1, DueDate: mustDate(t, "2026-12-01"), UserID: userA})
	_ = s.CreateBill(ctx, &core.Bill{ID: "b2", Description: "a", Amount: 1, DueDate: mustDate(t, "2026-09-01"), UserID: userA})
	_ = s.CreateBill(ctx, &core.Bill{ID: "b3", Description: "b", Amount: 1, DueDate: mustDate(t, "2026-10-15"), UserID: userA})

	out, err := s.ListBills(ctx, userA)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"b2", "b3", "b1"}
	for i, id := range want {
		if out[i].ID != id {
			t.Fatalf("pos %d = %s, esperaba %s", i, out[i].ID, id)
		}
	}
}

func TestGoalUpdateAndDelete(t *testing.T) {
	s := New()
	ctx := context.Background()

	g := &core.Goal{ID: "g1", Name: "Vacaciones", Amount: 1000, Saved: 100, UserID: userA}
	if err := s.CreateGoal(ctx, g); err != nil {
		t.Fatalf("create: %v", err)
	}

	target := mustDate(t, "2027-01-01")
	upd := &core.Goal{ID: "g1", Name: "Vacaciones", Amount: 1200, Saved: 300, TargetDate: &target, UserID: userA}
	if err := s.UpdateGoal(ctx, upd); err != nil {
		t.Fatalf("update: %v", err)
	}
	if upd.Saved != 300 || upd.TargetDate == nil {
		t.Fatalf("update no aplicado: %+v", upd)
	}

	deleted, err := s.DeleteGoal(ctx, userA, "g1")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.Amount != 1200 {
		t.Fatalf("delete devolvió estado viejo: %+v", deleted)
	}

	// Segundo delete del mismo id: NotFound.
	if _, err := s.DeleteGoal(ctx, userA, "g1"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("segundo delete: err = %v, esperaba ErrNotFound", err)
	}
}

func TestListEmptyUser(t *testing.T) {
	s := New()
	out, err := s.ListTransactions(context.Background(), userA)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("esperaba lista vacía, obtuve %d", len(out))
	}
}
