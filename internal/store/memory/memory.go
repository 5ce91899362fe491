// Package memory implementa core.Repository en memoria.
//
// Replica la semántica del store Postgres — unicidad de (name, user_id) en
// categorías, orden por recurso, ErrNotFound unificado para registros ajenos —
// para poder correr tests y modo dev sin base de datos.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/dropDatabas3/finanzas/internal/store/core"
)

type Store struct {
	mu           sync.RWMutex
	categories   map[string]core.Category
	transactions map[string]core.Transaction
	goals        map[string]core.Goal
	bills        map[string]core.Bill
	seq          map[string]int // id → orden de inserción (desempate estable)
	nextSeq      int
}

func New() *Store {
	return &Store{
		categories:   make(map[string]core.Category),
		transactions: make(map[string]core.Transaction),
		goals:        make(map[string]core.Goal),
		bills:        make(map[string]core.Bill),
		seq:          make(map[string]int),
	}
}

func (s *Store) Ping(context.Context) error { return nil }
func (s *Store) Close()                     {}

func (s *Store) touch(id string) {
	s.nextSeq++
	s.seq[id] = s.nextSeq
}

// ====================== CATEGORIES ======================

func (s *Store) ListCategories(_ context.Context, userID string) ([]core.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []core.Category
	for _, c := range s.categories {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) CreateCategory(_ context.Context, c *core.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.categories {
		if existing.UserID == c.UserID && existing.Name == c.Name {
			return core.ErrConflict
		}
	}
	s.categories[c.ID] = *c
	s.touch(c.ID)
	return nil
}

func (s *Store) UpdateCategory(_ context.Context, c *core.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.categories[c.ID]
	if !ok || stored.UserID != c.UserID {
		return core.ErrNotFound
	}
	for _, existing := range s.categories {
		if existing.ID != c.ID && existing.UserID == c.UserID && existing.Name == c.Name {
			return core.ErrConflict
		}
	}
	stored.Name = c.Name
	s.categories[c.ID] = stored
	*c = stored
	return nil
}

func (s *Store) DeleteCategory(_ context.Context, userID, id string) (*core.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.categories[id]
	if !ok || stored.UserID != userID {
		return nil, core.ErrNotFound
	}
	delete(s.categories, id)
	return &stored, nil
}

// ====================== TRANSACTIONS ======================

func (s *Store) ListTransactions(_ context.Context, userID string) ([]core.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []core.Transaction
	for _, t := range s.transactions {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	// Fecha descendente; a igual fecha, inserción más reciente primero.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date.Time) {
			return out[i].Date.After(out[j].Date.Time)
		}
		return s.seq[out[i].ID] > s.seq[out[j].ID]
	})
	return out, nil
}

func (s *Store) CreateTransaction(_ context.Context, t *core.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions[t.ID] = *t
	s.touch(t.ID)
	return nil
}

func (s *Store) UpdateTransaction(_ context.Context, t *core.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.transactions[t.ID]
	if !ok || stored.UserID != t.UserID {
		return core.ErrNotFound
	}
	stored.Description = t.Description
	stored.Amount = t.Amount
	stored.Date = t.Date
	stored.Type = t.Type
	stored.Category = t.Category
	s.transactions[t.ID] = stored
	*t = stored
	return nil
}

func (s *Store) DeleteTransaction(_ context.Context, userID, id string) (*core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.transactions[id]
	if !ok || stored.UserID != userID {
		return nil, core.ErrNotFound
	}
	delete(s.transactions, id)
	return &stored, nil
}

// ====================== GOALS ======================

func (s *Store) ListGoals(_ context.Context, userID string) ([]core.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []core.Goal
	for _, g := range s.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) CreateGoal(_ context.Context, g *core.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals[g.ID] = *g
	s.touch(g.ID)
	return nil
}

func (s *Store) UpdateGoal(_ context.Context, g *core.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.goals[g.ID]
	if !ok || stored.UserID != g.UserID {
		return core.ErrNotFound
	}
	stored.Name = g.Name
	stored.Amount = g.Amount
	stored.Saved = g.Saved
	stored.TargetDate = g.TargetDate
	s.goals[g.ID] = stored
	*g = stored
	return nil
}

func (s *Store) DeleteGoal(_ context.Context, userID, id string) (*core.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.goals[id]
	if !ok || stored.UserID != userID {
		return nil, core.ErrNotFound
	}
	delete(s.goals, id)
	return &stored, nil
}

// ====================== BILLS ======================

func (s *Store) ListBills(_ context.Context, userID string) ([]core.Bill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []core.Bill
	for _, b := range s.bills {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].DueDate.Equal(out[j].DueDate.Time) {
			return out[i].DueDate.Before(out[j].DueDate.Time)
		}
		return s.seq[out[i].ID] < s.seq[out[j].ID]
	})
	return out, nil
}

func (s *Store) CreateBill(_ context.Context, b *core.Bill) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bills[b.ID] = *b
	s.touch(b.ID)
	return nil
}

func (s *Store) UpdateBill(_ context.Context, b *core.Bill) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.bills[b.ID]
	if !ok || stored.UserID != b.UserID {
		return core.ErrNotFound
	}
	stored.Description = b.Description
	stored.Amount = b.Amount
	stored.DueDate = b.DueDate
	stored.Paid = b.Paid
	s.bills[b.ID] = stored
	*b = stored
	return nil
}

func (s *Store) DeleteBill(_ context.Context, userID, id string) (*core.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.bills[id]
	if !ok || stored.UserID != userID {
		return nil, core.ErrNotFound
	}
	delete(s.bills, id)
	return &stored, nil
}
