// Package memory is a process-local Store used by the memory backend and by tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"expensetracker/internal/core"
)

type Store struct {
	mu     sync.Mutex
	lastID int64
	items  []core.Expense
}

func New() *Store {
	return &Store{}
}

// NewSeeded returns a store already holding the given expenses, as if they had
// been inserted in order.
func NewSeeded(seed []core.NewExpense) *Store {
	s := New()
	for _, e := range seed {
		s.lastID++
		s.items = append(s.items, e.WithID(s.lastID))
	}
	return s
}

func (s *Store) Insert(_ context.Context, e core.NewExpense) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID++
	s.items = append(s.items, e.WithID(s.lastID))
	return s.lastID, nil
}

func (s *Store) SelectAll(_ context.Context) ([]core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) == 0 {
		return nil, nil
	}
	return append([]core.Expense(nil), s.items...), nil
}

func (s *Store) SelectByID(_ context.Context, id int64) (core.Expense, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true, nil
	}
	return core.Expense{}, false, nil
}

func (s *Store) DeleteByID(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true, nil
}

// DeleteAll keeps lastID so ids are never reused.
func (s *Store) DeleteAll(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := int64(len(s.items))
	s.items = nil
	return n, nil
}

func (s *Store) SumByCategory(_ context.Context) ([]core.CategoryTotal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sums := map[string]float64{}
	for _, e := range s.items {
		sums[e.Category] += e.Amount
	}
	if len(sums) == 0 {
		return nil, nil
	}
	out := make([]core.CategoryTotal, 0, len(sums))
	for c, t := range sums {
		out = append(out, core.CategoryTotal{Category: c, Total: t})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}

func (s *Store) SumTotal(_ context.Context) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, e := range s.items {
		total += e.Amount
	}
	return total, nil
}

func (s *Store) Close() error { return nil }

func (s *Store) indexOf(id int64) int {
	for i, e := range s.items {
		if e.ID == id {
			return i
		}
	}
	return -1
}
