package services

import (
	"context"
	"fmt"

	"expensetracker/internal/core"
	"expensetracker/internal/storage"
)

// Aggregator computes per-category totals and their share of the grand total.
type Aggregator struct {
	store storage.Store
}

func NewAggregator(store storage.Store) *Aggregator {
	return &Aggregator{store: store}
}

// ByCategory returns one entry per exact category string, ordered by
// category. Percentages are left unrounded.
func (a *Aggregator) ByCategory(ctx context.Context) ([]core.CategoryShare, error) {
	totals, err := a.store.SumByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum by category: %w", err)
	}
	grand, err := a.store.SumTotal(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum total: %w", err)
	}
	return core.Shares(totals, grand), nil
}

func (a *Aggregator) GrandTotal(ctx context.Context) (float64, error) {
	total, err := a.store.SumTotal(ctx)
	if err != nil {
		return 0, fmt.Errorf("sum total: %w", err)
	}
	return total, nil
}
