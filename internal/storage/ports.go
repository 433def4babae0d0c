package storage

import (
	"context"

	"expensetracker/internal/core"
)

// Store persists and queries the expense ledger.
//
// Implementations return *core.StorageError for failures of the underlying
// engine. Rows come back in insertion (id) order and category totals in
// ascending category order.
type Store interface {
	Insert(ctx context.Context, e core.NewExpense) (int64, error)
	SelectAll(ctx context.Context) ([]core.Expense, error)
	// SelectByID returns found=false when no row has the id.
	SelectByID(ctx context.Context, id int64) (core.Expense, bool, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
	DeleteAll(ctx context.Context) (int64, error)
	SumByCategory(ctx context.Context) ([]core.CategoryTotal, error)
	SumTotal(ctx context.Context) (float64, error)
	Close() error
}
