package services

import (
	"context"
	"fmt"
	"log/slog"

	"expensetracker/internal/core"
	"expensetracker/internal/storage"
)

// Ledger validates raw user input before it reaches the store.
type Ledger struct {
	store       storage.Store
	strictDates bool
}

type LedgerOption func(*Ledger)

// WithStrictDates rejects dates that are not YYYY-MM-DD calendar dates.
func WithStrictDates(strict bool) LedgerOption {
	return func(l *Ledger) { l.strictDates = strict }
}

func NewLedger(store storage.Store, opts ...LedgerOption) *Ledger {
	l := &Ledger{store: store}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// AddInput is an expense exactly as typed by the user.
type AddInput struct {
	Date        string
	Category    string
	Amount      string
	Description string
}

// Add parses the amount and stores the expense, returning it as stored.
// Nothing is written when validation fails.
func (l *Ledger) Add(ctx context.Context, in AddInput) (core.Expense, error) {
	amount, err := core.ParseAmount(in.Amount)
	if err != nil {
		return core.Expense{}, err
	}
	if l.strictDates {
		if err := core.ValidateDate(in.Date); err != nil {
			return core.Expense{}, err
		}
	}

	e := core.NewExpense{
		Date:        in.Date,
		Category:    in.Category,
		Amount:      amount,
		Description: in.Description,
	}
	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}

	id, err := l.store.Insert(ctx, e)
	if err != nil {
		return core.Expense{}, fmt.Errorf("save expense: %w", err)
	}
	return e.WithID(id), nil
}

func (l *Ledger) List(ctx context.Context) ([]core.Expense, error) {
	expenses, err := l.store.SelectAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

// Delete reports whether a row was removed; a missing id is not an error here.
func (l *Ledger) Delete(ctx context.Context, idStr string) (int64, bool, error) {
	id, err := core.ParseID(idStr)
	if err != nil {
		return 0, false, err
	}
	removed, err := l.store.DeleteByID(ctx, id)
	if err != nil {
		return id, false, fmt.Errorf("delete expense %d: %w", id, err)
	}
	if !removed {
		slog.DebugContext(ctx, "Delete requested for missing expense", "id", id)
	}
	return id, removed, nil
}

func (l *Ledger) DeleteAll(ctx context.Context) (int64, error) {
	n, err := l.store.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete all expenses: %w", err)
	}
	return n, nil
}
