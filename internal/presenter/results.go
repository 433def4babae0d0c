package presenter

import (
	"expensetracker/internal/core"
	"expensetracker/internal/services"
)

// Failure describes why an intent did not succeed.
type Failure struct {
	Kind    core.ErrorKind
	Message string
}

func (f *Failure) Error() string {
	return string(f.Kind) + ": " + f.Message
}

// Result is the tagged outcome of an intent: OK with a payload, or a Failure.
type Result[T any] struct {
	OK      bool
	Payload T
	Failure *Failure
}

// Err returns the failure as an error, or nil on success.
func (r Result[T]) Err() error {
	if r.OK || r.Failure == nil {
		return nil
	}
	return r.Failure
}

func ok[T any](payload T) Result[T] {
	return Result[T]{OK: true, Payload: payload}
}

func fail[T any](kind core.ErrorKind, msg string) Result[T] {
	return Result[T]{Failure: &Failure{Kind: kind, Message: msg}}
}

type BudgetView struct {
	Budget float64
}

type AddedView struct {
	Expense core.Expense
}

type ListView struct {
	Expenses []core.Expense
	Total    float64
}

// TotalsView feeds the bar and pie charts. NoData is set for an empty ledger.
type TotalsView struct {
	NoData     bool
	Items      []core.CategoryShare
	GrandTotal float64
}

// AdviceView is the suggestions panel. NoData is set for an empty ledger.
type AdviceView struct {
	NoData     bool
	Items      []services.Advice
	GrandTotal float64
}

type DeletedView struct {
	ID int64
}

type DeletedAllView struct {
	Count int64
}

type ExportView struct {
	Path string
	Rows int
}

// SummaryView sets spending against the budget. Remaining may be negative;
// nothing is enforced on it.
type SummaryView struct {
	Count      int
	GrandTotal float64
	Budget     float64
	Remaining  float64
}
