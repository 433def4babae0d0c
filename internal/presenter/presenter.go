// Package presenter translates user intents into ledger, aggregator, advisor
// and exporter calls and returns plain view models. It renders nothing.
package presenter

import (
	"context"
	"fmt"

	"expensetracker/internal/app"
	"expensetracker/internal/core"
	applog "expensetracker/internal/log"
	"expensetracker/internal/services"
)

// Presenter holds references only; every intent reads fresh from the store.
type Presenter struct {
	ledger     *services.Ledger
	aggregator *services.Aggregator
	advisor    *services.Advisor
	exporter   *services.Exporter
	budget     *services.BudgetHolder
	log        *applog.Logger
}

func New(appCtx *app.Context) *Presenter {
	logger := appCtx.Logger
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	budget := appCtx.Budget
	if budget == nil {
		budget = services.NewBudgetHolder()
	}
	rules := appCtx.Rules
	if rules == nil {
		rules = core.DefaultRules()
	}
	return &Presenter{
		ledger:     services.NewLedger(appCtx.Store, services.WithStrictDates(appCtx.StrictDates)),
		aggregator: services.NewAggregator(appCtx.Store),
		advisor:    services.NewAdvisor(rules),
		exporter:   services.NewExporter(appCtx.Store, appCtx.ExportPath),
		budget:     budget,
		log:        logger.WithComponent(applog.ComponentPresenter),
	}
}

// AddExpenseInput is the add-expense form as typed.
type AddExpenseInput struct {
	Date        string
	Category    string
	Amount      string
	Description string
}

func (p *Presenter) SetBudget(ctx context.Context, input string) Result[BudgetView] {
	v, err := p.budget.SetString(input)
	if err != nil {
		return failFrom[BudgetView](ctx, p, applog.OpSetBudget, err)
	}
	p.log.InfoContext(ctx, "Budget set", applog.FieldOperation, applog.OpSetBudget, applog.FieldBudget, v)
	return ok(BudgetView{Budget: v})
}

func (p *Presenter) GetBudget() Result[BudgetView] {
	return ok(BudgetView{Budget: p.budget.Get()})
}

func (p *Presenter) AddExpense(ctx context.Context, in AddExpenseInput) Result[AddedView] {
	e, err := p.ledger.Add(ctx, services.AddInput{
		Date:        in.Date,
		Category:    in.Category,
		Amount:      in.Amount,
		Description: in.Description,
	})
	if err != nil {
		return failFrom[AddedView](ctx, p, applog.OpAddExpense, err)
	}
	p.log.InfoContext(ctx, "Expense added", applog.NewFields().
		WithOperation(applog.OpAddExpense).
		WithExpense(e.ID, e.Date, e.Category, e.Amount).
		ToSlice()...)
	return ok(AddedView{Expense: e})
}

func (p *Presenter) ListExpenses(ctx context.Context) Result[ListView] {
	expenses, err := p.ledger.List(ctx)
	if err != nil {
		return failFrom[ListView](ctx, p, applog.OpListExpenses, err)
	}
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return ok(ListView{Expenses: expenses, Total: total})
}

func (p *Presenter) CategoryTotals(ctx context.Context) Result[TotalsView] {
	shares, err := p.aggregator.ByCategory(ctx)
	if err != nil {
		return failFrom[TotalsView](ctx, p, applog.OpCategoryTotals, err)
	}
	var grand float64
	for _, s := range shares {
		grand += s.Total
	}
	// Shares of a zero total are meaningless to chart.
	if len(shares) == 0 || grand == 0 {
		return ok(TotalsView{NoData: true})
	}
	return ok(TotalsView{Items: shares, GrandTotal: grand})
}

func (p *Presenter) BudgetAdvice(ctx context.Context) Result[AdviceView] {
	shares, err := p.aggregator.ByCategory(ctx)
	if err != nil {
		return failFrom[AdviceView](ctx, p, applog.OpBudgetAdvice, err)
	}
	advice := p.advisor.Advise(shares)
	if len(advice) == 0 {
		return ok(AdviceView{NoData: true})
	}
	var grand float64
	for _, s := range shares {
		grand += s.Total
	}
	return ok(AdviceView{Items: advice, GrandTotal: grand})
}

// DeleteByID fails with NotFound when nothing was removed.
func (p *Presenter) DeleteByID(ctx context.Context, input string) Result[DeletedView] {
	id, removed, err := p.ledger.Delete(ctx, input)
	if err != nil {
		return failFrom[DeletedView](ctx, p, applog.OpDeleteByID, err)
	}
	if !removed {
		r := failFrom[DeletedView](ctx, p, applog.OpDeleteByID, fmt.Errorf("expense %d: %w", id, core.ErrNotFound))
		r.Failure.Message = fmt.Sprintf("No expense found with ID %d.", id)
		return r
	}
	return ok(DeletedView{ID: id})
}

func (p *Presenter) DeleteAll(ctx context.Context) Result[DeletedAllView] {
	n, err := p.ledger.DeleteAll(ctx)
	if err != nil {
		return failFrom[DeletedAllView](ctx, p, applog.OpDeleteAll, err)
	}
	return ok(DeletedAllView{Count: n})
}

// ExportCSV writes the report to path, or to the configured default when empty.
func (p *Presenter) ExportCSV(ctx context.Context, path string) Result[ExportView] {
	written, rows, err := p.exporter.ExportFile(ctx, path)
	if err != nil {
		return failFrom[ExportView](ctx, p, applog.OpExportCSV, err)
	}
	p.log.InfoContext(ctx, "Report exported",
		applog.FieldOperation, applog.OpExportCSV,
		applog.FieldPath, written,
		applog.FieldCount, rows)
	return ok(ExportView{Path: written, Rows: rows})
}

func (p *Presenter) Summary(ctx context.Context) Result[SummaryView] {
	expenses, err := p.ledger.List(ctx)
	if err != nil {
		return failFrom[SummaryView](ctx, p, applog.OpSummary, err)
	}
	total, err := p.aggregator.GrandTotal(ctx)
	if err != nil {
		return failFrom[SummaryView](ctx, p, applog.OpSummary, err)
	}
	budget := p.budget.Get()
	return ok(SummaryView{
		Count:      len(expenses),
		GrandTotal: total,
		Budget:     budget,
		Remaining:  budget - total,
	})
}

// Rules exposes the active advisor table for display.
func (p *Presenter) Rules() []core.AdvisorRule {
	return p.advisor.Rules()
}

// failFrom classifies err, logs it and builds the user-facing failure.
func failFrom[T any](ctx context.Context, p *Presenter, op string, err error) Result[T] {
	kind := core.KindOf(err)
	fields := applog.NewFields().
		WithOperation(op).
		WithError(err).
		With(applog.FieldErrorKind, string(kind))
	switch kind {
	case core.KindStorage, core.KindInternal:
		p.log.ErrorContext(ctx, "Intent failed", fields.ToSlice()...)
	default:
		p.log.WarnContext(ctx, "Intent rejected", fields.ToSlice()...)
	}
	return fail[T](kind, userMessage(kind, err))
}

func userMessage(kind core.ErrorKind, err error) string {
	switch kind {
	case core.KindInvalidAmount:
		return "Please enter a valid, non-negative amount."
	case core.KindInvalidBudget:
		return "Please enter a valid number for the budget."
	case core.KindInvalidID:
		return "Please enter a valid numeric ID."
	case core.KindInvalidDate:
		return "Please enter the date as YYYY-MM-DD."
	case core.KindNotFound:
		return "No matching expense found."
	case core.KindNoData:
		return "No expenses to display."
	case core.KindStorage:
		return "Could not access the expense database: " + err.Error()
	default:
		return "Something went wrong: " + err.Error()
	}
}
