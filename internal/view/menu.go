package view

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/huh"

	"expensetracker/internal/core"
	applog "expensetracker/internal/log"
	"expensetracker/internal/presenter"
)

type menuAction string

const (
	actionSetBudget   menuAction = "set-budget"
	actionAddExpense  menuAction = "add-expense"
	actionView        menuAction = "view"
	actionSuggestions menuAction = "suggestions"
	actionPieChart    menuAction = "pie-chart"
	actionBarChart    menuAction = "bar-chart"
	actionDeleteOne   menuAction = "delete-one"
	actionDeleteAll   menuAction = "delete-all"
	actionExport      menuAction = "export"
	actionExit        menuAction = "exit"
)

// Menu is the interactive front-end: a select loop over the intents.
type Menu struct {
	p        *presenter.Presenter
	out      io.Writer
	currency string
	log      *applog.Logger
}

func NewMenu(p *presenter.Presenter, out io.Writer, currency string, logger *applog.Logger) *Menu {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Menu{p: p, out: out, currency: currency, log: logger.WithComponent(applog.ComponentView)}
}

// Run blocks until Exit is chosen, the user aborts a form, or ctx is cancelled.
func (m *Menu) Run(ctx context.Context) error {
	fmt.Fprintln(m.out, RenderTitle("Expense Tracker"))
	for {
		m.showSummary(ctx)

		var choice menuAction
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[menuAction]().
				Title("Menu").
				Options(
					huh.NewOption("Set Budget", actionSetBudget),
					huh.NewOption("Add Expense", actionAddExpense),
					huh.NewOption("View Expenses", actionView),
					huh.NewOption("Show Suggestions", actionSuggestions),
					huh.NewOption("Show Pie Chart", actionPieChart),
					huh.NewOption("Show Bar Chart", actionBarChart),
					huh.NewOption("Delete Specific Expense", actionDeleteOne),
					huh.NewOption("Delete All Data", actionDeleteAll),
					huh.NewOption("Export Report", actionExport),
					huh.NewOption("Exit", actionExit),
				).
				Value(&choice),
		))
		if err := form.RunWithContext(ctx); err != nil {
			return m.stopErr(ctx, err)
		}
		if choice == actionExit {
			return nil
		}
		if err := m.dispatch(ctx, choice); err != nil {
			return m.stopErr(ctx, err)
		}
	}
}

// stopErr turns user aborts and shutdown into a clean exit.
func (m *Menu) stopErr(ctx context.Context, err error) error {
	if errors.Is(err, huh.ErrUserAborted) || ctx.Err() != nil {
		m.log.Debug("Menu closed", applog.FieldError, err)
		return nil
	}
	return err
}

func (m *Menu) dispatch(ctx context.Context, action menuAction) error {
	switch action {
	case actionSetBudget:
		return m.setBudget(ctx)
	case actionAddExpense:
		return m.addExpense(ctx)
	case actionView:
		m.showExpenses(ctx)
	case actionSuggestions:
		m.show(adviceOutput(m.p.BudgetAdvice(ctx)))
	case actionPieChart:
		m.show(pieOutput(m.p.CategoryTotals(ctx)))
	case actionBarChart:
		m.show(barOutput(m.p.CategoryTotals(ctx), m.currency))
	case actionDeleteOne:
		return m.deleteOne(ctx)
	case actionDeleteAll:
		return m.deleteAll(ctx)
	case actionExport:
		return m.export(ctx)
	}
	return nil
}

func (m *Menu) setBudget(ctx context.Context) error {
	var input string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Enter Monthly Budget").
			Placeholder(fmt.Sprintf("%.2f", m.p.GetBudget().Payload.Budget)).
			Value(&input).
			Validate(func(s string) error {
				_, err := core.ParseBudget(s)
				return friendly(err, "Please enter a valid number.")
			}),
	))
	if err := form.RunWithContext(ctx); err != nil {
		return err
	}
	r := m.p.SetBudget(ctx, input)
	if !r.OK {
		m.fail(r.Failure)
		return nil
	}
	m.show(RenderNotice("Budget set to " + FormatMoney(m.currency, r.Payload.Budget)))
	return nil
}

func (m *Menu) addExpense(ctx context.Context) error {
	in := presenter.AddExpenseInput{Date: time.Now().Format(core.DateLayout)}
	categories := make([]string, 0, len(m.p.Rules()))
	for _, r := range m.p.Rules() {
		categories = append(categories, r.Key)
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Date (YYYY-MM-DD)").
			Value(&in.Date),
		huh.NewInput().
			Title("Category").
			Suggestions(categories).
			Value(&in.Category),
		huh.NewInput().
			Title("Amount").
			Value(&in.Amount).
			Validate(func(s string) error {
				_, err := core.ParseAmount(s)
				return friendly(err, "Please enter a valid, non-negative amount.")
			}),
		huh.NewInput().
			Title("Description").
			Value(&in.Description),
	))
	if err := form.RunWithContext(ctx); err != nil {
		return err
	}

	r := m.p.AddExpense(ctx, in)
	if !r.OK {
		m.fail(r.Failure)
		return nil
	}
	m.show(RenderNotice(fmt.Sprintf("Expense #%d added.", r.Payload.Expense.ID)))
	return nil
}

func (m *Menu) deleteOne(ctx context.Context) error {
	m.showExpenses(ctx)

	var input string
	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Enter Expense ID to Delete").
				Value(&input).
				Validate(func(s string) error {
					_, err := core.ParseID(s)
					return friendly(err, "Please enter a valid numeric ID.")
				}),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Delete this expense?").
				Affirmative("Delete").
				Negative("Cancel").
				Value(&confirmed),
		),
	)
	if err := form.RunWithContext(ctx); err != nil {
		return err
	}
	if !confirmed {
		m.show(RenderMuted("Nothing deleted."))
		return nil
	}

	r := m.p.DeleteByID(ctx, input)
	if !r.OK {
		m.fail(r.Failure)
		return nil
	}
	m.show(RenderNotice(fmt.Sprintf("Expense ID %d deleted.", r.Payload.ID)))
	m.showExpenses(ctx)
	return nil
}

func (m *Menu) deleteAll(ctx context.Context) error {
	confirmed := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Delete all expenses?").
			Description("This removes every recorded expense and cannot be undone.").
			Affirmative("Delete all").
			Negative("Cancel").
			Value(&confirmed),
	))
	if err := form.RunWithContext(ctx); err != nil {
		return err
	}
	if !confirmed {
		m.show(RenderMuted("Nothing deleted."))
		return nil
	}

	r := m.p.DeleteAll(ctx)
	if !r.OK {
		m.fail(r.Failure)
		return nil
	}
	m.show(RenderNotice(fmt.Sprintf("Deleted %s expenses.", FormatCount(r.Payload.Count))))
	m.showExpenses(ctx)
	return nil
}

func (m *Menu) export(ctx context.Context) error {
	var path string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Export path").
			Description("Leave empty for the default report file.").
			Value(&path),
	))
	if err := form.RunWithContext(ctx); err != nil {
		return err
	}
	m.show(exportOutput(m.p.ExportCSV(ctx, path)))
	return nil
}

func (m *Menu) showExpenses(ctx context.Context) {
	r := m.p.ListExpenses(ctx)
	if !r.OK {
		m.fail(r.Failure)
		return
	}
	m.show(RenderExpenses(r.Payload, m.currency))
}

func (m *Menu) showSummary(ctx context.Context) {
	r := m.p.Summary(ctx)
	if !r.OK {
		m.fail(r.Failure)
		return
	}
	m.show(RenderSummary(r.Payload, m.currency))
}

func (m *Menu) show(s string) {
	fmt.Fprintln(m.out, s)
}

func (m *Menu) fail(f *presenter.Failure) {
	m.show(RenderError(string(f.Kind), f.Message))
}

// friendly replaces a parse error with a message fit for a form field.
func friendly(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.New(msg)
}
