package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldErrorKind   = "error_kind"
	FieldExpenseID   = "expense_id"
	FieldCategory    = "category"
	FieldAmount      = "amount"
	FieldDate        = "date"
	FieldCount       = "count"
	FieldPath        = "path"
	FieldBudget      = "budget"
	FieldBackend     = "backend"
	FieldDBPath      = "db_path"
	FieldRulesSource = "rules_source"
	FieldRunID       = "run_id"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentStorage   = "storage"
	ComponentLedger    = "ledger"
	ComponentAdvisor   = "advisor"
	ComponentExport    = "export"
	ComponentPresenter = "presenter"
	ComponentView      = "view"
)

// Operations name the presenter intents in log records
const (
	OpSetBudget      = "set_budget"
	OpAddExpense     = "add_expense"
	OpListExpenses   = "list_expenses"
	OpBudgetAdvice   = "budget_advice"
	OpCategoryTotals = "category_totals"
	OpDeleteByID     = "delete_by_id"
	OpDeleteAll      = "delete_all"
	OpExportCSV      = "export_csv"
	OpSummary        = "summary"
	OpStartup        = "startup"
	OpShutdown       = "shutdown"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithExpense adds expense-related fields
func (f LogFields) WithExpense(id int64, date, category string, amount float64) LogFields {
	if id > 0 {
		f[FieldExpenseID] = id
	}
	f[FieldDate] = date
	f[FieldCategory] = category
	f[FieldAmount] = amount
	return f
}

// With adds an arbitrary field
func (f LogFields) With(key string, value any) LogFields {
	f[key] = value
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
