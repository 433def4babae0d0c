package core

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the calendar format expenses are entered in.
const DateLayout = "2006-01-02"

type (
	// Expense is a single recorded outlay. Records are never mutated once stored.
	Expense struct {
		ID          int64
		Date        string // YYYY-MM-DD, not validated by default
		Category    string
		Amount      float64
		Description string
	}

	// NewExpense carries the fields of an expense before an ID is assigned.
	NewExpense struct {
		Date        string
		Category    string
		Amount      float64
		Description string
	}

	// AdvisorRule is a spending threshold keyed by lowercase category name.
	AdvisorRule struct {
		Key          string  `yaml:"key" toml:"key"`
		ThresholdPct float64 `yaml:"threshold_pct" toml:"threshold_pct"`
		Tip          string  `yaml:"tip" toml:"tip"`
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidID     = errors.New("invalid id")
	ErrInvalidBudget = errors.New("invalid budget")
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidRule   = errors.New("invalid advisor rule")
	ErrNotFound      = errors.New("expense not found")
	ErrStorage       = errors.New("storage error")
	ErrNoData        = errors.New("no data")
)

// WithID returns the stored form of the expense.
func (n NewExpense) WithID(id int64) Expense {
	return Expense{
		ID:          id,
		Date:        n.Date,
		Category:    n.Category,
		Amount:      n.Amount,
		Description: n.Description,
	}
}

func (n NewExpense) Validate() error {
	if n.Amount < 0 {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateDate checks that s is a real calendar date in YYYY-MM-DD form.
func ValidateDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return ErrInvalidDate
	}
	if _, err := time.Parse(DateLayout, s); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// Validate checks a single rule. Keys must already be lowercase.
func (r AdvisorRule) Validate() error {
	key := strings.TrimSpace(r.Key)
	if key == "" {
		return errors.New("empty rule key")
	}
	if key != strings.ToLower(key) {
		return errors.New("rule key must be lowercase: " + r.Key)
	}
	if r.ThresholdPct <= 0 || r.ThresholdPct >= 100 {
		return errors.New("threshold must be between 0 and 100 (exclusive) for " + r.Key)
	}
	return nil
}

// DefaultRules returns the built-in advisor table.
func DefaultRules() []AdvisorRule {
	return []AdvisorRule{
		{Key: "food", ThresholdPct: 15, Tip: "You've spent a lot on food. Try eating at home!"},
		{Key: "transport", ThresholdPct: 10, Tip: "Use public transport to save money."},
		{Key: "party", ThresholdPct: 2, Tip: "Parties are fun but budget them wisely."},
		{Key: "entertainment", ThresholdPct: 10, Tip: "Try budget-friendly entertainment."},
		{Key: "shopping", ThresholdPct: 10, Tip: "Limit impulsive purchases!"},
		{Key: "others", ThresholdPct: 15, Tip: "Review your miscellaneous spending."},
	}
}
