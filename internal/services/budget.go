package services

import (
	"math"

	"expensetracker/internal/core"
)

// BudgetHolder keeps the monthly budget for the life of the process. It is
// informational only: nothing rejects expenses based on it.
type BudgetHolder struct {
	value float64
}

func NewBudgetHolder() *BudgetHolder {
	return &BudgetHolder{}
}

func (b *BudgetHolder) Set(value float64) error {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return core.ErrInvalidBudget
	}
	b.value = value + 0
	return nil
}

// SetString parses user input and stores it. The held value is unchanged on error.
func (b *BudgetHolder) SetString(s string) (float64, error) {
	v, err := core.ParseBudget(s)
	if err != nil {
		return 0, err
	}
	b.value = v
	return v, nil
}

func (b *BudgetHolder) Get() float64 {
	return b.value
}
