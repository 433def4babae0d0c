// Package core provides input parsing for the values typed into the tracker.
//
// Amounts and budgets are plain reals in the local currency; they are stored
// as REAL in the expenses table, so no fixed-point conversion happens here.
package core

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount converts user input to a non-negative amount.
//
// Surrounding whitespace is ignored. Zero is accepted; negative values,
// NaN, infinities and anything strconv cannot parse return ErrInvalidAmount.
//
// Examples:
//   ParseAmount("12.5")  -> 12.5, nil
//   ParseAmount(" 0 ")   -> 0, nil
//   ParseAmount("-1")    -> 0, ErrInvalidAmount
//   ParseAmount("ten")   -> 0, ErrInvalidAmount
func ParseAmount(s string) (float64, error) {
	v, ok := parseNonNegative(s)
	if !ok {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// ParseBudget has the same rules as ParseAmount but reports ErrInvalidBudget.
func ParseBudget(s string) (float64, error) {
	v, ok := parseNonNegative(s)
	if !ok {
		return 0, ErrInvalidBudget
	}
	return v, nil
}

// ParseID converts user input to a positive expense id.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

func parseNonNegative(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	// "-0" parses to negative zero
	return v + 0, true
}
