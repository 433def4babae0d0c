package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidateDate(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2024-01-01", true},
		{" 2024-12-31 ", true},
		{"2024-02-30", false},
		{"01/02/2024", false},
		{"", false},
	}
	for _, tc := range cases {
		err := ValidateDate(tc.in)
		if tc.ok && err != nil {
			t.Fatalf("%q expected ok, got %v", tc.in, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("%q expected ErrInvalidDate, got %v", tc.in, err)
		}
	}
}

func TestDefaultRulesAreValid(t *testing.T) {
	rules := DefaultRules()
	if len(rules) != 6 {
		t.Fatalf("expected 6 built-in rules, got %d", len(rules))
	}
	want := map[string]float64{
		"food": 15, "transport": 10, "party": 2,
		"entertainment": 10, "shopping": 10, "others": 15,
	}
	for _, r := range rules {
		if err := r.Validate(); err != nil {
			t.Fatalf("rule %q invalid: %v", r.Key, err)
		}
		if want[r.Key] != r.ThresholdPct {
			t.Fatalf("rule %q threshold %v, want %v", r.Key, r.ThresholdPct, want[r.Key])
		}
		if r.Tip == "" {
			t.Fatalf("rule %q has no tip", r.Key)
		}
	}
}

func TestAdvisorRuleValidate(t *testing.T) {
	bads := []AdvisorRule{
		{Key: "", ThresholdPct: 10},
		{Key: "Food", ThresholdPct: 10},
		{Key: "food", ThresholdPct: 0},
		{Key: "food", ThresholdPct: 100},
	}
	for i, r := range bads {
		if err := r.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestNewExpenseValidate(t *testing.T) {
	if err := (NewExpense{Amount: 0}).Validate(); err != nil {
		t.Fatalf("zero amount should be valid, got %v", err)
	}
	if err := (NewExpense{Amount: -1}).Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		kind ErrorKind
	}{
		{nil, ""},
		{fmt.Errorf("add: %w", ErrInvalidAmount), KindInvalidAmount},
		{ErrInvalidID, KindInvalidID},
		{ErrInvalidBudget, KindInvalidBudget},
		{ErrNotFound, KindNotFound},
		{ErrNoData, KindNoData},
		{NewStorageError("insert", errors.New("disk full")), KindStorage},
		{errors.New("boom"), KindInternal},
	}
	for _, tc := range cases {
		if got := KindOf(tc.err); got != tc.kind {
			t.Fatalf("KindOf(%v) = %q, want %q", tc.err, got, tc.kind)
		}
	}
}

func TestStorageErrorUnwrap(t *testing.T) {
	cause := errors.New("locked")
	err := NewStorageError("delete", cause)
	if !errors.Is(err, cause) {
		t.Fatal("storage error should unwrap to its cause")
	}
	if !errors.Is(err, ErrStorage) {
		t.Fatal("storage error should match ErrStorage")
	}
	if NewStorageError("noop", nil) != nil {
		t.Fatal("nil cause should produce nil error")
	}
}

func TestShares(t *testing.T) {
	got := Shares([]CategoryTotal{{"food", 10}, {"transport", 90}}, 100)
	if got[0].Percent != 10 || got[1].Percent != 90 {
		t.Fatalf("unexpected shares: %+v", got)
	}
	zero := Shares([]CategoryTotal{{"food", 0}}, 0)
	if zero[0].Percent != 0 {
		t.Fatalf("expected 0 percent when grand total is 0, got %v", zero[0].Percent)
	}
}
