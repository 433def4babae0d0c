package services

import (
	"context"
	"testing"

	"expensetracker/internal/core"
	"expensetracker/internal/storage/memory"
)

func advise(t *testing.T, seed ...core.NewExpense) []Advice {
	t.Helper()
	store := memory.NewSeeded(seed)
	shares, err := NewAggregator(store).ByCategory(context.Background())
	if err != nil {
		t.Fatalf("ByCategory: %v", err)
	}
	return NewAdvisor(core.DefaultRules()).Advise(shares)
}

func TestAdvisor_SingleCategoryWarns(t *testing.T) {
	got := advise(t,
		core.NewExpense{Date: "2024-01-01", Category: "food", Amount: 500, Description: "lunch"},
		core.NewExpense{Date: "2024-01-02", Category: "food", Amount: 500, Description: "dinner"},
	)
	if len(got) != 1 {
		t.Fatalf("expected 1 advice, got %+v", got)
	}
	if got[0].Status != StatusWarn || got[0].Percent != 100 {
		t.Fatalf("expected WARN at 100%%, got %+v", got[0])
	}
	if got[0].Message != "You've spent a lot on food. Try eating at home!" {
		t.Fatalf("unexpected tip %q", got[0].Message)
	}
}

func TestAdvisor_MixedBelowThreshold(t *testing.T) {
	got := advise(t,
		core.NewExpense{Category: "food", Amount: 10},
		core.NewExpense{Category: "transport", Amount: 90},
	)
	want := []Advice{
		{Category: "food", Percent: 10, Status: StatusOK},
		{Category: "transport", Percent: 90, Status: StatusWarn, Message: "Use public transport to save money."},
	}
	if len(got) != len(want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestAdvisor_UnknownCategoryIsAlwaysOK(t *testing.T) {
	got := advise(t, core.NewExpense{Category: "Rent", Amount: 1000})
	if len(got) != 1 || got[0].Status != StatusOK || got[0].Message != "" {
		t.Fatalf("expected OK without message, got %+v", got)
	}
}

func TestAdvisor_CaseInsensitiveMatching(t *testing.T) {
	got := advise(t,
		core.NewExpense{Category: "Food", Amount: 100},
		core.NewExpense{Category: "FOOD", Amount: 100},
	)
	if len(got) != 2 {
		t.Fatalf("grouping must stay exact-string, got %+v", got)
	}
	for _, a := range got {
		if a.Percent != 50 || a.Status != StatusWarn {
			t.Fatalf("expected both entries to warn at 50%%, got %+v", got)
		}
	}
}

func TestAdvisor_ThresholdIsStrict(t *testing.T) {
	adv := NewAdvisor(core.DefaultRules())
	got := adv.Advise([]core.CategoryShare{
		{Category: "food", Total: 15, Percent: 15},
		{Category: "rent", Total: 85, Percent: 85},
	})
	if got[0].Status != StatusOK {
		t.Fatalf("share equal to threshold must be OK, got %+v", got[0])
	}
}

func TestAdvisor_EmptyLedger(t *testing.T) {
	if got := advise(t); len(got) != 0 {
		t.Fatalf("expected no advice for empty ledger, got %+v", got)
	}
	if got := advise(t, core.NewExpense{Category: "food", Amount: 0}); len(got) != 0 {
		t.Fatalf("expected no advice when grand total is 0, got %+v", got)
	}
}

func TestAdvisor_InjectedRules(t *testing.T) {
	adv := NewAdvisor([]core.AdvisorRule{{Key: "rent", ThresholdPct: 50, Tip: "Consider a cheaper place."}})
	got := adv.Advise([]core.CategoryShare{
		{Category: "Rent", Total: 60, Percent: 60},
		{Category: "food", Total: 40, Percent: 40},
	})
	if got[0].Status != StatusWarn || got[0].Message != "Consider a cheaper place." {
		t.Fatalf("expected rent warning, got %+v", got[0])
	}
	if got[1].Status != StatusOK {
		t.Fatalf("food has no rule in the injected table, got %+v", got[1])
	}
	if rules := adv.Rules(); len(rules) != 1 || rules[0].Key != "rent" {
		t.Fatalf("unexpected rule table %+v", rules)
	}
}

func TestAggregator_PercentagesSumToHundred(t *testing.T) {
	store := memory.NewSeeded([]core.NewExpense{
		{Category: "food", Amount: 25},
		{Category: "shopping", Amount: 25},
		{Category: "transport", Amount: 50},
	})
	shares, err := NewAggregator(store).ByCategory(context.Background())
	if err != nil {
		t.Fatalf("ByCategory: %v", err)
	}
	var pct, total float64
	for _, s := range shares {
		pct += s.Percent
		total += s.Total
	}
	if pct != 100 || total != 100 {
		t.Fatalf("percent sum %v, total %v", pct, total)
	}
	if shares[0].Category != "food" || shares[2].Category != "transport" {
		t.Fatalf("shares not ordered by category: %+v", shares)
	}
}
