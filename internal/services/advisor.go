package services

import (
	"strings"

	"expensetracker/internal/core"
)

// AdviceStatus is the verdict for one category.
type AdviceStatus string

const (
	StatusOK   AdviceStatus = "OK"
	StatusWarn AdviceStatus = "WARN"
)

// Advice is the verdict for one category total. Message is empty for OK.
type Advice struct {
	Category string
	Percent  float64
	Status   AdviceStatus
	Message  string
}

// Advisor applies percentage thresholds to category shares. Rules are keyed by
// lowercase category; shares keep their exact-string grouping, so "Food" and
// "FOOD" arrive as separate entries and both match the "food" rule.
type Advisor struct {
	rules map[string]core.AdvisorRule
}

// NewAdvisor indexes the given rule table. Later duplicates win.
func NewAdvisor(rules []core.AdvisorRule) *Advisor {
	a := &Advisor{rules: make(map[string]core.AdvisorRule, len(rules))}
	for _, r := range rules {
		a.rules[strings.ToLower(strings.TrimSpace(r.Key))] = r
	}
	return a
}

// Rule looks up the rule for a category after lowercasing it.
func (a *Advisor) Rule(category string) (core.AdvisorRule, bool) {
	r, ok := a.rules[strings.ToLower(category)]
	return r, ok
}

// Rules returns the table sorted by key.
func (a *Advisor) Rules() []core.AdvisorRule {
	out := make([]core.AdvisorRule, 0, len(a.rules))
	for _, r := range a.rules {
		out = append(out, r)
	}
	sortRules(out)
	return out
}

// Advise emits one entry per share, in input order. An empty ledger (no
// shares, or a zero grand total) yields no advice.
func (a *Advisor) Advise(shares []core.CategoryShare) []Advice {
	var grand float64
	for _, s := range shares {
		grand += s.Total
	}
	if len(shares) == 0 || grand == 0 {
		return nil
	}

	out := make([]Advice, 0, len(shares))
	for _, s := range shares {
		adv := Advice{Category: s.Category, Percent: s.Percent, Status: StatusOK}
		if r, ok := a.Rule(s.Category); ok && s.Percent > r.ThresholdPct {
			adv.Status = StatusWarn
			adv.Message = r.Tip
		}
		out = append(out, adv)
	}
	return out
}
