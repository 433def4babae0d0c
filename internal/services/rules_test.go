package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"expensetracker/internal/core"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadRules_DefaultWhenNoPath(t *testing.T) {
	rules, err := LoadRules("")
	if err != nil {
		t.Fatalf("LoadRules: %v", err)
	}
	if len(rules) != len(core.DefaultRules()) {
		t.Fatalf("expected built-in table, got %+v", rules)
	}
}

func TestLoadRules_YAML(t *testing.T) {
	path := writeFile(t, "rules.yaml", `
rules:
  - key: food
    threshold_pct: 20
    tip: "Cook more."
  - key: rent
    threshold_pct: 40
    tip: "Housing is heavy."
`)
	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules: %v", err)
	}
	if len(rules) != 2 || rules[0].Key != "food" || rules[0].ThresholdPct != 20 || rules[1].Tip != "Housing is heavy." {
		t.Fatalf("unexpected rules %+v", rules)
	}
}

func TestLoadRules_TOML(t *testing.T) {
	path := writeFile(t, "rules.toml", `
[[rules]]
key = "party"
threshold_pct = 5.5
tip = "Fewer parties."
`)
	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules: %v", err)
	}
	if len(rules) != 1 || rules[0].Key != "party" || rules[0].ThresholdPct != 5.5 {
		t.Fatalf("unexpected rules %+v", rules)
	}
}

func TestLoadRules_Invalid(t *testing.T) {
	cases := map[string]string{
		"upper.yaml":  "rules:\n  - key: Food\n    threshold_pct: 10\n",
		"range.yaml":  "rules:\n  - key: food\n    threshold_pct: 150\n",
		"dup.yaml":    "rules:\n  - key: food\n    threshold_pct: 10\n  - key: food\n    threshold_pct: 12\n",
		"empty.yaml":  "rules: []\n",
		"broken.toml": "[[rules]\nkey=",
	}
	for name, content := range cases {
		path := writeFile(t, name, content)
		if _, err := LoadRules(path); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}

	path := writeFile(t, "dup.yml", "rules:\n  - key: food\n    threshold_pct: 10\n  - key: food\n    threshold_pct: 12\n")
	if _, err := LoadRules(path); !errors.Is(err, core.ErrInvalidRule) {
		t.Fatalf("expected ErrInvalidRule, got %v", err)
	}
	if _, err := LoadRules(writeFile(t, "rules.json", "{}")); err == nil {
		t.Fatal("expected unsupported extension error")
	}
	if _, err := LoadRules(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
