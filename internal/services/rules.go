package services

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"expensetracker/internal/core"
)

// ruleFile is the on-disk layout shared by YAML and TOML rule tables:
//
//	rules:
//	  - key: food
//	    threshold_pct: 15
//	    tip: "You've spent a lot on food. Try eating at home!"
type ruleFile struct {
	Rules []core.AdvisorRule `yaml:"rules" toml:"rules"`
}

// LoadRules reads an advisor table from a .yaml/.yml or .toml file. An empty
// path returns the built-in table.
func LoadRules(path string) ([]core.AdvisorRule, error) {
	if path == "" {
		return core.DefaultRules(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}

	var rf ruleFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &rf); err != nil {
			return nil, fmt.Errorf("parse rules yaml: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &rf); err != nil {
			return nil, fmt.Errorf("parse rules toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported rules file extension %q (want .yaml, .yml or .toml)", ext)
	}

	if err := ValidateRules(rf.Rules); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rf.Rules, nil
}

// ValidateRules checks every rule and rejects duplicate keys.
func ValidateRules(rules []core.AdvisorRule) error {
	if len(rules) == 0 {
		return fmt.Errorf("%w: rule table is empty", core.ErrInvalidRule)
	}
	seen := make(map[string]struct{}, len(rules))
	for _, r := range rules {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("%w: %v", core.ErrInvalidRule, err)
		}
		if _, dup := seen[r.Key]; dup {
			return fmt.Errorf("%w: duplicate key %q", core.ErrInvalidRule, r.Key)
		}
		seen[r.Key] = struct{}{}
	}
	return nil
}

func sortRules(rules []core.AdvisorRule) {
	sort.Slice(rules, func(i, j int) bool { return rules[i].Key < rules[j].Key })
}
